// Package contract extracts a typed structured summary from a stage's
// raw output text. The structured output feeds conditions, dynamic
// gates and routing; extraction failures always degrade to a minimal
// base so the engine never blocks on a malformed stage output.
package contract

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/stewardhq/steward/pkg/llm"
	"github.com/stewardhq/steward/pkg/models"
)

// kindAliases maps stage name / agent role substrings to stage kinds.
// First match wins; checked against the stage name, then the role.
var kindAliases = []struct {
	substr string
	kind   models.StageKind
}{
	{"parse", models.KindParse},
	{"analy", models.KindParse},
	{"spec", models.KindSpec},
	{"design", models.KindSpec},
	{"plan", models.KindSpec},
	{"test", models.KindTest},
	{"review", models.KindReview},
	{"smoke", models.KindSmoke},
	{"doc", models.KindDoc},
	{"signoff", models.KindSignoff},
	{"sign-off", models.KindSignoff},
	{"approve", models.KindApprove},
	{"code", models.KindCode},
	{"coding", models.KindCode},
	{"implement", models.KindCode},
	{"dev", models.KindCode},
}

// InferKind maps a stage name and agent role to a stage kind.
// Unrecognized stages default to parse (base fields only).
func InferKind(stageName, agentRole string) models.StageKind {
	name := strings.ToLower(stageName)
	role := strings.ToLower(agentRole)
	for _, a := range kindAliases {
		if strings.Contains(name, a.substr) {
			return a.kind
		}
	}
	for _, a := range kindAliases {
		if strings.Contains(role, a.substr) {
			return a.kind
		}
	}
	return models.KindParse
}

// Extractor produces structured summaries via LLM JSON extraction.
type Extractor struct {
	client  llm.Client
	model   string
	enabled bool
}

// New creates an extractor. client may be nil, which forces fallback.
func New(client llm.Client, model string, enabled bool) *Extractor {
	return &Extractor{client: client, model: model, enabled: enabled && client != nil}
}

// wireOutput is the JSON shape requested from the model.
type wireOutput struct {
	Summary    string         `json:"summary"`
	Status     string         `json:"status"`
	Confidence float64        `json:"confidence"`
	Artifacts  []string       `json:"artifacts,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`

	TestsPassed  *int     `json:"tests_passed,omitempty"`
	TestsFailed  *int     `json:"tests_failed,omitempty"`
	Coverage     *float64 `json:"coverage,omitempty"`
	Framework    string   `json:"framework,omitempty"`
	FilesChanged *int     `json:"files_changed,omitempty"`
	LinesAdded   *int     `json:"lines_added,omitempty"`
	LinesRemoved *int     `json:"lines_removed,omitempty"`
	Issues       *int     `json:"issues,omitempty"`
	Blocking     *bool    `json:"blocking,omitempty"`
}

// Extract produces the structured summary for one stage output.
// Never fails: any LLM or parse error returns the minimal base.
func (e *Extractor) Extract(ctx context.Context, kind models.StageKind, text string) *models.StructuredOutput {
	if !e.enabled || strings.TrimSpace(text) == "" {
		return Minimal(text)
	}

	raw, _, err := llm.GenerateText(ctx, e.client, llm.Request{
		Model: e.model,
		Messages: []llm.Message{
			{Role: "system", Content: extractionPrompt(kind)},
			{Role: "user", Content: text},
		},
	})
	if err != nil {
		slog.Warn("Contract extraction failed, using minimal base",
			"kind", kind, "error", err)
		return Minimal(text)
	}

	out, err := parse(kind, raw)
	if err != nil {
		slog.Warn("Contract extraction returned unparseable JSON, using minimal base",
			"kind", kind, "error", err)
		return Minimal(text)
	}
	return out
}

func extractionPrompt(kind models.StageKind) string {
	var sb strings.Builder
	sb.WriteString("Extract a structured summary of the stage output as a single JSON object. ")
	sb.WriteString(`Required fields: "summary" (one sentence), "status" ("pass", "fail" or "partial"), "confidence" (number 0..1). `)
	sb.WriteString(`Optional: "artifacts" (list of file paths), "metadata" (object). `)
	switch kind {
	case models.KindTest, models.KindSmoke:
		sb.WriteString(`Also extract "tests_passed", "tests_failed" (integers), "coverage" (percent, number) and "framework" when present. `)
	case models.KindCode:
		sb.WriteString(`Also extract "files_changed", "lines_added", "lines_removed" (integers) when present. `)
	case models.KindReview, models.KindSignoff, models.KindApprove:
		sb.WriteString(`Also extract "issues" (integer count) and "blocking" (boolean) when present. `)
	}
	sb.WriteString("Reply with the JSON object only, no prose and no code fences.")
	return sb.String()
}

func parse(kind models.StageKind, raw string) (*models.StructuredOutput, error) {
	var wire wireOutput
	if err := json.Unmarshal([]byte(stripFences(raw)), &wire); err != nil {
		return nil, fmt.Errorf("decoding extraction: %w", err)
	}

	out := &models.StructuredOutput{
		Summary:    strings.TrimSpace(wire.Summary),
		Status:     normalizeStatus(wire.Status),
		Confidence: clamp01(wire.Confidence),
		Artifacts:  wire.Artifacts,
		Metadata:   wire.Metadata,
	}
	if out.Summary == "" {
		return nil, fmt.Errorf("extraction missing summary")
	}

	switch kind {
	case models.KindTest, models.KindSmoke:
		if wire.TestsPassed != nil || wire.TestsFailed != nil {
			out.Test = &models.TestReport{Framework: wire.Framework}
			if wire.TestsPassed != nil {
				out.Test.TestsPassed = *wire.TestsPassed
			}
			if wire.TestsFailed != nil {
				out.Test.TestsFailed = *wire.TestsFailed
			}
			if wire.Coverage != nil {
				out.Test.Coverage = *wire.Coverage
			}
		}
	case models.KindCode:
		if wire.FilesChanged != nil {
			out.Code = &models.CodeReport{FilesChanged: *wire.FilesChanged}
			if wire.LinesAdded != nil {
				out.Code.LinesAdded = *wire.LinesAdded
			}
			if wire.LinesRemoved != nil {
				out.Code.LinesRemoved = *wire.LinesRemoved
			}
		}
	case models.KindReview, models.KindSignoff, models.KindApprove:
		if wire.Issues != nil || wire.Blocking != nil {
			out.Review = &models.ReviewReport{}
			if wire.Issues != nil {
				out.Review.Issues = *wire.Issues
			}
			if wire.Blocking != nil {
				out.Review.Blocking = *wire.Blocking
			}
		}
	}
	return out, nil
}

// Minimal builds the fallback base: first line as summary, partial
// status, mid confidence.
func Minimal(text string) *models.StructuredOutput {
	line := strings.TrimSpace(text)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	if r := []rune(line); len(r) > 200 {
		line = string(r[:200])
	}
	return &models.StructuredOutput{
		Summary:    line,
		Status:     models.ContractStatusPartial,
		Confidence: 0.5,
	}
}

func normalizeStatus(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case models.ContractStatusPass:
		return models.ContractStatusPass
	case models.ContractStatusFail:
		return models.ContractStatusFail
	default:
		return models.ContractStatusPartial
	}
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// stripFences removes a surrounding markdown code fence if the model
// added one despite instructions.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
