package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/stewardhq/steward/pkg/llm"
	"github.com/stewardhq/steward/pkg/models"
)

// StageDigest is one completed stage's contribution to extraction.
type StageDigest struct {
	Name    string
	Role    string
	Summary string
}

// Extractor distills reusable knowledge from completed tasks and
// rejected gates into memory entries.
type Extractor struct {
	client  llm.Client
	model   string
	store   *Store
	enabled bool
}

// NewExtractor creates the extractor. A nil client disables task
// extraction; rejection lessons still work through the raw fallback.
func NewExtractor(client llm.Client, model string, store *Store, enabled bool) *Extractor {
	return &Extractor{client: client, model: model, store: store, enabled: enabled}
}

// extractionWire is the JSON shape requested from the model: one list
// of one-sentence facts per bucket.
type extractionWire struct {
	Conventions  []wireEntry `json:"conventions,omitempty"`
	Architecture []wireEntry `json:"architecture,omitempty"`
	Patterns     []wireEntry `json:"patterns,omitempty"`
	Issues       []wireEntry `json:"issues,omitempty"`
}

type wireEntry struct {
	Content    string   `json:"content"`
	Confidence float64  `json:"confidence"`
	Tags       []string `json:"tags,omitempty"`
}

const extractionPrompt = `Distill reusable project knowledge from the completed task below. ` +
	`Reply with one JSON object with optional keys "conventions", "architecture", "patterns" and "issues", ` +
	`each a list of {"content": one-sentence fact, "confidence": number 0..1, "tags": [strings]}. ` +
	`Only include facts that will help future tasks on the same project; an empty object is a valid answer. ` +
	`Reply with the JSON object only, no prose and no code fences.`

// ExtractFromTask mines a completed task's stage summaries and appends
// the resulting entries to the project's buckets. Extraction failures
// are logged and skipped; a completed task never fails on memory.
func (e *Extractor) ExtractFromTask(ctx context.Context, task *models.Task, digests []StageDigest) {
	if !e.enabled || e.client == nil || task.ProjectID == "" || len(digests) == 0 {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Task: %s\n", task.Title)
	if task.Description != "" {
		fmt.Fprintf(&sb, "Description: %s\n", task.Description)
	}
	sb.WriteString("\nStage results:\n")
	for _, d := range digests {
		fmt.Fprintf(&sb, "- %s (%s): %s\n", d.Name, d.Role, d.Summary)
	}

	raw, _, err := llm.GenerateText(ctx, e.client, llm.Request{
		TaskID: task.ID,
		Model:  e.model,
		Messages: []llm.Message{
			{Role: "system", Content: extractionPrompt},
			{Role: "user", Content: sb.String()},
		},
	})
	if err != nil {
		slog.Warn("Memory extraction failed", "task_id", task.ID, "error", err)
		return
	}

	var wire extractionWire
	if err := json.Unmarshal([]byte(stripFences(raw)), &wire); err != nil {
		slog.Warn("Memory extraction returned unparseable JSON", "task_id", task.ID, "error", err)
		return
	}

	for bucket, entries := range map[models.MemoryBucket][]wireEntry{
		models.BucketConventions:  wire.Conventions,
		models.BucketArchitecture: wire.Architecture,
		models.BucketPatterns:     wire.Patterns,
		models.BucketIssues:       wire.Issues,
	} {
		converted := e.convert(task, entries)
		if len(converted) == 0 {
			continue
		}
		if err := e.store.Append(task.ProjectID, bucket, converted...); err != nil {
			slog.Warn("Appending memory entries failed",
				"task_id", task.ID, "bucket", bucket, "error", err)
		}
	}
}

func (e *Extractor) convert(task *models.Task, entries []wireEntry) []models.MemoryEntry {
	out := make([]models.MemoryEntry, 0, len(entries))
	for _, w := range entries {
		content := strings.TrimSpace(w.Content)
		if content == "" {
			continue
		}
		confidence := w.Confidence
		if confidence <= 0 || confidence > 1 {
			confidence = 0.5
		}
		out = append(out, models.MemoryEntry{
			Content:         content,
			SourceTaskID:    task.ID,
			SourceTaskTitle: task.Title,
			Confidence:      confidence,
			Tags:            w.Tags,
		})
	}
	return out
}

// RejectionLesson turns a gate rejection into a one-sentence lesson for
// the issues bucket. LLM failures fall back to the raw comment.
func (e *Extractor) RejectionLesson(ctx context.Context, task *models.Task, stageName, comment string) models.MemoryEntry {
	lesson := strings.TrimSpace(comment)
	if e.enabled && e.client != nil && lesson != "" {
		raw, _, err := llm.GenerateText(ctx, e.client, llm.Request{
			TaskID: task.ID,
			Model:  e.model,
			Messages: []llm.Message{
				{Role: "system", Content: "Rewrite the reviewer's rejection comment as one short, general lesson for future work on this project. Reply with the lesson sentence only."},
				{Role: "user", Content: fmt.Sprintf("Stage: %s\nComment: %s", stageName, comment)},
			},
		})
		if err == nil && strings.TrimSpace(raw) != "" {
			lesson = strings.TrimSpace(raw)
		}
	}
	return models.MemoryEntry{
		Content:         lesson,
		SourceTaskID:    task.ID,
		SourceTaskTitle: task.Title,
		Confidence:      0.7,
		Tags:            []string{"gate-rejection", stageName},
	}
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
