// Package compress produces the three compression levels of a stage
// output (L0 one-liner, L1 bullet brief, L2 full text) and assembles
// the sliding-window prior context injected into later stages.
package compress

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/stewardhq/steward/pkg/llm"
)

// Fallback truncation bounds when the LLM path is disabled or fails.
const (
	l0MaxChars = 200
	l1MaxChars = 1500
)

// Levels holds the three compression levels of one stage output.
type Levels struct {
	L0 string // one-line summary
	L1 string // bulleted brief
	L2 string // full text
}

// StageLevels pairs a stage name with its compression levels.
type StageLevels struct {
	Stage  string
	Levels Levels
}

// Compressor produces Levels for a completed stage output. With a
// client and enabled=true it asks the model for the L0/L1 summaries;
// otherwise (or on any error) it falls back to truncation.
type Compressor struct {
	client  llm.Client
	model   string
	enabled bool
}

// New creates a compressor. client may be nil, which forces fallback.
func New(client llm.Client, model string, enabled bool) *Compressor {
	return &Compressor{client: client, model: model, enabled: enabled && client != nil}
}

// Compress produces the three levels for one stage output. Never fails:
// LLM errors degrade to truncation.
func (c *Compressor) Compress(ctx context.Context, stageName, text string) Levels {
	if !c.enabled || strings.TrimSpace(text) == "" {
		return Fallback(text)
	}

	l0, err := c.summarize(ctx, stageName, text,
		"Summarize the following stage output in ONE sentence, at most 200 characters. Reply with the sentence only.")
	if err != nil {
		slog.Warn("Compression L0 failed, falling back to truncation",
			"stage", stageName, "error", err)
		return Fallback(text)
	}

	l1, err := c.summarize(ctx, stageName, text,
		"Summarize the following stage output as 3-6 short bullet points covering decisions, artifacts and open problems. Reply with the bullets only.")
	if err != nil {
		slog.Warn("Compression L1 failed, falling back to truncation",
			"stage", stageName, "error", err)
		return Fallback(text)
	}

	return Levels{L0: strings.TrimSpace(l0), L1: strings.TrimSpace(l1), L2: text}
}

func (c *Compressor) summarize(ctx context.Context, stageName, text, instruction string) (string, error) {
	out, _, err := llm.GenerateText(ctx, c.client, llm.Request{
		Model: c.model,
		Messages: []llm.Message{
			{Role: "system", Content: instruction},
			{Role: "user", Content: fmt.Sprintf("Stage %q output:\n\n%s", stageName, text)},
		},
	})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "", fmt.Errorf("empty summary")
	}
	return out, nil
}

// Fallback builds Levels by truncation: L0 is the first line capped at
// 200 chars, L1 the first 1500 chars with an ellipsis, L2 the full text.
func Fallback(text string) Levels {
	return Levels{
		L0: firstLine(text, l0MaxChars),
		L1: truncate(text, l1MaxChars),
		L2: text,
	}
}

func firstLine(text string, max int) string {
	line := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		line = text[:i]
	}
	line = strings.TrimSpace(line)
	r := []rune(line)
	if len(r) > max {
		return string(r[:max])
	}
	return line
}

func truncate(text string, max int) string {
	r := []rune(text)
	if len(r) <= max {
		return text
	}
	return string(r[:max]) + "..."
}
