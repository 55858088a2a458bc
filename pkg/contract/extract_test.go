package contract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/llm"
	"github.com/stewardhq/steward/pkg/models"
)

type replyClient struct {
	reply string
	err   error
}

func (c *replyClient) Generate(ctx context.Context, req llm.Request) (<-chan llm.Chunk, error) {
	if c.err != nil {
		return nil, c.err
	}
	ch := make(chan llm.Chunk, 1)
	ch <- llm.TextChunk{Content: c.reply}
	close(ch)
	return ch, nil
}

func (c *replyClient) Close() error { return nil }

func TestInferKind(t *testing.T) {
	tests := []struct {
		stage, role string
		want        models.StageKind
	}{
		{"parse", "analyst", models.KindParse},
		{"requirement-analysis", "", models.KindParse},
		{"spec", "architect", models.KindSpec},
		{"coding", "developer", models.KindCode},
		{"unit-test", "qa", models.KindTest},
		{"code-review", "reviewer", models.KindReview},
		{"smoke", "", models.KindSmoke},
		{"docs", "writer", models.KindDoc},
		{"signoff", "", models.KindSignoff},
		{"mystery", "developer", models.KindCode}, // falls through to role
		{"mystery", "unknown", models.KindParse},  // default
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InferKind(tt.stage, tt.role), "stage=%s role=%s", tt.stage, tt.role)
	}
}

func TestExtractTestKind(t *testing.T) {
	e := New(&replyClient{reply: `{
		"summary": "all green",
		"status": "pass",
		"confidence": 0.92,
		"tests_passed": 40,
		"tests_failed": 0,
		"coverage": 87.5,
		"framework": "pytest"
	}`}, "small", true)

	out := e.Extract(context.Background(), models.KindTest, "40 passed in 1.2s")
	assert.Equal(t, "all green", out.Summary)
	assert.Equal(t, models.ContractStatusPass, out.Status)
	assert.InDelta(t, 0.92, out.Confidence, 1e-9)
	require.NotNil(t, out.Test)
	assert.Equal(t, 40, out.Test.TestsPassed)
	assert.Equal(t, 0, out.Test.TestsFailed)
	assert.InDelta(t, 87.5, out.Test.Coverage, 1e-9)
	assert.Equal(t, "pytest", out.Test.Framework)
}

func TestExtractCodeKindWithFences(t *testing.T) {
	e := New(&replyClient{reply: "```json\n{\"summary\":\"implemented API\",\"status\":\"pass\",\"confidence\":0.8,\"files_changed\":3,\"lines_added\":120}\n```"}, "small", true)

	out := e.Extract(context.Background(), models.KindCode, "done")
	require.NotNil(t, out.Code)
	assert.Equal(t, 3, out.Code.FilesChanged)
	assert.Equal(t, 120, out.Code.LinesAdded)
}

func TestExtractClampsConfidenceAndStatus(t *testing.T) {
	e := New(&replyClient{reply: `{"summary":"x","status":"GREAT","confidence":7}`}, "small", true)
	out := e.Extract(context.Background(), models.KindParse, "x")
	assert.Equal(t, models.ContractStatusPartial, out.Status)
	assert.Equal(t, 1.0, out.Confidence)
}

func TestExtractFallsBackOnLLMError(t *testing.T) {
	e := New(&replyClient{err: errors.New("unavailable")}, "small", true)
	out := e.Extract(context.Background(), models.KindReview, "First line verdict.\nDetails follow.")
	assert.Equal(t, "First line verdict.", out.Summary)
	assert.Equal(t, models.ContractStatusPartial, out.Status)
	assert.InDelta(t, 0.5, out.Confidence, 1e-9)
	assert.Nil(t, out.Review)
}

func TestExtractFallsBackOnBadJSON(t *testing.T) {
	e := New(&replyClient{reply: "sorry, cannot comply"}, "small", true)
	out := e.Extract(context.Background(), models.KindParse, "raw output line")
	assert.Equal(t, "raw output line", out.Summary)
}

func TestExtractDisabled(t *testing.T) {
	e := New(nil, "", false)
	out := e.Extract(context.Background(), models.KindParse, "only line")
	assert.Equal(t, "only line", out.Summary)
}

func TestStructuredFieldLookup(t *testing.T) {
	out := &models.StructuredOutput{
		Status:     "pass",
		Confidence: 0.9,
		Test:       &models.TestReport{TestsFailed: 2},
		Metadata:   map[string]any{"branch": "task/abc"},
	}

	v, ok := out.Field("status")
	require.True(t, ok)
	assert.Equal(t, "pass", v)

	v, ok = out.Field("tests_failed")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok = out.Field("branch")
	require.True(t, ok)
	assert.Equal(t, "task/abc", v)

	_, ok = out.Field("nope")
	assert.False(t, ok)
}
