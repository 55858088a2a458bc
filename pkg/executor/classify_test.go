package executor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stewardhq/steward/pkg/llm"
	"github.com/stewardhq/steward/pkg/models"
)

func TestClassifyText(t *testing.T) {
	tests := []struct {
		msg  string
		want models.FailureCategory
	}{
		{"request timed out after 30s", models.FailureTransient},
		{"connection refused", models.FailureTransient},
		{"upstream returned 503 Service Unavailable", models.FailureTransient},
		{"rate limit exceeded, retry later", models.FailureTransient},
		{"HTTP 429 Too Many Requests", models.FailureResource}, // 429 counts as quota first
		{"insufficient_quota: billing hard limit", models.FailureResource},
		{"container killed: out of memory", models.FailureResource},
		{"circuit breaker tripped for task", models.FailureResource},
		{"unknown tool \"fetch_url\"", models.FailureToolError},
		{"invalid tool call arguments: invalid json", models.FailureToolError},
		{"output failed the quality bar", models.FailureSemantic},
		{"something completely different", models.FailureUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyText(tt.msg), "msg=%q", tt.msg)
	}
}

func TestClassifyErrorTypes(t *testing.T) {
	assert.Equal(t, models.FailureTransient, Classify(context.DeadlineExceeded))
	assert.Equal(t, models.FailureTransient,
		Classify(&llm.StreamError{Message: "flaky", Retryable: true}))
	assert.Equal(t, models.FailureUnknown, Classify(errors.New("mystery")))

	// An already-classified executor error keeps its category.
	execErr := NewError(models.FailureSemantic, "bad output", nil, nil)
	assert.Equal(t, models.FailureSemantic, Classify(execErr))
	wrapped := errors.Join(errors.New("outer"), execErr)
	assert.Equal(t, models.FailureSemantic, Classify(wrapped))
}
