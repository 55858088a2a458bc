package executor

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/stewardhq/steward/pkg/llm"
	"github.com/stewardhq/steward/pkg/models"
)

// Failure classification predicates, checked in priority order:
// resource beats transient (a 429 is both rate-ish and quota-ish, and
// quota exhaustion must not auto-retry forever).
var (
	resourceMarkers = []string{
		"circuit breaker",
		"quota",
		"out of memory",
		"oom",
		"insufficient_quota",
		"billing",
		"429",
	}
	transientMarkers = []string{
		"timeout",
		"timed out",
		"deadline exceeded",
		"connection refused",
		"connection reset",
		"broken pipe",
		"eof",
		"rate limit",
		"too many requests",
		"unavailable",
		"bad gateway",
		"service unavailable",
		"gateway timeout",
		"500",
		"502",
		"503",
		"504",
	}
	toolErrorMarkers = []string{
		"invalid tool",
		"unknown tool",
		"tool call",
		"malformed arguments",
		"invalid json",
	}
	semanticMarkers = []string{
		"content policy",
		"quality",
		"logic error",
		"assertion",
		"contract violation",
	}
)

// Classify maps an error to a failure category for retry policy.
func Classify(err error) models.FailureCategory {
	if err == nil {
		return models.FailureUnknown
	}

	var execErr *Error
	if errors.As(err, &execErr) {
		return execErr.Category
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return models.FailureTransient
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return models.FailureTransient
	}
	var streamErr *llm.StreamError
	if errors.As(err, &streamErr) && streamErr.Retryable {
		return models.FailureTransient
	}

	return ClassifyText(err.Error())
}

// ClassifyText classifies an error message string (the sandbox wire
// reports failures as text).
func ClassifyText(msg string) models.FailureCategory {
	lower := strings.ToLower(msg)
	for _, m := range resourceMarkers {
		if strings.Contains(lower, m) {
			return models.FailureResource
		}
	}
	for _, m := range transientMarkers {
		if strings.Contains(lower, m) {
			return models.FailureTransient
		}
	}
	for _, m := range toolErrorMarkers {
		if strings.Contains(lower, m) {
			return models.FailureToolError
		}
	}
	for _, m := range semanticMarkers {
		if strings.Contains(lower, m) {
			return models.FailureSemantic
		}
	}
	return models.FailureUnknown
}
