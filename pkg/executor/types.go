// Package executor runs a single stage: it builds the conversation,
// drives the agent loop (in-process over the LLM gRPC service, or
// delegated to a sandboxed agent server over HTTP) and reports text,
// token usage and tool activity back to the engine. The engine treats
// both variants through the same contract.
package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/stewardhq/steward/pkg/models"
)

// Request is one stage execution.
type Request struct {
	TaskID        string
	StageID       string
	StageName     string
	AgentRole     string
	CorrelationID string

	SystemPrompt string
	UserPrompt   string

	Model       string
	MaxTurns    int
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration

	EnableTools  bool
	AllowedTools []string
	SkillDirs    []string
	Workdir      string

	// Events receives the execution event stream when non-nil. The
	// executor never blocks on it beyond ctx cancellation; the engine
	// attaches a Tracker that drains it.
	Events chan<- ExecEvent
}

// Result is a completed stage execution.
type Result struct {
	Text        string
	TotalTokens int
	Turns       int
	ToolCalls   []ToolCall
}

// ToolCallStatus is the terminal state of one tool invocation.
type ToolCallStatus string

const (
	ToolCallSuccess ToolCallStatus = "success"
	ToolCallFailed  ToolCallStatus = "failed"
)

// ToolCall records one tool invocation made during a stage.
type ToolCall struct {
	ID            string
	Name          string
	Args          string // JSON
	Status        ToolCallStatus
	DurationMS    int64
	ResultPreview string
}

// Error is the single failure type executors raise. Category drives
// the engine's retry policy; Partial carries whatever output and token
// usage was produced before the failure.
type Error struct {
	Category models.FailureCategory
	Message  string
	Partial  *Result
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("stage execution failed (%s): %s", e.Category, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds an executor error with a classified category.
func NewError(category models.FailureCategory, message string, partial *Result, cause error) *Error {
	return &Error{Category: category, Message: message, Partial: partial, Err: cause}
}

// ExecEventKind discriminates execution stream events.
type ExecEventKind string

const (
	EventTurnStart   ExecEventKind = "turn_start"
	EventTurnEnd     ExecEventKind = "turn_end"
	EventBeforeTool  ExecEventKind = "before_tool_call"
	EventToolUpdate  ExecEventKind = "tool_execution_update"
	EventAfterTool   ExecEventKind = "after_tool_result"
	EventStreamDelta ExecEventKind = "stream_delta"
)

// ExecEvent is one element of the execution event stream. Tool carries
// the in-flight call for the tool kinds; Delta carries incremental
// text for stream_delta.
type ExecEvent struct {
	Kind  ExecEventKind
	Turn  int
	Tool  *ToolCall
	Delta string
	Time  time.Time
}

// Executor runs one stage to completion. Implementations return *Error
// on failure.
type Executor interface {
	Execute(ctx context.Context, req Request) (*Result, error)
}

// emit sends an event without ever blocking past ctx.
func emit(ctx context.Context, ch chan<- ExecEvent, ev ExecEvent) {
	if ch == nil {
		return
	}
	if ev.Time.IsZero() {
		ev.Time = time.Now()
	}
	select {
	case ch <- ev:
	case <-ctx.Done():
	}
}
