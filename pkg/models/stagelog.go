package models

import (
	"time"
)

// LogSource identifies what produced a stage log record.
type LogSource string

const (
	LogSourceSystem LogSource = "system"
	LogSourceLLM    LogSource = "llm"
	LogSourceTool   LogSource = "tool"
)

// LogStatus is the state of the operation a log record describes.
type LogStatus string

const (
	LogStatusRunning   LogStatus = "running"
	LogStatusSuccess   LogStatus = "success"
	LogStatusFailed    LogStatus = "failed"
	LogStatusCancelled LogStatus = "cancelled"
)

// MaxLogFieldBytes caps request/response/result fields; longer values
// are cut and the record's Truncated flag is set.
const MaxLogFieldBytes = 50 * 1024

// StageLog is one append-only event record of a task. Sequence numbers
// are contiguous per task starting at 1; the canonical read order is
// (sequence, created_at, id) ascending.
type StageLog struct {
	ID            string         `json:"id"`
	TaskID        string         `json:"task_id"`
	StageID       string         `json:"stage_id,omitempty"`
	CorrelationID string         `json:"correlation_id,omitempty"`
	Sequence      int            `json:"sequence"`
	EventType     string         `json:"event_type"`
	Source        LogSource      `json:"source"`
	Status        LogStatus      `json:"status"`
	Request       string         `json:"request,omitempty"`
	Response      string         `json:"response,omitempty"`
	Command       string         `json:"command,omitempty"`
	CommandArgs   map[string]any `json:"command_args,omitempty"`
	Workspace     string         `json:"workspace,omitempty"`
	ExecutionMode string         `json:"execution_mode,omitempty"`
	DurationMS    int64          `json:"duration_ms,omitempty"`
	Result        string         `json:"result,omitempty"`
	Summary       string         `json:"summary,omitempty"`
	Truncated     bool           `json:"truncated"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     *time.Time     `json:"updated_at,omitempty"`
}

// AppendLogRequest contains fields for appending a stage log record.
// ID may be pre-assigned by the caller (the event sink synthesizes ids
// so updates can reference records not yet written).
type AppendLogRequest struct {
	ID            string         `json:"id,omitempty"`
	TaskID        string         `json:"task_id"`
	StageID       string         `json:"stage_id,omitempty"`
	CorrelationID string         `json:"correlation_id,omitempty"`
	EventType     string         `json:"event_type"`
	Source        LogSource      `json:"source"`
	Status        LogStatus      `json:"status"`
	Request       string         `json:"request,omitempty"`
	Response      string         `json:"response,omitempty"`
	Command       string         `json:"command,omitempty"`
	CommandArgs   map[string]any `json:"command_args,omitempty"`
	Workspace     string         `json:"workspace,omitempty"`
	ExecutionMode string         `json:"execution_mode,omitempty"`
	DurationMS    int64          `json:"duration_ms,omitempty"`
	Result        string         `json:"result,omitempty"`
	Summary       string         `json:"summary,omitempty"`
}

// StageLogUpdate is a partial update applied to an existing log record.
// Nil fields are left untouched.
type StageLogUpdate struct {
	Status     *LogStatus `json:"status,omitempty"`
	Response   *string    `json:"response,omitempty"`
	Result     *string    `json:"result,omitempty"`
	Summary    *string    `json:"summary,omitempty"`
	DurationMS *int64     `json:"duration_ms,omitempty"`
}

// StageLogFilters contains filtering options for listing stage logs.
type StageLogFilters struct {
	StageID       string `json:"stage_id,omitempty"`
	EventType     string `json:"event_type,omitempty"`
	AfterSequence int    `json:"after_sequence,omitempty"`
	Limit         int    `json:"limit,omitempty"`
	Offset        int    `json:"offset,omitempty"`
}
