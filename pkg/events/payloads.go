package events

import (
	"time"

	"github.com/stewardhq/steward/pkg/models"
)

// BasePayload carries the fields every broadcast payload shares. The
// event name itself is not part of the payload: the wire envelope adds
// it as "type" (see encodeEvent).
type BasePayload struct {
	TaskID    string `json:"task_id"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// NewBase builds a BasePayload stamped with the current time.
func NewBase(taskID string) BasePayload {
	return BasePayload{
		TaskID:    taskID,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
}

// TaskStatusPayload is the payload for task:status_changed events.
// Published to the task channel and mirrored on the global tasks channel.
type TaskStatusPayload struct {
	BasePayload
	Status models.TaskStatus `json:"status"`
	Reason string            `json:"reason,omitempty"` // failure reason on terminal transitions
}

// StageUpdatePayload is the payload for task:stage_update events.
// One event for every stage status transition, including skips.
type StageUpdatePayload struct {
	BasePayload
	StageID        string             `json:"stage_id"`
	StageName      string             `json:"stage_name"`
	Status         models.StageStatus `json:"status"`
	ExecutionCount int                `json:"execution_count,omitempty"`
	Error          string             `json:"error,omitempty"`
}

// Log record lifecycle phases carried in StageLogPayload.Phase.
const (
	LogPhaseCreated = "created"
	LogPhaseUpdated = "updated"
)

// StageLogPayload is the payload for task:stage_log events, covering
// both phases of a record's lifecycle. Created payloads carry the
// assigned sequence number, which clients track for catchup; updated
// payloads carry only the patched fields and merge by log_id. Request
// and response bodies are deliberately excluded — they can exceed the
// NOTIFY size limit, and clients fetch them over REST on demand.
type StageLogPayload struct {
	BasePayload
	Phase         string           `json:"phase"`
	LogID         string           `json:"log_id"`
	StageID       string           `json:"stage_id,omitempty"`
	CorrelationID string           `json:"correlation_id,omitempty"`
	Sequence      int              `json:"sequence,omitempty"`
	EventType     string           `json:"event_type,omitempty"`
	Source        models.LogSource `json:"source,omitempty"`
	Status        models.LogStatus `json:"status,omitempty"`
	Command       string           `json:"command,omitempty"`
	Summary       string           `json:"summary,omitempty"`
	DurationMS    int64            `json:"duration_ms,omitempty"`
	Truncated     bool             `json:"truncated,omitempty"`
}

// StageLogCreated projects a persisted log record into its broadcast
// payload. Used by the sink after a flush and by catchup, so live and
// replayed events have identical shape.
func StageLogCreated(lg *models.StageLog) StageLogPayload {
	return StageLogPayload{
		BasePayload: BasePayload{
			TaskID:    lg.TaskID,
			Timestamp: lg.CreatedAt.UTC().Format(time.RFC3339Nano),
		},
		Phase:         LogPhaseCreated,
		LogID:         lg.ID,
		StageID:       lg.StageID,
		CorrelationID: lg.CorrelationID,
		Sequence:      lg.Sequence,
		EventType:     lg.EventType,
		Source:        lg.Source,
		Status:        lg.Status,
		Command:       lg.Command,
		Summary:       lg.Summary,
		DurationMS:    lg.DurationMS,
		Truncated:     lg.Truncated,
	}
}

// StageLogUpdated builds the broadcast payload for a patched record.
func StageLogUpdated(taskID, logID string, upd models.StageLogUpdate) StageLogPayload {
	p := StageLogPayload{
		BasePayload: NewBase(taskID),
		Phase:       LogPhaseUpdated,
		LogID:       logID,
	}
	if upd.Status != nil {
		p.Status = *upd.Status
	}
	if upd.Summary != nil {
		p.Summary = *upd.Summary
	}
	if upd.DurationMS != nil {
		p.DurationMS = *upd.DurationMS
	}
	return p
}

// LogStreamPayload is the payload for task:log_stream_update events —
// incremental text for a log record still in flight. Transient: lost
// on disconnect, but the final text arrives in the persisted record.
type LogStreamPayload struct {
	BasePayload
	LogID   string `json:"log_id"`
	StageID string `json:"stage_id,omitempty"`
	Delta   string `json:"delta"`
	Turn    int    `json:"turn,omitempty"`
}

// GateCreatedPayload is the payload for gate:created events.
type GateCreatedPayload struct {
	BasePayload
	GateID         string          `json:"gate_id"`
	StageName      string          `json:"stage_name"`
	GateType       models.GateType `json:"gate_type"`
	Question       string          `json:"question,omitempty"`
	ProposedAction string          `json:"proposed_action,omitempty"`
}

// GateResolvedPayload is the payload for gate:approved, gate:rejected
// and gate:revised events.
type GateResolvedPayload struct {
	BasePayload
	GateID    string            `json:"gate_id"`
	StageName string            `json:"stage_name"`
	Status    models.GateStatus `json:"status"`
	Reviewer  string            `json:"reviewer,omitempty"`
	Comment   string            `json:"comment,omitempty"`
}

// BreakerPayload is the payload for cb:triggered and cb:resolved events.
type BreakerPayload struct {
	BasePayload
	BreakerID   string `json:"breaker_id"`
	Level       int    `json:"level,omitempty"`
	TriggeredBy string `json:"triggered_by,omitempty"`
	Reason      string `json:"reason,omitempty"`
	ResolvedBy  string `json:"resolved_by,omitempty"`
}
