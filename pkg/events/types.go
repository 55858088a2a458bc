// Package events provides the engine's event plane: asynchronous batched
// persistence of task log records (Sink) and best-effort broadcast to
// WebSocket subscribers, with PostgreSQL NOTIFY/LISTEN for cross-pod
// distribution.
//
// Two delivery modes exist, and clients must treat them differently:
//
// PERSISTED — task:stage_log:
//
//	Every record appended through the Sink lands in the task log table
//	with a per-task contiguous sequence number, and a copy is broadcast
//	on the task's channel. A reconnecting client replays missed records
//	with a catchup request carrying the last sequence it has seen; the
//	catchup source is the log table itself, so nothing persisted is ever
//	lost to a disconnect.
//
// TRANSIENT — everything else:
//
//	Status changes, gate lifecycle and circuit-breaker events are
//	broadcast-only. A client that missed them reloads current state over
//	REST (the task row is always authoritative); there is no replay.
//
// Long-running records (an LLM call, a tool execution) follow a
// create-then-update lifecycle: the record is first broadcast with
// status "running" and later patched to a terminal status. Both halves
// flow through the same Sink queue, so the update can never overtake
// its create. Live token deltas ride task:log_stream_update, which is
// transient; the final text always arrives in the persisted record.
package events

// Broadcast event names. The wire envelope carries the name in its
// "type" field; see payloads.go for the per-event payload shapes.
const (
	// Task lifecycle, also mirrored on the global channel.
	EventTaskStatusChanged = "task:status_changed"

	// Stage lifecycle: one event for every stage status transition.
	EventTaskStageUpdate = "task:stage_update"

	// Persisted log records (create and update both use this name).
	EventTaskStageLog = "task:stage_log"

	// Streaming deltas for a log record still in flight. Transient.
	EventTaskLogStream = "task:log_stream_update"
)

// Human gate lifecycle events.
const (
	EventGateCreated  = "gate:created"
	EventGateApproved = "gate:approved"
	EventGateRejected = "gate:rejected"
	EventGateRevised  = "gate:revised"
)

// Circuit breaker events.
const (
	EventBreakerTriggered = "cb:triggered"
	EventBreakerResolved  = "cb:resolved"
)

// GlobalTasksChannel carries task-level status events for every task.
// The task list page subscribes here instead of per-task channels.
const GlobalTasksChannel = "tasks"

// taskChannelPrefix is the namespace for per-task channels.
const taskChannelPrefix = "task:"

// TaskChannel returns the channel name for one task's events.
// Format: "task:{task_id}".
func TaskChannel(taskID string) string {
	return taskChannelPrefix + taskID
}

// ParseTaskChannel extracts the task id from a per-task channel name.
// Returns ok=false for any other channel (including the global one).
func ParseTaskChannel(channel string) (string, bool) {
	if len(channel) <= len(taskChannelPrefix) || channel[:len(taskChannelPrefix)] != taskChannelPrefix {
		return "", false
	}
	return channel[len(taskChannelPrefix):], true
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action        string `json:"action"`                   // "subscribe", "unsubscribe", "catchup", "ping"
	Channel       string `json:"channel,omitempty"`        // channel name (e.g. "task:abc-123")
	AfterSequence *int   `json:"after_sequence,omitempty"` // last log sequence seen, for catchup
}

// Priority controls Sink backpressure behavior. High and normal emits
// block the caller when the queue is full; low emits are dropped.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)
