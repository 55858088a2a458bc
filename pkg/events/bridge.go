package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// notifyLimit is the largest payload the bridge will hand to pg_notify.
// PostgreSQL rejects NOTIFY payloads of 8000 bytes or more; staying
// under leaves headroom for the envelope fields.
const notifyLimit = 7900

// notifyTimeout bounds a single pg_notify round trip.
const notifyTimeout = 5 * time.Second

// NotifyBridge broadcasts events through PostgreSQL NOTIFY so that
// every pod's NotifyListener receives them, including this pod's own.
// Nothing is persisted here: the durable record of a task lives in the
// task log table, and catchup replays from it.
type NotifyBridge struct {
	db *sql.DB
}

// NewNotifyBridge creates a Broadcaster over pg_notify.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewNotifyBridge(db *sql.DB) *NotifyBridge {
	return &NotifyBridge{db: db}
}

// Broadcast publishes one event to a channel. Failures are logged and
// swallowed.
func (b *NotifyBridge) Broadcast(channel, event string, payload any) {
	data, err := encodeEvent(event, payload)
	if err != nil {
		slog.Warn("Failed to encode broadcast event",
			"channel", channel, "event", event, "error", err)
		return
	}

	notifyPayload, err := fitNotifyPayload(data)
	if err != nil {
		slog.Warn("Failed to fit broadcast event into NOTIFY limit",
			"channel", channel, "event", event, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if _, err := b.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		slog.Warn("Failed to publish broadcast event",
			"channel", channel, "event", event, "error", err)
	}
}

// fitNotifyPayload returns the payload string as-is when it fits the
// NOTIFY limit, otherwise a minimal envelope with only routing fields.
// A client receiving a truncated task:stage_log event fetches the full
// record over REST using the carried sequence.
func fitNotifyPayload(data []byte) (string, error) {
	if len(data) <= notifyLimit {
		return string(data), nil
	}

	var routing struct {
		Type     string `json:"type"`
		TaskID   string `json:"task_id"`
		LogID    string `json:"log_id"`
		Sequence *int   `json:"sequence"`
	}
	if err := json.Unmarshal(data, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	envelope := map[string]any{
		"type":      routing.Type,
		"task_id":   routing.TaskID,
		"truncated": true,
	}
	if routing.LogID != "" {
		envelope["log_id"] = routing.LogID
	}
	if routing.Sequence != nil {
		envelope["sequence"] = *routing.Sequence
	}

	out, err := json.Marshal(envelope)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncation envelope: %w", err)
	}
	return string(out), nil
}
