package events

import (
	"encoding/json"
	"fmt"
)

// Broadcaster delivers a named event to every subscriber of a channel.
// Delivery is best-effort by contract: implementations log failures and
// never surface them to the caller.
//
// Two implementations exist: ConnectionManager fans out to the
// WebSocket clients of this process, and NotifyBridge publishes through
// pg_notify so every pod's listener picks the event up.
type Broadcaster interface {
	Broadcast(channel, event string, payload any)
}

// NopBroadcaster discards every event. Used where broadcasting is
// disabled and in tests.
type NopBroadcaster struct{}

func (NopBroadcaster) Broadcast(string, string, any) {}

// encodeEvent builds the wire envelope: the payload's own JSON object
// with "type" set to the event name. The payload must marshal to a
// JSON object.
func encodeEvent(event string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", event, err)
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to build %s envelope: %w", event, err)
	}
	m["type"] = event

	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s envelope: %w", event, err)
	}
	return data, nil
}
