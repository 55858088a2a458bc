package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stewardhq/steward/pkg/models"
)

// LogLister is the read surface catchup needs from the store.
// *store.LogStore implements it.
type LogLister interface {
	List(ctx context.Context, taskID string, filters models.StageLogFilters) ([]*models.StageLog, int, error)
}

// LogCatchup serves catchup from the task log table. The channel name
// encodes the task id and positions are log sequence numbers, so no
// separate event journal is needed: the records themselves are the
// replay source, with any later patches already applied.
type LogCatchup struct {
	logs LogLister
}

// NewLogCatchup creates a CatchupQuerier over the task log table.
func NewLogCatchup(logs LogLister) *LogCatchup {
	return &LogCatchup{logs: logs}
}

// EventsSince returns the task's records after afterSeq, shaped like
// live task:stage_log broadcasts. Channels without persisted history
// (the global tasks channel) return nothing; clients recover state for
// those over REST.
func (c *LogCatchup) EventsSince(ctx context.Context, channel string, afterSeq, limit int) ([]CatchupEvent, error) {
	taskID, ok := ParseTaskChannel(channel)
	if !ok {
		return nil, nil
	}

	records, _, err := c.logs.List(ctx, taskID, models.StageLogFilters{
		AfterSequence: afterSeq,
		Limit:         limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query catchup records: %w", err)
	}

	out := make([]CatchupEvent, 0, len(records))
	for _, lg := range records {
		payload, err := eventMap(EventTaskStageLog, StageLogCreated(lg))
		if err != nil {
			return nil, err
		}
		out = append(out, CatchupEvent{Sequence: lg.Sequence, Payload: payload})
	}
	return out, nil
}

// eventMap round-trips a payload through the wire envelope into a map,
// guaranteeing replayed events are byte-compatible with live ones.
func eventMap(event string, payload any) (map[string]any, error) {
	data, err := encodeEvent(event, payload)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode %s envelope: %w", event, err)
	}
	return m, nil
}
