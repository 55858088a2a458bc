package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/models"
)

// fakeLogLister implements LogLister over a canned record slice.
type fakeLogLister struct {
	records []*models.StageLog
	err     error

	gotTaskID  string
	gotFilters models.StageLogFilters
}

func (f *fakeLogLister) List(_ context.Context, taskID string, filters models.StageLogFilters) ([]*models.StageLog, int, error) {
	f.gotTaskID = taskID
	f.gotFilters = filters
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.records, len(f.records), nil
}

func TestLogCatchupEventsSince(t *testing.T) {
	lister := &fakeLogLister{
		records: []*models.StageLog{
			{ID: "log-5", TaskID: "task-1", Sequence: 5, EventType: "llm_interaction", Status: models.LogStatusSuccess, CreatedAt: time.Now()},
			{ID: "log-6", TaskID: "task-1", Sequence: 6, EventType: "tool_call", Status: models.LogStatusRunning, CreatedAt: time.Now()},
		},
	}
	catchup := NewLogCatchup(lister)

	events, err := catchup.EventsSince(context.Background(), TaskChannel("task-1"), 4, 50)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "task-1", lister.gotTaskID)
	assert.Equal(t, 4, lister.gotFilters.AfterSequence)
	assert.Equal(t, 50, lister.gotFilters.Limit)

	assert.Equal(t, 5, events[0].Sequence)
	assert.Equal(t, EventTaskStageLog, events[0].Payload["type"])
	assert.Equal(t, LogPhaseCreated, events[0].Payload["phase"])
	assert.Equal(t, "log-5", events[0].Payload["log_id"])
	assert.Equal(t, float64(5), events[0].Payload["sequence"])

	assert.Equal(t, 6, events[1].Sequence)
	assert.Equal(t, "log-6", events[1].Payload["log_id"])
}

func TestLogCatchupIgnoresNonTaskChannels(t *testing.T) {
	lister := &fakeLogLister{}
	catchup := NewLogCatchup(lister)

	events, err := catchup.EventsSince(context.Background(), GlobalTasksChannel, 0, 50)
	require.NoError(t, err)
	assert.Nil(t, events)
	assert.Empty(t, lister.gotTaskID, "the store must not be queried for global channels")
}

func TestLogCatchupWrapsListErrors(t *testing.T) {
	lister := &fakeLogLister{err: errors.New("connection refused")}
	catchup := NewLogCatchup(lister)

	_, err := catchup.EventsSince(context.Background(), TaskChannel("task-1"), 0, 50)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catchup")
}
