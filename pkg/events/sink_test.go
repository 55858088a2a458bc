package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/models"
)

// fakeLogWriter records what the sink flushes. Sequences are assigned
// per task the way the real store does.
type fakeLogWriter struct {
	mu        sync.Mutex
	batches   [][]models.AppendLogRequest
	updates   []map[string]models.StageLogUpdate
	forgotten []string
	seq       map[string]int

	failAppends   int             // fail this many AppendBatch calls
	failUpdateIDs map[string]bool // log ids whose updates fail
	block         chan struct{}   // when set, AppendBatch waits on it
}

func newFakeLogWriter() *fakeLogWriter {
	return &fakeLogWriter{seq: make(map[string]int)}
}

func (f *fakeLogWriter) AppendBatch(_ context.Context, reqs []models.AppendLogRequest) ([]*models.StageLog, error) {
	if f.block != nil {
		<-f.block
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAppends > 0 {
		f.failAppends--
		return nil, errors.New("append failed")
	}

	f.batches = append(f.batches, reqs)
	out := make([]*models.StageLog, 0, len(reqs))
	for _, req := range reqs {
		f.seq[req.TaskID]++
		out = append(out, &models.StageLog{
			ID:        req.ID,
			TaskID:    req.TaskID,
			StageID:   req.StageID,
			Sequence:  f.seq[req.TaskID],
			EventType: req.EventType,
			Source:    req.Source,
			Status:    req.Status,
			Summary:   req.Summary,
			CreatedAt: time.Now(),
		})
	}
	return out, nil
}

func (f *fakeLogWriter) ApplyUpdates(_ context.Context, updates map[string]models.StageLogUpdate) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	applied := make([]string, 0, len(updates))
	landed := make(map[string]models.StageLogUpdate, len(updates))
	var errs []error
	for logID, upd := range updates {
		if f.failUpdateIDs[logID] {
			errs = append(errs, errors.New("update failed: "+logID))
			continue
		}
		landed[logID] = upd
		applied = append(applied, logID)
	}
	f.updates = append(f.updates, landed)
	return applied, errors.Join(errs...)
}

func (f *fakeLogWriter) ForgetTask(taskID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forgotten = append(f.forgotten, taskID)
}

func (f *fakeLogWriter) appended() []models.AppendLogRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []models.AppendLogRequest
	for _, b := range f.batches {
		all = append(all, b...)
	}
	return all
}

func (f *fakeLogWriter) batchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.batches)
}

func (f *fakeLogWriter) appliedUpdates() []map[string]models.StageLogUpdate {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]models.StageLogUpdate(nil), f.updates...)
}

// recordingBroadcaster captures broadcast events for assertions.
type recordingBroadcaster struct {
	mu     sync.Mutex
	events []recordedEvent
}

type recordedEvent struct {
	channel string
	event   string
	payload any
}

func (b *recordingBroadcaster) Broadcast(channel, event string, payload any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, recordedEvent{channel, event, payload})
}

func (b *recordingBroadcaster) recorded() []recordedEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]recordedEvent(nil), b.events...)
}

func TestSinkEmitCreateReturnsID(t *testing.T) {
	writer := newFakeLogWriter()
	sink := NewSink(writer, nil, SinkConfig{})

	id := sink.EmitCreate(models.AppendLogRequest{TaskID: "task-1", EventType: "stage_started"}, PriorityNormal)
	assert.NotEmpty(t, id)

	require.NoError(t, sink.Drain(2*time.Second))

	appended := writer.appended()
	require.Len(t, appended, 1)
	assert.Equal(t, id, appended[0].ID)
	assert.Equal(t, "task-1", appended[0].TaskID)
}

func TestSinkKeepsCallerAssignedID(t *testing.T) {
	writer := newFakeLogWriter()
	sink := NewSink(writer, nil, SinkConfig{})

	id := sink.EmitCreate(models.AppendLogRequest{ID: "fixed-id", TaskID: "task-1", EventType: "x"}, PriorityHigh)
	assert.Equal(t, "fixed-id", id)

	require.NoError(t, sink.Drain(2*time.Second))
	appended := writer.appended()
	require.Len(t, appended, 1)
	assert.Equal(t, "fixed-id", appended[0].ID)
}

func TestSinkFlushesWhenBatchFills(t *testing.T) {
	writer := newFakeLogWriter()
	sink := NewSink(writer, nil, SinkConfig{BatchSize: 2, FlushInterval: time.Minute})
	defer sink.Drain(2 * time.Second)

	sink.EmitCreate(models.AppendLogRequest{TaskID: "task-1", EventType: "a"}, PriorityNormal)
	sink.EmitCreate(models.AppendLogRequest{TaskID: "task-1", EventType: "b"}, PriorityNormal)

	// The interval is a minute out, so only the full batch can trigger
	// this flush.
	require.Eventually(t, func() bool { return len(writer.appended()) == 2 },
		2*time.Second, 10*time.Millisecond)
}

func TestSinkFlushesOnInterval(t *testing.T) {
	writer := newFakeLogWriter()
	sink := NewSink(writer, nil, SinkConfig{BatchSize: 100, FlushInterval: 20 * time.Millisecond})
	defer sink.Drain(2 * time.Second)

	sink.EmitCreate(models.AppendLogRequest{TaskID: "task-1", EventType: "a"}, PriorityNormal)

	require.Eventually(t, func() bool { return len(writer.appended()) == 1 },
		2*time.Second, 10*time.Millisecond)
}

func TestSinkGroupsCreatesByTask(t *testing.T) {
	writer := newFakeLogWriter()
	sink := NewSink(writer, nil, SinkConfig{FlushInterval: time.Minute})

	sink.EmitCreate(models.AppendLogRequest{TaskID: "task-1", EventType: "a"}, PriorityNormal)
	sink.EmitCreate(models.AppendLogRequest{TaskID: "task-2", EventType: "b"}, PriorityNormal)
	sink.EmitCreate(models.AppendLogRequest{TaskID: "task-1", EventType: "c"}, PriorityNormal)

	require.NoError(t, sink.Drain(2*time.Second))

	// One single-task batch per task, emit order preserved within each.
	require.Equal(t, 2, writer.batchCount())
	appended := writer.appended()
	var task1 []string
	for _, req := range appended {
		if req.TaskID == "task-1" {
			task1 = append(task1, req.EventType)
		}
	}
	assert.Equal(t, []string{"a", "c"}, task1)
}

func TestSinkUpdateLandsAfterCreate(t *testing.T) {
	writer := newFakeLogWriter()
	sink := NewSink(writer, nil, SinkConfig{FlushInterval: time.Minute})

	id := sink.EmitCreate(models.AppendLogRequest{TaskID: "task-1", EventType: "llm"}, PriorityNormal)
	status := models.LogStatusSuccess
	sink.EmitUpdate("task-1", id, models.StageLogUpdate{Status: &status}, PriorityNormal)

	require.NoError(t, sink.Drain(2*time.Second))

	require.Len(t, writer.appended(), 1)
	updates := writer.appliedUpdates()
	require.Len(t, updates, 1)
	upd, ok := updates[0][id]
	require.True(t, ok)
	assert.Equal(t, models.LogStatusSuccess, *upd.Status)
}

func TestSinkMergesUpdatesForSameRecord(t *testing.T) {
	writer := newFakeLogWriter()
	sink := NewSink(writer, nil, SinkConfig{FlushInterval: time.Minute})

	running := models.LogStatusRunning
	success := models.LogStatusSuccess
	summary := "done"
	sink.EmitUpdate("task-1", "log-1", models.StageLogUpdate{Status: &running}, PriorityNormal)
	sink.EmitUpdate("task-1", "log-1", models.StageLogUpdate{Status: &success, Summary: &summary}, PriorityNormal)

	require.NoError(t, sink.Drain(2*time.Second))

	updates := writer.appliedUpdates()
	require.Len(t, updates, 1)
	upd := updates[0]["log-1"]
	assert.Equal(t, models.LogStatusSuccess, *upd.Status, "later status wins")
	assert.Equal(t, "done", *upd.Summary)
}

func TestSinkDropsLowPriorityWhenFull(t *testing.T) {
	writer := newFakeLogWriter()
	writer.block = make(chan struct{})
	sink := NewSink(writer, nil, SinkConfig{QueueSize: 1, BatchSize: 1, FlushInterval: time.Minute})

	// First op reaches the worker and blocks inside AppendBatch,
	// leaving the queue empty.
	sink.EmitCreate(models.AppendLogRequest{TaskID: "task-1", EventType: "a"}, PriorityNormal)
	require.Eventually(t, func() bool { return sink.QueueDepth() == 0 },
		2*time.Second, time.Millisecond)

	// Second fills the queue; third has nowhere to go.
	sink.EmitCreate(models.AppendLogRequest{TaskID: "task-1", EventType: "b"}, PriorityLow)
	sink.EmitCreate(models.AppendLogRequest{TaskID: "task-1", EventType: "c"}, PriorityLow)
	assert.Equal(t, int64(1), sink.Dropped())

	close(writer.block)
	require.NoError(t, sink.Drain(2*time.Second))

	var types []string
	for _, req := range writer.appended() {
		types = append(types, req.EventType)
	}
	assert.Equal(t, []string{"a", "b"}, types)
}

func TestSinkDrainFlushesQueued(t *testing.T) {
	writer := newFakeLogWriter()
	sink := NewSink(writer, nil, SinkConfig{BatchSize: 100, FlushInterval: time.Minute})

	for i := 0; i < 3; i++ {
		sink.EmitCreate(models.AppendLogRequest{TaskID: "task-1", EventType: "e"}, PriorityNormal)
	}

	require.NoError(t, sink.Drain(2*time.Second))
	assert.Len(t, writer.appended(), 3)

	// Drain is idempotent.
	assert.NoError(t, sink.Drain(time.Second))
}

func TestSinkSurvivesWriteFailure(t *testing.T) {
	writer := newFakeLogWriter()
	writer.failAppends = 1
	sink := NewSink(writer, nil, SinkConfig{BatchSize: 1, FlushInterval: time.Minute})

	sink.EmitCreate(models.AppendLogRequest{TaskID: "task-1", EventType: "lost"}, PriorityNormal)
	sink.EmitCreate(models.AppendLogRequest{TaskID: "task-1", EventType: "kept"}, PriorityNormal)

	require.NoError(t, sink.Drain(2*time.Second))

	appended := writer.appended()
	require.Len(t, appended, 1)
	assert.Equal(t, "kept", appended[0].EventType)
}

func TestSinkBroadcastsPersistedRecords(t *testing.T) {
	writer := newFakeLogWriter()
	bc := &recordingBroadcaster{}
	sink := NewSink(writer, bc, SinkConfig{FlushInterval: time.Minute})

	id := sink.EmitCreate(models.AppendLogRequest{TaskID: "task-1", EventType: "tool_call"}, PriorityNormal)
	status := models.LogStatusSuccess
	sink.EmitUpdate("task-1", id, models.StageLogUpdate{Status: &status}, PriorityNormal)

	require.NoError(t, sink.Drain(2*time.Second))

	events := bc.recorded()
	require.Len(t, events, 2)

	assert.Equal(t, TaskChannel("task-1"), events[0].channel)
	assert.Equal(t, EventTaskStageLog, events[0].event)
	created, ok := events[0].payload.(StageLogPayload)
	require.True(t, ok)
	assert.Equal(t, LogPhaseCreated, created.Phase)
	assert.Equal(t, id, created.LogID)
	assert.Equal(t, 1, created.Sequence, "broadcast carries the assigned sequence")

	updated, ok := events[1].payload.(StageLogPayload)
	require.True(t, ok)
	assert.Equal(t, LogPhaseUpdated, updated.Phase)
	assert.Equal(t, id, updated.LogID)
	assert.Equal(t, models.LogStatusSuccess, updated.Status)
}

func TestSinkBroadcastsUpdatesPastFailedSibling(t *testing.T) {
	writer := newFakeLogWriter()
	writer.failUpdateIDs = map[string]bool{"log-bad": true}
	bc := &recordingBroadcaster{}
	sink := NewSink(writer, bc, SinkConfig{FlushInterval: time.Minute})

	status := models.LogStatusSuccess
	sink.EmitUpdate("task-1", "log-bad", models.StageLogUpdate{Status: &status}, PriorityNormal)
	sink.EmitUpdate("task-1", "log-ok", models.StageLogUpdate{Status: &status}, PriorityNormal)

	require.NoError(t, sink.Drain(2*time.Second))

	// The failed record drops alone; its sibling still persists and is
	// broadcast.
	updates := writer.appliedUpdates()
	require.Len(t, updates, 1)
	_, ok := updates[0]["log-ok"]
	assert.True(t, ok)
	_, ok = updates[0]["log-bad"]
	assert.False(t, ok)

	events := bc.recorded()
	require.Len(t, events, 1)
	payload, ok := events[0].payload.(StageLogPayload)
	require.True(t, ok)
	assert.Equal(t, "log-ok", payload.LogID)
	assert.Equal(t, LogPhaseUpdated, payload.Phase)
}

func TestSinkForgetTask(t *testing.T) {
	writer := newFakeLogWriter()
	sink := NewSink(writer, nil, SinkConfig{})
	defer sink.Drain(time.Second)

	sink.ForgetTask("task-9")
	assert.Equal(t, []string{"task-9"}, writer.forgotten)
}

func TestSinkEmitAfterDrainIsDropped(t *testing.T) {
	writer := newFakeLogWriter()
	sink := NewSink(writer, nil, SinkConfig{})
	require.NoError(t, sink.Drain(time.Second))

	// Must not block or panic.
	sink.EmitCreate(models.AppendLogRequest{TaskID: "task-1", EventType: "late"}, PriorityHigh)
	assert.Empty(t, writer.appended())
}
