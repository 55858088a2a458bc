package executor

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/events"
	"github.com/stewardhq/steward/pkg/models"
)

type recordedUpdate struct {
	logID string
	upd   models.StageLogUpdate
}

type fakeEmitter struct {
	mu      sync.Mutex
	creates []models.AppendLogRequest
	updates []recordedUpdate
}

func (f *fakeEmitter) EmitCreate(req models.AppendLogRequest, _ events.Priority) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	f.creates = append(f.creates, req)
	return req.ID
}

func (f *fakeEmitter) EmitUpdate(_, logID string, upd models.StageLogUpdate, _ events.Priority) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, recordedUpdate{logID: logID, upd: upd})
}

type recordedBroadcast struct {
	channel string
	event   string
	payload any
}

type recordingBroadcaster struct {
	mu   sync.Mutex
	sent []recordedBroadcast
}

func (b *recordingBroadcaster) Broadcast(channel, event string, payload any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, recordedBroadcast{channel, event, payload})
}

func TestTrackerTurnLifecycle(t *testing.T) {
	emitter := &fakeEmitter{}
	tr := NewTracker(emitter, nil, "task-1", "stage-1", "corr-1", "in_process")

	started := time.Now()
	tr.Events() <- ExecEvent{Kind: EventTurnStart, Turn: 1, Time: started}
	tr.Events() <- ExecEvent{Kind: EventTurnEnd, Turn: 1, Time: started.Add(120 * time.Millisecond)}
	tr.Detach()
	<-tr.Done()

	require.Len(t, emitter.creates, 1)
	create := emitter.creates[0]
	assert.Equal(t, "llm_turn", create.EventType)
	assert.Equal(t, "task-1", create.TaskID)
	assert.Equal(t, "stage-1", create.StageID)
	assert.Equal(t, "corr-1", create.CorrelationID)
	assert.Equal(t, models.LogStatusRunning, create.Status)

	require.Len(t, emitter.updates, 1)
	upd := emitter.updates[0]
	assert.Equal(t, create.ID, upd.logID)
	require.NotNil(t, upd.upd.Status)
	assert.Equal(t, models.LogStatusSuccess, *upd.upd.Status)
	require.NotNil(t, upd.upd.DurationMS)
	assert.Equal(t, int64(120), *upd.upd.DurationMS)
}

func TestTrackerToolLifecycle(t *testing.T) {
	emitter := &fakeEmitter{}
	tr := NewTracker(emitter, nil, "task-1", "stage-1", "corr-1", "in_process")

	call := &ToolCall{ID: "c1", Name: "bash", Args: `{"command":"ls"}`}
	tr.Events() <- ExecEvent{Kind: EventBeforeTool, Turn: 1, Tool: call, Time: time.Now()}
	done := *call
	done.Status = ToolCallFailed
	done.DurationMS = 40
	done.ResultPreview = "exit_code: 1"
	tr.Events() <- ExecEvent{Kind: EventAfterTool, Turn: 1, Tool: &done}
	tr.Detach()
	<-tr.Done()

	require.Len(t, emitter.creates, 1)
	create := emitter.creates[0]
	assert.Equal(t, "tool_call", create.EventType)
	assert.Equal(t, "bash", create.Command)
	assert.Equal(t, map[string]any{"command": "ls"}, create.CommandArgs)

	require.Len(t, emitter.updates, 1)
	upd := emitter.updates[0].upd
	assert.Equal(t, models.LogStatusFailed, *upd.Status)
	assert.Equal(t, "exit_code: 1", *upd.Result)
	assert.Equal(t, int64(40), *upd.DurationMS)
}

func TestTrackerStreamDeltaBroadcast(t *testing.T) {
	emitter := &fakeEmitter{}
	bc := &recordingBroadcaster{}
	tr := NewTracker(emitter, bc, "task-1", "stage-1", "corr-1", "in_process")

	tr.Events() <- ExecEvent{Kind: EventTurnStart, Turn: 1, Time: time.Now()}
	tr.Events() <- ExecEvent{Kind: EventStreamDelta, Turn: 1, Delta: "hel"}
	tr.Events() <- ExecEvent{Kind: EventStreamDelta, Turn: 1, Delta: "lo"}
	tr.Detach()
	<-tr.Done()

	require.Len(t, bc.sent, 2)
	assert.Equal(t, events.TaskChannel("task-1"), bc.sent[0].channel)
	assert.Equal(t, events.EventTaskLogStream, bc.sent[0].event)
	payload := bc.sent[0].payload.(events.LogStreamPayload)
	assert.Equal(t, emitter.creates[0].ID, payload.LogID)
	assert.Equal(t, "hel", payload.Delta)
}

func TestTrackerToolUpdateKeepsRecordOpen(t *testing.T) {
	emitter := &fakeEmitter{}
	bc := &recordingBroadcaster{}
	tr := NewTracker(emitter, bc, "task-1", "stage-1", "corr-1", "sandboxed")

	call := &ToolCall{ID: "c1", Name: "bash", Args: `{}`}
	tr.Events() <- ExecEvent{Kind: EventBeforeTool, Turn: 1, Tool: call, Time: time.Now()}
	progress := *call
	progress.ResultPreview = "compiling..."
	tr.Events() <- ExecEvent{Kind: EventToolUpdate, Turn: 1, Tool: &progress}
	tr.Detach()
	<-tr.Done()

	// Progress broadcast, then the open record closed as failed at detach.
	require.Len(t, bc.sent, 1)
	assert.Equal(t, "compiling...", bc.sent[0].payload.(events.LogStreamPayload).Delta)
	require.Len(t, emitter.updates, 1)
	assert.Equal(t, models.LogStatusFailed, *emitter.updates[0].upd.Status)
}

func TestTrackerClosesOpenRecordsOnDetach(t *testing.T) {
	emitter := &fakeEmitter{}
	tr := NewTracker(emitter, nil, "task-1", "stage-1", "corr-1", "in_process")

	tr.Events() <- ExecEvent{Kind: EventTurnStart, Turn: 1, Time: time.Now()}
	tr.Detach()
	<-tr.Done()

	require.Len(t, emitter.updates, 1)
	assert.Equal(t, models.LogStatusFailed, *emitter.updates[0].upd.Status)
}
