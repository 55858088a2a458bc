package executor

import (
	"encoding/json"
	"time"

	"github.com/stewardhq/steward/pkg/events"
	"github.com/stewardhq/steward/pkg/models"
)

// EventEmitter is the sink surface the tracker writes through.
// *events.Sink implements it.
type EventEmitter interface {
	EmitCreate(req models.AppendLogRequest, priority events.Priority) string
	EmitUpdate(taskID, logID string, upd models.StageLogUpdate, priority events.Priority)
}

// Tracker consumes an executor's event stream and translates it into
// task log records: turns and tool calls follow the create-then-update
// lifecycle, text deltas ride the transient stream broadcast. One
// tracker serves one stage execution; the whole stream shares the
// stage's correlation id.
type Tracker struct {
	sink EventEmitter
	bc   events.Broadcaster

	taskID        string
	stageID       string
	correlationID string
	executionMode string

	events chan ExecEvent
	done   chan struct{}

	turnLogs  map[int]turnLog
	toolLogs  map[string]toolLog
	streamLog string // log id deltas attach to: the open turn record
}

type turnLog struct {
	id      string
	started time.Time
}

type toolLog struct {
	id      string
	started time.Time
}

// NewTracker starts a tracker. Close the Events channel to detach;
// Done is closed when the stream is fully consumed.
func NewTracker(sink EventEmitter, bc events.Broadcaster, taskID, stageID, correlationID, executionMode string) *Tracker {
	if bc == nil {
		bc = events.NopBroadcaster{}
	}
	t := &Tracker{
		sink:          sink,
		bc:            bc,
		taskID:        taskID,
		stageID:       stageID,
		correlationID: correlationID,
		executionMode: executionMode,
		events:        make(chan ExecEvent, 64),
		done:          make(chan struct{}),
		turnLogs:      make(map[int]turnLog),
		toolLogs:      make(map[string]toolLog),
	}
	go t.run()
	return t
}

// Events is the channel the executor streams into.
func (t *Tracker) Events() chan<- ExecEvent { return t.events }

// Detach closes the stream; pending events are still consumed.
func (t *Tracker) Detach() { close(t.events) }

// Done is closed once every streamed event has been translated.
func (t *Tracker) Done() <-chan struct{} { return t.done }

func (t *Tracker) run() {
	defer close(t.done)
	for ev := range t.events {
		switch ev.Kind {
		case EventTurnStart:
			t.turnStart(ev)
		case EventTurnEnd:
			t.turnEnd(ev)
		case EventBeforeTool:
			t.beforeTool(ev)
		case EventToolUpdate, EventAfterTool:
			t.afterTool(ev)
		case EventStreamDelta:
			t.streamDelta(ev)
		}
	}
	// An executor that failed mid-turn leaves open records; close them.
	for turn, tl := range t.turnLogs {
		t.closeOpen(tl.id, models.LogStatusFailed, sinceMS(tl.started))
		delete(t.turnLogs, turn)
	}
	for id, tl := range t.toolLogs {
		t.closeOpen(tl.id, models.LogStatusFailed, sinceMS(tl.started))
		delete(t.toolLogs, id)
	}
}

func sinceMS(start time.Time) int64 { return time.Since(start).Milliseconds() }

func (t *Tracker) closeOpen(logID string, status models.LogStatus, durationMS int64) {
	t.sink.EmitUpdate(t.taskID, logID, models.StageLogUpdate{
		Status:     &status,
		DurationMS: &durationMS,
	}, events.PriorityNormal)
}

func (t *Tracker) turnStart(e ExecEvent) {
	id := t.sink.EmitCreate(models.AppendLogRequest{
		TaskID:        t.taskID,
		StageID:       t.stageID,
		CorrelationID: t.correlationID,
		EventType:     "llm_turn",
		Source:        models.LogSourceLLM,
		Status:        models.LogStatusRunning,
		ExecutionMode: t.executionMode,
		CommandArgs:   map[string]any{"turn": e.Turn},
	}, events.PriorityNormal)
	t.turnLogs[e.Turn] = turnLog{id: id, started: e.Time}
	t.streamLog = id
}

func (t *Tracker) turnEnd(e ExecEvent) {
	tl, ok := t.turnLogs[e.Turn]
	if !ok {
		return
	}
	delete(t.turnLogs, e.Turn)
	status := models.LogStatusSuccess
	duration := e.Time.Sub(tl.started).Milliseconds()
	t.sink.EmitUpdate(t.taskID, tl.id, models.StageLogUpdate{
		Status:     &status,
		DurationMS: &duration,
	}, events.PriorityNormal)
}

func (t *Tracker) beforeTool(e ExecEvent) {
	if e.Tool == nil {
		return
	}
	var args map[string]any
	if e.Tool.Args != "" {
		_ = json.Unmarshal([]byte(e.Tool.Args), &args)
	}
	id := t.sink.EmitCreate(models.AppendLogRequest{
		TaskID:        t.taskID,
		StageID:       t.stageID,
		CorrelationID: t.correlationID,
		EventType:     "tool_call",
		Source:        models.LogSourceTool,
		Status:        models.LogStatusRunning,
		Command:       e.Tool.Name,
		CommandArgs:   args,
		ExecutionMode: t.executionMode,
	}, events.PriorityNormal)
	t.toolLogs[e.Tool.ID] = toolLog{id: id, started: e.Time}
}

func (t *Tracker) afterTool(e ExecEvent) {
	if e.Tool == nil {
		return
	}
	tl, ok := t.toolLogs[e.Tool.ID]
	if !ok {
		return
	}
	if e.Kind == EventToolUpdate {
		// Progress only: broadcast, keep the record open.
		t.bc.Broadcast(events.TaskChannel(t.taskID), events.EventTaskLogStream, events.LogStreamPayload{
			BasePayload: events.NewBase(t.taskID),
			LogID:       tl.id,
			StageID:     t.stageID,
			Delta:       e.Tool.ResultPreview,
			Turn:        e.Turn,
		})
		return
	}

	delete(t.toolLogs, e.Tool.ID)
	status := models.LogStatusSuccess
	if e.Tool.Status == ToolCallFailed {
		status = models.LogStatusFailed
	}
	result := e.Tool.ResultPreview
	duration := e.Tool.DurationMS
	t.sink.EmitUpdate(t.taskID, tl.id, models.StageLogUpdate{
		Status:     &status,
		Result:     &result,
		DurationMS: &duration,
	}, events.PriorityNormal)
}

func (t *Tracker) streamDelta(e ExecEvent) {
	if t.streamLog == "" || e.Delta == "" {
		return
	}
	t.bc.Broadcast(events.TaskChannel(t.taskID), events.EventTaskLogStream, events.LogStreamPayload{
		BasePayload: events.NewBase(t.taskID),
		LogID:       t.streamLog,
		StageID:     t.stageID,
		Delta:       e.Delta,
		Turn:        e.Turn,
	})
}
