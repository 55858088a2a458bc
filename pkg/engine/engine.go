// Package engine drives claimed tasks through their stage pipeline:
// workspace setup, stage execution with output compression and
// contract extraction, human gates, circuit breaking, and finalization
// (memory extraction, commit and push, pull request, cleanup). The
// Pool owns the claim loop and hands each claimed task to the Engine.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/events"
	"github.com/stewardhq/steward/pkg/llm"
	"github.com/stewardhq/steward/pkg/models"
)

// Deps bundles everything the engine needs. Broadcaster, Memory,
// Lessons, Notifier and LLM may be nil; the corresponding behavior is
// skipped.
type Deps struct {
	Config      *config.Config
	Stores      Stores
	Executors   Executors
	Workspaces  Workspaces
	Sink        LogEmitter
	Broadcaster events.Broadcaster
	Compressor  Compressor
	Contracts   ContractExtractor
	Memory      MemoryStore
	Lessons     LessonExtractor
	Notifier    Notifier

	// LLM serves routing decisions; stage execution goes through
	// Executors.
	LLM llm.Client
}

// Engine processes one claimed task at a time per worker.
type Engine struct {
	cfg        *config.Config
	stores     Stores
	execs      Executors
	workspaces Workspaces
	sink       LogEmitter
	bc         events.Broadcaster
	compressor Compressor
	contracts  ContractExtractor
	memory     MemoryStore
	lessons    LessonExtractor
	notifier   Notifier
	llm        llm.Client
}

// New creates the engine from its dependency bundle.
func New(deps Deps) *Engine {
	bc := deps.Broadcaster
	if bc == nil {
		bc = events.NopBroadcaster{}
	}
	return &Engine{
		cfg:        deps.Config,
		stores:     deps.Stores,
		execs:      deps.Executors,
		workspaces: deps.Workspaces,
		sink:       deps.Sink,
		bc:         bc,
		compressor: deps.Compressor,
		contracts:  deps.Contracts,
		memory:     deps.Memory,
		lessons:    deps.Lessons,
		notifier:   deps.Notifier,
		llm:        deps.LLM,
	}
}

// broadcastStatus publishes a task status transition on the task
// channel and mirrors it on the global tasks channel.
func (e *Engine) broadcastStatus(taskID string, status models.TaskStatus, reason string) {
	p := events.TaskStatusPayload{
		BasePayload: events.NewBase(taskID),
		Status:      status,
		Reason:      reason,
	}
	e.bc.Broadcast(events.TaskChannel(taskID), events.EventTaskStatusChanged, p)
	e.bc.Broadcast(events.GlobalTasksChannel, events.EventTaskStatusChanged, p)
}

// broadcastStage publishes one stage status transition.
func (e *Engine) broadcastStage(st *models.Stage, status models.StageStatus, errMsg string) {
	e.bc.Broadcast(events.TaskChannel(st.TaskID), events.EventTaskStageUpdate, events.StageUpdatePayload{
		BasePayload:    events.NewBase(st.TaskID),
		StageID:        st.ID,
		StageName:      st.Name,
		Status:         status,
		ExecutionCount: st.ExecutionCount,
		Error:          errMsg,
	})
}

// audit records an engine action. Audit failures are logged, never
// surfaced; the action itself already happened.
func (e *Engine) audit(taskID, action string, detail map[string]any, risk models.RiskLevel) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := e.stores.Audits.Record(ctx, models.AuditEntry{
		TaskID:    taskID,
		Action:    action,
		Detail:    detail,
		RiskLevel: risk,
		Actor:     "engine",
	})
	if err != nil {
		slog.Warn("Audit record failed", "task_id", taskID, "action", action, "error", err)
	}
}
