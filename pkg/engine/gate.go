package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/stewardhq/steward/pkg/events"
	"github.com/stewardhq/steward/pkg/models"
)

type gateOutcomeKind string

const (
	gateApproved  gateOutcomeKind = "approved"
	gateRejected  gateOutcomeKind = "rejected"
	gateRevised   gateOutcomeKind = "revised"
	gateTimedOut  gateOutcomeKind = "timeout"
	gateCancelled gateOutcomeKind = "cancelled"
	gateShutdown  gateOutcomeKind = "shutdown"
)

type gateOutcome struct {
	kind gateOutcomeKind
	gate *models.Gate
}

// gatePhase opens one gate for a completed stage and maps its outcome.
// A non-nil rejection context tells the caller to re-execute the stage;
// (nil, nil) means continue past the gate.
func (r *taskRun) gatePhase(ctx context.Context, st *models.Stage, gateType models.GateType, dynamic bool, attempts *int, maxRetries int) (*models.GateRejectionContext, error) {
	e := r.e

	g, err := e.stores.Gates.Create(ctx, models.CreateGateRequest{
		TaskID:     r.task.ID,
		StageName:  st.Name,
		AgentRole:  st.AgentRole,
		GateType:   gateType,
		RetryCount: *attempts,
		IsDynamic:  dynamic,
	})
	if err != nil {
		return nil, failTaskf("gate creation for stage %q failed: %v", st.Name, err)
	}
	r.broadcastGateCreated(g)
	e.audit(r.task.ID, "gate_created", map[string]any{
		"gate_id":   g.ID,
		"stage":     st.Name,
		"gate_type": string(gateType),
		"dynamic":   dynamic,
	}, models.RiskMedium)

	out := r.waitForGate(ctx, st, g)
	switch out.kind {
	case gateApproved:
		return nil, nil

	case gateRevised:
		r.recordRejectionLesson(ctx, st, out.gate)
		*attempts++
		return &models.GateRejectionContext{
			Comment:        out.gate.Comment,
			RevisedContent: out.gate.RevisedContent,
			Retry:          fmt.Sprintf("%d/%d", *attempts, maxRetries),
		}, nil

	case gateRejected:
		r.recordRejectionLesson(ctx, st, out.gate)
		if *attempts < maxRetries {
			*attempts++
			return &models.GateRejectionContext{
				Comment: out.gate.Comment,
				Retry:   fmt.Sprintf("%d/%d", *attempts, maxRetries),
			}, nil
		}
		return nil, failTaskf("stage %q rejected by reviewer after %d retries: %s",
			st.Name, maxRetries, out.gate.Comment)

	case gateTimedOut:
		return nil, failTaskf("gate for stage %q timed out waiting for review", st.Name)

	case gateCancelled:
		return nil, errCancelled

	default:
		return nil, errShutdown
	}
}

// waitForGate polls one pending gate to a terminal condition. Poll
// errors are tolerated; the next tick retries. All wait events share
// one correlation id.
func (r *taskRun) waitForGate(ctx context.Context, st *models.Stage, g *models.Gate) gateOutcome {
	e := r.e
	correlationID := uuid.NewString()
	r.emitGateEvent(st, correlationID, "gate_wait_started",
		fmt.Sprintf("waiting for %s review of stage %s", g.GateType, g.StageName))

	interval := e.cfg.Worker.GatePollInterval()
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	deadline := time.Now().Add(e.cfg.Worker.GateMaxWait())
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.emitGateEvent(st, correlationID, "gate_wait_aborted", "engine shutting down")
			return gateOutcome{kind: gateShutdown, gate: g}
		case <-ticker.C:
		}

		if r.cancelled(ctx) {
			r.emitGateEvent(st, correlationID, "gate_wait_cancelled", "task cancelled")
			return gateOutcome{kind: gateCancelled, gate: g}
		}

		cur, err := e.stores.Gates.Get(ctx, g.ID)
		if err != nil {
			slog.Warn("Gate poll failed", "task_id", r.task.ID, "gate_id", g.ID, "error", err)
		} else if cur.Status != models.GateStatusPending {
			r.emitGateEvent(st, correlationID, "gate_wait_finished", "gate "+string(cur.Status))
			r.broadcastResolved(cur)
			switch cur.Status {
			case models.GateStatusApproved:
				return gateOutcome{kind: gateApproved, gate: cur}
			case models.GateStatusRevised:
				return gateOutcome{kind: gateRevised, gate: cur}
			default:
				return gateOutcome{kind: gateRejected, gate: cur}
			}
		}

		if time.Now().After(deadline) {
			r.emitGateEvent(st, correlationID, "gate_wait_timeout", "no review within the gate wait bound")
			return gateOutcome{kind: gateTimedOut, gate: g}
		}
	}
}

func (r *taskRun) emitGateEvent(st *models.Stage, correlationID, eventType, summary string) {
	if r.e.sink == nil {
		return
	}
	r.e.sink.EmitCreate(models.AppendLogRequest{
		TaskID:        r.task.ID,
		StageID:       st.ID,
		CorrelationID: correlationID,
		EventType:     eventType,
		Source:        models.LogSourceSystem,
		Status:        models.LogStatusSuccess,
		Summary:       summary,
	}, events.PriorityNormal)
}

func (r *taskRun) broadcastGateCreated(g *models.Gate) {
	r.e.bc.Broadcast(events.TaskChannel(r.task.ID), events.EventGateCreated, events.GateCreatedPayload{
		BasePayload: events.NewBase(r.task.ID),
		GateID:      g.ID,
		StageName:   g.StageName,
		GateType:    g.GateType,
	})
}

func (r *taskRun) broadcastResolved(g *models.Gate) {
	var event string
	switch g.Status {
	case models.GateStatusApproved:
		event = events.EventGateApproved
	case models.GateStatusRevised:
		event = events.EventGateRevised
	default:
		event = events.EventGateRejected
	}
	r.e.bc.Broadcast(events.TaskChannel(r.task.ID), event, events.GateResolvedPayload{
		BasePayload: events.NewBase(r.task.ID),
		GateID:      g.ID,
		StageName:   g.StageName,
		Status:      g.Status,
		Reviewer:    g.Reviewer,
		Comment:     g.Comment,
	})
}

// recordRejectionLesson turns a reviewer comment into a project memory
// entry and a skill feedback row. Best-effort on both sides.
func (r *taskRun) recordRejectionLesson(ctx context.Context, st *models.Stage, g *models.Gate) {
	if g == nil || g.Comment == "" {
		return
	}
	e := r.e

	lesson := models.MemoryEntry{
		Content:    g.Comment,
		Confidence: 0.7,
		Tags:       []string{"gate-rejection", st.Name},
	}
	if e.lessons != nil {
		lesson = e.lessons.RejectionLesson(ctx, r.task, st.Name, g.Comment)
	}

	if e.memory != nil && r.task.ProjectID != "" {
		if err := e.memory.Append(r.task.ProjectID, models.BucketIssues, lesson); err != nil {
			slog.Warn("Rejection lesson memory write failed", "task_id", r.task.ID, "error", err)
		}
	}
	if e.stores.Skills != nil {
		_, err := e.stores.Skills.Record(ctx, models.SkillFeedbackEntry{
			AgentRole: st.AgentRole,
			TaskID:    r.task.ID,
			GateID:    g.ID,
			Comment:   g.Comment,
			Lesson:    lesson.Content,
		})
		if err != nil {
			slog.Warn("Skill feedback write failed", "task_id", r.task.ID, "error", err)
		}
	}
}
