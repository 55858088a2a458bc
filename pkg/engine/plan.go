package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stewardhq/steward/pkg/contract"
	"github.com/stewardhq/steward/pkg/models"
)

// planningPause pauses an interactive task after its parse stage: the
// stage output becomes the plan, the task moves to planning, and a
// plan_review gate decides how to proceed. A revision replaces the
// plan wholesale; a rejection re-executes the parse stage.
func (r *taskRun) planningPause(ctx context.Context, st *models.Stage) (*models.GateRejectionContext, error) {
	e := r.e
	if !e.cfg.Features.InteractivePlanning || !r.task.Template.Interactive {
		return nil, nil
	}
	if r.task.Plan != "" {
		return nil, nil
	}
	if contract.InferKind(st.Name, st.AgentRole) != models.KindParse {
		return nil, nil
	}

	plan := r.stageOutput(st.Name)
	if err := e.stores.Tasks.SetPlan(ctx, r.task.ID, plan); err != nil {
		return nil, failTaskf("plan write for task failed: %v", err)
	}
	r.task.Plan = plan

	if err := e.stores.Tasks.UpdateStatus(ctx, r.task.ID, models.TaskStatusPlanning, "", models.TaskStatusRunning); err != nil {
		return nil, failTaskf("planning transition failed: %v", err)
	}
	r.task.Status = models.TaskStatusPlanning
	e.broadcastStatus(r.task.ID, models.TaskStatusPlanning, "")
	e.audit(r.task.ID, "planning_started", map[string]any{"stage": st.Name}, models.RiskLow)
	slog.Info("Task paused for plan review", "task_id", r.task.ID, "stage", st.Name)

	maxRetries := e.cfg.Worker.GateDefaultMaxRetries
	rej, err := r.planGate(ctx, st, maxRetries)
	if err != nil {
		return nil, err
	}

	if err := e.stores.Tasks.UpdateStatus(ctx, r.task.ID, models.TaskStatusRunning, "", models.TaskStatusPlanning); err != nil {
		return nil, failTaskf("resume from planning failed: %v", err)
	}
	r.task.Status = models.TaskStatusRunning
	e.broadcastStatus(r.task.ID, models.TaskStatusRunning, "")
	return rej, nil
}

func (r *taskRun) planGate(ctx context.Context, st *models.Stage, maxRetries int) (*models.GateRejectionContext, error) {
	e := r.e

	g, err := e.stores.Gates.Create(ctx, models.CreateGateRequest{
		TaskID:     r.task.ID,
		StageName:  st.Name,
		AgentRole:  st.AgentRole,
		GateType:   models.GateTypePlanReview,
		RetryCount: r.planAttempts,
	})
	if err != nil {
		return nil, failTaskf("plan review gate creation failed: %v", err)
	}
	r.broadcastGateCreated(g)
	e.audit(r.task.ID, "gate_created", map[string]any{
		"gate_id":   g.ID,
		"stage":     st.Name,
		"gate_type": string(models.GateTypePlanReview),
	}, models.RiskMedium)

	out := r.waitForGate(ctx, st, g)
	switch out.kind {
	case gateApproved:
		e.audit(r.task.ID, "plan_approved", map[string]any{"gate_id": out.gate.ID}, models.RiskLow)
		return nil, nil

	case gateRevised:
		// The reviewer's text replaces the plan wholesale; no re-run.
		if err := e.stores.Tasks.SetPlan(ctx, r.task.ID, out.gate.RevisedContent); err != nil {
			return nil, failTaskf("revised plan write failed: %v", err)
		}
		r.task.Plan = out.gate.RevisedContent
		e.audit(r.task.ID, "plan_revised", map[string]any{"gate_id": out.gate.ID}, models.RiskMedium)
		return nil, nil

	case gateRejected:
		r.recordRejectionLesson(ctx, st, out.gate)
		if r.planAttempts < maxRetries {
			r.planAttempts++
			// Clear the plan so the re-executed parse pauses again.
			if err := e.stores.Tasks.SetPlan(ctx, r.task.ID, ""); err != nil {
				slog.Warn("Plan clear failed", "task_id", r.task.ID, "error", err)
			}
			r.task.Plan = ""
			return &models.GateRejectionContext{
				Comment: out.gate.Comment,
				Retry:   fmt.Sprintf("%d/%d", r.planAttempts, maxRetries),
			}, nil
		}
		return nil, failTaskf("plan rejected after %d retries: %s", maxRetries, out.gate.Comment)

	case gateTimedOut:
		return nil, failTaskf("plan review timed out waiting for a reviewer")

	case gateCancelled:
		return nil, errCancelled

	default:
		return nil, errShutdown
	}
}
