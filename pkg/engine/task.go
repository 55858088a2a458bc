package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/stewardhq/steward/pkg/compress"
	"github.com/stewardhq/steward/pkg/memory"
	"github.com/stewardhq/steward/pkg/models"
	"github.com/stewardhq/steward/pkg/workspace"
)

// taskRun is the per-task processing state. One goroutine drives it;
// the mutex guards the accumulator and output maps during parallel
// group execution.
type taskRun struct {
	e    *Engine
	task *models.Task
	ws   *workspace.Workspace

	mu         sync.Mutex
	acc        *compress.Accumulator
	outputs    map[string]string
	structured map[string]*models.StructuredOutput

	repoContext string
	memoryBlock string

	// routeTarget is set by a routed stage and consumed by the linear
	// driver, which hoists the target ahead of the remaining work.
	routeTarget string

	// planAttempts counts plan rejections across parse re-executions.
	planAttempts int
}

// ProcessTask drives one claimed task to a terminal state. The context
// carries the task timeout; terminal writes use a background context
// so they survive it.
func (e *Engine) ProcessTask(ctx context.Context, task *models.Task) error {
	if task.Template == nil || len(task.Template.Stages) == 0 {
		e.failTask(task, "task has no template snapshot")
		return fmt.Errorf("task %s has no template snapshot", task.ID)
	}

	slog.Info("Processing task",
		"task_id", task.ID,
		"title", task.Title,
		"template", task.Template.Name,
		"template_version", task.Template.Version)

	if err := e.stores.Tasks.UpdateStatus(ctx, task.ID, models.TaskStatusRunning, "", models.TaskStatusClaimed); err != nil {
		// A cancel between claim and start lands here; nothing to do.
		slog.Warn("Task did not transition to running", "task_id", task.ID, "error", err)
		return err
	}
	task.Status = models.TaskStatusRunning
	e.broadcastStatus(task.ID, models.TaskStatusRunning, "")
	e.audit(task.ID, "task_started", map[string]any{
		"template":         task.Template.Name,
		"template_version": task.Template.Version,
	}, models.RiskLow)

	run := &taskRun{
		e:          e,
		task:       task,
		acc:        compress.NewAccumulator(),
		outputs:    make(map[string]string),
		structured: make(map[string]*models.StructuredOutput),
	}

	ws, err := e.workspaces.Setup(ctx, task, task.Project)
	if err != nil {
		e.failTask(task, fmt.Sprintf("workspace setup: %v", err))
		return err
	}
	run.ws = ws
	run.repoContext = buildRepoContext(task.Project, ws)

	if e.memory != nil && task.ProjectID != "" {
		block, err := e.memory.PromptBlock(task.ProjectID)
		if err != nil {
			slog.Warn("Project memory load failed", "task_id", task.ID, "error", err)
		} else {
			run.memoryBlock = block
		}
	}

	var driverErr error
	if e.cfg.Features.GraphExecution && task.Template.UsesDependsOn() {
		driverErr = run.runGraph(ctx)
	} else {
		driverErr = run.runLinear(ctx)
	}
	return run.finish(ctx, driverErr)
}

// finish maps the driver outcome to the terminal transition and always
// releases the workspace.
func (r *taskRun) finish(ctx context.Context, driverErr error) error {
	e := r.e

	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Minute)
	defer cancel()
	defer func() {
		if err := e.workspaces.Cleanup(cleanupCtx, r.task, r.ws); err != nil {
			slog.Warn("Workspace cleanup failed", "task_id", r.task.ID, "error", err)
		}
	}()

	switch {
	case driverErr == nil:
		r.finalizeSuccess(cleanupCtx)
		e.completeTask(r.task)
		return nil

	case errors.Is(driverErr, errCancelled):
		// The operator already moved the row to cancelled; record the
		// point the engine noticed and stop writing.
		e.audit(r.task.ID, "task_cancelled", nil, models.RiskMedium)
		slog.Info("Task cancelled", "task_id", r.task.ID)
		return nil

	case errors.Is(driverErr, errShutdown):
		// Leave the claim in place: orphan detection or startup
		// recovery requeues the task.
		slog.Info("Task aborted for shutdown", "task_id", r.task.ID)
		return driverErr
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		e.failTask(r.task, "task processing timed out")
		return driverErr
	}

	var tf *taskFailure
	if errors.As(driverErr, &tf) {
		e.failTask(r.task, tf.reason)
		return driverErr
	}
	e.failTask(r.task, driverErr.Error())
	return driverErr
}

// finalizeSuccess runs the success-path bookkeeping: memory
// extraction, commit and push, optional pull request, KPI samples.
// Every step is best-effort; the task still completes.
func (r *taskRun) finalizeSuccess(ctx context.Context) {
	e := r.e
	task := r.task

	if e.lessons != nil {
		e.lessons.ExtractFromTask(ctx, task, r.stageDigests())
	}

	if r.ws != nil && r.ws.Branch != "" {
		pushed, err := e.workspaces.CommitAndPush(ctx, r.ws, commitMessage(task))
		if err != nil {
			slog.Warn("Commit and push failed", "task_id", task.ID, "error", err)
		} else if pushed {
			if err := e.stores.Tasks.SetBranchName(ctx, task.ID, r.ws.Branch); err != nil {
				slog.Warn("Branch name update failed", "task_id", task.ID, "error", err)
			}
			task.BranchName = r.ws.Branch

			if e.cfg.Worktree.AutoPR {
				url, err := e.workspaces.CreatePR(ctx, r.ws, task.Title, prBody(task))
				if err != nil {
					slog.Warn("Pull request creation failed", "task_id", task.ID, "error", err)
				} else if url != "" {
					if err := e.stores.Tasks.SetPRURL(ctx, task.ID, url); err != nil {
						slog.Warn("PR URL update failed", "task_id", task.ID, "error", err)
					}
					task.PRURL = url
					e.audit(task.ID, "pr_created", map[string]any{"url": url}, models.RiskMedium)
				}
			}
		}
	}

	r.recordKPIs(ctx)
}

// stageDigests summarizes completed stages for memory extraction.
func (r *taskRun) stageDigests() []memory.StageDigest {
	var out []memory.StageDigest
	for _, st := range r.task.Stages {
		summary := ""
		if s := r.structured[st.Name]; s != nil {
			summary = s.Summary
		}
		if summary == "" {
			summary = firstLine(r.outputs[st.Name], 200)
		}
		if summary == "" {
			continue
		}
		out = append(out, memory.StageDigest{Name: st.Name, Role: st.AgentRole, Summary: summary})
	}
	return out
}

func (r *taskRun) recordKPIs(ctx context.Context) {
	task := r.task
	records := []models.KPIRecord{
		{TaskID: task.ID, Name: "total_tokens", Value: float64(task.TotalTokens), Unit: "tokens"},
		{TaskID: task.ID, Name: "total_cost", Value: task.TotalCost, Unit: "rmb"},
		{TaskID: task.ID, Name: "stages_completed", Value: float64(len(r.outputs))},
	}
	if task.StartedAt != nil {
		records = append(records, models.KPIRecord{
			TaskID: task.ID,
			Name:   "duration_seconds",
			Value:  time.Since(*task.StartedAt).Seconds(),
			Unit:   "s",
		})
	}
	if err := r.e.stores.KPIs.RecordBatch(ctx, records); err != nil {
		slog.Warn("KPI recording failed", "task_id", task.ID, "error", err)
	}
}

// completeTask moves the task to completed and announces it.
func (e *Engine) completeTask(task *models.Task) {
	err := e.stores.Tasks.UpdateStatus(context.Background(), task.ID, models.TaskStatusCompleted, "",
		models.TaskStatusRunning, models.TaskStatusPlanning)
	if err != nil {
		slog.Error("Task completion transition failed", "task_id", task.ID, "error", err)
		return
	}
	task.Status = models.TaskStatusCompleted
	now := time.Now()
	task.CompletedAt = &now

	e.broadcastStatus(task.ID, models.TaskStatusCompleted, "")
	e.audit(task.ID, "task_completed", map[string]any{
		"total_tokens": task.TotalTokens,
		"total_cost":   task.TotalCost,
	}, models.RiskLow)
	if e.notifier != nil {
		e.notifier.TaskFinished(context.Background(), task)
	}
	slog.Info("Task completed",
		"task_id", task.ID, "total_tokens", task.TotalTokens, "total_cost", task.TotalCost)
}

// failTask moves the task to failed with a reason and announces it.
func (e *Engine) failTask(task *models.Task, reason string) {
	err := e.stores.Tasks.UpdateStatus(context.Background(), task.ID, models.TaskStatusFailed, reason,
		models.TaskStatusClaimed, models.TaskStatusRunning, models.TaskStatusPlanning)
	if err != nil {
		slog.Error("Task failure transition failed", "task_id", task.ID, "error", err)
		return
	}
	task.Status = models.TaskStatusFailed
	task.Error = reason
	now := time.Now()
	task.CompletedAt = &now

	e.broadcastStatus(task.ID, models.TaskStatusFailed, reason)
	e.audit(task.ID, "task_failed", map[string]any{"reason": reason}, models.RiskHigh)
	if e.notifier != nil {
		e.notifier.TaskFinished(context.Background(), task)
	}
	slog.Error("Task failed", "task_id", task.ID, "reason", reason)
}

// cancelled polls the task row for operator cancellation.
func (r *taskRun) cancelled(ctx context.Context) bool {
	cur, err := r.e.stores.Tasks.Get(ctx, r.task.ID)
	if err != nil {
		slog.Warn("Cancellation check failed", "task_id", r.task.ID, "error", err)
		return false
	}
	return cur.Status == models.TaskStatusCancelled
}

// buildRepoContext renders the project block injected into prompts.
func buildRepoContext(project *models.Project, ws *workspace.Workspace) string {
	if project == nil {
		return ""
	}
	var lines []string
	if project.RepoURL != "" {
		lines = append(lines, "- Repository: "+project.RepoURL)
	}
	if len(project.TechStack) > 0 {
		lines = append(lines, "- Tech stack: "+strings.Join(project.TechStack, ", "))
	}
	if ws != nil && ws.Branch != "" {
		lines = append(lines, "- Working branch: "+ws.Branch)
	}
	if ws != nil && ws.Dir != "" {
		lines = append(lines, "- Checkout: "+ws.Dir)
	}
	if len(lines) == 0 {
		return ""
	}
	return "Repository context:\n" + strings.Join(lines, "\n")
}

func commitMessage(task *models.Task) string {
	return fmt.Sprintf("%s\n\nTask: %s", task.Title, task.ID)
}

func prBody(task *models.Task) string {
	body := task.Description
	if body != "" {
		body += "\n\n"
	}
	return body + "Automated change produced by steward for task " + task.ID + "."
}

func firstLine(text string, max int) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	if len(text) > max {
		text = text[:max]
	}
	return text
}
