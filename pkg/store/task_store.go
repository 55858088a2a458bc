package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/stewardhq/steward/ent"
	"github.com/stewardhq/steward/ent/project"
	"github.com/stewardhq/steward/ent/task"
	"github.com/stewardhq/steward/ent/taskstage"
	"github.com/stewardhq/steward/ent/tasktemplate"
	"github.com/stewardhq/steward/pkg/models"
)

// TaskStore manages task lifecycle: creation, atomic claiming, status
// transitions and usage accounting.
type TaskStore struct {
	client *ent.Client
}

// NewTaskStore creates a new TaskStore
func NewTaskStore(client *ent.Client) *TaskStore {
	return &TaskStore{client: client}
}

// Create creates a task and materializes its stage rows from the
// template snapshot. Stage rows are reused across re-executions.
func (s *TaskStore) Create(httpCtx context.Context, req models.CreateTaskRequest) (*models.Task, error) {
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	if req.TemplateID == "" {
		return nil, NewValidationError("template_id", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	tmpl, err := tx.TaskTemplate.Query().
		Where(tasktemplate.IDEQ(req.TemplateID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("template %q: %w", req.TemplateID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load template: %w", err)
	}

	if req.ProjectID != "" {
		exists, err := tx.Project.Query().Where(project.IDEQ(req.ProjectID)).Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check project: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("project %q: %w", req.ProjectID, ErrNotFound)
		}
	}

	taskID := uuid.New().String()
	builder := tx.Task.Create().
		SetID(taskID).
		SetTitle(req.Title).
		SetStatus(task.StatusPending).
		SetTemplateID(tmpl.ID).
		SetTemplateVersion(tmpl.Version).
		SetCreatedAt(time.Now())
	if req.Description != "" {
		builder.SetDescription(req.Description)
	}
	if req.ExternalID != "" {
		builder.SetExternalID(req.ExternalID)
	}
	if req.ProjectID != "" {
		builder.SetProjectID(req.ProjectID)
	}
	if _, err := builder.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	for _, def := range tmpl.Stages {
		_, err := tx.TaskStage.Create().
			SetID(uuid.New().String()).
			SetTaskID(taskID).
			SetName(def.Name).
			SetAgentRole(def.AgentRole).
			SetStatus(taskstage.StatusPending).
			SetExecOrder(def.Order).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create stage %q: %w", def.Name, err)
		}
	}

	created, err := tx.Task.Query().
		Where(task.IDEQ(taskID)).
		WithStages(func(q *ent.TaskStageQuery) {
			q.Order(ent.Asc(taskstage.FieldExecOrder), ent.Asc(taskstage.FieldName))
		}).
		WithTemplate().
		WithProject().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload created task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return taskFromEnt(created), nil
}

// Get retrieves a task by ID with stages, template and project loaded.
func (s *TaskStore) Get(ctx context.Context, taskID string) (*models.Task, error) {
	row, err := s.client.Task.Query().
		Where(task.IDEQ(taskID)).
		WithStages(func(q *ent.TaskStageQuery) {
			q.Order(ent.Asc(taskstage.FieldExecOrder), ent.Asc(taskstage.FieldName))
		}).
		WithTemplate().
		WithProject().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return taskFromEnt(row), nil
}

// List lists tasks with filtering and pagination
func (s *TaskStore) List(ctx context.Context, filters models.TaskFilters) (*models.TaskList, error) {
	query := s.client.Task.Query()

	if filters.Status != "" {
		query = query.Where(task.StatusEQ(task.Status(filters.Status)))
	}
	if filters.ProjectID != "" {
		query = query.Where(task.ProjectIDEQ(filters.ProjectID))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return &models.TaskList{
		Tasks:      tasksFromEnt(rows),
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// ClaimOldestPending atomically claims the oldest pending task using
// FOR UPDATE SKIP LOCKED. Returns ErrNoTasksAvailable when the queue
// is empty.
func (s *TaskStore) ClaimOldestPending(ctx context.Context, workerID string) (*models.Task, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED
	// Order by created_at for FIFO processing
	row, err := tx.Task.Query().
		Where(task.StatusEQ(task.StatusPending)).
		Order(ent.Asc(task.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoTasksAvailable
		}
		return nil, fmt.Errorf("failed to query pending task: %w", err)
	}

	now := time.Now()
	row, err = row.Update().
		SetStatus(task.StatusClaimed).
		SetClaimedBy(workerID).
		SetClaimedAt(now).
		SetHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	// Edges are loaded outside the claim transaction to keep the row
	// lock short.
	return s.Get(ctx, row.ID)
}

// UpdateStatus transitions a task's status. When from statuses are
// given, the transition is conditional and ErrConcurrentModification
// is returned if the task was no longer in one of them.
func (s *TaskStore) UpdateStatus(ctx context.Context, taskID string, to models.TaskStatus, errMsg string, from ...models.TaskStatus) error {
	// Use background context with timeout: terminal transitions must
	// survive a cancelled task context.
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Task.Update().
		Where(task.IDEQ(taskID)).
		SetStatus(task.Status(to))
	if len(from) > 0 {
		update = update.Where(task.StatusIn(entTaskStatuses(from)...))
	}
	if errMsg != "" {
		update = update.SetError(errMsg)
	}
	if to.Terminal() {
		update = update.SetCompletedAt(time.Now())
	}

	count, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}
	if count == 0 {
		exists, err := s.client.Task.Query().Where(task.IDEQ(taskID)).Exist(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to check task existence: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrConcurrentModification
	}

	if to == models.TaskStatusRunning {
		// started_at records the first entry into running; a resume
		// after planning keeps the original value.
		_, err := s.client.Task.Update().
			Where(task.IDEQ(taskID), task.StartedAtIsNil()).
			SetStartedAt(time.Now()).
			Save(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to set task start time: %w", err)
		}
	}

	return nil
}

// Heartbeat refreshes the claim heartbeat. ErrConcurrentModification
// means the worker no longer holds the task.
func (s *TaskStore) Heartbeat(ctx context.Context, taskID, workerID string) error {
	count, err := s.client.Task.Update().
		Where(
			task.IDEQ(taskID),
			task.ClaimedByEQ(workerID),
			task.StatusIn(task.StatusClaimed, task.StatusRunning, task.StatusPlanning),
		).
		SetHeartbeatAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record heartbeat: %w", err)
	}
	if count == 0 {
		return ErrConcurrentModification
	}
	return nil
}

// FindStale finds active tasks whose heartbeat is older than the given
// age, i.e. tasks whose worker likely died.
func (s *TaskStore) FindStale(ctx context.Context, olderThan time.Duration) ([]*models.Task, error) {
	threshold := time.Now().Add(-olderThan)

	rows, err := s.client.Task.Query().
		Where(
			task.StatusIn(task.StatusClaimed, task.StatusRunning, task.StatusPlanning),
			task.HeartbeatAtNotNil(),
			task.HeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find stale tasks: %w", err)
	}

	return tasksFromEnt(rows), nil
}

// Requeue returns a stale task to the pending queue, clearing its
// claim. Stage state is left as-is; the next claim resumes from it.
func (s *TaskStore) Requeue(ctx context.Context, taskID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Task.Update().
		Where(
			task.IDEQ(taskID),
			task.StatusIn(task.StatusClaimed, task.StatusRunning, task.StatusPlanning),
		).
		SetStatus(task.StatusPending).
		ClearClaimedBy().
		ClearClaimedAt().
		ClearHeartbeatAt().
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to requeue task: %w", err)
	}
	if count == 0 {
		return ErrConcurrentModification
	}
	return nil
}

// RecoverStale runs at startup: every task a worker held when the
// process died goes back to pending with its claim cleared. Stage
// state is kept; the next claim resumes from it.
func (s *TaskStore) RecoverStale(ctx context.Context) (int, error) {
	count, err := s.client.Task.Update().
		Where(task.StatusIn(task.StatusClaimed, task.StatusRunning, task.StatusPlanning)).
		SetStatus(task.StatusPending).
		ClearClaimedBy().
		ClearClaimedAt().
		ClearHeartbeatAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to recover stale tasks: %w", err)
	}
	return count, nil
}

// AddUsage credits stage token and cost usage to the task accumulators
// and returns the task with the new totals, for breaker evaluation.
func (s *TaskStore) AddUsage(ctx context.Context, taskID string, tokens int, cost float64) (*models.Task, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	row, err := s.client.Task.UpdateOneID(taskID).
		AddTotalTokens(tokens).
		AddTotalCost(cost).
		Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to add task usage: %w", err)
	}

	return taskFromEnt(row), nil
}

// SetPlan stores the task's plan text.
func (s *TaskStore) SetPlan(ctx context.Context, taskID, plan string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Task.UpdateOneID(taskID).
		SetPlan(plan).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set task plan: %w", err)
	}
	return nil
}

// AppendRoutingDecision appends one entry to the task's routing audit
// trail. The row is locked to keep concurrent appends ordered.
func (s *TaskStore) AppendRoutingDecision(ctx context.Context, taskID string, decision models.RoutingDecision) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.Task.Query().
		Where(task.IDEQ(taskID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load task: %w", err)
	}

	decisions := append(row.RoutingDecisions, decision)
	err = tx.Task.UpdateOneID(taskID).
		SetRoutingDecisions(decisions).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to append routing decision: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// SetBranchName records the pushed worktree branch.
func (s *TaskStore) SetBranchName(ctx context.Context, taskID, branch string) error {
	err := s.client.Task.UpdateOneID(taskID).
		SetBranchName(branch).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set branch name: %w", err)
	}
	return nil
}

// SetPRURL records the opened pull request URL.
func (s *TaskStore) SetPRURL(ctx context.Context, taskID, url string) error {
	err := s.client.Task.UpdateOneID(taskID).
		SetPrURL(url).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set PR URL: %w", err)
	}
	return nil
}

// CountActive counts tasks currently held by workers, for the global
// capacity check before claiming.
func (s *TaskStore) CountActive(ctx context.Context) (int, error) {
	count, err := s.client.Task.Query().
		Where(task.StatusIn(task.StatusClaimed, task.StatusRunning, task.StatusPlanning)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active tasks: %w", err)
	}
	return count, nil
}

// DeleteOlderThan hard-deletes terminal tasks completed before the
// retention cutoff. Stage, gate, log, breaker and KPI rows cascade.
func (s *TaskStore) DeleteOlderThan(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Task.Delete().
		Where(
			task.StatusIn(task.StatusCompleted, task.StatusFailed, task.StatusCancelled),
			task.CompletedAtLT(cutoff),
		).
		Exec(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old tasks: %w", err)
	}
	return count, nil
}

func entTaskStatuses(in []models.TaskStatus) []task.Status {
	out := make([]task.Status, 0, len(in))
	for _, st := range in {
		out = append(out, task.Status(st))
	}
	return out
}
