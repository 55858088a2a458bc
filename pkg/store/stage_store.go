package store

import (
	"context"
	"fmt"
	"time"

	"github.com/stewardhq/steward/ent"
	"github.com/stewardhq/steward/ent/taskstage"
	"github.com/stewardhq/steward/pkg/models"
)

// StageStore manages stage execution state. Stage rows are created by
// TaskStore.Create and reused across re-executions.
type StageStore struct {
	client *ent.Client
}

// NewStageStore creates a new StageStore
func NewStageStore(client *ent.Client) *StageStore {
	return &StageStore{client: client}
}

// Get retrieves a stage by ID.
func (s *StageStore) Get(ctx context.Context, stageID string) (*models.Stage, error) {
	row, err := s.client.TaskStage.Query().
		Where(taskstage.IDEQ(stageID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get stage: %w", err)
	}
	return stageFromEnt(row), nil
}

// GetByName retrieves a task's stage by its template name.
func (s *StageStore) GetByName(ctx context.Context, taskID, name string) (*models.Stage, error) {
	row, err := s.client.TaskStage.Query().
		Where(
			taskstage.TaskIDEQ(taskID),
			taskstage.NameEQ(name),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get stage by name: %w", err)
	}
	return stageFromEnt(row), nil
}

// ListByTask lists a task's stages in execution order.
func (s *StageStore) ListByTask(ctx context.Context, taskID string) ([]*models.Stage, error) {
	rows, err := s.client.TaskStage.Query().
		Where(taskstage.TaskIDEQ(taskID)).
		Order(ent.Asc(taskstage.FieldExecOrder), ent.Asc(taskstage.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}
	return stagesFromEnt(rows), nil
}

// BeginExecution marks a stage running and counts the entry against
// its execution budget. Residue from a prior run is cleared; at most
// one run per stage may be in flight, which the conditional update
// enforces.
func (s *StageStore) BeginExecution(ctx context.Context, stageID string) (*models.Stage, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.TaskStage.Update().
		Where(
			taskstage.IDEQ(stageID),
			taskstage.StatusNEQ(taskstage.StatusRunning),
		).
		SetStatus(taskstage.StatusRunning).
		SetStartedAt(time.Now()).
		AddExecutionCount(1).
		ClearError().
		ClearFailureCategory().
		ClearCompletedAt().
		ClearDurationMs().
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin stage execution: %w", err)
	}
	if count == 0 {
		exists, err := s.client.TaskStage.Query().Where(taskstage.IDEQ(stageID)).Exist(writeCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to check stage existence: %w", err)
		}
		if !exists {
			return nil, ErrNotFound
		}
		return nil, ErrConcurrentModification
	}

	return s.Get(writeCtx, stageID)
}

// Complete records a successful execution.
func (s *StageStore) Complete(ctx context.Context, stageID string, result models.StageCompletion) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.TaskStage.UpdateOneID(stageID).
		SetStatus(taskstage.StatusCompleted).
		SetCompletedAt(time.Now()).
		SetDurationMs(result.DurationMS).
		SetOutput(result.Output).
		AddTokensUsed(result.TokensUsed).
		AddTurnsUsed(result.TurnsUsed).
		ClearError().
		ClearFailureCategory()
	if result.Structured != nil {
		update = update.SetStructured(result.Structured)
	}
	if result.Confidence != nil {
		update = update.SetConfidence(*result.Confidence)
	}

	err := update.Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete stage: %w", err)
	}
	return nil
}

// Fail records a failed execution with its classification.
func (s *StageStore) Fail(ctx context.Context, stageID string, failure models.StageFailure) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	category := failure.Category
	if category == "" {
		category = models.FailureUnknown
	}

	update := s.client.TaskStage.UpdateOneID(stageID).
		SetStatus(taskstage.StatusFailed).
		SetCompletedAt(time.Now()).
		SetDurationMs(failure.DurationMS).
		SetError(failure.Error).
		SetFailureCategory(taskstage.FailureCategory(category)).
		AddTokensUsed(failure.TokensUsed).
		AddTurnsUsed(failure.TurnsUsed)
	if failure.Output != "" {
		update = update.SetOutput(failure.Output)
	}

	err := update.Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record stage failure: %w", err)
	}
	return nil
}

// Skip marks a stage skipped (condition evaluated false). Skipped
// stages contribute no output and satisfy graph dependencies.
func (s *StageStore) Skip(ctx context.Context, stageID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.TaskStage.UpdateOneID(stageID).
		SetStatus(taskstage.StatusSkipped).
		SetCompletedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to skip stage: %w", err)
	}
	return nil
}

// ResetToPending returns a stage to pending for re-execution after a
// gate rejection or a graph failure redirect. Prior output is
// discarded.
func (s *StageStore) ResetToPending(ctx context.Context, stageID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.TaskStage.UpdateOneID(stageID).
		SetStatus(taskstage.StatusPending).
		SetOutput("").
		ClearStructured().
		ClearConfidence().
		ClearError().
		ClearFailureCategory().
		ClearStartedAt().
		ClearCompletedAt().
		ClearDurationMs().
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to reset stage: %w", err)
	}
	return nil
}

// IncrementRetry bumps the same-execution retry counter and returns
// the new value.
func (s *StageStore) IncrementRetry(ctx context.Context, stageID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	row, err := s.client.TaskStage.UpdateOneID(stageID).
		AddRetryCount(1).
		Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to increment stage retry count: %w", err)
	}
	return row.RetryCount, nil
}

// SetStructured replaces a stage's structured summary after contract
// extraction.
func (s *StageStore) SetStructured(ctx context.Context, stageID string, structured *models.StructuredOutput) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.TaskStage.UpdateOneID(stageID)
	if structured != nil {
		update = update.SetStructured(structured)
		if structured.Confidence > 0 {
			update = update.SetConfidence(structured.Confidence)
		}
	} else {
		update = update.ClearStructured()
	}

	err := update.Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set stage structured output: %w", err)
	}
	return nil
}
