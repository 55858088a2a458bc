package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stewardhq/steward/ent"
	"github.com/stewardhq/steward/ent/circuitbreaker"
	"github.com/stewardhq/steward/pkg/models"
)

// BreakerStore records tripped circuit breakers. A breaker stays
// active until an operator resolves it.
type BreakerStore struct {
	client *ent.Client
}

// NewBreakerStore creates a new BreakerStore
func NewBreakerStore(client *ent.Client) *BreakerStore {
	return &BreakerStore{client: client}
}

// Trip records a tripped breaker for a task.
func (s *BreakerStore) Trip(ctx context.Context, taskID string, level int, triggeredBy, reason string) (*models.BreakerRecord, error) {
	if taskID == "" {
		return nil, NewValidationError("task_id", "required")
	}
	if triggeredBy != "tokens" && triggeredBy != "cost" {
		return nil, NewValidationError("triggered_by", fmt.Sprintf("unknown trigger %q", triggeredBy))
	}
	if level <= 0 {
		level = 1
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	row, err := s.client.CircuitBreaker.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetLevel(level).
		SetTriggeredBy(triggeredBy).
		SetReason(reason).
		SetTriggeredAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to record circuit breaker: %w", err)
	}

	return breakerFromEnt(row), nil
}

// Resolve marks a tripped breaker resolved. ErrConcurrentModification
// is returned when it was already resolved.
func (s *BreakerStore) Resolve(ctx context.Context, breakerID, resolvedBy string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.CircuitBreaker.Update().
		Where(
			circuitbreaker.IDEQ(breakerID),
			circuitbreaker.ResolvedAtIsNil(),
		).
		SetResolvedAt(time.Now())
	if resolvedBy != "" {
		update = update.SetResolvedBy(resolvedBy)
	}

	count, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to resolve circuit breaker: %w", err)
	}
	if count == 0 {
		exists, err := s.client.CircuitBreaker.Query().Where(circuitbreaker.IDEQ(breakerID)).Exist(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to check circuit breaker existence: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrConcurrentModification
	}
	return nil
}

// ActiveForTask returns the most recent unresolved breaker for a task,
// or ErrNotFound when none is active.
func (s *BreakerStore) ActiveForTask(ctx context.Context, taskID string) (*models.BreakerRecord, error) {
	row, err := s.client.CircuitBreaker.Query().
		Where(
			circuitbreaker.TaskIDEQ(taskID),
			circuitbreaker.ResolvedAtIsNil(),
		).
		Order(ent.Desc(circuitbreaker.FieldTriggeredAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active circuit breaker: %w", err)
	}
	return breakerFromEnt(row), nil
}

// ListByTask lists a task's breakers, newest first.
func (s *BreakerStore) ListByTask(ctx context.Context, taskID string) ([]*models.BreakerRecord, error) {
	rows, err := s.client.CircuitBreaker.Query().
		Where(circuitbreaker.TaskIDEQ(taskID)).
		Order(ent.Desc(circuitbreaker.FieldTriggeredAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list circuit breakers: %w", err)
	}

	out := make([]*models.BreakerRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, breakerFromEnt(row))
	}
	return out, nil
}

// CountForTask counts all breakers ever tripped for a task; the count
// drives the escalation level of the next trip.
func (s *BreakerStore) CountForTask(ctx context.Context, taskID string) (int, error) {
	count, err := s.client.CircuitBreaker.Query().
		Where(circuitbreaker.TaskIDEQ(taskID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count circuit breakers: %w", err)
	}
	return count, nil
}
