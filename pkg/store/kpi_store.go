package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stewardhq/steward/ent"
	"github.com/stewardhq/steward/ent/kpimetric"
	"github.com/stewardhq/steward/pkg/models"
)

// KPIStore records per-task metric samples at terminal transitions.
type KPIStore struct {
	client *ent.Client
}

// NewKPIStore creates a new KPIStore
func NewKPIStore(client *ent.Client) *KPIStore {
	return &KPIStore{client: client}
}

// RecordBatch writes a set of metric samples in one transaction.
func (s *KPIStore) RecordBatch(ctx context.Context, records []models.KPIRecord) error {
	if len(records) == 0 {
		return nil
	}
	for i := range records {
		if records[i].TaskID == "" {
			return NewValidationError("task_id", "required")
		}
		if records[i].Name == "" {
			return NewValidationError("name", "required")
		}
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	for _, rec := range records {
		builder := tx.KPIMetric.Create().
			SetID(uuid.New().String()).
			SetTaskID(rec.TaskID).
			SetName(rec.Name).
			SetValue(rec.Value).
			SetRecordedAt(now)
		if rec.Unit != "" {
			builder.SetUnit(rec.Unit)
		}
		if _, err := builder.Save(writeCtx); err != nil {
			return fmt.Errorf("failed to record KPI %q: %w", rec.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListByTask lists a task's metric samples.
func (s *KPIStore) ListByTask(ctx context.Context, taskID string) ([]*models.KPIRecord, error) {
	rows, err := s.client.KPIMetric.Query().
		Where(kpimetric.TaskIDEQ(taskID)).
		Order(ent.Asc(kpimetric.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list KPI metrics: %w", err)
	}

	out := make([]*models.KPIRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, kpiFromEnt(row))
	}
	return out, nil
}
