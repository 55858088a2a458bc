package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stewardhq/steward/ent"
	"github.com/stewardhq/steward/ent/auditlog"
	"github.com/stewardhq/steward/pkg/models"
)

// AuditStore records engine and operator actions. Audit rows reference
// tasks by plain id and survive task deletion.
type AuditStore struct {
	client *ent.Client
}

// NewAuditStore creates a new AuditStore
func NewAuditStore(client *ent.Client) *AuditStore {
	return &AuditStore{client: client}
}

// Record writes one audit entry. Failures here must not abort the
// calling operation, so callers typically log and continue.
func (s *AuditStore) Record(ctx context.Context, entry models.AuditEntry) error {
	if entry.Action == "" {
		return NewValidationError("action", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id := entry.ID
	if id == "" {
		id = uuid.New().String()
	}
	risk := entry.RiskLevel
	if risk == "" {
		risk = models.RiskLow
	}

	builder := s.client.AuditLog.Create().
		SetID(id).
		SetAction(entry.Action).
		SetRiskLevel(auditlog.RiskLevel(risk)).
		SetCreatedAt(time.Now())
	if entry.TaskID != "" {
		builder.SetTaskID(entry.TaskID)
	}
	if entry.Detail != nil {
		builder.SetDetail(entry.Detail)
	}
	if entry.Actor != "" {
		builder.SetActor(entry.Actor)
	}

	if _, err := builder.Save(writeCtx); err != nil {
		return fmt.Errorf("failed to record audit entry: %w", err)
	}
	return nil
}

// ListByTask lists a task's audit entries, newest first.
func (s *AuditStore) ListByTask(ctx context.Context, taskID string, limit int) ([]*models.AuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.client.AuditLog.Query().
		Where(auditlog.TaskIDEQ(taskID)).
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	out := make([]*models.AuditEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, auditFromEnt(row))
	}
	return out, nil
}
