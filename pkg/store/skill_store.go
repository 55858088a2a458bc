package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stewardhq/steward/ent"
	"github.com/stewardhq/steward/ent/skillfeedback"
	"github.com/stewardhq/steward/pkg/models"
)

// SkillStore records gate-rejection lessons against agent roles so
// future prompts can carry them.
type SkillStore struct {
	client *ent.Client
}

// NewSkillStore creates a new SkillStore
func NewSkillStore(client *ent.Client) *SkillStore {
	return &SkillStore{client: client}
}

// Record writes one feedback entry.
func (s *SkillStore) Record(ctx context.Context, entry models.SkillFeedbackEntry) (*models.SkillFeedbackEntry, error) {
	if entry.AgentRole == "" {
		return nil, NewValidationError("agent_role", "required")
	}
	if entry.TaskID == "" {
		return nil, NewValidationError("task_id", "required")
	}
	if entry.Lesson == "" {
		return nil, NewValidationError("lesson", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.SkillFeedback.Create().
		SetID(uuid.New().String()).
		SetAgentRole(entry.AgentRole).
		SetTaskID(entry.TaskID).
		SetLesson(entry.Lesson).
		SetCreatedAt(time.Now())
	if entry.GateID != "" {
		builder.SetGateID(entry.GateID)
	}
	if entry.Comment != "" {
		builder.SetComment(entry.Comment)
	}

	row, err := builder.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to record skill feedback: %w", err)
	}
	return skillFromEnt(row), nil
}

// RecentForRole returns the newest lessons for an agent role, for
// prompt injection.
func (s *SkillStore) RecentForRole(ctx context.Context, agentRole string, limit int) ([]*models.SkillFeedbackEntry, error) {
	if limit <= 0 {
		limit = 5
	}

	rows, err := s.client.SkillFeedback.Query().
		Where(skillfeedback.AgentRoleEQ(agentRole)).
		Order(ent.Desc(skillfeedback.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list skill feedback: %w", err)
	}

	out := make([]*models.SkillFeedbackEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, skillFromEnt(row))
	}
	return out, nil
}
