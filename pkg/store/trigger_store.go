package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stewardhq/steward/ent"
	"github.com/stewardhq/steward/ent/triggerevent"
	"github.com/stewardhq/steward/ent/triggerrule"
	"github.com/stewardhq/steward/pkg/models"
)

// TriggerStore manages trigger rules and the provenance events they
// produce.
type TriggerStore struct {
	client *ent.Client
}

// NewTriggerStore creates a new TriggerStore
func NewTriggerStore(client *ent.Client) *TriggerStore {
	return &TriggerStore{client: client}
}

// CreateRule registers a trigger rule.
func (s *TriggerStore) CreateRule(httpCtx context.Context, req models.CreateTriggerRuleRequest) (*models.TriggerRule, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.RuleType != models.RuleTypeCron && req.RuleType != models.RuleTypeWebhook {
		return nil, NewValidationError("rule_type", fmt.Sprintf("unknown rule type %q", req.RuleType))
	}
	if req.Expression == "" {
		return nil, NewValidationError("expression", "required")
	}
	if req.TemplateID == "" {
		return nil, NewValidationError("template_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	builder := s.client.TriggerRule.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetRuleType(triggerrule.RuleType(req.RuleType)).
		SetExpression(req.Expression).
		SetTemplateID(req.TemplateID).
		SetEnabled(enabled).
		SetCreatedAt(time.Now())
	if req.ProjectID != "" {
		builder.SetProjectID(req.ProjectID)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create trigger rule: %w", err)
	}

	return ruleFromEnt(row), nil
}

// GetRule retrieves a trigger rule by ID.
func (s *TriggerStore) GetRule(ctx context.Context, ruleID string) (*models.TriggerRule, error) {
	row, err := s.client.TriggerRule.Query().
		Where(triggerrule.IDEQ(ruleID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get trigger rule: %w", err)
	}
	return ruleFromEnt(row), nil
}

// ListRules lists trigger rules, optionally restricted to enabled ones.
func (s *TriggerStore) ListRules(ctx context.Context, enabledOnly bool) ([]*models.TriggerRule, error) {
	query := s.client.TriggerRule.Query()
	if enabledOnly {
		query = query.Where(triggerrule.EnabledEQ(true))
	}

	rows, err := query.
		Order(ent.Asc(triggerrule.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list trigger rules: %w", err)
	}

	out := make([]*models.TriggerRule, 0, len(rows))
	for _, row := range rows {
		out = append(out, ruleFromEnt(row))
	}
	return out, nil
}

// SetRuleEnabled toggles a rule on or off.
func (s *TriggerStore) SetRuleEnabled(ctx context.Context, ruleID string, enabled bool) error {
	err := s.client.TriggerRule.UpdateOneID(ruleID).
		SetEnabled(enabled).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update trigger rule: %w", err)
	}
	return nil
}

// DeleteRule removes a rule; its recorded events cascade.
func (s *TriggerStore) DeleteRule(ctx context.Context, ruleID string) error {
	err := s.client.TriggerRule.DeleteOneID(ruleID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete trigger rule: %w", err)
	}
	return nil
}

// RecordEvent writes a trigger event in status received.
func (s *TriggerStore) RecordEvent(ctx context.Context, event models.TriggerEvent) (*models.TriggerEvent, error) {
	if event.Source == "" {
		return nil, NewValidationError("source", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id := event.ID
	if id == "" {
		id = uuid.New().String()
	}

	builder := s.client.TriggerEvent.Create().
		SetID(id).
		SetSource(event.Source).
		SetStatus(triggerevent.StatusReceived).
		SetCreatedAt(time.Now())
	if event.RuleID != "" {
		builder.SetRuleID(event.RuleID)
	}
	if event.Payload != nil {
		builder.SetPayload(event.Payload)
	}

	row, err := builder.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to record trigger event: %w", err)
	}
	return triggerEventFromEnt(row), nil
}

// MarkEventOutcome records what processing did with a trigger event.
func (s *TriggerStore) MarkEventOutcome(ctx context.Context, eventID string, status models.TriggerEventStatus, taskID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.TriggerEvent.UpdateOneID(eventID).
		SetStatus(triggerevent.Status(status))
	if taskID != "" {
		update = update.SetTaskID(taskID)
	}

	err := update.Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark trigger event outcome: %w", err)
	}
	return nil
}

// ListEvents lists recent trigger events, newest first.
func (s *TriggerStore) ListEvents(ctx context.Context, limit int) ([]*models.TriggerEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.client.TriggerEvent.Query().
		Order(ent.Desc(triggerevent.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list trigger events: %w", err)
	}

	out := make([]*models.TriggerEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, triggerEventFromEnt(row))
	}
	return out, nil
}

// DeleteEventsOlderThan prunes old trigger events past retention.
func (s *TriggerStore) DeleteEventsOlderThan(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.TriggerEvent.Delete().
		Where(triggerevent.CreatedAtLT(cutoff)).
		Exec(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old trigger events: %w", err)
	}
	return count, nil
}
