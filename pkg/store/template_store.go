package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stewardhq/steward/ent"
	"github.com/stewardhq/steward/ent/tasktemplate"
	"github.com/stewardhq/steward/pkg/graph"
	"github.com/stewardhq/steward/pkg/models"
)

// TemplateStore manages immutable task templates. A new version is a
// new row chained to its predecessor through parent_id.
type TemplateStore struct {
	client *ent.Client
}

// NewTemplateStore creates a new TemplateStore
func NewTemplateStore(client *ent.Client) *TemplateStore {
	return &TemplateStore{client: client}
}

var conditionOperators = map[string]bool{
	"eq": true, "ne": true, "gt": true, "gte": true,
	"lt": true, "lte": true, "contains": true,
}

// Create registers a template version. Stage definitions are validated
// here, including dependency cycle detection, so a bad template can
// never reach the engine.
func (s *TemplateStore) Create(httpCtx context.Context, req models.CreateTemplateRequest) (*models.Template, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if len(req.Stages) == 0 {
		return nil, NewValidationError("stages", "at least one stage is required")
	}

	names := make(map[string]bool, len(req.Stages))
	for i, def := range req.Stages {
		if def.Name == "" {
			return nil, NewValidationError("stages", fmt.Sprintf("stage %d: name required", i))
		}
		if def.AgentRole == "" {
			return nil, NewValidationError("stages", fmt.Sprintf("stage %q: agent_role required", def.Name))
		}
		if names[def.Name] {
			return nil, NewValidationError("stages", fmt.Sprintf("duplicate stage name %q", def.Name))
		}
		names[def.Name] = true
		if def.Condition != nil {
			if def.Condition.SourceStage == "" || def.Condition.Field == "" {
				return nil, NewValidationError("stages", fmt.Sprintf("stage %q: condition requires source_stage and field", def.Name))
			}
			if !conditionOperators[def.Condition.Operator] {
				return nil, NewValidationError("stages", fmt.Sprintf("stage %q: unknown condition operator %q", def.Name, def.Condition.Operator))
			}
		}
	}
	for _, def := range req.Stages {
		if def.Condition != nil && !names[def.Condition.SourceStage] {
			return nil, NewValidationError("stages", fmt.Sprintf("stage %q: condition references unknown stage %q", def.Name, def.Condition.SourceStage))
		}
	}
	for _, gate := range req.Gates {
		if !names[gate.AfterStage] {
			return nil, NewValidationError("gates", fmt.Sprintf("gate references unknown stage %q", gate.AfterStage))
		}
		switch gate.Type {
		case models.GateTypeHumanApprove, models.GateTypePlanReview, models.GateTypeConfidenceReview:
		default:
			return nil, NewValidationError("gates", fmt.Sprintf("unknown gate type %q", gate.Type))
		}
	}

	if err := graph.Validate(req.Stages); err != nil {
		return nil, NewValidationError("stages", err.Error())
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	version := 1
	if req.ParentID != "" {
		parent, err := s.client.TaskTemplate.Query().
			Where(tasktemplate.IDEQ(req.ParentID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, fmt.Errorf("parent template %q: %w", req.ParentID, ErrNotFound)
			}
			return nil, fmt.Errorf("failed to load parent template: %w", err)
		}
		if parent.Name != req.Name {
			return nil, NewValidationError("parent_id", "parent template has a different name")
		}
		version = parent.Version + 1
	}

	builder := s.client.TaskTemplate.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetVersion(version).
		SetStages(req.Stages).
		SetInteractive(req.Interactive).
		SetCreatedAt(time.Now())
	if req.ParentID != "" {
		builder.SetParentID(req.ParentID)
	}
	if req.Description != "" {
		builder.SetDescription(req.Description)
	}
	if req.Gates != nil {
		builder.SetGates(req.Gates)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	return templateFromEnt(row), nil
}

// Get retrieves a template by ID.
func (s *TemplateStore) Get(ctx context.Context, templateID string) (*models.Template, error) {
	row, err := s.client.TaskTemplate.Query().
		Where(tasktemplate.IDEQ(templateID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return templateFromEnt(row), nil
}

// GetByName retrieves the latest version of a named template.
func (s *TemplateStore) GetByName(ctx context.Context, name string) (*models.Template, error) {
	row, err := s.client.TaskTemplate.Query().
		Where(tasktemplate.NameEQ(name)).
		Order(ent.Desc(tasktemplate.FieldVersion)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get template by name: %w", err)
	}
	return templateFromEnt(row), nil
}

// List lists all template versions, grouped by name, newest first.
func (s *TemplateStore) List(ctx context.Context) ([]*models.Template, error) {
	rows, err := s.client.TaskTemplate.Query().
		Order(ent.Asc(tasktemplate.FieldName), ent.Desc(tasktemplate.FieldVersion)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templatesFromEnt(rows), nil
}

// ListVersions lists the full version history of a named template,
// newest first.
func (s *TemplateStore) ListVersions(ctx context.Context, name string) ([]*models.Template, error) {
	rows, err := s.client.TaskTemplate.Query().
		Where(tasktemplate.NameEQ(name)).
		Order(ent.Desc(tasktemplate.FieldVersion)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list template versions: %w", err)
	}
	return templatesFromEnt(rows), nil
}
