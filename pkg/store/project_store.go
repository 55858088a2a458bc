package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stewardhq/steward/ent"
	"github.com/stewardhq/steward/ent/project"
	"github.com/stewardhq/steward/pkg/models"
)

// ProjectStore manages projects, which scope repositories and memory
// buckets.
type ProjectStore struct {
	client *ent.Client
}

// NewProjectStore creates a new ProjectStore
func NewProjectStore(client *ent.Client) *ProjectStore {
	return &ProjectStore{client: client}
}

// Create creates a project. Names are unique.
func (s *ProjectStore) Create(httpCtx context.Context, req models.CreateProjectRequest) (*models.Project, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.Project.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetCreatedAt(time.Now())
	if req.RepoURL != "" {
		builder.SetRepoURL(req.RepoURL)
	}
	if req.TechStack != nil {
		builder.SetTechStack(req.TechStack)
	}
	if req.Description != "" {
		builder.SetDescription(req.Description)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return projectFromEnt(row), nil
}

// Get retrieves a project by ID.
func (s *ProjectStore) Get(ctx context.Context, projectID string) (*models.Project, error) {
	row, err := s.client.Project.Query().
		Where(project.IDEQ(projectID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return projectFromEnt(row), nil
}

// GetByName retrieves a project by its unique name.
func (s *ProjectStore) GetByName(ctx context.Context, name string) (*models.Project, error) {
	row, err := s.client.Project.Query().
		Where(project.NameEQ(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project by name: %w", err)
	}
	return projectFromEnt(row), nil
}

// List lists all projects ordered by name.
func (s *ProjectStore) List(ctx context.Context) ([]*models.Project, error) {
	rows, err := s.client.Project.Query().
		Order(ent.Asc(project.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	out := make([]*models.Project, 0, len(rows))
	for _, row := range rows {
		out = append(out, projectFromEnt(row))
	}
	return out, nil
}
