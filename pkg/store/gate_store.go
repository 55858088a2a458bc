package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stewardhq/steward/ent"
	"github.com/stewardhq/steward/ent/humangate"
	"github.com/stewardhq/steward/pkg/models"
)

// GateStore manages human gates. Gates are never re-opened; each retry
// round creates a fresh row, and a partial unique index keeps at most
// one pending gate per (task, stage).
type GateStore struct {
	client *ent.Client
}

// NewGateStore creates a new GateStore
func NewGateStore(client *ent.Client) *GateStore {
	return &GateStore{client: client}
}

// Create creates a pending gate. Returns ErrAlreadyExists when the
// task already has a pending gate for the same stage.
func (s *GateStore) Create(httpCtx context.Context, req models.CreateGateRequest) (*models.Gate, error) {
	if req.TaskID == "" {
		return nil, NewValidationError("task_id", "required")
	}
	if req.StageName == "" {
		return nil, NewValidationError("stage_name", "required")
	}
	switch req.GateType {
	case models.GateTypeHumanApprove, models.GateTypePlanReview, models.GateTypeConfidenceReview:
	default:
		return nil, NewValidationError("gate_type", fmt.Sprintf("unknown gate type %q", req.GateType))
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.HumanGate.Create().
		SetID(uuid.New().String()).
		SetTaskID(req.TaskID).
		SetStageName(req.StageName).
		SetGateType(humangate.GateType(req.GateType)).
		SetStatus(humangate.StatusPending).
		SetRetryCount(req.RetryCount).
		SetIsDynamic(req.IsDynamic).
		SetCreatedAt(time.Now())
	if req.AgentRole != "" {
		builder.SetAgentRole(req.AgentRole)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create gate: %w", err)
	}

	return gateFromEnt(row), nil
}

// Get retrieves a gate by ID.
func (s *GateStore) Get(ctx context.Context, gateID string) (*models.Gate, error) {
	row, err := s.client.HumanGate.Query().
		Where(humangate.IDEQ(gateID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get gate: %w", err)
	}
	return gateFromEnt(row), nil
}

// GetPending returns the pending gate for a task stage, if any.
func (s *GateStore) GetPending(ctx context.Context, taskID, stageName string) (*models.Gate, error) {
	row, err := s.client.HumanGate.Query().
		Where(
			humangate.TaskIDEQ(taskID),
			humangate.StageNameEQ(stageName),
			humangate.StatusEQ(humangate.StatusPending),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pending gate: %w", err)
	}
	return gateFromEnt(row), nil
}

// List lists gates with filtering and pagination, newest first.
func (s *GateStore) List(ctx context.Context, filters models.GateFilters) ([]*models.Gate, int, error) {
	query := s.client.HumanGate.Query()

	if filters.TaskID != "" {
		query = query.Where(humangate.TaskIDEQ(filters.TaskID))
	}
	if filters.Status != "" {
		query = query.Where(humangate.StatusEQ(humangate.Status(filters.Status)))
	}
	if filters.GateType != "" {
		query = query.Where(humangate.GateTypeEQ(humangate.GateType(filters.GateType)))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count gates: %w", err)
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
		Order(ent.Desc(humangate.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list gates: %w", err)
	}

	return gatesFromEnt(rows), totalCount, nil
}

// Resolve records a reviewer verdict on a pending gate. The update is
// conditional on the gate still being pending; ErrGateResolved is
// returned when another reviewer got there first.
func (s *GateStore) Resolve(httpCtx context.Context, gateID string, req models.ResolveGateRequest) (*models.Gate, error) {
	switch req.Status {
	case models.GateStatusApproved, models.GateStatusRejected:
	case models.GateStatusRevised:
		if req.RevisedContent == "" {
			return nil, NewValidationError("revised_content", "required for revised gates")
		}
	default:
		return nil, NewValidationError("status", fmt.Sprintf("cannot resolve a gate to %q", req.Status))
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.HumanGate.Update().
		Where(
			humangate.IDEQ(gateID),
			humangate.StatusEQ(humangate.StatusPending),
		).
		SetStatus(humangate.Status(req.Status)).
		SetReviewedAt(time.Now())
	if req.Reviewer != "" {
		update = update.SetReviewer(req.Reviewer)
	}
	if req.Comment != "" {
		update = update.SetComment(req.Comment)
	}
	if req.RevisedContent != "" {
		update = update.SetRevisedContent(req.RevisedContent)
	}

	count, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve gate: %w", err)
	}
	if count == 0 {
		exists, err := s.client.HumanGate.Query().Where(humangate.IDEQ(gateID)).Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check gate existence: %w", err)
		}
		if !exists {
			return nil, ErrNotFound
		}
		return nil, ErrGateResolved
	}

	return s.Get(ctx, gateID)
}

// CountPending counts gates awaiting review, for the health endpoint.
func (s *GateStore) CountPending(ctx context.Context) (int, error) {
	count, err := s.client.HumanGate.Query().
		Where(humangate.StatusEQ(humangate.StatusPending)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending gates: %w", err)
	}
	return count, nil
}
