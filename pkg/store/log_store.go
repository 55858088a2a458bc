package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/stewardhq/steward/ent"
	"github.com/stewardhq/steward/ent/stagelog"
	"github.com/stewardhq/steward/pkg/models"
)

// LogStore manages the append-only per-task event log. Sequence
// numbers are assigned here and are contiguous per task starting at 1;
// a unique index on (task_id, sequence) backs the counter cache.
type LogStore struct {
	client *ent.Client

	mu      sync.Mutex
	nextSeq map[string]int // task id -> next sequence to assign
}

// NewLogStore creates a new LogStore
func NewLogStore(client *ent.Client) *LogStore {
	return &LogStore{
		client:  client,
		nextSeq: make(map[string]int),
	}
}

// Append appends a single log record and returns it with its assigned
// sequence number.
func (s *LogStore) Append(ctx context.Context, req models.AppendLogRequest) (*models.StageLog, error) {
	logs, err := s.AppendBatch(ctx, []models.AppendLogRequest{req})
	if err != nil {
		return nil, err
	}
	return logs[0], nil
}

// AppendBatch appends records for one task in a single transaction,
// assigning consecutive sequence numbers in slice order.
func (s *LogStore) AppendBatch(ctx context.Context, reqs []models.AppendLogRequest) ([]*models.StageLog, error) {
	if len(reqs) == 0 {
		return nil, nil
	}
	for i := range reqs {
		if reqs[i].TaskID == "" {
			return nil, NewValidationError("task_id", "required")
		}
		if reqs[i].TaskID != reqs[0].TaskID {
			return nil, NewValidationError("task_id", "batch must target a single task")
		}
		if reqs[i].EventType == "" {
			return nil, NewValidationError("event_type", "required")
		}
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logs, err := s.appendBatch(writeCtx, reqs)
	if err != nil {
		// The reserved range was not written; reseed from the table so
		// sequences stay contiguous. Retry once on a sequence collision
		// with another writer.
		s.invalidate(reqs[0].TaskID)
		if ent.IsConstraintError(err) {
			logs, err = s.appendBatch(writeCtx, reqs)
			if err != nil {
				s.invalidate(reqs[0].TaskID)
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to append stage logs: %w", err)
	}
	return logs, nil
}

func (s *LogStore) appendBatch(ctx context.Context, reqs []models.AppendLogRequest) ([]*models.StageLog, error) {
	first, err := s.reserveSequences(ctx, reqs[0].TaskID, len(reqs))
	if err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	out := make([]*models.StageLog, 0, len(reqs))
	for i, req := range reqs {
		id := req.ID
		if id == "" {
			id = uuid.New().String()
		}
		request, reqTrunc := truncateLogField(req.Request)
		response, respTrunc := truncateLogField(req.Response)
		result, resTrunc := truncateLogField(req.Result)

		builder := tx.StageLog.Create().
			SetID(id).
			SetTaskID(req.TaskID).
			SetSequence(first + i).
			SetEventType(req.EventType).
			SetTruncated(reqTrunc || respTrunc || resTrunc).
			SetCreatedAt(now)
		if req.StageID != "" {
			builder.SetStageID(req.StageID)
		}
		if req.CorrelationID != "" {
			builder.SetCorrelationID(req.CorrelationID)
		}
		if req.Source != "" {
			builder.SetSource(stagelog.Source(req.Source))
		}
		if req.Status != "" {
			builder.SetStatus(stagelog.Status(req.Status))
		}
		if request != "" {
			builder.SetRequest(request)
		}
		if response != "" {
			builder.SetResponse(response)
		}
		if req.Command != "" {
			builder.SetCommand(req.Command)
		}
		if req.CommandArgs != nil {
			builder.SetCommandArgs(req.CommandArgs)
		}
		if req.Workspace != "" {
			builder.SetWorkspace(req.Workspace)
		}
		if req.ExecutionMode != "" {
			builder.SetExecutionMode(req.ExecutionMode)
		}
		if req.DurationMS > 0 {
			builder.SetDurationMs(req.DurationMS)
		}
		if result != "" {
			builder.SetResult(result)
		}
		if req.Summary != "" {
			builder.SetSummary(req.Summary)
		}

		row, err := builder.Save(ctx)
		if err != nil {
			// Not wrapped: the caller inspects it for constraint errors.
			return nil, err
		}
		out = append(out, logFromEnt(row))
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

// reserveSequences hands out n consecutive sequence numbers for a
// task, seeding the counter from MAX(sequence) on first use.
func (s *LogStore) reserveSequences(ctx context.Context, taskID string, n int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := s.nextSeq[taskID]
	if !ok {
		last, err := s.client.StageLog.Query().
			Where(stagelog.TaskIDEQ(taskID)).
			Order(ent.Desc(stagelog.FieldSequence)).
			First(ctx)
		switch {
		case err == nil:
			next = last.Sequence + 1
		case ent.IsNotFound(err):
			next = 1
		default:
			return 0, fmt.Errorf("failed to seed sequence counter: %w", err)
		}
	}
	s.nextSeq[taskID] = next + n
	return next, nil
}

// invalidate drops the cached counter so the next append reseeds.
func (s *LogStore) invalidate(taskID string) {
	s.mu.Lock()
	delete(s.nextSeq, taskID)
	s.mu.Unlock()
}

// ForgetTask releases the sequence counter of a finished task.
func (s *LogStore) ForgetTask(taskID string) {
	s.invalidate(taskID)
}

// ApplyUpdate patches an existing log record. Nil fields in the update
// are left untouched.
func (s *LogStore) ApplyUpdate(ctx context.Context, logID string, upd models.StageLogUpdate) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.StageLog.UpdateOneID(logID).
		SetUpdatedAt(time.Now())
	truncated := false
	if upd.Status != nil {
		update = update.SetStatus(stagelog.Status(*upd.Status))
	}
	if upd.Response != nil {
		v, t := truncateLogField(*upd.Response)
		update = update.SetResponse(v)
		truncated = truncated || t
	}
	if upd.Result != nil {
		v, t := truncateLogField(*upd.Result)
		update = update.SetResult(v)
		truncated = truncated || t
	}
	if upd.Summary != nil {
		update = update.SetSummary(*upd.Summary)
	}
	if upd.DurationMS != nil {
		update = update.SetDurationMs(*upd.DurationMS)
	}
	if truncated {
		update = update.SetTruncated(true)
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update stage log: %w", err)
	}
	return nil
}

// ApplyUpdates patches a batch of records keyed by log ID. Records are
// applied independently so one bad update cannot block its siblings.
// The returned slice lists the IDs that landed; the error joins the
// per-record failures.
func (s *LogStore) ApplyUpdates(ctx context.Context, updates map[string]models.StageLogUpdate) ([]string, error) {
	applied := make([]string, 0, len(updates))
	var errs []error
	for logID, upd := range updates {
		if err := s.ApplyUpdate(ctx, logID, upd); err != nil {
			errs = append(errs, fmt.Errorf("log %s: %w", logID, err))
			continue
		}
		applied = append(applied, logID)
	}
	return applied, errors.Join(errs...)
}

// List lists a task's log records in canonical order: sequence, then
// created_at, then id, all ascending.
func (s *LogStore) List(ctx context.Context, taskID string, filters models.StageLogFilters) ([]*models.StageLog, int, error) {
	if taskID == "" {
		return nil, 0, NewValidationError("task_id", "required")
	}

	query := s.client.StageLog.Query().Where(stagelog.TaskIDEQ(taskID))
	if filters.StageID != "" {
		query = query.Where(stagelog.StageIDEQ(filters.StageID))
	}
	if filters.EventType != "" {
		query = query.Where(stagelog.EventTypeEQ(filters.EventType))
	}
	if filters.AfterSequence > 0 {
		query = query.Where(stagelog.SequenceGT(filters.AfterSequence))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count stage logs: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 100 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := query.
		Limit(limit).
		Offset(offset).
		Order(
			ent.Asc(stagelog.FieldSequence),
			ent.Asc(stagelog.FieldCreatedAt),
			ent.Asc(stagelog.FieldID),
		).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list stage logs: %w", err)
	}

	return logsFromEnt(rows), totalCount, nil
}

// DeleteOlderThan prunes log records of terminal tasks past retention.
// Counters for affected tasks reseed on next use.
func (s *LogStore) DeleteOlderThan(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.StageLog.Delete().
		Where(stagelog.CreatedAtLT(cutoff)).
		Exec(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old stage logs: %w", err)
	}
	return count, nil
}

// truncateLogField caps oversized payload fields, backing off to a
// rune boundary so the stored text stays valid UTF-8.
func truncateLogField(s string) (string, bool) {
	if len(s) <= models.MaxLogFieldBytes {
		return s, false
	}
	cut := models.MaxLogFieldBytes
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut], true
}
