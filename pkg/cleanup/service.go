// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/stewardhq/steward/pkg/config"
)

// TaskPruner deletes terminal tasks past retention.
type TaskPruner interface {
	DeleteOlderThan(ctx context.Context, retentionDays int) (int, error)
}

// LogPruner deletes stage log rows of terminal tasks past retention.
type LogPruner interface {
	DeleteOlderThan(ctx context.Context, retentionDays int) (int, error)
}

// TriggerEventPruner deletes old trigger provenance rows.
type TriggerEventPruner interface {
	DeleteEventsOlderThan(ctx context.Context, retentionDays int) (int, error)
}

// Service periodically enforces retention policies:
//   - Hard-deletes terminal tasks past task retention (stages, gates,
//     logs, breakers and audits go with them via cascading deletes)
//   - Prunes stage log rows of terminal tasks past log retention
//   - Prunes old trigger event rows
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config  config.RetentionConfig
	tasks   TaskPruner
	logs    LogPruner
	trigger TriggerEventPruner

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg config.RetentionConfig, tasks TaskPruner, logs LogPruner, trigger TriggerEventPruner) *Service {
	return &Service{
		config:  cfg,
		tasks:   tasks,
		logs:    logs,
		trigger: trigger,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"task_retention_days", s.config.TaskRetentionDays,
		"log_retention_days", s.config.LogRetentionDays,
		"trigger_event_retention_days", s.config.TriggerEventRetentionDays,
		"interval", s.config.CleanupInterval())
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll executes one retention pass. Exported so operators can trigger
// a pass out of cycle.
func (s *Service) RunAll(ctx context.Context) {
	s.pruneTasks(ctx)
	s.pruneLogs(ctx)
	s.pruneTriggerEvents(ctx)
}

func (s *Service) pruneTasks(ctx context.Context) {
	if s.tasks == nil || s.config.TaskRetentionDays <= 0 {
		return
	}
	count, err := s.tasks.DeleteOlderThan(ctx, s.config.TaskRetentionDays)
	if err != nil {
		slog.Error("Retention: task pruning failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned old tasks", "count", count)
	}
}

func (s *Service) pruneLogs(ctx context.Context) {
	if s.logs == nil || s.config.LogRetentionDays <= 0 {
		return
	}
	count, err := s.logs.DeleteOlderThan(ctx, s.config.LogRetentionDays)
	if err != nil {
		slog.Error("Retention: log pruning failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned old stage logs", "count", count)
	}
}

func (s *Service) pruneTriggerEvents(ctx context.Context) {
	if s.trigger == nil || s.config.TriggerEventRetentionDays <= 0 {
		return
	}
	count, err := s.trigger.DeleteEventsOlderThan(ctx, s.config.TriggerEventRetentionDays)
	if err != nil {
		slog.Error("Retention: trigger event pruning failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned old trigger events", "count", count)
	}
}
