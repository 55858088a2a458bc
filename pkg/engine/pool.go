package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/models"
	"github.com/stewardhq/steward/pkg/store"
)

// Pool runs the claim workers. Each worker polls the queue, claims the
// oldest pending task and processes it to a terminal state; a shared
// registry of cancel functions lets operators cut a running task short.
type Pool struct {
	engine *Engine
	cfg    config.WorkerConfig

	mu     sync.Mutex
	active map[string]context.CancelFunc

	lifecycle sync.Mutex // serializes Start and Stop
	stop      chan struct{}
	wg        sync.WaitGroup
}

// NewPool creates the worker pool over an engine.
func NewPool(e *Engine) *Pool {
	return &Pool{
		engine: e,
		cfg:    e.cfg.Worker,
		active: make(map[string]context.CancelFunc),
	}
}

// Start recovers interrupted work, then launches the claim workers and
// the orphan scan.
func (p *Pool) Start(ctx context.Context) error {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()
	if p.stop != nil {
		return nil
	}

	recovered, err := p.engine.stores.Tasks.RecoverStale(ctx)
	if err != nil {
		return fmt.Errorf("stale task recovery: %w", err)
	}
	if recovered > 0 {
		slog.Info("Recovered stale tasks", "count", recovered)
	}
	if err := p.engine.workspaces.PruneStaleWorktrees(ctx); err != nil {
		slog.Warn("Stale worktree pruning failed", "error", err)
	}

	p.stop = make(chan struct{})
	for i := 0; i < p.cfg.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	p.wg.Add(1)
	go p.orphanLoop()

	slog.Info("Worker pool started",
		"workers", p.cfg.WorkerCount,
		"max_concurrent_tasks", p.cfg.MaxConcurrentTasks)
	return nil
}

// Stop drains the workers. Tasks still in flight after the graceful
// window get their contexts cancelled; startup recovery or the orphan
// scan of another pod requeues them.
func (p *Pool) Stop() {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()
	if p.stop == nil {
		return
	}
	close(p.stop)

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(p.cfg.GracefulShutdownTimeout()):
		slog.Warn("Graceful drain timed out, cancelling active tasks", "active", p.ActiveCount())
		p.cancelAll()
		<-done
	}
	p.stop = nil
	slog.Info("Worker pool stopped")
}

// CancelTask cancels the local processing context of an active task.
// The caller is expected to have moved the task row to cancelled first.
func (p *Pool) CancelTask(taskID string) bool {
	p.mu.Lock()
	cancel, ok := p.active[taskID]
	p.mu.Unlock()
	if ok {
		cancel()
	}
	return ok
}

// ActiveCount returns the number of tasks this pool is processing.
func (p *Pool) ActiveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.active)
}

// Health is the pool snapshot exposed on the readiness surface.
type Health struct {
	Workers     int      `json:"workers"`
	ActiveTasks []string `json:"active_tasks"`
}

// Health snapshots the pool.
func (p *Pool) Health() Health {
	p.mu.Lock()
	defer p.mu.Unlock()
	tasks := make([]string, 0, len(p.active))
	for id := range p.active {
		tasks = append(tasks, id)
	}
	sort.Strings(tasks)
	return Health{Workers: p.cfg.WorkerCount, ActiveTasks: tasks}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	workerID := workerName(id)
	for {
		select {
		case <-p.stop:
			return
		case <-time.After(p.jitteredPoll()):
		}
		p.claimOne(workerID)
	}
}

func (p *Pool) claimOne(workerID string) {
	ctx := context.Background()

	active, err := p.engine.stores.Tasks.CountActive(ctx)
	if err != nil {
		slog.Warn("Active task count failed", "worker", workerID, "error", err)
		return
	}
	if p.cfg.MaxConcurrentTasks > 0 && active >= p.cfg.MaxConcurrentTasks {
		return
	}

	task, err := p.engine.stores.Tasks.ClaimOldestPending(ctx, workerID)
	if err != nil {
		if !errors.Is(err, store.ErrNoTasksAvailable) {
			slog.Error("Task claim failed", "worker", workerID, "error", err)
		}
		return
	}
	p.runClaimed(workerID, task)
}

func (p *Pool) runClaimed(workerID string, task *models.Task) {
	ctx, cancel := context.WithTimeout(context.Background(), p.cfg.TaskTimeout())
	defer cancel()
	p.register(task.ID, cancel)
	defer p.unregister(task.ID)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.heartbeat(ctx, task.ID, workerID)
	}()

	if err := p.engine.ProcessTask(ctx, task); err != nil {
		slog.Error("Task processing ended with error",
			"task_id", task.ID, "worker", workerID, "error", err)
	}
}

// heartbeat refreshes the claim while the task is processed. A lost
// claim cancels the local processing; another pod owns the task now.
func (p *Pool) heartbeat(ctx context.Context, taskID, workerID string) {
	interval := p.cfg.HeartbeatInterval()
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := p.engine.stores.Tasks.Heartbeat(ctx, taskID, workerID)
			switch {
			case err == nil:
			case errors.Is(err, store.ErrConcurrentModification):
				slog.Warn("Task claim lost, cancelling local processing",
					"task_id", taskID, "worker", workerID)
				p.CancelTask(taskID)
				return
			default:
				slog.Warn("Heartbeat failed", "task_id", taskID, "error", err)
			}
		}
	}
}

func (p *Pool) orphanLoop() {
	defer p.wg.Done()
	interval := p.cfg.OrphanCheckInterval()
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
		}
		p.requeueOrphans()
	}
}

// requeueOrphans returns tasks whose worker stopped heartbeating to
// the pending queue. Stage state survives, so the next claim resumes.
func (p *Pool) requeueOrphans() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stale, err := p.engine.stores.Tasks.FindStale(ctx, p.cfg.OrphanThreshold())
	if err != nil {
		slog.Warn("Orphan scan failed", "error", err)
		return
	}
	for _, t := range stale {
		if p.isActive(t.ID) {
			continue
		}
		if err := p.engine.stores.Tasks.Requeue(ctx, t.ID); err != nil {
			slog.Warn("Orphan requeue failed", "task_id", t.ID, "error", err)
			continue
		}
		slog.Info("Requeued orphaned task", "task_id", t.ID, "claimed_by", t.ClaimedBy)
	}
}

func (p *Pool) register(taskID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active[taskID] = cancel
}

func (p *Pool) unregister(taskID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.active, taskID)
}

func (p *Pool) isActive(taskID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.active[taskID]
	return ok
}

func (p *Pool) cancelAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, cancel := range p.active {
		cancel()
	}
}

func (p *Pool) jitteredPoll() time.Duration {
	base := p.cfg.PollInterval()
	if base <= 0 {
		base = time.Second
	}
	return base + time.Duration(rand.Int63n(int64(base/4)+1))
}

func workerName(id int) string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "steward"
	}
	return fmt.Sprintf("%s-w%d", host, id)
}
