package engine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/models"
)

func poolHarness(t *testing.T, mutate func(*harness)) (*harness, *Pool) {
	t.Helper()
	cfg := testConfig()
	cfg.Worker.WorkerCount = 1
	cfg.Worker.PollIntervalSeconds = 0 // floored to one second
	cfg.Worker.GracefulShutdownSeconds = 5

	task := buildTask(linearTemplate(stageDef("implement", "coder", 1)))
	task.Status = models.TaskStatusPending

	h := newHarness(cfg, task, newFakeGates())
	h.tasks.queue = []*models.Task{task}
	if mutate != nil {
		mutate(h)
	}
	return h, NewPool(h.engine)
}

func TestPoolClaimsAndProcessesTask(t *testing.T) {
	h, pool := poolHarness(t, nil)

	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		return h.tasks.current().Status == models.TaskStatusCompleted
	}, 10*time.Second, 50*time.Millisecond)

	task := h.tasks.current()
	assert.NotEmpty(t, task.ClaimedBy)
	assert.Len(t, h.exec.requests(), 1)
}

func TestPoolRespectsConcurrencyCap(t *testing.T) {
	h, pool := poolHarness(t, func(h *harness) {
		h.cfg.Worker.MaxConcurrentTasks = 2
		h.tasks.active = 2
	})

	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	// Capacity is saturated, so the queued task is never claimed.
	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, models.TaskStatusPending, h.tasks.current().Status)
	assert.Empty(t, h.exec.requests())
}

func TestPoolStopDrains(t *testing.T) {
	h, pool := poolHarness(t, nil)

	require.NoError(t, pool.Start(context.Background()))
	require.Eventually(t, func() bool {
		return h.tasks.current().Status == models.TaskStatusCompleted
	}, 10*time.Second, 50*time.Millisecond)

	pool.Stop()
	assert.Equal(t, 0, pool.ActiveCount())

	// Stop is idempotent.
	pool.Stop()
}

func TestPoolStartStopConcurrentlySafe(t *testing.T) {
	_, pool := poolHarness(t, func(h *harness) {
		h.tasks.queue = nil
	})

	// Start and Stop race from several goroutines; the lifecycle lock
	// keeps the transitions serialized.
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 5; j++ {
				assert.NoError(t, pool.Start(context.Background()))
				pool.Stop()
			}
		}()
	}
	wg.Wait()

	// The pool restarts cleanly after the churn.
	require.NoError(t, pool.Start(context.Background()))
	pool.Stop()
	assert.Equal(t, 0, pool.ActiveCount())
}

func TestPoolCancelTaskUnknown(t *testing.T) {
	_, pool := poolHarness(t, nil)
	assert.False(t, pool.CancelTask("no-such-task"))
}

func TestPoolHealth(t *testing.T) {
	_, pool := poolHarness(t, nil)
	health := pool.Health()
	assert.Equal(t, 1, health.Workers)
	assert.Empty(t, health.ActiveTasks)
}

func TestWorkerName(t *testing.T) {
	name := workerName(3)
	assert.Contains(t, name, "-w3")
}
