package cleanup

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/config"
)

type countingPruner struct {
	calls atomic.Int32
	days  atomic.Int32
	err   error
}

func (p *countingPruner) DeleteOlderThan(_ context.Context, retentionDays int) (int, error) {
	p.calls.Add(1)
	p.days.Store(int32(retentionDays))
	if p.err != nil {
		return 0, p.err
	}
	return 2, nil
}

func (p *countingPruner) DeleteEventsOlderThan(ctx context.Context, retentionDays int) (int, error) {
	return p.DeleteOlderThan(ctx, retentionDays)
}

func TestRunAllPrunesEverything(t *testing.T) {
	tasks := &countingPruner{}
	logs := &countingPruner{}
	trigger := &countingPruner{}
	s := NewService(config.DefaultRetentionConfig(), tasks, logs, trigger)

	s.RunAll(context.Background())

	assert.Equal(t, int32(1), tasks.calls.Load())
	assert.Equal(t, int32(90), tasks.days.Load())
	assert.Equal(t, int32(1), logs.calls.Load())
	assert.Equal(t, int32(30), logs.days.Load())
	assert.Equal(t, int32(1), trigger.calls.Load())
	assert.Equal(t, int32(14), trigger.days.Load())
}

func TestRunAllContinuesPastFailures(t *testing.T) {
	tasks := &countingPruner{err: errors.New("db down")}
	logs := &countingPruner{}
	s := NewService(config.DefaultRetentionConfig(), tasks, logs, nil)

	s.RunAll(context.Background())

	assert.Equal(t, int32(1), tasks.calls.Load())
	assert.Equal(t, int32(1), logs.calls.Load())
}

func TestDisabledRetentionSkips(t *testing.T) {
	cfg := config.RetentionConfig{CleanupIntervalMinutes: 60}
	tasks := &countingPruner{}
	s := NewService(cfg, tasks, nil, nil)

	s.RunAll(context.Background())
	assert.Equal(t, int32(0), tasks.calls.Load())
}

func TestStartRunsImmediatelyAndStops(t *testing.T) {
	tasks := &countingPruner{}
	s := NewService(config.DefaultRetentionConfig(), tasks, nil, nil)

	s.Start(context.Background())
	require.Eventually(t, func() bool { return tasks.calls.Load() == 1 },
		2*time.Second, 10*time.Millisecond)
	s.Stop()
}
