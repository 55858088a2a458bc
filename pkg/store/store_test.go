package store_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/models"
	"github.com/stewardhq/steward/pkg/store"
	testdb "github.com/stewardhq/steward/test/database"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	client := testdb.NewTestClient(t)
	return store.New(client.Client)
}

func seedTemplate(t *testing.T, s *store.Store) *models.Template {
	t.Helper()
	tmpl, err := s.Templates.Create(context.Background(), models.CreateTemplateRequest{
		Name: "bugfix",
		Stages: []models.StageDef{
			{Name: "analyze", AgentRole: "analyst", Order: 1},
			{Name: "implement", AgentRole: "coder", Order: 2},
		},
	})
	require.NoError(t, err)
	return tmpl
}

func seedTask(t *testing.T, s *store.Store, templateID, title string) *models.Task {
	t.Helper()
	task, err := s.Tasks.Create(context.Background(), models.CreateTaskRequest{
		Title:      title,
		TemplateID: templateID,
	})
	require.NoError(t, err)
	return task
}

func TestTaskCreateMaterializesStages(t *testing.T) {
	s := newTestStore(t)
	tmpl := seedTemplate(t, s)

	task := seedTask(t, s, tmpl.ID, "Fix login timeout")

	assert.Equal(t, models.TaskStatusPending, task.Status)
	assert.Equal(t, tmpl.Version, task.TemplateVersion)
	require.Len(t, task.Stages, 2)
	assert.Equal(t, "analyze", task.Stages[0].Name)
	assert.Equal(t, "implement", task.Stages[1].Name)
	for _, st := range task.Stages {
		assert.Equal(t, models.StageStatusPending, st.Status)
	}
}

func TestTaskCreateValidation(t *testing.T) {
	s := newTestStore(t)
	tmpl := seedTemplate(t, s)
	ctx := context.Background()

	_, err := s.Tasks.Create(ctx, models.CreateTaskRequest{TemplateID: tmpl.ID})
	assert.True(t, store.IsValidationError(err))

	_, err = s.Tasks.Create(ctx, models.CreateTaskRequest{Title: "x"})
	assert.True(t, store.IsValidationError(err))

	_, err = s.Tasks.Create(ctx, models.CreateTaskRequest{Title: "x", TemplateID: "missing"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestClaimOldestPendingFIFO(t *testing.T) {
	s := newTestStore(t)
	tmpl := seedTemplate(t, s)
	ctx := context.Background()

	first := seedTask(t, s, tmpl.ID, "first")
	time.Sleep(10 * time.Millisecond)
	second := seedTask(t, s, tmpl.ID, "second")

	claimed, err := s.Tasks.ClaimOldestPending(ctx, "worker-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, claimed.ID)
	assert.Equal(t, models.TaskStatusClaimed, claimed.Status)
	assert.Equal(t, "worker-1", claimed.ClaimedBy)

	claimed, err = s.Tasks.ClaimOldestPending(ctx, "worker-2")
	require.NoError(t, err)
	assert.Equal(t, second.ID, claimed.ID)

	_, err = s.Tasks.ClaimOldestPending(ctx, "worker-1")
	assert.ErrorIs(t, err, store.ErrNoTasksAvailable)
}

func TestClaimConcurrentNoDoubleClaim(t *testing.T) {
	s := newTestStore(t)
	tmpl := seedTemplate(t, s)
	ctx := context.Background()

	const taskCount = 5
	for i := 0; i < taskCount; i++ {
		seedTask(t, s, tmpl.ID, fmt.Sprintf("task %d", i))
	}

	var mu sync.Mutex
	claimed := map[string]string{}
	var duplicates []string

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(workerID string) {
			defer wg.Done()
			for {
				task, err := s.Tasks.ClaimOldestPending(ctx, workerID)
				if err != nil {
					return
				}
				mu.Lock()
				if prev, dup := claimed[task.ID]; dup {
					duplicates = append(duplicates, fmt.Sprintf("%s claimed by %s and %s", task.ID, prev, workerID))
				}
				claimed[task.ID] = workerID
				mu.Unlock()
			}
		}(fmt.Sprintf("worker-%d", w))
	}
	wg.Wait()

	assert.Empty(t, duplicates)
	assert.Len(t, claimed, taskCount)
}

func TestUpdateStatusCAS(t *testing.T) {
	s := newTestStore(t)
	tmpl := seedTemplate(t, s)
	ctx := context.Background()
	task := seedTask(t, s, tmpl.ID, "cas")

	err := s.Tasks.UpdateStatus(ctx, task.ID, models.TaskStatusRunning, "", models.TaskStatusPending)
	require.NoError(t, err)

	// The task is no longer pending, so the same conditional transition
	// reports a lost race.
	err = s.Tasks.UpdateStatus(ctx, task.ID, models.TaskStatusRunning, "", models.TaskStatusPending)
	assert.ErrorIs(t, err, store.ErrConcurrentModification)

	err = s.Tasks.UpdateStatus(ctx, "missing", models.TaskStatusRunning, "")
	assert.ErrorIs(t, err, store.ErrNotFound)

	got, err := s.Tasks.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusRunning, got.Status)
	require.NotNil(t, got.StartedAt)
}

func TestHeartbeatRequiresOwnership(t *testing.T) {
	s := newTestStore(t)
	tmpl := seedTemplate(t, s)
	ctx := context.Background()
	seedTask(t, s, tmpl.ID, "hb")

	task, err := s.Tasks.ClaimOldestPending(ctx, "worker-1")
	require.NoError(t, err)

	require.NoError(t, s.Tasks.Heartbeat(ctx, task.ID, "worker-1"))
	assert.ErrorIs(t, s.Tasks.Heartbeat(ctx, task.ID, "worker-2"), store.ErrConcurrentModification)
}

func TestRecoverStaleRequeues(t *testing.T) {
	s := newTestStore(t)
	tmpl := seedTemplate(t, s)
	ctx := context.Background()
	seedTask(t, s, tmpl.ID, "orphan")

	task, err := s.Tasks.ClaimOldestPending(ctx, "worker-1")
	require.NoError(t, err)

	n, err := s.Tasks.RecoverStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := s.Tasks.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusPending, got.Status)
	assert.Empty(t, got.ClaimedBy)
}

func TestAddUsageAccumulates(t *testing.T) {
	s := newTestStore(t)
	tmpl := seedTemplate(t, s)
	ctx := context.Background()
	task := seedTask(t, s, tmpl.ID, "usage")

	_, err := s.Tasks.AddUsage(ctx, task.ID, 100, 0.001)
	require.NoError(t, err)
	got, err := s.Tasks.AddUsage(ctx, task.ID, 50, 0.0005)
	require.NoError(t, err)

	assert.Equal(t, 150, got.TotalTokens)
	assert.InDelta(t, 0.0015, got.TotalCost, 1e-9)
}

func TestLogSequenceContiguity(t *testing.T) {
	s := newTestStore(t)
	tmpl := seedTemplate(t, s)
	ctx := context.Background()
	task := seedTask(t, s, tmpl.ID, "logs")

	const writers = 4
	const perWriter = 10

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_, err := s.Logs.Append(ctx, models.AppendLogRequest{
					TaskID:    task.ID,
					EventType: "stage_started",
					Source:    models.LogSourceSystem,
					Status:    models.LogStatusSuccess,
					Summary:   fmt.Sprintf("writer %d record %d", w, i),
				})
				assert.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()

	logs, total, err := s.Logs.List(ctx, task.ID, models.StageLogFilters{Limit: writers * perWriter})
	require.NoError(t, err)
	require.Equal(t, writers*perWriter, total)

	// Sequences are contiguous per task starting at 1 regardless of
	// writer interleaving.
	for i, l := range logs {
		assert.Equal(t, i+1, l.Sequence)
	}
}

func TestAppendBatchOrder(t *testing.T) {
	s := newTestStore(t)
	tmpl := seedTemplate(t, s)
	ctx := context.Background()
	task := seedTask(t, s, tmpl.ID, "batch")

	reqs := make([]models.AppendLogRequest, 3)
	for i := range reqs {
		reqs[i] = models.AppendLogRequest{
			TaskID:    task.ID,
			EventType: "llm_call",
			Source:    models.LogSourceLLM,
			Status:    models.LogStatusRunning,
			Request:   fmt.Sprintf("prompt %d", i),
		}
	}
	created, err := s.Logs.AppendBatch(ctx, reqs)
	require.NoError(t, err)
	require.Len(t, created, 3)
	for i, l := range created {
		assert.Equal(t, i+1, l.Sequence)
		assert.Equal(t, fmt.Sprintf("prompt %d", i), l.Request)
	}
}

func TestApplyUpdatesSurvivesMissingRecord(t *testing.T) {
	s := newTestStore(t)
	tmpl := seedTemplate(t, s)
	ctx := context.Background()
	task := seedTask(t, s, tmpl.ID, "patched")

	created, err := s.Logs.AppendBatch(ctx, []models.AppendLogRequest{{
		TaskID:    task.ID,
		EventType: "llm_call",
		Source:    models.LogSourceLLM,
		Status:    models.LogStatusRunning,
	}})
	require.NoError(t, err)
	require.Len(t, created, 1)

	status := models.LogStatusSuccess
	applied, err := s.Logs.ApplyUpdates(ctx, map[string]models.StageLogUpdate{
		created[0].ID: {Status: &status},
		"no-such-log": {Status: &status},
	})

	// The missing record fails alone; the real one still lands.
	require.Error(t, err)
	assert.Equal(t, []string{created[0].ID}, applied)

	logs, _, err := s.Logs.List(ctx, task.ID, models.StageLogFilters{})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, models.LogStatusSuccess, logs[0].Status)
}

func TestGatePendingUniquePerStage(t *testing.T) {
	s := newTestStore(t)
	tmpl := seedTemplate(t, s)
	ctx := context.Background()
	task := seedTask(t, s, tmpl.ID, "gated")

	gate, err := s.Gates.Create(ctx, models.CreateGateRequest{
		TaskID: task.ID, StageName: "implement", GateType: models.GateTypeHumanApprove,
	})
	require.NoError(t, err)

	_, err = s.Gates.Create(ctx, models.CreateGateRequest{
		TaskID: task.ID, StageName: "implement", GateType: models.GateTypeHumanApprove,
	})
	assert.ErrorIs(t, err, store.ErrAlreadyExists)

	_, err = s.Gates.Resolve(ctx, gate.ID, models.ResolveGateRequest{
		Status: models.GateStatusApproved, Reviewer: "alice",
	})
	require.NoError(t, err)

	// Resolving frees the slot for the next retry round.
	_, err = s.Gates.Create(ctx, models.CreateGateRequest{
		TaskID: task.ID, StageName: "implement", GateType: models.GateTypeHumanApprove, RetryCount: 1,
	})
	assert.NoError(t, err)
}

func TestGateResolveOnce(t *testing.T) {
	s := newTestStore(t)
	tmpl := seedTemplate(t, s)
	ctx := context.Background()
	task := seedTask(t, s, tmpl.ID, "gated")

	gate, err := s.Gates.Create(ctx, models.CreateGateRequest{
		TaskID: task.ID, StageName: "analyze", GateType: models.GateTypeHumanApprove,
	})
	require.NoError(t, err)

	resolved, err := s.Gates.Resolve(ctx, gate.ID, models.ResolveGateRequest{
		Status: models.GateStatusRejected, Reviewer: "alice", Comment: "missing tests",
	})
	require.NoError(t, err)
	assert.Equal(t, models.GateStatusRejected, resolved.Status)
	require.NotNil(t, resolved.ReviewedAt)

	_, err = s.Gates.Resolve(ctx, gate.ID, models.ResolveGateRequest{
		Status: models.GateStatusApproved, Reviewer: "bob",
	})
	assert.ErrorIs(t, err, store.ErrGateResolved)
}

func TestTemplateVersioning(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	v1, err := s.Templates.Create(ctx, models.CreateTemplateRequest{
		Name:   "feature",
		Stages: []models.StageDef{{Name: "implement", AgentRole: "coder", Order: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, v1.Version)

	v2, err := s.Templates.Create(ctx, models.CreateTemplateRequest{
		Name: "feature",
		Stages: []models.StageDef{
			{Name: "implement", AgentRole: "coder", Order: 1},
			{Name: "verify", AgentRole: "reviewer", Order: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, v2.Version)
	assert.Equal(t, v1.ID, v2.ParentID)

	latest, err := s.Templates.GetByName(ctx, "feature")
	require.NoError(t, err)
	assert.Equal(t, v2.ID, latest.ID)

	versions, err := s.Templates.ListVersions(ctx, "feature")
	require.NoError(t, err)
	assert.Len(t, versions, 2)
}

func TestStageBeginExecutionRejectsRunning(t *testing.T) {
	s := newTestStore(t)
	tmpl := seedTemplate(t, s)
	ctx := context.Background()
	task := seedTask(t, s, tmpl.ID, "stages")

	stageID := task.Stages[0].ID
	st, err := s.Stages.BeginExecution(ctx, stageID)
	require.NoError(t, err)
	assert.Equal(t, models.StageStatusRunning, st.Status)
	assert.Equal(t, 1, st.ExecutionCount)

	_, err = s.Stages.BeginExecution(ctx, stageID)
	assert.ErrorIs(t, err, store.ErrConcurrentModification)

	require.NoError(t, s.Stages.Complete(ctx, stageID, models.StageCompletion{
		Output: "done", TokensUsed: 10,
	}))

	// Re-execution after completion resets and bumps the counter.
	st, err = s.Stages.BeginExecution(ctx, stageID)
	require.NoError(t, err)
	assert.Equal(t, 2, st.ExecutionCount)
}
