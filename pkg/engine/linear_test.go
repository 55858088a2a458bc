package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/events"
	"github.com/stewardhq/steward/pkg/executor"
	"github.com/stewardhq/steward/pkg/models"
)

func TestProcessTaskLinearHappyPath(t *testing.T) {
	tmpl := linearTemplate(
		stageDef("analyze", "analyst", 1),
		stageDef("implement", "coder", 2),
	)
	h := newHarness(testConfig(), buildTask(tmpl), newFakeGates())

	require.NoError(t, h.process())

	task := h.tasks.current()
	assert.Equal(t, models.TaskStatusCompleted, task.Status)
	assert.Equal(t, []models.TaskStatus{
		models.TaskStatusRunning,
		models.TaskStatusCompleted,
	}, h.tasks.statusTrail())

	reqs := h.exec.requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "analyze", reqs[0].StageName)
	assert.Equal(t, "implement", reqs[1].StageName)
	assert.Contains(t, reqs[1].UserPrompt, "Output of stage analyze")
	assert.Contains(t, reqs[1].UserPrompt, "output of analyze")

	// 100 tokens per stage at the default rate.
	assert.Equal(t, 200, task.TotalTokens)
	assert.InDelta(t, 0.002, task.TotalCost, 1e-9)

	assert.True(t, h.audits.has("task_started"))
	assert.True(t, h.audits.has("stage_completed"))
	assert.True(t, h.audits.has("task_completed"))
	assert.True(t, h.bc.has(events.EventTaskStatusChanged))
	assert.Equal(t, 1, h.ws.cleanups)
	require.NotEmpty(t, h.kpis.records)
}

func TestProcessTaskResumesPastCompletedStage(t *testing.T) {
	tmpl := linearTemplate(
		stageDef("analyze", "analyst", 1),
		stageDef("implement", "coder", 2),
	)
	task := buildTask(tmpl)
	task.Stages[0].Status = models.StageStatusCompleted
	task.Stages[0].Output = "analysis from the previous claim"
	h := newHarness(testConfig(), task, newFakeGates())

	require.NoError(t, h.process())

	reqs := h.exec.requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "implement", reqs[0].StageName)
	assert.Contains(t, reqs[0].UserPrompt, "analysis from the previous claim")
}

func TestProcessTaskConditionSkip(t *testing.T) {
	tmpl := linearTemplate(
		stageDef("test", "tester", 1),
		stageDef("fix", "coder", 2),
	)
	tmpl.Stages[1].Condition = &models.Condition{
		SourceStage: "test",
		Field:       "status",
		Operator:    "eq",
		Value:       "fail",
	}
	h := newHarness(testConfig(), buildTask(tmpl), newFakeGates())
	h.engine.contracts = &fakeContracts{byText: map[string]*models.StructuredOutput{
		"output of test": {Summary: "all green", Status: "pass", Confidence: 0.95},
	}}

	require.NoError(t, h.process())

	assert.Equal(t, models.TaskStatusCompleted, h.tasks.current().Status)
	assert.Len(t, h.exec.requests(), 1)
	assert.Equal(t, models.StageStatusSkipped, h.stages.byID["st-fix"].Status)
	assert.True(t, h.audits.has("stage_skipped"))
}

func TestProcessTaskAutoRetryThenSuccess(t *testing.T) {
	tmpl := linearTemplate(stageDef("implement", "coder", 1))
	tmpl.Stages[0].MaxRetries = 2

	h := newHarness(testConfig(), buildTask(tmpl), newFakeGates())
	h.exec.stage("implement",
		execResult{err: &executor.Error{
			Category: models.FailureTransient,
			Message:  "connection reset",
			Partial:  &executor.Result{Text: "half an answer", TotalTokens: 40},
		}},
		execResult{res: &executor.Result{Text: "done", TotalTokens: 80, Turns: 2}},
	)

	require.NoError(t, h.process())

	reqs := h.exec.callsFor("implement")
	require.Len(t, reqs, 2)
	assert.Contains(t, reqs[1].UserPrompt, "previous attempt failed")
	assert.Contains(t, reqs[1].UserPrompt, "half an answer")

	st := h.stages.byID["st-implement"]
	assert.Equal(t, models.StageStatusCompleted, st.Status)
	assert.Equal(t, 1, st.RetryCount)
	assert.Equal(t, 2, st.ExecutionCount)

	// Partial usage of the failed attempt is credited too.
	assert.Equal(t, 120, h.tasks.current().TotalTokens)
	assert.Equal(t, models.TaskStatusCompleted, h.tasks.current().Status)
}

func TestProcessTaskRetryStopsAtExecutionBudget(t *testing.T) {
	tmpl := linearTemplate(stageDef("implement", "coder", 1))
	tmpl.Stages[0].MaxRetries = 4

	h := newHarness(testConfig(), buildTask(tmpl), newFakeGates())
	transient := execResult{err: &executor.Error{
		Category: models.FailureTransient,
		Message:  "connection reset",
	}}
	h.exec.stage("implement",
		transient, transient, transient, transient,
		execResult{res: &executor.Result{Text: "done", TotalTokens: 80}},
	)

	err := h.process()
	require.Error(t, err)

	// A retry allowance larger than the execution budget never runs the
	// stage past the budget.
	assert.Len(t, h.exec.callsFor("implement"), models.DefaultMaxExecutions)
	st := h.stages.byID["st-implement"]
	assert.Equal(t, models.DefaultMaxExecutions, st.ExecutionCount)
	assert.Equal(t, models.StageStatusFailed, st.Status)
	assert.Contains(t, st.Error, "execution budget exhausted after 3 executions")

	task := h.tasks.current()
	assert.Equal(t, models.TaskStatusFailed, task.Status)
	assert.Contains(t, task.Error, "execution budget exhausted")
	assert.True(t, h.audits.has("stage_failed"))
}

func TestProcessTaskStageExecutionBudgetOverride(t *testing.T) {
	tmpl := linearTemplate(stageDef("implement", "coder", 1))
	tmpl.Stages[0].MaxRetries = 4
	tmpl.Stages[0].MaxExecutions = 2

	h := newHarness(testConfig(), buildTask(tmpl), newFakeGates())
	transient := execResult{err: &executor.Error{
		Category: models.FailureTransient,
		Message:  "connection reset",
	}}
	h.exec.stage("implement", transient, transient, transient)

	err := h.process()
	require.Error(t, err)

	assert.Len(t, h.exec.callsFor("implement"), 2)
	assert.Equal(t, 2, h.stages.byID["st-implement"].ExecutionCount)
	assert.Contains(t, h.tasks.current().Error, "after 2 executions")
}

func TestProcessTaskSemanticFailureIsNotRetried(t *testing.T) {
	tmpl := linearTemplate(stageDef("implement", "coder", 1))
	tmpl.Stages[0].MaxRetries = 2

	h := newHarness(testConfig(), buildTask(tmpl), newFakeGates())
	h.exec.stage("implement", execResult{err: &executor.Error{
		Category: models.FailureSemantic,
		Message:  "contradictory requirements",
	}})

	err := h.process()
	require.Error(t, err)

	assert.Len(t, h.exec.callsFor("implement"), 1)
	task := h.tasks.current()
	assert.Equal(t, models.TaskStatusFailed, task.Status)
	assert.Contains(t, task.Error, "implement")
	assert.True(t, h.audits.has("stage_failed"))
	assert.True(t, h.audits.has("task_failed"))
	assert.Equal(t, 1, h.ws.cleanups)
}

func TestProcessTaskBreakerTripsOnTokenBudget(t *testing.T) {
	cfg := testConfig()
	cfg.Breaker.MaxTokensPerTask = 150

	tmpl := linearTemplate(
		stageDef("analyze", "analyst", 1),
		stageDef("implement", "coder", 2),
	)
	h := newHarness(cfg, buildTask(tmpl), newFakeGates())

	err := h.process()
	require.Error(t, err)

	require.Len(t, h.breakers.tripped, 1)
	assert.Equal(t, "token_limit", h.breakers.tripped[0].TriggeredBy)
	assert.Equal(t, 1, h.breakers.tripped[0].Level)

	task := h.tasks.current()
	assert.Equal(t, models.TaskStatusFailed, task.Status)
	assert.Contains(t, task.Error, "circuit breaker tripped")

	// The second stage itself stays completed; only the task fails.
	assert.Equal(t, models.StageStatusCompleted, h.stages.byID["st-implement"].Status)
	assert.True(t, h.bc.has(events.EventBreakerTriggered))
	assert.True(t, h.audits.has("circuit_breaker_tripped"))
}

func TestProcessTaskWorkspaceSetupFailure(t *testing.T) {
	tmpl := linearTemplate(stageDef("implement", "coder", 1))
	h := newHarness(testConfig(), buildTask(tmpl), newFakeGates())
	h.ws.setupErr = errors.New("git clone failed")

	err := h.process()
	require.Error(t, err)

	task := h.tasks.current()
	assert.Equal(t, models.TaskStatusFailed, task.Status)
	assert.Contains(t, task.Error, "workspace setup")
	assert.Empty(t, h.exec.requests())
}

func TestProcessTaskWithoutTemplateFails(t *testing.T) {
	task := &models.Task{ID: "t1", Status: models.TaskStatusClaimed}
	h := newHarness(testConfig(), task, newFakeGates())

	err := h.process()
	require.Error(t, err)
	assert.Equal(t, models.TaskStatusFailed, h.tasks.current().Status)
}

func TestProcessTaskPushesBranchAndOpensPR(t *testing.T) {
	cfg := testConfig()
	cfg.Worktree.AutoPR = true

	tmpl := linearTemplate(stageDef("implement", "coder", 1))
	h := newHarness(cfg, buildTask(tmpl), newFakeGates())
	h.ws.ws = workspaceFixture("steward/task-1")
	h.ws.pushed = true
	h.ws.prURL = "https://github.com/acme/api/pull/42"

	require.NoError(t, h.process())

	task := h.tasks.current()
	assert.Equal(t, "steward/task-1", task.BranchName)
	assert.Equal(t, "https://github.com/acme/api/pull/42", task.PRURL)
	assert.True(t, h.audits.has("pr_created"))
	require.Len(t, h.ws.commits, 1)
	assert.Contains(t, h.ws.commits[0], task.Title)
}

func TestGroupByOrder(t *testing.T) {
	stages := []*models.Stage{
		{Name: "c", ExecOrder: 2},
		{Name: "a", ExecOrder: 1},
		{Name: "b", ExecOrder: 2},
		{Name: "d", ExecOrder: 3},
	}
	groups := groupByOrder(stages)

	require.Len(t, groups, 3)
	assert.Equal(t, "a", groups[0][0].Name)
	require.Len(t, groups[1], 2)
	assert.Equal(t, "b", groups[1][0].Name)
	assert.Equal(t, "c", groups[1][1].Name)
	assert.Equal(t, "d", groups[2][0].Name)
}

func TestHoistStage(t *testing.T) {
	groups := [][]*models.Stage{
		{{Name: "test"}, {Name: "lint"}},
		{{Name: "deploy"}},
	}

	out := hoistStage(groups, "lint")
	require.Len(t, out, 3)
	assert.Equal(t, "lint", out[0][0].Name)
	assert.Equal(t, "test", out[1][0].Name)
	assert.Equal(t, "deploy", out[2][0].Name)

	// Unknown targets keep the declared order.
	same := hoistStage(groups, "nonexistent")
	assert.Equal(t, groups, same)
}
