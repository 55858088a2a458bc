package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/events"
	"github.com/stewardhq/steward/pkg/models"
)

func gatedTemplate(maxRetries int) *models.Template {
	tmpl := linearTemplate(
		stageDef("implement", "coder", 1),
		stageDef("verify", "tester", 2),
	)
	tmpl.Gates = []models.GateDef{{
		AfterStage: "implement",
		Type:       models.GateTypeHumanApprove,
		MaxRetries: maxRetries,
	}}
	return tmpl
}

func TestGateApproved(t *testing.T) {
	gates := newFakeGates(models.ResolveGateRequest{
		Status:   models.GateStatusApproved,
		Reviewer: "alice",
	})
	h := newHarness(testConfig(), buildTask(gatedTemplate(0)), gates)

	require.NoError(t, h.process())

	require.Len(t, gates.created, 1)
	assert.Equal(t, "implement", gates.created[0].StageName)
	assert.Equal(t, models.GateTypeHumanApprove, gates.created[0].GateType)
	assert.False(t, gates.created[0].IsDynamic)

	assert.Len(t, h.exec.callsFor("implement"), 1)
	assert.Equal(t, models.TaskStatusCompleted, h.tasks.current().Status)

	types := h.sink.eventTypes()
	assert.Contains(t, types, "gate_wait_started")
	assert.Contains(t, types, "gate_wait_finished")
	assert.True(t, h.bc.has(events.EventGateCreated))
	assert.True(t, h.bc.has(events.EventGateApproved))
}

func TestGateRejectedThenApproved(t *testing.T) {
	gates := newFakeGates(
		models.ResolveGateRequest{
			Status:   models.GateStatusRejected,
			Reviewer: "alice",
			Comment:  "error handling is missing",
		},
		models.ResolveGateRequest{Status: models.GateStatusApproved, Reviewer: "alice"},
	)
	task := buildTask(gatedTemplate(2))
	task.ProjectID = "proj-1"
	h := newHarness(testConfig(), task, gates)

	require.NoError(t, h.process())

	reqs := h.exec.callsFor("implement")
	require.Len(t, reqs, 2)
	assert.Contains(t, reqs[1].UserPrompt, "rejected the previous output")
	assert.Contains(t, reqs[1].UserPrompt, "error handling is missing")
	assert.Contains(t, reqs[1].UserPrompt, "1/2")

	// The rejection comment becomes a project lesson and skill feedback.
	require.Len(t, h.memory.entries[models.BucketIssues], 1)
	assert.Contains(t, h.memory.entries[models.BucketIssues][0].Content, "error handling is missing")
	require.Len(t, h.skills.entries, 1)
	assert.Equal(t, "coder", h.skills.entries[0].AgentRole)

	// The second gate carries the retry count.
	require.Len(t, gates.created, 2)
	assert.Equal(t, 1, gates.created[1].RetryCount)
	assert.Equal(t, models.TaskStatusCompleted, h.tasks.current().Status)
}

func TestGateRejectionExhaustsRetries(t *testing.T) {
	gates := newFakeGates(
		models.ResolveGateRequest{Status: models.GateStatusRejected, Comment: "wrong approach"},
		models.ResolveGateRequest{Status: models.GateStatusRejected, Comment: "still wrong"},
	)
	h := newHarness(testConfig(), buildTask(gatedTemplate(1)), gates)

	err := h.process()
	require.Error(t, err)

	assert.Len(t, h.exec.callsFor("implement"), 2)
	task := h.tasks.current()
	assert.Equal(t, models.TaskStatusFailed, task.Status)
	assert.Contains(t, task.Error, "rejected by reviewer")
	assert.Contains(t, task.Error, "still wrong")
	assert.True(t, h.bc.has(events.EventGateRejected))
}

func TestGateRejectionsSpendExecutionBudget(t *testing.T) {
	gates := newFakeGates(
		models.ResolveGateRequest{Status: models.GateStatusRejected, Comment: "wrong approach"},
		models.ResolveGateRequest{Status: models.GateStatusRejected, Comment: "still wrong"},
		models.ResolveGateRequest{Status: models.GateStatusRejected, Comment: "wrong again"},
	)
	h := newHarness(testConfig(), buildTask(gatedTemplate(5)), gates)

	err := h.process()
	require.Error(t, err)

	// A generous gate retry allowance still cannot run the stage past
	// its execution budget.
	assert.Len(t, h.exec.callsFor("implement"), models.DefaultMaxExecutions)
	st := h.stages.byID["st-implement"]
	assert.Equal(t, models.DefaultMaxExecutions, st.ExecutionCount)
	assert.Equal(t, models.StageStatusFailed, st.Status)
	assert.Equal(t, models.FailureGateRejected, st.FailureCategory)

	task := h.tasks.current()
	assert.Equal(t, models.TaskStatusFailed, task.Status)
	assert.Contains(t, task.Error, "execution budget exhausted after 3 executions")
}

func TestGateRevisedFeedsRevisionIntoRerun(t *testing.T) {
	gates := newFakeGates(
		models.ResolveGateRequest{
			Status:         models.GateStatusRevised,
			Reviewer:       "bob",
			Comment:        "use the retry helper",
			RevisedContent: "call retryablehttp instead of raw http",
		},
		models.ResolveGateRequest{Status: models.GateStatusApproved},
	)
	h := newHarness(testConfig(), buildTask(gatedTemplate(2)), gates)

	require.NoError(t, h.process())

	reqs := h.exec.callsFor("implement")
	require.Len(t, reqs, 2)
	assert.Contains(t, reqs[1].UserPrompt, "call retryablehttp instead of raw http")
	assert.Contains(t, reqs[1].UserPrompt, "use the retry helper")
	assert.True(t, h.bc.has(events.EventGateRevised))
	assert.Equal(t, models.TaskStatusCompleted, h.tasks.current().Status)
}

func TestGateTimeoutFailsTask(t *testing.T) {
	cfg := testConfig()
	cfg.Worker.GateMaxWaitSeconds = 0

	h := newHarness(cfg, buildTask(gatedTemplate(0)), newFakeGates())

	err := h.process()
	require.Error(t, err)

	task := h.tasks.current()
	assert.Equal(t, models.TaskStatusFailed, task.Status)
	assert.Contains(t, task.Error, "timed out waiting for review")
	assert.Contains(t, h.sink.eventTypes(), "gate_wait_timeout")
}

func TestDynamicGateOnLowConfidence(t *testing.T) {
	cfg := testConfig()
	cfg.Features.DynamicGates = true

	gates := newFakeGates(models.ResolveGateRequest{Status: models.GateStatusApproved})
	tmpl := linearTemplate(stageDef("implement", "coder", 1))
	h := newHarness(cfg, buildTask(tmpl), gates)
	h.engine.contracts = &fakeContracts{byText: map[string]*models.StructuredOutput{
		"output of implement": {Summary: "not sure about the locking", Status: "pass", Confidence: 0.3},
	}}

	require.NoError(t, h.process())

	require.Len(t, gates.created, 1)
	assert.True(t, gates.created[0].IsDynamic)
	assert.Equal(t, models.GateTypeConfidenceReview, gates.created[0].GateType)
	assert.Equal(t, models.TaskStatusCompleted, h.tasks.current().Status)
}

func TestConfidentStageSkipsDynamicGate(t *testing.T) {
	cfg := testConfig()
	cfg.Features.DynamicGates = true

	gates := newFakeGates()
	tmpl := linearTemplate(stageDef("implement", "coder", 1))
	h := newHarness(cfg, buildTask(tmpl), gates)

	require.NoError(t, h.process())
	assert.Empty(t, gates.created)
}
