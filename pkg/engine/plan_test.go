package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/models"
)

func interactiveTemplate() *models.Template {
	tmpl := linearTemplate(
		stageDef("parse", "planner", 1),
		stageDef("implement", "coder", 2),
	)
	tmpl.Interactive = true
	return tmpl
}

func TestPlanningPauseApproved(t *testing.T) {
	gates := newFakeGates(models.ResolveGateRequest{
		Status:   models.GateStatusApproved,
		Reviewer: "alice",
	})
	h := newHarness(testConfig(), buildTask(interactiveTemplate()), gates)

	require.NoError(t, h.process())

	task := h.tasks.current()
	assert.Equal(t, models.TaskStatusCompleted, task.Status)
	assert.Equal(t, "output of parse", task.Plan)
	assert.Equal(t, []models.TaskStatus{
		models.TaskStatusRunning,
		models.TaskStatusPlanning,
		models.TaskStatusRunning,
		models.TaskStatusCompleted,
	}, h.tasks.statusTrail())

	require.Len(t, gates.created, 1)
	assert.Equal(t, models.GateTypePlanReview, gates.created[0].GateType)
	assert.True(t, h.audits.has("planning_started"))
	assert.True(t, h.audits.has("plan_approved"))

	// The approved plan reaches downstream prompts.
	reqs := h.exec.callsFor("implement")
	require.Len(t, reqs, 1)
	assert.Contains(t, reqs[0].UserPrompt, "Approved plan:\noutput of parse")
}

func TestPlanningPauseRevisedReplacesPlanWithoutRerun(t *testing.T) {
	gates := newFakeGates(models.ResolveGateRequest{
		Status:         models.GateStatusRevised,
		Reviewer:       "bob",
		RevisedContent: "1. add the index first\n2. then migrate",
	})
	h := newHarness(testConfig(), buildTask(interactiveTemplate()), gates)

	require.NoError(t, h.process())

	task := h.tasks.current()
	assert.Equal(t, models.TaskStatusCompleted, task.Status)
	assert.Equal(t, "1. add the index first\n2. then migrate", task.Plan)
	assert.True(t, h.audits.has("plan_revised"))

	// Revision replaces the plan wholesale; parse does not run again.
	assert.Len(t, h.exec.callsFor("parse"), 1)

	reqs := h.exec.callsFor("implement")
	require.Len(t, reqs, 1)
	assert.Contains(t, reqs[0].UserPrompt, "add the index first")
}

func TestPlanningPauseRejectedRerunsParse(t *testing.T) {
	gates := newFakeGates(
		models.ResolveGateRequest{
			Status:  models.GateStatusRejected,
			Comment: "the plan skips the rollout step",
		},
		models.ResolveGateRequest{Status: models.GateStatusApproved},
	)
	h := newHarness(testConfig(), buildTask(interactiveTemplate()), gates)

	require.NoError(t, h.process())

	// Rejection clears the plan and re-executes parse, which pauses again.
	reqs := h.exec.callsFor("parse")
	require.Len(t, reqs, 2)
	assert.Contains(t, reqs[1].UserPrompt, "the plan skips the rollout step")

	require.Len(t, gates.created, 2)
	assert.Equal(t, 1, gates.created[1].RetryCount)
	assert.Equal(t, models.TaskStatusCompleted, h.tasks.current().Status)
	assert.Equal(t, "output of parse", h.tasks.current().Plan)
}

func TestPlanningPauseRejectionExhausted(t *testing.T) {
	cfg := testConfig()
	cfg.Worker.GateDefaultMaxRetries = 1

	gates := newFakeGates(
		models.ResolveGateRequest{Status: models.GateStatusRejected, Comment: "no"},
		models.ResolveGateRequest{Status: models.GateStatusRejected, Comment: "still no"},
	)
	h := newHarness(cfg, buildTask(interactiveTemplate()), gates)

	err := h.process()
	require.Error(t, err)

	task := h.tasks.current()
	assert.Equal(t, models.TaskStatusFailed, task.Status)
	assert.Contains(t, task.Error, "plan rejected")
}

func TestNonInteractiveTemplateSkipsPlanning(t *testing.T) {
	tmpl := linearTemplate(
		stageDef("parse", "planner", 1),
		stageDef("implement", "coder", 2),
	)
	gates := newFakeGates()
	h := newHarness(testConfig(), buildTask(tmpl), gates)

	require.NoError(t, h.process())
	assert.Empty(t, gates.created)
	assert.Empty(t, h.tasks.current().Plan)
}
