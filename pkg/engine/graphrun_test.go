package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/executor"
	"github.com/stewardhq/steward/pkg/models"
)

func graphTemplate(defs ...models.StageDef) *models.Template {
	tmpl := linearTemplate(defs...)
	tmpl.Name = "graph-pipeline"
	return tmpl
}

func TestRunGraphDiamond(t *testing.T) {
	tmpl := graphTemplate(
		models.StageDef{Name: "analyze", AgentRole: "analyst"},
		models.StageDef{Name: "backend", AgentRole: "coder", DependsOn: []string{"analyze"}},
		models.StageDef{Name: "frontend", AgentRole: "coder", DependsOn: []string{"analyze"}},
		models.StageDef{Name: "verify", AgentRole: "tester", DependsOn: []string{"backend", "frontend"}},
	)
	h := newHarness(testConfig(), buildTask(tmpl), newFakeGates())

	require.NoError(t, h.process())

	reqs := h.exec.requests()
	require.Len(t, reqs, 4)
	assert.Equal(t, "analyze", reqs[0].StageName)
	assert.Equal(t, "verify", reqs[3].StageName)
	middle := []string{reqs[1].StageName, reqs[2].StageName}
	assert.ElementsMatch(t, []string{"backend", "frontend"}, middle)

	assert.Equal(t, models.TaskStatusCompleted, h.tasks.current().Status)
	for _, name := range []string{"analyze", "backend", "frontend", "verify"} {
		assert.Equal(t, models.StageStatusCompleted, h.stages.byID["st-"+name].Status, name)
	}
}

func TestRunGraphFailureRedirect(t *testing.T) {
	tmpl := graphTemplate(
		models.StageDef{Name: "implement", AgentRole: "coder"},
		models.StageDef{Name: "verify", AgentRole: "tester", DependsOn: []string{"implement"}, OnFailure: "implement"},
	)
	h := newHarness(testConfig(), buildTask(tmpl), newFakeGates())
	h.exec.stage("verify", execResult{err: &executor.Error{
		Category: models.FailureSemantic,
		Message:  "tests failed",
	}})

	require.NoError(t, h.process())

	// The failed verify redirects implement back to pending for a re-run.
	assert.Contains(t, h.stages.resets, "implement")
	assert.Len(t, h.exec.callsFor("implement"), 2)
	assert.Len(t, h.exec.callsFor("verify"), 2)
	assert.True(t, h.audits.has("failure_redirected"))
	assert.Equal(t, models.TaskStatusCompleted, h.tasks.current().Status)
}

func TestRunGraphExecutionBudgetExhausted(t *testing.T) {
	tmpl := graphTemplate(
		models.StageDef{Name: "implement", AgentRole: "coder"},
		models.StageDef{Name: "verify", AgentRole: "tester", DependsOn: []string{"implement"}, MaxExecutions: 2},
	)
	h := newHarness(testConfig(), buildTask(tmpl), newFakeGates())
	h.exec.stage("verify",
		execResult{err: &executor.Error{Category: models.FailureSemantic, Message: "tests failed"}},
		execResult{err: &executor.Error{Category: models.FailureSemantic, Message: "tests failed again"}},
	)

	err := h.process()
	require.Error(t, err)

	assert.Len(t, h.exec.callsFor("verify"), 2)
	task := h.tasks.current()
	assert.Equal(t, models.TaskStatusFailed, task.Status)
	assert.Contains(t, task.Error, "after 2 executions")
}

func TestRunGraphRejectsCycle(t *testing.T) {
	tmpl := graphTemplate(
		models.StageDef{Name: "a", AgentRole: "coder", DependsOn: []string{"b"}},
		models.StageDef{Name: "b", AgentRole: "coder", DependsOn: []string{"a"}},
	)
	h := newHarness(testConfig(), buildTask(tmpl), newFakeGates())

	err := h.process()
	require.Error(t, err)

	task := h.tasks.current()
	assert.Equal(t, models.TaskStatusFailed, task.Status)
	assert.Contains(t, task.Error, "stage graph invalid")
	assert.Empty(t, h.exec.requests())
}

func TestRunGraphResumesPastCompletedNodes(t *testing.T) {
	tmpl := graphTemplate(
		models.StageDef{Name: "analyze", AgentRole: "analyst"},
		models.StageDef{Name: "implement", AgentRole: "coder", DependsOn: []string{"analyze"}},
	)
	task := buildTask(tmpl)
	task.Stages[0].Status = models.StageStatusCompleted
	task.Stages[0].Output = "analysis from the previous claim"
	task.Stages[0].ExecutionCount = 1
	h := newHarness(testConfig(), task, newFakeGates())

	require.NoError(t, h.process())

	reqs := h.exec.requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "implement", reqs[0].StageName)
	assert.Contains(t, reqs[0].UserPrompt, "analysis from the previous claim")
}

func TestLinearDriverUsedWithoutDependencies(t *testing.T) {
	cfg := testConfig()
	cfg.Features.GraphExecution = true

	tmpl := linearTemplate(
		stageDef("analyze", "analyst", 1),
		stageDef("implement", "coder", 2),
	)
	h := newHarness(cfg, buildTask(tmpl), newFakeGates())

	require.NoError(t, h.process())
	require.Len(t, h.exec.requests(), 2)
	assert.Equal(t, "analyze", h.exec.requests()[0].StageName)
}
