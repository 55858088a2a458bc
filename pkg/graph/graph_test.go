package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/models"
)

func linearDefs() []models.StageDef {
	return []models.StageDef{
		{Name: "parse", AgentRole: "architect", Order: 1},
		{Name: "code", AgentRole: "coder", Order: 2},
		{Name: "test", AgentRole: "tester", Order: 3},
	}
}

func parallelDefs() []models.StageDef {
	return []models.StageDef{
		{Name: "parse", AgentRole: "architect", Order: 1},
		{Name: "backend", AgentRole: "coder", Order: 2},
		{Name: "frontend", AgentRole: "coder", Order: 2},
		{Name: "test", AgentRole: "tester", Order: 3},
	}
}

func TestBuildOrderInferred(t *testing.T) {
	g, err := Build(parallelDefs())
	require.NoError(t, err)
	require.NoError(t, g.Validate())

	assert.Equal(t, []string{"parse", "backend", "frontend", "test"}, g.Nodes())
	assert.Empty(t, g.Deps("parse"))
	assert.Equal(t, []string{"parse"}, g.Deps("backend"))
	assert.Equal(t, []string{"parse"}, g.Deps("frontend"))
	assert.ElementsMatch(t, []string{"backend", "frontend"}, g.Deps("test"))
}

func TestBuildExplicitDependsOn(t *testing.T) {
	defs := []models.StageDef{
		{Name: "parse", AgentRole: "architect", Order: 1},
		{Name: "code", AgentRole: "coder", Order: 2, DependsOn: []string{"parse"}},
		{Name: "docs", AgentRole: "writer", Order: 2},
		{Name: "test", AgentRole: "tester", Order: 3, DependsOn: []string{"code"}},
	}
	g, err := Build(defs)
	require.NoError(t, err)
	require.NoError(t, g.Validate())

	// Explicit mode: stages without depends_on are roots, order only
	// breaks iteration ties.
	assert.Empty(t, g.Deps("parse"))
	assert.Empty(t, g.Deps("docs"))
	assert.Equal(t, []string{"code"}, g.Deps("test"))
}

func TestBuildRejectsDuplicates(t *testing.T) {
	_, err := Build([]models.StageDef{
		{Name: "parse", AgentRole: "architect", Order: 1},
		{Name: "parse", AgentRole: "coder", Order: 2},
	})
	assert.ErrorContains(t, err, "duplicate stage name")
}

func TestBuildRejectsEmpty(t *testing.T) {
	_, err := Build(nil)
	assert.Error(t, err)
}

func TestValidateUnknownDependency(t *testing.T) {
	g, err := Build([]models.StageDef{
		{Name: "code", AgentRole: "coder", Order: 1, DependsOn: []string{"missing"}},
	})
	require.NoError(t, err)
	assert.ErrorContains(t, g.Validate(), "unknown stage")
}

func TestValidateUnknownRedirect(t *testing.T) {
	g, err := Build([]models.StageDef{
		{Name: "code", AgentRole: "coder", Order: 1, OnFailure: "missing"},
	})
	require.NoError(t, err)
	assert.ErrorContains(t, g.Validate(), "redirects on failure")
}

func TestValidateCycle(t *testing.T) {
	g, err := Build([]models.StageDef{
		{Name: "a", AgentRole: "r", Order: 1, DependsOn: []string{"c"}},
		{Name: "b", AgentRole: "r", Order: 2, DependsOn: []string{"a"}},
		{Name: "c", AgentRole: "r", Order: 3, DependsOn: []string{"b"}},
	})
	require.NoError(t, err)
	assert.ErrorContains(t, g.Validate(), "cycle")
}

func TestValidateSelfDependency(t *testing.T) {
	g, err := Build([]models.StageDef{
		{Name: "a", AgentRole: "r", Order: 1, DependsOn: []string{"a"}},
	})
	require.NoError(t, err)
	assert.ErrorContains(t, g.Validate(), "cycle")
}

func TestValidateAllowsOnFailureLoop(t *testing.T) {
	// code -> test with test redirecting back to code is a legal loop;
	// it is bounded by max_executions at runtime, not rejected here.
	g, err := Build([]models.StageDef{
		{Name: "code", AgentRole: "coder", Order: 1},
		{Name: "test", AgentRole: "tester", Order: 2, DependsOn: []string{"code"}, OnFailure: "code"},
	})
	require.NoError(t, err)
	assert.NoError(t, g.Validate())
}

func TestReadySetLinearProgression(t *testing.T) {
	g, err := Build(linearDefs())
	require.NoError(t, err)

	st := NewState()
	assert.Equal(t, []string{"parse"}, g.ReadySet(st))

	st.Completed["parse"] = true
	assert.Equal(t, []string{"code"}, g.ReadySet(st))

	st.Running["code"] = true
	assert.Empty(t, g.ReadySet(st))

	delete(st.Running, "code")
	st.Completed["code"] = true
	assert.Equal(t, []string{"test"}, g.ReadySet(st))

	st.Completed["test"] = true
	assert.Empty(t, g.ReadySet(st))
}

func TestReadySetParallelGroup(t *testing.T) {
	g, err := Build(parallelDefs())
	require.NoError(t, err)

	st := NewState()
	st.Completed["parse"] = true
	assert.Equal(t, []string{"backend", "frontend"}, g.ReadySet(st))
}

func TestReadySetSkippedSatisfiesDependents(t *testing.T) {
	g, err := Build(linearDefs())
	require.NoError(t, err)

	st := NewState()
	st.Completed["parse"] = true
	st.Skipped["code"] = true
	assert.Equal(t, []string{"test"}, g.ReadySet(st))
}

func TestReadySetFailedWithBudgetRemaining(t *testing.T) {
	defs := []models.StageDef{
		{Name: "code", AgentRole: "coder", Order: 1, MaxExecutions: 2},
	}
	g, err := Build(defs)
	require.NoError(t, err)

	st := NewState()
	st.Failed["code"] = true
	st.ExecCounts["code"] = 1
	assert.Equal(t, []string{"code"}, g.ReadySet(st), "failed stage under budget should be ready again")

	st.ExecCounts["code"] = 2
	assert.Empty(t, g.ReadySet(st), "exhausted stage should not be ready")
}

func TestFailureRedirect(t *testing.T) {
	g, err := Build([]models.StageDef{
		{Name: "code", AgentRole: "coder", Order: 1},
		{Name: "test", AgentRole: "tester", Order: 2, OnFailure: "code"},
	})
	require.NoError(t, err)

	target, ok := g.FailureRedirect("test")
	require.True(t, ok)
	assert.Equal(t, "code", target)

	_, ok = g.FailureRedirect("code")
	assert.False(t, ok)
}

func TestMaxExecutionsDefault(t *testing.T) {
	g, err := Build([]models.StageDef{
		{Name: "code", AgentRole: "coder", Order: 1},
		{Name: "test", AgentRole: "tester", Order: 2, MaxExecutions: 5},
	})
	require.NoError(t, err)

	assert.Equal(t, models.DefaultMaxExecutions, g.MaxExecutions("code"))
	assert.Equal(t, 5, g.MaxExecutions("test"))
	assert.Equal(t, models.DefaultMaxExecutions, g.MaxExecutions("unknown"))
}
