package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/llm"
	"github.com/stewardhq/steward/pkg/models"
)

// scriptLLM answers every Generate call with the same canned text.
type scriptLLM struct {
	text string
	reqs []llm.Request
}

func (c *scriptLLM) Generate(_ context.Context, req llm.Request) (<-chan llm.Chunk, error) {
	c.reqs = append(c.reqs, req)
	out := make(chan llm.Chunk, 2)
	out <- llm.TextChunk{Content: c.text}
	out <- llm.UsageChunk{Usage: llm.Usage{TotalTokens: 20}}
	close(out)
	return out, nil
}

func (c *scriptLLM) Close() error { return nil }

func routedTemplate() *models.Template {
	tmpl := linearTemplate(
		stageDef("triage", "analyst", 1),
		stageDef("bugfix", "coder", 2),
		stageDef("feature", "coder", 3),
	)
	tmpl.Stages[0].Routing = &models.RoutingConfig{
		Options: []models.RoutingOption{
			{Target: "bugfix", Description: "a defect in existing behavior"},
			{Target: "feature", Description: "new behavior"},
		},
	}
	return tmpl
}

func TestRoutingHoistsChosenTarget(t *testing.T) {
	cfg := testConfig()
	cfg.Features.DynamicRouting = true

	h := newHarness(cfg, buildTask(routedTemplate()), newFakeGates())
	h.engine.llm = &scriptLLM{text: `{"target": "feature", "reason": "the request adds behavior"}`}

	require.NoError(t, h.process())

	reqs := h.exec.requests()
	require.Len(t, reqs, 3)
	assert.Equal(t, "triage", reqs[0].StageName)
	assert.Equal(t, "feature", reqs[1].StageName)
	assert.Equal(t, "bugfix", reqs[2].StageName)

	task := h.tasks.current()
	require.Len(t, task.RoutingDecisions, 1)
	assert.Equal(t, "triage", task.RoutingDecisions[0].Stage)
	assert.Equal(t, "feature", task.RoutingDecisions[0].Target)
	assert.True(t, h.audits.has("routing_decided"))
}

func TestRoutingAcceptsFencedJSON(t *testing.T) {
	cfg := testConfig()
	cfg.Features.DynamicRouting = true

	h := newHarness(cfg, buildTask(routedTemplate()), newFakeGates())
	h.engine.llm = &scriptLLM{text: "```json\n{\"target\": \"bugfix\"}\n```"}

	require.NoError(t, h.process())

	task := h.tasks.current()
	require.Len(t, task.RoutingDecisions, 1)
	assert.Equal(t, "bugfix", task.RoutingDecisions[0].Target)
}

func TestRoutingIgnoresUnknownTarget(t *testing.T) {
	cfg := testConfig()
	cfg.Features.DynamicRouting = true

	h := newHarness(cfg, buildTask(routedTemplate()), newFakeGates())
	h.engine.llm = &scriptLLM{text: `{"target": "deploy"}`}

	require.NoError(t, h.process())

	// Declared order stands when the router names a stage that is not
	// among the options.
	reqs := h.exec.requests()
	require.Len(t, reqs, 3)
	assert.Equal(t, "bugfix", reqs[1].StageName)
	assert.Equal(t, "feature", reqs[2].StageName)
	assert.Empty(t, h.tasks.current().RoutingDecisions)
}

func TestRoutingDisabledByFeatureFlag(t *testing.T) {
	llmClient := &scriptLLM{text: `{"target": "feature"}`}
	h := newHarness(testConfig(), buildTask(routedTemplate()), newFakeGates())
	h.engine.llm = llmClient

	require.NoError(t, h.process())
	assert.Empty(t, llmClient.reqs)
	assert.Empty(t, h.tasks.current().RoutingDecisions)
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences(`{"a":1}`))
	assert.Equal(t, `{"a":1}`, stripFences("```\n{\"a\":1}\n```"))
}
