package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/models"
)

func webhookRule(id string, enabled bool) *models.TriggerRule {
	return &models.TriggerRule{
		ID: id, Name: "deploy-hook", RuleType: models.RuleTypeWebhook,
		TemplateID: "tmpl-1", ProjectID: "proj-1", Enabled: enabled,
	}
}

func TestCreateTriggerRule(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})

	w := f.do(t, http.MethodPost, "/api/v1/triggers/rules", map[string]any{
		"name":        "nightly-audit",
		"rule_type":   "cron",
		"expression":  "0 2 * * *",
		"template_id": "tmpl-1",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "nightly-audit", body["name"])
	assert.Equal(t, true, body["enabled"])
}

func TestCreateTriggerRuleInvalidType(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})

	w := f.do(t, http.MethodPost, "/api/v1/triggers/rules", map[string]any{
		"name":      "bad",
		"rule_type": "carrier-pigeon",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPatchTriggerRuleTogglesEnabled(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})
	f.triggers.rules["rule-1"] = webhookRule("rule-1", true)

	w := f.do(t, http.MethodPatch, "/api/v1/triggers/rules/rule-1", map[string]any{"enabled": false})

	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, f.triggers.rules["rule-1"].Enabled)

	// Missing enabled field is a binding error, not a silent no-op.
	w = f.do(t, http.MethodPatch, "/api/v1/triggers/rules/rule-1", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteTriggerRule(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})
	f.triggers.rules["rule-1"] = webhookRule("rule-1", true)

	w := f.do(t, http.MethodDelete, "/api/v1/triggers/rules/rule-1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, f.triggers.rules)

	w = f.do(t, http.MethodDelete, "/api/v1/triggers/rules/rule-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWebhookTriggerCreatesTask(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})
	f.triggers.rules["rule-1"] = webhookRule("rule-1", true)

	w := f.do(t, http.MethodPost, "/api/v1/triggers/webhook/rule-1", map[string]any{
		"title":       "Deploy failed on main",
		"description": "pipeline #4211",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	ev := f.triggers.lastEvent()
	require.NotNil(t, ev)
	assert.Equal(t, "webhook", ev.Source)
	assert.Equal(t, models.TriggerEventTaskCreated, ev.Status)
	require.NotEmpty(t, ev.TaskID)

	task := f.tasks.tasks[ev.TaskID]
	require.NotNil(t, task)
	assert.Equal(t, "Deploy failed on main", task.Title)
	assert.Equal(t, "tmpl-1", task.TemplateID)
	assert.Equal(t, "proj-1", task.ProjectID)
}

func TestWebhookTriggerFallbackTitle(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})
	f.triggers.rules["rule-1"] = webhookRule("rule-1", true)

	w := f.do(t, http.MethodPost, "/api/v1/triggers/webhook/rule-1", map[string]any{"ref": "main"})

	require.Equal(t, http.StatusCreated, w.Code)
	ev := f.triggers.lastEvent()
	require.NotNil(t, ev)
	assert.Equal(t, "webhook: deploy-hook", f.tasks.tasks[ev.TaskID].Title)
}

func TestWebhookTriggerDisabledRule(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})
	f.triggers.rules["rule-1"] = webhookRule("rule-1", false)

	w := f.do(t, http.MethodPost, "/api/v1/triggers/webhook/rule-1", map[string]any{"title": "x"})

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Nil(t, f.triggers.lastEvent())
}

func TestWebhookTriggerWrongRuleType(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})
	f.triggers.rules["rule-1"] = &models.TriggerRule{
		ID: "rule-1", Name: "nightly", RuleType: models.RuleTypeCron,
		TemplateID: "tmpl-1", Enabled: true,
	}

	w := f.do(t, http.MethodPost, "/api/v1/triggers/webhook/rule-1", map[string]any{"title": "x"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListTriggerRulesEnabledOnly(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})
	f.triggers.rules["rule-1"] = webhookRule("rule-1", true)
	f.triggers.rules["rule-2"] = webhookRule("rule-2", false)

	w := f.do(t, http.MethodGet, "/api/v1/triggers/rules?enabled=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["rules"], 1)

	w = f.do(t, http.MethodGet, "/api/v1/triggers/rules", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["rules"], 2)
}
