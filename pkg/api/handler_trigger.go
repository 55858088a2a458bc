package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stewardhq/steward/pkg/models"
)

// createTriggerRule handles POST /api/v1/triggers/rules.
func (s *Server) createTriggerRule(c *gin.Context) {
	var req models.CreateTriggerRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	rule, err := s.triggers.CreateRule(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	slog.Info("Trigger rule created", "rule_id", rule.ID, "name", rule.Name, "rule_type", rule.RuleType)
	c.JSON(http.StatusCreated, rule)
}

// listTriggerRules handles GET /api/v1/triggers/rules.
func (s *Server) listTriggerRules(c *gin.Context) {
	enabledOnly := c.Query("enabled") == "true"
	rules, err := s.triggers.ListRules(c.Request.Context(), enabledOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

// getTriggerRule handles GET /api/v1/triggers/rules/:id.
func (s *Server) getTriggerRule(c *gin.Context) {
	rule, err := s.triggers.GetRule(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rule)
}

// patchTriggerRuleRequest is the body of PATCH /triggers/rules/:id.
// Rules are otherwise immutable; only the enabled flag can change.
type patchTriggerRuleRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// patchTriggerRule handles PATCH /api/v1/triggers/rules/:id.
func (s *Server) patchTriggerRule(c *gin.Context) {
	var req patchTriggerRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	ruleID := c.Param("id")
	if err := s.triggers.SetRuleEnabled(c.Request.Context(), ruleID, *req.Enabled); err != nil {
		respondError(c, err)
		return
	}
	slog.Info("Trigger rule toggled", "rule_id", ruleID, "enabled", *req.Enabled)
	c.JSON(http.StatusOK, gin.H{"id": ruleID, "enabled": *req.Enabled})
}

// deleteTriggerRule handles DELETE /api/v1/triggers/rules/:id.
func (s *Server) deleteTriggerRule(c *gin.Context) {
	if err := s.triggers.DeleteRule(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// listTriggerEvents handles GET /api/v1/triggers/events.
func (s *Server) listTriggerEvents(c *gin.Context) {
	events, err := s.triggers.ListEvents(c.Request.Context(), queryInt(c, "limit", 100))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// webhookTrigger handles POST /api/v1/triggers/webhook/:rule: an
// external system fires a webhook rule, which records provenance and
// creates a task from the rule's template.
func (s *Server) webhookTrigger(c *gin.Context) {
	rule, err := s.triggers.GetRule(c.Request.Context(), c.Param("rule"))
	if err != nil {
		respondError(c, err)
		return
	}
	if rule.RuleType != models.RuleTypeWebhook {
		badRequest(c, "rule is not a webhook trigger")
		return
	}
	if !rule.Enabled {
		c.JSON(http.StatusConflict, gin.H{"error": "trigger rule is disabled"})
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	event, err := s.triggers.RecordEvent(c.Request.Context(), models.TriggerEvent{
		RuleID:  rule.ID,
		Source:  "webhook",
		Payload: payload,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	title, _ := payload["title"].(string)
	if title == "" {
		title = fmt.Sprintf("webhook: %s", rule.Name)
	}
	description, _ := payload["description"].(string)

	task, err := s.tasks.Create(c.Request.Context(), models.CreateTaskRequest{
		Title:       title,
		Description: description,
		TemplateID:  rule.TemplateID,
		ProjectID:   rule.ProjectID,
	})
	if err != nil {
		if merr := s.triggers.MarkEventOutcome(c.Request.Context(), event.ID, models.TriggerEventError, ""); merr != nil {
			slog.Warn("Trigger event outcome update failed", "event_id", event.ID, "error", merr)
		}
		respondError(c, err)
		return
	}
	if err := s.triggers.MarkEventOutcome(c.Request.Context(), event.ID, models.TriggerEventTaskCreated, task.ID); err != nil {
		slog.Warn("Trigger event outcome update failed", "event_id", event.ID, "error", err)
	}

	slog.Info("Webhook trigger fired", "rule_id", rule.ID, "task_id", task.ID)
	c.JSON(http.StatusCreated, gin.H{"task": task, "event_id": event.ID})
}
