package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stewardhq/steward/pkg/events"
	"github.com/stewardhq/steward/pkg/models"
)

// createTask handles POST /api/v1/tasks. Every accepted task gets a
// manual trigger event for provenance.
func (s *Server) createTask(c *gin.Context) {
	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	task, err := s.tasks.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	s.recordManualTrigger(c, task)

	s.bc.Broadcast(events.GlobalTasksChannel, events.EventTaskStatusChanged, events.TaskStatusPayload{
		BasePayload: events.NewBase(task.ID),
		Status:      task.Status,
	})
	slog.Info("Task created", "task_id", task.ID, "title", task.Title, "template_id", req.TemplateID)
	c.JSON(http.StatusCreated, task)
}

func (s *Server) recordManualTrigger(c *gin.Context, task *models.Task) {
	if s.triggers == nil {
		return
	}
	ev, err := s.triggers.RecordEvent(c.Request.Context(), models.TriggerEvent{
		Source: "manual",
		Payload: map[string]any{
			"title": task.Title,
			"actor": reviewer(c),
		},
	})
	if err != nil {
		slog.Warn("Trigger event record failed", "task_id", task.ID, "error", err)
		return
	}
	if err := s.triggers.MarkEventOutcome(c.Request.Context(), ev.ID, models.TriggerEventTaskCreated, task.ID); err != nil {
		slog.Warn("Trigger event outcome update failed", "task_id", task.ID, "error", err)
	}
}

// listTasks handles GET /api/v1/tasks.
func (s *Server) listTasks(c *gin.Context) {
	filters := models.TaskFilters{
		Status:    c.Query("status"),
		ProjectID: c.Query("project_id"),
		Limit:     queryInt(c, "limit", 50),
		Offset:    queryInt(c, "offset", 0),
	}
	list, err := s.tasks.List(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// getTask handles GET /api/v1/tasks/:id.
func (s *Server) getTask(c *gin.Context) {
	task, err := s.tasks.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// cancelTask handles POST /api/v1/tasks/:id/cancel. The row moves to
// cancelled first; local processing, if any, is cut short afterwards
// so the engine sees the terminal row and stops writing.
func (s *Server) cancelTask(c *gin.Context) {
	taskID := c.Param("id")
	actor := reviewer(c)

	err := s.tasks.UpdateStatus(c.Request.Context(), taskID, models.TaskStatusCancelled, "cancelled by "+actor,
		models.TaskStatusPending, models.TaskStatusClaimed, models.TaskStatusRunning, models.TaskStatusPlanning)
	if err != nil {
		respondError(c, err)
		return
	}

	if s.pool != nil {
		s.pool.CancelTask(taskID)
	}
	if s.audits != nil {
		if err := s.audits.Record(c.Request.Context(), models.AuditEntry{
			TaskID:    taskID,
			Action:    "task_cancelled",
			Detail:    map[string]any{"actor": actor},
			RiskLevel: models.RiskMedium,
			Actor:     actor,
		}); err != nil {
			slog.Warn("Cancel audit record failed", "task_id", taskID, "error", err)
		}
	}

	payload := events.TaskStatusPayload{
		BasePayload: events.NewBase(taskID),
		Status:      models.TaskStatusCancelled,
		Reason:      "cancelled by " + actor,
	}
	s.bc.Broadcast(events.TaskChannel(taskID), events.EventTaskStatusChanged, payload)
	s.bc.Broadcast(events.GlobalTasksChannel, events.EventTaskStatusChanged, payload)

	slog.Info("Task cancelled", "task_id", taskID, "actor", actor)
	c.JSON(http.StatusOK, gin.H{"status": string(models.TaskStatusCancelled)})
}

// listTaskLogs handles GET /api/v1/tasks/:id/logs.
func (s *Server) listTaskLogs(c *gin.Context) {
	taskID := c.Param("id")
	filters := models.StageLogFilters{
		StageID:       c.Query("stage_id"),
		EventType:     c.Query("event_type"),
		AfterSequence: queryInt(c, "after_sequence", 0),
		Limit:         queryInt(c, "limit", 200),
		Offset:        queryInt(c, "offset", 0),
	}
	logs, total, err := s.logs.List(c.Request.Context(), taskID, filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"logs":        logs,
		"total_count": total,
		"limit":       filters.Limit,
		"offset":      filters.Offset,
	})
}

// listTaskAudit handles GET /api/v1/tasks/:id/audit.
func (s *Server) listTaskAudit(c *gin.Context) {
	entries, err := s.audits.ListByTask(c.Request.Context(), c.Param("id"), queryInt(c, "limit", 100))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// listTaskBreakers handles GET /api/v1/tasks/:id/breakers.
func (s *Server) listTaskBreakers(c *gin.Context) {
	records, err := s.breakers.ListByTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"breakers": records})
}

// getPlan handles GET /api/v1/tasks/:id/plan.
func (s *Server) getPlan(c *gin.Context) {
	task, err := s.tasks.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"task_id": task.ID,
		"status":  task.Status,
		"plan":    task.Plan,
	})
}

// planReviewRequest is the body of POST /tasks/:id/plan/review.
type planReviewRequest struct {
	Decision       string `json:"decision" binding:"required"` // approve, reject or revise
	Comment        string `json:"comment,omitempty"`
	RevisedContent string `json:"revised_content,omitempty"`
}

// reviewPlan handles POST /api/v1/tasks/:id/plan/review by resolving
// the pending plan_review gate of the task.
func (s *Server) reviewPlan(c *gin.Context) {
	taskID := c.Param("id")

	var req planReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	status, ok := decisionStatus(req.Decision)
	if !ok {
		badRequest(c, "decision must be approve, reject or revise")
		return
	}
	if status == models.GateStatusRevised && req.RevisedContent == "" {
		badRequest(c, "revised_content is required for a revise decision")
		return
	}

	gates, _, err := s.gates.List(c.Request.Context(), models.GateFilters{
		TaskID:   taskID,
		Status:   string(models.GateStatusPending),
		GateType: string(models.GateTypePlanReview),
		Limit:    1,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if len(gates) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no pending plan review for this task"})
		return
	}

	resolved, err := s.gates.Resolve(c.Request.Context(), gates[0].ID, models.ResolveGateRequest{
		Status:         status,
		Reviewer:       reviewer(c),
		Comment:        req.Comment,
		RevisedContent: req.RevisedContent,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	slog.Info("Plan reviewed", "task_id", taskID, "gate_id", resolved.ID, "decision", req.Decision)
	c.JSON(http.StatusOK, resolved)
}

func decisionStatus(decision string) (models.GateStatus, bool) {
	switch decision {
	case "approve":
		return models.GateStatusApproved, true
	case "reject":
		return models.GateStatusRejected, true
	case "revise":
		return models.GateStatusRevised, true
	}
	return "", false
}

func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}
