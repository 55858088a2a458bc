package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/models"
)

func TestCreateTask(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})

	w := f.do(t, http.MethodPost, "/api/v1/tasks", map[string]any{
		"title":       "Fix login timeout",
		"template_id": "tmpl-1",
	}, "X-Forwarded-User", "alice")

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Fix login timeout", body["title"])
	assert.Equal(t, "pending", body["status"])

	// Provenance is recorded as a manual trigger event tied to the task.
	ev := f.triggers.lastEvent()
	require.NotNil(t, ev)
	assert.Equal(t, "manual", ev.Source)
	assert.Equal(t, models.TriggerEventTaskCreated, ev.Status)
	assert.Equal(t, body["id"], ev.TaskID)
	assert.Equal(t, "alice", ev.Payload["actor"])

	assert.True(t, f.bc.has("tasks/task:status_changed"))
}

func TestCreateTaskValidation(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})

	w := f.do(t, http.MethodPost, "/api/v1/tasks", map[string]any{"description": "no title"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodPost, "/api/v1/tasks", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTaskNotFound(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})

	w := f.do(t, http.MethodGet, "/api/v1/tasks/nope", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "resource not found", decodeBody(t, w)["error"])
}

func TestListTasksPassesFilters(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})

	w := f.do(t, http.MethodGet, "/api/v1/tasks?status=pending&project_id=proj-1&limit=5&offset=10", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "pending", f.tasks.filters.Status)
	assert.Equal(t, "proj-1", f.tasks.filters.ProjectID)
	assert.Equal(t, 5, f.tasks.filters.Limit)
	assert.Equal(t, 10, f.tasks.filters.Offset)
}

func TestListTasksDefaultsBadPagination(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})

	w := f.do(t, http.MethodGet, "/api/v1/tasks?limit=-3&offset=abc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 50, f.tasks.filters.Limit)
	assert.Equal(t, 0, f.tasks.filters.Offset)
}

func TestCancelTask(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})
	f.tasks.tasks["task-1"] = &models.Task{ID: "task-1", Status: models.TaskStatusRunning}

	w := f.do(t, http.MethodPost, "/api/v1/tasks/task-1/cancel", nil, "X-Forwarded-User", "bob")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.TaskStatusCancelled, f.tasks.tasks["task-1"].Status)
	assert.Equal(t, "cancelled by bob", f.tasks.tasks["task-1"].Error)
	assert.Equal(t, []string{"task-1"}, f.pool.cancelled)
	assert.True(t, f.audits.has("task_cancelled"))
	assert.True(t, f.bc.has("task:task-1/task:status_changed"))
	assert.True(t, f.bc.has("tasks/task:status_changed"))
}

func TestCancelTaskAlreadyTerminal(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})
	f.tasks.tasks["task-1"] = &models.Task{ID: "task-1", Status: models.TaskStatusCompleted}

	w := f.do(t, http.MethodPost, "/api/v1/tasks/task-1/cancel", nil)

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, models.TaskStatusCompleted, f.tasks.tasks["task-1"].Status)
	assert.Empty(t, f.pool.cancelled)
}

func TestListTaskLogsEnvelope(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})
	f.logs.logs = []*models.StageLog{
		{ID: "log-1", TaskID: "task-1", EventType: "llm_call"},
		{ID: "log-2", TaskID: "task-2", EventType: "llm_call"},
	}

	w := f.do(t, http.MethodGet, "/api/v1/tasks/task-1/logs?event_type=llm_call&after_sequence=7", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["logs"], 1)
	assert.Equal(t, float64(1), body["total_count"])
	assert.Equal(t, "llm_call", f.logs.filters.EventType)
	assert.Equal(t, 7, f.logs.filters.AfterSequence)
}

func TestGetPlan(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})
	f.tasks.tasks["task-1"] = &models.Task{ID: "task-1", Status: models.TaskStatusPlanning, Plan: "1. do the thing"}

	w := f.do(t, http.MethodGet, "/api/v1/tasks/task-1/plan", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "planning", body["status"])
	assert.Equal(t, "1. do the thing", body["plan"])
}

func TestReviewPlanApproved(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})
	f.gates.gates["gate-1"] = &models.Gate{
		ID: "gate-1", TaskID: "task-1", GateType: models.GateTypePlanReview,
		Status: models.GateStatusPending,
	}

	w := f.do(t, http.MethodPost, "/api/v1/tasks/task-1/plan/review",
		map[string]any{"decision": "approve"}, "X-Forwarded-User", "carol")

	require.Equal(t, http.StatusOK, w.Code)
	g := f.gates.gates["gate-1"]
	assert.Equal(t, models.GateStatusApproved, g.Status)
	assert.Equal(t, "carol", g.Reviewer)
}

func TestReviewPlanReviseRequiresContent(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})

	w := f.do(t, http.MethodPost, "/api/v1/tasks/task-1/plan/review",
		map[string]any{"decision": "revise"})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewPlanNoPendingGate(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})
	f.gates.gates["gate-1"] = &models.Gate{
		ID: "gate-1", TaskID: "task-1", GateType: models.GateTypePlanReview,
		Status: models.GateStatusApproved,
	}

	w := f.do(t, http.MethodPost, "/api/v1/tasks/task-1/plan/review",
		map[string]any{"decision": "approve"})

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decodeBody(t, w)["error"], "no pending plan review")
}
