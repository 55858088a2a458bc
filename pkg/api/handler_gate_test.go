package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/models"
)

func pendingGate(id, taskID string) *models.Gate {
	return &models.Gate{
		ID: id, TaskID: taskID, StageName: "implement", AgentRole: "coder",
		GateType: models.GateTypeHumanApprove, Status: models.GateStatusPending,
	}
}

func TestListGatesPassesFilters(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})
	f.gates.gates["gate-1"] = pendingGate("gate-1", "task-1")
	f.gates.gates["gate-2"] = pendingGate("gate-2", "task-2")

	w := f.do(t, http.MethodGet, "/api/v1/gates?task_id=task-1&status=pending", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["gates"], 1)
	assert.Equal(t, "task-1", f.gates.filters.TaskID)
	assert.Equal(t, "pending", f.gates.filters.Status)
}

func TestResolveGateApprove(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})
	f.gates.gates["gate-1"] = pendingGate("gate-1", "task-1")

	w := f.do(t, http.MethodPost, "/api/v1/gates/gate-1/resolve",
		map[string]any{"decision": "approve", "comment": "looks good"},
		"X-Forwarded-User", "alice")

	require.Equal(t, http.StatusOK, w.Code)
	g := f.gates.gates["gate-1"]
	assert.Equal(t, models.GateStatusApproved, g.Status)
	assert.Equal(t, "alice", g.Reviewer)
	assert.Equal(t, "looks good", g.Comment)
}

func TestResolveGateDecisionValidation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"unknown decision", map[string]any{"decision": "maybe"}},
		{"missing decision", map[string]any{"comment": "hm"}},
		{"reject without comment", map[string]any{"decision": "reject"}},
		{"revise without content", map[string]any{"decision": "revise"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(config.ServerConfig{})
			f.gates.gates["gate-1"] = pendingGate("gate-1", "task-1")

			w := f.do(t, http.MethodPost, "/api/v1/gates/gate-1/resolve", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, models.GateStatusPending, f.gates.gates["gate-1"].Status)
		})
	}
}

func TestResolveGateRevise(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})
	f.gates.gates["gate-1"] = pendingGate("gate-1", "task-1")

	w := f.do(t, http.MethodPost, "/api/v1/gates/gate-1/resolve",
		map[string]any{"decision": "revise", "revised_content": "use exponential backoff"})

	require.Equal(t, http.StatusOK, w.Code)
	g := f.gates.gates["gate-1"]
	assert.Equal(t, models.GateStatusRevised, g.Status)
	assert.Equal(t, "use exponential backoff", g.RevisedContent)
}

func TestResolveGateAlreadyResolved(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})
	g := pendingGate("gate-1", "task-1")
	g.Status = models.GateStatusApproved
	f.gates.gates["gate-1"] = g

	w := f.do(t, http.MethodPost, "/api/v1/gates/gate-1/resolve",
		map[string]any{"decision": "approve"})

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "gate is already resolved", decodeBody(t, w)["error"])
}

func TestResolveGateNotFound(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})

	w := f.do(t, http.MethodPost, "/api/v1/gates/nope/resolve",
		map[string]any{"decision": "approve"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}
