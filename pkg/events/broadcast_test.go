package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/models"
)

func TestEncodeEvent(t *testing.T) {
	t.Run("injects event name as type", func(t *testing.T) {
		data, err := encodeEvent(EventTaskStatusChanged, TaskStatusPayload{
			BasePayload: NewBase("task-1"),
			Status:      models.TaskStatusRunning,
		})
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		assert.Equal(t, EventTaskStatusChanged, m["type"])
		assert.Equal(t, "task-1", m["task_id"])
		assert.Equal(t, "running", m["status"])
		assert.NotEmpty(t, m["timestamp"])
	})

	t.Run("event name wins over a payload type field", func(t *testing.T) {
		data, err := encodeEvent(EventGateCreated, map[string]any{"type": "bogus", "gate_id": "g1"})
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		assert.Equal(t, EventGateCreated, m["type"])
		assert.Equal(t, "g1", m["gate_id"])
	})

	t.Run("non-object payload is rejected", func(t *testing.T) {
		_, err := encodeEvent(EventTaskStageLog, "just a string")
		assert.Error(t, err)
	})
}

func TestStageLogCreatedProjection(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	lg := &models.StageLog{
		ID:            "log-1",
		TaskID:        "task-1",
		StageID:       "stage-1",
		CorrelationID: "corr-1",
		Sequence:      7,
		EventType:     "llm_interaction",
		Source:        models.LogSourceLLM,
		Status:        models.LogStatusSuccess,
		Summary:       "responded",
		DurationMS:    1200,
		Truncated:     true,
		CreatedAt:     created,
		Request:       "full request body",
		Response:      "full response body",
	}

	p := StageLogCreated(lg)
	assert.Equal(t, LogPhaseCreated, p.Phase)
	assert.Equal(t, "log-1", p.LogID)
	assert.Equal(t, 7, p.Sequence)
	assert.Equal(t, "task-1", p.TaskID)
	assert.Equal(t, created.Format(time.RFC3339Nano), p.Timestamp)

	// Bodies never ride the broadcast; clients fetch them over REST.
	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "full request body")
	assert.NotContains(t, string(data), "full response body")
}

func TestStageLogUpdatedProjection(t *testing.T) {
	status := models.LogStatusFailed
	duration := int64(88)
	p := StageLogUpdated("task-1", "log-1", models.StageLogUpdate{
		Status:     &status,
		DurationMS: &duration,
	})

	assert.Equal(t, LogPhaseUpdated, p.Phase)
	assert.Equal(t, "log-1", p.LogID)
	assert.Equal(t, models.LogStatusFailed, p.Status)
	assert.Equal(t, int64(88), p.DurationMS)
	assert.Zero(t, p.Sequence, "updates carry no sequence; clients merge by log_id")

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "sequence")
	assert.NotContains(t, string(data), "summary")
}

func TestTaskStatusPayloadOmitsEmptyReason(t *testing.T) {
	data, err := json.Marshal(TaskStatusPayload{
		BasePayload: NewBase("task-1"),
		Status:      models.TaskStatusCompleted,
	})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "reason")
}
