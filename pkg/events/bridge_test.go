package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/models"
)

func TestNewNotifyBridge(t *testing.T) {
	bridge := NewNotifyBridge(nil)
	assert.NotNil(t, bridge)
	assert.Nil(t, bridge.db)
}

func TestFitNotifyPayload(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		data, err := encodeEvent(EventTaskStageLog, StageLogPayload{
			BasePayload: NewBase("task-1"),
			Phase:       LogPhaseCreated,
			LogID:       "log-1",
			Sequence:    3,
		})
		require.NoError(t, err)

		result, err := fitNotifyPayload(data)
		require.NoError(t, err)
		assert.Equal(t, string(data), result)
	})

	t.Run("oversized payload collapses to routing envelope", func(t *testing.T) {
		data, err := encodeEvent(EventTaskStageLog, StageLogPayload{
			BasePayload: NewBase("task-1"),
			Phase:       LogPhaseCreated,
			LogID:       "log-9",
			Sequence:    42,
			Summary:     strings.Repeat("a", 8000),
		})
		require.NoError(t, err)

		result, err := fitNotifyPayload(data)
		require.NoError(t, err)
		assert.Less(t, len(result), notifyLimit)

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &m))
		assert.Equal(t, EventTaskStageLog, m["type"])
		assert.Equal(t, "task-1", m["task_id"])
		assert.Equal(t, "log-9", m["log_id"])
		assert.Equal(t, float64(42), m["sequence"])
		assert.Equal(t, true, m["truncated"])
		assert.NotContains(t, result, "aaaa")
	})

	t.Run("envelope omits absent routing fields", func(t *testing.T) {
		data, err := encodeEvent(EventTaskStatusChanged, TaskStatusPayload{
			BasePayload: NewBase("task-2"),
			Status:      models.TaskStatusFailed,
			Reason:      strings.Repeat("r", 8000),
		})
		require.NoError(t, err)

		result, err := fitNotifyPayload(data)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &m))
		assert.Equal(t, EventTaskStatusChanged, m["type"])
		assert.Equal(t, "task-2", m["task_id"])
		assert.NotContains(t, m, "log_id")
		assert.NotContains(t, m, "sequence")
	})

	t.Run("boundary payload is not truncated", func(t *testing.T) {
		// Measure fixed overhead first so the test doesn't flip when
		// payload fields change.
		base, err := encodeEvent(EventTaskStageLog, StageLogPayload{
			BasePayload: NewBase("task-1"),
			Phase:       LogPhaseCreated,
			LogID:       "log-1",
		})
		require.NoError(t, err)

		data, err := encodeEvent(EventTaskStageLog, StageLogPayload{
			BasePayload: NewBase("task-1"),
			Phase:       LogPhaseCreated,
			LogID:       "log-1",
			Summary:     strings.Repeat("b", notifyLimit-len(base)-20),
		})
		require.NoError(t, err)
		require.LessOrEqual(t, len(data), notifyLimit)

		result, err := fitNotifyPayload(data)
		require.NoError(t, err)
		assert.NotContains(t, result, `"truncated"`)
	})
}
