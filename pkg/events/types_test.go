package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskChannel(t *testing.T) {
	assert.Equal(t, "task:abc-123", TaskChannel("abc-123"))
}

func TestParseTaskChannel(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		id, ok := ParseTaskChannel(TaskChannel("abc-123"))
		assert.True(t, ok)
		assert.Equal(t, "abc-123", id)
	})

	t.Run("global channel is not a task channel", func(t *testing.T) {
		_, ok := ParseTaskChannel(GlobalTasksChannel)
		assert.False(t, ok)
	})

	t.Run("empty task id", func(t *testing.T) {
		_, ok := ParseTaskChannel("task:")
		assert.False(t, ok)
	})

	t.Run("foreign prefix", func(t *testing.T) {
		_, ok := ParseTaskChannel("session:abc-123")
		assert.False(t, ok)
	})
}
