package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/models"
)

func TestTaskFinishedPostsPayload(t *testing.T) {
	var got Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	n := New(config.NotifyConfig{WebhookURL: srv.URL, TimeoutSeconds: 5})
	require.True(t, n.Enabled())

	completed := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	n.TaskFinished(context.Background(), &models.Task{
		ID:          "task-1",
		Title:       "add metrics",
		Status:      models.TaskStatusCompleted,
		TotalTokens: 4200,
		TotalCost:   0.42,
		PRURL:       "https://github.com/acme/api/pull/7",
		CompletedAt: &completed,
	})

	assert.Equal(t, "task-1", got.TaskID)
	assert.Equal(t, models.TaskStatusCompleted, got.Status)
	assert.Equal(t, 4200, got.TotalTokens)
	assert.Equal(t, "https://github.com/acme/api/pull/7", got.PRURL)
	assert.Equal(t, "2026-08-25T12:00:00Z", got.CompletedAt)
}

func TestTaskFinishedSwallowsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	n := New(config.NotifyConfig{WebhookURL: srv.URL, TimeoutSeconds: 1})
	n.TaskFinished(context.Background(), &models.Task{ID: "task-1", Status: models.TaskStatusFailed})

	// Unreachable endpoint is equally harmless.
	n = New(config.NotifyConfig{WebhookURL: "http://127.0.0.1:1", TimeoutSeconds: 1})
	n.TaskFinished(context.Background(), &models.Task{ID: "task-1", Status: models.TaskStatusFailed})
}

func TestDisabledNotifier(t *testing.T) {
	n := New(config.NotifyConfig{})
	assert.False(t, n.Enabled())
	n.TaskFinished(context.Background(), &models.Task{ID: "task-1"})
}
