package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/config"
)

func TestBearerAuth(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{AuthToken: "s3cret"})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic s3cret", http.StatusUnauthorized},
		{"wrong token", "Bearer nope", http.StatusUnauthorized},
		{"valid token", "Bearer s3cret", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w = f.do(t, http.MethodGet, "/api/v1/tasks", nil, "Authorization", tt.header)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestHealthEndpointsSkipAuth(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{AuthToken: "s3cret"})

	w := f.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNoAuthWhenTokenUnset(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})

	w := f.do(t, http.MethodGet, "/api/v1/tasks", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReviewerHeaderPrecedence(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})

	tests := []struct {
		name    string
		headers []string
		want    string
	}{
		{"forwarded user wins", []string{"X-Forwarded-User", "alice", "X-Forwarded-Email", "a@ex.com"}, "alice"},
		{"email next", []string{"X-Forwarded-Email", "a@ex.com", "X-Remote-User", "ra"}, "a@ex.com"},
		{"remote user next", []string{"X-Remote-User", "ra"}, "ra"},
		{"fallback", nil, "api-client"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(t, http.MethodPost, "/api/v1/tasks",
				map[string]any{"title": "t"}, tt.headers...)
			require.Equal(t, http.StatusCreated, w.Code)
			ev := f.triggers.lastEvent()
			require.NotNil(t, ev)
			assert.Equal(t, tt.want, ev.Payload["actor"])
		})
	}
}

type fakePinger struct{ err error }

func (f fakePinger) PingContext(context.Context) error { return f.err }

func TestHealthReportsDatabase(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})
	f.server.db = fakePinger{}
	w := f.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decodeBody(t, w)["status"])

	f.server.db = fakePinger{err: errors.New("connection refused")}
	w = f.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "unhealthy", decodeBody(t, w)["status"])
}

func TestReadySnapshot(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})
	f.pool.active = 3
	f.gates.gates["gate-1"] = pendingGate("gate-1", "task-1")

	w := f.do(t, http.MethodGet, "/ready", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "ready", body["status"])
	assert.Equal(t, float64(3), body["active_tasks"])
	assert.Equal(t, float64(1), body["pending_gates"])
}
