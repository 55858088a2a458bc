package executor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/models"
)

func TestSandboxExecute(t *testing.T) {
	var got executeWire
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/execute", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(resultWire{
			TextContent: "all tests pass",
			TotalTokens: 1200,
			ToolCalls: []toolWire{{
				ToolCallID: "tc-1",
				ToolName:   "bash",
				Args:       json.RawMessage(`{"command":"go test ./..."}`),
				DurationMS: 850,
				Status:     "success",
			}},
		})
	}))
	defer srv.Close()

	result, err := NewSandbox(srv.URL).Execute(context.Background(), Request{
		SystemPrompt: "you are a tester",
		UserPrompt:   "run the tests",
		Model:        "MiniMax-M2",
		MaxTurns:     8,
		EnableTools:  true,
		AllowedTools: []string{"bash"},
		Workdir:      "/workspace",
		Timeout:      90 * time.Second,
	})
	require.NoError(t, err)
	assert.Equal(t, "all tests pass", result.Text)
	assert.Equal(t, 1200, result.TotalTokens)
	require.Len(t, result.ToolCalls, 1)
	assert.Equal(t, ToolCallSuccess, result.ToolCalls[0].Status)

	assert.Equal(t, "you are a tester", got.SystemPrompt)
	assert.Equal(t, "MiniMax-M2", got.Model)
	assert.Equal(t, 8, got.MaxTurns)
	assert.True(t, got.EnableTools)
	assert.Equal(t, []string{"bash"}, got.AllowedTools)
	assert.Equal(t, "/workspace", got.Workdir)
	assert.Equal(t, 90, got.Timeout)
}

func TestSandboxServerErrorIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "internal", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewSandbox(srv.URL).Execute(context.Background(), Request{UserPrompt: "go"})
	var execErr *Error
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, models.FailureTransient, execErr.Category)
}

func TestSandboxUnreachableIsTransient(t *testing.T) {
	_, err := NewSandbox("http://127.0.0.1:1").Execute(context.Background(), Request{UserPrompt: "go"})
	var execErr *Error
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, models.FailureTransient, execErr.Category)
}

func TestSandboxWireErrorClassifiedWithPartial(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(resultWire{
			TextContent: "got halfway",
			TotalTokens: 300,
			Error:       "insufficient_quota: billing hard limit reached",
		})
	}))
	defer srv.Close()

	_, err := NewSandbox(srv.URL).Execute(context.Background(), Request{UserPrompt: "go"})
	var execErr *Error
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, models.FailureResource, execErr.Category)
	require.NotNil(t, execErr.Partial)
	assert.Equal(t, "got halfway", execErr.Partial.Text)
	assert.Equal(t, 300, execErr.Partial.TotalTokens)
}

func TestProbeHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	assert.NoError(t, ProbeHealth(context.Background(), srv.URL))
	assert.Error(t, ProbeHealth(context.Background(), srv.URL+"/missing"))
}
