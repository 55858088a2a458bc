package workspace

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/config"
)

func sbConfig() config.SandboxConfig {
	cfg := config.DefaultSandboxConfig()
	cfg.Enabled = true
	cfg.MaxConcurrent = 2
	cfg.HealthTimeoutSeconds = 2
	return cfg
}

func llmConfig() config.LLMConfig {
	return config.LLMConfig{
		APIKey:  "sk-test",
		BaseURL: "https://llm.internal",
		Model:   "MiniMax-M2",
	}
}

func newTestSandboxes(runner Runner) *Sandboxes {
	s := NewSandboxes(sbConfig(), llmConfig(), runner)
	s.probe = func(context.Context, string) error { return nil }
	return s
}

func TestSandboxCreateRunArgs(t *testing.T) {
	runner := &fakeRunner{handle: func(_ string, args []string) (string, error) {
		if args[0] == "run" {
			return "abc123\n", nil
		}
		return "", nil
	}}
	s := newTestSandboxes(runner)

	info, err := s.Create(context.Background(), "a1b2c3d4e5f6", "/data/worktrees/a1b2c3d4")
	require.NoError(t, err)
	assert.Equal(t, "abc123", info.ContainerID)
	assert.Equal(t, "steward-sbx-a1b2c3d4", info.Name)
	assert.True(t, strings.HasPrefix(info.BaseURL, "http://127.0.0.1:"))
	assert.Equal(t, 1, s.ActiveCount())

	var run string
	for _, c := range runner.recorded() {
		if strings.HasPrefix(c, "docker run") {
			run = c
		}
	}
	require.NotEmpty(t, run)
	assert.Contains(t, run, "--cpus 2")
	assert.Contains(t, run, "--memory 2g")
	assert.Contains(t, run, "--pids-limit 256")
	assert.Contains(t, run, "--read-only")
	assert.Contains(t, run, "--cap-drop ALL")
	assert.Contains(t, run, "--network steward-sandbox")
	assert.Contains(t, run, "-v /data/worktrees/a1b2c3d4:/workspace")
	assert.Contains(t, run, "LLM_API_KEY=sk-test")
	assert.Contains(t, run, "OPENAI_BASE_URL=https://llm.internal/v1")
	assert.Contains(t, run, "MINIMAX_MODEL=MiniMax-M2")
	assert.True(t, strings.HasSuffix(run, "steward-agent:latest"))
}

func TestSandboxUnhealthyContainerIsRemoved(t *testing.T) {
	runner := &fakeRunner{}
	s := NewSandboxes(sbConfig(), llmConfig(), runner)
	probeCalls := 0
	s.probe = func(context.Context, string) error {
		probeCalls++
		return errors.New("connection refused")
	}

	_, err := s.Create(context.Background(), "task-1", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "never became healthy")
	assert.Greater(t, probeCalls, 1)
	assert.Equal(t, 0, s.ActiveCount())

	// The failed container was force-removed and the slot released.
	removes := 0
	for _, c := range runner.recorded() {
		if strings.HasPrefix(c, "docker rm -f") {
			removes++
		}
	}
	assert.Equal(t, 2, removes) // pre-create sweep + failure teardown
}

func TestSandboxSemaphoreCap(t *testing.T) {
	s := newTestSandboxes(&fakeRunner{})

	_, err := s.Create(context.Background(), "task-1", "")
	require.NoError(t, err)
	_, err = s.Create(context.Background(), "task-2", "")
	require.NoError(t, err)

	// Cap is 2: the third create blocks until a slot frees.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Create(ctx, "task-3", "")
	require.ErrorIs(t, err, context.Canceled)

	require.NoError(t, s.Destroy(context.Background(), "task-1"))
	_, err = s.Create(context.Background(), "task-3", "")
	require.NoError(t, err)
}

func TestSandboxDestroyIdempotent(t *testing.T) {
	s := newTestSandboxes(&fakeRunner{})

	_, err := s.Create(context.Background(), "task-1", "")
	require.NoError(t, err)

	require.NoError(t, s.Destroy(context.Background(), "task-1"))
	require.NoError(t, s.Destroy(context.Background(), "task-1"))
	assert.Equal(t, 0, s.ActiveCount())
}
