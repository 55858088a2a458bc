package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Worker.WorkerCount)
	assert.Equal(t, 5, cfg.Worker.PollIntervalSeconds)
	assert.Equal(t, 500_000, cfg.Breaker.MaxTokensPerTask)
	assert.Equal(t, SandboxFallbackGraceful, cfg.Sandbox.FallbackMode)
	assert.True(t, cfg.Features.GraphExecution)
	assert.False(t, cfg.Features.DynamicGates)
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "steward.yaml")
	yaml := `
worker:
  worker_count: 4
  max_concurrent_tasks: 8
  gate_max_wait_seconds: 3600
circuit_breaker:
  max_tokens_per_task: 200000
features:
  dynamic_gates: true
  dynamic_gate_confidence_threshold: 0.75
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Worker.WorkerCount)
	assert.Equal(t, 3600, cfg.Worker.GateMaxWaitSeconds)
	assert.Equal(t, 200_000, cfg.Breaker.MaxTokensPerTask)
	assert.True(t, cfg.Features.DynamicGates)
	assert.InDelta(t, 0.75, cfg.Features.DynamicGateConfidenceThreshold, 1e-9)
	// Untouched sections keep defaults.
	assert.Equal(t, 5, cfg.Worker.PollIntervalSeconds)
	assert.Equal(t, "minimax-m2", cfg.LLM.Model)
}

func TestLoadExpandsEnvTemplates(t *testing.T) {
	t.Setenv("TEST_GH_TOKEN", "ghp_secret")

	dir := t.TempDir()
	path := filepath.Join(dir, "steward.yaml")
	yaml := `
github:
  token: "{{.TEST_GH_TOKEN}}"
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ghp_secret", cfg.GitHub.Token)
}

func TestEnvOverridesWinOverFile(t *testing.T) {
	t.Setenv("WORKER_POLL_INTERVAL", "1")
	t.Setenv("CB_MAX_TOKENS_PER_TASK", "12345")
	t.Setenv("SANDBOX_FALLBACK_MODE", "strict")
	t.Setenv("AUTO_RETRY_CATEGORIES", "transient, semantic")
	t.Setenv("DYNAMIC_GATE_ENABLED", "true")

	dir := t.TempDir()
	path := filepath.Join(dir, "steward.yaml")
	require.NoError(t, os.WriteFile(path, []byte("worker:\n  poll_interval_seconds: 30\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Worker.PollIntervalSeconds)
	assert.Equal(t, 12345, cfg.Breaker.MaxTokensPerTask)
	assert.Equal(t, SandboxFallbackStrict, cfg.Sandbox.FallbackMode)
	assert.Equal(t, []string{"transient", "semantic"}, cfg.Worker.AutoRetryCategories)
	assert.True(t, cfg.Features.DynamicGates)
}

func TestEnvOverrideIgnoresMalformedValues(t *testing.T) {
	t.Setenv("WORKER_POLL_INTERVAL", "not-a-number")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Worker.PollIntervalSeconds)
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "steward.yaml")
	require.NoError(t, os.WriteFile(path, []byte("worker: [broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Worker.WorkerCount = 0 },
			wantErr: "worker.worker_count",
		},
		{
			name:    "capacity below worker count",
			mutate:  func(c *Config) { c.Worker.MaxConcurrentTasks = 1; c.Worker.WorkerCount = 2 },
			wantErr: "worker.max_concurrent_tasks",
		},
		{
			name:    "gate wait below poll interval",
			mutate:  func(c *Config) { c.Worker.GateMaxWaitSeconds = 1; c.Worker.GatePollIntervalSeconds = 5 },
			wantErr: "worker.gate_max_wait_seconds",
		},
		{
			name:    "unknown retry category",
			mutate:  func(c *Config) { c.Worker.AutoRetryCategories = []string{"flaky"} },
			wantErr: "worker.auto_retry_categories",
		},
		{
			name:    "bad fallback mode",
			mutate:  func(c *Config) { c.Sandbox.FallbackMode = "lenient" },
			wantErr: "sandbox.fallback_mode",
		},
		{
			name:    "confidence threshold out of range",
			mutate:  func(c *Config) { c.Features.DynamicGateConfidenceThreshold = 1.5 },
			wantErr: "dynamic_gate_confidence_threshold",
		},
		{
			name:    "auto PR without token",
			mutate:  func(c *Config) { c.Worktree.AutoPR = true; c.GitHub.Token = "" },
			wantErr: "github.token",
		},
		{
			name:    "missing llm model",
			mutate:  func(c *Config) { c.LLM.Model = "" },
			wantErr: "llm.model",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAutoRetries(t *testing.T) {
	c := WorkerConfig{AutoRetryCategories: []string{"transient", "Tool_Error"}}
	assert.True(t, c.AutoRetries("transient"))
	assert.True(t, c.AutoRetries("tool_error"))
	assert.False(t, c.AutoRetries("semantic"))
}
