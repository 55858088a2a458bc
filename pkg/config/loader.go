package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Load builds the effective configuration: defaults, overlaid by the
// YAML file at path (optional — a missing file is not an error), then
// by the flat environment overrides, then validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			var fileCfg Config
			if err := yaml.Unmarshal(ExpandEnv(data), &fileCfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
			if err := mergo.Merge(cfg, &fileCfg, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("merging %s over defaults: %w", path, err)
			}
			slog.Info("Loaded configuration file", "path", path)
		case errors.Is(err, os.ErrNotExist):
			slog.Info("No configuration file, using defaults and environment", "path", path)
		default:
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides maps the documented flat environment variables onto
// the config. Every option in the deployment table is honored here so
// the engine is fully configurable without a YAML file.
func applyEnvOverrides(cfg *Config) {
	// Worker
	envInt("WORKER_COUNT", &cfg.Worker.WorkerCount)
	envInt("WORKER_MAX_CONCURRENT_TASKS", &cfg.Worker.MaxConcurrentTasks)
	envInt("WORKER_POLL_INTERVAL", &cfg.Worker.PollIntervalSeconds)
	envInt("WORKER_TASK_TIMEOUT", &cfg.Worker.TaskTimeoutSeconds)
	envInt("WORKER_HEARTBEAT_INTERVAL", &cfg.Worker.HeartbeatIntervalSeconds)
	envInt("WORKER_ORPHAN_CHECK_INTERVAL", &cfg.Worker.OrphanCheckIntervalSeconds)
	envInt("WORKER_ORPHAN_THRESHOLD", &cfg.Worker.OrphanThresholdSeconds)
	envInt("WORKER_GATE_POLL_INTERVAL", &cfg.Worker.GatePollIntervalSeconds)
	envInt("WORKER_GATE_MAX_WAIT_SECONDS", &cfg.Worker.GateMaxWaitSeconds)
	envInt("GATE_DEFAULT_MAX_RETRIES", &cfg.Worker.GateDefaultMaxRetries)
	envInt("GRAPH_MAX_LOOP_ITERATIONS", &cfg.Worker.GraphMaxLoopIterations)
	envList("AUTO_RETRY_CATEGORIES", &cfg.Worker.AutoRetryCategories)

	// Circuit breaker
	envInt("CB_MAX_TOKENS_PER_TASK", &cfg.Breaker.MaxTokensPerTask)
	envFloat("CB_MAX_COST_PER_TASK_RMB", &cfg.Breaker.MaxCostPerTask)

	// Worktrees
	envBool("WORKTREE_ENABLED", &cfg.Worktree.Enabled)
	envBool("WORKTREE_AUTO_PR", &cfg.Worktree.AutoPR)
	envString("WORKTREE_BASE_DIR", &cfg.Worktree.BaseDir)
	envString("WORKTREE_REPO_CACHE_DIR", &cfg.Worktree.RepoCacheDir)
	envString("WORKTREE_BASE_BRANCH", &cfg.Worktree.BaseBranch)

	// Sandboxes
	envBool("SANDBOX_ENABLED", &cfg.Sandbox.Enabled)
	envString("SANDBOX_FALLBACK_MODE", &cfg.Sandbox.FallbackMode)
	envInt("SANDBOX_MAX_CONCURRENT", &cfg.Sandbox.MaxConcurrent)
	envString("SANDBOX_IMAGE", &cfg.Sandbox.Image)
	envString("SANDBOX_NETWORK", &cfg.Sandbox.Network)
	envString("SANDBOX_CPU_LIMIT", &cfg.Sandbox.CPULimit)
	envString("SANDBOX_MEMORY_LIMIT", &cfg.Sandbox.MemoryLimit)
	envInt("SANDBOX_PIDS_LIMIT", &cfg.Sandbox.PidsLimit)
	envInt("SANDBOX_AGENT_PORT", &cfg.Sandbox.AgentPort)
	envInt("SANDBOX_HEALTH_TIMEOUT", &cfg.Sandbox.HealthTimeoutSeconds)

	// Memory
	envBool("MEMORY_ENABLED", &cfg.Memory.Enabled)
	envString("MEMORY_DIR", &cfg.Memory.Dir)
	envInt("MEMORY_MAX_ENTRIES_PER_CATEGORY", &cfg.Memory.MaxEntriesPerCategory)
	envBool("MEMORY_COMPRESSION_ENABLED", &cfg.Features.Compression)

	// Feature toggles
	envBool("STAGE_CONTRACTS_ENABLED", &cfg.Features.StageContracts)
	envBool("CONDITIONS_ENABLED", &cfg.Features.Conditions)
	envBool("DYNAMIC_GATE_ENABLED", &cfg.Features.DynamicGates)
	envFloat("DYNAMIC_GATE_CONFIDENCE_THRESHOLD", &cfg.Features.DynamicGateConfidenceThreshold)
	envBool("DYNAMIC_ROUTING_ENABLED", &cfg.Features.DynamicRouting)
	envBool("INTERACTIVE_PLANNING_ENABLED", &cfg.Features.InteractivePlanning)
	envBool("GRAPH_EXECUTION_ENABLED", &cfg.Features.GraphExecution)

	// LLM
	envString("LLM_SERVICE_ADDR", &cfg.LLM.Addr)
	envString("LLM_MODEL", &cfg.LLM.Model)
	envString("LLM_ROUTING_MODEL", &cfg.LLM.RoutingModel)
	envInt("LLM_MAX_TOKENS", &cfg.LLM.MaxTokens)
	envFloat32("LLM_TEMPERATURE", &cfg.LLM.Temperature)
	envFloat("LLM_COST_PER_KILO_TOKENS", &cfg.LLM.CostPerKiloTokens)
	envString("LLM_API_KEY", &cfg.LLM.APIKey)
	envString("LLM_BASE_URL", &cfg.LLM.BaseURL)

	// GitHub
	envString("GITHUB_TOKEN", &cfg.GitHub.Token)
	envString("GITHUB_API_BASE_URL", &cfg.GitHub.APIBaseURL)

	// Server / events
	envString("HTTP_ADDR", &cfg.Server.Addr)
	envString("API_AUTH_TOKEN", &cfg.Server.AuthToken)
	envList("ALLOWED_WS_ORIGINS", &cfg.Server.AllowedWSOrigins)
	envInt("EVENTS_QUEUE_SIZE", &cfg.Events.QueueSize)
	envInt("EVENTS_BATCH_SIZE", &cfg.Events.BatchSize)
	envInt("EVENTS_FLUSH_INTERVAL_MS", &cfg.Events.FlushIntervalMS)

	// Retention / notify
	envInt("RETENTION_TASK_DAYS", &cfg.Retention.TaskRetentionDays)
	envInt("RETENTION_LOG_DAYS", &cfg.Retention.LogRetentionDays)
	envInt("RETENTION_TRIGGER_EVENT_DAYS", &cfg.Retention.TriggerEventRetentionDays)
	envInt("RETENTION_CLEANUP_INTERVAL_MINUTES", &cfg.Retention.CleanupIntervalMinutes)
	envString("NOTIFY_WEBHOOK_URL", &cfg.Notify.WebhookURL)
	envInt("NOTIFY_TIMEOUT_SECONDS", &cfg.Notify.TimeoutSeconds)
}

func envString(key string, target *string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

func envInt(key string, target *int) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("Ignoring non-integer environment override", "key", key, "value", v)
		return
	}
	*target = n
}

func envFloat(key string, target *float64) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("Ignoring non-numeric environment override", "key", key, "value", v)
		return
	}
	*target = f
}

func envFloat32(key string, target *float32) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		slog.Warn("Ignoring non-numeric environment override", "key", key, "value", v)
		return
	}
	*target = float32(f)
}

func envBool(key string, target *bool) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("Ignoring non-boolean environment override", "key", key, "value", v)
		return
	}
	*target = b
}

func envList(key string, target *[]string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	*target = out
}
