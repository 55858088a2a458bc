package config

import (
	"errors"
	"fmt"
)

// ValidationError reports a config field with an unacceptable value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// IsValidationError checks whether err is a config validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func fieldErr(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// Validate checks the effective configuration for values the engine
// cannot run with.
func Validate(cfg *Config) error {
	if cfg.Worker.WorkerCount < 1 {
		return fieldErr("worker.worker_count", "must be at least 1")
	}
	if cfg.Worker.MaxConcurrentTasks < cfg.Worker.WorkerCount {
		return fieldErr("worker.max_concurrent_tasks", "must be >= worker_count")
	}
	if cfg.Worker.PollIntervalSeconds < 1 {
		return fieldErr("worker.poll_interval_seconds", "must be at least 1")
	}
	if cfg.Worker.TaskTimeoutSeconds < 1 {
		return fieldErr("worker.task_timeout_seconds", "must be at least 1")
	}
	if cfg.Worker.GatePollIntervalSeconds < 1 {
		return fieldErr("worker.gate_poll_interval_seconds", "must be at least 1")
	}
	if cfg.Worker.GateMaxWaitSeconds < cfg.Worker.GatePollIntervalSeconds {
		return fieldErr("worker.gate_max_wait_seconds", "must be >= gate_poll_interval_seconds")
	}
	if cfg.Worker.GraphMaxLoopIterations < 1 {
		return fieldErr("worker.graph_max_loop_iterations", "must be at least 1")
	}
	for _, cat := range cfg.Worker.AutoRetryCategories {
		switch cat {
		case "transient", "tool_error", "resource", "semantic", "unknown":
		default:
			return fieldErr("worker.auto_retry_categories", fmt.Sprintf("unknown category %q", cat))
		}
	}

	if cfg.Breaker.MaxTokensPerTask < 0 {
		return fieldErr("circuit_breaker.max_tokens_per_task", "must not be negative")
	}
	if cfg.Breaker.MaxCostPerTask < 0 {
		return fieldErr("circuit_breaker.max_cost_per_task_rmb", "must not be negative")
	}

	switch cfg.Sandbox.FallbackMode {
	case SandboxFallbackStrict, SandboxFallbackGraceful:
	default:
		return fieldErr("sandbox.fallback_mode", fmt.Sprintf("must be %q or %q", SandboxFallbackStrict, SandboxFallbackGraceful))
	}
	if cfg.Sandbox.Enabled && cfg.Sandbox.MaxConcurrent < 1 {
		return fieldErr("sandbox.max_concurrent", "must be at least 1 when sandboxes are enabled")
	}
	if cfg.Sandbox.Enabled && (cfg.Sandbox.AgentPort < 1 || cfg.Sandbox.AgentPort > 65535) {
		return fieldErr("sandbox.agent_port", "must be a valid port")
	}

	if cfg.Memory.Enabled && cfg.Memory.MaxEntriesPerCategory < 1 {
		return fieldErr("memory.max_entries_per_category", "must be at least 1 when memory is enabled")
	}

	if t := cfg.Features.DynamicGateConfidenceThreshold; t < 0 || t > 1 {
		return fieldErr("features.dynamic_gate_confidence_threshold", "must be within [0,1]")
	}

	if cfg.LLM.Addr == "" {
		return fieldErr("llm.addr", "required")
	}
	if cfg.LLM.Model == "" {
		return fieldErr("llm.model", "required")
	}

	if cfg.Worktree.AutoPR && cfg.GitHub.Token == "" {
		return fieldErr("github.token", "required when worktree.auto_pr is enabled")
	}

	if cfg.Server.Addr == "" {
		return fieldErr("server.addr", "required")
	}
	return nil
}
