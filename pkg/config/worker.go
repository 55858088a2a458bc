package config

import (
	"strings"
	"time"
)

// WorkerConfig tunes the claim workers and the gate wait machinery.
// Interval fields are expressed in seconds in YAML and env to match the
// deployment surface; accessors convert to time.Duration.
type WorkerConfig struct {
	// WorkerCount is the number of concurrent claim workers.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentTasks caps tasks in flight across all workers.
	MaxConcurrentTasks int `yaml:"max_concurrent_tasks"`

	// PollIntervalSeconds is the sleep between claim attempts.
	PollIntervalSeconds int `yaml:"poll_interval_seconds"`

	// TaskTimeoutSeconds bounds one full process_task run.
	TaskTimeoutSeconds int `yaml:"task_timeout_seconds"`

	// HeartbeatIntervalSeconds is the cadence of task heartbeats while
	// a worker holds a task.
	HeartbeatIntervalSeconds int `yaml:"heartbeat_interval_seconds"`

	// OrphanCheckIntervalSeconds is the cadence of the background scan
	// for tasks whose heartbeat went stale (worker crash on another pod).
	OrphanCheckIntervalSeconds int `yaml:"orphan_check_interval_seconds"`

	// OrphanThresholdSeconds is how stale a heartbeat must be before a
	// running task is requeued.
	OrphanThresholdSeconds int `yaml:"orphan_threshold_seconds"`

	// GracefulShutdownSeconds bounds the wait for in-flight tasks on Stop.
	GracefulShutdownSeconds int `yaml:"graceful_shutdown_seconds"`

	// GatePollIntervalSeconds is the cadence of gate status polls.
	GatePollIntervalSeconds int `yaml:"gate_poll_interval_seconds"`

	// GateMaxWaitSeconds bounds one gate wait. Human review is measured
	// in hours; the default reflects that.
	GateMaxWaitSeconds int `yaml:"gate_max_wait_seconds"`

	// GateDefaultMaxRetries applies when a gate definition sets none.
	GateDefaultMaxRetries int `yaml:"gate_default_max_retries"`

	// GraphMaxLoopIterations is the per-node bound on graph driver
	// iterations; the loop budget is this times the node count.
	GraphMaxLoopIterations int `yaml:"graph_max_loop_iterations"`

	// AutoRetryCategories lists failure categories that re-execute a
	// stage automatically (comma-set in env form).
	AutoRetryCategories []string `yaml:"auto_retry_categories"`
}

// DefaultWorkerConfig returns worker defaults.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		WorkerCount:                2,
		MaxConcurrentTasks:         4,
		PollIntervalSeconds:        5,
		TaskTimeoutSeconds:         4 * 3600,
		HeartbeatIntervalSeconds:   30,
		OrphanCheckIntervalSeconds: 60,
		OrphanThresholdSeconds:     300,
		GracefulShutdownSeconds:    60,
		GatePollIntervalSeconds:    5,
		GateMaxWaitSeconds:         24 * 3600,
		GateDefaultMaxRetries:      2,
		GraphMaxLoopIterations:     5,
		AutoRetryCategories:        []string{"transient", "tool_error"},
	}
}

// PollInterval returns the claim poll interval as a duration.
func (c WorkerConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

// TaskTimeout returns the per-task processing bound as a duration.
func (c WorkerConfig) TaskTimeout() time.Duration {
	return time.Duration(c.TaskTimeoutSeconds) * time.Second
}

// HeartbeatInterval returns the heartbeat cadence as a duration.
func (c WorkerConfig) HeartbeatInterval() time.Duration {
	return time.Duration(c.HeartbeatIntervalSeconds) * time.Second
}

// OrphanCheckInterval returns the orphan scan cadence as a duration.
func (c WorkerConfig) OrphanCheckInterval() time.Duration {
	return time.Duration(c.OrphanCheckIntervalSeconds) * time.Second
}

// OrphanThreshold returns the heartbeat staleness bound as a duration.
func (c WorkerConfig) OrphanThreshold() time.Duration {
	return time.Duration(c.OrphanThresholdSeconds) * time.Second
}

// GracefulShutdownTimeout returns the shutdown drain bound as a duration.
func (c WorkerConfig) GracefulShutdownTimeout() time.Duration {
	return time.Duration(c.GracefulShutdownSeconds) * time.Second
}

// GatePollInterval returns the gate poll cadence as a duration.
func (c WorkerConfig) GatePollInterval() time.Duration {
	return time.Duration(c.GatePollIntervalSeconds) * time.Second
}

// GateMaxWait returns the gate wait bound as a duration.
func (c WorkerConfig) GateMaxWait() time.Duration {
	return time.Duration(c.GateMaxWaitSeconds) * time.Second
}

// AutoRetries reports whether the given failure category re-executes
// automatically. Matching is case-insensitive.
func (c WorkerConfig) AutoRetries(category string) bool {
	for _, allowed := range c.AutoRetryCategories {
		if strings.EqualFold(strings.TrimSpace(allowed), category) {
			return true
		}
	}
	return false
}

// BreakerConfig holds the per-task resource limits that trip the
// circuit breaker. Zero disables the corresponding check.
type BreakerConfig struct {
	// MaxTokensPerTask trips the breaker when a task's cumulative
	// token count exceeds it.
	MaxTokensPerTask int `yaml:"max_tokens_per_task"`

	// MaxCostPerTask trips the breaker when a task's cumulative cost
	// (RMB) exceeds it.
	MaxCostPerTask float64 `yaml:"max_cost_per_task_rmb"`
}

// DefaultBreakerConfig returns breaker defaults.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxTokensPerTask: 500_000,
		MaxCostPerTask:   50,
	}
}
