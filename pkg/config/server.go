package config

import "time"

// ServerConfig holds the HTTP API surface settings.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`

	// AuthToken, when set, requires Bearer auth on all /api routes.
	AuthToken string `yaml:"auth_token"`

	// AllowedWSOrigins restricts WebSocket origins. Empty allows all
	// (development).
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`
}

// DefaultServerConfig returns server defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{Addr: ":8080"}
}

// EventsConfig tunes the event sink and WebSocket delivery.
type EventsConfig struct {
	// QueueSize is the sink's bounded op queue capacity.
	QueueSize int `yaml:"queue_size"`

	// BatchSize caps records per flush transaction.
	BatchSize int `yaml:"batch_size"`

	// FlushIntervalMS is the flush cadence in milliseconds.
	FlushIntervalMS int `yaml:"flush_interval_ms"`

	// WSWriteTimeoutSeconds bounds one WebSocket write; slow clients
	// past it are disconnected.
	WSWriteTimeoutSeconds int `yaml:"ws_write_timeout_seconds"`
}

// DefaultEventsConfig returns event plane defaults.
func DefaultEventsConfig() EventsConfig {
	return EventsConfig{
		QueueSize:             1024,
		BatchSize:             50,
		FlushIntervalMS:       200,
		WSWriteTimeoutSeconds: 10,
	}
}

// FlushInterval returns the sink flush cadence as a duration.
func (c EventsConfig) FlushInterval() time.Duration {
	return time.Duration(c.FlushIntervalMS) * time.Millisecond
}

// WSWriteTimeout returns the WebSocket write bound as a duration.
func (c EventsConfig) WSWriteTimeout() time.Duration {
	return time.Duration(c.WSWriteTimeoutSeconds) * time.Second
}

// RetentionConfig controls background pruning of old rows.
type RetentionConfig struct {
	// TaskRetentionDays is how long terminal tasks are kept.
	TaskRetentionDays int `yaml:"task_retention_days"`

	// LogRetentionDays is how long stage log rows are kept.
	LogRetentionDays int `yaml:"log_retention_days"`

	// TriggerEventRetentionDays is how long trigger events are kept.
	TriggerEventRetentionDays int `yaml:"trigger_event_retention_days"`

	// CleanupIntervalMinutes is the pruning cadence.
	CleanupIntervalMinutes int `yaml:"cleanup_interval_minutes"`
}

// DefaultRetentionConfig returns retention defaults.
func DefaultRetentionConfig() RetentionConfig {
	return RetentionConfig{
		TaskRetentionDays:         90,
		LogRetentionDays:          30,
		TriggerEventRetentionDays: 14,
		CleanupIntervalMinutes:    60,
	}
}

// CleanupInterval returns the pruning cadence as a duration.
func (c RetentionConfig) CleanupInterval() time.Duration {
	return time.Duration(c.CleanupIntervalMinutes) * time.Minute
}

// NotifyConfig controls the terminal-task webhook.
type NotifyConfig struct {
	// WebhookURL receives a POST per terminal task. Empty disables.
	WebhookURL string `yaml:"webhook_url"`

	// TimeoutSeconds bounds one webhook POST.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// Timeout returns the webhook POST bound as a duration.
func (c NotifyConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
