// Package config loads and validates the engine configuration: a YAML
// file expanded with {{.ENV_VAR}} templates, merged over defaults, then
// overridden by the flat environment variables the deployment surface
// documents (WORKER_POLL_INTERVAL, CB_MAX_TOKENS_PER_TASK, ...). The
// engine can run with no YAML file at all.
package config

// Config is the root configuration for the steward process.
type Config struct {
	Worker    WorkerConfig    `yaml:"worker"`
	Breaker   BreakerConfig   `yaml:"circuit_breaker"`
	Worktree  WorktreeConfig  `yaml:"worktree"`
	Sandbox   SandboxConfig   `yaml:"sandbox"`
	Memory    MemoryConfig    `yaml:"memory"`
	Features  FeaturesConfig  `yaml:"features"`
	LLM       LLMConfig       `yaml:"llm"`
	GitHub    GitHubConfig    `yaml:"github"`
	Server    ServerConfig    `yaml:"server"`
	Events    EventsConfig    `yaml:"events"`
	Retention RetentionConfig `yaml:"retention"`
	Notify    NotifyConfig    `yaml:"notify"`
}

// Default returns the full default configuration.
func Default() *Config {
	return &Config{
		Worker:    DefaultWorkerConfig(),
		Breaker:   DefaultBreakerConfig(),
		Worktree:  DefaultWorktreeConfig(),
		Sandbox:   DefaultSandboxConfig(),
		Memory:    DefaultMemoryConfig(),
		Features:  DefaultFeaturesConfig(),
		LLM:       DefaultLLMConfig(),
		GitHub:    GitHubConfig{},
		Server:    DefaultServerConfig(),
		Events:    DefaultEventsConfig(),
		Retention: DefaultRetentionConfig(),
		Notify:    NotifyConfig{TimeoutSeconds: 10},
	}
}
