package config

import "time"

// Sandbox fallback modes when container creation fails.
const (
	// SandboxFallbackStrict fails the task when the sandbox cannot start.
	SandboxFallbackStrict = "strict"
	// SandboxFallbackGraceful continues with in-process execution.
	SandboxFallbackGraceful = "graceful"
)

// WorktreeConfig controls git worktree workspaces for code-producing
// stages.
type WorktreeConfig struct {
	// Enabled turns worktree creation on for projects with a repo URL.
	Enabled bool `yaml:"enabled"`

	// AutoPR opens a pull request after the final commit+push.
	AutoPR bool `yaml:"auto_pr"`

	// BaseDir is where task worktrees are created.
	BaseDir string `yaml:"base_dir"`

	// RepoCacheDir holds the shared clones worktrees are added from.
	RepoCacheDir string `yaml:"repo_cache_dir"`

	// BaseBranch is the PR base and the branch worktrees fork from.
	BaseBranch string `yaml:"base_branch"`
}

// DefaultWorktreeConfig returns worktree defaults (disabled; paths
// under the working directory).
func DefaultWorktreeConfig() WorktreeConfig {
	return WorktreeConfig{
		Enabled:      false,
		AutoPR:       false,
		BaseDir:      "./data/worktrees",
		RepoCacheDir: "./data/repo-cache",
		BaseBranch:   "main",
	}
}

// SandboxConfig controls per-task agent containers.
type SandboxConfig struct {
	// Enabled turns sandbox creation on.
	Enabled bool `yaml:"enabled"`

	// FallbackMode is "strict" or "graceful" (see constants above).
	FallbackMode string `yaml:"fallback_mode"`

	// MaxConcurrent caps sandboxes across all tasks.
	MaxConcurrent int `yaml:"max_concurrent"`

	// Image is the agent-server container image.
	Image string `yaml:"image"`

	// Network is the docker network the container joins.
	Network string `yaml:"network"`

	// CPULimit is the docker --cpus value.
	CPULimit string `yaml:"cpu_limit"`

	// MemoryLimit is the docker --memory value.
	MemoryLimit string `yaml:"memory_limit"`

	// PidsLimit is the docker --pids-limit value.
	PidsLimit int `yaml:"pids_limit"`

	// AgentPort is the in-container port the agent server listens on.
	AgentPort int `yaml:"agent_port"`

	// HealthTimeoutSeconds bounds the wait for the health endpoint.
	HealthTimeoutSeconds int `yaml:"health_timeout_seconds"`
}

// DefaultSandboxConfig returns sandbox defaults.
func DefaultSandboxConfig() SandboxConfig {
	return SandboxConfig{
		Enabled:              false,
		FallbackMode:         SandboxFallbackGraceful,
		MaxConcurrent:        4,
		Image:                "steward-agent:latest",
		Network:              "steward-sandbox",
		CPULimit:             "2",
		MemoryLimit:          "2g",
		PidsLimit:            256,
		AgentPort:            8700,
		HealthTimeoutSeconds: 60,
	}
}

// HealthTimeout returns the sandbox health wait bound as a duration.
func (c SandboxConfig) HealthTimeout() time.Duration {
	return time.Duration(c.HealthTimeoutSeconds) * time.Second
}

// MemoryConfig controls the per-project knowledge buckets.
type MemoryConfig struct {
	// Enabled turns memory injection and extraction on.
	Enabled bool `yaml:"enabled"`

	// Dir is the root of the per-project bucket files.
	Dir string `yaml:"dir"`

	// MaxEntriesPerCategory caps each bucket; overflow drops oldest.
	MaxEntriesPerCategory int `yaml:"max_entries_per_category"`
}

// DefaultMemoryConfig returns memory defaults.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Enabled:               true,
		Dir:                   "./data/memory",
		MaxEntriesPerCategory: 50,
	}
}

// GitHubConfig holds credentials for pull request creation.
type GitHubConfig struct {
	// Token is the bearer token for the GitHub REST API.
	Token string `yaml:"token"`

	// APIBaseURL overrides the API endpoint (GitHub Enterprise).
	// Empty means https://api.github.com.
	APIBaseURL string `yaml:"api_base_url"`
}
