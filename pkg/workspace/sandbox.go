package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/stewardhq/steward/pkg/config"
)

const (
	containerPrefix = "steward-sbx-"
	healthPoll      = 500 * time.Millisecond
)

// SandboxInfo describes one running agent container.
type SandboxInfo struct {
	ContainerID string
	Name        string
	BaseURL     string
	Port        int
}

// Sandboxes controls per-task agent containers through the docker CLI.
// A global semaphore caps how many run at once.
type Sandboxes struct {
	cfg config.SandboxConfig
	llm config.LLMConfig
	run Runner
	sem chan struct{}

	// probe is overridable in tests.
	probe func(ctx context.Context, baseURL string) error

	mu     sync.Mutex
	active map[string]*SandboxInfo // task id -> container
}

// NewSandboxes creates the sandbox controller.
func NewSandboxes(cfg config.SandboxConfig, llm config.LLMConfig, run Runner) *Sandboxes {
	max := cfg.MaxConcurrent
	if max <= 0 {
		max = 1
	}
	return &Sandboxes{
		cfg:    cfg,
		llm:    llm,
		run:    run,
		sem:    make(chan struct{}, max),
		probe:  probeHealth,
		active: make(map[string]*SandboxInfo),
	}
}

// Create starts the task's container and waits for its health endpoint.
// A container left over from a previous attempt is replaced.
func (s *Sandboxes) Create(ctx context.Context, taskID, workdir string) (*SandboxInfo, error) {
	if err := s.Destroy(ctx, taskID); err != nil {
		return nil, err
	}

	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	info, err := s.create(ctx, taskID, workdir)
	if err != nil {
		<-s.sem
		return nil, err
	}

	s.mu.Lock()
	s.active[taskID] = info
	s.mu.Unlock()
	return info, nil
}

func (s *Sandboxes) create(ctx context.Context, taskID, workdir string) (*SandboxInfo, error) {
	port, err := freePort()
	if err != nil {
		return nil, fmt.Errorf("picking sandbox port: %w", err)
	}
	name := containerPrefix + shortID(taskID)

	// Crash leftovers with the same name block docker run.
	_, _ = s.run.Run(ctx, "", "docker", "rm", "-f", name)

	args := []string{
		"run", "-d",
		"--name", name,
		"--cpus", s.cfg.CPULimit,
		"--memory", s.cfg.MemoryLimit,
		"--pids-limit", strconv.Itoa(s.cfg.PidsLimit),
		"--read-only",
		"--tmpfs", "/tmp:rw,size=256m",
		"--tmpfs", "/run",
		"--cap-drop", "ALL",
		"--network", s.cfg.Network,
		"-p", fmt.Sprintf("127.0.0.1:%d:%d", port, s.cfg.AgentPort),
	}
	if workdir != "" {
		args = append(args, "-v", workdir+":/workspace")
	}
	for key, value := range s.containerEnv() {
		args = append(args, "-e", key+"="+value)
	}
	args = append(args, s.cfg.Image)

	out, err := s.run.Run(ctx, "", "docker", args...)
	if err != nil {
		return nil, fmt.Errorf("starting sandbox container: %w", err)
	}
	info := &SandboxInfo{
		ContainerID: strings.TrimSpace(out),
		Name:        name,
		BaseURL:     fmt.Sprintf("http://127.0.0.1:%d", port),
		Port:        port,
	}

	if err := s.awaitHealthy(ctx, info.BaseURL); err != nil {
		_, _ = s.run.Run(context.WithoutCancel(ctx), "", "docker", "rm", "-f", name)
		return nil, fmt.Errorf("sandbox never became healthy: %w", err)
	}
	slog.Info("Sandbox ready", "task_id", taskID, "container", name, "base_url", info.BaseURL)
	return info, nil
}

// containerEnv is the agent server's environment: canonical names plus
// the OpenAI-style aliases the agent image understands.
func (s *Sandboxes) containerEnv() map[string]string {
	base := strings.TrimSuffix(s.llm.BaseURL, "/")
	openaiBase := base
	if openaiBase != "" && !strings.HasSuffix(openaiBase, "/v1") {
		openaiBase += "/v1"
	}
	return map[string]string{
		"LLM_API_KEY":     s.llm.APIKey,
		"LLM_BASE_URL":    base,
		"LLM_MODEL":       s.llm.Model,
		"AGENT_PORT":      strconv.Itoa(s.cfg.AgentPort),
		"OPENAI_API_KEY":  s.llm.APIKey,
		"OPENAI_BASE_URL": openaiBase,
		"MINIMAX_MODEL":   s.llm.Model,
	}
}

func (s *Sandboxes) awaitHealthy(ctx context.Context, baseURL string) error {
	deadline := time.Now().Add(s.cfg.HealthTimeout())
	var lastErr error
	for time.Now().Before(deadline) {
		if lastErr = s.probe(ctx, baseURL); lastErr == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(healthPoll):
		}
	}
	return lastErr
}

// Destroy removes the task's container if one is tracked. Idempotent.
func (s *Sandboxes) Destroy(ctx context.Context, taskID string) error {
	s.mu.Lock()
	info, ok := s.active[taskID]
	if ok {
		delete(s.active, taskID)
	}
	s.mu.Unlock()
	if !ok {
		return nil
	}

	defer func() { <-s.sem }()
	if _, err := s.run.Run(ctx, "", "docker", "rm", "-f", info.Name); err != nil {
		return fmt.Errorf("removing sandbox container: %w", err)
	}
	return nil
}

// ActiveCount reports how many containers are tracked.
func (s *Sandboxes) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

func freePort() (int, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, err
	}
	defer func() { _ = l.Close() }()
	return l.Addr().(*net.TCPAddr).Port, nil
}

func probeHealth(ctx context.Context, baseURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := (&http.Client{Timeout: 3 * time.Second}).Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health endpoint returned %d", resp.StatusCode)
	}
	return nil
}
