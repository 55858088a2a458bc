package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/events"
	"github.com/stewardhq/steward/pkg/models"
)

// Execution modes a workspace can resolve to.
type Mode string

const (
	ModeInProcess Mode = "in_process"
	ModeSandboxed Mode = "sandboxed"
)

// Workspace is the resolved isolation for one task run.
type Workspace struct {
	Dir     string
	Branch  string
	RepoURL string
	Sandbox *SandboxInfo
	Mode    Mode

	// temp marks a throwaway dir used when worktrees are off.
	temp bool
}

// LogEmitter is the sink surface lifecycle events go through.
// *events.Sink implements it.
type LogEmitter interface {
	EmitCreate(req models.AppendLogRequest, priority events.Priority) string
	EmitUpdate(taskID, logID string, upd models.StageLogUpdate, priority events.Priority)
}

// Manager combines worktrees, sandboxes and PR creation behind the
// engine-facing lifecycle: Setup before the first stage, CommitAndPush/
// CreatePR at success, Cleanup always.
type Manager struct {
	worktrees *Worktrees
	sandboxes *Sandboxes
	github    *GitHub
	sink      LogEmitter

	wtCfg config.WorktreeConfig
	sbCfg config.SandboxConfig
}

// NewManager wires the workspace lifecycle from config.
func NewManager(cfg *config.Config, run Runner, sink LogEmitter) *Manager {
	return &Manager{
		worktrees: NewWorktrees(cfg.Worktree, run),
		sandboxes: NewSandboxes(cfg.Sandbox, cfg.LLM, run),
		github:    NewGitHub(cfg.GitHub),
		sink:      sink,
		wtCfg:     cfg.Worktree,
		sbCfg:     cfg.Sandbox,
	}
}

// Setup resolves the task's workspace: a worktree when enabled and the
// project has a repository, a temp dir otherwise, plus a sandbox when
// enabled. A sandbox failure follows the fallback policy: strict fails
// the setup, graceful continues in-process.
func (m *Manager) Setup(ctx context.Context, task *models.Task, project *models.Project) (*Workspace, error) {
	ws := &Workspace{Mode: ModeInProcess}

	if m.wtCfg.Enabled && project != nil && project.RepoURL != "" {
		m.record(task.ID, "worktree_create_started", models.LogStatusSuccess, "")
		dir, branch, err := m.worktrees.Setup(ctx, task, project.RepoURL)
		if err != nil {
			m.record(task.ID, "worktree_create_finished", models.LogStatusFailed, err.Error())
			return nil, fmt.Errorf("worktree setup: %w", err)
		}
		m.record(task.ID, "worktree_create_finished", models.LogStatusSuccess, branch)
		ws.Dir = dir
		ws.Branch = branch
		ws.RepoURL = project.RepoURL
	} else {
		dir, err := os.MkdirTemp("", "steward-task-")
		if err != nil {
			return nil, fmt.Errorf("creating task workdir: %w", err)
		}
		ws.Dir = dir
		ws.temp = true
	}

	if m.sbCfg.Enabled {
		m.record(task.ID, "sandbox_create_started", models.LogStatusSuccess, "")
		info, err := m.sandboxes.Create(ctx, task.ID, ws.Dir)
		if err != nil {
			m.record(task.ID, "sandbox_create_finished", models.LogStatusFailed, err.Error())
			if m.sbCfg.FallbackMode == config.SandboxFallbackStrict {
				m.cleanupDir(ctx, task, ws)
				return nil, fmt.Errorf("sandbox setup: %w", err)
			}
			slog.Warn("Sandbox creation failed, continuing in-process",
				"task_id", task.ID, "error", err)
		} else {
			m.record(task.ID, "sandbox_create_finished", models.LogStatusSuccess, info.Name)
			ws.Sandbox = info
			ws.Mode = ModeSandboxed
		}
	}
	return ws, nil
}

// CommitAndPush commits the worktree and pushes the task branch.
// Reports whether anything was pushed.
func (m *Manager) CommitAndPush(ctx context.Context, ws *Workspace, message string) (bool, error) {
	if ws == nil || ws.Branch == "" {
		return false, nil
	}
	return m.worktrees.CommitAndPush(ctx, ws.Dir, ws.Branch, message)
}

// CreatePR opens a pull request for the task branch against the base
// branch. Requires a configured GitHub token.
func (m *Manager) CreatePR(ctx context.Context, ws *Workspace, title, body string) (string, error) {
	if ws == nil || ws.Branch == "" {
		return "", fmt.Errorf("no branch to open a pull request from")
	}
	if !m.github.Enabled() {
		return "", fmt.Errorf("github token not configured")
	}
	return m.github.CreatePR(ctx, ws.RepoURL, ws.Branch, m.wtCfg.BaseBranch, title, body)
}

// Cleanup destroys the task's sandbox and removes its workspace dir.
// Safe to call more than once and with a nil workspace.
func (m *Manager) Cleanup(ctx context.Context, task *models.Task, ws *Workspace) error {
	if err := m.sandboxes.Destroy(ctx, task.ID); err != nil {
		slog.Warn("Sandbox destroy failed", "task_id", task.ID, "error", err)
	}
	m.cleanupDir(ctx, task, ws)
	return nil
}

func (m *Manager) cleanupDir(ctx context.Context, task *models.Task, ws *Workspace) {
	if ws == nil || ws.Dir == "" {
		return
	}
	if ws.temp {
		_ = os.RemoveAll(ws.Dir)
		return
	}
	if err := m.worktrees.Remove(ctx, ws.RepoURL, ws.Dir, ws.Branch); err != nil {
		slog.Warn("Worktree remove failed", "task_id", task.ID, "dir", ws.Dir, "error", err)
	}
}

// PruneStaleWorktrees clears crash leftovers at startup.
func (m *Manager) PruneStaleWorktrees(ctx context.Context) error {
	if !m.wtCfg.Enabled {
		return nil
	}
	return m.worktrees.PruneStale(ctx)
}

func (m *Manager) record(taskID, eventType string, status models.LogStatus, result string) {
	if m.sink == nil {
		return
	}
	m.sink.EmitCreate(models.AppendLogRequest{
		TaskID:    taskID,
		EventType: eventType,
		Source:    models.LogSourceSystem,
		Status:    status,
		Result:    result,
	}, events.PriorityNormal)
}
