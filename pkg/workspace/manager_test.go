package workspace

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/events"
	"github.com/stewardhq/steward/pkg/models"
)

type recordingSink struct {
	mu      sync.Mutex
	records []models.AppendLogRequest
}

func (s *recordingSink) EmitCreate(req models.AppendLogRequest, _ events.Priority) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, req)
	return "log-id"
}

func (s *recordingSink) EmitUpdate(string, string, models.StageLogUpdate, events.Priority) {}

func (s *recordingSink) eventTypes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.records))
	for i, r := range s.records {
		out[i] = r.EventType
	}
	return out
}

func managerConfig(t *testing.T) *config.Config {
	cfg := config.Default()
	cfg.Worktree = wtConfig(t)
	cfg.Sandbox = sbConfig()
	cfg.LLM = llmConfig()
	return cfg
}

func TestManagerSetupTempDirWhenWorktreesOff(t *testing.T) {
	cfg := managerConfig(t)
	cfg.Worktree.Enabled = false
	cfg.Sandbox.Enabled = false
	m := NewManager(cfg, &fakeRunner{}, &recordingSink{})

	task := &models.Task{ID: "task-1", Title: "x"}
	ws, err := m.Setup(context.Background(), task, nil)
	require.NoError(t, err)
	assert.Equal(t, ModeInProcess, ws.Mode)
	assert.Empty(t, ws.Branch)
	assert.DirExists(t, ws.Dir)

	require.NoError(t, m.Cleanup(context.Background(), task, ws))
	assert.NoDirExists(t, ws.Dir)
}

func TestManagerSetupWorktreeAndSandbox(t *testing.T) {
	cfg := managerConfig(t)
	runner := &fakeRunner{handle: func(_ string, args []string) (string, error) {
		if args[0] == "clone" {
			require.NoError(t, os.MkdirAll(filepath.Join(args[2], ".git"), 0o755))
		}
		if args[0] == "run" {
			return "cid\n", nil
		}
		return "", nil
	}}
	sink := &recordingSink{}
	m := NewManager(cfg, runner, sink)
	m.sandboxes.probe = func(context.Context, string) error { return nil }

	task := &models.Task{ID: "a1b2c3d4e5", Title: "add metrics"}
	project := &models.Project{ID: "p1", RepoURL: "https://github.com/acme/api.git"}
	ws, err := m.Setup(context.Background(), task, project)
	require.NoError(t, err)
	assert.Equal(t, ModeSandboxed, ws.Mode)
	assert.Equal(t, "task/a1b2c3d4-add-metrics", ws.Branch)
	require.NotNil(t, ws.Sandbox)

	assert.Equal(t, []string{
		"worktree_create_started", "worktree_create_finished",
		"sandbox_create_started", "sandbox_create_finished",
	}, sink.eventTypes())
}

func TestManagerSandboxGracefulFallback(t *testing.T) {
	cfg := managerConfig(t)
	cfg.Worktree.Enabled = false
	cfg.Sandbox.FallbackMode = config.SandboxFallbackGraceful
	cfg.Sandbox.HealthTimeoutSeconds = 1
	sink := &recordingSink{}
	m := NewManager(cfg, &fakeRunner{}, sink)
	m.sandboxes.probe = func(context.Context, string) error { return errors.New("down") }

	ws, err := m.Setup(context.Background(), &models.Task{ID: "task-1", Title: "x"}, nil)
	require.NoError(t, err)
	assert.Equal(t, ModeInProcess, ws.Mode)
	assert.Nil(t, ws.Sandbox)

	types := sink.eventTypes()
	require.Len(t, types, 2)
	assert.Equal(t, "sandbox_create_finished", types[1])
	assert.Equal(t, models.LogStatusFailed, sink.records[1].Status)
}

func TestManagerSandboxStrictFailure(t *testing.T) {
	cfg := managerConfig(t)
	cfg.Worktree.Enabled = false
	cfg.Sandbox.FallbackMode = config.SandboxFallbackStrict
	cfg.Sandbox.HealthTimeoutSeconds = 1
	m := NewManager(cfg, &fakeRunner{}, &recordingSink{})
	m.sandboxes.probe = func(context.Context, string) error { return errors.New("down") }

	_, err := m.Setup(context.Background(), &models.Task{ID: "task-1", Title: "x"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sandbox setup")
}

func TestManagerCleanupIdempotent(t *testing.T) {
	cfg := managerConfig(t)
	cfg.Sandbox.Enabled = false
	runner := &fakeRunner{handle: func(_ string, args []string) (string, error) {
		if args[0] == "clone" {
			require.NoError(t, os.MkdirAll(filepath.Join(args[2], ".git"), 0o755))
		}
		return "", nil
	}}
	m := NewManager(cfg, runner, &recordingSink{})

	task := &models.Task{ID: "a1b2c3d4e5", Title: "x"}
	project := &models.Project{ID: "p1", RepoURL: "https://github.com/acme/api.git"}
	ws, err := m.Setup(context.Background(), task, project)
	require.NoError(t, err)

	require.NoError(t, m.Cleanup(context.Background(), task, ws))
	require.NoError(t, m.Cleanup(context.Background(), task, ws))
}

func TestManagerCreatePRRequiresBranchAndToken(t *testing.T) {
	cfg := managerConfig(t)
	m := NewManager(cfg, &fakeRunner{}, &recordingSink{})

	_, err := m.CreatePR(context.Background(), &Workspace{}, "t", "b")
	assert.Error(t, err)

	_, err = m.CreatePR(context.Background(), &Workspace{Branch: "task/x"}, "t", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token")
}
