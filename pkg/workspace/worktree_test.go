package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/models"
)

// fakeRunner records every command and replays scripted handlers.
type fakeRunner struct {
	mu    sync.Mutex
	calls []string
	// handle may create filesystem side effects and override output.
	handle func(dir string, args []string) (string, error)
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))
	f.mu.Unlock()
	if f.handle != nil {
		return f.handle(dir, args)
	}
	return "", nil
}

func (f *fakeRunner) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeRunner) saw(fragment string) bool {
	for _, c := range f.recorded() {
		if strings.Contains(c, fragment) {
			return true
		}
	}
	return false
}

func wtConfig(t *testing.T) config.WorktreeConfig {
	root := t.TempDir()
	return config.WorktreeConfig{
		Enabled:      true,
		BaseDir:      filepath.Join(root, "worktrees"),
		RepoCacheDir: filepath.Join(root, "cache"),
		BaseBranch:   "main",
	}
}

func TestBranchName(t *testing.T) {
	task := &models.Task{
		ID:    "a1b2c3d4-0000-0000-0000-000000000000",
		Title: "Fix the Login Flow!",
	}
	assert.Equal(t, "task/a1b2c3d4-fix-the-login-flow", BranchName(task))

	assert.Equal(t, "task/deadbeef-task",
		BranchName(&models.Task{ID: "deadbeef", Title: "!!!"}))
}

func TestWorktreeSetupClonesOnFirstUse(t *testing.T) {
	cfg := wtConfig(t)
	runner := &fakeRunner{handle: func(dir string, args []string) (string, error) {
		if args[0] == "clone" {
			require.NoError(t, os.MkdirAll(filepath.Join(args[2], ".git"), 0o755))
		}
		return "", nil
	}}
	w := NewWorktrees(cfg, runner)

	task := &models.Task{ID: "a1b2c3d4e5", Title: "add metrics"}
	dir, branch, err := w.Setup(context.Background(), task, "https://github.com/acme/api.git")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.BaseDir, "a1b2c3d4"), dir)
	assert.Equal(t, "task/a1b2c3d4-add-metrics", branch)

	assert.True(t, runner.saw("clone https://github.com/acme/api.git"))
	assert.True(t, runner.saw("worktree add "+dir+" -b "+branch+" origin/main"))
}

func TestWorktreeSetupFetchesOnReuse(t *testing.T) {
	cfg := wtConfig(t)
	w := NewWorktrees(cfg, &fakeRunner{})
	repoDir := w.cachePath("https://github.com/acme/api.git")
	require.NoError(t, os.MkdirAll(filepath.Join(repoDir, ".git"), 0o755))

	runner := &fakeRunner{}
	w = NewWorktrees(cfg, runner)
	_, _, err := w.Setup(context.Background(), &models.Task{ID: "feedface", Title: "x"},
		"https://github.com/acme/api.git")
	require.NoError(t, err)

	assert.True(t, runner.saw("fetch origin"))
	assert.False(t, runner.saw("clone"))
}

func TestWorktreeSetupIdempotentAfterCrash(t *testing.T) {
	cfg := wtConfig(t)
	w := NewWorktrees(cfg, &fakeRunner{})
	repoDir := w.cachePath("https://github.com/acme/api.git")
	require.NoError(t, os.MkdirAll(filepath.Join(repoDir, ".git"), 0o755))

	// Leftover from a crashed run.
	leftover := filepath.Join(cfg.BaseDir, "feedface")
	require.NoError(t, os.MkdirAll(leftover, 0o755))

	runner := &fakeRunner{}
	w = NewWorktrees(cfg, runner)
	_, _, err := w.Setup(context.Background(), &models.Task{ID: "feedface", Title: "x"},
		"https://github.com/acme/api.git")
	require.NoError(t, err)

	assert.True(t, runner.saw("worktree remove --force "+leftover))
	assert.True(t, runner.saw("branch -D task/feedface-x"))
	assert.True(t, runner.saw("worktree add"))
}

func TestCommitAndPushSkipsCleanTree(t *testing.T) {
	runner := &fakeRunner{handle: func(_ string, args []string) (string, error) {
		if args[0] == "status" {
			return "  \n", nil
		}
		return "", nil
	}}
	w := NewWorktrees(wtConfig(t), runner)

	pushed, err := w.CommitAndPush(context.Background(), "/tmp/wt", "task/x", "done")
	require.NoError(t, err)
	assert.False(t, pushed)
	assert.False(t, runner.saw("push"))
}

func TestCommitAndPushCommitsDirtyTree(t *testing.T) {
	runner := &fakeRunner{handle: func(_ string, args []string) (string, error) {
		if args[0] == "status" {
			return " M main.go\n", nil
		}
		return "", nil
	}}
	w := NewWorktrees(wtConfig(t), runner)

	pushed, err := w.CommitAndPush(context.Background(), "/tmp/wt", "task/x", "task: add metrics")
	require.NoError(t, err)
	assert.True(t, pushed)
	assert.True(t, runner.saw("add -A"))
	assert.True(t, runner.saw("commit -m task: add metrics"))
	assert.True(t, runner.saw("push -u origin task/x"))
}

func TestPruneStaleRemovesUnregisteredDirs(t *testing.T) {
	cfg := wtConfig(t)
	w := NewWorktrees(cfg, &fakeRunner{})
	repoDir := w.cachePath("https://github.com/acme/api.git")
	require.NoError(t, os.MkdirAll(filepath.Join(repoDir, ".git"), 0o755))

	kept := filepath.Join(cfg.BaseDir, "kept")
	stale := filepath.Join(cfg.BaseDir, "stale")
	require.NoError(t, os.MkdirAll(kept, 0o755))
	require.NoError(t, os.MkdirAll(stale, 0o755))

	runner := &fakeRunner{handle: func(_ string, args []string) (string, error) {
		if args[0] == "worktree" && args[1] == "list" {
			return fmt.Sprintf("worktree %s\nbranch refs/heads/main\n\nworktree %s\nbranch refs/heads/task-x\n",
				repoDir, kept), nil
		}
		return "", nil
	}}
	w = NewWorktrees(cfg, runner)
	require.NoError(t, w.PruneStale(context.Background()))

	assert.DirExists(t, kept)
	assert.NoDirExists(t, stale)
}

func TestRemoveIsIdempotent(t *testing.T) {
	cfg := wtConfig(t)
	runner := &fakeRunner{}
	w := NewWorktrees(cfg, runner)

	require.NoError(t, w.Remove(context.Background(),
		"https://github.com/acme/api.git", filepath.Join(cfg.BaseDir, "gone"), "task/gone-x"))
	require.NoError(t, w.Remove(context.Background(),
		"https://github.com/acme/api.git", filepath.Join(cfg.BaseDir, "gone"), "task/gone-x"))
}
