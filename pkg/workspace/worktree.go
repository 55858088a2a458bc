package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/models"
)

// Worktrees manages git worktrees added from shared repo-cache clones.
// Clone and fetch of one repository are serialized behind a per-repo
// lock; different repositories proceed in parallel.
type Worktrees struct {
	cfg   config.WorktreeConfig
	run   Runner
	locks *keyedMutex
}

// NewWorktrees creates the worktree controller.
func NewWorktrees(cfg config.WorktreeConfig, run Runner) *Worktrees {
	return &Worktrees{cfg: cfg, run: run, locks: newKeyedMutex()}
}

// BranchName derives the task-scoped branch: task/<shortid>-<slug>.
func BranchName(task *models.Task) string {
	return "task/" + shortID(task.ID) + "-" + slugify(task.Title)
}

func shortID(id string) string {
	id = strings.ReplaceAll(id, "-", "")
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
		if b.Len() >= 40 {
			break
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "task"
	}
	return slug
}

// cachePath is the shared clone directory for one repository URL.
func (w *Worktrees) cachePath(repoURL string) string {
	name := repoURL
	if i := strings.LastIndexAny(name, "/:"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, ".git")
	if name == "" {
		name = "repo"
	}
	return filepath.Join(w.cfg.RepoCacheDir, slugify(name))
}

// Setup creates a worktree for the task on a fresh branch forked from
// the base branch. Re-entry after a crash tears down the leftover
// worktree and branch first, so the call is idempotent.
func (w *Worktrees) Setup(ctx context.Context, task *models.Task, repoURL string) (dir, branch string, err error) {
	branch = BranchName(task)
	dir = filepath.Join(w.cfg.BaseDir, shortID(task.ID))

	repoDir, err := w.ensureClone(ctx, repoURL)
	if err != nil {
		return "", "", err
	}

	unlock := w.locks.Lock(repoURL)
	defer unlock()

	// Crash leftovers: a registered worktree or a stale branch with the
	// same name blocks re-creation.
	if _, statErr := os.Stat(dir); statErr == nil {
		_, _ = w.run.Run(ctx, repoDir, "git", "worktree", "remove", "--force", dir)
		_ = os.RemoveAll(dir)
	}
	_, _ = w.run.Run(ctx, repoDir, "git", "worktree", "prune")
	_, _ = w.run.Run(ctx, repoDir, "git", "branch", "-D", branch)

	if err := os.MkdirAll(w.cfg.BaseDir, 0o755); err != nil {
		return "", "", fmt.Errorf("creating worktree base dir: %w", err)
	}
	base := "origin/" + w.cfg.BaseBranch
	if _, err := w.run.Run(ctx, repoDir, "git", "worktree", "add", dir, "-b", branch, base); err != nil {
		return "", "", fmt.Errorf("adding worktree: %w", err)
	}
	return dir, branch, nil
}

// ensureClone clones the repository into the cache on first use and
// fetches on every subsequent one.
func (w *Worktrees) ensureClone(ctx context.Context, repoURL string) (string, error) {
	unlock := w.locks.Lock(repoURL)
	defer unlock()

	repoDir := w.cachePath(repoURL)
	if _, err := os.Stat(filepath.Join(repoDir, ".git")); err != nil {
		if err := os.MkdirAll(w.cfg.RepoCacheDir, 0o755); err != nil {
			return "", fmt.Errorf("creating repo cache dir: %w", err)
		}
		if _, err := w.run.Run(ctx, "", "git", "clone", repoURL, repoDir); err != nil {
			return "", fmt.Errorf("cloning %s: %w", repoURL, err)
		}
		return repoDir, nil
	}
	if _, err := w.run.Run(ctx, repoDir, "git", "fetch", "origin"); err != nil {
		return "", fmt.Errorf("fetching %s: %w", repoURL, err)
	}
	return repoDir, nil
}

// CommitAndPush stages everything in the worktree, commits and pushes
// the branch. A clean tree is not an error; the push is skipped.
func (w *Worktrees) CommitAndPush(ctx context.Context, dir, branch, message string) (bool, error) {
	status, err := w.run.Run(ctx, dir, "git", "status", "--porcelain")
	if err != nil {
		return false, err
	}
	if strings.TrimSpace(status) == "" {
		slog.Info("Worktree clean, nothing to push", "dir", dir, "branch", branch)
		return false, nil
	}
	if _, err := w.run.Run(ctx, dir, "git", "add", "-A"); err != nil {
		return false, err
	}
	if _, err := w.run.Run(ctx, dir, "git", "commit", "-m", message); err != nil {
		return false, err
	}
	if _, err := w.run.Run(ctx, dir, "git", "push", "-u", "origin", branch); err != nil {
		return false, err
	}
	return true, nil
}

// Remove detaches the worktree and deletes its branch. Idempotent: a
// worktree already gone is not an error.
func (w *Worktrees) Remove(ctx context.Context, repoURL, dir, branch string) error {
	unlock := w.locks.Lock(repoURL)
	defer unlock()

	repoDir := w.cachePath(repoURL)
	_, _ = w.run.Run(ctx, repoDir, "git", "worktree", "remove", "--force", dir)
	if branch != "" {
		_, _ = w.run.Run(ctx, repoDir, "git", "branch", "-D", branch)
	}
	if dir != "" {
		return os.RemoveAll(dir)
	}
	return nil
}

// PruneStale runs after a crash: prunes worktree registrations in every
// cached repository (in parallel) and deletes base-dir leftovers no
// repository claims anymore.
func (w *Worktrees) PruneStale(ctx context.Context) error {
	repos, err := os.ReadDir(w.cfg.RepoCacheDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	registered := make(map[string]bool)
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, entry := range repos {
		if !entry.IsDir() {
			continue
		}
		repoDir := filepath.Join(w.cfg.RepoCacheDir, entry.Name())
		g.Go(func() error {
			if _, err := w.run.Run(gctx, repoDir, "git", "worktree", "prune"); err != nil {
				slog.Warn("Worktree prune failed", "repo", repoDir, "error", err)
				return nil
			}
			out, err := w.run.Run(gctx, repoDir, "git", "worktree", "list", "--porcelain")
			if err != nil {
				return nil
			}
			mu.Lock()
			for _, line := range strings.Split(out, "\n") {
				if path, ok := strings.CutPrefix(line, "worktree "); ok {
					registered[strings.TrimSpace(path)] = true
				}
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	leftovers, err := os.ReadDir(w.cfg.BaseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range leftovers {
		dir := filepath.Join(w.cfg.BaseDir, entry.Name())
		if abs, err := filepath.Abs(dir); err == nil && registered[abs] {
			continue
		}
		if registered[dir] {
			continue
		}
		slog.Info("Removing stale worktree dir", "dir", dir)
		_ = os.RemoveAll(dir)
	}
	return nil
}
