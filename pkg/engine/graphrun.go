package engine

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/stewardhq/steward/pkg/graph"
	"github.com/stewardhq/steward/pkg/models"
)

// runGraph drives ready-set execution over the template's dependency
// graph. Failed nodes re-enter the ready set while execution budget
// remains; on_failure redirects reset their target for a re-run. The
// iteration bound caps redirect loops.
func (r *taskRun) runGraph(ctx context.Context) error {
	e := r.e

	g, err := graph.Build(r.task.Template.Stages)
	if err != nil {
		return failTaskf("stage graph invalid: %v", err)
	}
	if err := g.Validate(); err != nil {
		return failTaskf("stage graph invalid: %v", err)
	}

	byName := make(map[string]*models.Stage, len(r.task.Stages))
	for _, st := range r.task.Stages {
		byName[st.Name] = st
	}

	state := graph.NewState()
	for _, name := range g.Nodes() {
		st := byName[name]
		if st == nil {
			return failTaskf("stage %q missing from the task", name)
		}
		state.ExecCounts[name] = st.ExecutionCount
		switch st.Status {
		case models.StageStatusCompleted:
			state.Completed[name] = true
			r.replayCompleted(ctx, st)
		case models.StageStatusFailed:
			state.Failed[name] = true
		case models.StageStatusSkipped:
			state.Skipped[name] = true
		}
	}

	maxIter := e.cfg.Worker.GraphMaxLoopIterations * len(g.Nodes())
	for iter := 0; ; iter++ {
		if iter >= maxIter {
			return failTaskf("graph execution exceeded %d iterations", maxIter)
		}
		if ctx.Err() != nil {
			return errShutdown
		}
		if r.cancelled(ctx) {
			return errCancelled
		}

		ready := g.ReadySet(state)
		if len(ready) == 0 {
			if len(state.Running) > 0 {
				select {
				case <-ctx.Done():
					return errShutdown
				case <-time.After(time.Second):
				}
				continue
			}
			for name := range state.Failed {
				return failTaskf("stage %q failed with no redirect or budget remaining", name)
			}
			return nil
		}

		type nodeResult struct {
			name string
			err  error
		}
		results := make([]nodeResult, len(ready))
		for _, name := range ready {
			state.Running[name] = true
		}

		var wg sync.WaitGroup
		for i, name := range ready {
			wg.Add(1)
			go func(i int, name string, st *models.Stage) {
				defer wg.Done()
				results[i] = nodeResult{name: name, err: r.runStage(ctx, st)}
			}(i, name, byName[name])
		}
		wg.Wait()

		for _, res := range results {
			delete(state.Running, res.name)
			st := byName[res.name]
			state.ExecCounts[res.name] = st.ExecutionCount

			if res.err == nil {
				if st.Status == models.StageStatusSkipped {
					state.Skipped[res.name] = true
				} else {
					state.Completed[res.name] = true
				}
				delete(state.Failed, res.name)
				continue
			}

			var se *stageError
			if !errors.As(res.err, &se) {
				return res.err
			}
			state.Failed[res.name] = true

			if target, ok := g.FailureRedirect(res.name); ok {
				tst := byName[target]
				if tst == nil {
					return failTaskf("stage %q redirects to unknown stage %q", res.name, target)
				}
				if err := e.stores.Stages.ResetToPending(ctx, tst.ID); err != nil {
					slog.Warn("Redirect target reset failed",
						"task_id", r.task.ID, "stage", target, "error", err)
				}
				tst.Status = models.StageStatusPending
				delete(state.Completed, target)
				delete(state.Failed, target)

				// The re-run rebuilds the target's output from scratch.
				r.mu.Lock()
				delete(r.outputs, target)
				delete(r.structured, target)
				r.mu.Unlock()

				e.audit(r.task.ID, "failure_redirected", map[string]any{
					"stage":  res.name,
					"target": target,
				}, models.RiskMedium)
				slog.Info("Stage failure redirected",
					"task_id", r.task.ID, "stage", res.name, "target", target)
				continue
			}

			if state.ExecCounts[res.name] >= g.MaxExecutions(res.name) {
				return failTaskf("stage %q failed after %d executions: %s",
					res.name, state.ExecCounts[res.name], se.reason)
			}
			slog.Warn("Stage failed, execution budget remains",
				"task_id", r.task.ID, "stage", res.name,
				"executions", state.ExecCounts[res.name], "max", g.MaxExecutions(res.name))
		}
	}
}
