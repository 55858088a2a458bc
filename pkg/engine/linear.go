package engine

import (
	"context"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/stewardhq/steward/pkg/compress"
	"github.com/stewardhq/steward/pkg/models"
)

// runLinear executes stages grouped by exec order: groups run in
// sequence, members of a group in parallel. Already-settled stages are
// replayed into the context window, which is how a requeued task
// resumes where it stopped.
func (r *taskRun) runLinear(ctx context.Context) error {
	groups := groupByOrder(r.task.Stages)

	for len(groups) > 0 {
		if ctx.Err() != nil {
			return errShutdown
		}
		if r.cancelled(ctx) {
			return errCancelled
		}

		group := groups[0]
		groups = groups[1:]

		var pending []*models.Stage
		for _, st := range group {
			switch st.Status {
			case models.StageStatusCompleted:
				r.replayCompleted(ctx, st)
			case models.StageStatusSkipped:
				// Settled; nothing to replay.
			default:
				pending = append(pending, st)
			}
		}

		switch len(pending) {
		case 0:
		case 1:
			if err := r.runStage(ctx, pending[0]); err != nil {
				return err
			}
		default:
			// First member failure cancels the siblings through the
			// group context; usage they produced stays credited.
			eg, gctx := errgroup.WithContext(ctx)
			for _, st := range pending {
				eg.Go(func() error { return r.runStage(gctx, st) })
			}
			if err := eg.Wait(); err != nil {
				return err
			}
		}

		if target := r.claimRouteTarget(); target != "" {
			groups = hoistStage(groups, target)
		}
	}
	return nil
}

// replayCompleted feeds a previously completed stage back into the
// context window without re-executing it.
func (r *taskRun) replayCompleted(ctx context.Context, st *models.Stage) {
	e := r.e
	var levels compress.Levels
	if e.cfg.Features.Compression && e.compressor != nil {
		levels = e.compressor.Compress(ctx, st.Name, st.Output)
	} else {
		levels = compress.Fallback(st.Output)
	}
	r.mu.Lock()
	r.acc.Append(st.Name, levels)
	r.outputs[st.Name] = st.Output
	if st.Structured != nil {
		r.structured[st.Name] = st.Structured
	}
	r.mu.Unlock()
	slog.Info("Stage already completed, replaying output",
		"task_id", r.task.ID, "stage", st.Name)
}

// groupByOrder buckets stages into exec-order groups, ascending, with
// a deterministic (order, name) member order.
func groupByOrder(stages []*models.Stage) [][]*models.Stage {
	sorted := make([]*models.Stage, len(stages))
	copy(sorted, stages)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].ExecOrder != sorted[j].ExecOrder {
			return sorted[i].ExecOrder < sorted[j].ExecOrder
		}
		return sorted[i].Name < sorted[j].Name
	})

	var groups [][]*models.Stage
	for _, st := range sorted {
		if n := len(groups); n > 0 && groups[n-1][0].ExecOrder == st.ExecOrder {
			groups[n-1] = append(groups[n-1], st)
			continue
		}
		groups = append(groups, []*models.Stage{st})
	}
	return groups
}

// hoistStage moves the named stage to the front of the remaining work
// as its own group. A target that is not pending anymore is ignored.
func hoistStage(groups [][]*models.Stage, target string) [][]*models.Stage {
	for gi, group := range groups {
		for si, st := range group {
			if st.Name != target {
				continue
			}
			rest := append(group[:si:si], group[si+1:]...)
			out := [][]*models.Stage{{st}}
			for gj, g := range groups {
				if gj == gi {
					if len(rest) > 0 {
						out = append(out, rest)
					}
					continue
				}
				out = append(out, g)
			}
			return out
		}
	}
	slog.Warn("Routing target not among remaining stages, keeping declared order", "target", target)
	return groups
}
