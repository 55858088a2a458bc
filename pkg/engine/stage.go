package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/stewardhq/steward/pkg/compress"
	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/contract"
	"github.com/stewardhq/steward/pkg/events"
	"github.com/stewardhq/steward/pkg/executor"
	"github.com/stewardhq/steward/pkg/models"
	"github.com/stewardhq/steward/pkg/workspace"
)

// retryPreviewChars bounds the failed-output excerpt injected into a
// retry prompt.
const retryPreviewChars = 500

// runStage drives one stage to a settled state: completed past its
// gates, skipped on an unmet condition, or failed. Gate rejections and
// auto-retries loop back into re-execution inside this call.
func (r *taskRun) runStage(ctx context.Context, st *models.Stage) error {
	e := r.e
	def := r.task.Template.StageDefByName(st.Name)
	if def == nil {
		return failTaskf("stage %q has no definition in the template snapshot", st.Name)
	}

	if e.cfg.Features.Conditions && def.Condition != nil && !r.conditionMet(def.Condition) {
		if err := e.stores.Stages.Skip(ctx, st.ID); err != nil {
			return failTaskf("stage %q skip failed: %v", st.Name, err)
		}
		st.Status = models.StageStatusSkipped
		e.broadcastStage(st, models.StageStatusSkipped, "")
		e.audit(r.task.ID, "stage_skipped", map[string]any{
			"stage":        st.Name,
			"source_stage": def.Condition.SourceStage,
			"field":        def.Condition.Field,
		}, models.RiskLow)
		slog.Info("Stage skipped on condition",
			"task_id", r.task.ID, "stage", st.Name, "source", def.Condition.SourceStage)
		return nil
	}

	var rejection *models.GateRejectionContext
	retryContext := ""
	gateAttempts := 0

	for {
		if ctx.Err() != nil {
			return errShutdown
		}
		if r.cancelled(ctx) {
			return errCancelled
		}

		began, err := e.stores.Stages.BeginExecution(ctx, st.ID)
		if err != nil {
			return failTaskf("stage %q could not begin execution: %v", st.Name, err)
		}
		*st = *began
		e.broadcastStage(st, models.StageStatusRunning, "")

		start := time.Now()
		res, execErr := r.executeStage(ctx, st, def, rejection, retryContext)
		durationMS := time.Since(start).Milliseconds()

		if execErr != nil {
			category, partial := classifyExec(execErr)
			var tokens, turns int
			output := ""
			if partial != nil {
				tokens, turns, output = partial.TotalTokens, partial.Turns, partial.Text
			}

			failure := models.StageFailure{
				Error:      execErr.Error(),
				Category:   category,
				Output:     output,
				TokensUsed: tokens,
				TurnsUsed:  turns,
				DurationMS: durationMS,
			}
			if ferr := e.stores.Stages.Fail(ctx, st.ID, failure); ferr != nil {
				slog.Error("Stage failure write failed",
					"task_id", r.task.ID, "stage", st.Name, "error", ferr)
			}
			st.Status = models.StageStatusFailed
			e.broadcastStage(st, models.StageStatusFailed, execErr.Error())

			// Partial usage counts against the budget even on failure.
			if berr := r.creditUsage(ctx, tokens); berr != nil {
				return berr
			}

			if e.cfg.Worker.AutoRetries(string(category)) && st.RetryCount < def.MaxRetries {
				if berr := r.spendExecBudget(ctx, st, def, category); berr != nil {
					return berr
				}
				n, rerr := e.stores.Stages.IncrementRetry(ctx, st.ID)
				if rerr != nil {
					slog.Warn("Stage retry increment failed",
						"task_id", r.task.ID, "stage", st.Name, "error", rerr)
					n = st.RetryCount + 1
				}
				st.RetryCount = n
				retryContext = buildRetryContext(execErr, output)
				slog.Warn("Stage failed, retrying",
					"task_id", r.task.ID, "stage", st.Name,
					"category", category, "retry", n, "max_retries", def.MaxRetries)
				continue
			}

			e.audit(r.task.ID, "stage_failed", map[string]any{
				"stage":    st.Name,
				"category": string(category),
				"error":    execErr.Error(),
			}, models.RiskHigh)
			return &stageError{stage: st.Name, category: category, reason: execErr.Error()}
		}

		if err := r.recordSuccess(ctx, st, def, res, durationMS); err != nil {
			return err
		}
		retryContext = ""

		// A completed stage that doubts itself gets a human look before
		// anything downstream consumes its output.
		if e.cfg.Features.DynamicGates {
			if s := r.stageStructured(st.Name); s != nil && s.Confidence > 0 &&
				s.Confidence < e.cfg.Features.DynamicGateConfidenceThreshold {
				rej, gerr := r.gatePhase(ctx, st, models.GateTypeConfidenceReview, true,
					&gateAttempts, e.cfg.Worker.GateDefaultMaxRetries)
				if gerr != nil {
					return gerr
				}
				if rej != nil {
					if berr := r.spendExecBudget(ctx, st, def, models.FailureGateRejected); berr != nil {
						return berr
					}
					rejection = rej
					continue
				}
			}
		}

		if gd := r.task.Template.GateAfter(st.Name); gd != nil {
			gateType := gd.Type
			if gateType == "" {
				gateType = models.GateTypeHumanApprove
			}
			maxRetries := gd.MaxRetries
			if maxRetries <= 0 {
				maxRetries = e.cfg.Worker.GateDefaultMaxRetries
			}
			rej, gerr := r.gatePhase(ctx, st, gateType, false, &gateAttempts, maxRetries)
			if gerr != nil {
				return gerr
			}
			if rej != nil {
				if berr := r.spendExecBudget(ctx, st, def, models.FailureGateRejected); berr != nil {
					return berr
				}
				rejection = rej
				continue
			}
		}

		rej, perr := r.planningPause(ctx, st)
		if perr != nil {
			return perr
		}
		if rej != nil {
			if berr := r.spendExecBudget(ctx, st, def, models.FailureGateRejected); berr != nil {
				return berr
			}
			rejection = rej
			continue
		}

		r.routeAfter(ctx, st, def)
		return nil
	}
}

// spendExecBudget gates every path that loops back into another
// execution. Retries and gate rejections draw from the same budget, so
// execution_count can never pass the stage's effective max. A non-nil
// return settles the stage as failed with the overrun recorded.
func (r *taskRun) spendExecBudget(ctx context.Context, st *models.Stage, def *models.StageDef, category models.FailureCategory) error {
	limit := def.EffectiveMaxExecutions()
	if st.ExecutionCount < limit {
		return nil
	}
	e := r.e
	reason := fmt.Sprintf("execution budget exhausted after %d executions", st.ExecutionCount)
	if ferr := e.stores.Stages.Fail(ctx, st.ID, models.StageFailure{Error: reason, Category: category}); ferr != nil {
		slog.Error("Stage failure write failed",
			"task_id", r.task.ID, "stage", st.Name, "error", ferr)
	}
	st.Status = models.StageStatusFailed
	e.broadcastStage(st, models.StageStatusFailed, reason)
	e.audit(r.task.ID, "stage_failed", map[string]any{
		"stage":      st.Name,
		"category":   string(category),
		"executions": st.ExecutionCount,
		"error":      reason,
	}, models.RiskHigh)
	slog.Error("Stage execution budget exhausted",
		"task_id", r.task.ID, "stage", st.Name,
		"executions", st.ExecutionCount, "max", limit)
	return &stageError{stage: st.Name, category: category, reason: reason}
}

// executeStage runs one executor call with a tracker attached.
func (r *taskRun) executeStage(ctx context.Context, st *models.Stage, def *models.StageDef, rejection *models.GateRejectionContext, retryContext string) (*executor.Result, error) {
	e := r.e

	mode := string(workspace.ModeInProcess)
	exec := e.execs.InProcess()
	workdir := ""
	if r.ws != nil {
		workdir = r.ws.Dir
		mode = string(r.ws.Mode)
		if r.ws.Sandbox != nil {
			exec = e.execs.Sandboxed(r.ws.Sandbox.BaseURL)
		}
	}

	correlationID := uuid.NewString()
	req := executor.Request{
		TaskID:        r.task.ID,
		StageID:       st.ID,
		StageName:     st.Name,
		AgentRole:     st.AgentRole,
		CorrelationID: correlationID,
		SystemPrompt:  r.systemPrompt(st),
		UserPrompt:    r.userPrompt(st, def, rejection, retryContext),
		Model:         stageModel(def, e.cfg.LLM),
		MaxTurns:      def.MaxTurns,
		Temperature:   e.cfg.LLM.Temperature,
		MaxTokens:     e.cfg.LLM.MaxTokens,
		Timeout:       time.Duration(def.TimeoutSeconds) * time.Second,
		EnableTools:   true,
		Workdir:       workdir,
	}

	var tracker *executor.Tracker
	if e.sink != nil {
		tracker = executor.NewTracker(e.sink, e.bc, r.task.ID, st.ID, correlationID, mode)
		req.Events = tracker.Events()
	}

	stageCtx := ctx
	if def.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		stageCtx, cancel = context.WithTimeout(ctx, time.Duration(def.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	res, err := exec.Execute(stageCtx, req)
	if tracker != nil {
		tracker.Detach()
		<-tracker.Done()
	}
	return res, err
}

// recordSuccess persists the completion, extracts the contract, feeds
// the compression window and credits usage against the breaker.
func (r *taskRun) recordSuccess(ctx context.Context, st *models.Stage, def *models.StageDef, res *executor.Result, durationMS int64) error {
	e := r.e

	var structured *models.StructuredOutput
	if e.cfg.Features.StageContracts && e.contracts != nil {
		structured = e.contracts.Extract(ctx, contract.InferKind(st.Name, st.AgentRole), res.Text)
	}
	var confidence *float64
	if structured != nil {
		c := structured.Confidence
		confidence = &c
	}

	completion := models.StageCompletion{
		Output:     res.Text,
		Structured: structured,
		TokensUsed: res.TotalTokens,
		TurnsUsed:  res.Turns,
		DurationMS: durationMS,
		Confidence: confidence,
	}
	if err := e.stores.Stages.Complete(ctx, st.ID, completion); err != nil {
		return failTaskf("stage %q completion write failed: %v", st.Name, err)
	}
	st.Status = models.StageStatusCompleted
	st.Output = res.Text
	st.Structured = structured
	e.broadcastStage(st, models.StageStatusCompleted, "")
	e.audit(r.task.ID, "stage_completed", map[string]any{
		"stage":  st.Name,
		"tokens": res.TotalTokens,
		"turns":  res.Turns,
	}, models.RiskLow)

	var levels compress.Levels
	if e.cfg.Features.Compression && e.compressor != nil {
		levels = e.compressor.Compress(ctx, st.Name, res.Text)
	} else {
		levels = compress.Fallback(res.Text)
	}
	r.mu.Lock()
	r.acc.Append(st.Name, levels)
	r.outputs[st.Name] = res.Text
	if structured != nil {
		r.structured[st.Name] = structured
	}
	r.mu.Unlock()

	return r.creditUsage(ctx, res.TotalTokens)
}

// creditUsage adds stage usage to the task accumulators and evaluates
// the circuit breaker on the new totals. The returned error, if any,
// fails the task; the stage keeps the status it already has.
func (r *taskRun) creditUsage(ctx context.Context, tokens int) error {
	if tokens <= 0 {
		return nil
	}
	e := r.e
	cost := float64(tokens) / 1000 * e.cfg.LLM.CostPerKiloTokens
	updated, err := e.stores.Tasks.AddUsage(ctx, r.task.ID, tokens, cost)
	if err != nil {
		slog.Warn("Usage credit failed", "task_id", r.task.ID, "error", err)
		return nil
	}
	r.task.TotalTokens = updated.TotalTokens
	r.task.TotalCost = updated.TotalCost
	return r.checkBreaker(ctx)
}

func (r *taskRun) checkBreaker(ctx context.Context) error {
	e := r.e
	limits := e.cfg.Breaker

	var triggeredBy, reason string
	switch {
	case limits.MaxTokensPerTask > 0 && r.task.TotalTokens > limits.MaxTokensPerTask:
		triggeredBy = "token_limit"
		reason = fmt.Sprintf("task used %d tokens, limit %d", r.task.TotalTokens, limits.MaxTokensPerTask)
	case limits.MaxCostPerTask > 0 && r.task.TotalCost > limits.MaxCostPerTask:
		triggeredBy = "cost_limit"
		reason = fmt.Sprintf("task cost %.2f, limit %.2f", r.task.TotalCost, limits.MaxCostPerTask)
	default:
		return nil
	}

	rec, err := e.stores.Breakers.Trip(ctx, r.task.ID, 1, triggeredBy, reason)
	if err != nil {
		slog.Error("Circuit breaker record failed", "task_id", r.task.ID, "error", err)
		rec = &models.BreakerRecord{TaskID: r.task.ID, Level: 1, TriggeredBy: triggeredBy, Reason: reason}
	}
	e.bc.Broadcast(events.TaskChannel(r.task.ID), events.EventBreakerTriggered, events.BreakerPayload{
		BasePayload: events.NewBase(r.task.ID),
		BreakerID:   rec.ID,
		Level:       rec.Level,
		TriggeredBy: rec.TriggeredBy,
		Reason:      rec.Reason,
	})
	e.audit(r.task.ID, "circuit_breaker_tripped", map[string]any{
		"triggered_by": triggeredBy,
		"reason":       reason,
	}, models.RiskHigh)
	slog.Error("Circuit breaker tripped", "task_id", r.task.ID, "triggered_by", triggeredBy, "reason", reason)
	return failTaskf("circuit breaker tripped: %s", reason)
}

func (r *taskRun) stageStructured(name string) *models.StructuredOutput {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.structured[name]
}

func (r *taskRun) stageOutput(name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outputs[name]
}

// classifyExec maps any executor failure to a category and partial result.
func classifyExec(err error) (models.FailureCategory, *executor.Result) {
	var xe *executor.Error
	if errors.As(err, &xe) {
		return xe.Category, xe.Partial
	}
	return executor.Classify(err), nil
}

func stageModel(def *models.StageDef, cfg config.LLMConfig) string {
	if def.Model != "" {
		return def.Model
	}
	return cfg.Model
}

func buildRetryContext(execErr error, output string) string {
	preview := output
	if len(preview) > retryPreviewChars {
		preview = preview[:retryPreviewChars]
	}
	s := "The previous attempt failed with: " + execErr.Error()
	if preview != "" {
		s += "\n\nPartial output of the failed attempt:\n" + preview
	}
	return s
}
