package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/stewardhq/steward/pkg/llm"
	"github.com/stewardhq/steward/pkg/models"
)

type routeWire struct {
	Target string `json:"target"`
	Reason string `json:"reason,omitempty"`
}

// routeAfter asks the routing model to pick the next target for a
// routed stage. Any failure or an unknown target leaves the declared
// order untouched.
func (r *taskRun) routeAfter(ctx context.Context, st *models.Stage, def *models.StageDef) {
	e := r.e
	if !e.cfg.Features.DynamicRouting || def.Routing == nil || len(def.Routing.Options) == 0 || e.llm == nil {
		return
	}

	model := def.Routing.Model
	if model == "" {
		model = e.cfg.LLM.UtilityModel()
	}

	text, _, err := llm.GenerateText(ctx, e.llm, llm.Request{
		TaskID:      r.task.ID,
		Messages:    []llm.Message{{Role: "user", Content: r.routingPrompt(st, def)}},
		Model:       model,
		Temperature: 0,
		MaxTokens:   200,
	})
	if err != nil {
		slog.Warn("Routing decision failed", "task_id", r.task.ID, "stage", st.Name, "error", err)
		return
	}

	var wire routeWire
	if err := json.Unmarshal([]byte(stripFences(text)), &wire); err != nil {
		slog.Warn("Routing decision unparseable",
			"task_id", r.task.ID, "stage", st.Name, "error", err)
		return
	}
	target := strings.TrimSpace(wire.Target)

	known := false
	for _, opt := range def.Routing.Options {
		if opt.Target == target {
			known = true
			break
		}
	}
	if !known {
		slog.Warn("Routing decision names unknown target, ignoring",
			"task_id", r.task.ID, "stage", st.Name, "target", target)
		return
	}

	decision := models.RoutingDecision{
		Stage:     st.Name,
		Target:    target,
		Reason:    wire.Reason,
		DecidedAt: time.Now().UTC(),
	}
	if err := e.stores.Tasks.AppendRoutingDecision(ctx, r.task.ID, decision); err != nil {
		slog.Warn("Routing decision write failed", "task_id", r.task.ID, "error", err)
		return
	}
	r.task.RoutingDecisions = append(r.task.RoutingDecisions, decision)

	r.mu.Lock()
	r.routeTarget = target
	r.mu.Unlock()

	e.audit(r.task.ID, "routing_decided", map[string]any{
		"stage":  st.Name,
		"target": target,
		"reason": wire.Reason,
	}, models.RiskMedium)
	slog.Info("Dynamic routing decided", "task_id", r.task.ID, "stage", st.Name, "target", target)
}

func (r *taskRun) routingPrompt(st *models.Stage, def *models.StageDef) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Stage %q of a task pipeline just completed. ", st.Name)
	b.WriteString("Pick which stage should run next, from these options:\n")
	for _, opt := range def.Routing.Options {
		fmt.Fprintf(&b, "- %s", opt.Target)
		if opt.Description != "" {
			fmt.Fprintf(&b, ": %s", opt.Description)
		}
		b.WriteByte('\n')
	}

	if s := r.stageStructured(st.Name); s != nil {
		if summary, err := json.Marshal(s); err == nil {
			b.WriteString("\nStructured result of the stage:\n")
			b.Write(summary)
			b.WriteByte('\n')
		}
	} else if out := firstLine(r.stageOutput(st.Name), 500); out != "" {
		b.WriteString("\nStage result summary:\n" + out + "\n")
	}

	b.WriteString("\nReply with JSON only: {\"target\": \"<option>\", \"reason\": \"<one sentence>\"}")
	return b.String()
}

// claimRouteTarget returns and clears the pending routing target.
func (r *taskRun) claimRouteTarget() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	target := r.routeTarget
	r.routeTarget = ""
	return target
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
