package store

import (
	"github.com/stewardhq/steward/ent"
	"github.com/stewardhq/steward/pkg/models"
)

// The store returns plain model structs so callers stay decoupled from
// the generated Ent types. Nillable columns map to empty values except
// where the model keeps the pointer (timestamps, confidence).

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt64(i *int64) int64 {
	if i == nil {
		return 0
	}
	return *i
}

func taskFromEnt(t *ent.Task) *models.Task {
	if t == nil {
		return nil
	}
	out := &models.Task{
		ID:               t.ID,
		ExternalID:       derefString(t.ExternalID),
		Title:            t.Title,
		Description:      t.Description,
		Status:           models.TaskStatus(t.Status),
		TotalTokens:      t.TotalTokens,
		TotalCost:        t.TotalCost,
		TemplateID:       t.TemplateID,
		TemplateVersion:  t.TemplateVersion,
		ProjectID:        derefString(t.ProjectID),
		Plan:             t.Plan,
		RoutingDecisions: t.RoutingDecisions,
		BranchName:       derefString(t.BranchName),
		PRURL:            derefString(t.PrURL),
		Error:            derefString(t.Error),
		ClaimedBy:        derefString(t.ClaimedBy),
		CreatedAt:        t.CreatedAt,
		ClaimedAt:        t.ClaimedAt,
		StartedAt:        t.StartedAt,
		CompletedAt:      t.CompletedAt,
		HeartbeatAt:      t.HeartbeatAt,
	}
	if t.Edges.Stages != nil {
		out.Stages = stagesFromEnt(t.Edges.Stages)
	}
	if t.Edges.Template != nil {
		out.Template = templateFromEnt(t.Edges.Template)
	}
	if t.Edges.Project != nil {
		out.Project = projectFromEnt(t.Edges.Project)
	}
	return out
}

func tasksFromEnt(rows []*ent.Task) []*models.Task {
	out := make([]*models.Task, 0, len(rows))
	for _, t := range rows {
		out = append(out, taskFromEnt(t))
	}
	return out
}

func stageFromEnt(st *ent.TaskStage) *models.Stage {
	if st == nil {
		return nil
	}
	out := &models.Stage{
		ID:             st.ID,
		TaskID:         st.TaskID,
		Name:           st.Name,
		AgentRole:      st.AgentRole,
		Status:         models.StageStatus(st.Status),
		ExecOrder:      st.ExecOrder,
		StartedAt:      st.StartedAt,
		CompletedAt:    st.CompletedAt,
		DurationMS:     derefInt64(st.DurationMs),
		TokensUsed:     st.TokensUsed,
		TurnsUsed:      st.TurnsUsed,
		Output:         st.Output,
		Structured:     st.Structured,
		Error:          derefString(st.Error),
		Confidence:     st.Confidence,
		RetryCount:     st.RetryCount,
		ExecutionCount: st.ExecutionCount,
	}
	if st.FailureCategory != nil {
		out.FailureCategory = models.FailureCategory(*st.FailureCategory)
	}
	return out
}

func stagesFromEnt(rows []*ent.TaskStage) []*models.Stage {
	out := make([]*models.Stage, 0, len(rows))
	for _, st := range rows {
		out = append(out, stageFromEnt(st))
	}
	return out
}

func gateFromEnt(g *ent.HumanGate) *models.Gate {
	if g == nil {
		return nil
	}
	return &models.Gate{
		ID:             g.ID,
		TaskID:         g.TaskID,
		StageName:      g.StageName,
		AgentRole:      g.AgentRole,
		GateType:       models.GateType(g.GateType),
		Status:         models.GateStatus(g.Status),
		Reviewer:       derefString(g.Reviewer),
		Comment:        g.Comment,
		RevisedContent: g.RevisedContent,
		RetryCount:     g.RetryCount,
		IsDynamic:      g.IsDynamic,
		CreatedAt:      g.CreatedAt,
		ReviewedAt:     g.ReviewedAt,
	}
}

func gatesFromEnt(rows []*ent.HumanGate) []*models.Gate {
	out := make([]*models.Gate, 0, len(rows))
	for _, g := range rows {
		out = append(out, gateFromEnt(g))
	}
	return out
}

func logFromEnt(l *ent.StageLog) *models.StageLog {
	if l == nil {
		return nil
	}
	return &models.StageLog{
		ID:            l.ID,
		TaskID:        l.TaskID,
		StageID:       derefString(l.StageID),
		CorrelationID: l.CorrelationID,
		Sequence:      l.Sequence,
		EventType:     l.EventType,
		Source:        models.LogSource(l.Source),
		Status:        models.LogStatus(l.Status),
		Request:       l.Request,
		Response:      l.Response,
		Command:       l.Command,
		CommandArgs:   l.CommandArgs,
		Workspace:     l.Workspace,
		ExecutionMode: l.ExecutionMode,
		DurationMS:    derefInt64(l.DurationMs),
		Result:        l.Result,
		Summary:       l.Summary,
		Truncated:     l.Truncated,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

func logsFromEnt(rows []*ent.StageLog) []*models.StageLog {
	out := make([]*models.StageLog, 0, len(rows))
	for _, l := range rows {
		out = append(out, logFromEnt(l))
	}
	return out
}

func templateFromEnt(t *ent.TaskTemplate) *models.Template {
	if t == nil {
		return nil
	}
	return &models.Template{
		ID:          t.ID,
		Name:        t.Name,
		Version:     t.Version,
		ParentID:    derefString(t.ParentID),
		Description: t.Description,
		Stages:      t.Stages,
		Gates:       t.Gates,
		Interactive: t.Interactive,
		CreatedAt:   t.CreatedAt,
	}
}

func templatesFromEnt(rows []*ent.TaskTemplate) []*models.Template {
	out := make([]*models.Template, 0, len(rows))
	for _, t := range rows {
		out = append(out, templateFromEnt(t))
	}
	return out
}

func projectFromEnt(p *ent.Project) *models.Project {
	if p == nil {
		return nil
	}
	return &models.Project{
		ID:          p.ID,
		Name:        p.Name,
		RepoURL:     p.RepoURL,
		TechStack:   p.TechStack,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

func auditFromEnt(a *ent.AuditLog) *models.AuditEntry {
	if a == nil {
		return nil
	}
	return &models.AuditEntry{
		ID:        a.ID,
		TaskID:    a.TaskID,
		Action:    a.Action,
		Detail:    a.Detail,
		RiskLevel: models.RiskLevel(a.RiskLevel),
		Actor:     a.Actor,
		CreatedAt: a.CreatedAt,
	}
}

func breakerFromEnt(b *ent.CircuitBreaker) *models.BreakerRecord {
	if b == nil {
		return nil
	}
	return &models.BreakerRecord{
		ID:          b.ID,
		TaskID:      b.TaskID,
		Level:       b.Level,
		TriggeredBy: b.TriggeredBy,
		Reason:      b.Reason,
		TriggeredAt: b.TriggeredAt,
		ResolvedAt:  b.ResolvedAt,
		ResolvedBy:  derefString(b.ResolvedBy),
	}
}

func kpiFromEnt(k *ent.KPIMetric) *models.KPIRecord {
	if k == nil {
		return nil
	}
	return &models.KPIRecord{
		ID:         k.ID,
		TaskID:     k.TaskID,
		Name:       k.Name,
		Value:      k.Value,
		Unit:       k.Unit,
		RecordedAt: k.RecordedAt,
	}
}

func skillFromEnt(f *ent.SkillFeedback) *models.SkillFeedbackEntry {
	if f == nil {
		return nil
	}
	return &models.SkillFeedbackEntry{
		ID:        f.ID,
		AgentRole: f.AgentRole,
		TaskID:    f.TaskID,
		GateID:    f.GateID,
		Comment:   f.Comment,
		Lesson:    f.Lesson,
		CreatedAt: f.CreatedAt,
	}
}

func ruleFromEnt(r *ent.TriggerRule) *models.TriggerRule {
	if r == nil {
		return nil
	}
	return &models.TriggerRule{
		ID:         r.ID,
		Name:       r.Name,
		RuleType:   models.RuleType(r.RuleType),
		Expression: r.Expression,
		TemplateID: r.TemplateID,
		ProjectID:  r.ProjectID,
		Enabled:    r.Enabled,
		CreatedAt:  r.CreatedAt,
	}
}

func triggerEventFromEnt(e *ent.TriggerEvent) *models.TriggerEvent {
	if e == nil {
		return nil
	}
	return &models.TriggerEvent{
		ID:        e.ID,
		RuleID:    derefString(e.RuleID),
		Source:    e.Source,
		Payload:   e.Payload,
		TaskID:    e.TaskID,
		Status:    models.TriggerEventStatus(e.Status),
		CreatedAt: e.CreatedAt,
	}
}
