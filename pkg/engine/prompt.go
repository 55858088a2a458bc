package engine

import (
	"fmt"
	"strings"

	"github.com/stewardhq/steward/pkg/compress"
	"github.com/stewardhq/steward/pkg/models"
)

func (r *taskRun) systemPrompt(st *models.Stage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are the %s agent of an engineering task pipeline. "+
		"Work on the current stage only and report your result as plain text.", st.AgentRole)
	if r.memoryBlock != "" {
		b.WriteString("\n\n")
		b.WriteString(r.memoryBlock)
	}
	if r.repoContext != "" {
		b.WriteString("\n\n")
		b.WriteString(r.repoContext)
	}
	return b.String()
}

func (r *taskRun) userPrompt(st *models.Stage, def *models.StageDef, rejection *models.GateRejectionContext, retryContext string) string {
	sections := []string{"Task: " + r.task.Title}
	if r.task.Description != "" {
		sections = append(sections, "Description:\n"+r.task.Description)
	}
	if r.task.Plan != "" {
		sections = append(sections, "Approved plan:\n"+r.task.Plan)
	}

	for _, entry := range r.priorContext(def) {
		sections = append(sections, fmt.Sprintf("Output of stage %s:\n%s", entry.Stage, entry.Text))
	}

	if retryContext != "" {
		sections = append(sections, retryContext)
	}
	if rejection != nil {
		s := fmt.Sprintf("A reviewer rejected the previous output of this stage (retry %s).\nReviewer comment: %s",
			rejection.Retry, rejection.Comment)
		if rejection.RevisedContent != "" {
			s += "\n\nRevised content provided by the reviewer, to be adopted:\n" + rejection.RevisedContent
		}
		sections = append(sections, s)
	}

	if def.Instruction != "" {
		sections = append(sections, fmt.Sprintf("Instruction for stage %q:\n%s", st.Name, def.Instruction))
	} else {
		sections = append(sections, fmt.Sprintf("Carry out stage %q of the task.", st.Name))
	}
	return strings.Join(sections, "\n\n")
}

// priorContext renders the compressed window of earlier stage outputs.
// Stages named in context_from always pass at full fidelity.
func (r *taskRun) priorContext(def *models.StageDef) []compress.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.acc.PriorContext(r.acc.Len(), def.ContextFrom)
}
