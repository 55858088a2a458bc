package models

import (
	"time"
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusClaimed   TaskStatus = "claimed"
	TaskStatusRunning   TaskStatus = "running"
	TaskStatusPlanning  TaskStatus = "planning"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusFailed    TaskStatus = "failed"
	TaskStatusCancelled TaskStatus = "cancelled"
)

// Terminal reports whether the status is a terminal state.
func (s TaskStatus) Terminal() bool {
	switch s {
	case TaskStatusCompleted, TaskStatusFailed, TaskStatusCancelled:
		return true
	}
	return false
}

// Task is the engine's view of a task row. Stages, Template and Project
// are populated by ClaimOldestPending; elsewhere they may be nil.
type Task struct {
	ID               string            `json:"id"`
	ExternalID       string            `json:"external_id,omitempty"`
	Title            string            `json:"title"`
	Description      string            `json:"description,omitempty"`
	Status           TaskStatus        `json:"status"`
	TotalTokens      int               `json:"total_tokens"`
	TotalCost        float64           `json:"total_cost"`
	TemplateID       string            `json:"template_id"`
	TemplateVersion  int               `json:"template_version"`
	ProjectID        string            `json:"project_id,omitempty"`
	Plan             string            `json:"plan,omitempty"`
	RoutingDecisions []RoutingDecision `json:"routing_decisions,omitempty"`
	BranchName       string            `json:"branch_name,omitempty"`
	PRURL            string            `json:"pr_url,omitempty"`
	Error            string            `json:"error,omitempty"`
	ClaimedBy        string            `json:"claimed_by,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	ClaimedAt        *time.Time        `json:"claimed_at,omitempty"`
	StartedAt        *time.Time        `json:"started_at,omitempty"`
	CompletedAt      *time.Time        `json:"completed_at,omitempty"`
	HeartbeatAt      *time.Time        `json:"heartbeat_at,omitempty"`

	Stages   []*Stage  `json:"stages,omitempty"`
	Template *Template `json:"template,omitempty"`
	Project  *Project  `json:"project,omitempty"`
}

// StageByName returns the task's stage with the given name, or nil.
func (t *Task) StageByName(name string) *Stage {
	for _, s := range t.Stages {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// RoutingDecision is one entry of the task's routing audit trail.
type RoutingDecision struct {
	Stage     string    `json:"stage"`
	Target    string    `json:"target"`
	Reason    string    `json:"reason,omitempty"`
	DecidedAt time.Time `json:"decided_at"`
}

// CreateTaskRequest contains fields for creating a new task.
type CreateTaskRequest struct {
	ExternalID  string `json:"external_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	TemplateID  string `json:"template_id"`
	ProjectID   string `json:"project_id,omitempty"`
}

// TaskFilters contains filtering options for listing tasks.
type TaskFilters struct {
	Status    string `json:"status,omitempty"`
	ProjectID string `json:"project_id,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

// TaskList contains a paginated task list.
type TaskList struct {
	Tasks      []*Task `json:"tasks"`
	TotalCount int     `json:"total_count"`
	Limit      int     `json:"limit"`
	Offset     int     `json:"offset"`
}
