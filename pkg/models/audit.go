package models

import (
	"time"
)

// RiskLevel tags an audit entry's impact.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// AuditEntry records an engine or operator action for traceability.
type AuditEntry struct {
	ID        string         `json:"id"`
	TaskID    string         `json:"task_id,omitempty"`
	Action    string         `json:"action"`
	Detail    map[string]any `json:"detail,omitempty"`
	RiskLevel RiskLevel      `json:"risk_level"`
	Actor     string         `json:"actor,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// BreakerRecord is a tripped circuit breaker.
type BreakerRecord struct {
	ID          string     `json:"id"`
	TaskID      string     `json:"task_id"`
	Level       int        `json:"level"`
	TriggeredBy string     `json:"triggered_by"`
	Reason      string     `json:"reason"`
	TriggeredAt time.Time  `json:"triggered_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	ResolvedBy  string     `json:"resolved_by,omitempty"`
}

// KPIRecord is a single recorded metric sample for a task.
type KPIRecord struct {
	ID         string    `json:"id"`
	TaskID     string    `json:"task_id"`
	Name       string    `json:"name"`
	Value      float64   `json:"value"`
	Unit       string    `json:"unit,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// SkillFeedbackEntry records a gate-rejection lesson against an agent role.
type SkillFeedbackEntry struct {
	ID        string    `json:"id"`
	AgentRole string    `json:"agent_role"`
	TaskID    string    `json:"task_id"`
	GateID    string    `json:"gate_id,omitempty"`
	Comment   string    `json:"comment,omitempty"`
	Lesson    string    `json:"lesson"`
	CreatedAt time.Time `json:"created_at"`
}
