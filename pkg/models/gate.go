package models

import (
	"time"
)

// GateStatus is the state of a human gate. Gates are never re-opened;
// a retry creates a new gate row.
type GateStatus string

const (
	GateStatusPending  GateStatus = "pending"
	GateStatusApproved GateStatus = "approved"
	GateStatusRejected GateStatus = "rejected"
	GateStatusRevised  GateStatus = "revised"
)

// GateType discriminates what kind of review a gate asks for.
type GateType string

const (
	GateTypeHumanApprove     GateType = "human_approve"
	GateTypePlanReview       GateType = "plan_review"
	GateTypeConfidenceReview GateType = "confidence_review"
)

// Gate is a human checkpoint attached to a stage.
type Gate struct {
	ID             string     `json:"id"`
	TaskID         string     `json:"task_id"`
	StageName      string     `json:"stage_name"`
	AgentRole      string     `json:"agent_role,omitempty"`
	GateType       GateType   `json:"gate_type"`
	Status         GateStatus `json:"status"`
	Reviewer       string     `json:"reviewer,omitempty"`
	Comment        string     `json:"comment,omitempty"`
	RevisedContent string     `json:"revised_content,omitempty"`
	RetryCount     int        `json:"retry_count"`
	IsDynamic      bool       `json:"is_dynamic"`
	CreatedAt      time.Time  `json:"created_at"`
	ReviewedAt     *time.Time `json:"reviewed_at,omitempty"`
}

// GateDef is a template's declaration of a gate after a stage.
type GateDef struct {
	AfterStage string   `json:"after_stage" yaml:"after_stage"`
	Type       GateType `json:"type" yaml:"type"`
	MaxRetries int      `json:"max_retries,omitempty" yaml:"max_retries,omitempty"`
}

// CreateGateRequest contains fields for creating a gate.
type CreateGateRequest struct {
	TaskID     string   `json:"task_id"`
	StageName  string   `json:"stage_name"`
	AgentRole  string   `json:"agent_role,omitempty"`
	GateType   GateType `json:"gate_type"`
	RetryCount int      `json:"retry_count"`
	IsDynamic  bool     `json:"is_dynamic"`
}

// ResolveGateRequest carries a reviewer's verdict for a pending gate.
type ResolveGateRequest struct {
	Status         GateStatus `json:"status"` // approved, rejected or revised
	Reviewer       string     `json:"reviewer,omitempty"`
	Comment        string     `json:"comment,omitempty"`
	RevisedContent string     `json:"revised_content,omitempty"`
}

// GateFilters contains filtering options for listing gates.
type GateFilters struct {
	TaskID   string `json:"task_id,omitempty"`
	Status   string `json:"status,omitempty"`
	GateType string `json:"gate_type,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Offset   int    `json:"offset,omitempty"`
}

// GateRejectionContext is injected into a stage re-execution after a
// gate was rejected or revised. Retry is rendered "k/M".
type GateRejectionContext struct {
	Comment        string `json:"comment"`
	RevisedContent string `json:"revised_content,omitempty"`
	Retry          string `json:"retry"`
}
