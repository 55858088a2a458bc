package models

import (
	"time"
)

// RuleType discriminates how a trigger rule fires.
type RuleType string

const (
	RuleTypeCron    RuleType = "cron"
	RuleTypeWebhook RuleType = "webhook"
)

// TriggerEventStatus is the outcome of processing a trigger event.
type TriggerEventStatus string

const (
	TriggerEventReceived    TriggerEventStatus = "received"
	TriggerEventTaskCreated TriggerEventStatus = "task_created"
	TriggerEventIgnored     TriggerEventStatus = "ignored"
	TriggerEventError       TriggerEventStatus = "error"
)

// TriggerRule turns external events into tasks. Cron rules fire on a
// schedule; webhook rules fire on an inbound HTTP call.
type TriggerRule struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	RuleType   RuleType  `json:"rule_type"`
	Expression string    `json:"expression"`
	TemplateID string    `json:"template_id"`
	ProjectID  string    `json:"project_id,omitempty"`
	Enabled    bool      `json:"enabled"`
	CreatedAt  time.Time `json:"created_at"`
}

// TriggerEvent records the provenance of a task creation.
type TriggerEvent struct {
	ID        string             `json:"id"`
	RuleID    string             `json:"rule_id,omitempty"`
	Source    string             `json:"source"` // manual, cron or webhook
	Payload   map[string]any     `json:"payload,omitempty"`
	TaskID    string             `json:"task_id,omitempty"`
	Status    TriggerEventStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}

// CreateTriggerRuleRequest contains fields for creating a trigger rule.
type CreateTriggerRuleRequest struct {
	Name       string   `json:"name"`
	RuleType   RuleType `json:"rule_type"`
	Expression string   `json:"expression"`
	TemplateID string   `json:"template_id"`
	ProjectID  string   `json:"project_id,omitempty"`
	Enabled    *bool    `json:"enabled,omitempty"`
}
