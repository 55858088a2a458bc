package models

import (
	"time"
)

// StageStatus is the lifecycle state of a stage.
type StageStatus string

const (
	StageStatusPending   StageStatus = "pending"
	StageStatusRunning   StageStatus = "running"
	StageStatusCompleted StageStatus = "completed"
	StageStatusFailed    StageStatus = "failed"
	StageStatusSkipped   StageStatus = "skipped"
)

// FailureCategory classifies a stage failure for retry policy.
type FailureCategory string

const (
	FailureTransient    FailureCategory = "transient"
	FailureToolError    FailureCategory = "tool_error"
	FailureResource     FailureCategory = "resource"
	FailureSemantic     FailureCategory = "semantic"
	FailureGateRejected FailureCategory = "gate_rejected"
	FailureUnknown      FailureCategory = "unknown"
)

// Stage is one step within a task.
type Stage struct {
	ID              string            `json:"id"`
	TaskID          string            `json:"task_id"`
	Name            string            `json:"name"`
	AgentRole       string            `json:"agent_role"`
	Status          StageStatus       `json:"status"`
	ExecOrder       int               `json:"exec_order"`
	StartedAt       *time.Time        `json:"started_at,omitempty"`
	CompletedAt     *time.Time        `json:"completed_at,omitempty"`
	DurationMS      int64             `json:"duration_ms,omitempty"`
	TokensUsed      int               `json:"tokens_used"`
	TurnsUsed       int               `json:"turns_used"`
	Output          string            `json:"output,omitempty"`
	Structured      *StructuredOutput `json:"structured,omitempty"`
	Error           string            `json:"error,omitempty"`
	FailureCategory FailureCategory   `json:"failure_category,omitempty"`
	Confidence      *float64          `json:"confidence,omitempty"`
	RetryCount      int               `json:"retry_count"`
	ExecutionCount  int               `json:"execution_count"`
}

// StageDef is a template's definition of a single stage.
type StageDef struct {
	Name           string         `json:"name" yaml:"name"`
	AgentRole      string         `json:"agent_role" yaml:"agent_role"`
	Order          int            `json:"order" yaml:"order"`
	Model          string         `json:"model,omitempty" yaml:"model,omitempty"`
	Instruction    string         `json:"instruction,omitempty" yaml:"instruction,omitempty"`
	MaxTurns       int            `json:"max_turns,omitempty" yaml:"max_turns,omitempty"`
	TimeoutSeconds int            `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty"`
	ContextFrom    []string       `json:"context_from,omitempty" yaml:"context_from,omitempty"`
	Condition      *Condition     `json:"condition,omitempty" yaml:"condition,omitempty"`
	Evaluator      map[string]any `json:"evaluator,omitempty" yaml:"evaluator,omitempty"`
	MaxRetries     int            `json:"max_retries,omitempty" yaml:"max_retries,omitempty"`
	DependsOn      []string       `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`
	OnFailure      string         `json:"on_failure,omitempty" yaml:"on_failure,omitempty"`
	MaxExecutions  int            `json:"max_executions,omitempty" yaml:"max_executions,omitempty"`
	Routing        *RoutingConfig `json:"routing,omitempty" yaml:"routing,omitempty"`
}

// DefaultMaxExecutions bounds graph re-execution when a stage definition
// does not set max_executions.
const DefaultMaxExecutions = 3

// EffectiveMaxExecutions returns max_executions with the default applied.
func (d *StageDef) EffectiveMaxExecutions() int {
	if d.MaxExecutions > 0 {
		return d.MaxExecutions
	}
	return DefaultMaxExecutions
}

// StageCompletion records a successful stage execution.
type StageCompletion struct {
	Output     string            `json:"output"`
	Structured *StructuredOutput `json:"structured,omitempty"`
	TokensUsed int               `json:"tokens_used"`
	TurnsUsed  int               `json:"turns_used"`
	DurationMS int64             `json:"duration_ms"`
	Confidence *float64          `json:"confidence,omitempty"`
}

// StageFailure records a failed stage execution.
type StageFailure struct {
	Error      string          `json:"error"`
	Category   FailureCategory `json:"category"`
	Output     string          `json:"output,omitempty"`
	TokensUsed int             `json:"tokens_used"`
	TurnsUsed  int             `json:"turns_used"`
	DurationMS int64           `json:"duration_ms"`
}

// Condition gates a stage on a prior stage's structured output field.
type Condition struct {
	SourceStage string `json:"source_stage" yaml:"source_stage"`
	Field       string `json:"field" yaml:"field"`
	Operator    string `json:"operator" yaml:"operator"` // eq, ne, gt, gte, lt, lte, contains
	Value       any    `json:"value" yaml:"value"`
}

// RoutingConfig declares post-stage dynamic routing options.
type RoutingConfig struct {
	Model   string          `json:"model,omitempty" yaml:"model,omitempty"`
	Options []RoutingOption `json:"options" yaml:"options"`
}

// RoutingOption is one candidate target for a routing decision.
type RoutingOption struct {
	Target      string `json:"target" yaml:"target"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}
