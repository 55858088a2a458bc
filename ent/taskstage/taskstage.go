// Code generated by ent, DO NOT EDIT.

package taskstage

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the taskstage type in the database.
	Label = "task_stage"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "stage_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldAgentRole holds the string denoting the agent_role field in the database.
	FieldAgentRole = "agent_role"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldExecOrder holds the string denoting the exec_order field in the database.
	FieldExecOrder = "exec_order"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldTokensUsed holds the string denoting the tokens_used field in the database.
	FieldTokensUsed = "tokens_used"
	// FieldTurnsUsed holds the string denoting the turns_used field in the database.
	FieldTurnsUsed = "turns_used"
	// FieldOutput holds the string denoting the output field in the database.
	FieldOutput = "output"
	// FieldStructured holds the string denoting the structured field in the database.
	FieldStructured = "structured"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// FieldFailureCategory holds the string denoting the failure_category field in the database.
	FieldFailureCategory = "failure_category"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldExecutionCount holds the string denoting the execution_count field in the database.
	FieldExecutionCount = "execution_count"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// Table holds the table name of the taskstage in the database.
	Table = "task_stages"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "task_stages"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
)

// Columns holds all SQL columns for taskstage fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldName,
	FieldAgentRole,
	FieldStatus,
	FieldExecOrder,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDurationMs,
	FieldTokensUsed,
	FieldTurnsUsed,
	FieldOutput,
	FieldStructured,
	FieldError,
	FieldFailureCategory,
	FieldConfidence,
	FieldRetryCount,
	FieldExecutionCount,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTokensUsed holds the default value on creation for the "tokens_used" field.
	DefaultTokensUsed int
	// DefaultTurnsUsed holds the default value on creation for the "turns_used" field.
	DefaultTurnsUsed int
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// DefaultExecutionCount holds the default value on creation for the "execution_count" field.
	DefaultExecutionCount int
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusFailed, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("taskstage: invalid enum value for status field: %q", s)
	}
}

// FailureCategory defines the type for the "failure_category" enum field.
type FailureCategory string

// FailureCategory values.
const (
	FailureCategoryTransient    FailureCategory = "transient"
	FailureCategoryToolError    FailureCategory = "tool_error"
	FailureCategoryResource     FailureCategory = "resource"
	FailureCategorySemantic     FailureCategory = "semantic"
	FailureCategoryGateRejected FailureCategory = "gate_rejected"
	FailureCategoryUnknown      FailureCategory = "unknown"
)

func (fc FailureCategory) String() string {
	return string(fc)
}

// FailureCategoryValidator is a validator for the "failure_category" field enum values. It is called by the builders before save.
func FailureCategoryValidator(fc FailureCategory) error {
	switch fc {
	case FailureCategoryTransient, FailureCategoryToolError, FailureCategoryResource, FailureCategorySemantic, FailureCategoryGateRejected, FailureCategoryUnknown:
		return nil
	default:
		return fmt.Errorf("taskstage: invalid enum value for failure_category field: %q", fc)
	}
}

// OrderOption defines the ordering options for the TaskStage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByAgentRole orders the results by the agent_role field.
func ByAgentRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentRole, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByExecOrder orders the results by the exec_order field.
func ByExecOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecOrder, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByTokensUsed orders the results by the tokens_used field.
func ByTokensUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensUsed, opts...).ToFunc()
}

// ByTurnsUsed orders the results by the turns_used field.
func ByTurnsUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTurnsUsed, opts...).ToFunc()
}

// ByOutput orders the results by the output field.
func ByOutput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutput, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// ByFailureCategory orders the results by the failure_category field.
func ByFailureCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureCategory, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByExecutionCount orders the results by the execution_count field.
func ByExecutionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionCount, opts...).ToFunc()
}

// ByTaskField orders the results by task field.
func ByTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskStep(), sql.OrderByField(field, opts...))
	}
}
func newTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskInverseTable, TaskFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
	)
}
