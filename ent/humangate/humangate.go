// Code generated by ent, DO NOT EDIT.

package humangate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the humangate type in the database.
	Label = "human_gate"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "gate_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldStageName holds the string denoting the stage_name field in the database.
	FieldStageName = "stage_name"
	// FieldAgentRole holds the string denoting the agent_role field in the database.
	FieldAgentRole = "agent_role"
	// FieldGateType holds the string denoting the gate_type field in the database.
	FieldGateType = "gate_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldReviewer holds the string denoting the reviewer field in the database.
	FieldReviewer = "reviewer"
	// FieldComment holds the string denoting the comment field in the database.
	FieldComment = "comment"
	// FieldRevisedContent holds the string denoting the revised_content field in the database.
	FieldRevisedContent = "revised_content"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldIsDynamic holds the string denoting the is_dynamic field in the database.
	FieldIsDynamic = "is_dynamic"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldReviewedAt holds the string denoting the reviewed_at field in the database.
	FieldReviewedAt = "reviewed_at"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// Table holds the table name of the humangate in the database.
	Table = "human_gates"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "human_gates"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
)

// Columns holds all SQL columns for humangate fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldStageName,
	FieldAgentRole,
	FieldGateType,
	FieldStatus,
	FieldReviewer,
	FieldComment,
	FieldRevisedContent,
	FieldRetryCount,
	FieldIsDynamic,
	FieldCreatedAt,
	FieldReviewedAt,
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
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// DefaultIsDynamic holds the default value on creation for the "is_dynamic" field.
	DefaultIsDynamic bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// GateType defines the type for the "gate_type" enum field.
type GateType string

// GateType values.
const (
	GateTypeHumanApprove     GateType = "human_approve"
	GateTypePlanReview       GateType = "plan_review"
	GateTypeConfidenceReview GateType = "confidence_review"
)

func (gt GateType) String() string {
	return string(gt)
}

// GateTypeValidator is a validator for the "gate_type" field enum values. It is called by the builders before save.
func GateTypeValidator(gt GateType) error {
	switch gt {
	case GateTypeHumanApprove, GateTypePlanReview, GateTypeConfidenceReview:
		return nil
	default:
		return fmt.Errorf("humangate: invalid enum value for gate_type field: %q", gt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusRevised  Status = "revised"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusRevised:
		return nil
	default:
		return fmt.Errorf("humangate: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the HumanGate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByStageName orders the results by the stage_name field.
func ByStageName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageName, opts...).ToFunc()
}

// ByAgentRole orders the results by the agent_role field.
func ByAgentRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentRole, opts...).ToFunc()
}

// ByGateType orders the results by the gate_type field.
func ByGateType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGateType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByReviewer orders the results by the reviewer field.
func ByReviewer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewer, opts...).ToFunc()
}

// ByComment orders the results by the comment field.
func ByComment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComment, opts...).ToFunc()
}

// ByRevisedContent orders the results by the revised_content field.
func ByRevisedContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevisedContent, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByIsDynamic orders the results by the is_dynamic field.
func ByIsDynamic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsDynamic, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByReviewedAt orders the results by the reviewed_at field.
func ByReviewedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewedAt, opts...).ToFunc()
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
