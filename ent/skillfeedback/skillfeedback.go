// Code generated by ent, DO NOT EDIT.

package skillfeedback

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the skillfeedback type in the database.
	Label = "skill_feedback"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "feedback_id"
	// FieldAgentRole holds the string denoting the agent_role field in the database.
	FieldAgentRole = "agent_role"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldGateID holds the string denoting the gate_id field in the database.
	FieldGateID = "gate_id"
	// FieldComment holds the string denoting the comment field in the database.
	FieldComment = "comment"
	// FieldLesson holds the string denoting the lesson field in the database.
	FieldLesson = "lesson"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the skillfeedback in the database.
	Table = "skill_feedback"
)

// Columns holds all SQL columns for skillfeedback fields.
var Columns = []string{
	FieldID,
	FieldAgentRole,
	FieldTaskID,
	FieldGateID,
	FieldComment,
	FieldLesson,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the SkillFeedback queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentRole orders the results by the agent_role field.
func ByAgentRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentRole, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByGateID orders the results by the gate_id field.
func ByGateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGateID, opts...).ToFunc()
}

// ByComment orders the results by the comment field.
func ByComment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComment, opts...).ToFunc()
}

// ByLesson orders the results by the lesson field.
func ByLesson(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLesson, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
