// Code generated by ent, DO NOT EDIT.

package triggerrule

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the triggerrule type in the database.
	Label = "trigger_rule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "rule_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldRuleType holds the string denoting the rule_type field in the database.
	FieldRuleType = "rule_type"
	// FieldExpression holds the string denoting the expression field in the database.
	FieldExpression = "expression"
	// FieldTemplateID holds the string denoting the template_id field in the database.
	FieldTemplateID = "template_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// TriggerEventFieldID holds the string denoting the ID field of the TriggerEvent.
	TriggerEventFieldID = "event_id"
	// Table holds the table name of the triggerrule in the database.
	Table = "trigger_rules"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "trigger_events"
	// EventsInverseTable is the table name for the TriggerEvent entity.
	// It exists in this package in order to avoid circular dependency with the "triggerevent" package.
	EventsInverseTable = "trigger_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "rule_id"
)

// Columns holds all SQL columns for triggerrule fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldRuleType,
	FieldExpression,
	FieldTemplateID,
	FieldProjectID,
	FieldEnabled,
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
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// RuleType defines the type for the "rule_type" enum field.
type RuleType string

// RuleType values.
const (
	RuleTypeCron    RuleType = "cron"
	RuleTypeWebhook RuleType = "webhook"
)

func (rt RuleType) String() string {
	return string(rt)
}

// RuleTypeValidator is a validator for the "rule_type" field enum values. It is called by the builders before save.
func RuleTypeValidator(rt RuleType) error {
	switch rt {
	case RuleTypeCron, RuleTypeWebhook:
		return nil
	default:
		return fmt.Errorf("triggerrule: invalid enum value for rule_type field: %q", rt)
	}
}

// OrderOption defines the ordering options for the TriggerRule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByRuleType orders the results by the rule_type field.
func ByRuleType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleType, opts...).ToFunc()
}

// ByExpression orders the results by the expression field.
func ByExpression(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpression, opts...).ToFunc()
}

// ByTemplateID orders the results by the template_id field.
func ByTemplateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemplateID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, TriggerEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
