// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stewardhq/steward/ent/triggerrule"
)

// TriggerRule is the model entity for the TriggerRule schema.
type TriggerRule struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// RuleType holds the value of the "rule_type" field.
	RuleType triggerrule.RuleType `json:"rule_type,omitempty"`
	// Cron expression or webhook path token
	Expression string `json:"expression,omitempty"`
	// TemplateID holds the value of the "template_id" field.
	TemplateID string `json:"template_id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TriggerRuleQuery when eager-loading is set.
	Edges        TriggerRuleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TriggerRuleEdges holds the relations/edges for other nodes in the graph.
type TriggerRuleEdges struct {
	// Events holds the value of the events edge.
	Events []*TriggerEvent `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e TriggerRuleEdges) EventsOrErr() ([]*TriggerEvent, error) {
	if e.loadedTypes[0] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TriggerRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case triggerrule.FieldEnabled:
			values[i] = new(sql.NullBool)
		case triggerrule.FieldID, triggerrule.FieldName, triggerrule.FieldRuleType, triggerrule.FieldExpression, triggerrule.FieldTemplateID, triggerrule.FieldProjectID:
			values[i] = new(sql.NullString)
		case triggerrule.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TriggerRule fields.
func (_m *TriggerRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case triggerrule.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case triggerrule.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case triggerrule.FieldRuleType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rule_type", values[i])
			} else if value.Valid {
				_m.RuleType = triggerrule.RuleType(value.String)
			}
		case triggerrule.FieldExpression:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field expression", values[i])
			} else if value.Valid {
				_m.Expression = value.String
			}
		case triggerrule.FieldTemplateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field template_id", values[i])
			} else if value.Valid {
				_m.TemplateID = value.String
			}
		case triggerrule.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case triggerrule.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case triggerrule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TriggerRule.
// This includes values selected through modifiers, order, etc.
func (_m *TriggerRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvents queries the "events" edge of the TriggerRule entity.
func (_m *TriggerRule) QueryEvents() *TriggerEventQuery {
	return NewTriggerRuleClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this TriggerRule.
// Note that you need to call TriggerRule.Unwrap() before calling this method if this TriggerRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TriggerRule) Update() *TriggerRuleUpdateOne {
	return NewTriggerRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TriggerRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TriggerRule) Unwrap() *TriggerRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TriggerRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TriggerRule) String() string {
	var builder strings.Builder
	builder.WriteString("TriggerRule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("rule_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.RuleType))
	builder.WriteString(", ")
	builder.WriteString("expression=")
	builder.WriteString(_m.Expression)
	builder.WriteString(", ")
	builder.WriteString("template_id=")
	builder.WriteString(_m.TemplateID)
	builder.WriteString(", ")
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TriggerRules is a parsable slice of TriggerRule.
type TriggerRules []*TriggerRule
