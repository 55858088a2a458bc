// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stewardhq/steward/ent/triggerevent"
	"github.com/stewardhq/steward/ent/triggerrule"
)

// TriggerEvent is the model entity for the TriggerEvent schema.
type TriggerEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RuleID holds the value of the "rule_id" field.
	RuleID *string `json:"rule_id,omitempty"`
	// 'manual', 'cron', 'webhook'
	Source string `json:"source,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// Task created from the event, if any
	TaskID string `json:"task_id,omitempty"`
	// Status holds the value of the "status" field.
	Status triggerevent.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TriggerEventQuery when eager-loading is set.
	Edges        TriggerEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TriggerEventEdges holds the relations/edges for other nodes in the graph.
type TriggerEventEdges struct {
	// Rule holds the value of the rule edge.
	Rule *TriggerRule `json:"rule,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RuleOrErr returns the Rule value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TriggerEventEdges) RuleOrErr() (*TriggerRule, error) {
	if e.Rule != nil {
		return e.Rule, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: triggerrule.Label}
	}
	return nil, &NotLoadedError{edge: "rule"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TriggerEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case triggerevent.FieldPayload:
			values[i] = new([]byte)
		case triggerevent.FieldID, triggerevent.FieldRuleID, triggerevent.FieldSource, triggerevent.FieldTaskID, triggerevent.FieldStatus:
			values[i] = new(sql.NullString)
		case triggerevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TriggerEvent fields.
func (_m *TriggerEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case triggerevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case triggerevent.FieldRuleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rule_id", values[i])
			} else if value.Valid {
				_m.RuleID = new(string)
				*_m.RuleID = value.String
			}
		case triggerevent.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case triggerevent.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case triggerevent.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case triggerevent.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = triggerevent.Status(value.String)
			}
		case triggerevent.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TriggerEvent.
// This includes values selected through modifiers, order, etc.
func (_m *TriggerEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRule queries the "rule" edge of the TriggerEvent entity.
func (_m *TriggerEvent) QueryRule() *TriggerRuleQuery {
	return NewTriggerEventClient(_m.config).QueryRule(_m)
}

// Update returns a builder for updating this TriggerEvent.
// Note that you need to call TriggerEvent.Unwrap() before calling this method if this TriggerEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TriggerEvent) Update() *TriggerEventUpdateOne {
	return NewTriggerEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TriggerEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TriggerEvent) Unwrap() *TriggerEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TriggerEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TriggerEvent) String() string {
	var builder strings.Builder
	builder.WriteString("TriggerEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.RuleID; v != nil {
		builder.WriteString("rule_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TriggerEvents is a parsable slice of TriggerEvent.
type TriggerEvents []*TriggerEvent
