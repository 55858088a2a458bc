// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stewardhq/steward/ent/skillfeedback"
)

// SkillFeedback is the model entity for the SkillFeedback schema.
type SkillFeedback struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentRole holds the value of the "agent_role" field.
	AgentRole string `json:"agent_role,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// GateID holds the value of the "gate_id" field.
	GateID string `json:"gate_id,omitempty"`
	// Raw reviewer comment
	Comment string `json:"comment,omitempty"`
	// Extracted lesson, one sentence
	Lesson string `json:"lesson,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SkillFeedback) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case skillfeedback.FieldID, skillfeedback.FieldAgentRole, skillfeedback.FieldTaskID, skillfeedback.FieldGateID, skillfeedback.FieldComment, skillfeedback.FieldLesson:
			values[i] = new(sql.NullString)
		case skillfeedback.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SkillFeedback fields.
func (_m *SkillFeedback) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case skillfeedback.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case skillfeedback.FieldAgentRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_role", values[i])
			} else if value.Valid {
				_m.AgentRole = value.String
			}
		case skillfeedback.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case skillfeedback.FieldGateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gate_id", values[i])
			} else if value.Valid {
				_m.GateID = value.String
			}
		case skillfeedback.FieldComment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comment", values[i])
			} else if value.Valid {
				_m.Comment = value.String
			}
		case skillfeedback.FieldLesson:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson", values[i])
			} else if value.Valid {
				_m.Lesson = value.String
			}
		case skillfeedback.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SkillFeedback.
// This includes values selected through modifiers, order, etc.
func (_m *SkillFeedback) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SkillFeedback.
// Note that you need to call SkillFeedback.Unwrap() before calling this method if this SkillFeedback
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SkillFeedback) Update() *SkillFeedbackUpdateOne {
	return NewSkillFeedbackClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SkillFeedback entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SkillFeedback) Unwrap() *SkillFeedback {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SkillFeedback is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SkillFeedback) String() string {
	var builder strings.Builder
	builder.WriteString("SkillFeedback(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_role=")
	builder.WriteString(_m.AgentRole)
	builder.WriteString(", ")
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("gate_id=")
	builder.WriteString(_m.GateID)
	builder.WriteString(", ")
	builder.WriteString("comment=")
	builder.WriteString(_m.Comment)
	builder.WriteString(", ")
	builder.WriteString("lesson=")
	builder.WriteString(_m.Lesson)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SkillFeedbacks is a parsable slice of SkillFeedback.
type SkillFeedbacks []*SkillFeedback
