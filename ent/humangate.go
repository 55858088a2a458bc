// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stewardhq/steward/ent/humangate"
	"github.com/stewardhq/steward/ent/task"
)

// HumanGate is the model entity for the HumanGate schema.
type HumanGate struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// Stage the gate follows
	StageName string `json:"stage_name,omitempty"`
	// AgentRole holds the value of the "agent_role" field.
	AgentRole string `json:"agent_role,omitempty"`
	// GateType holds the value of the "gate_type" field.
	GateType humangate.GateType `json:"gate_type,omitempty"`
	// Status holds the value of the "status" field.
	Status humangate.Status `json:"status,omitempty"`
	// Reviewer holds the value of the "reviewer" field.
	Reviewer *string `json:"reviewer,omitempty"`
	// Comment holds the value of the "comment" field.
	Comment string `json:"comment,omitempty"`
	// RevisedContent holds the value of the "revised_content" field.
	RevisedContent string `json:"revised_content,omitempty"`
	// Which retry round this gate belongs to
	RetryCount int `json:"retry_count,omitempty"`
	// Inserted at runtime on low confidence
	IsDynamic bool `json:"is_dynamic,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ReviewedAt holds the value of the "reviewed_at" field.
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HumanGateQuery when eager-loading is set.
	Edges        HumanGateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// HumanGateEdges holds the relations/edges for other nodes in the graph.
type HumanGateEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HumanGateEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HumanGate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case humangate.FieldIsDynamic:
			values[i] = new(sql.NullBool)
		case humangate.FieldRetryCount:
			values[i] = new(sql.NullInt64)
		case humangate.FieldID, humangate.FieldTaskID, humangate.FieldStageName, humangate.FieldAgentRole, humangate.FieldGateType, humangate.FieldStatus, humangate.FieldReviewer, humangate.FieldComment, humangate.FieldRevisedContent:
			values[i] = new(sql.NullString)
		case humangate.FieldCreatedAt, humangate.FieldReviewedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HumanGate fields.
func (_m *HumanGate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case humangate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case humangate.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case humangate.FieldStageName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_name", values[i])
			} else if value.Valid {
				_m.StageName = value.String
			}
		case humangate.FieldAgentRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_role", values[i])
			} else if value.Valid {
				_m.AgentRole = value.String
			}
		case humangate.FieldGateType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gate_type", values[i])
			} else if value.Valid {
				_m.GateType = humangate.GateType(value.String)
			}
		case humangate.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = humangate.Status(value.String)
			}
		case humangate.FieldReviewer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reviewer", values[i])
			} else if value.Valid {
				_m.Reviewer = new(string)
				*_m.Reviewer = value.String
			}
		case humangate.FieldComment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comment", values[i])
			} else if value.Valid {
				_m.Comment = value.String
			}
		case humangate.FieldRevisedContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field revised_content", values[i])
			} else if value.Valid {
				_m.RevisedContent = value.String
			}
		case humangate.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case humangate.FieldIsDynamic:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_dynamic", values[i])
			} else if value.Valid {
				_m.IsDynamic = value.Bool
			}
		case humangate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case humangate.FieldReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_at", values[i])
			} else if value.Valid {
				_m.ReviewedAt = new(time.Time)
				*_m.ReviewedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HumanGate.
// This includes values selected through modifiers, order, etc.
func (_m *HumanGate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the HumanGate entity.
func (_m *HumanGate) QueryTask() *TaskQuery {
	return NewHumanGateClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this HumanGate.
// Note that you need to call HumanGate.Unwrap() before calling this method if this HumanGate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HumanGate) Update() *HumanGateUpdateOne {
	return NewHumanGateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HumanGate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HumanGate) Unwrap() *HumanGate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HumanGate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HumanGate) String() string {
	var builder strings.Builder
	builder.WriteString("HumanGate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("stage_name=")
	builder.WriteString(_m.StageName)
	builder.WriteString(", ")
	builder.WriteString("agent_role=")
	builder.WriteString(_m.AgentRole)
	builder.WriteString(", ")
	builder.WriteString("gate_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.GateType))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.Reviewer; v != nil {
		builder.WriteString("reviewer=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("comment=")
	builder.WriteString(_m.Comment)
	builder.WriteString(", ")
	builder.WriteString("revised_content=")
	builder.WriteString(_m.RevisedContent)
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	builder.WriteString("is_dynamic=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsDynamic))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ReviewedAt; v != nil {
		builder.WriteString("reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// HumanGates is a parsable slice of HumanGate.
type HumanGates []*HumanGate
