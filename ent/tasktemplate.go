// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stewardhq/steward/ent/tasktemplate"
	"github.com/stewardhq/steward/pkg/models"
)

// TaskTemplate is the model entity for the TaskTemplate schema.
type TaskTemplate struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// Previous version in the history chain
	ParentID *string `json:"parent_id,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Ordered stage definitions
	Stages []models.StageDef `json:"stages,omitempty"`
	// Gate declarations keyed by after_stage
	Gates []models.GateDef `json:"gates,omitempty"`
	// Pause for plan review after the parse stage
	Interactive bool `json:"interactive,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskTemplateQuery when eager-loading is set.
	Edges        TaskTemplateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskTemplateEdges holds the relations/edges for other nodes in the graph.
type TaskTemplateEdges struct {
	// Tasks holds the value of the tasks edge.
	Tasks []*Task `json:"tasks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e TaskTemplateEdges) TasksOrErr() ([]*Task, error) {
	if e.loadedTypes[0] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaskTemplate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tasktemplate.FieldStages, tasktemplate.FieldGates:
			values[i] = new([]byte)
		case tasktemplate.FieldInteractive:
			values[i] = new(sql.NullBool)
		case tasktemplate.FieldVersion:
			values[i] = new(sql.NullInt64)
		case tasktemplate.FieldID, tasktemplate.FieldName, tasktemplate.FieldParentID, tasktemplate.FieldDescription:
			values[i] = new(sql.NullString)
		case tasktemplate.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaskTemplate fields.
func (_m *TaskTemplate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tasktemplate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case tasktemplate.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case tasktemplate.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case tasktemplate.FieldParentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_id", values[i])
			} else if value.Valid {
				_m.ParentID = new(string)
				*_m.ParentID = value.String
			}
		case tasktemplate.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case tasktemplate.FieldStages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field stages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Stages); err != nil {
					return fmt.Errorf("unmarshal field stages: %w", err)
				}
			}
		case tasktemplate.FieldGates:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field gates", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Gates); err != nil {
					return fmt.Errorf("unmarshal field gates: %w", err)
				}
			}
		case tasktemplate.FieldInteractive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field interactive", values[i])
			} else if value.Valid {
				_m.Interactive = value.Bool
			}
		case tasktemplate.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TaskTemplate.
// This includes values selected through modifiers, order, etc.
func (_m *TaskTemplate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTasks queries the "tasks" edge of the TaskTemplate entity.
func (_m *TaskTemplate) QueryTasks() *TaskQuery {
	return NewTaskTemplateClient(_m.config).QueryTasks(_m)
}

// Update returns a builder for updating this TaskTemplate.
// Note that you need to call TaskTemplate.Unwrap() before calling this method if this TaskTemplate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TaskTemplate) Update() *TaskTemplateUpdateOne {
	return NewTaskTemplateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TaskTemplate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TaskTemplate) Unwrap() *TaskTemplate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaskTemplate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TaskTemplate) String() string {
	var builder strings.Builder
	builder.WriteString("TaskTemplate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	if v := _m.ParentID; v != nil {
		builder.WriteString("parent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("stages=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stages))
	builder.WriteString(", ")
	builder.WriteString("gates=")
	builder.WriteString(fmt.Sprintf("%v", _m.Gates))
	builder.WriteString(", ")
	builder.WriteString("interactive=")
	builder.WriteString(fmt.Sprintf("%v", _m.Interactive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TaskTemplates is a parsable slice of TaskTemplate.
type TaskTemplates []*TaskTemplate
