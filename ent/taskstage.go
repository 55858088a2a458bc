// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stewardhq/steward/ent/task"
	"github.com/stewardhq/steward/ent/taskstage"
	"github.com/stewardhq/steward/pkg/models"
)

// TaskStage is the model entity for the TaskStage schema.
type TaskStage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// Stage name from the template, unique within the task
	Name string `json:"name,omitempty"`
	// e.g. 'architect', 'coder', 'tester'
	AgentRole string `json:"agent_role,omitempty"`
	// Status holds the value of the "status" field.
	Status taskstage.Status `json:"status,omitempty"`
	// Template order; equal values form a parallel group
	ExecOrder int `json:"exec_order,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs *int64 `json:"duration_ms,omitempty"`
	// TokensUsed holds the value of the "tokens_used" field.
	TokensUsed int `json:"tokens_used,omitempty"`
	// TurnsUsed holds the value of the "turns_used" field.
	TurnsUsed int `json:"turns_used,omitempty"`
	// Raw agent output text
	Output string `json:"output,omitempty"`
	// Typed contract extracted from the output
	Structured *models.StructuredOutput `json:"structured,omitempty"`
	// Error holds the value of the "error" field.
	Error *string `json:"error,omitempty"`
	// FailureCategory holds the value of the "failure_category" field.
	FailureCategory *taskstage.FailureCategory `json:"failure_category,omitempty"`
	// Self-assessed confidence 0..1 from the structured output
	Confidence *float64 `json:"confidence,omitempty"`
	// Same-execution retries (transient/tool_error/semantic)
	RetryCount int `json:"retry_count,omitempty"`
	// Graph re-entries; bounded by the template's max_executions
	ExecutionCount int `json:"execution_count,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskStageQuery when eager-loading is set.
	Edges        TaskStageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskStageEdges holds the relations/edges for other nodes in the graph.
type TaskStageEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskStageEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaskStage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taskstage.FieldStructured:
			values[i] = new([]byte)
		case taskstage.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case taskstage.FieldExecOrder, taskstage.FieldDurationMs, taskstage.FieldTokensUsed, taskstage.FieldTurnsUsed, taskstage.FieldRetryCount, taskstage.FieldExecutionCount:
			values[i] = new(sql.NullInt64)
		case taskstage.FieldID, taskstage.FieldTaskID, taskstage.FieldName, taskstage.FieldAgentRole, taskstage.FieldStatus, taskstage.FieldOutput, taskstage.FieldError, taskstage.FieldFailureCategory:
			values[i] = new(sql.NullString)
		case taskstage.FieldStartedAt, taskstage.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaskStage fields.
func (_m *TaskStage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taskstage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case taskstage.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case taskstage.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case taskstage.FieldAgentRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_role", values[i])
			} else if value.Valid {
				_m.AgentRole = value.String
			}
		case taskstage.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = taskstage.Status(value.String)
			}
		case taskstage.FieldExecOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exec_order", values[i])
			} else if value.Valid {
				_m.ExecOrder = int(value.Int64)
			}
		case taskstage.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case taskstage.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case taskstage.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = new(int64)
				*_m.DurationMs = value.Int64
			}
		case taskstage.FieldTokensUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_used", values[i])
			} else if value.Valid {
				_m.TokensUsed = int(value.Int64)
			}
		case taskstage.FieldTurnsUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field turns_used", values[i])
			} else if value.Valid {
				_m.TurnsUsed = int(value.Int64)
			}
		case taskstage.FieldOutput:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output", values[i])
			} else if value.Valid {
				_m.Output = value.String
			}
		case taskstage.FieldStructured:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field structured", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Structured); err != nil {
					return fmt.Errorf("unmarshal field structured: %w", err)
				}
			}
		case taskstage.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = new(string)
				*_m.Error = value.String
			}
		case taskstage.FieldFailureCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_category", values[i])
			} else if value.Valid {
				_m.FailureCategory = new(taskstage.FailureCategory)
				*_m.FailureCategory = taskstage.FailureCategory(value.String)
			}
		case taskstage.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float64)
				*_m.Confidence = value.Float64
			}
		case taskstage.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case taskstage.FieldExecutionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field execution_count", values[i])
			} else if value.Valid {
				_m.ExecutionCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaskStage.
// This includes values selected through modifiers, order, etc.
func (_m *TaskStage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the TaskStage entity.
func (_m *TaskStage) QueryTask() *TaskQuery {
	return NewTaskStageClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this TaskStage.
// Note that you need to call TaskStage.Unwrap() before calling this method if this TaskStage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TaskStage) Update() *TaskStageUpdateOne {
	return NewTaskStageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TaskStage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TaskStage) Unwrap() *TaskStage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaskStage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TaskStage) String() string {
	var builder strings.Builder
	builder.WriteString("TaskStage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("agent_role=")
	builder.WriteString(_m.AgentRole)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("exec_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecOrder))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DurationMs; v != nil {
		builder.WriteString("duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("tokens_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensUsed))
	builder.WriteString(", ")
	builder.WriteString("turns_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.TurnsUsed))
	builder.WriteString(", ")
	builder.WriteString("output=")
	builder.WriteString(_m.Output)
	builder.WriteString(", ")
	builder.WriteString("structured=")
	builder.WriteString(fmt.Sprintf("%v", _m.Structured))
	builder.WriteString(", ")
	if v := _m.Error; v != nil {
		builder.WriteString("error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FailureCategory; v != nil {
		builder.WriteString("failure_category=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	builder.WriteString("execution_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutionCount))
	builder.WriteByte(')')
	return builder.String()
}

// TaskStages is a parsable slice of TaskStage.
type TaskStages []*TaskStage
