// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stewardhq/steward/ent/task"
	"github.com/stewardhq/steward/ent/taskstage"
	"github.com/stewardhq/steward/pkg/models"
)

// TaskStageCreate is the builder for creating a TaskStage entity.
type TaskStageCreate struct {
	config
	mutation *TaskStageMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *TaskStageCreate) SetTaskID(v string) *TaskStageCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *TaskStageCreate) SetName(v string) *TaskStageCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetAgentRole sets the "agent_role" field.
func (_c *TaskStageCreate) SetAgentRole(v string) *TaskStageCreate {
	_c.mutation.SetAgentRole(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskStageCreate) SetStatus(v taskstage.Status) *TaskStageCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskStageCreate) SetNillableStatus(v *taskstage.Status) *TaskStageCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetExecOrder sets the "exec_order" field.
func (_c *TaskStageCreate) SetExecOrder(v int) *TaskStageCreate {
	_c.mutation.SetExecOrder(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TaskStageCreate) SetStartedAt(v time.Time) *TaskStageCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TaskStageCreate) SetNillableStartedAt(v *time.Time) *TaskStageCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TaskStageCreate) SetCompletedAt(v time.Time) *TaskStageCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TaskStageCreate) SetNillableCompletedAt(v *time.Time) *TaskStageCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *TaskStageCreate) SetDurationMs(v int64) *TaskStageCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *TaskStageCreate) SetNillableDurationMs(v *int64) *TaskStageCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetTokensUsed sets the "tokens_used" field.
func (_c *TaskStageCreate) SetTokensUsed(v int) *TaskStageCreate {
	_c.mutation.SetTokensUsed(v)
	return _c
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_c *TaskStageCreate) SetNillableTokensUsed(v *int) *TaskStageCreate {
	if v != nil {
		_c.SetTokensUsed(*v)
	}
	return _c
}

// SetTurnsUsed sets the "turns_used" field.
func (_c *TaskStageCreate) SetTurnsUsed(v int) *TaskStageCreate {
	_c.mutation.SetTurnsUsed(v)
	return _c
}

// SetNillableTurnsUsed sets the "turns_used" field if the given value is not nil.
func (_c *TaskStageCreate) SetNillableTurnsUsed(v *int) *TaskStageCreate {
	if v != nil {
		_c.SetTurnsUsed(*v)
	}
	return _c
}

// SetOutput sets the "output" field.
func (_c *TaskStageCreate) SetOutput(v string) *TaskStageCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_c *TaskStageCreate) SetNillableOutput(v *string) *TaskStageCreate {
	if v != nil {
		_c.SetOutput(*v)
	}
	return _c
}

// SetStructured sets the "structured" field.
func (_c *TaskStageCreate) SetStructured(v *models.StructuredOutput) *TaskStageCreate {
	_c.mutation.SetStructured(v)
	return _c
}

// SetError sets the "error" field.
func (_c *TaskStageCreate) SetError(v string) *TaskStageCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *TaskStageCreate) SetNillableError(v *string) *TaskStageCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetFailureCategory sets the "failure_category" field.
func (_c *TaskStageCreate) SetFailureCategory(v taskstage.FailureCategory) *TaskStageCreate {
	_c.mutation.SetFailureCategory(v)
	return _c
}

// SetNillableFailureCategory sets the "failure_category" field if the given value is not nil.
func (_c *TaskStageCreate) SetNillableFailureCategory(v *taskstage.FailureCategory) *TaskStageCreate {
	if v != nil {
		_c.SetFailureCategory(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *TaskStageCreate) SetConfidence(v float64) *TaskStageCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *TaskStageCreate) SetNillableConfidence(v *float64) *TaskStageCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *TaskStageCreate) SetRetryCount(v int) *TaskStageCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *TaskStageCreate) SetNillableRetryCount(v *int) *TaskStageCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetExecutionCount sets the "execution_count" field.
func (_c *TaskStageCreate) SetExecutionCount(v int) *TaskStageCreate {
	_c.mutation.SetExecutionCount(v)
	return _c
}

// SetNillableExecutionCount sets the "execution_count" field if the given value is not nil.
func (_c *TaskStageCreate) SetNillableExecutionCount(v *int) *TaskStageCreate {
	if v != nil {
		_c.SetExecutionCount(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskStageCreate) SetID(v string) *TaskStageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *TaskStageCreate) SetTask(v *Task) *TaskStageCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the TaskStageMutation object of the builder.
func (_c *TaskStageCreate) Mutation() *TaskStageMutation {
	return _c.mutation
}

// Save creates the TaskStage in the database.
func (_c *TaskStageCreate) Save(ctx context.Context) (*TaskStage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskStageCreate) SaveX(ctx context.Context) *TaskStage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskStageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskStageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskStageCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := taskstage.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		v := taskstage.DefaultTokensUsed
		_c.mutation.SetTokensUsed(v)
	}
	if _, ok := _c.mutation.TurnsUsed(); !ok {
		v := taskstage.DefaultTurnsUsed
		_c.mutation.SetTurnsUsed(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := taskstage.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.ExecutionCount(); !ok {
		v := taskstage.DefaultExecutionCount
		_c.mutation.SetExecutionCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskStageCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "TaskStage.task_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "TaskStage.name"`)}
	}
	if _, ok := _c.mutation.AgentRole(); !ok {
		return &ValidationError{Name: "agent_role", err: errors.New(`ent: missing required field "TaskStage.agent_role"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TaskStage.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := taskstage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskStage.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExecOrder(); !ok {
		return &ValidationError{Name: "exec_order", err: errors.New(`ent: missing required field "TaskStage.exec_order"`)}
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		return &ValidationError{Name: "tokens_used", err: errors.New(`ent: missing required field "TaskStage.tokens_used"`)}
	}
	if _, ok := _c.mutation.TurnsUsed(); !ok {
		return &ValidationError{Name: "turns_used", err: errors.New(`ent: missing required field "TaskStage.turns_used"`)}
	}
	if v, ok := _c.mutation.FailureCategory(); ok {
		if err := taskstage.FailureCategoryValidator(v); err != nil {
			return &ValidationError{Name: "failure_category", err: fmt.Errorf(`ent: validator failed for field "TaskStage.failure_category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "TaskStage.retry_count"`)}
	}
	if _, ok := _c.mutation.ExecutionCount(); !ok {
		return &ValidationError{Name: "execution_count", err: errors.New(`ent: missing required field "TaskStage.execution_count"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "TaskStage.task"`)}
	}
	return nil
}

func (_c *TaskStageCreate) sqlSave(ctx context.Context) (*TaskStage, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected TaskStage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskStageCreate) createSpec() (*TaskStage, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskStage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskstage.Table, sqlgraph.NewFieldSpec(taskstage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(taskstage.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.AgentRole(); ok {
		_spec.SetField(taskstage.FieldAgentRole, field.TypeString, value)
		_node.AgentRole = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(taskstage.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ExecOrder(); ok {
		_spec.SetField(taskstage.FieldExecOrder, field.TypeInt, value)
		_node.ExecOrder = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(taskstage.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(taskstage.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(taskstage.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.TokensUsed(); ok {
		_spec.SetField(taskstage.FieldTokensUsed, field.TypeInt, value)
		_node.TokensUsed = value
	}
	if value, ok := _c.mutation.TurnsUsed(); ok {
		_spec.SetField(taskstage.FieldTurnsUsed, field.TypeInt, value)
		_node.TurnsUsed = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(taskstage.FieldOutput, field.TypeString, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.Structured(); ok {
		_spec.SetField(taskstage.FieldStructured, field.TypeJSON, value)
		_node.Structured = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(taskstage.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.FailureCategory(); ok {
		_spec.SetField(taskstage.FieldFailureCategory, field.TypeEnum, value)
		_node.FailureCategory = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(taskstage.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(taskstage.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.ExecutionCount(); ok {
		_spec.SetField(taskstage.FieldExecutionCount, field.TypeInt, value)
		_node.ExecutionCount = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskstage.TaskTable,
			Columns: []string{taskstage.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TaskStageCreateBulk is the builder for creating many TaskStage entities in bulk.
type TaskStageCreateBulk struct {
	config
	err      error
	builders []*TaskStageCreate
}

// Save creates the TaskStage entities in the database.
func (_c *TaskStageCreateBulk) Save(ctx context.Context) ([]*TaskStage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskStage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskStageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TaskStageCreateBulk) SaveX(ctx context.Context) []*TaskStage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskStageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskStageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
