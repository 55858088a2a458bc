// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stewardhq/steward/ent/stagelog"
	"github.com/stewardhq/steward/ent/task"
)

// StageLogCreate is the builder for creating a StageLog entity.
type StageLogCreate struct {
	config
	mutation *StageLogMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *StageLogCreate) SetTaskID(v string) *StageLogCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetStageID sets the "stage_id" field.
func (_c *StageLogCreate) SetStageID(v string) *StageLogCreate {
	_c.mutation.SetStageID(v)
	return _c
}

// SetNillableStageID sets the "stage_id" field if the given value is not nil.
func (_c *StageLogCreate) SetNillableStageID(v *string) *StageLogCreate {
	if v != nil {
		_c.SetStageID(*v)
	}
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *StageLogCreate) SetCorrelationID(v string) *StageLogCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_c *StageLogCreate) SetNillableCorrelationID(v *string) *StageLogCreate {
	if v != nil {
		_c.SetCorrelationID(*v)
	}
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *StageLogCreate) SetSequence(v int) *StageLogCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *StageLogCreate) SetEventType(v string) *StageLogCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *StageLogCreate) SetSource(v stagelog.Source) *StageLogCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *StageLogCreate) SetNillableSource(v *stagelog.Source) *StageLogCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *StageLogCreate) SetStatus(v stagelog.Status) *StageLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StageLogCreate) SetNillableStatus(v *stagelog.Status) *StageLogCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRequest sets the "request" field.
func (_c *StageLogCreate) SetRequest(v string) *StageLogCreate {
	_c.mutation.SetRequest(v)
	return _c
}

// SetNillableRequest sets the "request" field if the given value is not nil.
func (_c *StageLogCreate) SetNillableRequest(v *string) *StageLogCreate {
	if v != nil {
		_c.SetRequest(*v)
	}
	return _c
}

// SetResponse sets the "response" field.
func (_c *StageLogCreate) SetResponse(v string) *StageLogCreate {
	_c.mutation.SetResponse(v)
	return _c
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_c *StageLogCreate) SetNillableResponse(v *string) *StageLogCreate {
	if v != nil {
		_c.SetResponse(*v)
	}
	return _c
}

// SetCommand sets the "command" field.
func (_c *StageLogCreate) SetCommand(v string) *StageLogCreate {
	_c.mutation.SetCommand(v)
	return _c
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_c *StageLogCreate) SetNillableCommand(v *string) *StageLogCreate {
	if v != nil {
		_c.SetCommand(*v)
	}
	return _c
}

// SetCommandArgs sets the "command_args" field.
func (_c *StageLogCreate) SetCommandArgs(v map[string]interface{}) *StageLogCreate {
	_c.mutation.SetCommandArgs(v)
	return _c
}

// SetWorkspace sets the "workspace" field.
func (_c *StageLogCreate) SetWorkspace(v string) *StageLogCreate {
	_c.mutation.SetWorkspace(v)
	return _c
}

// SetNillableWorkspace sets the "workspace" field if the given value is not nil.
func (_c *StageLogCreate) SetNillableWorkspace(v *string) *StageLogCreate {
	if v != nil {
		_c.SetWorkspace(*v)
	}
	return _c
}

// SetExecutionMode sets the "execution_mode" field.
func (_c *StageLogCreate) SetExecutionMode(v string) *StageLogCreate {
	_c.mutation.SetExecutionMode(v)
	return _c
}

// SetNillableExecutionMode sets the "execution_mode" field if the given value is not nil.
func (_c *StageLogCreate) SetNillableExecutionMode(v *string) *StageLogCreate {
	if v != nil {
		_c.SetExecutionMode(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *StageLogCreate) SetDurationMs(v int64) *StageLogCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *StageLogCreate) SetNillableDurationMs(v *int64) *StageLogCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *StageLogCreate) SetResult(v string) *StageLogCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_c *StageLogCreate) SetNillableResult(v *string) *StageLogCreate {
	if v != nil {
		_c.SetResult(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *StageLogCreate) SetSummary(v string) *StageLogCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *StageLogCreate) SetNillableSummary(v *string) *StageLogCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetTruncated sets the "truncated" field.
func (_c *StageLogCreate) SetTruncated(v bool) *StageLogCreate {
	_c.mutation.SetTruncated(v)
	return _c
}

// SetNillableTruncated sets the "truncated" field if the given value is not nil.
func (_c *StageLogCreate) SetNillableTruncated(v *bool) *StageLogCreate {
	if v != nil {
		_c.SetTruncated(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StageLogCreate) SetCreatedAt(v time.Time) *StageLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StageLogCreate) SetNillableCreatedAt(v *time.Time) *StageLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StageLogCreate) SetUpdatedAt(v time.Time) *StageLogCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StageLogCreate) SetNillableUpdatedAt(v *time.Time) *StageLogCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StageLogCreate) SetID(v string) *StageLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *StageLogCreate) SetTask(v *Task) *StageLogCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the StageLogMutation object of the builder.
func (_c *StageLogCreate) Mutation() *StageLogMutation {
	return _c.mutation
}

// Save creates the StageLog in the database.
func (_c *StageLogCreate) Save(ctx context.Context) (*StageLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StageLogCreate) SaveX(ctx context.Context) *StageLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StageLogCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := stagelog.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := stagelog.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Truncated(); !ok {
		v := stagelog.DefaultTruncated
		_c.mutation.SetTruncated(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stagelog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StageLogCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "StageLog.task_id"`)}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "StageLog.sequence"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "StageLog.event_type"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "StageLog.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := stagelog.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "StageLog.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StageLog.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := stagelog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StageLog.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Truncated(); !ok {
		return &ValidationError{Name: "truncated", err: errors.New(`ent: missing required field "StageLog.truncated"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StageLog.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "StageLog.task"`)}
	}
	return nil
}

func (_c *StageLogCreate) sqlSave(ctx context.Context) (*StageLog, error) {
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
			return nil, fmt.Errorf("unexpected StageLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StageLogCreate) createSpec() (*StageLog, *sqlgraph.CreateSpec) {
	var (
		_node = &StageLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stagelog.Table, sqlgraph.NewFieldSpec(stagelog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StageID(); ok {
		_spec.SetField(stagelog.FieldStageID, field.TypeString, value)
		_node.StageID = &value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(stagelog.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(stagelog.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(stagelog.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(stagelog.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(stagelog.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Request(); ok {
		_spec.SetField(stagelog.FieldRequest, field.TypeString, value)
		_node.Request = value
	}
	if value, ok := _c.mutation.Response(); ok {
		_spec.SetField(stagelog.FieldResponse, field.TypeString, value)
		_node.Response = value
	}
	if value, ok := _c.mutation.Command(); ok {
		_spec.SetField(stagelog.FieldCommand, field.TypeString, value)
		_node.Command = value
	}
	if value, ok := _c.mutation.CommandArgs(); ok {
		_spec.SetField(stagelog.FieldCommandArgs, field.TypeJSON, value)
		_node.CommandArgs = value
	}
	if value, ok := _c.mutation.Workspace(); ok {
		_spec.SetField(stagelog.FieldWorkspace, field.TypeString, value)
		_node.Workspace = value
	}
	if value, ok := _c.mutation.ExecutionMode(); ok {
		_spec.SetField(stagelog.FieldExecutionMode, field.TypeString, value)
		_node.ExecutionMode = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(stagelog.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(stagelog.FieldResult, field.TypeString, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(stagelog.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Truncated(); ok {
		_spec.SetField(stagelog.FieldTruncated, field.TypeBool, value)
		_node.Truncated = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stagelog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(stagelog.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = &value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stagelog.TaskTable,
			Columns: []string{stagelog.TaskColumn},
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

// StageLogCreateBulk is the builder for creating many StageLog entities in bulk.
type StageLogCreateBulk struct {
	config
	err      error
	builders []*StageLogCreate
}

// Save creates the StageLog entities in the database.
func (_c *StageLogCreateBulk) Save(ctx context.Context) ([]*StageLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StageLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StageLogMutation)
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
func (_c *StageLogCreateBulk) SaveX(ctx context.Context) []*StageLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
