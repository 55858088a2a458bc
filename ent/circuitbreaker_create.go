// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stewardhq/steward/ent/circuitbreaker"
	"github.com/stewardhq/steward/ent/task"
)

// CircuitBreakerCreate is the builder for creating a CircuitBreaker entity.
type CircuitBreakerCreate struct {
	config
	mutation *CircuitBreakerMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *CircuitBreakerCreate) SetTaskID(v string) *CircuitBreakerCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *CircuitBreakerCreate) SetLevel(v int) *CircuitBreakerCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *CircuitBreakerCreate) SetNillableLevel(v *int) *CircuitBreakerCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetTriggeredBy sets the "triggered_by" field.
func (_c *CircuitBreakerCreate) SetTriggeredBy(v string) *CircuitBreakerCreate {
	_c.mutation.SetTriggeredBy(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *CircuitBreakerCreate) SetReason(v string) *CircuitBreakerCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetTriggeredAt sets the "triggered_at" field.
func (_c *CircuitBreakerCreate) SetTriggeredAt(v time.Time) *CircuitBreakerCreate {
	_c.mutation.SetTriggeredAt(v)
	return _c
}

// SetNillableTriggeredAt sets the "triggered_at" field if the given value is not nil.
func (_c *CircuitBreakerCreate) SetNillableTriggeredAt(v *time.Time) *CircuitBreakerCreate {
	if v != nil {
		_c.SetTriggeredAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *CircuitBreakerCreate) SetResolvedAt(v time.Time) *CircuitBreakerCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *CircuitBreakerCreate) SetNillableResolvedAt(v *time.Time) *CircuitBreakerCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetResolvedBy sets the "resolved_by" field.
func (_c *CircuitBreakerCreate) SetResolvedBy(v string) *CircuitBreakerCreate {
	_c.mutation.SetResolvedBy(v)
	return _c
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_c *CircuitBreakerCreate) SetNillableResolvedBy(v *string) *CircuitBreakerCreate {
	if v != nil {
		_c.SetResolvedBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CircuitBreakerCreate) SetID(v string) *CircuitBreakerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *CircuitBreakerCreate) SetTask(v *Task) *CircuitBreakerCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the CircuitBreakerMutation object of the builder.
func (_c *CircuitBreakerCreate) Mutation() *CircuitBreakerMutation {
	return _c.mutation
}

// Save creates the CircuitBreaker in the database.
func (_c *CircuitBreakerCreate) Save(ctx context.Context) (*CircuitBreaker, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CircuitBreakerCreate) SaveX(ctx context.Context) *CircuitBreaker {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CircuitBreakerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CircuitBreakerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CircuitBreakerCreate) defaults() {
	if _, ok := _c.mutation.Level(); !ok {
		v := circuitbreaker.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.TriggeredAt(); !ok {
		v := circuitbreaker.DefaultTriggeredAt()
		_c.mutation.SetTriggeredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CircuitBreakerCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "CircuitBreaker.task_id"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "CircuitBreaker.level"`)}
	}
	if _, ok := _c.mutation.TriggeredBy(); !ok {
		return &ValidationError{Name: "triggered_by", err: errors.New(`ent: missing required field "CircuitBreaker.triggered_by"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "CircuitBreaker.reason"`)}
	}
	if _, ok := _c.mutation.TriggeredAt(); !ok {
		return &ValidationError{Name: "triggered_at", err: errors.New(`ent: missing required field "CircuitBreaker.triggered_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "CircuitBreaker.task"`)}
	}
	return nil
}

func (_c *CircuitBreakerCreate) sqlSave(ctx context.Context) (*CircuitBreaker, error) {
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
			return nil, fmt.Errorf("unexpected CircuitBreaker.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CircuitBreakerCreate) createSpec() (*CircuitBreaker, *sqlgraph.CreateSpec) {
	var (
		_node = &CircuitBreaker{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(circuitbreaker.Table, sqlgraph.NewFieldSpec(circuitbreaker.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(circuitbreaker.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.TriggeredBy(); ok {
		_spec.SetField(circuitbreaker.FieldTriggeredBy, field.TypeString, value)
		_node.TriggeredBy = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(circuitbreaker.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.TriggeredAt(); ok {
		_spec.SetField(circuitbreaker.FieldTriggeredAt, field.TypeTime, value)
		_node.TriggeredAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(circuitbreaker.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if value, ok := _c.mutation.ResolvedBy(); ok {
		_spec.SetField(circuitbreaker.FieldResolvedBy, field.TypeString, value)
		_node.ResolvedBy = &value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   circuitbreaker.TaskTable,
			Columns: []string{circuitbreaker.TaskColumn},
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

// CircuitBreakerCreateBulk is the builder for creating many CircuitBreaker entities in bulk.
type CircuitBreakerCreateBulk struct {
	config
	err      error
	builders []*CircuitBreakerCreate
}

// Save creates the CircuitBreaker entities in the database.
func (_c *CircuitBreakerCreateBulk) Save(ctx context.Context) ([]*CircuitBreaker, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CircuitBreaker, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CircuitBreakerMutation)
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
func (_c *CircuitBreakerCreateBulk) SaveX(ctx context.Context) []*CircuitBreaker {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CircuitBreakerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CircuitBreakerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
