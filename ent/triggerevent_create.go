// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stewardhq/steward/ent/triggerevent"
	"github.com/stewardhq/steward/ent/triggerrule"
)

// TriggerEventCreate is the builder for creating a TriggerEvent entity.
type TriggerEventCreate struct {
	config
	mutation *TriggerEventMutation
	hooks    []Hook
}

// SetRuleID sets the "rule_id" field.
func (_c *TriggerEventCreate) SetRuleID(v string) *TriggerEventCreate {
	_c.mutation.SetRuleID(v)
	return _c
}

// SetNillableRuleID sets the "rule_id" field if the given value is not nil.
func (_c *TriggerEventCreate) SetNillableRuleID(v *string) *TriggerEventCreate {
	if v != nil {
		_c.SetRuleID(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *TriggerEventCreate) SetSource(v string) *TriggerEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *TriggerEventCreate) SetPayload(v map[string]interface{}) *TriggerEventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *TriggerEventCreate) SetTaskID(v string) *TriggerEventCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_c *TriggerEventCreate) SetNillableTaskID(v *string) *TriggerEventCreate {
	if v != nil {
		_c.SetTaskID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TriggerEventCreate) SetStatus(v triggerevent.Status) *TriggerEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TriggerEventCreate) SetNillableStatus(v *triggerevent.Status) *TriggerEventCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TriggerEventCreate) SetCreatedAt(v time.Time) *TriggerEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TriggerEventCreate) SetNillableCreatedAt(v *time.Time) *TriggerEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TriggerEventCreate) SetID(v string) *TriggerEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRule sets the "rule" edge to the TriggerRule entity.
func (_c *TriggerEventCreate) SetRule(v *TriggerRule) *TriggerEventCreate {
	return _c.SetRuleID(v.ID)
}

// Mutation returns the TriggerEventMutation object of the builder.
func (_c *TriggerEventCreate) Mutation() *TriggerEventMutation {
	return _c.mutation
}

// Save creates the TriggerEvent in the database.
func (_c *TriggerEventCreate) Save(ctx context.Context) (*TriggerEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TriggerEventCreate) SaveX(ctx context.Context) *TriggerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TriggerEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TriggerEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TriggerEventCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := triggerevent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := triggerevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TriggerEventCreate) check() error {
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "TriggerEvent.source"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TriggerEvent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := triggerevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TriggerEvent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TriggerEvent.created_at"`)}
	}
	return nil
}

func (_c *TriggerEventCreate) sqlSave(ctx context.Context) (*TriggerEvent, error) {
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
			return nil, fmt.Errorf("unexpected TriggerEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TriggerEventCreate) createSpec() (*TriggerEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TriggerEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(triggerevent.Table, sqlgraph.NewFieldSpec(triggerevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(triggerevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(triggerevent.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(triggerevent.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(triggerevent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(triggerevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RuleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   triggerevent.RuleTable,
			Columns: []string{triggerevent.RuleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(triggerrule.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RuleID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TriggerEventCreateBulk is the builder for creating many TriggerEvent entities in bulk.
type TriggerEventCreateBulk struct {
	config
	err      error
	builders []*TriggerEventCreate
}

// Save creates the TriggerEvent entities in the database.
func (_c *TriggerEventCreateBulk) Save(ctx context.Context) ([]*TriggerEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TriggerEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TriggerEventMutation)
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
func (_c *TriggerEventCreateBulk) SaveX(ctx context.Context) []*TriggerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TriggerEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TriggerEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
