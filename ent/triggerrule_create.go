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

// TriggerRuleCreate is the builder for creating a TriggerRule entity.
type TriggerRuleCreate struct {
	config
	mutation *TriggerRuleMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *TriggerRuleCreate) SetName(v string) *TriggerRuleCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetRuleType sets the "rule_type" field.
func (_c *TriggerRuleCreate) SetRuleType(v triggerrule.RuleType) *TriggerRuleCreate {
	_c.mutation.SetRuleType(v)
	return _c
}

// SetExpression sets the "expression" field.
func (_c *TriggerRuleCreate) SetExpression(v string) *TriggerRuleCreate {
	_c.mutation.SetExpression(v)
	return _c
}

// SetTemplateID sets the "template_id" field.
func (_c *TriggerRuleCreate) SetTemplateID(v string) *TriggerRuleCreate {
	_c.mutation.SetTemplateID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *TriggerRuleCreate) SetProjectID(v string) *TriggerRuleCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_c *TriggerRuleCreate) SetNillableProjectID(v *string) *TriggerRuleCreate {
	if v != nil {
		_c.SetProjectID(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *TriggerRuleCreate) SetEnabled(v bool) *TriggerRuleCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *TriggerRuleCreate) SetNillableEnabled(v *bool) *TriggerRuleCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TriggerRuleCreate) SetCreatedAt(v time.Time) *TriggerRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TriggerRuleCreate) SetNillableCreatedAt(v *time.Time) *TriggerRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TriggerRuleCreate) SetID(v string) *TriggerRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddEventIDs adds the "events" edge to the TriggerEvent entity by IDs.
func (_c *TriggerRuleCreate) AddEventIDs(ids ...string) *TriggerRuleCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the TriggerEvent entity.
func (_c *TriggerRuleCreate) AddEvents(v ...*TriggerEvent) *TriggerRuleCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the TriggerRuleMutation object of the builder.
func (_c *TriggerRuleCreate) Mutation() *TriggerRuleMutation {
	return _c.mutation
}

// Save creates the TriggerRule in the database.
func (_c *TriggerRuleCreate) Save(ctx context.Context) (*TriggerRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TriggerRuleCreate) SaveX(ctx context.Context) *TriggerRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TriggerRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TriggerRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TriggerRuleCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := triggerrule.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := triggerrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TriggerRuleCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "TriggerRule.name"`)}
	}
	if _, ok := _c.mutation.RuleType(); !ok {
		return &ValidationError{Name: "rule_type", err: errors.New(`ent: missing required field "TriggerRule.rule_type"`)}
	}
	if v, ok := _c.mutation.RuleType(); ok {
		if err := triggerrule.RuleTypeValidator(v); err != nil {
			return &ValidationError{Name: "rule_type", err: fmt.Errorf(`ent: validator failed for field "TriggerRule.rule_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Expression(); !ok {
		return &ValidationError{Name: "expression", err: errors.New(`ent: missing required field "TriggerRule.expression"`)}
	}
	if _, ok := _c.mutation.TemplateID(); !ok {
		return &ValidationError{Name: "template_id", err: errors.New(`ent: missing required field "TriggerRule.template_id"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "TriggerRule.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TriggerRule.created_at"`)}
	}
	return nil
}

func (_c *TriggerRuleCreate) sqlSave(ctx context.Context) (*TriggerRule, error) {
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
			return nil, fmt.Errorf("unexpected TriggerRule.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TriggerRuleCreate) createSpec() (*TriggerRule, *sqlgraph.CreateSpec) {
	var (
		_node = &TriggerRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(triggerrule.Table, sqlgraph.NewFieldSpec(triggerrule.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(triggerrule.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.RuleType(); ok {
		_spec.SetField(triggerrule.FieldRuleType, field.TypeEnum, value)
		_node.RuleType = value
	}
	if value, ok := _c.mutation.Expression(); ok {
		_spec.SetField(triggerrule.FieldExpression, field.TypeString, value)
		_node.Expression = value
	}
	if value, ok := _c.mutation.TemplateID(); ok {
		_spec.SetField(triggerrule.FieldTemplateID, field.TypeString, value)
		_node.TemplateID = value
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(triggerrule.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(triggerrule.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(triggerrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   triggerrule.EventsTable,
			Columns: []string{triggerrule.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(triggerevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TriggerRuleCreateBulk is the builder for creating many TriggerRule entities in bulk.
type TriggerRuleCreateBulk struct {
	config
	err      error
	builders []*TriggerRuleCreate
}

// Save creates the TriggerRule entities in the database.
func (_c *TriggerRuleCreateBulk) Save(ctx context.Context) ([]*TriggerRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TriggerRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TriggerRuleMutation)
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
func (_c *TriggerRuleCreateBulk) SaveX(ctx context.Context) []*TriggerRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TriggerRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TriggerRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
