// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stewardhq/steward/ent/skillfeedback"
)

// SkillFeedbackCreate is the builder for creating a SkillFeedback entity.
type SkillFeedbackCreate struct {
	config
	mutation *SkillFeedbackMutation
	hooks    []Hook
}

// SetAgentRole sets the "agent_role" field.
func (_c *SkillFeedbackCreate) SetAgentRole(v string) *SkillFeedbackCreate {
	_c.mutation.SetAgentRole(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *SkillFeedbackCreate) SetTaskID(v string) *SkillFeedbackCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetGateID sets the "gate_id" field.
func (_c *SkillFeedbackCreate) SetGateID(v string) *SkillFeedbackCreate {
	_c.mutation.SetGateID(v)
	return _c
}

// SetNillableGateID sets the "gate_id" field if the given value is not nil.
func (_c *SkillFeedbackCreate) SetNillableGateID(v *string) *SkillFeedbackCreate {
	if v != nil {
		_c.SetGateID(*v)
	}
	return _c
}

// SetComment sets the "comment" field.
func (_c *SkillFeedbackCreate) SetComment(v string) *SkillFeedbackCreate {
	_c.mutation.SetComment(v)
	return _c
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_c *SkillFeedbackCreate) SetNillableComment(v *string) *SkillFeedbackCreate {
	if v != nil {
		_c.SetComment(*v)
	}
	return _c
}

// SetLesson sets the "lesson" field.
func (_c *SkillFeedbackCreate) SetLesson(v string) *SkillFeedbackCreate {
	_c.mutation.SetLesson(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SkillFeedbackCreate) SetCreatedAt(v time.Time) *SkillFeedbackCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SkillFeedbackCreate) SetNillableCreatedAt(v *time.Time) *SkillFeedbackCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SkillFeedbackCreate) SetID(v string) *SkillFeedbackCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SkillFeedbackMutation object of the builder.
func (_c *SkillFeedbackCreate) Mutation() *SkillFeedbackMutation {
	return _c.mutation
}

// Save creates the SkillFeedback in the database.
func (_c *SkillFeedbackCreate) Save(ctx context.Context) (*SkillFeedback, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SkillFeedbackCreate) SaveX(ctx context.Context) *SkillFeedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillFeedbackCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillFeedbackCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SkillFeedbackCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := skillfeedback.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SkillFeedbackCreate) check() error {
	if _, ok := _c.mutation.AgentRole(); !ok {
		return &ValidationError{Name: "agent_role", err: errors.New(`ent: missing required field "SkillFeedback.agent_role"`)}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "SkillFeedback.task_id"`)}
	}
	if _, ok := _c.mutation.Lesson(); !ok {
		return &ValidationError{Name: "lesson", err: errors.New(`ent: missing required field "SkillFeedback.lesson"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SkillFeedback.created_at"`)}
	}
	return nil
}

func (_c *SkillFeedbackCreate) sqlSave(ctx context.Context) (*SkillFeedback, error) {
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
			return nil, fmt.Errorf("unexpected SkillFeedback.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SkillFeedbackCreate) createSpec() (*SkillFeedback, *sqlgraph.CreateSpec) {
	var (
		_node = &SkillFeedback{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(skillfeedback.Table, sqlgraph.NewFieldSpec(skillfeedback.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentRole(); ok {
		_spec.SetField(skillfeedback.FieldAgentRole, field.TypeString, value)
		_node.AgentRole = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(skillfeedback.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.GateID(); ok {
		_spec.SetField(skillfeedback.FieldGateID, field.TypeString, value)
		_node.GateID = value
	}
	if value, ok := _c.mutation.Comment(); ok {
		_spec.SetField(skillfeedback.FieldComment, field.TypeString, value)
		_node.Comment = value
	}
	if value, ok := _c.mutation.Lesson(); ok {
		_spec.SetField(skillfeedback.FieldLesson, field.TypeString, value)
		_node.Lesson = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(skillfeedback.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// SkillFeedbackCreateBulk is the builder for creating many SkillFeedback entities in bulk.
type SkillFeedbackCreateBulk struct {
	config
	err      error
	builders []*SkillFeedbackCreate
}

// Save creates the SkillFeedback entities in the database.
func (_c *SkillFeedbackCreateBulk) Save(ctx context.Context) ([]*SkillFeedback, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SkillFeedback, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SkillFeedbackMutation)
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
func (_c *SkillFeedbackCreateBulk) SaveX(ctx context.Context) []*SkillFeedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillFeedbackCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillFeedbackCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
