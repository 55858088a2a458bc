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
	"github.com/stewardhq/steward/ent/tasktemplate"
	"github.com/stewardhq/steward/pkg/models"
)

// TaskTemplateCreate is the builder for creating a TaskTemplate entity.
type TaskTemplateCreate struct {
	config
	mutation *TaskTemplateMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *TaskTemplateCreate) SetName(v string) *TaskTemplateCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *TaskTemplateCreate) SetVersion(v int) *TaskTemplateCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *TaskTemplateCreate) SetNillableVersion(v *int) *TaskTemplateCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *TaskTemplateCreate) SetParentID(v string) *TaskTemplateCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *TaskTemplateCreate) SetNillableParentID(v *string) *TaskTemplateCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *TaskTemplateCreate) SetDescription(v string) *TaskTemplateCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *TaskTemplateCreate) SetNillableDescription(v *string) *TaskTemplateCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStages sets the "stages" field.
func (_c *TaskTemplateCreate) SetStages(v []models.StageDef) *TaskTemplateCreate {
	_c.mutation.SetStages(v)
	return _c
}

// SetGates sets the "gates" field.
func (_c *TaskTemplateCreate) SetGates(v []models.GateDef) *TaskTemplateCreate {
	_c.mutation.SetGates(v)
	return _c
}

// SetInteractive sets the "interactive" field.
func (_c *TaskTemplateCreate) SetInteractive(v bool) *TaskTemplateCreate {
	_c.mutation.SetInteractive(v)
	return _c
}

// SetNillableInteractive sets the "interactive" field if the given value is not nil.
func (_c *TaskTemplateCreate) SetNillableInteractive(v *bool) *TaskTemplateCreate {
	if v != nil {
		_c.SetInteractive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskTemplateCreate) SetCreatedAt(v time.Time) *TaskTemplateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskTemplateCreate) SetNillableCreatedAt(v *time.Time) *TaskTemplateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskTemplateCreate) SetID(v string) *TaskTemplateCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_c *TaskTemplateCreate) AddTaskIDs(ids ...string) *TaskTemplateCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_c *TaskTemplateCreate) AddTasks(v ...*Task) *TaskTemplateCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// Mutation returns the TaskTemplateMutation object of the builder.
func (_c *TaskTemplateCreate) Mutation() *TaskTemplateMutation {
	return _c.mutation
}

// Save creates the TaskTemplate in the database.
func (_c *TaskTemplateCreate) Save(ctx context.Context) (*TaskTemplate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskTemplateCreate) SaveX(ctx context.Context) *TaskTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskTemplateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskTemplateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskTemplateCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := tasktemplate.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.Interactive(); !ok {
		v := tasktemplate.DefaultInteractive
		_c.mutation.SetInteractive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tasktemplate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskTemplateCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "TaskTemplate.name"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "TaskTemplate.version"`)}
	}
	if _, ok := _c.mutation.Stages(); !ok {
		return &ValidationError{Name: "stages", err: errors.New(`ent: missing required field "TaskTemplate.stages"`)}
	}
	if _, ok := _c.mutation.Interactive(); !ok {
		return &ValidationError{Name: "interactive", err: errors.New(`ent: missing required field "TaskTemplate.interactive"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TaskTemplate.created_at"`)}
	}
	return nil
}

func (_c *TaskTemplateCreate) sqlSave(ctx context.Context) (*TaskTemplate, error) {
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
			return nil, fmt.Errorf("unexpected TaskTemplate.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskTemplateCreate) createSpec() (*TaskTemplate, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskTemplate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tasktemplate.Table, sqlgraph.NewFieldSpec(tasktemplate.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(tasktemplate.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(tasktemplate.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.ParentID(); ok {
		_spec.SetField(tasktemplate.FieldParentID, field.TypeString, value)
		_node.ParentID = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(tasktemplate.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Stages(); ok {
		_spec.SetField(tasktemplate.FieldStages, field.TypeJSON, value)
		_node.Stages = value
	}
	if value, ok := _c.mutation.Gates(); ok {
		_spec.SetField(tasktemplate.FieldGates, field.TypeJSON, value)
		_node.Gates = value
	}
	if value, ok := _c.mutation.Interactive(); ok {
		_spec.SetField(tasktemplate.FieldInteractive, field.TypeBool, value)
		_node.Interactive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tasktemplate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tasktemplate.TasksTable,
			Columns: []string{tasktemplate.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TaskTemplateCreateBulk is the builder for creating many TaskTemplate entities in bulk.
type TaskTemplateCreateBulk struct {
	config
	err      error
	builders []*TaskTemplateCreate
}

// Save creates the TaskTemplate entities in the database.
func (_c *TaskTemplateCreateBulk) Save(ctx context.Context) ([]*TaskTemplate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskTemplate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskTemplateMutation)
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
func (_c *TaskTemplateCreateBulk) SaveX(ctx context.Context) []*TaskTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskTemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskTemplateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
