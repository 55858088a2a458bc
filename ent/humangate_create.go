// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stewardhq/steward/ent/humangate"
	"github.com/stewardhq/steward/ent/task"
)

// HumanGateCreate is the builder for creating a HumanGate entity.
type HumanGateCreate struct {
	config
	mutation *HumanGateMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *HumanGateCreate) SetTaskID(v string) *HumanGateCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetStageName sets the "stage_name" field.
func (_c *HumanGateCreate) SetStageName(v string) *HumanGateCreate {
	_c.mutation.SetStageName(v)
	return _c
}

// SetAgentRole sets the "agent_role" field.
func (_c *HumanGateCreate) SetAgentRole(v string) *HumanGateCreate {
	_c.mutation.SetAgentRole(v)
	return _c
}

// SetNillableAgentRole sets the "agent_role" field if the given value is not nil.
func (_c *HumanGateCreate) SetNillableAgentRole(v *string) *HumanGateCreate {
	if v != nil {
		_c.SetAgentRole(*v)
	}
	return _c
}

// SetGateType sets the "gate_type" field.
func (_c *HumanGateCreate) SetGateType(v humangate.GateType) *HumanGateCreate {
	_c.mutation.SetGateType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *HumanGateCreate) SetStatus(v humangate.Status) *HumanGateCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *HumanGateCreate) SetNillableStatus(v *humangate.Status) *HumanGateCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetReviewer sets the "reviewer" field.
func (_c *HumanGateCreate) SetReviewer(v string) *HumanGateCreate {
	_c.mutation.SetReviewer(v)
	return _c
}

// SetNillableReviewer sets the "reviewer" field if the given value is not nil.
func (_c *HumanGateCreate) SetNillableReviewer(v *string) *HumanGateCreate {
	if v != nil {
		_c.SetReviewer(*v)
	}
	return _c
}

// SetComment sets the "comment" field.
func (_c *HumanGateCreate) SetComment(v string) *HumanGateCreate {
	_c.mutation.SetComment(v)
	return _c
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_c *HumanGateCreate) SetNillableComment(v *string) *HumanGateCreate {
	if v != nil {
		_c.SetComment(*v)
	}
	return _c
}

// SetRevisedContent sets the "revised_content" field.
func (_c *HumanGateCreate) SetRevisedContent(v string) *HumanGateCreate {
	_c.mutation.SetRevisedContent(v)
	return _c
}

// SetNillableRevisedContent sets the "revised_content" field if the given value is not nil.
func (_c *HumanGateCreate) SetNillableRevisedContent(v *string) *HumanGateCreate {
	if v != nil {
		_c.SetRevisedContent(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *HumanGateCreate) SetRetryCount(v int) *HumanGateCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *HumanGateCreate) SetNillableRetryCount(v *int) *HumanGateCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetIsDynamic sets the "is_dynamic" field.
func (_c *HumanGateCreate) SetIsDynamic(v bool) *HumanGateCreate {
	_c.mutation.SetIsDynamic(v)
	return _c
}

// SetNillableIsDynamic sets the "is_dynamic" field if the given value is not nil.
func (_c *HumanGateCreate) SetNillableIsDynamic(v *bool) *HumanGateCreate {
	if v != nil {
		_c.SetIsDynamic(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *HumanGateCreate) SetCreatedAt(v time.Time) *HumanGateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HumanGateCreate) SetNillableCreatedAt(v *time.Time) *HumanGateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *HumanGateCreate) SetReviewedAt(v time.Time) *HumanGateCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *HumanGateCreate) SetNillableReviewedAt(v *time.Time) *HumanGateCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HumanGateCreate) SetID(v string) *HumanGateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *HumanGateCreate) SetTask(v *Task) *HumanGateCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the HumanGateMutation object of the builder.
func (_c *HumanGateCreate) Mutation() *HumanGateMutation {
	return _c.mutation
}

// Save creates the HumanGate in the database.
func (_c *HumanGateCreate) Save(ctx context.Context) (*HumanGate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HumanGateCreate) SaveX(ctx context.Context) *HumanGate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HumanGateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HumanGateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HumanGateCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := humangate.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := humangate.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.IsDynamic(); !ok {
		v := humangate.DefaultIsDynamic
		_c.mutation.SetIsDynamic(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := humangate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HumanGateCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "HumanGate.task_id"`)}
	}
	if _, ok := _c.mutation.StageName(); !ok {
		return &ValidationError{Name: "stage_name", err: errors.New(`ent: missing required field "HumanGate.stage_name"`)}
	}
	if _, ok := _c.mutation.GateType(); !ok {
		return &ValidationError{Name: "gate_type", err: errors.New(`ent: missing required field "HumanGate.gate_type"`)}
	}
	if v, ok := _c.mutation.GateType(); ok {
		if err := humangate.GateTypeValidator(v); err != nil {
			return &ValidationError{Name: "gate_type", err: fmt.Errorf(`ent: validator failed for field "HumanGate.gate_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "HumanGate.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := humangate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "HumanGate.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "HumanGate.retry_count"`)}
	}
	if _, ok := _c.mutation.IsDynamic(); !ok {
		return &ValidationError{Name: "is_dynamic", err: errors.New(`ent: missing required field "HumanGate.is_dynamic"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "HumanGate.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "HumanGate.task"`)}
	}
	return nil
}

func (_c *HumanGateCreate) sqlSave(ctx context.Context) (*HumanGate, error) {
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
			return nil, fmt.Errorf("unexpected HumanGate.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HumanGateCreate) createSpec() (*HumanGate, *sqlgraph.CreateSpec) {
	var (
		_node = &HumanGate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(humangate.Table, sqlgraph.NewFieldSpec(humangate.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StageName(); ok {
		_spec.SetField(humangate.FieldStageName, field.TypeString, value)
		_node.StageName = value
	}
	if value, ok := _c.mutation.AgentRole(); ok {
		_spec.SetField(humangate.FieldAgentRole, field.TypeString, value)
		_node.AgentRole = value
	}
	if value, ok := _c.mutation.GateType(); ok {
		_spec.SetField(humangate.FieldGateType, field.TypeEnum, value)
		_node.GateType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(humangate.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Reviewer(); ok {
		_spec.SetField(humangate.FieldReviewer, field.TypeString, value)
		_node.Reviewer = &value
	}
	if value, ok := _c.mutation.Comment(); ok {
		_spec.SetField(humangate.FieldComment, field.TypeString, value)
		_node.Comment = value
	}
	if value, ok := _c.mutation.RevisedContent(); ok {
		_spec.SetField(humangate.FieldRevisedContent, field.TypeString, value)
		_node.RevisedContent = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(humangate.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.IsDynamic(); ok {
		_spec.SetField(humangate.FieldIsDynamic, field.TypeBool, value)
		_node.IsDynamic = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(humangate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(humangate.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = &value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   humangate.TaskTable,
			Columns: []string{humangate.TaskColumn},
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

// HumanGateCreateBulk is the builder for creating many HumanGate entities in bulk.
type HumanGateCreateBulk struct {
	config
	err      error
	builders []*HumanGateCreate
}

// Save creates the HumanGate entities in the database.
func (_c *HumanGateCreateBulk) Save(ctx context.Context) ([]*HumanGate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HumanGate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HumanGateMutation)
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
func (_c *HumanGateCreateBulk) SaveX(ctx context.Context) []*HumanGate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HumanGateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HumanGateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
