// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stewardhq/steward/ent/predicate"
	"github.com/stewardhq/steward/ent/skillfeedback"
)

// SkillFeedbackUpdate is the builder for updating SkillFeedback entities.
type SkillFeedbackUpdate struct {
	config
	hooks    []Hook
	mutation *SkillFeedbackMutation
}

// Where appends a list predicates to the SkillFeedbackUpdate builder.
func (_u *SkillFeedbackUpdate) Where(ps ...predicate.SkillFeedback) *SkillFeedbackUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentRole sets the "agent_role" field.
func (_u *SkillFeedbackUpdate) SetAgentRole(v string) *SkillFeedbackUpdate {
	_u.mutation.SetAgentRole(v)
	return _u
}

// SetNillableAgentRole sets the "agent_role" field if the given value is not nil.
func (_u *SkillFeedbackUpdate) SetNillableAgentRole(v *string) *SkillFeedbackUpdate {
	if v != nil {
		_u.SetAgentRole(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *SkillFeedbackUpdate) SetTaskID(v string) *SkillFeedbackUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *SkillFeedbackUpdate) SetNillableTaskID(v *string) *SkillFeedbackUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetGateID sets the "gate_id" field.
func (_u *SkillFeedbackUpdate) SetGateID(v string) *SkillFeedbackUpdate {
	_u.mutation.SetGateID(v)
	return _u
}

// SetNillableGateID sets the "gate_id" field if the given value is not nil.
func (_u *SkillFeedbackUpdate) SetNillableGateID(v *string) *SkillFeedbackUpdate {
	if v != nil {
		_u.SetGateID(*v)
	}
	return _u
}

// ClearGateID clears the value of the "gate_id" field.
func (_u *SkillFeedbackUpdate) ClearGateID() *SkillFeedbackUpdate {
	_u.mutation.ClearGateID()
	return _u
}

// SetComment sets the "comment" field.
func (_u *SkillFeedbackUpdate) SetComment(v string) *SkillFeedbackUpdate {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *SkillFeedbackUpdate) SetNillableComment(v *string) *SkillFeedbackUpdate {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *SkillFeedbackUpdate) ClearComment() *SkillFeedbackUpdate {
	_u.mutation.ClearComment()
	return _u
}

// SetLesson sets the "lesson" field.
func (_u *SkillFeedbackUpdate) SetLesson(v string) *SkillFeedbackUpdate {
	_u.mutation.SetLesson(v)
	return _u
}

// SetNillableLesson sets the "lesson" field if the given value is not nil.
func (_u *SkillFeedbackUpdate) SetNillableLesson(v *string) *SkillFeedbackUpdate {
	if v != nil {
		_u.SetLesson(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SkillFeedbackUpdate) SetCreatedAt(v time.Time) *SkillFeedbackUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SkillFeedbackUpdate) SetNillableCreatedAt(v *time.Time) *SkillFeedbackUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the SkillFeedbackMutation object of the builder.
func (_u *SkillFeedbackUpdate) Mutation() *SkillFeedbackMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SkillFeedbackUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillFeedbackUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SkillFeedbackUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillFeedbackUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SkillFeedbackUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(skillfeedback.Table, skillfeedback.Columns, sqlgraph.NewFieldSpec(skillfeedback.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentRole(); ok {
		_spec.SetField(skillfeedback.FieldAgentRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(skillfeedback.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GateID(); ok {
		_spec.SetField(skillfeedback.FieldGateID, field.TypeString, value)
	}
	if _u.mutation.GateIDCleared() {
		_spec.ClearField(skillfeedback.FieldGateID, field.TypeString)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(skillfeedback.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(skillfeedback.FieldComment, field.TypeString)
	}
	if value, ok := _u.mutation.Lesson(); ok {
		_spec.SetField(skillfeedback.FieldLesson, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(skillfeedback.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillfeedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SkillFeedbackUpdateOne is the builder for updating a single SkillFeedback entity.
type SkillFeedbackUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SkillFeedbackMutation
}

// SetAgentRole sets the "agent_role" field.
func (_u *SkillFeedbackUpdateOne) SetAgentRole(v string) *SkillFeedbackUpdateOne {
	_u.mutation.SetAgentRole(v)
	return _u
}

// SetNillableAgentRole sets the "agent_role" field if the given value is not nil.
func (_u *SkillFeedbackUpdateOne) SetNillableAgentRole(v *string) *SkillFeedbackUpdateOne {
	if v != nil {
		_u.SetAgentRole(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *SkillFeedbackUpdateOne) SetTaskID(v string) *SkillFeedbackUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *SkillFeedbackUpdateOne) SetNillableTaskID(v *string) *SkillFeedbackUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetGateID sets the "gate_id" field.
func (_u *SkillFeedbackUpdateOne) SetGateID(v string) *SkillFeedbackUpdateOne {
	_u.mutation.SetGateID(v)
	return _u
}

// SetNillableGateID sets the "gate_id" field if the given value is not nil.
func (_u *SkillFeedbackUpdateOne) SetNillableGateID(v *string) *SkillFeedbackUpdateOne {
	if v != nil {
		_u.SetGateID(*v)
	}
	return _u
}

// ClearGateID clears the value of the "gate_id" field.
func (_u *SkillFeedbackUpdateOne) ClearGateID() *SkillFeedbackUpdateOne {
	_u.mutation.ClearGateID()
	return _u
}

// SetComment sets the "comment" field.
func (_u *SkillFeedbackUpdateOne) SetComment(v string) *SkillFeedbackUpdateOne {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *SkillFeedbackUpdateOne) SetNillableComment(v *string) *SkillFeedbackUpdateOne {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *SkillFeedbackUpdateOne) ClearComment() *SkillFeedbackUpdateOne {
	_u.mutation.ClearComment()
	return _u
}

// SetLesson sets the "lesson" field.
func (_u *SkillFeedbackUpdateOne) SetLesson(v string) *SkillFeedbackUpdateOne {
	_u.mutation.SetLesson(v)
	return _u
}

// SetNillableLesson sets the "lesson" field if the given value is not nil.
func (_u *SkillFeedbackUpdateOne) SetNillableLesson(v *string) *SkillFeedbackUpdateOne {
	if v != nil {
		_u.SetLesson(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SkillFeedbackUpdateOne) SetCreatedAt(v time.Time) *SkillFeedbackUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SkillFeedbackUpdateOne) SetNillableCreatedAt(v *time.Time) *SkillFeedbackUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the SkillFeedbackMutation object of the builder.
func (_u *SkillFeedbackUpdateOne) Mutation() *SkillFeedbackMutation {
	return _u.mutation
}

// Where appends a list predicates to the SkillFeedbackUpdate builder.
func (_u *SkillFeedbackUpdateOne) Where(ps ...predicate.SkillFeedback) *SkillFeedbackUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SkillFeedbackUpdateOne) Select(field string, fields ...string) *SkillFeedbackUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SkillFeedback entity.
func (_u *SkillFeedbackUpdateOne) Save(ctx context.Context) (*SkillFeedback, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillFeedbackUpdateOne) SaveX(ctx context.Context) *SkillFeedback {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SkillFeedbackUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillFeedbackUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SkillFeedbackUpdateOne) sqlSave(ctx context.Context) (_node *SkillFeedback, err error) {
	_spec := sqlgraph.NewUpdateSpec(skillfeedback.Table, skillfeedback.Columns, sqlgraph.NewFieldSpec(skillfeedback.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SkillFeedback.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, skillfeedback.FieldID)
		for _, f := range fields {
			if !skillfeedback.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != skillfeedback.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentRole(); ok {
		_spec.SetField(skillfeedback.FieldAgentRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(skillfeedback.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GateID(); ok {
		_spec.SetField(skillfeedback.FieldGateID, field.TypeString, value)
	}
	if _u.mutation.GateIDCleared() {
		_spec.ClearField(skillfeedback.FieldGateID, field.TypeString)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(skillfeedback.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(skillfeedback.FieldComment, field.TypeString)
	}
	if value, ok := _u.mutation.Lesson(); ok {
		_spec.SetField(skillfeedback.FieldLesson, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(skillfeedback.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &SkillFeedback{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillfeedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
