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
	"github.com/stewardhq/steward/ent/triggerevent"
	"github.com/stewardhq/steward/ent/triggerrule"
)

// TriggerEventUpdate is the builder for updating TriggerEvent entities.
type TriggerEventUpdate struct {
	config
	hooks    []Hook
	mutation *TriggerEventMutation
}

// Where appends a list predicates to the TriggerEventUpdate builder.
func (_u *TriggerEventUpdate) Where(ps ...predicate.TriggerEvent) *TriggerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRuleID sets the "rule_id" field.
func (_u *TriggerEventUpdate) SetRuleID(v string) *TriggerEventUpdate {
	_u.mutation.SetRuleID(v)
	return _u
}

// SetNillableRuleID sets the "rule_id" field if the given value is not nil.
func (_u *TriggerEventUpdate) SetNillableRuleID(v *string) *TriggerEventUpdate {
	if v != nil {
		_u.SetRuleID(*v)
	}
	return _u
}

// ClearRuleID clears the value of the "rule_id" field.
func (_u *TriggerEventUpdate) ClearRuleID() *TriggerEventUpdate {
	_u.mutation.ClearRuleID()
	return _u
}

// SetSource sets the "source" field.
func (_u *TriggerEventUpdate) SetSource(v string) *TriggerEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *TriggerEventUpdate) SetNillableSource(v *string) *TriggerEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *TriggerEventUpdate) SetPayload(v map[string]interface{}) *TriggerEventUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *TriggerEventUpdate) ClearPayload() *TriggerEventUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *TriggerEventUpdate) SetTaskID(v string) *TriggerEventUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *TriggerEventUpdate) SetNillableTaskID(v *string) *TriggerEventUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *TriggerEventUpdate) ClearTaskID() *TriggerEventUpdate {
	_u.mutation.ClearTaskID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TriggerEventUpdate) SetStatus(v triggerevent.Status) *TriggerEventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TriggerEventUpdate) SetNillableStatus(v *triggerevent.Status) *TriggerEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TriggerEventUpdate) SetCreatedAt(v time.Time) *TriggerEventUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TriggerEventUpdate) SetNillableCreatedAt(v *time.Time) *TriggerEventUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetRule sets the "rule" edge to the TriggerRule entity.
func (_u *TriggerEventUpdate) SetRule(v *TriggerRule) *TriggerEventUpdate {
	return _u.SetRuleID(v.ID)
}

// Mutation returns the TriggerEventMutation object of the builder.
func (_u *TriggerEventUpdate) Mutation() *TriggerEventMutation {
	return _u.mutation
}

// ClearRule clears the "rule" edge to the TriggerRule entity.
func (_u *TriggerEventUpdate) ClearRule() *TriggerEventUpdate {
	_u.mutation.ClearRule()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TriggerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriggerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TriggerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriggerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TriggerEventUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := triggerevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TriggerEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TriggerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(triggerevent.Table, triggerevent.Columns, sqlgraph.NewFieldSpec(triggerevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(triggerevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(triggerevent.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(triggerevent.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(triggerevent.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(triggerevent.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(triggerevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(triggerevent.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.RuleCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RuleIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{triggerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TriggerEventUpdateOne is the builder for updating a single TriggerEvent entity.
type TriggerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TriggerEventMutation
}

// SetRuleID sets the "rule_id" field.
func (_u *TriggerEventUpdateOne) SetRuleID(v string) *TriggerEventUpdateOne {
	_u.mutation.SetRuleID(v)
	return _u
}

// SetNillableRuleID sets the "rule_id" field if the given value is not nil.
func (_u *TriggerEventUpdateOne) SetNillableRuleID(v *string) *TriggerEventUpdateOne {
	if v != nil {
		_u.SetRuleID(*v)
	}
	return _u
}

// ClearRuleID clears the value of the "rule_id" field.
func (_u *TriggerEventUpdateOne) ClearRuleID() *TriggerEventUpdateOne {
	_u.mutation.ClearRuleID()
	return _u
}

// SetSource sets the "source" field.
func (_u *TriggerEventUpdateOne) SetSource(v string) *TriggerEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *TriggerEventUpdateOne) SetNillableSource(v *string) *TriggerEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *TriggerEventUpdateOne) SetPayload(v map[string]interface{}) *TriggerEventUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *TriggerEventUpdateOne) ClearPayload() *TriggerEventUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *TriggerEventUpdateOne) SetTaskID(v string) *TriggerEventUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *TriggerEventUpdateOne) SetNillableTaskID(v *string) *TriggerEventUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *TriggerEventUpdateOne) ClearTaskID() *TriggerEventUpdateOne {
	_u.mutation.ClearTaskID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TriggerEventUpdateOne) SetStatus(v triggerevent.Status) *TriggerEventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TriggerEventUpdateOne) SetNillableStatus(v *triggerevent.Status) *TriggerEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TriggerEventUpdateOne) SetCreatedAt(v time.Time) *TriggerEventUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TriggerEventUpdateOne) SetNillableCreatedAt(v *time.Time) *TriggerEventUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetRule sets the "rule" edge to the TriggerRule entity.
func (_u *TriggerEventUpdateOne) SetRule(v *TriggerRule) *TriggerEventUpdateOne {
	return _u.SetRuleID(v.ID)
}

// Mutation returns the TriggerEventMutation object of the builder.
func (_u *TriggerEventUpdateOne) Mutation() *TriggerEventMutation {
	return _u.mutation
}

// ClearRule clears the "rule" edge to the TriggerRule entity.
func (_u *TriggerEventUpdateOne) ClearRule() *TriggerEventUpdateOne {
	_u.mutation.ClearRule()
	return _u
}

// Where appends a list predicates to the TriggerEventUpdate builder.
func (_u *TriggerEventUpdateOne) Where(ps ...predicate.TriggerEvent) *TriggerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TriggerEventUpdateOne) Select(field string, fields ...string) *TriggerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TriggerEvent entity.
func (_u *TriggerEventUpdateOne) Save(ctx context.Context) (*TriggerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriggerEventUpdateOne) SaveX(ctx context.Context) *TriggerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TriggerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriggerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TriggerEventUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := triggerevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TriggerEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TriggerEventUpdateOne) sqlSave(ctx context.Context) (_node *TriggerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(triggerevent.Table, triggerevent.Columns, sqlgraph.NewFieldSpec(triggerevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TriggerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, triggerevent.FieldID)
		for _, f := range fields {
			if !triggerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != triggerevent.FieldID {
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
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(triggerevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(triggerevent.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(triggerevent.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(triggerevent.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(triggerevent.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(triggerevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(triggerevent.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.RuleCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RuleIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TriggerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{triggerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
