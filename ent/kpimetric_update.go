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
	"github.com/stewardhq/steward/ent/kpimetric"
	"github.com/stewardhq/steward/ent/predicate"
)

// KPIMetricUpdate is the builder for updating KPIMetric entities.
type KPIMetricUpdate struct {
	config
	hooks    []Hook
	mutation *KPIMetricMutation
}

// Where appends a list predicates to the KPIMetricUpdate builder.
func (_u *KPIMetricUpdate) Where(ps ...predicate.KPIMetric) *KPIMetricUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *KPIMetricUpdate) SetName(v string) *KPIMetricUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *KPIMetricUpdate) SetNillableName(v *string) *KPIMetricUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *KPIMetricUpdate) SetValue(v float64) *KPIMetricUpdate {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *KPIMetricUpdate) SetNillableValue(v *float64) *KPIMetricUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *KPIMetricUpdate) AddValue(v float64) *KPIMetricUpdate {
	_u.mutation.AddValue(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *KPIMetricUpdate) SetUnit(v string) *KPIMetricUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *KPIMetricUpdate) SetNillableUnit(v *string) *KPIMetricUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *KPIMetricUpdate) ClearUnit() *KPIMetricUpdate {
	_u.mutation.ClearUnit()
	return _u
}

// SetRecordedAt sets the "recorded_at" field.
func (_u *KPIMetricUpdate) SetRecordedAt(v time.Time) *KPIMetricUpdate {
	_u.mutation.SetRecordedAt(v)
	return _u
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_u *KPIMetricUpdate) SetNillableRecordedAt(v *time.Time) *KPIMetricUpdate {
	if v != nil {
		_u.SetRecordedAt(*v)
	}
	return _u
}

// Mutation returns the KPIMetricMutation object of the builder.
func (_u *KPIMetricUpdate) Mutation() *KPIMetricMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KPIMetricUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KPIMetricUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KPIMetricUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KPIMetricUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KPIMetricUpdate) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "KPIMetric.task"`)
	}
	return nil
}

func (_u *KPIMetricUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(kpimetric.Table, kpimetric.Columns, sqlgraph.NewFieldSpec(kpimetric.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(kpimetric.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(kpimetric.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(kpimetric.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(kpimetric.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(kpimetric.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.RecordedAt(); ok {
		_spec.SetField(kpimetric.FieldRecordedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{kpimetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KPIMetricUpdateOne is the builder for updating a single KPIMetric entity.
type KPIMetricUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KPIMetricMutation
}

// SetName sets the "name" field.
func (_u *KPIMetricUpdateOne) SetName(v string) *KPIMetricUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *KPIMetricUpdateOne) SetNillableName(v *string) *KPIMetricUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *KPIMetricUpdateOne) SetValue(v float64) *KPIMetricUpdateOne {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *KPIMetricUpdateOne) SetNillableValue(v *float64) *KPIMetricUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *KPIMetricUpdateOne) AddValue(v float64) *KPIMetricUpdateOne {
	_u.mutation.AddValue(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *KPIMetricUpdateOne) SetUnit(v string) *KPIMetricUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *KPIMetricUpdateOne) SetNillableUnit(v *string) *KPIMetricUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *KPIMetricUpdateOne) ClearUnit() *KPIMetricUpdateOne {
	_u.mutation.ClearUnit()
	return _u
}

// SetRecordedAt sets the "recorded_at" field.
func (_u *KPIMetricUpdateOne) SetRecordedAt(v time.Time) *KPIMetricUpdateOne {
	_u.mutation.SetRecordedAt(v)
	return _u
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_u *KPIMetricUpdateOne) SetNillableRecordedAt(v *time.Time) *KPIMetricUpdateOne {
	if v != nil {
		_u.SetRecordedAt(*v)
	}
	return _u
}

// Mutation returns the KPIMetricMutation object of the builder.
func (_u *KPIMetricUpdateOne) Mutation() *KPIMetricMutation {
	return _u.mutation
}

// Where appends a list predicates to the KPIMetricUpdate builder.
func (_u *KPIMetricUpdateOne) Where(ps ...predicate.KPIMetric) *KPIMetricUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KPIMetricUpdateOne) Select(field string, fields ...string) *KPIMetricUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KPIMetric entity.
func (_u *KPIMetricUpdateOne) Save(ctx context.Context) (*KPIMetric, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KPIMetricUpdateOne) SaveX(ctx context.Context) *KPIMetric {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KPIMetricUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KPIMetricUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KPIMetricUpdateOne) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "KPIMetric.task"`)
	}
	return nil
}

func (_u *KPIMetricUpdateOne) sqlSave(ctx context.Context) (_node *KPIMetric, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(kpimetric.Table, kpimetric.Columns, sqlgraph.NewFieldSpec(kpimetric.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KPIMetric.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, kpimetric.FieldID)
		for _, f := range fields {
			if !kpimetric.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != kpimetric.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(kpimetric.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(kpimetric.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(kpimetric.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(kpimetric.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(kpimetric.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.RecordedAt(); ok {
		_spec.SetField(kpimetric.FieldRecordedAt, field.TypeTime, value)
	}
	_node = &KPIMetric{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{kpimetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
