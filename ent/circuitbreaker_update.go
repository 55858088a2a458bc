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
	"github.com/stewardhq/steward/ent/circuitbreaker"
	"github.com/stewardhq/steward/ent/predicate"
)

// CircuitBreakerUpdate is the builder for updating CircuitBreaker entities.
type CircuitBreakerUpdate struct {
	config
	hooks    []Hook
	mutation *CircuitBreakerMutation
}

// Where appends a list predicates to the CircuitBreakerUpdate builder.
func (_u *CircuitBreakerUpdate) Where(ps ...predicate.CircuitBreaker) *CircuitBreakerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLevel sets the "level" field.
func (_u *CircuitBreakerUpdate) SetLevel(v int) *CircuitBreakerUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *CircuitBreakerUpdate) SetNillableLevel(v *int) *CircuitBreakerUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *CircuitBreakerUpdate) AddLevel(v int) *CircuitBreakerUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetTriggeredBy sets the "triggered_by" field.
func (_u *CircuitBreakerUpdate) SetTriggeredBy(v string) *CircuitBreakerUpdate {
	_u.mutation.SetTriggeredBy(v)
	return _u
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_u *CircuitBreakerUpdate) SetNillableTriggeredBy(v *string) *CircuitBreakerUpdate {
	if v != nil {
		_u.SetTriggeredBy(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *CircuitBreakerUpdate) SetReason(v string) *CircuitBreakerUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *CircuitBreakerUpdate) SetNillableReason(v *string) *CircuitBreakerUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetTriggeredAt sets the "triggered_at" field.
func (_u *CircuitBreakerUpdate) SetTriggeredAt(v time.Time) *CircuitBreakerUpdate {
	_u.mutation.SetTriggeredAt(v)
	return _u
}

// SetNillableTriggeredAt sets the "triggered_at" field if the given value is not nil.
func (_u *CircuitBreakerUpdate) SetNillableTriggeredAt(v *time.Time) *CircuitBreakerUpdate {
	if v != nil {
		_u.SetTriggeredAt(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *CircuitBreakerUpdate) SetResolvedAt(v time.Time) *CircuitBreakerUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *CircuitBreakerUpdate) SetNillableResolvedAt(v *time.Time) *CircuitBreakerUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *CircuitBreakerUpdate) ClearResolvedAt() *CircuitBreakerUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetResolvedBy sets the "resolved_by" field.
func (_u *CircuitBreakerUpdate) SetResolvedBy(v string) *CircuitBreakerUpdate {
	_u.mutation.SetResolvedBy(v)
	return _u
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_u *CircuitBreakerUpdate) SetNillableResolvedBy(v *string) *CircuitBreakerUpdate {
	if v != nil {
		_u.SetResolvedBy(*v)
	}
	return _u
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (_u *CircuitBreakerUpdate) ClearResolvedBy() *CircuitBreakerUpdate {
	_u.mutation.ClearResolvedBy()
	return _u
}

// Mutation returns the CircuitBreakerMutation object of the builder.
func (_u *CircuitBreakerUpdate) Mutation() *CircuitBreakerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CircuitBreakerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CircuitBreakerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CircuitBreakerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CircuitBreakerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CircuitBreakerUpdate) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CircuitBreaker.task"`)
	}
	return nil
}

func (_u *CircuitBreakerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(circuitbreaker.Table, circuitbreaker.Columns, sqlgraph.NewFieldSpec(circuitbreaker.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(circuitbreaker.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(circuitbreaker.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TriggeredBy(); ok {
		_spec.SetField(circuitbreaker.FieldTriggeredBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(circuitbreaker.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggeredAt(); ok {
		_spec.SetField(circuitbreaker.FieldTriggeredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(circuitbreaker.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(circuitbreaker.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedBy(); ok {
		_spec.SetField(circuitbreaker.FieldResolvedBy, field.TypeString, value)
	}
	if _u.mutation.ResolvedByCleared() {
		_spec.ClearField(circuitbreaker.FieldResolvedBy, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{circuitbreaker.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CircuitBreakerUpdateOne is the builder for updating a single CircuitBreaker entity.
type CircuitBreakerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CircuitBreakerMutation
}

// SetLevel sets the "level" field.
func (_u *CircuitBreakerUpdateOne) SetLevel(v int) *CircuitBreakerUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *CircuitBreakerUpdateOne) SetNillableLevel(v *int) *CircuitBreakerUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *CircuitBreakerUpdateOne) AddLevel(v int) *CircuitBreakerUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetTriggeredBy sets the "triggered_by" field.
func (_u *CircuitBreakerUpdateOne) SetTriggeredBy(v string) *CircuitBreakerUpdateOne {
	_u.mutation.SetTriggeredBy(v)
	return _u
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_u *CircuitBreakerUpdateOne) SetNillableTriggeredBy(v *string) *CircuitBreakerUpdateOne {
	if v != nil {
		_u.SetTriggeredBy(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *CircuitBreakerUpdateOne) SetReason(v string) *CircuitBreakerUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *CircuitBreakerUpdateOne) SetNillableReason(v *string) *CircuitBreakerUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetTriggeredAt sets the "triggered_at" field.
func (_u *CircuitBreakerUpdateOne) SetTriggeredAt(v time.Time) *CircuitBreakerUpdateOne {
	_u.mutation.SetTriggeredAt(v)
	return _u
}

// SetNillableTriggeredAt sets the "triggered_at" field if the given value is not nil.
func (_u *CircuitBreakerUpdateOne) SetNillableTriggeredAt(v *time.Time) *CircuitBreakerUpdateOne {
	if v != nil {
		_u.SetTriggeredAt(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *CircuitBreakerUpdateOne) SetResolvedAt(v time.Time) *CircuitBreakerUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *CircuitBreakerUpdateOne) SetNillableResolvedAt(v *time.Time) *CircuitBreakerUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *CircuitBreakerUpdateOne) ClearResolvedAt() *CircuitBreakerUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetResolvedBy sets the "resolved_by" field.
func (_u *CircuitBreakerUpdateOne) SetResolvedBy(v string) *CircuitBreakerUpdateOne {
	_u.mutation.SetResolvedBy(v)
	return _u
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_u *CircuitBreakerUpdateOne) SetNillableResolvedBy(v *string) *CircuitBreakerUpdateOne {
	if v != nil {
		_u.SetResolvedBy(*v)
	}
	return _u
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (_u *CircuitBreakerUpdateOne) ClearResolvedBy() *CircuitBreakerUpdateOne {
	_u.mutation.ClearResolvedBy()
	return _u
}

// Mutation returns the CircuitBreakerMutation object of the builder.
func (_u *CircuitBreakerUpdateOne) Mutation() *CircuitBreakerMutation {
	return _u.mutation
}

// Where appends a list predicates to the CircuitBreakerUpdate builder.
func (_u *CircuitBreakerUpdateOne) Where(ps ...predicate.CircuitBreaker) *CircuitBreakerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CircuitBreakerUpdateOne) Select(field string, fields ...string) *CircuitBreakerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CircuitBreaker entity.
func (_u *CircuitBreakerUpdateOne) Save(ctx context.Context) (*CircuitBreaker, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CircuitBreakerUpdateOne) SaveX(ctx context.Context) *CircuitBreaker {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CircuitBreakerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CircuitBreakerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CircuitBreakerUpdateOne) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CircuitBreaker.task"`)
	}
	return nil
}

func (_u *CircuitBreakerUpdateOne) sqlSave(ctx context.Context) (_node *CircuitBreaker, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(circuitbreaker.Table, circuitbreaker.Columns, sqlgraph.NewFieldSpec(circuitbreaker.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CircuitBreaker.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, circuitbreaker.FieldID)
		for _, f := range fields {
			if !circuitbreaker.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != circuitbreaker.FieldID {
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
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(circuitbreaker.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(circuitbreaker.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TriggeredBy(); ok {
		_spec.SetField(circuitbreaker.FieldTriggeredBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(circuitbreaker.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggeredAt(); ok {
		_spec.SetField(circuitbreaker.FieldTriggeredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(circuitbreaker.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(circuitbreaker.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedBy(); ok {
		_spec.SetField(circuitbreaker.FieldResolvedBy, field.TypeString, value)
	}
	if _u.mutation.ResolvedByCleared() {
		_spec.ClearField(circuitbreaker.FieldResolvedBy, field.TypeString)
	}
	_node = &CircuitBreaker{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{circuitbreaker.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
