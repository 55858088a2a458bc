// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stewardhq/steward/ent/circuitbreaker"
	"github.com/stewardhq/steward/ent/predicate"
)

// CircuitBreakerDelete is the builder for deleting a CircuitBreaker entity.
type CircuitBreakerDelete struct {
	config
	hooks    []Hook
	mutation *CircuitBreakerMutation
}

// Where appends a list predicates to the CircuitBreakerDelete builder.
func (_d *CircuitBreakerDelete) Where(ps ...predicate.CircuitBreaker) *CircuitBreakerDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CircuitBreakerDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CircuitBreakerDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CircuitBreakerDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(circuitbreaker.Table, sqlgraph.NewFieldSpec(circuitbreaker.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CircuitBreakerDeleteOne is the builder for deleting a single CircuitBreaker entity.
type CircuitBreakerDeleteOne struct {
	_d *CircuitBreakerDelete
}

// Where appends a list predicates to the CircuitBreakerDelete builder.
func (_d *CircuitBreakerDeleteOne) Where(ps ...predicate.CircuitBreaker) *CircuitBreakerDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CircuitBreakerDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{circuitbreaker.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CircuitBreakerDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
