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

// TriggerRuleUpdate is the builder for updating TriggerRule entities.
type TriggerRuleUpdate struct {
	config
	hooks    []Hook
	mutation *TriggerRuleMutation
}

// Where appends a list predicates to the TriggerRuleUpdate builder.
func (_u *TriggerRuleUpdate) Where(ps ...predicate.TriggerRule) *TriggerRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *TriggerRuleUpdate) SetName(v string) *TriggerRuleUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TriggerRuleUpdate) SetNillableName(v *string) *TriggerRuleUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRuleType sets the "rule_type" field.
func (_u *TriggerRuleUpdate) SetRuleType(v triggerrule.RuleType) *TriggerRuleUpdate {
	_u.mutation.SetRuleType(v)
	return _u
}

// SetNillableRuleType sets the "rule_type" field if the given value is not nil.
func (_u *TriggerRuleUpdate) SetNillableRuleType(v *triggerrule.RuleType) *TriggerRuleUpdate {
	if v != nil {
		_u.SetRuleType(*v)
	}
	return _u
}

// SetExpression sets the "expression" field.
func (_u *TriggerRuleUpdate) SetExpression(v string) *TriggerRuleUpdate {
	_u.mutation.SetExpression(v)
	return _u
}

// SetNillableExpression sets the "expression" field if the given value is not nil.
func (_u *TriggerRuleUpdate) SetNillableExpression(v *string) *TriggerRuleUpdate {
	if v != nil {
		_u.SetExpression(*v)
	}
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *TriggerRuleUpdate) SetTemplateID(v string) *TriggerRuleUpdate {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *TriggerRuleUpdate) SetNillableTemplateID(v *string) *TriggerRuleUpdate {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *TriggerRuleUpdate) SetProjectID(v string) *TriggerRuleUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *TriggerRuleUpdate) SetNillableProjectID(v *string) *TriggerRuleUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *TriggerRuleUpdate) ClearProjectID() *TriggerRuleUpdate {
	_u.mutation.ClearProjectID()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *TriggerRuleUpdate) SetEnabled(v bool) *TriggerRuleUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *TriggerRuleUpdate) SetNillableEnabled(v *bool) *TriggerRuleUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TriggerRuleUpdate) SetCreatedAt(v time.Time) *TriggerRuleUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TriggerRuleUpdate) SetNillableCreatedAt(v *time.Time) *TriggerRuleUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddEventIDs adds the "events" edge to the TriggerEvent entity by IDs.
func (_u *TriggerRuleUpdate) AddEventIDs(ids ...string) *TriggerRuleUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the TriggerEvent entity.
func (_u *TriggerRuleUpdate) AddEvents(v ...*TriggerEvent) *TriggerRuleUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the TriggerRuleMutation object of the builder.
func (_u *TriggerRuleUpdate) Mutation() *TriggerRuleMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the TriggerEvent entity.
func (_u *TriggerRuleUpdate) ClearEvents() *TriggerRuleUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to TriggerEvent entities by IDs.
func (_u *TriggerRuleUpdate) RemoveEventIDs(ids ...string) *TriggerRuleUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to TriggerEvent entities.
func (_u *TriggerRuleUpdate) RemoveEvents(v ...*TriggerEvent) *TriggerRuleUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TriggerRuleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriggerRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TriggerRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriggerRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TriggerRuleUpdate) check() error {
	if v, ok := _u.mutation.RuleType(); ok {
		if err := triggerrule.RuleTypeValidator(v); err != nil {
			return &ValidationError{Name: "rule_type", err: fmt.Errorf(`ent: validator failed for field "TriggerRule.rule_type": %w`, err)}
		}
	}
	return nil
}

func (_u *TriggerRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(triggerrule.Table, triggerrule.Columns, sqlgraph.NewFieldSpec(triggerrule.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(triggerrule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RuleType(); ok {
		_spec.SetField(triggerrule.FieldRuleType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Expression(); ok {
		_spec.SetField(triggerrule.FieldExpression, field.TypeString, value)
	}
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(triggerrule.FieldTemplateID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(triggerrule.FieldProjectID, field.TypeString, value)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(triggerrule.FieldProjectID, field.TypeString)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(triggerrule.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(triggerrule.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{triggerrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TriggerRuleUpdateOne is the builder for updating a single TriggerRule entity.
type TriggerRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TriggerRuleMutation
}

// SetName sets the "name" field.
func (_u *TriggerRuleUpdateOne) SetName(v string) *TriggerRuleUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TriggerRuleUpdateOne) SetNillableName(v *string) *TriggerRuleUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRuleType sets the "rule_type" field.
func (_u *TriggerRuleUpdateOne) SetRuleType(v triggerrule.RuleType) *TriggerRuleUpdateOne {
	_u.mutation.SetRuleType(v)
	return _u
}

// SetNillableRuleType sets the "rule_type" field if the given value is not nil.
func (_u *TriggerRuleUpdateOne) SetNillableRuleType(v *triggerrule.RuleType) *TriggerRuleUpdateOne {
	if v != nil {
		_u.SetRuleType(*v)
	}
	return _u
}

// SetExpression sets the "expression" field.
func (_u *TriggerRuleUpdateOne) SetExpression(v string) *TriggerRuleUpdateOne {
	_u.mutation.SetExpression(v)
	return _u
}

// SetNillableExpression sets the "expression" field if the given value is not nil.
func (_u *TriggerRuleUpdateOne) SetNillableExpression(v *string) *TriggerRuleUpdateOne {
	if v != nil {
		_u.SetExpression(*v)
	}
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *TriggerRuleUpdateOne) SetTemplateID(v string) *TriggerRuleUpdateOne {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *TriggerRuleUpdateOne) SetNillableTemplateID(v *string) *TriggerRuleUpdateOne {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *TriggerRuleUpdateOne) SetProjectID(v string) *TriggerRuleUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *TriggerRuleUpdateOne) SetNillableProjectID(v *string) *TriggerRuleUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *TriggerRuleUpdateOne) ClearProjectID() *TriggerRuleUpdateOne {
	_u.mutation.ClearProjectID()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *TriggerRuleUpdateOne) SetEnabled(v bool) *TriggerRuleUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *TriggerRuleUpdateOne) SetNillableEnabled(v *bool) *TriggerRuleUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TriggerRuleUpdateOne) SetCreatedAt(v time.Time) *TriggerRuleUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TriggerRuleUpdateOne) SetNillableCreatedAt(v *time.Time) *TriggerRuleUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddEventIDs adds the "events" edge to the TriggerEvent entity by IDs.
func (_u *TriggerRuleUpdateOne) AddEventIDs(ids ...string) *TriggerRuleUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the TriggerEvent entity.
func (_u *TriggerRuleUpdateOne) AddEvents(v ...*TriggerEvent) *TriggerRuleUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the TriggerRuleMutation object of the builder.
func (_u *TriggerRuleUpdateOne) Mutation() *TriggerRuleMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the TriggerEvent entity.
func (_u *TriggerRuleUpdateOne) ClearEvents() *TriggerRuleUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to TriggerEvent entities by IDs.
func (_u *TriggerRuleUpdateOne) RemoveEventIDs(ids ...string) *TriggerRuleUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to TriggerEvent entities.
func (_u *TriggerRuleUpdateOne) RemoveEvents(v ...*TriggerEvent) *TriggerRuleUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the TriggerRuleUpdate builder.
func (_u *TriggerRuleUpdateOne) Where(ps ...predicate.TriggerRule) *TriggerRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TriggerRuleUpdateOne) Select(field string, fields ...string) *TriggerRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TriggerRule entity.
func (_u *TriggerRuleUpdateOne) Save(ctx context.Context) (*TriggerRule, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriggerRuleUpdateOne) SaveX(ctx context.Context) *TriggerRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TriggerRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriggerRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TriggerRuleUpdateOne) check() error {
	if v, ok := _u.mutation.RuleType(); ok {
		if err := triggerrule.RuleTypeValidator(v); err != nil {
			return &ValidationError{Name: "rule_type", err: fmt.Errorf(`ent: validator failed for field "TriggerRule.rule_type": %w`, err)}
		}
	}
	return nil
}

func (_u *TriggerRuleUpdateOne) sqlSave(ctx context.Context) (_node *TriggerRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(triggerrule.Table, triggerrule.Columns, sqlgraph.NewFieldSpec(triggerrule.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TriggerRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, triggerrule.FieldID)
		for _, f := range fields {
			if !triggerrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != triggerrule.FieldID {
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
		_spec.SetField(triggerrule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RuleType(); ok {
		_spec.SetField(triggerrule.FieldRuleType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Expression(); ok {
		_spec.SetField(triggerrule.FieldExpression, field.TypeString, value)
	}
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(triggerrule.FieldTemplateID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(triggerrule.FieldProjectID, field.TypeString, value)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(triggerrule.FieldProjectID, field.TypeString)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(triggerrule.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(triggerrule.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TriggerRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{triggerrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
