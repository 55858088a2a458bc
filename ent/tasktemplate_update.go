// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/stewardhq/steward/ent/predicate"
	"github.com/stewardhq/steward/ent/task"
	"github.com/stewardhq/steward/ent/tasktemplate"
	"github.com/stewardhq/steward/pkg/models"
)

// TaskTemplateUpdate is the builder for updating TaskTemplate entities.
type TaskTemplateUpdate struct {
	config
	hooks    []Hook
	mutation *TaskTemplateMutation
}

// Where appends a list predicates to the TaskTemplateUpdate builder.
func (_u *TaskTemplateUpdate) Where(ps ...predicate.TaskTemplate) *TaskTemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *TaskTemplateUpdate) SetName(v string) *TaskTemplateUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TaskTemplateUpdate) SetNillableName(v *string) *TaskTemplateUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *TaskTemplateUpdate) SetVersion(v int) *TaskTemplateUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *TaskTemplateUpdate) SetNillableVersion(v *int) *TaskTemplateUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *TaskTemplateUpdate) AddVersion(v int) *TaskTemplateUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *TaskTemplateUpdate) SetParentID(v string) *TaskTemplateUpdate {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *TaskTemplateUpdate) SetNillableParentID(v *string) *TaskTemplateUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *TaskTemplateUpdate) ClearParentID() *TaskTemplateUpdate {
	_u.mutation.ClearParentID()
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskTemplateUpdate) SetDescription(v string) *TaskTemplateUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskTemplateUpdate) SetNillableDescription(v *string) *TaskTemplateUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskTemplateUpdate) ClearDescription() *TaskTemplateUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStages sets the "stages" field.
func (_u *TaskTemplateUpdate) SetStages(v []models.StageDef) *TaskTemplateUpdate {
	_u.mutation.SetStages(v)
	return _u
}

// AppendStages appends value to the "stages" field.
func (_u *TaskTemplateUpdate) AppendStages(v []models.StageDef) *TaskTemplateUpdate {
	_u.mutation.AppendStages(v)
	return _u
}

// SetGates sets the "gates" field.
func (_u *TaskTemplateUpdate) SetGates(v []models.GateDef) *TaskTemplateUpdate {
	_u.mutation.SetGates(v)
	return _u
}

// AppendGates appends value to the "gates" field.
func (_u *TaskTemplateUpdate) AppendGates(v []models.GateDef) *TaskTemplateUpdate {
	_u.mutation.AppendGates(v)
	return _u
}

// ClearGates clears the value of the "gates" field.
func (_u *TaskTemplateUpdate) ClearGates() *TaskTemplateUpdate {
	_u.mutation.ClearGates()
	return _u
}

// SetInteractive sets the "interactive" field.
func (_u *TaskTemplateUpdate) SetInteractive(v bool) *TaskTemplateUpdate {
	_u.mutation.SetInteractive(v)
	return _u
}

// SetNillableInteractive sets the "interactive" field if the given value is not nil.
func (_u *TaskTemplateUpdate) SetNillableInteractive(v *bool) *TaskTemplateUpdate {
	if v != nil {
		_u.SetInteractive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TaskTemplateUpdate) SetCreatedAt(v time.Time) *TaskTemplateUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TaskTemplateUpdate) SetNillableCreatedAt(v *time.Time) *TaskTemplateUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *TaskTemplateUpdate) AddTaskIDs(ids ...string) *TaskTemplateUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *TaskTemplateUpdate) AddTasks(v ...*Task) *TaskTemplateUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// Mutation returns the TaskTemplateMutation object of the builder.
func (_u *TaskTemplateUpdate) Mutation() *TaskTemplateMutation {
	return _u.mutation
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *TaskTemplateUpdate) ClearTasks() *TaskTemplateUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *TaskTemplateUpdate) RemoveTaskIDs(ids ...string) *TaskTemplateUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *TaskTemplateUpdate) RemoveTasks(v ...*Task) *TaskTemplateUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskTemplateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskTemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskTemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskTemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TaskTemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(tasktemplate.Table, tasktemplate.Columns, sqlgraph.NewFieldSpec(tasktemplate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(tasktemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(tasktemplate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(tasktemplate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(tasktemplate.FieldParentID, field.TypeString, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(tasktemplate.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(tasktemplate.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(tasktemplate.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Stages(); ok {
		_spec.SetField(tasktemplate.FieldStages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tasktemplate.FieldStages, value)
		})
	}
	if value, ok := _u.mutation.Gates(); ok {
		_spec.SetField(tasktemplate.FieldGates, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGates(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tasktemplate.FieldGates, value)
		})
	}
	if _u.mutation.GatesCleared() {
		_spec.ClearField(tasktemplate.FieldGates, field.TypeJSON)
	}
	if value, ok := _u.mutation.Interactive(); ok {
		_spec.SetField(tasktemplate.FieldInteractive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(tasktemplate.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tasktemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskTemplateUpdateOne is the builder for updating a single TaskTemplate entity.
type TaskTemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskTemplateMutation
}

// SetName sets the "name" field.
func (_u *TaskTemplateUpdateOne) SetName(v string) *TaskTemplateUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TaskTemplateUpdateOne) SetNillableName(v *string) *TaskTemplateUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *TaskTemplateUpdateOne) SetVersion(v int) *TaskTemplateUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *TaskTemplateUpdateOne) SetNillableVersion(v *int) *TaskTemplateUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *TaskTemplateUpdateOne) AddVersion(v int) *TaskTemplateUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *TaskTemplateUpdateOne) SetParentID(v string) *TaskTemplateUpdateOne {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *TaskTemplateUpdateOne) SetNillableParentID(v *string) *TaskTemplateUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *TaskTemplateUpdateOne) ClearParentID() *TaskTemplateUpdateOne {
	_u.mutation.ClearParentID()
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskTemplateUpdateOne) SetDescription(v string) *TaskTemplateUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskTemplateUpdateOne) SetNillableDescription(v *string) *TaskTemplateUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskTemplateUpdateOne) ClearDescription() *TaskTemplateUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStages sets the "stages" field.
func (_u *TaskTemplateUpdateOne) SetStages(v []models.StageDef) *TaskTemplateUpdateOne {
	_u.mutation.SetStages(v)
	return _u
}

// AppendStages appends value to the "stages" field.
func (_u *TaskTemplateUpdateOne) AppendStages(v []models.StageDef) *TaskTemplateUpdateOne {
	_u.mutation.AppendStages(v)
	return _u
}

// SetGates sets the "gates" field.
func (_u *TaskTemplateUpdateOne) SetGates(v []models.GateDef) *TaskTemplateUpdateOne {
	_u.mutation.SetGates(v)
	return _u
}

// AppendGates appends value to the "gates" field.
func (_u *TaskTemplateUpdateOne) AppendGates(v []models.GateDef) *TaskTemplateUpdateOne {
	_u.mutation.AppendGates(v)
	return _u
}

// ClearGates clears the value of the "gates" field.
func (_u *TaskTemplateUpdateOne) ClearGates() *TaskTemplateUpdateOne {
	_u.mutation.ClearGates()
	return _u
}

// SetInteractive sets the "interactive" field.
func (_u *TaskTemplateUpdateOne) SetInteractive(v bool) *TaskTemplateUpdateOne {
	_u.mutation.SetInteractive(v)
	return _u
}

// SetNillableInteractive sets the "interactive" field if the given value is not nil.
func (_u *TaskTemplateUpdateOne) SetNillableInteractive(v *bool) *TaskTemplateUpdateOne {
	if v != nil {
		_u.SetInteractive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TaskTemplateUpdateOne) SetCreatedAt(v time.Time) *TaskTemplateUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TaskTemplateUpdateOne) SetNillableCreatedAt(v *time.Time) *TaskTemplateUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *TaskTemplateUpdateOne) AddTaskIDs(ids ...string) *TaskTemplateUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *TaskTemplateUpdateOne) AddTasks(v ...*Task) *TaskTemplateUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// Mutation returns the TaskTemplateMutation object of the builder.
func (_u *TaskTemplateUpdateOne) Mutation() *TaskTemplateMutation {
	return _u.mutation
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *TaskTemplateUpdateOne) ClearTasks() *TaskTemplateUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *TaskTemplateUpdateOne) RemoveTaskIDs(ids ...string) *TaskTemplateUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *TaskTemplateUpdateOne) RemoveTasks(v ...*Task) *TaskTemplateUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// Where appends a list predicates to the TaskTemplateUpdate builder.
func (_u *TaskTemplateUpdateOne) Where(ps ...predicate.TaskTemplate) *TaskTemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskTemplateUpdateOne) Select(field string, fields ...string) *TaskTemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskTemplate entity.
func (_u *TaskTemplateUpdateOne) Save(ctx context.Context) (*TaskTemplate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskTemplateUpdateOne) SaveX(ctx context.Context) *TaskTemplate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskTemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskTemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TaskTemplateUpdateOne) sqlSave(ctx context.Context) (_node *TaskTemplate, err error) {
	_spec := sqlgraph.NewUpdateSpec(tasktemplate.Table, tasktemplate.Columns, sqlgraph.NewFieldSpec(tasktemplate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskTemplate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tasktemplate.FieldID)
		for _, f := range fields {
			if !tasktemplate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tasktemplate.FieldID {
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
		_spec.SetField(tasktemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(tasktemplate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(tasktemplate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(tasktemplate.FieldParentID, field.TypeString, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(tasktemplate.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(tasktemplate.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(tasktemplate.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Stages(); ok {
		_spec.SetField(tasktemplate.FieldStages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tasktemplate.FieldStages, value)
		})
	}
	if value, ok := _u.mutation.Gates(); ok {
		_spec.SetField(tasktemplate.FieldGates, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGates(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tasktemplate.FieldGates, value)
		})
	}
	if _u.mutation.GatesCleared() {
		_spec.ClearField(tasktemplate.FieldGates, field.TypeJSON)
	}
	if value, ok := _u.mutation.Interactive(); ok {
		_spec.SetField(tasktemplate.FieldInteractive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(tasktemplate.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TaskTemplate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tasktemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
