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
	"github.com/stewardhq/steward/ent/humangate"
	"github.com/stewardhq/steward/ent/predicate"
)

// HumanGateUpdate is the builder for updating HumanGate entities.
type HumanGateUpdate struct {
	config
	hooks    []Hook
	mutation *HumanGateMutation
}

// Where appends a list predicates to the HumanGateUpdate builder.
func (_u *HumanGateUpdate) Where(ps ...predicate.HumanGate) *HumanGateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStageName sets the "stage_name" field.
func (_u *HumanGateUpdate) SetStageName(v string) *HumanGateUpdate {
	_u.mutation.SetStageName(v)
	return _u
}

// SetNillableStageName sets the "stage_name" field if the given value is not nil.
func (_u *HumanGateUpdate) SetNillableStageName(v *string) *HumanGateUpdate {
	if v != nil {
		_u.SetStageName(*v)
	}
	return _u
}

// SetAgentRole sets the "agent_role" field.
func (_u *HumanGateUpdate) SetAgentRole(v string) *HumanGateUpdate {
	_u.mutation.SetAgentRole(v)
	return _u
}

// SetNillableAgentRole sets the "agent_role" field if the given value is not nil.
func (_u *HumanGateUpdate) SetNillableAgentRole(v *string) *HumanGateUpdate {
	if v != nil {
		_u.SetAgentRole(*v)
	}
	return _u
}

// ClearAgentRole clears the value of the "agent_role" field.
func (_u *HumanGateUpdate) ClearAgentRole() *HumanGateUpdate {
	_u.mutation.ClearAgentRole()
	return _u
}

// SetGateType sets the "gate_type" field.
func (_u *HumanGateUpdate) SetGateType(v humangate.GateType) *HumanGateUpdate {
	_u.mutation.SetGateType(v)
	return _u
}

// SetNillableGateType sets the "gate_type" field if the given value is not nil.
func (_u *HumanGateUpdate) SetNillableGateType(v *humangate.GateType) *HumanGateUpdate {
	if v != nil {
		_u.SetGateType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *HumanGateUpdate) SetStatus(v humangate.Status) *HumanGateUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *HumanGateUpdate) SetNillableStatus(v *humangate.Status) *HumanGateUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReviewer sets the "reviewer" field.
func (_u *HumanGateUpdate) SetReviewer(v string) *HumanGateUpdate {
	_u.mutation.SetReviewer(v)
	return _u
}

// SetNillableReviewer sets the "reviewer" field if the given value is not nil.
func (_u *HumanGateUpdate) SetNillableReviewer(v *string) *HumanGateUpdate {
	if v != nil {
		_u.SetReviewer(*v)
	}
	return _u
}

// ClearReviewer clears the value of the "reviewer" field.
func (_u *HumanGateUpdate) ClearReviewer() *HumanGateUpdate {
	_u.mutation.ClearReviewer()
	return _u
}

// SetComment sets the "comment" field.
func (_u *HumanGateUpdate) SetComment(v string) *HumanGateUpdate {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *HumanGateUpdate) SetNillableComment(v *string) *HumanGateUpdate {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *HumanGateUpdate) ClearComment() *HumanGateUpdate {
	_u.mutation.ClearComment()
	return _u
}

// SetRevisedContent sets the "revised_content" field.
func (_u *HumanGateUpdate) SetRevisedContent(v string) *HumanGateUpdate {
	_u.mutation.SetRevisedContent(v)
	return _u
}

// SetNillableRevisedContent sets the "revised_content" field if the given value is not nil.
func (_u *HumanGateUpdate) SetNillableRevisedContent(v *string) *HumanGateUpdate {
	if v != nil {
		_u.SetRevisedContent(*v)
	}
	return _u
}

// ClearRevisedContent clears the value of the "revised_content" field.
func (_u *HumanGateUpdate) ClearRevisedContent() *HumanGateUpdate {
	_u.mutation.ClearRevisedContent()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *HumanGateUpdate) SetRetryCount(v int) *HumanGateUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *HumanGateUpdate) SetNillableRetryCount(v *int) *HumanGateUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *HumanGateUpdate) AddRetryCount(v int) *HumanGateUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetIsDynamic sets the "is_dynamic" field.
func (_u *HumanGateUpdate) SetIsDynamic(v bool) *HumanGateUpdate {
	_u.mutation.SetIsDynamic(v)
	return _u
}

// SetNillableIsDynamic sets the "is_dynamic" field if the given value is not nil.
func (_u *HumanGateUpdate) SetNillableIsDynamic(v *bool) *HumanGateUpdate {
	if v != nil {
		_u.SetIsDynamic(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *HumanGateUpdate) SetCreatedAt(v time.Time) *HumanGateUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *HumanGateUpdate) SetNillableCreatedAt(v *time.Time) *HumanGateUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *HumanGateUpdate) SetReviewedAt(v time.Time) *HumanGateUpdate {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *HumanGateUpdate) SetNillableReviewedAt(v *time.Time) *HumanGateUpdate {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *HumanGateUpdate) ClearReviewedAt() *HumanGateUpdate {
	_u.mutation.ClearReviewedAt()
	return _u
}

// Mutation returns the HumanGateMutation object of the builder.
func (_u *HumanGateUpdate) Mutation() *HumanGateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HumanGateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HumanGateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HumanGateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HumanGateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HumanGateUpdate) check() error {
	if v, ok := _u.mutation.GateType(); ok {
		if err := humangate.GateTypeValidator(v); err != nil {
			return &ValidationError{Name: "gate_type", err: fmt.Errorf(`ent: validator failed for field "HumanGate.gate_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := humangate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "HumanGate.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HumanGate.task"`)
	}
	return nil
}

func (_u *HumanGateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(humangate.Table, humangate.Columns, sqlgraph.NewFieldSpec(humangate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StageName(); ok {
		_spec.SetField(humangate.FieldStageName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentRole(); ok {
		_spec.SetField(humangate.FieldAgentRole, field.TypeString, value)
	}
	if _u.mutation.AgentRoleCleared() {
		_spec.ClearField(humangate.FieldAgentRole, field.TypeString)
	}
	if value, ok := _u.mutation.GateType(); ok {
		_spec.SetField(humangate.FieldGateType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(humangate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reviewer(); ok {
		_spec.SetField(humangate.FieldReviewer, field.TypeString, value)
	}
	if _u.mutation.ReviewerCleared() {
		_spec.ClearField(humangate.FieldReviewer, field.TypeString)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(humangate.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(humangate.FieldComment, field.TypeString)
	}
	if value, ok := _u.mutation.RevisedContent(); ok {
		_spec.SetField(humangate.FieldRevisedContent, field.TypeString, value)
	}
	if _u.mutation.RevisedContentCleared() {
		_spec.ClearField(humangate.FieldRevisedContent, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(humangate.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(humangate.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsDynamic(); ok {
		_spec.SetField(humangate.FieldIsDynamic, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(humangate.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(humangate.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(humangate.FieldReviewedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{humangate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HumanGateUpdateOne is the builder for updating a single HumanGate entity.
type HumanGateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HumanGateMutation
}

// SetStageName sets the "stage_name" field.
func (_u *HumanGateUpdateOne) SetStageName(v string) *HumanGateUpdateOne {
	_u.mutation.SetStageName(v)
	return _u
}

// SetNillableStageName sets the "stage_name" field if the given value is not nil.
func (_u *HumanGateUpdateOne) SetNillableStageName(v *string) *HumanGateUpdateOne {
	if v != nil {
		_u.SetStageName(*v)
	}
	return _u
}

// SetAgentRole sets the "agent_role" field.
func (_u *HumanGateUpdateOne) SetAgentRole(v string) *HumanGateUpdateOne {
	_u.mutation.SetAgentRole(v)
	return _u
}

// SetNillableAgentRole sets the "agent_role" field if the given value is not nil.
func (_u *HumanGateUpdateOne) SetNillableAgentRole(v *string) *HumanGateUpdateOne {
	if v != nil {
		_u.SetAgentRole(*v)
	}
	return _u
}

// ClearAgentRole clears the value of the "agent_role" field.
func (_u *HumanGateUpdateOne) ClearAgentRole() *HumanGateUpdateOne {
	_u.mutation.ClearAgentRole()
	return _u
}

// SetGateType sets the "gate_type" field.
func (_u *HumanGateUpdateOne) SetGateType(v humangate.GateType) *HumanGateUpdateOne {
	_u.mutation.SetGateType(v)
	return _u
}

// SetNillableGateType sets the "gate_type" field if the given value is not nil.
func (_u *HumanGateUpdateOne) SetNillableGateType(v *humangate.GateType) *HumanGateUpdateOne {
	if v != nil {
		_u.SetGateType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *HumanGateUpdateOne) SetStatus(v humangate.Status) *HumanGateUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *HumanGateUpdateOne) SetNillableStatus(v *humangate.Status) *HumanGateUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReviewer sets the "reviewer" field.
func (_u *HumanGateUpdateOne) SetReviewer(v string) *HumanGateUpdateOne {
	_u.mutation.SetReviewer(v)
	return _u
}

// SetNillableReviewer sets the "reviewer" field if the given value is not nil.
func (_u *HumanGateUpdateOne) SetNillableReviewer(v *string) *HumanGateUpdateOne {
	if v != nil {
		_u.SetReviewer(*v)
	}
	return _u
}

// ClearReviewer clears the value of the "reviewer" field.
func (_u *HumanGateUpdateOne) ClearReviewer() *HumanGateUpdateOne {
	_u.mutation.ClearReviewer()
	return _u
}

// SetComment sets the "comment" field.
func (_u *HumanGateUpdateOne) SetComment(v string) *HumanGateUpdateOne {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *HumanGateUpdateOne) SetNillableComment(v *string) *HumanGateUpdateOne {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *HumanGateUpdateOne) ClearComment() *HumanGateUpdateOne {
	_u.mutation.ClearComment()
	return _u
}

// SetRevisedContent sets the "revised_content" field.
func (_u *HumanGateUpdateOne) SetRevisedContent(v string) *HumanGateUpdateOne {
	_u.mutation.SetRevisedContent(v)
	return _u
}

// SetNillableRevisedContent sets the "revised_content" field if the given value is not nil.
func (_u *HumanGateUpdateOne) SetNillableRevisedContent(v *string) *HumanGateUpdateOne {
	if v != nil {
		_u.SetRevisedContent(*v)
	}
	return _u
}

// ClearRevisedContent clears the value of the "revised_content" field.
func (_u *HumanGateUpdateOne) ClearRevisedContent() *HumanGateUpdateOne {
	_u.mutation.ClearRevisedContent()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *HumanGateUpdateOne) SetRetryCount(v int) *HumanGateUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *HumanGateUpdateOne) SetNillableRetryCount(v *int) *HumanGateUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *HumanGateUpdateOne) AddRetryCount(v int) *HumanGateUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetIsDynamic sets the "is_dynamic" field.
func (_u *HumanGateUpdateOne) SetIsDynamic(v bool) *HumanGateUpdateOne {
	_u.mutation.SetIsDynamic(v)
	return _u
}

// SetNillableIsDynamic sets the "is_dynamic" field if the given value is not nil.
func (_u *HumanGateUpdateOne) SetNillableIsDynamic(v *bool) *HumanGateUpdateOne {
	if v != nil {
		_u.SetIsDynamic(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *HumanGateUpdateOne) SetCreatedAt(v time.Time) *HumanGateUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *HumanGateUpdateOne) SetNillableCreatedAt(v *time.Time) *HumanGateUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *HumanGateUpdateOne) SetReviewedAt(v time.Time) *HumanGateUpdateOne {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *HumanGateUpdateOne) SetNillableReviewedAt(v *time.Time) *HumanGateUpdateOne {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *HumanGateUpdateOne) ClearReviewedAt() *HumanGateUpdateOne {
	_u.mutation.ClearReviewedAt()
	return _u
}

// Mutation returns the HumanGateMutation object of the builder.
func (_u *HumanGateUpdateOne) Mutation() *HumanGateMutation {
	return _u.mutation
}

// Where appends a list predicates to the HumanGateUpdate builder.
func (_u *HumanGateUpdateOne) Where(ps ...predicate.HumanGate) *HumanGateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HumanGateUpdateOne) Select(field string, fields ...string) *HumanGateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HumanGate entity.
func (_u *HumanGateUpdateOne) Save(ctx context.Context) (*HumanGate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HumanGateUpdateOne) SaveX(ctx context.Context) *HumanGate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HumanGateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HumanGateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HumanGateUpdateOne) check() error {
	if v, ok := _u.mutation.GateType(); ok {
		if err := humangate.GateTypeValidator(v); err != nil {
			return &ValidationError{Name: "gate_type", err: fmt.Errorf(`ent: validator failed for field "HumanGate.gate_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := humangate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "HumanGate.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HumanGate.task"`)
	}
	return nil
}

func (_u *HumanGateUpdateOne) sqlSave(ctx context.Context) (_node *HumanGate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(humangate.Table, humangate.Columns, sqlgraph.NewFieldSpec(humangate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HumanGate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, humangate.FieldID)
		for _, f := range fields {
			if !humangate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != humangate.FieldID {
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
	if value, ok := _u.mutation.StageName(); ok {
		_spec.SetField(humangate.FieldStageName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentRole(); ok {
		_spec.SetField(humangate.FieldAgentRole, field.TypeString, value)
	}
	if _u.mutation.AgentRoleCleared() {
		_spec.ClearField(humangate.FieldAgentRole, field.TypeString)
	}
	if value, ok := _u.mutation.GateType(); ok {
		_spec.SetField(humangate.FieldGateType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(humangate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reviewer(); ok {
		_spec.SetField(humangate.FieldReviewer, field.TypeString, value)
	}
	if _u.mutation.ReviewerCleared() {
		_spec.ClearField(humangate.FieldReviewer, field.TypeString)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(humangate.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(humangate.FieldComment, field.TypeString)
	}
	if value, ok := _u.mutation.RevisedContent(); ok {
		_spec.SetField(humangate.FieldRevisedContent, field.TypeString, value)
	}
	if _u.mutation.RevisedContentCleared() {
		_spec.ClearField(humangate.FieldRevisedContent, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(humangate.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(humangate.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsDynamic(); ok {
		_spec.SetField(humangate.FieldIsDynamic, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(humangate.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(humangate.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(humangate.FieldReviewedAt, field.TypeTime)
	}
	_node = &HumanGate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{humangate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
