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
	"github.com/stewardhq/steward/ent/stagelog"
)

// StageLogUpdate is the builder for updating StageLog entities.
type StageLogUpdate struct {
	config
	hooks    []Hook
	mutation *StageLogMutation
}

// Where appends a list predicates to the StageLogUpdate builder.
func (_u *StageLogUpdate) Where(ps ...predicate.StageLog) *StageLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStageID sets the "stage_id" field.
func (_u *StageLogUpdate) SetStageID(v string) *StageLogUpdate {
	_u.mutation.SetStageID(v)
	return _u
}

// SetNillableStageID sets the "stage_id" field if the given value is not nil.
func (_u *StageLogUpdate) SetNillableStageID(v *string) *StageLogUpdate {
	if v != nil {
		_u.SetStageID(*v)
	}
	return _u
}

// ClearStageID clears the value of the "stage_id" field.
func (_u *StageLogUpdate) ClearStageID() *StageLogUpdate {
	_u.mutation.ClearStageID()
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *StageLogUpdate) SetCorrelationID(v string) *StageLogUpdate {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *StageLogUpdate) SetNillableCorrelationID(v *string) *StageLogUpdate {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (_u *StageLogUpdate) ClearCorrelationID() *StageLogUpdate {
	_u.mutation.ClearCorrelationID()
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *StageLogUpdate) SetSequence(v int) *StageLogUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *StageLogUpdate) SetNillableSequence(v *int) *StageLogUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *StageLogUpdate) AddSequence(v int) *StageLogUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *StageLogUpdate) SetEventType(v string) *StageLogUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *StageLogUpdate) SetNillableEventType(v *string) *StageLogUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *StageLogUpdate) SetSource(v stagelog.Source) *StageLogUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *StageLogUpdate) SetNillableSource(v *stagelog.Source) *StageLogUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *StageLogUpdate) SetStatus(v stagelog.Status) *StageLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StageLogUpdate) SetNillableStatus(v *stagelog.Status) *StageLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRequest sets the "request" field.
func (_u *StageLogUpdate) SetRequest(v string) *StageLogUpdate {
	_u.mutation.SetRequest(v)
	return _u
}

// SetNillableRequest sets the "request" field if the given value is not nil.
func (_u *StageLogUpdate) SetNillableRequest(v *string) *StageLogUpdate {
	if v != nil {
		_u.SetRequest(*v)
	}
	return _u
}

// ClearRequest clears the value of the "request" field.
func (_u *StageLogUpdate) ClearRequest() *StageLogUpdate {
	_u.mutation.ClearRequest()
	return _u
}

// SetResponse sets the "response" field.
func (_u *StageLogUpdate) SetResponse(v string) *StageLogUpdate {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *StageLogUpdate) SetNillableResponse(v *string) *StageLogUpdate {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *StageLogUpdate) ClearResponse() *StageLogUpdate {
	_u.mutation.ClearResponse()
	return _u
}

// SetCommand sets the "command" field.
func (_u *StageLogUpdate) SetCommand(v string) *StageLogUpdate {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *StageLogUpdate) SetNillableCommand(v *string) *StageLogUpdate {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// ClearCommand clears the value of the "command" field.
func (_u *StageLogUpdate) ClearCommand() *StageLogUpdate {
	_u.mutation.ClearCommand()
	return _u
}

// SetCommandArgs sets the "command_args" field.
func (_u *StageLogUpdate) SetCommandArgs(v map[string]interface{}) *StageLogUpdate {
	_u.mutation.SetCommandArgs(v)
	return _u
}

// ClearCommandArgs clears the value of the "command_args" field.
func (_u *StageLogUpdate) ClearCommandArgs() *StageLogUpdate {
	_u.mutation.ClearCommandArgs()
	return _u
}

// SetWorkspace sets the "workspace" field.
func (_u *StageLogUpdate) SetWorkspace(v string) *StageLogUpdate {
	_u.mutation.SetWorkspace(v)
	return _u
}

// SetNillableWorkspace sets the "workspace" field if the given value is not nil.
func (_u *StageLogUpdate) SetNillableWorkspace(v *string) *StageLogUpdate {
	if v != nil {
		_u.SetWorkspace(*v)
	}
	return _u
}

// ClearWorkspace clears the value of the "workspace" field.
func (_u *StageLogUpdate) ClearWorkspace() *StageLogUpdate {
	_u.mutation.ClearWorkspace()
	return _u
}

// SetExecutionMode sets the "execution_mode" field.
func (_u *StageLogUpdate) SetExecutionMode(v string) *StageLogUpdate {
	_u.mutation.SetExecutionMode(v)
	return _u
}

// SetNillableExecutionMode sets the "execution_mode" field if the given value is not nil.
func (_u *StageLogUpdate) SetNillableExecutionMode(v *string) *StageLogUpdate {
	if v != nil {
		_u.SetExecutionMode(*v)
	}
	return _u
}

// ClearExecutionMode clears the value of the "execution_mode" field.
func (_u *StageLogUpdate) ClearExecutionMode() *StageLogUpdate {
	_u.mutation.ClearExecutionMode()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *StageLogUpdate) SetDurationMs(v int64) *StageLogUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *StageLogUpdate) SetNillableDurationMs(v *int64) *StageLogUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *StageLogUpdate) AddDurationMs(v int64) *StageLogUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *StageLogUpdate) ClearDurationMs() *StageLogUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetResult sets the "result" field.
func (_u *StageLogUpdate) SetResult(v string) *StageLogUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *StageLogUpdate) SetNillableResult(v *string) *StageLogUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *StageLogUpdate) ClearResult() *StageLogUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *StageLogUpdate) SetSummary(v string) *StageLogUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *StageLogUpdate) SetNillableSummary(v *string) *StageLogUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *StageLogUpdate) ClearSummary() *StageLogUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetTruncated sets the "truncated" field.
func (_u *StageLogUpdate) SetTruncated(v bool) *StageLogUpdate {
	_u.mutation.SetTruncated(v)
	return _u
}

// SetNillableTruncated sets the "truncated" field if the given value is not nil.
func (_u *StageLogUpdate) SetNillableTruncated(v *bool) *StageLogUpdate {
	if v != nil {
		_u.SetTruncated(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StageLogUpdate) SetCreatedAt(v time.Time) *StageLogUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StageLogUpdate) SetNillableCreatedAt(v *time.Time) *StageLogUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StageLogUpdate) SetUpdatedAt(v time.Time) *StageLogUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *StageLogUpdate) SetNillableUpdatedAt(v *time.Time) *StageLogUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// ClearUpdatedAt clears the value of the "updated_at" field.
func (_u *StageLogUpdate) ClearUpdatedAt() *StageLogUpdate {
	_u.mutation.ClearUpdatedAt()
	return _u
}

// Mutation returns the StageLogMutation object of the builder.
func (_u *StageLogUpdate) Mutation() *StageLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StageLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StageLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageLogUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := stagelog.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "StageLog.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := stagelog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StageLog.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StageLog.task"`)
	}
	return nil
}

func (_u *StageLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagelog.Table, stagelog.Columns, sqlgraph.NewFieldSpec(stagelog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StageID(); ok {
		_spec.SetField(stagelog.FieldStageID, field.TypeString, value)
	}
	if _u.mutation.StageIDCleared() {
		_spec.ClearField(stagelog.FieldStageID, field.TypeString)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(stagelog.FieldCorrelationID, field.TypeString, value)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(stagelog.FieldCorrelationID, field.TypeString)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(stagelog.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(stagelog.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(stagelog.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(stagelog.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(stagelog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Request(); ok {
		_spec.SetField(stagelog.FieldRequest, field.TypeString, value)
	}
	if _u.mutation.RequestCleared() {
		_spec.ClearField(stagelog.FieldRequest, field.TypeString)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(stagelog.FieldResponse, field.TypeString, value)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(stagelog.FieldResponse, field.TypeString)
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(stagelog.FieldCommand, field.TypeString, value)
	}
	if _u.mutation.CommandCleared() {
		_spec.ClearField(stagelog.FieldCommand, field.TypeString)
	}
	if value, ok := _u.mutation.CommandArgs(); ok {
		_spec.SetField(stagelog.FieldCommandArgs, field.TypeJSON, value)
	}
	if _u.mutation.CommandArgsCleared() {
		_spec.ClearField(stagelog.FieldCommandArgs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Workspace(); ok {
		_spec.SetField(stagelog.FieldWorkspace, field.TypeString, value)
	}
	if _u.mutation.WorkspaceCleared() {
		_spec.ClearField(stagelog.FieldWorkspace, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutionMode(); ok {
		_spec.SetField(stagelog.FieldExecutionMode, field.TypeString, value)
	}
	if _u.mutation.ExecutionModeCleared() {
		_spec.ClearField(stagelog.FieldExecutionMode, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(stagelog.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(stagelog.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(stagelog.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(stagelog.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(stagelog.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(stagelog.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(stagelog.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Truncated(); ok {
		_spec.SetField(stagelog.FieldTruncated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(stagelog.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stagelog.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UpdatedAtCleared() {
		_spec.ClearField(stagelog.FieldUpdatedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagelog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StageLogUpdateOne is the builder for updating a single StageLog entity.
type StageLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StageLogMutation
}

// SetStageID sets the "stage_id" field.
func (_u *StageLogUpdateOne) SetStageID(v string) *StageLogUpdateOne {
	_u.mutation.SetStageID(v)
	return _u
}

// SetNillableStageID sets the "stage_id" field if the given value is not nil.
func (_u *StageLogUpdateOne) SetNillableStageID(v *string) *StageLogUpdateOne {
	if v != nil {
		_u.SetStageID(*v)
	}
	return _u
}

// ClearStageID clears the value of the "stage_id" field.
func (_u *StageLogUpdateOne) ClearStageID() *StageLogUpdateOne {
	_u.mutation.ClearStageID()
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *StageLogUpdateOne) SetCorrelationID(v string) *StageLogUpdateOne {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *StageLogUpdateOne) SetNillableCorrelationID(v *string) *StageLogUpdateOne {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (_u *StageLogUpdateOne) ClearCorrelationID() *StageLogUpdateOne {
	_u.mutation.ClearCorrelationID()
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *StageLogUpdateOne) SetSequence(v int) *StageLogUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *StageLogUpdateOne) SetNillableSequence(v *int) *StageLogUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *StageLogUpdateOne) AddSequence(v int) *StageLogUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *StageLogUpdateOne) SetEventType(v string) *StageLogUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *StageLogUpdateOne) SetNillableEventType(v *string) *StageLogUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *StageLogUpdateOne) SetSource(v stagelog.Source) *StageLogUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *StageLogUpdateOne) SetNillableSource(v *stagelog.Source) *StageLogUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *StageLogUpdateOne) SetStatus(v stagelog.Status) *StageLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StageLogUpdateOne) SetNillableStatus(v *stagelog.Status) *StageLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRequest sets the "request" field.
func (_u *StageLogUpdateOne) SetRequest(v string) *StageLogUpdateOne {
	_u.mutation.SetRequest(v)
	return _u
}

// SetNillableRequest sets the "request" field if the given value is not nil.
func (_u *StageLogUpdateOne) SetNillableRequest(v *string) *StageLogUpdateOne {
	if v != nil {
		_u.SetRequest(*v)
	}
	return _u
}

// ClearRequest clears the value of the "request" field.
func (_u *StageLogUpdateOne) ClearRequest() *StageLogUpdateOne {
	_u.mutation.ClearRequest()
	return _u
}

// SetResponse sets the "response" field.
func (_u *StageLogUpdateOne) SetResponse(v string) *StageLogUpdateOne {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *StageLogUpdateOne) SetNillableResponse(v *string) *StageLogUpdateOne {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *StageLogUpdateOne) ClearResponse() *StageLogUpdateOne {
	_u.mutation.ClearResponse()
	return _u
}

// SetCommand sets the "command" field.
func (_u *StageLogUpdateOne) SetCommand(v string) *StageLogUpdateOne {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *StageLogUpdateOne) SetNillableCommand(v *string) *StageLogUpdateOne {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// ClearCommand clears the value of the "command" field.
func (_u *StageLogUpdateOne) ClearCommand() *StageLogUpdateOne {
	_u.mutation.ClearCommand()
	return _u
}

// SetCommandArgs sets the "command_args" field.
func (_u *StageLogUpdateOne) SetCommandArgs(v map[string]interface{}) *StageLogUpdateOne {
	_u.mutation.SetCommandArgs(v)
	return _u
}

// ClearCommandArgs clears the value of the "command_args" field.
func (_u *StageLogUpdateOne) ClearCommandArgs() *StageLogUpdateOne {
	_u.mutation.ClearCommandArgs()
	return _u
}

// SetWorkspace sets the "workspace" field.
func (_u *StageLogUpdateOne) SetWorkspace(v string) *StageLogUpdateOne {
	_u.mutation.SetWorkspace(v)
	return _u
}

// SetNillableWorkspace sets the "workspace" field if the given value is not nil.
func (_u *StageLogUpdateOne) SetNillableWorkspace(v *string) *StageLogUpdateOne {
	if v != nil {
		_u.SetWorkspace(*v)
	}
	return _u
}

// ClearWorkspace clears the value of the "workspace" field.
func (_u *StageLogUpdateOne) ClearWorkspace() *StageLogUpdateOne {
	_u.mutation.ClearWorkspace()
	return _u
}

// SetExecutionMode sets the "execution_mode" field.
func (_u *StageLogUpdateOne) SetExecutionMode(v string) *StageLogUpdateOne {
	_u.mutation.SetExecutionMode(v)
	return _u
}

// SetNillableExecutionMode sets the "execution_mode" field if the given value is not nil.
func (_u *StageLogUpdateOne) SetNillableExecutionMode(v *string) *StageLogUpdateOne {
	if v != nil {
		_u.SetExecutionMode(*v)
	}
	return _u
}

// ClearExecutionMode clears the value of the "execution_mode" field.
func (_u *StageLogUpdateOne) ClearExecutionMode() *StageLogUpdateOne {
	_u.mutation.ClearExecutionMode()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *StageLogUpdateOne) SetDurationMs(v int64) *StageLogUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *StageLogUpdateOne) SetNillableDurationMs(v *int64) *StageLogUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *StageLogUpdateOne) AddDurationMs(v int64) *StageLogUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *StageLogUpdateOne) ClearDurationMs() *StageLogUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetResult sets the "result" field.
func (_u *StageLogUpdateOne) SetResult(v string) *StageLogUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *StageLogUpdateOne) SetNillableResult(v *string) *StageLogUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *StageLogUpdateOne) ClearResult() *StageLogUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *StageLogUpdateOne) SetSummary(v string) *StageLogUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *StageLogUpdateOne) SetNillableSummary(v *string) *StageLogUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *StageLogUpdateOne) ClearSummary() *StageLogUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetTruncated sets the "truncated" field.
func (_u *StageLogUpdateOne) SetTruncated(v bool) *StageLogUpdateOne {
	_u.mutation.SetTruncated(v)
	return _u
}

// SetNillableTruncated sets the "truncated" field if the given value is not nil.
func (_u *StageLogUpdateOne) SetNillableTruncated(v *bool) *StageLogUpdateOne {
	if v != nil {
		_u.SetTruncated(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StageLogUpdateOne) SetCreatedAt(v time.Time) *StageLogUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StageLogUpdateOne) SetNillableCreatedAt(v *time.Time) *StageLogUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StageLogUpdateOne) SetUpdatedAt(v time.Time) *StageLogUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *StageLogUpdateOne) SetNillableUpdatedAt(v *time.Time) *StageLogUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// ClearUpdatedAt clears the value of the "updated_at" field.
func (_u *StageLogUpdateOne) ClearUpdatedAt() *StageLogUpdateOne {
	_u.mutation.ClearUpdatedAt()
	return _u
}

// Mutation returns the StageLogMutation object of the builder.
func (_u *StageLogUpdateOne) Mutation() *StageLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the StageLogUpdate builder.
func (_u *StageLogUpdateOne) Where(ps ...predicate.StageLog) *StageLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StageLogUpdateOne) Select(field string, fields ...string) *StageLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StageLog entity.
func (_u *StageLogUpdateOne) Save(ctx context.Context) (*StageLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageLogUpdateOne) SaveX(ctx context.Context) *StageLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StageLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageLogUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := stagelog.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "StageLog.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := stagelog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StageLog.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StageLog.task"`)
	}
	return nil
}

func (_u *StageLogUpdateOne) sqlSave(ctx context.Context) (_node *StageLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagelog.Table, stagelog.Columns, sqlgraph.NewFieldSpec(stagelog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StageLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stagelog.FieldID)
		for _, f := range fields {
			if !stagelog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stagelog.FieldID {
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
	if value, ok := _u.mutation.StageID(); ok {
		_spec.SetField(stagelog.FieldStageID, field.TypeString, value)
	}
	if _u.mutation.StageIDCleared() {
		_spec.ClearField(stagelog.FieldStageID, field.TypeString)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(stagelog.FieldCorrelationID, field.TypeString, value)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(stagelog.FieldCorrelationID, field.TypeString)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(stagelog.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(stagelog.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(stagelog.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(stagelog.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(stagelog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Request(); ok {
		_spec.SetField(stagelog.FieldRequest, field.TypeString, value)
	}
	if _u.mutation.RequestCleared() {
		_spec.ClearField(stagelog.FieldRequest, field.TypeString)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(stagelog.FieldResponse, field.TypeString, value)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(stagelog.FieldResponse, field.TypeString)
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(stagelog.FieldCommand, field.TypeString, value)
	}
	if _u.mutation.CommandCleared() {
		_spec.ClearField(stagelog.FieldCommand, field.TypeString)
	}
	if value, ok := _u.mutation.CommandArgs(); ok {
		_spec.SetField(stagelog.FieldCommandArgs, field.TypeJSON, value)
	}
	if _u.mutation.CommandArgsCleared() {
		_spec.ClearField(stagelog.FieldCommandArgs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Workspace(); ok {
		_spec.SetField(stagelog.FieldWorkspace, field.TypeString, value)
	}
	if _u.mutation.WorkspaceCleared() {
		_spec.ClearField(stagelog.FieldWorkspace, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutionMode(); ok {
		_spec.SetField(stagelog.FieldExecutionMode, field.TypeString, value)
	}
	if _u.mutation.ExecutionModeCleared() {
		_spec.ClearField(stagelog.FieldExecutionMode, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(stagelog.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(stagelog.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(stagelog.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(stagelog.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(stagelog.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(stagelog.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(stagelog.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Truncated(); ok {
		_spec.SetField(stagelog.FieldTruncated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(stagelog.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stagelog.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UpdatedAtCleared() {
		_spec.ClearField(stagelog.FieldUpdatedAt, field.TypeTime)
	}
	_node = &StageLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagelog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
