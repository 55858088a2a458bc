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
	"github.com/stewardhq/steward/ent/taskstage"
	"github.com/stewardhq/steward/pkg/models"
)

// TaskStageUpdate is the builder for updating TaskStage entities.
type TaskStageUpdate struct {
	config
	hooks    []Hook
	mutation *TaskStageMutation
}

// Where appends a list predicates to the TaskStageUpdate builder.
func (_u *TaskStageUpdate) Where(ps ...predicate.TaskStage) *TaskStageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *TaskStageUpdate) SetName(v string) *TaskStageUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TaskStageUpdate) SetNillableName(v *string) *TaskStageUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAgentRole sets the "agent_role" field.
func (_u *TaskStageUpdate) SetAgentRole(v string) *TaskStageUpdate {
	_u.mutation.SetAgentRole(v)
	return _u
}

// SetNillableAgentRole sets the "agent_role" field if the given value is not nil.
func (_u *TaskStageUpdate) SetNillableAgentRole(v *string) *TaskStageUpdate {
	if v != nil {
		_u.SetAgentRole(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskStageUpdate) SetStatus(v taskstage.Status) *TaskStageUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskStageUpdate) SetNillableStatus(v *taskstage.Status) *TaskStageUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExecOrder sets the "exec_order" field.
func (_u *TaskStageUpdate) SetExecOrder(v int) *TaskStageUpdate {
	_u.mutation.ResetExecOrder()
	_u.mutation.SetExecOrder(v)
	return _u
}

// SetNillableExecOrder sets the "exec_order" field if the given value is not nil.
func (_u *TaskStageUpdate) SetNillableExecOrder(v *int) *TaskStageUpdate {
	if v != nil {
		_u.SetExecOrder(*v)
	}
	return _u
}

// AddExecOrder adds value to the "exec_order" field.
func (_u *TaskStageUpdate) AddExecOrder(v int) *TaskStageUpdate {
	_u.mutation.AddExecOrder(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskStageUpdate) SetStartedAt(v time.Time) *TaskStageUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskStageUpdate) SetNillableStartedAt(v *time.Time) *TaskStageUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskStageUpdate) ClearStartedAt() *TaskStageUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskStageUpdate) SetCompletedAt(v time.Time) *TaskStageUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskStageUpdate) SetNillableCompletedAt(v *time.Time) *TaskStageUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskStageUpdate) ClearCompletedAt() *TaskStageUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *TaskStageUpdate) SetDurationMs(v int64) *TaskStageUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *TaskStageUpdate) SetNillableDurationMs(v *int64) *TaskStageUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *TaskStageUpdate) AddDurationMs(v int64) *TaskStageUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *TaskStageUpdate) ClearDurationMs() *TaskStageUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *TaskStageUpdate) SetTokensUsed(v int) *TaskStageUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *TaskStageUpdate) SetNillableTokensUsed(v *int) *TaskStageUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *TaskStageUpdate) AddTokensUsed(v int) *TaskStageUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetTurnsUsed sets the "turns_used" field.
func (_u *TaskStageUpdate) SetTurnsUsed(v int) *TaskStageUpdate {
	_u.mutation.ResetTurnsUsed()
	_u.mutation.SetTurnsUsed(v)
	return _u
}

// SetNillableTurnsUsed sets the "turns_used" field if the given value is not nil.
func (_u *TaskStageUpdate) SetNillableTurnsUsed(v *int) *TaskStageUpdate {
	if v != nil {
		_u.SetTurnsUsed(*v)
	}
	return _u
}

// AddTurnsUsed adds value to the "turns_used" field.
func (_u *TaskStageUpdate) AddTurnsUsed(v int) *TaskStageUpdate {
	_u.mutation.AddTurnsUsed(v)
	return _u
}

// SetOutput sets the "output" field.
func (_u *TaskStageUpdate) SetOutput(v string) *TaskStageUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *TaskStageUpdate) SetNillableOutput(v *string) *TaskStageUpdate {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *TaskStageUpdate) ClearOutput() *TaskStageUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetStructured sets the "structured" field.
func (_u *TaskStageUpdate) SetStructured(v *models.StructuredOutput) *TaskStageUpdate {
	_u.mutation.SetStructured(v)
	return _u
}

// ClearStructured clears the value of the "structured" field.
func (_u *TaskStageUpdate) ClearStructured() *TaskStageUpdate {
	_u.mutation.ClearStructured()
	return _u
}

// SetError sets the "error" field.
func (_u *TaskStageUpdate) SetError(v string) *TaskStageUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *TaskStageUpdate) SetNillableError(v *string) *TaskStageUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *TaskStageUpdate) ClearError() *TaskStageUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetFailureCategory sets the "failure_category" field.
func (_u *TaskStageUpdate) SetFailureCategory(v taskstage.FailureCategory) *TaskStageUpdate {
	_u.mutation.SetFailureCategory(v)
	return _u
}

// SetNillableFailureCategory sets the "failure_category" field if the given value is not nil.
func (_u *TaskStageUpdate) SetNillableFailureCategory(v *taskstage.FailureCategory) *TaskStageUpdate {
	if v != nil {
		_u.SetFailureCategory(*v)
	}
	return _u
}

// ClearFailureCategory clears the value of the "failure_category" field.
func (_u *TaskStageUpdate) ClearFailureCategory() *TaskStageUpdate {
	_u.mutation.ClearFailureCategory()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *TaskStageUpdate) SetConfidence(v float64) *TaskStageUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *TaskStageUpdate) SetNillableConfidence(v *float64) *TaskStageUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *TaskStageUpdate) AddConfidence(v float64) *TaskStageUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *TaskStageUpdate) ClearConfidence() *TaskStageUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *TaskStageUpdate) SetRetryCount(v int) *TaskStageUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *TaskStageUpdate) SetNillableRetryCount(v *int) *TaskStageUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *TaskStageUpdate) AddRetryCount(v int) *TaskStageUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetExecutionCount sets the "execution_count" field.
func (_u *TaskStageUpdate) SetExecutionCount(v int) *TaskStageUpdate {
	_u.mutation.ResetExecutionCount()
	_u.mutation.SetExecutionCount(v)
	return _u
}

// SetNillableExecutionCount sets the "execution_count" field if the given value is not nil.
func (_u *TaskStageUpdate) SetNillableExecutionCount(v *int) *TaskStageUpdate {
	if v != nil {
		_u.SetExecutionCount(*v)
	}
	return _u
}

// AddExecutionCount adds value to the "execution_count" field.
func (_u *TaskStageUpdate) AddExecutionCount(v int) *TaskStageUpdate {
	_u.mutation.AddExecutionCount(v)
	return _u
}

// Mutation returns the TaskStageMutation object of the builder.
func (_u *TaskStageUpdate) Mutation() *TaskStageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskStageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskStageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskStageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskStageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskStageUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := taskstage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskStage.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailureCategory(); ok {
		if err := taskstage.FailureCategoryValidator(v); err != nil {
			return &ValidationError{Name: "failure_category", err: fmt.Errorf(`ent: validator failed for field "TaskStage.failure_category": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskStage.task"`)
	}
	return nil
}

func (_u *TaskStageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskstage.Table, taskstage.Columns, sqlgraph.NewFieldSpec(taskstage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(taskstage.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentRole(); ok {
		_spec.SetField(taskstage.FieldAgentRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(taskstage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExecOrder(); ok {
		_spec.SetField(taskstage.FieldExecOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExecOrder(); ok {
		_spec.AddField(taskstage.FieldExecOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(taskstage.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(taskstage.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(taskstage.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(taskstage.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(taskstage.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(taskstage.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(taskstage.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(taskstage.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(taskstage.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TurnsUsed(); ok {
		_spec.SetField(taskstage.FieldTurnsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnsUsed(); ok {
		_spec.AddField(taskstage.FieldTurnsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(taskstage.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(taskstage.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.Structured(); ok {
		_spec.SetField(taskstage.FieldStructured, field.TypeJSON, value)
	}
	if _u.mutation.StructuredCleared() {
		_spec.ClearField(taskstage.FieldStructured, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(taskstage.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(taskstage.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.FailureCategory(); ok {
		_spec.SetField(taskstage.FieldFailureCategory, field.TypeEnum, value)
	}
	if _u.mutation.FailureCategoryCleared() {
		_spec.ClearField(taskstage.FieldFailureCategory, field.TypeEnum)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(taskstage.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(taskstage.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(taskstage.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(taskstage.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(taskstage.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExecutionCount(); ok {
		_spec.SetField(taskstage.FieldExecutionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExecutionCount(); ok {
		_spec.AddField(taskstage.FieldExecutionCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskstage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskStageUpdateOne is the builder for updating a single TaskStage entity.
type TaskStageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskStageMutation
}

// SetName sets the "name" field.
func (_u *TaskStageUpdateOne) SetName(v string) *TaskStageUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TaskStageUpdateOne) SetNillableName(v *string) *TaskStageUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAgentRole sets the "agent_role" field.
func (_u *TaskStageUpdateOne) SetAgentRole(v string) *TaskStageUpdateOne {
	_u.mutation.SetAgentRole(v)
	return _u
}

// SetNillableAgentRole sets the "agent_role" field if the given value is not nil.
func (_u *TaskStageUpdateOne) SetNillableAgentRole(v *string) *TaskStageUpdateOne {
	if v != nil {
		_u.SetAgentRole(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskStageUpdateOne) SetStatus(v taskstage.Status) *TaskStageUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskStageUpdateOne) SetNillableStatus(v *taskstage.Status) *TaskStageUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExecOrder sets the "exec_order" field.
func (_u *TaskStageUpdateOne) SetExecOrder(v int) *TaskStageUpdateOne {
	_u.mutation.ResetExecOrder()
	_u.mutation.SetExecOrder(v)
	return _u
}

// SetNillableExecOrder sets the "exec_order" field if the given value is not nil.
func (_u *TaskStageUpdateOne) SetNillableExecOrder(v *int) *TaskStageUpdateOne {
	if v != nil {
		_u.SetExecOrder(*v)
	}
	return _u
}

// AddExecOrder adds value to the "exec_order" field.
func (_u *TaskStageUpdateOne) AddExecOrder(v int) *TaskStageUpdateOne {
	_u.mutation.AddExecOrder(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskStageUpdateOne) SetStartedAt(v time.Time) *TaskStageUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskStageUpdateOne) SetNillableStartedAt(v *time.Time) *TaskStageUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskStageUpdateOne) ClearStartedAt() *TaskStageUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskStageUpdateOne) SetCompletedAt(v time.Time) *TaskStageUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskStageUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskStageUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskStageUpdateOne) ClearCompletedAt() *TaskStageUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *TaskStageUpdateOne) SetDurationMs(v int64) *TaskStageUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *TaskStageUpdateOne) SetNillableDurationMs(v *int64) *TaskStageUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *TaskStageUpdateOne) AddDurationMs(v int64) *TaskStageUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *TaskStageUpdateOne) ClearDurationMs() *TaskStageUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *TaskStageUpdateOne) SetTokensUsed(v int) *TaskStageUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *TaskStageUpdateOne) SetNillableTokensUsed(v *int) *TaskStageUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *TaskStageUpdateOne) AddTokensUsed(v int) *TaskStageUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetTurnsUsed sets the "turns_used" field.
func (_u *TaskStageUpdateOne) SetTurnsUsed(v int) *TaskStageUpdateOne {
	_u.mutation.ResetTurnsUsed()
	_u.mutation.SetTurnsUsed(v)
	return _u
}

// SetNillableTurnsUsed sets the "turns_used" field if the given value is not nil.
func (_u *TaskStageUpdateOne) SetNillableTurnsUsed(v *int) *TaskStageUpdateOne {
	if v != nil {
		_u.SetTurnsUsed(*v)
	}
	return _u
}

// AddTurnsUsed adds value to the "turns_used" field.
func (_u *TaskStageUpdateOne) AddTurnsUsed(v int) *TaskStageUpdateOne {
	_u.mutation.AddTurnsUsed(v)
	return _u
}

// SetOutput sets the "output" field.
func (_u *TaskStageUpdateOne) SetOutput(v string) *TaskStageUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *TaskStageUpdateOne) SetNillableOutput(v *string) *TaskStageUpdateOne {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *TaskStageUpdateOne) ClearOutput() *TaskStageUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetStructured sets the "structured" field.
func (_u *TaskStageUpdateOne) SetStructured(v *models.StructuredOutput) *TaskStageUpdateOne {
	_u.mutation.SetStructured(v)
	return _u
}

// ClearStructured clears the value of the "structured" field.
func (_u *TaskStageUpdateOne) ClearStructured() *TaskStageUpdateOne {
	_u.mutation.ClearStructured()
	return _u
}

// SetError sets the "error" field.
func (_u *TaskStageUpdateOne) SetError(v string) *TaskStageUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *TaskStageUpdateOne) SetNillableError(v *string) *TaskStageUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *TaskStageUpdateOne) ClearError() *TaskStageUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetFailureCategory sets the "failure_category" field.
func (_u *TaskStageUpdateOne) SetFailureCategory(v taskstage.FailureCategory) *TaskStageUpdateOne {
	_u.mutation.SetFailureCategory(v)
	return _u
}

// SetNillableFailureCategory sets the "failure_category" field if the given value is not nil.
func (_u *TaskStageUpdateOne) SetNillableFailureCategory(v *taskstage.FailureCategory) *TaskStageUpdateOne {
	if v != nil {
		_u.SetFailureCategory(*v)
	}
	return _u
}

// ClearFailureCategory clears the value of the "failure_category" field.
func (_u *TaskStageUpdateOne) ClearFailureCategory() *TaskStageUpdateOne {
	_u.mutation.ClearFailureCategory()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *TaskStageUpdateOne) SetConfidence(v float64) *TaskStageUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *TaskStageUpdateOne) SetNillableConfidence(v *float64) *TaskStageUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *TaskStageUpdateOne) AddConfidence(v float64) *TaskStageUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *TaskStageUpdateOne) ClearConfidence() *TaskStageUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *TaskStageUpdateOne) SetRetryCount(v int) *TaskStageUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *TaskStageUpdateOne) SetNillableRetryCount(v *int) *TaskStageUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *TaskStageUpdateOne) AddRetryCount(v int) *TaskStageUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetExecutionCount sets the "execution_count" field.
func (_u *TaskStageUpdateOne) SetExecutionCount(v int) *TaskStageUpdateOne {
	_u.mutation.ResetExecutionCount()
	_u.mutation.SetExecutionCount(v)
	return _u
}

// SetNillableExecutionCount sets the "execution_count" field if the given value is not nil.
func (_u *TaskStageUpdateOne) SetNillableExecutionCount(v *int) *TaskStageUpdateOne {
	if v != nil {
		_u.SetExecutionCount(*v)
	}
	return _u
}

// AddExecutionCount adds value to the "execution_count" field.
func (_u *TaskStageUpdateOne) AddExecutionCount(v int) *TaskStageUpdateOne {
	_u.mutation.AddExecutionCount(v)
	return _u
}

// Mutation returns the TaskStageMutation object of the builder.
func (_u *TaskStageUpdateOne) Mutation() *TaskStageMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskStageUpdate builder.
func (_u *TaskStageUpdateOne) Where(ps ...predicate.TaskStage) *TaskStageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskStageUpdateOne) Select(field string, fields ...string) *TaskStageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskStage entity.
func (_u *TaskStageUpdateOne) Save(ctx context.Context) (*TaskStage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskStageUpdateOne) SaveX(ctx context.Context) *TaskStage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskStageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskStageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskStageUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := taskstage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskStage.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailureCategory(); ok {
		if err := taskstage.FailureCategoryValidator(v); err != nil {
			return &ValidationError{Name: "failure_category", err: fmt.Errorf(`ent: validator failed for field "TaskStage.failure_category": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskStage.task"`)
	}
	return nil
}

func (_u *TaskStageUpdateOne) sqlSave(ctx context.Context) (_node *TaskStage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskstage.Table, taskstage.Columns, sqlgraph.NewFieldSpec(taskstage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskStage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskstage.FieldID)
		for _, f := range fields {
			if !taskstage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taskstage.FieldID {
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
		_spec.SetField(taskstage.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentRole(); ok {
		_spec.SetField(taskstage.FieldAgentRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(taskstage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExecOrder(); ok {
		_spec.SetField(taskstage.FieldExecOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExecOrder(); ok {
		_spec.AddField(taskstage.FieldExecOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(taskstage.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(taskstage.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(taskstage.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(taskstage.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(taskstage.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(taskstage.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(taskstage.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(taskstage.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(taskstage.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TurnsUsed(); ok {
		_spec.SetField(taskstage.FieldTurnsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnsUsed(); ok {
		_spec.AddField(taskstage.FieldTurnsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(taskstage.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(taskstage.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.Structured(); ok {
		_spec.SetField(taskstage.FieldStructured, field.TypeJSON, value)
	}
	if _u.mutation.StructuredCleared() {
		_spec.ClearField(taskstage.FieldStructured, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(taskstage.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(taskstage.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.FailureCategory(); ok {
		_spec.SetField(taskstage.FieldFailureCategory, field.TypeEnum, value)
	}
	if _u.mutation.FailureCategoryCleared() {
		_spec.ClearField(taskstage.FieldFailureCategory, field.TypeEnum)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(taskstage.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(taskstage.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(taskstage.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(taskstage.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(taskstage.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExecutionCount(); ok {
		_spec.SetField(taskstage.FieldExecutionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExecutionCount(); ok {
		_spec.AddField(taskstage.FieldExecutionCount, field.TypeInt, value)
	}
	_node = &TaskStage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskstage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
