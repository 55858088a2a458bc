// Code generated by ent, DO NOT EDIT.

package taskstage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/stewardhq/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldTaskID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldName, v))
}

// AgentRole applies equality check predicate on the "agent_role" field. It's identical to AgentRoleEQ.
func AgentRole(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldAgentRole, v))
}

// ExecOrder applies equality check predicate on the "exec_order" field. It's identical to ExecOrderEQ.
func ExecOrder(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldExecOrder, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldCompletedAt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldDurationMs, v))
}

// TokensUsed applies equality check predicate on the "tokens_used" field. It's identical to TokensUsedEQ.
func TokensUsed(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldTokensUsed, v))
}

// TurnsUsed applies equality check predicate on the "turns_used" field. It's identical to TurnsUsedEQ.
func TurnsUsed(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldTurnsUsed, v))
}

// Output applies equality check predicate on the "output" field. It's identical to OutputEQ.
func Output(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldOutput, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldError, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldConfidence, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldRetryCount, v))
}

// ExecutionCount applies equality check predicate on the "execution_count" field. It's identical to ExecutionCountEQ.
func ExecutionCount(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldExecutionCount, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldContainsFold(FieldTaskID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldContainsFold(FieldName, v))
}

// AgentRoleEQ applies the EQ predicate on the "agent_role" field.
func AgentRoleEQ(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldAgentRole, v))
}

// AgentRoleNEQ applies the NEQ predicate on the "agent_role" field.
func AgentRoleNEQ(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNEQ(FieldAgentRole, v))
}

// AgentRoleIn applies the In predicate on the "agent_role" field.
func AgentRoleIn(vs ...string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldIn(FieldAgentRole, vs...))
}

// AgentRoleNotIn applies the NotIn predicate on the "agent_role" field.
func AgentRoleNotIn(vs ...string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNotIn(FieldAgentRole, vs...))
}

// AgentRoleGT applies the GT predicate on the "agent_role" field.
func AgentRoleGT(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGT(FieldAgentRole, v))
}

// AgentRoleGTE applies the GTE predicate on the "agent_role" field.
func AgentRoleGTE(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGTE(FieldAgentRole, v))
}

// AgentRoleLT applies the LT predicate on the "agent_role" field.
func AgentRoleLT(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLT(FieldAgentRole, v))
}

// AgentRoleLTE applies the LTE predicate on the "agent_role" field.
func AgentRoleLTE(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLTE(FieldAgentRole, v))
}

// AgentRoleContains applies the Contains predicate on the "agent_role" field.
func AgentRoleContains(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldContains(FieldAgentRole, v))
}

// AgentRoleHasPrefix applies the HasPrefix predicate on the "agent_role" field.
func AgentRoleHasPrefix(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldHasPrefix(FieldAgentRole, v))
}

// AgentRoleHasSuffix applies the HasSuffix predicate on the "agent_role" field.
func AgentRoleHasSuffix(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldHasSuffix(FieldAgentRole, v))
}

// AgentRoleEqualFold applies the EqualFold predicate on the "agent_role" field.
func AgentRoleEqualFold(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEqualFold(FieldAgentRole, v))
}

// AgentRoleContainsFold applies the ContainsFold predicate on the "agent_role" field.
func AgentRoleContainsFold(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldContainsFold(FieldAgentRole, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNotIn(FieldStatus, vs...))
}

// ExecOrderEQ applies the EQ predicate on the "exec_order" field.
func ExecOrderEQ(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldExecOrder, v))
}

// ExecOrderNEQ applies the NEQ predicate on the "exec_order" field.
func ExecOrderNEQ(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNEQ(FieldExecOrder, v))
}

// ExecOrderIn applies the In predicate on the "exec_order" field.
func ExecOrderIn(vs ...int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldIn(FieldExecOrder, vs...))
}

// ExecOrderNotIn applies the NotIn predicate on the "exec_order" field.
func ExecOrderNotIn(vs ...int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNotIn(FieldExecOrder, vs...))
}

// ExecOrderGT applies the GT predicate on the "exec_order" field.
func ExecOrderGT(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGT(FieldExecOrder, v))
}

// ExecOrderGTE applies the GTE predicate on the "exec_order" field.
func ExecOrderGTE(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGTE(FieldExecOrder, v))
}

// ExecOrderLT applies the LT predicate on the "exec_order" field.
func ExecOrderLT(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLT(FieldExecOrder, v))
}

// ExecOrderLTE applies the LTE predicate on the "exec_order" field.
func ExecOrderLTE(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLTE(FieldExecOrder, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.TaskStage {
	return predicate.TaskStage(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.TaskStage {
	return predicate.TaskStage(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNotNull(FieldCompletedAt))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.TaskStage {
	return predicate.TaskStage(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNotNull(FieldDurationMs))
}

// TokensUsedEQ applies the EQ predicate on the "tokens_used" field.
func TokensUsedEQ(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldTokensUsed, v))
}

// TokensUsedNEQ applies the NEQ predicate on the "tokens_used" field.
func TokensUsedNEQ(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNEQ(FieldTokensUsed, v))
}

// TokensUsedIn applies the In predicate on the "tokens_used" field.
func TokensUsedIn(vs ...int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldIn(FieldTokensUsed, vs...))
}

// TokensUsedNotIn applies the NotIn predicate on the "tokens_used" field.
func TokensUsedNotIn(vs ...int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNotIn(FieldTokensUsed, vs...))
}

// TokensUsedGT applies the GT predicate on the "tokens_used" field.
func TokensUsedGT(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGT(FieldTokensUsed, v))
}

// TokensUsedGTE applies the GTE predicate on the "tokens_used" field.
func TokensUsedGTE(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGTE(FieldTokensUsed, v))
}

// TokensUsedLT applies the LT predicate on the "tokens_used" field.
func TokensUsedLT(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLT(FieldTokensUsed, v))
}

// TokensUsedLTE applies the LTE predicate on the "tokens_used" field.
func TokensUsedLTE(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLTE(FieldTokensUsed, v))
}

// TurnsUsedEQ applies the EQ predicate on the "turns_used" field.
func TurnsUsedEQ(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldTurnsUsed, v))
}

// TurnsUsedNEQ applies the NEQ predicate on the "turns_used" field.
func TurnsUsedNEQ(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNEQ(FieldTurnsUsed, v))
}

// TurnsUsedIn applies the In predicate on the "turns_used" field.
func TurnsUsedIn(vs ...int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldIn(FieldTurnsUsed, vs...))
}

// TurnsUsedNotIn applies the NotIn predicate on the "turns_used" field.
func TurnsUsedNotIn(vs ...int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNotIn(FieldTurnsUsed, vs...))
}

// TurnsUsedGT applies the GT predicate on the "turns_used" field.
func TurnsUsedGT(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGT(FieldTurnsUsed, v))
}

// TurnsUsedGTE applies the GTE predicate on the "turns_used" field.
func TurnsUsedGTE(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGTE(FieldTurnsUsed, v))
}

// TurnsUsedLT applies the LT predicate on the "turns_used" field.
func TurnsUsedLT(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLT(FieldTurnsUsed, v))
}

// TurnsUsedLTE applies the LTE predicate on the "turns_used" field.
func TurnsUsedLTE(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLTE(FieldTurnsUsed, v))
}

// OutputEQ applies the EQ predicate on the "output" field.
func OutputEQ(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldOutput, v))
}

// OutputNEQ applies the NEQ predicate on the "output" field.
func OutputNEQ(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNEQ(FieldOutput, v))
}

// OutputIn applies the In predicate on the "output" field.
func OutputIn(vs ...string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldIn(FieldOutput, vs...))
}

// OutputNotIn applies the NotIn predicate on the "output" field.
func OutputNotIn(vs ...string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNotIn(FieldOutput, vs...))
}

// OutputGT applies the GT predicate on the "output" field.
func OutputGT(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGT(FieldOutput, v))
}

// OutputGTE applies the GTE predicate on the "output" field.
func OutputGTE(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGTE(FieldOutput, v))
}

// OutputLT applies the LT predicate on the "output" field.
func OutputLT(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLT(FieldOutput, v))
}

// OutputLTE applies the LTE predicate on the "output" field.
func OutputLTE(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLTE(FieldOutput, v))
}

// OutputContains applies the Contains predicate on the "output" field.
func OutputContains(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldContains(FieldOutput, v))
}

// OutputHasPrefix applies the HasPrefix predicate on the "output" field.
func OutputHasPrefix(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldHasPrefix(FieldOutput, v))
}

// OutputHasSuffix applies the HasSuffix predicate on the "output" field.
func OutputHasSuffix(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldHasSuffix(FieldOutput, v))
}

// OutputIsNil applies the IsNil predicate on the "output" field.
func OutputIsNil() predicate.TaskStage {
	return predicate.TaskStage(sql.FieldIsNull(FieldOutput))
}

// OutputNotNil applies the NotNil predicate on the "output" field.
func OutputNotNil() predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNotNull(FieldOutput))
}

// OutputEqualFold applies the EqualFold predicate on the "output" field.
func OutputEqualFold(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEqualFold(FieldOutput, v))
}

// OutputContainsFold applies the ContainsFold predicate on the "output" field.
func OutputContainsFold(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldContainsFold(FieldOutput, v))
}

// StructuredIsNil applies the IsNil predicate on the "structured" field.
func StructuredIsNil() predicate.TaskStage {
	return predicate.TaskStage(sql.FieldIsNull(FieldStructured))
}

// StructuredNotNil applies the NotNil predicate on the "structured" field.
func StructuredNotNil() predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNotNull(FieldStructured))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.TaskStage {
	return predicate.TaskStage(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldContainsFold(FieldError, v))
}

// FailureCategoryEQ applies the EQ predicate on the "failure_category" field.
func FailureCategoryEQ(v FailureCategory) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldFailureCategory, v))
}

// FailureCategoryNEQ applies the NEQ predicate on the "failure_category" field.
func FailureCategoryNEQ(v FailureCategory) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNEQ(FieldFailureCategory, v))
}

// FailureCategoryIn applies the In predicate on the "failure_category" field.
func FailureCategoryIn(vs ...FailureCategory) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldIn(FieldFailureCategory, vs...))
}

// FailureCategoryNotIn applies the NotIn predicate on the "failure_category" field.
func FailureCategoryNotIn(vs ...FailureCategory) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNotIn(FieldFailureCategory, vs...))
}

// FailureCategoryIsNil applies the IsNil predicate on the "failure_category" field.
func FailureCategoryIsNil() predicate.TaskStage {
	return predicate.TaskStage(sql.FieldIsNull(FieldFailureCategory))
}

// FailureCategoryNotNil applies the NotNil predicate on the "failure_category" field.
func FailureCategoryNotNil() predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNotNull(FieldFailureCategory))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.TaskStage {
	return predicate.TaskStage(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNotNull(FieldConfidence))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLTE(FieldRetryCount, v))
}

// ExecutionCountEQ applies the EQ predicate on the "execution_count" field.
func ExecutionCountEQ(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldEQ(FieldExecutionCount, v))
}

// ExecutionCountNEQ applies the NEQ predicate on the "execution_count" field.
func ExecutionCountNEQ(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNEQ(FieldExecutionCount, v))
}

// ExecutionCountIn applies the In predicate on the "execution_count" field.
func ExecutionCountIn(vs ...int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldIn(FieldExecutionCount, vs...))
}

// ExecutionCountNotIn applies the NotIn predicate on the "execution_count" field.
func ExecutionCountNotIn(vs ...int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldNotIn(FieldExecutionCount, vs...))
}

// ExecutionCountGT applies the GT predicate on the "execution_count" field.
func ExecutionCountGT(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGT(FieldExecutionCount, v))
}

// ExecutionCountGTE applies the GTE predicate on the "execution_count" field.
func ExecutionCountGTE(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldGTE(FieldExecutionCount, v))
}

// ExecutionCountLT applies the LT predicate on the "execution_count" field.
func ExecutionCountLT(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLT(FieldExecutionCount, v))
}

// ExecutionCountLTE applies the LTE predicate on the "execution_count" field.
func ExecutionCountLTE(v int) predicate.TaskStage {
	return predicate.TaskStage(sql.FieldLTE(FieldExecutionCount, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.TaskStage {
	return predicate.TaskStage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.TaskStage {
	return predicate.TaskStage(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskStage) predicate.TaskStage {
	return predicate.TaskStage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskStage) predicate.TaskStage {
	return predicate.TaskStage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskStage) predicate.TaskStage {
	return predicate.TaskStage(sql.NotPredicates(p))
}
