// Code generated by ent, DO NOT EDIT.

package humangate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/stewardhq/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldTaskID, v))
}

// StageName applies equality check predicate on the "stage_name" field. It's identical to StageNameEQ.
func StageName(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldStageName, v))
}

// AgentRole applies equality check predicate on the "agent_role" field. It's identical to AgentRoleEQ.
func AgentRole(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldAgentRole, v))
}

// Reviewer applies equality check predicate on the "reviewer" field. It's identical to ReviewerEQ.
func Reviewer(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldReviewer, v))
}

// Comment applies equality check predicate on the "comment" field. It's identical to CommentEQ.
func Comment(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldComment, v))
}

// RevisedContent applies equality check predicate on the "revised_content" field. It's identical to RevisedContentEQ.
func RevisedContent(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldRevisedContent, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldRetryCount, v))
}

// IsDynamic applies equality check predicate on the "is_dynamic" field. It's identical to IsDynamicEQ.
func IsDynamic(v bool) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldIsDynamic, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldCreatedAt, v))
}

// ReviewedAt applies equality check predicate on the "reviewed_at" field. It's identical to ReviewedAtEQ.
func ReviewedAt(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldReviewedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldContainsFold(FieldTaskID, v))
}

// StageNameEQ applies the EQ predicate on the "stage_name" field.
func StageNameEQ(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldStageName, v))
}

// StageNameNEQ applies the NEQ predicate on the "stage_name" field.
func StageNameNEQ(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNEQ(FieldStageName, v))
}

// StageNameIn applies the In predicate on the "stage_name" field.
func StageNameIn(vs ...string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIn(FieldStageName, vs...))
}

// StageNameNotIn applies the NotIn predicate on the "stage_name" field.
func StageNameNotIn(vs ...string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotIn(FieldStageName, vs...))
}

// StageNameGT applies the GT predicate on the "stage_name" field.
func StageNameGT(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGT(FieldStageName, v))
}

// StageNameGTE applies the GTE predicate on the "stage_name" field.
func StageNameGTE(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGTE(FieldStageName, v))
}

// StageNameLT applies the LT predicate on the "stage_name" field.
func StageNameLT(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLT(FieldStageName, v))
}

// StageNameLTE applies the LTE predicate on the "stage_name" field.
func StageNameLTE(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLTE(FieldStageName, v))
}

// StageNameContains applies the Contains predicate on the "stage_name" field.
func StageNameContains(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldContains(FieldStageName, v))
}

// StageNameHasPrefix applies the HasPrefix predicate on the "stage_name" field.
func StageNameHasPrefix(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldHasPrefix(FieldStageName, v))
}

// StageNameHasSuffix applies the HasSuffix predicate on the "stage_name" field.
func StageNameHasSuffix(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldHasSuffix(FieldStageName, v))
}

// StageNameEqualFold applies the EqualFold predicate on the "stage_name" field.
func StageNameEqualFold(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEqualFold(FieldStageName, v))
}

// StageNameContainsFold applies the ContainsFold predicate on the "stage_name" field.
func StageNameContainsFold(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldContainsFold(FieldStageName, v))
}

// AgentRoleEQ applies the EQ predicate on the "agent_role" field.
func AgentRoleEQ(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldAgentRole, v))
}

// AgentRoleNEQ applies the NEQ predicate on the "agent_role" field.
func AgentRoleNEQ(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNEQ(FieldAgentRole, v))
}

// AgentRoleIn applies the In predicate on the "agent_role" field.
func AgentRoleIn(vs ...string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIn(FieldAgentRole, vs...))
}

// AgentRoleNotIn applies the NotIn predicate on the "agent_role" field.
func AgentRoleNotIn(vs ...string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotIn(FieldAgentRole, vs...))
}

// AgentRoleGT applies the GT predicate on the "agent_role" field.
func AgentRoleGT(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGT(FieldAgentRole, v))
}

// AgentRoleGTE applies the GTE predicate on the "agent_role" field.
func AgentRoleGTE(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGTE(FieldAgentRole, v))
}

// AgentRoleLT applies the LT predicate on the "agent_role" field.
func AgentRoleLT(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLT(FieldAgentRole, v))
}

// AgentRoleLTE applies the LTE predicate on the "agent_role" field.
func AgentRoleLTE(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLTE(FieldAgentRole, v))
}

// AgentRoleContains applies the Contains predicate on the "agent_role" field.
func AgentRoleContains(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldContains(FieldAgentRole, v))
}

// AgentRoleHasPrefix applies the HasPrefix predicate on the "agent_role" field.
func AgentRoleHasPrefix(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldHasPrefix(FieldAgentRole, v))
}

// AgentRoleHasSuffix applies the HasSuffix predicate on the "agent_role" field.
func AgentRoleHasSuffix(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldHasSuffix(FieldAgentRole, v))
}

// AgentRoleIsNil applies the IsNil predicate on the "agent_role" field.
func AgentRoleIsNil() predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIsNull(FieldAgentRole))
}

// AgentRoleNotNil applies the NotNil predicate on the "agent_role" field.
func AgentRoleNotNil() predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotNull(FieldAgentRole))
}

// AgentRoleEqualFold applies the EqualFold predicate on the "agent_role" field.
func AgentRoleEqualFold(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEqualFold(FieldAgentRole, v))
}

// AgentRoleContainsFold applies the ContainsFold predicate on the "agent_role" field.
func AgentRoleContainsFold(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldContainsFold(FieldAgentRole, v))
}

// GateTypeEQ applies the EQ predicate on the "gate_type" field.
func GateTypeEQ(v GateType) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldGateType, v))
}

// GateTypeNEQ applies the NEQ predicate on the "gate_type" field.
func GateTypeNEQ(v GateType) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNEQ(FieldGateType, v))
}

// GateTypeIn applies the In predicate on the "gate_type" field.
func GateTypeIn(vs ...GateType) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIn(FieldGateType, vs...))
}

// GateTypeNotIn applies the NotIn predicate on the "gate_type" field.
func GateTypeNotIn(vs ...GateType) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotIn(FieldGateType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotIn(FieldStatus, vs...))
}

// ReviewerEQ applies the EQ predicate on the "reviewer" field.
func ReviewerEQ(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldReviewer, v))
}

// ReviewerNEQ applies the NEQ predicate on the "reviewer" field.
func ReviewerNEQ(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNEQ(FieldReviewer, v))
}

// ReviewerIn applies the In predicate on the "reviewer" field.
func ReviewerIn(vs ...string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIn(FieldReviewer, vs...))
}

// ReviewerNotIn applies the NotIn predicate on the "reviewer" field.
func ReviewerNotIn(vs ...string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotIn(FieldReviewer, vs...))
}

// ReviewerGT applies the GT predicate on the "reviewer" field.
func ReviewerGT(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGT(FieldReviewer, v))
}

// ReviewerGTE applies the GTE predicate on the "reviewer" field.
func ReviewerGTE(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGTE(FieldReviewer, v))
}

// ReviewerLT applies the LT predicate on the "reviewer" field.
func ReviewerLT(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLT(FieldReviewer, v))
}

// ReviewerLTE applies the LTE predicate on the "reviewer" field.
func ReviewerLTE(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLTE(FieldReviewer, v))
}

// ReviewerContains applies the Contains predicate on the "reviewer" field.
func ReviewerContains(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldContains(FieldReviewer, v))
}

// ReviewerHasPrefix applies the HasPrefix predicate on the "reviewer" field.
func ReviewerHasPrefix(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldHasPrefix(FieldReviewer, v))
}

// ReviewerHasSuffix applies the HasSuffix predicate on the "reviewer" field.
func ReviewerHasSuffix(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldHasSuffix(FieldReviewer, v))
}

// ReviewerIsNil applies the IsNil predicate on the "reviewer" field.
func ReviewerIsNil() predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIsNull(FieldReviewer))
}

// ReviewerNotNil applies the NotNil predicate on the "reviewer" field.
func ReviewerNotNil() predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotNull(FieldReviewer))
}

// ReviewerEqualFold applies the EqualFold predicate on the "reviewer" field.
func ReviewerEqualFold(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEqualFold(FieldReviewer, v))
}

// ReviewerContainsFold applies the ContainsFold predicate on the "reviewer" field.
func ReviewerContainsFold(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldContainsFold(FieldReviewer, v))
}

// CommentEQ applies the EQ predicate on the "comment" field.
func CommentEQ(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldComment, v))
}

// CommentNEQ applies the NEQ predicate on the "comment" field.
func CommentNEQ(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNEQ(FieldComment, v))
}

// CommentIn applies the In predicate on the "comment" field.
func CommentIn(vs ...string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIn(FieldComment, vs...))
}

// CommentNotIn applies the NotIn predicate on the "comment" field.
func CommentNotIn(vs ...string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotIn(FieldComment, vs...))
}

// CommentGT applies the GT predicate on the "comment" field.
func CommentGT(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGT(FieldComment, v))
}

// CommentGTE applies the GTE predicate on the "comment" field.
func CommentGTE(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGTE(FieldComment, v))
}

// CommentLT applies the LT predicate on the "comment" field.
func CommentLT(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLT(FieldComment, v))
}

// CommentLTE applies the LTE predicate on the "comment" field.
func CommentLTE(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLTE(FieldComment, v))
}

// CommentContains applies the Contains predicate on the "comment" field.
func CommentContains(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldContains(FieldComment, v))
}

// CommentHasPrefix applies the HasPrefix predicate on the "comment" field.
func CommentHasPrefix(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldHasPrefix(FieldComment, v))
}

// CommentHasSuffix applies the HasSuffix predicate on the "comment" field.
func CommentHasSuffix(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldHasSuffix(FieldComment, v))
}

// CommentIsNil applies the IsNil predicate on the "comment" field.
func CommentIsNil() predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIsNull(FieldComment))
}

// CommentNotNil applies the NotNil predicate on the "comment" field.
func CommentNotNil() predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotNull(FieldComment))
}

// CommentEqualFold applies the EqualFold predicate on the "comment" field.
func CommentEqualFold(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEqualFold(FieldComment, v))
}

// CommentContainsFold applies the ContainsFold predicate on the "comment" field.
func CommentContainsFold(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldContainsFold(FieldComment, v))
}

// RevisedContentEQ applies the EQ predicate on the "revised_content" field.
func RevisedContentEQ(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldRevisedContent, v))
}

// RevisedContentNEQ applies the NEQ predicate on the "revised_content" field.
func RevisedContentNEQ(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNEQ(FieldRevisedContent, v))
}

// RevisedContentIn applies the In predicate on the "revised_content" field.
func RevisedContentIn(vs ...string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIn(FieldRevisedContent, vs...))
}

// RevisedContentNotIn applies the NotIn predicate on the "revised_content" field.
func RevisedContentNotIn(vs ...string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotIn(FieldRevisedContent, vs...))
}

// RevisedContentGT applies the GT predicate on the "revised_content" field.
func RevisedContentGT(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGT(FieldRevisedContent, v))
}

// RevisedContentGTE applies the GTE predicate on the "revised_content" field.
func RevisedContentGTE(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGTE(FieldRevisedContent, v))
}

// RevisedContentLT applies the LT predicate on the "revised_content" field.
func RevisedContentLT(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLT(FieldRevisedContent, v))
}

// RevisedContentLTE applies the LTE predicate on the "revised_content" field.
func RevisedContentLTE(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLTE(FieldRevisedContent, v))
}

// RevisedContentContains applies the Contains predicate on the "revised_content" field.
func RevisedContentContains(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldContains(FieldRevisedContent, v))
}

// RevisedContentHasPrefix applies the HasPrefix predicate on the "revised_content" field.
func RevisedContentHasPrefix(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldHasPrefix(FieldRevisedContent, v))
}

// RevisedContentHasSuffix applies the HasSuffix predicate on the "revised_content" field.
func RevisedContentHasSuffix(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldHasSuffix(FieldRevisedContent, v))
}

// RevisedContentIsNil applies the IsNil predicate on the "revised_content" field.
func RevisedContentIsNil() predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIsNull(FieldRevisedContent))
}

// RevisedContentNotNil applies the NotNil predicate on the "revised_content" field.
func RevisedContentNotNil() predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotNull(FieldRevisedContent))
}

// RevisedContentEqualFold applies the EqualFold predicate on the "revised_content" field.
func RevisedContentEqualFold(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEqualFold(FieldRevisedContent, v))
}

// RevisedContentContainsFold applies the ContainsFold predicate on the "revised_content" field.
func RevisedContentContainsFold(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldContainsFold(FieldRevisedContent, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLTE(FieldRetryCount, v))
}

// IsDynamicEQ applies the EQ predicate on the "is_dynamic" field.
func IsDynamicEQ(v bool) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldIsDynamic, v))
}

// IsDynamicNEQ applies the NEQ predicate on the "is_dynamic" field.
func IsDynamicNEQ(v bool) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNEQ(FieldIsDynamic, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLTE(FieldCreatedAt, v))
}

// ReviewedAtEQ applies the EQ predicate on the "reviewed_at" field.
func ReviewedAtEQ(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldReviewedAt, v))
}

// ReviewedAtNEQ applies the NEQ predicate on the "reviewed_at" field.
func ReviewedAtNEQ(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNEQ(FieldReviewedAt, v))
}

// ReviewedAtIn applies the In predicate on the "reviewed_at" field.
func ReviewedAtIn(vs ...time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIn(FieldReviewedAt, vs...))
}

// ReviewedAtNotIn applies the NotIn predicate on the "reviewed_at" field.
func ReviewedAtNotIn(vs ...time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotIn(FieldReviewedAt, vs...))
}

// ReviewedAtGT applies the GT predicate on the "reviewed_at" field.
func ReviewedAtGT(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGT(FieldReviewedAt, v))
}

// ReviewedAtGTE applies the GTE predicate on the "reviewed_at" field.
func ReviewedAtGTE(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGTE(FieldReviewedAt, v))
}

// ReviewedAtLT applies the LT predicate on the "reviewed_at" field.
func ReviewedAtLT(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLT(FieldReviewedAt, v))
}

// ReviewedAtLTE applies the LTE predicate on the "reviewed_at" field.
func ReviewedAtLTE(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLTE(FieldReviewedAt, v))
}

// ReviewedAtIsNil applies the IsNil predicate on the "reviewed_at" field.
func ReviewedAtIsNil() predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIsNull(FieldReviewedAt))
}

// ReviewedAtNotNil applies the NotNil predicate on the "reviewed_at" field.
func ReviewedAtNotNil() predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotNull(FieldReviewedAt))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.HumanGate {
	return predicate.HumanGate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.HumanGate {
	return predicate.HumanGate(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HumanGate) predicate.HumanGate {
	return predicate.HumanGate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HumanGate) predicate.HumanGate {
	return predicate.HumanGate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HumanGate) predicate.HumanGate {
	return predicate.HumanGate(sql.NotPredicates(p))
}
