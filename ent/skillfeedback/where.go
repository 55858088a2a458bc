// Code generated by ent, DO NOT EDIT.

package skillfeedback

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/stewardhq/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldContainsFold(FieldID, id))
}

// AgentRole applies equality check predicate on the "agent_role" field. It's identical to AgentRoleEQ.
func AgentRole(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldEQ(FieldAgentRole, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldEQ(FieldTaskID, v))
}

// GateID applies equality check predicate on the "gate_id" field. It's identical to GateIDEQ.
func GateID(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldEQ(FieldGateID, v))
}

// Comment applies equality check predicate on the "comment" field. It's identical to CommentEQ.
func Comment(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldEQ(FieldComment, v))
}

// Lesson applies equality check predicate on the "lesson" field. It's identical to LessonEQ.
func Lesson(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldEQ(FieldLesson, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldEQ(FieldCreatedAt, v))
}

// AgentRoleEQ applies the EQ predicate on the "agent_role" field.
func AgentRoleEQ(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldEQ(FieldAgentRole, v))
}

// AgentRoleNEQ applies the NEQ predicate on the "agent_role" field.
func AgentRoleNEQ(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldNEQ(FieldAgentRole, v))
}

// AgentRoleIn applies the In predicate on the "agent_role" field.
func AgentRoleIn(vs ...string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldIn(FieldAgentRole, vs...))
}

// AgentRoleNotIn applies the NotIn predicate on the "agent_role" field.
func AgentRoleNotIn(vs ...string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldNotIn(FieldAgentRole, vs...))
}

// AgentRoleGT applies the GT predicate on the "agent_role" field.
func AgentRoleGT(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldGT(FieldAgentRole, v))
}

// AgentRoleGTE applies the GTE predicate on the "agent_role" field.
func AgentRoleGTE(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldGTE(FieldAgentRole, v))
}

// AgentRoleLT applies the LT predicate on the "agent_role" field.
func AgentRoleLT(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldLT(FieldAgentRole, v))
}

// AgentRoleLTE applies the LTE predicate on the "agent_role" field.
func AgentRoleLTE(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldLTE(FieldAgentRole, v))
}

// AgentRoleContains applies the Contains predicate on the "agent_role" field.
func AgentRoleContains(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldContains(FieldAgentRole, v))
}

// AgentRoleHasPrefix applies the HasPrefix predicate on the "agent_role" field.
func AgentRoleHasPrefix(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldHasPrefix(FieldAgentRole, v))
}

// AgentRoleHasSuffix applies the HasSuffix predicate on the "agent_role" field.
func AgentRoleHasSuffix(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldHasSuffix(FieldAgentRole, v))
}

// AgentRoleEqualFold applies the EqualFold predicate on the "agent_role" field.
func AgentRoleEqualFold(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldEqualFold(FieldAgentRole, v))
}

// AgentRoleContainsFold applies the ContainsFold predicate on the "agent_role" field.
func AgentRoleContainsFold(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldContainsFold(FieldAgentRole, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldContainsFold(FieldTaskID, v))
}

// GateIDEQ applies the EQ predicate on the "gate_id" field.
func GateIDEQ(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldEQ(FieldGateID, v))
}

// GateIDNEQ applies the NEQ predicate on the "gate_id" field.
func GateIDNEQ(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldNEQ(FieldGateID, v))
}

// GateIDIn applies the In predicate on the "gate_id" field.
func GateIDIn(vs ...string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldIn(FieldGateID, vs...))
}

// GateIDNotIn applies the NotIn predicate on the "gate_id" field.
func GateIDNotIn(vs ...string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldNotIn(FieldGateID, vs...))
}

// GateIDGT applies the GT predicate on the "gate_id" field.
func GateIDGT(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldGT(FieldGateID, v))
}

// GateIDGTE applies the GTE predicate on the "gate_id" field.
func GateIDGTE(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldGTE(FieldGateID, v))
}

// GateIDLT applies the LT predicate on the "gate_id" field.
func GateIDLT(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldLT(FieldGateID, v))
}

// GateIDLTE applies the LTE predicate on the "gate_id" field.
func GateIDLTE(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldLTE(FieldGateID, v))
}

// GateIDContains applies the Contains predicate on the "gate_id" field.
func GateIDContains(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldContains(FieldGateID, v))
}

// GateIDHasPrefix applies the HasPrefix predicate on the "gate_id" field.
func GateIDHasPrefix(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldHasPrefix(FieldGateID, v))
}

// GateIDHasSuffix applies the HasSuffix predicate on the "gate_id" field.
func GateIDHasSuffix(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldHasSuffix(FieldGateID, v))
}

// GateIDIsNil applies the IsNil predicate on the "gate_id" field.
func GateIDIsNil() predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldIsNull(FieldGateID))
}

// GateIDNotNil applies the NotNil predicate on the "gate_id" field.
func GateIDNotNil() predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldNotNull(FieldGateID))
}

// GateIDEqualFold applies the EqualFold predicate on the "gate_id" field.
func GateIDEqualFold(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldEqualFold(FieldGateID, v))
}

// GateIDContainsFold applies the ContainsFold predicate on the "gate_id" field.
func GateIDContainsFold(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldContainsFold(FieldGateID, v))
}

// CommentEQ applies the EQ predicate on the "comment" field.
func CommentEQ(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldEQ(FieldComment, v))
}

// CommentNEQ applies the NEQ predicate on the "comment" field.
func CommentNEQ(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldNEQ(FieldComment, v))
}

// CommentIn applies the In predicate on the "comment" field.
func CommentIn(vs ...string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldIn(FieldComment, vs...))
}

// CommentNotIn applies the NotIn predicate on the "comment" field.
func CommentNotIn(vs ...string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldNotIn(FieldComment, vs...))
}

// CommentGT applies the GT predicate on the "comment" field.
func CommentGT(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldGT(FieldComment, v))
}

// CommentGTE applies the GTE predicate on the "comment" field.
func CommentGTE(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldGTE(FieldComment, v))
}

// CommentLT applies the LT predicate on the "comment" field.
func CommentLT(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldLT(FieldComment, v))
}

// CommentLTE applies the LTE predicate on the "comment" field.
func CommentLTE(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldLTE(FieldComment, v))
}

// CommentContains applies the Contains predicate on the "comment" field.
func CommentContains(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldContains(FieldComment, v))
}

// CommentHasPrefix applies the HasPrefix predicate on the "comment" field.
func CommentHasPrefix(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldHasPrefix(FieldComment, v))
}

// CommentHasSuffix applies the HasSuffix predicate on the "comment" field.
func CommentHasSuffix(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldHasSuffix(FieldComment, v))
}

// CommentIsNil applies the IsNil predicate on the "comment" field.
func CommentIsNil() predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldIsNull(FieldComment))
}

// CommentNotNil applies the NotNil predicate on the "comment" field.
func CommentNotNil() predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldNotNull(FieldComment))
}

// CommentEqualFold applies the EqualFold predicate on the "comment" field.
func CommentEqualFold(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldEqualFold(FieldComment, v))
}

// CommentContainsFold applies the ContainsFold predicate on the "comment" field.
func CommentContainsFold(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldContainsFold(FieldComment, v))
}

// LessonEQ applies the EQ predicate on the "lesson" field.
func LessonEQ(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldEQ(FieldLesson, v))
}

// LessonNEQ applies the NEQ predicate on the "lesson" field.
func LessonNEQ(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldNEQ(FieldLesson, v))
}

// LessonIn applies the In predicate on the "lesson" field.
func LessonIn(vs ...string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldIn(FieldLesson, vs...))
}

// LessonNotIn applies the NotIn predicate on the "lesson" field.
func LessonNotIn(vs ...string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldNotIn(FieldLesson, vs...))
}

// LessonGT applies the GT predicate on the "lesson" field.
func LessonGT(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldGT(FieldLesson, v))
}

// LessonGTE applies the GTE predicate on the "lesson" field.
func LessonGTE(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldGTE(FieldLesson, v))
}

// LessonLT applies the LT predicate on the "lesson" field.
func LessonLT(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldLT(FieldLesson, v))
}

// LessonLTE applies the LTE predicate on the "lesson" field.
func LessonLTE(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldLTE(FieldLesson, v))
}

// LessonContains applies the Contains predicate on the "lesson" field.
func LessonContains(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldContains(FieldLesson, v))
}

// LessonHasPrefix applies the HasPrefix predicate on the "lesson" field.
func LessonHasPrefix(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldHasPrefix(FieldLesson, v))
}

// LessonHasSuffix applies the HasSuffix predicate on the "lesson" field.
func LessonHasSuffix(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldHasSuffix(FieldLesson, v))
}

// LessonEqualFold applies the EqualFold predicate on the "lesson" field.
func LessonEqualFold(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldEqualFold(FieldLesson, v))
}

// LessonContainsFold applies the ContainsFold predicate on the "lesson" field.
func LessonContainsFold(v string) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldContainsFold(FieldLesson, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SkillFeedback) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SkillFeedback) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SkillFeedback) predicate.SkillFeedback {
	return predicate.SkillFeedback(sql.NotPredicates(p))
}
