// Code generated by ent, DO NOT EDIT.

package triggerrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/stewardhq/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldEQ(FieldName, v))
}

// Expression applies equality check predicate on the "expression" field. It's identical to ExpressionEQ.
func Expression(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldEQ(FieldExpression, v))
}

// TemplateID applies equality check predicate on the "template_id" field. It's identical to TemplateIDEQ.
func TemplateID(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldEQ(FieldTemplateID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldEQ(FieldProjectID, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldEQ(FieldEnabled, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldContainsFold(FieldName, v))
}

// RuleTypeEQ applies the EQ predicate on the "rule_type" field.
func RuleTypeEQ(v RuleType) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldEQ(FieldRuleType, v))
}

// RuleTypeNEQ applies the NEQ predicate on the "rule_type" field.
func RuleTypeNEQ(v RuleType) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldNEQ(FieldRuleType, v))
}

// RuleTypeIn applies the In predicate on the "rule_type" field.
func RuleTypeIn(vs ...RuleType) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldIn(FieldRuleType, vs...))
}

// RuleTypeNotIn applies the NotIn predicate on the "rule_type" field.
func RuleTypeNotIn(vs ...RuleType) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldNotIn(FieldRuleType, vs...))
}

// ExpressionEQ applies the EQ predicate on the "expression" field.
func ExpressionEQ(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldEQ(FieldExpression, v))
}

// ExpressionNEQ applies the NEQ predicate on the "expression" field.
func ExpressionNEQ(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldNEQ(FieldExpression, v))
}

// ExpressionIn applies the In predicate on the "expression" field.
func ExpressionIn(vs ...string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldIn(FieldExpression, vs...))
}

// ExpressionNotIn applies the NotIn predicate on the "expression" field.
func ExpressionNotIn(vs ...string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldNotIn(FieldExpression, vs...))
}

// ExpressionGT applies the GT predicate on the "expression" field.
func ExpressionGT(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldGT(FieldExpression, v))
}

// ExpressionGTE applies the GTE predicate on the "expression" field.
func ExpressionGTE(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldGTE(FieldExpression, v))
}

// ExpressionLT applies the LT predicate on the "expression" field.
func ExpressionLT(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldLT(FieldExpression, v))
}

// ExpressionLTE applies the LTE predicate on the "expression" field.
func ExpressionLTE(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldLTE(FieldExpression, v))
}

// ExpressionContains applies the Contains predicate on the "expression" field.
func ExpressionContains(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldContains(FieldExpression, v))
}

// ExpressionHasPrefix applies the HasPrefix predicate on the "expression" field.
func ExpressionHasPrefix(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldHasPrefix(FieldExpression, v))
}

// ExpressionHasSuffix applies the HasSuffix predicate on the "expression" field.
func ExpressionHasSuffix(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldHasSuffix(FieldExpression, v))
}

// ExpressionEqualFold applies the EqualFold predicate on the "expression" field.
func ExpressionEqualFold(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldEqualFold(FieldExpression, v))
}

// ExpressionContainsFold applies the ContainsFold predicate on the "expression" field.
func ExpressionContainsFold(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldContainsFold(FieldExpression, v))
}

// TemplateIDEQ applies the EQ predicate on the "template_id" field.
func TemplateIDEQ(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldEQ(FieldTemplateID, v))
}

// TemplateIDNEQ applies the NEQ predicate on the "template_id" field.
func TemplateIDNEQ(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldNEQ(FieldTemplateID, v))
}

// TemplateIDIn applies the In predicate on the "template_id" field.
func TemplateIDIn(vs ...string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldIn(FieldTemplateID, vs...))
}

// TemplateIDNotIn applies the NotIn predicate on the "template_id" field.
func TemplateIDNotIn(vs ...string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldNotIn(FieldTemplateID, vs...))
}

// TemplateIDGT applies the GT predicate on the "template_id" field.
func TemplateIDGT(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldGT(FieldTemplateID, v))
}

// TemplateIDGTE applies the GTE predicate on the "template_id" field.
func TemplateIDGTE(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldGTE(FieldTemplateID, v))
}

// TemplateIDLT applies the LT predicate on the "template_id" field.
func TemplateIDLT(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldLT(FieldTemplateID, v))
}

// TemplateIDLTE applies the LTE predicate on the "template_id" field.
func TemplateIDLTE(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldLTE(FieldTemplateID, v))
}

// TemplateIDContains applies the Contains predicate on the "template_id" field.
func TemplateIDContains(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldContains(FieldTemplateID, v))
}

// TemplateIDHasPrefix applies the HasPrefix predicate on the "template_id" field.
func TemplateIDHasPrefix(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldHasPrefix(FieldTemplateID, v))
}

// TemplateIDHasSuffix applies the HasSuffix predicate on the "template_id" field.
func TemplateIDHasSuffix(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldHasSuffix(FieldTemplateID, v))
}

// TemplateIDEqualFold applies the EqualFold predicate on the "template_id" field.
func TemplateIDEqualFold(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldEqualFold(FieldTemplateID, v))
}

// TemplateIDContainsFold applies the ContainsFold predicate on the "template_id" field.
func TemplateIDContainsFold(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldContainsFold(FieldTemplateID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDIsNil applies the IsNil predicate on the "project_id" field.
func ProjectIDIsNil() predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldIsNull(FieldProjectID))
}

// ProjectIDNotNil applies the NotNil predicate on the "project_id" field.
func ProjectIDNotNil() predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldNotNull(FieldProjectID))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldContainsFold(FieldProjectID, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldNEQ(FieldEnabled, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TriggerRule {
	return predicate.TriggerRule(sql.FieldLTE(FieldCreatedAt, v))
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.TriggerRule {
	return predicate.TriggerRule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.TriggerEvent) predicate.TriggerRule {
	return predicate.TriggerRule(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TriggerRule) predicate.TriggerRule {
	return predicate.TriggerRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TriggerRule) predicate.TriggerRule {
	return predicate.TriggerRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TriggerRule) predicate.TriggerRule {
	return predicate.TriggerRule(sql.NotPredicates(p))
}
