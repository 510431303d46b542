// Code generated by ent, DO NOT EDIT.

package routingrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/squadflow/squadflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldContainsFold(FieldID, id))
}

// SquadID applies equality check predicate on the "squad_id" field. It's identical to SquadIDEQ.
func SquadID(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldSquadID, v))
}

// AskerRole applies equality check predicate on the "asker_role" field. It's identical to AskerRoleEQ.
func AskerRole(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldAskerRole, v))
}

// QuestionType applies equality check predicate on the "question_type" field. It's identical to QuestionTypeEQ.
func QuestionType(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldQuestionType, v))
}

// EscalationLevel applies equality check predicate on the "escalation_level" field. It's identical to EscalationLevelEQ.
func EscalationLevel(v int) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldEscalationLevel, v))
}

// ResponderRole applies equality check predicate on the "responder_role" field. It's identical to ResponderRoleEQ.
func ResponderRole(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldResponderRole, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldPriority, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldCreatedAt, v))
}

// SquadIDEQ applies the EQ predicate on the "squad_id" field.
func SquadIDEQ(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldSquadID, v))
}

// SquadIDNEQ applies the NEQ predicate on the "squad_id" field.
func SquadIDNEQ(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNEQ(FieldSquadID, v))
}

// SquadIDIn applies the In predicate on the "squad_id" field.
func SquadIDIn(vs ...string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldIn(FieldSquadID, vs...))
}

// SquadIDNotIn applies the NotIn predicate on the "squad_id" field.
func SquadIDNotIn(vs ...string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNotIn(FieldSquadID, vs...))
}

// SquadIDGT applies the GT predicate on the "squad_id" field.
func SquadIDGT(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGT(FieldSquadID, v))
}

// SquadIDGTE applies the GTE predicate on the "squad_id" field.
func SquadIDGTE(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGTE(FieldSquadID, v))
}

// SquadIDLT applies the LT predicate on the "squad_id" field.
func SquadIDLT(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLT(FieldSquadID, v))
}

// SquadIDLTE applies the LTE predicate on the "squad_id" field.
func SquadIDLTE(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLTE(FieldSquadID, v))
}

// SquadIDContains applies the Contains predicate on the "squad_id" field.
func SquadIDContains(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldContains(FieldSquadID, v))
}

// SquadIDHasPrefix applies the HasPrefix predicate on the "squad_id" field.
func SquadIDHasPrefix(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldHasPrefix(FieldSquadID, v))
}

// SquadIDHasSuffix applies the HasSuffix predicate on the "squad_id" field.
func SquadIDHasSuffix(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldHasSuffix(FieldSquadID, v))
}

// SquadIDEqualFold applies the EqualFold predicate on the "squad_id" field.
func SquadIDEqualFold(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEqualFold(FieldSquadID, v))
}

// SquadIDContainsFold applies the ContainsFold predicate on the "squad_id" field.
func SquadIDContainsFold(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldContainsFold(FieldSquadID, v))
}

// AskerRoleEQ applies the EQ predicate on the "asker_role" field.
func AskerRoleEQ(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldAskerRole, v))
}

// AskerRoleNEQ applies the NEQ predicate on the "asker_role" field.
func AskerRoleNEQ(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNEQ(FieldAskerRole, v))
}

// AskerRoleIn applies the In predicate on the "asker_role" field.
func AskerRoleIn(vs ...string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldIn(FieldAskerRole, vs...))
}

// AskerRoleNotIn applies the NotIn predicate on the "asker_role" field.
func AskerRoleNotIn(vs ...string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNotIn(FieldAskerRole, vs...))
}

// AskerRoleGT applies the GT predicate on the "asker_role" field.
func AskerRoleGT(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGT(FieldAskerRole, v))
}

// AskerRoleGTE applies the GTE predicate on the "asker_role" field.
func AskerRoleGTE(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGTE(FieldAskerRole, v))
}

// AskerRoleLT applies the LT predicate on the "asker_role" field.
func AskerRoleLT(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLT(FieldAskerRole, v))
}

// AskerRoleLTE applies the LTE predicate on the "asker_role" field.
func AskerRoleLTE(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLTE(FieldAskerRole, v))
}

// AskerRoleContains applies the Contains predicate on the "asker_role" field.
func AskerRoleContains(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldContains(FieldAskerRole, v))
}

// AskerRoleHasPrefix applies the HasPrefix predicate on the "asker_role" field.
func AskerRoleHasPrefix(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldHasPrefix(FieldAskerRole, v))
}

// AskerRoleHasSuffix applies the HasSuffix predicate on the "asker_role" field.
func AskerRoleHasSuffix(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldHasSuffix(FieldAskerRole, v))
}

// AskerRoleEqualFold applies the EqualFold predicate on the "asker_role" field.
func AskerRoleEqualFold(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEqualFold(FieldAskerRole, v))
}

// AskerRoleContainsFold applies the ContainsFold predicate on the "asker_role" field.
func AskerRoleContainsFold(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldContainsFold(FieldAskerRole, v))
}

// QuestionTypeEQ applies the EQ predicate on the "question_type" field.
func QuestionTypeEQ(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldQuestionType, v))
}

// QuestionTypeNEQ applies the NEQ predicate on the "question_type" field.
func QuestionTypeNEQ(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNEQ(FieldQuestionType, v))
}

// QuestionTypeIn applies the In predicate on the "question_type" field.
func QuestionTypeIn(vs ...string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldIn(FieldQuestionType, vs...))
}

// QuestionTypeNotIn applies the NotIn predicate on the "question_type" field.
func QuestionTypeNotIn(vs ...string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNotIn(FieldQuestionType, vs...))
}

// QuestionTypeGT applies the GT predicate on the "question_type" field.
func QuestionTypeGT(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGT(FieldQuestionType, v))
}

// QuestionTypeGTE applies the GTE predicate on the "question_type" field.
func QuestionTypeGTE(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGTE(FieldQuestionType, v))
}

// QuestionTypeLT applies the LT predicate on the "question_type" field.
func QuestionTypeLT(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLT(FieldQuestionType, v))
}

// QuestionTypeLTE applies the LTE predicate on the "question_type" field.
func QuestionTypeLTE(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLTE(FieldQuestionType, v))
}

// QuestionTypeContains applies the Contains predicate on the "question_type" field.
func QuestionTypeContains(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldContains(FieldQuestionType, v))
}

// QuestionTypeHasPrefix applies the HasPrefix predicate on the "question_type" field.
func QuestionTypeHasPrefix(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldHasPrefix(FieldQuestionType, v))
}

// QuestionTypeHasSuffix applies the HasSuffix predicate on the "question_type" field.
func QuestionTypeHasSuffix(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldHasSuffix(FieldQuestionType, v))
}

// QuestionTypeEqualFold applies the EqualFold predicate on the "question_type" field.
func QuestionTypeEqualFold(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEqualFold(FieldQuestionType, v))
}

// QuestionTypeContainsFold applies the ContainsFold predicate on the "question_type" field.
func QuestionTypeContainsFold(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldContainsFold(FieldQuestionType, v))
}

// EscalationLevelEQ applies the EQ predicate on the "escalation_level" field.
func EscalationLevelEQ(v int) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldEscalationLevel, v))
}

// EscalationLevelNEQ applies the NEQ predicate on the "escalation_level" field.
func EscalationLevelNEQ(v int) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNEQ(FieldEscalationLevel, v))
}

// EscalationLevelIn applies the In predicate on the "escalation_level" field.
func EscalationLevelIn(vs ...int) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldIn(FieldEscalationLevel, vs...))
}

// EscalationLevelNotIn applies the NotIn predicate on the "escalation_level" field.
func EscalationLevelNotIn(vs ...int) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNotIn(FieldEscalationLevel, vs...))
}

// EscalationLevelGT applies the GT predicate on the "escalation_level" field.
func EscalationLevelGT(v int) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGT(FieldEscalationLevel, v))
}

// EscalationLevelGTE applies the GTE predicate on the "escalation_level" field.
func EscalationLevelGTE(v int) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGTE(FieldEscalationLevel, v))
}

// EscalationLevelLT applies the LT predicate on the "escalation_level" field.
func EscalationLevelLT(v int) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLT(FieldEscalationLevel, v))
}

// EscalationLevelLTE applies the LTE predicate on the "escalation_level" field.
func EscalationLevelLTE(v int) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLTE(FieldEscalationLevel, v))
}

// ResponderRoleEQ applies the EQ predicate on the "responder_role" field.
func ResponderRoleEQ(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldResponderRole, v))
}

// ResponderRoleNEQ applies the NEQ predicate on the "responder_role" field.
func ResponderRoleNEQ(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNEQ(FieldResponderRole, v))
}

// ResponderRoleIn applies the In predicate on the "responder_role" field.
func ResponderRoleIn(vs ...string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldIn(FieldResponderRole, vs...))
}

// ResponderRoleNotIn applies the NotIn predicate on the "responder_role" field.
func ResponderRoleNotIn(vs ...string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNotIn(FieldResponderRole, vs...))
}

// ResponderRoleGT applies the GT predicate on the "responder_role" field.
func ResponderRoleGT(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGT(FieldResponderRole, v))
}

// ResponderRoleGTE applies the GTE predicate on the "responder_role" field.
func ResponderRoleGTE(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGTE(FieldResponderRole, v))
}

// ResponderRoleLT applies the LT predicate on the "responder_role" field.
func ResponderRoleLT(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLT(FieldResponderRole, v))
}

// ResponderRoleLTE applies the LTE predicate on the "responder_role" field.
func ResponderRoleLTE(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLTE(FieldResponderRole, v))
}

// ResponderRoleContains applies the Contains predicate on the "responder_role" field.
func ResponderRoleContains(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldContains(FieldResponderRole, v))
}

// ResponderRoleHasPrefix applies the HasPrefix predicate on the "responder_role" field.
func ResponderRoleHasPrefix(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldHasPrefix(FieldResponderRole, v))
}

// ResponderRoleHasSuffix applies the HasSuffix predicate on the "responder_role" field.
func ResponderRoleHasSuffix(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldHasSuffix(FieldResponderRole, v))
}

// ResponderRoleEqualFold applies the EqualFold predicate on the "responder_role" field.
func ResponderRoleEqualFold(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEqualFold(FieldResponderRole, v))
}

// ResponderRoleContainsFold applies the ContainsFold predicate on the "responder_role" field.
func ResponderRoleContainsFold(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldContainsFold(FieldResponderRole, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLTE(FieldPriority, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNEQ(FieldActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSquad applies the HasEdge predicate on the "squad" edge.
func HasSquad() predicate.RoutingRule {
	return predicate.RoutingRule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SquadTable, SquadColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSquadWith applies the HasEdge predicate on the "squad" edge with a given conditions (other predicates).
func HasSquadWith(preds ...predicate.Squad) predicate.RoutingRule {
	return predicate.RoutingRule(func(s *sql.Selector) {
		step := newSquadStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RoutingRule) predicate.RoutingRule {
	return predicate.RoutingRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RoutingRule) predicate.RoutingRule {
	return predicate.RoutingRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RoutingRule) predicate.RoutingRule {
	return predicate.RoutingRule(sql.NotPredicates(p))
}
