// Code generated by ent, DO NOT EDIT.

package conversationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/squadflow/squadflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldContainsFold(FieldID, id))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldEQ(FieldConversationID, v))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldEQ(FieldSequence, v))
}

// AuthorAgentID applies equality check predicate on the "author_agent_id" field. It's identical to AuthorAgentIDEQ.
func AuthorAgentID(v string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldEQ(FieldAuthorAgentID, v))
}

// OccurredAt applies equality check predicate on the "occurred_at" field. It's identical to OccurredAtEQ.
func OccurredAt(v time.Time) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldEQ(FieldOccurredAt, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldNotIn(FieldConversationID, vs...))
}

// ConversationIDGT applies the GT predicate on the "conversation_id" field.
func ConversationIDGT(v string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldGT(FieldConversationID, v))
}

// ConversationIDGTE applies the GTE predicate on the "conversation_id" field.
func ConversationIDGTE(v string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldGTE(FieldConversationID, v))
}

// ConversationIDLT applies the LT predicate on the "conversation_id" field.
func ConversationIDLT(v string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldLT(FieldConversationID, v))
}

// ConversationIDLTE applies the LTE predicate on the "conversation_id" field.
func ConversationIDLTE(v string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldLTE(FieldConversationID, v))
}

// ConversationIDContains applies the Contains predicate on the "conversation_id" field.
func ConversationIDContains(v string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldContains(FieldConversationID, v))
}

// ConversationIDHasPrefix applies the HasPrefix predicate on the "conversation_id" field.
func ConversationIDHasPrefix(v string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldHasPrefix(FieldConversationID, v))
}

// ConversationIDHasSuffix applies the HasSuffix predicate on the "conversation_id" field.
func ConversationIDHasSuffix(v string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldHasSuffix(FieldConversationID, v))
}

// ConversationIDEqualFold applies the EqualFold predicate on the "conversation_id" field.
func ConversationIDEqualFold(v string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldEqualFold(FieldConversationID, v))
}

// ConversationIDContainsFold applies the ContainsFold predicate on the "conversation_id" field.
func ConversationIDContainsFold(v string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldContainsFold(FieldConversationID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldLTE(FieldSequence, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldNotIn(FieldKind, vs...))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldNotNull(FieldPayload))
}

// AuthorAgentIDEQ applies the EQ predicate on the "author_agent_id" field.
func AuthorAgentIDEQ(v string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldEQ(FieldAuthorAgentID, v))
}

// AuthorAgentIDNEQ applies the NEQ predicate on the "author_agent_id" field.
func AuthorAgentIDNEQ(v string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldNEQ(FieldAuthorAgentID, v))
}

// AuthorAgentIDIn applies the In predicate on the "author_agent_id" field.
func AuthorAgentIDIn(vs ...string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldIn(FieldAuthorAgentID, vs...))
}

// AuthorAgentIDNotIn applies the NotIn predicate on the "author_agent_id" field.
func AuthorAgentIDNotIn(vs ...string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldNotIn(FieldAuthorAgentID, vs...))
}

// AuthorAgentIDGT applies the GT predicate on the "author_agent_id" field.
func AuthorAgentIDGT(v string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldGT(FieldAuthorAgentID, v))
}

// AuthorAgentIDGTE applies the GTE predicate on the "author_agent_id" field.
func AuthorAgentIDGTE(v string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldGTE(FieldAuthorAgentID, v))
}

// AuthorAgentIDLT applies the LT predicate on the "author_agent_id" field.
func AuthorAgentIDLT(v string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldLT(FieldAuthorAgentID, v))
}

// AuthorAgentIDLTE applies the LTE predicate on the "author_agent_id" field.
func AuthorAgentIDLTE(v string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldLTE(FieldAuthorAgentID, v))
}

// AuthorAgentIDContains applies the Contains predicate on the "author_agent_id" field.
func AuthorAgentIDContains(v string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldContains(FieldAuthorAgentID, v))
}

// AuthorAgentIDHasPrefix applies the HasPrefix predicate on the "author_agent_id" field.
func AuthorAgentIDHasPrefix(v string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldHasPrefix(FieldAuthorAgentID, v))
}

// AuthorAgentIDHasSuffix applies the HasSuffix predicate on the "author_agent_id" field.
func AuthorAgentIDHasSuffix(v string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldHasSuffix(FieldAuthorAgentID, v))
}

// AuthorAgentIDIsNil applies the IsNil predicate on the "author_agent_id" field.
func AuthorAgentIDIsNil() predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldIsNull(FieldAuthorAgentID))
}

// AuthorAgentIDNotNil applies the NotNil predicate on the "author_agent_id" field.
func AuthorAgentIDNotNil() predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldNotNull(FieldAuthorAgentID))
}

// AuthorAgentIDEqualFold applies the EqualFold predicate on the "author_agent_id" field.
func AuthorAgentIDEqualFold(v string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldEqualFold(FieldAuthorAgentID, v))
}

// AuthorAgentIDContainsFold applies the ContainsFold predicate on the "author_agent_id" field.
func AuthorAgentIDContainsFold(v string) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldContainsFold(FieldAuthorAgentID, v))
}

// OccurredAtEQ applies the EQ predicate on the "occurred_at" field.
func OccurredAtEQ(v time.Time) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldEQ(FieldOccurredAt, v))
}

// OccurredAtNEQ applies the NEQ predicate on the "occurred_at" field.
func OccurredAtNEQ(v time.Time) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldNEQ(FieldOccurredAt, v))
}

// OccurredAtIn applies the In predicate on the "occurred_at" field.
func OccurredAtIn(vs ...time.Time) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldIn(FieldOccurredAt, vs...))
}

// OccurredAtNotIn applies the NotIn predicate on the "occurred_at" field.
func OccurredAtNotIn(vs ...time.Time) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldNotIn(FieldOccurredAt, vs...))
}

// OccurredAtGT applies the GT predicate on the "occurred_at" field.
func OccurredAtGT(v time.Time) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldGT(FieldOccurredAt, v))
}

// OccurredAtGTE applies the GTE predicate on the "occurred_at" field.
func OccurredAtGTE(v time.Time) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldGTE(FieldOccurredAt, v))
}

// OccurredAtLT applies the LT predicate on the "occurred_at" field.
func OccurredAtLT(v time.Time) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldLT(FieldOccurredAt, v))
}

// OccurredAtLTE applies the LTE predicate on the "occurred_at" field.
func OccurredAtLTE(v time.Time) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.FieldLTE(FieldOccurredAt, v))
}

// HasConversation applies the HasEdge predicate on the "conversation" edge.
func HasConversation() predicate.ConversationEvent {
	return predicate.ConversationEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ConversationTable, ConversationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConversationWith applies the HasEdge predicate on the "conversation" edge with a given conditions (other predicates).
func HasConversationWith(preds ...predicate.Conversation) predicate.ConversationEvent {
	return predicate.ConversationEvent(func(s *sql.Selector) {
		step := newConversationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConversationEvent) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConversationEvent) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConversationEvent) predicate.ConversationEvent {
	return predicate.ConversationEvent(sql.NotPredicates(p))
}
