// Code generated by ent, DO NOT EDIT.

package conversation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/squadflow/squadflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldID, id))
}

// SquadID applies equality check predicate on the "squad_id" field. It's identical to SquadIDEQ.
func SquadID(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldSquadID, v))
}

// TaskExecutionID applies equality check predicate on the "task_execution_id" field. It's identical to TaskExecutionIDEQ.
func TaskExecutionID(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldTaskExecutionID, v))
}

// AskerAgentID applies equality check predicate on the "asker_agent_id" field. It's identical to AskerAgentIDEQ.
func AskerAgentID(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldAskerAgentID, v))
}

// CurrentResponderAgentID applies equality check predicate on the "current_responder_agent_id" field. It's identical to CurrentResponderAgentIDEQ.
func CurrentResponderAgentID(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCurrentResponderAgentID, v))
}

// QuestionType applies equality check predicate on the "question_type" field. It's identical to QuestionTypeEQ.
func QuestionType(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldQuestionType, v))
}

// EscalationLevel applies equality check predicate on the "escalation_level" field. It's identical to EscalationLevelEQ.
func EscalationLevel(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldEscalationLevel, v))
}

// ParentConversationID applies equality check predicate on the "parent_conversation_id" field. It's identical to ParentConversationIDEQ.
func ParentConversationID(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldParentConversationID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClosedAt applies equality check predicate on the "closed_at" field. It's identical to ClosedAtEQ.
func ClosedAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldClosedAt, v))
}

// SquadIDEQ applies the EQ predicate on the "squad_id" field.
func SquadIDEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldSquadID, v))
}

// SquadIDNEQ applies the NEQ predicate on the "squad_id" field.
func SquadIDNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldSquadID, v))
}

// SquadIDIn applies the In predicate on the "squad_id" field.
func SquadIDIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldSquadID, vs...))
}

// SquadIDNotIn applies the NotIn predicate on the "squad_id" field.
func SquadIDNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldSquadID, vs...))
}

// SquadIDGT applies the GT predicate on the "squad_id" field.
func SquadIDGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldSquadID, v))
}

// SquadIDGTE applies the GTE predicate on the "squad_id" field.
func SquadIDGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldSquadID, v))
}

// SquadIDLT applies the LT predicate on the "squad_id" field.
func SquadIDLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldSquadID, v))
}

// SquadIDLTE applies the LTE predicate on the "squad_id" field.
func SquadIDLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldSquadID, v))
}

// SquadIDContains applies the Contains predicate on the "squad_id" field.
func SquadIDContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldSquadID, v))
}

// SquadIDHasPrefix applies the HasPrefix predicate on the "squad_id" field.
func SquadIDHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldSquadID, v))
}

// SquadIDHasSuffix applies the HasSuffix predicate on the "squad_id" field.
func SquadIDHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldSquadID, v))
}

// SquadIDEqualFold applies the EqualFold predicate on the "squad_id" field.
func SquadIDEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldSquadID, v))
}

// SquadIDContainsFold applies the ContainsFold predicate on the "squad_id" field.
func SquadIDContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldSquadID, v))
}

// TaskExecutionIDEQ applies the EQ predicate on the "task_execution_id" field.
func TaskExecutionIDEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldTaskExecutionID, v))
}

// TaskExecutionIDNEQ applies the NEQ predicate on the "task_execution_id" field.
func TaskExecutionIDNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldTaskExecutionID, v))
}

// TaskExecutionIDIn applies the In predicate on the "task_execution_id" field.
func TaskExecutionIDIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldTaskExecutionID, vs...))
}

// TaskExecutionIDNotIn applies the NotIn predicate on the "task_execution_id" field.
func TaskExecutionIDNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldTaskExecutionID, vs...))
}

// TaskExecutionIDGT applies the GT predicate on the "task_execution_id" field.
func TaskExecutionIDGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldTaskExecutionID, v))
}

// TaskExecutionIDGTE applies the GTE predicate on the "task_execution_id" field.
func TaskExecutionIDGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldTaskExecutionID, v))
}

// TaskExecutionIDLT applies the LT predicate on the "task_execution_id" field.
func TaskExecutionIDLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldTaskExecutionID, v))
}

// TaskExecutionIDLTE applies the LTE predicate on the "task_execution_id" field.
func TaskExecutionIDLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldTaskExecutionID, v))
}

// TaskExecutionIDContains applies the Contains predicate on the "task_execution_id" field.
func TaskExecutionIDContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldTaskExecutionID, v))
}

// TaskExecutionIDHasPrefix applies the HasPrefix predicate on the "task_execution_id" field.
func TaskExecutionIDHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldTaskExecutionID, v))
}

// TaskExecutionIDHasSuffix applies the HasSuffix predicate on the "task_execution_id" field.
func TaskExecutionIDHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldTaskExecutionID, v))
}

// TaskExecutionIDIsNil applies the IsNil predicate on the "task_execution_id" field.
func TaskExecutionIDIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldTaskExecutionID))
}

// TaskExecutionIDNotNil applies the NotNil predicate on the "task_execution_id" field.
func TaskExecutionIDNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldTaskExecutionID))
}

// TaskExecutionIDEqualFold applies the EqualFold predicate on the "task_execution_id" field.
func TaskExecutionIDEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldTaskExecutionID, v))
}

// TaskExecutionIDContainsFold applies the ContainsFold predicate on the "task_execution_id" field.
func TaskExecutionIDContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldTaskExecutionID, v))
}

// AskerAgentIDEQ applies the EQ predicate on the "asker_agent_id" field.
func AskerAgentIDEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldAskerAgentID, v))
}

// AskerAgentIDNEQ applies the NEQ predicate on the "asker_agent_id" field.
func AskerAgentIDNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldAskerAgentID, v))
}

// AskerAgentIDIn applies the In predicate on the "asker_agent_id" field.
func AskerAgentIDIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldAskerAgentID, vs...))
}

// AskerAgentIDNotIn applies the NotIn predicate on the "asker_agent_id" field.
func AskerAgentIDNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldAskerAgentID, vs...))
}

// AskerAgentIDGT applies the GT predicate on the "asker_agent_id" field.
func AskerAgentIDGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldAskerAgentID, v))
}

// AskerAgentIDGTE applies the GTE predicate on the "asker_agent_id" field.
func AskerAgentIDGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldAskerAgentID, v))
}

// AskerAgentIDLT applies the LT predicate on the "asker_agent_id" field.
func AskerAgentIDLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldAskerAgentID, v))
}

// AskerAgentIDLTE applies the LTE predicate on the "asker_agent_id" field.
func AskerAgentIDLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldAskerAgentID, v))
}

// AskerAgentIDContains applies the Contains predicate on the "asker_agent_id" field.
func AskerAgentIDContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldAskerAgentID, v))
}

// AskerAgentIDHasPrefix applies the HasPrefix predicate on the "asker_agent_id" field.
func AskerAgentIDHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldAskerAgentID, v))
}

// AskerAgentIDHasSuffix applies the HasSuffix predicate on the "asker_agent_id" field.
func AskerAgentIDHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldAskerAgentID, v))
}

// AskerAgentIDEqualFold applies the EqualFold predicate on the "asker_agent_id" field.
func AskerAgentIDEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldAskerAgentID, v))
}

// AskerAgentIDContainsFold applies the ContainsFold predicate on the "asker_agent_id" field.
func AskerAgentIDContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldAskerAgentID, v))
}

// CurrentResponderAgentIDEQ applies the EQ predicate on the "current_responder_agent_id" field.
func CurrentResponderAgentIDEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCurrentResponderAgentID, v))
}

// CurrentResponderAgentIDNEQ applies the NEQ predicate on the "current_responder_agent_id" field.
func CurrentResponderAgentIDNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldCurrentResponderAgentID, v))
}

// CurrentResponderAgentIDIn applies the In predicate on the "current_responder_agent_id" field.
func CurrentResponderAgentIDIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldCurrentResponderAgentID, vs...))
}

// CurrentResponderAgentIDNotIn applies the NotIn predicate on the "current_responder_agent_id" field.
func CurrentResponderAgentIDNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldCurrentResponderAgentID, vs...))
}

// CurrentResponderAgentIDGT applies the GT predicate on the "current_responder_agent_id" field.
func CurrentResponderAgentIDGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldCurrentResponderAgentID, v))
}

// CurrentResponderAgentIDGTE applies the GTE predicate on the "current_responder_agent_id" field.
func CurrentResponderAgentIDGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldCurrentResponderAgentID, v))
}

// CurrentResponderAgentIDLT applies the LT predicate on the "current_responder_agent_id" field.
func CurrentResponderAgentIDLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldCurrentResponderAgentID, v))
}

// CurrentResponderAgentIDLTE applies the LTE predicate on the "current_responder_agent_id" field.
func CurrentResponderAgentIDLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldCurrentResponderAgentID, v))
}

// CurrentResponderAgentIDContains applies the Contains predicate on the "current_responder_agent_id" field.
func CurrentResponderAgentIDContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldCurrentResponderAgentID, v))
}

// CurrentResponderAgentIDHasPrefix applies the HasPrefix predicate on the "current_responder_agent_id" field.
func CurrentResponderAgentIDHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldCurrentResponderAgentID, v))
}

// CurrentResponderAgentIDHasSuffix applies the HasSuffix predicate on the "current_responder_agent_id" field.
func CurrentResponderAgentIDHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldCurrentResponderAgentID, v))
}

// CurrentResponderAgentIDEqualFold applies the EqualFold predicate on the "current_responder_agent_id" field.
func CurrentResponderAgentIDEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldCurrentResponderAgentID, v))
}

// CurrentResponderAgentIDContainsFold applies the ContainsFold predicate on the "current_responder_agent_id" field.
func CurrentResponderAgentIDContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldCurrentResponderAgentID, v))
}

// QuestionTypeEQ applies the EQ predicate on the "question_type" field.
func QuestionTypeEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldQuestionType, v))
}

// QuestionTypeNEQ applies the NEQ predicate on the "question_type" field.
func QuestionTypeNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldQuestionType, v))
}

// QuestionTypeIn applies the In predicate on the "question_type" field.
func QuestionTypeIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldQuestionType, vs...))
}

// QuestionTypeNotIn applies the NotIn predicate on the "question_type" field.
func QuestionTypeNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldQuestionType, vs...))
}

// QuestionTypeGT applies the GT predicate on the "question_type" field.
func QuestionTypeGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldQuestionType, v))
}

// QuestionTypeGTE applies the GTE predicate on the "question_type" field.
func QuestionTypeGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldQuestionType, v))
}

// QuestionTypeLT applies the LT predicate on the "question_type" field.
func QuestionTypeLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldQuestionType, v))
}

// QuestionTypeLTE applies the LTE predicate on the "question_type" field.
func QuestionTypeLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldQuestionType, v))
}

// QuestionTypeContains applies the Contains predicate on the "question_type" field.
func QuestionTypeContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldQuestionType, v))
}

// QuestionTypeHasPrefix applies the HasPrefix predicate on the "question_type" field.
func QuestionTypeHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldQuestionType, v))
}

// QuestionTypeHasSuffix applies the HasSuffix predicate on the "question_type" field.
func QuestionTypeHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldQuestionType, v))
}

// QuestionTypeEqualFold applies the EqualFold predicate on the "question_type" field.
func QuestionTypeEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldQuestionType, v))
}

// QuestionTypeContainsFold applies the ContainsFold predicate on the "question_type" field.
func QuestionTypeContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldQuestionType, v))
}

// EscalationLevelEQ applies the EQ predicate on the "escalation_level" field.
func EscalationLevelEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldEscalationLevel, v))
}

// EscalationLevelNEQ applies the NEQ predicate on the "escalation_level" field.
func EscalationLevelNEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldEscalationLevel, v))
}

// EscalationLevelIn applies the In predicate on the "escalation_level" field.
func EscalationLevelIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldEscalationLevel, vs...))
}

// EscalationLevelNotIn applies the NotIn predicate on the "escalation_level" field.
func EscalationLevelNotIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldEscalationLevel, vs...))
}

// EscalationLevelGT applies the GT predicate on the "escalation_level" field.
func EscalationLevelGT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldEscalationLevel, v))
}

// EscalationLevelGTE applies the GTE predicate on the "escalation_level" field.
func EscalationLevelGTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldEscalationLevel, v))
}

// EscalationLevelLT applies the LT predicate on the "escalation_level" field.
func EscalationLevelLT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldEscalationLevel, v))
}

// EscalationLevelLTE applies the LTE predicate on the "escalation_level" field.
func EscalationLevelLTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldEscalationLevel, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldState, vs...))
}

// ParentConversationIDEQ applies the EQ predicate on the "parent_conversation_id" field.
func ParentConversationIDEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldParentConversationID, v))
}

// ParentConversationIDNEQ applies the NEQ predicate on the "parent_conversation_id" field.
func ParentConversationIDNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldParentConversationID, v))
}

// ParentConversationIDIn applies the In predicate on the "parent_conversation_id" field.
func ParentConversationIDIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldParentConversationID, vs...))
}

// ParentConversationIDNotIn applies the NotIn predicate on the "parent_conversation_id" field.
func ParentConversationIDNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldParentConversationID, vs...))
}

// ParentConversationIDGT applies the GT predicate on the "parent_conversation_id" field.
func ParentConversationIDGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldParentConversationID, v))
}

// ParentConversationIDGTE applies the GTE predicate on the "parent_conversation_id" field.
func ParentConversationIDGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldParentConversationID, v))
}

// ParentConversationIDLT applies the LT predicate on the "parent_conversation_id" field.
func ParentConversationIDLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldParentConversationID, v))
}

// ParentConversationIDLTE applies the LTE predicate on the "parent_conversation_id" field.
func ParentConversationIDLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldParentConversationID, v))
}

// ParentConversationIDContains applies the Contains predicate on the "parent_conversation_id" field.
func ParentConversationIDContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldParentConversationID, v))
}

// ParentConversationIDHasPrefix applies the HasPrefix predicate on the "parent_conversation_id" field.
func ParentConversationIDHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldParentConversationID, v))
}

// ParentConversationIDHasSuffix applies the HasSuffix predicate on the "parent_conversation_id" field.
func ParentConversationIDHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldParentConversationID, v))
}

// ParentConversationIDIsNil applies the IsNil predicate on the "parent_conversation_id" field.
func ParentConversationIDIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldParentConversationID))
}

// ParentConversationIDNotNil applies the NotNil predicate on the "parent_conversation_id" field.
func ParentConversationIDNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldParentConversationID))
}

// ParentConversationIDEqualFold applies the EqualFold predicate on the "parent_conversation_id" field.
func ParentConversationIDEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldParentConversationID, v))
}

// ParentConversationIDContainsFold applies the ContainsFold predicate on the "parent_conversation_id" field.
func ParentConversationIDContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldParentConversationID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldUpdatedAt, v))
}

// ClosedAtEQ applies the EQ predicate on the "closed_at" field.
func ClosedAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldClosedAt, v))
}

// ClosedAtNEQ applies the NEQ predicate on the "closed_at" field.
func ClosedAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldClosedAt, v))
}

// ClosedAtIn applies the In predicate on the "closed_at" field.
func ClosedAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldClosedAt, vs...))
}

// ClosedAtNotIn applies the NotIn predicate on the "closed_at" field.
func ClosedAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldClosedAt, vs...))
}

// ClosedAtGT applies the GT predicate on the "closed_at" field.
func ClosedAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldClosedAt, v))
}

// ClosedAtGTE applies the GTE predicate on the "closed_at" field.
func ClosedAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldClosedAt, v))
}

// ClosedAtLT applies the LT predicate on the "closed_at" field.
func ClosedAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldClosedAt, v))
}

// ClosedAtLTE applies the LTE predicate on the "closed_at" field.
func ClosedAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldClosedAt, v))
}

// ClosedAtIsNil applies the IsNil predicate on the "closed_at" field.
func ClosedAtIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldClosedAt))
}

// ClosedAtNotNil applies the NotNil predicate on the "closed_at" field.
func ClosedAtNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldClosedAt))
}

// HasSquad applies the HasEdge predicate on the "squad" edge.
func HasSquad() predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SquadTable, SquadColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSquadWith applies the HasEdge predicate on the "squad" edge with a given conditions (other predicates).
func HasSquadWith(preds ...predicate.Squad) predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := newSquadStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.ConversationEvent) predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.Message) predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.NotPredicates(p))
}
