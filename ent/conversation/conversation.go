// Code generated by ent, DO NOT EDIT.

package conversation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the conversation type in the database.
	Label = "conversation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "conversation_id"
	// FieldSquadID holds the string denoting the squad_id field in the database.
	FieldSquadID = "squad_id"
	// FieldTaskExecutionID holds the string denoting the task_execution_id field in the database.
	FieldTaskExecutionID = "task_execution_id"
	// FieldAskerAgentID holds the string denoting the asker_agent_id field in the database.
	FieldAskerAgentID = "asker_agent_id"
	// FieldCurrentResponderAgentID holds the string denoting the current_responder_agent_id field in the database.
	FieldCurrentResponderAgentID = "current_responder_agent_id"
	// FieldQuestionType holds the string denoting the question_type field in the database.
	FieldQuestionType = "question_type"
	// FieldEscalationLevel holds the string denoting the escalation_level field in the database.
	FieldEscalationLevel = "escalation_level"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldParentConversationID holds the string denoting the parent_conversation_id field in the database.
	FieldParentConversationID = "parent_conversation_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldClosedAt holds the string denoting the closed_at field in the database.
	FieldClosedAt = "closed_at"
	// EdgeSquad holds the string denoting the squad edge name in mutations.
	EdgeSquad = "squad"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// SquadFieldID holds the string denoting the ID field of the Squad.
	SquadFieldID = "squad_id"
	// ConversationEventFieldID holds the string denoting the ID field of the ConversationEvent.
	ConversationEventFieldID = "event_id"
	// MessageFieldID holds the string denoting the ID field of the Message.
	MessageFieldID = "message_id"
	// Table holds the table name of the conversation in the database.
	Table = "conversations"
	// SquadTable is the table that holds the squad relation/edge.
	SquadTable = "conversations"
	// SquadInverseTable is the table name for the Squad entity.
	// It exists in this package in order to avoid circular dependency with the "squad" package.
	SquadInverseTable = "squads"
	// SquadColumn is the table column denoting the squad relation/edge.
	SquadColumn = "squad_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "conversation_events"
	// EventsInverseTable is the table name for the ConversationEvent entity.
	// It exists in this package in order to avoid circular dependency with the "conversationevent" package.
	EventsInverseTable = "conversation_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "conversation_id"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "messages"
	// MessagesInverseTable is the table name for the Message entity.
	// It exists in this package in order to avoid circular dependency with the "message" package.
	MessagesInverseTable = "messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "conversation_id"
)

// Columns holds all SQL columns for conversation fields.
var Columns = []string{
	FieldID,
	FieldSquadID,
	FieldTaskExecutionID,
	FieldAskerAgentID,
	FieldCurrentResponderAgentID,
	FieldQuestionType,
	FieldEscalationLevel,
	FieldState,
	FieldParentConversationID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldClosedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultEscalationLevel holds the default value on creation for the "escalation_level" field.
	DefaultEscalationLevel int
	// EscalationLevelValidator is a validator for the "escalation_level" field. It is called by the builders before save.
	EscalationLevelValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// State defines the type for the "state" enum field.
type State string

// StateInitiated is the default value of the State enum.
const DefaultState = StateInitiated

// State values.
const (
	StateInitiated    State = "initiated"
	StateWaiting      State = "waiting"
	StateAnswered     State = "answered"
	StateAcknowledged State = "acknowledged"
	StateEscalated    State = "escalated"
	StateTimedOut     State = "timed_out"
	StateAbandoned    State = "abandoned"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateInitiated, StateWaiting, StateAnswered, StateAcknowledged, StateEscalated, StateTimedOut, StateAbandoned:
		return nil
	default:
		return fmt.Errorf("conversation: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the Conversation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySquadID orders the results by the squad_id field.
func BySquadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSquadID, opts...).ToFunc()
}

// ByTaskExecutionID orders the results by the task_execution_id field.
func ByTaskExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskExecutionID, opts...).ToFunc()
}

// ByAskerAgentID orders the results by the asker_agent_id field.
func ByAskerAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAskerAgentID, opts...).ToFunc()
}

// ByCurrentResponderAgentID orders the results by the current_responder_agent_id field.
func ByCurrentResponderAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentResponderAgentID, opts...).ToFunc()
}

// ByQuestionType orders the results by the question_type field.
func ByQuestionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionType, opts...).ToFunc()
}

// ByEscalationLevel orders the results by the escalation_level field.
func ByEscalationLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEscalationLevel, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByParentConversationID orders the results by the parent_conversation_id field.
func ByParentConversationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentConversationID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByClosedAt orders the results by the closed_at field.
func ByClosedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClosedAt, opts...).ToFunc()
}

// BySquadField orders the results by squad field.
func BySquadField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSquadStep(), sql.OrderByField(field, opts...))
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSquadStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SquadInverseTable, SquadFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SquadTable, SquadColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, ConversationEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, MessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
