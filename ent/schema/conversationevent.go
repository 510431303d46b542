package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConversationEvent holds the schema definition for the ConversationEvent entity.
// Immutable audit record — the event log is the source of truth for everything
// that happened inside a conversation.
type ConversationEvent struct {
	ent.Schema
}

// Fields of the ConversationEvent.
func (ConversationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("conversation_id").
			Immutable(),
		field.Int("sequence").
			Immutable().
			Comment("Dense 1..N per conversation, enforced by unique index + retry"),
		field.Enum("kind").
			Values(
				"initiated",
				"answered",
				"acknowledged",
				"escalated",
				"timed_out",
				"message_appended",
				"state_changed",
				"external_note",
			),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.String("author_agent_id").
			Optional().
			Nillable().
			Immutable(),
		field.Time("occurred_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ConversationEvent.
func (ConversationEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("events").
			Field("conversation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ConversationEvent.
func (ConversationEvent) Indexes() []ent.Index {
	return []ent.Index{
		// Monotone dense per-conversation sequence
		index.Fields("conversation_id", "sequence").
			Unique(),
		index.Fields("occurred_at"),
	}
}
