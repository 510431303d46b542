package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Conversation holds the schema definition for the Conversation entity.
// A durable question thread between two agents, advanced only by the
// conversation state machine.
type Conversation struct {
	ent.Schema
}

// Fields of the Conversation.
func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("conversation_id").
			Unique().
			Immutable(),
		field.String("squad_id").
			Immutable(),
		field.String("task_execution_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Opaque tag supplied by external callers"),
		field.String("asker_agent_id").
			Immutable(),
		field.String("current_responder_agent_id").
			Comment("Re-resolved on escalation"),
		field.String("question_type").
			Immutable(),
		field.Int("escalation_level").
			Default(0).
			NonNegative(),
		field.Enum("state").
			Values(
				"initiated",
				"waiting",
				"answered",
				"acknowledged",
				"escalated",
				"timed_out",
				"abandoned",
			).
			Default("initiated"),
		field.String("parent_conversation_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Set on the child opened by escalation"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Bumped in the same transaction as every event append — timer anchor"),
		field.Time("closed_at").
			Optional().
			Nillable().
			Comment("Set when the conversation reaches a terminal state"),
	}
}

// Edges of the Conversation.
func (Conversation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("squad", Squad.Type).
			Ref("conversations").
			Field("squad_id").
			Unique().
			Required().
			Immutable(),
		edge.To("events", ConversationEvent.Type),
		edge.To("messages", Message.Type),
	}
}

// Indexes of the Conversation.
func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("squad_id"),
		// Timer service scans by state + updated_at
		index.Fields("state", "updated_at"),
		index.Fields("task_execution_id"),
		index.Fields("parent_conversation_id"),
	}
}
