package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity.
// The datagram moved by the bus. Conversation-scoped messages always produce a
// message_appended ConversationEvent in the same transaction; broadcasts are
// squad-scoped and have no conversation.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("conversation_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Nil for squad broadcasts"),
		field.String("squad_id").
			Immutable(),
		field.String("sender_agent_id").
			Immutable(),
		field.String("recipient_agent_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Nil for broadcast — delivered to every squad agent except the sender"),
		field.Enum("type").
			Values(
				"question",
				"answer",
				"acknowledgment",
				"standup",
				"task_assignment",
				"status_update",
				"review_request",
				"review_feedback",
				"completion",
				"human_intervention_required",
				"system",
			),
		field.Text("content"),
		field.JSON("metadata", map[string]string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("messages").
			Field("conversation_id").
			Unique().
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id"),
		index.Fields("squad_id", "created_at"),
		index.Fields("recipient_agent_id"),
	}
}
