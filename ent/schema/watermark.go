package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Watermark holds the schema definition for the Watermark entity.
// Last-processed conversation event sequence per (agent, conversation).
// Agent runtimes advance it after handling a message; on restart the bus
// replays the unread tail above the watermark, making in-process delivery
// at-least-once across crashes.
type Watermark struct {
	ent.Schema
}

// Fields of the Watermark.
func (Watermark) Fields() []ent.Field {
	return []ent.Field{
		field.String("agent_id"),
		field.String("conversation_id"),
		field.Int("sequence").
			Default(0).
			NonNegative(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Watermark.
func (Watermark) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "conversation_id").
			Unique(),
	}
}
