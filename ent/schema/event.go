package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity — the SSE outbox.
// Rows are written in the same transaction as the log append they mirror and
// broadcast via pg_notify; the auto-increment id is the monotonic frame id
// clients resume from with Last-Event-ID.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("squad_id"),
		field.String("channel").
			Comment("NOTIFY channel, e.g. \"squad:<id>\" or \"execution:<id>\""),
		field.JSON("payload", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		// Catchup: WHERE channel = ? AND id > ? ORDER BY id
		index.Fields("channel"),
		// TTL cleanup
		index.Fields("created_at"),
	}
}
