package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Squad holds the schema definition for the Squad entity.
// A squad is a user-owned container of agents and routing rules.
type Squad struct {
	ent.Schema
}

// Fields of the Squad.
func (Squad) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("squad_id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Immutable().
			Comment("Authenticated caller that created the squad"),
		field.String("name"),
		field.Text("description").
			Optional(),
		field.Bool("active").
			Default(true).
			Comment("Soft delete flag — squads are never hard-deleted"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Squad.
func (Squad) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("agents", Agent.Type),
		edge.To("routing_rules", RoutingRule.Type),
		edge.To("conversations", Conversation.Type),
	}
}

// Indexes of the Squad.
func (Squad) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
	}
}
