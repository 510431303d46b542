package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RoutingRule holds the schema definition for the RoutingRule entity.
// Declarative dispatch entry: (asker role, question type, escalation level) → responder role.
type RoutingRule struct {
	ent.Schema
}

// Fields of the RoutingRule.
func (RoutingRule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rule_id").
			Unique().
			Immutable(),
		field.String("squad_id").
			Immutable(),
		field.String("asker_role"),
		field.String("question_type").
			Default("default").
			Comment("\"default\" matches any question type with no specific rule at the level"),
		field.Int("escalation_level").
			Default(0).
			NonNegative().
			Comment("0 = first responder; increments per escalation hop"),
		field.String("responder_role"),
		field.Int("priority").
			Default(0).
			Comment("Higher wins; ties broken by responder_role then rule id"),
		field.Bool("active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RoutingRule.
func (RoutingRule) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("squad", Squad.Type).
			Ref("routing_rules").
			Field("squad_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RoutingRule.
func (RoutingRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("squad_id", "asker_role", "escalation_level"),
		index.Fields("squad_id", "asker_role", "question_type", "escalation_level", "responder_role").
			Unique(),
	}
}
