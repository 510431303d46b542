package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// SquadTemplate holds the schema definition for the SquadTemplate entity.
// Declarative squad spec: agents + routing rules, instantiated atomically.
type SquadTemplate struct {
	ent.Schema
}

// Fields of the SquadTemplate.
func (SquadTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("template_id").
			Unique().
			Immutable(),
		field.String("slug").
			Unique().
			Comment("Kebab-case identifier used in /templates/{slug}/apply"),
		field.String("name"),
		field.Text("description").
			Optional(),
		field.String("version"),
		field.JSON("agents", []map[string]interface{}{}).
			Comment("Agent specs: role, specialization, generator_ref, system_prompt_ref, tool_capabilities"),
		field.JSON("routing_rules", []map[string]interface{}{}).
			Comment("Rule specs: asker_role, question_type, escalation_level, responder_role, priority"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
