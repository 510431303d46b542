package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for the Agent entity.
// One role instance inside a squad, bound to a text generator and a tool ACL.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("squad_id").
			Immutable(),
		field.Enum("role").
			Values(
				"project_manager",
				"solution_architect",
				"tech_lead",
				"backend_developer",
				"frontend_developer",
				"qa_tester",
				"devops_engineer",
				"ai_engineer",
				"designer",
				"data_scientist",
				"data_engineer",
				"ml_engineer",
			),
		field.String("specialization").
			Default("default").
			Comment("Free-form tag used as a tie-breaker when multiple agents share a role"),
		field.JSON("generator_ref", map[string]interface{}{}).
			Comment("Opaque handle to a TextGenerator (vendor, model, temperature, ...)"),
		field.Text("system_prompt"),
		field.JSON("tool_capabilities", []string{}).
			Optional().
			Comment("Tool names this agent may invoke — the ToolInvoker ACL"),
		field.Bool("active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Agent.
func (Agent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("squad", Squad.Type).
			Ref("agents").
			Field("squad_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("squad_id"),
		// One agent per (squad, role, specialization)
		index.Fields("squad_id", "role", "specialization").
			Unique(),
	}
}
