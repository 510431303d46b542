// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"project_manager", "solution_architect", "tech_lead", "backend_developer", "frontend_developer", "qa_tester", "devops_engineer", "ai_engineer", "designer", "data_scientist", "data_engineer", "ml_engineer"}},
		{Name: "specialization", Type: field.TypeString, Default: "default"},
		{Name: "generator_ref", Type: field.TypeJSON},
		{Name: "system_prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "tool_capabilities", Type: field.TypeJSON, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "squad_id", Type: field.TypeString},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agents_squads_agents",
				Columns:    []*schema.Column{AgentsColumns[8]},
				RefColumns: []*schema.Column{SquadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agent_squad_id",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[8]},
			},
			{
				Name:    "agent_squad_id_role_specialization",
				Unique:  true,
				Columns: []*schema.Column{AgentsColumns[8], AgentsColumns[1], AgentsColumns[2]},
			},
		},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "conversation_id", Type: field.TypeString, Unique: true},
		{Name: "task_execution_id", Type: field.TypeString, Nullable: true},
		{Name: "asker_agent_id", Type: field.TypeString},
		{Name: "current_responder_agent_id", Type: field.TypeString},
		{Name: "question_type", Type: field.TypeString},
		{Name: "escalation_level", Type: field.TypeInt, Default: 0},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"initiated", "waiting", "answered", "acknowledged", "escalated", "timed_out", "abandoned"}, Default: "initiated"},
		{Name: "parent_conversation_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "closed_at", Type: field.TypeTime, Nullable: true},
		{Name: "squad_id", Type: field.TypeString},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conversations_squads_conversations",
				Columns:    []*schema.Column{ConversationsColumns[11]},
				RefColumns: []*schema.Column{SquadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_squad_id",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[11]},
			},
			{
				Name:    "conversation_state_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[6], ConversationsColumns[9]},
			},
			{
				Name:    "conversation_task_execution_id",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[1]},
			},
			{
				Name:    "conversation_parent_conversation_id",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[7]},
			},
		},
	}
	// ConversationEventsColumns holds the columns for the "conversation_events" table.
	ConversationEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"initiated", "answered", "acknowledged", "escalated", "timed_out", "message_appended", "state_changed", "external_note"}},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "author_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString},
	}
	// ConversationEventsTable holds the schema information for the "conversation_events" table.
	ConversationEventsTable = &schema.Table{
		Name:       "conversation_events",
		Columns:    ConversationEventsColumns,
		PrimaryKey: []*schema.Column{ConversationEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conversation_events_conversations_events",
				Columns:    []*schema.Column{ConversationEventsColumns[6]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conversationevent_conversation_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{ConversationEventsColumns[6], ConversationEventsColumns[1]},
			},
			{
				Name:    "conversationevent_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationEventsColumns[5]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "squad_id", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "squad_id", Type: field.TypeString},
		{Name: "sender_agent_id", Type: field.TypeString},
		{Name: "recipient_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"question", "answer", "acknowledgment", "standup", "task_assignment", "status_update", "review_request", "review_feedback", "completion", "human_intervention_required", "system"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString, Nullable: true},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_conversations_messages",
				Columns:    []*schema.Column{MessagesColumns[8]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_conversation_id",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[8]},
			},
			{
				Name:    "message_squad_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[1], MessagesColumns[7]},
			},
			{
				Name:    "message_recipient_agent_id",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[3]},
			},
		},
	}
	// RoutingRulesColumns holds the columns for the "routing_rules" table.
	RoutingRulesColumns = []*schema.Column{
		{Name: "rule_id", Type: field.TypeString, Unique: true},
		{Name: "asker_role", Type: field.TypeString},
		{Name: "question_type", Type: field.TypeString, Default: "default"},
		{Name: "escalation_level", Type: field.TypeInt, Default: 0},
		{Name: "responder_role", Type: field.TypeString},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "squad_id", Type: field.TypeString},
	}
	// RoutingRulesTable holds the schema information for the "routing_rules" table.
	RoutingRulesTable = &schema.Table{
		Name:       "routing_rules",
		Columns:    RoutingRulesColumns,
		PrimaryKey: []*schema.Column{RoutingRulesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "routing_rules_squads_routing_rules",
				Columns:    []*schema.Column{RoutingRulesColumns[8]},
				RefColumns: []*schema.Column{SquadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "routingrule_squad_id_asker_role_escalation_level",
				Unique:  false,
				Columns: []*schema.Column{RoutingRulesColumns[8], RoutingRulesColumns[1], RoutingRulesColumns[3]},
			},
			{
				Name:    "routingrule_squad_id_asker_role_question_type_escalation_level_responder_role",
				Unique:  true,
				Columns: []*schema.Column{RoutingRulesColumns[8], RoutingRulesColumns[1], RoutingRulesColumns[2], RoutingRulesColumns[3], RoutingRulesColumns[4]},
			},
		},
	}
	// SquadsColumns holds the columns for the "squads" table.
	SquadsColumns = []*schema.Column{
		{Name: "squad_id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SquadsTable holds the schema information for the "squads" table.
	SquadsTable = &schema.Table{
		Name:       "squads",
		Columns:    SquadsColumns,
		PrimaryKey: []*schema.Column{SquadsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "squad_owner_id",
				Unique:  false,
				Columns: []*schema.Column{SquadsColumns[1]},
			},
		},
	}
	// SquadTemplatesColumns holds the columns for the "squad_templates" table.
	SquadTemplatesColumns = []*schema.Column{
		{Name: "template_id", Type: field.TypeString, Unique: true},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "version", Type: field.TypeString},
		{Name: "agents", Type: field.TypeJSON},
		{Name: "routing_rules", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SquadTemplatesTable holds the schema information for the "squad_templates" table.
	SquadTemplatesTable = &schema.Table{
		Name:       "squad_templates",
		Columns:    SquadTemplatesColumns,
		PrimaryKey: []*schema.Column{SquadTemplatesColumns[0]},
	}
	// WatermarksColumns holds the columns for the "watermarks" table.
	WatermarksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "conversation_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WatermarksTable holds the schema information for the "watermarks" table.
	WatermarksTable = &schema.Table{
		Name:       "watermarks",
		Columns:    WatermarksColumns,
		PrimaryKey: []*schema.Column{WatermarksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "watermark_agent_id_conversation_id",
				Unique:  true,
				Columns: []*schema.Column{WatermarksColumns[1], WatermarksColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		ConversationsTable,
		ConversationEventsTable,
		EventsTable,
		MessagesTable,
		RoutingRulesTable,
		SquadsTable,
		SquadTemplatesTable,
		WatermarksTable,
	}
)

func init() {
	AgentsTable.ForeignKeys[0].RefTable = SquadsTable
	ConversationsTable.ForeignKeys[0].RefTable = SquadsTable
	ConversationEventsTable.ForeignKeys[0].RefTable = ConversationsTable
	MessagesTable.ForeignKeys[0].RefTable = ConversationsTable
	RoutingRulesTable.ForeignKeys[0].RefTable = SquadsTable
}
