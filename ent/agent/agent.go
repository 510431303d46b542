// Code generated by ent, DO NOT EDIT.

package agent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agent type in the database.
	Label = "agent"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_id"
	// FieldSquadID holds the string denoting the squad_id field in the database.
	FieldSquadID = "squad_id"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldSpecialization holds the string denoting the specialization field in the database.
	FieldSpecialization = "specialization"
	// FieldGeneratorRef holds the string denoting the generator_ref field in the database.
	FieldGeneratorRef = "generator_ref"
	// FieldSystemPrompt holds the string denoting the system_prompt field in the database.
	FieldSystemPrompt = "system_prompt"
	// FieldToolCapabilities holds the string denoting the tool_capabilities field in the database.
	FieldToolCapabilities = "tool_capabilities"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSquad holds the string denoting the squad edge name in mutations.
	EdgeSquad = "squad"
	// SquadFieldID holds the string denoting the ID field of the Squad.
	SquadFieldID = "squad_id"
	// Table holds the table name of the agent in the database.
	Table = "agents"
	// SquadTable is the table that holds the squad relation/edge.
	SquadTable = "agents"
	// SquadInverseTable is the table name for the Squad entity.
	// It exists in this package in order to avoid circular dependency with the "squad" package.
	SquadInverseTable = "squads"
	// SquadColumn is the table column denoting the squad relation/edge.
	SquadColumn = "squad_id"
)

// Columns holds all SQL columns for agent fields.
var Columns = []string{
	FieldID,
	FieldSquadID,
	FieldRole,
	FieldSpecialization,
	FieldGeneratorRef,
	FieldSystemPrompt,
	FieldToolCapabilities,
	FieldActive,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultSpecialization holds the default value on creation for the "specialization" field.
	DefaultSpecialization string
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Role defines the type for the "role" enum field.
type Role string

// Role values.
const (
	RoleProjectManager    Role = "project_manager"
	RoleSolutionArchitect Role = "solution_architect"
	RoleTechLead          Role = "tech_lead"
	RoleBackendDeveloper  Role = "backend_developer"
	RoleFrontendDeveloper Role = "frontend_developer"
	RoleQaTester          Role = "qa_tester"
	RoleDevopsEngineer    Role = "devops_engineer"
	RoleAiEngineer        Role = "ai_engineer"
	RoleDesigner          Role = "designer"
	RoleDataScientist     Role = "data_scientist"
	RoleDataEngineer      Role = "data_engineer"
	RoleMlEngineer        Role = "ml_engineer"
)

func (r Role) String() string {
	return string(r)
}

// RoleValidator is a validator for the "role" field enum values. It is called by the builders before save.
func RoleValidator(r Role) error {
	switch r {
	case RoleProjectManager, RoleSolutionArchitect, RoleTechLead, RoleBackendDeveloper, RoleFrontendDeveloper, RoleQaTester, RoleDevopsEngineer, RoleAiEngineer, RoleDesigner, RoleDataScientist, RoleDataEngineer, RoleMlEngineer:
		return nil
	default:
		return fmt.Errorf("agent: invalid enum value for role field: %q", r)
	}
}

// OrderOption defines the ordering options for the Agent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySquadID orders the results by the squad_id field.
func BySquadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSquadID, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// BySpecialization orders the results by the specialization field.
func BySpecialization(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpecialization, opts...).ToFunc()
}

// BySystemPrompt orders the results by the system_prompt field.
func BySystemPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSystemPrompt, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySquadField orders the results by squad field.
func BySquadField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSquadStep(), sql.OrderByField(field, opts...))
	}
}
func newSquadStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SquadInverseTable, SquadFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SquadTable, SquadColumn),
	)
}
