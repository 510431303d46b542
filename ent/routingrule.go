// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/squadflow/squadflow/ent/routingrule"
	"github.com/squadflow/squadflow/ent/squad"
)

// RoutingRule is the model entity for the RoutingRule schema.
type RoutingRule struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SquadID holds the value of the "squad_id" field.
	SquadID string `json:"squad_id,omitempty"`
	// AskerRole holds the value of the "asker_role" field.
	AskerRole string `json:"asker_role,omitempty"`
	// "default" matches any question type with no specific rule at the level
	QuestionType string `json:"question_type,omitempty"`
	// 0 = first responder; increments per escalation hop
	EscalationLevel int `json:"escalation_level,omitempty"`
	// ResponderRole holds the value of the "responder_role" field.
	ResponderRole string `json:"responder_role,omitempty"`
	// Higher wins; ties broken by responder_role then rule id
	Priority int `json:"priority,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RoutingRuleQuery when eager-loading is set.
	Edges        RoutingRuleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RoutingRuleEdges holds the relations/edges for other nodes in the graph.
type RoutingRuleEdges struct {
	// Squad holds the value of the squad edge.
	Squad *Squad `json:"squad,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SquadOrErr returns the Squad value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RoutingRuleEdges) SquadOrErr() (*Squad, error) {
	if e.Squad != nil {
		return e.Squad, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: squad.Label}
	}
	return nil, &NotLoadedError{edge: "squad"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RoutingRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case routingrule.FieldActive:
			values[i] = new(sql.NullBool)
		case routingrule.FieldEscalationLevel, routingrule.FieldPriority:
			values[i] = new(sql.NullInt64)
		case routingrule.FieldID, routingrule.FieldSquadID, routingrule.FieldAskerRole, routingrule.FieldQuestionType, routingrule.FieldResponderRole:
			values[i] = new(sql.NullString)
		case routingrule.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RoutingRule fields.
func (_m *RoutingRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case routingrule.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case routingrule.FieldSquadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field squad_id", values[i])
			} else if value.Valid {
				_m.SquadID = value.String
			}
		case routingrule.FieldAskerRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field asker_role", values[i])
			} else if value.Valid {
				_m.AskerRole = value.String
			}
		case routingrule.FieldQuestionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_type", values[i])
			} else if value.Valid {
				_m.QuestionType = value.String
			}
		case routingrule.FieldEscalationLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field escalation_level", values[i])
			} else if value.Valid {
				_m.EscalationLevel = int(value.Int64)
			}
		case routingrule.FieldResponderRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field responder_role", values[i])
			} else if value.Valid {
				_m.ResponderRole = value.String
			}
		case routingrule.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case routingrule.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case routingrule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RoutingRule.
// This includes values selected through modifiers, order, etc.
func (_m *RoutingRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySquad queries the "squad" edge of the RoutingRule entity.
func (_m *RoutingRule) QuerySquad() *SquadQuery {
	return NewRoutingRuleClient(_m.config).QuerySquad(_m)
}

// Update returns a builder for updating this RoutingRule.
// Note that you need to call RoutingRule.Unwrap() before calling this method if this RoutingRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RoutingRule) Update() *RoutingRuleUpdateOne {
	return NewRoutingRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RoutingRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RoutingRule) Unwrap() *RoutingRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RoutingRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RoutingRule) String() string {
	var builder strings.Builder
	builder.WriteString("RoutingRule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("squad_id=")
	builder.WriteString(_m.SquadID)
	builder.WriteString(", ")
	builder.WriteString("asker_role=")
	builder.WriteString(_m.AskerRole)
	builder.WriteString(", ")
	builder.WriteString("question_type=")
	builder.WriteString(_m.QuestionType)
	builder.WriteString(", ")
	builder.WriteString("escalation_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.EscalationLevel))
	builder.WriteString(", ")
	builder.WriteString("responder_role=")
	builder.WriteString(_m.ResponderRole)
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RoutingRules is a parsable slice of RoutingRule.
type RoutingRules []*RoutingRule
