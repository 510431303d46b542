// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/squadflow/squadflow/ent/squadtemplate"
)

// SquadTemplate is the model entity for the SquadTemplate schema.
type SquadTemplate struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Kebab-case identifier used in /templates/{slug}/apply
	Slug string `json:"slug,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Version holds the value of the "version" field.
	Version string `json:"version,omitempty"`
	// Agent specs: role, specialization, generator_ref, system_prompt_ref, tool_capabilities
	Agents []map[string]interface{} `json:"agents,omitempty"`
	// Rule specs: asker_role, question_type, escalation_level, responder_role, priority
	RoutingRules []map[string]interface{} `json:"routing_rules,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SquadTemplate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case squadtemplate.FieldAgents, squadtemplate.FieldRoutingRules:
			values[i] = new([]byte)
		case squadtemplate.FieldID, squadtemplate.FieldSlug, squadtemplate.FieldName, squadtemplate.FieldDescription, squadtemplate.FieldVersion:
			values[i] = new(sql.NullString)
		case squadtemplate.FieldCreatedAt, squadtemplate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SquadTemplate fields.
func (_m *SquadTemplate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case squadtemplate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case squadtemplate.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case squadtemplate.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case squadtemplate.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case squadtemplate.FieldVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.String
			}
		case squadtemplate.FieldAgents:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field agents", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Agents); err != nil {
					return fmt.Errorf("unmarshal field agents: %w", err)
				}
			}
		case squadtemplate.FieldRoutingRules:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field routing_rules", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RoutingRules); err != nil {
					return fmt.Errorf("unmarshal field routing_rules: %w", err)
				}
			}
		case squadtemplate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case squadtemplate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SquadTemplate.
// This includes values selected through modifiers, order, etc.
func (_m *SquadTemplate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SquadTemplate.
// Note that you need to call SquadTemplate.Unwrap() before calling this method if this SquadTemplate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SquadTemplate) Update() *SquadTemplateUpdateOne {
	return NewSquadTemplateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SquadTemplate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SquadTemplate) Unwrap() *SquadTemplate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SquadTemplate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SquadTemplate) String() string {
	var builder strings.Builder
	builder.WriteString("SquadTemplate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(_m.Version)
	builder.WriteString(", ")
	builder.WriteString("agents=")
	builder.WriteString(fmt.Sprintf("%v", _m.Agents))
	builder.WriteString(", ")
	builder.WriteString("routing_rules=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoutingRules))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SquadTemplates is a parsable slice of SquadTemplate.
type SquadTemplates []*SquadTemplate
