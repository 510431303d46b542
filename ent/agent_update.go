// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/squadflow/squadflow/ent/agent"
	"github.com/squadflow/squadflow/ent/predicate"
)

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRole sets the "role" field.
func (_u *AgentUpdate) SetRole(v agent.Role) *AgentUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableRole(v *agent.Role) *AgentUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetSpecialization sets the "specialization" field.
func (_u *AgentUpdate) SetSpecialization(v string) *AgentUpdate {
	_u.mutation.SetSpecialization(v)
	return _u
}

// SetNillableSpecialization sets the "specialization" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableSpecialization(v *string) *AgentUpdate {
	if v != nil {
		_u.SetSpecialization(*v)
	}
	return _u
}

// SetGeneratorRef sets the "generator_ref" field.
func (_u *AgentUpdate) SetGeneratorRef(v map[string]interface{}) *AgentUpdate {
	_u.mutation.SetGeneratorRef(v)
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *AgentUpdate) SetSystemPrompt(v string) *AgentUpdate {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableSystemPrompt(v *string) *AgentUpdate {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetToolCapabilities sets the "tool_capabilities" field.
func (_u *AgentUpdate) SetToolCapabilities(v []string) *AgentUpdate {
	_u.mutation.SetToolCapabilities(v)
	return _u
}

// AppendToolCapabilities appends value to the "tool_capabilities" field.
func (_u *AgentUpdate) AppendToolCapabilities(v []string) *AgentUpdate {
	_u.mutation.AppendToolCapabilities(v)
	return _u
}

// ClearToolCapabilities clears the value of the "tool_capabilities" field.
func (_u *AgentUpdate) ClearToolCapabilities() *AgentUpdate {
	_u.mutation.ClearToolCapabilities()
	return _u
}

// SetActive sets the "active" field.
func (_u *AgentUpdate) SetActive(v bool) *AgentUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableActive(v *bool) *AgentUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdate) Mutation() *AgentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := agent.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Agent.role": %w`, err)}
		}
	}
	if _u.mutation.SquadCleared() && len(_u.mutation.SquadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Agent.squad"`)
	}
	return nil
}

func (_u *AgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(agent.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Specialization(); ok {
		_spec.SetField(agent.FieldSpecialization, field.TypeString, value)
	}
	if value, ok := _u.mutation.GeneratorRef(); ok {
		_spec.SetField(agent.FieldGeneratorRef, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(agent.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolCapabilities(); ok {
		_spec.SetField(agent.FieldToolCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldToolCapabilities, value)
		})
	}
	if _u.mutation.ToolCapabilitiesCleared() {
		_spec.ClearField(agent.FieldToolCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(agent.FieldActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMutation
}

// SetRole sets the "role" field.
func (_u *AgentUpdateOne) SetRole(v agent.Role) *AgentUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableRole(v *agent.Role) *AgentUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetSpecialization sets the "specialization" field.
func (_u *AgentUpdateOne) SetSpecialization(v string) *AgentUpdateOne {
	_u.mutation.SetSpecialization(v)
	return _u
}

// SetNillableSpecialization sets the "specialization" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableSpecialization(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetSpecialization(*v)
	}
	return _u
}

// SetGeneratorRef sets the "generator_ref" field.
func (_u *AgentUpdateOne) SetGeneratorRef(v map[string]interface{}) *AgentUpdateOne {
	_u.mutation.SetGeneratorRef(v)
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *AgentUpdateOne) SetSystemPrompt(v string) *AgentUpdateOne {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableSystemPrompt(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetToolCapabilities sets the "tool_capabilities" field.
func (_u *AgentUpdateOne) SetToolCapabilities(v []string) *AgentUpdateOne {
	_u.mutation.SetToolCapabilities(v)
	return _u
}

// AppendToolCapabilities appends value to the "tool_capabilities" field.
func (_u *AgentUpdateOne) AppendToolCapabilities(v []string) *AgentUpdateOne {
	_u.mutation.AppendToolCapabilities(v)
	return _u
}

// ClearToolCapabilities clears the value of the "tool_capabilities" field.
func (_u *AgentUpdateOne) ClearToolCapabilities() *AgentUpdateOne {
	_u.mutation.ClearToolCapabilities()
	return _u
}

// SetActive sets the "active" field.
func (_u *AgentUpdateOne) SetActive(v bool) *AgentUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableActive(v *bool) *AgentUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdateOne) Mutation() *AgentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Agent entity.
func (_u *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := agent.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Agent.role": %w`, err)}
		}
	}
	if _u.mutation.SquadCleared() && len(_u.mutation.SquadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Agent.squad"`)
	}
	return nil
}

func (_u *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(agent.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Specialization(); ok {
		_spec.SetField(agent.FieldSpecialization, field.TypeString, value)
	}
	if value, ok := _u.mutation.GeneratorRef(); ok {
		_spec.SetField(agent.FieldGeneratorRef, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(agent.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolCapabilities(); ok {
		_spec.SetField(agent.FieldToolCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldToolCapabilities, value)
		})
	}
	if _u.mutation.ToolCapabilitiesCleared() {
		_spec.ClearField(agent.FieldToolCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(agent.FieldActive, field.TypeBool, value)
	}
	_node = &Agent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
