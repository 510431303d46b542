// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/squadflow/squadflow/ent/predicate"
	"github.com/squadflow/squadflow/ent/squadtemplate"
)

// SquadTemplateUpdate is the builder for updating SquadTemplate entities.
type SquadTemplateUpdate struct {
	config
	hooks    []Hook
	mutation *SquadTemplateMutation
}

// Where appends a list predicates to the SquadTemplateUpdate builder.
func (_u *SquadTemplateUpdate) Where(ps ...predicate.SquadTemplate) *SquadTemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSlug sets the "slug" field.
func (_u *SquadTemplateUpdate) SetSlug(v string) *SquadTemplateUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *SquadTemplateUpdate) SetNillableSlug(v *string) *SquadTemplateUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SquadTemplateUpdate) SetName(v string) *SquadTemplateUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SquadTemplateUpdate) SetNillableName(v *string) *SquadTemplateUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SquadTemplateUpdate) SetDescription(v string) *SquadTemplateUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SquadTemplateUpdate) SetNillableDescription(v *string) *SquadTemplateUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SquadTemplateUpdate) ClearDescription() *SquadTemplateUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetVersion sets the "version" field.
func (_u *SquadTemplateUpdate) SetVersion(v string) *SquadTemplateUpdate {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SquadTemplateUpdate) SetNillableVersion(v *string) *SquadTemplateUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// SetAgents sets the "agents" field.
func (_u *SquadTemplateUpdate) SetAgents(v []map[string]interface{}) *SquadTemplateUpdate {
	_u.mutation.SetAgents(v)
	return _u
}

// AppendAgents appends value to the "agents" field.
func (_u *SquadTemplateUpdate) AppendAgents(v []map[string]interface{}) *SquadTemplateUpdate {
	_u.mutation.AppendAgents(v)
	return _u
}

// SetRoutingRules sets the "routing_rules" field.
func (_u *SquadTemplateUpdate) SetRoutingRules(v []map[string]interface{}) *SquadTemplateUpdate {
	_u.mutation.SetRoutingRules(v)
	return _u
}

// AppendRoutingRules appends value to the "routing_rules" field.
func (_u *SquadTemplateUpdate) AppendRoutingRules(v []map[string]interface{}) *SquadTemplateUpdate {
	_u.mutation.AppendRoutingRules(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SquadTemplateUpdate) SetUpdatedAt(v time.Time) *SquadTemplateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SquadTemplateMutation object of the builder.
func (_u *SquadTemplateUpdate) Mutation() *SquadTemplateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SquadTemplateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SquadTemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SquadTemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SquadTemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SquadTemplateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := squadtemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SquadTemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(squadtemplate.Table, squadtemplate.Columns, sqlgraph.NewFieldSpec(squadtemplate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(squadtemplate.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(squadtemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(squadtemplate.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(squadtemplate.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(squadtemplate.FieldVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Agents(); ok {
		_spec.SetField(squadtemplate.FieldAgents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAgents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, squadtemplate.FieldAgents, value)
		})
	}
	if value, ok := _u.mutation.RoutingRules(); ok {
		_spec.SetField(squadtemplate.FieldRoutingRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRoutingRules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, squadtemplate.FieldRoutingRules, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(squadtemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{squadtemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SquadTemplateUpdateOne is the builder for updating a single SquadTemplate entity.
type SquadTemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SquadTemplateMutation
}

// SetSlug sets the "slug" field.
func (_u *SquadTemplateUpdateOne) SetSlug(v string) *SquadTemplateUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *SquadTemplateUpdateOne) SetNillableSlug(v *string) *SquadTemplateUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SquadTemplateUpdateOne) SetName(v string) *SquadTemplateUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SquadTemplateUpdateOne) SetNillableName(v *string) *SquadTemplateUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SquadTemplateUpdateOne) SetDescription(v string) *SquadTemplateUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SquadTemplateUpdateOne) SetNillableDescription(v *string) *SquadTemplateUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SquadTemplateUpdateOne) ClearDescription() *SquadTemplateUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetVersion sets the "version" field.
func (_u *SquadTemplateUpdateOne) SetVersion(v string) *SquadTemplateUpdateOne {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SquadTemplateUpdateOne) SetNillableVersion(v *string) *SquadTemplateUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// SetAgents sets the "agents" field.
func (_u *SquadTemplateUpdateOne) SetAgents(v []map[string]interface{}) *SquadTemplateUpdateOne {
	_u.mutation.SetAgents(v)
	return _u
}

// AppendAgents appends value to the "agents" field.
func (_u *SquadTemplateUpdateOne) AppendAgents(v []map[string]interface{}) *SquadTemplateUpdateOne {
	_u.mutation.AppendAgents(v)
	return _u
}

// SetRoutingRules sets the "routing_rules" field.
func (_u *SquadTemplateUpdateOne) SetRoutingRules(v []map[string]interface{}) *SquadTemplateUpdateOne {
	_u.mutation.SetRoutingRules(v)
	return _u
}

// AppendRoutingRules appends value to the "routing_rules" field.
func (_u *SquadTemplateUpdateOne) AppendRoutingRules(v []map[string]interface{}) *SquadTemplateUpdateOne {
	_u.mutation.AppendRoutingRules(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SquadTemplateUpdateOne) SetUpdatedAt(v time.Time) *SquadTemplateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SquadTemplateMutation object of the builder.
func (_u *SquadTemplateUpdateOne) Mutation() *SquadTemplateMutation {
	return _u.mutation
}

// Where appends a list predicates to the SquadTemplateUpdate builder.
func (_u *SquadTemplateUpdateOne) Where(ps ...predicate.SquadTemplate) *SquadTemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SquadTemplateUpdateOne) Select(field string, fields ...string) *SquadTemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SquadTemplate entity.
func (_u *SquadTemplateUpdateOne) Save(ctx context.Context) (*SquadTemplate, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SquadTemplateUpdateOne) SaveX(ctx context.Context) *SquadTemplate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SquadTemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SquadTemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SquadTemplateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := squadtemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SquadTemplateUpdateOne) sqlSave(ctx context.Context) (_node *SquadTemplate, err error) {
	_spec := sqlgraph.NewUpdateSpec(squadtemplate.Table, squadtemplate.Columns, sqlgraph.NewFieldSpec(squadtemplate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SquadTemplate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, squadtemplate.FieldID)
		for _, f := range fields {
			if !squadtemplate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != squadtemplate.FieldID {
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
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(squadtemplate.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(squadtemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(squadtemplate.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(squadtemplate.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(squadtemplate.FieldVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Agents(); ok {
		_spec.SetField(squadtemplate.FieldAgents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAgents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, squadtemplate.FieldAgents, value)
		})
	}
	if value, ok := _u.mutation.RoutingRules(); ok {
		_spec.SetField(squadtemplate.FieldRoutingRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRoutingRules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, squadtemplate.FieldRoutingRules, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(squadtemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SquadTemplate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{squadtemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
