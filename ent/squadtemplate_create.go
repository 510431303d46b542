// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/squadflow/squadflow/ent/squadtemplate"
)

// SquadTemplateCreate is the builder for creating a SquadTemplate entity.
type SquadTemplateCreate struct {
	config
	mutation *SquadTemplateMutation
	hooks    []Hook
}

// SetSlug sets the "slug" field.
func (_c *SquadTemplateCreate) SetSlug(v string) *SquadTemplateCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SquadTemplateCreate) SetName(v string) *SquadTemplateCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *SquadTemplateCreate) SetDescription(v string) *SquadTemplateCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *SquadTemplateCreate) SetNillableDescription(v *string) *SquadTemplateCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *SquadTemplateCreate) SetVersion(v string) *SquadTemplateCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetAgents sets the "agents" field.
func (_c *SquadTemplateCreate) SetAgents(v []map[string]interface{}) *SquadTemplateCreate {
	_c.mutation.SetAgents(v)
	return _c
}

// SetRoutingRules sets the "routing_rules" field.
func (_c *SquadTemplateCreate) SetRoutingRules(v []map[string]interface{}) *SquadTemplateCreate {
	_c.mutation.SetRoutingRules(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SquadTemplateCreate) SetCreatedAt(v time.Time) *SquadTemplateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SquadTemplateCreate) SetNillableCreatedAt(v *time.Time) *SquadTemplateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SquadTemplateCreate) SetUpdatedAt(v time.Time) *SquadTemplateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SquadTemplateCreate) SetNillableUpdatedAt(v *time.Time) *SquadTemplateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SquadTemplateCreate) SetID(v string) *SquadTemplateCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SquadTemplateMutation object of the builder.
func (_c *SquadTemplateCreate) Mutation() *SquadTemplateMutation {
	return _c.mutation
}

// Save creates the SquadTemplate in the database.
func (_c *SquadTemplateCreate) Save(ctx context.Context) (*SquadTemplate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SquadTemplateCreate) SaveX(ctx context.Context) *SquadTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SquadTemplateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SquadTemplateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SquadTemplateCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := squadtemplate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := squadtemplate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SquadTemplateCreate) check() error {
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "SquadTemplate.slug"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "SquadTemplate.name"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "SquadTemplate.version"`)}
	}
	if _, ok := _c.mutation.Agents(); !ok {
		return &ValidationError{Name: "agents", err: errors.New(`ent: missing required field "SquadTemplate.agents"`)}
	}
	if _, ok := _c.mutation.RoutingRules(); !ok {
		return &ValidationError{Name: "routing_rules", err: errors.New(`ent: missing required field "SquadTemplate.routing_rules"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SquadTemplate.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SquadTemplate.updated_at"`)}
	}
	return nil
}

func (_c *SquadTemplateCreate) sqlSave(ctx context.Context) (*SquadTemplate, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SquadTemplate.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SquadTemplateCreate) createSpec() (*SquadTemplate, *sqlgraph.CreateSpec) {
	var (
		_node = &SquadTemplate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(squadtemplate.Table, sqlgraph.NewFieldSpec(squadtemplate.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(squadtemplate.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(squadtemplate.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(squadtemplate.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(squadtemplate.FieldVersion, field.TypeString, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Agents(); ok {
		_spec.SetField(squadtemplate.FieldAgents, field.TypeJSON, value)
		_node.Agents = value
	}
	if value, ok := _c.mutation.RoutingRules(); ok {
		_spec.SetField(squadtemplate.FieldRoutingRules, field.TypeJSON, value)
		_node.RoutingRules = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(squadtemplate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(squadtemplate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SquadTemplateCreateBulk is the builder for creating many SquadTemplate entities in bulk.
type SquadTemplateCreateBulk struct {
	config
	err      error
	builders []*SquadTemplateCreate
}

// Save creates the SquadTemplate entities in the database.
func (_c *SquadTemplateCreateBulk) Save(ctx context.Context) ([]*SquadTemplate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SquadTemplate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SquadTemplateMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SquadTemplateCreateBulk) SaveX(ctx context.Context) []*SquadTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SquadTemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SquadTemplateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
