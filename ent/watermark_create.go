// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/squadflow/squadflow/ent/watermark"
)

// WatermarkCreate is the builder for creating a Watermark entity.
type WatermarkCreate struct {
	config
	mutation *WatermarkMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *WatermarkCreate) SetAgentID(v string) *WatermarkCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetConversationID sets the "conversation_id" field.
func (_c *WatermarkCreate) SetConversationID(v string) *WatermarkCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *WatermarkCreate) SetSequence(v int) *WatermarkCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_c *WatermarkCreate) SetNillableSequence(v *int) *WatermarkCreate {
	if v != nil {
		_c.SetSequence(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WatermarkCreate) SetUpdatedAt(v time.Time) *WatermarkCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WatermarkCreate) SetNillableUpdatedAt(v *time.Time) *WatermarkCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the WatermarkMutation object of the builder.
func (_c *WatermarkCreate) Mutation() *WatermarkMutation {
	return _c.mutation
}

// Save creates the Watermark in the database.
func (_c *WatermarkCreate) Save(ctx context.Context) (*Watermark, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WatermarkCreate) SaveX(ctx context.Context) *Watermark {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WatermarkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WatermarkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WatermarkCreate) defaults() {
	if _, ok := _c.mutation.Sequence(); !ok {
		v := watermark.DefaultSequence
		_c.mutation.SetSequence(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := watermark.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WatermarkCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "Watermark.agent_id"`)}
	}
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`ent: missing required field "Watermark.conversation_id"`)}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "Watermark.sequence"`)}
	}
	if v, ok := _c.mutation.Sequence(); ok {
		if err := watermark.SequenceValidator(v); err != nil {
			return &ValidationError{Name: "sequence", err: fmt.Errorf(`ent: validator failed for field "Watermark.sequence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Watermark.updated_at"`)}
	}
	return nil
}

func (_c *WatermarkCreate) sqlSave(ctx context.Context) (*Watermark, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WatermarkCreate) createSpec() (*Watermark, *sqlgraph.CreateSpec) {
	var (
		_node = &Watermark{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(watermark.Table, sqlgraph.NewFieldSpec(watermark.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(watermark.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.ConversationID(); ok {
		_spec.SetField(watermark.FieldConversationID, field.TypeString, value)
		_node.ConversationID = value
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(watermark.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(watermark.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// WatermarkCreateBulk is the builder for creating many Watermark entities in bulk.
type WatermarkCreateBulk struct {
	config
	err      error
	builders []*WatermarkCreate
}

// Save creates the Watermark entities in the database.
func (_c *WatermarkCreateBulk) Save(ctx context.Context) ([]*Watermark, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Watermark, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WatermarkMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *WatermarkCreateBulk) SaveX(ctx context.Context) []*Watermark {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WatermarkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WatermarkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
