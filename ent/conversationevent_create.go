// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/squadflow/squadflow/ent/conversation"
	"github.com/squadflow/squadflow/ent/conversationevent"
)

// ConversationEventCreate is the builder for creating a ConversationEvent entity.
type ConversationEventCreate struct {
	config
	mutation *ConversationEventMutation
	hooks    []Hook
}

// SetConversationID sets the "conversation_id" field.
func (_c *ConversationEventCreate) SetConversationID(v string) *ConversationEventCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *ConversationEventCreate) SetSequence(v int) *ConversationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ConversationEventCreate) SetKind(v conversationevent.Kind) *ConversationEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *ConversationEventCreate) SetPayload(v map[string]interface{}) *ConversationEventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetAuthorAgentID sets the "author_agent_id" field.
func (_c *ConversationEventCreate) SetAuthorAgentID(v string) *ConversationEventCreate {
	_c.mutation.SetAuthorAgentID(v)
	return _c
}

// SetNillableAuthorAgentID sets the "author_agent_id" field if the given value is not nil.
func (_c *ConversationEventCreate) SetNillableAuthorAgentID(v *string) *ConversationEventCreate {
	if v != nil {
		_c.SetAuthorAgentID(*v)
	}
	return _c
}

// SetOccurredAt sets the "occurred_at" field.
func (_c *ConversationEventCreate) SetOccurredAt(v time.Time) *ConversationEventCreate {
	_c.mutation.SetOccurredAt(v)
	return _c
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_c *ConversationEventCreate) SetNillableOccurredAt(v *time.Time) *ConversationEventCreate {
	if v != nil {
		_c.SetOccurredAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConversationEventCreate) SetID(v string) *ConversationEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetConversation sets the "conversation" edge to the Conversation entity.
func (_c *ConversationEventCreate) SetConversation(v *Conversation) *ConversationEventCreate {
	return _c.SetConversationID(v.ID)
}

// Mutation returns the ConversationEventMutation object of the builder.
func (_c *ConversationEventCreate) Mutation() *ConversationEventMutation {
	return _c.mutation
}

// Save creates the ConversationEvent in the database.
func (_c *ConversationEventCreate) Save(ctx context.Context) (*ConversationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversationEventCreate) SaveX(ctx context.Context) *ConversationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversationEventCreate) defaults() {
	if _, ok := _c.mutation.OccurredAt(); !ok {
		v := conversationevent.DefaultOccurredAt()
		_c.mutation.SetOccurredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversationEventCreate) check() error {
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`ent: missing required field "ConversationEvent.conversation_id"`)}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ConversationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ConversationEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := conversationevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ConversationEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`ent: missing required field "ConversationEvent.occurred_at"`)}
	}
	if len(_c.mutation.ConversationIDs()) == 0 {
		return &ValidationError{Name: "conversation", err: errors.New(`ent: missing required edge "ConversationEvent.conversation"`)}
	}
	return nil
}

func (_c *ConversationEventCreate) sqlSave(ctx context.Context) (*ConversationEvent, error) {
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
			return nil, fmt.Errorf("unexpected ConversationEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConversationEventCreate) createSpec() (*ConversationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ConversationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversationevent.Table, sqlgraph.NewFieldSpec(conversationevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(conversationevent.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(conversationevent.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(conversationevent.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.AuthorAgentID(); ok {
		_spec.SetField(conversationevent.FieldAuthorAgentID, field.TypeString, value)
		_node.AuthorAgentID = &value
	}
	if value, ok := _c.mutation.OccurredAt(); ok {
		_spec.SetField(conversationevent.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	if nodes := _c.mutation.ConversationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conversationevent.ConversationTable,
			Columns: []string{conversationevent.ConversationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ConversationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ConversationEventCreateBulk is the builder for creating many ConversationEvent entities in bulk.
type ConversationEventCreateBulk struct {
	config
	err      error
	builders []*ConversationEventCreate
}

// Save creates the ConversationEvent entities in the database.
func (_c *ConversationEventCreateBulk) Save(ctx context.Context) ([]*ConversationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConversationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversationEventMutation)
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
func (_c *ConversationEventCreateBulk) SaveX(ctx context.Context) []*ConversationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
