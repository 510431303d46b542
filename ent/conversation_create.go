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
	"github.com/squadflow/squadflow/ent/message"
	"github.com/squadflow/squadflow/ent/squad"
)

// ConversationCreate is the builder for creating a Conversation entity.
type ConversationCreate struct {
	config
	mutation *ConversationMutation
	hooks    []Hook
}

// SetSquadID sets the "squad_id" field.
func (_c *ConversationCreate) SetSquadID(v string) *ConversationCreate {
	_c.mutation.SetSquadID(v)
	return _c
}

// SetTaskExecutionID sets the "task_execution_id" field.
func (_c *ConversationCreate) SetTaskExecutionID(v string) *ConversationCreate {
	_c.mutation.SetTaskExecutionID(v)
	return _c
}

// SetNillableTaskExecutionID sets the "task_execution_id" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableTaskExecutionID(v *string) *ConversationCreate {
	if v != nil {
		_c.SetTaskExecutionID(*v)
	}
	return _c
}

// SetAskerAgentID sets the "asker_agent_id" field.
func (_c *ConversationCreate) SetAskerAgentID(v string) *ConversationCreate {
	_c.mutation.SetAskerAgentID(v)
	return _c
}

// SetCurrentResponderAgentID sets the "current_responder_agent_id" field.
func (_c *ConversationCreate) SetCurrentResponderAgentID(v string) *ConversationCreate {
	_c.mutation.SetCurrentResponderAgentID(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *ConversationCreate) SetQuestionType(v string) *ConversationCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetEscalationLevel sets the "escalation_level" field.
func (_c *ConversationCreate) SetEscalationLevel(v int) *ConversationCreate {
	_c.mutation.SetEscalationLevel(v)
	return _c
}

// SetNillableEscalationLevel sets the "escalation_level" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableEscalationLevel(v *int) *ConversationCreate {
	if v != nil {
		_c.SetEscalationLevel(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *ConversationCreate) SetState(v conversation.State) *ConversationCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableState(v *conversation.State) *ConversationCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetParentConversationID sets the "parent_conversation_id" field.
func (_c *ConversationCreate) SetParentConversationID(v string) *ConversationCreate {
	_c.mutation.SetParentConversationID(v)
	return _c
}

// SetNillableParentConversationID sets the "parent_conversation_id" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableParentConversationID(v *string) *ConversationCreate {
	if v != nil {
		_c.SetParentConversationID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConversationCreate) SetCreatedAt(v time.Time) *ConversationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableCreatedAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConversationCreate) SetUpdatedAt(v time.Time) *ConversationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableUpdatedAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetClosedAt sets the "closed_at" field.
func (_c *ConversationCreate) SetClosedAt(v time.Time) *ConversationCreate {
	_c.mutation.SetClosedAt(v)
	return _c
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableClosedAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetClosedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConversationCreate) SetID(v string) *ConversationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSquad sets the "squad" edge to the Squad entity.
func (_c *ConversationCreate) SetSquad(v *Squad) *ConversationCreate {
	return _c.SetSquadID(v.ID)
}

// AddEventIDs adds the "events" edge to the ConversationEvent entity by IDs.
func (_c *ConversationCreate) AddEventIDs(ids ...string) *ConversationCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the ConversationEvent entity.
func (_c *ConversationCreate) AddEvents(v ...*ConversationEvent) *ConversationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_c *ConversationCreate) AddMessageIDs(ids ...string) *ConversationCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the Message entity.
func (_c *ConversationCreate) AddMessages(v ...*Message) *ConversationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// Mutation returns the ConversationMutation object of the builder.
func (_c *ConversationCreate) Mutation() *ConversationMutation {
	return _c.mutation
}

// Save creates the Conversation in the database.
func (_c *ConversationCreate) Save(ctx context.Context) (*Conversation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversationCreate) SaveX(ctx context.Context) *Conversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversationCreate) defaults() {
	if _, ok := _c.mutation.EscalationLevel(); !ok {
		v := conversation.DefaultEscalationLevel
		_c.mutation.SetEscalationLevel(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := conversation.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := conversation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := conversation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversationCreate) check() error {
	if _, ok := _c.mutation.SquadID(); !ok {
		return &ValidationError{Name: "squad_id", err: errors.New(`ent: missing required field "Conversation.squad_id"`)}
	}
	if _, ok := _c.mutation.AskerAgentID(); !ok {
		return &ValidationError{Name: "asker_agent_id", err: errors.New(`ent: missing required field "Conversation.asker_agent_id"`)}
	}
	if _, ok := _c.mutation.CurrentResponderAgentID(); !ok {
		return &ValidationError{Name: "current_responder_agent_id", err: errors.New(`ent: missing required field "Conversation.current_responder_agent_id"`)}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "Conversation.question_type"`)}
	}
	if _, ok := _c.mutation.EscalationLevel(); !ok {
		return &ValidationError{Name: "escalation_level", err: errors.New(`ent: missing required field "Conversation.escalation_level"`)}
	}
	if v, ok := _c.mutation.EscalationLevel(); ok {
		if err := conversation.EscalationLevelValidator(v); err != nil {
			return &ValidationError{Name: "escalation_level", err: fmt.Errorf(`ent: validator failed for field "Conversation.escalation_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Conversation.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := conversation.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Conversation.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Conversation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Conversation.updated_at"`)}
	}
	if len(_c.mutation.SquadIDs()) == 0 {
		return &ValidationError{Name: "squad", err: errors.New(`ent: missing required edge "Conversation.squad"`)}
	}
	return nil
}

func (_c *ConversationCreate) sqlSave(ctx context.Context) (*Conversation, error) {
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
			return nil, fmt.Errorf("unexpected Conversation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConversationCreate) createSpec() (*Conversation, *sqlgraph.CreateSpec) {
	var (
		_node = &Conversation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversation.Table, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskExecutionID(); ok {
		_spec.SetField(conversation.FieldTaskExecutionID, field.TypeString, value)
		_node.TaskExecutionID = &value
	}
	if value, ok := _c.mutation.AskerAgentID(); ok {
		_spec.SetField(conversation.FieldAskerAgentID, field.TypeString, value)
		_node.AskerAgentID = value
	}
	if value, ok := _c.mutation.CurrentResponderAgentID(); ok {
		_spec.SetField(conversation.FieldCurrentResponderAgentID, field.TypeString, value)
		_node.CurrentResponderAgentID = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(conversation.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.EscalationLevel(); ok {
		_spec.SetField(conversation.FieldEscalationLevel, field.TypeInt, value)
		_node.EscalationLevel = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(conversation.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.ParentConversationID(); ok {
		_spec.SetField(conversation.FieldParentConversationID, field.TypeString, value)
		_node.ParentConversationID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(conversation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(conversation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ClosedAt(); ok {
		_spec.SetField(conversation.FieldClosedAt, field.TypeTime, value)
		_node.ClosedAt = &value
	}
	if nodes := _c.mutation.SquadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conversation.SquadTable,
			Columns: []string{conversation.SquadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(squad.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SquadID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.EventsTable,
			Columns: []string{conversation.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversationevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.MessagesTable,
			Columns: []string{conversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ConversationCreateBulk is the builder for creating many Conversation entities in bulk.
type ConversationCreateBulk struct {
	config
	err      error
	builders []*ConversationCreate
}

// Save creates the Conversation entities in the database.
func (_c *ConversationCreateBulk) Save(ctx context.Context) ([]*Conversation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Conversation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversationMutation)
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
func (_c *ConversationCreateBulk) SaveX(ctx context.Context) []*Conversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
