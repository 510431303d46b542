// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/squadflow/squadflow/ent/predicate"
	"github.com/squadflow/squadflow/ent/watermark"
)

// WatermarkUpdate is the builder for updating Watermark entities.
type WatermarkUpdate struct {
	config
	hooks    []Hook
	mutation *WatermarkMutation
}

// Where appends a list predicates to the WatermarkUpdate builder.
func (_u *WatermarkUpdate) Where(ps ...predicate.Watermark) *WatermarkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *WatermarkUpdate) SetAgentID(v string) *WatermarkUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *WatermarkUpdate) SetNillableAgentID(v *string) *WatermarkUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *WatermarkUpdate) SetConversationID(v string) *WatermarkUpdate {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *WatermarkUpdate) SetNillableConversationID(v *string) *WatermarkUpdate {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *WatermarkUpdate) SetSequence(v int) *WatermarkUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *WatermarkUpdate) SetNillableSequence(v *int) *WatermarkUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *WatermarkUpdate) AddSequence(v int) *WatermarkUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WatermarkUpdate) SetUpdatedAt(v time.Time) *WatermarkUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WatermarkMutation object of the builder.
func (_u *WatermarkUpdate) Mutation() *WatermarkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WatermarkUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WatermarkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WatermarkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WatermarkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WatermarkUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := watermark.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WatermarkUpdate) check() error {
	if v, ok := _u.mutation.Sequence(); ok {
		if err := watermark.SequenceValidator(v); err != nil {
			return &ValidationError{Name: "sequence", err: fmt.Errorf(`ent: validator failed for field "Watermark.sequence": %w`, err)}
		}
	}
	return nil
}

func (_u *WatermarkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(watermark.Table, watermark.Columns, sqlgraph.NewFieldSpec(watermark.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(watermark.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(watermark.FieldConversationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(watermark.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(watermark.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(watermark.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{watermark.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WatermarkUpdateOne is the builder for updating a single Watermark entity.
type WatermarkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WatermarkMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *WatermarkUpdateOne) SetAgentID(v string) *WatermarkUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *WatermarkUpdateOne) SetNillableAgentID(v *string) *WatermarkUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *WatermarkUpdateOne) SetConversationID(v string) *WatermarkUpdateOne {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *WatermarkUpdateOne) SetNillableConversationID(v *string) *WatermarkUpdateOne {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *WatermarkUpdateOne) SetSequence(v int) *WatermarkUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *WatermarkUpdateOne) SetNillableSequence(v *int) *WatermarkUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *WatermarkUpdateOne) AddSequence(v int) *WatermarkUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WatermarkUpdateOne) SetUpdatedAt(v time.Time) *WatermarkUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WatermarkMutation object of the builder.
func (_u *WatermarkUpdateOne) Mutation() *WatermarkMutation {
	return _u.mutation
}

// Where appends a list predicates to the WatermarkUpdate builder.
func (_u *WatermarkUpdateOne) Where(ps ...predicate.Watermark) *WatermarkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WatermarkUpdateOne) Select(field string, fields ...string) *WatermarkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Watermark entity.
func (_u *WatermarkUpdateOne) Save(ctx context.Context) (*Watermark, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WatermarkUpdateOne) SaveX(ctx context.Context) *Watermark {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WatermarkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WatermarkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WatermarkUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := watermark.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WatermarkUpdateOne) check() error {
	if v, ok := _u.mutation.Sequence(); ok {
		if err := watermark.SequenceValidator(v); err != nil {
			return &ValidationError{Name: "sequence", err: fmt.Errorf(`ent: validator failed for field "Watermark.sequence": %w`, err)}
		}
	}
	return nil
}

func (_u *WatermarkUpdateOne) sqlSave(ctx context.Context) (_node *Watermark, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(watermark.Table, watermark.Columns, sqlgraph.NewFieldSpec(watermark.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Watermark.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, watermark.FieldID)
		for _, f := range fields {
			if !watermark.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != watermark.FieldID {
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
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(watermark.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(watermark.FieldConversationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(watermark.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(watermark.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(watermark.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Watermark{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{watermark.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
