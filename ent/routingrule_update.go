// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/squadflow/squadflow/ent/predicate"
	"github.com/squadflow/squadflow/ent/routingrule"
)

// RoutingRuleUpdate is the builder for updating RoutingRule entities.
type RoutingRuleUpdate struct {
	config
	hooks    []Hook
	mutation *RoutingRuleMutation
}

// Where appends a list predicates to the RoutingRuleUpdate builder.
func (_u *RoutingRuleUpdate) Where(ps ...predicate.RoutingRule) *RoutingRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAskerRole sets the "asker_role" field.
func (_u *RoutingRuleUpdate) SetAskerRole(v string) *RoutingRuleUpdate {
	_u.mutation.SetAskerRole(v)
	return _u
}

// SetNillableAskerRole sets the "asker_role" field if the given value is not nil.
func (_u *RoutingRuleUpdate) SetNillableAskerRole(v *string) *RoutingRuleUpdate {
	if v != nil {
		_u.SetAskerRole(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *RoutingRuleUpdate) SetQuestionType(v string) *RoutingRuleUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *RoutingRuleUpdate) SetNillableQuestionType(v *string) *RoutingRuleUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetEscalationLevel sets the "escalation_level" field.
func (_u *RoutingRuleUpdate) SetEscalationLevel(v int) *RoutingRuleUpdate {
	_u.mutation.ResetEscalationLevel()
	_u.mutation.SetEscalationLevel(v)
	return _u
}

// SetNillableEscalationLevel sets the "escalation_level" field if the given value is not nil.
func (_u *RoutingRuleUpdate) SetNillableEscalationLevel(v *int) *RoutingRuleUpdate {
	if v != nil {
		_u.SetEscalationLevel(*v)
	}
	return _u
}

// AddEscalationLevel adds value to the "escalation_level" field.
func (_u *RoutingRuleUpdate) AddEscalationLevel(v int) *RoutingRuleUpdate {
	_u.mutation.AddEscalationLevel(v)
	return _u
}

// SetResponderRole sets the "responder_role" field.
func (_u *RoutingRuleUpdate) SetResponderRole(v string) *RoutingRuleUpdate {
	_u.mutation.SetResponderRole(v)
	return _u
}

// SetNillableResponderRole sets the "responder_role" field if the given value is not nil.
func (_u *RoutingRuleUpdate) SetNillableResponderRole(v *string) *RoutingRuleUpdate {
	if v != nil {
		_u.SetResponderRole(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *RoutingRuleUpdate) SetPriority(v int) *RoutingRuleUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *RoutingRuleUpdate) SetNillablePriority(v *int) *RoutingRuleUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *RoutingRuleUpdate) AddPriority(v int) *RoutingRuleUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *RoutingRuleUpdate) SetActive(v bool) *RoutingRuleUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *RoutingRuleUpdate) SetNillableActive(v *bool) *RoutingRuleUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the RoutingRuleMutation object of the builder.
func (_u *RoutingRuleUpdate) Mutation() *RoutingRuleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoutingRuleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoutingRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoutingRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoutingRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoutingRuleUpdate) check() error {
	if v, ok := _u.mutation.EscalationLevel(); ok {
		if err := routingrule.EscalationLevelValidator(v); err != nil {
			return &ValidationError{Name: "escalation_level", err: fmt.Errorf(`ent: validator failed for field "RoutingRule.escalation_level": %w`, err)}
		}
	}
	if _u.mutation.SquadCleared() && len(_u.mutation.SquadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RoutingRule.squad"`)
	}
	return nil
}

func (_u *RoutingRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(routingrule.Table, routingrule.Columns, sqlgraph.NewFieldSpec(routingrule.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AskerRole(); ok {
		_spec.SetField(routingrule.FieldAskerRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(routingrule.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EscalationLevel(); ok {
		_spec.SetField(routingrule.FieldEscalationLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEscalationLevel(); ok {
		_spec.AddField(routingrule.FieldEscalationLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResponderRole(); ok {
		_spec.SetField(routingrule.FieldResponderRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(routingrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(routingrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(routingrule.FieldActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{routingrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoutingRuleUpdateOne is the builder for updating a single RoutingRule entity.
type RoutingRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoutingRuleMutation
}

// SetAskerRole sets the "asker_role" field.
func (_u *RoutingRuleUpdateOne) SetAskerRole(v string) *RoutingRuleUpdateOne {
	_u.mutation.SetAskerRole(v)
	return _u
}

// SetNillableAskerRole sets the "asker_role" field if the given value is not nil.
func (_u *RoutingRuleUpdateOne) SetNillableAskerRole(v *string) *RoutingRuleUpdateOne {
	if v != nil {
		_u.SetAskerRole(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *RoutingRuleUpdateOne) SetQuestionType(v string) *RoutingRuleUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *RoutingRuleUpdateOne) SetNillableQuestionType(v *string) *RoutingRuleUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetEscalationLevel sets the "escalation_level" field.
func (_u *RoutingRuleUpdateOne) SetEscalationLevel(v int) *RoutingRuleUpdateOne {
	_u.mutation.ResetEscalationLevel()
	_u.mutation.SetEscalationLevel(v)
	return _u
}

// SetNillableEscalationLevel sets the "escalation_level" field if the given value is not nil.
func (_u *RoutingRuleUpdateOne) SetNillableEscalationLevel(v *int) *RoutingRuleUpdateOne {
	if v != nil {
		_u.SetEscalationLevel(*v)
	}
	return _u
}

// AddEscalationLevel adds value to the "escalation_level" field.
func (_u *RoutingRuleUpdateOne) AddEscalationLevel(v int) *RoutingRuleUpdateOne {
	_u.mutation.AddEscalationLevel(v)
	return _u
}

// SetResponderRole sets the "responder_role" field.
func (_u *RoutingRuleUpdateOne) SetResponderRole(v string) *RoutingRuleUpdateOne {
	_u.mutation.SetResponderRole(v)
	return _u
}

// SetNillableResponderRole sets the "responder_role" field if the given value is not nil.
func (_u *RoutingRuleUpdateOne) SetNillableResponderRole(v *string) *RoutingRuleUpdateOne {
	if v != nil {
		_u.SetResponderRole(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *RoutingRuleUpdateOne) SetPriority(v int) *RoutingRuleUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *RoutingRuleUpdateOne) SetNillablePriority(v *int) *RoutingRuleUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *RoutingRuleUpdateOne) AddPriority(v int) *RoutingRuleUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *RoutingRuleUpdateOne) SetActive(v bool) *RoutingRuleUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *RoutingRuleUpdateOne) SetNillableActive(v *bool) *RoutingRuleUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the RoutingRuleMutation object of the builder.
func (_u *RoutingRuleUpdateOne) Mutation() *RoutingRuleMutation {
	return _u.mutation
}

// Where appends a list predicates to the RoutingRuleUpdate builder.
func (_u *RoutingRuleUpdateOne) Where(ps ...predicate.RoutingRule) *RoutingRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoutingRuleUpdateOne) Select(field string, fields ...string) *RoutingRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RoutingRule entity.
func (_u *RoutingRuleUpdateOne) Save(ctx context.Context) (*RoutingRule, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoutingRuleUpdateOne) SaveX(ctx context.Context) *RoutingRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoutingRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoutingRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoutingRuleUpdateOne) check() error {
	if v, ok := _u.mutation.EscalationLevel(); ok {
		if err := routingrule.EscalationLevelValidator(v); err != nil {
			return &ValidationError{Name: "escalation_level", err: fmt.Errorf(`ent: validator failed for field "RoutingRule.escalation_level": %w`, err)}
		}
	}
	if _u.mutation.SquadCleared() && len(_u.mutation.SquadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RoutingRule.squad"`)
	}
	return nil
}

func (_u *RoutingRuleUpdateOne) sqlSave(ctx context.Context) (_node *RoutingRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(routingrule.Table, routingrule.Columns, sqlgraph.NewFieldSpec(routingrule.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RoutingRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, routingrule.FieldID)
		for _, f := range fields {
			if !routingrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != routingrule.FieldID {
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
	if value, ok := _u.mutation.AskerRole(); ok {
		_spec.SetField(routingrule.FieldAskerRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(routingrule.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EscalationLevel(); ok {
		_spec.SetField(routingrule.FieldEscalationLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEscalationLevel(); ok {
		_spec.AddField(routingrule.FieldEscalationLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResponderRole(); ok {
		_spec.SetField(routingrule.FieldResponderRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(routingrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(routingrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(routingrule.FieldActive, field.TypeBool, value)
	}
	_node = &RoutingRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{routingrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
