// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/squadflow/squadflow/ent/routingrule"
	"github.com/squadflow/squadflow/ent/squad"
)

// RoutingRuleCreate is the builder for creating a RoutingRule entity.
type RoutingRuleCreate struct {
	config
	mutation *RoutingRuleMutation
	hooks    []Hook
}

// SetSquadID sets the "squad_id" field.
func (_c *RoutingRuleCreate) SetSquadID(v string) *RoutingRuleCreate {
	_c.mutation.SetSquadID(v)
	return _c
}

// SetAskerRole sets the "asker_role" field.
func (_c *RoutingRuleCreate) SetAskerRole(v string) *RoutingRuleCreate {
	_c.mutation.SetAskerRole(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *RoutingRuleCreate) SetQuestionType(v string) *RoutingRuleCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_c *RoutingRuleCreate) SetNillableQuestionType(v *string) *RoutingRuleCreate {
	if v != nil {
		_c.SetQuestionType(*v)
	}
	return _c
}

// SetEscalationLevel sets the "escalation_level" field.
func (_c *RoutingRuleCreate) SetEscalationLevel(v int) *RoutingRuleCreate {
	_c.mutation.SetEscalationLevel(v)
	return _c
}

// SetNillableEscalationLevel sets the "escalation_level" field if the given value is not nil.
func (_c *RoutingRuleCreate) SetNillableEscalationLevel(v *int) *RoutingRuleCreate {
	if v != nil {
		_c.SetEscalationLevel(*v)
	}
	return _c
}

// SetResponderRole sets the "responder_role" field.
func (_c *RoutingRuleCreate) SetResponderRole(v string) *RoutingRuleCreate {
	_c.mutation.SetResponderRole(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *RoutingRuleCreate) SetPriority(v int) *RoutingRuleCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *RoutingRuleCreate) SetNillablePriority(v *int) *RoutingRuleCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *RoutingRuleCreate) SetActive(v bool) *RoutingRuleCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *RoutingRuleCreate) SetNillableActive(v *bool) *RoutingRuleCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RoutingRuleCreate) SetCreatedAt(v time.Time) *RoutingRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RoutingRuleCreate) SetNillableCreatedAt(v *time.Time) *RoutingRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RoutingRuleCreate) SetID(v string) *RoutingRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSquad sets the "squad" edge to the Squad entity.
func (_c *RoutingRuleCreate) SetSquad(v *Squad) *RoutingRuleCreate {
	return _c.SetSquadID(v.ID)
}

// Mutation returns the RoutingRuleMutation object of the builder.
func (_c *RoutingRuleCreate) Mutation() *RoutingRuleMutation {
	return _c.mutation
}

// Save creates the RoutingRule in the database.
func (_c *RoutingRuleCreate) Save(ctx context.Context) (*RoutingRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoutingRuleCreate) SaveX(ctx context.Context) *RoutingRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoutingRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoutingRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoutingRuleCreate) defaults() {
	if _, ok := _c.mutation.QuestionType(); !ok {
		v := routingrule.DefaultQuestionType
		_c.mutation.SetQuestionType(v)
	}
	if _, ok := _c.mutation.EscalationLevel(); !ok {
		v := routingrule.DefaultEscalationLevel
		_c.mutation.SetEscalationLevel(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := routingrule.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := routingrule.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := routingrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoutingRuleCreate) check() error {
	if _, ok := _c.mutation.SquadID(); !ok {
		return &ValidationError{Name: "squad_id", err: errors.New(`ent: missing required field "RoutingRule.squad_id"`)}
	}
	if _, ok := _c.mutation.AskerRole(); !ok {
		return &ValidationError{Name: "asker_role", err: errors.New(`ent: missing required field "RoutingRule.asker_role"`)}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "RoutingRule.question_type"`)}
	}
	if _, ok := _c.mutation.EscalationLevel(); !ok {
		return &ValidationError{Name: "escalation_level", err: errors.New(`ent: missing required field "RoutingRule.escalation_level"`)}
	}
	if v, ok := _c.mutation.EscalationLevel(); ok {
		if err := routingrule.EscalationLevelValidator(v); err != nil {
			return &ValidationError{Name: "escalation_level", err: fmt.Errorf(`ent: validator failed for field "RoutingRule.escalation_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ResponderRole(); !ok {
		return &ValidationError{Name: "responder_role", err: errors.New(`ent: missing required field "RoutingRule.responder_role"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "RoutingRule.priority"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "RoutingRule.active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RoutingRule.created_at"`)}
	}
	if len(_c.mutation.SquadIDs()) == 0 {
		return &ValidationError{Name: "squad", err: errors.New(`ent: missing required edge "RoutingRule.squad"`)}
	}
	return nil
}

func (_c *RoutingRuleCreate) sqlSave(ctx context.Context) (*RoutingRule, error) {
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
			return nil, fmt.Errorf("unexpected RoutingRule.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RoutingRuleCreate) createSpec() (*RoutingRule, *sqlgraph.CreateSpec) {
	var (
		_node = &RoutingRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(routingrule.Table, sqlgraph.NewFieldSpec(routingrule.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AskerRole(); ok {
		_spec.SetField(routingrule.FieldAskerRole, field.TypeString, value)
		_node.AskerRole = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(routingrule.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.EscalationLevel(); ok {
		_spec.SetField(routingrule.FieldEscalationLevel, field.TypeInt, value)
		_node.EscalationLevel = value
	}
	if value, ok := _c.mutation.ResponderRole(); ok {
		_spec.SetField(routingrule.FieldResponderRole, field.TypeString, value)
		_node.ResponderRole = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(routingrule.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(routingrule.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(routingrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SquadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   routingrule.SquadTable,
			Columns: []string{routingrule.SquadColumn},
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
	return _node, _spec
}

// RoutingRuleCreateBulk is the builder for creating many RoutingRule entities in bulk.
type RoutingRuleCreateBulk struct {
	config
	err      error
	builders []*RoutingRuleCreate
}

// Save creates the RoutingRule entities in the database.
func (_c *RoutingRuleCreateBulk) Save(ctx context.Context) ([]*RoutingRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RoutingRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoutingRuleMutation)
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
func (_c *RoutingRuleCreateBulk) SaveX(ctx context.Context) []*RoutingRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoutingRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoutingRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
