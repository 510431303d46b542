package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/squadflow/squadflow/ent"
	entagent "github.com/squadflow/squadflow/ent/agent"
	"github.com/squadflow/squadflow/ent/routingrule"
	"github.com/squadflow/squadflow/ent/squad"
	"github.com/squadflow/squadflow/pkg/models"
	"github.com/squadflow/squadflow/pkg/routing"
)

// SquadService manages squads, their agent rosters, and routing rules.
type SquadService struct {
	client *ent.Client

	// onRulesChanged is invoked after any routing rule or agent write so
	// the routing cache can drop its snapshot for the squad.
	onRulesChanged func(squadID string)
}

// NewSquadService creates a new SquadService
func NewSquadService(client *ent.Client) *SquadService {
	return &SquadService{client: client}
}

// SetRuleChangeHook registers the routing cache invalidation hook.
func (s *SquadService) SetRuleChangeHook(fn func(squadID string)) {
	s.onRulesChanged = fn
}

// CreateSquad creates an empty squad
func (s *SquadService) CreateSquad(ctx context.Context, req models.CreateSquadRequest) (*ent.Squad, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "must not be empty")
	}
	if req.OwnerID == "" {
		return nil, NewValidationError("owner_id", "must not be empty")
	}

	sq, err := s.client.Squad.Create().
		SetID(uuid.NewString()).
		SetOwnerID(req.OwnerID).
		SetName(req.Name).
		SetDescription(req.Description).
		SetActive(true).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create squad: %w", err)
	}

	return sq, nil
}

// GetSquad retrieves a squad with its active agent roster
func (s *SquadService) GetSquad(ctx context.Context, squadID string) (*models.SquadDetail, error) {
	sq, err := s.client.Squad.Get(ctx, squadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("squad %s: %w", squadID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get squad: %w", err)
	}

	agents, err := s.client.Agent.Query().
		Where(
			entagent.SquadIDEQ(squadID),
			entagent.ActiveEQ(true),
		).
		Order(ent.Asc(entagent.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get squad agents: %w", err)
	}

	return &models.SquadDetail{
		Squad:  sq,
		Agents: agents,
	}, nil
}

// ListSquads retrieves active squads for an owner, newest first
func (s *SquadService) ListSquads(ctx context.Context, ownerID string, limit, offset int) (*models.SquadListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := s.client.Squad.Query().
		Where(
			squad.OwnerIDEQ(ownerID),
			squad.ActiveEQ(true),
		)

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count squads: %w", err)
	}

	squads, err := query.
		Order(ent.Desc(squad.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list squads: %w", err)
	}

	return &models.SquadListResponse{
		Squads:     squads,
		TotalCount: total,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// DeactivateSquad soft-deletes a squad. Historical events remain readable.
func (s *SquadService) DeactivateSquad(ctx context.Context, squadID string) error {
	err := s.client.Squad.UpdateOneID(squadID).
		SetActive(false).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("squad %s: %w", squadID, ErrNotFound)
		}
		return fmt.Errorf("failed to deactivate squad: %w", err)
	}
	return nil
}

// CreateAgent adds one agent to an existing squad
func (s *SquadService) CreateAgent(ctx context.Context, squadID string, req models.CreateAgentRequest) (*ent.Agent, error) {
	if req.SystemPrompt == "" {
		return nil, NewValidationError("system_prompt", "must not be empty")
	}
	if req.GeneratorRef == nil {
		return nil, NewValidationError("generator_ref", "must not be empty")
	}
	spec := req.Specialization
	if spec == "" {
		spec = "default"
	}

	exists, err := s.client.Squad.Query().
		Where(squad.IDEQ(squadID), squad.ActiveEQ(true)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check squad: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("squad %s: %w", squadID, ErrNotFound)
	}

	ag, err := s.client.Agent.Create().
		SetID(uuid.NewString()).
		SetSquadID(squadID).
		SetRole(req.Role).
		SetSpecialization(spec).
		SetGeneratorRef(req.GeneratorRef).
		SetSystemPrompt(req.SystemPrompt).
		SetToolCapabilities(req.ToolCapabilities).
		SetActive(true).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("agent (%s, %s, %s): %w", squadID, req.Role, spec, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	// A new agent can change specialization-hint selection, so the cached
	// snapshot must be rebuilt just like after a rule write.
	if s.onRulesChanged != nil {
		s.onRulesChanged(squadID)
	}
	return ag, nil
}

// GetAgent retrieves an agent by id
func (s *SquadService) GetAgent(ctx context.Context, agentID string) (*ent.Agent, error) {
	ag, err := s.client.Agent.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("agent %s: %w", agentID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return ag, nil
}

// ListAgents retrieves the active agents of a squad ordered by id
func (s *SquadService) ListAgents(ctx context.Context, squadID string) ([]*ent.Agent, error) {
	agents, err := s.client.Agent.Query().
		Where(
			entagent.SquadIDEQ(squadID),
			entagent.ActiveEQ(true),
		).
		Order(ent.Asc(entagent.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return agents, nil
}

// LoadRoutingSnapshot builds a routing snapshot from the squad's active
// rules and agents. Wired as the routing cache's loader.
func (s *SquadService) LoadRoutingSnapshot(ctx context.Context, squadID string) (*routing.Snapshot, error) {
	rules, err := s.ListRoutingRules(ctx, squadID)
	if err != nil {
		return nil, err
	}
	agents, err := s.ListAgents(ctx, squadID)
	if err != nil {
		return nil, err
	}

	snap := &routing.Snapshot{SquadID: squadID}
	for _, r := range rules {
		snap.Rules = append(snap.Rules, routing.Rule{
			ID:              r.ID,
			AskerRole:       r.AskerRole,
			QuestionType:    r.QuestionType,
			EscalationLevel: r.EscalationLevel,
			ResponderRole:   r.ResponderRole,
			Priority:        r.Priority,
		})
	}
	for _, a := range agents {
		snap.Agents = append(snap.Agents, routing.Agent{
			ID:             a.ID,
			Role:           string(a.Role),
			Specialization: a.Specialization,
		})
	}
	return snap, nil
}

// CreateRoutingRule adds one routing rule to a squad and invalidates the
// squad's routing cache entry.
func (s *SquadService) CreateRoutingRule(ctx context.Context, squadID string, req models.CreateRoutingRuleRequest) (*ent.RoutingRule, error) {
	if req.AskerRole == "" {
		return nil, NewValidationError("asker_role", "must not be empty")
	}
	if req.ResponderRole == "" {
		return nil, NewValidationError("responder_role", "must not be empty")
	}
	if req.EscalationLevel < 0 {
		return nil, NewValidationError("escalation_level", "must not be negative")
	}
	qt := req.QuestionType
	if qt == "" {
		qt = "default"
	}

	rule, err := s.client.RoutingRule.Create().
		SetID(uuid.NewString()).
		SetSquadID(squadID).
		SetAskerRole(req.AskerRole).
		SetQuestionType(qt).
		SetEscalationLevel(req.EscalationLevel).
		SetResponderRole(req.ResponderRole).
		SetPriority(req.Priority).
		SetActive(true).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("routing rule: %w", ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create routing rule: %w", err)
	}

	if s.onRulesChanged != nil {
		s.onRulesChanged(squadID)
	}
	return rule, nil
}

// ListRoutingRules retrieves the active routing rules of a squad
func (s *SquadService) ListRoutingRules(ctx context.Context, squadID string) ([]*ent.RoutingRule, error) {
	rules, err := s.client.RoutingRule.Query().
		Where(
			routingrule.SquadIDEQ(squadID),
			routingrule.ActiveEQ(true),
		).
		Order(ent.Asc(routingrule.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list routing rules: %w", err)
	}
	return rules, nil
}
