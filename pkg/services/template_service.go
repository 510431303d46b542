package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/squadflow/squadflow/ent"
	entagent "github.com/squadflow/squadflow/ent/agent"
	"github.com/squadflow/squadflow/ent/squadtemplate"
	"github.com/squadflow/squadflow/pkg/models"
	"github.com/squadflow/squadflow/pkg/template"
)

// TemplateService manages squad templates and their atomic instantiation.
type TemplateService struct {
	client *ent.Client
}

// NewTemplateService creates a new TemplateService
func NewTemplateService(client *ent.Client) *TemplateService {
	return &TemplateService{client: client}
}

// UpsertTemplate stores a validated template document, keyed by slug.
func (s *TemplateService) UpsertTemplate(ctx context.Context, f *template.File) (*ent.SquadTemplate, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	agents, err := toJSONSpecs(f.Agents)
	if err != nil {
		return nil, err
	}
	rules, err := toJSONSpecs(f.RoutingRules)
	if err != nil {
		return nil, err
	}

	existing, err := s.client.SquadTemplate.Query().
		Where(squadtemplate.SlugEQ(f.Slug)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query template: %w", err)
	}

	if existing != nil {
		updated, err := existing.Update().
			SetName(f.Name).
			SetDescription(f.Description).
			SetVersion(f.Version).
			SetAgents(agents).
			SetRoutingRules(rules).
			SetUpdatedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update template: %w", err)
		}
		return updated, nil
	}

	created, err := s.client.SquadTemplate.Create().
		SetID(uuid.NewString()).
		SetSlug(f.Slug).
		SetName(f.Name).
		SetDescription(f.Description).
		SetVersion(f.Version).
		SetAgents(agents).
		SetRoutingRules(rules).
		SetCreatedAt(time.Now()).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("template slug %s: %w", f.Slug, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return created, nil
}

// GetTemplate retrieves a template by slug
func (s *TemplateService) GetTemplate(ctx context.Context, slug string) (*ent.SquadTemplate, error) {
	tpl, err := s.client.SquadTemplate.Query().
		Where(squadtemplate.SlugEQ(slug)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("template %s: %w", slug, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return tpl, nil
}

// ListTemplates retrieves all stored templates ordered by slug
func (s *TemplateService) ListTemplates(ctx context.Context) ([]*ent.SquadTemplate, error) {
	tpls, err := s.client.SquadTemplate.Query().
		Order(ent.Asc(squadtemplate.FieldSlug)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return tpls, nil
}

// LoadFromDir parses every template file in dir and upserts it by slug.
// Called at startup to seed the registry from configuration.
func (s *TemplateService) LoadFromDir(ctx context.Context, dir string) (int, error) {
	files, err := template.LoadDir(dir)
	if err != nil {
		return 0, err
	}
	for _, f := range files {
		if _, err := s.UpsertTemplate(ctx, f); err != nil {
			return 0, fmt.Errorf("template %s: %w", f.Slug, err)
		}
		slog.Info("Loaded squad template", "slug", f.Slug, "version", f.Version)
	}
	return len(files), nil
}

// ApplyTemplate instantiates a squad from a template in one transaction:
// squad, agents (honoring per-role overrides), routing rules, then the
// roster invariants. Any failure rolls back the whole squad.
func (s *TemplateService) ApplyTemplate(ctx context.Context, slug string, req models.ApplyTemplateRequest) (*models.SquadDetail, error) {
	if req.SquadName == "" {
		return nil, NewValidationError("squad_name", "must not be empty")
	}
	if req.OwnerID == "" {
		return nil, NewValidationError("owner_id", "must not be empty")
	}

	tpl, err := s.GetTemplate(ctx, slug)
	if err != nil {
		return nil, err
	}

	var agentSpecs []template.AgentSpec
	if err := fromJSONSpecs(tpl.Agents, &agentSpecs); err != nil {
		return nil, err
	}
	var ruleSpecs []template.RuleSpec
	if err := fromJSONSpecs(tpl.RoutingRules, &ruleSpecs); err != nil {
		return nil, err
	}

	agentSpecs = mergeOverrides(agentSpecs, req.Customization)

	var detail *models.SquadDetail
	err = withTx(ctx, s.client, func(tx *ent.Tx) error {
		sq, err := tx.Squad.Create().
			SetID(uuid.NewString()).
			SetOwnerID(req.OwnerID).
			SetName(req.SquadName).
			SetDescription(req.Description).
			SetActive(true).
			SetCreatedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create squad: %w", err)
		}

		agents := make([]*ent.Agent, 0, len(agentSpecs))
		for _, spec := range agentSpecs {
			role := entagent.Role(spec.Role)
			if err := entagent.RoleValidator(role); err != nil {
				return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, spec.Role)
			}
			ag, err := tx.Agent.Create().
				SetID(uuid.NewString()).
				SetSquadID(sq.ID).
				SetRole(role).
				SetSpecialization(spec.Specialization).
				SetGeneratorRef(spec.GeneratorRef).
				SetSystemPrompt(spec.SystemPromptRef).
				SetToolCapabilities(spec.ToolCapabilities).
				SetActive(true).
				SetCreatedAt(time.Now()).
				Save(ctx)
			if err != nil {
				if ent.IsConstraintError(err) {
					return fmt.Errorf("agent (%s, %s): %w", spec.Role, spec.Specialization, ErrAlreadyExists)
				}
				return fmt.Errorf("failed to create agent: %w", err)
			}
			agents = append(agents, ag)
		}

		for _, spec := range ruleSpecs {
			_, err := tx.RoutingRule.Create().
				SetID(uuid.NewString()).
				SetSquadID(sq.ID).
				SetAskerRole(spec.AskerRole).
				SetQuestionType(spec.QuestionType).
				SetEscalationLevel(spec.EscalationLevel).
				SetResponderRole(spec.ResponderRole).
				SetPriority(spec.Priority).
				SetActive(true).
				SetCreatedAt(time.Now()).
				Save(ctx)
			if err != nil {
				if ent.IsConstraintError(err) {
					return fmt.Errorf("routing rule (%s, %s, %d, %s): %w",
						spec.AskerRole, spec.QuestionType, spec.EscalationLevel, spec.ResponderRole, ErrAlreadyExists)
				}
				return fmt.Errorf("failed to create routing rule: %w", err)
			}
		}

		if err := validateRoster(agents, ruleSpecs); err != nil {
			return err
		}

		detail = &models.SquadDetail{Squad: sq, Agents: agents}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Applied squad template",
		"slug", slug,
		"squad_id", detail.ID,
		"agents", len(detail.Agents))
	return detail, nil
}

// mergeOverrides applies per-role customization to the template's agents.
func mergeOverrides(specs []template.AgentSpec, c *models.TemplateCustomization) []template.AgentSpec {
	if c == nil {
		return specs
	}
	byRole := make(map[string]models.AgentOverride, len(c.Agents))
	for _, o := range c.Agents {
		byRole[o.Role] = o
	}
	out := make([]template.AgentSpec, len(specs))
	for i, spec := range specs {
		o, ok := byRole[spec.Role]
		if !ok {
			out[i] = spec
			continue
		}
		if o.Specialization != "" {
			spec.Specialization = o.Specialization
		}
		if o.GeneratorRef != nil {
			spec.GeneratorRef = o.GeneratorRef
		}
		if o.SystemPrompt != "" {
			spec.SystemPromptRef = o.SystemPrompt
		}
		if o.ToolCapabilities != nil {
			spec.ToolCapabilities = o.ToolCapabilities
		}
		out[i] = spec
	}
	return out
}

// validateRoster enforces the squad invariants after instantiation: a
// project_manager on the roster and no rule pointing at an absent role.
func validateRoster(agents []*ent.Agent, rules []template.RuleSpec) error {
	roles := make(map[string]bool, len(agents))
	hasPM := false
	for _, ag := range agents {
		roles[string(ag.Role)] = true
		if ag.Role == entagent.RoleProjectManager {
			hasPM = true
		}
	}
	if !hasPM {
		return fmt.Errorf("%w: squad must include a project_manager", ErrInvalidInput)
	}
	for _, r := range rules {
		if !roles[r.ResponderRole] {
			return fmt.Errorf("%w: routing rule responder role %q has no agent", ErrInvalidInput, r.ResponderRole)
		}
	}
	return nil
}

func toJSONSpecs(v any) ([]map[string]interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode template specs: %w", err)
	}
	var out []map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode template specs: %w", err)
	}
	return out, nil
}

func fromJSONSpecs(specs []map[string]interface{}, out any) error {
	data, err := json.Marshal(specs)
	if err != nil {
		return fmt.Errorf("failed to encode stored specs: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode stored specs: %w", err)
	}
	return nil
}
