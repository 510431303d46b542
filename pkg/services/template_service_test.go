package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squadflow/squadflow/pkg/models"
	"github.com/squadflow/squadflow/pkg/template"
	testdb "github.com/squadflow/squadflow/test/database"
)

func deliveryTemplate() *template.File {
	return &template.File{
		Name:        "Web Delivery Squad",
		Slug:        "web-delivery",
		Description: "Full-stack delivery squad",
		Version:     "1.0",
		Agents: []template.AgentSpec{
			{
				Role:            "project_manager",
				Specialization:  "default",
				GeneratorRef:    map[string]any{"vendor": "mock"},
				SystemPromptRef: "prompts/pm",
			},
			{
				Role:             "backend_developer",
				Specialization:   "golang",
				GeneratorRef:     map[string]any{"vendor": "mock"},
				SystemPromptRef:  "prompts/backend",
				ToolCapabilities: []string{"code_search"},
			},
			{
				Role:            "tech_lead",
				Specialization:  "default",
				GeneratorRef:    map[string]any{"vendor": "mock"},
				SystemPromptRef: "prompts/lead",
			},
		},
		RoutingRules: []template.RuleSpec{
			{AskerRole: "backend_developer", QuestionType: "architecture", ResponderRole: "tech_lead"},
			{AskerRole: "backend_developer", QuestionType: "architecture", EscalationLevel: 1, ResponderRole: "project_manager"},
		},
	}
}

func TestTemplateService_Upsert(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTemplateService(client.Client)
	ctx := context.Background()

	created, err := svc.UpsertTemplate(ctx, deliveryTemplate())
	require.NoError(t, err)
	assert.Equal(t, "web-delivery", created.Slug)
	assert.Len(t, created.Agents, 3)

	// Same slug updates in place.
	f := deliveryTemplate()
	f.Version = "1.1"
	updated, err := svc.UpsertTemplate(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "1.1", updated.Version)

	// Invalid documents never reach storage.
	bad := deliveryTemplate()
	bad.Agents = bad.Agents[1:]
	_, err = svc.UpsertTemplate(ctx, bad)
	assert.ErrorIs(t, err, ErrInvalidInput)

	tpls, err := svc.ListTemplates(ctx)
	require.NoError(t, err)
	assert.Len(t, tpls, 1)

	_, err = svc.GetTemplate(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTemplateService_ApplyTemplate(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTemplateService(client.Client)
	ctx := context.Background()

	_, err := svc.UpsertTemplate(ctx, deliveryTemplate())
	require.NoError(t, err)

	detail, err := svc.ApplyTemplate(ctx, "web-delivery", models.ApplyTemplateRequest{
		OwnerID:   "owner-1",
		SquadName: "Checkout Team",
		Customization: &models.TemplateCustomization{
			Agents: []models.AgentOverride{
				{Role: "backend_developer", Specialization: "rust", SystemPrompt: "You write Rust"},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Checkout Team", detail.Squad.Name)
	require.Len(t, detail.Agents, 3)

	var backend string
	for _, ag := range detail.Agents {
		if string(ag.Role) == "backend_developer" {
			backend = ag.Specialization
			assert.Equal(t, "You write Rust", ag.SystemPrompt)
		}
	}
	assert.Equal(t, "rust", backend)

	// The template's rules were instantiated for the new squad.
	rules, err := NewSquadService(client.Client).ListRoutingRules(ctx, detail.Squad.ID)
	require.NoError(t, err)
	assert.Len(t, rules, 2)

	// Applying twice yields two independent squads.
	again, err := svc.ApplyTemplate(ctx, "web-delivery", models.ApplyTemplateRequest{
		OwnerID:   "owner-1",
		SquadName: "Payments Team",
	})
	require.NoError(t, err)
	assert.NotEqual(t, detail.Squad.ID, again.Squad.ID)
}

func TestTemplateService_ApplyTemplateValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTemplateService(client.Client)
	ctx := context.Background()

	_, err := svc.UpsertTemplate(ctx, deliveryTemplate())
	require.NoError(t, err)

	_, err = svc.ApplyTemplate(ctx, "web-delivery", models.ApplyTemplateRequest{OwnerID: "owner-1"})
	assert.True(t, IsValidationError(err), "squad name is required")

	_, err = svc.ApplyTemplate(ctx, "web-delivery", models.ApplyTemplateRequest{SquadName: "X"})
	assert.True(t, IsValidationError(err), "owner id is required")

	_, err = svc.ApplyTemplate(ctx, "missing", models.ApplyTemplateRequest{
		OwnerID:   "owner-1",
		SquadName: "X",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTemplateService_ApplyRollsBackOnBadRole(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTemplateService(client.Client)
	ctx := context.Background()

	// Corrupt the stored document after validation by writing specs with a
	// role the agent schema rejects.
	f := deliveryTemplate()
	tpl, err := svc.UpsertTemplate(ctx, f)
	require.NoError(t, err)

	agents := tpl.Agents
	agents[1]["role"] = "wizard"
	err = client.SquadTemplate.UpdateOneID(tpl.ID).SetAgents(agents).Exec(ctx)
	require.NoError(t, err)

	_, err = svc.ApplyTemplate(ctx, "web-delivery", models.ApplyTemplateRequest{
		OwnerID:   "owner-1",
		SquadName: "Doomed Team",
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	// Nothing from the failed apply survives.
	n, err := client.Squad.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTemplateService_LoadFromDir(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTemplateService(client.Client)
	ctx := context.Background()

	n, err := svc.LoadFromDir(ctx, t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, n)
}
