package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() *Snapshot {
	return &Snapshot{
		SquadID: "squad-1",
		Rules: []Rule{
			{ID: "r1", AskerRole: "backend_developer", QuestionType: "implementation", EscalationLevel: 0, ResponderRole: "tech_lead", Priority: 10},
			{ID: "r2", AskerRole: "backend_developer", QuestionType: "default", EscalationLevel: 0, ResponderRole: "project_manager", Priority: 5},
			{ID: "r3", AskerRole: "backend_developer", QuestionType: "default", EscalationLevel: 1, ResponderRole: "solution_architect", Priority: 10},
		},
		Agents: []Agent{
			{ID: "agent-a", Role: "tech_lead", Specialization: "default"},
			{ID: "agent-b", Role: "project_manager", Specialization: "default"},
			{ID: "agent-c", Role: "solution_architect", Specialization: "default"},
		},
	}
}

func TestResolve_ExactQuestionType(t *testing.T) {
	d, err := Resolve(testSnapshot(), "backend_developer", "implementation", 0, "")
	require.NoError(t, err)
	assert.Equal(t, "agent-a", d.AgentID)
	assert.Equal(t, "tech_lead", d.ResponderRole)
	assert.Equal(t, "r1", d.RuleID)
}

func TestResolve_DefaultFallback(t *testing.T) {
	d, err := Resolve(testSnapshot(), "backend_developer", "deployment", 0, "")
	require.NoError(t, err)
	assert.Equal(t, "agent-b", d.AgentID)
	assert.Equal(t, "r2", d.RuleID)
}

func TestResolve_EscalationLevel(t *testing.T) {
	d, err := Resolve(testSnapshot(), "backend_developer", "implementation", 1, "")
	require.NoError(t, err)
	assert.Equal(t, "agent-c", d.AgentID)
	assert.Equal(t, "solution_architect", d.ResponderRole)
}

func TestResolve_NoRule(t *testing.T) {
	_, err := Resolve(testSnapshot(), "qa_tester", "test_strategy", 0, "")
	assert.ErrorIs(t, err, ErrNoResponder)
}

func TestResolve_NoAgentForRole(t *testing.T) {
	snap := testSnapshot()
	snap.Agents = snap.Agents[:1] // Drop project_manager and solution_architect
	_, err := Resolve(snap, "backend_developer", "deployment", 0, "")
	assert.ErrorIs(t, err, ErrNoResponder)
}

func TestSelectRule_TieBreaks(t *testing.T) {
	tests := []struct {
		name   string
		rules  []Rule
		wantID string
	}{
		{
			name: "higher priority wins",
			rules: []Rule{
				{ID: "low", AskerRole: "a", QuestionType: "q", EscalationLevel: 0, ResponderRole: "x", Priority: 1},
				{ID: "high", AskerRole: "a", QuestionType: "q", EscalationLevel: 0, ResponderRole: "y", Priority: 9},
			},
			wantID: "high",
		},
		{
			name: "equal priority breaks on responder role",
			rules: []Rule{
				{ID: "r-z", AskerRole: "a", QuestionType: "q", EscalationLevel: 0, ResponderRole: "zeta", Priority: 5},
				{ID: "r-b", AskerRole: "a", QuestionType: "q", EscalationLevel: 0, ResponderRole: "beta", Priority: 5},
			},
			wantID: "r-b",
		},
		{
			name: "equal role breaks on rule id",
			rules: []Rule{
				{ID: "bbb", AskerRole: "a", QuestionType: "q", EscalationLevel: 0, ResponderRole: "x", Priority: 5},
				{ID: "aaa", AskerRole: "a", QuestionType: "q", EscalationLevel: 0, ResponderRole: "x", Priority: 5},
			},
			wantID: "aaa",
		},
		{
			name: "exact type beats higher priority default",
			rules: []Rule{
				{ID: "exact", AskerRole: "a", QuestionType: "q", EscalationLevel: 0, ResponderRole: "x", Priority: 1},
				{ID: "fallback", AskerRole: "a", QuestionType: "default", EscalationLevel: 0, ResponderRole: "y", Priority: 100},
			},
			wantID: "exact",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := SelectRule(tt.rules, "a", "q", 0)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, rule.ID)
		})
	}
}

func TestSelectAgent_SpecializationHint(t *testing.T) {
	agents := []Agent{
		{ID: "agent-2", Role: "backend_developer", Specialization: "python_fastapi"},
		{ID: "agent-1", Role: "backend_developer", Specialization: "go_services"},
	}

	a, err := SelectAgent(agents, "backend_developer", "python_fastapi")
	require.NoError(t, err)
	assert.Equal(t, "agent-2", a.ID)

	// No hint: smallest agent id
	a, err = SelectAgent(agents, "backend_developer", "")
	require.NoError(t, err)
	assert.Equal(t, "agent-1", a.ID)

	// Unmatched hint falls back to smallest agent id
	a, err = SelectAgent(agents, "backend_developer", "rust")
	require.NoError(t, err)
	assert.Equal(t, "agent-1", a.ID)
}

func TestResolve_Deterministic(t *testing.T) {
	snap := testSnapshot()
	first, err := Resolve(snap, "backend_developer", "implementation", 0, "")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		d, err := Resolve(snap, "backend_developer", "implementation", 0, "")
		require.NoError(t, err)
		assert.Equal(t, first, d)
	}
}

func TestHasLevel(t *testing.T) {
	snap := testSnapshot()
	assert.True(t, HasLevel(snap, "backend_developer", "implementation", 0))
	assert.True(t, HasLevel(snap, "backend_developer", "implementation", 1))
	assert.False(t, HasLevel(snap, "backend_developer", "implementation", 2))
}
