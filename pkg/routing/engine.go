// Package routing selects the one responder agent for a question. The
// engine is a pure function over a squad snapshot; callers cache snapshots
// per squad and invalidate them on rule writes.
package routing

import (
	"errors"
	"sort"
)

// ErrNoResponder is returned when no rule matches or no agent carries the
// chosen responder role.
var ErrNoResponder = errors.New("no responder available")

// DefaultQuestionType matches any question type with no specific rule at
// the escalation level.
const DefaultQuestionType = "default"

// Rule is an immutable snapshot of one active routing rule.
type Rule struct {
	ID              string
	AskerRole       string
	QuestionType    string
	EscalationLevel int
	ResponderRole   string
	Priority        int
}

// Agent is an immutable snapshot of one active squad agent.
type Agent struct {
	ID             string
	Role           string
	Specialization string
}

// Snapshot is a squad's routing state at one point in time.
type Snapshot struct {
	SquadID string
	Rules   []Rule
	Agents  []Agent
}

// Decision is a successful resolution.
type Decision struct {
	AgentID       string
	ResponderRole string
	RuleID        string
}

// Resolve picks the responder agent for (askerRole, questionType,
// escalationLevel). The specialization hint breaks ties between agents
// sharing the chosen role. Deterministic: equal inputs over an equal
// snapshot always produce the same decision.
func Resolve(snap *Snapshot, askerRole, questionType string, escalationLevel int, specializationHint string) (*Decision, error) {
	rule, err := SelectRule(snap.Rules, askerRole, questionType, escalationLevel)
	if err != nil {
		return nil, err
	}
	agent, err := SelectAgent(snap.Agents, rule.ResponderRole, specializationHint)
	if err != nil {
		return nil, err
	}
	return &Decision{
		AgentID:       agent.ID,
		ResponderRole: rule.ResponderRole,
		RuleID:        rule.ID,
	}, nil
}

// SelectRule applies the match and tie-break ladder: exact question type
// beats the "default" fallback, then highest priority, then smallest
// responder role, then smallest rule id.
func SelectRule(rules []Rule, askerRole, questionType string, escalationLevel int) (*Rule, error) {
	var exact, fallback []Rule
	for _, r := range rules {
		if r.AskerRole != askerRole || r.EscalationLevel != escalationLevel {
			continue
		}
		switch r.QuestionType {
		case questionType:
			exact = append(exact, r)
		case DefaultQuestionType:
			fallback = append(fallback, r)
		}
	}

	candidates := exact
	if len(candidates) == 0 {
		candidates = fallback
	}
	if len(candidates) == 0 {
		return nil, ErrNoResponder
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if a.ResponderRole != b.ResponderRole {
			return a.ResponderRole < b.ResponderRole
		}
		return a.ID < b.ID
	})
	return &candidates[0], nil
}

// SelectAgent resolves a responder role to one agent. An agent whose
// specialization equals the hint wins; otherwise the smallest agent id.
func SelectAgent(agents []Agent, responderRole, specializationHint string) (*Agent, error) {
	var candidates []Agent
	for _, a := range agents {
		if a.Role == responderRole {
			candidates = append(candidates, a)
		}
	}
	if len(candidates) == 0 {
		return nil, ErrNoResponder
	}

	if specializationHint != "" {
		var matched []Agent
		for _, a := range candidates {
			if a.Specialization == specializationHint {
				matched = append(matched, a)
			}
		}
		if len(matched) > 0 {
			candidates = matched
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ID < candidates[j].ID
	})
	return &candidates[0], nil
}

// HasLevel reports whether any rule exists for the asker at the given
// escalation level. The state machine uses this to decide between
// escalated and timed_out when a waiting conversation expires.
func HasLevel(snap *Snapshot, askerRole, questionType string, escalationLevel int) bool {
	_, err := SelectRule(snap.Rules, askerRole, questionType, escalationLevel)
	return err == nil
}
