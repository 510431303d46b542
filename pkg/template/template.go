// Package template defines the declarative squad template format, its
// validation rules, and loading from a directory of YAML files.
package template

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// slugPattern restricts slugs to kebab-case identifiers usable in URLs.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// File is the on-disk squad template document.
type File struct {
	Name         string      `yaml:"name" json:"name"`
	Slug         string      `yaml:"slug" json:"slug"`
	Description  string      `yaml:"description" json:"description"`
	Version      string      `yaml:"version" json:"version"`
	Agents       []AgentSpec `yaml:"agents" json:"agents"`
	RoutingRules []RuleSpec  `yaml:"routingRules" json:"routingRules"`
}

// AgentSpec declares one agent to instantiate.
type AgentSpec struct {
	Role             string         `yaml:"role" json:"role"`
	Specialization   string         `yaml:"specialization" json:"specialization"`
	GeneratorRef     map[string]any `yaml:"generatorRef" json:"generatorRef"`
	SystemPromptRef  string         `yaml:"systemPromptRef" json:"systemPromptRef"`
	ToolCapabilities []string       `yaml:"toolCapabilities" json:"toolCapabilities"`
}

// RuleSpec declares one routing rule to instantiate.
type RuleSpec struct {
	AskerRole       string `yaml:"askerRole" json:"askerRole"`
	QuestionType    string `yaml:"questionType" json:"questionType"`
	EscalationLevel int    `yaml:"escalationLevel" json:"escalationLevel"`
	ResponderRole   string `yaml:"responderRole" json:"responderRole"`
	Priority        int    `yaml:"priority" json:"priority"`
}

// Parse decodes one YAML template document and validates it.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse template YAML: %w", err)
	}
	f.applyDefaults()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) applyDefaults() {
	for i := range f.Agents {
		if f.Agents[i].Specialization == "" {
			f.Agents[i].Specialization = "default"
		}
	}
	for i := range f.RoutingRules {
		if f.RoutingRules[i].QuestionType == "" {
			f.RoutingRules[i].QuestionType = "default"
		}
	}
}

// Validate checks structural template invariants: identity fields present,
// a project_manager on the roster, a finite escalation chain, and no rule
// whose responder role is absent from the roster.
func (f *File) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("template name must not be empty")
	}
	if !slugPattern.MatchString(f.Slug) {
		return fmt.Errorf("template slug %q must be kebab-case", f.Slug)
	}
	if f.Version == "" {
		return fmt.Errorf("template version must not be empty")
	}
	if len(f.Agents) == 0 {
		return fmt.Errorf("template must declare at least one agent")
	}

	roles := make(map[string]bool)
	seen := make(map[string]bool)
	hasPM := false
	for _, a := range f.Agents {
		if a.Role == "" {
			return fmt.Errorf("agent role must not be empty")
		}
		key := a.Role + "/" + a.Specialization
		if seen[key] {
			return fmt.Errorf("duplicate agent (%s, %s)", a.Role, a.Specialization)
		}
		seen[key] = true
		roles[a.Role] = true
		if a.Role == "project_manager" {
			hasPM = true
		}
	}
	if !hasPM {
		return fmt.Errorf("template must include a project_manager agent")
	}

	seenRules := make(map[string]bool)
	for _, r := range f.RoutingRules {
		if r.AskerRole == "" || r.ResponderRole == "" {
			return fmt.Errorf("routing rule roles must not be empty")
		}
		if r.EscalationLevel < 0 {
			return fmt.Errorf("routing rule escalation level must not be negative")
		}
		key := fmt.Sprintf("%s/%s/%d/%s", r.AskerRole, r.QuestionType, r.EscalationLevel, r.ResponderRole)
		if seenRules[key] {
			return fmt.Errorf("duplicate routing rule %s", key)
		}
		seenRules[key] = true
		if !roles[r.ResponderRole] {
			return fmt.Errorf("routing rule responder role %q has no agent in the template", r.ResponderRole)
		}
	}

	return nil
}

// LoadDir parses every .yaml/.yml file in dir. Missing dir is not an error;
// the registry is simply empty.
func LoadDir(dir string) ([]*File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read template dir: %w", err)
	}

	var files []*File
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", entry.Name(), err)
		}
		f, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", entry.Name(), err)
		}
		files = append(files, f)
	}
	return files, nil
}
