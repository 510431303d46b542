package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
name: Web Delivery Squad
slug: web-delivery
description: Full-stack delivery squad
version: "1.0"
agents:
  - role: project_manager
    generatorRef: {vendor: mock}
    systemPromptRef: prompts/pm
  - role: backend_developer
    specialization: golang
    generatorRef: {vendor: mock}
    systemPromptRef: prompts/backend
    toolCapabilities: [code_search]
  - role: tech_lead
    generatorRef: {vendor: mock}
    systemPromptRef: prompts/lead
routingRules:
  - askerRole: backend_developer
    questionType: architecture
    responderRole: tech_lead
  - askerRole: backend_developer
    questionType: architecture
    escalationLevel: 1
    responderRole: project_manager
  - askerRole: backend_developer
    responderRole: tech_lead
`

func TestParse_Valid(t *testing.T) {
	f, err := Parse([]byte(validYAML))
	require.NoError(t, err)

	assert.Equal(t, "web-delivery", f.Slug)
	assert.Len(t, f.Agents, 3)
	assert.Len(t, f.RoutingRules, 3)

	// Defaults applied.
	assert.Equal(t, "default", f.Agents[0].Specialization)
	assert.Equal(t, "golang", f.Agents[1].Specialization)
	assert.Equal(t, "architecture", f.RoutingRules[0].QuestionType)
	assert.Equal(t, "default", f.RoutingRules[2].QuestionType)
	assert.Equal(t, 1, f.RoutingRules[1].EscalationLevel)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *File)
		errMsg string
	}{
		{
			name:   "missing name",
			mutate: func(f *File) { f.Name = "" },
			errMsg: "name must not be empty",
		},
		{
			name:   "bad slug",
			mutate: func(f *File) { f.Slug = "Web_Delivery" },
			errMsg: "kebab-case",
		},
		{
			name:   "missing version",
			mutate: func(f *File) { f.Version = "" },
			errMsg: "version",
		},
		{
			name:   "no agents",
			mutate: func(f *File) { f.Agents = nil },
			errMsg: "at least one agent",
		},
		{
			name: "no project manager",
			mutate: func(f *File) {
				f.Agents = f.Agents[1:]
			},
			errMsg: "project_manager",
		},
		{
			name: "duplicate agent",
			mutate: func(f *File) {
				f.Agents = append(f.Agents, f.Agents[1])
			},
			errMsg: "duplicate agent",
		},
		{
			name: "duplicate rule",
			mutate: func(f *File) {
				f.RoutingRules = append(f.RoutingRules, f.RoutingRules[0])
			},
			errMsg: "duplicate routing rule",
		},
		{
			name: "responder role not on roster",
			mutate: func(f *File) {
				f.RoutingRules[0].ResponderRole = "missing_role"
			},
			errMsg: "no agent in the template",
		},
		{
			name: "negative escalation level",
			mutate: func(f *File) {
				f.RoutingRules[0].EscalationLevel = -1
			},
			errMsg: "must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(validYAML))
			require.NoError(t, err)

			tt.mutate(f)
			err = f.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParse_RejectsGarbage(t *testing.T) {
	_, err := Parse([]byte("{{not yaml"))
	assert.Error(t, err)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "web.yaml"), []byte(validYAML), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))

	files, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "web-delivery", files[0].Slug)
}

func TestLoadDir_MissingDirIsEmpty(t *testing.T) {
	files, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestLoadDir_InvalidFileFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("name: X"), 0o600))

	_, err := LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}
