package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squadflow/squadflow/pkg/services"
)

func newBackingInvoker() *FuncInvoker {
	inv := NewFuncInvoker()
	inv.RegisterTool(ToolDefinition{Name: "code_search", Description: "search the codebase"},
		func(_ context.Context, arguments string) (string, error) {
			return "found: " + arguments, nil
		})
	inv.RegisterTool(ToolDefinition{Name: "deploy", Description: "deploy to production"},
		func(_ context.Context, _ string) (string, error) {
			return "deployed", nil
		})
	return inv
}

func TestACLInvoker_AllowsDeclaredTools(t *testing.T) {
	acl := NewACLInvoker("agent-1", []string{"code_search"}, newBackingInvoker())

	out, err := acl.Invoke(context.Background(), ToolCall{Name: "code_search", Arguments: "handler"})
	require.NoError(t, err)
	assert.Equal(t, "found: handler", out)
}

func TestACLInvoker_DeniesUndeclaredTools(t *testing.T) {
	acl := NewACLInvoker("agent-1", []string{"code_search"}, newBackingInvoker())

	_, err := acl.Invoke(context.Background(), ToolCall{Name: "deploy"})
	require.Error(t, err)
	require.True(t, services.IsPermissionError(err))

	var perm *services.PermissionError
	require.ErrorAs(t, err, &perm)
	assert.Equal(t, "agent-1", perm.AgentID)
	assert.Equal(t, "deploy", perm.Tool)
}

func TestACLInvoker_DefinitionsFiltered(t *testing.T) {
	acl := NewACLInvoker("agent-1", []string{"code_search"}, newBackingInvoker())

	defs := acl.Definitions()
	require.Len(t, defs, 1)
	assert.Equal(t, "code_search", defs[0].Name)

	// Empty ACL offers nothing.
	empty := NewACLInvoker("agent-2", nil, newBackingInvoker())
	assert.Empty(t, empty.Definitions())
}

func TestFuncInvoker_UnknownTool(t *testing.T) {
	inv := NewFuncInvoker()
	_, err := inv.Invoke(context.Background(), ToolCall{Name: "nope"})
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrUpstreamUnavailable)
}
