package agent

import (
	"context"
	"fmt"

	"github.com/squadflow/squadflow/pkg/services"
)

// ToolInvoker is the opaque tool-execution capability. Implementations
// live outside the core; the runtime only sees this interface.
type ToolInvoker interface {
	// Invoke executes one tool call and returns its textual result.
	Invoke(ctx context.Context, call ToolCall) (string, error)

	// Definitions lists the tools the invoker can execute.
	Definitions() []ToolDefinition
}

// ACLInvoker enforces an agent's tool_capabilities before delegating.
// Calls outside the ACL fail with PermissionError and are never executed.
type ACLInvoker struct {
	agentID string
	allowed map[string]bool
	next    ToolInvoker
}

// NewACLInvoker wraps next with the agent's capability set.
func NewACLInvoker(agentID string, capabilities []string, next ToolInvoker) *ACLInvoker {
	allowed := make(map[string]bool, len(capabilities))
	for _, c := range capabilities {
		allowed[c] = true
	}
	return &ACLInvoker{agentID: agentID, allowed: allowed, next: next}
}

// Invoke checks the ACL, then delegates.
func (a *ACLInvoker) Invoke(ctx context.Context, call ToolCall) (string, error) {
	if !a.allowed[call.Name] {
		return "", &services.PermissionError{AgentID: a.agentID, Tool: call.Name}
	}
	return a.next.Invoke(ctx, call)
}

// Definitions lists only the tools inside the ACL, so the generator is
// never offered a tool the agent cannot use.
func (a *ACLInvoker) Definitions() []ToolDefinition {
	var defs []ToolDefinition
	for _, d := range a.next.Definitions() {
		if a.allowed[d.Name] {
			defs = append(defs, d)
		}
	}
	return defs
}

// FuncInvoker dispatches tool calls to registered Go functions. Used for
// tests and as the default empty invoker.
type FuncInvoker struct {
	defs  []ToolDefinition
	funcs map[string]func(ctx context.Context, arguments string) (string, error)
}

// NewFuncInvoker creates an empty invoker.
func NewFuncInvoker() *FuncInvoker {
	return &FuncInvoker{funcs: make(map[string]func(context.Context, string) (string, error))}
}

// RegisterTool adds one callable tool.
func (f *FuncInvoker) RegisterTool(def ToolDefinition, fn func(ctx context.Context, arguments string) (string, error)) {
	f.defs = append(f.defs, def)
	f.funcs[def.Name] = fn
}

// Invoke runs the registered function for the call.
func (f *FuncInvoker) Invoke(ctx context.Context, call ToolCall) (string, error) {
	fn, ok := f.funcs[call.Name]
	if !ok {
		return "", fmt.Errorf("tool %s: %w", call.Name, services.ErrUpstreamUnavailable)
	}
	return fn(ctx, call.Arguments)
}

// Definitions lists the registered tools.
func (f *FuncInvoker) Definitions() []ToolDefinition {
	return f.defs
}
