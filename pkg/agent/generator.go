// Package agent hosts the per-agent runtime: the TextGenerator capability
// with its vendor implementations, the tool ACL, and the processing loop
// that turns inbound messages into replies.
package agent

import (
	"context"
)

// TextGenerator is the opaque generation capability an agent is bound to.
// Implementations stream partial output as chunks; the returned channel is
// closed when the stream completes, and errors arrive as ErrorChunk values.
type TextGenerator interface {
	Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error)

	// Close releases any underlying connection.
	Close() error
}

// GenerateInput is one generation request.
type GenerateInput struct {
	ConversationID string
	AgentID        string
	Messages       []ConversationMessage
	Config         GeneratorConfig
	Tools          []ToolDefinition // nil = no tools
}

// GeneratorConfig is the decoded generator_ref of an agent.
type GeneratorConfig struct {
	Vendor      string  `json:"vendor"`
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	APIKeyEnv   string  `json:"api_key_env"`
	BaseURL     string  `json:"base_url"`
	Address     string  `json:"address"` // gRPC vendor only
}

// ConversationMessage is one turn of generation history.
type ConversationMessage struct {
	Role       string // "system", "user", "assistant", "tool"
	Content    string
	ToolCalls  []ToolCall // For assistant messages
	ToolCallID string     // For tool result messages
	ToolName   string     // For tool result messages
}

// ToolDefinition describes a tool available to the generator.
type ToolDefinition struct {
	Name             string
	Description      string
	ParametersSchema string // JSON Schema
}

// ToolCall is a generator's request to invoke a tool.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string // JSON
}

// Chunk is the interface for all streaming chunk types.
type Chunk interface {
	chunkType() ChunkType
}

// ChunkType identifies the kind of streaming chunk.
type ChunkType string

const (
	ChunkTypeText     ChunkType = "text"
	ChunkTypeToolCall ChunkType = "tool_call"
	ChunkTypeUsage    ChunkType = "usage"
	ChunkTypeError    ChunkType = "error"
)

// TextChunk is a chunk of the generator's text reply.
type TextChunk struct{ Content string }

// ToolCallChunk signals the generator wants to call a tool.
type ToolCallChunk struct{ CallID, Name, Arguments string }

// UsageChunk reports token consumption for this call.
type UsageChunk struct{ InputTokens, OutputTokens, TotalTokens int32 }

// ErrorChunk signals an error from the generator backend.
type ErrorChunk struct {
	Message   string
	Code      string
	Retryable bool
}

func (c *TextChunk) chunkType() ChunkType     { return ChunkTypeText }
func (c *ToolCallChunk) chunkType() ChunkType { return ChunkTypeToolCall }
func (c *UsageChunk) chunkType() ChunkType    { return ChunkTypeUsage }
func (c *ErrorChunk) chunkType() ChunkType    { return ChunkTypeError }
