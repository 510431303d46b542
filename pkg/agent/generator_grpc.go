package agent

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	genv1 "github.com/squadflow/squadflow/proto"
)

// GRPCGenerator implements TextGenerator over the generator gRPC service.
type GRPCGenerator struct {
	conn   *grpc.ClientConn
	client genv1.GeneratorServiceClient
}

// NewGRPCGenerator dials the generator service.
func NewGRPCGenerator(addr string) (*GRPCGenerator, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to generator service at %s: %w", addr, err)
	}
	return &GRPCGenerator{
		conn:   conn,
		client: genv1.NewGeneratorServiceClient(conn),
	}, nil
}

// Generate sends the conversation and returns a channel of chunks.
func (g *GRPCGenerator) Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	stream, err := g.client.Generate(ctx, toProtoRequest(input))
	if err != nil {
		return nil, fmt.Errorf("gRPC Generate call failed: %w", err)
	}

	ch := make(chan Chunk, 32)
	go func() {
		defer close(ch)
		for {
			resp, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				select {
				case ch <- &ErrorChunk{Message: err.Error(), Retryable: false}:
				case <-ctx.Done():
				}
				return
			}
			chunk := fromProtoResponse(resp)
			if chunk != nil {
				select {
				case ch <- chunk:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}

// Close releases the gRPC connection.
func (g *GRPCGenerator) Close() error {
	return g.conn.Close()
}

func toProtoRequest(input *GenerateInput) *genv1.GenerateRequest {
	req := &genv1.GenerateRequest{
		ConversationId: input.ConversationID,
		AgentId:        input.AgentID,
		Messages:       toProtoMessages(input.Messages),
		Tools:          toProtoTools(input.Tools),
		Config: &genv1.GeneratorConfig{
			Vendor:      input.Config.Vendor,
			Model:       input.Config.Model,
			Temperature: input.Config.Temperature,
			ApiKeyEnv:   input.Config.APIKeyEnv,
			BaseUrl:     input.Config.BaseURL,
		},
	}
	return req
}

func toProtoMessages(msgs []ConversationMessage) []*genv1.ConversationMessage {
	out := make([]*genv1.ConversationMessage, len(msgs))
	for i, m := range msgs {
		pm := &genv1.ConversationMessage{
			Role:       m.Role,
			Content:    m.Content,
			ToolCallId: m.ToolCallID,
			ToolName:   m.ToolName,
		}
		for _, tc := range m.ToolCalls {
			pm.ToolCalls = append(pm.ToolCalls, &genv1.ToolCall{
				Id:        tc.ID,
				Name:      tc.Name,
				Arguments: tc.Arguments,
			})
		}
		out[i] = pm
	}
	return out
}

func toProtoTools(tools []ToolDefinition) []*genv1.ToolDefinition {
	if len(tools) == 0 {
		return nil
	}
	out := make([]*genv1.ToolDefinition, len(tools))
	for i, t := range tools {
		out[i] = &genv1.ToolDefinition{
			Name:             t.Name,
			Description:      t.Description,
			ParametersSchema: t.ParametersSchema,
		}
	}
	return out
}

func fromProtoResponse(resp *genv1.GenerateResponse) Chunk {
	switch c := resp.Chunk.(type) {
	case *genv1.GenerateResponse_Text:
		return &TextChunk{Content: c.Text.Content}
	case *genv1.GenerateResponse_ToolCall:
		return &ToolCallChunk{
			CallID:    c.ToolCall.CallId,
			Name:      c.ToolCall.Name,
			Arguments: c.ToolCall.Arguments,
		}
	case *genv1.GenerateResponse_Usage:
		return &UsageChunk{
			InputTokens:  c.Usage.InputTokens,
			OutputTokens: c.Usage.OutputTokens,
			TotalTokens:  c.Usage.TotalTokens,
		}
	case *genv1.GenerateResponse_Error:
		return &ErrorChunk{
			Message:   c.Error.Message,
			Code:      c.Error.Code,
			Retryable: c.Error.Retryable,
		}
	default:
		return nil
	}
}
