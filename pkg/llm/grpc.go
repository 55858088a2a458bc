package llm

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	llmv1 "github.com/stewardhq/steward/proto"
)

// GRPCClient implements Client over the platform's LLM gRPC service.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client llmv1.LLMServiceClient
}

// NewGRPCClient connects to the LLM service. grpc.NewClient dials
// lazily; the first RPC establishes the connection.
func NewGRPCClient(addr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("connecting to LLM service at %s: %w", addr, err)
	}
	return &GRPCClient{conn: conn, client: llmv1.NewLLMServiceClient(conn)}, nil
}

// Generate opens the server stream and pumps chunks onto a channel.
func (c *GRPCClient) Generate(ctx context.Context, req Request) (<-chan Chunk, error) {
	stream, err := c.client.Generate(ctx, toProtoRequest(req))
	if err != nil {
		return nil, fmt.Errorf("LLM Generate call: %w", err)
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
				case ch <- ErrorChunk{Message: err.Error()}:
				case <-ctx.Done():
				}
				return
			}
			chunk := fromProtoChunk(resp)
			if chunk == nil {
				continue
			}
			select {
			case ch <- chunk:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}

// Close releases the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func toProtoRequest(req Request) *llmv1.GenerateRequest {
	out := &llmv1.GenerateRequest{
		TaskId:        req.TaskID,
		CorrelationId: req.CorrelationID,
		Config: &llmv1.LLMConfig{
			Model:       req.Model,
			Temperature: req.Temperature,
			MaxTokens:   int32(req.MaxTokens),
		},
	}
	for _, m := range req.Messages {
		pm := &llmv1.ConversationMessage{
			Role:       m.Role,
			Content:    m.Content,
			ToolCallId: m.ToolCallID,
			ToolName:   m.ToolName,
		}
		for _, tc := range m.ToolCalls {
			pm.ToolCalls = append(pm.ToolCalls, &llmv1.ToolCall{
				Id:        tc.ID,
				Name:      tc.Name,
				Arguments: tc.Arguments,
			})
		}
		out.Messages = append(out.Messages, pm)
	}
	for _, t := range req.Tools {
		out.Tools = append(out.Tools, &llmv1.ToolSpec{
			Name:             t.Name,
			Description:      t.Description,
			ParametersSchema: t.ParametersSchema,
		})
	}
	return out
}

func fromProtoChunk(resp *llmv1.GenerateChunk) Chunk {
	switch c := resp.GetChunk().(type) {
	case *llmv1.GenerateChunk_Text:
		return TextChunk{Content: c.Text.GetContent()}
	case *llmv1.GenerateChunk_ToolCall:
		return ToolCallChunk{Call: ToolCall{
			ID:        c.ToolCall.GetId(),
			Name:      c.ToolCall.GetName(),
			Arguments: c.ToolCall.GetArguments(),
		}}
	case *llmv1.GenerateChunk_Usage:
		return UsageChunk{Usage: Usage{
			PromptTokens:     int(c.Usage.GetPromptTokens()),
			CompletionTokens: int(c.Usage.GetCompletionTokens()),
			TotalTokens:      int(c.Usage.GetTotalTokens()),
		}}
	case *llmv1.GenerateChunk_Error:
		return ErrorChunk{Message: c.Error.GetMessage(), Retryable: c.Error.GetRetryable()}
	default:
		return nil
	}
}
