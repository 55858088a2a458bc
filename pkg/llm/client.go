// Package llm defines the engine's model access: a streamed chat
// interface implemented over the platform's gRPC LLM service. The
// executor consumes the stream chunk by chunk; the compressor,
// contract extractor, router and memory extractor use the collected
// GenerateText convenience.
package llm

import (
	"context"
	"fmt"
	"strings"
)

// Message is one turn of a conversation.
type Message struct {
	Role       string // system, user, assistant, tool
	Content    string
	ToolCallID string
	ToolName   string
	ToolCalls  []ToolCall
}

// ToolCall is a model-requested tool invocation.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string // JSON
}

// ToolSpec advertises a callable tool to the model.
type ToolSpec struct {
	Name             string
	Description      string
	ParametersSchema string // JSON schema
}

// Request is one generation call.
type Request struct {
	TaskID        string
	CorrelationID string
	Messages      []Message
	Tools         []ToolSpec
	Model         string
	Temperature   float32
	MaxTokens     int
}

// Usage is the token accounting of one call.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Chunk is one element of a generation stream.
type Chunk interface{ isChunk() }

// TextChunk carries an incremental text delta.
type TextChunk struct{ Content string }

// ToolCallChunk carries one complete tool call request.
type ToolCallChunk struct{ Call ToolCall }

// UsageChunk carries the final token accounting; at most one per stream.
type UsageChunk struct{ Usage Usage }

// ErrorChunk terminates a stream with a failure.
type ErrorChunk struct {
	Message   string
	Retryable bool
}

func (TextChunk) isChunk()     {}
func (ToolCallChunk) isChunk() {}
func (UsageChunk) isChunk()    {}
func (ErrorChunk) isChunk()    {}

// Client is the model gateway. Generate returns a channel closed when
// the stream ends; an ErrorChunk, when present, is the last element.
type Client interface {
	Generate(ctx context.Context, req Request) (<-chan Chunk, error)
	Close() error
}

// GenerateText runs one call and collects the streamed text. Tool
// calls are rejected — callers wanting tools consume the stream
// directly. Returns the text, token usage, and the stream error if any.
func GenerateText(ctx context.Context, c Client, req Request) (string, Usage, error) {
	stream, err := c.Generate(ctx, req)
	if err != nil {
		return "", Usage{}, err
	}

	var sb strings.Builder
	var usage Usage
	for {
		select {
		case <-ctx.Done():
			return sb.String(), usage, ctx.Err()
		case chunk, ok := <-stream:
			if !ok {
				return sb.String(), usage, nil
			}
			switch ch := chunk.(type) {
			case TextChunk:
				sb.WriteString(ch.Content)
			case UsageChunk:
				usage = ch.Usage
			case ToolCallChunk:
				return sb.String(), usage, fmt.Errorf("unexpected tool call %q in text-only generation", ch.Call.Name)
			case ErrorChunk:
				return sb.String(), usage, &StreamError{Message: ch.Message, Retryable: ch.Retryable}
			}
		}
	}
}

// StreamError is a failure reported inside a generation stream.
type StreamError struct {
	Message   string
	Retryable bool
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("llm stream error: %s", e.Message)
}
