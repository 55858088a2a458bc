package executor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/llm"
	"github.com/stewardhq/steward/pkg/models"
)

// scriptClient replays one prepared chunk stream per Generate call.
type scriptClient struct {
	turns    [][]llm.Chunk
	requests []llm.Request
}

func (c *scriptClient) Generate(_ context.Context, req llm.Request) (<-chan llm.Chunk, error) {
	c.requests = append(c.requests, req)
	if len(c.turns) == 0 {
		return nil, errors.New("script exhausted")
	}
	chunks := c.turns[0]
	c.turns = c.turns[1:]
	ch := make(chan llm.Chunk, len(chunks))
	for _, chunk := range chunks {
		ch <- chunk
	}
	close(ch)
	return ch, nil
}

func (c *scriptClient) Close() error { return nil }

func TestInProcessSingleTurn(t *testing.T) {
	client := &scriptClient{turns: [][]llm.Chunk{{
		llm.TextChunk{Content: "done"},
		llm.UsageChunk{Usage: llm.Usage{TotalTokens: 42}},
	}}}

	result, err := NewInProcess(client).Execute(context.Background(), Request{
		SystemPrompt: "sys",
		UserPrompt:   "go",
	})
	require.NoError(t, err)
	assert.Equal(t, "done", result.Text)
	assert.Equal(t, 42, result.TotalTokens)
	assert.Equal(t, 1, result.Turns)
	assert.Empty(t, result.ToolCalls)
}

func TestInProcessToolLoop(t *testing.T) {
	client := &scriptClient{turns: [][]llm.Chunk{
		{
			llm.ToolCallChunk{Call: llm.ToolCall{ID: "c1", Name: ToolWriteFile,
				Arguments: `{"path":"out.txt","content":"hello"}`}},
			llm.UsageChunk{Usage: llm.Usage{TotalTokens: 10}},
		},
		{
			llm.TextChunk{Content: "wrote the file"},
			llm.UsageChunk{Usage: llm.Usage{TotalTokens: 5}},
		},
	}}

	result, err := NewInProcess(client).Execute(context.Background(), Request{
		UserPrompt:  "write hello",
		EnableTools: true,
		Workdir:     t.TempDir(),
	})
	require.NoError(t, err)
	assert.Equal(t, "wrote the file", result.Text)
	assert.Equal(t, 15, result.TotalTokens)
	assert.Equal(t, 2, result.Turns)
	require.Len(t, result.ToolCalls, 1)
	assert.Equal(t, ToolCallSuccess, result.ToolCalls[0].Status)

	// The second request carries the assistant turn and the tool result.
	require.Len(t, client.requests, 2)
	msgs := client.requests[1].Messages
	require.Len(t, msgs, 4)
	assert.Equal(t, "assistant", msgs[2].Role)
	assert.Equal(t, "tool", msgs[3].Role)
	assert.Equal(t, "c1", msgs[3].ToolCallID)
	assert.Contains(t, msgs[3].Content, "wrote 5 bytes")
}

func TestInProcessToolErrorFedBack(t *testing.T) {
	client := &scriptClient{turns: [][]llm.Chunk{
		{
			llm.ToolCallChunk{Call: llm.ToolCall{ID: "c1", Name: ToolReadFile,
				Arguments: `{"path":"/etc/passwd"}`}},
		},
		{
			llm.TextChunk{Content: "understood"},
		},
	}}

	result, err := NewInProcess(client).Execute(context.Background(), Request{
		UserPrompt:  "read it",
		EnableTools: true,
		Workdir:     t.TempDir(),
	})
	require.NoError(t, err)
	require.Len(t, result.ToolCalls, 1)
	assert.Equal(t, ToolCallFailed, result.ToolCalls[0].Status)
	assert.Contains(t, client.requests[1].Messages[3].Content, "tool error:")
}

func TestInProcessStreamErrorPreservesPartial(t *testing.T) {
	client := &scriptClient{turns: [][]llm.Chunk{{
		llm.TextChunk{Content: "partial output"},
		llm.UsageChunk{Usage: llm.Usage{TotalTokens: 7}},
		llm.ErrorChunk{Message: "rate limit exceeded", Retryable: true},
	}}}

	_, err := NewInProcess(client).Execute(context.Background(), Request{UserPrompt: "go"})
	require.Error(t, err)
	var execErr *Error
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, models.FailureTransient, execErr.Category)
	require.NotNil(t, execErr.Partial)
	assert.Equal(t, "partial output", execErr.Partial.Text)
	assert.Equal(t, 7, execErr.Partial.TotalTokens)
}

func TestInProcessTurnBudgetReturnsPartial(t *testing.T) {
	call := llm.ToolCallChunk{Call: llm.ToolCall{ID: "c", Name: ToolListFiles, Arguments: `{}`}}
	client := &scriptClient{turns: [][]llm.Chunk{
		{call}, {call}, {call},
	}}

	result, err := NewInProcess(client).Execute(context.Background(), Request{
		UserPrompt:  "loop forever",
		EnableTools: true,
		MaxTurns:    3,
		Workdir:     t.TempDir(),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Turns)
	assert.Len(t, result.ToolCalls, 3)
}

func TestInProcessEventOrder(t *testing.T) {
	client := &scriptClient{turns: [][]llm.Chunk{
		{
			llm.TextChunk{Content: "thinking"},
			llm.ToolCallChunk{Call: llm.ToolCall{ID: "c1", Name: ToolListFiles, Arguments: `{}`}},
		},
		{llm.TextChunk{Content: "done"}},
	}}

	events := make(chan ExecEvent, 32)
	_, err := NewInProcess(client).Execute(context.Background(), Request{
		UserPrompt:  "go",
		EnableTools: true,
		Workdir:     t.TempDir(),
		Events:      events,
	})
	require.NoError(t, err)
	close(events)

	var kinds []ExecEventKind
	for ev := range events {
		kinds = append(kinds, ev.Kind)
	}
	assert.Equal(t, []ExecEventKind{
		EventTurnStart, EventStreamDelta, EventTurnEnd,
		EventBeforeTool, EventAfterTool,
		EventTurnStart, EventStreamDelta, EventTurnEnd,
	}, kinds)
}

func TestInProcessTimeout(t *testing.T) {
	blocked := &blockingClient{}
	start := time.Now()
	_, err := NewInProcess(blocked).Execute(context.Background(), Request{
		UserPrompt: "go",
		Timeout:    20 * time.Millisecond,
	})
	require.Error(t, err)
	var execErr *Error
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, models.FailureTransient, execErr.Category)
	assert.Less(t, time.Since(start), 2*time.Second)
}

type blockingClient struct{}

func (blockingClient) Generate(ctx context.Context, _ llm.Request) (<-chan llm.Chunk, error) {
	ch := make(chan llm.Chunk)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

func (blockingClient) Close() error { return nil }
