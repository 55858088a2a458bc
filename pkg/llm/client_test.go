package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chanClient replays a scripted chunk sequence.
type chanClient struct {
	chunks []Chunk
	err    error
}

func (c *chanClient) Generate(ctx context.Context, req Request) (<-chan Chunk, error) {
	if c.err != nil {
		return nil, c.err
	}
	ch := make(chan Chunk, len(c.chunks))
	for _, chunk := range c.chunks {
		ch <- chunk
	}
	close(ch)
	return ch, nil
}

func (c *chanClient) Close() error { return nil }

func TestGenerateTextCollectsStream(t *testing.T) {
	client := &chanClient{chunks: []Chunk{
		TextChunk{Content: "Hello, "},
		TextChunk{Content: "world."},
		UsageChunk{Usage: Usage{TotalTokens: 42}},
	}}

	text, usage, err := GenerateText(context.Background(), client, Request{Model: "m"})
	require.NoError(t, err)
	assert.Equal(t, "Hello, world.", text)
	assert.Equal(t, 42, usage.TotalTokens)
}

func TestGenerateTextSurfacesStreamError(t *testing.T) {
	client := &chanClient{chunks: []Chunk{
		TextChunk{Content: "partial"},
		ErrorChunk{Message: "rate limited", Retryable: true},
	}}

	text, _, err := GenerateText(context.Background(), client, Request{})
	require.Error(t, err)

	var streamErr *StreamError
	require.ErrorAs(t, err, &streamErr)
	assert.True(t, streamErr.Retryable)
	assert.Equal(t, "partial", text)
}

func TestGenerateTextRejectsToolCalls(t *testing.T) {
	client := &chanClient{chunks: []Chunk{
		ToolCallChunk{Call: ToolCall{Name: "bash"}},
	}}

	_, _, err := GenerateText(context.Background(), client, Request{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bash")
}

func TestGenerateTextHonorsContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Channel never closes; cancellation must unblock the collector.
	blocked := make(chan Chunk)
	client := &rawChanClient{ch: blocked}

	_, _, err := GenerateText(ctx, client, Request{})
	assert.ErrorIs(t, err, context.Canceled)
}

type rawChanClient struct{ ch chan Chunk }

func (c *rawChanClient) Generate(context.Context, Request) (<-chan Chunk, error) {
	return c.ch, nil
}
func (c *rawChanClient) Close() error { return nil }
