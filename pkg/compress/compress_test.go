package compress

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/llm"
)

// scriptedClient answers each Generate call with the next reply.
type scriptedClient struct {
	replies []string
	err     error
	calls   int
}

func (c *scriptedClient) Generate(ctx context.Context, req llm.Request) (<-chan llm.Chunk, error) {
	if c.err != nil {
		return nil, c.err
	}
	reply := ""
	if c.calls < len(c.replies) {
		reply = c.replies[c.calls]
	}
	c.calls++
	ch := make(chan llm.Chunk, 2)
	ch <- llm.TextChunk{Content: reply}
	ch <- llm.UsageChunk{Usage: llm.Usage{TotalTokens: 5}}
	close(ch)
	return ch, nil
}

func (c *scriptedClient) Close() error { return nil }

func TestCompressUsesLLMWhenEnabled(t *testing.T) {
	client := &scriptedClient{replies: []string{"one-liner", "- a\n- b"}}
	c := New(client, "small", true)

	lv := c.Compress(context.Background(), "parse", "long output\nwith lines")
	assert.Equal(t, "one-liner", lv.L0)
	assert.Equal(t, "- a\n- b", lv.L1)
	assert.Equal(t, "long output\nwith lines", lv.L2)
	assert.Equal(t, 2, client.calls)
}

func TestCompressFallsBackOnError(t *testing.T) {
	client := &scriptedClient{err: errors.New("unavailable")}
	c := New(client, "small", true)

	text := "first line of output\nsecond line"
	lv := c.Compress(context.Background(), "parse", text)
	assert.Equal(t, "first line of output", lv.L0)
	assert.Equal(t, text, lv.L1)
	assert.Equal(t, text, lv.L2)
}

func TestCompressDisabledUsesFallback(t *testing.T) {
	c := New(nil, "", false)
	lv := c.Compress(context.Background(), "parse", "only line")
	assert.Equal(t, "only line", lv.L0)
}

func TestFallbackTruncation(t *testing.T) {
	long := strings.Repeat("x", 2000)
	lv := Fallback(long)
	assert.Len(t, []rune(lv.L0), 200)
	assert.Equal(t, strings.Repeat("x", 1500)+"...", lv.L1)
	assert.Equal(t, long, lv.L2)

	short := "tiny"
	lv = Fallback(short)
	assert.Equal(t, "tiny", lv.L0)
	assert.Equal(t, "tiny", lv.L1)
}

func TestPriorContextDistanceRule(t *testing.T) {
	a := NewAccumulator()
	for _, s := range []string{"parse", "spec", "coding"} {
		a.Append(s, Levels{L0: s + "-l0", L1: s + "-l1", L2: s + "-l2"})
	}

	entries := a.PriorContext(3, nil)
	require.Len(t, entries, 3)

	// distance 2 → L0, distance 1 → L1, distance 0 → L2.
	assert.Equal(t, "[概要] parse-l0", entries[0].Text)
	assert.Equal(t, "[摘要] spec-l1", entries[1].Text)
	assert.Equal(t, "coding-l2", entries[2].Text)
}

func TestPriorContextExactlyIEntries(t *testing.T) {
	a := NewAccumulator()
	stages := []string{"a", "b", "c", "d", "e"}
	for _, s := range stages {
		a.Append(s, Levels{L0: s, L1: s, L2: s})
	}

	for i := 0; i <= len(stages); i++ {
		entries := a.PriorContext(i, nil)
		require.Len(t, entries, i)
		for j, e := range entries {
			assert.Equal(t, stages[j], e.Stage)
		}
	}
}

func TestPriorContextFullContextOverride(t *testing.T) {
	a := NewAccumulator()
	for _, s := range []string{"parse", "spec", "coding"} {
		a.Append(s, Levels{L0: s + "-l0", L1: s + "-l1", L2: s + "-l2"})
	}

	entries := a.PriorContext(3, []string{"parse"})
	require.Len(t, entries, 3)
	assert.Equal(t, "parse-l2", entries[0].Text) // override beats distance
	assert.Equal(t, "[摘要] spec-l1", entries[1].Text)
}

func TestAppendReplacesReExecutedStage(t *testing.T) {
	a := NewAccumulator()
	a.Append("parse", Levels{L0: "v1", L1: "v1", L2: "v1"})
	a.Append("spec", Levels{L0: "s", L1: "s", L2: "s"})
	a.Append("parse", Levels{L0: "v2", L1: "v2", L2: "v2"})

	assert.Equal(t, 2, a.Len())
	entries := a.PriorContext(2, nil)
	assert.Equal(t, "parse", entries[0].Stage)
	assert.Equal(t, "[摘要] v2", entries[0].Text)
}
