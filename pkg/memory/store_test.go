package memory

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/llm"
	"github.com/stewardhq/steward/pkg/models"
)

func testStore(t *testing.T, cap int) *Store {
	return NewStore(config.MemoryConfig{
		Enabled:               true,
		Dir:                   t.TempDir(),
		MaxEntriesPerCategory: cap,
	})
}

func TestStoreAppendAndLoad(t *testing.T) {
	s := testStore(t, 10)

	require.NoError(t, s.Append("p1", models.BucketConventions,
		models.MemoryEntry{Content: "tests live next to the code"},
		models.MemoryEntry{Content: "errors are wrapped with %w"},
	))

	entries, err := s.Load("p1", models.BucketConventions)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "tests live next to the code", entries[0].Content)
	assert.NotEmpty(t, entries[0].ID)
	assert.False(t, entries[0].CreatedAt.IsZero())

	// Other projects and buckets stay empty.
	entries, err = s.Load("p2", models.BucketConventions)
	require.NoError(t, err)
	assert.Empty(t, entries)
	entries, err = s.Load("p1", models.BucketIssues)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStoreCapDropsOldest(t *testing.T) {
	s := testStore(t, 3)

	for i := 1; i <= 5; i++ {
		require.NoError(t, s.Append("p1", models.BucketPatterns,
			models.MemoryEntry{Content: fmt.Sprintf("fact %d", i)}))
	}

	entries, err := s.Load("p1", models.BucketPatterns)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "fact 3", entries[0].Content)
	assert.Equal(t, "fact 5", entries[2].Content)
}

func TestStoreRejectsUnknownBucket(t *testing.T) {
	s := testStore(t, 10)
	assert.Error(t, s.Append("p1", "secrets", models.MemoryEntry{Content: "x"}))
	_, err := s.Load("p1", "secrets")
	assert.Error(t, err)
}

func TestStoreFilesAreInspectable(t *testing.T) {
	s := testStore(t, 10)
	require.NoError(t, s.Append("p1", models.BucketIssues, models.MemoryEntry{Content: "x"}))
	assert.FileExists(t, filepath.Join(s.dir, "p1", "issues.json"))
}

func TestPromptBlock(t *testing.T) {
	s := testStore(t, 10)

	block, err := s.PromptBlock("p1")
	require.NoError(t, err)
	assert.Empty(t, block)

	require.NoError(t, s.Append("p1", models.BucketConventions,
		models.MemoryEntry{Content: "use table tests"}))
	require.NoError(t, s.Append("p1", models.BucketIssues,
		models.MemoryEntry{Content: "flaky CI on arm64"}))

	block, err = s.PromptBlock("p1")
	require.NoError(t, err)
	assert.Contains(t, block, "conventions:")
	assert.Contains(t, block, "- use table tests")
	assert.Contains(t, block, "issues:")
	assert.Contains(t, block, "- flaky CI on arm64")

	block, err = s.PromptBlock("")
	require.NoError(t, err)
	assert.Empty(t, block)
}

// scriptClient replays one prepared text response per Generate call.
type scriptClient struct {
	responses []string
	fail      bool
}

func (c *scriptClient) Generate(_ context.Context, _ llm.Request) (<-chan llm.Chunk, error) {
	if c.fail {
		return nil, errors.New("llm unavailable")
	}
	if len(c.responses) == 0 {
		return nil, errors.New("script exhausted")
	}
	text := c.responses[0]
	c.responses = c.responses[1:]
	ch := make(chan llm.Chunk, 1)
	ch <- llm.TextChunk{Content: text}
	close(ch)
	return ch, nil
}

func (c *scriptClient) Close() error { return nil }

func TestExtractFromTask(t *testing.T) {
	s := testStore(t, 10)
	client := &scriptClient{responses: []string{
		"```json\n{\"conventions\":[{\"content\":\"handlers return DTOs\",\"confidence\":0.9}]," +
			"\"issues\":[{\"content\":\"migration 12 is slow\",\"confidence\":0.6,\"tags\":[\"db\"]}]}\n```",
	}}
	e := NewExtractor(client, "MiniMax-M2", s, true)

	task := &models.Task{ID: "task-1", Title: "add handler", ProjectID: "p1"}
	e.ExtractFromTask(context.Background(), task, []StageDigest{
		{Name: "coding", Role: "developer", Summary: "added the handler"},
	})

	conventions, err := s.Load("p1", models.BucketConventions)
	require.NoError(t, err)
	require.Len(t, conventions, 1)
	assert.Equal(t, "handlers return DTOs", conventions[0].Content)
	assert.Equal(t, "task-1", conventions[0].SourceTaskID)
	assert.Equal(t, 0.9, conventions[0].Confidence)

	issues, err := s.Load("p1", models.BucketIssues)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, []string{"db"}, issues[0].Tags)
}

func TestExtractFromTaskSwallowsFailures(t *testing.T) {
	s := testStore(t, 10)
	e := NewExtractor(&scriptClient{fail: true}, "MiniMax-M2", s, true)

	task := &models.Task{ID: "task-1", Title: "t", ProjectID: "p1"}
	e.ExtractFromTask(context.Background(), task, []StageDigest{{Name: "s", Summary: "x"}})

	all, err := s.LoadAll("p1")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRejectionLessonFallsBackToComment(t *testing.T) {
	s := testStore(t, 10)
	task := &models.Task{ID: "task-1", Title: "t", ProjectID: "p1"}

	e := NewExtractor(&scriptClient{fail: true}, "MiniMax-M2", s, true)
	entry := e.RejectionLesson(context.Background(), task, "review", "missing error handling")
	assert.Equal(t, "missing error handling", entry.Content)
	assert.Contains(t, entry.Tags, "gate-rejection")

	e = NewExtractor(&scriptClient{responses: []string{"Always handle errors explicitly."}}, "MiniMax-M2", s, true)
	entry = e.RejectionLesson(context.Background(), task, "review", "missing error handling")
	assert.Equal(t, "Always handle errors explicitly.", entry.Content)
}
