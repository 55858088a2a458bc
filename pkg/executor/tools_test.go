package executor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/llm"
)

func TestToolRunnerWriteThenRead(t *testing.T) {
	dir := t.TempDir()
	r := newToolRunner(dir, nil)

	out, err := r.run(context.Background(), llm.ToolCall{
		Name:      ToolWriteFile,
		Arguments: `{"path":"src/main.go","content":"package main\n"}`,
	})
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	out, err = r.run(context.Background(), llm.ToolCall{
		Name:      ToolReadFile,
		Arguments: `{"path":"src/main.go"}`,
	})
	require.NoError(t, err)
	assert.Equal(t, "package main\n", out)
}

func TestToolRunnerBash(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hello.txt"), []byte("hi"), 0o644))
	r := newToolRunner(dir, nil)

	out, err := r.run(context.Background(), llm.ToolCall{
		Name:      ToolBash,
		Arguments: `{"command":"cat hello.txt"}`,
	})
	require.NoError(t, err)
	assert.Contains(t, out, "exit_code: 0")
	assert.Contains(t, out, "hi")

	out, err = r.run(context.Background(), llm.ToolCall{
		Name:      ToolBash,
		Arguments: `{"command":"exit 3"}`,
	})
	require.NoError(t, err)
	assert.Contains(t, out, "exit_code: 3")
}

func TestToolRunnerListFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0o644))
	r := newToolRunner(dir, nil)

	out, err := r.run(context.Background(), llm.ToolCall{Name: ToolListFiles, Arguments: `{}`})
	require.NoError(t, err)
	assert.Equal(t, "a.txt\nsub/", out)
}

func TestToolRunnerConfinement(t *testing.T) {
	r := newToolRunner(t.TempDir(), nil)

	_, err := r.run(context.Background(), llm.ToolCall{
		Name:      ToolReadFile,
		Arguments: `{"path":"../../etc/passwd"}`,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes")

	_, err = r.run(context.Background(), llm.ToolCall{
		Name:      ToolReadFile,
		Arguments: `{"path":"/etc/passwd"}`,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absolute")
}

func TestToolRunnerUnknownToolAndBadJSON(t *testing.T) {
	r := newToolRunner(t.TempDir(), nil)

	_, err := r.run(context.Background(), llm.ToolCall{Name: "fetch_url", Arguments: `{}`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tool")

	_, err = r.run(context.Background(), llm.ToolCall{Name: ToolBash, Arguments: `{broken`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid tool call arguments")
}

func TestToolRunnerAllowList(t *testing.T) {
	r := newToolRunner(t.TempDir(), []string{ToolReadFile})

	_, err := r.run(context.Background(), llm.ToolCall{Name: ToolBash, Arguments: `{"command":"true"}`})
	require.Error(t, err)

	specs := builtinToolSpecs([]string{ToolReadFile, ToolWriteFile})
	require.Len(t, specs, 2)
	assert.Equal(t, ToolReadFile, specs[0].Name)
}
