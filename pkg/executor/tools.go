package executor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"context"

	"github.com/stewardhq/steward/pkg/llm"
)

// Builtin tool names. The in-process executor resolves every path
// argument strictly under the stage workdir.
const (
	ToolBash       = "bash"
	ToolReadFile   = "read_file"
	ToolWriteFile  = "write_file"
	ToolListFiles  = "list_files"
	toolResultCap  = 16 * 1024 // bytes fed back to the model per tool result
	resultPreview  = 500       // chars kept in the ToolCall record
	bashOutputNote = "... [output truncated]"
)

// builtinToolSpecs advertises the builtin set to the model, filtered
// by the request's allow list.
func builtinToolSpecs(allowed []string) []llm.ToolSpec {
	all := []llm.ToolSpec{
		{
			Name:             ToolBash,
			Description:      "Run a shell command in the stage workspace. Returns stdout, stderr and the exit code.",
			ParametersSchema: `{"type":"object","properties":{"command":{"type":"string"}},"required":["command"]}`,
		},
		{
			Name:             ToolReadFile,
			Description:      "Read a file relative to the stage workspace.",
			ParametersSchema: `{"type":"object","properties":{"path":{"type":"string"}},"required":["path"]}`,
		},
		{
			Name:             ToolWriteFile,
			Description:      "Write a file relative to the stage workspace, creating parent directories.",
			ParametersSchema: `{"type":"object","properties":{"path":{"type":"string"},"content":{"type":"string"}},"required":["path","content"]}`,
		},
		{
			Name:             ToolListFiles,
			Description:      "List files under a directory relative to the stage workspace.",
			ParametersSchema: `{"type":"object","properties":{"path":{"type":"string"}}}`,
		},
	}
	if len(allowed) == 0 {
		return all
	}
	allow := make(map[string]bool, len(allowed))
	for _, name := range allowed {
		allow[name] = true
	}
	out := all[:0]
	for _, spec := range all {
		if allow[spec.Name] {
			out = append(out, spec)
		}
	}
	return out
}

// toolRunner executes builtin tools confined to a workdir.
type toolRunner struct {
	workdir string
	allowed map[string]bool
}

func newToolRunner(workdir string, allowed []string) *toolRunner {
	r := &toolRunner{workdir: workdir}
	if len(allowed) > 0 {
		r.allowed = make(map[string]bool, len(allowed))
		for _, name := range allowed {
			r.allowed[name] = true
		}
	}
	return r
}

// run executes one tool call and returns the text fed back to the
// model. Errors that are the tool's own outcome (command failed, file
// missing) are returned as text; errors that mean the call itself is
// invalid (unknown tool, bad JSON, path escape) come back as err.
func (r *toolRunner) run(ctx context.Context, call llm.ToolCall) (string, error) {
	if r.allowed != nil && !r.allowed[call.Name] {
		return "", fmt.Errorf("unknown tool %q", call.Name)
	}

	var args map[string]any
	if call.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			return "", fmt.Errorf("invalid tool call arguments: %w", err)
		}
	}

	switch call.Name {
	case ToolBash:
		return r.bash(ctx, args)
	case ToolReadFile:
		return r.readFile(args)
	case ToolWriteFile:
		return r.writeFile(args)
	case ToolListFiles:
		return r.listFiles(args)
	default:
		return "", fmt.Errorf("unknown tool %q", call.Name)
	}
}

func (r *toolRunner) bash(ctx context.Context, args map[string]any) (string, error) {
	command, _ := args["command"].(string)
	if command == "" {
		return "", fmt.Errorf("invalid tool call arguments: missing command")
	}

	cmd := exec.CommandContext(ctx, "bash", "-c", command)
	cmd.Dir = r.workdir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	exitCode := 0
	if runErr != nil {
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			return "", fmt.Errorf("running command: %w", runErr)
		}
	}

	out := stdout.String()
	if stderr.Len() > 0 {
		out += "\n[stderr]\n" + stderr.String()
	}
	if len(out) > toolResultCap {
		out = out[:toolResultCap] + bashOutputNote
	}
	return fmt.Sprintf("exit_code: %d\n%s", exitCode, out), nil
}

func (r *toolRunner) readFile(args map[string]any) (string, error) {
	path, err := r.resolve(args["path"])
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("error: %v", err), nil
	}
	if len(data) > toolResultCap {
		data = append(data[:toolResultCap], []byte(bashOutputNote)...)
	}
	return string(data), nil
}

func (r *toolRunner) writeFile(args map[string]any) (string, error) {
	path, err := r.resolve(args["path"])
	if err != nil {
		return "", err
	}
	content, _ := args["content"].(string)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Sprintf("error: %v", err), nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Sprintf("error: %v", err), nil
	}
	return fmt.Sprintf("wrote %d bytes to %s", len(content), args["path"]), nil
}

func (r *toolRunner) listFiles(args map[string]any) (string, error) {
	raw := args["path"]
	if raw == nil {
		raw = "."
	}
	path, err := r.resolve(raw)
	if err != nil {
		return "", err
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Sprintf("error: %v", err), nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "\n"), nil
}

// resolve confines a path argument to the workdir. Absolute paths and
// traversal outside the workdir are invalid tool calls.
func (r *toolRunner) resolve(raw any) (string, error) {
	rel, _ := raw.(string)
	if rel == "" {
		return "", fmt.Errorf("invalid tool call arguments: missing path")
	}
	if filepath.IsAbs(rel) {
		return "", fmt.Errorf("invalid tool call arguments: absolute path %q", rel)
	}
	joined := filepath.Join(r.workdir, rel)
	root := filepath.Clean(r.workdir)
	if joined != root && !strings.HasPrefix(joined, root+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid tool call arguments: path %q escapes the workspace", rel)
	}
	return joined, nil
}

// preview caps a tool result for the ToolCall record.
func preview(s string) string {
	r := []rune(s)
	if len(r) <= resultPreview {
		return s
	}
	return string(r[:resultPreview]) + "..."
}
