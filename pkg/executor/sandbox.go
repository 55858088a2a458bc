package executor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/stewardhq/steward/pkg/models"
)

// Sandbox delegates stage execution to the agent server inside a
// per-task container, over the /execute wire contract.
type Sandbox struct {
	baseURL string
	client  *http.Client
}

// NewSandbox creates a sandboxed executor for one container. baseURL
// is e.g. "http://127.0.0.1:8701".
func NewSandbox(baseURL string) *Sandbox {
	return &Sandbox{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// executeWire is the POST /execute request body.
type executeWire struct {
	SystemPrompt string   `json:"system_prompt"`
	UserPrompt   string   `json:"user_prompt"`
	Model        string   `json:"model,omitempty"`
	MaxTurns     int      `json:"max_turns,omitempty"`
	EnableTools  bool     `json:"enable_tools"`
	AllowedTools []string `json:"allowed_tools,omitempty"`
	SkillDirs    []string `json:"skill_dirs,omitempty"`
	Workdir      string   `json:"workdir,omitempty"`
	Timeout      int      `json:"timeout,omitempty"` // seconds
}

// resultWire is the /execute response body.
type resultWire struct {
	TextContent string     `json:"text_content"`
	TotalTokens int        `json:"total_tokens"`
	ToolCalls   []toolWire `json:"tool_calls,omitempty"`
	Error       string     `json:"error,omitempty"`
}

type toolWire struct {
	ToolCallID    string          `json:"tool_call_id"`
	ToolName      string          `json:"tool_name"`
	Args          json.RawMessage `json:"args,omitempty"`
	DurationMS    int64           `json:"duration_ms"`
	ResultPreview string          `json:"result_preview,omitempty"`
	Status        string          `json:"status"`
}

// Execute posts the stage to the container and maps the response back
// into the executor contract. Connection failures, timeouts and 5xx
// classify as transient.
func (s *Sandbox) Execute(ctx context.Context, req Request) (*Result, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	body, err := json.Marshal(executeWire{
		SystemPrompt: req.SystemPrompt,
		UserPrompt:   req.UserPrompt,
		Model:        req.Model,
		MaxTurns:     req.MaxTurns,
		EnableTools:  req.EnableTools,
		AllowedTools: req.AllowedTools,
		SkillDirs:    req.SkillDirs,
		Workdir:      req.Workdir,
		Timeout:      int(req.Timeout / time.Second),
	})
	if err != nil {
		return nil, NewError(models.FailureUnknown, fmt.Sprintf("encoding execute request: %v", err), nil, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/execute", bytes.NewReader(body))
	if err != nil {
		return nil, NewError(models.FailureUnknown, fmt.Sprintf("building execute request: %v", err), nil, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, NewError(models.FailureTransient, fmt.Sprintf("sandbox unreachable: %v", err), nil, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, NewError(models.FailureTransient, fmt.Sprintf("reading sandbox response: %v", err), nil, err)
	}

	if resp.StatusCode >= 500 {
		return nil, NewError(models.FailureTransient,
			fmt.Sprintf("sandbox returned %d: %s", resp.StatusCode, preview(string(data))), nil, nil)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, NewError(models.FailureUnknown,
			fmt.Sprintf("sandbox returned %d: %s", resp.StatusCode, preview(string(data))), nil, nil)
	}

	var wire resultWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, NewError(models.FailureUnknown, fmt.Sprintf("decoding sandbox response: %v", err), nil, err)
	}

	result := &Result{
		Text:        wire.TextContent,
		TotalTokens: wire.TotalTokens,
	}
	for _, tc := range wire.ToolCalls {
		result.ToolCalls = append(result.ToolCalls, ToolCall{
			ID:            tc.ToolCallID,
			Name:          tc.ToolName,
			Args:          string(tc.Args),
			Status:        ToolCallStatus(tc.Status),
			DurationMS:    tc.DurationMS,
			ResultPreview: tc.ResultPreview,
		})
	}

	if wire.Error != "" {
		// Token usage from a failed run still counts toward the task.
		return nil, NewError(ClassifyText(wire.Error), wire.Error, result, nil)
	}
	return result, nil
}

// ProbeHealth checks the container's health endpoint once.
func ProbeHealth(ctx context.Context, baseURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := (&http.Client{Timeout: 3 * time.Second}).Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health endpoint returned %d", resp.StatusCode)
	}
	return nil
}
