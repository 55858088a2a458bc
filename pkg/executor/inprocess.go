package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stewardhq/steward/pkg/llm"
	"github.com/stewardhq/steward/pkg/models"
)

const defaultMaxTurns = 10

// InProcess runs the agent loop inside the engine process: streamed
// LLM turns with builtin tool execution confined to the stage workdir.
type InProcess struct {
	client llm.Client
}

// NewInProcess creates the in-process executor.
func NewInProcess(client llm.Client) *InProcess {
	return &InProcess{client: client}
}

// Execute drives the turn loop until the model stops requesting tools,
// max turns is reached, or the context expires.
func (e *InProcess) Execute(ctx context.Context, req Request) (*Result, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	maxTurns := req.MaxTurns
	if maxTurns <= 0 {
		maxTurns = defaultMaxTurns
	}

	messages := []llm.Message{
		{Role: "system", Content: req.SystemPrompt},
		{Role: "user", Content: req.UserPrompt},
	}
	var tools []llm.ToolSpec
	var runner *toolRunner
	if req.EnableTools {
		tools = builtinToolSpecs(req.AllowedTools)
		runner = newToolRunner(req.Workdir, req.AllowedTools)
	}

	result := &Result{}
	for turn := 1; turn <= maxTurns; turn++ {
		result.Turns = turn
		emit(ctx, req.Events, ExecEvent{Kind: EventTurnStart, Turn: turn})

		text, calls, usage, err := e.runTurn(ctx, req, messages, tools, turn)
		result.TotalTokens += usage.TotalTokens
		result.Text += text
		if err != nil {
			return nil, turnError(err, result)
		}

		emit(ctx, req.Events, ExecEvent{Kind: EventTurnEnd, Turn: turn})

		if len(calls) == 0 || runner == nil {
			return result, nil
		}

		messages = append(messages, llm.Message{Role: "assistant", Content: text, ToolCalls: calls})
		for _, call := range calls {
			record, feedback := e.runTool(ctx, runner, req, turn, call)
			result.ToolCalls = append(result.ToolCalls, record)
			messages = append(messages, llm.Message{
				Role:       "tool",
				Content:    feedback,
				ToolCallID: call.ID,
				ToolName:   call.Name,
			})
			if ctx.Err() != nil {
				return nil, turnError(ctx.Err(), result)
			}
		}
	}

	// The model was still calling tools at the turn budget; return
	// what we have rather than failing the stage.
	return result, nil
}

// runTurn streams one generation, forwarding text deltas and
// collecting tool calls.
func (e *InProcess) runTurn(ctx context.Context, req Request, messages []llm.Message, tools []llm.ToolSpec, turn int) (string, []llm.ToolCall, llm.Usage, error) {
	stream, err := e.client.Generate(ctx, llm.Request{
		TaskID:        req.TaskID,
		CorrelationID: req.CorrelationID,
		Messages:      messages,
		Tools:         tools,
		Model:         req.Model,
		Temperature:   req.Temperature,
		MaxTokens:     req.MaxTokens,
	})
	if err != nil {
		return "", nil, llm.Usage{}, err
	}

	var text string
	var calls []llm.ToolCall
	var usage llm.Usage
	for {
		select {
		case <-ctx.Done():
			return text, calls, usage, ctx.Err()
		case chunk, ok := <-stream:
			if !ok {
				return text, calls, usage, nil
			}
			switch c := chunk.(type) {
			case llm.TextChunk:
				text += c.Content
				emit(ctx, req.Events, ExecEvent{Kind: EventStreamDelta, Turn: turn, Delta: c.Content})
			case llm.ToolCallChunk:
				call := c.Call
				if call.ID == "" {
					call.ID = uuid.New().String()
				}
				calls = append(calls, call)
			case llm.UsageChunk:
				usage = c.Usage
			case llm.ErrorChunk:
				return text, calls, usage, &llm.StreamError{Message: c.Message, Retryable: c.Retryable}
			}
		}
	}
}

// runTool executes one builtin call, emitting before/after events.
// Invalid calls (unknown tool, bad JSON) are fed back to the model as
// errors rather than failing the stage; the model gets a chance to
// correct itself within the turn budget.
func (e *InProcess) runTool(ctx context.Context, runner *toolRunner, req Request, turn int, call llm.ToolCall) (ToolCall, string) {
	record := ToolCall{ID: call.ID, Name: call.Name, Args: call.Arguments}
	emit(ctx, req.Events, ExecEvent{Kind: EventBeforeTool, Turn: turn, Tool: &record})

	start := time.Now()
	out, err := runner.run(ctx, call)
	record.DurationMS = time.Since(start).Milliseconds()

	feedback := out
	if err != nil {
		record.Status = ToolCallFailed
		record.ResultPreview = preview(err.Error())
		feedback = fmt.Sprintf("tool error: %v", err)
	} else {
		record.Status = ToolCallSuccess
		record.ResultPreview = preview(out)
	}

	emit(ctx, req.Events, ExecEvent{Kind: EventAfterTool, Turn: turn, Tool: &record})
	return record, feedback
}

// turnError wraps a turn failure into the classified executor error,
// preserving partial output and token usage.
func turnError(err error, partial *Result) *Error {
	category := Classify(err)
	if errors.Is(err, context.DeadlineExceeded) {
		category = models.FailureTransient
	}
	return NewError(category, err.Error(), partial, err)
}
