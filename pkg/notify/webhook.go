// Package notify posts terminal task outcomes to an operator-configured
// webhook. Delivery is best-effort: a failed POST is logged, never
// retried, and never affects the task.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/models"
)

// Payload is the webhook POST body.
type Payload struct {
	TaskID      string            `json:"task_id"`
	Title       string            `json:"title"`
	Status      models.TaskStatus `json:"status"`
	Error       string            `json:"error,omitempty"`
	TotalTokens int               `json:"total_tokens"`
	TotalCost   float64           `json:"total_cost"`
	PRURL       string            `json:"pr_url,omitempty"`
	BranchName  string            `json:"branch_name,omitempty"`
	CompletedAt string            `json:"completed_at,omitempty"`
}

// Notifier delivers terminal payloads. The zero URL disables it.
type Notifier struct {
	url    string
	client *http.Client
}

// New creates the webhook notifier from config.
func New(cfg config.NotifyConfig) *Notifier {
	timeout := cfg.Timeout()
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Notifier{
		url:    cfg.WebhookURL,
		client: &http.Client{Timeout: timeout},
	}
}

// Enabled reports whether a webhook URL is configured.
func (n *Notifier) Enabled() bool { return n.url != "" }

// TaskFinished posts the terminal payload for one task. Failures are
// swallowed after a warning.
func (n *Notifier) TaskFinished(ctx context.Context, task *models.Task) {
	if !n.Enabled() {
		return
	}

	payload := Payload{
		TaskID:      task.ID,
		Title:       task.Title,
		Status:      task.Status,
		Error:       task.Error,
		TotalTokens: task.TotalTokens,
		TotalCost:   task.TotalCost,
		PRURL:       task.PRURL,
		BranchName:  task.BranchName,
	}
	if task.CompletedAt != nil {
		payload.CompletedAt = task.CompletedAt.UTC().Format(time.RFC3339)
	}

	if err := n.post(ctx, payload); err != nil {
		slog.Warn("Task webhook delivery failed",
			"task_id", task.ID, "url", n.url, "error", err)
	}
}

func (n *Notifier) post(ctx context.Context, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned %d", resp.StatusCode)
	}
	return nil
}
