package workspace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/stewardhq/steward/pkg/config"
)

const defaultGitHubAPI = "https://api.github.com"

// GitHub opens pull requests through the REST API.
type GitHub struct {
	token   string
	baseURL string
	client  *http.Client
}

// NewGitHub creates the PR client. The zero token disables it; callers
// check Enabled before use.
func NewGitHub(cfg config.GitHubConfig) *GitHub {
	base := strings.TrimSuffix(cfg.APIBaseURL, "/")
	if base == "" {
		base = defaultGitHubAPI
	}
	return &GitHub{
		token:   cfg.Token,
		baseURL: base,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Enabled reports whether a token is configured.
func (g *GitHub) Enabled() bool { return g.token != "" }

// CreatePR opens a pull request for the pushed branch and returns its
// HTML URL.
func (g *GitHub) CreatePR(ctx context.Context, repoURL, head, base, title, body string) (string, error) {
	owner, repo, err := parseRepoURL(repoURL)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(map[string]string{
		"title": title,
		"body":  body,
		"head":  head,
		"base":  base,
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/repos/%s/%s/pulls", g.baseURL, owner, repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+g.token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("creating pull request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("creating pull request: status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var out struct {
		HTMLURL string `json:"html_url"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("decoding pull request response: %w", err)
	}
	return out.HTMLURL, nil
}

// parseRepoURL extracts owner and repo from https and ssh remote URLs.
func parseRepoURL(repoURL string) (owner, repo string, err error) {
	s := strings.TrimSuffix(strings.TrimSpace(repoURL), ".git")
	if rest, ok := strings.CutPrefix(s, "git@"); ok {
		// git@github.com:owner/repo
		if _, path, ok := strings.Cut(rest, ":"); ok {
			s = path
		} else {
			return "", "", fmt.Errorf("unrecognized repo url %q", repoURL)
		}
	} else if i := strings.Index(s, "://"); i >= 0 {
		// https://github.com/owner/repo
		rest := s[i+3:]
		if _, path, ok := strings.Cut(rest, "/"); ok {
			s = path
		} else {
			return "", "", fmt.Errorf("unrecognized repo url %q", repoURL)
		}
	}
	parts := strings.Split(strings.Trim(s, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("unrecognized repo url %q", repoURL)
	}
	return parts[len(parts)-2], parts[len(parts)-1], nil
}
