package workspace

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/config"
)

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		url         string
		owner, repo string
		wantErr     bool
	}{
		{url: "https://github.com/acme/api.git", owner: "acme", repo: "api"},
		{url: "https://github.com/acme/api", owner: "acme", repo: "api"},
		{url: "git@github.com:acme/api.git", owner: "acme", repo: "api"},
		{url: "https://ghe.corp.example/org/team/repo", owner: "team", repo: "repo"},
		{url: "not-a-repo", wantErr: true},
		{url: "https://github.com/", wantErr: true},
	}
	for _, tt := range tests {
		owner, repo, err := parseRepoURL(tt.url)
		if tt.wantErr {
			assert.Error(t, err, "url=%q", tt.url)
			continue
		}
		require.NoError(t, err, "url=%q", tt.url)
		assert.Equal(t, tt.owner, owner)
		assert.Equal(t, tt.repo, repo)
	}
}

func TestCreatePR(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"html_url": "https://github.com/acme/api/pull/7",
		})
	}))
	defer srv.Close()

	g := NewGitHub(config.GitHubConfig{Token: "ghp_test", APIBaseURL: srv.URL})
	url, err := g.CreatePR(context.Background(),
		"https://github.com/acme/api.git", "task/a1b2c3d4-x", "main", "Add metrics", "Adds metrics.")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/api/pull/7", url)
	assert.Equal(t, "/repos/acme/api/pulls", gotPath)
	assert.Equal(t, "Bearer ghp_test", gotAuth)
	assert.Equal(t, "task/a1b2c3d4-x", gotBody["head"])
	assert.Equal(t, "main", gotBody["base"])
}

func TestCreatePRErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"Validation Failed"}`, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	g := NewGitHub(config.GitHubConfig{Token: "ghp_test", APIBaseURL: srv.URL})
	_, err := g.CreatePR(context.Background(),
		"https://github.com/acme/api", "task/x", "main", "t", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}
