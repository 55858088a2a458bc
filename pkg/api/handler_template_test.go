package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/models"
)

func TestCreateTemplate(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})

	w := f.do(t, http.MethodPost, "/api/v1/templates", map[string]any{
		"name": "bugfix",
		"stages": []map[string]any{
			{"name": "analyze", "agent_role": "analyst", "order": 1},
			{"name": "implement", "agent_role": "coder", "order": 2},
		},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "bugfix", body["name"])
	assert.Equal(t, float64(1), body["version"])
}

func TestCreateTemplateNewVersion(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})
	f.templates.templates["tmpl-0"] = &models.Template{ID: "tmpl-0", Name: "bugfix", Version: 1}

	w := f.do(t, http.MethodPost, "/api/v1/templates", map[string]any{
		"name":   "bugfix",
		"stages": []map[string]any{{"name": "analyze", "agent_role": "analyst", "order": 1}},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(2), decodeBody(t, w)["version"])
}

func TestCreateTemplateRejectsCyclicGraph(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})

	w := f.do(t, http.MethodPost, "/api/v1/templates", map[string]any{
		"name": "looped",
		"stages": []map[string]any{
			{"name": "a", "agent_role": "analyst", "depends_on": []string{"b"}},
			{"name": "b", "agent_role": "coder", "depends_on": []string{"a"}},
		},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w)["error"], "invalid stage graph")
}

func TestListTemplateVersions(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})
	f.templates.templates["tmpl-1"] = &models.Template{ID: "tmpl-1", Name: "bugfix", Version: 1}
	f.templates.templates["tmpl-2"] = &models.Template{ID: "tmpl-2", Name: "bugfix", Version: 2}

	w := f.do(t, http.MethodGet, "/api/v1/templates/name/bugfix/versions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["versions"], 2)

	w = f.do(t, http.MethodGet, "/api/v1/templates/name/unknown/versions", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateProject(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})

	w := f.do(t, http.MethodPost, "/api/v1/projects", map[string]any{
		"name":     "billing-service",
		"repo_url": "https://github.com/acme/billing-service.git",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// A second project with the same name conflicts.
	w = f.do(t, http.MethodPost, "/api/v1/projects", map[string]any{"name": "billing-service"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetProjectNotFound(t *testing.T) {
	f := newAPIFixture(config.ServerConfig{})

	w := f.do(t, http.MethodGet, "/api/v1/projects/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
