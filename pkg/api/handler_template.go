package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stewardhq/steward/pkg/graph"
	"github.com/stewardhq/steward/pkg/models"
)

// createTemplate handles POST /api/v1/templates. A request with the
// name of an existing template creates a new version; templates are
// never mutated in place. Dependency-driven templates must form a
// valid graph before they are accepted.
func (s *Server) createTemplate(c *gin.Context) {
	var req models.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	if usesDependsOn(req.Stages) {
		if err := graph.Validate(req.Stages); err != nil {
			badRequest(c, "invalid stage graph: "+err.Error())
			return
		}
	}

	tmpl, err := s.templates.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	slog.Info("Template version created",
		"template_id", tmpl.ID, "name", tmpl.Name, "version", tmpl.Version)
	c.JSON(http.StatusCreated, tmpl)
}

// listTemplates handles GET /api/v1/templates, returning the latest
// version of each template name.
func (s *Server) listTemplates(c *gin.Context) {
	templates, err := s.templates.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// getTemplate handles GET /api/v1/templates/:id.
func (s *Server) getTemplate(c *gin.Context) {
	tmpl, err := s.templates.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tmpl)
}

// listTemplateVersions handles GET /api/v1/templates/name/:name/versions.
func (s *Server) listTemplateVersions(c *gin.Context) {
	versions, err := s.templates.ListVersions(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	if len(versions) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"versions": versions})
}

func usesDependsOn(defs []models.StageDef) bool {
	for i := range defs {
		if len(defs[i].DependsOn) > 0 {
			return true
		}
	}
	return false
}
