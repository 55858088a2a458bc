package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stewardhq/steward/pkg/models"
)

// createProject handles POST /api/v1/projects.
func (s *Server) createProject(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	project, err := s.projects.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	slog.Info("Project created", "project_id", project.ID, "name", project.Name)
	c.JSON(http.StatusCreated, project)
}

// listProjects handles GET /api/v1/projects.
func (s *Server) listProjects(c *gin.Context) {
	projects, err := s.projects.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// getProject handles GET /api/v1/projects/:id.
func (s *Server) getProject(c *gin.Context) {
	project, err := s.projects.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}
