package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stewardhq/steward/pkg/models"
)

// listGates handles GET /api/v1/gates.
func (s *Server) listGates(c *gin.Context) {
	filters := models.GateFilters{
		TaskID:   c.Query("task_id"),
		Status:   c.Query("status"),
		GateType: c.Query("gate_type"),
		Limit:    queryInt(c, "limit", 50),
		Offset:   queryInt(c, "offset", 0),
	}
	gates, total, err := s.gates.List(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"gates":       gates,
		"total_count": total,
		"limit":       filters.Limit,
		"offset":      filters.Offset,
	})
}

// getGate handles GET /api/v1/gates/:id.
func (s *Server) getGate(c *gin.Context) {
	g, err := s.gates.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// resolveGateRequest is the body of POST /gates/:id/resolve.
type resolveGateRequest struct {
	Decision       string `json:"decision" binding:"required"` // approve, reject or revise
	Comment        string `json:"comment,omitempty"`
	RevisedContent string `json:"revised_content,omitempty"`
}

// resolveGate handles POST /api/v1/gates/:id/resolve. The waiting
// engine picks the verdict up on its next poll.
func (s *Server) resolveGate(c *gin.Context) {
	var req resolveGateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	status, ok := decisionStatus(req.Decision)
	if !ok {
		badRequest(c, "decision must be approve, reject or revise")
		return
	}
	if status == models.GateStatusRevised && req.RevisedContent == "" {
		badRequest(c, "revised_content is required for a revise decision")
		return
	}
	if status == models.GateStatusRejected && req.Comment == "" {
		badRequest(c, "comment is required for a reject decision")
		return
	}

	g, err := s.gates.Resolve(c.Request.Context(), c.Param("id"), models.ResolveGateRequest{
		Status:         status,
		Reviewer:       reviewer(c),
		Comment:        req.Comment,
		RevisedContent: req.RevisedContent,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	slog.Info("Gate resolved",
		"gate_id", g.ID, "task_id", g.TaskID, "stage", g.StageName,
		"decision", req.Decision, "reviewer", g.Reviewer)
	c.JSON(http.StatusOK, g)
}
