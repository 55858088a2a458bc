package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// health handles GET /health: process liveness plus a database ping.
func (s *Server) health(c *gin.Context) {
	if s.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  "database unreachable",
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// ready handles GET /ready with a snapshot of the moving parts.
func (s *Server) ready(c *gin.Context) {
	resp := gin.H{"status": "ready"}
	if s.pool != nil {
		resp["active_tasks"] = s.pool.ActiveCount()
	}
	if s.ws != nil {
		resp["ws_connections"] = s.ws.ActiveConnections()
	}
	if s.gates != nil {
		if pending, err := s.gates.CountPending(c.Request.Context()); err == nil {
			resp["pending_gates"] = pending
		}
	}
	c.JSON(http.StatusOK, resp)
}
