package api

import (
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// handleWS upgrades GET /api/v1/ws to a WebSocket and hands the
// connection to the event manager, which owns it until the client
// disconnects.
func (s *Server) handleWS(c *gin.Context) {
	if s.ws == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event streaming is not enabled"})
		return
	}

	opts := &websocket.AcceptOptions{
		OriginPatterns: s.cfg.AllowedWSOrigins,
	}
	if len(s.cfg.AllowedWSOrigins) == 0 {
		opts.InsecureSkipVerify = true
	}

	conn, err := websocket.Accept(c.Writer, c.Request, opts)
	if err != nil {
		slog.Warn("WebSocket upgrade failed", "remote", c.Request.RemoteAddr, "error", err)
		return
	}

	s.ws.HandleConnection(c.Request.Context(), conn)
}
