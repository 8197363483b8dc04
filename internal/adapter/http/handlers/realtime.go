package handlers

import (
	"github.com/gin-gonic/gin"

	"eventboard-backend/internal/adapter/http/middleware"
	"eventboard-backend/internal/realtime"
)

type RealtimeHandler struct {
	hub *realtime.Hub
}

func NewRealtimeHandler(hub *realtime.Hub) *RealtimeHandler {
	return &RealtimeHandler{hub: hub}
}

// Connect upgrades an authenticated request to a websocket.
func (h *RealtimeHandler) Connect(c *gin.Context) {
	h.hub.ServeWS(c.Writer, c.Request, middleware.GetUserID(c))
}
