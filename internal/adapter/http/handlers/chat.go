package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eventboard-backend/internal/adapter/http/dto"
	"eventboard-backend/internal/adapter/http/mapper"
	"eventboard-backend/internal/adapter/http/middleware"
	"eventboard-backend/internal/core/ports"
)

type ChatHandler struct {
	chatService ports.ChatService
}

func NewChatHandler(chatService ports.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) ListMessages(c *gin.Context) {
	eventID := c.Param("eventId")
	messages, err := h.chatService.ListMessages(c.Request.Context(), eventID, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err, zap.String("event_id", eventID))
		return
	}

	c.JSON(http.StatusOK, dto.MessagesResponse{Success: true, Messages: mapper.ToMessageItems(messages)})
}

func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req dto.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	eventID := c.Param("eventId")
	msg, err := h.chatService.PostMessage(c.Request.Context(), eventID, middleware.GetUserID(c), req.Text)
	if err != nil {
		respondError(c, err, zap.String("event_id", eventID))
		return
	}

	c.JSON(http.StatusOK, dto.PostMessageResponse{Success: true, Message: mapper.ToMessageItem(*msg)})
}
