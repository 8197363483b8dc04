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

type EventHandler struct {
	eventService ports.EventService
}

func NewEventHandler(eventService ports.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	ev, err := h.eventService.CreateEvent(c.Request.Context(), middleware.GetUserID(c), req.EventName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreateEventResponse{
		Success:   true,
		Message:   successMsg(c, "eventCreated", "Event created successfully"),
		EventCode: ev.Code,
		Event:     mapper.ToEventItem(*ev),
	})
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	eventID := c.Param("id")
	if err := h.eventService.DeleteEvent(c.Request.Context(), eventID, middleware.GetUserID(c)); err != nil {
		respondError(c, err, zap.String("event_id", eventID))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Success: true,
		Message: successMsg(c, "eventDeleted", "Event deleted successfully"),
	})
}

func (h *EventHandler) JoinEvent(c *gin.Context) {
	var req dto.JoinEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	ev, added, err := h.eventService.JoinEvent(c.Request.Context(), req.EventCode, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	message := successMsg(c, "alreadyJoined", "Already joined")
	if added {
		message = successMsg(c, "joinedEvent", "Joined event")
	}
	c.JSON(http.StatusOK, dto.EventResponse{Success: true, Message: message, Event: mapper.ToEventItem(*ev)})
}

func (h *EventHandler) UserEvents(c *gin.Context) {
	organized, joined, err := h.eventService.ListForUser(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserEventsResponse{
		Success:         true,
		OrganizerEvents: mapper.ToEventItems(organized),
		MemberEvents:    mapper.ToEventItems(joined),
	})
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	eventID := c.Param("id")
	ev, err := h.eventService.GetEvent(c.Request.Context(), eventID, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err, zap.String("event_id", eventID))
		return
	}

	c.JSON(http.StatusOK, dto.EventResponse{Success: true, Event: mapper.ToEventItem(*ev)})
}

func (h *EventHandler) FinishEvent(c *gin.Context) {
	eventID := c.Param("id")
	if err := h.eventService.FinishEvent(c.Request.Context(), eventID, middleware.GetUserID(c)); err != nil {
		respondError(c, err, zap.String("event_id", eventID))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Success: true,
		Message: successMsg(c, "eventFinishedSuccess", "Event finished"),
	})
}
