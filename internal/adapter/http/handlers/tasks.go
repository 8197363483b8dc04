package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eventboard-backend/internal/adapter/http/dto"
	"eventboard-backend/internal/adapter/http/mapper"
	"eventboard-backend/internal/adapter/http/middleware"
	"eventboard-backend/internal/core/domain"
	"eventboard-backend/internal/core/ports"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	eventID := c.Param("id")
	tasks, err := h.taskService.CreateTask(c.Request.Context(), eventID, middleware.GetUserID(c), domain.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		respondError(c, err, zap.String("event_id", eventID))
		return
	}

	c.JSON(http.StatusOK, dto.TasksResponse{
		Success: true,
		Message: successMsg(c, "taskAdded", "Task added"),
		Tasks:   mapper.ToTaskItems(tasks),
	})
}

func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrInvalidStatus)
		return
	}

	eventID, taskID := c.Param("id"), c.Param("taskId")
	tasks, err := h.taskService.UpdateTaskStatus(c.Request.Context(), eventID, taskID, middleware.GetUserID(c), req.Status)
	if err != nil {
		respondError(c, err, zap.String("event_id", eventID), zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, dto.TasksResponse{
		Success: true,
		Message: successMsg(c, "statusUpdated", "Status updated"),
		Tasks:   mapper.ToTaskItems(tasks),
	})
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	eventID, taskID := c.Param("id"), c.Param("taskId")
	tasks, err := h.taskService.DeleteTask(c.Request.Context(), eventID, taskID, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err, zap.String("event_id", eventID), zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, dto.TasksResponse{
		Success: true,
		Message: successMsg(c, "taskDeleted", "Task deleted successfully"),
		Tasks:   mapper.ToTaskItems(tasks),
	})
}
