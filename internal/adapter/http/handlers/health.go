package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"eventboard-backend/internal/adapter/db"
)

const (
	StatusOk        = "ok"
	StatusDown      = "down"
	healthDBTimeout = 2 * time.Second
)

type HealthResponse struct {
	Success  bool   `json:"success"`
	Status   string `json:"status"`
	Database string `json:"database"`
	Time     string `json:"time"`
}

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	resp := HealthResponse{
		Success:  true,
		Status:   StatusOk,
		Database: StatusOk,
		Time:     time.Now().UTC().Format(time.RFC3339),
	}
	statusCode := http.StatusOK

	if !h.checkConnectionToDatabase(c.Request.Context()) {
		resp.Success = false
		resp.Status = StatusDown
		resp.Database = StatusDown
		statusCode = http.StatusInternalServerError
	}

	c.JSON(statusCode, resp)
}

func (h *HealthHandler) checkConnectionToDatabase(ctx context.Context) bool {
	if h.db == nil {
		return false
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, healthDBTimeout)
	defer cancel()
	return db.Ping(timeoutCtx, h.db) == nil
}
