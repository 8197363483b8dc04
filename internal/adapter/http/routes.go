package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventboard-backend/internal/adapter/http/handlers"
	"eventboard-backend/internal/adapter/http/middleware"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Events   *handlers.EventHandler
	Tasks    *handlers.TaskHandler
	Chat     *handlers.ChatHandler
	Health   *handlers.HealthHandler
	Realtime *handlers.RealtimeHandler
	// Metrics serves /metrics when set.
	Metrics http.Handler
}

func RegisterRoutes(r *gin.Engine, gate middleware.Authenticator, h Handlers) {
	r.Use(middleware.LanguageMiddleware())
	r.NoRoute(handlers.RouteNotFound)

	requireAuth := middleware.RequireAuth(gate)

	r.GET("/health", h.Health.CheckHealth)
	if h.Metrics != nil {
		r.GET("/metrics", gin.WrapH(h.Metrics))
	}
	r.GET("/ws", middleware.RequireAuth(gate, middleware.AllowQueryToken()), h.Realtime.Connect)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", h.Auth.Signup)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.GET("/verify", requireAuth, h.Auth.Verify)
		authGroup.POST("/reset-password", h.Auth.ResetPassword)
	}

	event := r.Group("/event")
	event.Use(requireAuth)
	{
		event.POST("/create", h.Events.CreateEvent)
		event.POST("/join", h.Events.JoinEvent)
		event.GET("/user-events", h.Events.UserEvents)
		event.GET("/:id", h.Events.GetEvent)
		event.DELETE("/:id", h.Events.DeleteEvent)
		event.POST("/:id/finish", h.Events.FinishEvent)
		event.POST("/:id/tasks", h.Tasks.CreateTask)
		event.PATCH("/:id/tasks/:taskId/status", h.Tasks.UpdateTaskStatus)
		event.DELETE("/:id/tasks/:taskId", h.Tasks.DeleteTask)
	}

	chat := r.Group("/chat")
	chat.Use(requireAuth)
	{
		chat.GET("/:eventId", h.Chat.ListMessages)
		chat.POST("/:eventId", h.Chat.PostMessage)
	}
}
