package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"eventboard-backend/pkg/translator"
)

// quietRoutes are scraped by infrastructure and only logged at debug level.
var quietRoutes = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// GinZapMiddleware writes one access log line per request. Lines are keyed by
// route template plus the event and task ids, so a board's history can be
// followed across endpoints.
func GinZapMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.String("path", c.Request.URL.Path),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		}
		if userID := GetUserID(c); userID != "" {
			fields = append(fields, zap.String("user_id", userID))
		}
		if eventID := eventIDParam(c); eventID != "" {
			fields = append(fields, zap.String("event_id", eventID))
		}
		if taskID := c.Param("taskId"); taskID != "" {
			fields = append(fields, zap.String("task_id", taskID))
		}
		if lang := GetLang(c); lang != translator.LanguageEn {
			fields = append(fields, zap.String("lang", lang))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		logger.Check(accessLevel(route, status), "http request").Write(fields...)
	}
}

// eventIDParam reads the event id from either route family: /event/:id and /chat/:eventId.
func eventIDParam(c *gin.Context) string {
	if id := c.Param("eventId"); id != "" {
		return id
	}
	return c.Param("id")
}

func accessLevel(route string, status int) zapcore.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zapcore.ErrorLevel
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return zapcore.WarnLevel
	case quietRoutes[route]:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}
