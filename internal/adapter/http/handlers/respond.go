package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eventboard-backend/internal/adapter/http/middleware"
	"eventboard-backend/internal/core/domain"
	"eventboard-backend/pkg/apierrors"
	"eventboard-backend/pkg/translator"
)

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindUnauthenticated:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindInvalid:
		return http.StatusBadRequest
	case domain.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the failure envelope for err. Unclassified and internal
// errors are logged and hidden behind a generic message.
func respondError(c *gin.Context, err error, fields ...zap.Field) {
	lang := middleware.GetLang(c)

	de, ok := domain.AsError(err)
	if !ok || de.Kind == domain.KindInternal {
		_ = c.Error(err)
		zap.L().Error("request failed", append(fields, zap.String("path", c.FullPath()), zap.Error(err))...)
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, apierrors.FallbackInternalError, lang),
		)
		return
	}

	status := StatusFor(de.Kind)
	c.JSON(status, apierrors.CreateError(status, de.Key, de.Msg, lang))
}

func respondInvalidPayload(c *gin.Context) {
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, apierrors.FallbackInvalidPayload, middleware.GetLang(c)),
	)
}

// RouteNotFound answers unmatched routes with the standard envelope.
func RouteNotFound(c *gin.Context) {
	c.JSON(
		http.StatusNotFound,
		apierrors.CreateError(http.StatusNotFound, apierrors.MsgRouteNotFound, apierrors.FallbackRouteNotFound, middleware.GetLang(c)),
	)
}

func successMsg(c *gin.Context, key, fallback string) string {
	return translator.Localize(middleware.GetLang(c), key, fallback)
}
