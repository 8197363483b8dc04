package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"eventboard-backend/internal/core/domain"
	"eventboard-backend/pkg/apierrors"
)

const userIDKey = "user_id"

// Authenticator resolves a bearer token to a user id.
type Authenticator interface {
	Authenticate(token string) (string, error)
}

type authOptions struct {
	queryToken bool
}

type AuthOption func(*authOptions)

// AllowQueryToken also accepts ?token=, for websocket upgrades where browsers
// cannot set headers.
func AllowQueryToken() AuthOption {
	return func(o *authOptions) { o.queryToken = true }
}

// RequireAuth rejects the request with 401 unless it carries a valid token.
func RequireAuth(gate Authenticator, opts ...AuthOption) gin.HandlerFunc {
	var o authOptions
	for _, opt := range opts {
		opt(&o)
	}

	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" && o.queryToken {
			token = c.Query("token")
		}

		userID, err := gate.Authenticate(token)
		if err != nil {
			var de *domain.Error
			if !errors.As(err, &de) {
				de = domain.ErrInvalidToken
			}
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, de.Key, de.Msg, GetLang(c)),
			)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// GetUserID returns the id stored by RequireAuth, or "".
func GetUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
