package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/ojt-tracker/internal/httperr"
	"github.com/BruksfildServices01/ojt-tracker/internal/session"
)

const (
	ContextUserID    = "userID"
	ContextSessionID = "sessionID"

	// SessionCookie carries the session token for browser clients.
	SessionCookie = "session"
)

// AuthMiddleware rejects the request with 401 unless it carries a token
// for a live session. The token is read from the Authorization header
// first and then from the session cookie.
func AuthMiddleware(sessions *session.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFrom(c)
		if token == "" {
			httperr.Unauthorized(c)
			return
		}

		id, err := sessions.Resolve(c.Request.Context(), token)
		if errors.Is(err, session.ErrNoSession) {
			httperr.Unauthorized(c)
			return
		}
		if err != nil {
			logger.Error("resolve session", zap.Error(err))
			httperr.Internal(c)
			return
		}

		c.Set(ContextUserID, id.UserID)
		c.Set(ContextSessionID, id.SessionID)

		c.Next()
	}
}

// TokenFrom returns the bearer token or session cookie of the request,
// or "" when neither is present.
func TokenFrom(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}

	if v, err := c.Cookie(SessionCookie); err == nil {
		return v
	}
	return ""
}
