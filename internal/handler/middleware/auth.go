package middleware

import (
	"log/slog"
	"net/http"

	"rental-front/internal/domain/session"
	"rental-front/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const ctxAuthSessionKey = "auth_session"

type AuthMiddleware struct {
	sessions shared.SessionStore
}

func NewAuthMiddleware(sessions shared.SessionStore) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
	}
}

// RequireSession rejects requests from visitors with no stored credential.
// The durable tier is probed before the ephemeral one inside the store, so
// "remembered" logins survive even after the browsing session expired.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		visitorID, ok := GetVisitorID(c)
		if !ok {
			// Unexpected error: should be used after VisitorMiddleware
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{"message": fallbackMessage},
			})
			c.Abort()
			return
		}

		sess, err := m.sessions.Current(c.Request.Context(), visitorID)
		if err != nil {
			slog.Warn("session lookup failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{"message": fallbackMessage},
			})
			c.Abort()
			return
		}
		if sess == nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Du måste vara inloggad."},
			})
			c.Abort()
			return
		}

		c.Set(ctxAuthSessionKey, sess)
		c.Next()
	}
}

func GetAuthSession(c *gin.Context) (*session.AuthSession, bool) {
	v, exists := c.Get(ctxAuthSessionKey)
	if !exists {
		return nil, false
	}

	sess, ok := v.(*session.AuthSession)
	return sess, ok
}
