package middleware

import (
	"log/slog"

	"rental-front/internal/pkg/config"
	"rental-front/internal/pkg/cookie"
	"rental-front/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxVisitorIDKey = "visitor_id"

// VisitorMiddleware guarantees every request carries a visitor identity.
// The ID rides in a signed cookie; a missing or tampered cookie simply
// mints a fresh anonymous identity instead of failing the request.
type VisitorMiddleware struct {
	tokens *jwt.Service
	cfg    config.SessionConfig
}

func NewVisitorMiddleware(tokens *jwt.Service, cfg config.Config) *VisitorMiddleware {
	return &VisitorMiddleware{
		tokens: tokens,
		cfg:    cfg.Session,
	}
}

func (m *VisitorMiddleware) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetVisitorToken(c, m.cfg)

		if token != "" {
			visitorID, err := m.tokens.Parse(token)
			if err == nil {
				c.Set(ctxVisitorIDKey, visitorID.String())
				c.Next()
				return
			}
			slog.Debug("visitor cookie rejected", "error", err.Error())
		}

		visitorID := uuid.New()
		fresh, err := m.tokens.Issue(visitorID)
		if err != nil {
			// Without a signable identity no per-visitor state can work.
			slog.Error("failed to issue visitor token", "error", err.Error())
			c.AbortWithStatusJSON(500, gin.H{"error": gin.H{"message": fallbackMessage}})
			return
		}

		cookie.SetVisitorCookie(c, m.cfg, fresh, 0)
		c.Set(ctxVisitorIDKey, visitorID.String())
		c.Next()
	}
}

func GetVisitorID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetString(ctxVisitorIDKey)
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
