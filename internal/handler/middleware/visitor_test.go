//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"rental-front/internal/handler/middleware"
	"rental-front/internal/pkg/config"
	"rental-front/internal/pkg/jwt"
	"rental-front/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type VisitorMiddlewareTestSuite struct {
	suite.Suite
	router *gin.Engine
	tokens *jwt.Service
	cfg    config.Config
	seen   uuid.UUID
}

func (s *VisitorMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.cfg = config.NewTestConfig()
	s.tokens = jwt.NewService(s.cfg.Session.Secret, s.cfg.Session.DurableTTL)
	s.seen = uuid.Nil

	visitor := middleware.NewVisitorMiddleware(s.tokens, s.cfg)
	s.router = gin.New()
	s.router.Use(visitor.Identify())
	s.router.GET("/whoami", func(c *gin.Context) {
		id, ok := middleware.GetVisitorID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		s.seen = id
		c.Status(http.StatusOK)
	})
}

func TestVisitorMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(VisitorMiddlewareTestSuite))
}

func (s *VisitorMiddlewareTestSuite) TestIdentify() {
	s.Run("first request mints an identity cookie", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/whoami", nil)

		s.Equal(http.StatusOK, w.Code)
		s.NotEqual(uuid.Nil, s.seen)

		minted := httptest.ExtractCookie(w, s.cfg.Session.CookieName)
		s.Require().NotNil(minted)
		s.True(minted.HttpOnly)
		// Session cookie: dies with the browser until the visitor opts in.
		s.Equal(0, minted.MaxAge)

		parsed, err := s.tokens.Parse(minted.Value)
		s.Require().NoError(err)
		s.Equal(s.seen, parsed)
	})

	s.Run("valid cookie is reused without re-minting", func() {
		visitorID := uuid.New()
		token, err := s.tokens.Issue(visitorID)
		s.Require().NoError(err)

		w := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/whoami", nil,
			[]*http.Cookie{{Name: s.cfg.Session.CookieName, Value: token}})

		s.Equal(http.StatusOK, w.Code)
		s.Equal(visitorID, s.seen)
		s.Nil(httptest.ExtractCookie(w, s.cfg.Session.CookieName))
	})

	s.Run("tampered cookie gets a fresh identity", func() {
		forged := jwt.NewService("other-secret", s.cfg.Session.DurableTTL)
		stolenID := uuid.New()
		token, err := forged.Issue(stolenID)
		s.Require().NoError(err)

		w := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/whoami", nil,
			[]*http.Cookie{{Name: s.cfg.Session.CookieName, Value: token}})

		s.Equal(http.StatusOK, w.Code)
		s.NotEqual(stolenID, s.seen)
		s.NotNil(httptest.ExtractCookie(w, s.cfg.Session.CookieName))
	})

	s.Run("garbage cookie gets a fresh identity", func() {
		w := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/whoami", nil,
			[]*http.Cookie{{Name: s.cfg.Session.CookieName, Value: "not-a-token"}})

		s.Equal(http.StatusOK, w.Code)
		s.NotEqual(uuid.Nil, s.seen)
		s.NotNil(httptest.ExtractCookie(w, s.cfg.Session.CookieName))
	})
}
