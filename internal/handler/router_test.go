//go:build unit

package handler_test

import (
	"net/http"
	"testing"

	"rental-front/internal/handler"
	"rental-front/internal/handler/middleware"
	"rental-front/internal/pkg/config"
	"rental-front/internal/pkg/jwt"
	"rental-front/tests/common/httptest"
	sharedmock "rental-front/tests/mock/shared"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RouterTestSuite struct {
	suite.Suite
	engine       *gin.Engine
	mockCtrl     *gomock.Controller
	mockSessions *sharedmock.MockSessionStore
	cfg          config.Config
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.engine = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessions = sharedmock.NewMockSessionStore(s.mockCtrl)
	s.cfg = config.NewTestConfig()

	logger := middleware.NewLogger(s.cfg.Log)
	tokens := jwt.NewService(s.cfg.Session.Secret, s.cfg.Session.DurableTTL)
	visitor := middleware.NewVisitorMiddleware(tokens, s.cfg)
	auth := middleware.NewAuthMiddleware(s.mockSessions)

	handler.NewRouter(s.engine, s.cfg, handler.Handlers{}, logger, visitor, auth)
}

func (s *RouterTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) TestHealthCheck() {
	rec := httptest.PerformRequest(s.T(), s.engine, http.MethodGet, "/health", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ok")
	// The full middleware chain ran: a visitor identity was minted.
	s.NotNil(httptest.ExtractCookie(rec, s.cfg.Session.CookieName))
}

func (s *RouterTestSuite) TestUnknownRoute() {
	rec := httptest.PerformRequest(s.T(), s.engine, http.MethodGet, "/api/nope", nil)

	s.Equal(http.StatusNotFound, rec.Code)
}
