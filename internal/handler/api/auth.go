package api

import (
	"log/slog"
	"net/http"

	reqdto "rental-front/internal/handler/dto/request"
	resdto "rental-front/internal/handler/dto/response"
	"rental-front/internal/handler/httperr"
	"rental-front/internal/handler/middleware"
	"rental-front/internal/pkg/config"
	"rental-front/internal/pkg/cookie"
	"rental-front/internal/pkg/errs"
	"rental-front/internal/pkg/jwt"
	"rental-front/internal/usecase/commands"
	"rental-front/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	sessions     shared.SessionStore
	tokens       *jwt.Service
	cfg          config.SessionConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, sessions shared.SessionStore, tokens *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		sessions:     sessions,
		tokens:       tokens,
		cfg:          cfg.Session,
	}
}

// @Summary Login
// @Description Authenticate against the rental API and store the credential per visitor
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Credentials"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	visitorID, ok := middleware.GetVisitorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrStateFailed, msgGenericFailure, nil)
		return
	}

	var req reqdto.LoginRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, msgBadCredentials, nil)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), visitorID, req.ToParams())
	if err != nil {
		handleLoginError(c, err)
		return
	}

	// A remembered login must outlive the browsing session, so the visitor
	// cookie is re-issued with the durable lifetime. Failure here only
	// shortens persistence; the login itself stands.
	if req.Remember {
		if fresh, issueErr := h.tokens.Issue(visitorID); issueErr != nil {
			slog.Warn("failed to extend visitor cookie", "error", issueErr.Error())
		} else {
			cookie.SetVisitorCookie(c, h.cfg, fresh, int(h.cfg.DurableTTL.Seconds()))
		}
	}

	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Logout
// @Description Clear the visitor's session and all session-scoped state
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	visitorID, ok := middleware.GetVisitorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrStateFailed, msgGenericFailure, nil)
		return
	}

	if err := h.authCommands.Logout(c.Request.Context(), visitorID); err != nil {
		handleDomainError(c, err)
		return
	}

	// Dropping the cookie rotates the visitor identity on the next request.
	cookie.ClearVisitorCookie(c, h.cfg)

	c.JSON(http.StatusOK, gin.H{"redirectTo": commands.LoginEntryPoint})
}

// @Summary Session state
// @Description Report whether the visitor is logged in; never exposes the upstream token
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Router /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	visitorID, ok := middleware.GetVisitorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrStateFailed, msgGenericFailure, nil)
		return
	}

	sess, err := h.sessions.Current(c.Request.Context(), visitorID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSession(sess))
}
