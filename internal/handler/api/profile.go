package api

import (
	"net/http"

	reqdto "rental-front/internal/handler/dto/request"
	resdto "rental-front/internal/handler/dto/response"
	"rental-front/internal/handler/httperr"
	"rental-front/internal/handler/middleware"
	"rental-front/internal/pkg/errs"
	"rental-front/internal/usecase/commands"
	"rental-front/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileQueries queries.ProfileQueries
	authCommands   commands.AuthCommands
}

func NewProfileHandler(profileQueries queries.ProfileQueries, authCommands commands.AuthCommands) *ProfileHandler {
	return &ProfileHandler{
		profileQueries: profileQueries,
		authCommands:   authCommands,
	}
}

// @Summary Get profile
// @Description Fetch the logged-in customer's profile
// @Tags profile
// @Produce json
// @Success 200 {object} resdto.CustomerResponse
// @Failure 401 {object} httperr.Response
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	sess, ok := middleware.GetAuthSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrStateFailed, msgGenericFailure, nil)
		return
	}

	profile, err := h.profileQueries.Profile(c.Request.Context(), *sess)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCustomer(*profile))
}

// @Summary Update profile
// @Description Update the editable profile fields; the account email never changes
// @Tags profile
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	visitorID, ok := middleware.GetVisitorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrStateFailed, msgGenericFailure, nil)
		return
	}

	var req reqdto.UpdateProfileRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, msgGenericFailure, nil)
		return
	}

	updated, err := h.authCommands.UpdateProfile(c.Request.Context(), visitorID, req.ToDomain())
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCustomer(*updated))
}
