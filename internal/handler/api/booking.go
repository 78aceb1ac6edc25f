package api

import (
	"errors"
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

type BookingHandler struct {
	bookingQueries  queries.BookingQueries
	bookingCommands commands.BookingCommands
}

func NewBookingHandler(bookingQueries queries.BookingQueries, bookingCommands commands.BookingCommands) *BookingHandler {
	return &BookingHandler{
		bookingQueries:  bookingQueries,
		bookingCommands: bookingCommands,
	}
}

// @Summary Booking summary
// @Description Assemble the confirmation summary; 401 carries the login redirect when unauthenticated
// @Tags booking
// @Produce json
// @Param carId query int false "Car ID"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} resdto.BookingSummaryResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booking/summary [get]
func (h *BookingHandler) Summary(c *gin.Context) {
	visitorID, ok := middleware.GetVisitorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrStateFailed, msgGenericFailure, nil)
		return
	}

	var q reqdto.PrepareQuery
	if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, msgGenericFailure, nil)
		return
	}

	view, err := h.bookingQueries.Prepare(c.Request.Context(), visitorID, q.ToParams())
	if err != nil {
		var authErr *queries.AuthRequiredError
		if errors.As(err, &authErr) {
			httperr.AbortWithRedirect(c, http.StatusUnauthorized, err, msgLoginRequired, authErr.RedirectTo)
			return
		}
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingSummary(view))
}

// @Summary Confirm booking
// @Description Submit the booking; duplicate submissions of the same request reach upstream once
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.ConfirmBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingConfirmationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /booking [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	visitorID, ok := middleware.GetVisitorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrStateFailed, msgGenericFailure, nil)
		return
	}

	var req reqdto.ConfirmBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, msgGenericFailure, nil)
		return
	}

	conf, err := h.bookingCommands.Confirm(c.Request.Context(), visitorID, req.ToParams())
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromConfirmation(conf))
}
