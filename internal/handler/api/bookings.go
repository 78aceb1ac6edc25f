package api

import (
	"net/http"
	"strconv"

	resdto "rental-front/internal/handler/dto/response"
	"rental-front/internal/handler/httperr"
	"rental-front/internal/handler/middleware"
	"rental-front/internal/pkg/errs"
	"rental-front/internal/usecase/commands"
	"rental-front/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// BookingListHandler serves the logged-in customer's booking list. All
// routes sit behind RequireSession.
type BookingListHandler struct {
	listQueries     queries.BookingListQueries
	bookingCommands commands.BookingCommands
}

func NewBookingListHandler(listQueries queries.BookingListQueries, bookingCommands commands.BookingCommands) *BookingListHandler {
	return &BookingListHandler{
		listQueries:     listQueries,
		bookingCommands: bookingCommands,
	}
}

// @Summary My bookings
// @Description List the customer's bookings grouped by effective status
// @Tags bookings
// @Produce json
// @Success 200 {object} resdto.BookingsResponse
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingListHandler) MyBookings(c *gin.Context) {
	sess, ok := middleware.GetAuthSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrStateFailed, msgGenericFailure, nil)
		return
	}

	view, err := h.listQueries.MyBookings(c.Request.Context(), *sess)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingsView(view))
}

// @Summary Cancel booking
// @Description Cancel one of the customer's bookings
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 204
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/cancel [put]
func (h *BookingListHandler) Cancel(c *gin.Context) {
	visitorID, ok := middleware.GetVisitorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrStateFailed, msgGenericFailure, nil)
		return
	}

	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, errs.ErrBookingNotFound, msgBookingNotFound, nil)
		return
	}

	if err := h.bookingCommands.Cancel(c.Request.Context(), visitorID, bookingID); err != nil {
		handleDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
