package api

import (
	"context"
	"errors"
	"net/http"

	"rental-front/internal/handler/httperr"
	upstream "rental-front/internal/infra/api"
	"rental-front/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// User-facing messages are Swedish; they are shown verbatim in the UI.
const (
	msgMissingDates     = "Både start- och slutdatum måste anges."
	msgStartInPast      = "Startdatum kan tidigast vara idag."
	msgEndNotAfterStart = "Slutdatum måste vara efter startdatum."
	msgRangeTooLong     = "Slutdatum kan som mest vara 14 dagar efter startdatum."
	msgLoginRequired    = "Du måste vara inloggad."
	msgBadCredentials   = "Fel e-postadress eller lösenord."
	msgCarNotFound      = "Bilen kunde inte hittas."
	msgTermsRequired    = "Du måste godkänna villkoren för att boka."
	msgBookingBusy      = "Din bokning behandlas redan."
	msgBookingNotFound  = "Bokningen kunde inte hittas."
	msgUpstreamDown     = "Tjänsten är inte tillgänglig just nu. Försök igen senare."
	msgGenericFailure   = "Något gick fel. Försök igen."
)

// handleLoginError renders a failed credential exchange. The rental API
// explains the rejection itself (wrong password, disabled account), so
// its message is preferred verbatim; the generic credentials hint is
// only the fallback. Every other failure follows the common mapping.
func handleLoginError(c *gin.Context, err error) {
	if upstream.IsKind(err, upstream.KindUnauthorized) {
		msg := upstream.ServerMessage(err)
		if msg == "" {
			msg = msgBadCredentials
		}
		httperr.AbortWithError(c, http.StatusUnauthorized, err, msg, nil)
		return
	}
	handleDomainError(c, err)
}

// handleDomainError maps usecase errors onto HTTP responses. A cancelled
// request context means the client is gone, so nothing is written. Server
// rejection messages pass through verbatim; only transport-level failures
// get the generic wording.
func handleDomainError(c *gin.Context, err error) {
	if errors.Is(err, context.Canceled) {
		c.Abort()
		return
	}

	switch {
	case errors.Is(err, errs.ErrMissingDates):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgMissingDates, nil)
	case errors.Is(err, errs.ErrStartInPast):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgStartInPast, nil)
	case errors.Is(err, errs.ErrEndNotAfterStart):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgEndNotAfterStart, nil)
	case errors.Is(err, errs.ErrRangeTooLong):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgRangeTooLong, nil)
	case errors.Is(err, errs.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, msgBadCredentials, nil)
	case errors.Is(err, errs.ErrCarNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, msgCarNotFound, nil)
	case errors.Is(err, errs.ErrTermsNotAccepted):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgTermsRequired, nil)
	case errors.Is(err, errs.ErrBookingInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, msgBookingBusy, nil)
	case errors.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, msgBookingNotFound, nil)
	case errors.Is(err, errs.ErrAuthRequired):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, msgLoginRequired, nil)
	case upstream.IsKind(err, upstream.KindUnauthorized):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, msgLoginRequired, nil)
	case upstream.IsKind(err, upstream.KindUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, msgUpstreamDown, nil)
	case upstream.IsKind(err, upstream.KindRejected):
		msg := upstream.ServerMessage(err)
		if msg == "" {
			msg = msgGenericFailure
		}
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, msg, nil)
	case upstream.IsKind(err, upstream.KindNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, msgGenericFailure, nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgGenericFailure, nil)
	}
}
