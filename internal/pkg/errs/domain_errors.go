package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Date-range validation errors (recoverable, surfaced inline, never faults)
	ErrMissingDates     = errors.New("missing dates")
	ErrStartInPast      = errors.New("start date in past")
	ErrEndNotAfterStart = errors.New("end date not after start date")
	ErrRangeTooLong     = errors.New("date range too long")

	// Auth errors
	ErrAuthRequired       = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Booking errors
	ErrCarNotFound       = errors.New("car not found")
	ErrTermsNotAccepted  = errors.New("terms not accepted")
	ErrBookingInProgress = errors.New("booking in progress")
	ErrBookingNotFound   = errors.New("booking not found")

	// Operation errors
	ErrUpstreamFailed = errors.New("upstream request failed")
	ErrStateFailed    = errors.New("state store operation failed")
)
