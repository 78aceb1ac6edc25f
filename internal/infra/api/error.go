package api

import (
	"errors"

	"rental-front/internal/pkg/errs"
)

type UpstreamErrorKind string

// Upstream-specific error kinds
const (
	KindNotFound     UpstreamErrorKind = "NOT_FOUND"
	KindUnauthorized UpstreamErrorKind = "UNAUTHORIZED"
	KindRejected     UpstreamErrorKind = "REJECTED"
	KindUnavailable  UpstreamErrorKind = "UNAVAILABLE"
)

// UpstreamError reports a failed call to the rental API. Message carries
// the server's own error body when one was present; handlers prefer it
// verbatim over generic fallbacks.
type UpstreamError struct {
	Kind    UpstreamErrorKind
	Status  int
	Message string
	err     error // wrapped low-level error
}

func (e UpstreamError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.Message + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.Message
}

func (e UpstreamError) Unwrap() error {
	return e.err
}

func wrapUpstreamErr(kind UpstreamErrorKind, status int, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return UpstreamError{Kind: kind, Status: status, Message: msg, err: err}
}

func IsKind(err error, kind UpstreamErrorKind) bool {
	var e UpstreamError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ServerMessage extracts the upstream error body, if any, for verbatim
// display. Returns "" when the failure produced no usable message.
func ServerMessage(err error) string {
	var e UpstreamError
	if errors.As(err, &e) && e.Kind != KindUnavailable {
		return e.Message
	}
	return ""
}
