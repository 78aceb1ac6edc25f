package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Wrap annotates err with msg while keeping the original chain intact
// for errors.Is checks. nil in, nil out.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark ties err to a sentinel so callers can match on the sentinel with
// errors.Is without losing the underlying cause. A nil err collapses to
// the sentinel itself.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
