package state

import (
	"context"

	"rental-front/internal/pkg/errs"

	"github.com/google/uuid"
)

// AcquireGuard claims the one-shot submission slot for a booking request.
// Returns false when an identical submission already holds it, which is
// how a double-click resolves to exactly one upstream booking call. A
// successful booking keeps the guard until it expires; a failed one
// releases it so retry is a fresh action.
func (s *Store) AcquireGuard(ctx context.Context, visitorID uuid.UUID, requestHash string) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, guardKey(visitorID, requestHash), "1", s.sessionTTL).Result()
	if err != nil {
		return false, errs.Mark(errs.Wrap(err, "failed to acquire submission guard"), errs.ErrStateFailed)
	}
	return ok, nil
}

func (s *Store) ReleaseGuard(ctx context.Context, visitorID uuid.UUID, requestHash string) error {
	if err := s.rdb.Del(ctx, guardKey(visitorID, requestHash)).Err(); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to release submission guard"), errs.ErrStateFailed)
	}
	return nil
}
