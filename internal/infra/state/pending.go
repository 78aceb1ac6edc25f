package state

import (
	"context"
	"encoding/json"
	"errors"

	"rental-front/internal/domain/session"
	"rental-front/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SavePending captures booking intent for an unauthenticated visitor.
// Each save supersedes the previous one; the record lives no longer than
// the browsing session.
func (s *Store) SavePending(ctx context.Context, visitorID uuid.UUID, pb session.PendingBooking) error {
	encoded, err := json.Marshal(pb)
	if err != nil {
		return errs.Wrap(err, "failed to encode pending booking")
	}
	if err := s.rdb.Set(ctx, pendingKey(visitorID), encoded, s.sessionTTL).Err(); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to persist pending booking"), errs.ErrStateFailed)
	}
	return nil
}

// TakePending reads and deletes the pending booking in one step: the
// intent is consumed exactly once. (nil, nil) when none exists.
func (s *Store) TakePending(ctx context.Context, visitorID uuid.UUID) (*session.PendingBooking, error) {
	raw, err := s.rdb.GetDel(ctx, pendingKey(visitorID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to take pending booking"), errs.ErrStateFailed)
	}

	var pb session.PendingBooking
	if err := json.Unmarshal(raw, &pb); err != nil {
		return nil, nil
	}
	return &pb, nil
}

func (s *Store) ClearPending(ctx context.Context, visitorID uuid.UUID) error {
	if err := s.rdb.Del(ctx, pendingKey(visitorID)).Err(); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to clear pending booking"), errs.ErrStateFailed)
	}
	return nil
}
