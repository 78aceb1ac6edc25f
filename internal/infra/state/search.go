package state

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"rental-front/internal/domain/rental"
	"rental-front/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SaveDates persists the chosen date range immediately, keeping whatever
// results are already stored. Called on every date-field change.
func (s *Store) SaveDates(ctx context.Context, visitorID uuid.UUID, start, end time.Time) error {
	st, err := s.LoadSearch(ctx, visitorID)
	if err != nil {
		return err
	}
	if st == nil {
		st = &rental.SearchState{}
	}
	st.StartDate = start
	st.EndDate = end
	return s.writeSearch(ctx, visitorID, st)
}

// SaveResults replaces the stored search state with a fresh result set
// tagged with the range it was computed for.
func (s *Store) SaveResults(ctx context.Context, visitorID uuid.UUID, st rental.SearchState) error {
	st.Searched = true
	return s.writeSearch(ctx, visitorID, &st)
}

// LoadSearch restores the visitor's search state. (nil, nil) when none.
func (s *Store) LoadSearch(ctx context.Context, visitorID uuid.UUID) (*rental.SearchState, error) {
	raw, err := s.rdb.Get(ctx, searchKey(visitorID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to read search state"), errs.ErrStateFailed)
	}

	var st rental.SearchState
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, nil
	}
	return &st, nil
}

func (s *Store) ClearSearch(ctx context.Context, visitorID uuid.UUID) error {
	if err := s.rdb.Del(ctx, searchKey(visitorID)).Err(); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to clear search state"), errs.ErrStateFailed)
	}
	return nil
}

func (s *Store) writeSearch(ctx context.Context, visitorID uuid.UUID, st *rental.SearchState) error {
	encoded, err := json.Marshal(st)
	if err != nil {
		return errs.Wrap(err, "failed to encode search state")
	}
	if err := s.rdb.Set(ctx, searchKey(visitorID), encoded, s.sessionTTL).Err(); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to persist search state"), errs.ErrStateFailed)
	}
	return nil
}
