//go:build unit

package state

import (
	"context"
	"testing"
	"time"

	"rental-front/internal/pkg/config"
	"rental-front/tests/common/builder"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type VisitorStateTestSuite struct {
	suite.Suite
	ctx       context.Context
	mr        *miniredis.Miniredis
	store     *Store
	visitorID uuid.UUID
}

func (s *VisitorStateTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mr = miniredis.RunT(s.T())
	s.store = NewStore(redis.NewClient(&redis.Options{Addr: s.mr.Addr()}), config.NewTestConfig().Session)
	s.visitorID = uuid.New()
}

func TestVisitorStateSuite(t *testing.T) {
	suite.Run(t, new(VisitorStateTestSuite))
}

func (s *VisitorStateTestSuite) TestPendingBooking() {
	s.Run("take consumes the intent exactly once", func() {
		pb := builder.NewPendingBookingBuilder().Build()
		s.Require().NoError(s.store.SavePending(s.ctx, s.visitorID, pb))

		got, err := s.store.TakePending(s.ctx, s.visitorID)
		s.Require().NoError(err)
		s.Require().NotNil(got)
		s.Equal(pb, *got)

		again, err := s.store.TakePending(s.ctx, s.visitorID)
		s.Require().NoError(err)
		s.Nil(again)
	})

	s.Run("a new save supersedes the old intent", func() {
		first := builder.NewPendingBookingBuilder().Build()
		second := builder.NewPendingBookingBuilder().WithCarID("7").Build()
		s.Require().NoError(s.store.SavePending(s.ctx, s.visitorID, first))
		s.Require().NoError(s.store.SavePending(s.ctx, s.visitorID, second))

		got, err := s.store.TakePending(s.ctx, s.visitorID)
		s.Require().NoError(err)
		s.Require().NotNil(got)
		s.Equal("7", got.CarID)
	})
}

func (s *VisitorStateTestSuite) TestSubmissionGuard() {
	const hash = "a1b2c3"

	s.Run("second identical submission is refused", func() {
		ok, err := s.store.AcquireGuard(s.ctx, s.visitorID, hash)
		s.Require().NoError(err)
		s.True(ok)

		ok, err = s.store.AcquireGuard(s.ctx, s.visitorID, hash)
		s.Require().NoError(err)
		s.False(ok)
	})

	s.Run("release frees the slot for a retry", func() {
		_, err := s.store.AcquireGuard(s.ctx, s.visitorID, hash)
		s.Require().NoError(err)

		s.Require().NoError(s.store.ReleaseGuard(s.ctx, s.visitorID, hash))

		ok, err := s.store.AcquireGuard(s.ctx, s.visitorID, hash)
		s.Require().NoError(err)
		s.True(ok)
	})

	s.Run("a different request hash is independent", func() {
		_, err := s.store.AcquireGuard(s.ctx, s.visitorID, hash)
		s.Require().NoError(err)

		ok, err := s.store.AcquireGuard(s.ctx, s.visitorID, "d4e5f6")
		s.Require().NoError(err)
		s.True(ok)
	})
}

func (s *VisitorStateTestSuite) TestSearchState() {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)

	s.Run("dates saved before any search keep Searched false", func() {
		s.Require().NoError(s.store.SaveDates(s.ctx, s.visitorID, start, end))

		st, err := s.store.LoadSearch(s.ctx, s.visitorID)
		s.Require().NoError(err)
		s.Require().NotNil(st)
		s.True(st.StartDate.Equal(start))
		s.True(st.EndDate.Equal(end))
		s.False(st.Searched)
	})

	s.Run("clear removes the state", func() {
		s.Require().NoError(s.store.SaveDates(s.ctx, s.visitorID, start, end))
		s.Require().NoError(s.store.ClearSearch(s.ctx, s.visitorID))

		st, err := s.store.LoadSearch(s.ctx, s.visitorID)
		s.Require().NoError(err)
		s.Nil(st)
	})
}
