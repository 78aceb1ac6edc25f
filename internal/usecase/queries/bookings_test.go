//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"rental-front/internal/domain/rental"
	"rental-front/internal/pkg/clock"
	"rental-front/internal/pkg/errs"
	"rental-front/internal/usecase/queries"
	"rental-front/tests/common/builder"
	sharedmock "rental-front/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingListQueriesTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRentals *sharedmock.MockRentalGateway
	clk         *clock.MockClock
	queries     queries.BookingListQueries
}

func (s *BookingListQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRentals = sharedmock.NewMockRentalGateway(s.ctrl)
	s.clk = clock.NewMockClock(time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC))
	s.queries = queries.NewBookingListQueries(s.mockRentals, s.clk)
}

func (s *BookingListQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingListQueriesSuite(t *testing.T) {
	suite.Run(t, new(BookingListQueriesTestSuite))
}

func (s *BookingListQueriesTestSuite) TestMyBookings() {
	sess := builder.NewSessionBuilder().Build()
	viewOpts := []cmp.Option{cmpopts.EquateEmpty()}

	s.Run("groups by effective status", func() {
		upcoming := builder.NewBookingBuilder().WithID(100).
			WithDates(day(2026, 9, 1), day(2026, 9, 4)).Build()
		ongoing := builder.NewBookingBuilder().WithID(101).
			WithStatus("").
			WithDates(day(2026, 8, 28), day(2026, 8, 30)).Build()
		finished := builder.NewBookingBuilder().WithID(102).
			WithStatus("").
			WithDates(day(2026, 8, 1), day(2026, 8, 3)).Build()
		cancelled := builder.NewBookingBuilder().WithID(103).
			WithStatus(rental.StatusCancelled).
			WithDates(day(2026, 9, 10), day(2026, 9, 12)).Build()

		s.mockRentals.EXPECT().
			MyBookings(gomock.Any(), sess.Token).
			Return([]rental.Booking{upcoming, ongoing, finished, cancelled}, nil)

		view, err := s.queries.MyBookings(context.Background(), sess)
		s.Require().NoError(err)

		ongoing.Status = rental.StatusActive
		finished.Status = rental.StatusCompleted
		expected := &queries.BookingsView{
			Confirmed: []rental.Booking{upcoming},
			Active:    []rental.Booking{ongoing},
			Completed: []rental.Booking{finished},
			Cancelled: []rental.Booking{cancelled},
		}
		if diff := cmp.Diff(expected, view, viewOpts...); diff != "" {
			s.T().Errorf("BookingsView mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("server status left blank falls back to dates", func() {
		finished := builder.NewBookingBuilder().WithID(110).
			WithStatus("").
			WithDates(day(2026, 8, 1), day(2026, 8, 3)).Build()

		s.mockRentals.EXPECT().
			MyBookings(gomock.Any(), sess.Token).
			Return([]rental.Booking{finished}, nil)

		view, err := s.queries.MyBookings(context.Background(), sess)
		s.Require().NoError(err)

		s.Require().Len(view.Completed, 1)
		s.Equal(rental.StatusCompleted, view.Completed[0].Status)
		s.Empty(view.Confirmed)
	})

	s.Run("no bookings yields an empty view", func() {
		s.mockRentals.EXPECT().
			MyBookings(gomock.Any(), sess.Token).
			Return(nil, nil)

		view, err := s.queries.MyBookings(context.Background(), sess)
		s.Require().NoError(err)

		if diff := cmp.Diff(&queries.BookingsView{}, view, viewOpts...); diff != "" {
			s.T().Errorf("BookingsView mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("gateway failure propagates", func() {
		s.mockRentals.EXPECT().
			MyBookings(gomock.Any(), sess.Token).
			Return(nil, errs.ErrUpstreamFailed)

		_, err := s.queries.MyBookings(context.Background(), sess)
		s.Require().ErrorIs(err, errs.ErrUpstreamFailed)
	})
}
