//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"rental-front/internal/domain/rental"
	"rental-front/internal/domain/session"
	"rental-front/internal/pkg/clock"
	"rental-front/internal/pkg/errs"
	"rental-front/internal/usecase/queries"
	"rental-front/tests/common/builder"
	sharedmock "rental-front/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingQueriesTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockCars      *sharedmock.MockCarGateway
	mockCustomers *sharedmock.MockCustomerGateway
	mockSessions  *sharedmock.MockSessionStore
	mockSearch    *sharedmock.MockSearchStateStore
	mockPending   *sharedmock.MockPendingBookingStore
	queries       queries.BookingQueries
	visitorID     uuid.UUID
}

func (s *BookingQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCars = sharedmock.NewMockCarGateway(s.ctrl)
	s.mockCustomers = sharedmock.NewMockCustomerGateway(s.ctrl)
	s.mockSessions = sharedmock.NewMockSessionStore(s.ctrl)
	s.mockSearch = sharedmock.NewMockSearchStateStore(s.ctrl)
	s.mockPending = sharedmock.NewMockPendingBookingStore(s.ctrl)
	clk := clock.NewMockClock(time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC))
	s.queries = queries.NewBookingQueries(s.mockCars, s.mockCustomers, s.mockSessions, s.mockSearch, s.mockPending, clk)
	s.visitorID = uuid.New()
}

func (s *BookingQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingQueriesSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesTestSuite))
}

func (s *BookingQueriesTestSuite) TestPrepare() {
	params := queries.PrepareParams{
		CarID:     1,
		StartDate: day(2026, 9, 1),
		EndDate:   day(2026, 9, 4),
	}

	s.Run("no session: captures intent and redirects to login", func() {
		s.mockSessions.EXPECT().Current(gomock.Any(), s.visitorID).Return(nil, nil).Times(1)
		expectedPending := session.PendingBooking{
			CarID:     "1",
			StartDate: "2026-09-01",
			EndDate:   "2026-09-04",
		}
		s.mockPending.EXPECT().SavePending(gomock.Any(), s.visitorID, expectedPending).Return(nil).Times(1)

		_, err := s.queries.Prepare(context.Background(), s.visitorID, params)

		s.Require().ErrorIs(err, errs.ErrAuthRequired)
		var authErr *queries.AuthRequiredError
		s.Require().ErrorAs(err, &authErr)
		s.Equal(expectedPending.LoginTarget(), authErr.RedirectTo)
	})

	s.Run("success: clears pending and assembles the summary", func() {
		sess := builder.NewSessionBuilder().Build()
		foundCar := builder.NewCarBuilder().WithID(1).WithPrice(950).Build()
		customer := builder.NewCustomerBuilder().Build()

		s.mockSessions.EXPECT().Current(gomock.Any(), s.visitorID).Return(&sess, nil).Times(1)
		s.mockPending.EXPECT().ClearPending(gomock.Any(), s.visitorID).Return(nil).Times(1)
		s.mockCars.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&foundCar, nil).Times(1)
		s.mockCustomers.EXPECT().Me(gomock.Any(), sess.Token).Return(&customer, nil).Times(1)

		view, err := s.queries.Prepare(context.Background(), s.visitorID, params)
		s.Require().NoError(err)
		s.Equal(foundCar, view.Car)
		s.Equal(customer, view.Customer)
		s.Equal(3, view.Days)
		s.Equal(int64(2850), view.TotalPrice)
	})

	s.Run("missing dates fall back to the stored search range", func() {
		sess := builder.NewSessionBuilder().Build()
		foundCar := builder.NewCarBuilder().WithID(1).Build()
		customer := builder.NewCustomerBuilder().Build()

		s.mockSessions.EXPECT().Current(gomock.Any(), s.visitorID).Return(&sess, nil).Times(1)
		s.mockPending.EXPECT().ClearPending(gomock.Any(), s.visitorID).Return(nil).Times(1)
		s.mockSearch.EXPECT().LoadSearch(gomock.Any(), s.visitorID).Return(&rental.SearchState{
			StartDate: day(2026, 9, 2),
			EndDate:   day(2026, 9, 5),
		}, nil).Times(1)
		s.mockCars.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&foundCar, nil).Times(1)
		s.mockCustomers.EXPECT().Me(gomock.Any(), sess.Token).Return(&customer, nil).Times(1)

		view, err := s.queries.Prepare(context.Background(), s.visitorID, queries.PrepareParams{CarID: 1})
		s.Require().NoError(err)
		s.Equal(day(2026, 9, 2), view.StartDate)
		s.Equal(day(2026, 9, 5), view.EndDate)
	})

	s.Run("invalid resolved range fails before any fetch", func() {
		sess := builder.NewSessionBuilder().Build()

		s.mockSessions.EXPECT().Current(gomock.Any(), s.visitorID).Return(&sess, nil).Times(1)
		s.mockPending.EXPECT().ClearPending(gomock.Any(), s.visitorID).Return(nil).Times(1)
		s.mockSearch.EXPECT().LoadSearch(gomock.Any(), s.visitorID).Return(nil, nil).Times(1)

		_, err := s.queries.Prepare(context.Background(), s.visitorID, queries.PrepareParams{CarID: 1})
		s.ErrorIs(err, errs.ErrMissingDates)
	})
}
