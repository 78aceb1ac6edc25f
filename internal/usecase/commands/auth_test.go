//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"rental-front/internal/domain/session"
	"rental-front/internal/pkg/errs"
	"rental-front/internal/usecase/commands"
	"rental-front/tests/common/builder"
	sharedmock "rental-front/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockAuth      *sharedmock.MockAuthGateway
	mockCustomers *sharedmock.MockCustomerGateway
	mockSessions  *sharedmock.MockSessionStore
	mockSearch    *sharedmock.MockSearchStateStore
	mockPending   *sharedmock.MockPendingBookingStore
	commands      commands.AuthCommands
	visitorID     uuid.UUID
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAuth = sharedmock.NewMockAuthGateway(s.ctrl)
	s.mockCustomers = sharedmock.NewMockCustomerGateway(s.ctrl)
	s.mockSessions = sharedmock.NewMockSessionStore(s.ctrl)
	s.mockSearch = sharedmock.NewMockSearchStateStore(s.ctrl)
	s.mockPending = sharedmock.NewMockPendingBookingStore(s.ctrl)
	s.commands = commands.NewAuthCommands(s.mockAuth, s.mockCustomers, s.mockSessions, s.mockSearch, s.mockPending)
	s.visitorID = uuid.New()
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) TestLogin() {
	params := commands.LoginParams{Email: "anna@example.com", Password: "password123"}

	s.Run("success: ephemeral session, home redirect", func() {
		sess := builder.NewSessionBuilder().Build()
		s.mockAuth.EXPECT().Login(gomock.Any(), params.Email, params.Password).Return(&sess, nil).Times(1)
		s.mockSessions.EXPECT().Login(gomock.Any(), s.visitorID, sess, false).Return(nil).Times(1)
		s.mockPending.EXPECT().TakePending(gomock.Any(), s.visitorID).Return(nil, nil).Times(1)

		result, err := s.commands.Login(context.Background(), s.visitorID, params)
		s.Require().NoError(err)
		s.Equal("/", result.RedirectTo)
		s.Equal(session.TierEphemeral, result.Session.Tier)
	})

	s.Run("remember places the session in the durable tier", func() {
		sess := builder.NewSessionBuilder().Build()
		remembered := params
		remembered.Remember = true
		s.mockAuth.EXPECT().Login(gomock.Any(), params.Email, params.Password).Return(&sess, nil).Times(1)
		s.mockSessions.EXPECT().Login(gomock.Any(), s.visitorID, sess, true).Return(nil).Times(1)
		s.mockPending.EXPECT().TakePending(gomock.Any(), s.visitorID).Return(nil, nil).Times(1)

		result, err := s.commands.Login(context.Background(), s.visitorID, remembered)
		s.Require().NoError(err)
		s.Equal(session.TierDurable, result.Session.Tier)
	})

	s.Run("admin role redirects to the dashboard", func() {
		sess := builder.NewSessionBuilder().WithRole(session.RoleAdmin).Build()
		s.mockAuth.EXPECT().Login(gomock.Any(), params.Email, params.Password).Return(&sess, nil).Times(1)
		s.mockSessions.EXPECT().Login(gomock.Any(), s.visitorID, sess, false).Return(nil).Times(1)
		s.mockPending.EXPECT().TakePending(gomock.Any(), s.visitorID).Return(nil, nil).Times(1)

		result, err := s.commands.Login(context.Background(), s.visitorID, params)
		s.Require().NoError(err)
		s.Equal("/admin/dashboard", result.RedirectTo)
	})

	s.Run("captured booking intent wins the redirect and is consumed", func() {
		sess := builder.NewSessionBuilder().Build()
		pb := builder.NewPendingBookingBuilder().Build()
		s.mockAuth.EXPECT().Login(gomock.Any(), params.Email, params.Password).Return(&sess, nil).Times(1)
		s.mockSessions.EXPECT().Login(gomock.Any(), s.visitorID, sess, false).Return(nil).Times(1)
		s.mockPending.EXPECT().TakePending(gomock.Any(), s.visitorID).Return(&pb, nil).Times(1)

		result, err := s.commands.Login(context.Background(), s.visitorID, params)
		s.Require().NoError(err)
		s.Equal(pb.BookingTarget(), result.RedirectTo)
	})

	s.Run("empty upstream token is a failed login", func() {
		sess := builder.NewSessionBuilder().WithToken("").Build()
		s.mockAuth.EXPECT().Login(gomock.Any(), params.Email, params.Password).Return(&sess, nil).Times(1)

		_, err := s.commands.Login(context.Background(), s.visitorID, params)
		s.ErrorIs(err, errs.ErrInvalidCredentials)
	})

	s.Run("pending lookup failure does not fail the login", func() {
		sess := builder.NewSessionBuilder().Build()
		s.mockAuth.EXPECT().Login(gomock.Any(), params.Email, params.Password).Return(&sess, nil).Times(1)
		s.mockSessions.EXPECT().Login(gomock.Any(), s.visitorID, sess, false).Return(nil).Times(1)
		s.mockPending.EXPECT().TakePending(gomock.Any(), s.visitorID).Return(nil, errors.New("redis down")).Times(1)

		result, err := s.commands.Login(context.Background(), s.visitorID, params)
		s.Require().NoError(err)
		s.Equal("/", result.RedirectTo)
	})
}

func (s *AuthCommandsTestSuite) TestLogout() {
	s.Run("clears session, search state and pending intent", func() {
		s.mockSessions.EXPECT().Logout(gomock.Any(), s.visitorID).Return(nil).Times(1)
		s.mockSearch.EXPECT().ClearSearch(gomock.Any(), s.visitorID).Return(nil).Times(1)
		s.mockPending.EXPECT().ClearPending(gomock.Any(), s.visitorID).Return(nil).Times(1)

		s.NoError(s.commands.Logout(context.Background(), s.visitorID))
	})

	s.Run("secondary clear failures are tolerated", func() {
		s.mockSessions.EXPECT().Logout(gomock.Any(), s.visitorID).Return(nil).Times(1)
		s.mockSearch.EXPECT().ClearSearch(gomock.Any(), s.visitorID).Return(errors.New("redis down")).Times(1)
		s.mockPending.EXPECT().ClearPending(gomock.Any(), s.visitorID).Return(errors.New("redis down")).Times(1)

		s.NoError(s.commands.Logout(context.Background(), s.visitorID))
	})

	s.Run("session clear failure fails the logout", func() {
		s.mockSessions.EXPECT().Logout(gomock.Any(), s.visitorID).Return(errs.ErrStateFailed).Times(1)

		s.ErrorIs(s.commands.Logout(context.Background(), s.visitorID), errs.ErrStateFailed)
	})
}

func (s *AuthCommandsTestSuite) TestUpdateProfile() {
	profile := builder.NewCustomerBuilder().Build()

	s.Run("unauthenticated visitors cannot update", func() {
		s.mockSessions.EXPECT().Current(gomock.Any(), s.visitorID).Return(nil, nil).Times(1)

		_, err := s.commands.UpdateProfile(context.Background(), s.visitorID, profile)
		s.ErrorIs(err, errs.ErrAuthRequired)
	})

	s.Run("success merges the returned name into the session", func() {
		sess := builder.NewSessionBuilder().Build()
		updated := profile
		updated.FirstName = "Eva"

		s.mockSessions.EXPECT().Current(gomock.Any(), s.visitorID).Return(&sess, nil).Times(1)
		s.mockCustomers.EXPECT().Update(gomock.Any(), sess.Token, profile).Return(&updated, nil).Times(1)
		s.mockSessions.EXPECT().UpdateUser(gomock.Any(), s.visitorID, "Eva", updated.LastName).Return(&sess, nil).Times(1)

		got, err := s.commands.UpdateProfile(context.Background(), s.visitorID, profile)
		s.Require().NoError(err)
		s.Equal("Eva", got.FirstName)
	})

	s.Run("session merge failure does not fail the update", func() {
		sess := builder.NewSessionBuilder().Build()

		s.mockSessions.EXPECT().Current(gomock.Any(), s.visitorID).Return(&sess, nil).Times(1)
		s.mockCustomers.EXPECT().Update(gomock.Any(), sess.Token, profile).Return(&profile, nil).Times(1)
		s.mockSessions.EXPECT().UpdateUser(gomock.Any(), s.visitorID, profile.FirstName, profile.LastName).
			Return(nil, errors.New("redis down")).Times(1)

		got, err := s.commands.UpdateProfile(context.Background(), s.visitorID, profile)
		s.Require().NoError(err)
		s.Equal(profile.Email, got.Email)
	})
}
