package commands

import (
	"context"
	"log/slog"

	"rental-front/internal/domain/rental"
	"rental-front/internal/domain/session"
	"rental-front/internal/pkg/errs"
	"rental-front/internal/usecase/shared"

	"github.com/google/uuid"
)

// LoginEntryPoint is where logout and failed auth gates send the visitor.
const LoginEntryPoint = "/login"

type LoginParams struct {
	Email    string
	Password string
	Remember bool
}

type LoginResult struct {
	Session *session.AuthSession
	// RedirectTo resumes a pending booking when one was captured,
	// otherwise routes by role.
	RedirectTo string
}

type AuthCommands interface {
	Login(ctx context.Context, visitorID uuid.UUID, params LoginParams) (*LoginResult, error)
	Logout(ctx context.Context, visitorID uuid.UUID) error
	UpdateProfile(ctx context.Context, visitorID uuid.UUID, profile rental.Customer) (*rental.Customer, error)
}

type authCommandsImpl struct {
	auth      shared.AuthGateway
	customers shared.CustomerGateway
	sessions  shared.SessionStore
	search    shared.SearchStateStore
	pending   shared.PendingBookingStore
}

func NewAuthCommands(
	auth shared.AuthGateway,
	customers shared.CustomerGateway,
	sessions shared.SessionStore,
	search shared.SearchStateStore,
	pending shared.PendingBookingStore,
) AuthCommands {
	return &authCommandsImpl{
		auth:      auth,
		customers: customers,
		sessions:  sessions,
		search:    search,
		pending:   pending,
	}
}

// Login exchanges credentials upstream and installs the session in the
// tier chosen by remember. A captured booking intent is consumed here:
// the result's redirect resumes it exactly once.
func (a *authCommandsImpl) Login(ctx context.Context, visitorID uuid.UUID, params LoginParams) (*LoginResult, error) {
	sess, err := a.auth.Login(ctx, params.Email, params.Password)
	if err != nil {
		return nil, err
	}
	if sess.Token == "" {
		// Upstream accepted but returned no credential; treat as a
		// failed login rather than installing an empty session.
		return nil, errs.ErrInvalidCredentials
	}

	if err := a.sessions.Login(ctx, visitorID, *sess, params.Remember); err != nil {
		return nil, err
	}
	sess.Tier = session.TierEphemeral
	if params.Remember {
		sess.Tier = session.TierDurable
	}

	redirectTo := "/"
	if sess.Role == session.RoleAdmin {
		redirectTo = "/admin/dashboard"
	}
	pb, err := a.pending.TakePending(ctx, visitorID)
	if err != nil {
		slog.Warn("failed to take pending booking after login", "error", err.Error())
		// Continue without failing - login itself succeeded
	} else if pb != nil {
		redirectTo = pb.BookingTarget()
	}

	return &LoginResult{Session: sess, RedirectTo: redirectTo}, nil
}

// Logout clears both session tiers and every other trace of the browsing
// session, then sends the visitor to the login entry point.
func (a *authCommandsImpl) Logout(ctx context.Context, visitorID uuid.UUID) error {
	if err := a.sessions.Logout(ctx, visitorID); err != nil {
		return err
	}
	if err := a.search.ClearSearch(ctx, visitorID); err != nil {
		slog.Warn("failed to clear search state on logout", "error", err.Error())
	}
	if err := a.pending.ClearPending(ctx, visitorID); err != nil {
		slog.Warn("failed to clear pending booking on logout", "error", err.Error())
	}
	return nil
}

// UpdateProfile writes the profile upstream and merges the returned name
// fields into the current session snapshot. The email is the account
// identity and never flows into the session.
func (a *authCommandsImpl) UpdateProfile(ctx context.Context, visitorID uuid.UUID, profile rental.Customer) (*rental.Customer, error) {
	sess, err := a.sessions.Current(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, errs.ErrAuthRequired
	}

	updated, err := a.customers.Update(ctx, sess.Token, profile)
	if err != nil {
		return nil, err
	}

	if _, err := a.sessions.UpdateUser(ctx, visitorID, updated.FirstName, updated.LastName); err != nil {
		slog.Warn("failed to merge updated name into session", "error", err.Error())
		// Continue without failing - the upstream update succeeded
	}
	return updated, nil
}
