package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"rental-front/internal/domain/rental"
	"rental-front/internal/infra/api"
	"rental-front/internal/pkg/clock"
	"rental-front/internal/pkg/errs"
	"rental-front/internal/usecase/shared"

	"github.com/google/uuid"
)

type ConfirmParams struct {
	CarID         int64
	StartDate     time.Time
	EndDate       time.Time
	TermsAccepted bool
}

type BookingCommands interface {
	Confirm(ctx context.Context, visitorID uuid.UUID, params ConfirmParams) (*rental.BookingConfirmation, error)
	Cancel(ctx context.Context, visitorID uuid.UUID, bookingID int64) error
}

type bookingCommandsImpl struct {
	customers shared.CustomerGateway
	rentals   shared.RentalGateway
	sessions  shared.SessionStore
	pending   shared.PendingBookingStore
	guard     shared.SubmissionGuard
	clock     clock.Clock
}

func NewBookingCommands(
	customers shared.CustomerGateway,
	rentals shared.RentalGateway,
	sessions shared.SessionStore,
	pending shared.PendingBookingStore,
	guard shared.SubmissionGuard,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		customers: customers,
		rentals:   rentals,
		sessions:  sessions,
		pending:   pending,
		guard:     guard,
		clock:     clk,
	}
}

// Confirm submits the booking. The date range is re-validated with the
// same rules the search used, and the submission guard guarantees that
// repeated clicks on an identical request produce exactly one upstream
// booking call. The guard is released on failure so a retry is a fresh
// user action; after success it stays held.
func (b *bookingCommandsImpl) Confirm(ctx context.Context, visitorID uuid.UUID, params ConfirmParams) (*rental.BookingConfirmation, error) {
	sess, err := b.sessions.Current(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, errs.ErrAuthRequired
	}

	if !params.TermsAccepted {
		return nil, errs.ErrTermsNotAccepted
	}

	if err := rental.ValidateRange(params.StartDate, params.EndDate, clock.Today(b.clock)); err != nil {
		return nil, err
	}

	requestHash := confirmRequestHash(params)
	acquired, err := b.guard.AcquireGuard(ctx, visitorID, requestHash)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, errs.ErrBookingInProgress
	}

	confirmation, err := b.submit(ctx, sess.Token, params)
	if err != nil {
		// Release outside the request context: teardown must not leave
		// the guard stuck for the rest of the session.
		if relErr := b.guard.ReleaseGuard(context.WithoutCancel(ctx), visitorID, requestHash); relErr != nil {
			slog.Warn("failed to release submission guard", "error", relErr.Error())
		}
		return nil, err
	}

	// Final safety net; normally already cleared when the summary loaded.
	if err := b.pending.ClearPending(ctx, visitorID); err != nil {
		slog.Warn("failed to clear pending booking after confirmation", "error", err.Error())
	}

	return confirmation, nil
}

func (b *bookingCommandsImpl) submit(ctx context.Context, token string, params ConfirmParams) (*rental.BookingConfirmation, error) {
	// The rental API keys the booking on the customer email; read it from
	// the authoritative profile rather than trusting the client.
	customer, err := b.customers.Me(ctx, token)
	if err != nil {
		return nil, err
	}
	return b.rentals.Create(ctx, token, params.CarID, customer.Email, params.StartDate, params.EndDate)
}

// Cancel withdraws one of the customer's confirmed bookings.
func (b *bookingCommandsImpl) Cancel(ctx context.Context, visitorID uuid.UUID, bookingID int64) error {
	sess, err := b.sessions.Current(ctx, visitorID)
	if err != nil {
		return err
	}
	if sess == nil {
		return errs.ErrAuthRequired
	}

	if err := b.rentals.Cancel(ctx, sess.Token, bookingID); err != nil {
		if api.IsKind(err, api.KindNotFound) {
			return errs.ErrBookingNotFound
		}
		return err
	}
	return nil
}

func confirmRequestHash(params ConfirmParams) string {
	payload := fmt.Sprintf("%d|%s|%s",
		params.CarID,
		params.StartDate.Format(rental.DateLayout),
		params.EndDate.Format(rental.DateLayout),
	)
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}
