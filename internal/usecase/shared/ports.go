package shared

import (
	"context"
	"time"

	"rental-front/internal/domain/car"
	"rental-front/internal/domain/rental"
	"rental-front/internal/domain/session"

	"github.com/google/uuid"
)

// Upstream gateway ports, implemented by internal/infra/api.

type CarGateway interface {
	List(ctx context.Context) ([]car.Car, error)
	FindByID(ctx context.Context, id int64) (*car.Car, error)
	Available(ctx context.Context, start, end time.Time, order car.SortOrder) ([]car.Car, error)
}

type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*session.AuthSession, error)
}

type CustomerGateway interface {
	Me(ctx context.Context, token string) (*rental.Customer, error)
	Update(ctx context.Context, token string, profile rental.Customer) (*rental.Customer, error)
}

type RentalGateway interface {
	Create(ctx context.Context, token string, carID int64, customerEmail string, start, end time.Time) (*rental.BookingConfirmation, error)
	MyBookings(ctx context.Context, token string) ([]rental.Booking, error)
	Cancel(ctx context.Context, token string, bookingID int64) error
}

// Visitor state ports, implemented by internal/infra/state.

// SessionStore is the single authoritative holder of the visitor's
// credential. Mutual exclusion of the two tiers is the store's invariant.
type SessionStore interface {
	Login(ctx context.Context, visitorID uuid.UUID, sess session.AuthSession, remember bool) error
	Current(ctx context.Context, visitorID uuid.UUID) (*session.AuthSession, error)
	Logout(ctx context.Context, visitorID uuid.UUID) error
	UpdateUser(ctx context.Context, visitorID uuid.UUID, firstName, lastName string) (*session.AuthSession, error)
}

type SearchStateStore interface {
	SaveDates(ctx context.Context, visitorID uuid.UUID, start, end time.Time) error
	SaveResults(ctx context.Context, visitorID uuid.UUID, st rental.SearchState) error
	LoadSearch(ctx context.Context, visitorID uuid.UUID) (*rental.SearchState, error)
	ClearSearch(ctx context.Context, visitorID uuid.UUID) error
}

type PendingBookingStore interface {
	SavePending(ctx context.Context, visitorID uuid.UUID, pb session.PendingBooking) error
	TakePending(ctx context.Context, visitorID uuid.UUID) (*session.PendingBooking, error)
	ClearPending(ctx context.Context, visitorID uuid.UUID) error
}

// SubmissionGuard serializes booking submission per request hash so a
// double-click results in exactly one upstream booking call.
type SubmissionGuard interface {
	AcquireGuard(ctx context.Context, visitorID uuid.UUID, requestHash string) (bool, error)
	ReleaseGuard(ctx context.Context, visitorID uuid.UUID, requestHash string) error
}
