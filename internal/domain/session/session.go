package session

import "net/url"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole defaults to USER for anything unrecognized, matching how the
// login response is interpreted.
func ParseRole(s string) Role {
	if s == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}

type Tier string

const (
	// TierDurable survives across browsing sessions ("remember me").
	TierDurable Tier = "durable"
	// TierEphemeral ends with the browsing session.
	TierEphemeral Tier = "ephemeral"
)

// AuthSession is the credential issued by the rental API at login.
// Token and role are immutable post-login; only the name fields may be
// merged by a profile update. Consumers always hold a snapshot, never a
// reference into the store.
type AuthSession struct {
	Token     string `json:"token"`
	Role      Role   `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Tier records which storage tier owns the session. Set by the
	// store on read, not persisted as part of the record.
	Tier Tier `json:"-"`
}

// PendingBooking captures booking intent from an unauthenticated visitor.
// Written once when booking is attempted without a session, read once and
// deleted after a successful login. Dates stay as raw request parameters;
// validation happens when the booking flow resumes.
type PendingBooking struct {
	CarID     string `json:"carId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// BookingTarget is the frontend route that resumes the booking flow.
func (p PendingBooking) BookingTarget() string {
	q := url.Values{}
	if p.CarID != "" {
		q.Set("carId", p.CarID)
	}
	if p.StartDate != "" {
		q.Set("startDate", p.StartDate)
	}
	if p.EndDate != "" {
		q.Set("endDate", p.EndDate)
	}
	if len(q) == 0 {
		return "/booking-confirmation"
	}
	return "/booking-confirmation?" + q.Encode()
}

// LoginTarget is the login entry point with the resume target encoded, so
// the flow survives the unauthenticated-to-authenticated navigation.
func (p PendingBooking) LoginTarget() string {
	return "/login?redirect=" + url.QueryEscape(p.BookingTarget())
}
