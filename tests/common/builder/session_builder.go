//go:build unit || e2e

package builder

import (
	"rental-front/internal/domain/session"
)

type SessionBuilder struct {
	Token     string
	Role      session.Role
	FirstName string
	LastName  string
	Tier      session.Tier
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		Token:     "upstream-token",
		Role:      session.RoleUser,
		FirstName: "Anna",
		LastName:  "Svensson",
		Tier:      session.TierEphemeral,
	}
}

func (b *SessionBuilder) WithRole(role session.Role) *SessionBuilder {
	b.Role = role
	return b
}

func (b *SessionBuilder) WithTier(tier session.Tier) *SessionBuilder {
	b.Tier = tier
	return b
}

func (b *SessionBuilder) WithToken(token string) *SessionBuilder {
	b.Token = token
	return b
}

func (b *SessionBuilder) Build() session.AuthSession {
	return session.AuthSession{
		Token:     b.Token,
		Role:      b.Role,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Tier:      b.Tier,
	}
}

type PendingBookingBuilder struct {
	CarID     string
	StartDate string
	EndDate   string
}

func NewPendingBookingBuilder() *PendingBookingBuilder {
	return &PendingBookingBuilder{
		CarID:     "1",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-04",
	}
}

func (b *PendingBookingBuilder) WithCarID(id string) *PendingBookingBuilder {
	b.CarID = id
	return b
}

func (b *PendingBookingBuilder) Build() session.PendingBooking {
	return session.PendingBooking{
		CarID:     b.CarID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
	}
}
