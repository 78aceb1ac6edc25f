//go:build unit || e2e

package builder

import (
	reqdto "rental-front/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
	Remember bool
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "anna@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) WithRemember(remember bool) *AuthBuilder {
	a.Remember = remember
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
		Remember: a.Remember,
	}
}
