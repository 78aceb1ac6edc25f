package request

import (
	"rental-front/internal/usecase/commands"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Remember bool   `json:"remember"`
}

func (r LoginRequest) ToParams() commands.LoginParams {
	return commands.LoginParams{
		Email:    r.Email,
		Password: r.Password,
		Remember: r.Remember,
	}
}
