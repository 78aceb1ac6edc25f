package response

import (
	"rental-front/internal/domain/session"
	"rental-front/internal/usecase/commands"
)

type LoginResponse struct {
	Role       string `json:"role"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	RedirectTo string `json:"redirectTo"`
}

func FromLoginResult(result *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		Role:       string(result.Session.Role),
		FirstName:  result.Session.FirstName,
		LastName:   result.Session.LastName,
		RedirectTo: result.RedirectTo,
	}
}

// SessionResponse tells the client whether a visitor is logged in. The
// upstream token itself never leaves the server.
type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Role          string `json:"role,omitempty"`
	FirstName     string `json:"firstName,omitempty"`
	LastName      string `json:"lastName,omitempty"`
	Remembered    bool   `json:"remembered"`
}

func FromSession(sess *session.AuthSession) *SessionResponse {
	if sess == nil {
		return &SessionResponse{Authenticated: false}
	}
	return &SessionResponse{
		Authenticated: true,
		Role:          string(sess.Role),
		FirstName:     sess.FirstName,
		LastName:      sess.LastName,
		Remembered:    sess.Tier == session.TierDurable,
	}
}
