package api

import (
	"context"

	"rental-front/internal/domain/session"
)

// AuthClient performs upstream credential exchange. The BFF never sees
// password hashes; authentication is entirely the rental API's concern.
type AuthClient struct {
	client *Client
}

func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (c *AuthClient) Login(ctx context.Context, email, password string) (*session.AuthSession, error) {
	var resp loginResponse
	err := c.client.do(ctx, "POST", "/auth/login", nil, "", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}

	return &session.AuthSession{
		Token:     resp.Token,
		Role:      session.ParseRole(resp.Role),
		FirstName: resp.FirstName,
		LastName:  resp.LastName,
	}, nil
}
