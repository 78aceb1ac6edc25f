package api

import (
	"context"
	"net/http"

	"rental-front/internal/domain/rental"
)

// CustomerClient reads and updates the authenticated customer's profile.
type CustomerClient struct {
	client *Client
}

func NewCustomerClient(client *Client) *CustomerClient {
	return &CustomerClient{client: client}
}

func (c *CustomerClient) Me(ctx context.Context, token string) (*rental.Customer, error) {
	var customer rental.Customer
	if err := c.client.get(ctx, "/customers/me", nil, token, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *CustomerClient) Update(ctx context.Context, token string, profile rental.Customer) (*rental.Customer, error) {
	var updated rental.Customer
	if err := c.client.do(ctx, http.MethodPut, "/customers/me", nil, token, profile, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
