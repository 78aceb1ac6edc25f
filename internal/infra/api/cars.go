package api

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"rental-front/internal/domain/car"
	"rental-front/internal/domain/rental"
)

// CarClient exposes the catalog endpoints. All are public; no token.
type CarClient struct {
	client *Client
}

func NewCarClient(client *Client) *CarClient {
	return &CarClient{client: client}
}

func (c *CarClient) List(ctx context.Context) ([]car.Car, error) {
	var cars []car.Car
	if err := c.client.get(ctx, "/cars", nil, "", &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

func (c *CarClient) FindByID(ctx context.Context, id int64) (*car.Car, error) {
	var found car.Car
	if err := c.client.get(ctx, fmt.Sprintf("/cars/%d", id), nil, "", &found); err != nil {
		return nil, err
	}
	return &found, nil
}

func (c *CarClient) Available(ctx context.Context, start, end time.Time, order car.SortOrder) ([]car.Car, error) {
	query := url.Values{}
	query.Set("startDate", start.Format(rental.DateLayout))
	query.Set("endDate", end.Format(rental.DateLayout))
	query.Set("sort", order.Hint())

	var cars []car.Car
	if err := c.client.get(ctx, "/cars/available", query, "", &cars); err != nil {
		return nil, err
	}
	return cars, nil
}
