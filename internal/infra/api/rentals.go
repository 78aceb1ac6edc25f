package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"rental-front/internal/domain/car"
	"rental-front/internal/domain/rental"
	"rental-front/internal/pkg/errs"
)

// RentalClient creates, lists and cancels the customer's bookings.
type RentalClient struct {
	client *Client
}

func NewRentalClient(client *Client) *RentalClient {
	return &RentalClient{client: client}
}

type createRentalRequest struct {
	CarID         int64  `json:"carId"`
	CustomerEmail string `json:"customerEmail"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
}

// Wire shapes: the rental API serves calendar dates as "2006-01-02"
// strings and the booking number as either a string or a number.
type confirmationWire struct {
	BookingNumber json.Number `json:"bookingNumber"`
	CarBrand      string      `json:"carBrand"`
	CarModel      string      `json:"carModel"`
	StartDate     apiDate     `json:"startDate"`
	EndDate       apiDate     `json:"endDate"`
	TotalPrice    float64     `json:"totalPrice"`
}

type bookingWire struct {
	ID         int64   `json:"id"`
	Status     string  `json:"status"`
	StartDate  apiDate `json:"startDate"`
	EndDate    apiDate `json:"endDate"`
	TotalPrice float64 `json:"totalPrice"`
	Car        car.Car `json:"car"`
}

func (c *RentalClient) Create(ctx context.Context, token string, carID int64, customerEmail string, start, end time.Time) (*rental.BookingConfirmation, error) {
	req := createRentalRequest{
		CarID:         carID,
		CustomerEmail: customerEmail,
		StartDate:     start.Format(rental.DateLayout),
		EndDate:       end.Format(rental.DateLayout),
	}

	var wire confirmationWire
	if err := c.client.do(ctx, http.MethodPost, "/rentals", nil, token, req, &wire); err != nil {
		return nil, err
	}

	return &rental.BookingConfirmation{
		BookingNumber: wire.BookingNumber.String(),
		CarBrand:      wire.CarBrand,
		CarModel:      wire.CarModel,
		StartDate:     wire.StartDate.Time,
		EndDate:       wire.EndDate.Time,
		TotalPrice:    wire.TotalPrice,
	}, nil
}

func (c *RentalClient) MyBookings(ctx context.Context, token string) ([]rental.Booking, error) {
	var wires []bookingWire
	if err := c.client.get(ctx, "/rentals/my-bookings", nil, token, &wires); err != nil {
		return nil, err
	}

	bookings := make([]rental.Booking, 0, len(wires))
	for _, w := range wires {
		bookings = append(bookings, rental.Booking{
			ID:         w.ID,
			Status:     rental.BookingStatus(w.Status),
			StartDate:  w.StartDate.Time,
			EndDate:    w.EndDate.Time,
			TotalPrice: w.TotalPrice,
			Car:        w.Car,
		})
	}
	return bookings, nil
}

func (c *RentalClient) Cancel(ctx context.Context, token string, bookingID int64) error {
	return c.client.do(ctx, http.MethodPut, fmt.Sprintf("/rentals/%d/cancel", bookingID), nil, token, nil, nil)
}

// apiDate decodes both plain calendar dates and RFC 3339 timestamps.
type apiDate struct {
	time.Time
}

func (d *apiDate) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errs.Wrap(err, "invalid date value")
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(rental.DateLayout, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return errs.Wrap(err, "invalid date value")
	}
	d.Time = t
	return nil
}
