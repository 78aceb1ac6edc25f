package rental

import (
	"time"

	"rental-front/internal/domain/car"
)

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusActive    BookingStatus = "ACTIVE"
	StatusCompleted BookingStatus = "COMPLETED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// Booking is a rental record from the customer's booking list.
type Booking struct {
	ID         int64         `json:"id"`
	Status     BookingStatus `json:"status"`
	StartDate  time.Time     `json:"startDate"`
	EndDate    time.Time     `json:"endDate"`
	TotalPrice float64       `json:"totalPrice"`
	Car        car.Car       `json:"car"`
}

// BookingConfirmation is the server-returned receipt of a successful
// booking. Immutable once received.
type BookingConfirmation struct {
	BookingNumber string    `json:"bookingNumber"`
	CarBrand      string    `json:"carBrand"`
	CarModel      string    `json:"carModel"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	TotalPrice    float64   `json:"totalPrice"`
}

// Customer is the authenticated customer's profile as served by the
// rental API. Email is the account identity and is never editable here.
type Customer struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
	Country    string `json:"country"`
}

// Categorize resolves a booking's effective status. An explicit server
// status always wins; the date-based inference applies only when the
// server status is absent or unknown, with boundary dates resolved as:
// end before today is completed, today inside [start, end] is active.
func Categorize(b Booking, today time.Time) BookingStatus {
	switch b.Status {
	case StatusConfirmed, StatusActive, StatusCompleted, StatusCancelled:
		return b.Status
	}
	if b.EndDate.Before(today) {
		return StatusCompleted
	}
	if !b.StartDate.After(today) {
		return StatusActive
	}
	return StatusConfirmed
}
