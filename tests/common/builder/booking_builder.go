//go:build unit || e2e

package builder

import (
	"time"

	"rental-front/internal/domain/rental"
)

type BookingBuilder struct {
	ID        int64
	Status    rental.BookingStatus
	StartDate time.Time
	EndDate   time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:        100,
		Status:    rental.StatusConfirmed,
		StartDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) WithID(id int64) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithStatus(status rental.BookingStatus) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithDates(start, end time.Time) *BookingBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *BookingBuilder) Build() rental.Booking {
	return rental.Booking{
		ID:         b.ID,
		Status:     b.Status,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		TotalPrice: 2850,
		Car:        NewCarBuilder().Build(),
	}
}

type CustomerBuilder struct {
	FirstName string
	LastName  string
	Email     string
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		FirstName: "Anna",
		LastName:  "Svensson",
		Email:     "anna@example.com",
	}
}

func (b *CustomerBuilder) WithEmail(email string) *CustomerBuilder {
	b.Email = email
	return b
}

func (b *CustomerBuilder) Build() rental.Customer {
	return rental.Customer{
		FirstName:  b.FirstName,
		LastName:   b.LastName,
		Email:      b.Email,
		Phone:      "+46701234567",
		Address:    "Storgatan 1",
		PostalCode: "11122",
		City:       "Stockholm",
		Country:    "Sverige",
	}
}
