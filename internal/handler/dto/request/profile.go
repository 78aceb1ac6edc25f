package request

import (
	"rental-front/internal/domain/rental"
)

// UpdateProfileRequest carries the editable profile fields. Email is
// bound for display round-tripping but the account email never changes.
type UpdateProfileRequest struct {
	FirstName  string `json:"firstName" binding:"required"`
	LastName   string `json:"lastName" binding:"required"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
	Country    string `json:"country"`
}

func (r UpdateProfileRequest) ToDomain() rental.Customer {
	return rental.Customer{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Phone:      r.Phone,
		Address:    r.Address,
		PostalCode: r.PostalCode,
		City:       r.City,
		Country:    r.Country,
	}
}
