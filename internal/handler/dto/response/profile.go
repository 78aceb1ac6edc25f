package response

import (
	"log/slog"

	"rental-front/internal/domain/rental"

	"github.com/jinzhu/copier"
)

type CustomerResponse struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
	Country    string `json:"country"`
}

func FromCustomer(profile rental.Customer) CustomerResponse {
	var resp CustomerResponse
	if err := copier.Copy(&resp, &profile); err != nil {
		slog.Warn("customer response mapping failed", "error", err.Error())
	}
	return resp
}
