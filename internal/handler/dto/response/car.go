package response

import (
	"log/slog"

	"rental-front/internal/domain/car"
	"rental-front/internal/domain/rental"

	"github.com/jinzhu/copier"
)

type CarResponse struct {
	ID           int64   `json:"id"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	Category     string  `json:"category"`
	Fuel         string  `json:"fuel"`
	Transmission string  `json:"transmission"`
	Seats        int     `json:"seats"`
	Price        float64 `json:"price"`
	PriceDisplay string  `json:"priceDisplay"`
	ImageURL     string  `json:"imageUrl"`
}

func FromCar(entity car.Car) CarResponse {
	var resp CarResponse
	if err := copier.Copy(&resp, &entity); err != nil {
		slog.Warn("car response mapping failed", "error", err.Error())
	}
	resp.Category = entity.Category.Name
	resp.PriceDisplay = rental.FormatPrice(entity.Price) + " kr/dag"
	return resp
}

func FromCars(entities []car.Car) []CarResponse {
	out := make([]CarResponse, 0, len(entities))
	for _, entity := range entities {
		out = append(out, FromCar(entity))
	}
	return out
}
