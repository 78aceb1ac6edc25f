//go:build unit || e2e

package builder

import (
	"rental-front/internal/domain/car"
)

type CarBuilder struct {
	ID    int64
	Brand string
	Model string
	Price float64
}

func NewCarBuilder() *CarBuilder {
	return &CarBuilder{
		ID:    1,
		Brand: "Volvo",
		Model: "XC60",
		Price: 950,
	}
}

func (b *CarBuilder) WithID(id int64) *CarBuilder {
	b.ID = id
	return b
}

func (b *CarBuilder) WithBrand(brand string) *CarBuilder {
	b.Brand = brand
	return b
}

func (b *CarBuilder) WithModel(model string) *CarBuilder {
	b.Model = model
	return b
}

func (b *CarBuilder) WithPrice(price float64) *CarBuilder {
	b.Price = price
	return b
}

func (b *CarBuilder) Build() car.Car {
	return car.Car{
		ID:           b.ID,
		Brand:        b.Brand,
		Model:        b.Model,
		Year:         2023,
		Category:     car.Category{Name: "SUV"},
		Fuel:         "Hybrid",
		Transmission: "Automatic",
		Seats:        5,
		Price:        b.Price,
		ImageURL:     "https://example.com/xc60.jpg",
	}
}
