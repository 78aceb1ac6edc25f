package queries

import (
	"context"

	"rental-front/internal/domain/car"
	"rental-front/internal/infra/api"
	"rental-front/internal/pkg/errs"
	"rental-front/internal/usecase/shared"
)

type CatalogQueries interface {
	ListCars(ctx context.Context) ([]car.Car, error)
	GetCar(ctx context.Context, id int64) (*car.Car, error)
}

type catalogQueriesImpl struct {
	cars shared.CarGateway
}

func NewCatalogQueries(cars shared.CarGateway) CatalogQueries {
	return &catalogQueriesImpl{cars: cars}
}

func (q *catalogQueriesImpl) ListCars(ctx context.Context) ([]car.Car, error) {
	cars, err := q.cars.List(ctx)
	if err != nil {
		return nil, err
	}
	return cars, nil
}

func (q *catalogQueriesImpl) GetCar(ctx context.Context, id int64) (*car.Car, error) {
	found, err := q.cars.FindByID(ctx, id)
	if err != nil {
		if api.IsKind(err, api.KindNotFound) {
			return nil, errs.ErrCarNotFound
		}
		return nil, err
	}
	return found, nil
}
