package queries

import (
	"context"

	"rental-front/internal/domain/rental"
	"rental-front/internal/domain/session"
	"rental-front/internal/usecase/shared"
)

type ProfileQueries interface {
	Profile(ctx context.Context, sess session.AuthSession) (*rental.Customer, error)
}

type profileQueriesImpl struct {
	customers shared.CustomerGateway
}

func NewProfileQueries(customers shared.CustomerGateway) ProfileQueries {
	return &profileQueriesImpl{customers: customers}
}

func (q *profileQueriesImpl) Profile(ctx context.Context, sess session.AuthSession) (*rental.Customer, error) {
	return q.customers.Me(ctx, sess.Token)
}
