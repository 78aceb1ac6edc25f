package components

import (
	"rental-front/internal/infra/api"
	"rental-front/internal/infra/state"
	"rental-front/internal/pkg/config"
	"rental-front/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		// Upstream REST gateways
		fx.Annotate(
			api.NewCarClient,
			fx.As(new(shared.CarGateway)),
		),
		fx.Annotate(
			api.NewAuthClient,
			fx.As(new(shared.AuthGateway)),
		),
		fx.Annotate(
			api.NewCustomerClient,
			fx.As(new(shared.CustomerGateway)),
		),
		fx.Annotate(
			api.NewRentalClient,
			fx.As(new(shared.RentalGateway)),
		),
		// One Redis-backed store serves every per-visitor state port
		fx.Annotate(
			NewStateStore,
			fx.As(new(shared.SessionStore)),
			fx.As(new(shared.SearchStateStore)),
			fx.As(new(shared.PendingBookingStore)),
			fx.As(new(shared.SubmissionGuard)),
		),
	),
)

func NewStateStore(rdb *redis.Client, cfg config.Config) *state.Store {
	return state.NewStore(rdb, cfg.Session)
}
