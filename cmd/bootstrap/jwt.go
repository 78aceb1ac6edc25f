package bootstrap

import (
	"rental-front/internal/pkg/config"
	"rental-front/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// The visitor token lives as long as the durable session can; shorter
// lifetimes are enforced by cookie MaxAge, not by the token itself.
func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.Session.Secret, cfg.Session.DurableTTL)
}
