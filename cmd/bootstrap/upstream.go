package bootstrap

import (
	"log/slog"

	"rental-front/internal/infra/api"
	"rental-front/internal/pkg/config"

	"go.uber.org/fx"
)

var UpstreamModule = fx.Module("upstream",
	fx.Provide(
		NewUpstreamClient,
	),
)

func NewUpstreamClient(cfg config.Config, logger *slog.Logger) *api.Client {
	return api.NewClient(cfg.Upstream, logger)
}
