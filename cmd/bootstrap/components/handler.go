package components

import (
	"rental-front/internal/handler"
	"rental-front/internal/handler/api"
	"rental-front/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewSearchHandler,
		api.NewBookingHandler,
		api.NewBookingListHandler,
		api.NewAuthHandler,
		api.NewProfileHandler,
		middleware.NewVisitorMiddleware,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	catalog *api.CatalogHandler,
	search *api.SearchHandler,
	booking *api.BookingHandler,
	bookingList *api.BookingListHandler,
	auth *api.AuthHandler,
	profile *api.ProfileHandler,
) handler.Handlers {
	return handler.Handlers{
		Catalog:     catalog,
		Search:      search,
		Booking:     booking,
		BookingList: bookingList,
		Auth:        auth,
		Profile:     profile,
	}
}
