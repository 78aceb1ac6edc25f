package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rental-front/internal/handler/api"
	"rental-front/internal/handler/middleware"
	"rental-front/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Catalog     *api.CatalogHandler
	Search      *api.SearchHandler
	Booking     *api.BookingHandler
	BookingList *api.BookingListHandler
	Auth        *api.AuthHandler
	Profile     *api.ProfileHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, logger *middleware.Logger, visitorMiddleware *middleware.VisitorMiddleware, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger, visitorMiddleware)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, visitorMiddleware *middleware.VisitorMiddleware) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	// Every request below carries a visitor identity.
	engine.Use(visitorMiddleware.Identify())
}

func setupRoutes(engine *gin.Engine, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/cars"), []route{
			{Method: http.MethodGet, Path: "", Handler: handlers.Catalog.ListCars},
			{Method: http.MethodGet, Path: "/:id", Handler: handlers.Catalog.GetCar},
		})

		addRoutes(apiGroup.Group("/search"), []route{
			{Method: http.MethodPost, Path: "", Handler: handlers.Search.Search},
			{Method: http.MethodGet, Path: "", Handler: handlers.Search.Restore},
			{Method: http.MethodPut, Path: "/dates", Handler: handlers.Search.ChangeDates},
		})

		// The summary endpoint gates on the session itself so it can
		// capture booking intent and answer with the login redirect.
		addRoutes(apiGroup.Group("/booking"), []route{
			{Method: http.MethodGet, Path: "/summary", Handler: handlers.Booking.Summary},
			{Method: http.MethodPost, Path: "", Handler: handlers.Booking.Confirm},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireSession())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: handlers.BookingList.MyBookings},
				{Method: http.MethodPut, Path: "/:id/cancel", Handler: handlers.BookingList.Cancel},
			})
		}

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: handlers.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: handlers.Auth.Logout},
				{Method: http.MethodGet, Path: "/session", Handler: handlers.Auth.Session},
			})
		}

		profile := apiGroup.Group("/profile")
		profile.Use(authMiddleware.RequireSession())
		{
			addRoutes(profile, []route{
				{Method: http.MethodGet, Path: "", Handler: handlers.Profile.GetProfile},
				{Method: http.MethodPut, Path: "", Handler: handlers.Profile.UpdateProfile},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
