package router

import (
	"net/http"

	"github.com/flexora/physio-booking/internal/bookings"
	"github.com/flexora/physio-booking/internal/catalog"
	"github.com/flexora/physio-booking/internal/http/handlers"
	httpmiddleware "github.com/flexora/physio-booking/internal/http/middleware"
	"github.com/flexora/physio-booking/pkg/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Config holds router configuration. Nil handlers leave their routes unmounted.
type Config struct {
	Logger             *logging.Logger
	Health             *handlers.HealthHandler
	CatalogHandler     *catalog.Handler
	BookingsHandler    *bookings.Handler
	AdminBookings      *handlers.AdminBookingsHandler
	Sessions           httpmiddleware.SessionResolver
	AdminGuard         httpmiddleware.AdminAuthorizer
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	r.Use(httpmiddleware.RequestLogger(cfg.Logger))

	r.Group(func(public chi.Router) {
		if cfg.Health != nil {
			public.Get("/health", cfg.Health.Live)
			public.Get("/ready", cfg.Health.Ready)
		}
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}
		public.Route("/api", func(api chi.Router) {
			if cfg.CatalogHandler != nil {
				api.Get("/services", cfg.CatalogHandler.ListServices)
				api.Get("/services/{serviceID}", cfg.CatalogHandler.GetService)
			}
			if cfg.BookingsHandler != nil {
				api.Get("/booking/options", cfg.BookingsHandler.BookingOptions)
				api.Post("/bookings", cfg.BookingsHandler.SubmitBooking)
			}
		})
	})

	// Admin API: session from the bearer token, then the admin role check on
	// every request.
	if cfg.AdminBookings != nil && cfg.Sessions != nil && cfg.AdminGuard != nil {
		r.Route("/admin/api", func(admin chi.Router) {
			admin.Use(httpmiddleware.Session(cfg.Sessions))
			admin.Use(httpmiddleware.RequireAdmin(cfg.AdminGuard))
			admin.Get("/bookings", cfg.AdminBookings.ListBookings)
			admin.Patch("/bookings/{bookingID}/status", cfg.AdminBookings.UpdateStatus)
			admin.Post("/logout", cfg.AdminBookings.Logout)
		})
	}

	return r
}
