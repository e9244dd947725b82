package bootstrap

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/flexora/physio-booking/internal/api/router"
	"github.com/flexora/physio-booking/internal/auth"
	"github.com/flexora/physio-booking/internal/bookings"
	"github.com/flexora/physio-booking/internal/catalog"
	appconfig "github.com/flexora/physio-booking/internal/config"
	"github.com/flexora/physio-booking/internal/http/handlers"
	"github.com/flexora/physio-booking/internal/notify"
	"github.com/flexora/physio-booking/internal/observability/metrics"
	"github.com/flexora/physio-booking/pkg/logging"
)

// Deps are the external connections an App is built on. Nil fields select
// the in-memory implementations.
type Deps struct {
	Pool     *pgxpool.Pool
	Redis    *redis.Client
	Email    notify.EmailSender
	Registry *prometheus.Registry
}

// App is the fully wired booking backend.
type App struct {
	Handler  http.Handler
	Bookings *bookings.Service
	Guard    *auth.Guard
	Verifier *auth.Verifier
	Roles    auth.RoleStore
	Catalog  *catalog.Catalog
}

// BuildApp wires stores, services and the router from configuration.
func BuildApp(cfg *appconfig.Config, deps Deps, logger *logging.Logger) *App {
	if logger == nil {
		logger = logging.Default()
	}

	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
	m := metrics.NewBookingMetrics(reg)

	cat := catalog.Default()
	composer := bookings.NewComposer(cat, cfg.WhatsAppHost, cfg.WhatsAppNumber)

	var (
		repo  bookings.Repository
		roles auth.RoleStore
	)
	if deps.Pool != nil {
		repo = bookings.NewPostgresRepository(deps.Pool)
		roles = auth.NewPostgresRoleStore(deps.Pool)
	} else {
		repo = bookings.NewInMemoryRepository()
		memRoles := auth.NewInMemoryRoleStore()
		if cfg.DevAdminUserID != "" {
			memRoles.Grant(cfg.DevAdminUserID, auth.RoleAdmin)
			logger.Warn("DATABASE_URL not set, using in-memory bookings and roles", "dev_admin_user_id", cfg.DevAdminUserID)
		} else {
			logger.Warn("DATABASE_URL not set, using in-memory bookings and roles; admin API denies everyone until DEV_ADMIN_USER_ID is set")
		}
		roles = memRoles
	}

	var revoker auth.Revoker
	if deps.Redis != nil {
		revoker = auth.NewRedisRevoker(deps.Redis)
	} else {
		revoker = auth.NewMemoryRevoker()
	}

	policy := bookings.PolicyUnrestricted
	if cfg.StrictStatusTransitions {
		policy = bookings.PolicyStrict
	}
	opts := []bookings.Option{bookings.WithPolicy(policy), bookings.WithMetrics(m)}
	if n := notify.NewStaffNotifier(deps.Email, cfg.StaffNotifyEmail, cfg.ClinicName, logger); n != nil {
		opts = append(opts, bookings.WithNotifier(n))
	}
	svc := bookings.NewService(repo, composer, logger, opts...)

	verifier := auth.NewVerifier(cfg.AdminJWTSecret, revoker)
	guard := auth.NewGuard(roles, m, logger)

	checks := map[string]handlers.Pinger{}
	if deps.Pool != nil {
		checks["postgres"] = deps.Pool
	}
	if deps.Redis != nil {
		checks["redis"] = handlers.PingFunc(func(ctx context.Context) error { return deps.Redis.Ping(ctx).Err() })
	}

	h := router.New(&router.Config{
		Logger:             logger,
		Health:             handlers.NewHealthHandler(checks),
		CatalogHandler:     catalog.NewHandler(cat, logger),
		BookingsHandler:    bookings.NewHandler(svc, cat, cfg.Location(), logger),
		AdminBookings:      handlers.NewAdminBookingsHandler(svc, verifier, logger),
		Sessions:           verifier,
		AdminGuard:         guard,
		MetricsHandler:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	return &App{
		Handler:  h,
		Bookings: svc,
		Guard:    guard,
		Verifier: verifier,
		Roles:    roles,
		Catalog:  cat,
	}
}
