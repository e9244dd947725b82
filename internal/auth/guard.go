package auth

import (
	"context"

	"github.com/flexora/physio-booking/internal/observability/metrics"
	"github.com/flexora/physio-booking/pkg/logging"
)

const (
	// LoginPath is where callers without a session are sent.
	LoginPath = "/admin/login"
	// RootPath is where signed-in users without the admin role are sent.
	RootPath = "/"
)

// Decision is the guard's verdict for one page load or request.
type Decision struct {
	Allowed  bool
	Redirect string
	Notice   string
	Reason   string
}

// Guard checks that a session belongs to an admin. It keeps no state between
// calls: every Authorize queries the role store.
type Guard struct {
	roles   RoleStore
	metrics *metrics.BookingMetrics
	logger  *logging.Logger
}

// NewGuard creates a guard over the given role store.
func NewGuard(roles RoleStore, m *metrics.BookingMetrics, logger *logging.Logger) *Guard {
	if roles == nil {
		panic("auth: role store required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Guard{roles: roles, metrics: m, logger: logger}
}

// Authorize runs session check then role check, in that order.
func (g *Guard) Authorize(ctx context.Context, s *Session) Decision {
	d := g.decide(ctx, s)
	g.metrics.ObserveAdminAccess(d.Reason)
	return d
}

func (g *Guard) decide(ctx context.Context, s *Session) Decision {
	if s == nil || s.UserID == "" {
		return Decision{Redirect: LoginPath, Notice: "Please sign in to continue", Reason: "no_session"}
	}

	ok, err := g.roles.HasRole(ctx, s.UserID, RoleAdmin)
	if err != nil {
		g.logger.Error("admin role lookup failed", "error", err, "user_id", s.UserID)
		return Decision{Redirect: RootPath, Notice: "Access denied. Admin privileges required.", Reason: "role_error"}
	}
	if !ok {
		g.logger.Warn("admin access denied", "user_id", s.UserID)
		return Decision{Redirect: RootPath, Notice: "Access denied. Admin privileges required.", Reason: "not_admin"}
	}
	return Decision{Allowed: true, Reason: "allowed"}
}
