// Package dashboard holds the admin review screen state: guard the session,
// load bookings newest first, and apply status changes to the loaded rows.
package dashboard

import (
	"context"
	"errors"
	"sync"

	"github.com/flexora/physio-booking/internal/auth"
	"github.com/flexora/physio-booking/internal/bookings"
	"github.com/flexora/physio-booking/pkg/logging"
)

// ErrNotAuthorized is returned when the view is used before a successful Load.
var ErrNotAuthorized = errors.New("dashboard: not authorized")

// ToastKind classifies a user-facing notification.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

// Toast is a short message surfaced to the admin.
type Toast struct {
	Kind ToastKind
	Text string
}

// Notifier surfaces toasts to whoever drives the view.
type Notifier interface {
	Notify(t Toast)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Toast)

// Notify calls f(t).
func (f NotifierFunc) Notify(t Toast) { f(t) }

// Authorizer decides whether a session may see the dashboard.
type Authorizer interface {
	Authorize(ctx context.Context, s *auth.Session) auth.Decision
}

// Store loads and mutates booking rows.
type Store interface {
	List(ctx context.Context) ([]bookings.Booking, error)
	UpdateStatus(ctx context.Context, id string, status bookings.Status) error
}

// SignOuter ends a session.
type SignOuter interface {
	SignOut(ctx context.Context, s *auth.Session) error
}

// View is the in-memory state of one admin dashboard. It is owned by a single
// caller; the mutex only keeps readers consistent with a concurrent update.
type View struct {
	guard    Authorizer
	store    Store
	signOut  SignOuter
	notifier Notifier
	logger   *logging.Logger

	mu       sync.RWMutex
	session  *auth.Session
	rows     []bookings.Booking
	loaded   bool
	decision auth.Decision
}

// Option customizes a View.
type Option func(*View)

// WithSignOut enables SignOut on the view.
func WithSignOut(s SignOuter) Option {
	return func(v *View) { v.signOut = s }
}

// WithNotifier routes toasts to n.
func WithNotifier(n Notifier) Option {
	return func(v *View) { v.notifier = n }
}

// WithLogger sets the view logger.
func WithLogger(l *logging.Logger) Option {
	return func(v *View) {
		if l != nil {
			v.logger = l
		}
	}
}

// New builds an empty view.
func New(guard Authorizer, store Store, opts ...Option) *View {
	if guard == nil {
		panic("dashboard: guard required")
	}
	if store == nil {
		panic("dashboard: store required")
	}
	v := &View{
		guard:    guard,
		store:    store,
		notifier: NotifierFunc(func(Toast) {}),
		logger:   logging.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Load runs the guard and, only when access is granted, fetches the bookings.
// The returned decision carries the redirect for denied sessions. A fetch
// failure leaves the list empty; there is no retry.
func (v *View) Load(ctx context.Context, s *auth.Session) (auth.Decision, error) {
	d := v.guard.Authorize(ctx, s)

	v.mu.Lock()
	v.decision = d
	v.rows = nil
	v.loaded = false
	if !d.Allowed {
		v.session = nil
		v.mu.Unlock()
		v.notifier.Notify(Toast{Kind: ToastError, Text: d.Notice})
		return d, nil
	}
	v.session = s
	v.mu.Unlock()

	return d, v.fetch(ctx)
}

// Reload fetches the list again for the already authorized session.
func (v *View) Reload(ctx context.Context) error {
	v.mu.RLock()
	ok := v.decision.Allowed
	v.mu.RUnlock()
	if !ok {
		return ErrNotAuthorized
	}
	return v.fetch(ctx)
}

func (v *View) fetch(ctx context.Context) error {
	rows, err := v.store.List(ctx)
	if err != nil {
		v.logger.Error("failed to load bookings", "error", err)
		v.notifier.Notify(Toast{Kind: ToastError, Text: "Failed to load bookings"})
		v.mu.Lock()
		v.rows = nil
		v.loaded = false
		v.mu.Unlock()
		return err
	}

	v.mu.Lock()
	v.rows = rows
	v.loaded = true
	v.mu.Unlock()
	return nil
}

// UpdateStatus writes the new status and, only after the store confirms it,
// patches the matching loaded row. Other rows are never touched.
func (v *View) UpdateStatus(ctx context.Context, id string, status bookings.Status) error {
	v.mu.RLock()
	ok := v.decision.Allowed
	v.mu.RUnlock()
	if !ok {
		return ErrNotAuthorized
	}

	if err := v.store.UpdateStatus(ctx, id, status); err != nil {
		v.logger.Error("failed to update booking status", "error", err, "booking_id", id, "status", status)
		v.notifier.Notify(Toast{Kind: ToastError, Text: "Failed to update status"})
		return err
	}

	v.mu.Lock()
	for i := range v.rows {
		if v.rows[i].ID == id {
			v.rows[i].Status = status
		}
	}
	v.mu.Unlock()
	v.notifier.Notify(Toast{Kind: ToastSuccess, Text: "Booking status updated"})
	return nil
}

// SignOut ends the current session and clears the view.
func (v *View) SignOut(ctx context.Context) error {
	if v.signOut == nil {
		return errors.New("dashboard: sign out not configured")
	}
	v.mu.RLock()
	s := v.session
	v.mu.RUnlock()

	if err := v.signOut.SignOut(ctx, s); err != nil {
		v.notifier.Notify(Toast{Kind: ToastError, Text: "Failed to logout"})
		return err
	}

	v.mu.Lock()
	v.session = nil
	v.rows = nil
	v.loaded = false
	v.decision = auth.Decision{}
	v.mu.Unlock()
	v.notifier.Notify(Toast{Kind: ToastSuccess, Text: "Logged out successfully"})
	return nil
}

// Bookings returns a copy of the loaded rows.
func (v *View) Bookings() []bookings.Booking {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]bookings.Booking, len(v.rows))
	copy(out, v.rows)
	return out
}

// Loaded reports whether the last fetch succeeded.
func (v *View) Loaded() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.loaded
}
