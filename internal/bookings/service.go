package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/flexora/physio-booking/internal/observability/metrics"
	"github.com/flexora/physio-booking/pkg/logging"
)

var bookingsTracer = otel.Tracer("flexora.internal.bookings")

// Notifier is told about newly recorded booking requests.
type Notifier interface {
	NotifyBookingRequested(ctx context.Context, b Booking, message string) error
}

// Submission is the outcome of a booking form post.
type Submission struct {
	Booking     *Booking
	Message     string
	WhatsAppURL string
	Persisted   bool
}

// Service composes hand-off links, records booking requests and applies
// admin status changes.
type Service struct {
	repo     Repository
	composer *Composer
	notifier Notifier
	policy   Policy
	metrics  *metrics.BookingMetrics
	logger   *logging.Logger
}

// Option customizes a Service.
type Option func(*Service)

// WithNotifier sends staff notifications for recorded bookings.
func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithPolicy selects the status transition policy.
func WithPolicy(p Policy) Option {
	return func(s *Service) { s.policy = p }
}

// WithMetrics records counters for submissions and updates.
func WithMetrics(m *metrics.BookingMetrics) Option {
	return func(s *Service) { s.metrics = m }
}

// NewService constructs a bookings service.
func NewService(repo Repository, composer *Composer, logger *logging.Logger, opts ...Option) *Service {
	if repo == nil {
		panic("bookings: repository required")
	}
	if composer == nil {
		panic("bookings: composer required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	s := &Service{repo: repo, composer: composer, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Composer exposes the message composer used by the service.
func (s *Service) Composer() *Composer {
	return s.composer
}

// Submit validates the form and builds the WhatsApp hand-off. A valid
// request for a catalog service is also recorded as a pending booking; a
// storage failure is logged and the hand-off is still returned.
func (s *Service) Submit(ctx context.Context, f Form) (*Submission, error) {
	ctx, span := bookingsTracer.Start(ctx, "bookings.submit")
	defer span.End()

	comp, err := s.composer.Compose(f)
	if err != nil {
		s.metrics.ObserveSubmission("invalid")
		return nil, err
	}
	span.SetAttributes(attribute.String("flexora.service_id", f.ServiceID))

	sub := &Submission{Message: comp.Message, WhatsAppURL: comp.URL}
	if !comp.KnownPrice {
		s.logger.Warn("booking for unknown service not recorded", "service_id", f.ServiceID)
		s.metrics.ObserveSubmission("handoff_only")
		return sub, nil
	}

	start := time.Now()
	row, err := s.repo.Create(ctx, NewBooking{
		FullName:      f.FullName,
		Phone:         f.Phone,
		Email:         optional(f.Email),
		ServiceID:     comp.Service.ID,
		ServiceName:   comp.Service.Name,
		Price:         comp.Service.Price,
		PreferredDate: f.Date,
		PreferredTime: f.Time,
		Message:       optional(f.Message),
		Status:        StatusPending,
	})
	s.metrics.ObserveStoreLatency("create", time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		s.logger.Error("failed to record booking", "error", err, "service_id", f.ServiceID)
		s.metrics.ObserveSubmission("handoff_only")
		return sub, nil
	}

	sub.Booking = row
	sub.Persisted = true
	s.metrics.ObserveSubmission("persisted")
	s.logger.Info("booking recorded", "booking_id", row.ID, "service_id", row.ServiceID)

	if s.notifier != nil {
		if err := s.notifier.NotifyBookingRequested(ctx, *row, comp.Message); err != nil {
			s.logger.Warn("booking notification failed", "error", err, "booking_id", row.ID)
		}
	}
	return sub, nil
}

// List returns every booking, newest first.
func (s *Service) List(ctx context.Context) ([]Booking, error) {
	ctx, span := bookingsTracer.Start(ctx, "bookings.list")
	defer span.End()

	start := time.Now()
	rows, err := s.repo.ListNewestFirst(ctx)
	s.metrics.ObserveStoreLatency("list", time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("flexora.bookings.count", len(rows)))
	return rows, nil
}

// UpdateStatus sets a booking's status under the configured policy. The
// status is normalized to its canonical spelling before anything is written.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) error {
	status, err := ParseStatus(string(status))
	if err != nil {
		s.metrics.ObserveStatusUpdate("invalid", false)
		return err
	}

	ctx, span := bookingsTracer.Start(ctx, "bookings.update_status", trace.WithAttributes(
		attribute.String("flexora.booking_id", id),
		attribute.String("flexora.status", string(status)),
	))
	defer span.End()

	err = s.updateStatus(ctx, id, status)
	s.metrics.ObserveStatusUpdate(string(status), err == nil)
	if err != nil {
		span.RecordError(err)
		return err
	}
	s.logger.Info("booking status updated", "booking_id", id, "status", status, "policy", s.policy.String())
	return nil
}

func (s *Service) updateStatus(ctx context.Context, id string, status Status) error {
	if s.policy.NeedsCurrent() {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !s.policy.Allows(current.Status, status) {
			return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, current.Status, status)
		}
	}

	start := time.Now()
	err := s.repo.UpdateStatus(ctx, id, status)
	s.metrics.ObserveStoreLatency("update", time.Since(start).Seconds())
	if err != nil && !errors.Is(err, ErrBookingNotFound) {
		s.logger.Error("failed to update booking status", "error", err, "booking_id", id)
	}
	return err
}
