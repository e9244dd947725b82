package notify

import (
	"context"
	"fmt"

	"github.com/flexora/physio-booking/internal/bookings"
	"github.com/flexora/physio-booking/internal/messaging/templates"
	"github.com/flexora/physio-booking/pkg/logging"
)

var (
	staffSubject = templates.MustParse("booking_subject",
		`New booking request: {{.Booking.FullName}} ({{.Booking.ServiceName}})`)
	staffBody = templates.MustParse("booking_body", `{{.Message}}

Booking ID: {{.Booking.ID}}
Status: {{.Booking.Status}}
Received: {{.Received}}
`)
)

// StaffNotifier emails the clinic inbox whenever a booking request is
// recorded.
type StaffNotifier struct {
	sender EmailSender
	to     string
	clinic string
	logger *logging.Logger
}

// NewStaffNotifier returns nil when there is no sender or no recipient, so
// the bookings service simply skips notification.
func NewStaffNotifier(sender EmailSender, to, clinic string, logger *logging.Logger) *StaffNotifier {
	if sender == nil || to == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &StaffNotifier{sender: sender, to: to, clinic: clinic, logger: logger}
}

// NotifyBookingRequested implements bookings.Notifier.
func (n *StaffNotifier) NotifyBookingRequested(ctx context.Context, b bookings.Booking, message string) error {
	data := struct {
		Booking  bookings.Booking
		Message  string
		Received string
	}{Booking: b, Message: message, Received: b.CreatedAt.Format("2006-01-02 15:04 MST")}

	subject, err := staffSubject.Render(data)
	if err != nil {
		return fmt.Errorf("notify: render subject: %w", err)
	}
	body, err := staffBody.Render(data)
	if err != nil {
		return fmt.Errorf("notify: render body: %w", err)
	}

	n.logger.Debug("sending staff booking notification", "booking_id", b.ID, "to", n.to)
	return n.sender.Send(ctx, EmailMessage{To: n.to, ToName: n.clinic, Subject: subject, Body: body})
}

var _ bookings.Notifier = (*StaffNotifier)(nil)
