package bookings

import (
	"fmt"
	"strings"
	"time"
)

// Status is the lifecycle state of a booking row.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

// ParseStatus accepts only the four known statuses (case-insensitive).
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// Booking mirrors a row of the bookings table. ServiceName and Price are
// captured at submission time and never re-derived from the catalog.
type Booking struct {
	ID            string    `json:"id"`
	FullName      string    `json:"full_name"`
	Phone         string    `json:"phone"`
	Email         *string   `json:"email"`
	ServiceID     string    `json:"service_id"`
	ServiceName   string    `json:"service_name"`
	Price         int       `json:"price"`
	PreferredDate string    `json:"preferred_date"`
	PreferredTime string    `json:"preferred_time"`
	Message       *string   `json:"message"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewBooking carries the columns supplied on insert; the store assigns id
// and created_at.
type NewBooking struct {
	FullName      string
	Phone         string
	Email         *string
	ServiceID     string
	ServiceName   string
	Price         int
	PreferredDate string
	PreferredTime string
	Message       *string
	Status        Status
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
