package bookings

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the booking table operations.
type Repository interface {
	Create(ctx context.Context, nb NewBooking) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	ListNewestFirst(ctx context.Context) ([]Booking, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}

// InMemoryRepository keeps bookings in process memory. It backs local
// development when no DATABASE_URL is configured.
type InMemoryRepository struct {
	mu       sync.RWMutex
	bookings map[string]*Booking
	now      func() time.Time
}

// NewInMemoryRepository creates an empty in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		bookings: make(map[string]*Booking),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a new booking. Status defaults to pending.
func (r *InMemoryRepository) Create(ctx context.Context, nb NewBooking) (*Booking, error) {
	if nb.Status == "" {
		nb.Status = StatusPending
	}
	b := &Booking{
		ID:            uuid.New().String(),
		FullName:      nb.FullName,
		Phone:         nb.Phone,
		Email:         nb.Email,
		ServiceID:     nb.ServiceID,
		ServiceName:   nb.ServiceName,
		Price:         nb.Price,
		PreferredDate: nb.PreferredDate,
		PreferredTime: nb.PreferredTime,
		Message:       nb.Message,
		Status:        nb.Status,
		CreatedAt:     r.now(),
	}

	r.mu.Lock()
	r.bookings[b.ID] = b
	r.mu.Unlock()

	out := *b
	return &out, nil
}

// Put inserts or replaces a fully formed booking.
func (r *InMemoryRepository) Put(b Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[b.ID] = &b
}

// GetByID returns a copy of the booking.
func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	out := *b
	return &out, nil
}

// ListNewestFirst returns every booking ordered by created_at descending.
func (r *InMemoryRepository) ListNewestFirst(ctx context.Context) ([]Booking, error) {
	r.mu.RLock()
	out := make([]Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// UpdateStatus sets the status of one booking.
func (r *InMemoryRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return ErrBookingNotFound
	}
	b.Status = status
	return nil
}
