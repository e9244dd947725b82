package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

var bookingColumns = []string{
	"id", "full_name", "phone", "email", "service_id", "service_name", "price",
	"preferred_date", "preferred_time", "message", "status", "created_at",
}

func strPtr(s string) *string { return &s }

func TestPostgresCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepository(mock)
	id := uuid.NewString()
	created := time.Date(2025, 2, 20, 8, 0, 0, 0, time.UTC)
	email := strPtr("asha@example.com")

	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs("Asha Rao", "9000000000", email, "back-pain", "Back Pain Relief", 400, "2025-03-01", "10:00", (*string)(nil), "pending").
		WillReturnRows(pgxmock.NewRows(bookingColumns).AddRow(
			id, "Asha Rao", "9000000000", email, "back-pain", "Back Pain Relief", 400,
			"2025-03-01", "10:00", (*string)(nil), "pending", created,
		))

	b, err := repo.Create(context.Background(), NewBooking{
		FullName:      "Asha Rao",
		Phone:         "9000000000",
		Email:         email,
		ServiceID:     "back-pain",
		ServiceName:   "Back Pain Relief",
		Price:         400,
		PreferredDate: "2025-03-01",
		PreferredTime: "10:00",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.ID != id || b.Status != StatusPending || !b.CreatedAt.Equal(created) {
		t.Fatalf("unexpected booking %+v", b)
	}
	if b.Message != nil {
		t.Fatalf("expected nil message")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresListNewestFirst(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	newer := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	older := newer.Add(-24 * time.Hour)
	rows := pgxmock.NewRows(bookingColumns).
		AddRow("b2", "Ravi", "9111111111", (*string)(nil), "paralysis", "Paralysis Treatment", 500, "2025-03-05", "11:30", strPtr("first visit"), "confirmed", newer).
		AddRow("b1", "Asha", "9000000000", strPtr("a@x.in"), "back-pain", "Back Pain Relief", 400, "2025-03-01", "10:00", (*string)(nil), "pending", older)
	mock.ExpectQuery("SELECT (.+) FROM bookings ORDER BY created_at DESC").WillReturnRows(rows)

	list, err := NewPostgresRepository(mock).ListNewestFirst(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != "b2" || list[1].ID != "b1" {
		t.Fatalf("unexpected list %+v", list)
	}
	if list[0].Status != StatusConfirmed || list[0].Message == nil || *list[0].Message != "first visit" {
		t.Fatalf("unexpected first row %+v", list[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresListError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM bookings").WillReturnError(errors.New("connection reset"))
	if _, err := NewPostgresRepository(mock).ListNewestFirst(context.Background()); err == nil {
		t.Fatalf("expected list error")
	}
}

func TestPostgresUpdateStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepository(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs("confirmed", id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	if err := repo.UpdateStatus(context.Background(), id.String(), StatusConfirmed); err != nil {
		t.Fatalf("update: %v", err)
	}

	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs("cancelled", id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	if err := repo.UpdateStatus(context.Background(), id.String(), StatusCancelled); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}

	if err := repo.UpdateStatus(context.Background(), "not-a-uuid", StatusCancelled); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound for malformed id, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByIDNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	id := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(bookingColumns))
	if _, err := NewPostgresRepository(mock).GetByID(context.Background(), id.String()); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}
