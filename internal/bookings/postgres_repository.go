package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxPool is the subset of *pgxpool.Pool used by the store.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores bookings in the bookings table.
type PostgresRepository struct {
	pool PgxPool
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(pool PgxPool) *PostgresRepository {
	if pool == nil {
		panic("bookings: pgx pool required")
	}
	return &PostgresRepository{pool: pool}
}

const selectColumns = `
	id, full_name, phone, email, service_id, service_name, price,
	to_char(preferred_date, 'YYYY-MM-DD'), to_char(preferred_time, 'HH24:MI'),
	message, status, created_at`

// Create inserts a row and returns it with the generated id and created_at.
func (r *PostgresRepository) Create(ctx context.Context, nb NewBooking) (*Booking, error) {
	if nb.Status == "" {
		nb.Status = StatusPending
	}
	query := `
		INSERT INTO bookings (full_name, phone, email, service_id, service_name, price, preferred_date, preferred_time, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7::text::date, $8::text::time, $9, $10)
		RETURNING ` + selectColumns
	row := r.pool.QueryRow(ctx, query,
		nb.FullName,
		nb.Phone,
		nb.Email,
		nb.ServiceID,
		nb.ServiceName,
		nb.Price,
		nb.PreferredDate,
		nb.PreferredTime,
		nb.Message,
		string(nb.Status),
	)
	b, err := scanBooking(row)
	if err != nil {
		return nil, fmt.Errorf("bookings: insert failed: %w", err)
	}
	return b, nil
}

// GetByID fetches one booking.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	row := r.pool.QueryRow(ctx, `SELECT `+selectColumns+` FROM bookings WHERE id = $1`, uid)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("bookings: select failed: %w", err)
	}
	return b, nil
}

// ListNewestFirst returns every booking, newest created_at first.
func (r *PostgresRepository) ListNewestFirst(ctx context.Context) ([]Booking, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+selectColumns+` FROM bookings ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("bookings: list failed: %w", err)
	}
	defer rows.Close()

	out := []Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("bookings: scan failed: %w", err)
		}
		out = append(out, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("bookings: list failed: %w", err)
	}
	return out, nil
}

// UpdateStatus sets status on the row with the given id.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrBookingNotFound
	}
	tag, err := r.pool.Exec(ctx, `UPDATE bookings SET status = $1 WHERE id = $2`, string(status), uid)
	if err != nil {
		return fmt.Errorf("bookings: update status failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var (
		b      Booking
		status string
	)
	if err := row.Scan(
		&b.ID,
		&b.FullName,
		&b.Phone,
		&b.Email,
		&b.ServiceID,
		&b.ServiceName,
		&b.Price,
		&b.PreferredDate,
		&b.PreferredTime,
		&b.Message,
		&status,
		&b.CreatedAt,
	); err != nil {
		return nil, err
	}
	b.Status = Status(status)
	return &b, nil
}
