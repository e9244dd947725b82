package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RoleAdmin grants access to the booking dashboard.
const RoleAdmin = "admin"

// RoleStore answers whether a user holds a role assignment row.
type RoleStore interface {
	HasRole(ctx context.Context, userID, role string) (bool, error)
}

// RowQuerier is the subset of *pgxpool.Pool used by PostgresRoleStore.
type RowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRoleStore reads the user_roles table.
type PostgresRoleStore struct {
	pool RowQuerier
}

// NewPostgresRoleStore creates a role store backed by pgx.
func NewPostgresRoleStore(pool RowQuerier) *PostgresRoleStore {
	if pool == nil {
		panic("auth: pgx pool required")
	}
	return &PostgresRoleStore{pool: pool}
}

// HasRole reports whether (userID, role) exists. Malformed user ids have no roles.
func (s *PostgresRoleStore) HasRole(ctx context.Context, userID, role string) (bool, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return false, nil
	}
	var one int
	err = s.pool.QueryRow(ctx, `SELECT 1 FROM user_roles WHERE user_id = $1 AND role = $2 LIMIT 1`, uid, role).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("auth: role lookup failed: %w", err)
	}
	return true, nil
}

// InMemoryRoleStore holds role rows in memory.
type InMemoryRoleStore struct {
	mu    sync.RWMutex
	roles map[string]map[string]bool
}

// NewInMemoryRoleStore creates an empty store.
func NewInMemoryRoleStore() *InMemoryRoleStore {
	return &InMemoryRoleStore{roles: make(map[string]map[string]bool)}
}

// Grant adds a role row.
func (s *InMemoryRoleStore) Grant(userID, role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.roles[userID] == nil {
		s.roles[userID] = make(map[string]bool)
	}
	s.roles[userID][role] = true
}

func (s *InMemoryRoleStore) HasRole(_ context.Context, userID, role string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roles[userID][role], nil
}
