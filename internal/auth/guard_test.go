package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingRoles struct {
	ok    bool
	err   error
	calls int
}

func (c *countingRoles) HasRole(context.Context, string, string) (bool, error) {
	c.calls++
	return c.ok, c.err
}

func TestGuardNoSessionRedirectsToLogin(t *testing.T) {
	roles := &countingRoles{ok: true}
	d := NewGuard(roles, nil, nil).Authorize(context.Background(), nil)

	assert.False(t, d.Allowed)
	assert.Equal(t, LoginPath, d.Redirect)
	assert.NotEmpty(t, d.Notice)
	assert.Zero(t, roles.calls, "role store must not be queried without a session")
}

func TestGuardMissingRoleRedirectsToRoot(t *testing.T) {
	d := NewGuard(&countingRoles{ok: false}, nil, nil).Authorize(context.Background(), &Session{UserID: "u1"})
	assert.False(t, d.Allowed)
	assert.Equal(t, RootPath, d.Redirect)
	assert.Equal(t, "not_admin", d.Reason)
}

func TestGuardRoleErrorIsDenied(t *testing.T) {
	d := NewGuard(&countingRoles{ok: true, err: errors.New("boom")}, nil, nil).Authorize(context.Background(), &Session{UserID: "u1"})
	assert.False(t, d.Allowed)
	assert.Equal(t, RootPath, d.Redirect)
	assert.Equal(t, "role_error", d.Reason)
}

func TestGuardAllowsAdminAndNeverCaches(t *testing.T) {
	roles := &countingRoles{ok: true}
	g := NewGuard(roles, nil, nil)
	s := &Session{UserID: "u1"}

	assert.True(t, g.Authorize(context.Background(), s).Allowed)
	assert.True(t, g.Authorize(context.Background(), s).Allowed)
	assert.Equal(t, 2, roles.calls)

	roles.ok = false
	assert.False(t, g.Authorize(context.Background(), s).Allowed, "revoked role must take effect on the next check")
}
