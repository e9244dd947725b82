package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flexora/physio-booking/internal/auth"
)

const testSecret = "secret"

func adminStack(t *testing.T, roles *auth.InMemoryRoleStore) (http.Handler, *bool) {
	t.Helper()
	verifier := auth.NewVerifier(testSecret, auth.NewMemoryRevoker())
	guard := auth.NewGuard(roles, nil, nil)

	called := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		s, ok := auth.SessionFromContext(r.Context())
		require.True(t, ok)
		_, _ = w.Write([]byte(s.UserID))
	})
	return Session(verifier)(RequireAdmin(guard)(inner)), &called
}

func decodeDenied(t *testing.T, rec *httptest.ResponseRecorder) deniedResponse {
	t.Helper()
	var body deniedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequireAdminWithoutSession(t *testing.T) {
	h, called := adminStack(t, auth.NewInMemoryRoleStore())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/api/bookings", nil))

	assert.False(t, *called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, auth.LoginPath, rec.Header().Get("Location"))
	body := decodeDenied(t, rec)
	assert.Equal(t, auth.LoginPath, body.Redirect)
	assert.NotEmpty(t, body.Error)
}

func TestRequireAdminInvalidTokenTreatedAsNoSession(t *testing.T) {
	h, called := adminStack(t, auth.NewInMemoryRoleStore())
	raw, err := auth.IssueToken("wrong", "u1", "", time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/api/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.False(t, *called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdminNonAdmin(t *testing.T) {
	h, called := adminStack(t, auth.NewInMemoryRoleStore())
	raw, err := auth.IssueToken(testSecret, "visitor", "", time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/api/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.False(t, *called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, auth.RootPath, rec.Header().Get("Location"))
	assert.Equal(t, auth.RootPath, decodeDenied(t, rec).Redirect)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	roles := auth.NewInMemoryRoleStore()
	roles.Grant("admin-1", auth.RoleAdmin)
	h, called := adminStack(t, roles)
	raw, err := auth.IssueToken(testSecret, "admin-1", "admin@flexora.in", time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/api/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.True(t, *called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin-1", rec.Body.String())
}

type staticGuard struct{ d auth.Decision }

func (g staticGuard) Authorize(context.Context, *auth.Session) auth.Decision { return g.d }

func TestRequireAdminRoleErrorIsForbidden(t *testing.T) {
	h := RequireAdmin(staticGuard{d: auth.Decision{Redirect: auth.RootPath, Notice: "Access denied. Admin privileges required."}})(okHandler(nil))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/api/bookings", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
