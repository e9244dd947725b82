package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/flexora/physio-booking/internal/auth"
	"github.com/flexora/physio-booking/internal/bookings"
	"github.com/flexora/physio-booking/internal/catalog"
	"github.com/flexora/physio-booking/internal/http/handlers"
	"github.com/flexora/physio-booking/internal/observability/metrics"
	"github.com/flexora/physio-booking/pkg/logging"
)

const testSecret = "router-secret"

type testEnv struct {
	router http.Handler
	repo   *bookings.InMemoryRepository
}

func newTestRouter(t *testing.T) *testEnv {
	t.Helper()

	logger := logging.Default()
	reg := prometheus.NewRegistry()
	m := metrics.NewBookingMetrics(reg)
	cat := catalog.Default()
	repo := bookings.NewInMemoryRepository()
	svc := bookings.NewService(repo, bookings.NewComposer(cat, "wa.me", "7086484190"), logger, bookings.WithMetrics(m))

	roles := auth.NewInMemoryRoleStore()
	roles.Grant("admin-1", auth.RoleAdmin)
	verifier := auth.NewVerifier(testSecret, auth.NewMemoryRevoker())

	cfg := &Config{
		Logger:          logger,
		Health:          handlers.NewHealthHandler(nil),
		CatalogHandler:  catalog.NewHandler(cat, logger),
		BookingsHandler: bookings.NewHandler(svc, cat, time.UTC, logger),
		AdminBookings:   handlers.NewAdminBookingsHandler(svc, verifier, logger),
		Sessions:        verifier,
		AdminGuard:      auth.NewGuard(roles, m, logger),
		MetricsHandler:  promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	}
	return &testEnv{router: New(cfg), repo: repo}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func token(t *testing.T, userID string) string {
	t.Helper()
	raw, err := auth.IssueToken(testSecret, userID, userID+"@flexora.in", time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return raw
}

func TestRouterHealthEndpoint(t *testing.T) {
	env := newTestRouter(t)
	rr := env.do(t, http.MethodGet, "/health", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

func TestRouterServices(t *testing.T) {
	env := newTestRouter(t)

	rr := env.do(t, http.MethodGet, "/api/services", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var list catalog.ListServicesResponse
	if err := json.NewDecoder(rr.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if list.Count != 10 {
		t.Fatalf("expected 10 services, got %d", list.Count)
	}

	if rr := env.do(t, http.MethodGet, "/api/services/tennis-elbow", "", nil); rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for known service, got %d", rr.Code)
	}
	if rr := env.do(t, http.MethodGet, "/api/services/massage", "", nil); rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown service, got %d", rr.Code)
	}
}

func TestRouterBookingToDashboardFlow(t *testing.T) {
	env := newTestRouter(t)

	rr := env.do(t, http.MethodPost, "/api/bookings", "", map[string]string{
		"full_name": "Asha Rao",
		"phone":     "9000000000",
		"service":   "back-pain",
		"date":      "2026-11-01",
		"time":      "10:00",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var sub bookings.SubmitBookingResponse
	if err := json.NewDecoder(rr.Body).Decode(&sub); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(sub.WhatsAppURL, "https://wa.me/7086484190?text=") {
		t.Fatalf("unexpected link %q", sub.WhatsAppURL)
	}

	if rr := env.do(t, http.MethodGet, "/admin/api/bookings", "", nil); rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rr.Code)
	}
	if rr := env.do(t, http.MethodGet, "/admin/api/bookings", token(t, "visitor"), nil); rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", rr.Code)
	}

	admin := token(t, "admin-1")
	rr = env.do(t, http.MethodGet, "/admin/api/bookings", admin, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", rr.Code)
	}
	var list handlers.AdminBookingsResponse
	if err := json.NewDecoder(rr.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if list.Count != 1 || list.Bookings[0].Status != bookings.StatusPending {
		t.Fatalf("unexpected list %+v", list)
	}

	id := list.Bookings[0].ID
	rr = env.do(t, http.MethodPatch, "/admin/api/bookings/"+id+"/status", admin, map[string]string{"status": "confirmed"})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 on status update, got %d: %s", rr.Code, rr.Body.String())
	}
	stored, err := env.repo.GetByID(t.Context(), id)
	if err != nil || stored.Status != bookings.StatusConfirmed {
		t.Fatalf("expected stored status confirmed, got %+v %v", stored, err)
	}

	if rr := env.do(t, http.MethodPost, "/admin/api/logout", admin, nil); rr.Code != http.StatusOK {
		t.Fatalf("expected 200 on logout, got %d", rr.Code)
	}
	if rr := env.do(t, http.MethodGet, "/admin/api/bookings", admin, nil); rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected revoked token to be rejected, got %d", rr.Code)
	}
}

func TestRouterMetricsEndpoint(t *testing.T) {
	env := newTestRouter(t)
	env.do(t, http.MethodPost, "/api/bookings", "", map[string]string{"full_name": "x"})

	rr := env.do(t, http.MethodGet, "/metrics", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "flexora_") {
		t.Fatalf("expected flexora metrics in output")
	}
}
