package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if called != nil {
			*called = true
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORSAllowsListedOrigin(t *testing.T) {
	called := false
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
	req.Header.Set("Origin", "https://flexora.in")
	rec := httptest.NewRecorder()

	CORS([]string{"https://flexora.in/"})(okHandler(&called)).ServeHTTP(rec, req)

	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected handler to run, got called=%v status=%d", called, rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://flexora.in" {
		t.Fatalf("expected allow origin header, got %q", got)
	}
	if !strings.Contains(rec.Header().Get("Access-Control-Allow-Headers"), "X-Request-ID") {
		t.Fatalf("expected request id to be an allowed header")
	}
	if !strings.Contains(rec.Header().Get("Access-Control-Allow-Methods"), "PATCH") {
		t.Fatalf("expected PATCH to be allowed for status updates")
	}
	if !strings.Contains(rec.Header().Get("Access-Control-Expose-Headers"), "Location") {
		t.Fatalf("expected Location to be exposed for guard redirects")
	}
}

func TestCORSIgnoresUnknownOrigin(t *testing.T) {
	called := false
	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
	req.Header.Set("Origin", "https://unknown.example")
	rec := httptest.NewRecorder()

	CORS([]string{"https://flexora.in"})(okHandler(&called)).ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no allow origin header, got %q", got)
	}
	if !called {
		t.Fatalf("non-preflight requests still reach the handler")
	}
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
	req.Header.Set("Origin", "https://random.example")
	rec := httptest.NewRecorder()

	CORS([]string{" ", "*"})(okHandler(nil)).ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://random.example" {
		t.Fatalf("expected allow origin header, got %q", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	cases := []struct {
		origin string
		want   int
	}{
		{"https://flexora.in", http.StatusNoContent},
		{"https://evil.example", http.StatusForbidden},
	}
	for _, tc := range cases {
		called := false
		req := httptest.NewRequest(http.MethodOptions, "/admin/api/bookings/b1/status", nil)
		req.Header.Set("Origin", tc.origin)
		req.Header.Set("Access-Control-Request-Method", "PATCH")
		rec := httptest.NewRecorder()

		CORS([]string{"https://flexora.in"})(okHandler(&called)).ServeHTTP(rec, req)

		if called {
			t.Fatalf("%s: preflight must not reach the handler", tc.origin)
		}
		if rec.Code != tc.want {
			t.Fatalf("%s: expected status %d, got %d", tc.origin, tc.want, rec.Code)
		}
	}
}
