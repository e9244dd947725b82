package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/flexora/physio-booking/internal/auth"
)

// SessionResolver turns a request into a verified session.
type SessionResolver interface {
	SessionFromRequest(r *http.Request) (*auth.Session, error)
}

// AdminAuthorizer decides whether a session may use the admin API.
type AdminAuthorizer interface {
	Authorize(ctx context.Context, s *auth.Session) auth.Decision
}

// Session attaches the bearer token's session to the request context when the
// token verifies. Requests without a usable token pass through untouched so
// the guard can decide where to send them.
func Session(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := resolver.SessionFromRequest(r)
			if err == nil && s != nil {
				r = r.WithContext(auth.WithSession(r.Context(), s))
			}
			next.ServeHTTP(w, r)
		})
	}
}

type deniedResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect"`
}

// RequireAdmin runs the guard for every request. Denied callers get a JSON
// body naming the redirect target, 401 without a session and 403 otherwise.
func RequireAdmin(guard AdminAuthorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, _ := auth.SessionFromContext(r.Context())
			d := guard.Authorize(r.Context(), s)
			if d.Allowed {
				next.ServeHTTP(w, r)
				return
			}

			status := http.StatusForbidden
			if d.Redirect == auth.LoginPath {
				status = http.StatusUnauthorized
			}
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Location", d.Redirect)
			w.WriteHeader(status)
			_ = json.NewEncoder(w).Encode(deniedResponse{Error: d.Notice, Redirect: d.Redirect})
		})
	}
}
