package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/flexora/physio-booking/internal/auth"
	"github.com/flexora/physio-booking/internal/bookings"
	"github.com/flexora/physio-booking/pkg/logging"
)

// BookingAdmin is the subset of the bookings service used by the admin API.
type BookingAdmin interface {
	List(ctx context.Context) ([]bookings.Booking, error)
	UpdateStatus(ctx context.Context, id string, status bookings.Status) error
}

// SignOuter revokes a session.
type SignOuter interface {
	SignOut(ctx context.Context, s *auth.Session) error
}

// AdminBookingsHandler serves the dashboard's list, status and logout calls.
type AdminBookingsHandler struct {
	bookings BookingAdmin
	sessions SignOuter
	logger   *logging.Logger
}

// NewAdminBookingsHandler creates a new admin bookings handler.
func NewAdminBookingsHandler(b BookingAdmin, sessions SignOuter, logger *logging.Logger) *AdminBookingsHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AdminBookingsHandler{bookings: b, sessions: sessions, logger: logger}
}

// AdminBookingsResponse is the payload of GET /admin/api/bookings.
type AdminBookingsResponse struct {
	Bookings []bookings.Booking `json:"bookings"`
	Count    int                `json:"count"`
}

// UpdateStatusRequest is the body of PATCH /admin/api/bookings/{bookingID}/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatusResponse confirms a status write.
type UpdateStatusResponse struct {
	ID      string          `json:"id"`
	Status  bookings.Status `json:"status"`
	Message string          `json:"message"`
}

// ListBookings returns every booking, newest first.
func (h *AdminBookingsHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	rows, err := h.bookings.List(r.Context())
	if err != nil {
		h.logger.Error("failed to load bookings", "error", err)
		jsonError(w, "Failed to load bookings", http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []bookings.Booking{}
	}
	writeJSON(w, http.StatusOK, AdminBookingsResponse{Bookings: rows, Count: len(rows)})
}

// UpdateStatus sets one booking's status.
func (h *AdminBookingsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "bookingID"))
	if id == "" {
		jsonError(w, "booking id required", http.StatusBadRequest)
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	status, err := bookings.ParseStatus(req.Status)
	if err != nil {
		jsonError(w, "Invalid status", http.StatusBadRequest)
		return
	}

	err = h.bookings.UpdateStatus(r.Context(), id, status)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, UpdateStatusResponse{ID: id, Status: status, Message: "Booking status updated"})
	case errors.Is(err, bookings.ErrBookingNotFound):
		jsonError(w, "Booking not found", http.StatusNotFound)
	case errors.Is(err, bookings.ErrIllegalTransition):
		jsonError(w, "Status change not allowed", http.StatusConflict)
	case errors.Is(err, bookings.ErrInvalidStatus):
		jsonError(w, "Invalid status", http.StatusBadRequest)
	default:
		jsonError(w, "Failed to update status", http.StatusInternalServerError)
	}
}

// Logout revokes the caller's token.
func (h *AdminBookingsHandler) Logout(w http.ResponseWriter, r *http.Request) {
	s, ok := auth.SessionFromContext(r.Context())
	if !ok {
		jsonError(w, "Please sign in to continue", http.StatusUnauthorized)
		return
	}
	if h.sessions != nil {
		if err := h.sessions.SignOut(r.Context(), s); err != nil {
			h.logger.Error("failed to sign out", "error", err, "user_id", s.UserID)
			jsonError(w, "Failed to logout", http.StatusInternalServerError)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully", "redirect": auth.LoginPath})
}
