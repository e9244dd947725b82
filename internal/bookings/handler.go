package bookings

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/flexora/physio-booking/internal/catalog"
	"github.com/flexora/physio-booking/pkg/logging"
)

// Handler serves the public booking endpoints.
type Handler struct {
	service  *Service
	catalog  *catalog.Catalog
	location *time.Location
	now      func() time.Time
	logger   *logging.Logger
}

// NewHandler creates a booking handler. loc is the clinic timezone used for
// the earliest selectable date.
func NewHandler(service *Service, c *catalog.Catalog, loc *time.Location, logger *logging.Logger) *Handler {
	if c == nil {
		c = catalog.Default()
	}
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, catalog: c, location: loc, now: time.Now, logger: logger}
}

// SubmitBookingResponse is returned for a valid booking request.
type SubmitBookingResponse struct {
	Booking     *Booking `json:"booking,omitempty"`
	Message     string   `json:"message"`
	WhatsAppURL string   `json:"whatsapp_url"`
	Persisted   bool     `json:"persisted"`
}

// SubmitBooking handles POST /api/bookings. The caller navigates to
// whatsapp_url to complete the hand-off.
func (h *Handler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	var form Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.logger.Warn("failed to decode booking form", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	sub, err := h.service.Submit(r.Context(), form)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":   "Please fill in all required fields",
				"missing": verr.Missing,
			})
			return
		}
		h.logger.Error("failed to compose booking", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Could not prepare your booking, please try again"})
		return
	}

	writeJSON(w, http.StatusCreated, SubmitBookingResponse{
		Booking:     sub.Booking,
		Message:     sub.Message,
		WhatsAppURL: sub.WhatsAppURL,
		Persisted:   sub.Persisted,
	})
}

// ServiceOption is a selectable service on the booking form.
type ServiceOption struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// BookingOptionsResponse feeds the booking form.
type BookingOptionsResponse struct {
	Services []ServiceOption `json:"services"`
	MinDate  string          `json:"min_date"`
	ChatURL  string          `json:"chat_url"`
}

// BookingOptions handles GET /api/booking/options.
func (h *Handler) BookingOptions(w http.ResponseWriter, r *http.Request) {
	all := h.catalog.All()
	opts := make([]ServiceOption, 0, len(all))
	for _, svc := range all {
		opts = append(opts, ServiceOption{ID: svc.ID, Name: svc.Name, Price: svc.Price})
	}
	writeJSON(w, http.StatusOK, BookingOptionsResponse{
		Services: opts,
		MinDate:  h.now().In(h.location).Format("2006-01-02"),
		ChatURL:  h.service.Composer().ChatURL(),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
