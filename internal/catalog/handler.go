package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/flexora/physio-booking/pkg/logging"
	"github.com/go-chi/chi/v5"
)

// Handler serves the public service catalog.
type Handler struct {
	catalog *Catalog
	logger  *logging.Logger
}

// NewHandler creates a catalog handler.
func NewHandler(c *Catalog, logger *logging.Logger) *Handler {
	if c == nil {
		c = Default()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{catalog: c, logger: logger}
}

// ListServicesResponse is the body of GET /api/services.
type ListServicesResponse struct {
	Services []Service `json:"services"`
	Count    int       `json:"count"`
}

// ListServices handles GET /api/services.
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	services := h.catalog.All()
	writeJSON(w, http.StatusOK, ListServicesResponse{Services: services, Count: len(services)})
}

// GetService handles GET /api/services/{serviceID}.
func (h *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "serviceID")
	svc, ok := h.catalog.Lookup(id)
	if !ok {
		h.logger.Debug("catalog: unknown service", "service_id", id)
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "service not found"})
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
