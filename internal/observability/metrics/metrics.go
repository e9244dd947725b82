package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters for the booking and admin flows.
type BookingMetrics struct {
	submissionsTotal   *prometheus.CounterVec
	statusUpdatesTotal *prometheus.CounterVec
	adminAccessTotal   *prometheus.CounterVec
	storeLatency       *prometheus.HistogramVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flexora",
			Subsystem: "bookings",
			Name:      "submissions_total",
			Help:      "Booking form submissions by outcome",
		}, []string{"result"}),
		statusUpdatesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flexora",
			Subsystem: "bookings",
			Name:      "status_updates_total",
			Help:      "Admin status updates by target status and outcome",
		}, []string{"status", "result"}),
		adminAccessTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flexora",
			Subsystem: "admin",
			Name:      "access_checks_total",
			Help:      "Admin guard decisions",
		}, []string{"decision"}),
		storeLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "flexora",
			Subsystem: "bookings",
			Name:      "store_latency_seconds",
			Help:      "Latency of booking store calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.statusUpdatesTotal, m.adminAccessTotal, m.storeLatency)
	return m
}

// ObserveSubmission records one form submission; result is e.g. "persisted",
// "handoff_only" or "invalid".
func (m *BookingMetrics) ObserveSubmission(result string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(result).Inc()
}

func (m *BookingMetrics) ObserveStatusUpdate(status string, ok bool) {
	if m == nil {
		return
	}
	result := "error"
	if ok {
		result = "ok"
	}
	m.statusUpdatesTotal.WithLabelValues(status, result).Inc()
}

func (m *BookingMetrics) ObserveAdminAccess(decision string) {
	if m == nil {
		return
	}
	m.adminAccessTotal.WithLabelValues(decision).Inc()
}

func (m *BookingMetrics) ObserveStoreLatency(op string, seconds float64) {
	if m == nil {
		return
	}
	m.storeLatency.WithLabelValues(op).Observe(seconds)
}
