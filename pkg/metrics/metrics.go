package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the Prometheus collectors for the service.
// HTTP metrics are driven by the middleware, business metrics by the
// use cases.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsCreatedTotal   *prometheus.CounterVec
	BookingRejectionsTotal *prometheus.CounterVec
	RelayFailuresTotal     prometheus.Counter
	LedgerSize             prometheus.Gauge
}

// BookingCreated counts an accepted booking
func (m *Metrics) BookingCreated(category string) {
	m.BookingsCreatedTotal.WithLabelValues(category).Inc()
}

// BookingRejected counts a rejected submission
func (m *Metrics) BookingRejected(reason string) {
	m.BookingRejectionsTotal.WithLabelValues(reason).Inc()
}

// RelayFailed counts a booking that was accepted locally but could not
// be relayed to the sheet
func (m *Metrics) RelayFailed() {
	m.RelayFailuresTotal.Inc()
}

// SetLedgerSize records the current ledger entry count
func (m *Metrics) SetLedgerSize(n int) {
	m.LedgerSize.Set(float64(n))
}

// Nop is a no-op drop-in for the business metrics methods, used when
// metrics are disabled.
type Nop struct{}

func (Nop) BookingCreated(string)  {}
func (Nop) BookingRejected(string) {}
func (Nop) RelayFailed()           {}
func (Nop) SetLedgerSize(int)      {}

// New registers and returns the service metrics
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		BookingsCreatedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Accepted bookings by offering category",
			ConstLabels: constLabels,
		}, []string{"category"}),

		BookingRejectionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_rejections_total",
			Help:        "Rejected booking submissions by reason",
			ConstLabels: constLabels,
		}, []string{"reason"}),

		RelayFailuresTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "sheet_relay_failures_total",
			Help:        "Bookings accepted locally but not relayed to the sheet",
			ConstLabels: constLabels,
		}),

		LedgerSize: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "ledger_entries",
			Help:        "Number of bookings currently held in the in-memory ledger",
			ConstLabels: constLabels,
		}),
	}
}
