package metrics

import (
	"net/http"
	"vehicle-booking-service/internal/pkg/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OperationCreateBooking   = "CreateBooking"
	OperationCompleteBooking = "CompleteBooking"
)

type Metrics struct {
	success  *prometheus.CounterVec
	failures *prometheus.CounterVec
	gatherer prometheus.Gatherer
}

// New registers the booking counters on reg.
func New(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	m := &Metrics{
		success: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vehicle_booking_success_total",
				Help: "Total bookings stored and announced.",
			},
			[]string{"operation"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vehicle_booking_errors_total",
				Help: "Total failed booking requests by error kind.",
			},
			[]string{"operation", "kind"},
		),
		gatherer: gatherer,
	}
	reg.MustRegister(m.success, m.failures)
	return m
}

// NewRegistry builds Metrics on a fresh registry.
func NewRegistry() *Metrics {
	reg := prometheus.NewRegistry()
	return New(reg, reg)
}

func (m *Metrics) Success(operation string) {
	m.success.WithLabelValues(operation).Inc()
}

func (m *Metrics) Failure(operation string, err error) {
	m.failures.WithLabelValues(operation, string(errors.KindOf(err))).Inc()
}

func (m *Metrics) SuccessCounter() *prometheus.CounterVec {
	return m.success
}

func (m *Metrics) FailureCounter() *prometheus.CounterVec {
	return m.failures
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
