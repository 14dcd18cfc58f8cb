package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	ValidationFailures *prometheus.CounterVec
	Requests           *prometheus.CounterVec
	FilesWritten       *prometheus.CounterVec

	registry *prometheus.Registry
}

// New registers all counters on a fresh registry so several servers (and
// tests) can live in one process.
func New() (*Metrics, error) {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.ValidationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notation_validation_failures_total",
			Help: "Rejected tokens partitioned by the field that failed.",
		},
		[]string{"field"},
	)
	m.Requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notation_http_requests_total",
			Help: "HTTP requests partitioned by route and status code.",
		},
		[]string{"route", "code"},
	)
	m.FilesWritten = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notation_files_written_total",
			Help: "Output files written partitioned by kind (scale, progression, midi).",
		},
		[]string{"kind"},
	)

	for _, c := range []prometheus.Collector{m.ValidationFailures, m.Requests, m.FilesWritten} {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// The recorders below are no-ops on a nil *Metrics.

func (m *Metrics) ValidationFailed(field string) {
	if m == nil {
		return
	}
	m.ValidationFailures.WithLabelValues(field).Inc()
}

func (m *Metrics) RequestServed(route string, code int) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

func (m *Metrics) FileWritten(kind string) {
	if m == nil {
		return
	}
	m.FilesWritten.WithLabelValues(kind).Inc()
}
