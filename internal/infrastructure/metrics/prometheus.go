// Package metrics exports storefront metrics in Prometheus format.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storefront"

// Metrics holds the storefront collectors. It implements usecase.Recorder.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	catalogLoads  *prometheus.CounterVec
	cartMutations *prometheus.CounterVec
}

// New registers the collectors on registry, or on a fresh registry when nil
func New(registry *prometheus.Registry) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	m := &Metrics{registry: registry}

	m.httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	m.httpLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"method", "route"},
	)

	m.catalogLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "loads_total",
			Help:      "Catalog reads from the product source",
		},
		[]string{"source", "status"},
	)

	m.cartMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cart",
			Name:      "mutations_total",
			Help:      "Cart add and remove requests",
		},
		[]string{"action"},
	)

	registry.MustRegister(m.httpRequests, m.httpLatency, m.catalogLoads, m.cartMutations)
	return m
}

// Handler serves the registry for scraping
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one handled HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// CatalogLoaded records a read from the product source
func (m *Metrics) CatalogLoaded(source string, ok bool) {
	status := "ok"
	if !ok {
		status = "error"
	}
	m.catalogLoads.WithLabelValues(source, status).Inc()
}

// TrackCarts exports the number of live carts as reported by count
func (m *Metrics) TrackCarts(count func() int) {
	m.registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "cart",
			Name:      "live",
			Help:      "Number of shopper carts held in memory",
		},
		func() float64 { return float64(count()) },
	))
}

// CartMutated records a cart add or remove
func (m *Metrics) CartMutated(action string) {
	m.cartMutations.WithLabelValues(action).Inc()
}
