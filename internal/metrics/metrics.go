package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics aggregates the prometheus collectors for the API. A nil *Metrics is
// a valid no-op receiver so tests can skip instrumentation.
type Metrics struct {
	productsCreated   prometheus.Counter
	duplicateProducts prometheus.Counter
	ordersCreated     prometheus.Counter
	ordersRejected    prometheus.Counter

	requestDuration *prometheus.HistogramVec
}

// New registers the collectors on the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the collectors on the given registerer, which
// lets tests use an isolated registry.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		productsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ecommerce_products_created_total",
			Help: "Total number of products created",
		}),
		duplicateProducts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ecommerce_duplicate_products_total",
			Help: "Total number of product creations rejected as duplicates",
		}),
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ecommerce_orders_created_total",
			Help: "Total number of orders created",
		}),
		ordersRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ecommerce_orders_rejected_total",
			Help: "Total number of orders rejected for referencing unknown or malformed product ids",
		}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ecommerce_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(
		m.productsCreated,
		m.duplicateProducts,
		m.ordersCreated,
		m.ordersRejected,
		m.requestDuration,
	)
	return m
}

func (m *Metrics) IncProductCreated() {
	if m == nil {
		return
	}
	m.productsCreated.Inc()
}

func (m *Metrics) IncDuplicateProduct() {
	if m == nil {
		return
	}
	m.duplicateProducts.Inc()
}

func (m *Metrics) IncOrderCreated() {
	if m == nil {
		return
	}
	m.ordersCreated.Inc()
}

func (m *Metrics) IncOrderRejected() {
	if m == nil {
		return
	}
	m.ordersRejected.Inc()
}

// ObserveRequest records one finished HTTP request. The route must be a value
// from a bounded set, such as a route template, never a raw request path.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}
