package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry())

	m.IncProductCreated()
	m.IncProductCreated()
	m.IncDuplicateProduct()
	m.IncOrderCreated()
	m.IncOrderRejected()

	require.Equal(t, float64(2), testutil.ToFloat64(m.productsCreated))
	require.Equal(t, float64(1), testutil.ToFloat64(m.duplicateProducts))
	require.Equal(t, float64(1), testutil.ToFloat64(m.ordersCreated))
	require.Equal(t, float64(1), testutil.ToFloat64(m.ordersRejected))
}

func TestMetrics_ObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer(reg)

	m.ObserveRequest("GET", "/products", 200, 42*time.Millisecond)

	count, err := testutil.GatherAndCount(reg, "ecommerce_http_request_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	require.NotPanics(t, func() {
		m.IncProductCreated()
		m.IncDuplicateProduct()
		m.IncOrderCreated()
		m.IncOrderRejected()
		m.ObserveRequest("GET", "/", 200, time.Millisecond)
	})
}
