package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestWriteBehindMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWriteBehindMetrics(reg)

	m.IncWrite("cart", ResultApplied)
	m.IncWrite("cart", ResultApplied)
	m.IncWrite("", ResultDead)
	m.IncRetry("user_order")
	m.SetDepth(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.writes.WithLabelValues("cart", ResultApplied)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.writes.WithLabelValues("unknown", ResultDead)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.retries.WithLabelValues("user_order")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.depth))
}

func TestOrderMetrics(t *testing.T) {
	m := NewOrderMetrics(prometheus.NewRegistry())

	m.IncPlaced()
	m.IncFailed("store")
	m.IncStatusChange("Delivered")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.placed))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failed.WithLabelValues("store")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.statusChanges.WithLabelValues("Delivered")))
}

func TestHTTPMetrics(t *testing.T) {
	m := NewHTTPMetrics(prometheus.NewRegistry())

	m.Observe("/cart/items/:productId", "PUT", 200, 5*time.Millisecond)
	m.Observe("", "GET", 404, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/cart/items/:productId", "PUT", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("unknown", "GET", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}

func TestNilRecordersAreSafe(t *testing.T) {
	var wb *WriteBehindMetrics
	wb.IncWrite("cart", ResultApplied)
	wb.SetDepth(1)

	orders := NewOrderMetrics(nil)
	orders.IncPlaced()
	orders.IncFailed("x")

	var httpMetrics *HTTPMetrics
	httpMetrics.Observe("/health", "GET", 200, time.Millisecond)
}
