package metrics

import "github.com/prometheus/client_golang/prometheus"

// Write outcomes.
const (
	ResultApplied    = "applied"
	ResultSuperseded = "superseded"
	ResultDead       = "dead_letter"
	ResultSkipped    = "skipped"
)

// WriteBehindMetrics tracks background document writes.
type WriteBehindMetrics struct {
	writes  *prometheus.CounterVec
	retries *prometheus.CounterVec
	depth   prometheus.Gauge
	latency *prometheus.HistogramVec
}

// NewWriteBehindMetrics registers the write-behind collectors on reg.
// A nil registerer yields a no-op recorder.
func NewWriteBehindMetrics(reg prometheus.Registerer) *WriteBehindMetrics {
	if reg == nil {
		return &WriteBehindMetrics{}
	}

	m := &WriteBehindMetrics{
		writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "writebehind_writes_total",
			Help:      "Background writes by kind and outcome.",
		}, []string{"kind", "result"}),
		retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "writebehind_retries_total",
			Help:      "Failed write attempts that were retried.",
		}, []string{"kind"}),
		depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "writebehind_queue_depth",
			Help:      "Documents waiting to be written.",
		}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "writebehind_write_seconds",
			Help:      "Duration of single write attempts.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
	}
	reg.MustRegister(m.writes, m.retries, m.depth, m.latency)

	return m
}

func (m *WriteBehindMetrics) IncWrite(kind, result string) {
	if m == nil || m.writes == nil {
		return
	}
	m.writes.WithLabelValues(normalizeLabel(kind), result).Inc()
}

func (m *WriteBehindMetrics) IncRetry(kind string) {
	if m == nil || m.retries == nil {
		return
	}
	m.retries.WithLabelValues(normalizeLabel(kind)).Inc()
}

func (m *WriteBehindMetrics) SetDepth(depth int) {
	if m == nil || m.depth == nil {
		return
	}
	m.depth.Set(float64(depth))
}

func (m *WriteBehindMetrics) ObserveWrite(kind string, seconds float64) {
	if m == nil || m.latency == nil {
		return
	}
	m.latency.WithLabelValues(normalizeLabel(kind)).Observe(seconds)
}
