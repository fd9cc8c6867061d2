// Package metrics exposes icon cache counters through Prometheus.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bnema/favicache/internal/application/port"
)

// Namespace prefixes every metric name.
const Namespace = "favicache"

// IconMetrics implements port.IconMetrics with Prometheus counters.
type IconMetrics struct {
	recorded      prometheus.Counter
	rejected      *prometheus.CounterVec
	lookups       *prometheus.CounterVec
	flushed       prometheus.Counter
	flushBatches  prometheus.Histogram
	storeErrors   *prometheus.CounterVec
	droppedWrites prometheus.Counter
}

var _ port.IconMetrics = (*IconMetrics)(nil)

// NewIconMetrics creates the collectors and registers them on reg.
func NewIconMetrics(reg prometheus.Registerer) (*IconMetrics, error) {
	m := &IconMetrics{
		recorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "icons_recorded_total",
			Help:      "Number of icons added to the pending buffer",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "icons_rejected_total",
			Help:      "Number of icons ignored by RecordIcon, by reason",
		}, []string{"reason"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "lookups_total",
			Help:      "Number of icon lookups, by kind and by where the answer came from",
		}, []string{"kind", "source"}),
		flushed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "flushed_records_total",
			Help:      "Number of records handed to the write queue",
		}),
		flushBatches: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "flush_batch_size",
			Help:      "Number of records per flush",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100},
		}),
		storeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "store_errors_total",
			Help:      "Number of failed store operations, by operation",
		}, []string{"op"}),
		droppedWrites: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "dropped_writes_total",
			Help:      "Number of store writes refused because the write queue was closed or the caller gave up",
		}),
	}

	err := errors.Join(
		reg.Register(m.recorded),
		reg.Register(m.rejected),
		reg.Register(m.lookups),
		reg.Register(m.flushed),
		reg.Register(m.flushBatches),
		reg.Register(m.storeErrors),
		reg.Register(m.droppedWrites),
	)
	return m, err
}

func (m *IconMetrics) IconRecorded() {
	m.recorded.Inc()
}

func (m *IconMetrics) IconRejected(reason string) {
	m.rejected.WithLabelValues(reason).Inc()
}

func (m *IconMetrics) LookupServed(kind, source string) {
	m.lookups.WithLabelValues(kind, source).Inc()
}

func (m *IconMetrics) RecordsFlushed(n int) {
	m.flushed.Add(float64(n))
	m.flushBatches.Observe(float64(n))
}

func (m *IconMetrics) StoreError(op string) {
	m.storeErrors.WithLabelValues(op).Inc()
}

// WriteDropped counts a write the queue could not accept.
func (m *IconMetrics) WriteDropped() {
	m.droppedWrites.Inc()
}
