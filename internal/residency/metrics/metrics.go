package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for residency writes.
type Metrics struct {
	residenciesCreated prometheus.Counter
	residenciesClosed  prometheus.Counter
	writesRejected     *prometheus.CounterVec
}

// New creates and registers the residency metrics.
func New() *Metrics {
	return &Metrics{
		residenciesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "carelog_residencies_created_total",
			Help: "Total residencies created (move-ins)",
		}),
		residenciesClosed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "carelog_residencies_closed_total",
			Help: "Total residencies closed (move-outs)",
		}),
		writesRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "carelog_residency_writes_rejected_total",
			Help: "Residency writes rejected by invariant checks",
		}, []string{"reason"}),
	}
}

// All recorders are nil-safe so services can run without metrics wired.

func (m *Metrics) RecordCreated() {
	if m == nil {
		return
	}
	m.residenciesCreated.Inc()
}

func (m *Metrics) RecordClosed() {
	if m == nil {
		return
	}
	m.residenciesClosed.Inc()
}

func (m *Metrics) RecordRejected(reason string) {
	if m == nil {
		return
	}
	m.writesRejected.WithLabelValues(reason).Inc()
}
