package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for activity recording and the count
// cache.
type Metrics struct {
	activitiesRecorded prometheus.Counter
	groupsRecorded     prometheus.Counter
	groupsRejected     *prometheus.CounterVec
	cacheHits          prometheus.Counter
	cacheMisses        prometheus.Counter
}

// New creates and registers the activity metrics.
func New() *Metrics {
	return &Metrics{
		activitiesRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "carelog_activities_recorded_total",
			Help: "Per-resident activity records persisted",
		}),
		groupsRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "carelog_activity_groups_recorded_total",
			Help: "Group submissions accepted",
		}),
		groupsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "carelog_activity_groups_rejected_total",
			Help: "Group submissions rejected by reason",
		}, []string{"reason"}),
		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "carelog_activity_count_cache_hits_total",
			Help: "Recent-activity count lookups served from cache",
		}),
		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "carelog_activity_count_cache_misses_total",
			Help: "Recent-activity count lookups that fell through to the store",
		}),
	}
}

func (m *Metrics) RecordGroup(size int) {
	if m == nil {
		return
	}
	m.groupsRecorded.Inc()
	m.activitiesRecorded.Add(float64(size))
}

func (m *Metrics) RecordRejected(reason string) {
	if m == nil {
		return
	}
	m.groupsRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) RecordCacheHit() {
	if m == nil {
		return
	}
	m.cacheHits.Inc()
}

func (m *Metrics) RecordCacheMiss() {
	if m == nil {
		return
	}
	m.cacheMisses.Inc()
}
