package tutor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

type metrics struct {
	lessonsSelected *prometheus.CounterVec
	queries         *prometheus.CounterVec
	queryDuration   prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		lessonsSelected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sqltutor",
			Name:      "lessons_selected_total",
			Help:      "Total number of lessons served, by lesson key.",
		}, []string{"lesson"}),
		queries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sqltutor",
			Name:      "queries_total",
			Help:      "Total number of practice queries evaluated, by outcome.",
		}, []string{"outcome"}),
		queryDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sqltutor",
			Name:      "query_duration_seconds",
			Help:      "Time spent evaluating practice queries, excluding the delay.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
	}
}
