package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's Prometheus collectors. A nil *Metrics is safe
// to pass around; callers guard their observations.
type Metrics struct {
	RunsTotal         *prometheus.CounterVec
	RunDuration       prometheus.Histogram
	CandidatesScored  prometheus.Counter
	NarrativeRequests *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "talentmatch_runs_total",
			Help: "Match runs by outcome.",
		}, []string{"status"}),
		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "talentmatch_run_duration_seconds",
			Help:    "End-to-end match run duration.",
			Buckets: prometheus.DefBuckets,
		}),
		CandidatesScored: factory.NewCounter(prometheus.CounterOpts{
			Name: "talentmatch_candidates_scored_total",
			Help: "Employees scored across all runs.",
		}),
		NarrativeRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "talentmatch_narrative_requests_total",
			Help: "Narrative generation requests by outcome.",
		}, []string{"status"}),
	}
}
