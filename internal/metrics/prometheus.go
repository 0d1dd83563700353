package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type prometheusObserver struct {
	queryDuration  *prometheus.HistogramVec
	mutations      *prometheus.CounterVec
	lookupDegraded *prometheus.CounterVec
}

var (
	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "featureboard_store_query_duration_seconds",
		Help:    "Duration of record store reads.",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})
	mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "featureboard_store_mutations_total",
		Help: "Total number of record store writes by outcome.",
	}, []string{"op", "outcome"})
	lookupDegraded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "featureboard_lookup_degraded_total",
		Help: "Lookup fetches that failed and were served as empty option lists.",
	}, []string{"lookup"})
)

func NewPrometheusObserver() StoreObserver {
	return &prometheusObserver{
		queryDuration:  queryDuration,
		mutations:      mutations,
		lookupDegraded: lookupDegraded,
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func (p *prometheusObserver) ObserveQuery(op string, seconds float64) {
	p.queryDuration.WithLabelValues(op).Observe(seconds)
}

func (p *prometheusObserver) RecordMutation(op, outcome string) {
	p.mutations.WithLabelValues(op, outcome).Inc()
}

func (p *prometheusObserver) RecordLookupDegraded(lookup string) {
	p.lookupDegraded.WithLabelValues(lookup).Inc()
}
