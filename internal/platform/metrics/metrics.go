// Package metrics defines the Prometheus collectors for the service.
// All collectors register on the default registry, which the /-/metrics
// endpoint serves via promhttp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	PageViews        *prometheus.CounterVec
	EntriesAdded     *prometheus.CounterVec
	PictureFetches   *prometheus.CounterVec
	RegenerationRuns *prometheus.CounterVec
}

// New creates the collectors and registers them with the given registerer.
// Pass prometheus.DefaultRegisterer in production.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		PageViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "motivation",
			Name:      "page_views_total",
			Help:      "Number of HTML page renders by page.",
		}, []string{"page"}),
		EntriesAdded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "motivation",
			Name:      "entries_added_total",
			Help:      "Number of entries appended to the store by kind.",
		}, []string{"kind"}),
		PictureFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "motivation",
			Name:      "picture_fetches_total",
			Help:      "Picture provider fetch attempts by outcome.",
		}, []string{"outcome"}),
		RegenerationRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "motivation",
			Name:      "regeneration_runs_total",
			Help:      "Static site regeneration runs by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(m.PageViews, m.EntriesAdded, m.PictureFetches, m.RegenerationRuns)

	return m
}

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)
