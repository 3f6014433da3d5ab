package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	EstimatesImported = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crm_estimates_imported_total",
		Help: "Estimates accepted from the import pipeline.",
	})

	ReportsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crm_reports_generated_total",
		Help: "Reports generated, by kind.",
	}, []string{"kind"})

	SegmentRefreshes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crm_segment_refreshes_total",
		Help: "Account segment refresh runs.",
	})
)

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler { return promhttp.Handler() }
