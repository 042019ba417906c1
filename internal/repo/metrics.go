package repo

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// storeOpDuration records accessor latency by collection, operation and
// outcome (ok|absent|error). Label values are bounded by the resources and
// operations compiled into the service.
var storeOpDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "store_operation_duration_seconds",
		Help:    "Duration of document store operations in seconds.",
		Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	},
	[]string{"collection", "op", "outcome"},
)

func observe(collection, op, outcome string, start time.Time) {
	storeOpDuration.WithLabelValues(collection, op, outcome).Observe(time.Since(start).Seconds())
}
