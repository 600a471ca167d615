// Package metrics defines the Prometheus metrics exposed by the job-board
// client gateway. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at import time; host
// applications embedding the SDK decide whether and where to expose them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobboard"

// RequestsTotal counts gateway round trips.
// Labels:
//   - method: HTTP method ("GET", "POST", …)
//   - status: numeric HTTP status ("200", "401", …) or "error" when the
//     round trip never produced a response
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of gateway requests, by method and status.",
	},
	[]string{"method", "status"},
)

// RequestDuration measures one round trip from request build to body read.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of gateway requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// AuthFailuresTotal counts 401 responses seen by the gateway, regardless of
// which endpoint was called.
var AuthFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of 401 responses received by the gateway.",
	},
)
