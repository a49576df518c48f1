package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Dispatch metrics
	CommandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cephcmd_commands_total",
			Help: "Total number of commands submitted by generation, subsystem and outcome",
		},
		[]string{"generation", "subsystem", "outcome"},
	)

	CommandDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cephcmd_command_duration_seconds",
			Help:    "Round-trip duration of submitted commands in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"subsystem"},
	)

	// Validation metrics
	ValidationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cephcmd_validation_failures_total",
			Help: "Total number of commands rejected locally before submission",
		},
		[]string{"generation", "subsystem"},
	)

	// Transport metrics
	ConnectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cephcmd_connections_total",
			Help: "Total number of cluster connections by outcome",
		},
		[]string{"outcome"},
	)
)

// Outcome label values for CommandsTotal.
const (
	OutcomeOK        = "ok"
	OutcomeError     = "error"
	OutcomeTransport = "transport"
)

func init() {
	// Register all metrics
	prometheus.MustRegister(CommandsTotal)
	prometheus.MustRegister(CommandDuration)
	prometheus.MustRegister(ValidationFailures)
	prometheus.MustRegister(ConnectionsTotal)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Serve exposes the metrics endpoint on addr. It blocks, like
// http.ListenAndServe.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	return http.ListenAndServe(addr, mux)
}
