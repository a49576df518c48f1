/*
Package metrics defines the Prometheus instrumentation for command
dispatch.

All collectors are package-level and registered in init, so importing
any instrumented package is enough to expose its metrics.

# Metrics

	cephcmd_commands_total{generation,subsystem,outcome}
	    Submitted commands. Outcome is "ok", "error" (the cluster
	    returned a nonzero status) or "transport" (the round trip
	    itself failed). Locally rejected commands never count here.

	cephcmd_command_duration_seconds{subsystem}
	    Round-trip latency histogram.

	cephcmd_validation_failures_total{generation,subsystem}
	    Commands rejected locally before submission.

	cephcmd_connections_total{outcome}
	    Cluster connection attempts.

Serve exposes /metrics for scraping when cephcmd runs as a long-lived
process; one-shot CLI invocations simply never start it.
*/
package metrics
