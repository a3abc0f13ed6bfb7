/*
Package observability provides Prometheus instrumentation for the planner.

It exposes lifecycle hooks that adapters install on the planner to count
request outcomes, time tool executions and count model rounds. Metrics are
served by the HTTP adapter at /metrics.
*/
package observability
