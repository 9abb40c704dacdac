// Package telemetry provides the observability instrumentation for the input
// synthesis engine: structured logging with zerolog and Prometheus metrics
// for search, synthesis, execution and fuzzing activity.
//
// Loggers are plain values passed to component constructors; a context helper
// is provided for callers that thread a logger through context.Context.
// Metrics use a private registry and degrade to no-ops when disabled, so the
// engine packages never branch on whether metrics are configured.
package telemetry
