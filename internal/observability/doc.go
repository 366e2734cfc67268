// Package observability groups the service's logging, metrics and tracing.
//
// Subpackages:
//   - logging: slog logger construction and request-scoped attributes
//   - metrics: Prometheus collectors and recorders for HTTP, database and domain events
//   - tracing: OpenTelemetry provider setup and the HTTP span middleware
//
// Example usage:
//
//	import (
//	    "nc-news/internal/observability/logging"
//	    "nc-news/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger("info", "json")
//	    logger.Info("application started")
//
//	    metrics.RecordVotes("article", 1)
//	}
package observability
