// Package tracing provides OpenTelemetry tracing integration.
//
// InitProvider installs the process-wide tracer provider and W3C trace-context
// propagation. Middleware opens a server span per request, continuing any
// incoming traceparent, and echoes the trace id in X-Trace-Id. Repository
// calls open client spans beneath it through GetTracer.
//
// Example usage:
//
//	shutdown, err := tracing.InitProvider(ctx, "nc-news", version)
//	if err != nil {
//	    return err
//	}
//	defer shutdown(context.Background())
//
//	handler = tracing.Middleware(pathutil.NormalizePath)(handler)
package tracing
