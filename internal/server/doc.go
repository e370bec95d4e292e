// Package server provides HTTP server setup and initialization.
//
// It wires the algebra provider into the service registry and exposes it
// over a Gin router with CORS, rate limiting, request IDs, and Prometheus
// metrics. Configuration is loaded from the environment; shutdown is
// graceful and lets in-flight requests finish.
package server
