/*
Package monitoring provides performance monitoring and metrics collection.

# Overview

This package implements Prometheus-based metrics collection for the calculus
service, tracking HTTP requests, tool executions, and emitted warnings.

# Usage

	// Create metrics collector
	metrics := monitoring.NewMetrics()

	// Add middleware to Gin router
	router.Use(monitoring.Middleware(metrics))

	// Time tool executions
	timer := monitoring.NewTimer(metrics, "algebra.differentiate")
	// ... perform operation ...
	timer.Stop("ok")

	// Count best-effort warnings
	metrics.RecordWarning("inaccurate_denominator")

# Metrics Endpoint

Expose metrics via the standard Prometheus endpoint:

	import "github.com/prometheus/client_golang/prometheus/promhttp"
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
*/
package monitoring
