// Package main is the entry point for the polycalc server.
//
// The server exposes the symbolic algebra provider over a REST API:
// expressions travel as JSON trees, tools are named algebra.* and run
// through the service registry.
//
// Configuration comes from environment variables (12-factor), with
// defaults suitable for development:
//
//	PORT=8000 HOST=0.0.0.0 LOG_LEVEL=info LOG_DEV=false ./server
//
// Signals:
//   - SIGINT, SIGTERM: graceful shutdown
package main
