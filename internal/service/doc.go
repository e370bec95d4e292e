// Package service provides the provider registry for the calculus service.
//
// The registry maintains a catalog of available service providers and handles
// service discovery, tool execution, and relevance scoring for tool queries.
//
// Components:
//   - Registry: Central service catalog
//   - Provider: Interface for service implementations
//   - Service discovery with relevance scoring
//
// Features:
//   - Thread-safe service registration
//   - Category-based filtering
//   - Intent-based discovery with scoring
//   - Tool execution with context passing
//   - Service statistics
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(algebraProvider)
//	services := registry.Discover("differentiate polynomial", 5)
//	result, err := registry.Execute(ctx, "algebra.differentiate", params, appCtx)
package service
