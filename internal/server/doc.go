// Package server implements the HTTP server using Echo framework.
//
// Routes: map (per-year emotional map), region (single region detail),
// health and metrics. Handlers split by domain: handlers_map.go,
// handlers_health.go.
package server
