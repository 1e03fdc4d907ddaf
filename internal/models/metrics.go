package models

import "time"

// GatewayMetrics is a lightweight aggregate of the gateway's runtime
// counters, rendered by the health endpoints.
type GatewayMetrics struct {
	RequestsTotal             uint64    `json:"requests_total"`
	AverageRequestDurationMs  float64   `json:"average_request_duration_ms"`
	UpstreamRequestsTotal     uint64    `json:"upstream_requests_total"`
	UpstreamFailuresTotal     uint64    `json:"upstream_failures_total"`
	AverageUpstreamDurationMs float64   `json:"average_upstream_duration_ms"`
	ExportsTotal              uint64    `json:"exports_total"`
	Goroutines                int       `json:"goroutines"`
	GeneratedAt               time.Time `json:"generated_at"`
}
