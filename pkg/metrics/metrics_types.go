package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the editor
type Registry struct {
	// Graph Metrics
	GraphNodesTotal       prometheus.Gauge
	GraphConnectionsTotal prometheus.Gauge
	GraphOperationsTotal  *prometheus.CounterVec

	// Viewport Metrics
	ViewportZoom        prometheus.Gauge
	ViewportZoomEvents  prometheus.Counter
	ScrollConsumedTotal prometheus.Counter

	// Interaction Metrics
	MenuTransitionsTotal *prometheus.CounterVec
	MenuBarActionsTotal  *prometheus.CounterVec
	FramesTotal          prometheus.Counter

	// System Metrics
	UptimeSeconds    prometheus.Gauge
	GoRoutines       prometheus.Gauge
	MemoryAllocBytes prometheus.Gauge

	registry *prometheus.Registry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initGraphMetrics()
	r.initViewportMetrics()
	r.initInteractionMetrics()
	r.initSystemMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
