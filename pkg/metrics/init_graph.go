package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "harmonia_graph_nodes_total",
			Help: "Number of nodes in the graph",
		},
	)

	r.GraphConnectionsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "harmonia_graph_connections_total",
			Help: "Number of wires in the graph",
		},
	)

	r.GraphOperationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "harmonia_graph_operations_total",
			Help: "Graph mutations by operation and outcome",
		},
		[]string{"operation", "status"},
	)
}
