package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initViewportMetrics() {
	r.ViewportZoom = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "harmonia_viewport_zoom",
			Help: "Current zoom factor of the canvas",
		},
	)
	r.ViewportZoom.Set(1)

	r.ViewportZoomEvents = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "harmonia_viewport_zoom_events_total",
			Help: "Number of pointer-anchored zoom operations",
		},
	)

	r.ScrollConsumedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "harmonia_viewport_scroll_consumed_total",
			Help: "Frames whose scroll input was consumed by the zoom handler",
		},
	)
}

func (r *Registry) initInteractionMetrics() {
	r.MenuTransitionsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "harmonia_menu_transitions_total",
			Help: "Context menu state transitions by event",
		},
		[]string{"event"},
	)

	r.MenuBarActionsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "harmonia_menubar_actions_total",
			Help: "Menu bar entries activated",
		},
		[]string{"action"},
	)

	r.FramesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "harmonia_frames_total",
			Help: "Update passes processed",
		},
	)
}
