package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RecordGraphOperation counts a graph mutation. Registry satisfies the
// graph store's Observer interface.
func (r *Registry) RecordGraphOperation(operation, status string) {
	r.GraphOperationsTotal.WithLabelValues(operation, status).Inc()
}

// SetGraphSize updates the node and connection gauges
func (r *Registry) SetGraphSize(nodes, connections int) {
	r.GraphNodesTotal.Set(float64(nodes))
	r.GraphConnectionsTotal.Set(float64(connections))
}

// RecordZoom records a zoom operation and the zoom it produced
func (r *Registry) RecordZoom(zoom float64) {
	r.ViewportZoomEvents.Inc()
	r.ScrollConsumedTotal.Inc()
	r.ViewportZoom.Set(zoom)
}

// RecordMenuTransition counts a context menu event such as "open" or "create"
func (r *Registry) RecordMenuTransition(event string) {
	r.MenuTransitionsTotal.WithLabelValues(event).Inc()
}

// RecordMenuBarAction counts activation of a menu bar entry
func (r *Registry) RecordMenuBarAction(action string) {
	r.MenuBarActionsTotal.WithLabelValues(action).Inc()
}

// RecordFrame counts one update pass
func (r *Registry) RecordFrame() {
	r.FramesTotal.Inc()
}

// Handler exposes the registry in the Prometheus text format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Serve exposes /metrics on addr until ctx is cancelled. The listener is
// bound before Serve returns so address errors surface immediately.
func (r *Registry) Serve(ctx context.Context, addr string) (net.Addr, <-chan error, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	done := make(chan error, 1)
	go func() {
		err := srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		done <- err
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	return ln.Addr(), done, nil
}
