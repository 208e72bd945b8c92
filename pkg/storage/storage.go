// Package storage holds the editor's node graph: nodes, their typed ports,
// the wires between ports and a sidecar of canvas positions.
//
// The store is owned by a single update loop and performs no locking.
package storage

import (
	"github.com/dd0wney/harmonia/pkg/logging"
)

// GraphStore is the in-memory node graph
type GraphStore struct {
	nodes map[NodeID]*Node
	order []NodeID // insertion order
	ports map[PortID]*Port

	// wires maps an input port to the output feeding it; an input holds at
	// most one wire by construction.
	wires map[PortID]PortID
	// fanout maps an output port to the inputs it drives, in wiring order.
	fanout map[PortID][]PortID

	positions map[NodeID]Position

	nextNodeID NodeID
	nextPortID PortID

	logger   logging.Logger
	observer Observer
	stats    Statistics
}

// Option configures a GraphStore
type Option func(*GraphStore)

// WithLogger sets the logger used for mutation tracing
func WithLogger(logger logging.Logger) Option {
	return func(gs *GraphStore) {
		if logger != nil {
			gs.logger = logger
		}
	}
}

// WithObserver attaches an activity observer such as the metrics registry
func WithObserver(o Observer) Option {
	return func(gs *GraphStore) {
		gs.observer = o
	}
}

// NewGraphStore creates an empty store
func NewGraphStore(opts ...Option) *GraphStore {
	gs := &GraphStore{
		nodes:      make(map[NodeID]*Node),
		ports:      make(map[PortID]*Port),
		wires:      make(map[PortID]PortID),
		fanout:     make(map[PortID][]PortID),
		positions:  make(map[NodeID]Position),
		nextNodeID: 1,
		nextPortID: 1,
		logger:     logging.DefaultLogger(),
	}
	for _, opt := range opts {
		opt(gs)
	}
	gs.logger = gs.logger.With(logging.Component("graph"))
	return gs
}

func (gs *GraphStore) record(op string, err error) {
	if gs.observer == nil {
		return
	}
	gs.observer.RecordGraphOperation(op, Reason(err))
	gs.observer.SetGraphSize(len(gs.nodes), len(gs.wires))
}

// Statistics returns a snapshot of store counters
func (gs *GraphStore) Statistics() Statistics {
	s := gs.stats
	s.NodeCount = len(gs.nodes)
	s.PortCount = len(gs.ports)
	s.ConnectionCount = len(gs.wires)
	return s
}
