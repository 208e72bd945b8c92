package storage

import (
	"github.com/dd0wney/harmonia/pkg/signal"
	"github.com/dd0wney/harmonia/pkg/templates"
)

// NodeID identifies a node for the lifetime of a store
type NodeID uint64

// PortID identifies a port for the lifetime of a store
type PortID uint64

// Position is a point in graph space
type Position struct {
	X float64
	Y float64
}

// Port is a typed attachment point on a node
type Port struct {
	ID        PortID
	Node      NodeID
	Label     string
	Kind      signal.Kind
	Direction templates.Direction
	Policy    templates.InputPolicy
	Required  bool
}

// IsInput reports whether the port receives a wire
func (p *Port) IsInput() bool {
	return p.Direction == templates.Input
}

// Node is a graph vertex. Inputs and Outputs are in declaration order and
// fixed at creation.
type Node struct {
	ID      NodeID
	Title   string
	Inputs  []PortID
	Outputs []PortID
	Data    templates.NodeData
}

// Clone creates a deep copy of the node
func (n *Node) Clone() *Node {
	return &Node{
		ID:      n.ID,
		Title:   n.Title,
		Inputs:  append([]PortID(nil), n.Inputs...),
		Outputs: append([]PortID(nil), n.Outputs...),
		Data:    n.Data,
	}
}

// Connection is a wire from an output port to an input port
type Connection struct {
	Output PortID
	Input  PortID
}

// Statistics summarises store contents and activity
type Statistics struct {
	NodeCount           int
	PortCount           int
	ConnectionCount     int
	NodesCreated        uint64
	NodesDeleted        uint64
	ConnectionsMade     uint64
	ConnectionsRejected uint64
}

// Observer receives store activity. The metrics registry implements it.
type Observer interface {
	RecordGraphOperation(operation, status string)
	SetGraphSize(nodes, connections int)
}
