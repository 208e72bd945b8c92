package storage

import (
	"github.com/dd0wney/harmonia/pkg/logging"
	"github.com/dd0wney/harmonia/pkg/templates"
)

// CreateNode allocates a node for template t, installs the template's ports
// and returns the new identity. The node has no position until SetPosition
// is called.
func (gs *GraphStore) CreateNode(t templates.Template) (NodeID, error) {
	if !t.Valid() {
		err := NewError("create_node").Template(t.Label()).Cause(ErrUnknownTemplate).Err()
		gs.record("create_node", err)
		return 0, err
	}

	inputs, outputs := t.DeclarePorts()

	// Check for ID space exhaustion
	if gs.nextNodeID == NodeID(^uint64(0)) || uint64(gs.nextPortID) > ^uint64(0)-uint64(len(inputs)+len(outputs)) {
		err := NewError("create_node").Template(t.Name()).Cause(ErrIDExhausted).Err()
		gs.record("create_node", err)
		return 0, err
	}

	nodeID := gs.nextNodeID
	gs.nextNodeID++

	data := t.Payload()
	node := &Node{
		ID:      nodeID,
		Title:   data.Title,
		Inputs:  make([]PortID, 0, len(inputs)),
		Outputs: make([]PortID, 0, len(outputs)),
		Data:    data,
	}
	for _, spec := range inputs {
		node.Inputs = append(node.Inputs, gs.addPort(nodeID, spec))
	}
	for _, spec := range outputs {
		node.Outputs = append(node.Outputs, gs.addPort(nodeID, spec))
	}

	gs.nodes[nodeID] = node
	gs.order = append(gs.order, nodeID)
	gs.stats.NodesCreated++

	gs.logger.Debug("node created",
		logging.NodeID(uint64(nodeID)),
		logging.Template(t.Name()),
		logging.Int("inputs", len(node.Inputs)),
		logging.Int("outputs", len(node.Outputs)),
	)
	gs.record("create_node", nil)

	return nodeID, nil
}

func (gs *GraphStore) addPort(nodeID NodeID, spec templates.PortSpec) PortID {
	id := gs.nextPortID
	gs.nextPortID++
	gs.ports[id] = &Port{
		ID:        id,
		Node:      nodeID,
		Label:     spec.Label,
		Kind:      spec.Kind,
		Direction: spec.Direction,
		Policy:    spec.Policy,
		Required:  spec.Required,
	}
	return id
}

// SetPosition places a node on the canvas. Unknown identities are ignored.
func (gs *GraphStore) SetPosition(id NodeID, pos Position) {
	if _, exists := gs.nodes[id]; !exists {
		gs.logger.Debug("position ignored for unknown node", logging.NodeID(uint64(id)))
		return
	}
	gs.positions[id] = pos
}

// Position returns the canvas position of a node
func (gs *GraphStore) Position(id NodeID) (Position, bool) {
	pos, ok := gs.positions[id]
	return pos, ok
}

// DeleteNode removes a node together with its ports, its position and every
// wire touching one of its ports.
func (gs *GraphStore) DeleteNode(id NodeID) error {
	node, exists := gs.nodes[id]
	if !exists {
		err := NewError("delete_node").Node(id).Cause(ErrUnknownIdentity).Err()
		gs.record("delete_node", err)
		return err
	}

	// Cascade delete wires feeding the node's inputs
	for _, in := range node.Inputs {
		gs.removeWire(in)
		delete(gs.ports, in)
	}

	// Cascade delete wires driven by the node's outputs
	for _, out := range node.Outputs {
		for _, in := range append([]PortID(nil), gs.fanout[out]...) {
			gs.removeWire(in)
		}
		delete(gs.fanout, out)
		delete(gs.ports, out)
	}

	delete(gs.nodes, id)
	delete(gs.positions, id)
	gs.removeFromOrder(id)
	gs.stats.NodesDeleted++

	gs.logger.Debug("node deleted", logging.NodeID(uint64(id)))
	gs.record("delete_node", nil)

	return nil
}

func (gs *GraphStore) removeFromOrder(id NodeID) {
	for i, existing := range gs.order {
		if existing == id {
			gs.order = append(gs.order[:i], gs.order[i+1:]...)
			return
		}
	}
}

// NodeCount returns the number of live nodes
func (gs *GraphStore) NodeCount() int {
	return len(gs.nodes)
}

// Nodes returns copies of every node in insertion order
func (gs *GraphStore) Nodes() []*Node {
	nodes := make([]*Node, 0, len(gs.order))
	for _, id := range gs.order {
		nodes = append(nodes, gs.nodes[id].Clone())
	}
	return nodes
}

// Node returns a copy of the node with the given identity
func (gs *GraphStore) Node(id NodeID) (*Node, error) {
	node, exists := gs.nodes[id]
	if !exists {
		return nil, NewError("get").Node(id).Cause(ErrUnknownIdentity).Err()
	}
	return node.Clone(), nil
}
