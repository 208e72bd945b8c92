package storage

import (
	"sort"

	"github.com/dd0wney/harmonia/pkg/logging"
	"github.com/dd0wney/harmonia/pkg/templates"
)

// Port returns a copy of the port with the given identity
func (gs *GraphStore) Port(id PortID) (Port, error) {
	p, exists := gs.ports[id]
	if !exists {
		return Port{}, NewError("get").Port(id).Cause(ErrUnknownIdentity).Err()
	}
	return *p, nil
}

// PortByLabel finds a node's port by direction and label
func (gs *GraphStore) PortByLabel(nodeID NodeID, dir templates.Direction, label string) (PortID, error) {
	node, exists := gs.nodes[nodeID]
	if !exists {
		return 0, NewError("find_port").Node(nodeID).Cause(ErrUnknownIdentity).Err()
	}
	ids := node.Inputs
	if dir == templates.Output {
		ids = node.Outputs
	}
	for _, id := range ids {
		if gs.ports[id].Label == label {
			return id, nil
		}
	}
	return 0, NewError("find_port").Node(nodeID).Context(dir.String() + " " + label).Cause(ErrUnknownIdentity).Err()
}

// Connect wires output to input. The ports must exist, run output-to-input,
// carry the same kind, and the input must be free. An occupied input is
// never silently rewired.
func (gs *GraphStore) Connect(output, input PortID) error {
	err := gs.checkConnect(output, input)
	if err != nil {
		gs.stats.ConnectionsRejected++
		gs.logger.Warn("connection rejected",
			logging.Uint64("output", uint64(output)),
			logging.Uint64("input", uint64(input)),
			logging.Error(err),
		)
		gs.record("connect", err)
		return err
	}

	gs.wires[input] = output
	gs.fanout[output] = append(gs.fanout[output], input)
	gs.stats.ConnectionsMade++

	gs.logger.Debug("connection made",
		logging.Uint64("output", uint64(output)),
		logging.Uint64("input", uint64(input)),
		logging.Kind(gs.ports[input].Kind.Name()),
	)
	gs.record("connect", nil)

	return nil
}

func (gs *GraphStore) checkConnect(output, input PortID) error {
	src, exists := gs.ports[output]
	if !exists {
		return NewError("connect").Port(output).Cause(ErrUnknownIdentity).Err()
	}
	dst, exists := gs.ports[input]
	if !exists {
		return NewError("connect").Port(input).Cause(ErrUnknownIdentity).Err()
	}
	if src.IsInput() || !dst.IsInput() {
		return NewError("connect").Port(input).Context("from " + src.Direction.String() + " to " + dst.Direction.String()).Cause(ErrPortDirection).Err()
	}
	if !src.Kind.CompatibleWith(dst.Kind) {
		return NewError("connect").Port(input).Context(src.Kind.Name() + " to " + dst.Kind.Name()).Cause(ErrIncompatibleKind).Err()
	}
	if _, occupied := gs.wires[input]; occupied {
		return NewError("connect").Port(input).Cause(ErrPortOccupied).Err()
	}
	return nil
}

// Disconnect removes the wire feeding input
func (gs *GraphStore) Disconnect(input PortID) error {
	if _, exists := gs.wires[input]; !exists {
		err := NewError("disconnect").Port(input).Cause(ErrUnknownIdentity).Err()
		gs.record("disconnect", err)
		return err
	}
	gs.removeWire(input)
	gs.logger.Debug("connection removed", logging.PortID(uint64(input)))
	gs.record("disconnect", nil)
	return nil
}

func (gs *GraphStore) removeWire(input PortID) {
	output, exists := gs.wires[input]
	if !exists {
		return
	}
	delete(gs.wires, input)

	driven := gs.fanout[output]
	for i, in := range driven {
		if in == input {
			driven = append(driven[:i], driven[i+1:]...)
			break
		}
	}
	if len(driven) == 0 {
		delete(gs.fanout, output)
	} else {
		gs.fanout[output] = driven
	}
}

// ConnectionTo returns the output feeding input, if any
func (gs *GraphStore) ConnectionTo(input PortID) (PortID, bool) {
	out, ok := gs.wires[input]
	return out, ok
}

// ConnectionCount returns the number of wires
func (gs *GraphStore) ConnectionCount() int {
	return len(gs.wires)
}

// Connections returns every wire ordered by input port
func (gs *GraphStore) Connections() []Connection {
	conns := make([]Connection, 0, len(gs.wires))
	for in, out := range gs.wires {
		conns = append(conns, Connection{Output: out, Input: in})
	}
	sort.Slice(conns, func(i, j int) bool {
		return conns[i].Input < conns[j].Input
	})
	return conns
}

// MissingRequired lists the node's required inputs that have no wire. The
// store does not enforce required inputs; callers use this to flag them.
func (gs *GraphStore) MissingRequired(nodeID NodeID) []PortID {
	node, exists := gs.nodes[nodeID]
	if !exists {
		return nil
	}
	var missing []PortID
	for _, id := range node.Inputs {
		if !gs.ports[id].Required {
			continue
		}
		if _, wired := gs.wires[id]; !wired {
			missing = append(missing, id)
		}
	}
	return missing
}
