package storage

import (
	"errors"
	"testing"

	"github.com/dd0wney/harmonia/pkg/signal"
	"github.com/dd0wney/harmonia/pkg/templates"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// firstInput returns a template's first input port on node id, if it has one
func firstInput(gs *GraphStore, id NodeID) (PortID, bool) {
	node := gs.nodes[id]
	if len(node.Inputs) == 0 {
		return 0, false
	}
	return node.Inputs[0], true
}

// driverFor creates a node whose output matches the kind of input
func driverFor(gs *GraphStore, input PortID) PortID {
	tmpl := templates.SoundSource
	if gs.ports[input].Kind == signal.Midi {
		tmpl = templates.MidiSource
	}
	id, _ := gs.CreateNode(tmpl)
	return gs.nodes[id].Outputs[0]
}

// TestGraphInvariants uses property-based testing to verify the connection
// rules and structural invariants hold for arbitrary graphs.
func TestGraphInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("connect succeeds iff kinds match and input is free", prop.ForAll(
		func(srcIdx, dstIdx int, preoccupy bool) bool {
			gs := NewGraphStore()
			src, _ := gs.CreateNode(templates.All()[srcIdx])
			dst, _ := gs.CreateNode(templates.All()[dstIdx])

			input, ok := firstInput(gs, dst)
			if !ok {
				return true // MIDI sources have nothing to connect into
			}
			output := gs.nodes[src].Outputs[0]

			if preoccupy {
				if err := gs.Connect(driverFor(gs, input), input); err != nil {
					return false
				}
			}

			kindsMatch := gs.ports[output].Kind == gs.ports[input].Kind
			err := gs.Connect(output, input)

			switch {
			case kindsMatch && !preoccupy:
				return err == nil
			case !kindsMatch:
				return errors.Is(err, ErrIncompatibleKind)
			default:
				return errors.Is(err, ErrPortOccupied)
			}
		},
		gen.IntRange(0, 3),
		gen.IntRange(0, 3),
		gen.Bool(),
	))

	properties.Property("connecting the same pair twice yields PortOccupied", prop.ForAll(
		func(srcIdx, dstIdx int) bool {
			gs := NewGraphStore()
			src, _ := gs.CreateNode(templates.All()[srcIdx])
			dst, _ := gs.CreateNode(templates.All()[dstIdx])
			input, ok := firstInput(gs, dst)
			if !ok {
				return true
			}
			output := gs.nodes[src].Outputs[0]
			if gs.ports[output].Kind != gs.ports[input].Kind {
				return true
			}
			return gs.Connect(output, input) == nil &&
				errors.Is(gs.Connect(output, input), ErrPortOccupied)
		},
		gen.IntRange(0, 3),
		gen.IntRange(0, 3),
	))

	properties.Property("delete removes every wire touching the node", prop.ForAll(
		func(kinds []int, wiring []int, victim int) bool {
			if len(kinds) == 0 {
				return true
			}
			gs := NewGraphStore()
			ids := make([]NodeID, len(kinds))
			for i, k := range kinds {
				ids[i], _ = gs.CreateNode(templates.All()[k])
			}

			// Attempt pairwise wiring driven by the generated sequence
			for i := 0; i+1 < len(wiring); i += 2 {
				from := gs.nodes[ids[wiring[i]%len(ids)]]
				to := gs.nodes[ids[wiring[i+1]%len(ids)]]
				if len(to.Inputs) == 0 {
					continue
				}
				_ = gs.Connect(from.Outputs[0], to.Inputs[wiring[i]%len(to.Inputs)])
			}

			target := ids[victim%len(ids)]
			node := gs.nodes[target].Clone()
			before := gs.NodeCount()

			if err := gs.DeleteNode(target); err != nil {
				return false
			}
			if gs.NodeCount() != before-1 {
				return false
			}
			owned := make(map[PortID]bool)
			for _, p := range append(node.Inputs, node.Outputs...) {
				owned[p] = true
			}
			for _, c := range gs.Connections() {
				if owned[c.Input] || owned[c.Output] {
					return false
				}
			}
			return checkInvariants(gs) == nil
		},
		gen.SliceOf(gen.IntRange(0, 3)),
		gen.SliceOf(gen.IntRange(0, 50)),
		gen.IntRange(0, 50),
	))

	properties.TestingRun(t)
}
