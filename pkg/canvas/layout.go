package canvas

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/dd0wney/harmonia/pkg/storage"
	"github.com/dd0wney/harmonia/pkg/viewport"
)

// Box is a node laid out on screen. Terminal cells cannot scale text, so
// zoom moves boxes but does not resize them.
type Box struct {
	Node    storage.NodeID
	Title   string
	Origin  Cell
	Width   int
	Height  int
	Inputs  []Slot
	Outputs []Slot
}

// Slot is a port drawn on a box border
type Slot struct {
	Port    storage.Port
	At      Cell
	Wired   bool
	Missing bool // required input with no wire
}

// Cell is a terminal cell position in screen space
type Cell struct {
	X, Y int
}

func (p Cell) vec() viewport.Vec2 {
	return viewport.V(float64(p.X), float64(p.Y))
}

func toCell(v viewport.Vec2) Cell {
	return Cell{X: saturate(math.Round(v.X)), Y: saturate(math.Round(v.Y))}
}

// saturate keeps far-off coordinates representable so boxes zoomed far out
// of view stay out of view.
func saturate(f float64) int {
	const limit = 1 << 30
	switch {
	case math.IsNaN(f):
		return 0
	case f > limit:
		return limit
	case f < -limit:
		return -limit
	}
	return int(f)
}

// Contains reports whether a screen cell lies on the box
func (b *Box) Contains(p Cell) bool {
	return p.X >= b.Origin.X && p.X < b.Origin.X+b.Width &&
		p.Y >= b.Origin.Y && p.Y < b.Origin.Y+b.Height
}

// Layout places every node of g on screen. Boxes are returned in insertion
// order, so later boxes are drawn on top. A node without a position is
// placed at the graph origin.
func Layout(g *storage.GraphStore, vp viewport.Transform) []Box {
	nodes := g.Nodes()
	boxes := make([]Box, 0, len(nodes))
	for _, n := range nodes {
		pos, _ := g.Position(n.ID)
		origin := toCell(vp.GraphToScreen(viewport.V(pos.X, pos.Y)))

		box := Box{
			Node:   n.ID,
			Title:  n.Title,
			Origin: origin,
			Width:  lipgloss.Width(n.Title) + 4,
			Height: 2 + len(n.Inputs) + len(n.Outputs),
		}

		missing := make(map[storage.PortID]bool)
		for _, id := range g.MissingRequired(n.ID) {
			missing[id] = true
		}

		row := 1
		for _, id := range n.Inputs {
			port, err := g.Port(id)
			if err != nil {
				continue
			}
			_, wired := g.ConnectionTo(id)
			box.Inputs = append(box.Inputs, Slot{
				Port:    port,
				At:      Cell{X: origin.X, Y: origin.Y + row},
				Wired:   wired,
				Missing: missing[id],
			})
			box.Width = max(box.Width, lipgloss.Width(port.Label)+3)
			row++
		}
		for _, id := range n.Outputs {
			port, err := g.Port(id)
			if err != nil {
				continue
			}
			box.Outputs = append(box.Outputs, Slot{Port: port, At: Cell{Y: origin.Y + row}})
			box.Width = max(box.Width, lipgloss.Width(port.Label)+3)
			row++
		}
		// Output glyphs sit on the right border, known only once width is final.
		for i := range box.Outputs {
			box.Outputs[i].At.X = origin.X + box.Width - 1
		}
		boxes = append(boxes, box)
	}
	return boxes
}

// HitKind classifies what lies under a screen position
type HitKind uint8

const (
	HitNone HitKind = iota
	HitNode
	HitPort
)

// Hit is the result of a hit test
type Hit struct {
	Kind HitKind
	Node storage.NodeID
	Port storage.Port
}

// HitTest finds the topmost box under at. Any cell on a port's row counts
// as that port.
func HitTest(boxes []Box, at viewport.Vec2) Hit {
	p := Cell{X: saturate(math.Floor(at.X)), Y: saturate(math.Floor(at.Y))}
	for i := len(boxes) - 1; i >= 0; i-- {
		b := &boxes[i]
		if !b.Contains(p) {
			continue
		}
		for _, s := range b.Inputs {
			if s.At.Y == p.Y {
				return Hit{Kind: HitPort, Node: b.Node, Port: s.Port}
			}
		}
		for _, s := range b.Outputs {
			if s.At.Y == p.Y {
				return Hit{Kind: HitPort, Node: b.Node, Port: s.Port}
			}
		}
		return Hit{Kind: HitNode, Node: b.Node}
	}
	return Hit{}
}
