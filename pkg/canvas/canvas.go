// Package canvas is the terminal drawing widget for the node graph. It lays
// out node boxes, renders them into a cell buffer and turns pointer
// gestures into editor responses.
package canvas

import (
	"fmt"

	"github.com/dd0wney/harmonia/pkg/editor"
	"github.com/dd0wney/harmonia/pkg/storage"
	"github.com/dd0wney/harmonia/pkg/viewport"
	"github.com/dd0wney/harmonia/pkg/visualization"
)

// Canvas keeps the widget state that survives between frames: the output
// port awaiting an input and an in-progress background drag.
type Canvas struct {
	bounds viewport.Rect
	grid   visualization.GridConfig
	theme  Theme

	pending  storage.PortID
	dragging bool
	dragLast viewport.Vec2
}

// Option configures a Canvas
type Option func(*Canvas)

// WithGrid sets the dot grid configuration
func WithGrid(cfg visualization.GridConfig) Option {
	return func(c *Canvas) {
		c.grid = cfg
	}
}

// WithTheme sets the render styles
func WithTheme(t Theme) Option {
	return func(c *Canvas) {
		c.theme = t
	}
}

// New creates a canvas covering bounds in screen cells
func New(bounds viewport.Rect, opts ...Option) *Canvas {
	c := &Canvas{
		bounds: bounds,
		grid:   visualization.DefaultGridConfig(),
		theme:  DefaultTheme(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Bounds returns the screen rectangle the canvas covers
func (c *Canvas) Bounds() viewport.Rect {
	return c.bounds
}

// SetBounds resizes the canvas
func (c *Canvas) SetBounds(r viewport.Rect) {
	c.bounds = r
}

// Pending returns the selected output port, if any
func (c *Canvas) Pending() (storage.PortID, bool) {
	return c.pending, c.pending != 0
}

// Dragging reports whether a background drag holds the pointer
func (c *Canvas) Dragging() bool {
	return c.dragging
}

// Click handles a primary click. Clicking an output selects it; clicking an
// input then asks to connect the selected output to it, or to unplug the
// input's wire when nothing is selected. Anything else clears the selection.
func (c *Canvas) Click(g *storage.GraphStore, vp viewport.Transform, at viewport.Vec2) []editor.Response {
	// A selected output removed since it was clicked is no selection.
	if _, err := g.Port(c.pending); err != nil {
		c.pending = 0
	}
	hit := HitTest(Layout(g, vp), at)
	if hit.Kind != HitPort {
		c.pending = 0
		return nil
	}
	if !hit.Port.IsInput() {
		c.pending = hit.Port.ID
		return nil
	}
	if c.pending != 0 {
		out := c.pending
		c.pending = 0
		return []editor.Response{editor.ConnectPorts{Output: out, Input: hit.Port.ID}}
	}
	if _, wired := g.ConnectionTo(hit.Port.ID); wired {
		return []editor.Response{editor.DisconnectPort{Input: hit.Port.ID}}
	}
	return nil
}

// Delete asks to remove the node under at
func (c *Canvas) Delete(g *storage.GraphStore, vp viewport.Transform, at viewport.Vec2) []editor.Response {
	hit := HitTest(Layout(g, vp), at)
	if hit.Kind == HitNone {
		return nil
	}
	if port, err := g.Port(c.pending); err == nil && port.Node == hit.Node {
		c.pending = 0
	}
	return []editor.Response{editor.DeleteNode{Node: hit.Node}}
}

// BeginDrag starts panning when the press lands on empty canvas. It reports
// whether the drag was taken.
func (c *Canvas) BeginDrag(g *storage.GraphStore, vp viewport.Transform, at viewport.Vec2) bool {
	if !c.bounds.Contains(at) || HitTest(Layout(g, vp), at).Kind != HitNone {
		return false
	}
	c.dragging = true
	c.dragLast = at
	return true
}

// DragTo continues a drag and asks to pan by the pointer movement
func (c *Canvas) DragTo(at viewport.Vec2) []editor.Response {
	if !c.dragging {
		return nil
	}
	delta := at.Sub(c.dragLast)
	c.dragLast = at
	if delta == (viewport.Vec2{}) {
		return nil
	}
	return []editor.Response{editor.PanView{Delta: delta}}
}

// EndDrag releases the pointer
func (c *Canvas) EndDrag() {
	c.dragging = false
}

// Wires lists every connection as "Node.Port -> Node.Port" in input order
func Wires(g *storage.GraphStore) []string {
	conns := g.Connections()
	lines := make([]string, 0, len(conns))
	for _, conn := range conns {
		lines = append(lines, fmt.Sprintf("%s -> %s", endpoint(g, conn.Output), endpoint(g, conn.Input)))
	}
	return lines
}

func endpoint(g *storage.GraphStore, id storage.PortID) string {
	port, err := g.Port(id)
	if err != nil {
		return "?"
	}
	node, err := g.Node(port.Node)
	if err != nil {
		return "?." + port.Label
	}
	return fmt.Sprintf("%s#%d.%s", node.Title, node.ID, port.Label)
}
