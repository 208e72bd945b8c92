package canvas

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dd0wney/harmonia/pkg/signal"
	"github.com/dd0wney/harmonia/pkg/storage"
	"github.com/dd0wney/harmonia/pkg/viewport"
	"github.com/dd0wney/harmonia/pkg/visualization"
)

// Glyphs drawn by the canvas
const (
	GridGlyph    = '·'
	WireGlyph    = '•'
	PortGlyph    = '●'
	MissingGlyph = '○'
	PendingGlyph = '◉'
)

type styleKey uint8

const (
	stylePlain styleKey = iota
	styleGrid
	styleBorder
	styleTitle
	styleMissing
	stylePending
	styleMenu
	styleMenuSelected
	styleKind // styleKind + signal.Kind
)

func kindStyle(k signal.Kind) styleKey {
	return styleKind + styleKey(k)
}

// Theme holds the lipgloss styles used to paint a frame
type Theme struct {
	Grid    lipgloss.Style
	Border  lipgloss.Style
	Title   lipgloss.Style
	Missing lipgloss.Style
	Pending lipgloss.Style
	Kinds   map[signal.Kind]lipgloss.Style

	Menu         lipgloss.Style
	MenuSelected lipgloss.Style
}

// DefaultTheme colours ports and wires by their kind
func DefaultTheme() Theme {
	t := Theme{
		Grid:    lipgloss.NewStyle().Foreground(lipgloss.Color("#444444")),
		Border:  lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA")),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")),
		Missing: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")),
		Pending: lipgloss.NewStyle().Bold(true).Reverse(true),
		Kinds:   make(map[signal.Kind]lipgloss.Style),

		Menu:         lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#303030")),
		MenuSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#FF00FF")),
	}
	for _, k := range signal.Kinds() {
		t.Kinds[k] = lipgloss.NewStyle().Foreground(lipgloss.Color(k.Color().Hex()))
	}
	return t
}

func (t Theme) style(key styleKey) (lipgloss.Style, bool) {
	switch key {
	case stylePlain:
		return lipgloss.Style{}, false
	case styleGrid:
		return t.Grid, true
	case styleBorder:
		return t.Border, true
	case styleTitle:
		return t.Title, true
	case styleMissing:
		return t.Missing, true
	case stylePending:
		return t.Pending, true
	case styleMenu:
		return t.Menu, true
	case styleMenuSelected:
		return t.MenuSelected, true
	}
	s, ok := t.Kinds[signal.Kind(key-styleKind)]
	return s, ok
}

type cell struct {
	r     rune
	style styleKey
}

// Frame is a rendered canvas: a grid of styled cells
type Frame struct {
	width  int
	height int
	origin Cell
	cells  []cell
}

func newFrame(bounds viewport.Rect) *Frame {
	w := max(0, saturate(math.Floor(bounds.Width())))
	h := max(0, saturate(math.Floor(bounds.Height())))
	f := &Frame{
		width:  w,
		height: h,
		origin: Cell{X: saturate(math.Floor(bounds.Min.X)), Y: saturate(math.Floor(bounds.Min.Y))},
		cells:  make([]cell, w*h),
	}
	for i := range f.cells {
		f.cells[i] = cell{r: ' '}
	}
	return f
}

// set writes a rune at a screen cell, ignoring cells outside the frame
func (f *Frame) set(p Cell, r rune, style styleKey) {
	x, y := p.X-f.origin.X, p.Y-f.origin.Y
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	f.cells[y*f.width+x] = cell{r: r, style: style}
}

func (f *Frame) text(p Cell, s string, style styleKey) {
	for _, r := range s {
		f.set(p, r, style)
		p.X++
	}
}

// Overlay draws a panel of text over the frame with its top-left corner at
// a screen cell. Line selected is highlighted; pass -1 for none.
func (f *Frame) Overlay(at Cell, lines []string, selected int) {
	for i, line := range lines {
		style := styleMenu
		if i == selected {
			style = styleMenuSelected
		}
		f.text(Cell{X: at.X, Y: at.Y + i}, line, style)
	}
}

// At returns the rune at a screen cell
func (f *Frame) At(x, y int) rune {
	x, y = x-f.origin.X, y-f.origin.Y
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return 0
	}
	return f.cells[y*f.width+x].r
}

// Lines returns the frame as unstyled text, one string per row
func (f *Frame) Lines() []string {
	lines := make([]string, f.height)
	var b strings.Builder
	for y := range f.height {
		b.Reset()
		for _, c := range f.cells[y*f.width : (y+1)*f.width] {
			b.WriteRune(c.r)
		}
		lines[y] = b.String()
	}
	return lines
}

// Render paints the frame with theme, grouping runs of equally styled cells
func (f *Frame) Render(theme Theme) string {
	var out strings.Builder
	var run strings.Builder
	for y := range f.height {
		if y > 0 {
			out.WriteByte('\n')
		}
		row := f.cells[y*f.width : (y+1)*f.width]
		for i := 0; i < len(row); {
			key := row[i].style
			run.Reset()
			for ; i < len(row) && row[i].style == key; i++ {
				run.WriteRune(row[i].r)
			}
			if s, ok := theme.style(key); ok {
				out.WriteString(s.Render(run.String()))
			} else {
				out.WriteString(run.String())
			}
		}
	}
	return out.String()
}

// Frame draws the grid, wires and node boxes for the current view
func (c *Canvas) Frame(g *storage.GraphStore, vp viewport.Transform) *Frame {
	f := newFrame(c.bounds)

	for _, dot := range visualization.DotGrid(c.bounds, vp, c.grid) {
		f.set(Cell{X: saturate(math.Floor(dot.X)), Y: saturate(math.Floor(dot.Y))}, GridGlyph, styleGrid)
	}

	boxes := Layout(g, vp)
	slots := make(map[storage.PortID]Cell)
	for _, b := range boxes {
		for _, s := range b.Inputs {
			slots[s.Port.ID] = s.At
		}
		for _, s := range b.Outputs {
			slots[s.Port.ID] = s.At
		}
	}
	for _, conn := range g.Connections() {
		from, okFrom := slots[conn.Output]
		to, okTo := slots[conn.Input]
		port, err := g.Port(conn.Output)
		if !okFrom || !okTo || err != nil {
			continue
		}
		f.line(from, to, kindStyle(port.Kind))
	}

	for i := range boxes {
		f.box(&boxes[i], c.pending)
	}
	return f
}

// Render draws the canvas as styled terminal text
func (c *Canvas) Render(g *storage.GraphStore, vp viewport.Transform) string {
	return c.Paint(c.Frame(g, vp))
}

// Paint renders a frame, possibly with overlays added, in the canvas theme
func (c *Canvas) Paint(f *Frame) string {
	return f.Render(c.theme)
}

func (f *Frame) box(b *Box, pending storage.PortID) {
	right := b.Origin.X + b.Width - 1
	bottom := b.Origin.Y + b.Height - 1

	f.set(b.Origin, '┌', styleBorder)
	f.set(Cell{X: right, Y: b.Origin.Y}, '┐', styleBorder)
	f.set(Cell{X: b.Origin.X, Y: bottom}, '└', styleBorder)
	f.set(Cell{X: right, Y: bottom}, '┘', styleBorder)
	for x := b.Origin.X + 1; x < right; x++ {
		f.set(Cell{X: x, Y: b.Origin.Y}, '─', styleBorder)
		f.set(Cell{X: x, Y: bottom}, '─', styleBorder)
	}
	for y := b.Origin.Y + 1; y < bottom; y++ {
		f.set(Cell{X: b.Origin.X, Y: y}, '│', styleBorder)
		f.set(Cell{X: right, Y: y}, '│', styleBorder)
		for x := b.Origin.X + 1; x < right; x++ {
			f.set(Cell{X: x, Y: y}, ' ', stylePlain)
		}
	}
	f.text(Cell{X: b.Origin.X + 2, Y: b.Origin.Y}, b.Title, styleTitle)

	for _, s := range b.Inputs {
		glyph, style := PortGlyph, kindStyle(s.Port.Kind)
		labelStyle := stylePlain
		if s.Missing {
			glyph, labelStyle = MissingGlyph, styleMissing
		}
		f.set(s.At, glyph, style)
		f.text(Cell{X: s.At.X + 2, Y: s.At.Y}, s.Port.Label, labelStyle)
	}
	for _, s := range b.Outputs {
		glyph, style := PortGlyph, kindStyle(s.Port.Kind)
		if s.Port.ID == pending {
			glyph, style = PendingGlyph, stylePending
		}
		f.set(s.At, glyph, style)
		f.text(Cell{X: s.At.X - 1 - lipgloss.Width(s.Port.Label), Y: s.At.Y}, s.Port.Label, stylePlain)
	}
}

// line draws a wire between two cells, clipped to the frame first so that
// far-off endpoints cost nothing.
func (f *Frame) line(from, to Cell, style styleKey) {
	x0, y0 := float64(from.X), float64(from.Y)
	x1, y1 := float64(to.X), float64(to.Y)
	minX, minY := float64(f.origin.X), float64(f.origin.Y)
	maxX, maxY := minX+float64(f.width-1), minY+float64(f.height-1)

	x0, y0, x1, y1, ok := clip(x0, y0, x1, y1, minX, minY, maxX, maxY)
	if !ok {
		return
	}

	ax, ay := int(math.Round(x0)), int(math.Round(y0))
	bx, by := int(math.Round(x1)), int(math.Round(y1))
	dx, dy := abs(bx-ax), -abs(by-ay)
	sx, sy := sign(bx-ax), sign(by-ay)
	e := dx + dy
	for {
		f.set(Cell{X: ax, Y: ay}, WireGlyph, style)
		if ax == bx && ay == by {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			ax += sx
		}
		if e2 <= dx {
			e += dx
			ay += sy
		}
	}
}

// clip is Liang-Barsky segment clipping against an axis-aligned rectangle
func clip(x0, y0, x1, y1, minX, minY, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	if maxX < minX || maxY < minY {
		return 0, 0, 0, 0, false
	}
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 - minX},
		{dx, maxX - x0},
		{-dy, y0 - minY},
		{dy, maxY - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = min(t1, r)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
