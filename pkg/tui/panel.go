package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dd0wney/harmonia/pkg/canvas"
	"github.com/dd0wney/harmonia/pkg/editor"
	"github.com/dd0wney/harmonia/pkg/viewport"
)

// panel is a boxed list drawn over the canvas. rows maps each line to the
// entry it selects, or -1 for decoration.
type panel struct {
	origin canvas.Cell
	width  int
	lines  []string
	rows   []int
}

type panelEntry struct {
	label      string
	selectable bool
}

func newPanel(origin canvas.Cell, entries []panelEntry) panel {
	inner := 0
	for _, e := range entries {
		inner = max(inner, lipgloss.Width(e.label))
	}
	inner += 2

	p := panel{origin: origin, width: inner + 2}
	p.add("┌"+strings.Repeat("─", inner)+"┐", -1)
	item := 0
	for _, e := range entries {
		row := -1
		if e.selectable {
			row = item
			item++
		}
		pad := inner - 1 - lipgloss.Width(e.label)
		p.add("│ "+e.label+strings.Repeat(" ", pad)+"│", row)
	}
	p.add("└"+strings.Repeat("─", inner)+"┘", -1)
	return p
}

func (p *panel) add(line string, row int) {
	p.lines = append(p.lines, line)
	p.rows = append(p.rows, row)
}

func (p panel) height() int {
	return len(p.lines)
}

// fit moves the panel so it stays inside bounds where possible
func (p panel) fit(bounds viewport.Rect) panel {
	maxX := int(bounds.Max.X) - p.width
	maxY := int(bounds.Max.Y) - p.height()
	p.origin.X = max(int(bounds.Min.X), min(p.origin.X, maxX))
	p.origin.Y = max(int(bounds.Min.Y), min(p.origin.Y, maxY))
	return p
}

func (p panel) contains(x, y int) bool {
	return x >= p.origin.X && x < p.origin.X+p.width &&
		y >= p.origin.Y && y < p.origin.Y+p.height()
}

// entryAt returns the selectable entry on the line under (x, y)
func (p panel) entryAt(x, y int) (int, bool) {
	if !p.contains(x, y) {
		return 0, false
	}
	row := p.rows[y-p.origin.Y]
	return row, row >= 0
}

// lineOf returns the line showing entry, or -1
func (p panel) lineOf(entry int) int {
	for i, r := range p.rows {
		if r == entry {
			return i
		}
	}
	return -1
}

// contextPanel lays out the context menu: the creation entries grouped
// under a "New" heading, then Properties and Cancel.
func contextPanel(anchor viewport.Vec2, items []editor.MenuItem) panel {
	entries := []panelEntry{{label: "New"}}
	for _, item := range items {
		label := item.Label()
		if item.Kind == editor.CreateItem {
			label = "  " + label
		}
		entries = append(entries, panelEntry{label: label, selectable: true})
	}
	origin := canvas.Cell{X: int(anchor.X), Y: int(anchor.Y)}
	return newPanel(origin, entries)
}

// menuBarHeadings returns the x offset of each menu bar heading
func menuBarHeadings(groups []editor.MenuGroup) ([]int, string) {
	var b strings.Builder
	offsets := make([]int, len(groups))
	for i, g := range groups {
		offsets[i] = lipgloss.Width(b.String())
		b.WriteString(" " + g.Title + " ")
	}
	return offsets, b.String()
}

func dropdownPanel(x int, group editor.MenuGroup) panel {
	entries := make([]panelEntry, len(group.Entries))
	for i, a := range group.Entries {
		entries[i] = panelEntry{label: a.Label(), selectable: true}
	}
	return newPanel(canvas.Cell{X: x, Y: 1}, entries)
}
