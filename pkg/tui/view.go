package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dd0wney/harmonia/pkg/canvas"
	"github.com/dd0wney/harmonia/pkg/editor"
)

var (
	menuBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#303030"))

	activeHeadingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.Color("#FF00FF"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var s strings.Builder
	s.WriteString(m.renderMenuBar())
	s.WriteString("\n")
	if body := m.renderCanvas(); body != "" {
		s.WriteString(body)
		s.WriteString("\n")
	}
	s.WriteString(m.renderStatusBar())
	s.WriteString("\n")
	s.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	return s.String()
}

func (m Model) renderMenuBar() string {
	groups := editor.MenuBar()
	var headings []string
	for i, g := range groups {
		label := " " + g.Title + " "
		if i == m.dropdown {
			headings = append(headings, activeHeadingStyle.Render(label))
		} else {
			headings = append(headings, menuBarStyle.Render(label))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, headings...)
	if fill := m.width - lipgloss.Width(bar); fill > 0 {
		bar += menuBarStyle.Render(strings.Repeat(" ", fill))
	}
	return bar
}

func (m Model) renderCanvas() string {
	frame := m.canvas.Frame(m.editor.Graph(), m.editor.View())

	if m.showWires {
		m.overlayWires(frame)
	}
	if m.dropdown >= 0 {
		groups := editor.MenuBar()
		offsets, _ := menuBarHeadings(groups)
		p := dropdownPanel(offsets[m.dropdown], groups[m.dropdown])
		frame.Overlay(p.origin, p.lines, -1)
	}
	if p, ok := m.contextPanel(); ok {
		frame.Overlay(p.origin, p.lines, p.lineOf(m.cursor))
	}
	return m.canvas.Paint(frame)
}

func (m Model) overlayWires(frame *canvas.Frame) {
	wires := canvas.Wires(m.editor.Graph())
	if len(wires) == 0 {
		wires = []string{"no wires"}
	}
	entries := make([]panelEntry, len(wires))
	for i, w := range wires {
		entries[i] = panelEntry{label: w}
	}
	p := newPanel(canvas.Cell{}, entries)
	p.origin.X = m.width - p.width
	p.origin.Y = 1
	frame.Overlay(p.fit(m.canvas.Bounds()).origin, p.lines, -1)
}

func (m Model) renderStatusBar() string {
	status, nodes := m.editor.StatusLine()
	left := statusStyle.Render(status)
	right := fmt.Sprintf("zoom %.2f  %s", m.editor.View().Zoom, nodes)

	middle := ""
	if notice := m.editor.Notice(); notice != "" {
		middle = "  " + noticeStyle.Render(notice)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(middle) - lipgloss.Width(right)
	return left + middle + strings.Repeat(" ", max(1, gap)) + right
}
