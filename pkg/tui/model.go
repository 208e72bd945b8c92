// Package tui hosts the editor in a terminal: it translates bubbletea mouse
// and key messages into editor frames and draws the menu bar, canvas and
// status bar.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dd0wney/harmonia/pkg/canvas"
	"github.com/dd0wney/harmonia/pkg/editor"
	"github.com/dd0wney/harmonia/pkg/logging"
	"github.com/dd0wney/harmonia/pkg/viewport"
)

// DefaultScrollStep is the scroll delta reported for one wheel notch
const DefaultScrollStep = 50

// Model is the bubbletea model for the editor window
type Model struct {
	editor *editor.Editor
	canvas *canvas.Canvas
	logger logging.Logger

	title      string
	scrollStep float64

	keys keyMap
	help help.Model

	width  int
	height int

	pointer    viewport.Vec2
	hasPointer bool

	// dropdown is the open menu bar group, -1 when none
	dropdown  int
	menuItems []editor.MenuItem
	cursor    int
	showWires bool
}

// Option configures a Model
type Option func(*Model)

// WithTitle sets the terminal window title
func WithTitle(title string) Option {
	return func(m *Model) {
		m.title = title
	}
}

// WithScrollStep sets the scroll delta of one wheel notch
func WithScrollStep(step float64) Option {
	return func(m *Model) {
		if step > 0 {
			m.scrollStep = step
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger logging.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New creates the window model around an editor and its canvas widget
func New(ed *editor.Editor, cv *canvas.Canvas, opts ...Option) Model {
	m := Model{
		editor:     ed,
		canvas:     cv,
		logger:     logging.DefaultLogger(),
		title:      "Harmonia DAW",
		scrollStep: DefaultScrollStep,
		keys:       keys,
		help:       help.New(),
		dropdown:   -1,
		menuItems:  editor.ContextMenuItems(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.logger = m.logger.With(logging.Component("tui"))
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.title)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.canvas.SetBounds(canvasBounds(msg.Width, msg.Height))

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// canvasBounds leaves the top row for the menu bar and the bottom two for
// the status bar and help line.
func canvasBounds(width, height int) viewport.Rect {
	return viewport.RectFromSize(viewport.V(0, 1), float64(width), float64(max(0, height-3)))
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	menuOpen := m.editor.Menu().IsOpen()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.activate(editor.Exit)

	case key.Matches(msg, m.keys.Close):
		if menuOpen {
			m.selectItem(editor.Cancel)
		}
		m.dropdown = -1

	case menuOpen && key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + len(m.menuItems) - 1) % len(m.menuItems)

	case menuOpen && key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % len(m.menuItems)

	case menuOpen && key.Matches(msg, m.keys.Enter):
		m.selectItem(m.menuItems[m.cursor])

	case !menuOpen && key.Matches(msg, m.keys.Delete):
		if m.hasPointer {
			m.apply(m.canvas.Delete(m.editor.Graph(), m.editor.View(), m.pointer))
		}

	case key.Matches(msg, m.keys.Wires):
		m.showWires = !m.showWires
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.pointer = viewport.V(float64(msg.X), float64(msg.Y))
	m.hasPointer = true

	in := editor.Input{
		Pointer:     m.pointer,
		HasPointer:  true,
		PointerBusy: m.canvas.Dragging() || m.dropdown >= 0,
		Canvas:      m.canvas.Bounds(),
	}
	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			in.RawScroll = m.scrollStep
		case tea.MouseButtonWheelDown:
			in.RawScroll = -m.scrollStep
		case tea.MouseButtonRight:
			in.SecondaryClicked = true
		}
	}

	wasOpen := m.editor.Menu().IsOpen()
	m.editor.Update(&in)
	if !wasOpen && m.editor.Menu().IsOpen() {
		m.cursor = 0
	}

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return m.leftPress(msg.X, msg.Y)
	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft:
		m.apply(m.canvas.DragTo(m.pointer))
	case msg.Action == tea.MouseActionRelease:
		m.canvas.EndDrag()
	case msg.Action == tea.MouseActionMotion && wasOpen:
		if p, ok := m.contextPanel(); ok {
			if entry, ok := p.entryAt(msg.X, msg.Y); ok {
				m.cursor = entry
			}
		}
	}
	return m, nil
}

func (m Model) leftPress(x, y int) (tea.Model, tea.Cmd) {
	if m.dropdown >= 0 {
		groups := editor.MenuBar()
		offsets, _ := menuBarHeadings(groups)
		p := dropdownPanel(offsets[m.dropdown], groups[m.dropdown])
		entry, ok := p.entryAt(x, y)
		group := m.dropdown
		m.dropdown = -1
		if ok {
			return m, m.activate(groups[group].Entries[entry])
		}
		if y == 0 {
			m.toggleDropdown(x)
		}
		return m, nil
	}

	if p, ok := m.contextPanel(); ok {
		if entry, ok := p.entryAt(x, y); ok {
			m.selectItem(m.menuItems[entry])
		} else if !p.contains(x, y) {
			m.editor.DismissMenu()
		}
		return m, nil
	}

	if y == 0 {
		m.toggleDropdown(x)
		return m, nil
	}

	if m.canvas.Bounds().Contains(m.pointer) {
		g, vp := m.editor.Graph(), m.editor.View()
		m.apply(m.canvas.Click(g, vp, m.pointer))
		m.canvas.BeginDrag(g, vp, m.pointer)
	}
	return m, nil
}

func (m *Model) toggleDropdown(x int) {
	offsets, bar := menuBarHeadings(editor.MenuBar())
	if x >= len(bar) {
		return
	}
	for i := len(offsets) - 1; i >= 0; i-- {
		if x >= offsets[i] {
			m.dropdown = i
			return
		}
	}
}

func (m *Model) selectItem(item editor.MenuItem) {
	if _, err := m.editor.Select(item); err != nil {
		m.logger.Warn("menu selection failed", logging.String("item", item.Label()), logging.Error(err))
	}
	m.cursor = 0
}

func (m *Model) apply(responses []editor.Response) {
	if len(responses) == 0 {
		return
	}
	m.editor.ClearNotice()
	if err := m.editor.Apply(responses...); err != nil {
		m.logger.Debug("widget edit rejected", logging.Error(err))
	}
}

func (m *Model) activate(a editor.Action) tea.Cmd {
	if m.editor.Activate(a) {
		return tea.Quit
	}
	return nil
}

// contextPanel returns the open context menu laid out on screen
func (m Model) contextPanel() (panel, bool) {
	anchor, open := m.editor.Menu().Anchor()
	if !open {
		return panel{}, false
	}
	return contextPanel(anchor, m.menuItems).fit(m.canvas.Bounds()), true
}
