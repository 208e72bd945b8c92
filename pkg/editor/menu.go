package editor

import (
	"github.com/dd0wney/harmonia/pkg/templates"
	"github.com/dd0wney/harmonia/pkg/viewport"
)

// MenuState is the context menu: closed, or open at a screen anchor.
// The zero value is closed.
type MenuState struct {
	open   bool
	anchor viewport.Vec2
}

// Closed returns the closed menu state
func Closed() MenuState {
	return MenuState{}
}

// OpenAt returns a menu open at anchor
func OpenAt(anchor viewport.Vec2) MenuState {
	return MenuState{open: true, anchor: anchor}
}

// IsOpen reports whether the menu is showing
func (m MenuState) IsOpen() bool {
	return m.open
}

// Anchor returns the screen position the menu was opened at
func (m MenuState) Anchor() (viewport.Vec2, bool) {
	return m.anchor, m.open
}

// MenuItemKind distinguishes context menu entries
type MenuItemKind uint8

const (
	CreateItem MenuItemKind = iota
	PropertiesItem
	CancelItem
)

// MenuItem is one selectable context menu entry
type MenuItem struct {
	Kind     MenuItemKind
	Template templates.Template // CreateItem only
}

// Create returns the entry that spawns template t
func Create(t templates.Template) MenuItem {
	return MenuItem{Kind: CreateItem, Template: t}
}

// Properties and Cancel close the menu without touching the graph
var (
	Properties = MenuItem{Kind: PropertiesItem}
	Cancel     = MenuItem{Kind: CancelItem}
)

// Label returns the text shown for the entry
func (i MenuItem) Label() string {
	switch i.Kind {
	case CreateItem:
		return i.Template.MenuLabel()
	case PropertiesItem:
		return "Properties"
	default:
		return "Cancel"
	}
}

// ContextMenuItems lists the context menu: one creation entry per template
// (the "New" group) followed by Properties and Cancel.
func ContextMenuItems() []MenuItem {
	all := templates.All()
	items := make([]MenuItem, 0, len(all)+2)
	for _, t := range all {
		items = append(items, Create(t))
	}
	return append(items, Properties, Cancel)
}
