package editor

// Action is a menu bar entry
type Action uint8

const (
	NewProject Action = iota
	OpenProject
	Exit
	Undo
	Redo
	ZoomIn
	ZoomOut
)

var actionLabels = [...]string{
	NewProject:  "New Project",
	OpenProject: "Open Project",
	Exit:        "Exit",
	Undo:        "Undo",
	Redo:        "Redo",
	ZoomIn:      "Zoom In",
	ZoomOut:     "Zoom Out",
}

var actionNames = [...]string{
	NewProject:  "new_project",
	OpenProject: "open_project",
	Exit:        "exit",
	Undo:        "undo",
	Redo:        "redo",
	ZoomIn:      "zoom_in",
	ZoomOut:     "zoom_out",
}

func (a Action) Label() string {
	if int(a) >= len(actionLabels) {
		return "?"
	}
	return actionLabels[a]
}

func (a Action) Name() string {
	if int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Inert reports whether the entry is present but has no behaviour yet.
// Only Exit does anything.
func (a Action) Inert() bool {
	return a != Exit
}

// MenuGroup is a top-level menu bar heading
type MenuGroup struct {
	Title   string
	Entries []Action
}

// MenuBar returns the menu bar layout
func MenuBar() []MenuGroup {
	return []MenuGroup{
		{Title: "File", Entries: []Action{NewProject, OpenProject, Exit}},
		{Title: "Edit", Entries: []Action{Undo, Redo}},
		{Title: "View", Entries: []Action{ZoomIn, ZoomOut}},
	}
}
