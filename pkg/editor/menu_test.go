package editor

import (
	"testing"

	"github.com/dd0wney/harmonia/pkg/templates"
	"github.com/dd0wney/harmonia/pkg/viewport"
	"github.com/stretchr/testify/assert"
)

func TestMenuStateZeroValueIsClosed(t *testing.T) {
	var m MenuState
	assert.False(t, m.IsOpen())
	assert.Equal(t, Closed(), m)

	_, open := m.Anchor()
	assert.False(t, open)

	anchor, open := OpenAt(viewport.V(1, 2)).Anchor()
	assert.True(t, open)
	assert.Equal(t, viewport.V(1, 2), anchor)
}

func TestContextMenuItems(t *testing.T) {
	var labels []string
	for _, item := range ContextMenuItems() {
		labels = append(labels, item.Label())
	}
	assert.Equal(t, []string{"MIDI Node", "Sound Source", "Effect", "Mixer", "Properties", "Cancel"}, labels)
	assert.Equal(t, Create(templates.Mixer), ContextMenuItems()[3])
}

func TestMenuBarLayout(t *testing.T) {
	bar := MenuBar()
	assert.Len(t, bar, 3)
	assert.Equal(t, "File", bar[0].Title)
	assert.Equal(t, []Action{NewProject, OpenProject, Exit}, bar[0].Entries)
	assert.Equal(t, []Action{Undo, Redo}, bar[1].Entries)
	assert.Equal(t, []Action{ZoomIn, ZoomOut}, bar[2].Entries)
	assert.Equal(t, "Zoom Out", ZoomOut.Label())
}

func TestActivate(t *testing.T) {
	e, rec := newEditor(t)
	before := e.View()

	for _, a := range []Action{NewProject, OpenProject, Undo, Redo, ZoomIn, ZoomOut} {
		assert.True(t, a.Inert(), a.Label())
		assert.False(t, e.Activate(a), a.Label())
	}
	assert.Equal(t, before, e.View())
	assert.Equal(t, 0, e.Graph().NodeCount())

	assert.False(t, Exit.Inert())
	assert.True(t, e.Activate(Exit))
	assert.Equal(t, []string{"new_project", "open_project", "undo", "redo", "zoom_in", "zoom_out", "exit"}, rec.actions)
}
