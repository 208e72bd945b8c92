package main

import (
	"testing"

	"github.com/dd0wney/harmonia/pkg/config"
	"github.com/dd0wney/harmonia/pkg/logging"
	"github.com/dd0wney/harmonia/pkg/metrics"
	"github.com/dd0wney/harmonia/pkg/storage"
	"github.com/dd0wney/harmonia/pkg/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEditorPlacesSeeds(t *testing.T) {
	cfg, err := config.Parse([]byte(`
viewport:
  min_zoom: 0.5
  max_zoom: 4
seed:
  - template: midi_source
    x: 10
    y: 20
  - template: Audio Mixer
    x: -5
    y: 0
`))
	require.NoError(t, err)

	ed, err := newEditor(cfg, metrics.NewRegistry(), logging.NewNopLogger())
	require.NoError(t, err)

	nodes := ed.Graph().Nodes()
	require.Len(t, nodes, 2)
	assert.Equal(t, templates.MidiSource, nodes[0].Data.Template)
	assert.Equal(t, templates.Mixer, nodes[1].Data.Template)

	pos, ok := ed.Graph().Position(nodes[1].ID)
	require.True(t, ok)
	assert.Equal(t, storage.Position{X: -5, Y: 0}, pos)

	lo, hi := ed.View().Limits()
	assert.Equal(t, 0.5, lo)
	assert.Equal(t, 4.0, hi)
}

func TestNewEditorDefaults(t *testing.T) {
	ed, err := newEditor(config.Default(), metrics.NewRegistry(), logging.NewNopLogger())
	require.NoError(t, err)
	assert.Equal(t, 0, ed.Graph().NodeCount())
	assert.Equal(t, 1.0, ed.View().Zoom)
}
