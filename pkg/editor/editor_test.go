package editor

import (
	"testing"

	"github.com/dd0wney/harmonia/pkg/storage"
	"github.com/dd0wney/harmonia/pkg/templates"
	"github.com/dd0wney/harmonia/pkg/viewport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRecorder struct {
	zooms       []float64
	transitions []string
	actions     []string
	frames      int
}

func (r *recordingRecorder) RecordZoom(z float64) {
	r.zooms = append(r.zooms, z)
}

func (r *recordingRecorder) RecordMenuTransition(event string) {
	r.transitions = append(r.transitions, event)
}

func (r *recordingRecorder) RecordMenuBarAction(a string) {
	r.actions = append(r.actions, a)
}

func (r *recordingRecorder) RecordFrame() {
	r.frames++
}

var canvas = viewport.RectFromSize(viewport.V(0, 0), 800, 600)

func newEditor(t *testing.T, opts ...Option) (*Editor, *recordingRecorder) {
	t.Helper()
	rec := &recordingRecorder{}
	e := New(storage.NewGraphStore(), append([]Option{WithRecorder(rec)}, opts...)...)
	return e, rec
}

func rightClick(x, y float64) *Input {
	return &Input{Pointer: viewport.V(x, y), HasPointer: true, SecondaryClicked: true, Canvas: canvas}
}

func TestRightClickCreatesMixerAtAnchor(t *testing.T) {
	e, rec := newEditor(t)

	e.Update(rightClick(100, 50))
	require.True(t, e.Menu().IsOpen())
	anchor, _ := e.Menu().Anchor()
	assert.Equal(t, viewport.V(100, 50), anchor)

	id, err := e.Select(Create(templates.Mixer))
	require.NoError(t, err)
	assert.False(t, e.Menu().IsOpen())

	pos, ok := e.Graph().Position(id)
	require.True(t, ok)
	assert.Equal(t, storage.Position{X: 100, Y: 50}, pos)

	node, err := e.Graph().Node(id)
	require.NoError(t, err)
	assert.Equal(t, "Audio Mixer", node.Title)
	assert.Len(t, node.Inputs, 2)
	assert.Len(t, node.Outputs, 1)

	assert.Equal(t, []string{"open", "create"}, rec.transitions)
	assert.Equal(t, 1, rec.frames)
}

func TestCreateUsesCurrentViewport(t *testing.T) {
	e, _ := newEditor(t)

	e.Update(rightClick(100, 50))
	// Zooming while the menu is open moves the graph under the anchor.
	e.Update(&Input{Pointer: viewport.V(0, 0), HasPointer: true, RawScroll: 50, Canvas: canvas})
	zoom := e.View().Zoom
	require.Greater(t, zoom, 1.0)

	id, err := e.Select(Create(templates.Effect))
	require.NoError(t, err)
	pos, _ := e.Graph().Position(id)
	assert.InDelta(t, 100/zoom, pos.X, 1e-9)
	assert.InDelta(t, 50/zoom, pos.Y, 1e-9)
}

func TestCancelPropertiesAndDismissDoNotMutate(t *testing.T) {
	for _, tc := range []struct {
		name  string
		event string
		apply func(e *Editor)
	}{
		{"cancel", "cancel", func(e *Editor) { _, _ = e.Select(Cancel) }},
		{"properties", "properties", func(e *Editor) { _, _ = e.Select(Properties) }},
		{"click outside", "dismiss", func(e *Editor) { e.DismissMenu() }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			e, rec := newEditor(t)
			e.Update(rightClick(10, 10))
			require.True(t, e.Menu().IsOpen())

			tc.apply(e)
			assert.False(t, e.Menu().IsOpen())
			assert.Equal(t, 0, e.Graph().NodeCount())
			assert.Equal(t, []string{"open", tc.event}, rec.transitions)
		})
	}
}

func TestSecondaryClickWhileOpenKeepsAnchor(t *testing.T) {
	e, _ := newEditor(t)
	e.Update(rightClick(10, 20))
	e.Update(rightClick(300, 400))

	anchor, open := e.Menu().Anchor()
	require.True(t, open)
	assert.Equal(t, viewport.V(10, 20), anchor)
}

func TestMenuDoesNotOpen(t *testing.T) {
	tests := []struct {
		name  string
		input *Input
	}{
		{"pointer busy", &Input{Pointer: viewport.V(5, 5), HasPointer: true, SecondaryClicked: true, PointerBusy: true, Canvas: canvas}},
		{"outside canvas", rightClick(900, 5)},
		{"no pointer", &Input{SecondaryClicked: true, Canvas: canvas}},
		{"no click", &Input{Pointer: viewport.V(5, 5), HasPointer: true, Canvas: canvas}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newEditor(t)
			e.Update(tt.input)
			assert.False(t, e.Menu().IsOpen())
		})
	}
}

func TestSelectWhileClosedIsNoop(t *testing.T) {
	e, rec := newEditor(t)
	id, err := e.Select(Create(templates.Mixer))
	require.NoError(t, err)
	assert.Zero(t, id)
	assert.Equal(t, 0, e.Graph().NodeCount())
	assert.Empty(t, rec.transitions)

	e.DismissMenu()
	assert.Empty(t, rec.transitions)
}

func TestScrollZoomIsConsumed(t *testing.T) {
	e, rec := newEditor(t)
	in := &Input{Pointer: viewport.V(50, 50), HasPointer: true, RawScroll: 100, SmoothScroll: 20, Canvas: canvas}

	e.Update(in)
	assert.Zero(t, in.RawScroll)
	assert.Zero(t, in.SmoothScroll)
	assert.InDelta(t, viewport.ScrollFactor(120, viewport.DefaultSensitivity), e.View().Zoom, 1e-12)
	assert.Len(t, rec.zooms, 1)

	// The anchor stays put in graph space.
	assert.InDelta(t, 50, e.View().ScreenToGraph(viewport.V(50, 50)).X, 1e-9)
}

func TestExtremeScrollReachesZoomLimits(t *testing.T) {
	tests := []struct {
		name   string
		scroll float64
		want   float64
	}{
		{"zoom out", -1e6, viewport.DefaultMinZoom},
		{"zoom in", 1e6, viewport.DefaultMaxZoom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, rec := newEditor(t)
			in := &Input{Pointer: viewport.V(40, 30), HasPointer: true, RawScroll: tt.scroll, Canvas: canvas}

			e.Update(in)
			assert.Equal(t, tt.want, e.View().Zoom)
			assert.Zero(t, in.RawScroll)
			assert.Equal(t, []float64{tt.want}, rec.zooms)

			g := e.View().ScreenToGraph(viewport.V(40, 30))
			assert.InDelta(t, 40, g.X, 1e-6)
			assert.InDelta(t, 30, g.Y, 1e-6)
		})
	}
}

func TestScrollOutsideCanvasIsIgnored(t *testing.T) {
	e, _ := newEditor(t)
	in := &Input{Pointer: viewport.V(-5, 50), HasPointer: true, RawScroll: 100, Canvas: canvas}

	e.Update(in)
	assert.Equal(t, 100.0, in.RawScroll)
	assert.Equal(t, 1.0, e.View().Zoom)
}

func TestZoomAppliedBeforeMenuAnchorInSameFrame(t *testing.T) {
	e, _ := newEditor(t)
	in := rightClick(200, 100)
	in.RawScroll = -300

	e.Update(in)
	zoom := e.View().Zoom
	require.Less(t, zoom, 1.0)

	id, err := e.Select(Create(templates.SoundSource))
	require.NoError(t, err)
	pos, _ := e.Graph().Position(id)
	// Zoom was anchored at the click, so the click maps to itself.
	assert.InDelta(t, 200, pos.X, 1e-9)
	assert.InDelta(t, 100, pos.Y, 1e-9)
}

func TestSensitivityOption(t *testing.T) {
	e, _ := newEditor(t, WithSensitivity(0.01))
	e.Update(&Input{Pointer: viewport.V(0, 0), HasPointer: true, RawScroll: 10, Canvas: canvas})
	assert.InDelta(t, viewport.ScrollFactor(10, 0.01), e.View().Zoom, 1e-12)
}

func TestViewportLimitsOption(t *testing.T) {
	limited, err := viewport.NewWithLimits(0.5, 2)
	require.NoError(t, err)
	e, _ := newEditor(t, WithViewport(limited))

	e.Update(&Input{Pointer: viewport.V(0, 0), HasPointer: true, RawScroll: 100000, Canvas: canvas})
	assert.Equal(t, 2.0, e.View().Zoom)
}

func TestApplyResponses(t *testing.T) {
	e, _ := newEditor(t)
	g := e.Graph()

	midi, err := e.Place(templates.MidiSource, viewport.V(0, 0))
	require.NoError(t, err)
	synth, err := e.Place(templates.SoundSource, viewport.V(100, 0))
	require.NoError(t, err)
	mixer, err := e.Place(templates.Mixer, viewport.V(200, 0))
	require.NoError(t, err)

	midiOut, err := g.PortByLabel(midi, templates.Output, "MIDI Out")
	require.NoError(t, err)
	midiIn, err := g.PortByLabel(synth, templates.Input, "MIDI In")
	require.NoError(t, err)
	mixIn, err := g.PortByLabel(mixer, templates.Input, "In 1")
	require.NoError(t, err)

	require.NoError(t, e.Apply(ConnectPorts{Output: midiOut, Input: midiIn}))
	assert.Equal(t, 1, g.ConnectionCount())
	assert.Empty(t, e.Notice())

	err = e.Apply(ConnectPorts{Output: midiOut, Input: mixIn})
	assert.ErrorIs(t, err, storage.ErrIncompatibleKind)
	assert.Equal(t, "Cannot connect: port kinds differ", e.Notice())
	assert.Equal(t, 1, g.ConnectionCount())

	require.NoError(t, e.Apply(DisconnectPort{Input: midiIn}))
	assert.Equal(t, 0, g.ConnectionCount())

	require.NoError(t, e.Apply(PanView{Delta: viewport.V(3, -4)}))
	assert.Equal(t, viewport.V(3, -4), e.View().Pan)

	require.NoError(t, e.Apply(DeleteNode{Node: mixer}))
	assert.Equal(t, 2, g.NodeCount())

	err = e.Apply(DeleteNode{Node: mixer})
	assert.ErrorIs(t, err, storage.ErrUnknownIdentity)

	e.ClearNotice()
	assert.Empty(t, e.Notice())
}

func TestStatusLine(t *testing.T) {
	e, _ := newEditor(t)
	status, nodes := e.StatusLine()
	assert.Equal(t, "Harmonia Engine Status: Ready", status)
	assert.Equal(t, "Nodes: 0", nodes)

	_, err := e.Place(templates.Effect, viewport.V(1, 1))
	require.NoError(t, err)
	_, nodes = e.StatusLine()
	assert.Equal(t, "Nodes: 1", nodes)
}

func TestPlaceUnknownTemplate(t *testing.T) {
	e, _ := newEditor(t)
	_, err := e.Place(templates.Template(77), viewport.V(0, 0))
	assert.ErrorIs(t, err, storage.ErrUnknownTemplate)
	assert.Equal(t, 0, e.Graph().NodeCount())
}

func TestSessionIsUnique(t *testing.T) {
	a, _ := newEditor(t)
	b, _ := newEditor(t)
	assert.Len(t, a.Session(), 36)
	assert.NotEqual(t, a.Session(), b.Session())
}
