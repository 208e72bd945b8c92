// Package editor is the interaction controller: it turns per-frame host
// input into viewport changes, context menu transitions and graph edits.
package editor

import (
	"errors"
	"fmt"

	"github.com/dd0wney/harmonia/pkg/logging"
	"github.com/dd0wney/harmonia/pkg/storage"
	"github.com/dd0wney/harmonia/pkg/templates"
	"github.com/dd0wney/harmonia/pkg/viewport"
	"github.com/google/uuid"
)

// Status is the fixed engine status shown in the status bar
const Status = "Harmonia Engine Status: Ready"

// Input is the host state for one frame. Update zeroes the scroll fields it
// consumes so the drawing widget does not see them again.
type Input struct {
	Pointer    viewport.Vec2
	HasPointer bool
	// SecondaryClicked is true in the frame a secondary button click completed
	SecondaryClicked bool
	// PointerBusy is true while the pointer is captured by a drag
	PointerBusy  bool
	RawScroll    float64
	SmoothScroll float64
	Canvas       viewport.Rect
}

// Scroll returns the combined scroll delta for the frame
func (in *Input) Scroll() float64 {
	return in.RawScroll + in.SmoothScroll
}

// Recorder receives editor activity. The metrics registry implements it.
type Recorder interface {
	RecordZoom(zoom float64)
	RecordMenuTransition(event string)
	RecordMenuBarAction(action string)
	RecordFrame()
}

type nopRecorder struct{}

func (nopRecorder) RecordZoom(float64)          {}
func (nopRecorder) RecordMenuTransition(string) {}
func (nopRecorder) RecordMenuBarAction(string)  {}
func (nopRecorder) RecordFrame()                {}

// Editor owns the viewport and menu state and drives the graph store
type Editor struct {
	graph       *storage.GraphStore
	view        viewport.Transform
	menu        MenuState
	sensitivity float64
	notice      string

	session  string
	logger   logging.Logger
	recorder Recorder
}

// Option configures an Editor
type Option func(*Editor)

// WithLogger sets the editor logger
func WithLogger(logger logging.Logger) Option {
	return func(e *Editor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithRecorder attaches an activity recorder
func WithRecorder(r Recorder) Option {
	return func(e *Editor) {
		if r != nil {
			e.recorder = r
		}
	}
}

// WithSensitivity sets the scroll-to-zoom sensitivity
func WithSensitivity(s float64) Option {
	return func(e *Editor) {
		if s > 0 {
			e.sensitivity = s
		}
	}
}

// WithViewport replaces the initial identity viewport, typically to apply
// configured zoom limits.
func WithViewport(t viewport.Transform) Option {
	return func(e *Editor) {
		if t.Zoom > 0 {
			e.view = t
		}
	}
}

// New creates an editor over graph
func New(graph *storage.GraphStore, opts ...Option) *Editor {
	e := &Editor{
		graph:       graph,
		view:        viewport.New(),
		menu:        Closed(),
		sensitivity: viewport.DefaultSensitivity,
		session:     uuid.New().String(),
		logger:      logging.DefaultLogger(),
		recorder:    nopRecorder{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With(logging.Component("editor"), logging.Session(e.session))
	return e
}

// Graph returns the store the editor mutates
func (e *Editor) Graph() *storage.GraphStore {
	return e.graph
}

// View returns the current viewport
func (e *Editor) View() viewport.Transform {
	return e.view
}

// Menu returns the context menu state
func (e *Editor) Menu() MenuState {
	return e.menu
}

// Session returns the editor session id
func (e *Editor) Session() string {
	return e.session
}

// Update processes one frame of input. Scroll-driven zoom is applied first,
// so a menu opened in the same frame is anchored against the new view.
func (e *Editor) Update(in *Input) {
	e.recorder.RecordFrame()

	if in.HasPointer && in.Canvas.Contains(in.Pointer) {
		if delta := in.Scroll(); delta != 0 {
			e.zoomAt(in.Pointer, viewport.ScrollFactor(delta, e.sensitivity))
			in.RawScroll, in.SmoothScroll = 0, 0
		}
	}

	if in.SecondaryClicked && in.HasPointer && !in.PointerBusy && in.Canvas.Contains(in.Pointer) {
		e.OpenMenu(in.Pointer)
	}
}

func (e *Editor) zoomAt(anchor viewport.Vec2, factor float64) {
	if err := e.view.ZoomAt(anchor, factor); err != nil {
		e.logger.Warn("zoom rejected", logging.Float64("factor", factor), logging.Error(err))
		return
	}
	e.recorder.RecordZoom(e.view.Zoom)
	e.logger.Debug("zoomed",
		logging.Zoom(e.view.Zoom),
		logging.Point("anchor", anchor.X, anchor.Y),
	)
}

// OpenMenu opens the context menu at a screen position. It does nothing
// while the menu is already open.
func (e *Editor) OpenMenu(anchor viewport.Vec2) bool {
	if e.menu.IsOpen() {
		return false
	}
	e.menu = OpenAt(anchor)
	e.recorder.RecordMenuTransition("open")
	e.logger.Debug("context menu opened", logging.Point("anchor", anchor.X, anchor.Y))
	return true
}

// Select applies a context menu entry and closes the menu. For a create
// entry the anchor is converted with the current viewport and the new node
// is placed there. Selecting while closed is a no-op.
func (e *Editor) Select(item MenuItem) (storage.NodeID, error) {
	anchor, open := e.menu.Anchor()
	if !open {
		return 0, nil
	}
	e.menu = Closed()

	switch item.Kind {
	case CreateItem:
		e.recorder.RecordMenuTransition("create")
		return e.Place(item.Template, e.view.ScreenToGraph(anchor))
	case PropertiesItem:
		e.recorder.RecordMenuTransition("properties")
	default:
		e.recorder.RecordMenuTransition("cancel")
	}
	return 0, nil
}

// DismissMenu closes the menu after a click outside it
func (e *Editor) DismissMenu() {
	if !e.menu.IsOpen() {
		return
	}
	e.menu = Closed()
	e.recorder.RecordMenuTransition("dismiss")
}

// Place creates a node of template t at a graph position
func (e *Editor) Place(t templates.Template, at viewport.Vec2) (storage.NodeID, error) {
	id, err := e.graph.CreateNode(t)
	if err != nil {
		e.logger.Warn("node creation failed", logging.Template(t.Name()), logging.Error(err))
		return 0, err
	}
	e.graph.SetPosition(id, storage.Position{X: at.X, Y: at.Y})
	e.logger.Info("node placed",
		logging.NodeID(uint64(id)),
		logging.Template(t.Name()),
		logging.Point("position", at.X, at.Y),
	)
	return id, nil
}

// Activate handles a menu bar entry and reports whether the program should
// exit. Every entry other than Exit is inert.
func (e *Editor) Activate(a Action) (quit bool) {
	e.recorder.RecordMenuBarAction(a.Name())
	if a == Exit {
		e.logger.Info("exit requested")
		return true
	}
	e.logger.Debug("inert menu entry", logging.Operation(a.Name()))
	return false
}

// Apply performs the edits reported by the drawing widget. Rejected edits
// leave the graph unchanged; the last rejection is kept as a notice.
func (e *Editor) Apply(responses ...Response) error {
	var errs []error
	for _, r := range responses {
		if err := e.apply(r); err != nil {
			errs = append(errs, err)
			e.notice = describe(err)
			e.logger.Warn("edit rejected", logging.String("reason", storage.Reason(err)), logging.Error(err))
		}
	}
	return errors.Join(errs...)
}

func (e *Editor) apply(r Response) error {
	switch r := r.(type) {
	case ConnectPorts:
		if err := e.graph.Connect(r.Output, r.Input); err != nil {
			return err
		}
		e.notice = ""
	case DisconnectPort:
		return e.graph.Disconnect(r.Input)
	case DeleteNode:
		return e.graph.DeleteNode(r.Node)
	case PanView:
		e.view.PanBy(r.Delta)
	default:
		return fmt.Errorf("unsupported response %T", r)
	}
	return nil
}

func describe(err error) string {
	switch {
	case errors.Is(err, storage.ErrIncompatibleKind):
		return "Cannot connect: port kinds differ"
	case errors.Is(err, storage.ErrPortOccupied):
		return "Cannot connect: input already connected"
	case errors.Is(err, storage.ErrPortDirection):
		return "Cannot connect: wire must run from an output to an input"
	case errors.Is(err, storage.ErrUnknownIdentity):
		return "Edit refers to a node or port that no longer exists"
	default:
		return err.Error()
	}
}

// Notice returns the message from the last rejected edit, if any
func (e *Editor) Notice() string {
	return e.notice
}

// ClearNotice drops the current notice
func (e *Editor) ClearNotice() {
	e.notice = ""
}

// StatusLine returns the status bar text
func (e *Editor) StatusLine() (status, nodes string) {
	return Status, fmt.Sprintf("Nodes: %d", e.graph.NodeCount())
}
