// Package viewport maps between screen space and graph space under pan and
// zoom, and implements zoom anchored at the pointer.
package viewport

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultSensitivity converts one unit of scroll delta into zoom
	DefaultSensitivity = 0.002
	// DefaultMinZoom and DefaultMaxZoom bound the zoom factor
	DefaultMinZoom = 1e-4
	DefaultMaxZoom = 1e4

	// maxScrollExponent keeps exp() finite and non-zero
	maxScrollExponent = 700
)

// ErrInvalidFactor is returned for zoom factors that are not finite and
// strictly positive.
var ErrInvalidFactor = errors.New("zoom factor must be finite and positive")

// Transform is the viewport state. Zoom is screen units per graph unit and
// is always strictly positive.
type Transform struct {
	Pan  Vec2
	Zoom float64

	minZoom float64
	maxZoom float64
}

// New returns the identity viewport: no pan, zoom 1
func New() Transform {
	return Transform{Zoom: 1, minZoom: DefaultMinZoom, maxZoom: DefaultMaxZoom}
}

// NewWithLimits returns the identity viewport with custom zoom bounds
func NewWithLimits(minZoom, maxZoom float64) (Transform, error) {
	if !(minZoom > 0) || !(maxZoom >= minZoom) || math.IsInf(maxZoom, 0) {
		return Transform{}, fmt.Errorf("invalid zoom limits [%v, %v]", minZoom, maxZoom)
	}
	t := New()
	t.minZoom, t.maxZoom = minZoom, maxZoom
	t.Zoom = clamp(1, minZoom, maxZoom)
	return t, nil
}

// Limits returns the zoom bounds
func (t Transform) Limits() (min, max float64) {
	if t.minZoom == 0 {
		return DefaultMinZoom, DefaultMaxZoom
	}
	return t.minZoom, t.maxZoom
}

// scale returns the zoom in effect. The zero Transform behaves as zoom 1.
func (t Transform) scale() float64 {
	if !(t.Zoom > 0) || math.IsInf(t.Zoom, 0) {
		return 1
	}
	return t.Zoom
}

// ScreenToGraph converts a screen position into graph space
func (t Transform) ScreenToGraph(screen Vec2) Vec2 {
	return screen.Sub(t.Pan).Scale(1 / t.scale())
}

// GraphToScreen converts a graph position into screen space
func (t Transform) GraphToScreen(graph Vec2) Vec2 {
	return graph.Scale(t.scale()).Add(t.Pan)
}

// ZoomAt multiplies the zoom by factor while keeping the graph point under
// anchor fixed on screen. The resulting zoom is clamped to the limits; the
// pan follows the zoom actually applied.
func (t *Transform) ZoomAt(anchor Vec2, factor float64) error {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidFactor, factor)
	}

	minZoom, maxZoom := t.Limits()
	oldZoom := t.scale()
	newZoom := clamp(oldZoom*factor, minZoom, maxZoom)
	ratio := newZoom / oldZoom

	t.Pan = anchor.Sub(anchor.Sub(t.Pan).Scale(ratio))
	t.Zoom = newZoom
	return nil
}

// ScrollFactor turns a scroll delta into a multiplicative zoom factor.
// Opposite deltas of equal size give reciprocal factors. The exponent is
// bounded so the factor is always finite and strictly positive; ZoomAt then
// clamps an extreme factor to the zoom limits.
func ScrollFactor(delta, sensitivity float64) float64 {
	exponent := delta * sensitivity
	if math.IsNaN(exponent) {
		return 1
	}
	return math.Exp(clamp(exponent, -maxScrollExponent, maxScrollExponent))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PanBy shifts the viewport by delta screen units
func (t *Transform) PanBy(delta Vec2) {
	t.Pan = t.Pan.Add(delta)
}
