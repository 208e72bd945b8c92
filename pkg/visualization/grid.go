// Package visualization computes cosmetic canvas decorations.
package visualization

import (
	"math"

	"github.com/dd0wney/harmonia/pkg/viewport"
)

// GridConfig configures the background dot grid
type GridConfig struct {
	// Spacing is the distance between dots in graph units
	Spacing float64
	// MinVisibleSpacing hides the grid when dots would be closer than this on screen
	MinVisibleSpacing float64
	// MaxCells skips drawing when the visible lattice is larger than this
	MaxCells int64
}

// DefaultGridConfig is 20 unit spacing, hidden
// below 4 screen units, at most 100 000 cells.
func DefaultGridConfig() GridConfig {
	return GridConfig{Spacing: 20, MinVisibleSpacing: 4, MaxCells: 100_000}
}

// DotGrid returns the screen positions of the grid dots that fall inside
// rect for the given viewport. It returns nil when the grid is too dense to
// be useful or would exceed the cell budget.
func DotGrid(rect viewport.Rect, vp viewport.Transform, cfg GridConfig) []viewport.Vec2 {
	step := cfg.Spacing * vp.Zoom
	if !(step >= cfg.MinVisibleSpacing) || !(step > 0) {
		return nil
	}

	startCol := int64(math.Floor((rect.Min.X - vp.Pan.X) / step))
	endCol := int64(math.Ceil((rect.Max.X - vp.Pan.X) / step))
	startRow := int64(math.Floor((rect.Min.Y - vp.Pan.Y) / step))
	endRow := int64(math.Ceil((rect.Max.Y - vp.Pan.Y) / step))

	cols := endCol - startCol
	rows := endRow - startRow
	if cols*rows > cfg.MaxCells {
		return nil
	}

	dots := make([]viewport.Vec2, 0, (cols+1)*(rows+1))
	for c := startCol; c <= endCol; c++ {
		x := vp.Pan.X + float64(c)*step
		for r := startRow; r <= endRow; r++ {
			p := viewport.Vec2{X: x, Y: vp.Pan.Y + float64(r)*step}
			if rect.Contains(p) {
				dots = append(dots, p)
			}
		}
	}
	return dots
}
