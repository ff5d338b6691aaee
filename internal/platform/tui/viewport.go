package tui

import (
	"math"

	"github.com/vovakirdan/flappydof/internal/core"
)

// Viewport maps world coordinates onto a rectangle of screen cells. World x
// spans [-HalfW, HalfW] left to right and world y spans [HalfH, -HalfH] top
// to bottom.
type Viewport struct {
	Field core.Rect
	HalfW float32
	HalfH float32
}

// Col returns the screen column for world x. ok is false when x lies outside
// the horizontal extent.
func (v Viewport) Col(x float32) (col int, ok bool) {
	if x < -v.HalfW || x > v.HalfW || v.Field.W <= 0 {
		return 0, false
	}
	return v.Field.X + v.cell((x+v.HalfW)/(2*v.HalfW), v.Field.W), true
}

// Row returns the screen row for world y. ok is false when y lies outside
// the vertical extent.
func (v Viewport) Row(y float32) (row int, ok bool) {
	if y < -v.HalfH || y > v.HalfH || v.Field.H <= 0 {
		return 0, false
	}
	return v.Field.Y + v.cell((v.HalfH-y)/(2*v.HalfH), v.Field.H), true
}

// RowClamped is Row with y clamped to the vertical extent.
func (v Viewport) RowClamped(y float32) int {
	y = min(max(y, -v.HalfH), v.HalfH)
	row, _ := v.Row(y)
	return row
}

// cell maps t in [0, 1] onto [0, n).
func (v Viewport) cell(t float32, n int) int {
	i := int(math.Floor(float64(t) * float64(n)))
	return core.Clamp(i, 0, n-1)
}
