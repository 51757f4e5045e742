package tunnel

import (
	"math"

	"github.com/vovakirdan/tui-tunnel/internal/core"
)

// ScreenRenderer draws world space onto a terminal Screen.
// The whole screen maps to the visible field [-1, 1] x [-1, 1].
type ScreenRenderer struct {
	dst *core.Screen
}

// NewScreenRenderer creates a renderer targeting dst.
func NewScreenRenderer(dst *core.Screen) *ScreenRenderer {
	return &ScreenRenderer{dst: dst}
}

// Clear wipes the screen.
func (r *ScreenRenderer) Clear() {
	r.dst.Clear()
}

// Draw fills every cell whose centre lies inside the primitive's bounds.
// Shapes narrower than a cell still get one cell so the player never vanishes.
func (r *ScreenRenderer) Draw(prim Primitive, vertices []Vec2, xf Transform, mat Material) {
	if prim == PrimitivePoints {
		for _, v := range vertices {
			x, y := r.Cell(xf.Apply(v))
			r.dst.SetColored(x, y, mat.Glyph, mat.Color)
		}
		return
	}

	lo, hi := Bounds(vertices, xf)
	x0, x1 := cellRange(lo.X, hi.X, r.dst.Width(), false)
	y0, y1 := cellRange(lo.Y, hi.Y, r.dst.Height(), true)

	// Clip to the screen before filling; stalks extend far off it.
	x0, x1 = core.Max(x0, 0), core.Min(x1, r.dst.Width()-1)
	y0, y1 = core.Max(y0, 0), core.Min(y1, r.dst.Height()-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.dst.SetColored(x, y, mat.Glyph, mat.Color)
		}
	}
}

// Cell converts a world point to the screen cell containing it.
func (r *ScreenRenderer) Cell(p Vec2) (x, y int) {
	w, h := float64(r.dst.Width()), float64(r.dst.Height())
	x = int(math.Floor((p.X + 1) / 2 * w))
	y = int(math.Floor((1 - p.Y) / 2 * h))
	return x, y
}

// cellRange returns the inclusive cell indices whose centres fall in
// [lo, hi] on an axis of n cells. flip maps world +1 to cell 0 (rows).
func cellRange(lo, hi float64, n int, flip bool) (int, int) {
	toCell := func(v float64) float64 {
		if flip {
			return (1-v)/2*float64(n) - 0.5
		}
		return (v+1)/2*float64(n) - 0.5
	}
	a, b := toCell(lo), toCell(hi)
	if a > b {
		a, b = b, a
	}
	first, last := int(math.Ceil(a)), int(math.Floor(b))
	if first > last {
		mid := int(math.Round((a + b) / 2))
		return mid, mid
	}
	return first, last
}
