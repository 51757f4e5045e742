package tunnel

import "github.com/vovakirdan/tui-tunnel/internal/core"

// Primitive is the kind of batch a Renderer draws.
type Primitive int

const (
	PrimitiveTriangleFan Primitive = iota // Filled convex polygon
	PrimitivePoints                       // One dot per vertex
)

// RGBA is a colour with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Material describes how an entity is painted. Renderers use whichever
// fields they can show: raster back ends use Fill, terminals use Glyph and Color.
type Material struct {
	Name   string
	Fill   RGBA
	Glyph  rune
	Color  core.Color
	Sprite bool // Textured asset; Glyph stands in for the texture on a terminal
}

// Palette assigns a material to each entity kind.
type Palette struct {
	Name         string
	Background   RGBA
	PillarTop    Material
	PillarBottom Material
	Player       Material
}

// Material returns the palette entry for an entity kind.
func (p Palette) Material(k Kind) Material {
	switch k {
	case KindPillarTop:
		return p.PillarTop
	case KindPillarBottom:
		return p.PillarBottom
	default:
		return p.Player
	}
}

// SolidPalette paints flat colours: green pillars, red player.
var SolidPalette = Palette{
	Name:         "solid",
	Background:   RGBA{0, 0, 0, 1},
	PillarTop:    Material{Name: "pillar", Fill: RGBA{0, 1, 0, 1}, Glyph: '█', Color: core.ColorGreen},
	PillarBottom: Material{Name: "pillar", Fill: RGBA{0, 1, 0, 1}, Glyph: '█', Color: core.ColorGreen},
	Player:       Material{Name: "player", Fill: RGBA{1, 0, 0, 1}, Glyph: '█', Color: core.ColorRed},
}

// SpritePalette stands in for the textured variant: pipe and bird sprites.
var SpritePalette = Palette{
	Name:         "sprites",
	Background:   RGBA{0.44, 0.77, 0.81, 1},
	PillarTop:    Material{Name: "pipe-top", Fill: RGBA{0.45, 0.75, 0.18, 1}, Glyph: '▓', Color: core.ColorBrightGreen, Sprite: true},
	PillarBottom: Material{Name: "pipe-bottom", Fill: RGBA{0.45, 0.75, 0.18, 1}, Glyph: '▓', Color: core.ColorBrightGreen, Sprite: true},
	Player:       Material{Name: "bird", Fill: RGBA{0.98, 0.8, 0.1, 1}, Glyph: '●', Color: core.ColorBrightYellow, Sprite: true},
}

// Renderer is the drawing back end a session paints itself with.
type Renderer interface {
	// Clear wipes the frame. Called once before any Draw.
	Clear()

	// Draw paints one primitive batch: base-geometry vertices placed by xf.
	Draw(prim Primitive, vertices []Vec2, xf Transform, mat Material)
}

// Draw clears r and paints every pillar and the player.
// It only reads entity state.
func (s *Session) Draw(r Renderer, p Palette) {
	r.Clear()
	for i := range s.world.Pairs {
		pair := &s.world.Pairs[i]
		r.Draw(PrimitiveTriangleFan, s.pillarQuad[:], pair.Top.Transform, p.PillarTop)
		r.Draw(PrimitiveTriangleFan, s.pillarQuad[:], pair.Bottom.Transform, p.PillarBottom)
	}
	r.Draw(PrimitiveTriangleFan, s.playerQuad[:], s.world.Player.Transform, p.Player)
}

// Bounds returns the world-space bounding box of vertices placed by xf.
func Bounds(vertices []Vec2, xf Transform) (lo, hi Vec2) {
	if len(vertices) == 0 {
		return Vec2{X: xf.TX, Y: xf.TY}, Vec2{X: xf.TX, Y: xf.TY}
	}
	lo = xf.Apply(vertices[0])
	hi = lo
	for _, v := range vertices[1:] {
		w := xf.Apply(v)
		lo.X, hi.X = min(lo.X, w.X), max(hi.X, w.X)
		lo.Y, hi.Y = min(lo.Y, w.Y), max(hi.Y, w.Y)
	}
	return lo, hi
}
