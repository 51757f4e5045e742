// Package raster paints game frames into images with gogpu/gg, for
// offline snapshots and tests that want real pixels instead of terminal cells.
package raster

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/vovakirdan/tui-tunnel/internal/games/tunnel"
)

// pointRadius is the dot size, in pixels, for point primitives.
const pointRadius = 2

// Renderer draws tunnel primitives onto a gg context.
// World space [-1, 1] x [-1, 1] fills the whole image, y up.
type Renderer struct {
	dc         *gg.Context
	view       gg.Matrix
	background gg.RGBA
	err        error
}

// New creates a width x height renderer that clears to background.
func New(width, height int, background tunnel.RGBA) *Renderer {
	w, h := float64(width), float64(height)
	return &Renderer{
		dc:         gg.NewContext(width, height),
		view:       gg.Translate(w/2, h/2).Multiply(gg.Scale(w/2, -h/2)),
		background: toRGBA(background),
	}
}

// Clear fills the image with the background colour.
func (r *Renderer) Clear() {
	r.dc.ClearWithColor(r.background)
}

// Draw fills one primitive batch. The first fill error is kept for Err.
func (r *Renderer) Draw(prim tunnel.Primitive, vertices []tunnel.Vec2, xf tunnel.Transform, mat tunnel.Material) {
	if len(vertices) == 0 {
		return
	}
	r.dc.SetRGBA(mat.Fill.R, mat.Fill.G, mat.Fill.B, mat.Fill.A)

	switch prim {
	case tunnel.PrimitivePoints:
		for _, v := range vertices {
			p := r.project(xf.Apply(v))
			r.dc.DrawPoint(p.X, p.Y, pointRadius)
		}
	default:
		for i, v := range vertices {
			p := r.project(xf.Apply(v))
			if i == 0 {
				r.dc.MoveTo(p.X, p.Y)
			} else {
				r.dc.LineTo(p.X, p.Y)
			}
		}
		r.dc.ClosePath()
	}

	if err := r.dc.Fill(); err != nil && r.err == nil {
		r.err = fmt.Errorf("raster: fill %s: %w", mat.Name, err)
	}
}

func (r *Renderer) project(v tunnel.Vec2) gg.Point {
	return r.view.TransformPoint(gg.Point{X: v.X, Y: v.Y})
}

// Err returns the first drawing error since the renderer was created.
func (r *Renderer) Err() error {
	return r.err
}

// Image returns the current frame.
func (r *Renderer) Image() image.Image {
	return r.dc.Image()
}

// SavePNG writes the current frame to path.
func (r *Renderer) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("raster: cannot save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the current frame as PNG to w.
func (r *Renderer) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// Close releases the drawing context.
func (r *Renderer) Close() error {
	return r.dc.Close()
}

func toRGBA(c tunnel.RGBA) gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
