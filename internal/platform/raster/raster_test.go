package raster

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-tunnel/internal/config"
	"github.com/vovakirdan/tui-tunnel/internal/games/tunnel"
)

func rgb(t *testing.T, r *Renderer, x, y int) (uint32, uint32, uint32) {
	t.Helper()
	cr, cg, cb, _ := r.Image().At(x, y).RGBA()
	return cr >> 8, cg >> 8, cb >> 8
}

func TestRendererDrawsSession(t *testing.T) {
	s, err := tunnel.NewSession(config.DefaultTunnelConfig(), 1)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	s.World().Pairs[0].Place(0, 0, s.Config().Track)

	r := New(100, 100, tunnel.SolidPalette.Background)
	defer r.Close()
	s.Draw(r, tunnel.SolidPalette)
	if err := r.Err(); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	tests := []struct {
		name    string
		x, y    int
		r, g, b uint32
	}{
		{"top pillar", 50, 5, 0, 255, 0},
		{"bottom pillar", 50, 95, 0, 255, 0},
		{"player", 50, 50, 255, 0, 0},
		{"background", 5, 50, 0, 0, 0},
	}
	for _, tt := range tests {
		r0, g0, b0 := rgb(t, r, tt.x, tt.y)
		if r0 != tt.r || g0 != tt.g || b0 != tt.b {
			t.Errorf("%s at (%d,%d) = (%d,%d,%d), want (%d,%d,%d)", tt.name, tt.x, tt.y, r0, g0, b0, tt.r, tt.g, tt.b)
		}
	}
}

func TestRendererPNGOutput(t *testing.T) {
	s, err := tunnel.NewSession(config.DefaultTunnelConfig(), 1)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	r := New(64, 48, tunnel.SpritePalette.Background)
	defer r.Close()
	s.Draw(r, tunnel.SpritePalette)

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("Image is %dx%d, want 64x48", b.Dx(), b.Dy())
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := r.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
}
