package tunnel

import "github.com/vovakirdan/tui-tunnel/internal/core"

// Geometry holds the sizes collision detection needs.
type Geometry struct {
	TunnelGap  float64
	HalfWidth  float64 // Pillar half width
	PlayerHalf float64 // Player hitbox half size
}

// field is the visible world extent on both axes.
var field = core.Span{Min: -1, Max: 1}

// Check reports whether the player has left the field or hit a pillar.
// It has no side effects and stops at the first hit.
func Check(w *World, g Geometry) bool {
	y := w.Player.Transform.TY

	// Leaving the field vertically ends the run regardless of pillars.
	if !(core.Span{Min: field.Min + g.PlayerHalf, Max: field.Max - g.PlayerHalf}).Contains(y) {
		return true
	}

	player := core.SpanAround(w.Player.Transform.TX, g.PlayerHalf)
	for i := range w.Pairs {
		pair := &w.Pairs[i]
		if !core.SpanAround(pair.X(), g.HalfWidth).Overlaps(player) {
			continue
		}
		if pair.Top.Blocks(y, g.PlayerHalf, g.TunnelGap) || pair.Bottom.Blocks(y, g.PlayerHalf, g.TunnelGap) {
			return true
		}
	}
	return false
}
