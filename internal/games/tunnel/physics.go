package tunnel

// Physics holds the integrator inputs for one tick.
type Physics struct {
	Gravity     float64 // units/s², negative pulls down
	ScrollSpeed float64 // units/s, pillars move left at this rate
}

// Integrate advances the world by elapsed seconds.
// Nothing is clamped here; out-of-range positions are caught by Check.
func Integrate(w *World, p Physics, elapsed float64) {
	dx := -p.ScrollSpeed * elapsed
	for i := range w.Pairs {
		w.Pairs[i].Shift(dx)
	}

	pl := &w.Player
	pl.VerticalSpeed += p.Gravity * elapsed
	pl.Transform.TY += pl.VerticalSpeed * elapsed
}
