package config

// Progression types accepted in DifficultyConfig.Progression.Type.
const (
	ProgressScore = "score"
	ProgressTime  = "time"
	ProgressNone  = "none"
)

// DifficultyManager maps a run's score or tick count to a level in [0, 1]
// and scales the scroll speed by it.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager returns a manager for cfg. The initial level is
// clamped to [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = clamp01(cfg.InitialLevel)
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled reports whether the level moves during a run.
func (d *DifficultyManager) IsEnabled() bool {
	if !d.cfg.Enabled {
		return false
	}
	switch d.cfg.Progression.Type {
	case ProgressScore, ProgressTime:
		return true
	}
	return false
}

// Level interpolates from the initial level to 1 as the progression
// counter approaches MaxAt. With progression off the level is 0, so the
// scroll speed stays at its base value whatever InitialLevel says.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return 0
	}
	start := d.cfg.InitialLevel

	n := score
	if d.cfg.Progression.Type == ProgressTime {
		n = ticks
	}
	progress := clamp01(float64(n) / float64(max(d.cfg.Progression.MaxAt, 1)))
	return start + progress*(1-start)
}

// Speed scales base by 1 + level*SpeedMultiplier. A zero multiplier keeps
// the scroll speed constant.
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
