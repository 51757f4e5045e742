// Package config provides YAML-based game configuration loading and
// difficulty management for the tunnel game.
package config

// TunnelConfig contains all configuration for the obstacle-scroll game.
// All lengths are in world units; the visible field spans [-1, 1] on both axes.
type TunnelConfig struct {
	Physics    TunnelPhysics    `yaml:"physics"`
	Track      TunnelTrack      `yaml:"track"`
	Player     TunnelPlayer     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TunnelPhysics defines the integrator constants.
type TunnelPhysics struct {
	Gravity     float64 `yaml:"gravity"`      // Vertical acceleration, units/s² (negative pulls down)
	Jump        float64 `yaml:"jump"`         // Vertical speed set by a jump, units/s
	ScrollSpeed float64 `yaml:"scroll_speed"` // Horizontal pillar speed, units/s
}

// TunnelTrack defines the pillar ring.
type TunnelTrack struct {
	Pairs      int     `yaml:"pairs"`       // Number of pillar pairs in the ring
	TunnelGap  float64 `yaml:"tunnel_gap"`  // Height of the opening between top and bottom stalks
	HalfWidth  float64 `yaml:"half_width"`  // Half width of a pillar (also the base quad half size)
	StalkScale float64 `yaml:"stalk_scale"` // Vertical stretch applied to the base quad
	Spacing    float64 `yaml:"spacing"`     // Distance between pairs at the start of a run
	SpawnX     float64 `yaml:"spawn_x"`     // Where a recycled pair reappears
	GapMargin  float64 `yaml:"gap_margin"`  // Extra room kept between a random gap and the field edge
}

// TunnelPlayer defines the player hitbox.
type TunnelPlayer struct {
	HalfSize float64 `yaml:"half_size"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to scroll speed at max difficulty
}

// LeftBound is the x threshold past which a pair has fully left the field.
func (t TunnelTrack) LeftBound() float64 {
	return -1 - t.HalfWidth
}

// StalkOffset is the distance from a gap edge to the centre of a stalk.
func (t TunnelTrack) StalkOffset() float64 {
	return t.HalfWidth * t.StalkScale
}

// GapRange is the width of the interval random gap positions are drawn from.
func (t TunnelTrack) GapRange() float64 {
	return 2 - t.TunnelGap - t.GapMargin
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
