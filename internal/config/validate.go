package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid tunnel config")

// Validate checks that the configuration describes a playable track.
// It is called at construction time so malformed values never reach the
// simulation.
func (c TunnelConfig) Validate() error {
	p, t, pl := c.Physics, c.Track, c.Player

	switch {
	case t.Pairs < 1:
		return invalid("track.pairs must be at least 1, got %d", t.Pairs)
	case p.ScrollSpeed <= 0:
		return invalid("physics.scroll_speed must be positive, got %g", p.ScrollSpeed)
	case p.Gravity >= 0:
		return invalid("physics.gravity must be negative, got %g", p.Gravity)
	case p.Jump <= 0:
		return invalid("physics.jump must be positive, got %g", p.Jump)
	case t.TunnelGap <= 0 || t.TunnelGap >= 2:
		return invalid("track.tunnel_gap must be in (0, 2), got %g", t.TunnelGap)
	case t.HalfWidth <= 0:
		return invalid("track.half_width must be positive, got %g", t.HalfWidth)
	case t.StalkScale <= 0:
		return invalid("track.stalk_scale must be positive, got %g", t.StalkScale)
	case t.Spacing <= 0:
		return invalid("track.spacing must be positive, got %g", t.Spacing)
	case t.SpawnX <= 1+t.HalfWidth:
		return invalid("track.spawn_x must be right of the visible field (> %g), got %g", 1+t.HalfWidth, t.SpawnX)
	case t.GapMargin < 0:
		return invalid("track.gap_margin must not be negative, got %g", t.GapMargin)
	case t.GapRange() < 0:
		return invalid("track.tunnel_gap + track.gap_margin must not exceed 2, got %g", t.TunnelGap+t.GapMargin)
	case pl.HalfSize <= 0 || pl.HalfSize >= t.TunnelGap/2:
		return invalid("player.half_size must be in (0, tunnel_gap/2), got %g", pl.HalfSize)
	case c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1:
		return invalid("difficulty.initial_level must be in [0, 1], got %g", c.Difficulty.InitialLevel)
	}

	switch c.Difficulty.Progression.Type {
	case "", ProgressNone, ProgressScore, ProgressTime:
	default:
		return invalid("difficulty.progression.type must be score, time or none, got %q", c.Difficulty.Progression.Type)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...)
}
