package config

import (
	_ "embed"
)

//go:embed defaults/tunnel.yaml
var defaultTunnelYAML []byte

// DefaultTunnelConfig returns the built-in tunnel configuration.
// It mirrors defaults/tunnel.yaml and is used when the embedded file cannot be parsed.
func DefaultTunnelConfig() TunnelConfig {
	return TunnelConfig{
		Physics: TunnelPhysics{
			Gravity:     -1.8,
			Jump:        1.0,
			ScrollSpeed: 0.5,
		},
		Track: TunnelTrack{
			Pairs:      4,
			TunnelGap:  0.5,
			HalfWidth:  0.1,
			StalkScale: 10.0,
			Spacing:    1.0,
			SpawnX:     3.0,
			GapMargin:  0.1,
		},
		Player: TunnelPlayer{
			HalfSize: 0.05,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressScore,
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tunnel", "tunnel-sprites":
		return defaultTunnelYAML
	default:
		return nil
	}
}
