package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTunnel loads the tunnel game configuration.
// Search order: customPath -> ~/.tunnel/configs/tunnel.yaml -> ./configs/tunnel.yaml -> embedded default.
// The result is validated; a file that parses but describes an unplayable
// track is reported as an error wrapping ErrInvalid.
func LoadTunnel(customPath string) (TunnelConfig, error) {
	cfg, err := loadTunnelUnchecked(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadTunnelUnchecked(customPath string) (TunnelConfig, error) {
	// Start from defaults so a partial file only overrides what it names.
	cfg := DefaultTunnelConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("tunnel.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultTunnelConfig()
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "tunnel.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultTunnelConfig()
	}

	if err := yaml.Unmarshal(defaultTunnelYAML, &cfg); err != nil {
		return DefaultTunnelConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tunnel", "configs", filename)
}

// ApplyTunnelPreset modifies the config based on a difficulty preset.
// An empty preset leaves the loaded configuration untouched.
func ApplyTunnelPreset(cfg *TunnelConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
