package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadOliver loads the game configuration.
// Search order: customPath -> ~/.oliver/configs/oliver.yaml -> ./configs/oliver.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadOliver(customPath string) (OliverConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultOliverConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseOver(data)
		if err != nil {
			return DefaultOliverConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("oliver.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseOver(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "oliver.yaml")); err == nil {
		if cfg, err := parseOver(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseOver(defaultOliverYAML)
	if err != nil {
		return DefaultOliverConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseOver(data []byte) (OliverConfig, error) {
	cfg := DefaultOliverConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultOliverConfig(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".oliver", "configs", filename)
}

// ApplyOliverPreset modifies the config based on a difficulty preset.
// Normal leaves the config untouched.
func ApplyOliverPreset(cfg *OliverConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.CoyoteTime *= 1.5
		cfg.Player.JumpBuffer *= 1.5
		cfg.Guard.Speed *= 0.75
		cfg.Combat.Cooldown *= 0.8
	case DifficultyHard:
		cfg.Player.CoyoteTime *= 0.5
		cfg.Player.JumpBuffer *= 0.5
		cfg.Guard.Speed *= 1.5
	}
}
