package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTileMatch loads Tile Match configuration.
// Search order: customPath -> ~/.tilematch/configs/tilematch.yaml -> ./configs/tilematch.yaml -> embedded default
//
// Files are read over the defaults, so a file only needs the keys it changes.
// A custom path must exist and be valid; the other locations are skipped
// silently when missing or broken.
func LoadTileMatch(customPath string) (TileMatchConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TileMatchConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return TileMatchConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tilematch.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "tilematch.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultTileMatchYAML)
	if err != nil {
		return DefaultTileMatchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the defaults and validates the result.
func parse(data []byte) (TileMatchConfig, error) {
	cfg := DefaultTileMatchConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TileMatchConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return TileMatchConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tilematch", "configs", filename)
}
