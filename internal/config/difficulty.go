package config

import (
	"fmt"
	"strings"
)

// ParseDifficulty resolves a preset name. An empty name is fixed: the loaded
// config is used as written.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// ApplyTileMatchPreset adjusts the power-up allowances for a difficulty preset.
// Normal restores the default allowances; fixed keeps the file as written.
func ApplyTileMatchPreset(cfg *TileMatchConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		return
	}

	def := DefaultTileMatchConfig().Rules
	switch preset {
	case DifficultyEasy:
		cfg.Rules.Shuffles = 5
		cfg.Rules.Peeks = 5
		cfg.Rules.RefundEmptyPeek = true
	case DifficultyHard:
		cfg.Rules.Shuffles = 1
		cfg.Rules.Peeks = 1
		cfg.Rules.RefundEmptyPeek = false
	default:
		cfg.Rules.Shuffles = def.Shuffles
		cfg.Rules.Peeks = def.Peeks
		cfg.Rules.RefundEmptyPeek = def.RefundEmptyPeek
	}
}
