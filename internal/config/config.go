// Package config provides YAML-based rule and timing configuration for Tile
// Match, with difficulty presets layered on top.
package config

import (
	"fmt"
	"time"
)

// TileMatchConfig contains all tunable configuration for a Tile Match session.
type TileMatchConfig struct {
	Rules  RulesConfig  `yaml:"rules"`
	Timing TimingConfig `yaml:"timing"`
}

// RulesConfig defines the slot and power-up rules.
type RulesConfig struct {
	SlotCapacity        int    `yaml:"slot_capacity"`
	Shuffles            int    `yaml:"shuffles"`
	Peeks               int    `yaml:"peeks"`
	ShuffleIncludesSlot bool   `yaml:"shuffle_includes_slot"` // Shuffle returns slot tiles to the board
	RefundEmptyPeek     bool   `yaml:"refund_empty_peek"`     // Peeking a tile with nothing below is free
	Theme               string `yaml:"theme"`
}

// TimingConfig defines presentation delays in milliseconds.
type TimingConfig struct {
	MatchDelayMs    int `yaml:"match_delay_ms"`    // Auto-match announcement before removal
	RemoveDelayMs   int `yaml:"remove_delay_ms"`   // Removal animation of a matched triple
	MismatchClearMs int `yaml:"mismatch_clear_ms"` // Wrong hand-picked triple stays selected
	PeekRevealMs    int `yaml:"peek_reveal_ms"`
	NoticeMs        int `yaml:"notice_ms"` // How long a notice stays on screen
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// MatchDelay returns the auto-match announcement delay.
func (t TimingConfig) MatchDelay() time.Duration { return ms(t.MatchDelayMs) }

// RemoveDelay returns the removal delay of a matched triple.
func (t TimingConfig) RemoveDelay() time.Duration { return ms(t.RemoveDelayMs) }

// MismatchDelay returns how long a mismatched selection stays visible.
func (t TimingConfig) MismatchDelay() time.Duration { return ms(t.MismatchClearMs) }

// RevealDuration returns how long a peek reveal lasts.
func (t TimingConfig) RevealDuration() time.Duration { return ms(t.PeekRevealMs) }

// NoticeDuration returns how long a notice stays on screen.
func (t TimingConfig) NoticeDuration() time.Duration { return ms(t.NoticeMs) }

// MinSlotCapacity is the smallest slot that can ever hold a triple.
const MinSlotCapacity = 3

// Validate reports the first invalid setting.
func (c TileMatchConfig) Validate() error {
	r, t := c.Rules, c.Timing
	switch {
	case r.SlotCapacity < MinSlotCapacity:
		return fmt.Errorf("rules.slot_capacity must be at least %d, got %d", MinSlotCapacity, r.SlotCapacity)
	case r.Shuffles < 0:
		return fmt.Errorf("rules.shuffles must not be negative, got %d", r.Shuffles)
	case r.Peeks < 0:
		return fmt.Errorf("rules.peeks must not be negative, got %d", r.Peeks)
	case t.MatchDelayMs < 0, t.RemoveDelayMs < 0, t.MismatchClearMs < 0, t.PeekRevealMs < 0, t.NoticeMs < 0:
		return fmt.Errorf("timing delays must not be negative")
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IsFixedPreset returns true if the preset leaves the loaded config untouched.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
