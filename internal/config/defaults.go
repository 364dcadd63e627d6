package config

import (
	_ "embed"
)

//go:embed defaults/tilematch.yaml
var defaultTileMatchYAML []byte

// DefaultTileMatchConfig returns the default Tile Match configuration.
func DefaultTileMatchConfig() TileMatchConfig {
	return TileMatchConfig{
		Rules: RulesConfig{
			SlotCapacity:        7,
			Shuffles:            3,
			Peeks:               3,
			ShuffleIncludesSlot: true,
			RefundEmptyPeek:     true,
			Theme:               "mixed",
		},
		Timing: TimingConfig{
			MatchDelayMs:    300,
			RemoveDelayMs:   150,
			MismatchClearMs: 300,
			PeekRevealMs:    1500,
			NoticeMs:        1500,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTileMatchYAML
}
