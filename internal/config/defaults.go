package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/sokoban.yaml
var defaultSokobanYAML []byte

// DefaultSokobanConfig returns the default configuration.
func DefaultSokobanConfig() SokobanConfig {
	return SokobanConfig{
		Levels: LevelsConfig{
			Builtin: true,
		},
		Storage: StorageConfig{
			DSN:             "~/.sokoban/scores.db",
			EntriesPerLevel: 10,
		},
		Display: DisplayConfig{
			TickRate: 30,
			Glyphs: GlyphConfig{
				Wall:         "#",
				Floor:        " ",
				Target:       ".",
				Box:          "$",
				BoxOnTarget:  "*",
				PlayerUp:     "▲",
				PlayerDown:   "▼",
				PlayerLeft:   "◀",
				PlayerRight:  "▶",
				PlayerSolved: "☺",
				CellWidth:    2,
			},
		},
		Server: ServerConfig{
			Addr:        ":23234",
			HostKeyPath: ".ssh/sokoban_ed25519",
			IdleTimeout: 10 * time.Minute,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSokobanYAML
}
