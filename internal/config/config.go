// Package config provides YAML-based configuration loading for the game,
// its level sources, score storage and the SSH server.
package config

import "time"

// SokobanConfig contains all configuration for the game.
type SokobanConfig struct {
	Player  PlayerConfig  `yaml:"player"`
	Levels  LevelsConfig  `yaml:"levels"`
	Storage StorageConfig `yaml:"storage"`
	Display DisplayConfig `yaml:"display"`
	Server  ServerConfig  `yaml:"server"`
}

// PlayerConfig identifies the local player.
type PlayerConfig struct {
	Name string `yaml:"name"` // Empty means the OS user name
}

// LevelsConfig defines where levels come from.
type LevelsConfig struct {
	Dir         string `yaml:"dir"`         // Extra level directory, may be empty
	Builtin     bool   `yaml:"builtin"`     // Include the compiled-in levels
	Concurrency int    `yaml:"concurrency"` // Parallel file decoding, 0 = GOMAXPROCS
}

// StorageConfig defines the high score database.
type StorageConfig struct {
	// DSN is a SQLite file path, or a postgres:// URL for a shared board.
	DSN             string `yaml:"dsn"`
	EntriesPerLevel int    `yaml:"entries_per_level"` // Scoreboard rows kept per level, 0 = unlimited
}

// DisplayConfig defines rendering parameters.
type DisplayConfig struct {
	TickRate int         `yaml:"tick_rate"`
	Glyphs   GlyphConfig `yaml:"glyphs"`
}

// GlyphConfig defines the characters used to draw a level.
// Each value is a single character.
type GlyphConfig struct {
	Wall         string `yaml:"wall"`
	Floor        string `yaml:"floor"`
	Target       string `yaml:"target"`
	Box          string `yaml:"box"`
	BoxOnTarget  string `yaml:"box_on_target"`
	PlayerUp     string `yaml:"player_up"`
	PlayerDown   string `yaml:"player_down"`
	PlayerLeft   string `yaml:"player_left"`
	PlayerRight  string `yaml:"player_right"`
	PlayerSolved string `yaml:"player_solved"`
	CellWidth    int    `yaml:"cell_width"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Addr        string        `yaml:"addr"`
	HostKeyPath string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}
