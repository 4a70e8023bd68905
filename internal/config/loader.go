package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// LoadSokoban loads the game configuration. Values missing from the file
// keep their defaults.
// Search order: customPath -> ~/.sokoban/config.yaml -> ./configs/sokoban.yaml -> embedded default
func LoadSokoban(customPath string) (SokobanConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SokobanConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return SokobanConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "sokoban.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultSokobanYAML)
	if err != nil {
		return DefaultSokobanConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(data []byte) (SokobanConfig, error) {
	cfg := DefaultSokobanConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SokobanConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SokobanConfig{}, err
	}
	return cfg, nil
}

// Validate checks values that cannot be repaired with defaults.
func (c SokobanConfig) Validate() error {
	if c.Display.TickRate <= 0 {
		return fmt.Errorf("display.tick_rate must be positive, got %d", c.Display.TickRate)
	}
	if c.Storage.EntriesPerLevel < 0 {
		return fmt.Errorf("storage.entries_per_level must not be negative, got %d", c.Storage.EntriesPerLevel)
	}
	if w := c.Display.Glyphs.CellWidth; w < 1 || w > 2 {
		return fmt.Errorf("display.glyphs.cell_width must be 1 or 2, got %d", w)
	}
	glyphs := map[string]string{
		"wall":          c.Display.Glyphs.Wall,
		"floor":         c.Display.Glyphs.Floor,
		"target":        c.Display.Glyphs.Target,
		"box":           c.Display.Glyphs.Box,
		"box_on_target": c.Display.Glyphs.BoxOnTarget,
		"player_up":     c.Display.Glyphs.PlayerUp,
		"player_down":   c.Display.Glyphs.PlayerDown,
		"player_left":   c.Display.Glyphs.PlayerLeft,
		"player_right":  c.Display.Glyphs.PlayerRight,
		"player_solved": c.Display.Glyphs.PlayerSolved,
	}
	for name, g := range glyphs {
		if utf8.RuneCountInString(g) != 1 {
			return fmt.Errorf("display.glyphs.%s must be a single character, got %q", name, g)
		}
	}
	return nil
}

// Rune returns the single character of a glyph value.
func Rune(glyph string) rune {
	r, _ := utf8.DecodeRuneInString(glyph)
	return r
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sokoban", filename)
}
