// Package formats provides level file decoders.
// Every format produces a Level that Build turns into a validated core.Level.
package formats

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

// Level symbols shared by all text formats.
const (
	SymbolWall           = '#'
	SymbolPlayer         = '@'
	SymbolPlayerOnTarget = '+'
	SymbolBox            = '$'
	SymbolBoxOnTarget    = '*'
	SymbolTarget         = '.'
	SymbolFloor          = ' '
	CommentPrefix        = "::"
)

// Level is a decoded level that has not been validated yet.
type Level struct {
	ID        string
	Name      string
	Author    string
	Metadata  map[string]string
	Tiles     [][]core.Tile
	Player    core.Coord
	HasPlayer bool
	Boxes     []core.Coord
}

// Width returns the width of the decoded grid.
func (l *Level) Width() int {
	if len(l.Tiles) == 0 {
		return 0
	}
	return len(l.Tiles[0])
}

// Height returns the height of the decoded grid.
func (l *Level) Height() int {
	return len(l.Tiles)
}

// Build assembles and validates a core.Level.
func (l *Level) Build() (*core.Level, error) {
	lvl := core.NewLevel(l.Name)
	if err := lvl.SetLevel(l.Tiles); err != nil {
		return nil, err
	}
	if l.HasPlayer {
		if err := lvl.SetPlayer(l.Player); err != nil {
			return nil, err
		}
	}
	if err := lvl.ReplaceBoxes(l.Boxes); err != nil {
		return nil, err
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return lvl, nil
}

// DecodeRows decodes grid rows written with the level symbols.
// Spaces before the first wall of a row and after its last wall are
// background; rows are padded with background to the widest row.
// Empty rows are skipped.
func DecodeRows(rows []string) (Level, error) {
	var lines [][]rune
	width := 0
	for _, row := range rows {
		row = strings.TrimRight(row, " \t\r")
		if row == "" {
			continue
		}
		r := []rune(row)
		lines = append(lines, r)
		width = max(width, len(r))
	}
	if len(lines) == 0 {
		return Level{}, fmt.Errorf("level has no rows")
	}

	var level Level
	level.Tiles = make([][]core.Tile, len(lines))
	for y, line := range lines {
		tiles := make([]core.Tile, width)
		for x := range tiles {
			tiles[x] = core.TileBackground
		}

		inside := false
		for x, sym := range line {
			if !inside {
				if sym == SymbolFloor || sym == '\t' {
					continue
				}
				inside = true
			}

			tile, err := level.decodeSymbol(sym, core.C(x, y))
			if err != nil {
				return Level{}, err
			}
			tiles[x] = tile
		}
		level.Tiles[y] = tiles
	}
	return level, nil
}

func (l *Level) decodeSymbol(sym rune, at core.Coord) (core.Tile, error) {
	switch sym {
	case SymbolWall:
		return core.TileWall, nil
	case SymbolFloor:
		return core.TileFloor, nil
	case SymbolTarget:
		return core.TileTarget, nil
	case SymbolBox:
		l.Boxes = append(l.Boxes, at)
		return core.TileFloor, nil
	case SymbolBoxOnTarget:
		l.Boxes = append(l.Boxes, at)
		return core.TileTarget, nil
	case SymbolPlayer, SymbolPlayerOnTarget:
		if l.HasPlayer {
			return core.TileUnset, fmt.Errorf("second player at %s, first at %s", at, l.Player)
		}
		l.Player = at
		l.HasPlayer = true
		if sym == SymbolPlayerOnTarget {
			return core.TileTarget, nil
		}
		return core.TileFloor, nil
	default:
		return core.TileUnset, fmt.Errorf("unknown symbol %q at %s", sym, at)
	}
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".sok", ".yaml", ".yml"}
}

// Parse routes data to the decoder for the given extension.
func Parse(data []byte, ext string) (Level, error) {
	switch strings.ToLower(ext) {
	case ".sok":
		return ParseSOK(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
