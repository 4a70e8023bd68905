package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

const (
	B = core.TileBackground
	W = core.TileWall
	F = core.TileFloor
	T = core.TileTarget
)

// demoTiles is an 8x9 level with two targets at (3,2) and (2,4).
func demoTiles() [][]core.Tile {
	return [][]core.Tile{
		{B, B, B, B, B, B, B, B},
		{B, W, W, W, W, B, B, B},
		{B, W, F, T, W, B, B, B},
		{B, W, F, F, W, W, W, B},
		{B, W, T, F, F, F, W, B},
		{B, W, F, F, F, F, W, B},
		{B, W, F, F, W, W, W, B},
		{B, W, W, W, W, B, B, B},
		{B, B, B, B, B, B, B, B},
	}
}

// walled returns a w x h grid of floor surrounded by walls.
func walled(w, h int) [][]core.Tile {
	tiles := make([][]core.Tile, h)
	for y := range tiles {
		tiles[y] = make([]core.Tile, w)
		for x := range tiles[y] {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				tiles[y][x] = W
			} else {
				tiles[y][x] = F
			}
		}
	}
	return tiles
}

// buildLevel assembles a level without validating it.
func buildLevel(t *testing.T, tiles [][]core.Tile, player core.Coord, boxes ...core.Coord) *core.Level {
	t.Helper()
	lvl := core.NewLevel("Test")
	if err := lvl.SetLevel(tiles); err != nil {
		t.Fatalf("SetLevel failed: %v", err)
	}
	if err := lvl.SetPlayer(player); err != nil {
		t.Fatalf("SetPlayer failed: %v", err)
	}
	for _, b := range boxes {
		if err := lvl.AddBox(b); err != nil {
			t.Fatalf("AddBox(%v) failed: %v", b, err)
		}
	}
	return lvl
}

// validLevel assembles and validates a level.
func validLevel(t *testing.T, tiles [][]core.Tile, player core.Coord, boxes ...core.Coord) *core.Level {
	t.Helper()
	lvl := buildLevel(t, tiles, player, boxes...)
	if err := lvl.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	return lvl
}

func demoLevel(t *testing.T) *core.Level {
	t.Helper()
	return validLevel(t, demoTiles(), core.C(3, 4), core.C(2, 4), core.C(4, 5))
}

func assertBoxes(t *testing.T, lvl *core.Level, expected ...core.Coord) {
	t.Helper()
	got := lvl.Boxes()
	if len(got) != len(expected) {
		t.Fatalf("Boxes() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Boxes() = %v, expected %v", got, expected)
			return
		}
	}
}
