package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

func TestSetLevelRejectsMalformedGrids(t *testing.T) {
	tests := []struct {
		name     string
		tiles    [][]core.Tile
		expected error
	}{
		{"nil", nil, core.ErrNilArgument},
		{"empty", [][]core.Tile{}, core.ErrMalformedGrid},
		{"empty row", [][]core.Tile{{}}, core.ErrMalformedGrid},
		{"ragged", [][]core.Tile{{W, W, W}, {W, F}}, core.ErrMalformedGrid},
		{"unset tile", [][]core.Tile{{W, W}, {W, core.TileUnset}}, core.ErrMalformedGrid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lvl := core.NewLevel("Test")
			err := lvl.SetLevel(tc.tiles)
			if !errors.Is(err, tc.expected) {
				t.Errorf("SetLevel error = %v, expected %v", err, tc.expected)
			}
		})
	}
}

func TestSetLevelCountsTargetsAndCopies(t *testing.T) {
	tiles := demoTiles()
	lvl := core.NewLevel("Demo")
	if err := lvl.SetLevel(tiles); err != nil {
		t.Fatalf("SetLevel failed: %v", err)
	}

	if lvl.Width() != 8 || lvl.Height() != 9 {
		t.Errorf("size = %dx%d, expected 8x9", lvl.Width(), lvl.Height())
	}
	if lvl.TargetCount() != 2 {
		t.Errorf("TargetCount() = %d, expected 2", lvl.TargetCount())
	}

	tiles[2][3] = W
	if lvl.TileAt(core.C(3, 2)) != T {
		t.Error("level shares tile storage with caller")
	}

	if err := lvl.SetLevel(walled(3, 3)); err != nil {
		t.Fatalf("second SetLevel failed: %v", err)
	}
	if lvl.TargetCount() != 0 {
		t.Errorf("TargetCount() after SetLevel = %d, expected 0", lvl.TargetCount())
	}
}

func TestValidateReportsFirstViolation(t *testing.T) {
	oneTarget := walled(5, 5)
	oneTarget[2][3] = T

	twoTargets := walled(5, 5)
	twoTargets[1][3] = T
	twoTargets[3][3] = T

	tests := []struct {
		name     string
		build    func() *core.Level
		expected error
	}{
		{
			name: "no tiles",
			build: func() *core.Level {
				lvl := core.NewLevel("Test")
				lvl.SetPlayer(core.C(1, 1))
				return lvl
			},
			expected: core.ErrMalformedGrid,
		},
		{
			name: "player not set",
			build: func() *core.Level {
				lvl := core.NewLevel("Test")
				lvl.SetLevel(walled(3, 3))
				return lvl
			},
			expected: core.ErrPlayerNotSet,
		},
		{
			name: "player out of bounds",
			build: func() *core.Level {
				return buildLevel(t, oneTarget, core.C(5, 1), core.C(2, 2))
			},
			expected: core.ErrPlayerOutOfBounds,
		},
		{
			name: "player negative",
			build: func() *core.Level {
				return buildLevel(t, oneTarget, core.C(-1, 2), core.C(2, 2))
			},
			expected: core.ErrPlayerOutOfBounds,
		},
		{
			name: "player on wall",
			build: func() *core.Level {
				return buildLevel(t, oneTarget, core.C(0, 0), core.C(2, 2))
			},
			expected: core.ErrPlayerOnWall,
		},
		{
			name: "player on box",
			build: func() *core.Level {
				return buildLevel(t, oneTarget, core.C(2, 2), core.C(2, 2))
			},
			expected: core.ErrPlayerOnBox,
		},
		{
			name: "box on wall",
			build: func() *core.Level {
				return buildLevel(t, oneTarget, core.C(1, 1), core.C(4, 2))
			},
			expected: core.ErrBoxOnWall,
		},
		{
			name: "box out of bounds",
			build: func() *core.Level {
				return buildLevel(t, oneTarget, core.C(1, 1), core.C(7, 7))
			},
			expected: core.ErrBoxOutOfBounds,
		},
		{
			name: "too few boxes",
			build: func() *core.Level {
				return buildLevel(t, twoTargets, core.C(1, 1), core.C(2, 2))
			},
			expected: core.ErrTargetBoxMismatch,
		},
		{
			name: "too many boxes",
			build: func() *core.Level {
				return buildLevel(t, oneTarget, core.C(1, 1), core.C(2, 2), core.C(2, 3))
			},
			expected: core.ErrTargetBoxMismatch,
		},
		{
			name: "wall check precedes box check",
			build: func() *core.Level {
				return buildLevel(t, oneTarget, core.C(0, 1), core.C(0, 1))
			},
			expected: core.ErrPlayerOnWall,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.build().Validate()
			if !errors.Is(err, tc.expected) {
				t.Errorf("Validate error = %v, expected %v", err, tc.expected)
			}
		})
	}
}

func TestScenarioPlayerOnBox(t *testing.T) {
	lvl := buildLevel(t, walled(3, 3), core.C(1, 1), core.C(1, 1))

	err := lvl.Validate()
	if !errors.Is(err, core.ErrPlayerOnBox) {
		t.Errorf("Validate error = %v, expected %v", err, core.ErrPlayerOnBox)
	}
}

func TestScenarioCountMismatch(t *testing.T) {
	tiles := walled(5, 4)
	tiles[1][2] = T
	tiles[2][2] = T
	lvl := buildLevel(t, tiles, core.C(1, 1), core.C(3, 2))

	err := lvl.Validate()
	if !errors.Is(err, core.ErrTargetBoxMismatch) {
		t.Errorf("Validate error = %v, expected %v", err, core.ErrTargetBoxMismatch)
	}

	var lvlErr *core.Error
	if !errors.As(err, &lvlErr) || lvlErr.Code != core.CodeTargetBoxMismatch {
		t.Errorf("error code = %v, expected %s", err, core.CodeTargetBoxMismatch)
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	lvl := demoLevel(t)
	for i := 0; i < 5; i++ {
		if err := lvl.Validate(); err != nil {
			t.Fatalf("Validate #%d failed: %v", i+2, err)
		}
	}
	if lvl.Player() != core.C(3, 4) {
		t.Errorf("Player() = %v, expected (3, 4)", lvl.Player())
	}
	assertBoxes(t, lvl, core.C(2, 4), core.C(4, 5))
}

func TestValidatedLevelIsLocked(t *testing.T) {
	lvl := demoLevel(t)

	checks := map[string]error{
		"SetLevel":     lvl.SetLevel(walled(3, 3)),
		"SetPlayer":    lvl.SetPlayer(core.C(2, 2)),
		"AddBox":       lvl.AddBox(core.C(2, 2)),
		"RemoveBox":    lvl.RemoveBox(core.C(2, 4)),
		"ReplaceBoxes": lvl.ReplaceBoxes(nil),
	}
	for name, err := range checks {
		if !errors.Is(err, core.ErrLevelLocked) {
			t.Errorf("%s error = %v, expected %v", name, err, core.ErrLevelLocked)
		}
	}

	if lvl.Width() != 8 || lvl.Player() != core.C(3, 4) || len(lvl.Boxes()) != 2 {
		t.Error("locked level was modified")
	}
}

func TestAddBoxDuplicate(t *testing.T) {
	lvl := core.NewLevel("Test")
	if err := lvl.AddBox(core.C(1, 1)); err != nil {
		t.Fatalf("AddBox failed: %v", err)
	}

	err := lvl.AddBox(core.C(1, 1))
	if !errors.Is(err, core.ErrDuplicateBox) {
		t.Errorf("AddBox duplicate error = %v, expected %v", err, core.ErrDuplicateBox)
	}
	if len(lvl.Boxes()) != 1 {
		t.Errorf("len(Boxes()) = %d, expected 1", len(lvl.Boxes()))
	}
}

func TestRemoveBox(t *testing.T) {
	lvl := core.NewLevel("Test")
	lvl.AddBox(core.C(1, 1))
	lvl.AddBox(core.C(2, 1))
	lvl.AddBox(core.C(3, 1))

	if err := lvl.RemoveBox(core.C(2, 1)); err != nil {
		t.Fatalf("RemoveBox failed: %v", err)
	}
	if err := lvl.RemoveBox(core.C(7, 7)); err != nil {
		t.Errorf("RemoveBox of absent box error = %v, expected nil", err)
	}
	assertBoxes(t, lvl, core.C(1, 1), core.C(3, 1))
}

func TestReplaceBoxes(t *testing.T) {
	lvl := core.NewLevel("Test")
	lvl.AddBox(core.C(1, 1))

	err := lvl.ReplaceBoxes([]core.Coord{core.C(2, 2), core.C(2, 2)})
	if !errors.Is(err, core.ErrDuplicateBox) {
		t.Errorf("ReplaceBoxes error = %v, expected %v", err, core.ErrDuplicateBox)
	}
	assertBoxes(t, lvl, core.C(1, 1))

	if err := lvl.ReplaceBoxes([]core.Coord{core.C(3, 3), core.C(2, 2)}); err != nil {
		t.Fatalf("ReplaceBoxes failed: %v", err)
	}
	assertBoxes(t, lvl, core.C(3, 3), core.C(2, 2))
}

func TestBoxesReturnsCopy(t *testing.T) {
	lvl := demoLevel(t)

	boxes := lvl.Boxes()
	boxes[0] = core.C(6, 6)

	assertBoxes(t, lvl, core.C(2, 4), core.C(4, 5))
}

func TestTileAtOutOfBounds(t *testing.T) {
	lvl := demoLevel(t)

	for _, c := range []core.Coord{core.C(-1, 0), core.C(0, -1), core.C(8, 0), core.C(0, 9)} {
		if got := lvl.TileAt(c); got != B {
			t.Errorf("TileAt(%v) = %v, expected %v", c, got, B)
		}
	}
	if got := lvl.TileAt(core.C(3, 2)); got != T {
		t.Errorf("TileAt((3, 2)) = %v, expected %v", got, T)
	}
}

func TestIsSolved(t *testing.T) {
	tiles := walled(5, 5)
	tiles[1][1] = T
	tiles[1][2] = T

	unsolved := buildLevel(t, tiles, core.C(3, 3), core.C(1, 1), core.C(2, 2))
	if unsolved.IsSolved() {
		t.Error("IsSolved() = true with a box off target")
	}
	if unsolved.BoxesOnTarget() != 1 {
		t.Errorf("BoxesOnTarget() = %d, expected 1", unsolved.BoxesOnTarget())
	}

	solved := buildLevel(t, tiles, core.C(3, 3), core.C(1, 1), core.C(2, 1))
	if !solved.IsSolved() {
		t.Error("IsSolved() = false with all boxes on targets")
	}
}

func TestZeroBoxLevelIsSolved(t *testing.T) {
	lvl := validLevel(t, walled(4, 4), core.C(1, 1))

	if !lvl.IsSolved() {
		t.Error("IsSolved() = false on a level without boxes")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	lvl := demoLevel(t)
	clone := lvl.Clone()

	clone.Move(core.DirDown)
	if lvl.Player() != core.C(3, 4) {
		t.Errorf("original Player() = %v after moving clone", lvl.Player())
	}
	if clone.Player() != core.C(3, 5) {
		t.Errorf("clone Player() = %v, expected (3, 5)", clone.Player())
	}

	clone.Reset()
	if clone.Player() != core.C(3, 4) {
		t.Errorf("clone Player() after Reset = %v, expected (3, 4)", clone.Player())
	}
}
