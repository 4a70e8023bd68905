package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

func TestCoordNeighbors(t *testing.T) {
	p := core.C(3, 4)

	tests := []struct {
		name     string
		got      core.Coord
		expected core.Coord
	}{
		{"left", p.Left(), core.C(2, 4)},
		{"right", p.Right(), core.C(4, 4)},
		{"up", p.Up(), core.C(3, 3)},
		{"down", p.Down(), core.C(3, 5)},
		{"no bounds check", core.C(0, 0).Left().Up(), core.C(-1, -1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.expected {
				t.Errorf("got %v, expected %v", tc.got, tc.expected)
			}
		})
	}
}

func TestCoordRoundTrip(t *testing.T) {
	points := []core.Coord{core.C(0, 0), core.C(5, 7), core.C(-3, 2), core.C(100, -100)}

	for _, p := range points {
		for _, d := range core.Dirs {
			if got := p.Step(d).Step(d.Opposite()); got != p {
				t.Errorf("%v.Step(%v).Step(%v) = %v, expected %v", p, d, d.Opposite(), got, p)
			}
		}
	}
}

func TestCoordStepMatchesNeighbors(t *testing.T) {
	p := core.C(2, 2)
	if p.Step(core.DirLeft) != p.Left() {
		t.Error("Step(Left) differs from Left()")
	}
	if p.Step(core.DirRight) != p.Right() {
		t.Error("Step(Right) differs from Right()")
	}
	if p.Step(core.DirUp) != p.Up() {
		t.Error("Step(Up) differs from Up()")
	}
	if p.Step(core.DirDown) != p.Down() {
		t.Error("Step(Down) differs from Down()")
	}
}

func TestCoordString(t *testing.T) {
	if got := core.C(3, -1).String(); got != "(3, -1)" {
		t.Errorf("String() = %q, expected %q", got, "(3, -1)")
	}
}

func TestMovesRoundTrip(t *testing.T) {
	moves := []core.Dir{core.DirLeft, core.DirLeft, core.DirUp, core.DirRight, core.DirDown}

	s := core.FormatMoves(moves)
	if s != "LLURD" {
		t.Errorf("FormatMoves = %q, expected %q", s, "LLURD")
	}

	parsed, err := core.ParseMoves("llURd")
	if err != nil {
		t.Fatalf("ParseMoves failed: %v", err)
	}
	if core.FormatMoves(parsed) != "LLURD" {
		t.Errorf("ParseMoves = %v, expected %v", parsed, moves)
	}

	if _, err := core.ParseMoves("LX"); !errors.Is(err, core.ErrInvalidMove) {
		t.Errorf("ParseMoves(\"LX\") error = %v, expected %v", err, core.ErrInvalidMove)
	}

	empty, err := core.ParseMoves("")
	if err != nil || len(empty) != 0 {
		t.Errorf("ParseMoves(\"\") = %v, %v, expected empty", empty, err)
	}
}
