package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

// scenarioLevel has a target at (3,1), a box at (2,1) and the player at (1,1).
func scenarioLevel(t *testing.T) *core.Level {
	t.Helper()
	tiles := walled(5, 3)
	tiles[1][3] = T
	return validLevel(t, tiles, core.C(1, 1), core.C(2, 1))
}

func TestScenarioSolveIsNewHighScore(t *testing.T) {
	var got []core.Solution
	s, err := core.NewSession(scenarioLevel(t),
		core.WithPlayerName("alice"),
		core.WithRecorder(core.RecorderFunc(func(sol core.Solution) {
			got = append(got, sol)
		})),
	)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	if res := s.Move(core.DirRight); res != core.MovePushed {
		t.Fatalf("Move(Right) = %v, expected %v", res, core.MovePushed)
	}

	lvl := s.Level()
	if lvl.Player() != core.C(2, 1) {
		t.Errorf("Player() = %v, expected (2, 1)", lvl.Player())
	}
	assertBoxes(t, lvl, core.C(3, 1))
	if !lvl.IsSolved() {
		t.Error("IsSolved() = false")
	}

	result, ok := s.Result()
	if !ok || result != core.NewHighScore {
		t.Errorf("Result() = %v, %v, expected %v, true", result, ok, core.NewHighScore)
	}

	if len(got) != 1 {
		t.Fatalf("recorded %d solutions, expected 1", len(got))
	}
	sol := got[0]
	if sol.PlayerName != "alice" || sol.LevelName != "Test" || sol.Moves != 1 || sol.Attempts != 1 {
		t.Errorf("Solution = %+v", sol)
	}
	if core.FormatMoves(sol.Sequence) != "R" {
		t.Errorf("Sequence = %v, expected R", core.FormatMoves(sol.Sequence))
	}
	if sol.Result != core.NewHighScore {
		t.Errorf("Solution.Result = %v, expected %v", sol.Result, core.NewHighScore)
	}

	// Further moves are rejected and nothing is recorded twice
	if res := s.Move(core.DirLeft); res != core.MoveBlocked {
		t.Errorf("Move after solve = %v, expected %v", res, core.MoveBlocked)
	}
	if len(got) != 1 {
		t.Errorf("recorded %d solutions after extra move, expected 1", len(got))
	}
}

func TestScenarioNewAttemptRestoresSnapshot(t *testing.T) {
	s, err := core.NewSession(demoLevel(t))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	for _, d := range []core.Dir{core.DirDown, core.DirLeft, core.DirUp} {
		s.Move(d)
	}
	if s.Board().Moves() != 3 {
		t.Fatalf("Moves() = %d, expected 3", s.Board().Moves())
	}

	s.StartNewAttempt()

	lvl := s.Level()
	if lvl.Player() != core.C(3, 4) {
		t.Errorf("Player() = %v, expected (3, 4)", lvl.Player())
	}
	assertBoxes(t, lvl, core.C(2, 4), core.C(4, 5))
	if s.Board().Moves() != 0 {
		t.Errorf("Moves() = %d, expected 0", s.Board().Moves())
	}
	if s.Board().Attempts() != 2 {
		t.Errorf("Attempts() = %d, expected 2", s.Board().Attempts())
	}
}

func TestNewAttemptAfterSolve(t *testing.T) {
	s, err := core.NewSession(scenarioLevel(t))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	s.Move(core.DirRight)
	if !s.Solved() {
		t.Fatal("Solved() = false after solving move")
	}

	s.StartNewAttempt()
	if s.Solved() {
		t.Error("Solved() = true after StartNewAttempt")
	}
	if _, ok := s.Result(); ok {
		t.Error("Result() reported a classification for an unsolved attempt")
	}
	assertBoxes(t, s.Level(), core.C(2, 1))
	if s.Level().Player() != core.C(1, 1) {
		t.Errorf("Player() = %v, expected (1, 1)", s.Level().Player())
	}

	s.Move(core.DirRight)
	if result, _ := s.Result(); result != core.HighScoreMatched {
		t.Errorf("Result() = %v, expected %v", result, core.HighScoreMatched)
	}
}

func TestRejectedMovesAreNotCounted(t *testing.T) {
	s, err := core.NewSession(demoLevel(t))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	s.Move(core.DirLeft)
	if s.Board().Moves() != 0 {
		t.Errorf("Moves() after blocked move = %d, expected 0", s.Board().Moves())
	}

	s.Move(core.DirDown)
	if s.Board().Moves() != 1 {
		t.Errorf("Moves() after accepted move = %d, expected 1", s.Board().Moves())
	}
}

func TestZeroBoxLevelSolvesOnFirstMove(t *testing.T) {
	calls := 0
	s, err := core.NewSession(validLevel(t, walled(4, 3), core.C(1, 1)),
		core.WithRecorder(core.RecorderFunc(func(core.Solution) { calls++ })))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	if s.Solved() {
		t.Error("Solved() = true before any move")
	}
	s.Move(core.DirRight)
	if !s.Solved() || calls != 1 {
		t.Errorf("after move: solved=%v calls=%d, expected true/1", s.Solved(), calls)
	}
}

func TestNewSessionValidates(t *testing.T) {
	lvl := buildLevel(t, walled(3, 3), core.C(1, 1), core.C(1, 1))

	if _, err := core.NewSession(lvl); !errors.Is(err, core.ErrPlayerOnBox) {
		t.Errorf("NewSession error = %v, expected %v", err, core.ErrPlayerOnBox)
	}
	if _, err := core.NewSession(nil); !errors.Is(err, core.ErrNilArgument) {
		t.Errorf("NewSession(nil) error = %v, expected %v", err, core.ErrNilArgument)
	}
}

func TestSessionWithSeededBoard(t *testing.T) {
	board := core.NewBoard("Test")
	board.SeedHighScore(1, []core.Dir{core.DirRight})

	tiles := walled(6, 3)
	tiles[1][4] = T
	s, err := core.NewSession(validLevel(t, tiles, core.C(1, 1), core.C(2, 1)), core.WithBoard(board))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	s.Move(core.DirRight)
	s.Move(core.DirRight)

	if result, _ := s.Result(); result != core.NoHighScore {
		t.Errorf("Result() = %v, expected %v", result, core.NoHighScore)
	}
}
