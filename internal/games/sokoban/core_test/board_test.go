package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		moves    int
		best     int
		hasBest  bool
		expected core.AttemptResult
	}{
		{"first solve", 40, 0, false, core.NewHighScore},
		{"fewer moves", 30, 40, true, core.NewHighScore},
		{"same moves", 40, 40, true, core.HighScoreMatched},
		{"more moves", 41, 40, true, core.NoHighScore},
		{"zero moves first", 0, 0, false, core.NewHighScore},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := core.Classify(tc.moves, tc.best, tc.hasBest); got != tc.expected {
				t.Errorf("Classify(%d, %d, %v) = %v, expected %v", tc.moves, tc.best, tc.hasBest, got, tc.expected)
			}
		})
	}
}

func TestBoardLifecycle(t *testing.T) {
	b := core.NewBoard("Demo")

	if b.State() != core.AttemptNotStarted {
		t.Errorf("State() = %v, expected %v", b.State(), core.AttemptNotStarted)
	}
	if b.HasSuccessfulAttempt() {
		t.Error("HasSuccessfulAttempt() = true on a new board")
	}

	b.RecordMove(core.DirLeft)
	b.RecordMove(core.DirUp)
	if b.State() != core.AttemptInProgress || b.Attempts() != 1 {
		t.Errorf("after first move: state=%v attempts=%d, expected InProgress/1", b.State(), b.Attempts())
	}
	if b.Moves() != 2 {
		t.Errorf("Moves() = %d, expected 2", b.Moves())
	}

	result, err := b.FinishLevel()
	if err != nil {
		t.Fatalf("FinishLevel failed: %v", err)
	}
	if result != core.NewHighScore {
		t.Errorf("first FinishLevel = %v, expected %v", result, core.NewHighScore)
	}
	if best, ok := b.HighScore(); !ok || best != 2 {
		t.Errorf("HighScore() = %d, %v, expected 2, true", best, ok)
	}
	if core.FormatMoves(b.BestSolution()) != "LU" {
		t.Errorf("BestSolution() = %v, expected LU", b.BestSolution())
	}

	if _, err := b.FinishLevel(); !errors.Is(err, core.ErrAttemptFinished) {
		t.Errorf("second FinishLevel error = %v, expected %v", err, core.ErrAttemptFinished)
	}
	if err := b.RecordMove(core.DirDown); !errors.Is(err, core.ErrAttemptFinished) {
		t.Errorf("RecordMove after solve error = %v, expected %v", err, core.ErrAttemptFinished)
	}

	b.StartNewAttempt()
	if b.Moves() != 0 || b.Attempts() != 2 {
		t.Errorf("after StartNewAttempt: moves=%d attempts=%d, expected 0/2", b.Moves(), b.Attempts())
	}
	for _, d := range []core.Dir{core.DirRight, core.DirRight, core.DirDown} {
		b.RecordMove(d)
	}
	if result, _ := b.FinishLevel(); result != core.NoHighScore {
		t.Errorf("worse attempt = %v, expected %v", result, core.NoHighScore)
	}
	if core.FormatMoves(b.BestSolution()) != "LU" {
		t.Errorf("BestSolution() changed to %v", core.FormatMoves(b.BestSolution()))
	}

	b.StartNewAttempt()
	b.RecordMove(core.DirDown)
	b.RecordMove(core.DirDown)
	if result, _ := b.FinishLevel(); result != core.HighScoreMatched {
		t.Errorf("equal attempt = %v, expected %v", result, core.HighScoreMatched)
	}
}

func TestBoardSeedHighScore(t *testing.T) {
	b := core.NewBoard("Demo")
	b.SeedHighScore(5, []core.Dir{core.DirUp, core.DirUp, core.DirUp, core.DirLeft, core.DirLeft})
	b.SeedHighScore(9, nil)

	if best, ok := b.HighScore(); !ok || best != 5 {
		t.Errorf("HighScore() = %d, %v, expected 5, true", best, ok)
	}
	if !b.HasSuccessfulAttempt() {
		t.Error("HasSuccessfulAttempt() = false after seeding")
	}

	for i := 0; i < 6; i++ {
		b.RecordMove(core.DirRight)
	}
	if result, _ := b.FinishLevel(); result != core.NoHighScore {
		t.Errorf("FinishLevel = %v, expected %v", result, core.NoHighScore)
	}
}

func TestMoveSequenceIsCopy(t *testing.T) {
	b := core.NewBoard("Demo")
	b.RecordMove(core.DirLeft)

	seq := b.MoveSequence()
	seq[0] = core.DirRight

	if b.MoveSequence()[0] != core.DirLeft {
		t.Error("mutating MoveSequence() changed the board")
	}
}
