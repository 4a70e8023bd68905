package sokoban

import (
	"fmt"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

// StartMessage is shown before the first move of an attempt.
const StartMessage = "Press UP, DOWN, LEFT or RIGHT to start"

// StatusLine formats the attempt counters of a board.
func StatusLine(b *core.Board) string {
	return fmt.Sprintf("Number of attempts: %d,  number of moves: %d", b.Attempts(), b.Moves())
}

// SolveMessage returns the lines shown when a level is solved.
// best is the high score after the attempt was classified.
func SolveMessage(levelName string, moves int, result core.AttemptResult, best int) []string {
	lines := []string{
		"Congratulations!!!",
		fmt.Sprintf("Level «%s» solved", levelName),
		fmt.Sprintf("in %d moves", moves),
	}
	switch result {
	case core.NewHighScore:
		lines = append(lines, "This is a new High Score!!!")
	case core.HighScoreMatched:
		lines = append(lines, "Same moves as High Score.")
	default:
		lines = append(lines, fmt.Sprintf("Previous High Score: %d moves.", best))
	}
	return lines
}
