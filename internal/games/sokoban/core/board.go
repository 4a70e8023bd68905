package core

// AttemptState is the lifecycle of a single attempt.
type AttemptState uint8

const (
	AttemptNotStarted AttemptState = iota
	AttemptInProgress
	AttemptSolved
)

// String returns the string representation of an attempt state.
func (s AttemptState) String() string {
	switch s {
	case AttemptNotStarted:
		return "NotStarted"
	case AttemptInProgress:
		return "InProgress"
	case AttemptSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// AttemptResult classifies a finished attempt against the best known score.
type AttemptResult uint8

const (
	NoHighScore      AttemptResult = iota // More moves than the best
	NewHighScore                          // First solve or fewer moves than the best
	HighScoreMatched                      // Same moves as the best
)

// String returns the string representation of an attempt result.
func (r AttemptResult) String() string {
	switch r {
	case NewHighScore:
		return "NewHighScore"
	case HighScoreMatched:
		return "HighScoreMatched"
	case NoHighScore:
		return "NoHighScore"
	default:
		return "Unknown"
	}
}

// Classify compares a move count against the previous best.
func Classify(moves, best int, hasBest bool) AttemptResult {
	switch {
	case !hasBest || moves < best:
		return NewHighScore
	case moves == best:
		return HighScoreMatched
	default:
		return NoHighScore
	}
}

// Board tracks attempts, moves and the best solution for one level.
type Board struct {
	levelName string
	state     AttemptState
	attempts  int
	moves     []Dir

	hasBest  bool
	best     int
	bestMove []Dir
}

// NewBoard creates a board with no attempts.
func NewBoard(levelName string) *Board {
	return &Board{levelName: levelName}
}

// SeedHighScore restores a previously recorded best, e.g. from storage.
// It is ignored when it is not better than the current best.
func (b *Board) SeedHighScore(moves int, solution []Dir) {
	if b.hasBest && moves >= b.best {
		return
	}
	b.hasBest = true
	b.best = moves
	b.bestMove = append([]Dir(nil), solution...)
}

// LevelName returns the name of the level this board tracks.
func (b *Board) LevelName() string { return b.levelName }

// StartNewAttempt increments the attempt counter and clears the moves.
func (b *Board) StartNewAttempt() {
	b.attempts++
	b.moves = b.moves[:0]
	b.state = AttemptInProgress
}

// RecordMove appends an accepted move. The first attempt starts implicitly.
// Moves on a solved attempt are rejected.
func (b *Board) RecordMove(d Dir) error {
	switch b.state {
	case AttemptNotStarted:
		b.StartNewAttempt()
	case AttemptSolved:
		return newError(CodeAttemptFinished, "attempt %d is already solved", b.attempts)
	}
	b.moves = append(b.moves, d)
	return nil
}

// FinishLevel closes the current attempt as solved and classifies it.
// It may be called once per attempt.
func (b *Board) FinishLevel() (AttemptResult, error) {
	if b.state == AttemptSolved {
		return NoHighScore, newError(CodeAttemptFinished, "attempt %d is already finished", b.attempts)
	}
	if b.state == AttemptNotStarted {
		b.StartNewAttempt()
	}

	n := len(b.moves)
	result := Classify(n, b.best, b.hasBest)
	if result == NewHighScore {
		b.hasBest = true
		b.best = n
		b.bestMove = append(b.bestMove[:0], b.moves...)
	}
	b.state = AttemptSolved
	return result, nil
}

// State returns the state of the current attempt.
func (b *Board) State() AttemptState { return b.state }

// Attempts returns the number of attempts started.
func (b *Board) Attempts() int { return b.attempts }

// Moves returns the move count of the current attempt.
func (b *Board) Moves() int { return len(b.moves) }

// MoveSequence returns a copy of the moves of the current attempt.
func (b *Board) MoveSequence() []Dir {
	return append([]Dir(nil), b.moves...)
}

// HighScore returns the best move count, if any.
func (b *Board) HighScore() (int, bool) {
	return b.best, b.hasBest
}

// BestSolution returns a copy of the best move sequence.
func (b *Board) BestSolution() []Dir {
	return append([]Dir(nil), b.bestMove...)
}

// HasSuccessfulAttempt reports whether any attempt has been solved
// (or a best was seeded).
func (b *Board) HasSuccessfulAttempt() bool {
	return b.hasBest
}
