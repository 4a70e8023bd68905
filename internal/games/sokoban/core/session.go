package core

// Session drives one player through one level: it moves the level, records
// accepted moves on the board and reports solutions.
type Session struct {
	level    *Level
	board    *Board
	player   string
	recorder Recorder

	result    AttemptResult
	hasResult bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithPlayerName sets the name reported with solutions.
func WithPlayerName(name string) SessionOption {
	return func(s *Session) { s.player = name }
}

// WithRecorder sets the solution recorder.
func WithRecorder(r Recorder) SessionOption {
	return func(s *Session) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithBoard uses an existing board, e.g. one seeded with a stored best.
func WithBoard(b *Board) SessionOption {
	return func(s *Session) {
		if b != nil {
			s.board = b
		}
	}
}

// NewSession creates a session for a level. The level is validated if it
// has not been already.
func NewSession(level *Level, opts ...SessionOption) (*Session, error) {
	if level == nil {
		return nil, newError(CodeNilArgument, "level must not be nil")
	}
	if err := level.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		level:    level,
		recorder: NopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.board == nil {
		s.board = NewBoard(level.Name())
	}
	return s, nil
}

// Level returns the level being played.
func (s *Session) Level() *Level { return s.level }

// Board returns the attempt board.
func (s *Session) Board() *Board { return s.board }

// PlayerName returns the player name.
func (s *Session) PlayerName() string { return s.player }

// Solved reports whether the current attempt is solved.
func (s *Session) Solved() bool { return s.board.State() == AttemptSolved }

// Move applies d. Accepted moves are counted; the first move that leaves the
// level solved finishes the attempt and notifies the recorder.
// Moves on a solved attempt are blocked until StartNewAttempt.
func (s *Session) Move(d Dir) MoveResult {
	if s.Solved() {
		return MoveBlocked
	}

	res := s.level.Move(d)
	if !res.Accepted() {
		return res
	}
	if err := s.board.RecordMove(d); err != nil {
		return MoveBlocked
	}

	if s.level.IsSolved() {
		s.finish()
	}
	return res
}

func (s *Session) finish() {
	result, err := s.board.FinishLevel()
	if err != nil {
		return
	}
	s.result = result
	s.hasResult = true
	s.recorder.RecordSolution(Solution{
		PlayerName: s.player,
		LevelName:  s.level.Name(),
		Moves:      s.board.Moves(),
		Attempts:   s.board.Attempts(),
		Sequence:   s.board.MoveSequence(),
		Result:     result,
	})
}

// StartNewAttempt restores the starting position and begins a new attempt.
func (s *Session) StartNewAttempt() {
	s.level.Reset()
	s.board.StartNewAttempt()
	s.hasResult = false
}

// Result returns the classification of the last solved attempt.
// The boolean is false while the current attempt is unsolved.
func (s *Session) Result() (AttemptResult, bool) {
	return s.result, s.hasResult
}
