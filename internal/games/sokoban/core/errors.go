package core

import "fmt"

// Error codes reported by level construction, validation and scoring.
const (
	CodeMalformedGrid     = "malformed_grid"
	CodeNilArgument       = "nil_argument"
	CodePlayerNotSet      = "player_not_set"
	CodePlayerOutOfBounds = "player_out_of_bounds"
	CodePlayerOnWall      = "player_on_wall"
	CodePlayerOnBox       = "player_on_box"
	CodeBoxOutOfBounds    = "box_out_of_bounds"
	CodeBoxOnWall         = "box_on_wall"
	CodeTargetBoxMismatch = "target_box_mismatch"
	CodeDuplicateBox      = "duplicate_box"
	CodeLevelLocked       = "level_locked"
	CodeAttemptFinished   = "attempt_finished"
	CodeInvalidMove       = "invalid_move"
)

// Error contains details about a rejected level operation.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is reports whether target carries the same code, so errors.Is works
// against the sentinel values below regardless of the message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func newError(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Sentinel errors for use with errors.Is.
var (
	ErrMalformedGrid     = &Error{Code: CodeMalformedGrid, Message: "malformed grid"}
	ErrNilArgument       = &Error{Code: CodeNilArgument, Message: "nil argument"}
	ErrPlayerNotSet      = &Error{Code: CodePlayerNotSet, Message: "player not set"}
	ErrPlayerOutOfBounds = &Error{Code: CodePlayerOutOfBounds, Message: "player out of bounds"}
	ErrPlayerOnWall      = &Error{Code: CodePlayerOnWall, Message: "player on wall"}
	ErrPlayerOnBox       = &Error{Code: CodePlayerOnBox, Message: "player on box"}
	ErrBoxOutOfBounds    = &Error{Code: CodeBoxOutOfBounds, Message: "box out of bounds"}
	ErrBoxOnWall         = &Error{Code: CodeBoxOnWall, Message: "box on wall"}
	ErrTargetBoxMismatch = &Error{Code: CodeTargetBoxMismatch, Message: "target count does not match box count"}
	ErrDuplicateBox      = &Error{Code: CodeDuplicateBox, Message: "duplicate box"}
	ErrLevelLocked       = &Error{Code: CodeLevelLocked, Message: "level already validated"}
	ErrAttemptFinished   = &Error{Code: CodeAttemptFinished, Message: "attempt already finished"}
	ErrInvalidMove       = &Error{Code: CodeInvalidMove, Message: "invalid move"}
)
