package core

// MoveResult describes the outcome of a single move.
type MoveResult uint8

const (
	MoveBlocked MoveResult = iota // Nothing changed
	MoveWalked                    // Player stepped onto an empty cell
	MovePushed                    // Player stepped and pushed a box
)

// String returns the string representation of a move result.
func (r MoveResult) String() string {
	switch r {
	case MoveBlocked:
		return "Blocked"
	case MoveWalked:
		return "Walked"
	case MovePushed:
		return "Pushed"
	default:
		return "Unknown"
	}
}

// Accepted returns true if the move changed the level.
func (r MoveResult) Accepted() bool {
	return r == MoveWalked || r == MovePushed
}

// Move advances the player one cell in direction d, pushing a box if one is
// in the way. Moves into walls, off the grid, or pushes into a wall, another
// box or off the grid are rejected and leave the level unchanged.
// An unvalidated level rejects every move.
func (l *Level) Move(d Dir) MoveResult {
	if !l.validated {
		return MoveBlocked
	}

	target := l.player.Step(d)
	if !l.TileAt(target).Walkable() {
		return MoveBlocked
	}

	if !l.boxes.Contains(target) {
		l.player = target
		return MoveWalked
	}

	beyond := target.Step(d)
	if !l.TileAt(beyond).Walkable() || l.boxes.Contains(beyond) {
		return MoveBlocked
	}

	l.boxes.Move(target, beyond)
	l.player = target
	return MovePushed
}
