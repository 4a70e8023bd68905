package sokoban

import "github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"

// Facing is the orientation used to draw the player.
// It is display state only and never feeds back into movement.
type Facing uint8

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
	FacingSolved
)

// String returns the string representation of a facing.
func (f Facing) String() string {
	switch f {
	case FacingDown:
		return "Down"
	case FacingUp:
		return "Up"
	case FacingLeft:
		return "Left"
	case FacingRight:
		return "Right"
	case FacingSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// FacingFor returns the facing after a move attempt in direction d.
func FacingFor(d core.Dir) Facing {
	switch d {
	case core.DirUp:
		return FacingUp
	case core.DirLeft:
		return FacingLeft
	case core.DirRight:
		return FacingRight
	default:
		return FacingDown
	}
}
