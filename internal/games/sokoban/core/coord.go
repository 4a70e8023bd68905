package core

import (
	"fmt"
	"strings"
)

// Dir represents a movement direction.
type Dir uint8

const (
	DirLeft Dir = iota
	DirRight
	DirUp
	DirDown
)

// Dirs lists all directions in declaration order.
var Dirs = [...]Dir{DirLeft, DirRight, DirUp, DirDown}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Letter returns the single-letter notation used for move sequences.
func (d Dir) Letter() byte {
	switch d {
	case DirLeft:
		return 'L'
	case DirRight:
		return 'R'
	case DirUp:
		return 'U'
	case DirDown:
		return 'D'
	default:
		return '?'
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return d
	}
}

// FormatMoves encodes a move sequence as letters, e.g. "LLUR".
func FormatMoves(moves []Dir) string {
	var sb strings.Builder
	sb.Grow(len(moves))
	for _, d := range moves {
		sb.WriteByte(d.Letter())
	}
	return sb.String()
}

// ParseMoves decodes a move sequence produced by FormatMoves.
// Lowercase letters are accepted.
func ParseMoves(s string) ([]Dir, error) {
	moves := make([]Dir, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'L', 'l':
			moves = append(moves, DirLeft)
		case 'R', 'r':
			moves = append(moves, DirRight)
		case 'U', 'u':
			moves = append(moves, DirUp)
		case 'D', 'd':
			moves = append(moves, DirDown)
		default:
			return nil, newError(CodeInvalidMove, "unknown move %q at offset %d", s[i], i)
		}
	}
	return moves, nil
}

// Coord represents an immutable 2D position on the grid.
// X increases to the right, Y increases downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Left returns the coordinate one step to the left.
func (c Coord) Left() Coord {
	return Coord{X: c.X - 1, Y: c.Y}
}

// Right returns the coordinate one step to the right.
func (c Coord) Right() Coord {
	return Coord{X: c.X + 1, Y: c.Y}
}

// Up returns the coordinate one step up.
func (c Coord) Up() Coord {
	return Coord{X: c.X, Y: c.Y - 1}
}

// Down returns the coordinate one step down.
func (c Coord) Down() Coord {
	return Coord{X: c.X, Y: c.Y + 1}
}

// Step returns a new Coord one step in the given direction.
// No bounds checking is done; bounds belong to the level.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}
