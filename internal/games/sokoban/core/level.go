package core

// Level is a rectangular tile grid with a player and an ordered set of boxes.
// A level is assembled with the setters, validated once, and afterwards only
// the player and boxes change, through Move and Reset.
type Level struct {
	name   string
	width  int
	height int
	tiles  [][]Tile // [row][col]

	player    Coord
	playerSet bool
	boxes     *BoxSet
	targets   int

	validated   bool
	startPlayer Coord
	startBoxes  []Coord
}

// NewLevel creates an empty, unvalidated level.
func NewLevel(name string) *Level {
	return &Level{
		name:  name,
		boxes: NewBoxSet(),
	}
}

// SetLevel replaces the tile layout. Rows must be non-empty, of equal width
// and contain no unset tiles. The target count is recomputed.
func (l *Level) SetLevel(tiles [][]Tile) error {
	if l.validated {
		return ErrLevelLocked
	}
	if tiles == nil {
		return newError(CodeNilArgument, "tiles must not be nil")
	}
	if len(tiles) == 0 || len(tiles[0]) == 0 {
		return newError(CodeMalformedGrid, "level has no tiles")
	}

	width := len(tiles[0])
	grid := make([][]Tile, len(tiles))
	targets := 0
	for y, row := range tiles {
		if len(row) != width {
			return newError(CodeMalformedGrid, "row %d has width %d, expected %d", y, len(row), width)
		}
		grid[y] = make([]Tile, width)
		for x, t := range row {
			if !t.Valid() {
				return newError(CodeMalformedGrid, "tile at %s is not set", C(x, y))
			}
			if t == TileTarget {
				targets++
			}
			grid[y][x] = t
		}
	}

	l.tiles = grid
	l.width = width
	l.height = len(grid)
	l.targets = targets
	return nil
}

// SetPlayer overwrites the player position. Bounds are checked by Validate.
func (l *Level) SetPlayer(c Coord) error {
	if l.validated {
		return ErrLevelLocked
	}
	l.player = c
	l.playerSet = true
	return nil
}

// AddBox adds a box at c. Adding a box twice is an error.
func (l *Level) AddBox(c Coord) error {
	if l.validated {
		return ErrLevelLocked
	}
	if !l.boxes.Add(c) {
		return newError(CodeDuplicateBox, "box already at %s", c)
	}
	return nil
}

// RemoveBox removes the box at c. Removing an absent box is a no-op.
func (l *Level) RemoveBox(c Coord) error {
	if l.validated {
		return ErrLevelLocked
	}
	l.boxes.Remove(c)
	return nil
}

// ReplaceBoxes replaces all boxes at once. On a duplicate coordinate the
// current boxes are left untouched.
func (l *Level) ReplaceBoxes(boxes []Coord) error {
	if l.validated {
		return ErrLevelLocked
	}
	next := NewBoxSet()
	for _, b := range boxes {
		if !next.Add(b) {
			return newError(CodeDuplicateBox, "box listed twice at %s", b)
		}
	}
	l.boxes = next
	return nil
}

// Name returns the level name.
func (l *Level) Name() string { return l.name }

// Width returns the grid width.
func (l *Level) Width() int { return l.width }

// Height returns the grid height.
func (l *Level) Height() int { return l.height }

// TargetCount returns the number of target tiles.
func (l *Level) TargetCount() int { return l.targets }

// Validated reports whether Validate has succeeded on this level.
func (l *Level) Validated() bool { return l.validated }

// InBounds returns true if c lies within the grid.
func (l *Level) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < l.width && c.Y >= 0 && c.Y < l.height
}

// TileAt returns the tile at c, or TileBackground when c is outside the grid.
func (l *Level) TileAt(c Coord) Tile {
	if !l.InBounds(c) {
		return TileBackground
	}
	return l.tiles[c.Y][c.X]
}

// Player returns the player position.
func (l *Level) Player() Coord { return l.player }

// PlayerSet reports whether a player position has been assigned.
func (l *Level) PlayerSet() bool { return l.playerSet }

// Boxes returns a copy of the box positions in insertion order.
func (l *Level) Boxes() []Coord { return l.boxes.Slice() }

// BoxCount returns the number of boxes.
func (l *Level) BoxCount() int { return l.boxes.Len() }

// HasBoxAt reports whether a box sits at c.
func (l *Level) HasBoxAt(c Coord) bool { return l.boxes.Contains(c) }

// BoxesOnTarget counts boxes currently on a target tile.
func (l *Level) BoxesOnTarget() int {
	n := 0
	for i := 0; i < l.boxes.Len(); i++ {
		if l.TileAt(l.boxes.At(i)) == TileTarget {
			n++
		}
	}
	return n
}

// IsSolved returns true iff every box is on a target.
// A level without boxes is solved.
func (l *Level) IsSolved() bool {
	for i := 0; i < l.boxes.Len(); i++ {
		if l.TileAt(l.boxes.At(i)) != TileTarget {
			return false
		}
	}
	return true
}

// Reset restores the player and boxes captured by the first successful
// Validate. It does nothing on an unvalidated level.
func (l *Level) Reset() {
	if !l.validated {
		return
	}
	l.player = l.startPlayer
	l.boxes.reset(l.startBoxes)
}

// Clone returns a deep copy of the level, including its validated state.
func (l *Level) Clone() *Level {
	c := &Level{
		name:        l.name,
		width:       l.width,
		height:      l.height,
		player:      l.player,
		playerSet:   l.playerSet,
		boxes:       l.boxes.Clone(),
		targets:     l.targets,
		validated:   l.validated,
		startPlayer: l.startPlayer,
	}
	if l.tiles != nil {
		c.tiles = make([][]Tile, len(l.tiles))
		for y, row := range l.tiles {
			c.tiles[y] = append([]Tile(nil), row...)
		}
	}
	if l.startBoxes != nil {
		c.startBoxes = append([]Coord(nil), l.startBoxes...)
	}
	return c
}
