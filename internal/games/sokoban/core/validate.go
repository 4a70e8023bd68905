package core

// Validate checks the level invariants and returns the first violation:
//   - grid is rectangular with no unset tiles
//   - player is set and inside the grid
//   - player is not on a wall
//   - player is not on a box
//   - every box is inside the grid and not on a wall
//   - target count equals box count
//
// The first successful call captures the starting position used by Reset.
// Further calls have no effect.
func (l *Level) Validate() error {
	if l.validated {
		return nil
	}

	// Check 1: Grid shape
	if err := l.validateGrid(); err != nil {
		return err
	}

	// Check 2: Player present and in bounds
	if !l.playerSet {
		return newError(CodePlayerNotSet, "player position is not set")
	}
	if !l.InBounds(l.player) {
		return newError(CodePlayerOutOfBounds, "player at %s is outside %dx%d grid", l.player, l.width, l.height)
	}

	// Check 3: Player on wall
	if l.TileAt(l.player) == TileWall {
		return newError(CodePlayerOnWall, "player at %s is on a wall", l.player)
	}

	// Check 4: Player on box
	if l.boxes.Contains(l.player) {
		return newError(CodePlayerOnBox, "player at %s is on a box", l.player)
	}

	// Check 5: Boxes
	for i := 0; i < l.boxes.Len(); i++ {
		b := l.boxes.At(i)
		if !l.InBounds(b) {
			return newError(CodeBoxOutOfBounds, "box at %s is outside %dx%d grid", b, l.width, l.height)
		}
		if l.TileAt(b) == TileWall {
			return newError(CodeBoxOnWall, "box at %s is on a wall", b)
		}
	}

	// Check 6: Target/box balance
	if l.targets != l.boxes.Len() {
		return newError(CodeTargetBoxMismatch, "level has %d targets but %d boxes", l.targets, l.boxes.Len())
	}

	l.validated = true
	l.startPlayer = l.player
	l.startBoxes = l.boxes.Slice()
	return nil
}

func (l *Level) validateGrid() error {
	if len(l.tiles) == 0 || l.width == 0 {
		return newError(CodeMalformedGrid, "level has no tiles")
	}
	for y, row := range l.tiles {
		if len(row) != l.width {
			return newError(CodeMalformedGrid, "row %d has width %d, expected %d", y, len(row), l.width)
		}
		for x, t := range row {
			if !t.Valid() {
				return newError(CodeMalformedGrid, "tile at %s is not set", C(x, y))
			}
		}
	}
	return nil
}
