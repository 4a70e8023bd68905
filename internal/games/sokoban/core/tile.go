// Package core provides the level state machine for Sokoban: the tile grid,
// its validation rules, the movement/push engine and attempt scoring.
// This package is UI-agnostic, performs no I/O and is deterministic.
package core

// Tile is the static terrain of a single grid cell.
// Boxes and the player are tracked separately and never baked into tiles.
type Tile uint8

const (
	TileUnset      Tile = iota // Zero value; never valid inside a level
	TileBackground             // Outside the playable area
	TileWall
	TileFloor
	TileTarget
)

// String returns the string representation of a tile.
func (t Tile) String() string {
	switch t {
	case TileUnset:
		return "Unset"
	case TileBackground:
		return "Background"
	case TileWall:
		return "Wall"
	case TileFloor:
		return "Floor"
	case TileTarget:
		return "Target"
	default:
		return "Unknown"
	}
}

// Valid returns true for tiles that may appear in a level.
func (t Tile) Valid() bool {
	return t >= TileBackground && t <= TileTarget
}

// Walkable returns true if the player or a box may stand on this tile.
func (t Tile) Walkable() bool {
	return t == TileFloor || t == TileTarget
}
