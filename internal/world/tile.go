// Package world provides the tile map and its collision queries.
package world

// Tile represents a single map cell's traversal and visibility flags.
type Tile struct {
	Blocked     bool // Prevents movement into the cell
	BlocksSight bool // Reserved for line of sight, currently selects the background colour
}

// Empty returns a walkable, transparent tile.
func Empty() Tile {
	return Tile{}
}

// Wall returns an impassable, opaque tile.
func Wall() Tile {
	return Tile{Blocked: true, BlocksSight: true}
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return !t.Blocked
}
