package world

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roguetut/internal/telemetry"
)

const (
	// Default map dimensions
	DefaultWidth  = 80
	DefaultHeight = 45
)

// Point is a map coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DefaultWalls are the two pillars of the starting map.
var DefaultWalls = []Point{{X: 30, Y: 22}, {X: 50, Y: 22}}

// Map is a fixed-size grid of tiles indexed as tiles[x][y].
type Map struct {
	Width  int
	Height int
	tiles  [][]Tile
}

// New creates a map of the given size with every cell empty.
func New(width, height int) *Map {
	tiles := make([][]Tile, width)
	for x := range tiles {
		tiles[x] = make([]Tile, height)
		for y := range tiles[x] {
			tiles[x][y] = Empty()
		}
	}

	return &Map{
		Width:  width,
		Height: height,
		tiles:  tiles,
	}
}

// Build creates an empty map and places a wall at every listed point.
func Build(ctx context.Context, width, height int, walls []Point) (*Map, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "map.build")
	defer span.End()

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid map size %dx%d", width, height)
	}

	m := New(width, height)
	for _, p := range walls {
		if err := m.SetTile(p.X, p.Y, Wall()); err != nil {
			return nil, fmt.Errorf("placing wall: %w", err)
		}
	}

	span.SetAttributes(
		attribute.Int("map.width", width),
		attribute.Int("map.height", height),
		attribute.Int("map.walls", len(walls)),
	)
	return m, nil
}

// InBounds returns true if the position lies inside the grid.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// TileAt returns the tile at the given position, or a *BoundsError.
func (m *Map) TileAt(x, y int) (Tile, error) {
	if !m.InBounds(x, y) {
		return Tile{}, m.boundsError(x, y)
	}
	return m.tiles[x][y], nil
}

// SetTile replaces the tile at the given position.
func (m *Map) SetTile(x, y int, t Tile) error {
	if !m.InBounds(x, y) {
		return m.boundsError(x, y)
	}
	m.tiles[x][y] = t
	return nil
}

// IsBlocked returns true if the position cannot be entered.
// Positions off the map are always blocked.
func (m *Map) IsBlocked(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.tiles[x][y].Blocked
}

// IsOpaque returns true if the tile at the position blocks sight.
// Positions off the map are treated as opaque.
func (m *Map) IsOpaque(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.tiles[x][y].BlocksSight
}

func (m *Map) boundsError(x, y int) *BoundsError {
	return &BoundsError{X: x, Y: y, Width: m.Width, Height: m.Height}
}
