package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roguetut/internal/world"
)

// MapDef describes the map size and its fixed obstacles.
type MapDef struct {
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Walls  []world.Point `json:"walls"`
}

// PaletteDef holds the background colours used to draw tiles.
type PaletteDef struct {
	DarkWall   string `json:"darkWall"`   // Background of opaque tiles
	DarkGround string `json:"darkGround"` // Background of transparent tiles
}

// Palette is a PaletteDef with its colours parsed.
type Palette struct {
	DarkWall   tcell.Color
	DarkGround tcell.Color
}

// Parse converts the hex colours of the palette.
func (p PaletteDef) Parse() (Palette, error) {
	wall, err := ParseHexColor(p.DarkWall)
	if err != nil {
		return Palette{}, fmt.Errorf("darkWall: %w", err)
	}
	ground, err := ParseHexColor(p.DarkGround)
	if err != nil {
		return Palette{}, fmt.Errorf("darkGround: %w", err)
	}
	return Palette{DarkWall: wall, DarkGround: ground}, nil
}

// ObjectDef defines a drawable object loaded from JSON.
type ObjectDef struct {
	ID     string `json:"id"`     // Unique identifier (e.g., "player")
	Name   string `json:"name"`   // Display name
	X      int    `json:"x"`      // Starting column
	Y      int    `json:"y"`      // Starting row
	Glyph  string `json:"glyph"`  // Single character for rendering (e.g., "@")
	Color  string `json:"color"`  // Hex color code (e.g., "#FFFF00")
	Player bool   `json:"player"` // Receives keyboard movement
}

// GlyphRune returns the glyph as a rune for rendering.
func (o *ObjectDef) GlyphRune() rune {
	for _, r := range o.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the color as a tcell.Color.
func (o *ObjectDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(o.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// WorldFile represents the structure of world.json.
type WorldFile struct {
	Map     MapDef      `json:"map"`
	Palette PaletteDef  `json:"palette"`
	Objects []ObjectDef `json:"objects"`
}

// Validate checks the fixture for values the game cannot start with.
func (w *WorldFile) Validate() error {
	if w.Map.Width <= 0 || w.Map.Height <= 0 {
		return fmt.Errorf("invalid map size %dx%d", w.Map.Width, w.Map.Height)
	}
	if _, err := w.Palette.Parse(); err != nil {
		return fmt.Errorf("invalid palette: %w", err)
	}

	players := 0
	for _, o := range w.Objects {
		if o.Player {
			players++
		}
		if _, err := ParseHexColor(o.Color); err != nil {
			return fmt.Errorf("object %q: %w", o.ID, err)
		}
	}
	if players != 1 {
		return errors.New("world must define exactly one player object")
	}
	return nil
}

// LoadWorld loads and validates the embedded world.json fixture.
func LoadWorld() (*WorldFile, error) {
	file, err := Load[WorldFile]("world.json")
	if err != nil {
		return nil, err
	}
	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("world.json: %w", err)
	}
	return &file, nil
}
