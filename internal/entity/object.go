// Package entity provides the drawable objects that live on the map.
package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roguetut/internal/gamedata"
)

// MapView is the part of the map an object needs to move.
type MapView interface {
	IsBlocked(x, y int) bool
}

// Surface is a drawing target that keeps a current foreground colour.
type Surface interface {
	SetForeground(color tcell.Color)
	PutGlyph(x, y int, glyph rune)
}

// Object is a positioned glyph: the player, an NPC, an item.
type Object struct {
	Name  string
	X, Y  int         // Current position on the map
	Glyph rune        // Display character
	Color tcell.Color // Foreground colour
}

// New creates a new object at the given position.
func New(name string, x, y int, glyph rune, color tcell.Color) *Object {
	return &Object{
		Name:  name,
		X:     x,
		Y:     y,
		Glyph: glyph,
		Color: color,
	}
}

// FromDef creates an object from a fixture definition.
func FromDef(def gamedata.ObjectDef) *Object {
	return New(def.Name, def.X, def.Y, def.GlyphRune(), def.TCellColor())
}

// MoveBy moves the object by the given delta unless the destination is blocked.
func (o *Object) MoveBy(dx, dy int, m MapView) {
	o.TryMove(dx, dy, m)
}

// TryMove is MoveBy that reports whether the move happened.
func (o *Object) TryMove(dx, dy int, m MapView) bool {
	if m.IsBlocked(o.X+dx, o.Y+dy) {
		return false
	}
	o.X += dx
	o.Y += dy
	return true
}

// Position returns the current x, y coordinates.
func (o *Object) Position() (int, int) {
	return o.X, o.Y
}

// Draw sets the surface colour and writes the glyph at the object's position.
func (o *Object) Draw(s Surface) {
	s.SetForeground(o.Color)
	s.PutGlyph(o.X, o.Y, o.Glyph)
}
