package ui

import (
	"github.com/samdwyer/roguetut/internal/entity"
	"github.com/samdwyer/roguetut/internal/gamedata"
	"github.com/samdwyer/roguetut/internal/world"
)

// Renderer draws the map and objects off-screen, then composites the result.
type Renderer struct {
	screen  *Screen
	con     *Offscreen
	palette gamedata.Palette
}

// NewRenderer creates a renderer with an off-screen surface of the given size.
func NewRenderer(screen *Screen, width, height int, palette gamedata.Palette) *Renderer {
	return &Renderer{
		screen:  screen,
		con:     NewOffscreen(width, height),
		palette: palette,
	}
}

// Render draws one frame and presents it.
func (r *Renderer) Render(m *world.Map, objects []*entity.Object) {
	r.con.SetForeground(DefaultForeground)
	r.con.Clear()

	// Tile backgrounds
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			color := r.palette.DarkGround
			if m.IsOpaque(x, y) {
				color = r.palette.DarkWall
			}
			r.con.SetCellBackground(x, y, color, BackgroundSet)
		}
	}

	// Objects in list order, later ones on top
	for _, o := range objects {
		o.Draw(r.con)
	}

	r.con.Blit(Rect{Width: r.con.Width(), Height: r.con.Height()}, r.screen, 0, 0, 1.0, 1.0)
	r.screen.Present()
}
