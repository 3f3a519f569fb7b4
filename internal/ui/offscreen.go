package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// BackgroundFlag selects how a draw affects the cell background.
type BackgroundFlag int

const (
	// BackgroundNone leaves the background untouched.
	BackgroundNone BackgroundFlag = iota
	// BackgroundSet replaces the background.
	BackgroundSet
)

// Default cell colours after Clear.
var (
	DefaultForeground = tcell.ColorWhite
	DefaultBackground = tcell.ColorBlack
)

// Cell is one character cell of an off-screen surface.
type Cell struct {
	Glyph rune
	Fg    tcell.Color
	Bg    tcell.Color
}

// Rect is a rectangle of cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Target is anything an Offscreen can be blitted onto. *Screen, tcell.Screen
// and *Offscreen all satisfy it.
type Target interface {
	GetContent(x, y int) (primary rune, combining []rune, style tcell.Style, width int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Offscreen is an in-memory console composited onto the display once per frame.
type Offscreen struct {
	width, height int
	cells         []Cell
	fg            tcell.Color
}

// NewOffscreen creates a cleared surface of the given size.
func NewOffscreen(width, height int) *Offscreen {
	o := &Offscreen{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		fg:     DefaultForeground,
	}
	o.Clear()
	return o
}

// Width returns the surface width in cells.
func (o *Offscreen) Width() int { return o.width }

// Height returns the surface height in cells.
func (o *Offscreen) Height() int { return o.height }

// Clear resets every cell to a blank with the default colours.
func (o *Offscreen) Clear() {
	for i := range o.cells {
		o.cells[i] = Cell{Glyph: ' ', Fg: o.fg, Bg: DefaultBackground}
	}
}

// SetForeground sets the colour used by subsequent glyph draws.
func (o *Offscreen) SetForeground(color tcell.Color) {
	o.fg = color
}

// SetCellBackground changes the background of a single cell.
func (o *Offscreen) SetCellBackground(x, y int, color tcell.Color, flag BackgroundFlag) {
	if flag == BackgroundNone || !o.inBounds(x, y) {
		return
	}
	o.cells[y*o.width+x].Bg = color
}

// PutChar writes a glyph in the current foreground colour.
func (o *Offscreen) PutChar(x, y int, glyph rune, flag BackgroundFlag) {
	if !o.inBounds(x, y) {
		return
	}
	c := &o.cells[y*o.width+x]
	c.Glyph = glyph
	c.Fg = o.fg
	if flag == BackgroundSet {
		c.Bg = DefaultBackground
	}
}

// PutGlyph writes a glyph without touching the background.
func (o *Offscreen) PutGlyph(x, y int, glyph rune) {
	o.PutChar(x, y, glyph, BackgroundNone)
}

// Cell returns the cell at the given position.
func (o *Offscreen) Cell(x, y int) (Cell, bool) {
	if !o.inBounds(x, y) {
		return Cell{}, false
	}
	return o.cells[y*o.width+x], true
}

// GetContent implements Target.
func (o *Offscreen) GetContent(x, y int) (rune, []rune, tcell.Style, int) {
	c, ok := o.Cell(x, y)
	if !ok {
		return ' ', nil, tcell.StyleDefault, 1
	}
	return c.Glyph, nil, tcell.StyleDefault.Foreground(c.Fg).Background(c.Bg), 1
}

// SetContent implements Target.
func (o *Offscreen) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	if !o.inBounds(x, y) {
		return
	}
	fg, bg, _ := style.Decompose()
	o.cells[y*o.width+x] = Cell{Glyph: primary, Fg: fg, Bg: bg}
}

// Blit copies the src rectangle onto dst with its top-left corner at
// (dstX, dstY). Alpha 1 replaces the destination, alpha 0 leaves it
// unchanged, anything between blends the colours.
func (o *Offscreen) Blit(src Rect, dst Target, dstX, dstY int, fgAlpha, bgAlpha float64) {
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			c, ok := o.Cell(src.X+x, src.Y+y)
			if !ok {
				continue
			}
			tx, ty := dstX+x, dstY+y

			if fgAlpha >= 1 && bgAlpha >= 1 {
				dst.SetContent(tx, ty, c.Glyph, nil, tcell.StyleDefault.Foreground(c.Fg).Background(c.Bg))
				continue
			}

			glyph, _, style, _ := dst.GetContent(tx, ty)
			dfg, dbg, _ := style.Decompose()
			if fgAlpha > 0 {
				glyph = c.Glyph
			}
			fg := blendColor(dfg, c.Fg, fgAlpha)
			bg := blendColor(dbg, c.Bg, bgAlpha)
			dst.SetContent(tx, ty, glyph, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}
}

func (o *Offscreen) inBounds(x, y int) bool {
	return x >= 0 && x < o.width && y >= 0 && y < o.height
}

// blendColor returns src*alpha + dst*(1-alpha).
func blendColor(dst, src tcell.Color, alpha float64) tcell.Color {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	d, ok := toColorful(dst)
	if !ok {
		return src
	}
	s, ok := toColorful(src)
	if !ok {
		return dst
	}
	r, g, b := d.BlendRgb(s, alpha).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func toColorful(c tcell.Color) (colorful.Color, bool) {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return colorful.Color{}, false
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, true
}
