package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestOffscreenClear(t *testing.T) {
	o := NewOffscreen(4, 3)
	o.PutChar(1, 1, 'x', BackgroundSet)
	o.SetCellBackground(2, 2, tcell.ColorRed, BackgroundSet)

	o.Clear()

	for y := 0; y < o.Height(); y++ {
		for x := 0; x < o.Width(); x++ {
			c, _ := o.Cell(x, y)
			if c.Glyph != ' ' || c.Bg != DefaultBackground {
				t.Fatalf("Cell(%d,%d) = %+v after Clear", x, y, c)
			}
		}
	}
}

func TestOffscreenPutCharUsesForeground(t *testing.T) {
	o := NewOffscreen(4, 3)
	o.SetCellBackground(1, 1, tcell.ColorBlue, BackgroundSet)
	o.SetForeground(tcell.ColorYellow)
	o.PutChar(1, 1, '@', BackgroundNone)

	c, ok := o.Cell(1, 1)
	if !ok {
		t.Fatal("Cell(1,1) out of range")
	}
	if c.Glyph != '@' || c.Fg != tcell.ColorYellow {
		t.Errorf("Cell = %+v, want yellow '@'", c)
	}
	if c.Bg != tcell.ColorBlue {
		t.Errorf("BackgroundNone changed bg to %v", c.Bg)
	}
}

func TestOffscreenBackgroundNoneIgnored(t *testing.T) {
	o := NewOffscreen(2, 2)
	o.SetCellBackground(0, 0, tcell.ColorRed, BackgroundNone)

	c, _ := o.Cell(0, 0)
	if c.Bg != DefaultBackground {
		t.Errorf("Bg = %v, want default", c.Bg)
	}
}

func TestOffscreenOutOfRangeIgnored(t *testing.T) {
	o := NewOffscreen(2, 2)

	// None of these may panic
	o.PutChar(-1, 0, 'x', BackgroundSet)
	o.PutChar(2, 0, 'x', BackgroundSet)
	o.SetCellBackground(0, 5, tcell.ColorRed, BackgroundSet)

	if _, ok := o.Cell(2, 2); ok {
		t.Error("Cell(2,2) should be out of range")
	}
}

func TestBlitOpaqueCopies(t *testing.T) {
	src := NewOffscreen(3, 3)
	src.SetForeground(tcell.ColorGreen)
	src.PutChar(1, 1, 'g', BackgroundNone)
	src.SetCellBackground(1, 1, tcell.ColorNavy, BackgroundSet)

	dst := NewOffscreen(5, 5)
	src.Blit(Rect{Width: 3, Height: 3}, dst, 2, 2, 1.0, 1.0)

	c, _ := dst.Cell(3, 3)
	if c.Glyph != 'g' || c.Fg != tcell.ColorGreen || c.Bg != tcell.ColorNavy {
		t.Errorf("dst Cell(3,3) = %+v, want green 'g' on navy", c)
	}

	// Cells outside the destination are clipped silently
	src.Blit(Rect{Width: 3, Height: 3}, dst, 4, 4, 1.0, 1.0)
}

func TestBlitAlphaBlends(t *testing.T) {
	src := NewOffscreen(1, 1)
	src.SetCellBackground(0, 0, tcell.NewRGBColor(200, 0, 0), BackgroundSet)

	dst := NewOffscreen(1, 1)
	dst.SetCellBackground(0, 0, tcell.NewRGBColor(0, 0, 200), BackgroundSet)
	dst.PutChar(0, 0, 'k', BackgroundNone)

	src.Blit(Rect{Width: 1, Height: 1}, dst, 0, 0, 0, 0.5)

	c, _ := dst.Cell(0, 0)
	if c.Glyph != 'k' {
		t.Errorf("fgAlpha 0 replaced glyph with %q", c.Glyph)
	}
	r, g, b := c.Bg.RGB()
	if r < 95 || r > 105 || g != 0 || b < 95 || b > 105 {
		t.Errorf("blended bg = (%d,%d,%d), want about (100,0,100)", r, g, b)
	}
}

func TestBlendColorBounds(t *testing.T) {
	dst := tcell.NewRGBColor(10, 20, 30)
	src := tcell.NewRGBColor(200, 100, 50)

	if got := blendColor(dst, src, 0); got != dst {
		t.Errorf("alpha 0 = %v, want dst", got)
	}
	if got := blendColor(dst, src, 1); got != src {
		t.Errorf("alpha 1 = %v, want src", got)
	}
	if got := blendColor(tcell.ColorDefault, src, 0.5); got != src {
		t.Errorf("blend over default = %v, want src", got)
	}
}
