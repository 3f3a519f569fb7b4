package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roguetut/internal/entity"
	"github.com/samdwyer/roguetut/internal/gamedata"
	"github.com/samdwyer/roguetut/internal/world"
)

func newSimScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom() error: %v", err)
	}
	sim.SetSize(80, 50)
	t.Cleanup(screen.Close)
	return screen, sim
}

func TestWaitForKey(t *testing.T) {
	screen, sim := newSimScreen(t)

	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModAlt)
	sim.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)

	ev, ok := screen.WaitForKey()
	if !ok {
		t.Fatal("WaitForKey() reported closed")
	}
	if ev.Code != tcell.KeyEnter || !ev.Alt || !ev.Pressed {
		t.Errorf("first event = %+v, want pressed Alt+Enter", ev)
	}

	ev, ok = screen.WaitForKey()
	if !ok || ev.Code != tcell.KeyLeft || ev.Alt {
		t.Errorf("second event = %+v, want Left", ev)
	}
}

func TestWaitForKeyAfterClose(t *testing.T) {
	screen, _ := newSimScreen(t)
	screen.Close()

	if !screen.IsClosed() {
		t.Fatal("IsClosed() = false after Close")
	}
	if _, ok := screen.WaitForKey(); ok {
		t.Error("WaitForKey() should report closed")
	}
	screen.Close() // second close is a no-op
}

func TestFullscreenToggle(t *testing.T) {
	screen, _ := newSimScreen(t)

	if screen.IsFullscreen() {
		t.Fatal("new screen should not be fullscreen")
	}
	screen.SetFullscreen(!screen.IsFullscreen())
	if !screen.IsFullscreen() {
		t.Error("SetFullscreen(true) did not stick")
	}
	screen.SetFullscreen(!screen.IsFullscreen())
	if screen.IsFullscreen() {
		t.Error("SetFullscreen(false) did not stick")
	}
}

func TestRendererDrawsTilesThenObjects(t *testing.T) {
	screen, _ := newSimScreen(t)

	m, err := world.Build(context.Background(), world.DefaultWidth, world.DefaultHeight, world.DefaultWalls)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	palette := gamedata.Palette{
		DarkWall:   tcell.NewRGBColor(0, 0, 100),
		DarkGround: tcell.NewRGBColor(50, 50, 150),
	}
	objects := []*entity.Object{
		entity.New("npc", 35, 25, '@', tcell.ColorYellow),
		entity.New("other", 40, 25, 'o', tcell.ColorRed),
		entity.New("player", 40, 25, '@', tcell.ColorWhite),
	}

	r := NewRenderer(screen, 80, 50, palette)
	r.Render(m, objects)

	tests := []struct {
		name  string
		x, y  int
		glyph rune
		fg    tcell.Color
		bg    tcell.Color
	}{
		{"wall", 30, 22, ' ', DefaultForeground, palette.DarkWall},
		{"ground", 0, 0, ' ', DefaultForeground, palette.DarkGround},
		{"npc", 35, 25, '@', tcell.ColorYellow, palette.DarkGround},
		{"shared cell last wins", 40, 25, '@', tcell.ColorWhite, palette.DarkGround},
		{"below map", 0, 47, ' ', DefaultForeground, DefaultBackground},
	}

	for _, tt := range tests {
		glyph, _, style, _ := screen.GetContent(tt.x, tt.y)
		fg, bg, _ := style.Decompose()
		if glyph != tt.glyph || fg != tt.fg || bg != tt.bg {
			t.Errorf("%s: cell (%d,%d) = %q fg=%v bg=%v, want %q fg=%v bg=%v",
				tt.name, tt.x, tt.y, glyph, fg, bg, tt.glyph, tt.fg, tt.bg)
		}
	}
}

func TestWaitForKeyTerminalError(t *testing.T) {
	screen, sim := newSimScreen(t)

	if err := sim.PostEvent(tcell.NewEventError(errors.New("tty lost"))); err != nil {
		t.Fatalf("PostEvent() error: %v", err)
	}

	if _, ok := screen.WaitForKey(); ok {
		t.Fatal("WaitForKey() should report closed after a terminal error")
	}
	if !screen.IsClosed() {
		t.Error("IsClosed() = false after a terminal error")
	}
	if screen.Err() == nil {
		t.Error("Err() = nil, want the terminal error")
	}
}

func TestSetTitle(t *testing.T) {
	screen, sim := newSimScreen(t)
	screen.SetTitle("roguetut")

	if got := sim.GetTitle(); got != "roguetut" {
		t.Errorf("GetTitle() = %q, want %q", got, "roguetut")
	}
}
