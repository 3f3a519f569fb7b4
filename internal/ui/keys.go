package ui

import "github.com/gdamore/tcell/v2"

// KeyEvent is a single keyboard event from the screen.
type KeyEvent struct {
	Code    tcell.Key
	Rune    rune // Set when Code is tcell.KeyRune
	Pressed bool // Terminals only report presses
	Alt     bool
}

// NewKeyEvent converts a tcell key event.
func NewKeyEvent(ev *tcell.EventKey) KeyEvent {
	return KeyEvent{
		Code:    ev.Key(),
		Rune:    ev.Rune(),
		Pressed: true,
		Alt:     ev.Modifiers()&tcell.ModAlt != 0,
	}
}
