// Package ui provides terminal rendering using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen wraps tcell.Screen with the console operations the game loop needs.
type Screen struct {
	screen     tcell.Screen
	fullscreen bool
	closed     bool
	err        error
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(s)
}

// NewScreenFrom initializes the given tcell screen, such as a simulation screen.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close finalizes the screen and restores terminal state. Safe to call twice.
func (s *Screen) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.screen.Fini()
}

// IsClosed reports whether the screen has been closed.
func (s *Screen) IsClosed() bool {
	return s.closed
}

// WaitForKey blocks until a key is pressed.
// It returns false once the screen is closed.
func (s *Screen) WaitForKey() (KeyEvent, bool) {
	for !s.closed {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			// PollEvent only returns nil after Fini
			s.closed = true
		case *tcell.EventKey:
			return NewKeyEvent(ev), true
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventError:
			// The terminal is gone, nothing more will arrive
			s.err = ev
			s.closed = true
		}
	}
	return KeyEvent{}, false
}

// Err returns the terminal error that closed the screen, if any.
func (s *Screen) Err() error {
	return s.err
}

// SetTitle sets the terminal window title.
func (s *Screen) SetTitle(title string) {
	s.screen.SetTitle(title)
}

// SetFullscreen switches fullscreen mode. A terminal has no window to
// resize, so the flag is kept here and the display is redrawn.
func (s *Screen) SetFullscreen(on bool) {
	s.fullscreen = on
	s.screen.Sync()
}

// IsFullscreen reports the current fullscreen mode.
func (s *Screen) IsFullscreen() bool {
	return s.fullscreen
}

// Present flushes the screen buffer to the terminal.
func (s *Screen) Present() {
	s.screen.Show()
}

// GetContent returns the cell at the given position.
func (s *Screen) GetContent(x, y int) (rune, []rune, tcell.Style, int) {
	return s.screen.GetContent(x, y)
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, combining []rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, combining, style)
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}
