package game

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roguetut/internal/gamedata"
	"github.com/samdwyer/roguetut/internal/telemetry"
	"github.com/samdwyer/roguetut/internal/ui"
)

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	limiter  *ui.FrameLimiter
	world    *World
	state    State
	frames   int
	logger   *log.Logger
}

// New loads the embedded world and opens the terminal screen.
func New(ctx context.Context, cfg Config, logger *log.Logger) (*Game, error) {
	file, err := gamedata.LoadWorld()
	if err != nil {
		return nil, err
	}
	w, err := LoadWorld(ctx, file)
	if err != nil {
		return nil, err
	}
	palette, err := file.Palette.Parse()
	if err != nil {
		return nil, err
	}
	if err := checkScreenFits(cfg, w); err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("opening screen: %w", err)
	}
	if tw, th := screen.Size(); tw < cfg.Width || th < cfg.Height {
		logger.Warn("terminal smaller than screen, frame will be clipped",
			"terminal_width", tw, "terminal_height", th, "width", cfg.Width, "height", cfg.Height)
	}

	return NewWithScreen(cfg, screen, w, palette, logger), nil
}

// checkScreenFits rejects a screen too small to show the whole map.
func checkScreenFits(cfg Config, w *World) error {
	if cfg.Width < w.Map.Width || cfg.Height < w.Map.Height {
		return fmt.Errorf("screen %dx%d cannot show %dx%d map",
			cfg.Width, cfg.Height, w.Map.Width, w.Map.Height)
	}
	return nil
}

// NewWithScreen creates a game on an already initialized screen.
func NewWithScreen(cfg Config, screen *ui.Screen, w *World, palette gamedata.Palette, logger *log.Logger) *Game {
	screen.SetTitle(cfg.Title)
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, cfg.Width, cfg.Height, palette),
		limiter:  ui.NewFrameLimiter(cfg.FPS),
		world:    w,
		state:    StateRunning,
		logger:   logger,
	}
}

// World returns the game world.
func (g *Game) World() *World {
	return g.world
}

// State returns the current loop state.
func (g *Game) State() State {
	return g.state
}

// Frames returns how many frames have been presented.
func (g *Game) Frames() int {
	return g.frames
}

// Run executes the main game loop until Escape is pressed or the screen closes.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.run")
	defer span.End()

	player := g.world.Player()
	g.logger.Info("game started", "player_x", player.X, "player_y", player.Y, "objects", len(g.world.Objects))

	for g.state == StateRunning {
		if g.screen.IsClosed() {
			g.state = StateExiting
			break
		}

		g.renderer.Render(g.world.Map, g.world.Objects)
		g.frames++
		g.limiter.Wait()

		// Handle input (blocking)
		ev, ok := g.screen.WaitForKey()
		if !ok {
			if err := g.screen.Err(); err != nil {
				g.logger.Error("terminal failed", "err", err)
			} else {
				g.logger.Info("screen closed")
			}
			g.state = StateExiting
			break
		}
		g.handleKeyEvent(ctx, ev)
	}

	span.SetAttributes(attribute.Int("game.frames", g.frames))
	g.logger.Info("game exiting", "frames", g.frames)

	// Cleanup
	g.screen.Close()
	return nil
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev ui.KeyEvent) {
	if !ev.Pressed {
		return
	}

	switch ev.Code {
	case tcell.KeyEnter:
		if ev.Alt {
			fullscreen := g.screen.IsFullscreen()
			g.screen.SetFullscreen(!fullscreen)
			g.logger.Debug("fullscreen toggled", "fullscreen", !fullscreen)
		}
	case tcell.KeyEscape:
		g.state = StateExiting

	case tcell.KeyUp:
		g.tryMove(ctx, 0, -1)
	case tcell.KeyDown:
		g.tryMove(ctx, 0, 1)
	case tcell.KeyLeft:
		g.tryMove(ctx, -1, 0)
	case tcell.KeyRight:
		g.tryMove(ctx, 1, 0)
	}
}

// tryMove attempts to move the player by the given delta.
func (g *Game) tryMove(ctx context.Context, dx, dy int) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "player.move")
	defer span.End()

	moved := g.world.MovePlayer(dx, dy)
	x, y := g.world.Player().Position()

	span.SetAttributes(
		attribute.Int("dx", dx),
		attribute.Int("dy", dy),
		attribute.Bool("blocked", !moved),
		attribute.Int("x", x),
		attribute.Int("y", y),
	)
	if !moved {
		g.logger.Debug("move blocked", "x", x, "y", y, "dx", dx, "dy", dy)
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
