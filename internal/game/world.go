package game

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roguetut/internal/entity"
	"github.com/samdwyer/roguetut/internal/gamedata"
	"github.com/samdwyer/roguetut/internal/telemetry"
	"github.com/samdwyer/roguetut/internal/world"
)

// World owns the map and every object on it.
type World struct {
	Map     *world.Map
	Objects []*entity.Object // Draw order, first is the bottom layer
	player  int
}

// NewWorld creates a world. player is the index of the player in objects.
func NewWorld(m *world.Map, objects []*entity.Object, player int) (*World, error) {
	if m == nil {
		return nil, errors.New("world has no map")
	}
	if player < 0 || player >= len(objects) {
		return nil, fmt.Errorf("player index %d out of range for %d objects", player, len(objects))
	}
	return &World{Map: m, Objects: objects, player: player}, nil
}

// LoadWorld builds a world from a fixture file.
func LoadWorld(ctx context.Context, file *gamedata.WorldFile) (*World, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	m, err := world.Build(ctx, file.Map.Width, file.Map.Height, file.Map.Walls)
	if err != nil {
		return nil, fmt.Errorf("building map: %w", err)
	}

	registry := gamedata.NewObjectRegistry(file.Objects)
	objects := make([]*entity.Object, 0, registry.Count())
	for _, def := range registry.All() {
		objects = append(objects, entity.FromDef(def))
	}

	span.SetAttributes(attribute.Int("world.objects", len(objects)))
	return NewWorld(m, objects, registry.PlayerIndex())
}

// Player returns the object controlled by the keyboard.
func (w *World) Player() *entity.Object {
	return w.Objects[w.player]
}

// MovePlayer moves the player unless the destination is blocked.
func (w *World) MovePlayer(dx, dy int) bool {
	return w.Player().TryMove(dx, dy, w.Map)
}
