package world

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/swipegeons/internal/combat"
	"github.com/samdwyer/swipegeons/internal/entity"
	"github.com/samdwyer/swipegeons/internal/gamedata"
	"github.com/samdwyer/swipegeons/internal/geom"
	"github.com/samdwyer/swipegeons/internal/telemetry"
)

// Default room dimensions in room-space units.
const (
	DefaultRoomWidth  = 800
	DefaultRoomHeight = 600
)

// LoadOptions controls how a dungeon definition is turned into a grid.
type LoadOptions struct {
	RoomSize geom.Vector2 // Width and height of room space; zero means the defaults
	Seed     int64        // Seed for room seeds; 0 picks one from the clock
}

// Dungeon is a loaded, ready to play dungeon.
type Dungeon struct {
	ID    string
	Name  string
	Grid  *Grid
	Start Coord
	Hero  *entity.Hero
	Size  geom.Vector2
}

// Load builds the dungeon with the given ID from the library.
func Load(ctx context.Context, lib *gamedata.Library, id string, opts LoadOptions) (*Dungeon, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.load")
	defer span.End()

	def, err := lib.Dungeons.Lookup(id)
	if err != nil {
		return nil, err
	}

	size := opts.RoomSize
	if size.X <= 0 || size.Y <= 0 {
		size = geom.V(DefaultRoomWidth, DefaultRoomHeight)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	b := &builder{
		lib:      lib,
		resolver: combat.NewResolver(lib.Capacities),
		rng:      rand.New(rand.NewSource(seed)),
		size:     size,
	}

	start, err := CoordOf(def.Start.X, def.Start.Y)
	if err != nil {
		return nil, fmt.Errorf("dungeon %q start: %w", id, err)
	}

	grid := NewGrid(nil)
	for i := range def.Rooms {
		rd := &def.Rooms[i]
		at, err := CoordOf(rd.X, rd.Y)
		if err != nil {
			return nil, fmt.Errorf("dungeon %q room %d: %w", id, i, err)
		}
		if _, taken := grid.At(at); taken {
			return nil, fmt.Errorf("dungeon %q: two rooms at %s", id, at)
		}
		room, err := b.room(fmt.Sprintf("%s%s", def.ID, at), rd)
		if err != nil {
			return nil, fmt.Errorf("dungeon %q room %s: %w", id, at, err)
		}
		if err := grid.Set(at.X, at.Y, room); err != nil {
			return nil, err
		}
	}

	if _, ok := grid.At(start); !ok {
		return nil, fmt.Errorf("dungeon %q: no room at start %s", id, start)
	}

	hero, err := b.hero(def.Hero)
	if err != nil {
		return nil, fmt.Errorf("dungeon %q: %w", id, err)
	}

	span.SetAttributes(
		attribute.String("dungeon.id", def.ID),
		attribute.Int("dungeon.room_count", grid.Len()),
		attribute.Int64("dungeon.seed", seed),
	)

	return &Dungeon{
		ID:    def.ID,
		Name:  def.Name,
		Grid:  grid,
		Start: start,
		Hero:  hero,
		Size:  size,
	}, nil
}

// builder turns definitions into entities.
type builder struct {
	lib      *gamedata.Library
	resolver *combat.Resolver
	rng      *rand.Rand
	size     geom.Vector2
}

func (b *builder) room(id string, def *gamedata.RoomDef) (*Room, error) {
	enemies := make([]*entity.Enemy, 0, len(def.Enemies))
	for _, spawn := range def.Enemies {
		e, err := b.enemy(spawn)
		if err != nil {
			return nil, err
		}
		enemies = append(enemies, e)
	}

	loot := make([]*entity.Item, 0, len(def.Loot))
	for _, itemID := range def.Loot {
		it, err := b.item(itemID)
		if err != nil {
			return nil, err
		}
		loot = append(loot, it)
	}

	seed := def.Seed
	if seed == 0 {
		seed = b.rng.Int63()
	}
	return NewRoom(id, seed, enemies, loot), nil
}

func (b *builder) enemy(spawn gamedata.SpawnDef) (*entity.Enemy, error) {
	def, err := b.lib.Enemies.Lookup(spawn.Enemy)
	if err != nil {
		return nil, err
	}
	e := entity.NewEnemyFromDef(def, geom.V(spawn.X*b.size.X, spawn.Y*b.size.Y))
	for _, capID := range def.Capacities {
		c, err := b.resolver.EnemyCapacity(capID, e)
		if err != nil {
			return nil, fmt.Errorf("enemy %q: %w", def.ID, err)
		}
		e.Learn(c)
	}
	return e, nil
}

func (b *builder) item(id string) (*entity.Item, error) {
	def, err := b.lib.Items.Lookup(id)
	if err != nil {
		return nil, err
	}
	kind, err := entity.ParseItemKind(def.Kind)
	if err != nil {
		return nil, fmt.Errorf("item %q: %w", id, err)
	}

	var mods []entity.Modifier
	for _, sd := range def.Stats {
		stat, err := entity.ParseStat(sd.Stat)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", id, err)
		}
		mods = append(mods, entity.StatModifier{Stat: stat, Delta: sd.Delta})
	}
	for _, capID := range def.Capacities {
		grant, err := b.resolver.HeroGrant(capID)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", id, err)
		}
		mods = append(mods, grant)
	}
	return entity.NewItem(def.Name, kind, mods...), nil
}

func (b *builder) hero(id string) (*entity.Hero, error) {
	def, err := b.lib.Heroes.Lookup(id)
	if err != nil {
		return nil, err
	}
	h := entity.NewHeroFromDef(def, b.size.Scale(0.5))
	for _, itemID := range def.Items {
		it, err := b.item(itemID)
		if err != nil {
			return nil, err
		}
		h.GiveItem(it)
		h.Equip(it)
	}
	return h, nil
}
