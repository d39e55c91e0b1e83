package dungeon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/swipegeons/internal/entity"
	"github.com/samdwyer/swipegeons/internal/geom"
	"github.com/samdwyer/swipegeons/internal/telemetry"
	"github.com/samdwyer/swipegeons/internal/world"
)

// ErrNoStartRoom is returned when the start coordinate holds no room.
var ErrNoStartRoom = errors.New("no room at start position")

// Option configures a Controller.
type Option func(*Controller)

// WithListener registers a listener for controller events.
func WithListener(l Listener) Option {
	return func(c *Controller) {
		c.listeners = append(c.listeners, l)
	}
}

// WithRoomSize sets the width and height of room space.
func WithRoomSize(size geom.Vector2) Option {
	return func(c *Controller) {
		if size.X > 0 && size.Y > 0 {
			c.size = size
		}
	}
}

// Controller is the room-to-room state machine. It is advanced by exactly
// one Update call per frame and is not safe for concurrent use.
type Controller struct {
	grid      *world.Grid
	size      geom.Vector2
	position  world.Coord
	pending   world.Coord
	switching bool // pending is set
	phase     Phase
	hero      *entity.Hero
	enemies   []*entity.Enemy
	gates     Gates
	defeated  bool
	latest    *entity.Item // last item collected, until confirmed
	listeners []Listener
}

// New creates a controller waiting in the room at start with the hero at
// the room centre. The start room's population is left in place.
func New(grid *world.Grid, hero *entity.Hero, start world.Coord, opts ...Option) (*Controller, error) {
	if start.X < 0 || start.Y < 0 {
		return nil, fmt.Errorf("%w: start %s", world.ErrInvalidCoordinate, start)
	}
	if _, ok := grid.At(start); !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoStartRoom, start)
	}

	c := &Controller{
		grid:     grid,
		size:     geom.V(world.DefaultRoomWidth, world.DefaultRoomHeight),
		position: start,
		phase:    PhaseWaiting,
		hero:     hero,
	}
	for _, opt := range opts {
		opt(c)
	}

	center := c.center()
	hero.SetPosition(center)
	hero.SetObjective(center)
	c.gates = c.computeGates(start)
	return c, nil
}

// =============================================================================
// Observers
// =============================================================================

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }

// Position returns the grid position of the current room.
func (c *Controller) Position() world.Coord { return c.position }

// Pending returns the room being switched to, if any.
func (c *Controller) Pending() (world.Coord, bool) { return c.pending, c.switching }

// Gates returns the exits of the current room, as of the last arrival.
func (c *Controller) Gates() Gates { return c.gates }

// RoomSize returns the width and height of room space.
func (c *Controller) RoomSize() geom.Vector2 { return c.size }

// Defeated reports whether the hero has fallen.
func (c *Controller) Defeated() bool { return c.defeated }

// Hero returns a snapshot of the hero.
func (c *Controller) Hero() entity.CombatantSnapshot { return c.hero.Snapshot() }

// Enemies returns snapshots of the active enemies, in spawn order.
func (c *Controller) Enemies() []entity.CombatantSnapshot {
	out := make([]entity.CombatantSnapshot, len(c.enemies))
	for i, e := range c.enemies {
		out[i] = e.Snapshot()
	}
	return out
}

// =============================================================================
// Input
// =============================================================================

// IssueDirectionalIntent starts a move toward the neighbouring room in d.
// It is ignored unless the controller is waiting and the neighbour exists.
// Returns whether the intent was accepted.
func (c *Controller) IssueDirectionalIntent(ctx context.Context, d Direction) bool {
	if c.phase != PhaseWaiting || c.defeated || !d.Valid() {
		return false
	}
	dx, dy := d.Delta()
	next := c.position.Add(dx, dy)
	if _, ok := c.grid.Neighbor(c.position, dx, dy); !ok {
		slog.DebugContext(ctx, "intent dropped: no room", "direction", d.String(), "from", c.position.String())
		return false
	}

	tracer := telemetry.Tracer("dungeon")
	_, span := tracer.Start(ctx, "dungeon.switch")
	span.SetAttributes(
		attribute.String("direction", d.String()),
		attribute.Int("from_x", c.position.X),
		attribute.Int("from_y", c.position.Y),
		attribute.Int("to_x", next.X),
		attribute.Int("to_y", next.Y),
	)
	span.End()

	c.pending = next
	c.switching = true
	c.phase = PhaseSwitching
	c.hero.SetObjective(exitPoint(d, c.size))

	slog.DebugContext(ctx, "switching room", "direction", d.String(), "from", c.position.String(), "to", next.String())
	c.emit(Event{Kind: EventSwitchStarted, Position: c.position, Direction: d})
	return true
}

// IssueConfirmIntent equips the most recently collected item, replacing
// whatever the hero had in that slot. It is ignored unless the controller is
// waiting and an item was collected since the last confirm. Returns whether
// an item was equipped.
func (c *Controller) IssueConfirmIntent(ctx context.Context) bool {
	if c.phase != PhaseWaiting || c.defeated || c.latest == nil {
		return false
	}
	item := c.latest
	c.latest = nil
	if !c.hero.Equip(item) {
		return false
	}

	tracer := telemetry.Tracer("dungeon")
	_, span := tracer.Start(ctx, "dungeon.equip")
	span.SetAttributes(
		attribute.String("item", item.Name()),
		attribute.String("slot", item.Kind().String()),
	)
	span.End()

	slog.InfoContext(ctx, "item equipped", "item", item.Name(), "slot", item.Kind().String())
	c.emit(Event{Kind: EventItemEquipped, Position: c.position, Item: item.Name()})
	return true
}

// =============================================================================
// Frame update
// =============================================================================

// Update advances the simulation by one frame. elapsed must not be negative;
// negative values count as zero.
func (c *Controller) Update(ctx context.Context, elapsed time.Duration) {
	if c.defeated {
		return
	}
	if elapsed < 0 {
		elapsed = 0
	}

	if c.phase == PhaseSwitching && c.switching && c.hero.IsOnTarget() {
		c.arrive(ctx)
	}

	var enc *entity.Encounter
	if c.phase == PhaseFighting {
		enc = &entity.Encounter{Hero: c.hero, Enemies: c.enemies}
	}

	c.hero.Update(elapsed, enc)

	if c.phase == PhaseFighting {
		c.fight(ctx, elapsed, enc)
	}

	if !c.hero.IsAlive() {
		c.defeat(ctx)
	}
}

// arrive moves the hero into the pending room and starts the fight there.
func (c *Controller) arrive(ctx context.Context) {
	dx, dy := c.pending.X-c.position.X, c.pending.Y-c.position.Y
	// Enter from the edge opposite the one we left by.
	c.hero.SetPosition(geom.V(c.size.X/2*float64(1-dx), c.size.Y/2*float64(1+dy)))

	c.position = c.pending
	c.pending = world.Coord{}
	c.switching = false
	c.hero.SetObjective(c.center())

	room, _ := c.grid.At(c.position)
	if room != nil {
		c.enemies = room.TakeEnemies()
	}
	c.gates = c.computeGates(c.position)
	c.phase = PhaseFighting

	tracer := telemetry.Tracer("dungeon")
	_, span := tracer.Start(ctx, "dungeon.enter_room")
	span.SetAttributes(
		attribute.Int("room_x", c.position.X),
		attribute.Int("room_y", c.position.Y),
		attribute.Int("enemy_count", len(c.enemies)),
	)
	span.End()

	if len(c.enemies) > 0 {
		_, cs := telemetry.Tracer("combat").Start(ctx, "combat.start")
		cs.SetAttributes(
			attribute.Int("enemy_count", len(c.enemies)),
			attribute.Int("hero_health", c.hero.Health()),
		)
		cs.End()
	}

	slog.InfoContext(ctx, "entered room", "position", c.position.String(), "enemies", len(c.enemies))
	c.emit(Event{Kind: EventRoomEntered, Position: c.position, Gates: c.gates, Enemies: len(c.enemies)})
}

// fight runs the enemies' frame, removes the fallen and ends the fight
// when nobody is left.
func (c *Controller) fight(ctx context.Context, elapsed time.Duration, enc *entity.Encounter) {
	for _, e := range c.enemies {
		e.Update(elapsed, enc)
	}

	alive := make([]*entity.Enemy, 0, len(c.enemies))
	for _, e := range c.enemies {
		if e.IsAlive() {
			alive = append(alive, e)
		} else {
			slog.DebugContext(ctx, "enemy destroyed", "enemy", e.Name(), "kind", e.Kind(), "id", e.ID())
		}
	}
	c.enemies = alive

	if len(c.enemies) == 0 {
		c.clearRoom(ctx)
	}
}

// clearRoom hands the room's loot to the hero and goes back to waiting.
func (c *Controller) clearRoom(ctx context.Context) {
	var names []string
	if room, ok := c.grid.At(c.position); ok {
		for _, it := range room.TakeLoot() {
			c.hero.GiveItem(it)
			c.latest = it
			names = append(names, it.Name())
		}
	}
	c.enemies = nil
	c.phase = PhaseWaiting

	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.end")
	span.SetAttributes(
		attribute.String("outcome", "victory"),
		attribute.Int("hero_health", c.hero.Health()),
		attribute.Int("loot_count", len(names)),
	)
	span.End()

	slog.InfoContext(ctx, "room cleared", "position", c.position.String(), "loot", names)
	c.emit(Event{Kind: EventRoomCleared, Position: c.position, Loot: names})
}

// defeat freezes the simulation once the hero has fallen.
func (c *Controller) defeat(ctx context.Context) {
	c.defeated = true

	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.end")
	span.SetAttributes(
		attribute.String("outcome", "defeat"),
		attribute.Int("enemies_remaining", len(c.enemies)),
	)
	span.End()

	slog.InfoContext(ctx, "hero defeated", "position", c.position.String())
	c.emit(Event{Kind: EventHeroDefeated, Position: c.position})
}

func (c *Controller) center() geom.Vector2 {
	return c.size.Scale(0.5)
}

func (c *Controller) computeGates(at world.Coord) Gates {
	var g Gates
	for _, d := range Directions {
		dx, dy := d.Delta()
		_, ok := c.grid.Neighbor(at, dx, dy)
		g.set(d, ok)
	}
	return g
}

func (c *Controller) emit(ev Event) {
	for _, l := range c.listeners {
		l.OnEvent(ev)
	}
}
