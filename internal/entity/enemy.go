package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/samdwyer/swipegeons/internal/gamedata"
	"github.com/samdwyer/swipegeons/internal/geom"
)

// Enemy represents a hostile creature waiting in a room.
type Enemy struct {
	motion
	Def        *gamedata.EnemyDef // Definition the enemy was built from (nil for ad hoc enemies)
	id         string
	name       string
	glyph      rune
	color      string
	stats      Stats
	health     int
	capacities []*Capacity[*Enemy]
}

// NewEnemy creates an enemy at full health. Its objective is its spawn point.
func NewEnemy(name string, stats Stats, position geom.Vector2) *Enemy {
	return &Enemy{
		motion: motion{position: position, objective: position},
		id:     uuid.NewString(),
		name:   name,
		glyph:  'e',
		stats:  stats,
		health: stats.MaxHealth,
	}
}

// NewEnemyFromDef creates an enemy from a data-driven definition.
// Capacities are attached separately with Learn.
func NewEnemyFromDef(def *gamedata.EnemyDef, position geom.Vector2) *Enemy {
	e := NewEnemy(def.Name, Stats{
		MaxHealth: def.Health,
		Attack:    def.Attack,
		Defense:   def.Defense,
		Speed:     def.Speed,
	}, position)
	e.Def = def
	e.glyph = def.GlyphRune()
	e.color = def.Color
	return e
}

// Kind returns the definition ID, or the name for ad hoc enemies.
func (e *Enemy) Kind() string {
	if e.Def != nil {
		return e.Def.ID
	}
	return e.name
}

// Learn attaches a capacity. Capacities owned by another enemy are ignored.
func (e *Enemy) Learn(c *Capacity[*Enemy]) bool {
	if c == nil || c.Owner() != e {
		return false
	}
	e.capacities = append(e.capacities, c)
	return true
}

// Capacities returns the enemy's capacities.
func (e *Enemy) Capacities() []*Capacity[*Enemy] { return e.capacities }

// ID returns the enemy's unique identifier.
func (e *Enemy) ID() string { return e.id }

// Name returns the enemy's display name.
func (e *Enemy) Name() string { return e.name }

// IsAlive returns true while health is above zero.
func (e *Enemy) IsAlive() bool { return e.health > 0 }

// Health returns current health. It can be negative.
func (e *Enemy) Health() int { return e.health }

// MaxHealth returns maximum health.
func (e *Enemy) MaxHealth() int { return e.stats.MaxHealth }

// Attack returns the enemy's attack power.
func (e *Enemy) Attack() int { return e.stats.Attack }

// Defense returns the enemy's defense value.
func (e *Enemy) Defense() int { return e.stats.Defense }

// Speed returns movement per update.
func (e *Enemy) Speed() float64 { return e.stats.Speed }

// TakeDamage subtracts amount from health.
func (e *Enemy) TakeDamage(amount int) { e.health -= amount }

// Heal restores health up to the maximum and returns the amount healed.
func (e *Enemy) Heal(amount int) int { return heal(&e.health, e.stats.MaxHealth, amount) }

// IsOnTarget reports whether the objective is within one step.
func (e *Enemy) IsOnTarget() bool { return e.onTarget(e.stats.Speed) }

// Update advances the enemy by one frame: a movement step, then each
// capacity fires if ready and counts down.
func (e *Enemy) Update(elapsed time.Duration, enc *Encounter) {
	if !e.IsAlive() {
		return
	}
	e.step(e.stats.Speed)
	for _, c := range e.capacities {
		c.advance(elapsed, enc)
	}
}

// Snapshot returns a read-only view of the enemy.
func (e *Enemy) Snapshot() CombatantSnapshot {
	s := CombatantSnapshot{
		ID:        e.id,
		Name:      e.name,
		Glyph:     e.glyph,
		Color:     e.color,
		Health:    e.health,
		MaxHealth: e.stats.MaxHealth,
		Attack:    e.stats.Attack,
		Defense:   e.stats.Defense,
		Speed:     e.stats.Speed,
		Position:  e.position,
		Objective: e.objective,
		OnTarget:  e.IsOnTarget(),
	}
	for _, c := range e.capacities {
		s.Capacities = append(s.Capacities, c.Snapshot())
	}
	return s
}

// Ensure Enemy implements Combatant
var _ Combatant = (*Enemy)(nil)
