// Package entity provides the simulated combatants: the hero, enemies,
// their capacities and the items that grant them.
package entity

import "github.com/samdwyer/swipegeons/internal/geom"

// Combatant is the interface for any entity that can take part in an encounter.
// Both the hero and enemies implement this interface.
type Combatant interface {
	// Identity
	ID() string
	Name() string
	IsAlive() bool

	// Stats
	Health() int
	MaxHealth() int
	Attack() int
	Defense() int
	Speed() float64

	// Mutations
	TakeDamage(amount int)
	Heal(amount int) int // Returns actual amount healed

	// Movement
	Position() geom.Vector2
	Objective() geom.Vector2
	IsOnTarget() bool
}

// Stats holds the base statistics of a combatant.
type Stats struct {
	MaxHealth int
	Attack    int
	Defense   int
	Speed     float64 // Distance covered per update
}

// motion is the approach-and-stop movement shared by all combatants.
type motion struct {
	position  geom.Vector2
	objective geom.Vector2
}

// step moves at most speed toward the objective.
// Nothing happens once the objective is within speed.
func (m *motion) step(speed float64) {
	delta := m.objective.Sub(m.position)
	dist := delta.Magnitude()
	if dist > speed {
		m.position = m.position.Add(delta.Scale(speed / dist))
	}
}

func (m *motion) onTarget(speed float64) bool {
	return m.objective.Sub(m.position).Magnitude() <= speed
}

// Position returns the current position in room space.
func (m *motion) Position() geom.Vector2 { return m.position }

// Objective returns the point the combatant is walking toward.
func (m *motion) Objective() geom.Vector2 { return m.objective }

// SetPosition teleports the combatant.
func (m *motion) SetPosition(p geom.Vector2) { m.position = p }

// SetObjective changes the point the combatant walks toward.
func (m *motion) SetObjective(p geom.Vector2) { m.objective = p }

// heal restores up to amount without exceeding max and returns the amount restored.
func heal(health *int, max, amount int) int {
	if amount <= 0 || *health >= max {
		return 0
	}
	actual := amount
	if *health+actual > max {
		actual = max - *health
	}
	*health += actual
	return actual
}
