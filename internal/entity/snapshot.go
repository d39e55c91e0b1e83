package entity

import (
	"time"

	"github.com/samdwyer/swipegeons/internal/geom"
)

// CapacitySnapshot is a read-only copy of a capacity's state.
type CapacitySnapshot struct {
	Name      string
	Cooldown  time.Duration
	Remaining time.Duration
	Ready     bool
	Triggers  int
}

// ItemSnapshot is a read-only copy of an item's state.
type ItemSnapshot struct {
	ID       string
	Name     string
	Kind     ItemKind
	Equipped bool
}

// CombatantSnapshot is a read-only copy of a combatant for presentation.
type CombatantSnapshot struct {
	ID         string
	Name       string
	Glyph      rune
	Color      string // Hex color from game data, empty if unset
	Health     int
	MaxHealth  int
	Attack     int
	Defense    int
	Speed      float64
	Position   geom.Vector2
	Objective  geom.Vector2
	OnTarget   bool
	Capacities []CapacitySnapshot
	Items      []ItemSnapshot // Hero only
}
