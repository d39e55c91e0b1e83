package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/samdwyer/swipegeons/internal/gamedata"
	"github.com/samdwyer/swipegeons/internal/geom"
)

// Hero is the player-controlled combatant. It persists across rooms.
type Hero struct {
	motion
	id     string
	name   string
	glyph  rune
	color  string
	base   Stats
	health int
	items  []*Item
}

// NewHero creates a hero at full health standing still at position.
func NewHero(name string, stats Stats, position geom.Vector2) *Hero {
	return &Hero{
		motion: motion{position: position, objective: position},
		id:     uuid.NewString(),
		name:   name,
		glyph:  '@',
		base:   stats,
		health: stats.MaxHealth,
	}
}

// NewHeroFromDef creates a hero from a data-driven definition.
// Starting items are not attached; see GiveItem and Equip.
func NewHeroFromDef(def *gamedata.HeroDef, position geom.Vector2) *Hero {
	h := NewHero(def.Name, Stats{
		MaxHealth: def.Health,
		Attack:    def.Attack,
		Defense:   def.Defense,
		Speed:     def.Speed,
	}, position)
	h.glyph = def.GlyphRune()
	h.color = def.Color
	return h
}

// =============================================================================
// Combatant interface implementation
// =============================================================================

// ID returns the hero's unique identifier.
func (h *Hero) ID() string { return h.id }

// Name returns the hero's name.
func (h *Hero) Name() string { return h.name }

// IsAlive returns true while health is above zero.
func (h *Hero) IsAlive() bool { return h.health > 0 }

// Health returns current health. It can be negative.
func (h *Hero) Health() int { return h.health }

// MaxHealth returns maximum health including equipment.
func (h *Hero) MaxHealth() int { return h.base.MaxHealth + h.equippedDelta(StatMaxHealth) }

// Attack returns attack including equipment.
func (h *Hero) Attack() int { return h.base.Attack + h.equippedDelta(StatAttack) }

// Defense returns defense including equipment.
func (h *Hero) Defense() int { return h.base.Defense + h.equippedDelta(StatDefense) }

// Speed returns movement per update including equipment.
func (h *Hero) Speed() float64 { return h.base.Speed + float64(h.equippedDelta(StatSpeed)) }

// TakeDamage subtracts amount from health. Defense is not applied here.
func (h *Hero) TakeDamage(amount int) { h.health -= amount }

// Heal restores health up to the maximum and returns the amount healed.
func (h *Hero) Heal(amount int) int { return heal(&h.health, h.MaxHealth(), amount) }

// IsOnTarget reports whether the objective is within one step.
func (h *Hero) IsOnTarget() bool { return h.onTarget(h.Speed()) }

// =============================================================================
// Items
// =============================================================================

// Items returns the hero's items in the order they were received.
func (h *Hero) Items() []*Item { return h.items }

// GiveItem hands an item to the hero and appends it to the inventory.
func (h *Hero) GiveItem(item *Item) {
	item.GiveTo(h)
	h.items = append(h.items, item)
}

// Equip equips an item the hero owns. An equipped item of the same kind is
// unequipped first. Returns false if the hero does not own the item.
func (h *Hero) Equip(item *Item) bool {
	if item == nil || item.owner != h {
		return false
	}
	for _, other := range h.items {
		if other != item && other.equipped && other.kind == item.kind {
			other.equipped = false
		}
	}
	item.equipped = true
	return true
}

// Unequip removes an item from its slot. Returns false if it was not equipped by this hero.
func (h *Hero) Unequip(item *Item) bool {
	if item == nil || item.owner != h || !item.equipped {
		return false
	}
	item.equipped = false
	return true
}

// Equipped returns the currently equipped items.
func (h *Hero) Equipped() []*Item {
	var out []*Item
	for _, it := range h.items {
		if it.equipped {
			out = append(out, it)
		}
	}
	return out
}

func (h *Hero) equippedDelta(s Stat) int {
	total := 0
	for _, it := range h.items {
		if it.equipped {
			total += it.statDelta(s)
		}
	}
	return total
}

// Update advances the hero by one frame. Capacities only fire when enc is
// non-nil; their cooldowns run regardless.
func (h *Hero) Update(elapsed time.Duration, enc *Encounter) {
	if !h.IsAlive() {
		return
	}
	h.step(h.Speed())
	for _, it := range h.items {
		if !it.equipped {
			continue
		}
		for _, c := range it.capacities {
			c.advance(elapsed, enc)
		}
	}
}

// Snapshot returns a read-only view of the hero.
func (h *Hero) Snapshot() CombatantSnapshot {
	s := CombatantSnapshot{
		ID:        h.id,
		Name:      h.name,
		Glyph:     h.glyph,
		Color:     h.color,
		Health:    h.health,
		MaxHealth: h.MaxHealth(),
		Attack:    h.Attack(),
		Defense:   h.Defense(),
		Speed:     h.Speed(),
		Position:  h.position,
		Objective: h.objective,
		OnTarget:  h.IsOnTarget(),
	}
	for _, it := range h.items {
		s.Items = append(s.Items, it.Snapshot())
		if it.equipped {
			for _, c := range it.capacities {
				s.Capacities = append(s.Capacities, c.Snapshot())
			}
		}
	}
	return s
}

// Ensure Hero implements Combatant
var _ Combatant = (*Hero)(nil)
