package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ItemKind is the equipment slot an item occupies.
type ItemKind int

const (
	KindMainWeapon ItemKind = iota
	KindSecondaryWeapon
	KindTrinket
)

// String returns the kind identifier used in game data.
func (k ItemKind) String() string {
	switch k {
	case KindMainWeapon:
		return "main_weapon"
	case KindSecondaryWeapon:
		return "secondary_weapon"
	case KindTrinket:
		return "trinket"
	default:
		return "unknown"
	}
}

// ParseItemKind converts a game data identifier to an ItemKind.
func ParseItemKind(s string) (ItemKind, error) {
	switch s {
	case "main_weapon":
		return KindMainWeapon, nil
	case "secondary_weapon":
		return KindSecondaryWeapon, nil
	case "trinket":
		return KindTrinket, nil
	default:
		return 0, fmt.Errorf("unknown item kind %q", s)
	}
}

// Stat names a statistic an item can modify.
type Stat int

const (
	StatMaxHealth Stat = iota
	StatAttack
	StatDefense
	StatSpeed
)

// String returns the stat identifier used in game data.
func (s Stat) String() string {
	switch s {
	case StatMaxHealth:
		return "max_health"
	case StatAttack:
		return "attack"
	case StatDefense:
		return "defense"
	case StatSpeed:
		return "speed"
	default:
		return "unknown"
	}
}

// ParseStat converts a game data identifier to a Stat.
func ParseStat(s string) (Stat, error) {
	switch s {
	case "max_health":
		return StatMaxHealth, nil
	case "attack":
		return StatAttack, nil
	case "defense":
		return StatDefense, nil
	case "speed":
		return StatSpeed, nil
	default:
		return 0, fmt.Errorf("unknown stat %q", s)
	}
}

// Modifier is something an item gives its owner: a StatModifier or a CapacityGrant.
type Modifier interface {
	isModifier()
}

// StatModifier adds Delta to a stat while the item is equipped.
type StatModifier struct {
	Stat  Stat
	Delta int
}

func (StatModifier) isModifier() {}

// CapacityGrant describes a hero capacity an item provides.
// The capacity itself only exists once the item has an owner.
type CapacityGrant struct {
	Name     string
	Cooldown time.Duration
	Effect   Effect[*Hero]
}

func (CapacityGrant) isModifier() {}

// Item is a piece of equipment that can be given to and equipped by the hero.
type Item struct {
	id         string
	name       string
	kind       ItemKind
	owner      *Hero
	equipped   bool
	modifiers  []Modifier
	capacities []*Capacity[*Hero]
}

// NewItem creates an unowned item.
func NewItem(name string, kind ItemKind, modifiers ...Modifier) *Item {
	return &Item{
		id:        uuid.NewString(),
		name:      name,
		kind:      kind,
		modifiers: modifiers,
	}
}

// ID returns the item's unique identifier.
func (i *Item) ID() string { return i.id }

// Name returns the item's display name.
func (i *Item) Name() string { return i.name }

// Kind returns the slot the item occupies.
func (i *Item) Kind() ItemKind { return i.kind }

// Owner returns the hero holding the item, or nil.
func (i *Item) Owner() *Hero { return i.owner }

// Equipped reports whether the owner has the item equipped.
func (i *Item) Equipped() bool { return i.equipped }

// Modifiers returns what the item grants.
func (i *Item) Modifiers() []Modifier { return i.modifiers }

// Capacities returns the capacities bound to the current owner.
// It is empty for an item nobody owns.
func (i *Item) Capacities() []*Capacity[*Hero] { return i.capacities }

// GiveTo binds the item to a hero and creates its capacities for that hero.
// The item starts unequipped.
func (i *Item) GiveTo(owner *Hero) {
	i.owner = owner
	i.equipped = false
	i.capacities = nil
	if owner == nil {
		return
	}
	for _, m := range i.modifiers {
		if g, ok := m.(CapacityGrant); ok {
			i.capacities = append(i.capacities, NewCapacity(owner, g.Name, g.Cooldown, g.Effect))
		}
	}
}

// statDelta returns the item's total modifier for a stat.
func (i *Item) statDelta(s Stat) int {
	total := 0
	for _, m := range i.modifiers {
		if sm, ok := m.(StatModifier); ok && sm.Stat == s {
			total += sm.Delta
		}
	}
	return total
}

// Snapshot returns a read-only view of the item.
func (i *Item) Snapshot() ItemSnapshot {
	return ItemSnapshot{
		ID:       i.id,
		Name:     i.name,
		Kind:     i.kind,
		Equipped: i.equipped,
	}
}
