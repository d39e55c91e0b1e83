package entity

import "time"

// Effect is what a capacity does to the encounter when it fires.
// The encounter is only valid for the duration of the call.
type Effect[O Combatant] func(owner O, enc *Encounter)

// Capacity is a cooldown-gated action bound to one owner.
// The owner kind is fixed at construction, so hero and enemy capacities
// are distinct types.
type Capacity[O Combatant] struct {
	owner     O
	name      string
	cooldown  time.Duration
	remaining time.Duration // Ready when <= 0
	effect    Effect[O]
	triggers  int
}

// NewCapacity creates a capacity that is ready to fire.
func NewCapacity[O Combatant](owner O, name string, cooldown time.Duration, effect Effect[O]) *Capacity[O] {
	return &Capacity[O]{
		owner:    owner,
		name:     name,
		cooldown: cooldown,
		effect:   effect,
	}
}

// Owner returns the combatant the capacity belongs to.
func (c *Capacity[O]) Owner() O { return c.owner }

// Name returns the capacity name.
func (c *Capacity[O]) Name() string { return c.name }

// Cooldown returns the full cooldown duration.
func (c *Capacity[O]) Cooldown() time.Duration { return c.cooldown }

// Remaining returns the time left before the capacity is ready.
// It may be negative.
func (c *Capacity[O]) Remaining() time.Duration { return c.remaining }

// Triggers returns how many times the effect has fired.
func (c *Capacity[O]) Triggers() int { return c.triggers }

// Ready reports whether the cooldown has elapsed.
func (c *Capacity[O]) Ready() bool { return c.remaining <= 0 }

// Update counts elapsed time against the cooldown.
func (c *Capacity[O]) Update(elapsed time.Duration) {
	c.remaining -= elapsed
}

// Trigger runs the effect once and restarts the cooldown.
// It does nothing and returns false while the capacity is cooling down.
func (c *Capacity[O]) Trigger(enc *Encounter) bool {
	if !c.Ready() {
		return false
	}
	if c.effect != nil {
		c.effect(c.owner, enc)
	}
	c.triggers++
	c.remaining = c.cooldown
	return true
}

// advance is the per-frame step run by the owner: fire if ready and an
// encounter is running, then count the frame's elapsed time.
func (c *Capacity[O]) advance(elapsed time.Duration, enc *Encounter) {
	if enc != nil && c.Ready() {
		c.Trigger(enc)
	}
	c.Update(elapsed)
}

// Snapshot returns a read-only view of the capacity.
func (c *Capacity[O]) Snapshot() CapacitySnapshot {
	return CapacitySnapshot{
		Name:      c.name,
		Cooldown:  c.cooldown,
		Remaining: c.remaining,
		Ready:     c.Ready(),
		Triggers:  c.triggers,
	}
}
