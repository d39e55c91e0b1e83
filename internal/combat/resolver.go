// Package combat turns capacity definitions into effects that run during
// an encounter.
package combat

import (
	"fmt"

	"github.com/samdwyer/swipegeons/internal/entity"
	"github.com/samdwyer/swipegeons/internal/gamedata"
)

// Resolver builds capacities from their data definitions.
type Resolver struct {
	capacities *gamedata.Registry[gamedata.CapacityDef]
}

// NewResolver creates a new resolver over a capacity registry.
func NewResolver(capacities *gamedata.Registry[gamedata.CapacityDef]) *Resolver {
	return &Resolver{
		capacities: capacities,
	}
}

// HeroGrant returns the item modifier granting the capacity with the given ID.
func (r *Resolver) HeroGrant(id string) (entity.CapacityGrant, error) {
	def, err := r.capacities.Lookup(id)
	if err != nil {
		return entity.CapacityGrant{}, err
	}
	effect, err := HeroEffect(def)
	if err != nil {
		return entity.CapacityGrant{}, err
	}
	return entity.CapacityGrant{
		Name:     def.Name,
		Cooldown: def.Cooldown(),
		Effect:   effect,
	}, nil
}

// EnemyCapacity creates the capacity with the given ID bound to owner.
func (r *Resolver) EnemyCapacity(id string, owner *entity.Enemy) (*entity.Capacity[*entity.Enemy], error) {
	def, err := r.capacities.Lookup(id)
	if err != nil {
		return nil, err
	}
	effect, err := EnemyEffect(def)
	if err != nil {
		return nil, err
	}
	return entity.NewCapacity(owner, def.Name, def.Cooldown(), effect), nil
}

// HeroEffect builds the effect of a hero capacity. Opponents are the
// encounter's living enemies.
func HeroEffect(def *gamedata.CapacityDef) (entity.Effect[*entity.Hero], error) {
	return buildEffect(def, func(_ *entity.Hero, enc *entity.Encounter) []entity.Combatant {
		alive := enc.AliveEnemies()
		out := make([]entity.Combatant, len(alive))
		for i, e := range alive {
			out[i] = e
		}
		return out
	})
}

// EnemyEffect builds the effect of an enemy capacity. The only opponent is the hero.
func EnemyEffect(def *gamedata.CapacityDef) (entity.Effect[*entity.Enemy], error) {
	return buildEffect(def, func(_ *entity.Enemy, enc *entity.Encounter) []entity.Combatant {
		if enc.Hero == nil || !enc.Hero.IsAlive() {
			return nil
		}
		return []entity.Combatant{enc.Hero}
	})
}

// buildEffect validates def and returns an effect applying it to the targets
// chosen from the owner's point of view.
func buildEffect[O entity.Combatant](def *gamedata.CapacityDef, opponents func(O, *entity.Encounter) []entity.Combatant) (entity.Effect[O], error) {
	if def == nil {
		return nil, fmt.Errorf("nil capacity definition")
	}

	var apply func(user, target entity.Combatant)
	switch def.EffectType {
	case gamedata.EffectDamage:
		apply = func(user, target entity.Combatant) {
			target.TakeDamage(CalculateDamage(def, user, target))
		}
	case gamedata.EffectHeal:
		apply = func(_, target entity.Combatant) {
			target.Heal(CalculateHealing(def))
		}
	default:
		return nil, fmt.Errorf("capacity %q: unknown effect type %q", def.ID, def.EffectType)
	}

	var targets func(owner O, enc *entity.Encounter) []entity.Combatant
	switch {
	case def.TargetType == gamedata.TargetSelf:
		targets = func(owner O, _ *entity.Encounter) []entity.Combatant {
			return []entity.Combatant{owner}
		}
	case !def.IsOffensive():
		return nil, fmt.Errorf("capacity %q: unknown target type %q", def.ID, def.TargetType)
	case def.TargetType == gamedata.TargetSingleEnemy:
		targets = func(owner O, enc *entity.Encounter) []entity.Combatant {
			all := opponents(owner, enc)
			if len(all) == 0 {
				return nil
			}
			return all[:1]
		}
	default:
		targets = opponents
	}

	return func(owner O, enc *entity.Encounter) {
		if enc == nil {
			return
		}
		for _, t := range targets(owner, enc) {
			apply(owner, t)
		}
	}, nil
}

// CalculateDamage calculates damage without applying it.
// Target defense is not subtracted.
func CalculateDamage(def *gamedata.CapacityDef, user entity.Combatant, _ entity.Combatant) int {
	var damage int
	switch def.DamageType {
	case gamedata.DamageTrue:
		damage = def.BasePower
	default:
		// Physical: basePower + attacker.Attack (min 1)
		damage = def.BasePower + user.Attack()
		if damage < 1 {
			damage = 1
		}
	}
	return damage
}

// CalculateHealing calculates healing without applying it (min 1).
func CalculateHealing(def *gamedata.CapacityDef) int {
	if def.BasePower < 1 {
		return 1
	}
	return def.BasePower
}
