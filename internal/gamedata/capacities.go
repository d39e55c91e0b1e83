package gamedata

import "time"

// =============================================================================
// CAPACITY SYSTEM
// =============================================================================
//
// Capacities are cooldown-gated actions owned by one combatant. Enemies learn
// them from their definition; the hero gets them from equipped items. They
// fire on their own during a fight: there is no turn order and no targeting
// input, only the cooldown.
//
// YAML Schema:
// ------------
//   - id: slash
//     name: Slash
//     effectType: damage
//     targetType: all_enemies
//     damageType: "true"
//     basePower: 5
//     cooldownMs: 1000
//
// Damage Calculation:
// -------------------
// Physical: damage = basePower + attacker.Attack (min 1)
// True:     damage = basePower
//
// Defense is not subtracted. It stays a visible stat that items can raise.
//
// Targets are relative to the owner: for an enemy, "enemy" means the hero.

// EffectType represents what a capacity does.
type EffectType string

const (
	EffectDamage EffectType = "damage"
	EffectHeal   EffectType = "heal"
)

// TargetType represents who a capacity affects.
type TargetType string

const (
	TargetSelf        TargetType = "self"
	TargetSingleEnemy TargetType = "single_enemy"
	TargetAllEnemies  TargetType = "all_enemies"
)

// DamageType represents how damage is calculated.
type DamageType string

const (
	DamagePhysical DamageType = "physical"
	DamageTrue     DamageType = "true"
)

// CapacityDef defines a capacity loaded from YAML.
type CapacityDef struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	EffectType  EffectType `yaml:"effectType"`
	TargetType  TargetType `yaml:"targetType"`
	DamageType  DamageType `yaml:"damageType,omitempty"`
	BasePower   int        `yaml:"basePower"`
	CooldownMS  int        `yaml:"cooldownMs"`
}

// Cooldown returns the cooldown as a duration.
func (c *CapacityDef) Cooldown() time.Duration {
	return time.Duration(c.CooldownMS) * time.Millisecond
}

// IsOffensive returns true if the capacity targets opponents.
func (c *CapacityDef) IsOffensive() bool {
	return c.TargetType == TargetSingleEnemy || c.TargetType == TargetAllEnemies
}

// CapacitiesFile represents the structure of capacities.yaml.
type CapacitiesFile struct {
	Capacities []CapacityDef `yaml:"capacities"`
}

// LoadCapacities loads capacity definitions from the embedded capacities.yaml file.
func LoadCapacities() ([]CapacityDef, error) {
	file, err := Load[CapacitiesFile]("capacities.yaml")
	if err != nil {
		return nil, err
	}
	return file.Capacities, nil
}
