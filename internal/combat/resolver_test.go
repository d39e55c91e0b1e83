package combat

import (
	"testing"
	"time"

	"github.com/samdwyer/swipegeons/internal/entity"
	"github.com/samdwyer/swipegeons/internal/gamedata"
	"github.com/samdwyer/swipegeons/internal/geom"
)

func testRegistry() *gamedata.Registry[gamedata.CapacityDef] {
	defs := []gamedata.CapacityDef{
		{ID: "slash", Name: "Slash", EffectType: gamedata.EffectDamage, TargetType: gamedata.TargetAllEnemies, DamageType: gamedata.DamageTrue, BasePower: 5, CooldownMS: 1000},
		{ID: "thrust", Name: "Thrust", EffectType: gamedata.EffectDamage, TargetType: gamedata.TargetSingleEnemy, DamageType: gamedata.DamagePhysical, BasePower: 3, CooldownMS: 600},
		{ID: "mend", Name: "Mend", EffectType: gamedata.EffectHeal, TargetType: gamedata.TargetSelf, BasePower: 2, CooldownMS: 3000},
		{ID: "enemy_attack", Name: "Enemy attack", EffectType: gamedata.EffectDamage, TargetType: gamedata.TargetSingleEnemy, DamageType: gamedata.DamagePhysical, CooldownMS: 2000},
		{ID: "broken", Name: "Broken", EffectType: "teleport", TargetType: gamedata.TargetSelf},
		{ID: "aimless", Name: "Aimless", EffectType: gamedata.EffectDamage, TargetType: "everyone"},
	}
	return gamedata.NewRegistry("capacity", defs, func(d *gamedata.CapacityDef) string { return d.ID })
}

func newHero(attack int) *entity.Hero {
	return entity.NewHero("Hero", entity.Stats{MaxHealth: 10, Attack: attack, Speed: 5}, geom.Zero)
}

func newEnemy(health, attack int) *entity.Enemy {
	return entity.NewEnemy("Wisp", entity.Stats{MaxHealth: health, Attack: attack}, geom.Zero)
}

func TestCalculateDamage(t *testing.T) {
	tests := []struct {
		name   string
		def    gamedata.CapacityDef
		attack int
		want   int
	}{
		{"true ignores attack", gamedata.CapacityDef{DamageType: gamedata.DamageTrue, BasePower: 5}, 10, 5},
		{"physical adds attack", gamedata.CapacityDef{DamageType: gamedata.DamagePhysical, BasePower: 3}, 2, 5},
		{"physical minimum 1", gamedata.CapacityDef{DamageType: gamedata.DamagePhysical, BasePower: 0}, 0, 1},
		{"empty type is physical", gamedata.CapacityDef{BasePower: 0}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := newEnemy(10, 0)
			got := CalculateDamage(&tt.def, newHero(tt.attack), target)
			if got != tt.want {
				t.Errorf("CalculateDamage() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCalculateDamageIgnoresDefense(t *testing.T) {
	def := &gamedata.CapacityDef{DamageType: gamedata.DamagePhysical, BasePower: 3}
	target := entity.NewEnemy("Brute", entity.Stats{MaxHealth: 10, Defense: 100}, geom.Zero)

	if got := CalculateDamage(def, newHero(1), target); got != 4 {
		t.Errorf("CalculateDamage() against high defense = %d, want 4", got)
	}
}

func TestCalculateHealing(t *testing.T) {
	if got := CalculateHealing(&gamedata.CapacityDef{BasePower: 4}); got != 4 {
		t.Errorf("CalculateHealing(4) = %d, want 4", got)
	}
	if got := CalculateHealing(&gamedata.CapacityDef{BasePower: 0}); got != 1 {
		t.Errorf("CalculateHealing(0) = %d, want 1", got)
	}
}

func TestHeroGrantSlashHitsEveryLivingEnemy(t *testing.T) {
	r := NewResolver(testRegistry())
	grant, err := r.HeroGrant("slash")
	if err != nil {
		t.Fatalf("HeroGrant(slash) error = %v", err)
	}
	if grant.Name != "Slash" || grant.Cooldown != time.Second {
		t.Errorf("grant = %q/%v, want Slash/1s", grant.Name, grant.Cooldown)
	}

	hero := newHero(0)
	a, b, dead := newEnemy(40, 1), newEnemy(40, 1), newEnemy(1, 1)
	dead.TakeDamage(1)

	grant.Effect(hero, &entity.Encounter{Hero: hero, Enemies: []*entity.Enemy{a, dead, b}})

	if a.Health() != 35 || b.Health() != 35 {
		t.Errorf("enemy health = %d/%d, want 35/35", a.Health(), b.Health())
	}
	if dead.Health() != 0 {
		t.Errorf("dead enemy took damage: health = %d", dead.Health())
	}
}

func TestHeroGrantThrustHitsFirstLivingEnemy(t *testing.T) {
	r := NewResolver(testRegistry())
	grant, err := r.HeroGrant("thrust")
	if err != nil {
		t.Fatalf("HeroGrant(thrust) error = %v", err)
	}

	hero := newHero(1)
	dead, first, second := newEnemy(1, 0), newEnemy(10, 0), newEnemy(10, 0)
	dead.TakeDamage(1)

	grant.Effect(hero, &entity.Encounter{Hero: hero, Enemies: []*entity.Enemy{dead, first, second}})

	if first.Health() != 6 {
		t.Errorf("first enemy health = %d, want 6", first.Health())
	}
	if second.Health() != 10 {
		t.Errorf("second enemy health = %d, want 10", second.Health())
	}
}

func TestEffectWithoutEncounterIsNoop(t *testing.T) {
	r := NewResolver(testRegistry())
	grant, err := r.HeroGrant("slash")
	if err != nil {
		t.Fatalf("HeroGrant(slash) error = %v", err)
	}
	grant.Effect(newHero(0), nil)
}

func TestEnemyCapacityAttacksHero(t *testing.T) {
	r := NewResolver(testRegistry())
	enemy := newEnemy(40, 1)
	c, err := r.EnemyCapacity("enemy_attack", enemy)
	if err != nil {
		t.Fatalf("EnemyCapacity() error = %v", err)
	}
	if c.Owner() != enemy {
		t.Error("capacity is not bound to the enemy")
	}
	if c.Cooldown() != 2*time.Second {
		t.Errorf("Cooldown() = %v, want 2s", c.Cooldown())
	}

	hero := newHero(0)
	c.Trigger(&entity.Encounter{Hero: hero, Enemies: []*entity.Enemy{enemy}})

	if hero.Health() != 9 {
		t.Errorf("hero health = %d, want 9", hero.Health())
	}
}

func TestEnemyCapacityIgnoresDeadHero(t *testing.T) {
	r := NewResolver(testRegistry())
	enemy := newEnemy(40, 1)
	c, err := r.EnemyCapacity("enemy_attack", enemy)
	if err != nil {
		t.Fatalf("EnemyCapacity() error = %v", err)
	}

	hero := newHero(0)
	hero.TakeDamage(10)
	c.Trigger(&entity.Encounter{Hero: hero})

	if hero.Health() != 0 {
		t.Errorf("dead hero health = %d, want 0", hero.Health())
	}
}

func TestSelfHeal(t *testing.T) {
	r := NewResolver(testRegistry())
	enemy := newEnemy(10, 0)
	c, err := r.EnemyCapacity("mend", enemy)
	if err != nil {
		t.Fatalf("EnemyCapacity(mend) error = %v", err)
	}
	enemy.TakeDamage(5)

	c.Trigger(&entity.Encounter{Hero: newHero(0), Enemies: []*entity.Enemy{enemy}})

	if enemy.Health() != 7 {
		t.Errorf("enemy health = %d, want 7", enemy.Health())
	}
}

func TestResolverErrors(t *testing.T) {
	r := NewResolver(testRegistry())

	if _, err := r.HeroGrant("missing"); err == nil {
		t.Error("HeroGrant(missing) error = nil")
	}
	if _, err := r.EnemyCapacity("missing", newEnemy(1, 0)); err == nil {
		t.Error("EnemyCapacity(missing) error = nil")
	}
	if _, err := r.HeroGrant("broken"); err == nil {
		t.Error("HeroGrant(broken) with unknown effect type: error = nil")
	}
	if _, err := r.EnemyCapacity("aimless", newEnemy(1, 0)); err == nil {
		t.Error("EnemyCapacity(aimless) with unknown target type: error = nil")
	}
	if _, err := HeroEffect(nil); err == nil {
		t.Error("HeroEffect(nil) error = nil")
	}
}
