package entity

import (
	"testing"
	"time"

	"github.com/samdwyer/swipegeons/internal/gamedata"
	"github.com/samdwyer/swipegeons/internal/geom"
)

func TestNewEnemyFromDef(t *testing.T) {
	def := &gamedata.EnemyDef{ID: "wisp", Name: "Wisp", Glyph: "w", Color: "#8888ff", Health: 40, Attack: 1}
	e := NewEnemyFromDef(def, geom.V(200, 150))

	if e.Kind() != "wisp" {
		t.Errorf("Kind() = %q, want wisp", e.Kind())
	}
	if e.Health() != 40 || e.MaxHealth() != 40 || e.Attack() != 1 {
		t.Errorf("stats = %d/%d/%d, want 40/40/1", e.Health(), e.MaxHealth(), e.Attack())
	}
	if e.Objective() != geom.V(200, 150) {
		t.Errorf("Objective() = %v, want spawn point", e.Objective())
	}
	if s := e.Snapshot(); s.Glyph != 'w' {
		t.Errorf("Glyph = %q, want 'w'", s.Glyph)
	}
}

func TestEnemyKindWithoutDef(t *testing.T) {
	e := NewEnemy("Rat", Stats{MaxHealth: 1}, geom.Zero)
	if e.Kind() != "Rat" {
		t.Errorf("Kind() = %q, want Rat", e.Kind())
	}
}

func TestEnemyLearnRejectsForeignCapacity(t *testing.T) {
	e := NewEnemy("Rat", Stats{MaxHealth: 1}, geom.Zero)
	other := NewEnemy("Bat", Stats{MaxHealth: 1}, geom.Zero)

	if e.Learn(NewCapacity(other, "Bite", time.Second, nil)) {
		t.Error("Learn() of another enemy's capacity = true, want false")
	}
	if e.Learn(nil) {
		t.Error("Learn(nil) = true, want false")
	}
	if !e.Learn(NewCapacity(e, "Bite", time.Second, nil)) {
		t.Error("Learn() of own capacity = false, want true")
	}
	if got := len(e.Capacities()); got != 1 {
		t.Errorf("len(Capacities()) = %d, want 1", got)
	}
}

func TestEnemyUpdateFiresAtHero(t *testing.T) {
	h := newTestHero()
	e := NewEnemy("Rat", Stats{MaxHealth: 5, Attack: 1}, geom.Zero)
	e.Learn(NewCapacity(e, "Bite", 2*time.Second, func(owner *Enemy, enc *Encounter) {
		enc.Hero.TakeDamage(owner.Attack())
	}))
	enc := &Encounter{Hero: h, Enemies: []*Enemy{e}}

	// Frames of 500ms for 6s: fires at 0, 2s and 4s.
	for i := 0; i < 12; i++ {
		e.Update(500*time.Millisecond, enc)
	}
	if h.Health() != 7 {
		t.Errorf("hero Health() = %d, want 7", h.Health())
	}

	e.TakeDamage(5)
	e.Update(10*time.Second, enc)
	if h.Health() != 7 {
		t.Errorf("dead enemy still attacked: hero Health() = %d, want 7", h.Health())
	}
}

func TestEncounterAliveEnemies(t *testing.T) {
	a := NewEnemy("A", Stats{MaxHealth: 1}, geom.Zero)
	b := NewEnemy("B", Stats{MaxHealth: 1}, geom.Zero)
	c := NewEnemy("C", Stats{MaxHealth: 1}, geom.Zero)
	a.TakeDamage(1)
	enc := &Encounter{Enemies: []*Enemy{a, b, c}}

	alive := enc.AliveEnemies()
	if len(alive) != 2 || alive[0] != b || alive[1] != c {
		t.Errorf("AliveEnemies() = %v, want [B C]", alive)
	}

	b.TakeDamage(1)
	c.TakeDamage(1)
	if got := enc.AliveEnemies(); len(got) != 0 {
		t.Errorf("AliveEnemies() with everyone dead = %v, want none", got)
	}
}
