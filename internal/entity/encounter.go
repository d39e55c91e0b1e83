package entity

// Encounter is the view of a fight handed to capacity effects.
// A fresh one is built for every update; effects must not keep it.
type Encounter struct {
	Hero    *Hero
	Enemies []*Enemy
}

// AliveEnemies returns the enemies that still have health, in order.
func (e *Encounter) AliveEnemies() []*Enemy {
	alive := make([]*Enemy, 0, len(e.Enemies))
	for _, en := range e.Enemies {
		if en.IsAlive() {
			alive = append(alive, en)
		}
	}
	return alive
}
