// Package world provides the room grid a dungeon is made of.
package world

import "github.com/samdwyer/swipegeons/internal/entity"

// Room is one cell of the dungeon. Its enemies and loot are handed out at
// most once.
type Room struct {
	ID      string
	Seed    int64
	Loot    []*entity.Item
	Enemies []*entity.Enemy
}

// NewRoom creates a room with the given population.
func NewRoom(id string, seed int64, enemies []*entity.Enemy, loot []*entity.Item) *Room {
	return &Room{
		ID:      id,
		Seed:    seed,
		Loot:    loot,
		Enemies: enemies,
	}
}

// TakeEnemies returns the room's enemies and leaves the room empty.
func (r *Room) TakeEnemies() []*entity.Enemy {
	enemies := r.Enemies
	r.Enemies = nil
	return enemies
}

// TakeLoot returns the room's loot and leaves the room without any.
func (r *Room) TakeLoot() []*entity.Item {
	loot := r.Loot
	r.Loot = nil
	return loot
}
