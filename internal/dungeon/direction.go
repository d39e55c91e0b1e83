// Package dungeon drives the hero from room to room and resolves the fights
// waiting there.
package dungeon

import "github.com/samdwyer/swipegeons/internal/geom"

// Direction is one of the four exits of a room.
//
// Grid coordinates grow upward while room space grows downward (screen
// convention), so Up is +1 on the grid and leaves through the top edge.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in a stable order.
var Directions = [...]Direction{Up, Down, Left, Right}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the grid offset of the neighbouring room.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// exitPoint returns the middle of the room edge facing d.
func exitPoint(d Direction, size geom.Vector2) geom.Vector2 {
	dx, dy := d.Delta()
	return geom.V(size.X/2*float64(dx+1), size.Y/2*float64(1-dy))
}

// Gates tells which exits of a room lead somewhere.
type Gates struct {
	Up, Down, Left, Right bool
}

// Open reports whether the exit in direction d is open.
func (g Gates) Open(d Direction) bool {
	switch d {
	case Up:
		return g.Up
	case Down:
		return g.Down
	case Left:
		return g.Left
	case Right:
		return g.Right
	default:
		return false
	}
}

func (g *Gates) set(d Direction, open bool) {
	switch d {
	case Up:
		g.Up = open
	case Down:
		g.Down = open
	case Left:
		g.Left = open
	case Right:
		g.Right = open
	}
}
