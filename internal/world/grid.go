package world

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCoordinate is returned when a coordinate is negative or not an integer.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coord is an integer grid position. Y grows upward.
type Coord struct {
	X, Y int
}

// Add returns c offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// String formats the coordinate as (x,y).
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// CoordOf converts authored numeric coordinates to a Coord.
// Values that are negative or not whole numbers are rejected.
func CoordOf(x, y float64) (Coord, error) {
	if !isIndex(x) || !isIndex(y) {
		return Coord{}, fmt.Errorf("%w: (%v,%v)", ErrInvalidCoordinate, x, y)
	}
	return Coord{X: int(x), Y: int(y)}, nil
}

func isIndex(v float64) bool {
	return v >= 0 && v == math.Trunc(v) && v <= math.MaxInt32
}

// Grid is a sparse 2D lookup of rooms keyed by integer coordinates.
type Grid struct {
	columns [][]*Room // columns[x][y], nil means no room
}

// NewGrid creates a grid from columns indexed [x][y]. Nil entries are absent rooms.
// The outer and inner slices are copied; rooms are not.
func NewGrid(columns [][]*Room) *Grid {
	g := &Grid{columns: make([][]*Room, len(columns))}
	for x, col := range columns {
		g.columns[x] = append([]*Room(nil), col...)
	}
	return g
}

func validate(x, y int) error {
	if x < 0 || y < 0 {
		return fmt.Errorf("%w: (%d,%d)", ErrInvalidCoordinate, x, y)
	}
	return nil
}

// Set stores room at (x, y).
func (g *Grid) Set(x, y int, room *Room) error {
	if err := validate(x, y); err != nil {
		return err
	}
	for len(g.columns) <= x {
		g.columns = append(g.columns, nil)
	}
	col := g.columns[x]
	for len(col) <= y {
		col = append(col, nil)
	}
	col[y] = room
	g.columns[x] = col
	return nil
}

// Get returns the room at (x, y). Unset, out of range and negative
// coordinates report no room.
func (g *Grid) Get(x, y int) (*Room, bool) {
	if x < 0 || y < 0 || x >= len(g.columns) {
		return nil, false
	}
	col := g.columns[x]
	if y >= len(col) || col[y] == nil {
		return nil, false
	}
	return col[y], true
}

// At is Get for a Coord.
func (g *Grid) At(c Coord) (*Room, bool) {
	return g.Get(c.X, c.Y)
}

// Neighbor returns the room offset by (dx, dy) from c.
func (g *Grid) Neighbor(c Coord, dx, dy int) (*Room, bool) {
	return g.At(c.Add(dx, dy))
}

// Remove clears the slot at (x, y).
func (g *Grid) Remove(x, y int) error {
	if err := validate(x, y); err != nil {
		return err
	}
	if x < len(g.columns) && y < len(g.columns[x]) {
		g.columns[x][y] = nil
	}
	return nil
}

// Len returns the number of rooms in the grid.
func (g *Grid) Len() int {
	n := 0
	for _, col := range g.columns {
		for _, r := range col {
			if r != nil {
				n++
			}
		}
	}
	return n
}
