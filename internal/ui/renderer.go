package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/swipegeons/internal/dungeon"
	"github.com/samdwyer/swipegeons/internal/entity"
	"github.com/samdwyer/swipegeons/internal/gamedata"
	"github.com/samdwyer/swipegeons/internal/geom"
	"github.com/samdwyer/swipegeons/internal/world"
)

// statusLines is the number of rows reserved below the room.
const statusLines = 3

// View is the read-only state the renderer draws.
type View interface {
	Phase() dungeon.Phase
	Position() world.Coord
	Gates() dungeon.Gates
	RoomSize() geom.Vector2
	Defeated() bool
	Hero() entity.CombatantSnapshot
	Enemies() []entity.CombatantSnapshot
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the current room, its occupants and the status lines.
func (r *Renderer) Render(v View, message string) {
	r.screen.Clear()

	w, h := r.screen.Size()
	roomW, roomH := w, h-statusLines
	if roomW < 3 || roomH < 3 {
		r.screen.Show()
		return
	}

	r.drawWalls(roomW, roomH, v.Gates())

	size := v.RoomSize()
	toCell := func(p geom.Vector2) (int, int) {
		x := int(p.X / size.X * float64(roomW-1))
		y := int(p.Y / size.Y * float64(roomH-1))
		return clamp(x, 0, roomW-1), clamp(y, 0, roomH-1)
	}

	for _, e := range v.Enemies() {
		x, y := toCell(e.Position)
		style := tcell.StyleDefault.Foreground(gamedata.ColorOr(e.Color, tcell.ColorRed))
		r.screen.SetContent(x, y, e.Glyph, style)
	}

	hero := v.Hero()
	x, y := toCell(hero.Position)
	heroStyle := tcell.StyleDefault.
		Foreground(gamedata.ColorOr(hero.Color, tcell.ColorYellow)).
		Bold(true)
	r.screen.SetContent(x, y, hero.Glyph, heroStyle)

	r.drawStatus(roomH, v, hero, message)
	r.screen.Show()
}

// drawWalls draws the room border with openings where gates are open.
func (r *Renderer) drawWalls(w, h int, gates dungeon.Gates) {
	wall := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	gate := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	gateHalfW, gateHalfH := max(w/10, 1), max(h/6, 1)

	for x := 0; x < w; x++ {
		inGate := abs(x-w/2) <= gateHalfW
		r.screen.SetContent(x, 0, '#', pick(inGate && gates.Up, gate, wall))
		r.screen.SetContent(x, h-1, '#', pick(inGate && gates.Down, gate, wall))
	}
	for y := 0; y < h; y++ {
		inGate := abs(y-h/2) <= gateHalfH
		r.screen.SetContent(0, y, '#', pick(inGate && gates.Left, gate, wall))
		r.screen.SetContent(w-1, y, '#', pick(inGate && gates.Right, gate, wall))
	}
}

func (r *Renderer) drawStatus(top int, v View, hero entity.CombatantSnapshot, message string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	pos := v.Position()
	line := fmt.Sprintf("Room %s  %s  HP %d/%d  ATK %d  DEF %d",
		pos, v.Phase(), hero.Health, hero.MaxHealth, hero.Attack, hero.Defense)
	r.screen.SetString(0, top, line, style)

	var caps []string
	for _, c := range hero.Capacities {
		if c.Ready {
			caps = append(caps, c.Name+" ready")
		} else {
			caps = append(caps, fmt.Sprintf("%s %.1fs", c.Name, c.Remaining.Seconds()))
		}
	}
	var items []string
	for _, it := range hero.Items {
		name := it.Name
		if it.Equipped {
			name += "*"
		}
		items = append(items, name)
	}
	r.screen.SetString(0, top+1, strings.Join(caps, "  ")+"  |  "+strings.Join(items, ", "), style)

	if v.Defeated() {
		message = "You have fallen. Enter to start again, q to quit."
	}
	r.screen.SetString(0, top+2, message, style.Bold(true))
}

func pick(cond bool, a, b tcell.Style) tcell.Style {
	if cond {
		return a
	}
	return b
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
