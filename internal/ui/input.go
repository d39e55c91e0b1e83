package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/swipegeons/internal/dungeon"
)

// KeyDirection maps arrow keys and WASD to a direction.
func KeyDirection(ev *tcell.EventKey) (dungeon.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return dungeon.Up, true
	case tcell.KeyDown:
		return dungeon.Down, true
	case tcell.KeyLeft:
		return dungeon.Left, true
	case tcell.KeyRight:
		return dungeon.Right, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return dungeon.Up, true
		case 's', 'S':
			return dungeon.Down, true
		case 'a', 'A':
			return dungeon.Left, true
		case 'd', 'D':
			return dungeon.Right, true
		}
	}
	return 0, false
}

// SwipeDetector turns mouse drags into directions. The direction is the one
// the pointer moved in: dragging upward on screen means Up.
type SwipeDetector struct {
	threshold      int // Cells the pointer must travel
	down           bool
	startX, startY int
}

// NewSwipeDetector creates a detector firing after threshold cells of travel.
func NewSwipeDetector(threshold int) *SwipeDetector {
	if threshold < 1 {
		threshold = 1
	}
	return &SwipeDetector{threshold: threshold}
}

// Feed processes a mouse event and reports a completed swipe.
func (s *SwipeDetector) Feed(ev *tcell.EventMouse) (dungeon.Direction, bool) {
	x, y := ev.Position()
	if ev.Buttons()&tcell.Button1 == 0 {
		s.down = false
		return 0, false
	}
	if !s.down {
		s.down = true
		s.startX, s.startY = x, y
		return 0, false
	}

	dx, dy := x-s.startX, y-s.startY
	var dir dungeon.Direction
	switch {
	case abs(dx) > s.threshold && abs(dx) >= abs(dy):
		dir = dungeon.Right
		if dx < 0 {
			dir = dungeon.Left
		}
	case abs(dy) > s.threshold:
		// Screen rows grow downward.
		dir = dungeon.Down
		if dy < 0 {
			dir = dungeon.Up
		}
	default:
		return 0, false
	}
	s.startX, s.startY = x, y
	return dir, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
