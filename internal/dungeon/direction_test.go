package dungeon

import (
	"testing"

	"github.com/samdwyer/swipegeons/internal/geom"
)

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
		name   string
	}{
		{Up, 0, 1, "up"},
		{Down, 0, -1, "down"},
		{Left, -1, 0, "left"},
		{Right, 1, 0, "right"},
	}

	for _, tt := range tests {
		dx, dy := tt.dir.Delta()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%v.Delta() = (%d,%d), want (%d,%d)", tt.dir, dx, dy, tt.dx, tt.dy)
		}
		if tt.dir.String() != tt.name {
			t.Errorf("String() = %q, want %q", tt.dir.String(), tt.name)
		}
		if !tt.dir.Valid() {
			t.Errorf("%v.Valid() = false", tt.dir)
		}
	}

	if Direction(9).Valid() {
		t.Error("Direction(9).Valid() = true")
	}
	if Direction(9).String() != "unknown" {
		t.Errorf("Direction(9).String() = %q", Direction(9).String())
	}
}

func TestExitPoint(t *testing.T) {
	size := geom.V(100, 60)
	tests := []struct {
		dir  Direction
		want geom.Vector2
	}{
		{Up, geom.V(50, 0)},
		{Down, geom.V(50, 60)},
		{Left, geom.V(0, 30)},
		{Right, geom.V(100, 30)},
	}

	for _, tt := range tests {
		if got := exitPoint(tt.dir, size); got != tt.want {
			t.Errorf("exitPoint(%v) = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestGates(t *testing.T) {
	var g Gates
	g.set(Up, true)
	g.set(Left, true)

	for _, d := range Directions {
		want := d == Up || d == Left
		if g.Open(d) != want {
			t.Errorf("Open(%v) = %v, want %v", d, g.Open(d), want)
		}
	}
	if g.Open(Direction(7)) {
		t.Error("Open(invalid) = true")
	}
}

func TestPhaseAndEventKindString(t *testing.T) {
	phases := map[Phase]string{
		PhaseWaiting:   "waiting",
		PhaseSwitching: "switching",
		PhaseFighting:  "fighting",
		Phase(42):      "unknown",
	}
	for p, want := range phases {
		if p.String() != want {
			t.Errorf("Phase(%d).String() = %q, want %q", p, p.String(), want)
		}
	}

	kinds := map[EventKind]string{
		EventSwitchStarted: "switch_started",
		EventRoomEntered:   "room_entered",
		EventRoomCleared:   "room_cleared",
		EventHeroDefeated:  "hero_defeated",
		EventItemEquipped:  "item_equipped",
		EventKind(42):      "unknown",
	}
	for k, want := range kinds {
		if k.String() != want {
			t.Errorf("EventKind(%d).String() = %q, want %q", k, k.String(), want)
		}
	}
}
