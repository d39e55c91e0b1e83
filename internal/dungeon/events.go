package dungeon

import "github.com/samdwyer/swipegeons/internal/world"

//go:generate go tool mockgen -source=events.go -destination=mock_listener_test.go -package=dungeon

// EventKind identifies what happened.
type EventKind int

const (
	// EventSwitchStarted fires when the hero heads for an exit.
	EventSwitchStarted EventKind = iota
	// EventRoomEntered fires when the hero arrives in a room.
	EventRoomEntered
	// EventRoomCleared fires when the last enemy falls and the loot is collected.
	EventRoomCleared
	// EventHeroDefeated fires once when the hero's health drops to zero or below.
	EventHeroDefeated
	// EventItemEquipped fires when a confirm equips a collected item.
	EventItemEquipped
)

// String returns a human-readable event name.
func (k EventKind) String() string {
	switch k {
	case EventSwitchStarted:
		return "switch_started"
	case EventRoomEntered:
		return "room_entered"
	case EventRoomCleared:
		return "room_cleared"
	case EventHeroDefeated:
		return "hero_defeated"
	case EventItemEquipped:
		return "item_equipped"
	default:
		return "unknown"
	}
}

// Event describes a state transition for the presentation layer.
type Event struct {
	Kind      EventKind
	Position  world.Coord // Room the hero is in (or arriving at)
	Direction Direction   // EventSwitchStarted only
	Gates     Gates       // EventRoomEntered only
	Enemies   int         // EventRoomEntered: enemies spawned
	Loot      []string    // EventRoomCleared: names of collected items
	Item      string      // EventItemEquipped: name of the equipped item
}

// Listener receives controller events. It is called synchronously from
// Update or one of the Issue methods and must not call back into the controller.
type Listener interface {
	OnEvent(ev Event)
}

// ListenerFunc adapts a function to a Listener.
type ListenerFunc func(ev Event)

// OnEvent calls f(ev).
func (f ListenerFunc) OnEvent(ev Event) { f(ev) }
