package dungeon

// Phase is the state of the dungeon controller.
type Phase int

const (
	// PhaseWaiting accepts movement intents.
	PhaseWaiting Phase = iota
	// PhaseSwitching walks the hero out of the room toward the chosen exit.
	PhaseSwitching
	// PhaseFighting resolves combat with the room's enemies.
	PhaseFighting
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseSwitching:
		return "switching"
	case PhaseFighting:
		return "fighting"
	default:
		return "unknown"
	}
}
