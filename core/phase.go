package core

// SessionPhase is the coarse state of a play session.
type SessionPhase uint8

const (
	// PhaseFighting runs the full combat pipeline.
	PhaseFighting SessionPhase = iota
	// PhaseShop is the between-wave upgrade phase; spawning and combat idle.
	PhaseShop
	// PhaseGameOver is terminal; systems stop mutating state.
	PhaseGameOver
)

func (p SessionPhase) String() string {
	switch p {
	case PhaseFighting:
		return "fighting"
	case PhaseShop:
		return "shop"
	case PhaseGameOver:
		return "gameover"
	}
	return "unknown"
}
