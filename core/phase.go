package core

// GamePhase is the coarse host state gating all gameplay systems
type GamePhase uint8

const (
	PhasePlaying GamePhase = iota
	PhasePaused
	PhaseQuitting
)

// String returns phase name for logging
func (p GamePhase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseQuitting:
		return "quitting"
	}
	return "unknown"
}
