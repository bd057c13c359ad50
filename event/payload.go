package event

import (
	"github.com/skelwright/veilcutter/core"
)

// SoundRequestPayload names the effect to play
type SoundRequestPayload struct {
	Sound core.SoundType
}

// DeathRequestPayload carries a batch of entities to destroy
type DeathRequestPayload struct {
	Entities []core.Entity
}

// DispelResolvedPayload reports a completed gesture's outcome
type DispelResolvedPayload struct {
	Removed  int // Targets enclosed and removed
	Tested   int // Live targets at closure time
	Vertices int // Polygon size including the closing point
}
