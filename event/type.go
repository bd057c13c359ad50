package event

// EventType represents the type of game event
type EventType int

const (
	// EventGameReset clears session state in all systems
	// Trigger: Host on scene teardown/restart
	// Consumer: All systems | Payload: nil
	EventGameReset EventType = iota

	// EventSoundRequest requests audio playback
	// Trigger: Systems requiring audio feedback
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	// EventDeathBatch requests destruction of a set of entities
	// Trigger: DispelSystem on successful closure
	// Consumer: DeathSystem | Payload: *DeathRequestPayload
	EventDeathBatch

	// EventDispelResolved reports the outcome of a completed gesture
	// Trigger: DispelSystem after the enclosure test
	// Consumer: HUD renderer, logging | Payload: *DispelResolvedPayload
	EventDispelResolved
)

// GameEvent is the unit routed through the queue
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
