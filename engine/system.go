package engine

import (
	"github.com/skelwright/veilcutter/event"
)

// System is the interface all game systems implement
type System interface {
	// Name identifies the system in logs and diagnostics
	Name() string

	// Priority orders execution within a frame; lower runs first
	Priority() int

	// Update runs the system's per-frame logic
	Update()

	// EventTypes returns event types this system handles; empty for none
	EventTypes() []event.EventType

	// HandleEvent processes a routed event
	// Called synchronously during the dispatch phase, before Update
	HandleEvent(ev event.GameEvent)
}

// SystemBase provides common dependencies for all systems
// Embed in a system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Resource  *Resource
	Component ComponentStore
}

// NewSystemBase initializes base dependencies from the world
// Call once in the system constructor
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  w.Resources,
		Component: w.Components,
	}
}
