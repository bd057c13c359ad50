package engine

import (
	"github.com/skelwright/veilcutter/event"
)

// Router dispatches queued events to registered systems
//
// Architecture:
//   - Single-threaded dispatch (no concurrency issues with World mutation)
//   - Multiple systems can register for the same event type
//   - Systems are invoked in registration order
//   - All events consumed and dispatched before World.Update() runs
type Router struct {
	handlers map[event.EventType][]System
	queue    *event.Queue
}

// NewRouter creates a router attached to the given queue
func NewRouter(queue *event.Queue) *Router {
	return &Router{
		handlers: make(map[event.EventType][]System),
		queue:    queue,
	}
}

// Register adds a system for its declared event types
func (r *Router) Register(system System) {
	for _, t := range system.EventTypes() {
		r.handlers[t] = append(r.handlers[t], system)
	}
}

// RegisterAll registers every system currently in the world
func (r *Router) RegisterAll(w *World) {
	for _, s := range w.Systems() {
		r.Register(s)
	}
}

// DispatchAll consumes all pending events and routes them to handlers
// in FIFO order. Must be called once per frame, before World.Update()
func (r *Router) DispatchAll() {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
}
