package engine

import (
	"time"

	"github.com/skelwright/veilcutter/vmath"
)

// DispelMode governs the gesture session lifecycle
type DispelMode uint8

const (
	// DispelDormant: mechanic inactive, cursor captured
	DispelDormant DispelMode = iota

	// DispelArmed: cursor freed, awaiting the stroke start
	DispelArmed

	// DispelDrawing: primary button held, path being sampled
	DispelDrawing
)

// String returns mode name for logging
func (m DispelMode) String() string {
	switch m {
	case DispelDormant:
		return "dormant"
	case DispelArmed:
		return "armed"
	case DispelDrawing:
		return "drawing"
	}
	return "unknown"
}

// DispelResource is the single live gesture session, owned by the
// DispelSystem. It is reset in place, never recreated, for the lifetime
// of a scene.
//
// Invariants:
//   - Path is empty whenever Mode != DispelDrawing
//   - Consecutive Path points are never closer than the minimum spacing
type DispelResource struct {
	Mode DispelMode

	// Path is the sampled gesture in logical screen coordinates;
	// insertion order defines polygon winding
	Path []vmath.Vec2

	// SampleElapsed accumulates frame time toward the next sample tick
	SampleElapsed time.Duration
}

// NewDispelResource creates a dormant session
func NewDispelResource() *DispelResource {
	return &DispelResource{
		Path: make([]vmath.Vec2, 0, 64),
	}
}

// Active reports whether the mechanic is engaged (armed or drawing);
// exposed to collaborators for feedback rendering
func (d *DispelResource) Active() bool {
	return d.Mode != DispelDormant
}

// ClearPath empties the path without changing mode
func (d *DispelResource) ClearPath() {
	d.Path = d.Path[:0]
}

// Reset returns the session to dormant with an empty path
func (d *DispelResource) Reset() {
	d.Mode = DispelDormant
	d.Path = d.Path[:0]
	d.SampleElapsed = 0
}
