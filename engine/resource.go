package engine

import (
	"time"

	"github.com/skelwright/veilcutter/core"
	"github.com/skelwright/veilcutter/event"
	"github.com/skelwright/veilcutter/parameter"
	"github.com/skelwright/veilcutter/vmath"
)

// Resource holds singleton game resources, initialized during world
// creation and accessed via World.Resources
type Resource struct {
	Time   *TimeResource
	Config *ConfigResource
	Phase  *PhaseResource
	Camera *CameraResource
	Dispel *DispelResource
	Events *event.Queue

	// Host-injected collaborators
	Pointer PointerView
	Cursor  CursorMode
}

func newResource() *Resource {
	return &Resource{
		Time:   &TimeResource{},
		Config: &ConfigResource{MaxAberrations: parameter.SpawnMaxAberrations},
		Phase:  &PhaseResource{Phase: core.PhasePlaying},
		Camera: &CameraResource{Scale: parameter.DefaultCanvasScale},
		Dispel: NewDispelResource(),
		Events: event.NewQueue(),
	}
}

// TimeResource wraps time data for systems
// Updated by the game loop at the start of each frame
type TimeResource struct {
	// GameTime is the current time in the game world (frozen by pause)
	GameTime time.Time

	// RealTime is the wall-clock time (unaffected by pause)
	RealTime time.Time

	// DeltaTime is the duration since the last update
	DeltaTime time.Duration

	// FrameNumber is the current frame count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place (zero allocation)
func (tr *TimeResource) Update(gameTime, realTime time.Time, deltaTime time.Duration, frameNumber int64) {
	tr.GameTime = gameTime
	tr.RealTime = realTime
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// ConfigResource holds static or semi-static configuration data
type ConfigResource struct {
	ScreenWidth  int
	ScreenHeight int

	// MaxAberrations caps the live target population
	MaxAberrations int
}

// PhaseResource tracks the coarse host state
type PhaseResource struct {
	Phase core.GamePhase
}

// Playing reports whether gameplay systems should run this frame
func (p *PhaseResource) Playing() bool {
	return p.Phase == core.PhasePlaying
}

// PointerView is the read side of the pointer collaborator.
// Position reports ok=false when the pointer is outside the window;
// button accessors expose per-frame edges.
type PointerView interface {
	Position() (vmath.Vec2, bool)
	PrimaryHeld() bool
	PrimaryJustPressed() bool
	PrimaryJustReleased() bool
	SecondaryJustPressed() bool
}

// CursorMode is the host cursor collaborator: a two-state toggle between
// captured-and-hidden and free-and-visible
type CursorMode interface {
	SetFree(free bool)
	Free() bool
}
