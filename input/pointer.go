package input

import (
	"github.com/skelwright/veilcutter/vmath"
)

// Pointer tracks the pointing device with per-frame button edges.
// The game loop applies intents between frames and calls BeginFrame
// before the next batch; systems read it during Update. Single-writer,
// no locking needed.
type Pointer struct {
	pos    vmath.Vec2
	hasPos bool

	primaryHeld          bool
	primaryJustPressed   bool
	primaryJustReleased  bool
	secondaryJustPressed bool
}

// NewPointer creates a pointer with no known position
func NewPointer() *Pointer {
	return &Pointer{}
}

// BeginFrame clears the per-frame button edges
// Held state and position persist across frames
func (p *Pointer) BeginFrame() {
	p.primaryJustPressed = false
	p.primaryJustReleased = false
	p.secondaryJustPressed = false
}

// Apply folds a pointer intent into the state
// Edges are sticky until the next BeginFrame so multiple events per
// frame cannot swallow a click
func (p *Pointer) Apply(in Intent) {
	switch in.Type {
	case IntentPointerMove:
		p.pos = vmath.Vec2{X: float64(in.X), Y: float64(in.Y)}
		p.hasPos = true
	case IntentPrimaryDown:
		p.pos = vmath.Vec2{X: float64(in.X), Y: float64(in.Y)}
		p.hasPos = true
		if !p.primaryHeld {
			p.primaryJustPressed = true
		}
		p.primaryHeld = true
	case IntentPrimaryUp:
		if p.primaryHeld {
			p.primaryJustReleased = true
		}
		p.primaryHeld = false
	case IntentSecondaryDown:
		p.secondaryJustPressed = true
	}
}

// SetLost marks the pointer position unknown (pointer left the window)
func (p *Pointer) SetLost() {
	p.hasPos = false
}

// Position returns the last known position; ok=false when the pointer
// is outside the window
func (p *Pointer) Position() (vmath.Vec2, bool) {
	return p.pos, p.hasPos
}

func (p *Pointer) PrimaryHeld() bool {
	return p.primaryHeld
}

func (p *Pointer) PrimaryJustPressed() bool {
	return p.primaryJustPressed
}

func (p *Pointer) PrimaryJustReleased() bool {
	return p.primaryJustReleased
}

func (p *Pointer) SecondaryJustPressed() bool {
	return p.secondaryJustPressed
}
