package system

import (
	"github.com/sirupsen/logrus"

	"github.com/skelwright/veilcutter/core"
	"github.com/skelwright/veilcutter/engine"
	"github.com/skelwright/veilcutter/event"
	"github.com/skelwright/veilcutter/parameter"
	"github.com/skelwright/veilcutter/vmath"
)

// DispelSystem runs the sigil gesture mechanic: arming, path sampling,
// closure detection, and the enclosure test that removes aberrations.
//
// Per-tick order: cancel check, mode transitions, sampling, closure.
// Cancel is checked unconditionally first so it always beats a closure
// that would fire in the same tick.
type DispelSystem struct {
	engine.SystemBase

	log *logrus.Logger

	// Scratch buffer reused across closures
	doomed []core.Entity
}

// NewDispelSystem creates the gesture system
func NewDispelSystem(world *engine.World, log *logrus.Logger) *DispelSystem {
	s := &DispelSystem{
		SystemBase: engine.NewSystemBase(world),
		log:        log,
		doomed:     make([]core.Entity, 0, parameter.SpawnMaxAberrations),
	}

	s.Init()
	return s
}

// Init resets session state for a new scene
func (s *DispelSystem) Init() {
	s.Resource.Dispel.Reset()
	s.setCursorFree(false)
}

// Name returns system's name
func (s *DispelSystem) Name() string {
	return "dispel"
}

func (s *DispelSystem) Priority() int {
	return parameter.PriorityDispel
}

func (s *DispelSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *DispelSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *DispelSystem) Update() {
	if !s.Resource.Phase.Playing() {
		return
	}

	d := s.Resource.Dispel
	ptr := s.Resource.Pointer
	if ptr == nil {
		return
	}

	// Cancel beats closure when both would fire this tick
	if d.Active() && ptr.SecondaryJustPressed() {
		s.deactivate(core.SoundCancel)
		return
	}

	s.handleActivation(d)
	s.handleRelease(d)
	s.samplePath(d)
	s.checkClosure(d)
}

// handleActivation advances Dormant->Armed->Drawing on primary presses.
// A press while Drawing with an empty path starts a fresh stroke.
func (s *DispelSystem) handleActivation(d *engine.DispelResource) {
	ptr := s.Resource.Pointer
	if !ptr.PrimaryJustPressed() {
		return
	}

	switch d.Mode {
	case engine.DispelDormant:
		d.Mode = engine.DispelArmed
		d.ClearPath()
		s.setCursorFree(true)
		event.EmitSound(s.Resource.Events, core.SoundArm, s.Resource.Time.FrameNumber)
		s.log.WithField("mode", d.Mode).Debug("dispel armed")

	case engine.DispelArmed:
		d.Mode = engine.DispelDrawing
		s.beginStroke(d)

	case engine.DispelDrawing:
		// Fresh stroke after a mid-gesture release
		if len(d.Path) == 0 {
			s.beginStroke(d)
		}
	}
}

// beginStroke clears the path, resets the sample timer, and seeds the
// path with the current pointer position when one is known
func (s *DispelSystem) beginStroke(d *engine.DispelResource) {
	d.ClearPath()
	d.SampleElapsed = 0
	if pos, ok := s.Resource.Pointer.Position(); ok {
		d.Path = append(d.Path, pos)
	}
}

// handleRelease clears the path on primary release while drawing.
// The session stays in Drawing, awaiting a fresh stroke; only cancel or
// closure leaves the mechanic.
func (s *DispelSystem) handleRelease(d *engine.DispelResource) {
	if d.Mode == engine.DispelDrawing && s.Resource.Pointer.PrimaryJustReleased() {
		d.ClearPath()
		d.SampleElapsed = 0
	}
}

// samplePath appends a time-gated, distance-deduplicated point while
// the stroke is held. Missing pointer position makes the tick a no-op.
func (s *DispelSystem) samplePath(d *engine.DispelResource) {
	ptr := s.Resource.Pointer
	if d.Mode != engine.DispelDrawing || !ptr.PrimaryHeld() {
		return
	}

	d.SampleElapsed += s.Resource.Time.DeltaTime
	if d.SampleElapsed < parameter.DispelSegmentInterval {
		return
	}
	d.SampleElapsed -= parameter.DispelSegmentInterval

	pos, ok := ptr.Position()
	if !ok {
		return
	}

	if n := len(d.Path); n == 0 || vmath.V2Dist(d.Path[n-1], pos) > parameter.DispelMinPointDistance {
		d.Path = append(d.Path, pos)
	}
}

// checkClosure tests the live pointer position against the path start
// every tick, independent of the sampling cadence, so detection latency
// is one frame. On closure the live position becomes the final vertex
// and the enclosure test runs in the same tick.
func (s *DispelSystem) checkClosure(d *engine.DispelResource) {
	if d.Mode != engine.DispelDrawing || len(d.Path) < parameter.DispelMinPoints {
		return
	}

	pos, ok := s.Resource.Pointer.Position()
	if !ok {
		return
	}

	if vmath.V2Dist(pos, d.Path[0]) > parameter.DispelClosureDistance {
		return
	}

	// Loop closed; append the final vertex to complete the polygon
	d.Path = append(d.Path, pos)

	removed, tested := s.dispelEnclosed(d.Path)
	event.EmitDispelResolved(s.Resource.Events, removed, tested, len(d.Path), s.Resource.Time.FrameNumber)
	s.log.WithFields(logrus.Fields{
		"removed":  removed,
		"tested":   tested,
		"vertices": len(d.Path),
	}).Info("dispel resolved")

	if removed > 0 {
		s.deactivate(core.SoundDispel)
	} else {
		s.deactivate(core.SoundFizzle)
	}
}

// dispelEnclosed projects every live aberration to screen space and
// emits a removal batch for those inside the closed polygon. Targets
// that fail projection are skipped, never treated as an error.
func (s *DispelSystem) dispelEnclosed(polygon []vmath.Vec2) (removed, tested int) {
	cam := s.Resource.Camera
	s.doomed = s.doomed[:0]

	for _, e := range s.Component.Aberration.Entities() {
		tf, ok := s.Component.Transform.Get(e)
		if !ok {
			continue
		}
		tested++

		screen, ok := cam.WorldToScreen(tf.Pos)
		if !ok {
			continue
		}
		if vmath.PointInPolygon(screen, polygon) {
			s.doomed = append(s.doomed, e)
		}
	}

	event.EmitDeathBatch(s.Resource.Events, s.doomed, s.Resource.Time.FrameNumber)
	return len(s.doomed), tested
}

// deactivate exits the mechanic: session reset, cursor recaptured
func (s *DispelSystem) deactivate(sound core.SoundType) {
	s.Resource.Dispel.Reset()
	s.setCursorFree(false)
	event.EmitSound(s.Resource.Events, sound, s.Resource.Time.FrameNumber)
}

func (s *DispelSystem) setCursorFree(free bool) {
	if s.Resource.Cursor != nil {
		s.Resource.Cursor.SetFree(free)
	}
}
