package system

import (
	"github.com/sirupsen/logrus"

	"github.com/skelwright/veilcutter/component"
	"github.com/skelwright/veilcutter/engine"
	"github.com/skelwright/veilcutter/event"
	"github.com/skelwright/veilcutter/parameter"
)

// DeathSystem routes removal requests into destruction. Batches arrive
// via events during the dispatch phase and are marked; the sweep in
// Update destroys marked entities before any system queries targets,
// so the target registry always reflects the current frame.
type DeathSystem struct {
	engine.SystemBase

	log *logrus.Logger

	killed int64
}

// NewDeathSystem creates the destruction system
func NewDeathSystem(world *engine.World, log *logrus.Logger) *DeathSystem {
	s := &DeathSystem{
		SystemBase: engine.NewSystemBase(world),
		log:        log,
	}

	s.Init()
	return s
}

// Init resets session state for a new scene
func (s *DeathSystem) Init() {
	s.killed = 0
}

// Name returns system's name
func (s *DeathSystem) Name() string {
	return "death"
}

func (s *DeathSystem) Priority() int {
	return parameter.PriorityDeath
}

func (s *DeathSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventDeathBatch,
		event.EventGameReset,
	}
}

func (s *DeathSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()

	case event.EventDeathBatch:
		p, ok := ev.Payload.(*event.DeathRequestPayload)
		if !ok {
			return
		}
		for _, e := range p.Entities {
			s.Component.Death.Set(e, component.DeathComponent{Frame: ev.Frame})
		}
		event.ReleaseDeathRequest(p)
	}
}

// Update sweeps marked entities out of the world
func (s *DeathSystem) Update() {
	marked := s.Component.Death.Entities()
	if len(marked) == 0 {
		return
	}

	for _, e := range marked {
		s.World.DestroyEntity(e)
		s.killed++
	}

	s.log.WithFields(logrus.Fields{
		"count": len(marked),
		"total": s.killed,
	}).Debug("entities destroyed")
}

// Killed reports the total destroyed this scene
func (s *DeathSystem) Killed() int64 {
	return s.killed
}
