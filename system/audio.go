package system

import (
	"github.com/sirupsen/logrus"

	"github.com/skelwright/veilcutter/core"
	"github.com/skelwright/veilcutter/engine"
	"github.com/skelwright/veilcutter/event"
	"github.com/skelwright/veilcutter/parameter"
)

// SoundPlayer is the minimal audio interface consumed by the system
// Implemented by audio.Engine; faked in tests
type SoundPlayer interface {
	Play(core.SoundType) error
	ToggleMute() bool
}

// AudioSystem consumes sound requests and forwards them to the player
type AudioSystem struct {
	engine.SystemBase

	log    *logrus.Logger
	player SoundPlayer
}

// NewAudioSystem creates the audio routing system
// A nil player disables playback without disabling the system
func NewAudioSystem(world *engine.World, player SoundPlayer, log *logrus.Logger) *AudioSystem {
	return &AudioSystem{
		SystemBase: engine.NewSystemBase(world),
		log:        log,
		player:     player,
	}
}

// Name returns system's name
func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSoundRequest}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if s.player == nil {
		return
	}

	p, ok := ev.Payload.(*event.SoundRequestPayload)
	if !ok {
		return
	}

	if err := s.player.Play(p.Sound); err != nil {
		s.log.WithError(err).Debug("sound dropped")
	}
}

// Update is a no-op; the system is event-driven
func (s *AudioSystem) Update() {}

// ToggleMute forwards the host mute toggle
func (s *AudioSystem) ToggleMute() bool {
	if s.player == nil {
		return true
	}
	return s.player.ToggleMute()
}
