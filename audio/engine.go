package audio

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/skelwright/veilcutter/core"
	"github.com/skelwright/veilcutter/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// ErrNotStarted is returned when playback is requested before Start
var ErrNotStarted = errors.New("audio engine not started")

// Engine owns the speaker and a mixer that sound effects are added to.
// Playback failures are non-fatal; the game runs silent without audio
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	hum         *effects.Volume
	volume      float64
	muted       bool
	initialized bool
}

// NewEngine creates an engine with the given linear volume (0.0 to 1.0)
func NewEngine(volume float64) *Engine {
	return &Engine{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Start initializes the speaker and begins mixing
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	// Low ambient pad under the effect tones, running for the session
	if sine, err := generators.SineTone(sampleRate, parameter.HumFrequency); err == nil {
		e.hum = &effects.Volume{
			Streamer: sine,
			Base:     2,
			Volume:   linearToLog(e.volume * parameter.HumLevel),
			Silent:   e.volume <= 0,
		}
		e.mixer.Add(e.hum)
	}

	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Stop silences and detaches all streamers
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	e.hum = nil
	e.initialized = false
}

// Play queues the tone for a sound effect
// Returns an error only when the engine is not running
func (e *Engine) Play(sound core.SoundType) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return ErrNotStarted
	}
	if e.muted {
		return nil
	}

	streamer := e.tone(sound)
	if streamer == nil {
		return nil
	}

	speaker.Lock()
	e.mixer.Add(streamer)
	speaker.Unlock()
	return nil
}

// ToggleMute flips mute and reports the new state
// Mute drops future effect tones and silences the ambient hum
func (e *Engine) ToggleMute() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = !e.muted

	if e.hum != nil {
		speaker.Lock()
		e.hum.Silent = e.muted || e.volume <= 0
		speaker.Unlock()
	}
	return e.muted
}

// IsMuted reports the current mute state
func (e *Engine) IsMuted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}

// tone builds the streamer for a sound effect
func (e *Engine) tone(sound core.SoundType) beep.Streamer {
	switch sound {
	case core.SoundArm:
		return e.take(660, parameter.ArmToneDuration)
	case core.SoundCancel:
		return e.take(220, parameter.CancelToneDuration)
	case core.SoundDispel:
		// Rising two-note resolve
		return beep.Seq(
			e.take(523.25, parameter.DispelToneDuration/2),
			e.take(783.99, parameter.DispelToneDuration/2),
		)
	case core.SoundFizzle:
		return e.take(164.81, parameter.FizzleToneDuration)
	case core.SoundSpawn:
		return e.take(98, parameter.SpawnToneDuration)
	}
	return nil
}

// take builds a volume-adjusted sine burst at the given frequency
func (e *Engine) take(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(d), sine),
		Base:     2,
		Volume:   linearToLog(e.volume),
		Silent:   e.volume <= 0,
	}
}

// linearToLog converts linear volume (0.0 to 1.0) to the log2 offset
// expected by effects.Volume; full volume maps to 0
func linearToLog(vol float64) float64 {
	if vol <= 0 {
		return 0
	}
	return math.Log2(vol)
}
