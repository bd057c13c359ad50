package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000
)

// Audio Engine Timing
const (
	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Tone Durations
const (
	ArmToneDuration    = 60 * time.Millisecond
	CancelToneDuration = 80 * time.Millisecond
	DispelToneDuration = 350 * time.Millisecond
	FizzleToneDuration = 150 * time.Millisecond
	SpawnToneDuration  = 200 * time.Millisecond
)

// Ambient Pad
const (
	// HumFrequency is the ambient drone pitch
	HumFrequency = 55.0

	// HumLevel scales the hum relative to the configured volume
	HumLevel = 0.15
)
