package parameter

import "time"

// Aberration Spawning
const (
	// SpawnMaxAberrations caps simultaneous live aberrations
	SpawnMaxAberrations = 5

	// SpawnMinDelay / SpawnMaxDelay bound the random respawn timer
	SpawnMinDelay = 5 * time.Second
	SpawnMaxDelay = 10 * time.Second

	// SpawnRetryDelay is used when the cap is reached at timer expiry
	SpawnRetryDelay = 1 * time.Second

	// SpawnMinDistance / SpawnMaxDistance bound spawn range from the
	// camera (world units)
	SpawnMinDistance = 8.0
	SpawnMaxDistance = 18.0

	// SpawnHalfAngle is the max angular offset from the look direction
	// at spawn (radians, ±45°)
	SpawnHalfAngle = 0.7853981633974483

	// SpawnAnimDuration is the materialize scale-in time
	SpawnAnimDuration = 500 * time.Millisecond

	// SpawnGroundOffset lifts aberrations above the ground plane
	SpawnGroundOffset = 1.0
)

// Aberration Presentation
const (
	// AberrationNearDistance / AberrationFarDistance bound the
	// distance-based glyph footprint scaling
	AberrationNearDistance = 5.0
	AberrationFarDistance  = 50.0
)
