package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundArm     SoundType = iota // Sigil mode armed, cursor freed
	SoundCancel                   // Gesture cancelled
	SoundDispel                   // Closure completed, targets removed
	SoundFizzle                   // Closure completed, nothing enclosed
	SoundSpawn                    // Aberration materialized
	SoundTypeCount
)
