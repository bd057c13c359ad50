package component

import "time"

// AberrationComponent marks a live aberration target
type AberrationComponent struct {
	// Size is the world-space footprint used for presentation scaling
	Size float64

	// Glyph is the terminal rune the aberration renders as
	Glyph rune

	// SpawnAnim counts down the materialize scale-in; zero once settled
	SpawnAnim time.Duration
}
