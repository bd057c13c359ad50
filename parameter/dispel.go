package parameter

import "time"

// Sigil Gesture Sampling
const (
	// DispelSegmentInterval is the minimum delay between appending points
	// to the current polygon
	DispelSegmentInterval = 50 * time.Millisecond

	// DispelMinPointDistance is the minimum screen-space distance between
	// consecutive sampled points, preventing over-sampling when the
	// pointer is held still
	DispelMinPointDistance = 5.0

	// DispelMinPoints is the minimum polygon size before closure is
	// attempted; prevents accidental clicks from dispelling anything
	DispelMinPoints = 10
)

// Sigil Closure & Feedback
const (
	// DispelClosureDistance is the maximum distance from the starting
	// point for the polygon to be considered closed (screen units)
	DispelClosureDistance = 30.0

	// DispelTrailDepth is how far in front of the camera trail points are
	// placed when the 2D path is lifted into world space (world units)
	DispelTrailDepth = 0.5
)
