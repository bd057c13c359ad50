package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // Ctrl+C, Ctrl+Q, q
	IntentPauseToggle // ESC
	IntentToggleMute  // m
	IntentResize      // Terminal resize event

	// Camera look
	IntentLookLeft  // h, left arrow
	IntentLookRight // l, right arrow
	IntentLookUp    // k, up arrow
	IntentLookDown  // j, down arrow

	// Pointer
	IntentPointerMove   // Mouse motion (any button state)
	IntentPrimaryDown   // Left button press
	IntentPrimaryUp     // Left button release
	IntentSecondaryDown // Right button press
)

// Intent is a parsed semantic action
type Intent struct {
	Type IntentType

	// Pointer coordinates for pointer intents (cell space)
	X, Y int
}
