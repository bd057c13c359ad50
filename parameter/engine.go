package parameter

// Game Loop & Engine Timing
const (
	// InputChannelSize bounds the terminal event channel between the
	// poll goroutine and the game loop
	InputChannelSize = 256
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)
