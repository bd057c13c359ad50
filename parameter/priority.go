package parameter

// System Execution Priorities (lower runs first)
const (
	PrioritySpawn  = 10  // Targets exist before anything queries them
	PriorityDeath  = 20  // Prior-frame removals land before dispel tests
	PriorityDispel = 30  // Mode transitions, sampling, closure, enclosure
	PriorityAudio  = 800 // After game logic, consumes sound requests
)
