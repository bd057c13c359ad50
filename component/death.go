package component

// DeathComponent marks an entity for destruction at the next death sweep
type DeathComponent struct {
	// Frame records when the mark was applied, for diagnostics
	Frame int64
}
