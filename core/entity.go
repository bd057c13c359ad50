package core

// Entity is a unique identifier for a world entity
// Zero is reserved as the invalid/absent entity
type Entity uint64

// EntityNone is the zero entity used for "no entity" results
const EntityNone Entity = 0
