package engine

import (
	"github.com/skelwright/veilcutter/component"
	"github.com/skelwright/veilcutter/core"
)

// ComponentStore provides cached pointers to typed component stores
// Initialized once per system to eliminate runtime lookups
type ComponentStore struct {
	Transform  *Store[component.TransformComponent]
	Aberration *Store[component.AberrationComponent]
	Death      *Store[component.DeathComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Transform:  NewStore[component.TransformComponent](),
		Aberration: NewStore[component.AberrationComponent](),
		Death:      NewStore[component.DeathComponent](),
	}
}

// RemoveEntity deletes an entity from every typed store
func (cs *ComponentStore) RemoveEntity(e core.Entity) {
	cs.Transform.Remove(e)
	cs.Aberration.Remove(e)
	cs.Death.Remove(e)
}

// Clear empties every typed store
func (cs *ComponentStore) Clear() {
	cs.Transform.Clear()
	cs.Aberration.Clear()
	cs.Death.Clear()
}
