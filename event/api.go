package event

import (
	"github.com/skelwright/veilcutter/core"
)

// EmitSound requests a single sound effect
func EmitSound(q *Queue, sound core.SoundType, frame int64) {
	q.Push(GameEvent{
		Type:    EventSoundRequest,
		Payload: &SoundRequestPayload{Sound: sound},
		Frame:   frame,
	})
}

// EmitDeathBatch requests batch destruction using the payload pool
// Caller provides a slice; the helper copies it into a pooled payload
func EmitDeathBatch(q *Queue, entities []core.Entity, frame int64) {
	if len(entities) == 0 {
		return
	}
	p := AcquireDeathRequest()
	p.Entities = append(p.Entities, entities...)
	q.Push(GameEvent{
		Type:    EventDeathBatch,
		Payload: p,
		Frame:   frame,
	})
}

// EmitDispelResolved reports gesture outcome for HUD and logging
func EmitDispelResolved(q *Queue, removed, tested, vertices int, frame int64) {
	q.Push(GameEvent{
		Type:    EventDispelResolved,
		Payload: &DispelResolvedPayload{Removed: removed, Tested: tested, Vertices: vertices},
		Frame:   frame,
	})
}
