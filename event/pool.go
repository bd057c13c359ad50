package event

import (
	"sync"

	"github.com/skelwright/veilcutter/core"
)

var deathRequestPool = sync.Pool{
	New: func() any {
		return &DeathRequestPayload{
			Entities: make([]core.Entity, 0, 16),
		}
	},
}

// AcquireDeathRequest returns a pooled payload with an empty batch
func AcquireDeathRequest() *DeathRequestPayload {
	p := deathRequestPool.Get().(*DeathRequestPayload)
	p.Entities = p.Entities[:0]
	return p
}

// ReleaseDeathRequest returns a payload to the pool
// Callers must not retain the payload or its slice afterwards
func ReleaseDeathRequest(p *DeathRequestPayload) {
	if p == nil {
		return
	}
	p.Entities = p.Entities[:0]
	deathRequestPool.Put(p)
}
