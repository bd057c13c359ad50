package system

import (
	"math"
	"testing"
	"time"

	"github.com/skelwright/veilcutter/core"
	"github.com/skelwright/veilcutter/engine"
	"github.com/skelwright/veilcutter/event"
	"github.com/skelwright/veilcutter/parameter"
	"github.com/skelwright/veilcutter/vmath"
)

func newSpawnRig(maxAberrations int) (*engine.World, *SpawnSystem) {
	world := engine.NewWorld()
	world.Resources.Config.MaxAberrations = maxAberrations
	world.Resources.Camera.Cam.Position = vmath.Vec3F{X: 0, Y: parameter.CameraEyeHeight, Z: 5}
	sys := NewSpawnSystem(world, testLogger())
	return world, sys
}

func spawnTick(world *engine.World, sys *SpawnSystem, dt time.Duration) {
	frame := world.Resources.Time.FrameNumber + 1
	now := time.Unix(0, frame*int64(dt))
	world.Resources.Time.Update(now, now, dt, frame)
	sys.Update()
}

func TestSpawn_RespectsCap(t *testing.T) {
	world, sys := newSpawnRig(2)

	for i := 0; i < 10; i++ {
		sys.delay = 0
		spawnTick(world, sys, time.Millisecond)
	}

	if got := world.Components.Aberration.Count(); got != 2 {
		t.Errorf("live aberrations = %d, want cap of 2", got)
	}
	if sys.delay != parameter.SpawnRetryDelay {
		t.Errorf("delay at cap = %v, want retry delay", sys.delay)
	}
}

func TestSpawn_PlacementRing(t *testing.T) {
	world, sys := newSpawnRig(100)
	world.Resources.Camera.Cam.Yaw = 0.8

	for i := 0; i < 50; i++ {
		sys.delay = 0
		spawnTick(world, sys, time.Millisecond)
	}

	camPos := world.Resources.Camera.Cam.Position
	for _, e := range world.Components.Aberration.Entities() {
		tf, ok := world.Components.Transform.Get(e)
		if !ok {
			t.Fatalf("aberration %d has no transform", e)
		}

		if tf.Pos.Y != parameter.SpawnGroundOffset {
			t.Errorf("spawn height = %v, want %v", tf.Pos.Y, parameter.SpawnGroundOffset)
		}

		dx := tf.Pos.X - camPos.X
		dz := tf.Pos.Z - camPos.Z
		dist := math.Hypot(dx, dz)
		if dist < parameter.SpawnMinDistance || dist > parameter.SpawnMaxDistance {
			t.Errorf("spawn distance = %v, want within [%v,%v]",
				dist, parameter.SpawnMinDistance, parameter.SpawnMaxDistance)
		}

		// Bearing must stay within the half-angle of the look direction
		bearing := math.Atan2(-dx, -dz)
		off := math.Abs(bearing - 0.8)
		if off > parameter.SpawnHalfAngle+1e-9 {
			t.Errorf("spawn bearing off look dir by %v, want <= %v", off, parameter.SpawnHalfAngle)
		}
	}
}

func TestSpawn_EmitsSoundAndAnimation(t *testing.T) {
	world, sys := newSpawnRig(5)

	sys.delay = 0
	spawnTick(world, sys, time.Millisecond)

	entities := world.Components.Aberration.Entities()
	if len(entities) != 1 {
		t.Fatalf("spawned %d aberrations, want 1", len(entities))
	}
	ab, _ := world.Components.Aberration.Get(entities[0])
	if ab.SpawnAnim <= 0 {
		t.Error("new aberration has no materialize animation")
	}
	if ab.Glyph == 0 || ab.Size != 2.0 {
		t.Errorf("aberration appearance = %+v", ab)
	}

	var sounds []core.SoundType
	for _, ev := range world.Resources.Events.Consume() {
		if p, ok := ev.Payload.(*event.SoundRequestPayload); ok {
			sounds = append(sounds, p.Sound)
		}
	}
	if len(sounds) != 1 || sounds[0] != core.SoundSpawn {
		t.Errorf("spawn sounds = %v, want [spawn]", sounds)
	}
}

func TestSpawn_AnimationCountsDownAndClamps(t *testing.T) {
	world, sys := newSpawnRig(5)

	sys.delay = 0
	spawnTick(world, sys, time.Millisecond)
	e := world.Components.Aberration.Entities()[0]

	// Long enough to overshoot; the countdown clamps at zero
	sys.delay = time.Hour
	spawnTick(world, sys, parameter.SpawnAnimDuration/2)
	ab, _ := world.Components.Aberration.Get(e)
	if ab.SpawnAnim <= 0 || ab.SpawnAnim >= parameter.SpawnAnimDuration {
		t.Errorf("mid-animation remaining = %v", ab.SpawnAnim)
	}

	spawnTick(world, sys, parameter.SpawnAnimDuration)
	ab, _ = world.Components.Aberration.Get(e)
	if ab.SpawnAnim != 0 {
		t.Errorf("animation remaining = %v, want 0", ab.SpawnAnim)
	}
}

func TestSpawn_PausedHoldsTimer(t *testing.T) {
	world, sys := newSpawnRig(5)
	world.Resources.Phase.Phase = core.PhasePaused

	sys.delay = 0
	spawnTick(world, sys, time.Millisecond)
	if world.Components.Aberration.Count() != 0 {
		t.Error("spawned while paused")
	}
}

func TestRandomSpawnDelayRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		d := randomSpawnDelay()
		if d < parameter.SpawnMinDelay || d >= parameter.SpawnMaxDelay {
			t.Fatalf("delay %v outside [%v,%v)", d, parameter.SpawnMinDelay, parameter.SpawnMaxDelay)
		}
	}
}
