package system

import (
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/skelwright/veilcutter/component"
	"github.com/skelwright/veilcutter/core"
	"github.com/skelwright/veilcutter/engine"
	"github.com/skelwright/veilcutter/event"
	"github.com/skelwright/veilcutter/parameter"
	"github.com/skelwright/veilcutter/vmath"
)

// aberrationGlyphs are the runes an aberration can materialize as
var aberrationGlyphs = []rune("◈◉▓░╬Ψ")

// SpawnSystem maintains the live aberration population: a random-delay
// timer spawns one at a time in front of the camera, up to a cap, and
// ticks the materialize animation on recent spawns.
type SpawnSystem struct {
	engine.SystemBase

	log *logrus.Logger

	delay time.Duration // Remaining time until the next spawn attempt
}

// NewSpawnSystem creates the aberration spawner
func NewSpawnSystem(world *engine.World, log *logrus.Logger) *SpawnSystem {
	s := &SpawnSystem{
		SystemBase: engine.NewSystemBase(world),
		log:        log,
	}

	s.Init()
	return s
}

// Init resets the spawn timer for a new scene
func (s *SpawnSystem) Init() {
	s.delay = randomSpawnDelay()
}

// Name returns system's name
func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *SpawnSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *SpawnSystem) Update() {
	if !s.Resource.Phase.Playing() {
		return
	}

	dt := s.Resource.Time.DeltaTime
	s.tickSpawnAnimations(dt)

	s.delay -= dt
	if s.delay > 0 {
		return
	}

	if s.Component.Aberration.Count() >= s.Resource.Config.MaxAberrations {
		s.delay = parameter.SpawnRetryDelay
		return
	}

	s.spawnOne()
	s.delay = randomSpawnDelay()
}

// spawnOne places a new aberration 8-18 units from the camera, within
// the spawn half-angle of the look direction
func (s *SpawnSystem) spawnOne() {
	cam := &s.Resource.Camera.Cam

	yaw := cam.Yaw + (rand.Float64()*2-1)*parameter.SpawnHalfAngle
	dist := parameter.SpawnMinDistance + rand.Float64()*(parameter.SpawnMaxDistance-parameter.SpawnMinDistance)

	sin, cos := math.Sincos(yaw)
	pos := vmath.Vec3F{
		X: cam.Position.X - sin*dist,
		Y: parameter.SpawnGroundOffset,
		Z: cam.Position.Z - cos*dist,
	}

	e := s.World.CreateEntity()
	s.Component.Transform.Set(e, component.TransformComponent{Pos: pos})
	s.Component.Aberration.Set(e, component.AberrationComponent{
		Size:      2.0,
		Glyph:     aberrationGlyphs[rand.Intn(len(aberrationGlyphs))],
		SpawnAnim: parameter.SpawnAnimDuration,
	})

	event.EmitSound(s.Resource.Events, core.SoundSpawn, s.Resource.Time.FrameNumber)
	s.log.WithFields(logrus.Fields{
		"entity": e,
		"x":      pos.X,
		"z":      pos.Z,
	}).Debug("aberration spawned")
}

// tickSpawnAnimations counts down the materialize scale-in
func (s *SpawnSystem) tickSpawnAnimations(dt time.Duration) {
	for _, e := range s.Component.Aberration.Entities() {
		ab, ok := s.Component.Aberration.Get(e)
		if !ok || ab.SpawnAnim <= 0 {
			continue
		}
		ab.SpawnAnim -= dt
		if ab.SpawnAnim < 0 {
			ab.SpawnAnim = 0
		}
		s.Component.Aberration.Set(e, ab)
	}
}

func randomSpawnDelay() time.Duration {
	spread := parameter.SpawnMaxDelay - parameter.SpawnMinDelay
	return parameter.SpawnMinDelay + time.Duration(rand.Int63n(int64(spread)))
}
