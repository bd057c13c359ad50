package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/skelwright/veilcutter/audio"
	"github.com/skelwright/veilcutter/config"
	"github.com/skelwright/veilcutter/core"
	"github.com/skelwright/veilcutter/engine"
	"github.com/skelwright/veilcutter/input"
	"github.com/skelwright/veilcutter/parameter"
	"github.com/skelwright/veilcutter/render"
	"github.com/skelwright/veilcutter/system"
	"github.com/skelwright/veilcutter/vmath"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	defer screen.Fini()

	// Restore the terminal before printing any panic stack
	core.RegisterCrashScreen(screen)
	defer func() {
		core.HandleCrash(recover())
	}()

	g := newGame(screen, cfg, log)
	defer g.shutdown()

	g.run()
}

func newLogger(cfg config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)

	if cfg.LogFile != "" {
		if f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			log.SetOutput(f)
		}
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	return log
}

// game owns the host wiring: terminal, world, systems, renderers
type game struct {
	screen  tcell.Screen
	cfg     config.Config
	log     *logrus.Logger
	world   *engine.World
	router  *engine.Router
	machine *input.Machine
	pointer *input.Pointer
	cursor  *render.Cursor
	hud     *render.HUD
	audioSy *system.AudioSystem
	engine  *audio.Engine

	renderers []render.Renderer
	events    chan tcell.Event
}

func newGame(screen tcell.Screen, cfg config.Config, log *logrus.Logger) *game {
	world := engine.NewWorld()
	res := world.Resources

	g := &game{
		screen:  screen,
		cfg:     cfg,
		log:     log,
		world:   world,
		machine: input.NewMachine(),
		pointer: input.NewPointer(),
		cursor:  render.NewCursor(),
		events:  make(chan tcell.Event, parameter.InputChannelSize),
	}

	// Host collaborators
	res.Pointer = g.pointer
	res.Cursor = g.cursor
	res.Camera.Scale = cfg.CanvasScale
	res.Camera.Cam.FovY = parameter.CameraFovY
	res.Camera.Cam.Near = parameter.CameraNearPlane
	res.Camera.Cam.CellAspect = parameter.CellAspect
	res.Camera.Cam.Position = vmath.Vec3F{X: 0, Y: parameter.CameraEyeHeight, Z: 5}
	if cfg.MaxAberrations > 0 {
		res.Config.MaxAberrations = cfg.MaxAberrations
	}
	g.applySize()

	// Audio is optional; the game runs silent when it fails
	if !cfg.Mute {
		eng := audio.NewEngine(cfg.Volume)
		if err := eng.Start(); err != nil {
			log.WithError(err).Warn("audio unavailable")
		} else {
			g.engine = eng
		}
	}

	// Systems
	var player system.SoundPlayer
	if g.engine != nil {
		player = g.engine
	}
	g.audioSy = system.NewAudioSystem(world, player, log)
	g.hud = render.NewHUD(world)
	world.AddSystem(system.NewSpawnSystem(world, log))
	world.AddSystem(system.NewDeathSystem(world, log))
	world.AddSystem(system.NewDispelSystem(world, log))
	world.AddSystem(g.audioSy)
	world.AddSystem(g.hud)

	g.router = engine.NewRouter(res.Events)
	g.router.RegisterAll(world)

	// Render layers, back to front
	g.renderers = []render.Renderer{
		render.NewSceneRenderer(world),
		render.NewGestureRenderer(world),
		g.cursor,
		g.hud,
	}

	return g
}

// applySize propagates the terminal size into config and camera
func (g *game) applySize() {
	w, h := g.screen.Size()
	res := g.world.Resources
	res.Config.ScreenWidth = w
	res.Config.ScreenHeight = h
	res.Camera.Cam.ViewportW = float64(w) / res.Camera.Scale
	res.Camera.Cam.ViewportH = float64(h) / res.Camera.Scale
}

func (g *game) run() {
	core.Go(g.pollEvents)

	g.log.Info("game started")

	last := time.Now()
	ticker := time.NewTicker(g.cfg.TickInterval())
	defer ticker.Stop()

	var frame int64
	gameTime := last

	res := g.world.Resources
	for res.Phase.Phase != core.PhaseQuitting {
		now := <-ticker.C
		dt := now.Sub(last)
		last = now
		if dt > 250*time.Millisecond {
			dt = 250 * time.Millisecond
		}

		g.pointer.BeginFrame()
		g.drainInput()

		if res.Phase.Playing() {
			gameTime = gameTime.Add(dt)
		}
		frame++
		res.Time.Update(gameTime, now, dt, frame)

		g.router.DispatchAll()
		g.world.Update()

		g.draw()
	}
}

// pollEvents forwards terminal events to the game loop
func (g *game) pollEvents() {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		g.events <- ev
	}
}

// drainInput applies all pending terminal events as intents
func (g *game) drainInput() {
	for {
		select {
		case ev := <-g.events:
			for _, in := range g.machine.Process(ev) {
				g.applyIntent(in)
			}
		default:
			return
		}
	}
}

func (g *game) applyIntent(in input.Intent) {
	res := g.world.Resources

	switch in.Type {
	case input.IntentQuit:
		res.Phase.Phase = core.PhaseQuitting

	case input.IntentPauseToggle:
		switch res.Phase.Phase {
		case core.PhasePlaying:
			res.Phase.Phase = core.PhasePaused
		case core.PhasePaused:
			res.Phase.Phase = core.PhasePlaying
		}
		g.log.WithField("phase", res.Phase.Phase).Info("phase toggled")

	case input.IntentToggleMute:
		g.hud.SetMuted(g.audioSy.ToggleMute())

	case input.IntentResize:
		g.screen.Sync()
		g.applySize()

	case input.IntentLookLeft:
		// Look is captured-cursor only; a free cursor means the gesture
		// mechanic owns the pointer
		if !g.cursor.Free() {
			res.Camera.Cam.Yaw += parameter.CameraYawStep
		}

	case input.IntentLookRight:
		if !g.cursor.Free() {
			res.Camera.Cam.Yaw -= parameter.CameraYawStep
		}

	case input.IntentLookUp:
		if !g.cursor.Free() {
			res.Camera.Cam.Pitch = clampPitch(res.Camera.Cam.Pitch + parameter.CameraPitchStep)
		}

	case input.IntentLookDown:
		if !g.cursor.Free() {
			res.Camera.Cam.Pitch = clampPitch(res.Camera.Cam.Pitch - parameter.CameraPitchStep)
		}

	case input.IntentPointerMove, input.IntentPrimaryDown, input.IntentPrimaryUp, input.IntentSecondaryDown:
		g.pointer.Apply(in)
	}
}

func clampPitch(p float64) float64 {
	if p > parameter.CameraMaxPitch {
		return parameter.CameraMaxPitch
	}
	if p < -parameter.CameraMaxPitch {
		return -parameter.CameraMaxPitch
	}
	return p
}

func (g *game) draw() {
	g.screen.Clear()
	for _, r := range g.renderers {
		r.Render(g.screen)
	}
	g.screen.Show()
}

func (g *game) shutdown() {
	if g.engine != nil {
		g.engine.Stop()
	}
	g.log.Info("game stopped")
}
