package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/skelwright/veilcutter/engine"
	"github.com/skelwright/veilcutter/event"
)

// HUD draws the status line and tracks the last gesture outcome.
// It is both an engine.System (to receive dispel resolution events)
// and a Renderer; register it with the world and the render list.
type HUD struct {
	engine.SystemBase

	lastOutcome string
	muted       bool
}

// NewHUD creates the status line layer
func NewHUD(world *engine.World) *HUD {
	return &HUD{
		SystemBase: engine.NewSystemBase(world),
	}
}

// Name returns system's name
func (h *HUD) Name() string {
	return "hud"
}

// Priority places the HUD after all gameplay systems
func (h *HUD) Priority() int {
	return 1000
}

func (h *HUD) EventTypes() []event.EventType {
	return []event.EventType{event.EventDispelResolved, event.EventGameReset}
}

func (h *HUD) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		h.lastOutcome = ""
	case event.EventDispelResolved:
		if p, ok := ev.Payload.(*event.DispelResolvedPayload); ok {
			h.lastOutcome = fmt.Sprintf("dispelled %d/%d", p.Removed, p.Tested)
		}
	}
}

// Update is a no-op; the HUD only reacts to events and renders
func (h *HUD) Update() {}

// SetMuted records the mute state for display
func (h *HUD) SetMuted(muted bool) {
	h.muted = muted
}

func (h *HUD) Render(screen tcell.Screen) {
	res := h.Resource
	_, height := screen.Size()
	y := height - 1

	style := tcell.StyleDefault.Foreground(tcell.ColorGray)

	status := fmt.Sprintf("sigil:%s  aberrations:%d", res.Dispel.Mode, h.Component.Aberration.Count())
	if h.lastOutcome != "" {
		status += "  last:" + h.lastOutcome
	}
	if !res.Phase.Playing() {
		status += "  [paused]"
	}
	if h.muted {
		status += "  [muted]"
	}

	putStr(screen, 0, y, style, status)
}
