package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/skelwright/veilcutter/engine"
	"github.com/skelwright/veilcutter/parameter"
	"github.com/skelwright/veilcutter/vmath"
)

// GestureRenderer draws the sigil trail while the mechanic is active:
// the sampled path, a closure indicator at the start point, and the
// free cursor marker.
//
// Each 2-D path point is lifted into world space along its camera ray
// at a fixed depth, then projected back to the screen. For a static
// camera this is an identity round trip; once the camera moves the
// trail hangs in the world the way the original's feedback did, and
// both projector directions stay exercised against one scale constant.
type GestureRenderer struct {
	world *engine.World
}

// NewGestureRenderer creates the gesture feedback layer
func NewGestureRenderer(world *engine.World) *GestureRenderer {
	return &GestureRenderer{world: world}
}

func (r *GestureRenderer) Render(screen tcell.Screen) {
	res := r.world.Resources
	d := res.Dispel
	if !d.Active() {
		return
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	for i, p := range d.Path {
		cell, ok := r.liftAndProject(p)
		if !ok {
			// Failed feedback projection: point simply omitted
			continue
		}
		glyph := '·'
		if i == 0 {
			// Closure target indicator at the path start
			glyph = '◌'
		}
		screen.SetContent(int(cell.X), int(cell.Y), glyph, nil, style)
	}

	// Free cursor marker at the live pointer position
	if res.Pointer != nil {
		if pos, ok := res.Pointer.Position(); ok {
			if cell, ok := r.liftAndProject(pos); ok {
				screen.SetContent(int(cell.X), int(cell.Y), '✛', nil, style.Bold(true))
			}
		}
	}
}

// liftAndProject runs a screen point out to the trail depth and back
func (r *GestureRenderer) liftAndProject(p vmath.Vec2) (vmath.Vec2, bool) {
	cam := r.world.Resources.Camera

	ray, ok := cam.ScreenToWorldRay(p)
	if !ok {
		return vmath.Vec2{}, false
	}
	return cam.WorldToScreen(ray.At(parameter.DispelTrailDepth))
}
