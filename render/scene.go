package render

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/skelwright/veilcutter/engine"
	"github.com/skelwright/veilcutter/parameter"
	"github.com/skelwright/veilcutter/vmath"
)

// SceneRenderer draws live aberrations through the world-to-screen
// projection. Footprint shrinks with distance and grows in during the
// materialize animation.
type SceneRenderer struct {
	world *engine.World
}

// NewSceneRenderer creates the aberration layer
func NewSceneRenderer(world *engine.World) *SceneRenderer {
	return &SceneRenderer{world: world}
}

func (r *SceneRenderer) Render(screen tcell.Screen) {
	res := r.world.Resources
	cam := res.Camera

	for _, e := range r.world.Components.Aberration.Entities() {
		tf, ok := r.world.Components.Transform.Get(e)
		if !ok {
			continue
		}
		ab, _ := r.world.Components.Aberration.Get(e)

		center, ok := cam.WorldToScreen(tf.Pos)
		if !ok {
			// Behind the camera; nothing to draw
			continue
		}

		dist := vmath.V3FDist(tf.Pos, cam.Cam.Position)
		half := footprint(&cam.Cam, dist, ab.Size, ab.SpawnAnim)
		style := tcell.StyleDefault.Foreground(tcell.ColorPurple)
		if ab.SpawnAnim > 0 {
			style = style.Dim(true)
		}

		cx, cy := int(center.X), int(center.Y)
		for dy := -half; dy <= half; dy++ {
			// Keep the silhouette roughly square on screen
			w := int(float64(half-abs(dy)) / parameter.CellAspect)
			for dx := -w; dx <= w; dx++ {
				screen.SetContent(cx+dx, cy+dy, ab.Glyph, nil, style)
			}
		}
		screen.SetContent(cx, cy, ab.Glyph, nil, style.Bold(true))
	}
}

// footprint returns the half-height in cells for an aberration at the
// given distance, scaled by perspective and the spawn animation
func footprint(cam *vmath.Camera, dist, size float64, anim time.Duration) int {
	if dist < parameter.AberrationNearDistance {
		dist = parameter.AberrationNearDistance
	}
	if dist > parameter.AberrationFarDistance {
		dist = parameter.AberrationFarDistance
	}

	focal := (cam.ViewportH / 2) / math.Tan(cam.FovY/2)
	half := size * focal / dist / 2

	// Materialize scale-in
	if anim > 0 {
		progress := 1 - anim.Seconds()/parameter.SpawnAnimDuration.Seconds()
		if progress < 0 {
			progress = 0
		}
		half *= progress
	}

	if half < 0 {
		half = 0
	}
	return int(half)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
