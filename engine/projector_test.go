package engine

import (
	"math"
	"testing"

	"github.com/skelwright/veilcutter/vmath"
)

func scaledCamera(scale float64) *CameraResource {
	return &CameraResource{
		Cam: vmath.Camera{
			Position:   vmath.Vec3F{X: 0, Y: 1.7, Z: 5},
			FovY:       math.Pi / 3,
			Near:       0.05,
			ViewportW:  80,
			ViewportH:  24,
			CellAspect: 0.5,
		},
		Scale: scale,
	}
}

func TestWorldToScreenAppliesScale(t *testing.T) {
	p := vmath.Vec3F{X: 1, Y: 2, Z: -5}

	unscaled, ok := scaledCamera(1).WorldToScreen(p)
	if !ok {
		t.Fatal("projection failed")
	}
	doubled, ok := scaledCamera(2).WorldToScreen(p)
	if !ok {
		t.Fatal("projection failed")
	}

	if math.Abs(doubled.X-2*unscaled.X) > 1e-9 || math.Abs(doubled.Y-2*unscaled.Y) > 1e-9 {
		t.Errorf("scale 2 projection = %v, want double of %v", doubled, unscaled)
	}
}

// The scale must cancel across the two projection directions: casting a
// ray through a projected point recovers the original world point
func TestProjectorScaleSymmetry(t *testing.T) {
	for _, scale := range []float64{0.5, 1, 2, 3.7} {
		cam := scaledCamera(scale)
		p := vmath.Vec3F{X: -2, Y: 3, Z: -8}

		screen, ok := cam.WorldToScreen(p)
		if !ok {
			t.Fatalf("scale %v: projection failed", scale)
		}
		ray, ok := cam.ScreenToWorldRay(screen)
		if !ok {
			t.Fatalf("scale %v: ray failed", scale)
		}

		rel := vmath.V3FSub(p, ray.Origin)
		along := vmath.V3FDot(rel, ray.Dir)
		miss := vmath.V3FDist(rel, vmath.V3FScale(ray.Dir, along))
		if along <= 0 || miss > 1e-9 {
			t.Errorf("scale %v: ray misses original point by %v", scale, miss)
		}
	}
}

func TestProjectorRejectsBehindCamera(t *testing.T) {
	cam := scaledCamera(1)
	if _, ok := cam.WorldToScreen(vmath.Vec3F{X: 0, Y: 1.7, Z: 50}); ok {
		t.Error("point behind camera projected")
	}
}

func TestScreenToWorldRayZeroScale(t *testing.T) {
	cam := scaledCamera(0)
	if _, ok := cam.ScreenToWorldRay(vmath.Vec2{X: 40, Y: 12}); ok {
		t.Error("zero scale must not build rays")
	}
}

func TestDispelResourceLifecycle(t *testing.T) {
	d := NewDispelResource()
	if d.Active() {
		t.Error("new session should be dormant")
	}

	d.Mode = DispelArmed
	if !d.Active() {
		t.Error("armed session should be active")
	}

	d.Mode = DispelDrawing
	d.Path = append(d.Path, vmath.Vec2{X: 1, Y: 2})
	d.SampleElapsed = 10

	d.ClearPath()
	if len(d.Path) != 0 || d.Mode != DispelDrawing {
		t.Error("ClearPath must only empty the path")
	}

	d.Path = append(d.Path, vmath.Vec2{X: 1, Y: 2})
	d.Reset()
	if d.Active() || len(d.Path) != 0 || d.SampleElapsed != 0 {
		t.Error("Reset left session state behind")
	}
}

func TestDispelModeString(t *testing.T) {
	cases := map[DispelMode]string{
		DispelDormant:  "dormant",
		DispelArmed:    "armed",
		DispelDrawing:  "drawing",
		DispelMode(99): "unknown",
	}
	for mode, want := range cases {
		if got := mode.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", mode, got, want)
		}
	}
}
