package vmath

import (
	"math"
	"testing"
)

func testCamera() Camera {
	return Camera{
		Position:   Vec3F{X: 0, Y: 1.7, Z: 5},
		FovY:       math.Pi / 3,
		Near:       0.05,
		ViewportW:  80,
		ViewportH:  24,
		CellAspect: 0.5,
	}
}

func TestCameraForward(t *testing.T) {
	c := testCamera()

	fwd := c.Forward()
	if !closeV3(fwd, Vec3F{0, 0, -1}, 1e-12) {
		t.Errorf("yaw 0 pitch 0 forward = %v, want (0,0,-1)", fwd)
	}

	c.Yaw = math.Pi / 2
	fwd = c.Forward()
	if !closeV3(fwd, Vec3F{-1, 0, 0}, 1e-12) {
		t.Errorf("yaw pi/2 forward = %v, want (-1,0,0)", fwd)
	}

	c.Yaw = 0
	c.Pitch = math.Pi / 2
	fwd = c.Forward()
	if !closeV3(fwd, Vec3F{0, 1, 0}, 1e-12) {
		t.Errorf("pitch pi/2 forward = %v, want (0,1,0)", fwd)
	}
}

func TestWorldToViewport_CenterAhead(t *testing.T) {
	c := testCamera()

	// A point straight along the look axis lands at the viewport center
	px, ok := c.WorldToViewport(Vec3F{X: 0, Y: 1.7, Z: -5})
	if !ok {
		t.Fatal("point ahead of camera failed to project")
	}
	if math.Abs(px.X-40) > 1e-9 || math.Abs(px.Y-12) > 1e-9 {
		t.Errorf("center projection = %v, want (40,12)", px)
	}
}

func TestWorldToViewport_BehindCamera(t *testing.T) {
	c := testCamera()

	if _, ok := c.WorldToViewport(Vec3F{X: 0, Y: 1.7, Z: 20}); ok {
		t.Error("point behind the camera must not project")
	}
	// Inside the near plane counts as behind
	if _, ok := c.WorldToViewport(Vec3F{X: 0, Y: 1.7, Z: 5 - 0.01}); ok {
		t.Error("point inside the near plane must not project")
	}
}

func TestWorldToViewport_DegenerateViewport(t *testing.T) {
	c := testCamera()
	c.ViewportW = 0
	if _, ok := c.WorldToViewport(Vec3F{Z: -5}); ok {
		t.Error("zero-width viewport must not project")
	}
	if _, ok := c.ViewportToWorldRay(Vec2{X: 40, Y: 12}); ok {
		t.Error("zero-width viewport must not build rays")
	}
}

func TestWorldToViewport_CellAspectWidensX(t *testing.T) {
	c := testCamera()

	p := Vec3F{X: 1, Y: 1.7, Z: -5}
	narrow, ok := c.WorldToViewport(p)
	if !ok {
		t.Fatal("projection failed")
	}

	c.CellAspect = 1
	squareCells, ok := c.WorldToViewport(p)
	if !ok {
		t.Fatal("projection failed")
	}

	// Half-width cells double the horizontal offset from center
	gotRatio := (narrow.X - 40) / (squareCells.X - 40)
	if math.Abs(gotRatio-2) > 1e-9 {
		t.Errorf("aspect 0.5 x-offset ratio = %v, want 2", gotRatio)
	}
	if narrow.Y != squareCells.Y {
		t.Error("cell aspect must not affect the vertical axis")
	}
}

// Projecting a point and casting a ray back through the resulting pixel
// must recover a ray that passes through the original point
func TestProjectionRoundTrip(t *testing.T) {
	cams := []Camera{
		testCamera(),
		{Position: Vec3F{X: 3, Y: 2, Z: -1}, Yaw: 0.7, Pitch: -0.3,
			FovY: math.Pi / 3, Near: 0.05, ViewportW: 80, ViewportH: 24, CellAspect: 0.5},
		{Position: Vec3F{X: -2, Y: 0.5, Z: 8}, Yaw: -1.9, Pitch: 0.4,
			FovY: math.Pi / 4, Near: 0.05, ViewportW: 120, ViewportH: 40, CellAspect: 0.5},
	}

	for ci, c := range cams {
		// Points scattered ahead of each camera
		for i := 0; i < 20; i++ {
			fwd := c.Forward()
			p := V3FAdd(c.Position, V3FScale(fwd, 4+float64(i)))
			p.X += math.Sin(float64(i) * 1.3)
			p.Y += math.Cos(float64(i) * 0.7)

			px, ok := c.WorldToViewport(p)
			if !ok {
				t.Fatalf("cam %d point %d failed to project", ci, i)
			}
			ray, ok := c.ViewportToWorldRay(px)
			if !ok {
				t.Fatalf("cam %d point %d failed to build ray", ci, i)
			}

			rel := V3FSub(p, ray.Origin)
			along := V3FDot(rel, ray.Dir)
			if along <= 0 {
				t.Fatalf("cam %d point %d behind recovered ray", ci, i)
			}
			miss := V3FDist(rel, V3FScale(ray.Dir, along))
			if miss > 1e-9 {
				t.Errorf("cam %d point %d ray misses by %v", ci, i, miss)
			}
		}
	}
}

func TestViewportToWorldRay_CenterMatchesForward(t *testing.T) {
	c := testCamera()
	c.Yaw = 0.9
	c.Pitch = -0.2

	ray, ok := c.ViewportToWorldRay(Vec2{X: 40, Y: 12})
	if !ok {
		t.Fatal("ray through center failed")
	}
	if !closeV3(ray.Dir, c.Forward(), 1e-12) {
		t.Errorf("center ray dir = %v, want forward %v", ray.Dir, c.Forward())
	}
	if ray.Origin != c.Position {
		t.Errorf("ray origin = %v, want camera position", ray.Origin)
	}
}

func TestRayAt(t *testing.T) {
	r := Ray{Origin: Vec3F{X: 1, Y: 2, Z: 3}, Dir: Vec3F{X: 0, Y: 0, Z: -1}}
	got := r.At(2.5)
	want := Vec3F{X: 1, Y: 2, Z: 0.5}
	if !closeV3(got, want, 1e-12) {
		t.Errorf("At(2.5) = %v, want %v", got, want)
	}
}

func closeV3(a, b Vec3F, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}
