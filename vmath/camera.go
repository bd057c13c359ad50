package vmath

import (
	"math"
)

// Ray is a world-space half-line
type Ray struct {
	Origin Vec3F
	Dir    Vec3F
}

// At evaluates the ray at distance t along its direction
func (r Ray) At(t float64) Vec3F {
	return V3FAdd(r.Origin, V3FScale(r.Dir, t))
}

// Camera is a perspective pinhole camera projecting world space onto a
// viewport of terminal cells. Yaw rotates around the world Y axis, pitch
// around the camera's local X axis; yaw 0 pitch 0 looks down -Z.
//
// CellAspect compensates for non-square terminal cells so a world square
// still reads as a square on screen. It lives here so both projection
// directions use the same value.
type Camera struct {
	Position   Vec3F
	Yaw        float64
	Pitch      float64
	FovY       float64 // Vertical field of view, radians
	Near       float64 // Minimum view depth for projection
	ViewportW  float64 // Viewport size in cells
	ViewportH  float64
	CellAspect float64 // Cell width / height ratio, typically 0.5
}

// Forward returns the unit look direction in world space
func (c *Camera) Forward() Vec3F {
	cp := math.Cos(c.Pitch)
	return Vec3F{
		X: -math.Sin(c.Yaw) * cp,
		Y: math.Sin(c.Pitch),
		Z: -math.Cos(c.Yaw) * cp,
	}
}

// focal returns the projection focal length in cells
func (c *Camera) focal() float64 {
	return (c.ViewportH / 2) / math.Tan(c.FovY/2)
}

// worldToView rotates a world point into view space where the camera
// looks down -Z
func (c *Camera) worldToView(p Vec3F) Vec3F {
	rel := V3FSub(p, c.Position)

	sy, cy := math.Sincos(c.Yaw)
	x1 := rel.X*cy - rel.Z*sy
	y1 := rel.Y
	z1 := rel.X*sy + rel.Z*cy

	sp, cp := math.Sincos(c.Pitch)
	return Vec3F{
		X: x1,
		Y: y1*cp + z1*sp,
		Z: -y1*sp + z1*cp,
	}
}

// viewDirToWorld rotates a view-space direction back into world space.
// Applies the transpose rotations of worldToView in reverse order.
func (c *Camera) viewDirToWorld(d Vec3F) Vec3F {
	sp, cp := math.Sincos(c.Pitch)
	y1 := d.Y*cp - d.Z*sp
	z1 := d.Y*sp + d.Z*cp

	sy, cy := math.Sincos(c.Yaw)
	return Vec3F{
		X: d.X*cy + z1*sy,
		Y: y1,
		Z: -d.X*sy + z1*cy,
	}
}

// WorldToViewport projects a world point to viewport coordinates.
// Returns ok=false when the point is behind the camera or inside the
// near plane; callers treat that as "no projection", never an error.
func (c *Camera) WorldToViewport(p Vec3F) (Vec2, bool) {
	if c.ViewportW <= 0 || c.ViewportH <= 0 {
		return Vec2{}, false
	}

	v := c.worldToView(p)
	depth := -v.Z
	if depth < c.Near {
		return Vec2{}, false
	}

	f := c.focal()
	aspect := c.CellAspect
	if aspect == 0 {
		aspect = 1
	}

	return Vec2{
		X: c.ViewportW/2 + f*(v.X/depth)/aspect,
		Y: c.ViewportH/2 - f*(v.Y/depth),
	}, true
}

// ViewportToWorldRay builds the world-space ray through a viewport point.
// Returns ok=false only when the viewport is degenerate.
func (c *Camera) ViewportToWorldRay(px Vec2) (Ray, bool) {
	if c.ViewportW <= 0 || c.ViewportH <= 0 {
		return Ray{}, false
	}

	f := c.focal()
	aspect := c.CellAspect
	if aspect == 0 {
		aspect = 1
	}

	dir := V3FNormalize(Vec3F{
		X: (px.X - c.ViewportW/2) * aspect / f,
		Y: (c.ViewportH/2 - px.Y) / f,
		Z: -1,
	})

	return Ray{
		Origin: c.Position,
		Dir:    c.viewDirToWorld(dir),
	}, true
}
