package engine

import (
	"github.com/skelwright/veilcutter/vmath"
)

// CameraResource wraps the active camera and the canvas scale factor
// reconciling logical input coordinates with the camera's viewport.
// The scale is applied here, symmetrically, in both projection
// directions; nothing else in the codebase may touch it.
type CameraResource struct {
	Cam   vmath.Camera
	Scale float64
}

// WorldToScreen projects a world point to logical screen coordinates.
// Returns ok=false when the point is behind the camera; callers treat
// that as "no projection", never as an error.
func (c *CameraResource) WorldToScreen(p vmath.Vec3F) (vmath.Vec2, bool) {
	v, ok := c.Cam.WorldToViewport(p)
	if !ok {
		return vmath.Vec2{}, false
	}
	return vmath.V2Scale(v, c.Scale), true
}

// ScreenToWorldRay builds the world ray through a logical screen point
func (c *CameraResource) ScreenToWorldRay(px vmath.Vec2) (vmath.Ray, bool) {
	if c.Scale == 0 {
		return vmath.Ray{}, false
	}
	return c.Cam.ViewportToWorldRay(vmath.V2Scale(px, 1/c.Scale))
}
