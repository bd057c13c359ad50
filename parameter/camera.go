package parameter

import "math"

// Camera Projection
const (
	// CameraFovY is the vertical field of view in radians
	CameraFovY = math.Pi / 3

	// CameraNearPlane is the minimum view-space depth for a point to
	// project; anything closer (or behind) fails projection
	CameraNearPlane = 0.05

	// CameraEyeHeight places the camera above the ground plane
	CameraEyeHeight = 1.7

	// CameraMaxPitch clamps look up/down just short of vertical
	CameraMaxPitch = math.Pi/2 - 0.01

	// CameraYawStep is the keyboard look rotation per press (radians)
	CameraYawStep = math.Pi / 24

	// CameraPitchStep is the keyboard look tilt per press (radians)
	CameraPitchStep = math.Pi / 36
)

// Terminal Cell Geometry
const (
	// CellAspect compensates for terminal cells being roughly twice as
	// tall as wide; applied inside the camera so callers never touch it
	CellAspect = 0.5

	// DefaultCanvasScale is the logical-input to viewport coordinate
	// ratio when not overridden by config; the projector applies it
	// symmetrically in both directions
	DefaultCanvasScale = 1.0
)
