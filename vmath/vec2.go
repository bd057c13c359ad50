package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector in screen/viewport space
type Vec2 struct {
	X, Y float64
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Dist returns the Euclidean distance between two points
func V2Dist(a, b Vec2) float64 {
	return V2Mag(V2Sub(a, b))
}

// V2DistSq avoids the sqrt for threshold comparisons
func V2DistSq(a, b Vec2) float64 {
	return V2MagSq(V2Sub(a, b))
}

func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}
