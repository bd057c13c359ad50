package component

import "github.com/skelwright/veilcutter/vmath"

// TransformComponent holds an entity's world-space position
type TransformComponent struct {
	Pos vmath.Vec3F
}
