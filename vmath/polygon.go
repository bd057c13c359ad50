package vmath

// PointInPolygon runs the even-odd ray-casting test for a point against
// a closed polygon. Vertices are taken in insertion order; the polygon
// is treated as closed between the last and first vertex.
//
// A point exactly on an edge has unspecified parity. The result for such
// a point is still deterministic for identical inputs, which is all the
// gesture mechanic relies on; hand-drawn polygons are never pixel-exact.
func PointInPolygon(point Vec2, polygon []Vec2) bool {
	n := len(polygon)
	if n < 3 {
		return false
	}

	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		pi := polygon[i]
		pj := polygon[j]
		if (pi.Y > point.Y) != (pj.Y > point.Y) &&
			point.X < (pj.X-pi.X)*(point.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// PathLength returns the total polyline length over consecutive vertices
func PathLength(path []Vec2) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += V2Dist(path[i-1], path[i])
	}
	return total
}
