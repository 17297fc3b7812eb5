package hull

import "math"

// Volume computes the volume enclosed by a closed, consistently outward-
// oriented triangle mesh, as the sum of signed tetrahedron volumes against
// the origin: V = |Σ v1 · (v2 × v3)| / 6.
func Volume(faces []Triangle) float64 {
	var sum float64
	for i := range faces {
		v1 := faces[i].Points[0]
		v2 := faces[i].Points[1]
		v3 := faces[i].Points[2]
		sum += v1.Dot(v2.Cross(v3))
	}
	return math.Abs(sum / 6)
}

// SurfaceArea sums the areas of all faces.
func SurfaceArea(faces []Triangle) float64 {
	var sum float64
	for i := range faces {
		sum += faces[i].Area()
	}
	return sum
}
