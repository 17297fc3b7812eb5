package hull

import "github.com/go-gl/mathgl/mgl64"

// Bounds is an axis-aligned bounding box over continuous coordinates.
type Bounds struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// BoundsOf computes the bounding box of a triangle mesh. The zero Bounds
// is returned for an empty mesh.
func BoundsOf(faces []Triangle) Bounds {
	if len(faces) == 0 {
		return Bounds{}
	}

	b := Bounds{Min: faces[0].Points[0], Max: faces[0].Points[0]}
	for i := range faces {
		for _, p := range faces[i].Points {
			b = b.Extend(p)
		}
	}
	return b
}

// Extend returns the bounds grown to include point.
func (b Bounds) Extend(point mgl64.Vec3) Bounds {
	for i := 0; i < 3; i++ {
		if point[i] < b.Min[i] {
			b.Min[i] = point[i]
		}
		if point[i] > b.Max[i] {
			b.Max[i] = point[i]
		}
	}
	return b
}

// ContainsPoint checks if a point is inside the bounds, faces included.
func (b Bounds) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= b.Min.X() && point.X() <= b.Max.X() &&
		point.Y() >= b.Min.Y() && point.Y() <= b.Max.Y() &&
		point.Z() >= b.Min.Z() && point.Z() <= b.Max.Z()
}

// Overlaps checks if two bounds overlap.
func (b Bounds) Overlaps(other Bounds) bool {
	// Boxes overlap if they overlap on all three axes
	return b.Max.X() >= other.Min.X() && b.Min.X() <= other.Max.X() &&
		b.Max.Y() >= other.Min.Y() && b.Min.Y() <= other.Max.Y() &&
		b.Max.Z() >= other.Min.Z() && b.Min.Z() <= other.Max.Z()
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent along each axis.
func (b Bounds) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}
