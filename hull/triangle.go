// Package hull implements the triangle-mesh geometry behind incremental
// convex hulls: oriented triangles with strict half-space tests, undirected
// edge bookkeeping, and the silhouette expansion step that grows a hull
// mesh around a new point.
//
// The expansion step is the classic incremental construction (Clarkson &
// Shor, 1989): faces visible from the new point are removed, the boundary
// edges of the removed cap are detected by occurrence counting, and new
// faces are fanned from those edges to the new point.
package hull

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Triangle is an oriented face of a hull mesh.
//
// The normal follows the right-hand rule over the winding order of Points,
// and Offset is the signed plane offset taken as the maximum of the three
// vertex projections (the three values are mathematically equal; the max
// absorbs float noise so that no vertex of the triangle itself can ever
// test as outside).
type Triangle struct {
	Points [3]mgl64.Vec3 // Les trois sommets, dans l'ordre d'enroulement
	Normal mgl64.Vec3    // Unit normal pointing outward
	Offset float64       // Plane offset: Normal · p == Offset on the plane
}

// NewTriangle builds a triangle from three points, keeping their winding.
// The normal is (b-a) × (c-a), normalized.
func NewTriangle(a, b, c mgl64.Vec3) Triangle {
	t := Triangle{Points: [3]mgl64.Vec3{a, b, c}}

	normal := b.Sub(a).Cross(c.Sub(a)).Normalize()
	t.Normal = normal
	t.Offset = maxOffset(normal, a, b, c)

	return t
}

// NewTriangleFacing builds a triangle whose normal points away from the
// interior reference point, flipping the winding when necessary. The
// reference must lie strictly off the triangle's plane for the orientation
// to be meaningful; hull callers pass the vertex centroid, which is
// strictly interior to any non-degenerate hull.
func NewTriangleFacing(a, b, c, interior mgl64.Vec3) Triangle {
	t := NewTriangle(a, b, c)
	if t.Above(interior) {
		t = NewTriangle(a, c, b)
	}
	return t
}

// Above reports whether pt lies strictly on the outward side of the
// triangle's plane. Points exactly on the plane are NOT above: the hull
// closure property requires every hull vertex to be non-exterior to every
// face, and hull vertices sit exactly on the planes of their own faces.
func (t Triangle) Above(pt mgl64.Vec3) bool {
	return t.Normal.Dot(pt) > t.Offset
}

// Edge returns the i-th directed edge along the winding order:
// 0 is P0→P1, 1 is P1→P2, 2 is P2→P0.
func (t Triangle) Edge(i int) Edge {
	if i == 2 {
		return Edge{t.Points[2], t.Points[0]}
	}
	return Edge{t.Points[i], t.Points[i+1]}
}

// Centroid returns the average of the three vertices.
func (t Triangle) Centroid() mgl64.Vec3 {
	return t.Points[0].Add(t.Points[1]).Add(t.Points[2]).Mul(1.0 / 3.0)
}

// Area returns the triangle's surface area.
func (t Triangle) Area() float64 {
	e1 := t.Points[1].Sub(t.Points[0])
	e2 := t.Points[2].Sub(t.Points[0])
	return e1.Cross(e2).Len() / 2
}

// Translate returns the triangle moved by delta. The winding, and therefore
// the normal, is unchanged; only the plane offset shifts.
func (t Triangle) Translate(delta mgl64.Vec3) Triangle {
	return NewTriangle(
		t.Points[0].Add(delta),
		t.Points[1].Add(delta),
		t.Points[2].Add(delta),
	)
}

// Edge is a pair of points bounding a triangle side. The stored direction
// follows the winding of the triangle it came from, but two edges are the
// same edge regardless of direction; use Matches for that comparison.
type Edge struct {
	Start, End mgl64.Vec3
}

// Matches reports whether both edges connect the same two points,
// in either direction.
func (e Edge) Matches(other Edge) bool {
	if vec3Equal(e.Start, other.Start) && vec3Equal(e.End, other.End) {
		return true
	}
	return vec3Equal(e.Start, other.End) && vec3Equal(e.End, other.Start)
}

// Triangle fans the edge to an apex, preserving the stored direction so
// that a fan built from consistently wound silhouette edges stays
// consistently wound.
func (e Edge) Triangle(apex mgl64.Vec3) Triangle {
	return NewTriangle(e.Start, e.End, apex)
}

// normalized returns the edge with its endpoints in lexicographic order,
// the canonical form used for direction-insensitive lookups.
func (e Edge) normalized() Edge {
	if compareVec3(e.Start, e.End) > 0 {
		return Edge{e.End, e.Start}
	}
	return e
}

func maxOffset(normal, a, b, c mgl64.Vec3) float64 {
	offset := normal.Dot(a)
	if d := normal.Dot(b); d > offset {
		offset = d
	}
	if d := normal.Dot(c); d > offset {
		offset = d
	}
	return offset
}

// compareVec3 orders vectors lexicographically (x, then y, then z).
func compareVec3(a, b mgl64.Vec3) int {
	if a[0] != b[0] {
		if a[0] < b[0] {
			return -1
		}
		return 1
	}
	if a[1] != b[1] {
		if a[1] < b[1] {
			return -1
		}
		return 1
	}
	if a[2] != b[2] {
		if a[2] < b[2] {
			return -1
		}
		return 1
	}
	return 0
}

// vec3Equal performs exact equality, no epsilon: hull vertices come from
// the integer lattice, so equal points are bit-identical.
func vec3Equal(a, b mgl64.Vec3) bool {
	return a[0] == b[0] && a[1] == b[1] && a[2] == b[2]
}
