package region

import (
	"iter"

	"github.com/akmonengine/chisel/block"
	"github.com/akmonengine/chisel/hull"
	"github.com/go-gl/mathgl/mgl64"
)

// ConvexRegion is a convex polyhedron grown one lattice vertex at a time.
// The face mesh always bounds the accepted vertices; a point offered while
// the mesh is still the flat two-face bootstrap and already inside it
// waits in a backlog, and is replayed whenever the mesh next grows.
type ConvexRegion struct {
	vertices  []block.Vector3 // sommets acceptés, dans l'ordre d'insertion
	triangles []hull.Triangle
	backlog   []block.Vector3

	min, max block.Vector3 // bounding box over the accepted vertices
	accum    block.Vector3 // running vertex sum
	count    int           // contributions in accum

	// Index of the face that most recently rejected a containment probe,
	// -1 when no face is cached. Never survives a mesh mutation.
	lastRejecting int
}

// NewConvexRegion returns an empty convex region.
func NewConvexRegion() *ConvexRegion {
	return &ConvexRegion{lastRejecting: -1}
}

// AddVertex offers a vertex to the region and reports whether the region
// changed. Vertices already accepted or already queued are refused.
func (r *ConvexRegion) AddVertex(vertex block.Vector3) bool {
	r.lastRejecting = -1

	changed, replay := r.insertVertex(vertex)
	if !replay {
		return changed
	}

	stack := []replayFrame{r.beginReplay(vertex)}
	for len(stack) > 0 {
		i := len(stack) - 1
		if len(stack[i].queue) == 0 {
			r.vertices = append(r.vertices, stack[i].readd)
			stack = stack[:i]
			continue
		}

		next := stack[i].queue[0]
		stack[i].queue = stack[i].queue[1:]
		if _, again := r.insertVertex(next); again {
			stack = append(stack, r.beginReplay(next))
		}
	}
	return changed
}

// replayFrame is one suspended insertion: the queued points to re-offer,
// and the vertex to restore to the insertion order once they have been.
type replayFrame struct {
	queue []block.Vector3
	readd block.Vector3
}

// beginReplay pulls the just-accepted vertex out of the insertion order
// and takes ownership of the backlog as the frame's queue. Re-appending
// the vertex after the queue drains keeps the original ordering: replayed
// points precede the vertex whose acceptance released them.
func (r *ConvexRegion) beginReplay(vertex block.Vector3) replayFrame {
	r.removeVertex(vertex)
	queue := append([]block.Vector3(nil), r.backlog...)
	r.backlog = r.backlog[:0]
	return replayFrame{queue: queue, readd: vertex}
}

// insertVertex runs a single insertion without replaying the backlog.
// It reports whether the region changed and whether a replay pass is due,
// which is the case when the mesh grew while points were queued.
func (r *ConvexRegion) insertVertex(vertex block.Vector3) (changed, replay bool) {
	if r.hasVertex(vertex) {
		return false, false
	}

	if len(r.vertices) == 3 {
		if r.inBacklog(vertex) {
			return false, false
		}
		if r.containsRaw(vertex.Vec3()) {
			r.backlog = append(r.backlog, vertex)
			return true, false
		}
	}

	r.vertices = append(r.vertices, vertex)
	r.accum = r.accum.Add(vertex)
	r.count++
	if len(r.vertices) == 1 {
		r.min, r.max = vertex, vertex
	} else {
		r.min = r.min.Min(vertex)
		r.max = r.max.Max(vertex)
	}

	switch len(r.vertices) {
	case 1, 2:
		return true, false
	case 3:
		// Bootstrap: two faces over the same triangle, opposite windings,
		// so that the degenerate mesh still closes around its interior.
		a := r.vertices[0].Vec3()
		b := r.vertices[1].Vec3()
		c := r.vertices[2].Vec3()
		r.triangles = append(r.triangles,
			hull.NewTriangle(a, b, c),
			hull.NewTriangle(a, c, b),
		)
		r.lastRejecting = -1
		return true, false
	default:
		r.triangles = hull.Expand(r.triangles, vertex.Vec3(), r.Center())
		r.lastRejecting = -1
		return true, len(r.backlog) > 0
	}
}

// Contains reports whether the block position lies inside the polyhedron.
// An undefined region contains nothing.
func (r *ConvexRegion) Contains(position block.Vector3) bool {
	if !r.IsDefined() {
		return false
	}
	if !position.ContainedWithin(r.min, r.max) {
		return false
	}
	return r.containsRaw(position.Vec3())
}

// containsRaw tests the point against the faces alone, skipping the
// bounding-box phase. The face that last rejected a probe is re-tested
// first: consecutive probes tend to fail on the same face.
func (r *ConvexRegion) containsRaw(pt mgl64.Vec3) bool {
	if r.lastRejecting >= 0 && r.triangles[r.lastRejecting].Above(pt) {
		return false
	}

	for i := range r.triangles {
		if i == r.lastRejecting {
			continue
		}
		if r.triangles[i].Above(pt) {
			r.lastRejecting = i
			return false
		}
	}
	return true
}

// IsDefined reports whether the region has faces to test against.
func (r *ConvexRegion) IsDefined() bool {
	return len(r.triangles) > 0
}

// Shift moves every vertex, queued point and face by change.
func (r *ConvexRegion) Shift(change block.Vector3) error {
	for i := range r.vertices {
		r.vertices[i] = r.vertices[i].Add(change)
	}
	for i := range r.backlog {
		r.backlog[i] = r.backlog[i].Add(change)
	}

	delta := change.Vec3()
	for i := range r.triangles {
		r.triangles[i] = r.triangles[i].Translate(delta)
	}

	r.min = r.min.Add(change)
	r.max = r.max.Add(change)
	r.accum = r.accum.Add(change.Mul(r.count))
	r.lastRejecting = -1
	return nil
}

// Expand is accepted but has no effect: the polyhedron is defined by its
// vertices alone.
func (r *ConvexRegion) Expand(changes ...block.Vector3) error {
	return nil
}

// Contract is accepted but has no effect, like Expand.
func (r *ConvexRegion) Contract(changes ...block.Vector3) error {
	return nil
}

// Clear resets the region to its initial, undefined state. The backing
// arrays are kept for reuse.
func (r *ConvexRegion) Clear() {
	r.vertices = r.vertices[:0]
	r.triangles = r.triangles[:0]
	r.backlog = r.backlog[:0]
	r.min, r.max = block.Vector3{}, block.Vector3{}
	r.accum = block.Vector3{}
	r.count = 0
	r.lastRejecting = -1
}

// MinimumPoint returns the lower corner of the accepted-vertex bounding box.
func (r *ConvexRegion) MinimumPoint() block.Vector3 { return r.min }

// MaximumPoint returns the upper corner of the accepted-vertex bounding box.
func (r *ConvexRegion) MaximumPoint() block.Vector3 { return r.max }

// Center returns the average of the accepted vertices.
func (r *ConvexRegion) Center() mgl64.Vec3 {
	return r.accum.Vec3().Mul(1 / float64(r.count))
}

// Area returns the block count of the bounding box.
func (r *ConvexRegion) Area() int { return boxArea(r.min, r.max) }

func (r *ConvexRegion) Width() int  { return boxWidth(r.min, r.max) }
func (r *ConvexRegion) Height() int { return boxHeight(r.min, r.max) }
func (r *ConvexRegion) Length() int { return boxLength(r.min, r.max) }

// Vertices returns the accepted vertices followed by any queued points.
func (r *ConvexRegion) Vertices() []block.Vector3 {
	out := make([]block.Vector3, 0, len(r.vertices)+len(r.backlog))
	out = append(out, r.vertices...)
	return append(out, r.backlog...)
}

// Pending returns the points waiting in the backlog.
func (r *ConvexRegion) Pending() []block.Vector3 {
	return append([]block.Vector3(nil), r.backlog...)
}

// Triangles returns a copy of the current face mesh.
func (r *ConvexRegion) Triangles() []hull.Triangle {
	return append([]hull.Triangle(nil), r.triangles...)
}

// HullVolume returns the volume enclosed by the face mesh.
func (r *ConvexRegion) HullVolume() float64 {
	return hull.Volume(r.triangles)
}

// HullSurfaceArea returns the total area of the face mesh.
func (r *ConvexRegion) HullSurfaceArea() float64 {
	return hull.SurfaceArea(r.triangles)
}

// Bounds returns the continuous bounding box of the face mesh.
func (r *ConvexRegion) Bounds() hull.Bounds {
	return hull.BoundsOf(r.triangles)
}

// Points yields every block position inside the polyhedron.
func (r *ConvexRegion) Points() iter.Seq[block.Vector3] {
	return scanPoints(r)
}

// Chunks returns the chunk columns occupied at the bounding box floor.
func (r *ConvexRegion) Chunks() []block.Vector2 {
	return chunkColumns(r, r.min.Y)
}

// ChunkCubes returns the chunk-sized cubes the polyhedron occupies.
func (r *ConvexRegion) ChunkCubes() []block.Vector3 {
	return chunkCubes(r)
}

// Polygonize returns the bounding-box footprint corners.
func (r *ConvexRegion) Polygonize(maxPoints int) ([]block.Vector2, error) {
	return polygonizeBox(r.min, r.max, maxPoints)
}

// Clone returns a deep copy sharing no state with the original.
func (r *ConvexRegion) Clone() Region {
	c := *r
	c.vertices = append([]block.Vector3(nil), r.vertices...)
	c.backlog = append([]block.Vector3(nil), r.backlog...)
	c.triangles = append([]hull.Triangle(nil), r.triangles...)
	return &c
}

func (r *ConvexRegion) hasVertex(vertex block.Vector3) bool {
	for _, v := range r.vertices {
		if v == vertex {
			return true
		}
	}
	return false
}

func (r *ConvexRegion) inBacklog(vertex block.Vector3) bool {
	for _, v := range r.backlog {
		if v == vertex {
			return true
		}
	}
	return false
}

// removeVertex deletes the first occurrence, preserving insertion order.
func (r *ConvexRegion) removeVertex(vertex block.Vector3) {
	for i, v := range r.vertices {
		if v == vertex {
			r.vertices = append(r.vertices[:i], r.vertices[i+1:]...)
			return
		}
	}
}
