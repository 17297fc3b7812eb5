package hull

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// expandInitialCapacity sizes the scratch buffers for typical selection
// hulls (tens of faces). The buffers grow past this without reallocation
// churn thanks to pooling.
const expandInitialCapacity = 32

// edgeEntry tracks one undirected edge of the removed cap with its
// occurrence count. Start/End keep the direction in which the edge was
// first seen; matching is direction-insensitive via the normalized form.
// An edge is on the silhouette boundary iff it appears exactly once.
type edgeEntry struct {
	edge  Edge
	key   Edge // normalized form, for direction-insensitive matching
	count int
}

// expander holds the reusable scratch state for one expansion step.
type expander struct {
	edges   []edgeEntry
	visible []int
}

// expanderPool recycles scratch buffers across expansion steps, so steady
// hull growth stops allocating once the buffers have warmed up.
var expanderPool = sync.Pool{
	New: func() interface{} {
		return &expander{
			edges:   make([]edgeEntry, 0, expandInitialCapacity),
			visible: make([]int, 0, expandInitialCapacity),
		}
	},
}

func (x *expander) reset() {
	x.edges = x.edges[:0]
	x.visible = x.visible[:0]
}

// Expand grows a hull mesh around apex and returns the updated mesh,
// reusing the backing array of faces where it can.
//
// Steps:
//  1. Every face with apex strictly above its plane is visible and must go.
//  2. The visible faces' edges are counted; an edge shared by two removed
//     faces is interior to the removed cap and cancels, an edge seen once
//     is on the silhouette between removed and retained faces.
//  3. Visible faces are removed, then one new face is fanned from each
//     silhouette edge to the apex, oriented outward against the interior
//     reference point.
//
// If no face sees the apex (the point is inside or on the hull), the mesh
// is returned unchanged. The interior reference must be strictly inside
// the hull that the updated mesh bounds; callers that maintain a vertex
// centroid can pass it directly.
func Expand(faces []Triangle, apex, interior mgl64.Vec3) []Triangle {
	x := expanderPool.Get().(*expander)
	defer expanderPool.Put(x)
	x.reset()

	x.findVisible(faces, apex)
	if len(x.visible) == 0 {
		return faces
	}

	x.collectEdges(faces)
	faces = x.removeVisible(faces)
	return x.fan(faces, apex, interior)
}

// findVisible records the indices of all faces that see the apex.
func (x *expander) findVisible(faces []Triangle, apex mgl64.Vec3) {
	for i := range faces {
		if faces[i].Above(apex) {
			x.visible = append(x.visible, i)
		}
	}
}

// collectEdges counts the edges of the visible faces, preserving
// first-seen order and direction.
func (x *expander) collectEdges(faces []Triangle) {
	for _, idx := range x.visible {
		for i := 0; i < 3; i++ {
			edge := faces[idx].Edge(i)
			key := edge.normalized()

			if j := x.findEdge(key); j >= 0 {
				x.edges[j].count++
				continue
			}
			x.edges = append(x.edges, edgeEntry{edge: edge, key: key, count: 1})
		}
	}
}

// findEdge performs a linear search by normalized key. Linear is the right
// tool here: a removed cap has well under a hundred edges.
func (x *expander) findEdge(key Edge) int {
	for i := range x.edges {
		if vec3Equal(x.edges[i].key.Start, key.Start) && vec3Equal(x.edges[i].key.End, key.End) {
			return i
		}
	}
	return -1
}

// removeVisible deletes the visible faces using swap-with-last, walking
// the indices in descending order so earlier removals cannot invalidate
// later indices. Face order within the mesh carries no meaning.
func (x *expander) removeVisible(faces []Triangle) []Triangle {
	for i := 0; i < len(x.visible)-1; i++ {
		for j := i + 1; j < len(x.visible); j++ {
			if x.visible[i] < x.visible[j] {
				x.visible[i], x.visible[j] = x.visible[j], x.visible[i]
			}
		}
	}

	for _, idx := range x.visible {
		faces[idx] = faces[len(faces)-1]
		faces = faces[:len(faces)-1]
	}
	return faces
}

// fan adds one outward-oriented face per silhouette edge.
func (x *expander) fan(faces []Triangle, apex, interior mgl64.Vec3) []Triangle {
	for i := range x.edges {
		if x.edges[i].count != 1 {
			continue
		}
		e := x.edges[i].edge
		faces = append(faces, NewTriangleFacing(e.Start, e.End, apex, interior))
	}
	return faces
}
