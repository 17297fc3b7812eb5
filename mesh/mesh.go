// Package mesh holds triangle meshes in flat arrays suitable for renderers
// and file exporters, and writes them out as STL.
package mesh

import (
	"github.com/akmonengine/chisel/hull"
	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is a triangle mesh with flat arrays: Vertices has 3 floats per
// vertex (x,y,z), Normals has 3 floats per vertex, Indices has 3 uint32s
// per triangle.
type Mesh struct {
	Vertices []float32
	Normals  []float32
	Indices  []uint32
	Name     string
}

// FromTriangles flattens a face mesh, one normal per face repeated on its
// three vertices. Vertices are not shared between faces: flat shading is
// what region previews want.
func FromTriangles(faces []hull.Triangle, name string) *Mesh {
	numVerts := len(faces) * 3

	m := &Mesh{
		Vertices: make([]float32, 0, numVerts*3),
		Normals:  make([]float32, 0, numVerts*3),
		Indices:  make([]uint32, 0, numVerts),
		Name:     name,
	}

	for i, face := range faces {
		nx := float32(face.Normal.X())
		ny := float32(face.Normal.Y())
		nz := float32(face.Normal.Z())

		for j := 0; j < 3; j++ {
			p := face.Points[j]
			m.Vertices = append(m.Vertices, float32(p.X()), float32(p.Y()), float32(p.Z()))
			m.Normals = append(m.Normals, nx, ny, nz)
			m.Indices = append(m.Indices, uint32(i*3+j))
		}
	}
	return m
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Triangles rebuilds the face list from the flat arrays.
func (m *Mesh) Triangles() []hull.Triangle {
	faces := make([]hull.Triangle, 0, m.TriangleCount())
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.triangle(i)
		faces = append(faces, hull.NewTriangle(a, b, c))
	}
	return faces
}

// Bounds returns the axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() hull.Bounds {
	return hull.BoundsOf(m.Triangles())
}

// Volume returns the volume enclosed by the mesh, which must be closed and
// consistently oriented.
func (m *Mesh) Volume() float64 {
	return hull.Volume(m.Triangles())
}

// SurfaceArea returns the total face area of the mesh.
func (m *Mesh) SurfaceArea() float64 {
	return hull.SurfaceArea(m.Triangles())
}

// triangle returns the corner points of the i-th triangle.
func (m *Mesh) triangle(i int) (a, b, c mgl64.Vec3) {
	return m.vertex(m.Indices[i*3]), m.vertex(m.Indices[i*3+1]), m.vertex(m.Indices[i*3+2])
}

func (m *Mesh) vertex(idx uint32) mgl64.Vec3 {
	return mgl64.Vec3{
		float64(m.Vertices[idx*3]),
		float64(m.Vertices[idx*3+1]),
		float64(m.Vertices[idx*3+2]),
	}
}

// normal returns the stored normal of the i-th triangle, taken from its
// first vertex.
func (m *Mesh) normal(i int) [3]float32 {
	idx := m.Indices[i*3]
	return [3]float32{m.Normals[idx*3], m.Normals[idx*3+1], m.Normals[idx*3+2]}
}
