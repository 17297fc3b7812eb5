// Package solid turns regions into signed-distance solids backed by the
// github.com/deadsy/sdfx CAD kernel, and renders them into triangle meshes
// for previews and export.
//
// Box and circular-cylinder regions map onto exact SDF primitives; every
// other shape falls back to an occupancy field driven by the region's own
// containment test, which marching cubes handles fine at block resolution.
package solid

import (
	"fmt"
	"math"

	"github.com/akmonengine/chisel/block"
	"github.com/akmonengine/chisel/mesh"
	"github.com/akmonengine/chisel/region"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/go-gl/mathgl/mgl64"
)

// defaultMeshCells controls marching cubes tessellation resolution.
const defaultMeshCells = 64

// Of converts a region to an SDF solid. Cuboids and circular cylinders
// become exact primitives; everything else goes through Occupancy.
func Of(r region.Region) (sdf.SDF3, error) {
	switch r := r.(type) {
	case *region.CuboidRegion:
		return ofCuboid(r)
	case *region.CylinderRegion:
		if radius := r.Radius(); radius.X() == radius.Y() {
			return ofCylinder(r, radius.X())
		}
		return Occupancy(r), nil
	default:
		return Occupancy(r), nil
	}
}

// ofCuboid builds a box spanning the cuboid's blocks, each block owning
// the unit cell from its corner to corner+1.
func ofCuboid(r *region.CuboidRegion) (sdf.SDF3, error) {
	size := v3.Vec{
		X: float64(r.Width()),
		Y: float64(r.Height()),
		Z: float64(r.Length()),
	}
	s, err := sdf.Box3D(size, 0)
	if err != nil {
		return nil, fmt.Errorf("cuboid solid: %w", err)
	}

	// sdf.Box3D centers the box at the origin; move it onto the region.
	min := r.MinimumPoint().Vec3()
	m := sdf.Translate3d(v3.Vec{
		X: min.X() + size.X/2,
		Y: min.Y() + size.Y/2,
		Z: min.Z() + size.Z/2,
	})
	return sdf.Transform3D(s, m), nil
}

// ofCylinder builds a vertical cylinder over the region's footprint.
// sdf.Cylinder3D extrudes along Z, while regions stand along Y, hence the
// rotation.
func ofCylinder(r *region.CylinderRegion, radius float64) (sdf.SDF3, error) {
	height := float64(r.Height())
	s, err := sdf.Cylinder3D(height, radius+0.5, 0)
	if err != nil {
		return nil, fmt.Errorf("cylinder solid: %w", err)
	}

	center := r.Center()
	m := sdf.Translate3d(v3.Vec{
		X: center.X() + 0.5,
		Y: float64(r.MinimumY()) + height/2,
		Z: center.Z() + 0.5,
	}).Mul(sdf.RotateX(math.Pi / 2))
	return sdf.Transform3D(s, m), nil
}

// occupancy is a pseudo-SDF over a region's containment test: -0.5 inside,
// +0.5 outside. The field is not a true distance, but marching cubes only
// needs the sign change, and it lands the surface on the cell boundary.
type occupancy struct {
	region region.Region
	bounds sdf.Box3
}

// Occupancy wraps any region as an SDF solid via its containment test.
func Occupancy(r region.Region) sdf.SDF3 {
	min := r.MinimumPoint().Vec3()
	max := r.MaximumPoint().Add(block.One).Vec3()

	// One cell of margin keeps the surface off the sampling boundary.
	return &occupancy{
		region: r,
		bounds: sdf.Box3{
			Min: v3.Vec{X: min.X() - 1, Y: min.Y() - 1, Z: min.Z() - 1},
			Max: v3.Vec{X: max.X() + 1, Y: max.Y() + 1, Z: max.Z() + 1},
		},
	}
}

func (o *occupancy) Evaluate(p v3.Vec) float64 {
	position := block.FromVec3(mgl64.Vec3{p.X, p.Y, p.Z})
	if o.region.Contains(position) {
		return -0.5
	}
	return 0.5
}

func (o *occupancy) BoundingBox() sdf.Box3 {
	return o.bounds
}

// MeshOf renders the region into a triangle mesh. A defined convex region
// short-circuits to its exact hull faces; other shapes go through marching
// cubes with the given cell count (0 picks a default).
func MeshOf(r region.Region, cells int) (*mesh.Mesh, error) {
	if convex, ok := r.(*region.ConvexRegion); ok && convex.IsDefined() {
		return mesh.FromTriangles(convex.Triangles(), "hull"), nil
	}

	s, err := Of(r)
	if err != nil {
		return nil, err
	}
	if cells <= 0 {
		cells = defaultMeshCells
	}

	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(s, renderer)

	numVerts := len(triangles) * 3
	m := &mesh.Mesh{
		Vertices: make([]float32, 0, numVerts*3),
		Normals:  make([]float32, 0, numVerts*3),
		Indices:  make([]uint32, 0, numVerts),
		Name:     "region",
	}

	for i, tri := range triangles {
		n := tri.Normal()
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			m.Vertices = append(m.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
			m.Normals = append(m.Normals, nx, ny, nz)
			m.Indices = append(m.Indices, uint32(i*3+j))
		}
	}
	return m, nil
}
