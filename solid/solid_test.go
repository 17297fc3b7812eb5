package solid

import (
	"testing"

	"github.com/akmonengine/chisel/block"
	"github.com/akmonengine/chisel/region"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func TestOfCuboid(t *testing.T) {
	r := region.NewCuboidRegion(block.At(0, 0, 0), block.At(3, 1, 2))

	s, err := Of(r)
	require.NoError(t, err)

	bb := s.BoundingBox()
	require.InDelta(t, 0, bb.Min.X, 1e-9)
	require.InDelta(t, 0, bb.Min.Y, 1e-9)
	require.InDelta(t, 0, bb.Min.Z, 1e-9)
	require.InDelta(t, 4, bb.Max.X, 1e-9)
	require.InDelta(t, 2, bb.Max.Y, 1e-9)
	require.InDelta(t, 3, bb.Max.Z, 1e-9)

	// Inside is negative, outside positive.
	require.Negative(t, s.Evaluate(v3.Vec{X: 2, Y: 1, Z: 1.5}))
	require.Positive(t, s.Evaluate(v3.Vec{X: 10, Y: 1, Z: 1.5}))
}

func TestOfCuboidOffOrigin(t *testing.T) {
	r := region.NewCuboidRegion(block.At(-4, 10, 2), block.At(-2, 12, 4))

	s, err := Of(r)
	require.NoError(t, err)

	bb := s.BoundingBox()
	require.InDelta(t, -4, bb.Min.X, 1e-9)
	require.InDelta(t, 10, bb.Min.Y, 1e-9)
	require.InDelta(t, 2, bb.Min.Z, 1e-9)
	require.InDelta(t, -1, bb.Max.X, 1e-9)

	require.Negative(t, s.Evaluate(v3.Vec{X: -3, Y: 11, Z: 3}))
	require.Positive(t, s.Evaluate(v3.Vec{X: 0, Y: 11, Z: 3}))
}

func TestOfCylinder(t *testing.T) {
	r := region.NewCylinderRegion(block.At(0, 0, 0), mgl64.Vec2{3, 3}, 0, 9)

	s, err := Of(r)
	require.NoError(t, err)

	// On the axis, inside the vertical range.
	require.Negative(t, s.Evaluate(v3.Vec{X: 0.5, Y: 5, Z: 0.5}))
	// Past the radius.
	require.Positive(t, s.Evaluate(v3.Vec{X: 6, Y: 5, Z: 0.5}))
	// Above the top cap.
	require.Positive(t, s.Evaluate(v3.Vec{X: 0.5, Y: 20, Z: 0.5}))
}

func TestOccupancy(t *testing.T) {
	r := region.NewEllipsoidRegion(block.At(0, 0, 0), mgl64.Vec3{4, 4, 4})
	s := Occupancy(r)

	require.Equal(t, -0.5, s.Evaluate(v3.Vec{X: 0, Y: 0, Z: 0}))
	require.Equal(t, 0.5, s.Evaluate(v3.Vec{X: 10, Y: 0, Z: 0}))

	bb := s.BoundingBox()
	require.Less(t, bb.Min.X, -4.0)
	require.Greater(t, bb.Max.X, 4.0)
}

func TestMeshOfConvexShortCircuit(t *testing.T) {
	r := region.NewConvexRegion()
	for _, v := range []block.Vector3{
		block.At(0, 0, 0),
		block.At(4, 0, 0),
		block.At(0, 4, 0),
		block.At(0, 0, 4),
	} {
		require.True(t, r.AddVertex(v))
	}

	m, err := MeshOf(r, 0)
	require.NoError(t, err)

	// The exact hull has four faces; marching cubes would produce far more.
	require.Equal(t, 4, m.TriangleCount())
	require.InDelta(t, r.HullVolume(), m.Volume(), 1e-9)
}

func TestMeshOfCuboid(t *testing.T) {
	r := region.NewCuboidRegion(block.At(0, 0, 0), block.At(3, 3, 3))

	m, err := MeshOf(r, 32)
	require.NoError(t, err)
	require.False(t, m.IsEmpty())

	// The rendered surface stays within a cell of the exact box.
	bb := m.Bounds()
	require.InDelta(t, 0, bb.Min.X(), 0.5)
	require.InDelta(t, 4, bb.Max.X(), 0.5)
}
