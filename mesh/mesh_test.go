package mesh

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/akmonengine/chisel/hull"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

// cornerTetraFaces builds the four outward faces of the tetrahedron over
// the origin and the three unit points, volume 1/6.
func cornerTetraFaces() []hull.Triangle {
	o := mgl64.Vec3{0, 0, 0}
	x := mgl64.Vec3{1, 0, 0}
	y := mgl64.Vec3{0, 1, 0}
	z := mgl64.Vec3{0, 0, 1}
	interior := mgl64.Vec3{0.25, 0.25, 0.25}

	return []hull.Triangle{
		hull.NewTriangleFacing(o, x, y, interior),
		hull.NewTriangleFacing(o, x, z, interior),
		hull.NewTriangleFacing(o, y, z, interior),
		hull.NewTriangleFacing(x, y, z, interior),
	}
}

func TestFromTriangles(t *testing.T) {
	m := FromTriangles(cornerTetraFaces(), "tetra")

	require.Equal(t, 4, m.TriangleCount())
	require.Equal(t, 12, m.VertexCount())
	require.False(t, m.IsEmpty())
	require.Equal(t, "tetra", m.Name)

	require.InDelta(t, 1.0/6.0, m.Volume(), 1e-9)

	b := m.Bounds()
	require.Equal(t, mgl64.Vec3{0, 0, 0}, b.Min)
	require.Equal(t, mgl64.Vec3{1, 1, 1}, b.Max)

	// 3 right triangles of area 1/2 plus the slant face of area sqrt(3)/2.
	require.InDelta(t, 1.5+math.Sqrt(3)/2, m.SurfaceArea(), 1e-9)
}

func TestFromTrianglesEmpty(t *testing.T) {
	m := FromTriangles(nil, "empty")
	require.True(t, m.IsEmpty())
	require.Equal(t, 0, m.TriangleCount())
}

func TestWriteSTL(t *testing.T) {
	face := hull.NewTriangle(
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{1, 0, 0},
		mgl64.Vec3{0, 1, 0},
	)
	m := FromTriangles([]hull.Triangle{face}, "tri")

	var buf bytes.Buffer
	require.NoError(t, m.WriteSTL(&buf))

	data := buf.Bytes()
	require.Len(t, data, 80+4+50, "binary STL is header + count + one record")

	require.Equal(t, byte('t'), data[0])
	require.Equal(t, byte('r'), data[1])
	require.Equal(t, byte('i'), data[2])
	require.Equal(t, byte(0), data[3], "header is zero-padded")

	require.Equal(t, uint32(1), binary.LittleEndian.Uint32(data[80:84]))

	// The normal of a counter-clockwise XY triangle points along +Z.
	nz := math.Float32frombits(binary.LittleEndian.Uint32(data[92:96]))
	require.InDelta(t, 1.0, nz, 1e-6)

	// Second vertex is (1, 0, 0).
	vx := math.Float32frombits(binary.LittleEndian.Uint32(data[108:112]))
	require.InDelta(t, 1.0, vx, 1e-6)

	// Attribute byte count is zero.
	require.Equal(t, uint16(0), binary.LittleEndian.Uint16(data[132:134]))
}

func TestWriteSTLASCII(t *testing.T) {
	face := hull.NewTriangle(
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{1, 0, 0},
		mgl64.Vec3{0, 1, 0},
	)
	m := FromTriangles([]hull.Triangle{face}, "tri")

	var buf bytes.Buffer
	require.NoError(t, m.WriteSTLASCII(&buf))

	text := buf.String()
	require.True(t, strings.HasPrefix(text, "solid tri\n"))
	require.True(t, strings.HasSuffix(text, "endsolid tri\n"))
	require.Equal(t, 1, strings.Count(text, "facet normal"))
	require.Equal(t, 3, strings.Count(text, "vertex"))
	require.Contains(t, text, "vertex 1 0 0")
}
