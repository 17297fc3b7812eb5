package hull

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// cubeFaces builds the twelve outward-oriented faces of an axis-aligned
// cube from min to max.
func cubeFaces(min, max mgl64.Vec3) []Triangle {
	interior := min.Add(max).Mul(0.5)
	corner := func(x, y, z int) mgl64.Vec3 {
		p := min
		if x == 1 {
			p[0] = max[0]
		}
		if y == 1 {
			p[1] = max[1]
		}
		if z == 1 {
			p[2] = max[2]
		}
		return p
	}

	quads := [][4]mgl64.Vec3{
		{corner(0, 0, 0), corner(1, 0, 0), corner(1, 1, 0), corner(0, 1, 0)}, // z = min
		{corner(0, 0, 1), corner(1, 0, 1), corner(1, 1, 1), corner(0, 1, 1)}, // z = max
		{corner(0, 0, 0), corner(1, 0, 0), corner(1, 0, 1), corner(0, 0, 1)}, // y = min
		{corner(0, 1, 0), corner(1, 1, 0), corner(1, 1, 1), corner(0, 1, 1)}, // y = max
		{corner(0, 0, 0), corner(0, 1, 0), corner(0, 1, 1), corner(0, 0, 1)}, // x = min
		{corner(1, 0, 0), corner(1, 1, 0), corner(1, 1, 1), corner(1, 0, 1)}, // x = max
	}

	faces := make([]Triangle, 0, 12)
	for _, q := range quads {
		faces = append(faces,
			NewTriangleFacing(q[0], q[1], q[2], interior),
			NewTriangleFacing(q[0], q[2], q[3], interior),
		)
	}
	return faces
}

func TestVolume(t *testing.T) {
	tests := []struct {
		name     string
		faces    []Triangle
		expected float64
	}{
		{
			name:     "empty mesh",
			faces:    nil,
			expected: 0,
		},
		{
			name:     "unit corner tetrahedron",
			faces:    tetraFaces(),
			expected: 1.0 / 6.0,
		},
		{
			name:     "unit cube",
			faces:    cubeFaces(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}),
			expected: 1,
		},
		{
			name:     "cube of side 3 away from the origin",
			faces:    cubeFaces(mgl64.Vec3{10, -4, 7}, mgl64.Vec3{13, -1, 10}),
			expected: 27,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Volume(tt.faces); math.Abs(got-tt.expected) > 1e-8 {
				t.Errorf("Volume = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestSurfaceArea(t *testing.T) {
	tests := []struct {
		name     string
		faces    []Triangle
		expected float64
	}{
		{
			name:     "empty mesh",
			faces:    nil,
			expected: 0,
		},
		{
			name:     "unit corner tetrahedron",
			faces:    tetraFaces(),
			expected: 1.5 + math.Sqrt(3)/2,
		},
		{
			name:     "unit cube",
			faces:    cubeFaces(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}),
			expected: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SurfaceArea(tt.faces); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("SurfaceArea = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func BenchmarkVolume(b *testing.B) {
	faces := cubeFaces(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Volume(faces)
	}
}
