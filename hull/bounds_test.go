package hull

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestBoundsOf(t *testing.T) {
	tests := []struct {
		name        string
		faces       []Triangle
		expectedMin mgl64.Vec3
		expectedMax mgl64.Vec3
	}{
		{
			name:        "empty mesh gives zero bounds",
			faces:       nil,
			expectedMin: mgl64.Vec3{},
			expectedMax: mgl64.Vec3{},
		},
		{
			name: "single triangle",
			faces: []Triangle{
				NewTriangle(mgl64.Vec3{-1, 0, 2}, mgl64.Vec3{3, -2, 0}, mgl64.Vec3{0, 1, 5}),
			},
			expectedMin: mgl64.Vec3{-1, -2, 0},
			expectedMax: mgl64.Vec3{3, 1, 5},
		},
		{
			name:        "tetrahedron",
			faces:       tetraFaces(),
			expectedMin: mgl64.Vec3{0, 0, 0},
			expectedMax: mgl64.Vec3{1, 1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := BoundsOf(tt.faces)
			if !vec3ApproxEqual(b.Min, tt.expectedMin, 1e-9) {
				t.Errorf("Min = %v, expected %v", b.Min, tt.expectedMin)
			}
			if !vec3ApproxEqual(b.Max, tt.expectedMax, 1e-9) {
				t.Errorf("Max = %v, expected %v", b.Max, tt.expectedMax)
			}
		})
	}
}

func TestBoundsExtend(t *testing.T) {
	b := Bounds{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}}

	tests := []struct {
		name        string
		point       mgl64.Vec3
		expectedMin mgl64.Vec3
		expectedMax mgl64.Vec3
	}{
		{
			name:        "interior point changes nothing",
			point:       mgl64.Vec3{0.5, 0.5, 0.5},
			expectedMin: mgl64.Vec3{0, 0, 0},
			expectedMax: mgl64.Vec3{1, 1, 1},
		},
		{
			name:        "point beyond max",
			point:       mgl64.Vec3{2, 0.5, 0.5},
			expectedMin: mgl64.Vec3{0, 0, 0},
			expectedMax: mgl64.Vec3{2, 1, 1},
		},
		{
			name:        "point below min on two axes",
			point:       mgl64.Vec3{-1, -2, 0.5},
			expectedMin: mgl64.Vec3{-1, -2, 0},
			expectedMax: mgl64.Vec3{1, 1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Extend(tt.point)
			if !vec3ApproxEqual(got.Min, tt.expectedMin, 1e-9) {
				t.Errorf("Min = %v, expected %v", got.Min, tt.expectedMin)
			}
			if !vec3ApproxEqual(got.Max, tt.expectedMax, 1e-9) {
				t.Errorf("Max = %v, expected %v", got.Max, tt.expectedMax)
			}
		})
	}
}

func TestBoundsContainsPoint(t *testing.T) {
	b := Bounds{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{2, 2, 2}}

	tests := []struct {
		name     string
		point    mgl64.Vec3
		expected bool
	}{
		{name: "interior", point: mgl64.Vec3{1, 1, 1}, expected: true},
		{name: "on min corner", point: mgl64.Vec3{0, 0, 0}, expected: true},
		{name: "on max corner", point: mgl64.Vec3{2, 2, 2}, expected: true},
		{name: "on a face", point: mgl64.Vec3{2, 1, 1}, expected: true},
		{name: "outside on x", point: mgl64.Vec3{2.1, 1, 1}, expected: false},
		{name: "outside on y", point: mgl64.Vec3{1, -0.1, 1}, expected: false},
		{name: "outside on z", point: mgl64.Vec3{1, 1, 3}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.ContainsPoint(tt.point); got != tt.expected {
				t.Errorf("ContainsPoint(%v) = %v, expected %v", tt.point, got, tt.expected)
			}
		})
	}
}

func TestBoundsOverlaps(t *testing.T) {
	b := Bounds{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{2, 2, 2}}

	tests := []struct {
		name     string
		other    Bounds
		expected bool
	}{
		{
			name:     "fully inside",
			other:    Bounds{Min: mgl64.Vec3{0.5, 0.5, 0.5}, Max: mgl64.Vec3{1, 1, 1}},
			expected: true,
		},
		{
			name:     "partial overlap",
			other:    Bounds{Min: mgl64.Vec3{1, 1, 1}, Max: mgl64.Vec3{3, 3, 3}},
			expected: true,
		},
		{
			name:     "touching faces",
			other:    Bounds{Min: mgl64.Vec3{2, 0, 0}, Max: mgl64.Vec3{3, 2, 2}},
			expected: true,
		},
		{
			name:     "disjoint",
			other:    Bounds{Min: mgl64.Vec3{3, 3, 3}, Max: mgl64.Vec3{4, 4, 4}},
			expected: false,
		},
		{
			name:     "overlapping on two axes only",
			other:    Bounds{Min: mgl64.Vec3{0, 0, 5}, Max: mgl64.Vec3{2, 2, 6}},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Overlaps(tt.other); got != tt.expected {
				t.Errorf("Overlaps(%v) = %v, expected %v", tt.other, got, tt.expected)
			}
		})
	}
}

func TestBoundsCenterSize(t *testing.T) {
	b := Bounds{Min: mgl64.Vec3{-1, 0, 2}, Max: mgl64.Vec3{3, 4, 6}}

	if got := b.Center(); !vec3ApproxEqual(got, mgl64.Vec3{1, 2, 4}, 1e-9) {
		t.Errorf("Center() = %v, expected (1, 2, 4)", got)
	}
	if got := b.Size(); !vec3ApproxEqual(got, mgl64.Vec3{4, 4, 4}, 1e-9) {
		t.Errorf("Size() = %v, expected (4, 4, 4)", got)
	}
}
