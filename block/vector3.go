// Package block provides the integer lattice vector types used to address
// block positions and chunk columns, plus conversions to the float vectors
// used by the geometry layers.
//
// Vector3 and Vector2 are immutable value types: every operation returns a
// new value, and both are comparable so they can be used directly as map
// keys or compared with ==.
package block

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/exp/constraints"
)

// ChunkShift is the power-of-two exponent of the chunk edge length:
// a chunk column covers 2^ChunkShift x 2^ChunkShift blocks horizontally.
const ChunkShift = 4

// ChunkSize is the chunk edge length in blocks.
const ChunkSize = 1 << ChunkShift

// Vector3 is an immutable 3D lattice point.
type Vector3 struct {
	X, Y, Z int
}

var (
	// Zero is the origin.
	Zero = Vector3{0, 0, 0}
	// One has every component set to 1.
	One = Vector3{1, 1, 1}

	UnitX = Vector3{1, 0, 0}
	UnitY = Vector3{0, 1, 0}
	UnitZ = Vector3{0, 0, 1}
)

// At is shorthand for Vector3{x, y, z}.
func At(x, y, z int) Vector3 {
	return Vector3{x, y, z}
}

// FromVec3 converts a continuous point to the lattice by flooring each
// component. This is the canonical float-to-block mapping: the block at
// (1.9, -0.1, 0.0) is (1, -1, 0).
func FromVec3(v mgl64.Vec3) Vector3 {
	return Vector3{
		X: int(math.Floor(v.X())),
		Y: int(math.Floor(v.Y())),
		Z: int(math.Floor(v.Z())),
	}
}

// Vec3 converts the lattice point to a continuous point.
func (v Vector3) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

// Add returns v + other componentwise.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other componentwise.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Mul returns v scaled by n.
func (v Vector3) Mul(n int) Vector3 {
	return Vector3{v.X * n, v.Y * n, v.Z * n}
}

// Neg returns -v.
func (v Vector3) Neg() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// Abs returns v with every component made non-negative.
func (v Vector3) Abs() Vector3 {
	return Vector3{abs(v.X), abs(v.Y), abs(v.Z)}
}

// Min returns the componentwise minimum of v and other.
func (v Vector3) Min(other Vector3) Vector3 {
	return Vector3{min(v.X, other.X), min(v.Y, other.Y), min(v.Z, other.Z)}
}

// Max returns the componentwise maximum of v and other.
func (v Vector3) Max(other Vector3) Vector3 {
	return Vector3{max(v.X, other.X), max(v.Y, other.Y), max(v.Z, other.Z)}
}

// ContainedWithin reports whether v lies inside the inclusive box [lo, hi].
func (v Vector3) ContainedWithin(lo, hi Vector3) bool {
	return v.X >= lo.X && v.X <= hi.X &&
		v.Y >= lo.Y && v.Y <= hi.Y &&
		v.Z >= lo.Z && v.Z <= hi.Z
}

// LengthSq returns the squared euclidean length as an exact integer.
func (v Vector3) LengthSq() int {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the euclidean length.
func (v Vector3) Length() float64 {
	return math.Sqrt(float64(v.LengthSq()))
}

// DistanceSq returns the squared distance between v and other.
func (v Vector3) DistanceSq(other Vector3) int {
	return v.Sub(other).LengthSq()
}

// Distance returns the distance between v and other.
func (v Vector3) Distance(other Vector3) float64 {
	return v.Sub(other).Length()
}

// WithY returns v with its Y component replaced.
func (v Vector3) WithY(y int) Vector3 {
	return Vector3{v.X, y, v.Z}
}

// Chunk returns the chunk column containing this position.
// Arithmetic shift keeps negative coordinates correct: block -1 is in
// chunk -1, not chunk 0.
func (v Vector3) Chunk() Vector2 {
	return Vector2{v.X >> ChunkShift, v.Z >> ChunkShift}
}

// ChunkCube returns the 16^3 chunk cube containing this position.
func (v Vector3) ChunkCube() Vector3 {
	return Vector3{v.X >> ChunkShift, v.Y >> ChunkShift, v.Z >> ChunkShift}
}

// Horizontal drops the Y component.
func (v Vector3) Horizontal() Vector2 {
	return Vector2{v.X, v.Z}
}

// SortYzx orders positions in place by Y first, then Z, then X.
// This is the layer-by-layer order block iteration conventionally uses.
func SortYzx(points []Vector3) {
	// Insertion sort: the slices handled here are selection-sized.
	for i := 1; i < len(points); i++ {
		for j := i; j > 0 && lessYzx(points[j], points[j-1]); j-- {
			points[j], points[j-1] = points[j-1], points[j]
		}
	}
}

func lessYzx(a, b Vector3) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	if a.Z != b.Z {
		return a.Z < b.Z
	}
	return a.X < b.X
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
