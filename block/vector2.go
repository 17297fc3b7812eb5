package block

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector2 is an immutable 2D lattice point in the horizontal plane.
// By convention the two components are the world X and Z axes, which is
// why the second field is named Z rather than Y.
type Vector2 struct {
	X, Z int
}

// At2 is shorthand for Vector2{x, z}.
func At2(x, z int) Vector2 {
	return Vector2{x, z}
}

// FromVec2 converts a continuous 2D point to the lattice by flooring.
func FromVec2(v mgl64.Vec2) Vector2 {
	return Vector2{
		X: int(math.Floor(v.X())),
		Z: int(math.Floor(v.Y())),
	}
}

// Vec2 converts the lattice point to a continuous point.
func (v Vector2) Vec2() mgl64.Vec2 {
	return mgl64.Vec2{float64(v.X), float64(v.Z)}
}

// Add returns v + other componentwise.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Z + other.Z}
}

// Sub returns v - other componentwise.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Z - other.Z}
}

// Mul returns v scaled by n.
func (v Vector2) Mul(n int) Vector2 {
	return Vector2{v.X * n, v.Z * n}
}

// Min returns the componentwise minimum of v and other.
func (v Vector2) Min(other Vector2) Vector2 {
	return Vector2{min(v.X, other.X), min(v.Z, other.Z)}
}

// Max returns the componentwise maximum of v and other.
func (v Vector2) Max(other Vector2) Vector2 {
	return Vector2{max(v.X, other.X), max(v.Z, other.Z)}
}

// ContainedWithin reports whether v lies inside the inclusive box [lo, hi].
func (v Vector2) ContainedWithin(lo, hi Vector2) bool {
	return v.X >= lo.X && v.X <= hi.X && v.Z >= lo.Z && v.Z <= hi.Z
}

// LengthSq returns the squared euclidean length as an exact integer.
func (v Vector2) LengthSq() int {
	return v.X*v.X + v.Z*v.Z
}

// Length returns the euclidean length.
func (v Vector2) Length() float64 {
	return math.Sqrt(float64(v.LengthSq()))
}

// To3 lifts the column coordinate to a block position at the given height.
func (v Vector2) To3(y int) Vector3 {
	return Vector3{v.X, y, v.Z}
}
