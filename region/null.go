package region

import (
	"errors"
	"iter"

	"github.com/akmonengine/chisel/block"
	"github.com/go-gl/mathgl/mgl64"
)

var errNullRegion = errors.New("cannot change the null region")

// NullRegion is a region containing no points. Every mutation fails.
type NullRegion struct{}

// NewNullRegion returns the empty region.
func NewNullRegion() *NullRegion {
	return &NullRegion{}
}

// MinimumPoint returns the origin.
func (r *NullRegion) MinimumPoint() block.Vector3 { return block.Vector3{} }

// MaximumPoint returns the origin.
func (r *NullRegion) MaximumPoint() block.Vector3 { return block.Vector3{} }

// Center returns the origin.
func (r *NullRegion) Center() mgl64.Vec3 { return mgl64.Vec3{} }

// Area returns zero.
func (r *NullRegion) Area() int { return 0 }

func (r *NullRegion) Width() int  { return 0 }
func (r *NullRegion) Height() int { return 0 }
func (r *NullRegion) Length() int { return 0 }

// Contains reports false for every position.
func (r *NullRegion) Contains(position block.Vector3) bool { return false }

// Shift fails: the null region cannot move.
func (r *NullRegion) Shift(change block.Vector3) error { return errNullRegion }

// Expand fails: the null region cannot grow.
func (r *NullRegion) Expand(changes ...block.Vector3) error { return errNullRegion }

// Contract fails: the null region cannot shrink.
func (r *NullRegion) Contract(changes ...block.Vector3) error { return errNullRegion }

// Points yields nothing.
func (r *NullRegion) Points() iter.Seq[block.Vector3] {
	return func(yield func(block.Vector3) bool) {}
}

// Chunks returns no chunk columns.
func (r *NullRegion) Chunks() []block.Vector2 { return nil }

// ChunkCubes returns no cubes.
func (r *NullRegion) ChunkCubes() []block.Vector3 { return nil }

// Polygonize returns an empty footprint, whatever the budget.
func (r *NullRegion) Polygonize(maxPoints int) ([]block.Vector2, error) {
	return nil, nil
}

// Clone returns a fresh null region.
func (r *NullRegion) Clone() Region { return NewNullRegion() }
