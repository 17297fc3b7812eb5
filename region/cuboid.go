package region

import (
	"iter"

	"github.com/akmonengine/chisel/block"
	"github.com/go-gl/mathgl/mgl64"
)

// CuboidRegion is an axis-aligned box between two block corners.
type CuboidRegion struct {
	pos1, pos2 block.Vector3
}

// NewCuboidRegion builds a cuboid from two opposite corners, in any order.
func NewCuboidRegion(pos1, pos2 block.Vector3) *CuboidRegion {
	return &CuboidRegion{pos1: pos1, pos2: pos2}
}

// Pos1 returns the first defining corner.
func (r *CuboidRegion) Pos1() block.Vector3 { return r.pos1 }

// Pos2 returns the second defining corner.
func (r *CuboidRegion) Pos2() block.Vector3 { return r.pos2 }

// SetPos1 moves the first defining corner.
func (r *CuboidRegion) SetPos1(p block.Vector3) { r.pos1 = p }

// SetPos2 moves the second defining corner.
func (r *CuboidRegion) SetPos2(p block.Vector3) { r.pos2 = p }

// MinimumPoint returns the lower corner.
func (r *CuboidRegion) MinimumPoint() block.Vector3 { return r.pos1.Min(r.pos2) }

// MaximumPoint returns the upper corner.
func (r *CuboidRegion) MaximumPoint() block.Vector3 { return r.pos1.Max(r.pos2) }

// Center returns the midpoint of the box.
func (r *CuboidRegion) Center() mgl64.Vec3 {
	return boxCenter(r.MinimumPoint(), r.MaximumPoint())
}

// Area returns the block count of the box.
func (r *CuboidRegion) Area() int {
	return boxArea(r.MinimumPoint(), r.MaximumPoint())
}

func (r *CuboidRegion) Width() int  { return boxWidth(r.MinimumPoint(), r.MaximumPoint()) }
func (r *CuboidRegion) Height() int { return boxHeight(r.MinimumPoint(), r.MaximumPoint()) }
func (r *CuboidRegion) Length() int { return boxLength(r.MinimumPoint(), r.MaximumPoint()) }

// Contains reports whether the position lies inside the box, faces included.
func (r *CuboidRegion) Contains(position block.Vector3) bool {
	return position.ContainedWithin(r.MinimumPoint(), r.MaximumPoint())
}

// Shift moves both corners by change.
func (r *CuboidRegion) Shift(change block.Vector3) error {
	r.pos1 = r.pos1.Add(change)
	r.pos2 = r.pos2.Add(change)
	return nil
}

// Expand grows the box: positive components of each change push the
// maximum face outward, negative components push the minimum face.
func (r *CuboidRegion) Expand(changes ...block.Vector3) error {
	var zero block.Vector3
	for _, change := range changes {
		min := r.MinimumPoint().Add(change.Min(zero))
		max := r.MaximumPoint().Add(change.Max(zero))
		r.pos1, r.pos2 = min, max
	}
	return nil
}

// Contract shrinks the box: positive components pull the minimum face
// inward, negative components pull the maximum face inward.
func (r *CuboidRegion) Contract(changes ...block.Vector3) error {
	var zero block.Vector3
	for _, change := range changes {
		min := r.MinimumPoint().Add(change.Max(zero))
		max := r.MaximumPoint().Add(change.Min(zero))
		r.pos1, r.pos2 = min, max
	}
	return nil
}

// Points yields every block position inside the box.
func (r *CuboidRegion) Points() iter.Seq[block.Vector3] {
	return scanPoints(r)
}

// Chunks returns the chunk columns covered by the box footprint.
func (r *CuboidRegion) Chunks() []block.Vector2 {
	return chunkColumns(r, r.MinimumPoint().Y)
}

// ChunkCubes returns the chunk-sized cubes the box occupies.
func (r *CuboidRegion) ChunkCubes() []block.Vector3 {
	return chunkCubes(r)
}

// Polygonize returns the four footprint corners.
func (r *CuboidRegion) Polygonize(maxPoints int) ([]block.Vector2, error) {
	return polygonizeBox(r.MinimumPoint(), r.MaximumPoint(), maxPoints)
}

// Clone returns an independent copy.
func (r *CuboidRegion) Clone() Region {
	c := *r
	return &c
}
