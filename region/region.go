// Package region defines bounded three-dimensional selections over the
// block lattice: an incrementally grown convex polyhedron plus the
// closed-form cuboid, ellipsoid and cylinder shapes.
//
// Regions are not safe for concurrent mutation; callers sharing one
// across goroutines synchronize externally.
package region

import (
	"fmt"
	"iter"

	"github.com/akmonengine/chisel/block"
	"github.com/go-gl/mathgl/mgl64"
)

// Region is a selection of block positions.
type Region interface {
	// MinimumPoint returns the lower corner of the bounding box.
	MinimumPoint() block.Vector3
	// MaximumPoint returns the upper corner of the bounding box.
	MaximumPoint() block.Vector3
	// Center returns the representative center of the region.
	Center() mgl64.Vec3
	// Area returns the number of blocks the region spans.
	Area() int
	Width() int
	Height() int
	Length() int
	// Contains reports whether a block position lies inside the region.
	Contains(position block.Vector3) bool
	// Shift moves the whole region by change.
	Shift(change block.Vector3) error
	// Expand grows the region along the direction of each change.
	Expand(changes ...block.Vector3) error
	// Contract shrinks the region along the direction of each change.
	Contract(changes ...block.Vector3) error
	// Points yields every block position inside the region.
	Points() iter.Seq[block.Vector3]
	// Chunks returns the chunk columns the region occupies.
	Chunks() []block.Vector2
	// ChunkCubes returns the 16x16x16 cubes the region occupies.
	ChunkCubes() []block.Vector3
	// Polygonize approximates the region's horizontal footprint with at
	// most maxPoints corners. A negative budget means no limit.
	Polygonize(maxPoints int) ([]block.Vector2, error)
	// Clone returns an independent copy of the region.
	Clone() Region
}

func boxArea(min, max block.Vector3) int {
	return (max.X - min.X + 1) * (max.Y - min.Y + 1) * (max.Z - min.Z + 1)
}

func boxWidth(min, max block.Vector3) int  { return max.X - min.X + 1 }
func boxHeight(min, max block.Vector3) int { return max.Y - min.Y + 1 }
func boxLength(min, max block.Vector3) int { return max.Z - min.Z + 1 }

func boxCenter(min, max block.Vector3) mgl64.Vec3 {
	return min.Add(max).Vec3().Mul(0.5)
}

// polygonizeBox returns the four corners of the bounding-box footprint,
// counter-clockwise from the minimum corner.
func polygonizeBox(min, max block.Vector3, maxPoints int) ([]block.Vector2, error) {
	if maxPoints >= 0 && maxPoints < 4 {
		return nil, fmt.Errorf("cannot polygonize a box footprint into %d points, need at least 4", maxPoints)
	}

	return []block.Vector2{
		block.At2(min.X, min.Z),
		block.At2(min.X, max.Z),
		block.At2(max.X, max.Z),
		block.At2(max.X, min.Z),
	}, nil
}

// chunkColumns collects the chunks whose column holds at least one region
// block, probing each bounding-box column at probeY.
func chunkColumns(r Region, probeY int) []block.Vector2 {
	min := r.MinimumPoint()
	max := r.MaximumPoint()

	seen := map[block.Vector2]struct{}{}
	var chunks []block.Vector2
	for x := min.X; x <= max.X; x++ {
		for z := min.Z; z <= max.Z; z++ {
			p := block.At(x, probeY, z)
			if !r.Contains(p) {
				continue
			}
			chunk := p.Chunk()
			if _, ok := seen[chunk]; ok {
				continue
			}
			seen[chunk] = struct{}{}
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}

// chunkCubes collects the chunk-sized cubes holding at least one region
// block, scanning the full bounding box.
func chunkCubes(r Region) []block.Vector3 {
	min := r.MinimumPoint()
	max := r.MaximumPoint()

	seen := map[block.Vector3]struct{}{}
	var cubes []block.Vector3
	for x := min.X; x <= max.X; x++ {
		for y := min.Y; y <= max.Y; y++ {
			for z := min.Z; z <= max.Z; z++ {
				p := block.At(x, y, z)
				if !r.Contains(p) {
					continue
				}
				cube := p.ChunkCube()
				if _, ok := seen[cube]; ok {
					continue
				}
				seen[cube] = struct{}{}
				cubes = append(cubes, cube)
			}
		}
	}
	return cubes
}

// scanPoints yields the region's blocks by scanning its bounding box,
// x varying fastest, then y, then z.
func scanPoints(r Region) iter.Seq[block.Vector3] {
	return func(yield func(block.Vector3) bool) {
		min := r.MinimumPoint()
		max := r.MaximumPoint()

		for z := min.Z; z <= max.Z; z++ {
			for y := min.Y; y <= max.Y; y++ {
				for x := min.X; x <= max.X; x++ {
					p := block.At(x, y, z)
					if !r.Contains(p) {
						continue
					}
					if !yield(p) {
						return
					}
				}
			}
		}
	}
}
