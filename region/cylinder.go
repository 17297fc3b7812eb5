package region

import (
	"errors"
	"iter"
	"math"

	"github.com/akmonengine/chisel/block"
	"github.com/go-gl/mathgl/mgl64"
)

var errUnevenCylinder = errors.New("cylinder changes must be even in each horizontal dimension")

// CylinderRegion is a vertical cylinder over a horizontal block center.
type CylinderRegion struct {
	center block.Vector2
	// Radii along X and Z, stored plus 0.5 each.
	radius     mgl64.Vec2
	minY, maxY int
	// hasY records whether the vertical range has been pinned yet; an
	// unpinned cylinder adopts the first Y offered to SetY.
	hasY bool
}

// NewCylinderRegion builds a cylinder from its center, X/Z radii and
// inclusive vertical range.
func NewCylinderRegion(center block.Vector3, radius mgl64.Vec2, minY, maxY int) *CylinderRegion {
	r := &CylinderRegion{center: center.Horizontal(), minY: minY, maxY: maxY, hasY: true}
	r.SetRadius(radius)
	return r
}

// EmptyCylinderRegion returns a cylinder at the origin with no vertical
// range pinned yet.
func EmptyCylinderRegion() *CylinderRegion {
	r := &CylinderRegion{}
	r.SetRadius(mgl64.Vec2{})
	return r
}

// Radius returns the radii without the half-block padding.
func (r *CylinderRegion) Radius() mgl64.Vec2 {
	return r.radius.Sub(mgl64.Vec2{0.5, 0.5})
}

// SetRadius stores the radii, padded by half a block on each axis.
func (r *CylinderRegion) SetRadius(radius mgl64.Vec2) {
	r.radius = radius.Add(mgl64.Vec2{0.5, 0.5})
}

// ExtendRadius grows each radius to at least the given value.
func (r *CylinderRegion) ExtendRadius(minRadius mgl64.Vec2) {
	cur := r.Radius()
	r.SetRadius(mgl64.Vec2{
		math.Max(minRadius.X(), cur.X()),
		math.Max(minRadius.Y(), cur.Y()),
	})
}

// SetCenter moves the horizontal center.
func (r *CylinderRegion) SetCenter(center block.Vector2) {
	r.center = center
}

// SetMinimumY pins the bottom of the vertical range.
func (r *CylinderRegion) SetMinimumY(y int) {
	r.hasY = true
	r.minY = y
}

// SetMaximumY pins the top of the vertical range.
func (r *CylinderRegion) SetMaximumY(y int) {
	r.hasY = true
	r.maxY = y
}

// SetY stretches the vertical range to include y, pinning both ends there
// when the range was still unpinned. It reports whether the region grew.
func (r *CylinderRegion) SetY(y int) bool {
	if !r.hasY {
		r.minY = y
		r.maxY = y
		r.hasY = true
		return true
	}
	if y < r.minY {
		r.minY = y
		return true
	}
	if y > r.maxY {
		r.maxY = y
		return true
	}
	return false
}

// MinimumPoint returns the lower corner of the bounding box.
func (r *CylinderRegion) MinimumPoint() block.Vector3 {
	return block.FromVec2(r.center.Vec2().Sub(r.Radius())).To3(r.minY)
}

// MaximumPoint returns the upper corner of the bounding box.
func (r *CylinderRegion) MaximumPoint() block.Vector3 {
	return block.FromVec2(r.center.Vec2().Add(r.Radius())).To3(r.maxY)
}

// MinimumY returns the bottom of the vertical range, inclusive.
func (r *CylinderRegion) MinimumY() int { return r.minY }

// MaximumY returns the top of the vertical range, inclusive.
func (r *CylinderRegion) MaximumY() int { return r.maxY }

// Center returns the center at mid-height.
func (r *CylinderRegion) Center() mgl64.Vec3 {
	return r.center.To3((r.maxY + r.minY) / 2).Vec3()
}

// Area returns the cylinder volume in blocks, rounded down.
func (r *CylinderRegion) Area() int {
	return int(math.Floor(r.radius.X() * r.radius.Y() * math.Pi * float64(r.Height())))
}

func (r *CylinderRegion) Width() int  { return int(2 * r.radius.X()) }
func (r *CylinderRegion) Height() int { return r.maxY - r.minY + 1 }
func (r *CylinderRegion) Length() int { return int(2 * r.radius.Y()) }

// Contains reports whether the position lies inside the cylinder.
func (r *CylinderRegion) Contains(position block.Vector3) bool {
	if position.Y < r.minY || position.Y > r.maxY {
		return false
	}

	d := position.Horizontal().Sub(r.center)
	scaled := mgl64.Vec2{float64(d.X) / r.radius.X(), float64(d.Z) / r.radius.Y()}
	return scaled.Dot(scaled) <= 1
}

// Shift moves the center and the vertical range by change.
func (r *CylinderRegion) Shift(change block.Vector3) error {
	r.center = r.center.Add(change.Horizontal())
	r.minY += change.Y
	r.maxY += change.Y
	return nil
}

// Expand moves the center by half the summed horizontal change, grows the
// radii by half the per-axis absolute sum, and stretches the vertical
// range by each change's Y component. Horizontal sums must be even.
func (r *CylinderRegion) Expand(changes ...block.Vector3) error {
	diff, err := halfDiff2D(changes)
	if err != nil {
		return err
	}
	r.center = r.center.Add(diff)
	r.radius = r.radius.Add(halfAbsSum2D(changes))

	for _, change := range changes {
		if change.Y > 0 {
			r.maxY += change.Y
		} else {
			r.minY += change.Y
		}
	}
	return nil
}

// Contract is the inverse of Expand: the stored radii are floored at 1.5
// and vertical movement is clamped to the current height.
func (r *CylinderRegion) Contract(changes ...block.Vector3) error {
	diff, err := halfDiff2D(changes)
	if err != nil {
		return err
	}
	r.center = r.center.Sub(diff)

	shrunk := r.radius.Sub(halfAbsSum2D(changes))
	r.radius = mgl64.Vec2{math.Max(1.5, shrunk.X()), math.Max(1.5, shrunk.Y())}

	for _, change := range changes {
		height := r.maxY - r.minY
		if change.Y > 0 {
			r.minY += min(height, change.Y)
		} else {
			r.maxY += max(-height, change.Y)
		}
	}
	return nil
}

// halfDiff2D sums the horizontal changes and halves them, rejecting odd
// components.
func halfDiff2D(changes []block.Vector3) (block.Vector2, error) {
	var diff block.Vector2
	for _, change := range changes {
		diff = diff.Add(change.Horizontal())
	}
	if diff.X&1 != 0 || diff.Z&1 != 0 {
		return block.Vector2{}, errUnevenCylinder
	}
	return block.At2(diff.X/2, diff.Z/2), nil
}

// halfAbsSum2D sums the absolute horizontal changes and halves them,
// floored.
func halfAbsSum2D(changes []block.Vector3) mgl64.Vec2 {
	var total block.Vector2
	for _, change := range changes {
		total = total.Add(change.Abs().Horizontal())
	}
	return block.At2(total.X/2, total.Z/2).Vec2()
}

// Points yields every block position inside the cylinder.
func (r *CylinderRegion) Points() iter.Seq[block.Vector3] {
	return scanPoints(r)
}

// Chunks returns the chunk columns covered by the circular footprint.
func (r *CylinderRegion) Chunks() []block.Vector2 {
	return chunkColumns(r, r.minY)
}

// ChunkCubes returns the chunk-sized cubes the cylinder occupies.
func (r *CylinderRegion) ChunkCubes() []block.Vector3 {
	return chunkCubes(r)
}

// Polygonize approximates the footprint with a ring of up to
// ceil(pi * |radius|) points, capped just under a non-negative budget.
func (r *CylinderRegion) Polygonize(maxPoints int) ([]block.Vector2, error) {
	nPoints := int(math.Ceil(math.Pi * r.radius.Len()))
	if maxPoints >= 0 && nPoints >= maxPoints {
		nPoints = maxPoints - 1
	}
	if nPoints < 0 {
		nPoints = 0
	}

	points := make([]block.Vector2, 0, nPoints)
	for i := 0; i < nPoints; i++ {
		angle := float64(i) * (2 * math.Pi) / float64(nPoints)
		offset := mgl64.Vec2{r.radius.X() * math.Cos(angle), r.radius.Y() * math.Sin(angle)}
		points = append(points, block.FromVec2(offset).Add(r.center))
	}
	return points, nil
}

// Clone returns an independent copy.
func (r *CylinderRegion) Clone() Region {
	c := *r
	return &c
}
