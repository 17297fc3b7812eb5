package region

import (
	"errors"
	"iter"
	"math"

	"github.com/akmonengine/chisel/block"
	"github.com/go-gl/mathgl/mgl64"
)

var errUnevenEllipsoid = errors.New("ellipsoid changes must be even in every dimension")

// EllipsoidRegion is an axis-aligned ellipsoid around a block center.
type EllipsoidRegion struct {
	center block.Vector3
	// Radii plus 0.5 on each axis, so that the center block's own cell is
	// always inside.
	radius mgl64.Vec3
}

// NewEllipsoidRegion builds an ellipsoid from its center and radii.
func NewEllipsoidRegion(center block.Vector3, radius mgl64.Vec3) *EllipsoidRegion {
	r := &EllipsoidRegion{center: center}
	r.SetRadius(radius)
	return r
}

// Radius returns the radii without the half-block padding.
func (r *EllipsoidRegion) Radius() mgl64.Vec3 {
	return r.radius.Sub(mgl64.Vec3{0.5, 0.5, 0.5})
}

// SetRadius stores the radii, padded by half a block on each axis.
func (r *EllipsoidRegion) SetRadius(radius mgl64.Vec3) {
	r.radius = radius.Add(mgl64.Vec3{0.5, 0.5, 0.5})
}

// ExtendRadius grows each radius to at least the given value.
func (r *EllipsoidRegion) ExtendRadius(minRadius mgl64.Vec3) {
	cur := r.Radius()
	r.SetRadius(mgl64.Vec3{
		math.Max(minRadius.X(), cur.X()),
		math.Max(minRadius.Y(), cur.Y()),
		math.Max(minRadius.Z(), cur.Z()),
	})
}

// SetCenter moves the center.
func (r *EllipsoidRegion) SetCenter(center block.Vector3) {
	r.center = center
}

// MinimumPoint returns the lower corner of the bounding box.
func (r *EllipsoidRegion) MinimumPoint() block.Vector3 {
	return block.FromVec3(r.center.Vec3().Sub(r.Radius()))
}

// MaximumPoint returns the upper corner of the bounding box.
func (r *EllipsoidRegion) MaximumPoint() block.Vector3 {
	return block.FromVec3(r.center.Vec3().Add(r.Radius()))
}

// Center returns the center position.
func (r *EllipsoidRegion) Center() mgl64.Vec3 {
	return r.center.Vec3()
}

// Area returns the ellipsoid volume in blocks, rounded down.
func (r *EllipsoidRegion) Area() int {
	return int(math.Floor((4.0 / 3.0) * math.Pi * r.radius.X() * r.radius.Y() * r.radius.Z()))
}

func (r *EllipsoidRegion) Width() int  { return int(2 * r.radius.X()) }
func (r *EllipsoidRegion) Height() int { return int(2 * r.radius.Y()) }
func (r *EllipsoidRegion) Length() int { return int(2 * r.radius.Z()) }

// Contains reports whether the position lies inside the ellipsoid.
func (r *EllipsoidRegion) Contains(position block.Vector3) bool {
	d := position.Sub(r.center).Vec3()
	scaled := mgl64.Vec3{d.X() / r.radius.X(), d.Y() / r.radius.Y(), d.Z() / r.radius.Z()}
	return scaled.Dot(scaled) <= 1
}

// Shift moves the center by change.
func (r *EllipsoidRegion) Shift(change block.Vector3) error {
	r.center = r.center.Add(change)
	return nil
}

// Expand moves the center by half the summed change and grows the radii
// by half the per-axis absolute sum. Every axis of the sum must be even.
func (r *EllipsoidRegion) Expand(changes ...block.Vector3) error {
	diff, err := halfDiff(changes)
	if err != nil {
		return err
	}
	r.center = r.center.Add(diff)
	r.radius = r.radius.Add(halfAbsSum(changes))
	return nil
}

// Contract is the inverse of Expand, with the stored radii floored at 1.5.
func (r *EllipsoidRegion) Contract(changes ...block.Vector3) error {
	diff, err := halfDiff(changes)
	if err != nil {
		return err
	}
	r.center = r.center.Sub(diff)

	shrunk := r.radius.Sub(halfAbsSum(changes))
	r.radius = mgl64.Vec3{
		math.Max(1.5, shrunk.X()),
		math.Max(1.5, shrunk.Y()),
		math.Max(1.5, shrunk.Z()),
	}
	return nil
}

// halfDiff sums the changes and halves them, rejecting odd components.
func halfDiff(changes []block.Vector3) (block.Vector3, error) {
	var diff block.Vector3
	for _, change := range changes {
		diff = diff.Add(change)
	}
	if diff.X&1 != 0 || diff.Y&1 != 0 || diff.Z&1 != 0 {
		return block.Vector3{}, errUnevenEllipsoid
	}
	return block.At(diff.X/2, diff.Y/2, diff.Z/2), nil
}

// halfAbsSum sums the absolute changes per axis and halves them, floored.
func halfAbsSum(changes []block.Vector3) mgl64.Vec3 {
	var total block.Vector3
	for _, change := range changes {
		total = total.Add(change.Abs())
	}
	return block.At(total.X/2, total.Y/2, total.Z/2).Vec3()
}

// Points yields every block position inside the ellipsoid.
func (r *EllipsoidRegion) Points() iter.Seq[block.Vector3] {
	return scanPoints(r)
}

// Chunks returns the chunk columns occupied at the center's height, where
// the ellipsoid's footprint is widest.
func (r *EllipsoidRegion) Chunks() []block.Vector2 {
	return chunkColumns(r, r.center.Y)
}

// ChunkCubes returns the chunk-sized cubes the ellipsoid occupies.
func (r *EllipsoidRegion) ChunkCubes() []block.Vector3 {
	return chunkCubes(r)
}

// Polygonize returns the bounding-box footprint corners.
func (r *EllipsoidRegion) Polygonize(maxPoints int) ([]block.Vector2, error) {
	return polygonizeBox(r.MinimumPoint(), r.MaximumPoint(), maxPoints)
}

// Clone returns an independent copy.
func (r *EllipsoidRegion) Clone() Region {
	c := *r
	return &c
}
