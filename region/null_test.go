package region

import (
	"errors"
	"testing"

	"github.com/akmonengine/chisel/block"
)

func TestNullRegion(t *testing.T) {
	r := NewNullRegion()

	if r.Contains(block.At(0, 0, 0)) {
		t.Error("null region contains the origin")
	}
	if got := r.Area(); got != 0 {
		t.Errorf("Area() = %d", got)
	}

	if err := r.Shift(block.At(1, 0, 0)); !errors.Is(err, errNullRegion) {
		t.Errorf("Shift() = %v, expected errNullRegion", err)
	}
	if err := r.Expand(block.At(1, 0, 0)); !errors.Is(err, errNullRegion) {
		t.Errorf("Expand() = %v, expected errNullRegion", err)
	}
	if err := r.Contract(block.At(1, 0, 0)); !errors.Is(err, errNullRegion) {
		t.Errorf("Contract() = %v, expected errNullRegion", err)
	}

	for p := range r.Points() {
		t.Errorf("Points() yielded %v", p)
	}
	if got := r.Chunks(); len(got) != 0 {
		t.Errorf("Chunks() = %v", got)
	}

	// Polygonize ignores the budget entirely, even an invalid one.
	points, err := r.Polygonize(0)
	if err != nil {
		t.Errorf("Polygonize(0) = %v", err)
	}
	if len(points) != 0 {
		t.Errorf("Polygonize(0) = %v", points)
	}
}

func TestNullRegionClone(t *testing.T) {
	r := NewNullRegion()
	c := r.Clone()

	if _, ok := c.(*NullRegion); !ok {
		t.Errorf("Clone() = %T, expected *NullRegion", c)
	}
	if c == Region(r) {
		t.Error("Clone() returned the same instance")
	}
}
