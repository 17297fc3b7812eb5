package region

import (
	"testing"

	"github.com/akmonengine/chisel/block"
)

func TestChunks(t *testing.T) {
	// 33 blocks along X starting at 8: columns 0, 1 and 2.
	r := NewCuboidRegion(block.At(8, 0, 0), block.At(40, 5, 7))

	chunks := r.Chunks()
	expected := []block.Vector2{block.At2(0, 0), block.At2(1, 0), block.At2(2, 0)}
	if len(chunks) != len(expected) {
		t.Fatalf("Chunks() = %v, expected %v", chunks, expected)
	}
	for i := range expected {
		if chunks[i] != expected[i] {
			t.Errorf("chunk %d = %v, expected %v", i, chunks[i], expected[i])
		}
	}
}

func TestChunkCubes(t *testing.T) {
	// A column of blocks crossing one vertical chunk boundary.
	r := NewCuboidRegion(block.At(0, 10, 0), block.At(0, 20, 0))

	cubes := r.ChunkCubes()
	expected := []block.Vector3{block.At(0, 0, 0), block.At(0, 1, 0)}
	if len(cubes) != len(expected) {
		t.Fatalf("ChunkCubes() = %v, expected %v", cubes, expected)
	}
	for i := range expected {
		if cubes[i] != expected[i] {
			t.Errorf("cube %d = %v, expected %v", i, cubes[i], expected[i])
		}
	}
}

func TestChunksNegativeCoordinates(t *testing.T) {
	r := NewCuboidRegion(block.At(-1, 0, -1), block.At(0, 0, 0))

	chunks := r.Chunks()
	if len(chunks) != 4 {
		t.Fatalf("Chunks() = %v, expected 4 columns around the origin", chunks)
	}
}

func TestScanPointsOrder(t *testing.T) {
	r := NewCuboidRegion(block.At(0, 0, 0), block.At(1, 0, 1))

	var points []block.Vector3
	for p := range r.Points() {
		points = append(points, p)
	}

	// X varies fastest, then Y, then Z.
	expected := []block.Vector3{
		block.At(0, 0, 0), block.At(1, 0, 0),
		block.At(0, 0, 1), block.At(1, 0, 1),
	}
	if len(points) != len(expected) {
		t.Fatalf("Points() = %v", points)
	}
	for i := range expected {
		if points[i] != expected[i] {
			t.Errorf("point %d = %v, expected %v", i, points[i], expected[i])
		}
	}
}

func TestPointsEarlyStop(t *testing.T) {
	r := NewCuboidRegion(block.At(0, 0, 0), block.At(9, 9, 9))

	count := 0
	for range r.Points() {
		count++
		if count == 5 {
			break
		}
	}
	if count != 5 {
		t.Errorf("stopped after %d points, expected 5", count)
	}
}

func TestPointsByChunk(t *testing.T) {
	r := NewCuboidRegion(block.At(0, 0, 0), block.At(31, 0, 0))

	total := 0
	groups := 0
	for chunk, points := range PointsByChunk(r) {
		groups++
		total += len(points)
		for _, p := range points {
			if p.Chunk() != chunk {
				t.Errorf("point %v grouped under chunk %v", p, chunk)
			}
		}
	}

	if groups != 2 {
		t.Errorf("groups = %d, expected 2", groups)
	}
	if total != 32 {
		t.Errorf("total points = %d, expected 32", total)
	}
}
