package chisel

import (
	"github.com/akmonengine/chisel/block"
	"github.com/akmonengine/chisel/region"
)

// ChunkIndex buckets block positions by the chunk column they fall in,
// preserving the order in which columns are first met. World backends
// commit edits chunk by chunk, so every bulk operation wants its points
// grouped this way.
type ChunkIndex struct {
	buckets map[block.Vector2][]block.Vector3
	order   []block.Vector2
	size    int
}

// NewChunkIndex returns an empty index.
func NewChunkIndex() *ChunkIndex {
	return &ChunkIndex{
		buckets: make(map[block.Vector2][]block.Vector3),
	}
}

// IndexRegion buckets every point of the region into a fresh index.
func IndexRegion(r region.Region) *ChunkIndex {
	ci := NewChunkIndex()
	for p := range r.Points() {
		ci.Insert(p)
	}
	return ci
}

// Insert files the position under its chunk column.
func (ci *ChunkIndex) Insert(position block.Vector3) {
	chunk := position.Chunk()
	bucket, ok := ci.buckets[chunk]
	if !ok {
		bucket = make([]block.Vector3, 0, 64)
	}
	// Clear keeps emptied buckets in the map, so an empty bucket means the
	// column is missing from order whether the map entry exists or not.
	if len(bucket) == 0 {
		ci.order = append(ci.order, chunk)
	}
	ci.buckets[chunk] = append(bucket, position)
	ci.size++
}

// Len returns the number of indexed positions.
func (ci *ChunkIndex) Len() int { return ci.size }

// InChunk returns the positions filed under the given chunk column.
func (ci *ChunkIndex) InChunk(chunk block.Vector2) []block.Vector3 {
	return ci.buckets[chunk]
}

// CoveredChunks returns the occupied chunk columns in first-met order.
func (ci *ChunkIndex) CoveredChunks() []block.Vector2 {
	return append([]block.Vector2(nil), ci.order...)
}

// Sort orders the positions of every bucket layer by layer (Y, then Z,
// then X), the order block iteration conventionally uses.
func (ci *ChunkIndex) Sort() {
	for _, bucket := range ci.buckets {
		block.SortYzx(bucket)
	}
}

// Clear drops every bucket but keeps their backing arrays for reuse.
func (ci *ChunkIndex) Clear() {
	for chunk, bucket := range ci.buckets {
		ci.buckets[chunk] = bucket[:0]
	}
	ci.order = ci.order[:0]
	ci.size = 0
}

// ForEachChunk calls fn once per occupied column, in first-met order.
func (ci *ChunkIndex) ForEachChunk(fn func(chunk block.Vector2, points []block.Vector3)) {
	for _, chunk := range ci.order {
		fn(chunk, ci.buckets[chunk])
	}
}

// ForEachChunkParallel distributes the occupied columns over workersCount
// goroutines. Buckets never overlap, so fn may mutate per-chunk state
// freely; anything shared across chunks needs its own synchronization.
func (ci *ChunkIndex) ForEachChunkParallel(workersCount int, fn func(chunk block.Vector2, points []block.Vector3)) {
	workersCount = max(DEFAULT_WORKERS, workersCount)
	Task(workersCount, ci.order, func(chunk block.Vector2) {
		fn(chunk, ci.buckets[chunk])
	})
}
