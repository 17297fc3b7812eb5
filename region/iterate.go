package region

import (
	"iter"

	"github.com/akmonengine/chisel/block"
)

// PointsByChunk yields the region's blocks grouped by chunk column, in
// the order the columns are first met during the point scan.
func PointsByChunk(r Region) iter.Seq2[block.Vector2, []block.Vector3] {
	return func(yield func(block.Vector2, []block.Vector3) bool) {
		groups := map[block.Vector2][]block.Vector3{}
		var order []block.Vector2

		for p := range r.Points() {
			chunk := p.Chunk()
			if _, ok := groups[chunk]; !ok {
				order = append(order, chunk)
			}
			groups[chunk] = append(groups[chunk], p)
		}

		for _, chunk := range order {
			if !yield(chunk, groups[chunk]) {
				return
			}
		}
	}
}
