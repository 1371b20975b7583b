package layout

import (
	"math"

	"github.com/BrianMehrman/diagram-builder/pkg/ivm"
)

// assignGrid places nodes on a square grid in the y=0 plane, centered on
// the origin. The grid side is ceil(sqrt(n)); a node's cell is determined
// purely by its insertion index, so the pass is O(n) and needs no identity
// lookups.
func assignGrid(nodes []ivm.Node, opts Options) {
	n := len(nodes)
	if n == 0 {
		return
	}

	gridSize := int(math.Ceil(math.Sqrt(float64(n))))
	offset := float64(gridSize) * opts.Spacing / 2

	for i := range nodes {
		row := i / gridSize
		col := i % gridSize
		nodes[i].Position = ivm.Position3D{
			X: float64(col)*opts.Spacing - offset,
			Y: 0,
			Z: float64(row)*opts.Spacing - offset,
		}
	}
}
