package layout

import (
	"github.com/BrianMehrman/diagram-builder/pkg/ivm"
)

// assignHierarchical lays out the implicit forest formed by each node's
// ParentID. Roots (nodes with no parent) are spread along x at y=0,
// separated by 2*Spacing and centered on the origin. Each node's direct
// children are spread evenly across a span of len(children)*HorizontalSpacing
// centered at the parent's x, one VerticalSpacing below it, in the parent's
// z plane.
//
// The traversal is an explicit-stack DFS over a precomputed parent→children
// index, so depth is bounded on deep or malformed parent chains and each
// node is visited once. A visited set guards against a node reachable via
// more than one claimed parent; nodes on a ParentID cycle are unreachable
// from any root and keep their default position.
func assignHierarchical(nodes []ivm.Node, opts Options) {
	if len(nodes) == 0 {
		return
	}

	children := make(map[string][]int, len(nodes))
	var roots []int
	for i, n := range nodes {
		if n.ParentID == "" {
			roots = append(roots, i)
			continue
		}
		children[n.ParentID] = append(children[n.ParentID], i)
	}

	rootSpacing := 2 * opts.Spacing
	rootOffset := float64(len(roots)-1) * rootSpacing / 2

	visited := make(map[string]struct{}, len(nodes))
	stack := make([]int, 0, len(nodes))

	for i, root := range roots {
		nodes[root].Position = ivm.Position3D{
			X: float64(i)*rootSpacing - rootOffset,
			Y: 0,
			Z: 0,
		}
		visited[nodes[root].ID] = struct{}{}
		stack = append(stack, root)
	}

	for len(stack) > 0 {
		parent := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		p := nodes[parent].Position
		kids := children[nodes[parent].ID]
		span := float64(len(kids)) * opts.HorizontalSpacing

		placed := 0
		for _, kid := range kids {
			if _, seen := visited[nodes[kid].ID]; seen {
				continue
			}
			visited[nodes[kid].ID] = struct{}{}
			nodes[kid].Position = ivm.Position3D{
				X: p.X - span/2 + (float64(placed)+0.5)*opts.HorizontalSpacing,
				Y: p.Y - opts.VerticalSpacing,
				Z: p.Z,
			}
			placed++
			stack = append(stack, kid)
		}
	}
}
