package layout

import (
	"strconv"
	"testing"

	"github.com/BrianMehrman/diagram-builder/pkg/ivm"
)

func TestHierarchicalParentChildDrop(t *testing.T) {
	nodes := []ivm.Node{
		{ID: "root", Type: ivm.NodeTypeRepository},
		{ID: "a", ParentID: "root", Type: ivm.NodeTypeDirectory},
		{ID: "b", ParentID: "root", Type: ivm.NodeTypeDirectory},
		{ID: "a1", ParentID: "a", Type: ivm.NodeTypeFile},
		{ID: "a2", ParentID: "a", Type: ivm.NodeTypeFile},
		{ID: "b1", ParentID: "b", Type: ivm.NodeTypeFile},
	}
	opts := Options{Strategy: StrategyHierarchical, Spacing: 10, VerticalSpacing: 6}
	Assign(nodes, opts)

	byID := make(map[string]ivm.Position3D)
	for _, n := range nodes {
		byID[n.ID] = n.Position
	}

	// every child sits exactly one VerticalSpacing below its parent
	for _, n := range nodes {
		if n.ParentID == "" {
			continue
		}
		parent := byID[n.ParentID]
		if n.Position.Y != parent.Y-6 {
			t.Errorf("%s: y = %v, want %v", n.ID, n.Position.Y, parent.Y-6)
		}
		if n.Position.Z != parent.Z {
			t.Errorf("%s: z = %v, want parent's %v", n.ID, n.Position.Z, parent.Z)
		}
	}
}

func TestHierarchicalRoots(t *testing.T) {
	nodes := []ivm.Node{
		{ID: "r1", Type: ivm.NodeTypeRepository},
		{ID: "r2", Type: ivm.NodeTypeRepository},
		{ID: "r3", Type: ivm.NodeTypeRepository},
	}
	Assign(nodes, Options{Strategy: StrategyHierarchical, Spacing: 10})

	// roots at y=0, separated by 2*spacing, centered on the origin
	wantX := []float64{-20, 0, 20}
	for i, n := range nodes {
		if n.Position.Y != 0 {
			t.Errorf("%s: y = %v, want 0", n.ID, n.Position.Y)
		}
		if n.Position.X != wantX[i] {
			t.Errorf("%s: x = %v, want %v", n.ID, n.Position.X, wantX[i])
		}
	}
}

func TestHierarchicalSingleRootCentered(t *testing.T) {
	nodes := []ivm.Node{{ID: "only", Type: ivm.NodeTypeRepository}}
	Assign(nodes, Options{Strategy: StrategyHierarchical, Spacing: 10})

	if nodes[0].Position != (ivm.Position3D{}) {
		t.Errorf("single root = %+v, want origin", nodes[0].Position)
	}
}

func TestHierarchicalChildrenCenteredOnParent(t *testing.T) {
	nodes := []ivm.Node{
		{ID: "root"},
		{ID: "a", ParentID: "root"},
		{ID: "b", ParentID: "root"},
	}
	Assign(nodes, Options{Strategy: StrategyHierarchical, Spacing: 10, HorizontalSpacing: 8})

	var sum float64
	for _, n := range nodes[1:] {
		sum += n.Position.X
	}
	if mean := sum / 2; mean != nodes[0].Position.X {
		t.Errorf("children mean x = %v, want parent x %v", mean, nodes[0].Position.X)
	}
	if nodes[1].Position.X == nodes[2].Position.X {
		t.Error("siblings share an x coordinate")
	}
}

func TestHierarchicalDuplicateClaim(t *testing.T) {
	// two parents claim the same child ID; the visited set must keep the
	// traversal from positioning it twice or looping
	nodes := []ivm.Node{
		{ID: "r1"},
		{ID: "r2"},
		{ID: "shared", ParentID: "r1"},
		{ID: "shared", ParentID: "r2"},
	}
	Assign(nodes, Options{Strategy: StrategyHierarchical, Spacing: 10})

	// exactly one claimant wins; the other entry keeps its default position
	positioned := 0
	for _, n := range nodes[2:] {
		if n.Position.Y != 0 {
			positioned++
		}
	}
	if positioned != 1 {
		t.Errorf("positioned = %d duplicate entries, want exactly 1", positioned)
	}
}

func TestHierarchicalParentCycleDoesNotHang(t *testing.T) {
	// a ParentID cycle has no root; nodes on it stay at the origin and the
	// pass must terminate
	nodes := []ivm.Node{
		{ID: "a", ParentID: "b"},
		{ID: "b", ParentID: "a"},
		{ID: "root"},
	}
	Assign(nodes, Options{Strategy: StrategyHierarchical, Spacing: 10})

	if nodes[0].Position != (ivm.Position3D{}) || nodes[1].Position != (ivm.Position3D{}) {
		t.Error("unreachable cycle nodes should keep their default position")
	}
}

func TestHierarchicalDeepChain(t *testing.T) {
	// a long parent chain must not blow the stack (explicit-stack traversal)
	const depth = 100000
	nodes := make([]ivm.Node, depth)
	nodes[0] = ivm.Node{ID: "n0"}
	for i := 1; i < depth; i++ {
		nodes[i] = ivm.Node{ID: "n" + strconv.Itoa(i), ParentID: "n" + strconv.Itoa(i-1)}
	}
	Assign(nodes, Options{Strategy: StrategyHierarchical, Spacing: 1, VerticalSpacing: 1})

	if nodes[depth-1].Position.Y != -float64(depth-1) {
		t.Errorf("leaf y = %v, want %v", nodes[depth-1].Position.Y, -float64(depth-1))
	}
}
