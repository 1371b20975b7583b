package builder

import (
	"testing"
	"time"

	"github.com/BrianMehrman/diagram-builder/pkg/ivm"
	"github.com/BrianMehrman/diagram-builder/pkg/ivm/layout"
)

func TestBuildEmpty(t *testing.T) {
	g := Build(ivm.Input{}, ivm.GraphMetadata{}, Options{})

	if len(g.Nodes) != 0 || len(g.Edges) != 0 {
		t.Fatalf("empty input produced %d/%d elements", len(g.Nodes), len(g.Edges))
	}
	if g.Meta.Stats.TotalNodes != 0 || g.Meta.Stats.TotalEdges != 0 {
		t.Error("stats not zero for empty graph")
	}
	if g.Bounds != (ivm.BoundingBox{}) {
		t.Errorf("bounds = %+v, want degenerate zero box", g.Bounds)
	}
	if g.Meta.SchemaVersion != ivm.SchemaVersion {
		t.Errorf("schemaVersion = %q", g.Meta.SchemaVersion)
	}
	if _, err := time.Parse(time.RFC3339, g.Meta.GeneratedAt); err != nil {
		t.Errorf("generatedAt %q not RFC 3339: %v", g.Meta.GeneratedAt, err)
	}
	if g.Meta.Languages == nil || len(g.Meta.Languages) != 0 {
		t.Errorf("languages = %v, want empty set", g.Meta.Languages)
	}
}

func TestBuildDependencyCounts(t *testing.T) {
	in := ivm.Input{
		Nodes: []ivm.NodeInput{
			{ID: "a", Type: ivm.NodeTypeFile},
			{ID: "b", Type: ivm.NodeTypeFile},
			{ID: "c", Type: ivm.NodeTypeFile},
		},
		Edges: []ivm.EdgeInput{
			{Source: "a", Target: "b", Type: ivm.EdgeTypeImports},
			{Source: "a", Target: "c", Type: ivm.EdgeTypeImports},
			{Source: "b", Target: "c", Type: ivm.EdgeTypeImports},
			{Source: "ghost", Target: "c", Type: ivm.EdgeTypeImports}, // dangling source ignored
		},
	}

	g := Build(in, ivm.GraphMetadata{}, Options{})

	a, _ := g.NodeByID("a")
	if a.Metadata[ivm.MetaDependencyCount] != 2 {
		t.Errorf("a dependencyCount = %v, want 2", a.Metadata[ivm.MetaDependencyCount])
	}
	if _, present := a.Metadata[ivm.MetaDependentCount]; present {
		t.Error("a has no dependents; counter must stay absent, not zero")
	}

	c, _ := g.NodeByID("c")
	if c.Metadata[ivm.MetaDependentCount] != 3 {
		t.Errorf("c dependentCount = %v, want 3", c.Metadata[ivm.MetaDependentCount])
	}
}

func TestBuildDependencyCountsIncrementDecodedValues(t *testing.T) {
	// Counters arriving through JSON decoding are float64; the count pass
	// must increment them, not restart at 1.
	in := ivm.Input{
		Nodes: []ivm.NodeInput{
			{ID: "a", Type: ivm.NodeTypeFile, Metadata: ivm.Metadata{ivm.MetaDependencyCount: float64(2)}},
			{ID: "b", Type: ivm.NodeTypeFile},
		},
		Edges: []ivm.EdgeInput{
			{Source: "a", Target: "b", Type: ivm.EdgeTypeImports},
		},
	}

	g := Build(in, ivm.GraphMetadata{}, Options{})

	a, _ := g.NodeByID("a")
	if a.Metadata[ivm.MetaDependencyCount] != 3 {
		t.Errorf("a dependencyCount = %v, want 3", a.Metadata[ivm.MetaDependencyCount])
	}
}

func TestBuildDanglingEdge(t *testing.T) {
	in := ivm.Input{
		Nodes: []ivm.NodeInput{{ID: "a", Type: ivm.NodeTypeRepository}},
		Edges: []ivm.EdgeInput{{Source: "a", Target: "missing", Type: ivm.EdgeTypeContains}},
	}

	g := Build(in, ivm.GraphMetadata{}, Options{})

	if len(g.Edges) != 1 {
		t.Fatal("dangling edge must not fail construction")
	}
	// max(repository=0, DefaultLOD fallback)
	if g.Edges[0].LOD != ivm.DefaultLOD {
		t.Errorf("edge LOD = %d, want %d", g.Edges[0].LOD, ivm.DefaultLOD)
	}
}

func TestBuildInputNotAliased(t *testing.T) {
	meta := ivm.Metadata{ivm.MetaLOC: 10}
	in := ivm.Input{
		Nodes: []ivm.NodeInput{
			{ID: "a", Type: ivm.NodeTypeFile, Metadata: meta},
			{ID: "b", Type: ivm.NodeTypeFile},
		},
		Edges: []ivm.EdgeInput{{Source: "a", Target: "b", Type: ivm.EdgeTypeImports}},
	}

	Build(in, ivm.GraphMetadata{}, Options{})

	// the dependency-count pass mutates freshly created nodes, never the
	// caller's input maps
	if _, leaked := meta[ivm.MetaDependencyCount]; leaked {
		t.Error("assembler wrote through to caller-owned input metadata")
	}
}

func TestBuildMetadataStamp(t *testing.T) {
	in := ivm.Input{
		Nodes: []ivm.NodeInput{
			{ID: "a", Type: ivm.NodeTypeFile, Metadata: ivm.Metadata{ivm.MetaLanguage: "go"}},
		},
	}
	caller := ivm.GraphMetadata{
		SchemaVersion: "0.0.1-bogus", // computed value must win
		GeneratedAt:   "yesterday",   // computed value must win
		Name:          "proj",
		RootPath:      "/src/proj",
		Languages:     []string{"python"},
		Properties:    map[string]any{"tier": "gold"},
	}

	g := Build(in, caller, Options{})

	if g.Meta.SchemaVersion != ivm.SchemaVersion {
		t.Errorf("schemaVersion = %q, caller value must be overridden", g.Meta.SchemaVersion)
	}
	if g.Meta.GeneratedAt == "yesterday" {
		t.Error("generatedAt not restamped")
	}
	if g.Meta.Name != "proj" || g.Meta.RootPath != "/src/proj" {
		t.Error("caller passthrough fields lost")
	}
	if g.Meta.Properties["tier"] != "gold" {
		t.Error("caller properties lost")
	}
	// languages is computed from node tags; the caller's declared value is
	// overridden like schemaVersion and generatedAt
	if len(g.Meta.Languages) != 1 || g.Meta.Languages[0] != "go" {
		t.Errorf("languages = %v, want [go]", g.Meta.Languages)
	}
}

func TestBuildGridLayout(t *testing.T) {
	in := ivm.Input{
		Nodes: []ivm.NodeInput{
			{ID: "a", Type: ivm.NodeTypeFile},
			{ID: "b", Type: ivm.NodeTypeFile},
			{ID: "c", Type: ivm.NodeTypeFile},
			{ID: "d", Type: ivm.NodeTypeFile},
		},
	}

	g := Build(in, ivm.GraphMetadata{}, Options{
		AssignPositions: true,
		Layout:          layout.Options{Strategy: layout.StrategyGrid, Spacing: 10},
	})

	seen := make(map[ivm.Position3D]bool)
	for _, n := range g.Nodes {
		if seen[n.Position] {
			t.Fatalf("duplicate position %+v", n.Position)
		}
		seen[n.Position] = true
	}

	// bounds reflect the assigned positions
	if g.Bounds.Min == g.Bounds.Max {
		t.Error("bounds degenerate despite layout pass")
	}
}

func TestBuildWithoutPositions(t *testing.T) {
	in := ivm.Input{
		Nodes: []ivm.NodeInput{
			{ID: "a", Type: ivm.NodeTypeFile},
			{ID: "b", Type: ivm.NodeTypeFile},
		},
	}

	g := Build(in, ivm.GraphMetadata{}, Options{})

	for _, n := range g.Nodes {
		if n.Position != (ivm.Position3D{}) {
			t.Errorf("node %s at %+v, want origin", n.ID, n.Position)
		}
	}
}

// TestBuildEndToEnd is the canonical scenario: a repository→file→class
// parent chain with one containment edge, laid out hierarchically.
func TestBuildEndToEnd(t *testing.T) {
	in := ivm.Input{
		Nodes: []ivm.NodeInput{
			{ID: "repo", Type: ivm.NodeTypeRepository},
			{ID: "file", Type: ivm.NodeTypeFile, ParentID: "repo"},
			{ID: "class", Type: ivm.NodeTypeClass, ParentID: "file"},
		},
		Edges: []ivm.EdgeInput{
			{Source: "file", Target: "class", Type: ivm.EdgeTypeContains},
		},
	}

	g := Build(in, ivm.GraphMetadata{}, Options{
		AssignPositions: true,
		Layout:          layout.Options{Strategy: layout.StrategyHierarchical, Spacing: 10},
	})

	wantLOD := map[string]int{"repo": 0, "file": 3, "class": 4}
	for id, want := range wantLOD {
		n, ok := g.NodeByID(id)
		if !ok {
			t.Fatalf("node %s missing", id)
		}
		if n.LOD != want {
			t.Errorf("%s LOD = %d, want %d", id, n.LOD, want)
		}
	}

	if len(g.Edges) != 1 || g.Edges[0].LOD != 4 {
		t.Fatalf("edge LOD = %d, want max(3,4)=4", g.Edges[0].LOD)
	}

	repo, _ := g.NodeByID("repo")
	file, _ := g.NodeByID("file")
	class, _ := g.NodeByID("class")
	if !(class.Position.Y < file.Position.Y && file.Position.Y < repo.Position.Y) {
		t.Errorf("y order wrong: repo=%v file=%v class=%v",
			repo.Position.Y, file.Position.Y, class.Position.Y)
	}

	if g.Meta.Stats.TotalNodes != 3 || g.Meta.Stats.TotalEdges != 1 {
		t.Errorf("stats = %+v", g.Meta.Stats)
	}
}
