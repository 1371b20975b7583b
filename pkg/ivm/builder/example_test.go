package builder_test

import (
	"fmt"

	"github.com/BrianMehrman/diagram-builder/pkg/ivm"
	"github.com/BrianMehrman/diagram-builder/pkg/ivm/builder"
	"github.com/BrianMehrman/diagram-builder/pkg/ivm/layout"
)

func ExampleBuild() {
	in := ivm.Input{
		Nodes: []ivm.NodeInput{
			{ID: "repo", Type: ivm.NodeTypeRepository},
			{ID: "main.go", Type: ivm.NodeTypeFile, ParentID: "repo",
				Metadata: ivm.Metadata{ivm.MetaLanguage: "go", ivm.MetaLOC: 120}},
		},
		Edges: []ivm.EdgeInput{
			{Source: "repo", Target: "main.go", Type: ivm.EdgeTypeContains},
		},
	}

	g := builder.Build(in, ivm.GraphMetadata{Name: "example"}, builder.Options{
		AssignPositions: true,
		Layout:          layout.Options{Strategy: layout.StrategyHierarchical},
	})

	fmt.Println("nodes:", g.Meta.Stats.TotalNodes)
	fmt.Println("edges:", g.Meta.Stats.TotalEdges)
	fmt.Println("languages:", g.Meta.Languages)
	fmt.Println("totalLoc:", *g.Meta.Stats.TotalLOC)
	fmt.Println("edge lod:", g.Edges[0].LOD)
	// Output:
	// nodes: 2
	// edges: 1
	// languages: [go]
	// totalLoc: 120
	// edge lod: 3
}

func ExampleBuilder() {
	g := builder.New("shop", "/src/shop").
		AddNode(ivm.NodeInput{ID: "shop", Type: ivm.NodeTypeRepository}).
		AddNode(ivm.NodeInput{ID: "cart.go", Type: ivm.NodeTypeFile, ParentID: "shop",
			Metadata: ivm.Metadata{ivm.MetaLanguage: "go"}}).
		AddNode(ivm.NodeInput{ID: "cart.ts", Type: ivm.NodeTypeFile, ParentID: "shop",
			Metadata: ivm.Metadata{ivm.MetaLanguage: "typescript"}}).
		AddEdge(ivm.EdgeInput{Source: "shop", Target: "cart.go", Type: ivm.EdgeTypeContains}).
		Build(builder.Options{})

	fmt.Println("name:", g.Meta.Name)
	fmt.Println("nodes:", len(g.Nodes))
	fmt.Println("languages:", g.Meta.Languages)
	// Output:
	// name: shop
	// nodes: 3
	// languages: [go typescript]
}
