package builder

import (
	"time"

	"github.com/BrianMehrman/diagram-builder/pkg/ivm"
	"github.com/BrianMehrman/diagram-builder/pkg/ivm/layout"
)

// =============================================================================
// Options
// =============================================================================

// Options configures a single assembly pass.
type Options struct {
	// AssignPositions runs the selected layout strategy over the node set.
	// When false, all nodes stay at the origin.
	AssignPositions bool `json:"assignPositions,omitempty" bson:"assignPositions,omitempty"`

	// Layout selects and tunes the position assigner.
	Layout layout.Options `json:"layout,omitempty" bson:"layout,omitempty"`
}

// =============================================================================
// Graph Assembly
// =============================================================================

// Build turns a raw input set and partial metadata into a complete graph
// snapshot. It never returns an error: dangling edge references degrade to
// ivm.DefaultLOD, empty inputs yield a well-formed zero-sized graph, and
// callers needing strict referential integrity must validate inputs first.
//
// Caller-supplied metadata passes through, except that SchemaVersion,
// GeneratedAt, Stats, and Languages are computed here and win on collision.
func Build(in ivm.Input, meta ivm.GraphMetadata, opts Options) ivm.Graph {
	// Materialize nodes: classifier applied, positions at the origin.
	nodes := make([]ivm.Node, len(in.Nodes))
	for i, ni := range in.Nodes {
		nodes[i] = ivm.NewNode(ni)
	}

	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		index[n.ID] = i
	}

	// Count dependencies on resolved endpoints. This pass mutates the
	// freshly created nodes in place - safe because no other holder has
	// seen them yet.
	for _, ei := range in.Edges {
		if i, ok := index[ei.Source]; ok {
			bumpCount(&nodes[i], ivm.MetaDependencyCount)
		}
		if i, ok := index[ei.Target]; ok {
			bumpCount(&nodes[i], ivm.MetaDependentCount)
		}
	}

	edges := make([]ivm.Edge, len(in.Edges))
	for i, ei := range in.Edges {
		sourceLOD, targetLOD := ivm.DefaultLOD, ivm.DefaultLOD
		if j, ok := index[ei.Source]; ok {
			sourceLOD = nodes[j].LOD
		}
		if j, ok := index[ei.Target]; ok {
			targetLOD = nodes[j].LOD
		}
		edges[i] = ivm.NewEdge(ei, sourceLOD, targetLOD)
	}

	if opts.AssignPositions {
		layout.Assign(nodes, opts.Layout)
	}

	meta.SchemaVersion = ivm.SchemaVersion
	meta.GeneratedAt = time.Now().UTC().Format(time.RFC3339)
	meta.Stats = ivm.CalculateStats(nodes, edges)
	// Languages is a computed field: only tags observed on nodes count,
	// caller-declared values are replaced like the other stamped fields.
	meta.Languages = ivm.CollectLanguages(nodes, nil)

	return ivm.Graph{
		Nodes:  nodes,
		Edges:  edges,
		Meta:   meta,
		Bounds: ivm.CalculateBounds(nodes),
	}
}

// bumpCount increments an integer metadata counter, creating the metadata
// map on first use. Pre-existing values are read through a numeric
// coercion: inputs that went through JSON decoding carry counters as
// float64, not int.
func bumpCount(n *ivm.Node, key string) {
	if n.Metadata == nil {
		n.Metadata = ivm.Metadata{}
	}
	count := 0
	switch v := n.Metadata[key].(type) {
	case int:
		count = v
	case int32:
		count = int(v)
	case int64:
		count = int(v)
	case float64:
		count = int(v)
	case float32:
		count = int(v)
	}
	n.Metadata[key] = count + 1
}
