package ivm

import "fmt"

// =============================================================================
// Node/Edge Materialization
// =============================================================================

// NewNode materializes a raw node input: the LOD classifier is applied, the
// position defaults to the origin, and metadata is cloned so the caller's
// input map is never aliased by a graph snapshot.
func NewNode(in NodeInput) Node {
	return Node{
		ID:       in.ID,
		Type:     in.Type,
		LOD:      AssignLOD(in.Type),
		ParentID: in.ParentID,
		Metadata: in.Metadata.Clone(),
		Style:    in.Style,
	}
}

// NewEdge materializes a raw edge input against resolved endpoint levels.
// When the input carries no ID, a deterministic one is derived from
// (Source, Target, Type) via EdgeID.
func NewEdge(in EdgeInput, sourceLOD, targetLOD int) Edge {
	id := in.ID
	if id == "" {
		id = EdgeID(in.Source, in.Target, in.Type)
	}
	return Edge{
		ID:       id,
		Source:   in.Source,
		Target:   in.Target,
		Type:     in.Type,
		LOD:      EdgeLOD(sourceLOD, targetLOD),
		Metadata: in.Metadata.Clone(),
		Style:    in.Style,
	}
}

// EdgeID derives a deterministic edge identifier from the endpoints and type.
//
// Two logically distinct edges sharing the same (source, target, type) triple
// collide onto the same ID. This matches the upstream contract - analysis
// stages emitting parallel edges of one type must supply their own IDs.
func EdgeID(source, target string, t EdgeType) string {
	return fmt.Sprintf("%s->%s:%s", source, target, t)
}

// =============================================================================
// Mutators
// =============================================================================
//
// Every mutator returns a new Graph value with Bounds and Meta.Stats
// recomputed from the resulting node/edge set, so they are never stale.
// The input graph is never modified: slices are rebuilt, and any map that
// a mutation writes to is cloned first.

// AddNode returns a new graph with the materialized node appended.
func AddNode(g Graph, in NodeInput) Graph {
	nodes := make([]Node, len(g.Nodes), len(g.Nodes)+1)
	copy(nodes, g.Nodes)
	g.Nodes = append(nodes, NewNode(in))
	return rederive(g)
}

// AddEdge returns a new graph with the materialized edge appended.
// Edge LOD is recomputed from the current endpoints exactly as the assembler
// would, with DefaultLOD standing in for a missing endpoint.
func AddEdge(g Graph, in EdgeInput) Graph {
	sourceLOD, targetLOD := DefaultLOD, DefaultLOD
	if n, ok := g.NodeByID(in.Source); ok {
		sourceLOD = n.LOD
	}
	if n, ok := g.NodeByID(in.Target); ok {
		targetLOD = n.LOD
	}

	edges := make([]Edge, len(g.Edges), len(g.Edges)+1)
	copy(edges, g.Edges)
	g.Edges = append(edges, NewEdge(in, sourceLOD, targetLOD))
	return rederive(g)
}

// RemoveNode returns a new graph without the identified node. The removal
// cascades: every edge whose source or target references the node is dropped
// as well, so no dangling references are introduced.
func RemoveNode(g Graph, id string) Graph {
	nodes := make([]Node, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.ID != id {
			nodes = append(nodes, n)
		}
	}

	edges := make([]Edge, 0, len(g.Edges))
	for _, e := range g.Edges {
		if e.Source != id && e.Target != id {
			edges = append(edges, e)
		}
	}

	g.Nodes = nodes
	g.Edges = edges
	return rederive(g)
}

// RemoveEdge returns a new graph without the identified edge. No cascade.
func RemoveEdge(g Graph, id string) Graph {
	edges := make([]Edge, 0, len(g.Edges))
	for _, e := range g.Edges {
		if e.ID != id {
			edges = append(edges, e)
		}
	}
	g.Edges = edges
	return rederive(g)
}

// NodeUpdate describes a partial node modification. Nil fields are left
// untouched; a non-nil Metadata replaces the node's metadata wholesale
// (field-level shallow merge, matching the update semantics of the model).
//
// LOD accepts any value without re-validation against the node's type - a
// deliberate escape hatch for callers that manage detail levels themselves.
type NodeUpdate struct {
	Type     *NodeType
	Position *Position3D
	LOD      *int
	ParentID *string
	Metadata Metadata
	Style    *StyleInfo
}

// UpdateNode returns a new graph with the update shallow-merged into the
// node matching id. The node's ID itself is immutable and no other node is
// touched. A missing id leaves the graph unchanged apart from the usual
// stats/bounds rederivation.
func UpdateNode(g Graph, id string, upd NodeUpdate) Graph {
	nodes := make([]Node, len(g.Nodes))
	copy(nodes, g.Nodes)

	for i := range nodes {
		if nodes[i].ID != id {
			continue
		}
		if upd.Type != nil {
			nodes[i].Type = *upd.Type
		}
		if upd.Position != nil {
			nodes[i].Position = *upd.Position
		}
		if upd.LOD != nil {
			nodes[i].LOD = *upd.LOD
		}
		if upd.ParentID != nil {
			nodes[i].ParentID = *upd.ParentID
		}
		if upd.Metadata != nil {
			nodes[i].Metadata = upd.Metadata.Clone()
		}
		if upd.Style != nil {
			nodes[i].Style = upd.Style
		}
		break
	}

	g.Nodes = nodes
	return rederive(g)
}

// rederive recomputes the aggregates that mutation can invalidate.
func rederive(g Graph) Graph {
	g.Meta.Stats = CalculateStats(g.Nodes, g.Edges)
	g.Bounds = CalculateBounds(g.Nodes)
	return g
}
