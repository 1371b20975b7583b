package ivm

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// SchemaVersion is the fixed version string stamped into every graph's
// metadata. Downstream consumers (renderers, exporters) use it for
// compatibility checks.
const SchemaVersion = "1.0.0"

// NodeType classifies what a node represents in the parsed codebase.
type NodeType string

// Node types, from coarsest to finest.
const (
	NodeTypeRepository NodeType = "repository"
	NodeTypePackage    NodeType = "package"
	NodeTypeNamespace  NodeType = "namespace"
	NodeTypeDirectory  NodeType = "directory"
	NodeTypeModule     NodeType = "module"
	NodeTypeFile       NodeType = "file"
	NodeTypeClass      NodeType = "class"
	NodeTypeInterface  NodeType = "interface"
	NodeTypeEnum       NodeType = "enum"
	NodeTypeFunction   NodeType = "function"
	NodeTypeType       NodeType = "type"
	NodeTypeMethod     NodeType = "method"
	NodeTypeVariable   NodeType = "variable"
)

// EdgeType classifies the relationship an edge represents.
type EdgeType string

// Edge types produced by the upstream analysis stage.
const (
	EdgeTypeContains   EdgeType = "contains"
	EdgeTypeImports    EdgeType = "imports"
	EdgeTypeCalls      EdgeType = "calls"
	EdgeTypeReferences EdgeType = "references"
	EdgeTypeExtends    EdgeType = "extends"
	EdgeTypeImplements EdgeType = "implements"
)

// Metadata keys recognized by the stats calculator and the assembler.
// All other keys pass through untouched.
const (
	MetaLOC             = "loc"
	MetaComplexity      = "complexity"
	MetaDependencyCount = "dependencyCount"
	MetaDependentCount  = "dependentCount"
	MetaLanguage        = "language"
)

// =============================================================================
// Model Types
// =============================================================================

// Position3D is a point in the 3D layout space.
type Position3D struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
	Z float64 `json:"z" bson:"z"`
}

// Metadata stores arbitrary key-value pairs attached to nodes, edges, or the
// graph. Key presence is significant: the stats calculator distinguishes
// "field never set" from "field set to zero", so absent keys must stay absent.
type Metadata map[string]any

// Clone returns a shallow copy of the metadata map.
// Returns nil for nil input so absent metadata stays absent.
func (m Metadata) Clone() Metadata {
	if m == nil {
		return nil
	}
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// StyleInfo carries optional rendering hints attached to a node or edge.
// The core passes it through untouched; only the renderer interprets it.
type StyleInfo struct {
	Color   string  `json:"color,omitempty" bson:"color,omitempty"`
	Shape   string  `json:"shape,omitempty" bson:"shape,omitempty"`
	Scale   float64 `json:"scale,omitempty" bson:"scale,omitempty"`
	Opacity float64 `json:"opacity,omitempty" bson:"opacity,omitempty"`
}

// Node is a positioned, LOD-classified element of the visualization model.
//
// LOD holds the value produced by the classifier for Type, unless a caller
// supplied an override through UpdateNode - overrides are not re-validated,
// a deliberate escape hatch.
type Node struct {
	ID       string     `json:"id" bson:"id"`
	Type     NodeType   `json:"type" bson:"type"`
	Position Position3D `json:"position" bson:"position"`
	LOD      int        `json:"lod" bson:"lod"`
	ParentID string     `json:"parentId,omitempty" bson:"parentId,omitempty"`
	Metadata Metadata   `json:"metadata,omitempty" bson:"metadata,omitempty"`
	Style    *StyleInfo `json:"style,omitempty" bson:"style,omitempty"`
}

// Edge is a typed connection between two nodes. Source and Target should
// reference existing node IDs, but this is not enforced: a dangling endpoint
// degrades to DefaultLOD rather than failing construction.
type Edge struct {
	ID       string     `json:"id" bson:"id"`
	Source   string     `json:"source" bson:"source"`
	Target   string     `json:"target" bson:"target"`
	Type     EdgeType   `json:"type" bson:"type"`
	LOD      int        `json:"lod" bson:"lod"`
	Metadata Metadata   `json:"metadata,omitempty" bson:"metadata,omitempty"`
	Style    *StyleInfo `json:"style,omitempty" bson:"style,omitempty"`
}

// BoundingBox is the axis-aligned minimum enclosing box over node positions.
type BoundingBox struct {
	Min Position3D `json:"min" bson:"min"`
	Max Position3D `json:"max" bson:"max"`
}

// GraphStats holds aggregate statistics derived from a node/edge set.
//
// TotalLOC and AvgComplexity are pointers so that "no node contributed" is
// serialized as an absent field rather than a zero - downstream consumers
// rely on that distinction.
type GraphStats struct {
	TotalNodes    int              `json:"totalNodes" bson:"totalNodes"`
	TotalEdges    int              `json:"totalEdges" bson:"totalEdges"`
	NodesByType   map[NodeType]int `json:"nodesByType" bson:"nodesByType"`
	EdgesByType   map[EdgeType]int `json:"edgesByType" bson:"edgesByType"`
	TotalLOC      *int             `json:"totalLoc,omitempty" bson:"totalLoc,omitempty"`
	AvgComplexity *float64         `json:"avgComplexity,omitempty" bson:"avgComplexity,omitempty"`
}

// GraphMetadata describes a graph snapshot. SchemaVersion, GeneratedAt,
// Languages, and Stats are computed by the assembler and override any
// caller-supplied values on collision; the remaining fields pass through
// from the caller (typically a project manifest).
type GraphMetadata struct {
	SchemaVersion string         `json:"schemaVersion" bson:"schemaVersion"`
	GeneratedAt   string         `json:"generatedAt" bson:"generatedAt"` // RFC 3339, UTC
	Name          string         `json:"name,omitempty" bson:"name,omitempty"`
	RootPath      string         `json:"rootPath,omitempty" bson:"rootPath,omitempty"`
	RepositoryURL string         `json:"repositoryUrl,omitempty" bson:"repositoryUrl,omitempty"`
	Branch        string         `json:"branch,omitempty" bson:"branch,omitempty"`
	Commit        string         `json:"commit,omitempty" bson:"commit,omitempty"`
	Languages     []string       `json:"languages" bson:"languages"`
	Stats         GraphStats     `json:"stats" bson:"stats"`
	Properties    map[string]any `json:"properties,omitempty" bson:"properties,omitempty"`
}

// Graph is an immutable snapshot of the visualization model.
//
// Every mutation (AddNode, RemoveNode, ...) returns a new Graph; no operation
// mutates a graph a caller already holds. Unchanged nodes and edges are shared
// between snapshots by value, which is safe because mutation paths clone any
// map they write to. Multiple goroutines may read the same snapshot without
// synchronization.
type Graph struct {
	Nodes  []Node        `json:"nodes" bson:"nodes"`
	Edges  []Edge        `json:"edges" bson:"edges"`
	Meta   GraphMetadata `json:"metadata" bson:"metadata"`
	Bounds BoundingBox   `json:"bounds" bson:"bounds"`
}

// NodeByID returns the node with the given ID, if present.
func (g Graph) NodeByID(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// EdgeByID returns the edge with the given ID, if present.
func (g Graph) EdgeByID(id string) (Edge, bool) {
	for _, e := range g.Edges {
		if e.ID == id {
			return e, true
		}
	}
	return Edge{}, false
}

// =============================================================================
// Input Types
// =============================================================================

// NodeInput is the raw node record produced by the upstream analysis stage.
type NodeInput struct {
	ID       string     `json:"id" bson:"id"`
	Type     NodeType   `json:"type" bson:"type"`
	ParentID string     `json:"parentId,omitempty" bson:"parentId,omitempty"`
	Metadata Metadata   `json:"metadata,omitempty" bson:"metadata,omitempty"`
	Style    *StyleInfo `json:"style,omitempty" bson:"style,omitempty"`
}

// EdgeInput is the raw edge record produced by the upstream analysis stage.
// ID is optional; when absent the assembler derives a deterministic ID from
// (Source, Target, Type).
type EdgeInput struct {
	ID       string     `json:"id,omitempty" bson:"id,omitempty"`
	Source   string     `json:"source" bson:"source"`
	Target   string     `json:"target" bson:"target"`
	Type     EdgeType   `json:"type" bson:"type"`
	Metadata Metadata   `json:"metadata,omitempty" bson:"metadata,omitempty"`
	Style    *StyleInfo `json:"style,omitempty" bson:"style,omitempty"`
}

// Input is a complete raw node/edge set, the unit the assembler consumes.
type Input struct {
	Nodes []NodeInput `json:"nodes" bson:"nodes"`
	Edges []EdgeInput `json:"edges" bson:"edges"`
}
