package ivm

// =============================================================================
// Level-of-Detail Classification
// =============================================================================

// DefaultLOD is the detail level assigned to node types outside the fixed
// table, and to edge endpoints that don't resolve to a node. File-level
// detail is the middle of the scale, so unknown elements appear once the
// viewer is reasonably zoomed in without being always-visible.
const DefaultLOD = 3

// lodTable maps each known node type to its detail level. Lower levels are
// coarser: a repository is always visible, a variable only at full zoom.
var lodTable = map[NodeType]int{
	NodeTypeRepository: 0,
	NodeTypePackage:    1,
	NodeTypeNamespace:  1,
	NodeTypeDirectory:  2,
	NodeTypeModule:     2,
	NodeTypeFile:       3,
	NodeTypeClass:      4,
	NodeTypeInterface:  4,
	NodeTypeEnum:       4,
	NodeTypeFunction:   4,
	NodeTypeType:       5,
	NodeTypeMethod:     5,
	NodeTypeVariable:   5,
}

// AssignLOD returns the detail level for a node type.
// Unlisted types yield DefaultLOD; the function is total.
func AssignLOD(t NodeType) int {
	if lod, ok := lodTable[t]; ok {
		return lod
	}
	return DefaultLOD
}

// EdgeLOD returns the detail level for an edge given its endpoint levels.
//
// The max is taken because an edge should only render once both endpoints
// are visible: gating on the coarser endpoint would draw edges to nodes the
// viewer cannot see yet.
func EdgeLOD(sourceLOD, targetLOD int) int {
	if sourceLOD > targetLOD {
		return sourceLOD
	}
	return targetLOD
}
