// Package ivm defines the Internal Visualization Model: a graph of
// 3D-positioned, LOD-classified nodes and edges representing a parsed
// codebase, plus the pure operations that derive and maintain it.
//
// # Model
//
// A [Graph] is an immutable snapshot: nodes with positions and detail
// levels, typed edges, a bounding box, and metadata carrying aggregate
// statistics. Snapshots are value types - every mutator returns a new
// graph and never touches the one passed in, so any number of goroutines
// can read a snapshot concurrently without locks.
//
// # Level of Detail
//
// Each node carries an integer LOD derived from its type by [AssignLOD]:
// lower levels are coarser (repository = 0, always visible), higher levels
// are finer (variable = 5, full zoom only). An edge's level is the max of
// its endpoints' levels, so it only appears once both are visible.
//
// # Construction
//
// Raw [NodeInput]/[EdgeInput] records from an upstream analysis stage are
// assembled into a graph by the builder package; position assignment lives
// in the layout package. This package deliberately raises no errors on the
// data path: dangling edge references degrade to [DefaultLOD], empty inputs
// produce a well-formed empty graph.
package ivm
