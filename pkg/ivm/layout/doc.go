// Package layout assigns 3D positions to visualization model nodes.
//
// Two interchangeable strategies are provided: a flat grid in the y=0 plane
// (cheap, identity-free, deterministic by insertion order) and a
// hierarchical tree driven by each node's ParentID (roots on the x axis,
// children fanning out one level down per depth). Both are pure CPU passes
// over a node slice - no I/O, no errors, no goroutines.
package layout
