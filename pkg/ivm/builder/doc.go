// Package builder assembles raw analysis output into visualization model
// snapshots.
//
// [Build] is the one-shot assembler: materialize nodes through the LOD
// classifier, resolve edges (counting dependencies on both endpoints),
// optionally run a layout pass, then stamp the result with computed bounds,
// stats, languages, and schema version. [Builder] is a fluent accumulation
// façade over it for composing a graph from multiple sources before
// finalizing.
package builder
