package builder

import (
	"github.com/BrianMehrman/diagram-builder/pkg/ivm"
)

// =============================================================================
// Fluent Builder
// =============================================================================

// Builder accumulates node/edge inputs and graph-level metadata from any
// number of upstream sources (e.g. multiple parse passes over one
// repository) before finalizing exactly once with Build.
//
// All With/Add methods return the receiver for chaining. A Builder is not
// safe for concurrent use; compose on one goroutine, then share the built
// snapshot freely.
type Builder struct {
	nodes []ivm.NodeInput
	edges []ivm.EdgeInput
	meta  ivm.GraphMetadata
}

// New creates a builder for the named project rooted at rootPath.
func New(name, rootPath string) *Builder {
	return &Builder{
		meta: ivm.GraphMetadata{Name: name, RootPath: rootPath},
	}
}

// AddNode queues a single node input.
func (b *Builder) AddNode(n ivm.NodeInput) *Builder {
	b.nodes = append(b.nodes, n)
	return b
}

// AddNodes queues a batch of node inputs, preserving order.
func (b *Builder) AddNodes(nodes ...ivm.NodeInput) *Builder {
	b.nodes = append(b.nodes, nodes...)
	return b
}

// AddEdge queues a single edge input.
func (b *Builder) AddEdge(e ivm.EdgeInput) *Builder {
	b.edges = append(b.edges, e)
	return b
}

// AddEdges queues a batch of edge inputs, preserving order.
func (b *Builder) AddEdges(edges ...ivm.EdgeInput) *Builder {
	b.edges = append(b.edges, edges...)
	return b
}

// AddInput queues a complete input set (one parse pass).
func (b *Builder) AddInput(in ivm.Input) *Builder {
	b.nodes = append(b.nodes, in.Nodes...)
	b.edges = append(b.edges, in.Edges...)
	return b
}

// WithRepository records the source repository coordinates.
func (b *Builder) WithRepository(url, branch, commit string) *Builder {
	b.meta.RepositoryURL = url
	b.meta.Branch = branch
	b.meta.Commit = commit
	return b
}

// WithLanguages records declared languages on the pending metadata. Build
// replaces Languages with the set observed on node language tags, like the
// other stamped fields.
func (b *Builder) WithLanguages(langs ...string) *Builder {
	b.meta.Languages = append(b.meta.Languages, langs...)
	return b
}

// WithProperties merges custom properties into the graph metadata.
// Later writes win on key collision.
func (b *Builder) WithProperties(props map[string]any) *Builder {
	if b.meta.Properties == nil {
		b.meta.Properties = make(map[string]any, len(props))
	}
	for k, v := range props {
		b.meta.Properties[k] = v
	}
	return b
}

// Build assembles the accumulated inputs into a graph snapshot.
// The builder can keep accumulating afterwards; each Build call produces
// an independent snapshot of what has been queued so far.
func (b *Builder) Build(opts Options) ivm.Graph {
	in := ivm.Input{
		Nodes: append([]ivm.NodeInput(nil), b.nodes...),
		Edges: append([]ivm.EdgeInput(nil), b.edges...),
	}

	meta := b.meta
	meta.Languages = append([]string(nil), b.meta.Languages...)
	if b.meta.Properties != nil {
		props := make(map[string]any, len(b.meta.Properties))
		for k, v := range b.meta.Properties {
			props[k] = v
		}
		meta.Properties = props
	}

	return Build(in, meta, opts)
}
