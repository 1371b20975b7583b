package layout

import (
	"github.com/BrianMehrman/diagram-builder/pkg/ivm"
)

// =============================================================================
// Strategy Selection
// =============================================================================

// Strategy names a position-assignment algorithm.
type Strategy string

// Supported strategies.
const (
	StrategyGrid         Strategy = "grid"
	StrategyHierarchical Strategy = "hierarchical"
)

// DefaultSpacing is the node spacing used when the caller leaves it unset.
const DefaultSpacing = 10.0

// ValidStrategies is the set of supported layout strategies.
var ValidStrategies = map[Strategy]bool{
	StrategyGrid:         true,
	StrategyHierarchical: true,
}

// Options configures a layout pass.
type Options struct {
	// Strategy selects the algorithm. Empty defaults to StrategyGrid.
	Strategy Strategy `json:"strategy,omitempty" bson:"strategy,omitempty"`

	// Spacing is the base distance between neighboring nodes.
	// Zero defaults to DefaultSpacing.
	Spacing float64 `json:"spacing,omitempty" bson:"spacing,omitempty"`

	// HorizontalSpacing is the per-child x span in hierarchical layout.
	// Zero defaults to Spacing.
	HorizontalSpacing float64 `json:"horizontalSpacing,omitempty" bson:"horizontalSpacing,omitempty"`

	// VerticalSpacing is the y drop per tree depth in hierarchical layout.
	// Zero defaults to Spacing.
	VerticalSpacing float64 `json:"verticalSpacing,omitempty" bson:"verticalSpacing,omitempty"`
}

// withDefaults resolves zero values to their defaults.
func (o Options) withDefaults() Options {
	if o.Strategy == "" {
		o.Strategy = StrategyGrid
	}
	if o.Spacing == 0 {
		o.Spacing = DefaultSpacing
	}
	if o.HorizontalSpacing == 0 {
		o.HorizontalSpacing = o.Spacing
	}
	if o.VerticalSpacing == 0 {
		o.VerticalSpacing = o.Spacing
	}
	return o
}

// Assign populates the positions of the given nodes in place using the
// selected strategy. It is intended to run on freshly materialized nodes
// before they are frozen into a graph snapshot; callers holding an exposed
// snapshot should rebuild instead of re-laying it out.
//
// Both strategies are deterministic for a given node order. An unknown
// strategy falls back to grid rather than failing - layout is a total
// operation like the rest of the core.
func Assign(nodes []ivm.Node, opts Options) {
	opts = opts.withDefaults()
	switch opts.Strategy {
	case StrategyHierarchical:
		assignHierarchical(nodes, opts)
	default:
		assignGrid(nodes, opts)
	}
}
