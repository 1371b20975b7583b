// Package pipeline provides the core load → build pipeline for producing
// visualization model snapshots.
//
// This package implements the complete flow used by both the CLI and the
// API: read raw analysis output, assemble it into a positioned,
// LOD-classified graph, and cache the result by content hash so repeated
// invocations over identical inputs skip assembly entirely.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Load: Read the raw node/edge input set (and optionally a project
//     manifest supplying graph metadata)
//  2. Build: Assemble the input into a complete graph snapshot, running
//     the configured layout strategy
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil)
//	opts := pipeline.Options{
//	    InputPath:       "analysis.json",
//	    AssignPositions: true,
//	    Strategy:        "hierarchical",
//	    Logger:          logger,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	graph := result.Graph
package pipeline

import (
	"io"

	charmlog "github.com/charmbracelet/log"

	"github.com/BrianMehrman/diagram-builder/pkg/cache"
	"github.com/BrianMehrman/diagram-builder/pkg/errors"
	"github.com/BrianMehrman/diagram-builder/pkg/ivm"
	"github.com/BrianMehrman/diagram-builder/pkg/ivm/builder"
	"github.com/BrianMehrman/diagram-builder/pkg/ivm/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

// DefaultStrategy is the layout strategy used when none is requested.
const DefaultStrategy = string(layout.StrategyGrid)

// DefaultSpacing mirrors the layout package default, re-exported so CLI
// flag help can reference one constant.
const DefaultSpacing = layout.DefaultSpacing

// ValidateStrategy checks that a layout strategy is valid.
func ValidateStrategy(s string) error {
	if !layout.ValidStrategies[layout.Strategy(s)] {
		return errors.New(errors.ErrCodeInvalidStrategy, "invalid strategy: %q (must be one of: grid, hierarchical)", s)
	}
	return nil
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options. Exactly one of InputPath or Input must be set;
	// Input wins when both are present (API requests carry it inline).
	InputPath string     `json:"input_path,omitempty"`
	Input     *ivm.Input `json:"input,omitempty"`

	// Meta is the caller-supplied portion of graph metadata, typically
	// from a project manifest.
	Meta ivm.GraphMetadata `json:"meta,omitempty"`

	// Build options
	AssignPositions   bool    `json:"assign_positions,omitempty"`
	Strategy          string  `json:"strategy,omitempty"`
	Spacing           float64 `json:"spacing,omitempty"`
	HorizontalSpacing float64 `json:"horizontal_spacing,omitempty"`
	VerticalSpacing   float64 `json:"vertical_spacing,omitempty"`

	// Refresh bypasses the cache for this run.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *charmlog.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Input == nil && o.InputPath == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input or input_path is required")
	}
	if o.Strategy == "" {
		o.Strategy = DefaultStrategy
	}
	if err := ValidateStrategy(o.Strategy); err != nil {
		return err
	}
	if o.Spacing == 0 {
		o.Spacing = DefaultSpacing
	}
	if o.Logger == nil {
		o.Logger = charmlog.NewWithOptions(io.Discard, charmlog.Options{})
	}

	o.validated = true
	return nil
}

// BuildOptions converts pipeline options into assembler options.
func (o *Options) BuildOptions() builder.Options {
	return builder.Options{
		AssignPositions: o.AssignPositions,
		Layout: layout.Options{
			Strategy:          layout.Strategy(o.Strategy),
			Spacing:           o.Spacing,
			HorizontalSpacing: o.HorizontalSpacing,
			VerticalSpacing:   o.VerticalSpacing,
		},
	}
}

// BuildKeyOpts returns the cache key options for a built graph.
func (o *Options) BuildKeyOpts() cache.BuildKeyOpts {
	return cache.BuildKeyOpts{
		AssignPositions:   o.AssignPositions,
		Strategy:          o.Strategy,
		Spacing:           o.Spacing,
		HorizontalSpacing: o.HorizontalSpacing,
		VerticalSpacing:   o.VerticalSpacing,
	}
}
