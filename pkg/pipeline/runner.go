package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BrianMehrman/diagram-builder/pkg/cache"
	"github.com/BrianMehrman/diagram-builder/pkg/ivm"
	"github.com/BrianMehrman/diagram-builder/pkg/ivm/builder"
	"github.com/BrianMehrman/diagram-builder/pkg/observability"
)

// =============================================================================
// Result - Pipeline Output
// =============================================================================

// Stats contains timing and size information for a pipeline run.
type Stats struct {
	NodeCount int           `json:"node_count"`
	EdgeCount int           `json:"edge_count"`
	LoadTime  time.Duration `json:"load_time"`
	BuildTime time.Duration `json:"build_time"`
}

// CacheInfo reports which stages were served from cache.
type CacheInfo struct {
	BuildHit bool `json:"build_hit"`
}

// Result holds everything a pipeline run produced.
type Result struct {
	// Graph is the assembled snapshot.
	Graph ivm.Graph `json:"graph"`

	// GraphHash is the content hash of the serialized graph, usable as a
	// store key or ETag.
	GraphHash string `json:"graph_hash"`

	Stats     Stats     `json:"stats"`
	CacheInfo CacheInfo `json:"cache_info"`
}

// =============================================================================
// Runner - Pipeline Execution with Caching
// =============================================================================

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache - it doesn't store
// pipeline results, and per-run concerns like logging travel in Options.
// Multiple goroutines can safely use the same Runner with different
// options.
type Runner struct {
	Cache cache.Cache
	Keyer cache.Keyer
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Runner{Cache: c, Keyer: keyer}
}

// Execute runs the complete load → build pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	in, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Stats.LoadTime = time.Since(loadStart)

	opts.Logger.Info("loaded input",
		"nodes", len(in.Nodes),
		"edges", len(in.Edges),
		"duration", result.Stats.LoadTime)

	// Stage 2: Build
	buildStart := time.Now()
	g, buildHit, err := r.BuildWithCacheInfo(ctx, in, opts)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Graph = g
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.NodeCount = len(g.Nodes)
	result.Stats.EdgeCount = len(g.Edges)
	result.CacheInfo.BuildHit = buildHit

	// Compute graph hash for store keys and API responses
	if graphData, err := ivm.MarshalGraph(g); err == nil {
		result.GraphHash = cache.Hash(graphData)
	}

	opts.Logger.Info("built graph",
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"strategy", opts.Strategy,
		"cached", buildHit,
		"duration", result.Stats.BuildTime)

	return result, nil
}

// Load reads the raw input set from opts, either inline or from a file.
func (r *Runner) Load(ctx context.Context, opts Options) (ivm.Input, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return ivm.Input{}, err
	}

	source := opts.InputPath
	if opts.Input != nil {
		source = "inline"
	}
	observability.Build().OnLoadStart(ctx, source)

	start := time.Now()
	var in ivm.Input
	var err error
	if opts.Input != nil {
		in = *opts.Input
	} else {
		in, err = ivm.ReadInputFile(opts.InputPath)
	}
	observability.Build().OnLoadComplete(ctx, source, len(in.Nodes), len(in.Edges), time.Since(start), err)
	if err != nil {
		return ivm.Input{}, err
	}
	return in, nil
}

// BuildWithCacheInfo assembles a graph with caching and returns cache hit
// info. The cache key covers the input content and every build option that
// shapes the result.
func (r *Runner) BuildWithCacheInfo(ctx context.Context, in ivm.Input, opts Options) (ivm.Graph, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return ivm.Graph{}, false, err
	}

	inputData, err := ivm.MarshalInput(in)
	if err != nil {
		return ivm.Graph{}, false, fmt.Errorf("serialize input for cache key: %w", err)
	}
	cacheKey := r.Keyer.GraphKey(cache.Hash(inputData), opts.BuildKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if g, err := ivm.UnmarshalGraph(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "graph")
				return g, true, nil
			}
			// If deserialization fails, fall through to rebuild
		}
		observability.Cache().OnCacheMiss(ctx, "graph")
	}

	observability.Build().OnBuildStart(ctx, opts.Strategy, len(in.Nodes))
	start := time.Now()

	meta := opts.Meta
	meta.Properties = stampBuildID(meta.Properties)
	g := builder.Build(in, meta, opts.BuildOptions())

	observability.Build().OnBuildComplete(ctx, opts.Strategy, len(g.Nodes), time.Since(start), nil)

	// Cache the result
	if data, err := ivm.MarshalGraph(g); err == nil {
		if cacheErr := r.Cache.Set(ctx, cacheKey, data, cache.TTLGraph); cacheErr == nil {
			observability.Cache().OnCacheSet(ctx, "graph", len(data))
		}
	}

	return g, false, nil
}

// Build is a convenience wrapper that calls BuildWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Build(ctx context.Context, in ivm.Input, opts Options) (ivm.Graph, error) {
	g, _, err := r.BuildWithCacheInfo(ctx, in, opts)
	return g, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// stampBuildID adds a unique build identifier to graph properties without
// mutating the caller's map.
func stampBuildID(props map[string]any) map[string]any {
	out := make(map[string]any, len(props)+1)
	for k, v := range props {
		out[k] = v
	}
	out["buildId"] = uuid.NewString()
	return out
}
