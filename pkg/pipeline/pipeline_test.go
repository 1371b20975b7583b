package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrianMehrman/diagram-builder/pkg/cache"
	"github.com/BrianMehrman/diagram-builder/pkg/ivm"
)

func testInput() *ivm.Input {
	return &ivm.Input{
		Nodes: []ivm.NodeInput{
			{ID: "repo", Type: ivm.NodeTypeRepository},
			{ID: "main.go", Type: ivm.NodeTypeFile, ParentID: "repo"},
			{ID: "Server", Type: ivm.NodeTypeClass, ParentID: "main.go"},
		},
		Edges: []ivm.EdgeInput{
			{Source: "Server", Target: "main.go", Type: ivm.EdgeTypeContains},
		},
	}
}

func TestOptionsValidateRequiresInput(t *testing.T) {
	opts := Options{}
	err := opts.ValidateAndSetDefaults()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input")
}

func TestOptionsValidateDefaults(t *testing.T) {
	opts := Options{Input: testInput()}
	require.NoError(t, opts.ValidateAndSetDefaults())

	assert.Equal(t, DefaultStrategy, opts.Strategy)
	assert.Equal(t, DefaultSpacing, opts.Spacing)
	assert.NotNil(t, opts.Logger)
}

func TestOptionsValidateIdempotent(t *testing.T) {
	opts := Options{Input: testInput(), Strategy: "hierarchical", Spacing: 5}
	require.NoError(t, opts.ValidateAndSetDefaults())
	require.NoError(t, opts.ValidateAndSetDefaults())

	assert.Equal(t, "hierarchical", opts.Strategy)
	assert.Equal(t, 5.0, opts.Spacing)
}

func TestOptionsValidateRejectsUnknownStrategy(t *testing.T) {
	opts := Options{Input: testInput(), Strategy: "radial"}
	assert.Error(t, opts.ValidateAndSetDefaults())
}

func TestValidateStrategy(t *testing.T) {
	assert.NoError(t, ValidateStrategy("grid"))
	assert.NoError(t, ValidateStrategy("hierarchical"))
	assert.Error(t, ValidateStrategy("force"))
	assert.Error(t, ValidateStrategy(""))
}

func TestExecuteInlineInput(t *testing.T) {
	r := NewRunner(nil, nil)
	defer r.Close()

	result, err := r.Execute(context.Background(), Options{
		Input:           testInput(),
		AssignPositions: true,
		Strategy:        "hierarchical",
		Meta:            ivm.GraphMetadata{Name: "demo"},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Stats.NodeCount)
	assert.Equal(t, 1, result.Stats.EdgeCount)
	assert.NotEmpty(t, result.GraphHash)
	assert.False(t, result.CacheInfo.BuildHit)
	assert.Equal(t, "demo", result.Graph.Meta.Name)
	assert.NotEmpty(t, result.Graph.Meta.Properties["buildId"])
}

func TestExecuteSecondRunHitsCache(t *testing.T) {
	c := cache.NewMemoryCache()
	r := NewRunner(c, nil)
	defer r.Close()

	opts := Options{Input: testInput(), Strategy: "grid"}

	first, err := r.Execute(context.Background(), opts)
	require.NoError(t, err)
	require.False(t, first.CacheInfo.BuildHit)

	second, err := r.Execute(context.Background(), Options{Input: testInput(), Strategy: "grid"})
	require.NoError(t, err)
	assert.True(t, second.CacheInfo.BuildHit)

	// A cached build is returned verbatim, buildId included.
	assert.Equal(t, first.GraphHash, second.GraphHash)
}

func TestExecuteRefreshBypassesCache(t *testing.T) {
	c := cache.NewMemoryCache()
	r := NewRunner(c, nil)
	defer r.Close()

	_, err := r.Execute(context.Background(), Options{Input: testInput()})
	require.NoError(t, err)

	result, err := r.Execute(context.Background(), Options{Input: testInput(), Refresh: true})
	require.NoError(t, err)
	assert.False(t, result.CacheInfo.BuildHit)
}

func TestExecuteLayoutOptionsSeparateCacheEntries(t *testing.T) {
	c := cache.NewMemoryCache()
	r := NewRunner(c, nil)
	defer r.Close()

	_, err := r.Execute(context.Background(), Options{Input: testInput(), Strategy: "grid"})
	require.NoError(t, err)

	// Same input, different strategy must not reuse the grid entry.
	result, err := r.Execute(context.Background(), Options{Input: testInput(), Strategy: "hierarchical"})
	require.NoError(t, err)
	assert.False(t, result.CacheInfo.BuildHit)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.json")
	data := `{"nodes":[{"id":"a","type":"file"}],"edges":[]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	r := NewRunner(nil, nil)
	in, err := r.Load(context.Background(), Options{InputPath: path})
	require.NoError(t, err)
	assert.Len(t, in.Nodes, 1)
	assert.Equal(t, "a", in.Nodes[0].ID)
}

func TestLoadMissingFile(t *testing.T) {
	r := NewRunner(nil, nil)
	_, err := r.Load(context.Background(), Options{InputPath: "/nonexistent/input.json"})
	assert.Error(t, err)
}

func TestExecuteNodeCountsDoNotAliasInput(t *testing.T) {
	in := testInput()
	r := NewRunner(nil, nil)

	_, err := r.Execute(context.Background(), Options{Input: in})
	require.NoError(t, err)

	// The assembler writes dependency counts into node metadata; the
	// caller's input must stay untouched.
	for _, n := range in.Nodes {
		assert.Nil(t, n.Metadata)
	}
}
