// Package cli implements the diagram-builder command-line interface.
//
// This package provides commands for assembling visualization models from
// analysis output, inspecting graph statistics, and managing the build
// cache. The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - build: Assemble a graph snapshot from raw analysis output
//   - stats: Show statistics for a built graph
//   - lod: Show the level-of-detail classification table
//   - cache: Manage the build cache
//   - serve: Run the HTTP API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/BrianMehrman/diagram-builder/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"os"
	"path/filepath"

	"github.com/BrianMehrman/diagram-builder/pkg/cache"
	"github.com/BrianMehrman/diagram-builder/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "diagram-builder"

// newRunner creates a pipeline runner for CLI use, honoring the tool
// configuration's cache backend.
func newRunner(cfg Config, noCache bool) (*pipeline.Runner, error) {
	c, err := newCacheBackend(cfg, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(c, nil), nil
}

func newCacheBackend(cfg Config, noCache bool) (cache.Cache, error) {
	if noCache || cfg.Cache.Backend == cacheBackendNone {
		return cache.NewNullCache(), nil
	}

	switch cfg.Cache.Backend {
	case cacheBackendMemory:
		return cache.NewMemoryCache(), nil
	case cacheBackendRedis:
		return cache.NewRedisCache(cache.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	default:
		dir, err := resolveCacheDir(cfg)
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	}
}

// resolveCacheDir returns the configured cache directory, falling back to
// the XDG standard location (~/.cache/diagram-builder/).
func resolveCacheDir(cfg Config) (string, error) {
	if cfg.Cache.Dir != "" {
		return cfg.Cache.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
