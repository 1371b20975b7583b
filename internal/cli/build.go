package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BrianMehrman/diagram-builder/pkg/ivm"
	"github.com/BrianMehrman/diagram-builder/pkg/manifest"
	"github.com/BrianMehrman/diagram-builder/pkg/pipeline"
)

// newBuildCmd creates the build command, which assembles a graph snapshot
// from raw analysis output.
func newBuildCmd() *cobra.Command {
	var (
		output       string
		manifestPath string
		positions    bool
		strategy     string
		spacing      float64
		hSpacing     float64
		vSpacing     float64
		refresh      bool
		noCache      bool
	)

	cmd := &cobra.Command{
		Use:   "build <input.json>",
		Short: "Assemble a graph snapshot from analysis output",
		Long: `Build reads a raw node/edge input set produced by an analysis stage,
classifies every node with a level of detail, optionally assigns spatial
positions, and writes the complete snapshot as JSON.

Repeated builds over identical inputs are served from the cache.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}

			opts := pipeline.Options{
				InputPath:         args[0],
				AssignPositions:   positions,
				Strategy:          strategy,
				Spacing:           spacing,
				HorizontalSpacing: hSpacing,
				VerticalSpacing:   vSpacing,
				Refresh:           refresh,
				Logger:            logger,
			}

			if manifestPath != "" {
				m, err := manifest.Load(manifestPath)
				if err != nil {
					return err
				}
				opts.Meta = m.GraphMetadata()
				logger.Debug("loaded manifest", "path", manifestPath, "name", m.Name)
			}

			runner, err := newRunner(cfg, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			spin := newSpinnerWithContext(cmd.Context(), "Building graph...")
			spin.Start()

			track := newProgress(logger)
			result, err := runner.Execute(cmd.Context(), opts)
			if err != nil {
				spin.StopWithError("Build failed")
				return err
			}
			spin.Stop()
			track.done(fmt.Sprintf("Assembled %d nodes", result.Stats.NodeCount))

			if output == "" || output == "-" {
				if err := ivm.WriteGraph(result.Graph, os.Stdout); err != nil {
					return err
				}
			} else {
				if err := ivm.WriteGraphFile(result.Graph, output); err != nil {
					return err
				}
				printSuccess("Built graph %s", shortHash(result.GraphHash))
				printFile(output)
			}

			printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.BuildHit)
			if output != "" && output != "-" {
				printNextStep("Inspect it", fmt.Sprintf("%s stats %s", appName, output))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "project manifest (ivm.toml) supplying graph metadata")
	cmd.Flags().BoolVarP(&positions, "positions", "p", false, "assign spatial positions to nodes")
	cmd.Flags().StringVarP(&strategy, "strategy", "s", pipeline.DefaultStrategy, "layout strategy (grid, hierarchical)")
	cmd.Flags().Float64Var(&spacing, "spacing", pipeline.DefaultSpacing, "base spacing between nodes")
	cmd.Flags().Float64Var(&hSpacing, "hspacing", 0, "horizontal spacing for hierarchical layout (default: spacing)")
	cmd.Flags().Float64Var(&vSpacing, "vspacing", 0, "vertical spacing for hierarchical layout (default: spacing)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache and rebuild")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching entirely")

	return cmd
}

// shortHash abbreviates a content hash for display.
func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
