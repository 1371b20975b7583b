// Command diagram-builder assembles code visualization models from raw
// analysis output.
package main

import (
	"os"

	"github.com/BrianMehrman/diagram-builder/internal/cli"
	"github.com/BrianMehrman/diagram-builder/pkg/buildinfo"
)

func main() {
	cli.SetVersion(buildinfo.Version, buildinfo.Commit, buildinfo.Date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
