package cli

import (
	"fmt"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/BrianMehrman/diagram-builder/pkg/ivm"
)

// newStatsCmd creates the stats command, which summarizes a built graph.
func newStatsCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "stats <graph.json>",
		Short: "Show statistics for a built graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := ivm.ReadGraphFile(args[0])
			if err != nil {
				return err
			}

			if interactive {
				_, err := tea.NewProgram(newGraphModel(g)).Run()
				return err
			}

			printGraphStats(g)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse the graph in an interactive view")
	return cmd
}

// printGraphStats renders a graph summary to stdout.
func printGraphStats(g ivm.Graph) {
	meta := g.Meta
	stats := meta.Stats

	fmt.Println(StyleTitle.Render(displayName(meta)))
	if meta.RepositoryURL != "" {
		printDetail("%s", meta.RepositoryURL)
	}
	printNewline()

	printKeyValue("Nodes", fmt.Sprintf("%d", stats.TotalNodes))
	printKeyValue("Edges", fmt.Sprintf("%d", stats.TotalEdges))
	if len(meta.Languages) > 0 {
		printKeyValue("Languages", joinStrings(meta.Languages))
	}
	if stats.TotalLOC != nil {
		printKeyValue("Total LOC", fmt.Sprintf("%d", *stats.TotalLOC))
	}
	if stats.AvgComplexity != nil {
		printKeyValue("Complexity", fmt.Sprintf("%.2f avg", *stats.AvgComplexity))
	}
	printKeyValue("Generated", meta.GeneratedAt)

	if len(stats.NodesByType) > 0 {
		printNewline()
		printInfo("Nodes by type")
		for _, row := range sortedNodeCounts(stats.NodesByType) {
			printDetail("%-12s %d", row.name, row.count)
		}
	}
	if len(stats.EdgesByType) > 0 {
		printNewline()
		printInfo("Edges by type")
		for _, row := range sortedEdgeCounts(stats.EdgesByType) {
			printDetail("%-12s %d", row.name, row.count)
		}
	}
}

func displayName(meta ivm.GraphMetadata) string {
	if meta.Name != "" {
		return meta.Name
	}
	return "(unnamed graph)"
}

func joinStrings(ss []string) string {
	out := ""
	for i, s := range ss {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}

type typeCount struct {
	name  string
	count int
}

// sortedNodeCounts orders counts descending, then by name for stable output.
func sortedNodeCounts(m map[ivm.NodeType]int) []typeCount {
	rows := make([]typeCount, 0, len(m))
	for t, n := range m {
		rows = append(rows, typeCount{name: string(t), count: n})
	}
	sortCounts(rows)
	return rows
}

func sortedEdgeCounts(m map[ivm.EdgeType]int) []typeCount {
	rows := make([]typeCount, 0, len(m))
	for t, n := range m {
		rows = append(rows, typeCount{name: string(t), count: n})
	}
	sortCounts(rows)
	return rows
}

func sortCounts(rows []typeCount) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].name < rows[j].name
	})
}
