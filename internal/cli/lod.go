package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BrianMehrman/diagram-builder/pkg/ivm"
)

// lodTableOrder lists node types grouped by their classification level, for
// stable display output.
var lodTableOrder = []ivm.NodeType{
	ivm.NodeTypeRepository,
	ivm.NodeTypePackage,
	ivm.NodeTypeNamespace,
	ivm.NodeTypeDirectory,
	ivm.NodeTypeModule,
	ivm.NodeTypeFile,
	ivm.NodeTypeClass,
	ivm.NodeTypeInterface,
	ivm.NodeTypeEnum,
	ivm.NodeTypeFunction,
	ivm.NodeTypeType,
	ivm.NodeTypeMethod,
	ivm.NodeTypeVariable,
}

// newLODCmd creates the lod command, a debug helper that shows how node
// types map to detail levels.
func newLODCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lod [type...]",
		Short: "Show the level-of-detail classification table",
		Long: `Without arguments, lod prints the full classification table. With node
type arguments, it prints the level each given type classifies to; unknown
types get the default level.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				printInfo("Level-of-detail classification")
				for _, t := range lodTableOrder {
					printDetail("%-12s %d", string(t), ivm.AssignLOD(t))
				}
				printNewline()
				printDetail("unknown types default to %d", ivm.DefaultLOD)
				return nil
			}

			for _, arg := range args {
				fmt.Printf("%s\t%d\n", arg, ivm.AssignLOD(ivm.NodeType(arg)))
			}
			return nil
		},
	}
}
