package cmd

import (
	"github.com/spf13/cobra"

	"completest.dev/pkg/completest/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [root]",
		Short: "List source files and their test paths",
		Long:  listLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{Root: parseRoot(args)})
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
