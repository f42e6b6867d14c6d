package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"completest.dev/pkg/completest/internal/domain"
	m "completest.dev/pkg/completest/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [summary]",
		Short: "View the summary of a previous run",
		Long:  "View the totals written by a previous run, read from --output unless a file is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := m.Path(viper.GetString(outputFlagName))
			if len(args) == 1 {
				output = m.Path(args[0])
			}

			return workflow.View(cmd.Context(), domain.ViewArgs{Output: output})
		},
	}
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
