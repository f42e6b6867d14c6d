package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// settingsCmd represents the config command.
var settingsCmd = newSettingsCmd()

func newSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long:  "Print the settings resolved from defaults, completest.yaml, environment and flags as YAML. The API key is masked.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := settingsYAML(false)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}
