package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default completest.yaml configuration file",
		Long: `Create a completest.yaml in the current working directory populated with the
current CLI defaults so it can be edited manually. The API key is never written;
keep it in OPENAI_API_KEY.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			data, err := settingsYAML(true)
			if err != nil {
				return err
			}

			// #nosec G304 - fixed file name in the working directory
			file, err := os.OpenFile(targetPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
			if err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}
			defer func() { _ = file.Close() }()

			if _, err := file.Write(data); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", targetPath)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
