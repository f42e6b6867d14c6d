package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"completest.dev/pkg/completest/internal/domain"
	m "completest.dev/pkg/completest/internal/model"
)

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "run [root]",
		Aliases: []string{"generate"},
		Short:   "Generate tests for every source file under root",
		Long:    rootLongDescription,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runGenerate,
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// configureRunFlags registers the generation flags. They are persistent on the
// root so that both "completest" and "completest run" accept them.
func configureRunFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of files processed concurrently")
	bindFlagToConfig(flags.Lookup(runParallelFlagName), runParallelConfigKey)

	flags.BoolVar(&runDiffFlag, diffFlagName, viper.GetBool(runDiffConfigKey), "print a diff when an existing test file is replaced")
	bindFlagToConfig(flags.Lookup(diffFlagName), runDiffConfigKey)

	flags.StringVar(&modelFlag, modelFlagName, viper.GetString(apiModelConfigKey), "completion model identifier")
	bindFlagToConfig(flags.Lookup(modelFlagName), apiModelConfigKey)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	return workflow.Generate(cmd.Context(), domain.GenerateArgs{
		Root:     parseRoot(args),
		Output:   m.Path(viper.GetString(outputFlagName)),
		Threads:  viper.GetInt(runParallelConfigKey),
		SpillDir: viper.GetString(runSpillDirKey),
	})
}
