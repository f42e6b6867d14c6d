// Package cmd provides the root command and CLI setup for completest.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"completest.dev/pkg/completest/internal/adapter"
	"completest.dev/pkg/completest/internal/controller"
	"completest.dev/pkg/completest/internal/domain"
	m "completest.dev/pkg/completest/internal/model"
)

// workflow is built on first use from the effective configuration. Tests
// replace it with a mock before executing a command.
var workflow domain.Workflow

// Root-level flag targets; the values are read back through viper.
var (
	outputFlag      string
	excludePatterns []string
	extensionsFlag  []string
	verboseFlag     bool
	logFileFlag     string
	runParallelFlag int
	runDiffFlag     bool
	modelFlag       string
)

const rootLongDescription = `CompleTest generates unit test classes for Java and C# sources.

It walks the given directory (default: the current one), sends every source file
that does not already look like a test to a chat completion API and writes the
answer next to it, under src/test instead of src/main, as <Name>Test.<ext>.
Totals are written to result.json.

The API key is read from OPENAI_API_KEY, COMPLETEST_API_KEY or api.key in
completest.yaml.`

const listLongDescription = `List the source files a run would process and the test file each
one would be written to. Nothing is sent to the API and no directory is created.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func init() {
	configureRootFlags(rootCmd)
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completest [root]",
		Short: "Generate unit tests with a completion API",
		Long:  rootLongDescription,
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			if workflow == nil {
				workflow = newWorkflow(cmd)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args)
		},
		SilenceUsage: true,
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&outputFlag, outputFlagName, "o", viper.GetString(outputFlagName), "summary file written at the end of a run")
	bindFlagToConfig(flags.Lookup(outputFlagName), outputFlagName)

	flags.StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude paths matching a glob relative to the root (can be repeated)")
	bindFlagToConfig(flags.Lookup(excludeFlagName), excludeConfigKey)

	flags.StringSliceVar(&extensionsFlag, extensionsFlagName, viper.GetStringSlice(extensionsConfigKey), "source file extensions to scan")
	bindFlagToConfig(flags.Lookup(extensionsFlagName), extensionsConfigKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)

	configureRunFlags(cmd)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// newWorkflow wires the production dependencies from the effective configuration.
func newWorkflow(cmd *cobra.Command) domain.Workflow {
	fsAdapter := adapter.NewLocalSourceFSAdapter()
	completion := adapter.NewHTTPCompletionAdapter(completionConfig())

	scanner := domain.NewScanner(fsAdapter,
		domain.WithExtensions(viper.GetStringSlice(extensionsConfigKey)...),
		domain.WithExclude(viper.GetStringSlice(excludeConfigKey)...),
	)
	processor := domain.NewProcessor(fsAdapter,
		domain.NewTestGenerator(fsAdapter, completion),
		domain.WithDiff(viper.GetBool(runDiffConfigKey)),
	)

	return domain.NewWorkflow(
		scanner,
		processor,
		adapter.NewSummaryStore(),
		controller.NewUI(cmd, controller.IsTTY(os.Stdout)),
	)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func parseRoot(args []string) m.Path {
	if len(args) == 0 || args[0] == "" {
		return m.Path(".")
	}

	return m.Path(args[0])
}
