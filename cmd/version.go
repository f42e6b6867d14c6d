package cmd

import (
	"io"
	"runtime/debug"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const unknownVersion = "unknown"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version, the Go version and the configuration schema version.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			version, goVersion := buildVersions()
			renderVersionTable(cmd.OutOrStdout(), [][]string{
				{"completest", version},
				{"go", goVersion},
				{"config schema", strconv.Itoa(currentConfigVersion)},
			})
		},
	}
}

func renderVersionTable(out io.Writer, rows [][]string) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Component", "Version"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	table.AppendBulk(rows)
	table.Render()
}

func buildVersions() (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return unknownVersion, unknownVersion
	}

	version := info.Main.Version
	if version == "" {
		version = unknownVersion
	}

	return version, info.GoVersion
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
