package controller

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "completest.dev/pkg/completest/internal/model"
)

// Status labels shared by the console front-ends.
const (
	statusGenerated = "generated"
	statusSkipped   = "skipped"
	statusEmpty     = "empty"
)

// SimpleUI implements UI using cobra Command's output writer.
// Display methods are safe to call from concurrent workers.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayRunInfo prints the run settings.
func (s *SimpleUI) DisplayRunInfo(ctx context.Context, info RunInfo) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Generating tests under %s with %d worker(s)\n", info.Root, info.Threads)

	if !info.Configured {
		s.printf("warning: no API key configured, every file will be skipped\n")
	}
}

// DisplaySources prints the discovered sources and their test paths.
func (s *SimpleUI) DisplaySources(ctx context.Context, sources []m.SourceFile, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		s.printf("scan error: %v\n", err)
		return err
	}

	s.printf("\n%s", renderSourcesTable(sources))

	return nil
}

// DisplayStartingFile announces a file entering processing.
func (s *SimpleUI) DisplayStartingFile(ctx context.Context, source m.SourceFile) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Generating %s\n", source.Path)
}

// DisplayCompletedFile reports the outcome of one file.
func (s *SimpleUI) DisplayCompletedFile(ctx context.Context, result m.FileResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	switch {
	case result.Err != nil:
		s.printf("Skipped %s -> %s: %v\n", result.Source.Path, statusSkipped, result.Err)
	case result.Record == nil:
		s.printf("Skipped %s -> %s\n", result.Source.Path, statusEmpty)
	default:
		s.printf("Completed %s -> %s (%d lines, %d tests, %.2fs)\n",
			result.Source.TestPath, statusGenerated,
			result.Record.LineCount, result.Record.TestMarkerCount, result.Record.ElapsedSeconds)
	}

	if result.Diff != "" {
		s.printf("%s\n", result.Diff)
	}
}

// DisplaySummary prints the aggregated run summary.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.SummaryRecord, processed, skipped int, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	if err != nil {
		s.printf("No tests generated (%d skipped): %v\n", skipped, err)
		return
	}

	s.printf("\n%s", renderSummaryTable(summary, processed, skipped))
}

// DisplayReport prints a summary loaded from a previous run.
func (s *SimpleUI) DisplayReport(ctx context.Context, path m.Path, summary m.SummaryRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Report %s\n\n%s", path, renderReportTable(summary))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderSourcesTable(sources []m.SourceFile) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Source", "Test"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, source := range sources {
		table.Append([]string{string(source.Path), string(source.TestPath)})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(sources)), ""})
	table.Render()

	return tableBuffer.String()
}

func renderSummaryTable(summary m.SummaryRecord, processed, skipped int) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Project", "Files", "Skipped", "Lines", "Tests", "Seconds"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_RIGHT,
	})

	table.Append([]string{
		summary.ProjectName,
		fmt.Sprintf("%d", processed),
		fmt.Sprintf("%d", skipped),
		fmt.Sprintf("%d", summary.LineCount),
		fmt.Sprintf("%d", summary.TestMarkerCount),
		fmt.Sprintf("%.2f", summary.ElapsedSeconds),
	})

	table.Render()

	return tableBuffer.String()
}

func renderReportTable(summary m.SummaryRecord) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Project", "Lines", "Tests", "Seconds"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_RIGHT,
	})

	table.Append([]string{
		summary.ProjectName,
		fmt.Sprintf("%d", summary.LineCount),
		fmt.Sprintf("%d", summary.TestMarkerCount),
		fmt.Sprintf("%.2f", summary.ElapsedSeconds),
	})

	table.Render()

	return tableBuffer.String()
}
