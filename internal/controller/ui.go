// Package controller provides the console front-ends of the completest workflow.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "completest.dev/pkg/completest/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeGenerate StartMode = iota
	ModeList
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithGenerateMode sets the UI to test generation mode.
func WithGenerateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeGenerate
	}
}

// WithListMode sets the UI to dry-run listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithViewMode sets the UI to report viewing mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// RunInfo describes a generation run before it starts.
type RunInfo struct {
	Root       m.Path
	Threads    int
	Configured bool
}

// UI defines the interface for reporting workflow progress.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context)
	DisplayRunInfo(ctx context.Context, info RunInfo)
	DisplaySources(ctx context.Context, sources []m.SourceFile, err error) error
	DisplayStartingFile(ctx context.Context, source m.SourceFile)
	DisplayCompletedFile(ctx context.Context, result m.FileResult)
	DisplaySummary(ctx context.Context, summary m.SummaryRecord, processed, skipped int, err error)
	DisplayReport(ctx context.Context, path m.Path, summary m.SummaryRecord) error
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewUI picks the TUI on terminals and the plain SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}
