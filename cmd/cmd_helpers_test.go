package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	domainmocks "completest.dev/pkg/completest/internal/domain/mocks"
)

// useMockWorkflow swaps the package workflow for a mock and keeps the log file
// out of the source tree.
func useMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	viper.Set(logFilenameKey, filepath.Join(t.TempDir(), "completest-test.log"))

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

func newTestRootCmd(subcommands ...*cobra.Command) (*cobra.Command, *bytes.Buffer) {
	out := &bytes.Buffer{}

	cmd := newRootCmd()
	cmd.AddCommand(subcommands...)
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, out
}
