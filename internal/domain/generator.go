package domain

import (
	"context"
	"fmt"
	"log/slog"

	"completest.dev/pkg/completest/internal/adapter"
	m "completest.dev/pkg/completest/internal/model"
)

// TestGenerator produces the text of a test class for one source file.
type TestGenerator interface {
	// Generate returns the generated test text for the file at source.
	Generate(ctx context.Context, source m.Path) (string, error)
	// Configured reports whether completions can be requested at all.
	Configured() bool
}

type testGenerator struct {
	fsAdapter  adapter.SourceFSAdapter
	completion adapter.CompletionAdapter
}

// NewTestGenerator builds a TestGenerator that prompts completion with the content of each file.
func NewTestGenerator(fsAdapter adapter.SourceFSAdapter, completion adapter.CompletionAdapter) TestGenerator {
	return &testGenerator{
		fsAdapter:  fsAdapter,
		completion: completion,
	}
}

func (g *testGenerator) Configured() bool {
	return g.completion.Configured()
}

func (g *testGenerator) Generate(ctx context.Context, source m.Path) (string, error) {
	if !g.Configured() {
		slog.Warn("Skipping completion, API key not configured", "source", source)
		return "", adapter.ErrMissingCredential
	}

	content, err := g.fsAdapter.ReadFile(ctx, source)
	if err != nil {
		slog.Error("Failed to read source file", "source", source, "error", err)
		return "", fmt.Errorf("read %s: %w", source, err)
	}

	prompt, err := RenderPrompt(PromptData{Content: string(content)})
	if err != nil {
		return "", err
	}

	slog.Debug("Requesting completion", "source", source, "promptBytes", len(prompt))

	text, err := g.completion.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("complete %s: %w", source, err)
	}

	return text, nil
}
