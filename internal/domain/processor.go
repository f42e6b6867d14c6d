package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	"completest.dev/pkg/completest/internal/adapter"
	m "completest.dev/pkg/completest/internal/model"
)

// testMarker is counted case-insensitively in generated text.
const testMarker = "@test"

const generatedFilePerm = 0o644

// Processor turns one source file into a generated test file and its metrics.
type Processor interface {
	// Process never fails the run: any error is reported in the result.
	Process(ctx context.Context, source m.SourceFile) m.FileResult
	// Configured reports whether completions can be requested at all.
	Configured() bool
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*processor)

// WithDiff makes the processor diff a regenerated test against the file it replaces.
func WithDiff(enabled bool) ProcessorOption {
	return func(p *processor) {
		p.showDiff = enabled
	}
}

// WithClock overrides the time source used to measure completion latency.
func WithClock(now func() time.Time) ProcessorOption {
	return func(p *processor) {
		p.now = now
	}
}

type processor struct {
	fsAdapter adapter.SourceFSAdapter
	generator TestGenerator
	now       func() time.Time
	showDiff  bool
}

// NewProcessor constructs a Processor writing through fsAdapter.
func NewProcessor(fsAdapter adapter.SourceFSAdapter, generator TestGenerator, opts ...ProcessorOption) Processor {
	p := &processor{
		fsAdapter: fsAdapter,
		generator: generator,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *processor) Configured() bool {
	return p.generator.Configured()
}

func (p *processor) Process(ctx context.Context, source m.SourceFile) m.FileResult {
	result := m.FileResult{Source: source}

	start := p.now()
	text, err := p.generator.Generate(ctx, source.Path)
	elapsed := p.now().Sub(start)

	if err != nil {
		slog.Error("Failed to generate test", "source", source.Path, "error", err)
		result.Err = err

		return result
	}

	if text == "" {
		slog.Warn("Empty completion, no test written", "source", source.Path)
		return result
	}

	diff, err := p.diffAgainstExisting(ctx, source.TestPath, text)
	if err != nil {
		result.Err = err
		return result
	}

	// #nosec G306 - generated tests are ordinary project sources
	if err := p.fsAdapter.WriteFile(ctx, source.TestPath, []byte(text), generatedFilePerm); err != nil {
		slog.Error("Failed to write test file", "path", source.TestPath, "error", err)
		result.Err = fmt.Errorf("write %s: %w", source.TestPath, err)

		return result
	}

	record := NewMetricsRecord(text, elapsed)
	result.Record = &record
	result.Diff = diff

	slog.Info("Generated test",
		"source", source.Path,
		"test", source.TestPath,
		"elapsed", elapsed,
		"lines", record.LineCount,
		"tests", record.TestMarkerCount,
	)

	return result
}

func (p *processor) diffAgainstExisting(ctx context.Context, path m.Path, text string) (string, error) {
	if !p.showDiff {
		return "", nil
	}

	exists, err := p.fsAdapter.Exists(ctx, path)
	if err != nil || !exists {
		return "", err
	}

	previous, err := p.fsAdapter.ReadFile(ctx, path)
	if err != nil {
		return "", fmt.Errorf("read previous %s: %w", path, err)
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(previous)),
		B:        difflib.SplitLines(text),
		FromFile: string(path) + " (previous)",
		ToFile:   string(path),
		Context:  3,
	})
}

// NewMetricsRecord computes the metrics of one generated test text.
func NewMetricsRecord(text string, elapsed time.Duration) m.MetricsRecord {
	return m.MetricsRecord{
		ProjectName:     m.ProjectName,
		ElapsedSeconds:  elapsed.Seconds(),
		LineCount:       strings.Count(text, "\n"),
		TestMarkerCount: strings.Count(strings.ToLower(text), testMarker),
	}
}
