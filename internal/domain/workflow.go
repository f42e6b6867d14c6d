package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"completest.dev/pkg/completest/internal/adapter"
	"completest.dev/pkg/completest/internal/controller"
	m "completest.dev/pkg/completest/internal/model"
	pkg "completest.dev/pkg/completest/pkg"
)

// GenerateArgs contains the arguments for a test generation run.
type GenerateArgs struct {
	Root     m.Path
	Output   m.Path // summary file, result.json by default
	Threads  int    // values below 1 mean sequential
	SpillDir string // where metrics are buffered; empty uses the OS temp dir
}

// ListArgs contains the arguments for a dry-run listing.
type ListArgs struct {
	Root m.Path
}

// ViewArgs contains the arguments for displaying a saved summary.
type ViewArgs struct {
	Output m.Path
}

// Workflow defines the interface for the test generation workflow.
type Workflow interface {
	Generate(ctx context.Context, args GenerateArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	Scanner
	Processor
	adapter.SummaryStore
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	scanner Scanner,
	processor Processor,
	store adapter.SummaryStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		Scanner:      scanner,
		Processor:    processor,
		SummaryStore: store,
		UI:           ui,
	}
}

type runCounters struct {
	mu        sync.Mutex
	processed int
	skipped   int
}

func (c *runCounters) add(result m.FileResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if result.Record != nil {
		c.processed++
	} else {
		c.skipped++
	}
}

func (w *workflow) Generate(ctx context.Context, args GenerateArgs) error {
	if err := w.Start(ctx, controller.WithGenerateMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	threads := max(args.Threads, 1)

	w.DisplayRunInfo(ctx, controller.RunInfo{
		Root:       args.Root,
		Threads:    threads,
		Configured: w.Configured(),
	})

	if !w.Configured() {
		slog.Warn("No API key configured, every file will be skipped", "root", args.Root)
	}

	spill, err := pkg.NewFileSpill[m.MetricsRecord](args.SpillDir)
	if err != nil {
		return fmt.Errorf("create metrics spill: %w", err)
	}
	defer func() { _ = spill.Close() }()

	counters := &runCounters{}

	if err := w.processAll(ctx, args.Root, threads, spill, counters); err != nil {
		return err
	}

	summary, err := FoldSpill(spill)
	if err != nil {
		slog.Error("No metrics to summarize", "root", args.Root, "skipped", counters.skipped, "error", err)
		w.DisplaySummary(ctx, m.SummaryRecord{}, counters.processed, counters.skipped, err)

		return fmt.Errorf("summarize %s: %w", args.Root, err)
	}

	if err := w.SaveSummary(ctx, args.Output, summary); err != nil {
		return fmt.Errorf("save summary: %w", err)
	}

	w.DisplaySummary(ctx, summary, counters.processed, counters.skipped, nil)
	w.Wait(ctx)

	return nil
}

// processAll consumes the scan stream and runs the processor on every source,
// at most threads at a time. Only a scan failure, a spill failure or
// cancellation aborts the run.
func (w *workflow) processAll(
	ctx context.Context,
	root m.Path,
	threads int,
	spill pkg.FileSpill[m.MetricsRecord],
	counters *runCounters,
) error {
	sources, scanErrs := w.Scan(ctx, root)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for source := range sources {
		if groupCtx.Err() != nil {
			continue
		}

		current := source

		if err := w.Provision(ctx, current); err != nil {
			result := m.FileResult{Source: current, Err: err}
			counters.add(result)
			w.DisplayCompletedFile(ctx, result)

			continue
		}

		group.Go(func() error {
			w.DisplayStartingFile(groupCtx, current)

			result := w.Process(groupCtx, current)
			if result.Record != nil {
				if err := spill.Append(*result.Record); err != nil {
					return fmt.Errorf("buffer metrics for %s: %w", current.Path, err)
				}
			}

			counters.add(result)
			w.DisplayCompletedFile(groupCtx, result)

			return nil
		})
	}

	groupErr := group.Wait()

	if err := <-scanErrs; err != nil {
		return err
	}

	if groupErr != nil {
		return groupErr
	}

	if err := ctx.Err(); err != nil {
		slog.Warn("Run cancelled, summary not written", "root", root, "error", err)
		return err
	}

	return nil
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	sources, scanErrs := w.Scan(ctx, args.Root)

	var found []m.SourceFile
	for source := range sources {
		found = append(found, source)
	}

	scanErr := <-scanErrs
	if scanErr == nil {
		scanErr = ctx.Err()
	}

	if err := w.DisplaySources(ctx, found, scanErr); err != nil {
		if errors.Is(err, scanErr) {
			return scanErr
		}

		return fmt.Errorf("display sources: %w", err)
	}

	w.Wait(ctx)

	return nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	summary, err := w.LoadSummary(ctx, args.Output)
	if err != nil {
		slog.Error("Failed to load summary", "path", args.Output, "error", err)
		return fmt.Errorf("load summary: %w", err)
	}

	if err := w.DisplayReport(ctx, args.Output, summary); err != nil {
		return fmt.Errorf("display report: %w", err)
	}

	w.Wait(ctx)

	return nil
}
