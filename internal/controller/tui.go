package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "completest.dev/pkg/completest/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.DoubleBorder()).
			Padding(0, 2)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI with styled terminal output and a pager for long listings.
type TUI struct {
	cmd  *cobra.Command
	mu   sync.Mutex
	mode StartMode
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{cmd: cmd}
}

// Start prints the banner for the selected mode.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := StartConfig{}
	for _, opt := range options {
		opt(&cfg)
	}

	t.mode = cfg.mode
	t.println(renderHeader(t.mode))

	return nil
}

// Close finalizes the UI.
func (t *TUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait is a no-op; the pager runs to completion inside DisplaySources.
func (t *TUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayRunInfo shows the run settings.
func (t *TUI) DisplayRunInfo(ctx context.Context, info RunInfo) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.println(fmt.Sprintf("  📂 %s  %s", info.Root, faintStyle.Render(fmt.Sprintf("%d worker(s)", info.Threads))))

	if !info.Configured {
		t.println("  " + warnStyle.Render("⚠ no API key configured, every file will be skipped"))
	}
}

// DisplaySources shows the discovered sources, paging when they overflow the terminal.
func (t *TUI) DisplaySources(ctx context.Context, sources []m.SourceFile, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		t.println("  " + warnStyle.Render("scan error: "+err.Error()))
		return err
	}

	output := t.cmd.OutOrStdout()
	model := newSourceListModel(sources)

	if f, ok := output.(*os.File); ok {
		width, height, sizeErr := term.GetSize(int(f.Fd()))
		if sizeErr == nil {
			model.height = height
			model.width = width
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(output, model.View())
		return err
	}

	return runPager(ctx, model, output)
}

// DisplayStartingFile announces a file entering processing.
func (t *TUI) DisplayStartingFile(ctx context.Context, source m.SourceFile) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.println(faintStyle.Render("  … " + string(source.Path)))
}

// DisplayCompletedFile reports the outcome of one file.
func (t *TUI) DisplayCompletedFile(ctx context.Context, result m.FileResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	switch {
	case result.Err != nil:
		t.println(fmt.Sprintf("  %s %s %s", warnStyle.Render("✖ "+statusSkipped), result.Source.Path,
			faintStyle.Render(result.Err.Error())))
	case result.Record == nil:
		t.println(fmt.Sprintf("  %s %s", warnStyle.Render("✖ "+statusEmpty), result.Source.Path))
	default:
		t.println(fmt.Sprintf("  %s %s %s", okStyle.Render("✔ "+statusGenerated), result.Source.TestPath,
			faintStyle.Render(fmt.Sprintf("%d lines, %d tests, %.2fs",
				result.Record.LineCount, result.Record.TestMarkerCount, result.Record.ElapsedSeconds))))
	}

	if result.Diff != "" {
		t.println(result.Diff)
	}
}

// DisplaySummary prints the aggregated run summary.
func (t *TUI) DisplaySummary(ctx context.Context, summary m.SummaryRecord, processed, skipped int, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	if err != nil {
		t.println("\n  " + warnStyle.Render(fmt.Sprintf("No tests generated (%d skipped): %v", skipped, err)))
		return
	}

	t.println("\n  " + okStyle.Render("📊 "+summary.ProjectName))
	t.println(fmt.Sprintf("  Files: %d generated, %d skipped", processed, skipped))
	t.println(fmt.Sprintf("  Lines: %d", summary.LineCount))
	t.println(fmt.Sprintf("  Tests: %d", summary.TestMarkerCount))
	t.println(fmt.Sprintf("  Time:  %.2fs", summary.ElapsedSeconds))
}

// DisplayReport shows a summary loaded from a previous run.
func (t *TUI) DisplayReport(ctx context.Context, path m.Path, summary m.SummaryRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.println("  " + okStyle.Render("📄 "+string(path)))
	t.println(fmt.Sprintf("  Project: %s", summary.ProjectName))
	t.println(fmt.Sprintf("  Lines:   %d", summary.LineCount))
	t.println(fmt.Sprintf("  Tests:   %d", summary.TestMarkerCount))
	t.println(fmt.Sprintf("  Time:    %.2fs", summary.ElapsedSeconds))

	return nil
}

func (t *TUI) println(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, _ = fmt.Fprintln(t.cmd.OutOrStdout(), line)
}

func renderHeader(mode StartMode) string {
	title := m.ProjectName + " - Test Generation"

	switch mode {
	case ModeList:
		title = m.ProjectName + " - Source Listing"
	case ModeView:
		title = m.ProjectName + " - Report"
	case ModeGenerate:
	}

	return titleStyle.Render(title) + "\n"
}

func runPager(ctx context.Context, model sourceListModel, output io.Writer) error {
	program := tea.NewProgram(model, tea.WithOutput(output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// sourceListModel is the Bubble Tea model paging through discovered sources.
type sourceListModel struct {
	sources  []m.SourceFile
	height   int
	width    int
	offset   int
	quitting bool
}

func newSourceListModel(sources []m.SourceFile) sourceListModel {
	return sourceListModel{sources: sources}
}

func (sm sourceListModel) Init() tea.Cmd {
	return nil
}

func (sm sourceListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.height = msg.Height
		sm.width = msg.Width

		return sm, nil

	case tea.KeyMsg:
		return sm.handleKeyPress(msg)
	}

	return sm, nil
}

//nolint:cyclop,exhaustive // Key handling requires multiple cases for UI navigation
func (sm sourceListModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		sm.quitting = true
		return sm, tea.Quit
	default:
	}

	switch msg.String() {
	case "q":
		sm.quitting = true
		return sm, tea.Quit

	case "down", "j":
		sm.offset = sm.clamp(sm.offset + 1)

	case "up", "k":
		sm.offset = sm.clamp(sm.offset - 1)

	case "g", "home":
		sm.offset = 0

	case "G", "end":
		sm.offset = sm.maxOffset()

	case "d", "pgdown":
		sm.offset = sm.clamp(sm.offset + sm.itemsPerPage())

	case "u", "pgup":
		sm.offset = sm.clamp(sm.offset - sm.itemsPerPage())
	}

	return sm, nil
}

func (sm sourceListModel) clamp(offset int) int {
	if offset < 0 {
		return 0
	}

	return min(offset, sm.maxOffset())
}

// itemsPerPage calculates how many items can fit on screen.
func (sm sourceListModel) itemsPerPage() int {
	if sm.height == 0 {
		return 10
	}

	// header box, title, total and footer
	reserved := 10

	available := sm.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

func (sm sourceListModel) maxOffset() int {
	return max(len(sm.sources)-sm.itemsPerPage(), 0)
}

// needsPagination returns true if the list is too large to fit on screen.
func (sm sourceListModel) needsPagination() bool {
	if len(sm.sources) == 0 {
		return false
	}

	return len(sm.sources) > sm.itemsPerPage() && sm.height > 0
}

func (sm sourceListModel) View() string {
	if sm.quitting {
		return ""
	}

	var b strings.Builder

	if len(sm.sources) == 0 {
		b.WriteString("  📭 No source files found\n")
		return b.String()
	}

	b.WriteString("  🔎 sources:\n\n")

	total := len(sm.sources)
	paginate := sm.needsPagination()

	start, end := 0, total
	if paginate {
		start = sm.offset
		end = min(start+sm.itemsPerPage(), total)
	}

	for _, source := range sm.sources[start:end] {
		fmt.Fprintf(&b, "  %s %s %s\n", source.Path, faintStyle.Render("→"), source.TestPath)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  📊 Total: %d file(s)\n", total)

	if paginate {
		perPage := sm.itemsPerPage()
		currentPage := (sm.offset / perPage) + 1
		totalPages := (total + perPage - 1) / perPage

		b.WriteString("\n")
		fmt.Fprintf(&b, "  Page %d/%d | Showing %d-%d of %d\n", currentPage, totalPages, start+1, end, total)
		b.WriteString("  ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit\n")
	}

	return b.String()
}
