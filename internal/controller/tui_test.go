package controller

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	m "completest.dev/pkg/completest/internal/model"
)

func makeSources(n int) []m.SourceFile {
	sources := make([]m.SourceFile, 0, n)
	for i := 0; i < n; i++ {
		sources = append(sources, m.SourceFile{
			Path:     m.Path(fmt.Sprintf("src/main/File%02d.java", i)),
			TestPath: m.Path(fmt.Sprintf("src/test/File%02dTest.java", i)),
		})
	}

	return sources
}

func TestTUI_Start_Header(t *testing.T) {
	tests := []struct {
		name    string
		options []StartOption
		want    string
	}{
		{"generate mode", []StartOption{WithGenerateMode()}, "CompleTest - Test Generation"},
		{"list mode", []StartOption{WithListMode()}, "CompleTest - Source Listing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, buf := newBufferedCmd()

			if err := NewTUI(cmd).Start(context.Background(), tt.options...); err != nil {
				t.Fatalf("Start() error = %v", err)
			}

			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("header missing %q: %s", tt.want, buf.String())
			}
		})
	}
}

func TestTUI_DisplaySources_Empty(t *testing.T) {
	cmd, buf := newBufferedCmd()

	if err := NewTUI(cmd).DisplaySources(context.Background(), nil, nil); err != nil {
		t.Fatalf("DisplaySources() error = %v", err)
	}

	if !strings.Contains(buf.String(), "No source files found") {
		t.Errorf("expected empty message, got: %s", buf.String())
	}
}

func TestTUI_DisplaySources_PrintsWithoutTerminal(t *testing.T) {
	cmd, buf := newBufferedCmd()

	if err := NewTUI(cmd).DisplaySources(context.Background(), makeSources(30), nil); err != nil {
		t.Fatalf("DisplaySources() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "src/main/File29.java") {
		t.Error("output should list every source when no terminal size is known")
	}
	if !strings.Contains(output, "Total: 30 file(s)") {
		t.Errorf("missing total: %s", output)
	}
	if strings.Contains(output, "Page ") {
		t.Error("unexpected pagination footer")
	}
}

func TestTUI_DisplaySummary(t *testing.T) {
	cmd, buf := newBufferedCmd()

	NewTUI(cmd).DisplaySummary(context.Background(),
		m.SummaryRecord{ProjectName: m.ProjectName, LineCount: 10, TestMarkerCount: 4, ElapsedSeconds: 0.5}, 2, 1, nil)

	output := buf.String()
	for _, want := range []string{m.ProjectName, "2 generated, 1 skipped", "Lines: 10", "Tests: 4", "0.50s"} {
		if !strings.Contains(output, want) {
			t.Errorf("summary missing %q: %s", want, output)
		}
	}
}

func TestSourceListModel_Pagination(t *testing.T) {
	model := newSourceListModel(makeSources(25))

	if model.needsPagination() {
		t.Fatal("no pagination expected before the terminal height is known")
	}

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	model = updated.(sourceListModel)

	if got := model.itemsPerPage(); got != 10 {
		t.Fatalf("itemsPerPage() = %d, want 10", got)
	}
	if !model.needsPagination() {
		t.Fatal("expected pagination for 25 items on 20 lines")
	}
	if got := model.maxOffset(); got != 15 {
		t.Fatalf("maxOffset() = %d, want 15", got)
	}

	view := model.View()
	if !strings.Contains(view, "Page 1/3 | Showing 1-10 of 25") {
		t.Errorf("unexpected footer: %s", view)
	}
	if strings.Contains(view, "File10.java") {
		t.Error("first page should not show item 10")
	}
}

func TestSourceListModel_KeyNavigation(t *testing.T) {
	model := newSourceListModel(makeSources(25))
	model.height = 20

	press := func(key string) {
		updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
		model = updated.(sourceListModel)
	}

	press("k")
	if model.offset != 0 {
		t.Errorf("offset after up at top = %d, want 0", model.offset)
	}

	press("j")
	if model.offset != 1 {
		t.Errorf("offset after down = %d, want 1", model.offset)
	}

	press("G")
	if model.offset != 15 {
		t.Errorf("offset after end = %d, want 15", model.offset)
	}

	press("d")
	if model.offset != 15 {
		t.Errorf("offset past end = %d, want 15", model.offset)
	}

	press("u")
	if model.offset != 5 {
		t.Errorf("offset after page up = %d, want 5", model.offset)
	}

	press("g")
	if model.offset != 0 {
		t.Errorf("offset after home = %d, want 0", model.offset)
	}

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	model = updated.(sourceListModel)

	if !model.quitting || cmd == nil {
		t.Error("q should quit the pager")
	}
}

func TestNewUI(t *testing.T) {
	cmd, _ := newBufferedCmd()

	if _, ok := NewUI(cmd, true).(*TUI); !ok {
		t.Error("expected TUI for a terminal")
	}
	if _, ok := NewUI(cmd, false).(*SimpleUI); !ok {
		t.Error("expected SimpleUI otherwise")
	}
}
