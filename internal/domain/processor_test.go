package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"completest.dev/pkg/completest/internal/adapter"
	"completest.dev/pkg/completest/internal/domain"
	domainmocks "completest.dev/pkg/completest/internal/domain/mocks"
	m "completest.dev/pkg/completest/internal/model"
)

func writeSource(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// steppingClock returns base, base+step, base+2*step, ...
func steppingClock(step time.Duration) func() time.Time {
	current := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	return func() time.Time {
		now := current
		current = current.Add(step)

		return now
	}
}

func newSourceFile(root string) m.SourceFile {
	return m.SourceFile{
		Path:     m.Path(filepath.Join(root, "src", "main", "Foo.java")),
		TestPath: m.Path(filepath.Join(root, "src", "test", "FooTest.java")),
	}
}

func TestProcessor_Process_WritesTestAndMetrics(t *testing.T) {
	root := t.TempDir()
	source := newSourceFile(root)
	require.NoError(t, os.MkdirAll(filepath.Dir(string(source.TestPath)), 0o755))

	text := "@Test void a() {}\nclass FooTest {}\n"

	generator := domainmocks.NewMockTestGenerator(t)
	generator.EXPECT().Generate(mock.Anything, source.Path).Return(text, nil).Once()

	processor := domain.NewProcessor(adapter.NewLocalSourceFSAdapter(), generator,
		domain.WithClock(steppingClock(1500*time.Millisecond)))

	result := processor.Process(context.Background(), source)
	require.NoError(t, result.Err)
	require.NotNil(t, result.Record)

	assert.Equal(t, m.MetricsRecord{
		ProjectName:     m.ProjectName,
		ElapsedSeconds:  1.5,
		LineCount:       2,
		TestMarkerCount: 1,
	}, *result.Record)
	assert.Empty(t, result.Diff)

	written, err := os.ReadFile(string(source.TestPath))
	require.NoError(t, err)
	assert.Equal(t, text, string(written))
}

func TestProcessor_Process_OverwritesExistingTest(t *testing.T) {
	root := t.TempDir()
	source := newSourceFile(root)
	writeSource(t, string(source.TestPath), "class Old {}\n// a much longer previous body\n")

	generator := domainmocks.NewMockTestGenerator(t)
	generator.EXPECT().Generate(mock.Anything, source.Path).Return("class New {}", nil).Once()

	processor := domain.NewProcessor(adapter.NewLocalSourceFSAdapter(), generator)

	result := processor.Process(context.Background(), source)
	require.NoError(t, result.Err)

	written, err := os.ReadFile(string(source.TestPath))
	require.NoError(t, err)
	assert.Equal(t, "class New {}", string(written))
}

func TestProcessor_Process_EmptyCompletion(t *testing.T) {
	root := t.TempDir()
	source := newSourceFile(root)

	generator := domainmocks.NewMockTestGenerator(t)
	generator.EXPECT().Generate(mock.Anything, source.Path).Return("", nil).Once()

	processor := domain.NewProcessor(adapter.NewLocalSourceFSAdapter(), generator)

	result := processor.Process(context.Background(), source)
	assert.NoError(t, result.Err)
	assert.Nil(t, result.Record)
	assert.NoFileExists(t, string(source.TestPath))
}

func TestProcessor_Process_GenerateError(t *testing.T) {
	root := t.TempDir()
	source := newSourceFile(root)

	generator := domainmocks.NewMockTestGenerator(t)
	generator.EXPECT().Generate(mock.Anything, source.Path).Return("", adapter.ErrTransport).Once()

	processor := domain.NewProcessor(adapter.NewLocalSourceFSAdapter(), generator)

	result := processor.Process(context.Background(), source)
	require.ErrorIs(t, result.Err, adapter.ErrTransport)
	assert.Nil(t, result.Record)
	assert.NoFileExists(t, string(source.TestPath))
}

func TestProcessor_Process_WriteError(t *testing.T) {
	root := t.TempDir()
	source := newSourceFile(root) // parent directory never provisioned

	generator := domainmocks.NewMockTestGenerator(t)
	generator.EXPECT().Generate(mock.Anything, source.Path).Return("class FooTest {}", nil).Once()

	processor := domain.NewProcessor(adapter.NewLocalSourceFSAdapter(), generator)

	result := processor.Process(context.Background(), source)
	require.Error(t, result.Err)
	assert.Nil(t, result.Record)
}

func TestProcessor_Process_Diff(t *testing.T) {
	root := t.TempDir()
	source := newSourceFile(root)
	writeSource(t, string(source.TestPath), "class FooTest {\n  old();\n}\n")

	generator := domainmocks.NewMockTestGenerator(t)
	generator.EXPECT().Generate(mock.Anything, source.Path).Return("class FooTest {\n  fresh();\n}\n", nil).Once()

	processor := domain.NewProcessor(adapter.NewLocalSourceFSAdapter(), generator, domain.WithDiff(true))

	result := processor.Process(context.Background(), source)
	require.NoError(t, result.Err)
	assert.Contains(t, result.Diff, "-  old();")
	assert.Contains(t, result.Diff, "+  fresh();")
	assert.Contains(t, result.Diff, "(previous)")
}

func TestProcessor_Process_DiffWithoutPreviousFile(t *testing.T) {
	root := t.TempDir()
	source := newSourceFile(root)
	require.NoError(t, os.MkdirAll(filepath.Dir(string(source.TestPath)), 0o755))

	generator := domainmocks.NewMockTestGenerator(t)
	generator.EXPECT().Generate(mock.Anything, source.Path).Return("class FooTest {}\n", nil).Once()

	processor := domain.NewProcessor(adapter.NewLocalSourceFSAdapter(), generator, domain.WithDiff(true))

	result := processor.Process(context.Background(), source)
	require.NoError(t, result.Err)
	assert.Empty(t, result.Diff)
}

func TestProcessor_Configured(t *testing.T) {
	generator := domainmocks.NewMockTestGenerator(t)
	generator.EXPECT().Configured().Return(false).Once()

	processor := domain.NewProcessor(adapter.NewLocalSourceFSAdapter(), generator)
	assert.False(t, processor.Configured())
}

func TestNewMetricsRecord(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantLines int
		wantTests int
	}{
		{"no trailing newline", "class A {}", 0, 0},
		{"two breaks one marker", "@Test\nvoid a() {}\n", 2, 1},
		{"case insensitive markers", "@TEST\n@test\n@Test\n", 3, 3},
		{"marker inside identifier", "@TestFactory\n", 1, 1},
		{"crlf counts breaks only", "a\r\nb\r\n", 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := domain.NewMetricsRecord(tt.text, 250*time.Millisecond)

			assert.Equal(t, m.ProjectName, record.ProjectName)
			assert.Equal(t, tt.wantLines, record.LineCount)
			assert.Equal(t, tt.wantTests, record.TestMarkerCount)
			assert.InDelta(t, 0.25, record.ElapsedSeconds, 1e-9)
		})
	}
}

func TestProcessor_Process_CancelledContext(t *testing.T) {
	root := t.TempDir()
	source := newSourceFile(root)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	generator := domainmocks.NewMockTestGenerator(t)
	generator.EXPECT().Generate(mock.Anything, source.Path).
		RunAndReturn(func(ctx context.Context, _ m.Path) (string, error) {
			return "", ctx.Err()
		}).Once()

	processor := domain.NewProcessor(adapter.NewLocalSourceFSAdapter(), generator)

	result := processor.Process(ctx, source)
	assert.True(t, errors.Is(result.Err, context.Canceled))
}
