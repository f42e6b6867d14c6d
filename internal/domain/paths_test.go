package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "completest.dev/pkg/completest/internal/model"
)

func TestDeriveTestPath(t *testing.T) {
	root := filepath.FromSlash("/work/project")

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"top-level src/main", "/work/project/src/main/Foo.java", "/work/project/src/test/FooTest.java"},
		{"nested package", "/work/project/src/main/java/com/acme/Foo.java", "/work/project/src/test/java/com/acme/FooTest.java"},
		{"module prefix", "/work/project/api/src/main/Foo.cs", "/work/project/api/src/test/FooTest.cs"},
		{"no src/main keeps dirs", "/work/project/lib/Bar.cs", "/work/project/lib/BarTest.cs"},
		{"file at root", "/work/project/Baz.java", "/work/project/BazTest.java"},
		{"only first occurrence", "/work/project/src/main/src/main/Foo.java", "/work/project/src/test/src/main/FooTest.java"},
		{"segment must be whole", "/work/project/src/mainframe/Foo.java", "/work/project/src/mainframe/FooTest.java"},
		{"multiple dots", "/work/project/src/main/Foo.generated.java", "/work/project/src/test/Foo.generatedTest.java"},
		{"dot file is all stem", "/work/project/src/main/.java", "/work/project/src/test/.javaTest"},
		{"hidden file keeps extension", "/work/project/src/main/.Foo.java", "/work/project/src/test/.FooTest.java"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeriveTestPath(m.Path(filepath.FromSlash(tt.source)), m.Path(root))
			require.NoError(t, err)
			assert.Equal(t, m.Path(filepath.FromSlash(tt.want)), got)
		})
	}
}

func TestDeriveTestPath_RelativeRoot(t *testing.T) {
	got, err := DeriveTestPath(m.Path(filepath.Join("src", "main", "Foo.java")), ".")
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join("src", "test", "FooTest.java")), got)

	got, err = DeriveTestPath(m.Path(filepath.Join(".", "src", "main", "Foo.java")), ".")
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join("src", "test", "FooTest.java")), got)
}

func TestDeriveTestPath_OutsideRoot(t *testing.T) {
	_, err := DeriveTestPath(m.Path(filepath.FromSlash("/elsewhere/Foo.java")), m.Path(filepath.FromSlash("/work/project")))
	require.ErrorIs(t, err, ErrOutsideRoot)
}

func TestDeriveTestPath_IsPureAndStaysUnderRoot(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "src", "main", "Foo.java")

	first, err := DeriveTestPath(m.Path(source), m.Path(root))
	require.NoError(t, err)
	second, err := DeriveTestPath(m.Path(source), m.Path(root))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	rel, err := filepath.Rel(root, string(first))
	require.NoError(t, err)
	assert.NotContains(t, rel, "..")
	assert.NoDirExists(t, filepath.Dir(string(first)))
}
