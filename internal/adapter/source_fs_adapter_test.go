package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	m "completest.dev/pkg/completest/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "Main.java"), "class Main {}\n")

		nestedDir := filepath.Join(root, "src", "main")
		if err := os.MkdirAll(nestedDir, 0o755); err != nil {
			t.Fatalf("failed to create nested dir: %v", err)
		}
		child := filepath.Join(nestedDir, "Child.java")
		writeTestFile(t, child, "class Child {}\n")

		var visited []string
		err := adapter.Walk(context.Background(), m.Path(root), func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if !containsPath(visited, child) {
			t.Fatalf("Walk() did not visit nested file")
		}
		if !containsPath(visited, filepath.Join(root, "Main.java")) {
			t.Fatalf("Walk() did not visit top-level file")
		}
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "Main.java"), "class Main {}\n")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		calls := 0
		err := adapter.Walk(ctx, m.Path(root), func(string, os.FileInfo, error) error {
			calls++
			return nil
		})
		if err == nil {
			t.Fatalf("Walk() expected context error")
		}
		if calls != 0 {
			t.Fatalf("Walk() invoked callback %d times after cancel", calls)
		}
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "Foo.java")
	content := "package foo;\n" + "class Foo {}\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("ReadFile() = %q, want %q", string(got), content)
	}
}

func TestLocalSourceFSAdapter_WriteFileOverwrites(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "FooTest.java")
	writeTestFile(t, path, "old content that is longer than the new one\n")

	if err := adapter.WriteFile(context.Background(), m.Path(path), []byte("new\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != "new\n" {
		t.Fatalf("WriteFile() left %q, want %q", string(got), "new\n")
	}
}

func TestLocalSourceFSAdapter_MkdirAllAndExists(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	root := t.TempDir()
	dir := filepath.Join(root, "src", "test", "java")

	if err := adapter.MkdirAll(ctx, m.Path(dir)); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	// idempotent
	if err := adapter.MkdirAll(ctx, m.Path(dir)); err != nil {
		t.Fatalf("MkdirAll() second call error = %v", err)
	}

	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		t.Fatalf("MkdirAll() did not create directory, stat err=%v", err)
	}

	exists, err := adapter.Exists(ctx, m.Path(dir))
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Fatalf("Exists() reported a directory as a file")
	}

	file := filepath.Join(dir, "FooTest.java")
	exists, err = adapter.Exists(ctx, m.Path(file))
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Fatalf("Exists() = true for missing file")
	}

	writeTestFile(t, file, "class FooTest {}\n")
	exists, err = adapter.Exists(ctx, m.Path(file))
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !exists {
		t.Fatalf("Exists() = false for existing file")
	}
}

func TestLocalSourceFSAdapter_PathHelpers(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	base := m.Path("/tmp/project")
	target := m.Path("/tmp/project/src/main/Foo.java")

	rel, err := adapter.RelPath(ctx, base, target)
	if err != nil {
		t.Fatalf("RelPath() error = %v", err)
	}

	if string(rel) != filepath.Join("src", "main", "Foo.java") {
		t.Fatalf("RelPath() = %s, want %s", rel, filepath.Join("src", "main", "Foo.java"))
	}

	joined := adapter.JoinPath(ctx, "/tmp", "project", "src", "Foo.java")
	if string(joined) != filepath.Join("/tmp", "project", "src", "Foo.java") {
		t.Fatalf("JoinPath() = %s, want %s", joined, filepath.Join("/tmp", "project", "src", "Foo.java"))
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
