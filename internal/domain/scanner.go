package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"completest.dev/pkg/completest/internal/adapter"
	m "completest.dev/pkg/completest/internal/model"
)

// DefaultExtensions are the source file extensions picked up by the scanner.
var DefaultExtensions = []string{".cs", ".java"}

// DefaultSkipDirs contains directory names that are never descended into.
// Build output folders such as target or bin are ordinary package names in
// Java and C# trees, so they are only skipped through exclude patterns.
var DefaultSkipDirs = []string{
	".git",
	".idea",
}

// testNameMarker excludes files whose lower-cased base name contains it.
const testNameMarker = "test"

// Scanner discovers source files and prepares the directories their tests go to.
type Scanner interface {
	// Scan streams qualifying source files under root in traversal order. The
	// source channel closes when the walk ends; the error channel then yields
	// at most one error and closes.
	Scan(ctx context.Context, root m.Path) (<-chan m.SourceFile, <-chan error)
	// Provision creates the directory that will hold source.TestPath.
	Provision(ctx context.Context, source m.SourceFile) error
}

// ScanOptions configures a Scanner.
type ScanOptions struct {
	Extensions []string
	Exclude    []string
	SkipDirs   []string
}

// ScanOption mutates ScanOptions.
type ScanOption func(*ScanOptions)

// WithExtensions replaces the extension allow-list.
func WithExtensions(exts ...string) ScanOption {
	return func(o *ScanOptions) {
		o.Extensions = exts
	}
}

// WithExclude adds doublestar patterns matched against slash-separated paths
// relative to the scan root.
func WithExclude(patterns ...string) ScanOption {
	return func(o *ScanOptions) {
		o.Exclude = append(o.Exclude, patterns...)
	}
}

// WithSkipDirs replaces the list of directory names that are not descended.
func WithSkipDirs(names ...string) ScanOption {
	return func(o *ScanOptions) {
		o.SkipDirs = names
	}
}

type scanner struct {
	fsAdapter adapter.SourceFSAdapter
	options   ScanOptions
}

// NewScanner constructs a Scanner backed by the provided filesystem adapter.
func NewScanner(fsAdapter adapter.SourceFSAdapter, opts ...ScanOption) Scanner {
	options := ScanOptions{
		Extensions: DefaultExtensions,
		SkipDirs:   DefaultSkipDirs,
	}

	for _, opt := range opts {
		opt(&options)
	}

	return &scanner{
		fsAdapter: fsAdapter,
		options:   options,
	}
}

func (s *scanner) Scan(ctx context.Context, root m.Path) (<-chan m.SourceFile, <-chan error) {
	sources := make(chan m.SourceFile)
	errs := make(chan error, 1)

	go func() {
		defer close(errs)
		defer close(sources)

		err := s.fsAdapter.Walk(ctx, root, func(path string, info os.FileInfo, walkErr error) error {
			return s.visit(ctx, root, path, info, walkErr, sources)
		})
		if err != nil {
			slog.Error("Failed to scan sources", "root", root, "error", err)
			errs <- fmt.Errorf("scan %s: %w", root, err)
		}
	}()

	return sources, errs
}

func (s *scanner) visit(ctx context.Context, root m.Path, path string, info os.FileInfo, walkErr error, out chan<- m.SourceFile) error {
	isRoot := filepath.Clean(path) == filepath.Clean(string(root))

	if walkErr != nil {
		if isRoot {
			return walkErr
		}

		slog.Warn("Skipping unreadable path", "path", path, "error", walkErr)

		if info != nil && info.IsDir() {
			return adapter.SkipDir
		}

		return nil
	}

	if info.IsDir() {
		if !isRoot && (s.skipDir(info.Name()) || s.excluded(ctx, root, path)) {
			slog.Debug("Skipping directory", "path", path)
			return adapter.SkipDir
		}

		return nil
	}

	if !s.qualifies(info.Name()) || !s.regularFile(ctx, path, info) || s.excluded(ctx, root, path) {
		return nil
	}

	testPath, err := DeriveTestPath(m.Path(path), root)
	if err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case out <- m.SourceFile{Path: m.Path(path), TestPath: testPath}:
	}

	return nil
}

// qualifies reports whether name has an allowed extension and does not
// already look like a test.
func (s *scanner) qualifies(name string) bool {
	if strings.Contains(strings.ToLower(name), testNameMarker) {
		return false
	}

	for _, ext := range s.options.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}

	return false
}

// regularFile accepts regular files and symlinks that resolve to one.
func (s *scanner) regularFile(ctx context.Context, path string, info os.FileInfo) bool {
	if info.Mode().IsRegular() {
		return true
	}

	if info.Mode()&os.ModeSymlink == 0 {
		return false
	}

	regular, err := s.fsAdapter.Exists(ctx, m.Path(path))
	if err != nil {
		slog.Warn("Skipping unresolvable symlink", "path", path, "error", err)
		return false
	}

	return regular
}

func (s *scanner) skipDir(name string) bool {
	for _, skip := range s.options.SkipDirs {
		if name == skip {
			return true
		}
	}

	return false
}

func (s *scanner) excluded(ctx context.Context, root m.Path, path string) bool {
	if len(s.options.Exclude) == 0 {
		return false
	}

	rel, err := s.fsAdapter.RelPath(ctx, root, m.Path(path))
	if err != nil {
		return false
	}

	relPath := filepath.ToSlash(string(rel))

	for _, pattern := range s.options.Exclude {
		matched, err := doublestar.Match(pattern, relPath)
		if err != nil {
			slog.Warn("Invalid exclude pattern", "pattern", pattern, "error", err)
			continue
		}

		if matched {
			return true
		}
	}

	return false
}

func (s *scanner) Provision(ctx context.Context, source m.SourceFile) error {
	dir := filepath.Dir(string(source.TestPath))

	if err := s.fsAdapter.MkdirAll(ctx, m.Path(dir)); err != nil {
		slog.Error("Failed to create test directory", "dir", dir, "error", err)
		return fmt.Errorf("create test directory %s: %w", dir, err)
	}

	return nil
}
