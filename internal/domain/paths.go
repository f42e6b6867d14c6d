package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	m "completest.dev/pkg/completest/internal/model"
)

// testNameSuffix is inserted between a file's stem and its extension.
const testNameSuffix = "Test"

// ErrOutsideRoot is returned when a source path does not live under the scan root.
var ErrOutsideRoot = errors.New("path is outside the scan root")

var (
	mainSegment = string(filepath.Separator) + filepath.Join("src", "main") + string(filepath.Separator)
	testSegment = string(filepath.Separator) + filepath.Join("src", "test") + string(filepath.Separator)
)

// DeriveTestPath computes where the generated test for source is written. The
// first src/main segment of the path relative to root becomes src/test and the
// file name gets the Test suffix before its extension. It never touches the
// filesystem.
func DeriveTestPath(source, root m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(root), string(source))
	if err != nil {
		return "", fmt.Errorf("relative path of %s: %w", source, err)
	}

	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, source)
	}

	// Anchor the relative path so a leading src/main segment matches too.
	anchored := string(filepath.Separator) + rel
	anchored = strings.Replace(anchored, mainSegment, testSegment, 1)

	dir, file := filepath.Split(anchored)
	ext := fileExt(file)
	stem := strings.TrimSuffix(file, ext)

	return m.Path(filepath.Join(string(root), dir, stem+testNameSuffix+ext)), nil
}

// fileExt is filepath.Ext with leading dots counted as part of the stem, so
// ".java" has no extension and ".hidden.java" has ".java".
func fileExt(name string) string {
	return filepath.Ext(strings.TrimLeft(name, "."))
}
