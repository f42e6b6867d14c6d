package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	m "completest.dev/pkg/completest/internal/model"
)

// SummaryStore persists the final run summary.
type SummaryStore interface {
	SaveSummary(ctx context.Context, path m.Path, summary m.SummaryRecord) error
	LoadSummary(ctx context.Context, path m.Path) (m.SummaryRecord, error)
}

// JSONSummaryStore writes the summary as an indented JSON object.
type JSONSummaryStore struct{}

// NewSummaryStore constructs the JSON-backed SummaryStore.
func NewSummaryStore() *JSONSummaryStore {
	return &JSONSummaryStore{}
}

// SaveSummary writes summary to path, replacing an existing file.
func (s *JSONSummaryStore) SaveSummary(ctx context.Context, path m.Path, summary m.SummaryRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}

	if err := os.WriteFile(string(path), append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("write summary %s: %w", path, err)
	}

	return nil
}

// LoadSummary reads a summary previously written by SaveSummary.
func (s *JSONSummaryStore) LoadSummary(ctx context.Context, path m.Path) (m.SummaryRecord, error) {
	if err := ctx.Err(); err != nil {
		return m.SummaryRecord{}, err
	}

	// #nosec G304 - path is the configured summary output
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.SummaryRecord{}, fmt.Errorf("read summary %s: %w", path, err)
	}

	var summary m.SummaryRecord
	if err := json.Unmarshal(data, &summary); err != nil {
		return m.SummaryRecord{}, fmt.Errorf("decode summary %s: %w", path, err)
	}

	return summary, nil
}
