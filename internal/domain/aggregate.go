package domain

import (
	"errors"

	m "completest.dev/pkg/completest/internal/model"
	pkg "completest.dev/pkg/completest/pkg"
)

// ErrEmptyResult is returned when no file produced a metrics record.
var ErrEmptyResult = errors.New("no file produced a metrics record")

// Fold sums records into one summary. It fails on empty input: there is no
// summary of zero files.
func Fold(records []m.MetricsRecord) (m.SummaryRecord, error) {
	if len(records) == 0 {
		return m.SummaryRecord{}, ErrEmptyResult
	}

	summary := m.SummaryRecord{ProjectName: m.ProjectName}
	for _, record := range records {
		summary = summary.Add(record)
	}

	return summary, nil
}

// FoldSpill folds every record stored in spill, in append order.
func FoldSpill(spill pkg.FileSpill[m.MetricsRecord]) (m.SummaryRecord, error) {
	if spill.Len() == 0 {
		return m.SummaryRecord{}, ErrEmptyResult
	}

	summary := m.SummaryRecord{ProjectName: m.ProjectName}

	err := spill.Range(func(_ uint64, record m.MetricsRecord) error {
		summary = summary.Add(record)
		return nil
	})
	if err != nil {
		return m.SummaryRecord{}, err
	}

	return summary, nil
}
