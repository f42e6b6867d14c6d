package model

// ProjectName is the constant project label carried by every metrics record.
const ProjectName = "CompleTest"

// MetricsRecord holds the statistics produced by one successful completion.
// The JSON field names are part of the result.json contract.
type MetricsRecord struct {
	ProjectName     string  `json:"nome_projeto"`
	ElapsedSeconds  float64 `json:"tempo_execucao"`
	LineCount       int     `json:"qtd_linhas"`
	TestMarkerCount int     `json:"qtd_testes"`
}

// SummaryRecord is the cumulative MetricsRecord of a whole run.
type SummaryRecord MetricsRecord

// Add returns the sum of s and r. ProjectName is not summed.
func (s SummaryRecord) Add(r MetricsRecord) SummaryRecord {
	return SummaryRecord{
		ProjectName:     ProjectName,
		ElapsedSeconds:  s.ElapsedSeconds + r.ElapsedSeconds,
		LineCount:       s.LineCount + r.LineCount,
		TestMarkerCount: s.TestMarkerCount + r.TestMarkerCount,
	}
}

// FileResult is the outcome of processing one source file. Record is nil when
// no test was generated; Err then says why, unless the completion was empty.
type FileResult struct {
	Source SourceFile
	Record *MetricsRecord
	Diff   string // unified diff against a previous test file, when requested
	Err    error
}
