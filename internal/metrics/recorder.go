package metrics

import "time"

// ResultLabel enumerates stage result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultWarning ResultLabel = "warning"
	ResultFatal   ResultLabel = "fatal"
)

// DocumentLabel enumerates what happened to a single monthly source file.
type DocumentLabel string

const (
	DocumentWritten   DocumentLabel = "written"
	DocumentUnchanged DocumentLabel = "unchanged"
	DocumentFailed    DocumentLabel = "failed"
	DocumentSkipped   DocumentLabel = "skipped"
)

// Recorder defines observability hooks for a papersite run.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	ObserveRunDuration(d time.Duration)
	IncStageResult(stage string, result ResultLabel)
	IncRunOutcome(outcome ResultLabel)
	AddDocuments(label DocumentLabel, n int)
	AddEntries(n int)
	AddAssets(n int)
	SetYears(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) ObserveRunDuration(time.Duration)           {}
func (NoopRecorder) IncStageResult(string, ResultLabel)         {}
func (NoopRecorder) IncRunOutcome(ResultLabel)                  {}
func (NoopRecorder) AddDocuments(DocumentLabel, int)            {}
func (NoopRecorder) AddEntries(int)                             {}
func (NoopRecorder) AddAssets(int)                              {}
func (NoopRecorder) SetYears(int)                               {}
