package metrics

import (
	"time"
)

// testRecorder counts calls per hook.
type testRecorder struct {
	stageDurations map[string]int
	stageResults   map[string]map[ResultLabel]int
	runDurations   int
	runOutcomes    map[ResultLabel]int
	documents      map[DocumentLabel]int
	entries        int
	assets         int
	years          int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{
		stageDurations: map[string]int{},
		stageResults:   map[string]map[ResultLabel]int{},
		runOutcomes:    map[ResultLabel]int{},
		documents:      map[DocumentLabel]int{},
	}
}

func (t *testRecorder) ObserveStageDuration(stage string, _ time.Duration) {
	t.stageDurations[stage]++
}
func (t *testRecorder) ObserveRunDuration(_ time.Duration) { t.runDurations++ }
func (t *testRecorder) IncStageResult(stage string, result ResultLabel) {
	m, ok := t.stageResults[stage]
	if !ok {
		m = map[ResultLabel]int{}
		t.stageResults[stage] = m
	}
	m[result]++
}
func (t *testRecorder) IncRunOutcome(outcome ResultLabel)         { t.runOutcomes[outcome]++ }
func (t *testRecorder) AddDocuments(label DocumentLabel, n int) { t.documents[label] += n }
func (t *testRecorder) AddEntries(n int)                        { t.entries += n }
func (t *testRecorder) AddAssets(n int)                         { t.assets += n }
func (t *testRecorder) SetYears(n int)                          { t.years = n }

var (
	_ Recorder = NoopRecorder{}
	_ Recorder = (*PrometheusRecorder)(nil)
	_ Recorder = newTestRecorder()
)
