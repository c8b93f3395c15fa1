package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "papersite"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	stageDuration *prom.HistogramVec
	runDuration   prom.Gauge
	stageResults  *prom.CounterVec
	runOutcome    *prom.CounterVec
	documents     *prom.CounterVec
	entries       prom.Counter
	assets        prom.Counter
	years         prom.Gauge
	runInfo       *prom.GaugeVec
}

// NewPrometheusRecorder constructs the run metrics and registers them with reg.
// runID and version are exposed through the papersite_run_info gauge.
func NewPrometheusRecorder(reg *prom.Registry, runID, version string) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		stageDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of individual run stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"}),
		runDuration: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of the last run",
		}),
		stageResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "stage_results_total",
			Help:      "Stage result counts by outcome",
		}, []string{"stage", "result"}),
		runOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "run_outcomes_total",
			Help:      "Run outcomes by final status",
		}, []string{"outcome"}),
		documents: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "documents_total",
			Help:      "Monthly source documents by result",
		}, []string{"result"}),
		entries: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "entries_total",
			Help:      "Paper entries written to the docs tree",
		}),
		assets: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "assets_copied_total",
			Help:      "Figure and icon files copied into the docs tree",
		}),
		years: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "years",
			Help:      "Number of years present in the papers tree",
		}),
		runInfo: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "run_info",
			Help:      "Identifies the run that produced these metrics",
		}, []string{"run_id", "version"}),
	}
	reg.MustRegister(pr.stageDuration, pr.runDuration, pr.stageResults, pr.runOutcome,
		pr.documents, pr.entries, pr.assets, pr.years, pr.runInfo)
	pr.runInfo.WithLabelValues(runID, version).Set(1)
	return pr
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.runDuration.Set(d.Seconds())
}

func (p *PrometheusRecorder) IncStageResult(stage string, result ResultLabel) {
	if p == nil {
		return
	}
	p.stageResults.WithLabelValues(stage, string(result)).Inc()
}

func (p *PrometheusRecorder) IncRunOutcome(outcome ResultLabel) {
	if p == nil {
		return
	}
	p.runOutcome.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) AddDocuments(label DocumentLabel, n int) {
	if p == nil || n <= 0 {
		return
	}
	p.documents.WithLabelValues(string(label)).Add(float64(n))
}

func (p *PrometheusRecorder) AddEntries(n int) {
	if p == nil || n <= 0 {
		return
	}
	p.entries.Add(float64(n))
}

func (p *PrometheusRecorder) AddAssets(n int) {
	if p == nil || n <= 0 {
		return
	}
	p.assets.Add(float64(n))
}

func (p *PrometheusRecorder) SetYears(n int) {
	if p == nil {
		return
	}
	p.years.Set(float64(n))
}
