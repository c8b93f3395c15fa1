package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/FadelMamar/3dcp.fyi/internal/config"
	"github.com/FadelMamar/3dcp.fyi/internal/convert"
	"github.com/FadelMamar/3dcp.fyi/internal/logfields"
	"github.com/FadelMamar/3dcp.fyi/internal/metrics"
	"github.com/FadelMamar/3dcp.fyi/internal/nav"
)

// ConvertCmd implements the 'convert' command.
type ConvertCmd struct {
	YearIndex bool `name:"year-index" help:"Also write <year>/index.md pages and link them from the navigation (overrides year_index)"`
	NoNav     bool `name:"no-nav" help:"Do not write the navigation file"`
}

func (c *ConvertCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	return RunConvert(g, cfg, ConvertSettings{
		YearIndex: c.YearIndex || cfg.YearIndex,
		WriteNav:  !c.NoNav,
	})
}

// ConvertSettings are the command-line switches of a conversion run.
type ConvertSettings struct {
	YearIndex bool
	WriteNav  bool
}

// ConvertSummary reports what a conversion run produced.
type ConvertSummary struct {
	Result      *convert.Result
	NavFile     string
	YearIndexes []string
}

// RunConvert converts the sources, then writes year indexes and the navigation
// built from the in-memory grouping.
func RunConvert(g *Global, cfg *config.Config, s ConvertSettings) error {
	_, err := runConvert(g, cfg, s)
	return err
}

func runConvert(g *Global, cfg *config.Config, s ConvertSettings) (summary *ConvertSummary, err error) {
	log := g.logger()
	out := g.out()
	rec := newRunMetrics(cfg, g.runID())
	start := time.Now()
	defer func() {
		outcome := metrics.ResultSuccess
		switch {
		case err != nil:
			outcome = metrics.ResultFatal
		case summary != nil && summary.Result.Failed > 0:
			outcome = metrics.ResultWarning
		}
		rec.IncRunOutcome(outcome)
		rec.ObserveRunDuration(time.Since(start))
		rec.flush(log)
	}()

	fmt.Fprintf(out, "Project root: %s\n", cfg.Root)
	fmt.Fprintf(out, "Source directory: %s\n", cfg.SourceDir())
	fmt.Fprintf(out, "Target directory: %s\n", cfg.PapersDir())

	stageStart := time.Now()
	res, err := convert.Run(convert.Options{
		SourceDir:    cfg.SourceDir(),
		DocsDir:      cfg.DocsDir(),
		PapersDir:    cfg.PapersDir(),
		ReadmePath:   cfg.ReadmePath(),
		OverviewPath: cfg.OverviewPath(),
		Overview:     overviewOptions(cfg),
		Logger:       log,
	})
	rec.ObserveStageDuration("convert", time.Since(stageStart))
	if err != nil {
		rec.IncStageResult("convert", metrics.ResultFatal)
		return nil, err
	}
	recordConversion(rec, res)

	summary = &ConvertSummary{Result: res}
	fmt.Fprintf(out, "\nConversion complete!\n")
	fmt.Fprintf(out, "  Total files converted: %d\n", res.Files)
	fmt.Fprintf(out, "  Total entries: %d\n", res.Entries)
	if res.Unchanged > 0 {
		fmt.Fprintf(out, "  Unchanged files: %d\n", res.Unchanged)
	}
	if res.Failed > 0 {
		fmt.Fprintf(out, "  Failed files: %d\n", res.Failed)
	}
	if res.OverviewPage != "" {
		fmt.Fprintf(out, "Overview page written to %s\n", relativeTo(cfg.Root, res.OverviewPage))
	}

	provider := nav.GroupingProvider{Groups: res.Groups}
	years, err := provider.YearMonths()
	if err != nil {
		return summary, classifyTreeError(err, cfg.PapersDir())
	}
	rec.SetYears(len(years))

	if s.YearIndex {
		stageStart = time.Now()
		written, err := nav.WriteYearIndexes(cfg.PapersDir(), years, log)
		rec.ObserveStageDuration("year_index", time.Since(stageStart))
		if err != nil {
			rec.IncStageResult("year_index", metrics.ResultFatal)
			return summary, err
		}
		rec.IncStageResult("year_index", metrics.ResultSuccess)
		summary.YearIndexes = written
		log.Info("Year index pages written", logfields.Stage("year_index"), logfields.Count(len(written)))
	}

	if !s.WriteNav {
		return summary, nil
	}

	stageStart = time.Now()
	nodes, err := nav.Build(provider, navOptions(cfg, s.YearIndex))
	if err == nil {
		err = nav.WriteFile(cfg.NavigationPath(), nodes, nav.Format(cfg.NavigationFormat))
	}
	rec.ObserveStageDuration("navigation", time.Since(stageStart))
	if err != nil {
		rec.IncStageResult("navigation", metrics.ResultFatal)
		return summary, classifyTreeError(err, cfg.PapersDir())
	}
	rec.IncStageResult("navigation", metrics.ResultSuccess)
	summary.NavFile = cfg.NavigationPath()

	fmt.Fprintf(out, "\nNavigation structure saved to: %s\n", relativeTo(cfg.Root, summary.NavFile))
	fmt.Fprintln(out, "Run 'papersite nav --update-config' to apply it to mkdocs.yml")
	return summary, nil
}

func recordConversion(rec metrics.Recorder, res *convert.Result) {
	result := metrics.ResultSuccess
	if res.Failed > 0 {
		result = metrics.ResultWarning
	}
	rec.IncStageResult("convert", result)
	rec.AddDocuments(metrics.DocumentWritten, res.Files-res.Unchanged)
	rec.AddDocuments(metrics.DocumentUnchanged, res.Unchanged)
	rec.AddDocuments(metrics.DocumentFailed, res.Failed)
	rec.AddDocuments(metrics.DocumentSkipped, len(res.Skipped))
	rec.AddEntries(res.Entries)
	rec.AddAssets(res.Assets.Files)
}

func (g *Global) runID() string {
	if g == nil {
		return ""
	}
	return g.RunID
}

func relativeTo(base, target string) string {
	if rel, err := filepath.Rel(base, target); err == nil {
		return filepath.ToSlash(rel)
	}
	return target
}
