package commands

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/FadelMamar/3dcp.fyi/internal/config"
	ferrors "github.com/FadelMamar/3dcp.fyi/internal/foundation/errors"
	"github.com/FadelMamar/3dcp.fyi/internal/logfields"
	"github.com/FadelMamar/3dcp.fyi/internal/metrics"
	"github.com/FadelMamar/3dcp.fyi/internal/nav"
	"github.com/FadelMamar/3dcp.fyi/internal/overview"
	"github.com/FadelMamar/3dcp.fyi/internal/version"
)

// Global carries per-process state shared by every command.
type Global struct {
	Logger *slog.Logger
	RunID  string
	// Out receives the user-facing progress lines and any navigation printed to stdout.
	Out io.Writer
}

// NewGlobal tags the default logger with a fresh run id.
func NewGlobal(out io.Writer) *Global {
	id := uuid.NewString()
	return &Global{
		Logger: slog.Default().With(logfields.RunID(id)),
		RunID:  id,
		Out:    out,
	}
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"papersite.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Convert  ConvertCmd  `cmd:"" help:"Convert dat/md sources into the docs tree and write the navigation"`
	Nav      NavCmd      `cmd:"" help:"Rebuild the navigation by scanning the papers tree"`
	Overview OverviewCmd `cmd:"" help:"Regenerate the overview page from the README"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// LoadConfig loads the configuration. Only a path other than the default must exist.
func (c *CLI) LoadConfig() (*config.Config, error) {
	return config.Load(c.Config, c.Config != config.DefaultPath)
}

func (g *Global) logger() *slog.Logger {
	if g == nil || g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return io.Discard
	}
	return g.Out
}

func navOptions(cfg *config.Config, yearIndexLinks bool) nav.Options {
	return nav.Options{
		HomePage:       cfg.HomeRoute(),
		OverviewPage:   cfg.OverviewRoute(),
		PapersRoute:    cfg.PapersRoute(),
		YearIndexLinks: yearIndexLinks,
	}
}

func overviewOptions(cfg *config.Config) overview.Options {
	return overview.Options{PapersHref: overview.PapersHref(cfg.OverviewRoute(), cfg.PapersRoute())}
}

// classifyTreeError maps papers-tree scan failures onto CLI error categories.
func classifyTreeError(err error, papersDir string) error {
	if err == nil {
		return nil
	}
	if _, ok := ferrors.AsClassified(err); ok {
		return err
	}
	if errors.Is(err, nav.ErrPapersDirNotFound) {
		return ferrors.NotFoundError("papers directory does not exist").
			WithCause(err).
			WithContext("path", papersDir).
			Build()
	}
	return ferrors.NavigationError("cannot build navigation").
		WithCause(err).
		WithContext("path", papersDir).
		Build()
}

// runMetrics holds the recorder for one run and writes it out on flush.
type runMetrics struct {
	metrics.Recorder
	registry *prom.Registry
	path     string
}

func newRunMetrics(cfg *config.Config, runID string) *runMetrics {
	path := cfg.MetricsPath()
	if path == "" {
		return &runMetrics{Recorder: metrics.NoopRecorder{}}
	}
	reg := prom.NewRegistry()
	return &runMetrics{
		Recorder: metrics.NewPrometheusRecorder(reg, runID, version.Version),
		registry: reg,
		path:     path,
	}
}

// flush writes the metrics textfile. A failed write is logged, never fatal.
func (m *runMetrics) flush(log *slog.Logger) {
	if m.registry == nil {
		return
	}
	if err := metrics.WriteTextfile(m.path, m.registry); err != nil {
		log.Warn("Failed to write metrics file", logfields.Path(m.path), logfields.Error(err))
		return
	}
	log.Debug("Metrics written", logfields.Path(m.path))
}
