package convert

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/FadelMamar/3dcp.fyi/internal/assets"
	"github.com/FadelMamar/3dcp.fyi/internal/corpus"
	ferrors "github.com/FadelMamar/3dcp.fyi/internal/foundation/errors"
	"github.com/FadelMamar/3dcp.fyi/internal/logfields"
	"github.com/FadelMamar/3dcp.fyi/internal/overview"
)

// Options configures a conversion run. All paths are resolved by the caller.
type Options struct {
	SourceDir string // directory holding YYYY-MM.md files and the asset folders
	DocsDir   string // docs root receiving the mirrored asset folders
	PapersDir string // root of the <year>/<month>.md tree

	// ReadmePath and OverviewPath control overview generation; an empty
	// ReadmePath disables it.
	ReadmePath   string
	OverviewPath string
	Overview     overview.Options

	Logger *slog.Logger
}

// Result summarizes a conversion run.
type Result struct {
	Files     int // documents converted successfully
	Entries   int // entries across converted documents
	Failed    int
	Unchanged int // converted documents whose content did not change
	Groups    corpus.Grouping
	Skipped   []string
	Assets    assets.Report
	// OverviewPage is the written overview path, empty when skipped.
	OverviewPage string
}

// Run converts every source document, mirrors the asset folders and regenerates the
// overview page. Per-document failures are logged and counted; a missing source
// directory stops the run.
func Run(opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	if info, err := os.Stat(opts.SourceDir); err != nil || !info.IsDir() {
		return nil, ferrors.NotFoundError("source directory does not exist").
			WithCause(corpus.ErrSourceDirNotFound).
			WithContext("path", opts.SourceDir).
			Build()
	}

	inv, err := corpus.Organize(opts.SourceDir, log)
	if err != nil {
		if errors.Is(err, corpus.ErrSourceDirNotFound) {
			return nil, ferrors.NotFoundError("source directory does not exist").
				WithCause(err).
				WithContext("path", opts.SourceDir).
				Build()
		}
		return nil, ferrors.FileSystemError("cannot scan source directory").
			WithCause(err).
			WithContext("path", opts.SourceDir).
			Build()
	}

	res := &Result{Groups: inv.Groups, Skipped: inv.Skipped}
	log.Info("Converting documents", logfields.Stage("convert"), logfields.Count(inv.Groups.Documents()))

	for _, year := range inv.Groups.Years() {
		yearDir := filepath.Join(opts.PapersDir, strconv.Itoa(year))
		for _, doc := range inv.Groups[year] {
			target := filepath.Join(yearDir, doc.OutputName())
			fr, err := convertFile(doc.Path, target)
			if err != nil {
				res.Failed++
				log.Error("Error converting document",
					logfields.File(filepath.Base(doc.Path)),
					logfields.Error(err))
				continue
			}
			res.Files++
			res.Entries += fr.Entries
			if !fr.Changed {
				res.Unchanged++
				log.Debug("Document unchanged",
					logfields.File(filepath.Base(doc.Path)),
					logfields.Fingerprint(fr.Fingerprint))
			}
			log.Info("Converted document",
				logfields.File(filepath.Base(doc.Path)),
				logfields.Target(relativeTo(opts.DocsDir, target)),
				logfields.Entries(fr.Entries))
		}
	}

	res.Assets, err = assets.Sync(opts.SourceDir, opts.DocsDir, log)
	if err != nil {
		return res, err
	}
	log.Info("Assets synchronized", logfields.Stage("assets"), logfields.Count(res.Assets.Files))

	if opts.ReadmePath != "" {
		page, err := overview.Generate(opts.ReadmePath, opts.OverviewPath, opts.Overview, log)
		if err != nil {
			log.Warn("Overview page not generated", logfields.Stage("overview"), logfields.Error(err))
		}
		res.OverviewPage = page
	}

	return res, nil
}

func relativeTo(base, target string) string {
	if rel, err := filepath.Rel(base, target); err == nil {
		return filepath.ToSlash(rel)
	}
	return target
}
