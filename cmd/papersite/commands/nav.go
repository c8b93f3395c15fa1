package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/FadelMamar/3dcp.fyi/internal/config"
	ferrors "github.com/FadelMamar/3dcp.fyi/internal/foundation/errors"
	"github.com/FadelMamar/3dcp.fyi/internal/logfields"
	"github.com/FadelMamar/3dcp.fyi/internal/nav"
)

// NavCmd implements the 'nav' command.
type NavCmd struct {
	YearIndex    bool   `name:"year-index" default:"true" negatable:"" help:"Write <year>/index.md pages and link them from each year"`
	Format       string `name:"format" short:"f" help:"Output format: json or yaml (defaults to navigation_format)"`
	Out          string `name:"out" short:"o" help:"Write the navigation to this file instead of stdout"`
	Simple       bool   `name:"simple" help:"Print the plain YAML navigation block (no year indexes, no older-years bucket)"`
	UpdateConfig bool   `name:"update-config" help:"Replace the nav key of the mkdocs configuration"`
}

func (n *NavCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	return RunNav(g, cfg, NavSettings{
		YearIndex:    n.YearIndex,
		Format:       n.Format,
		Out:          n.Out,
		Simple:       n.Simple,
		UpdateConfig: n.UpdateConfig,
	})
}

// NavSettings are the command-line switches of a navigation rebuild.
type NavSettings struct {
	YearIndex    bool
	Format       string
	Out          string
	Simple       bool
	UpdateConfig bool
}

// RunNav rescans the papers tree and emits the navigation.
func RunNav(g *Global, cfg *config.Config, s NavSettings) error {
	log := g.logger()
	out := g.out()
	papersDir := cfg.PapersDir()
	provider := nav.TreeProvider{PapersDir: papersDir}

	if s.Simple {
		text, err := nav.RenderSimpleYAML(provider, navOptions(cfg, false))
		if err != nil {
			return classifyTreeError(err, papersDir)
		}
		return emit(out, s.Out, []byte(text+"\n"))
	}

	format := nav.Format(cfg.NavigationFormat)
	if s.Format != "" {
		format = nav.Format(s.Format)
	}
	if format != nav.FormatJSON && format != nav.FormatYAML {
		return ferrors.ValidationError("unsupported navigation format").
			WithContext("format", string(format)).
			Build()
	}

	years, err := provider.YearMonths()
	if err != nil {
		return classifyTreeError(err, papersDir)
	}

	if s.YearIndex {
		written, err := nav.WriteYearIndexes(papersDir, years, log)
		if err != nil {
			return err
		}
		log.Info("Year index pages written", logfields.Stage("year_index"), logfields.Count(len(written)))
	}

	nodes, err := nav.Build(provider, navOptions(cfg, s.YearIndex))
	if err != nil {
		return classifyTreeError(err, papersDir)
	}

	if s.UpdateConfig {
		if err := nav.UpdateMkDocsConfig(cfg.MkDocsPath(), nodes); err != nil {
			return err
		}
		fmt.Fprintf(out, "Updated navigation in %s\n", cfg.MkDocsPath())
	}

	if s.Out != "" {
		if err := nav.WriteFile(s.Out, nodes, format); err != nil {
			return err
		}
		log.Info("Navigation written", logfields.Path(s.Out), logfields.Format(string(format)))
		return nil
	}
	if s.UpdateConfig {
		return nil
	}

	data, err := nav.Marshal(nodes, format)
	if err != nil {
		return ferrors.NavigationError("cannot serialize navigation").
			WithCause(err).
			WithContext("format", string(format)).
			Build()
	}
	if format == nav.FormatJSON {
		data = append(data, '\n')
	}
	return emit(out, "", data)
}

// emit writes data to path, or to out when path is empty.
func emit(out io.Writer, path string, data []byte) error {
	if path == "" {
		if _, err := out.Write(data); err != nil {
			return ferrors.InternalError("cannot write output").WithCause(err).Build()
		}
		return nil
	}
	// #nosec G306 - navigation output is part of the published docs tree
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ferrors.FileSystemError("cannot write navigation file").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	return nil
}
