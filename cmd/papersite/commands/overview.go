package commands

import (
	"fmt"

	"github.com/FadelMamar/3dcp.fyi/internal/config"
	"github.com/FadelMamar/3dcp.fyi/internal/overview"
)

// OverviewCmd implements the 'overview' command.
type OverviewCmd struct{}

func (o *OverviewCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	return RunOverview(g, cfg)
}

// RunOverview regenerates only the overview page.
func RunOverview(g *Global, cfg *config.Config) error {
	page, err := overview.Generate(cfg.ReadmePath(), cfg.OverviewPath(), overviewOptions(cfg), g.logger())
	if err != nil {
		return err
	}
	if page == "" {
		fmt.Fprintln(g.out(), "No overview page generated")
		return nil
	}
	fmt.Fprintf(g.out(), "Overview page written to %s\n", relativeTo(cfg.Root, page))
	return nil
}
