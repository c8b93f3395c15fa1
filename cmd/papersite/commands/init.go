package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/FadelMamar/3dcp.fyi/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite existing configuration file"`
	Output string `short:"o" name:"output" help:"Directory to place papersite.yaml in (defaults to --config)"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	if i.Output != "" {
		return RunInit(g.out(), filepath.Join(i.Output, config.DefaultPath), i.Force)
	}
	return RunInit(g.out(), root.Config, i.Force)
}

func RunInit(out io.Writer, configPath string, force bool) error {
	fmt.Fprintf(out, "Writing configuration to %s\n", configPath)
	if err := config.Init(configPath, force); err != nil {
		fmt.Fprintln(out, "Initialization failed")
		return err
	}
	fmt.Fprintln(out, "initialized successfully")
	return nil
}
