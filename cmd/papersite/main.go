package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/FadelMamar/3dcp.fyi/cmd/papersite/commands"
	ferrors "github.com/FadelMamar/3dcp.fyi/internal/foundation/errors"
	"github.com/FadelMamar/3dcp.fyi/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("papersite"),
		kong.Description("Convert the monthly 3DCP paper lists into an mkdocs docs tree."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	if err := ctx.Run(commands.NewGlobal(os.Stdout), cli); err != nil {
		ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
