package main

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/patterns/cmd/patterns/commands"
	foundation "git.home.luguber.info/inful/patterns/internal/foundation/errors"
	"git.home.luguber.info/inful/patterns/internal/version"
	"github.com/alecthomas/kong"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("patterns"),
		kong.Description("Builder and Abstract Factory pattern examples"),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	global := &commands.Global{Logger: slog.Default(), Stdout: os.Stdout}
	err := ctx.Run(global, cli)
	foundation.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
