package main

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/blogforge/cmd/blogforge/commands"
	"git.home.luguber.info/inful/blogforge/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("blogforge"),
		kong.Description("Compose the build-time configuration consumed by the blog's site runtime."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)
	err := ctx.Run(&commands.Global{}, cli)
	ctx.FatalIfErrorf(err)
}
