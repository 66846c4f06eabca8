package commands

import (
	"fmt"

	"git.home.luguber.info/inful/patterns/internal/blogpost"
	"git.home.luguber.info/inful/patterns/internal/post"
)

// BuilderCmd implements the 'builder' command.
type BuilderCmd struct{}

func (b *BuilderCmd) Run(g *Global, _ *CLI) error {
	builder := blogpost.NewMarkdownBuilder()
	post.Compose(builder, post.Demo(), post.WithLogger(g.logger()))
	_, err := fmt.Fprintln(g.stdout(), builder.Build())
	return err
}
