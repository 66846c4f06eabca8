package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/patterns/internal/config"
	foundation "git.home.luguber.info/inful/patterns/internal/foundation/errors"
	"git.home.luguber.info/inful/patterns/internal/post"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool   `help:"Overwrite existing files"`
	Dir   string `short:"o" name:"output" help:"Directory for the generated files (defaults to the config path's directory)"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	cfgPath := root.Config
	if i.Dir != "" {
		cfgPath = filepath.Join(i.Dir, filepath.Base(root.Config))
	}
	postPath := filepath.Join(filepath.Dir(cfgPath), "post.yaml")

	out := g.stdout()
	_, _ = fmt.Fprintf(out, "Writing configuration to %s\n", cfgPath)
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		return foundation.WrapError(err, foundation.CategoryFileSystem, "failed to create output directory").Build()
	}
	if err := config.Init(cfgPath, i.Force); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Writing post definition to %s\n", postPath)
	if err := writePostDefinition(postPath, i.Force); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, "initialized successfully")
	return nil
}

func writePostDefinition(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return foundation.NewError(foundation.CategoryValidation, "post definition already exists (use --force to overwrite)").
			WithContext("path", path).
			Build()
	}
	data, err := post.Demo().Marshal()
	if err != nil {
		return foundation.WrapError(err, foundation.CategoryInternal, "failed to marshal post definition").Build()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return foundation.WrapError(err, foundation.CategoryFileSystem, "failed to write post definition").
			WithContext("path", path).
			Build()
	}
	return nil
}
