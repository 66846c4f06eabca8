package commands

import (
	"io"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/patterns/internal/metrics"
	"github.com/alecthomas/kong"
)

// Global carries process-wide dependencies into every command.
type Global struct {
	Logger *slog.Logger
	Stdout io.Writer
	// Recorder receives command metrics. Nil records nothing.
	Recorder metrics.Recorder
}

func (g *Global) logger() *slog.Logger {
	if g == nil || g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

func (g *Global) recorder() metrics.Recorder {
	if g == nil {
		return metrics.NoopRecorder{}
	}
	return metrics.OrNoop(g.Recorder)
}

func (g *Global) stdout() io.Writer {
	if g == nil || g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (optional)" default:"patterns.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Builder BuilderCmd `cmd:"" default:"1" help:"Build and print the sample blog post"`
	Compose ComposeCmd `cmd:"" help:"Compose a blog post from a YAML definition"`
	Store   StoreCmd   `cmd:"" help:"Open a store with a family of seasonal fixtures"`
	Init    InitCmd    `cmd:"" help:"Write an example configuration and post definition"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}
