package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"git.home.luguber.info/inful/patterns/internal/config"
	foundation "git.home.luguber.info/inful/patterns/internal/foundation/errors"
	"git.home.luguber.info/inful/patterns/internal/frontmatter"
	"git.home.luguber.info/inful/patterns/internal/logfields"
	"git.home.luguber.info/inful/patterns/internal/markdown"
	"git.home.luguber.info/inful/patterns/internal/metrics"
	"git.home.luguber.info/inful/patterns/internal/post"
	"git.home.luguber.info/inful/patterns/internal/watch"
	prom "github.com/prometheus/client_golang/prometheus"
)

// ComposeCmd implements the 'compose' command.
type ComposeCmd struct {
	File        string `short:"f" required:"" type:"path" help:"Post definition (YAML)"`
	Format      string `help:"Output format (markdown or html); overrides configuration"`
	Frontmatter bool   `help:"Prefix markdown output with stamped YAML frontmatter"`
	Output      string `short:"o" type:"path" help:"Write to this file instead of stdout"`
	Watch       bool   `short:"w" help:"Rebuild whenever the post definition changes"`
	MetricsAddr string `name:"metrics-addr" help:"Serve Prometheus metrics on this address while watching"`
}

// composer renders one post definition according to resolved settings.
type composer struct {
	file        string
	format      config.Format
	frontmatter bool
	output      string
	recorder    metrics.Recorder
	logger      *slog.Logger
	g           *Global
}

func (c *ComposeCmd) Run(g *Global, root *CLI) error {
	cfg, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return err
	}
	c.applyConfig(cfg)
	format := config.NormalizeFormat(c.Format)
	if format == "" {
		return foundation.ValidationError("unsupported output format").
			WithContext("format", c.Format).
			Build()
	}

	var registry *prom.Registry
	recorder := g.recorder()
	if c.MetricsAddr != "" {
		registry = prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(registry)
	}

	cmp := &composer{
		file:        c.File,
		format:      format,
		frontmatter: c.Frontmatter,
		output:      c.Output,
		recorder:    recorder,
		logger:      g.logger(),
		g:           g,
	}

	if !c.Watch {
		return cmp.compose()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cmp.compose(); err != nil {
		// Keep watching; the definition may be fixed by the next save.
		cmp.logger.Error("Initial compose failed", logfields.Error(err))
	}
	if registry != nil {
		stop := serveMetrics(ctx, c.MetricsAddr, registry, cmp.logger)
		defer stop()
	}

	w, err := watch.New(c.File, cfg.Watch.Debounce, func(context.Context) error { return cmp.compose() })
	if err != nil {
		return foundation.WrapError(err, foundation.CategoryRuntime, "failed to start watcher").Build()
	}
	if err := w.Run(ctx); err != nil {
		return foundation.WrapError(err, foundation.CategoryRuntime, "watcher stopped").Build()
	}
	return nil
}

// applyConfig fills settings the flags left unset.
func (c *ComposeCmd) applyConfig(cfg *config.Config) {
	if c.Format == "" {
		c.Format = string(cfg.Output.Format)
	}
	if !c.Frontmatter {
		c.Frontmatter = cfg.Output.Frontmatter
	}
	if c.Output == "" {
		c.Output = cfg.Output.Path
	}
	if c.MetricsAddr == "" && cfg.Metrics.Enabled {
		c.MetricsAddr = cfg.Metrics.Address
	}
}

func (c *composer) compose() error {
	start := time.Now()
	p, err := post.Load(c.file)
	if err != nil {
		c.recorder.IncRenderResult(string(c.format), metrics.ResultFailed)
		return err
	}

	doc := []byte(post.Render(p, post.WithRecorder(c.recorder), post.WithLogger(c.logger)))
	c.recorder.ObserveDocumentBytes(len(doc))

	out, err := c.render(p, doc)
	if err != nil {
		c.recorder.IncRenderResult(string(c.format), metrics.ResultFailed)
		return err
	}
	if err := c.write(out); err != nil {
		c.recorder.IncRenderResult(string(c.format), metrics.ResultFailed)
		return err
	}
	c.recorder.IncRenderResult(string(c.format), metrics.ResultSuccess)

	stats := markdown.Summarize(doc)
	c.logger.Info("Post composed",
		logfields.Post(p.Title),
		logfields.Format(string(c.format)),
		logfields.Bytes(len(out)),
		slog.Int("headings", stats.Headings),
		slog.Int("list_items", stats.ListItems),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return nil
}

func (c *composer) render(p *post.Post, doc []byte) ([]byte, error) {
	switch c.format {
	case config.FormatHTML:
		if c.frontmatter {
			c.logger.Warn("Frontmatter is only written for markdown output", logfields.Format(string(c.format)))
		}
		out, err := markdown.RenderHTML(doc)
		if err != nil {
			return nil, foundation.WrapError(err, foundation.CategoryRender, "failed to render html").Build()
		}
		return out, nil
	default:
		if !c.frontmatter {
			return doc, nil
		}
		out, err := frontmatter.Attach(frontmatterFields(p), doc)
		if err != nil {
			return nil, foundation.WrapError(err, foundation.CategoryRender, "failed to attach frontmatter").Build()
		}
		return out, nil
	}
}

func (c *composer) write(out []byte) error {
	if c.output == "" {
		_, err := c.g.stdout().Write(out)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.output), 0o755); err != nil {
		return foundation.WrapError(err, foundation.CategoryFileSystem, "failed to create output directory").
			WithContext("path", c.output).
			Build()
	}
	if err := os.WriteFile(c.output, out, 0o644); err != nil {
		return foundation.WrapError(err, foundation.CategoryFileSystem, "failed to write output").
			WithContext("path", c.output).
			Build()
	}
	c.logger.Debug("Output written", logfields.Path(c.output))
	return nil
}

func frontmatterFields(p *post.Post) map[string]any {
	fields := make(map[string]any, len(p.Meta)+1)
	for k, v := range p.Meta {
		fields[k] = v
	}
	if p.Title != "" {
		fields["title"] = p.Title
	}
	return fields
}

// serveMetrics exposes registry on addr until ctx ends or the returned stop func is called.
func serveMetrics(ctx context.Context, addr string, registry *prom.Registry, logger *slog.Logger) func() {
	ctx, cancel := context.WithCancel(ctx)
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.HTTPHandler(registry))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	done := make(chan struct{})
	go func() {
		defer close(done)
		logger.Info("Serving metrics", logfields.Address(addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server failed", logfields.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	return func() {
		cancel()
		<-done
	}
}

