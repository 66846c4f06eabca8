package post

import (
	"log/slog"
	"time"

	"git.home.luguber.info/inful/patterns/internal/blogpost"
	"git.home.luguber.info/inful/patterns/internal/logfields"
	"git.home.luguber.info/inful/patterns/internal/metrics"
)

type composeOptions struct {
	recorder metrics.Recorder
	logger   *slog.Logger
}

// Option configures Compose.
type Option func(*composeOptions)

// WithRecorder reports fragment counts and timings to r.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *composeOptions) { o.recorder = metrics.OrNoop(r) }
}

// WithLogger sets the logger used for per-fragment debug output.
func WithLogger(l *slog.Logger) Option {
	return func(o *composeOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Compose applies p onto b: the title first (when set), then every block in order.
// p must already be valid; blocks of unknown kind are skipped.
func Compose(b blogpost.Builder, p *Post, opts ...Option) {
	o := composeOptions{recorder: metrics.NoopRecorder{}, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	add := func(kind blogpost.FragmentKind, apply func()) {
		apply()
		o.recorder.IncFragment(string(kind))
		o.logger.Debug("Fragment added", logfields.Kind(string(kind)))
	}

	if p.Title != "" {
		add(blogpost.KindTitle, func() { b.AddTitle(p.Title) })
	}
	for _, blk := range p.Blocks {
		switch blk.Kind {
		case blogpost.KindTitle:
			add(blk.Kind, func() { b.AddTitle(blk.Text) })
		case blogpost.KindHeader:
			add(blk.Kind, func() { b.AddHeader(blk.Text) })
		case blogpost.KindParagraph:
			add(blk.Kind, func() { b.AddParagraph(blk.Text) })
		case blogpost.KindList:
			add(blk.Kind, func() { b.AddList(blk.Items) })
		}
	}

	elapsed := time.Since(start)
	o.recorder.ObserveComposeDuration(elapsed)
	o.logger.Debug("Post composed",
		logfields.Post(p.Title),
		logfields.DurationMS(float64(elapsed.Microseconds())/1000))
}

// Render composes p onto a fresh MarkdownBuilder and returns the built document.
func Render(p *Post, opts ...Option) string {
	b := blogpost.NewMarkdownBuilder()
	Compose(b, p, opts...)
	return b.Build()
}
