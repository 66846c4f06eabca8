// Package metrics provides observability hooks for composing posts and opening stores.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics can be enabled without nil checks at call sites:
//
//	rec := metrics.NewPrometheusRecorder(registry)
//	post.Compose(builder, p, post.WithRecorder(rec))
//
// HTTPHandler exposes a registry for scraping while the CLI runs in watch mode.
package metrics
