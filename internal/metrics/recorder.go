package metrics

import "time"

// ResultLabel enumerates render result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
)

// Recorder defines observability hooks for post composition and rendering.
type Recorder interface {
	IncFragment(kind string)
	ObserveComposeDuration(d time.Duration)
	ObserveDocumentBytes(n int)
	IncRenderResult(format string, result ResultLabel)
	IncStoreOpened(season string)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncFragment(string)                  {}
func (NoopRecorder) ObserveComposeDuration(time.Duration) {}
func (NoopRecorder) ObserveDocumentBytes(int)            {}
func (NoopRecorder) IncRenderResult(string, ResultLabel) {}
func (NoopRecorder) IncStoreOpened(string)               {}

// OrNoop returns r, or NoopRecorder when r is nil.
func OrNoop(r Recorder) Recorder {
	if r == nil {
		return NoopRecorder{}
	}
	return r
}
