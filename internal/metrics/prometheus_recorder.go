package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "patterns"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once            sync.Once
	fragments       *prom.CounterVec
	composeDuration prom.Histogram
	documentBytes   prom.Histogram
	renderResults   *prom.CounterVec
	storesOpened    *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.fragments = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "fragments_added_total",
			Help:      "Fragments appended to a builder, by kind",
		}, []string{"kind"})
		pr.composeDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "compose_duration_seconds",
			Help:      "Time spent replaying a post definition onto a builder",
			Buckets:   prom.DefBuckets,
		})
		pr.documentBytes = prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "document_bytes",
			Help:      "Size of built documents",
			Buckets:   prom.ExponentialBuckets(64, 4, 8),
		})
		pr.renderResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "render_results_total",
			Help:      "Render results by output format and outcome",
		}, []string{"format", "result"})
		pr.storesOpened = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "stores_opened_total",
			Help:      "Store clients opened, by fixture family",
		}, []string{"season"})
		reg.MustRegister(pr.fragments, pr.composeDuration, pr.documentBytes, pr.renderResults, pr.storesOpened)
	})
	return pr
}

func (p *PrometheusRecorder) IncFragment(kind string) {
	if p == nil || p.fragments == nil {
		return
	}
	p.fragments.WithLabelValues(kind).Inc()
}

func (p *PrometheusRecorder) ObserveComposeDuration(d time.Duration) {
	if p == nil || p.composeDuration == nil {
		return
	}
	p.composeDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveDocumentBytes(n int) {
	if p == nil || p.documentBytes == nil {
		return
	}
	p.documentBytes.Observe(float64(n))
}

func (p *PrometheusRecorder) IncRenderResult(format string, result ResultLabel) {
	if p == nil || p.renderResults == nil {
		return
	}
	p.renderResults.WithLabelValues(format, string(result)).Inc()
}

func (p *PrometheusRecorder) IncStoreOpened(season string) {
	if p == nil || p.storesOpened == nil {
		return
	}
	p.storesOpened.WithLabelValues(season).Inc()
}
