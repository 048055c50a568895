// Package metrics records translation pipeline outcomes as Prometheus
// metrics. In one-shot sync runs the recorder is optional; in watch mode the
// registry is served over HTTP.
package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder aggregates per-document translation outcomes.
type Recorder struct {
	registry            *prom.Registry
	documentsTranslated *prom.CounterVec
	documentsSkipped    prom.Counter
	translationFailures *prom.CounterVec
	structuralDrift     *prom.CounterVec
	translationDuration *prom.HistogramVec
	syncRuns            *prom.CounterVec
}

// NewRecorder constructs a Recorder and registers its metrics on reg. A nil
// reg gets a private registry, useful in tests.
func NewRecorder(reg *prom.Registry) *Recorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	r := &Recorder{registry: reg}
	r.documentsTranslated = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "mdtranslate",
		Name:      "documents_translated_total",
		Help:      "Documents successfully translated and written",
	}, []string{"service", "target_language"})
	r.documentsSkipped = prom.NewCounter(prom.CounterOpts{
		Namespace: "mdtranslate",
		Name:      "documents_skipped_total",
		Help:      "Documents skipped because the target file already exists",
	})
	r.translationFailures = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "mdtranslate",
		Name:      "translation_failures_total",
		Help:      "Documents left untranslated after a remote call failure",
	}, []string{"service"})
	r.structuralDrift = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "mdtranslate",
		Name:      "structural_drift_warnings_total",
		Help:      "Integrity check mismatches between source and translation",
	}, []string{"service"})
	r.translationDuration = prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: "mdtranslate",
		Name:      "translation_duration_seconds",
		Help:      "Duration of individual translation calls",
		Buckets:   prom.DefBuckets,
	}, []string{"service"})
	r.syncRuns = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "mdtranslate",
		Name:      "sync_runs_total",
		Help:      "Sync runs by outcome",
	}, []string{"outcome"})
	reg.MustRegister(r.documentsTranslated, r.documentsSkipped, r.translationFailures,
		r.structuralDrift, r.translationDuration, r.syncRuns)
	reg.MustRegister(collectors.NewGoCollector())
	return r
}

func (r *Recorder) DocumentTranslated(service, targetLang string) {
	if r == nil {
		return
	}
	r.documentsTranslated.WithLabelValues(service, targetLang).Inc()
}

func (r *Recorder) DocumentSkipped() {
	if r == nil {
		return
	}
	r.documentsSkipped.Inc()
}

func (r *Recorder) TranslationFailed(service string) {
	if r == nil {
		return
	}
	r.translationFailures.WithLabelValues(service).Inc()
}

func (r *Recorder) StructuralDrift(service string) {
	if r == nil {
		return
	}
	r.structuralDrift.WithLabelValues(service).Inc()
}

func (r *Recorder) ObserveTranslationDuration(service string, d time.Duration) {
	if r == nil {
		return
	}
	r.translationDuration.WithLabelValues(service).Observe(d.Seconds())
}

func (r *Recorder) SyncRun(outcome string) {
	if r == nil {
		return
	}
	r.syncRuns.WithLabelValues(outcome).Inc()
}

// Handler returns an http.Handler serving this recorder's registry.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
