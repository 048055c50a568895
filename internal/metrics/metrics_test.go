package metrics

import (
	"net/http/httptest"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecorder_CountsOutcomes(t *testing.T) {
	r := NewRecorder(prom.NewRegistry())

	r.DocumentTranslated("saia", "de")
	r.DocumentTranslated("saia", "de")
	r.DocumentSkipped()
	r.TranslationFailed("saia")
	r.StructuralDrift("saia")
	r.ObserveTranslationDuration("saia", 2*time.Second)
	r.SyncRun("success")

	require.Equal(t, float64(2), testutil.ToFloat64(r.documentsTranslated.WithLabelValues("saia", "de")))
	require.Equal(t, float64(1), testutil.ToFloat64(r.documentsSkipped))
	require.Equal(t, float64(1), testutil.ToFloat64(r.translationFailures.WithLabelValues("saia")))
	require.Equal(t, float64(1), testutil.ToFloat64(r.structuralDrift.WithLabelValues("saia")))
	require.Equal(t, float64(1), testutil.ToFloat64(r.syncRuns.WithLabelValues("success")))
}

func TestRecorder_NilReceiverIsSafe(t *testing.T) {
	var r *Recorder
	r.DocumentTranslated("saia", "de")
	r.DocumentSkipped()
	r.TranslationFailed("saia")
	r.StructuralDrift("saia")
	r.ObserveTranslationDuration("saia", time.Second)
	r.SyncRun("failed")
}

func TestRecorder_HandlerServesMetrics(t *testing.T) {
	r := NewRecorder(prom.NewRegistry())
	r.DocumentTranslated("deepl", "fr")

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	require.Contains(t, rec.Body.String(), "mdtranslate_documents_translated_total")
}
