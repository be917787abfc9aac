package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecorderCountsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewRecorder(reg)
	require.NoError(t, err)

	rec.ObserveAnalysis("success")
	rec.ObserveAnalysis("success")
	rec.ObserveAnalysis("upstream_status")
	rec.ObserveTokens(TokenUsage{PromptTokens: 120, CompletionTokens: 30, TotalTokens: 150})
	rec.ObserveTokens(TokenUsage{})
	rec.ObserveUpstream("gpt-test", 300*time.Millisecond)
	rec.ObserveHTTP("/api/analyze", "POST", 200, 10*time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(rec.analyses.WithLabelValues("success")))
	require.Equal(t, 1.0, testutil.ToFloat64(rec.analyses.WithLabelValues("upstream_status")))
	require.Equal(t, 120.0, testutil.ToFloat64(rec.tokens.WithLabelValues("prompt")))
	require.Equal(t, 30.0, testutil.ToFloat64(rec.tokens.WithLabelValues("completion")))
	require.Equal(t, 1.0, testutil.ToFloat64(rec.httpRequests.WithLabelValues("/api/analyze", "POST", "200")))
}

func TestRecorderRejectsDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewRecorder(reg)
	require.NoError(t, err)

	_, err = NewRecorder(reg)
	require.Error(t, err)
}

func TestNilRecorderIsNoop(t *testing.T) {
	var rec *Recorder
	require.NotPanics(t, func() {
		rec.ObserveAnalysis("success")
		rec.ObserveUpstream("m", time.Second)
		rec.ObserveTokens(TokenUsage{TotalTokens: 1})
		rec.ObserveHTTP("", "GET", 404, time.Millisecond)
	})
}
