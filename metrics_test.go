package satismeter

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountsCalls(t *testing.T) {
	metrics, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	env := createTestEnv(t, Options{APIKey: "key"})
	env.satis.metrics = metrics

	assert.Error(t, env.analytics.Track("early", nil))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.calls.WithLabelValues("track", "error")))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	env.satis.Initialize(ctx)
	select {
	case <-env.satis.Ready():
	case <-time.After(time.Second):
		t.Fatal("integration never became ready")
	}
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.ready))

	require.NoError(t, env.analytics.Identify("id", nil))
	require.NoError(t, env.analytics.Page("Home", nil))
	require.NoError(t, env.analytics.Page("Pricing", nil))

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.calls.WithLabelValues("identify", "ok")))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.calls.WithLabelValues("page", "ok")))
}

func TestMetrics_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()

	first, err := NewMetrics(reg)
	require.NoError(t, err)
	second, err := NewMetrics(reg)
	require.NoError(t, err)

	first.observe("group", nil)
	second.observe("group", nil)

	assert.Equal(t, float64(2), testutil.ToFloat64(first.calls.WithLabelValues("group", "ok")))
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var metrics *Metrics
	assert.NotPanics(t, func() {
		metrics.observe("track", nil)
		metrics.setReady()
	})
}
