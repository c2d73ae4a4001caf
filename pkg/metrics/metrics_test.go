package metrics_test

import (
	"context"
	"errors"
	"quadviz/pkg/metrics"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Aggregation {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]metricdata.Aggregation{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m.Data
		}
	}

	return out
}

func TestInstruments(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	inst, err := metrics.NewInstruments(mp)
	require.NoError(t, err)

	ctx := context.Background()
	inst.Analysis(ctx, "DISTINCT")
	inst.Analysis(ctx, "DISTINCT")
	inst.Analysis(ctx, "COMPLEX")
	inst.Render(ctx, 20*time.Millisecond, nil)
	inst.Export(ctx, "pdf", errors.New("boom"))

	data := collect(t, reader)

	analyses, ok := data["quadviz.analyses"].(metricdata.Sum[int64])
	require.True(t, ok)
	counts := map[string]int64{}
	for _, dp := range analyses.DataPoints {
		v, _ := dp.Attributes.Value(attribute.Key("nature"))
		counts[v.AsString()] = dp.Value
	}
	require.Equal(t, map[string]int64{"DISTINCT": 2, "COMPLEX": 1}, counts)

	renders, ok := data["quadviz.graph.render.duration"].(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, renders.DataPoints, 1)
	require.Equal(t, uint64(1), renders.DataPoints[0].Count)

	exports, ok := data["quadviz.exports"].(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, exports.DataPoints, 1)
	outcome, _ := exports.DataPoints[0].Attributes.Value(attribute.Key("outcome"))
	require.Equal(t, metrics.OutcomeFailure, outcome.AsString())
}

func TestNewMeterProvider(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	inst, err := metrics.NewInstruments(mp)
	require.NoError(t, err)
	ctx := context.Background()
	inst.Analysis(ctx, "EQUAL")
	inst.Render(ctx, time.Millisecond, nil)
	inst.Export(ctx, "png", nil)

	families, err := reg.Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	require.Contains(t, names, "quadviz_analyses_total")
	require.Contains(t, names, "quadviz_exports_total")
	require.Contains(t, names, "quadviz_graph_render_duration_seconds")
	for _, name := range names {
		require.NotContains(t, name, ".")
	}
}

func TestObserveHTTP(t *testing.T) {
	before := testutil.CollectAndCount(metrics.HTTPRequestDuration)
	metrics.ObserveHTTP("POST", 418, time.Millisecond)
	require.Equal(t, before+1, testutil.CollectAndCount(metrics.HTTPRequestDuration))
}
