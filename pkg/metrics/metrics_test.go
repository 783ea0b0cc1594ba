package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/tidelab/oceanqc/pkg/types"
)

func newTestRecorder(t *testing.T) (*Recorder, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	rec, err := NewRecorder(provider.Meter("oceanqc_test"))
	require.NoError(t, err)
	return rec, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Sum[int64] {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	sums := make(map[string]metricdata.Sum[int64])
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.Truef(t, ok, "metric %s is not an int64 sum", m.Name)
			sums[m.Name] = sum
		}
	}
	return sums
}

func flagCount(sum metricdata.Sum[int64], flag string) int64 {
	for _, dp := range sum.DataPoints {
		if v, ok := dp.Attributes.Value(attribute.Key("flag")); ok && v.AsString() == flag {
			return dp.Value
		}
	}
	return -1
}

func TestRecorder_RecordTest(t *testing.T) {
	rec, reader := newTestRecorder(t)

	flags := []types.Flag{
		types.FlagPass, types.FlagPass, types.FlagPass,
		types.FlagFail,
		types.FlagMissingData,
	}
	rec.RecordTest(context.Background(), "depth", types.TestSpike, flags)
	rec.RecordTest(context.Background(), "depth", types.TestSpike, flags)

	sums := collect(t, reader)

	evaluations := sums["oceanqc.evaluations.total"]
	require.Len(t, evaluations.DataPoints, 1)
	assert.Equal(t, int64(2), evaluations.DataPoints[0].Value)

	samples := sums["oceanqc.samples.flagged"]
	assert.Equal(t, int64(6), flagCount(samples, "PASS"))
	assert.Equal(t, int64(2), flagCount(samples, "FAIL"))
	assert.Equal(t, int64(2), flagCount(samples, "MISSING_DATA"))
	assert.Equal(t, int64(-1), flagCount(samples, "SUSPECT"))

	for _, dp := range samples.DataPoints {
		v, ok := dp.Attributes.Value(attribute.Key("variable"))
		require.True(t, ok)
		assert.Equal(t, "depth", v.AsString())
		tn, ok := dp.Attributes.Value(attribute.Key("test"))
		require.True(t, ok)
		assert.Equal(t, "spike", tn.AsString())
	}
}

func TestRecorder_SeparatesVariables(t *testing.T) {
	rec, reader := newTestRecorder(t)

	rec.RecordTest(context.Background(), "depth", types.TestGrossRange, []types.Flag{types.FlagPass})
	rec.RecordTest(context.Background(), "salinity", types.TestGrossRange, []types.Flag{types.FlagPass})

	sums := collect(t, reader)
	assert.Len(t, sums["oceanqc.evaluations.total"].DataPoints, 2)
}

func TestRecorder_NilIsNoOp(t *testing.T) {
	var rec *Recorder

	assert.NotPanics(t, func() {
		rec.RecordTest(context.Background(), "depth", types.TestSpike, []types.Flag{types.FlagPass})
	})
}
