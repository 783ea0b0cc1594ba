// Package metrics exposes evaluation counters via OpenTelemetry.
package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/tidelab/oceanqc/pkg/types"
)

// Recorder counts test evaluations and per-flag sample classifications.
// A nil Recorder is valid and records nothing.
type Recorder struct {
	evaluations metric.Int64Counter
	samples     metric.Int64Counter
}

// NewRecorder creates the evaluation instruments on the given meter.
func NewRecorder(meter metric.Meter) (*Recorder, error) {
	evaluations, err := meter.Int64Counter("oceanqc.evaluations.total",
		metric.WithDescription("Completed test evaluations."))
	if err != nil {
		return nil, fmt.Errorf("creating evaluations counter: %w", err)
	}
	samples, err := meter.Int64Counter("oceanqc.samples.flagged",
		metric.WithDescription("Samples classified, partitioned by flag."))
	if err != nil {
		return nil, fmt.Errorf("creating samples counter: %w", err)
	}
	return &Recorder{evaluations: evaluations, samples: samples}, nil
}

// RecordTest counts one completed evaluation and its flag distribution.
func (r *Recorder) RecordTest(ctx context.Context, variable string, test types.TestName, flags []types.Flag) {
	if r == nil {
		return
	}

	base := []attribute.KeyValue{
		attribute.String("variable", variable),
		attribute.String("test", string(test)),
	}
	r.evaluations.Add(ctx, 1, metric.WithAttributes(base...))

	counts := make(map[types.Flag]int64)
	for _, f := range flags {
		counts[f]++
	}
	for f, n := range counts {
		attrs := append([]attribute.KeyValue{attribute.String("flag", f.String())}, base...)
		r.samples.Add(ctx, n, metric.WithAttributes(attrs...))
	}
}
