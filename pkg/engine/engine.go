// Package engine coordinates quality-control evaluation across variables.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/tidelab/oceanqc/pkg/metrics"
	"github.com/tidelab/oceanqc/pkg/qc"
	"github.com/tidelab/oceanqc/pkg/types"
)

// Variable pairs one series with the tests configured for it. When the
// location test is enabled, Series holds the latitude samples and Longitude
// the aligned longitude samples.
type Variable struct {
	Config    types.VariableConfig
	Series    types.Series
	Longitude types.Series
}

// Engine fans evaluation out across variables. Distinct variables share no
// state, so each is an independent task; the pool is bounded by the
// configured worker count.
type Engine struct {
	logger   *slog.Logger
	recorder *metrics.Recorder
	workers  int
}

// New creates an Engine. workers bounds concurrent variable evaluations;
// zero or negative means one goroutine per variable, unbounded.
func New(workers int) *Engine {
	return &Engine{logger: slog.Default(), workers: workers}
}

// SetLogger replaces the engine's logger.
func (e *Engine) SetLogger(l *slog.Logger) {
	if l != nil {
		e.logger = l
	}
}

// SetRecorder installs a metrics recorder. A nil recorder disables metrics.
func (e *Engine) SetRecorder(r *metrics.Recorder) {
	e.recorder = r
}

// Evaluate runs every configured test for every variable and assembles a
// ULID-stamped report. The first configuration or input error cancels the
// remaining work and is returned as-is; missing data never fails a run, it
// surfaces as MISSING_DATA flags.
func (e *Engine) Evaluate(ctx context.Context, variables []Variable) (*types.Report, error) {
	if len(variables) == 0 {
		return nil, fmt.Errorf("no variables to evaluate")
	}

	report := &types.Report{
		ID:        ulid.Make().String(),
		StartedAt: time.Now(),
	}
	e.logger.Info("evaluation started",
		"report_id", report.ID, "variables", len(variables))

	results := make([]types.VariableResult, len(variables))
	g, ctx := errgroup.WithContext(ctx)
	if e.workers > 0 {
		g.SetLimit(e.workers)
	}
	for i, v := range variables {
		i, v := i, v
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := e.evaluateVariable(ctx, v)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Variables = results
	report.FinishedAt = time.Now()
	e.logger.Info("evaluation finished",
		"report_id", report.ID,
		"elapsed", report.FinishedAt.Sub(report.StartedAt))
	return report, nil
}

func (e *Engine) evaluateVariable(ctx context.Context, v Variable) (types.VariableResult, error) {
	name := v.Config.Name
	if name == "" {
		name = v.Series.Name
	}

	sorted := v.Series.Sorted()
	res := types.VariableResult{
		Name:       name,
		Timestamps: sorted.Timestamps,
		Flags:      make(map[types.TestName][]types.Flag),
	}

	run := func(test types.TestName, fn func() ([]types.Flag, error)) error {
		flags, err := fn()
		if err != nil {
			return fmt.Errorf("evaluating %s on %q: %w", test, name, err)
		}
		res.Flags[test] = flags
		e.recorder.RecordTest(ctx, name, test, flags)
		e.logger.Debug("test evaluated", "variable", name, "test", test, "samples", len(flags))
		return nil
	}

	if v.Config.Location {
		if err := run(types.TestLocation, func() ([]types.Flag, error) {
			return qc.Location(v.Series, v.Longitude)
		}); err != nil {
			return types.VariableResult{}, err
		}
	}
	if p := v.Config.GrossRange; p != nil {
		if err := run(types.TestGrossRange, func() ([]types.Flag, error) {
			return qc.GrossRange(v.Series, *p)
		}); err != nil {
			return types.VariableResult{}, err
		}
	}
	if p := v.Config.Spike; p != nil {
		if err := run(types.TestSpike, func() ([]types.Flag, error) {
			return qc.Spike(v.Series, *p)
		}); err != nil {
			return types.VariableResult{}, err
		}
	}
	if p := v.Config.FlatLine; p != nil {
		if err := run(types.TestFlatLine, func() ([]types.Flag, error) {
			return qc.FlatLine(v.Series, *p)
		}); err != nil {
			return types.VariableResult{}, err
		}
	}
	if p := v.Config.RateOfChange; p != nil {
		if err := run(types.TestRateOfChange, func() ([]types.Flag, error) {
			return qc.RateOfChange(v.Series, *p)
		}); err != nil {
			return types.VariableResult{}, err
		}
	}
	return res, nil
}
