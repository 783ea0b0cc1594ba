package qc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidelab/oceanqc/internal/testutil"
	"github.com/tidelab/oceanqc/pkg/types"
)

func TestSpike_RampWithSingleSpike(t *testing.T) {
	// A unit ramp with one sample jumping ten above the line.
	s := testutil.NewSeries("pressure", time.Second,
		0, 1, 2, 3, 4, 15, 6, 7, 8, 9, 10)
	params := types.SpikeParams{
		SpikeHalfWindow: 1,
		StdHalfWindow:   1,
		LowMultiplier:   1,
		HighMultiplier:  2,
	}

	flags, err := Spike(s, params)
	require.NoError(t, err)

	// The spike sits 10 off its interpolated reference against a local
	// deviation of sqrt(68.667/3) ~ 4.784, past twice the deviation. Its
	// right neighbor's reference is dragged to 11 (deviation 5 against
	// sqrt(48.667/3) ~ 4.028), landing between the multipliers; the left
	// neighbor's inflated local deviation ~5.437 still covers its
	// deviation of 5.
	want := []types.Flag{
		types.FlagMissingData, // no reference at the boundary
		types.FlagPass,
		types.FlagPass,
		types.FlagPass,
		types.FlagPass,
		types.FlagFail,
		types.FlagHighInterest,
		types.FlagPass,
		types.FlagPass,
		types.FlagPass,
		types.FlagMissingData,
	}
	assert.Equal(t, want, flags)
}

func TestSpike_MissingValueAndReference(t *testing.T) {
	s := testutil.NewSeries("pressure", time.Second, 1, 2, testutil.NaN, 4, 5, 6)
	params := types.SpikeParams{
		SpikeHalfWindow: 1,
		StdHalfWindow:   2,
		LowMultiplier:   3,
		HighMultiplier:  5,
	}

	flags, err := Spike(s, params)
	require.NoError(t, err)

	// The gap is missing itself and poisons the references of both
	// neighbors.
	assert.Equal(t, types.FlagMissingData, flags[1])
	assert.Equal(t, types.FlagMissingData, flags[2])
	assert.Equal(t, types.FlagMissingData, flags[3])
	assert.Equal(t, types.FlagPass, flags[4])
}

func TestSpike_UndefinedDeviationIsNotEvaluated(t *testing.T) {
	s := testutil.NewSeries("pressure", time.Second, 1, 2, 3)
	params := types.SpikeParams{
		SpikeHalfWindow: 1,
		StdHalfWindow:   0, // single-sample windows never define a deviation
		LowMultiplier:   3,
		HighMultiplier:  5,
	}

	flags, err := Spike(s, params)
	require.NoError(t, err)

	want := []types.Flag{
		types.FlagMissingData,
		types.FlagNotEvaluated,
		types.FlagMissingData,
	}
	assert.Equal(t, want, flags)
}

func TestSpike_InvalidParams(t *testing.T) {
	s := testutil.NewSeries("pressure", time.Second, 1, 2, 3)

	_, err := Spike(s, types.SpikeParams{SpikeHalfWindow: 0, LowMultiplier: 3, HighMultiplier: 5})
	var ce *types.ConfigError
	assert.ErrorAs(t, err, &ce)
}

func TestSpike_EmptyInput(t *testing.T) {
	_, err := Spike(types.Series{}, types.DefaultSpikeParams())
	assert.ErrorIs(t, err, types.ErrEmptyInput)
}
