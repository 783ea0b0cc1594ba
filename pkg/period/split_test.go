package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidelab/oceanqc/internal/testutil"
	"github.com/tidelab/oceanqc/pkg/types"
)

func TestSplit_NoGapIsOnePeriod(t *testing.T) {
	got, err := Split(testutil.Times(0, 10, 20, 30), time.Minute)
	require.NoError(t, err)

	want := []types.Period{{Begin: testutil.Base, End: testutil.Base.Add(30 * time.Second)}}
	assert.Equal(t, want, got)
}

func TestSplit_GapStartsNewPeriod(t *testing.T) {
	got, err := Split(testutil.Times(0, 10, 20, 200, 210, 220), time.Minute)
	require.NoError(t, err)

	want := []types.Period{
		{Begin: testutil.Base, End: testutil.Base.Add(20 * time.Second)},
		{Begin: testutil.Base.Add(200 * time.Second), End: testutil.Base.Add(220 * time.Second)},
	}
	assert.Equal(t, want, got)
}

func TestSplit_EndBacksOffBeforeNextBegin(t *testing.T) {
	got, err := Split(testutil.Times(0, 60, 100), 30*time.Second)
	require.NoError(t, err)

	// Every consecutive difference exceeds the gap, so each timestamp is
	// its own period; the back-off pins each end to the period's only
	// sample.
	want := []types.Period{
		{Begin: testutil.Base, End: testutil.Base},
		{Begin: testutil.Base.Add(60 * time.Second), End: testutil.Base.Add(60 * time.Second)},
		{Begin: testutil.Base.Add(100 * time.Second), End: testutil.Base.Add(100 * time.Second)},
	}
	assert.Equal(t, want, got)
}

func TestSplit_DropsPeriodsEmptiedByBackOff(t *testing.T) {
	got, err := Split(testutil.Times(0, 20, 40), 10*time.Second)
	require.NoError(t, err)

	// The next begin is closer than the back-off, leaving the first two
	// periods without a usable end.
	want := []types.Period{
		{Begin: testutil.Base.Add(40 * time.Second), End: testutil.Base.Add(40 * time.Second)},
	}
	assert.Equal(t, want, got)
}

func TestSplit_SortsAndDeduplicates(t *testing.T) {
	got, err := Split(testutil.Times(20, 0, 0, 10), time.Minute)
	require.NoError(t, err)

	want := []types.Period{{Begin: testutil.Base, End: testutil.Base.Add(20 * time.Second)}}
	assert.Equal(t, want, got)
}

func TestSplit_SingleTimestamp(t *testing.T) {
	got, err := Split(testutil.Times(0), time.Minute)
	require.NoError(t, err)

	assert.Equal(t, []types.Period{{Begin: testutil.Base, End: testutil.Base}}, got)
}

func TestSplit_EmptyInput(t *testing.T) {
	_, err := Split(nil, time.Minute)
	assert.ErrorIs(t, err, types.ErrEmptyInput)
}
