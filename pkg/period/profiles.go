package period

import (
	"time"

	"github.com/tidelab/oceanqc/pkg/qc"
	"github.com/tidelab/oceanqc/pkg/types"
)

// Profiles extracts the ascent/descent intervals of a lowered instrument
// from its cable-length series. The flat-line test marks resting samples;
// the PASS samples (instrument in motion) are segmented with the configured
// minimum gap, and each segment is labeled by its net movement: a net
// decrease over the interval is "down", anything else is "up". Boundaries
// are then expanded outward by the configured buffer to recover edges
// trimmed by the flat-line window effect.
//
// A series that never moves yields no profiles and no error.
func Profiles(cableLength types.Series, params types.ProfileParams) ([]types.Profile, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	flags, err := qc.FlatLine(cableLength, params.FlatLine)
	if err != nil {
		return nil, err
	}
	s := cableLength.Sorted()

	var moving []time.Time
	for i, f := range flags {
		if f == types.FlagPass {
			moving = append(moving, s.Timestamps[i])
		}
	}
	if len(moving) == 0 {
		return nil, nil
	}

	periods, err := Split(moving, time.Duration(params.MinGapSeconds)*time.Second)
	if err != nil {
		return nil, err
	}

	buffer := time.Duration(params.BufferSeconds) * time.Second
	profiles := make([]types.Profile, 0, len(periods))
	for _, p := range periods {
		w := s.Window(p.Begin, p.End)
		dir := types.DirectionUp
		if w.Len() > 0 && w.Values[0]-w.Values[w.Len()-1] > 0 {
			dir = types.DirectionDown
		}
		if params.Direction != types.DirectionAll && params.Direction != dir {
			continue
		}
		profiles = append(profiles, types.Profile{
			Period:    p.Expand(buffer),
			Direction: dir,
		})
	}
	return profiles, nil
}
