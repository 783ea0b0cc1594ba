package qc

import (
	"math"

	"github.com/tidelab/oceanqc/pkg/types"
)

// Location verifies that paired latitude/longitude samples are within the
// confines of reality: -90 to 90 for latitude, -180 to 180 for longitude,
// exclusive. The two series must cover the same timestamps in the same
// order. This test does not produce a SUSPECT tier.
func Location(latitude, longitude types.Series) ([]types.Flag, error) {
	if err := latitude.AlignedWith(longitude); err != nil {
		return nil, err
	}
	if latitude.Len() == 0 {
		return nil, types.ErrEmptyInput
	}

	lat := latitude.Sorted()
	lon := longitude.Sorted()

	flags := make([]types.Flag, lat.Len())
	for i := range flags {
		la, lo := lat.Values[i], lon.Values[i]
		switch {
		case math.IsNaN(la) || math.IsNaN(lo):
			flags[i] = types.FlagMissingData
		case math.Abs(la) >= 90 || math.Abs(lo) >= 180:
			// Infinite magnitudes land here too, so nothing is left
			// NOT_EVALUATED in practice.
			flags[i] = types.FlagFail
		default:
			flags[i] = types.FlagPass
		}
	}
	return flags, nil
}
