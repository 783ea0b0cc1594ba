package types

import "time"

// Period is a maximal time interval produced by segmentation. Begin and End
// are both inclusive and carry the same time representation as the input
// series, precise to millisecond resolution.
type Period struct {
	Begin time.Time `yaml:"beginDatetime" json:"begin_datetime"`
	End   time.Time `yaml:"endDatetime" json:"end_datetime"`
}

// Expand returns the period with both boundaries pushed outward by buffer.
func (p Period) Expand(buffer time.Duration) Period {
	return Period{Begin: p.Begin.Add(-buffer), End: p.End.Add(buffer)}
}

// Contains reports whether ts falls within the period, inclusive.
func (p Period) Contains(ts time.Time) bool {
	return !ts.Before(p.Begin) && !ts.After(p.End)
}

// Direction labels the net vertical movement of a profile.
type Direction string

// Direction values for profile classification.
const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionAll  Direction = "all"
)

// Profile is a period representing one ascent or descent of a towed or
// lowered instrument.
type Profile struct {
	Period
	Direction Direction `yaml:"direction" json:"direction"`
}

// Stop is a period representing a stationary instrument dwell. CableLengthOut
// is the ceiling of the median cable length payed out over the dwell.
type Stop struct {
	Period
	CableLengthOut int `yaml:"cableLengthOut" json:"cable_length_out"`
}
