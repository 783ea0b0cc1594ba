package types

// SuiteConfig is the root of a qc.yaml evaluation suite: the set of named
// variables to evaluate and the tests configured for each.
type SuiteConfig struct {
	// Workers bounds how many variables are evaluated concurrently.
	// Zero means no limit beyond one goroutine per variable.
	Workers   int              `yaml:"workers,omitempty" json:"workers,omitempty"`
	Variables []VariableConfig `yaml:"variables" json:"variables"`
}

// VariableConfig selects the tests to run against one named variable. A nil
// section disables that test for the variable. Location has no tunable
// parameters and is enabled by flag; the variable's series then carries the
// latitude samples and a paired longitude series must be supplied alongside.
type VariableConfig struct {
	Name         string              `yaml:"name" json:"name"`
	Location     bool                `yaml:"location,omitempty" json:"location,omitempty"`
	GrossRange   *GrossRangeParams   `yaml:"grossRange,omitempty" json:"grossRange,omitempty"`
	Spike        *SpikeParams        `yaml:"spike,omitempty" json:"spike,omitempty"`
	FlatLine     *FlatLineParams     `yaml:"flatLine,omitempty" json:"flatLine,omitempty"`
	RateOfChange *RateOfChangeParams `yaml:"rateOfChange,omitempty" json:"rateOfChange,omitempty"`
}

// Tests returns the names of the tests enabled for the variable.
func (v VariableConfig) Tests() []TestName {
	var names []TestName
	if v.Location {
		names = append(names, TestLocation)
	}
	if v.GrossRange != nil {
		names = append(names, TestGrossRange)
	}
	if v.Spike != nil {
		names = append(names, TestSpike)
	}
	if v.FlatLine != nil {
		names = append(names, TestFlatLine)
	}
	if v.RateOfChange != nil {
		names = append(names, TestRateOfChange)
	}
	return names
}
