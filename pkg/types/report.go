package types

import "time"

// Report is the outcome of one evaluation session across a set of variables.
type Report struct {
	// ID is a ULID assigned when the session starts.
	ID         string           `json:"id"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
	Variables  []VariableResult `json:"variables"`
}

// VariableResult carries the flag series produced for one variable, keyed by
// test. Timestamps are the variable's sorted sample times; every flag slice
// aligns 1:1 with them.
type VariableResult struct {
	Name       string              `json:"name"`
	Timestamps []time.Time         `json:"timestamps"`
	Flags      map[TestName][]Flag `json:"flags"`
}

// DropFlags returns a copy of the result without the flag series of the named
// tests, for callers that consume some flags and forward the rest.
func (r VariableResult) DropFlags(tests ...TestName) VariableResult {
	out := VariableResult{
		Name:       r.Name,
		Timestamps: r.Timestamps,
		Flags:      make(map[TestName][]Flag, len(r.Flags)),
	}
	for name, flags := range r.Flags {
		out.Flags[name] = flags
	}
	for _, t := range tests {
		delete(out.Flags, t)
	}
	return out
}
