package fitness

import "errors"

// Sentinel errors for evaluator construction.
var (
	// ErrNilNetwork indicates a nil *network.Network was passed to NewEvaluator.
	ErrNilNetwork = errors.New("fitness: network is nil")

	// ErrBadPenalty indicates a non-positive penalty weight; penalties must be
	// strictly positive or violations would be free (or rewarded).
	ErrBadPenalty = errors.New("fitness: penalty weights must be positive")
)

// Default penalty weights. UnmetPenalty dominates OverloadPenalty, which in
// turn dominates any plausible path cost, so the evaluator always prefers
// "routed but congested" over "not routed at all", and "cheap and feasible"
// over both.
const (
	DefaultOverloadPenalty = 1e3
	DefaultUnmetPenalty    = 1e4
)

// Candidate maps each demand (by position) to a path: an ordered node-ID
// sequence from the demand's source to its destination. A nil or malformed
// path marks the demand unsatisfied.
type Candidate struct {
	Paths [][]string
}

// Clone returns a deep copy of the candidate. Solvers use it to keep elite
// individuals and best-so-far snapshots immune to later in-place mutation.
func (c Candidate) Clone() Candidate {
	out := Candidate{Paths: make([][]string, len(c.Paths))}

	var i int
	for i = range c.Paths {
		if c.Paths[i] == nil {
			continue
		}
		out.Paths[i] = make([]string, len(c.Paths[i]))
		copy(out.Paths[i], c.Paths[i])
	}

	return out
}

// Score is the evaluation of one candidate. Total is the single comparable
// figure (lower is better); the remaining fields break it down for reporting.
type Score struct {
	Total         float64 // BaseCost + penalties
	BaseCost      float64 // Σ edge cost × aggregated flow
	OverloadUnits float64 // Σ max(0, load − capacity) over all edges
	Unmet         int     // demands without a valid path
}

// Options configures the evaluator's penalty weights.
type Options struct {
	OverloadPenalty float64 // per unit of capacity overage; > 0
	UnmetPenalty    float64 // per unsatisfied demand; > 0
}

// DefaultOptions returns the standard penalty configuration.
func DefaultOptions() Options {
	return Options{
		OverloadPenalty: DefaultOverloadPenalty,
		UnmetPenalty:    DefaultUnmetPenalty,
	}
}
