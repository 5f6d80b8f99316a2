package solver

import (
	"errors"

	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/fitness"
	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/network"
)

// Sentinel errors shared by every Solver implementation.
var (
	// ErrNilNetwork indicates Solve was called with a nil network.
	ErrNilNetwork = errors.New("solver: network is nil")

	// ErrNilEvaluator indicates Solve was called with a nil evaluator.
	ErrNilEvaluator = errors.New("solver: evaluator is nil")
)

// Iteration is one point of a convergence history.
type Iteration struct {
	// Best is the best-so-far score after this iteration (monotone
	// non-increasing across the history).
	Best float64

	// Mean is the average score observed during this iteration: population
	// mean for the genetic engine, ant mean for the colony, episode score
	// for Q-learning.
	Mean float64
}

// Result is the outcome of one solver run.
type Result struct {
	// Best is the best candidate found; one path per demand.
	Best fitness.Candidate

	// Score is the full evaluation of Best.
	Score fitness.Score

	// History holds one entry per generation/iteration/episode, in order.
	History []Iteration
}

// Solver is the common capability of all optimization engines: consume a
// read-only network plus an evaluator, produce a best-found solution and its
// convergence trace. Implementations must be deterministic given their
// configured seed.
type Solver interface {
	// Name identifies the engine in experiment reports.
	Name() string

	// Solve runs the engine's full configured budget. It never mutates net.
	Solve(net *network.Network, ev *fitness.Evaluator) (Result, error)
}
