package experiment

import (
	"errors"
	"time"

	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/fitness"
	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/solver"
)

// Sentinel errors for runner construction and configuration.
var (
	// ErrNilNetwork indicates NewRunner received a nil network.
	ErrNilNetwork = errors.New("experiment: network is nil")

	// ErrNilEvaluator indicates NewRunner received a nil evaluator.
	ErrNilEvaluator = errors.New("experiment: evaluator is nil")

	// ErrBadRepeats indicates Repeats < 1.
	ErrBadRepeats = errors.New("experiment: repeats must be at least 1")

	// ErrNoSolvers indicates Run was called with an empty spec list.
	ErrNoSolvers = errors.New("experiment: no solvers registered")

	// ErrUnknownSolver indicates a config entry naming an engine this module
	// does not provide.
	ErrUnknownSolver = errors.New("experiment: unknown solver name")
)

// Spec binds a solver name to a seed-parameterized constructor. The runner
// derives one seed per (spec, repeat) and builds a fresh engine for each run,
// so repeats are statistically independent yet fully reproducible.
type Spec struct {
	Name  string
	Build func(seed int64) (solver.Solver, error)
}

// RunRecord is the outcome of a single (solver, repeat) execution.
type RunRecord struct {
	Solver  string
	Repeat  int
	Seed    int64
	Score   fitness.Score
	Runtime time.Duration
	History []solver.Iteration
	Best    fitness.Candidate
}

// Report aggregates all repeats of one solver.
type Report struct {
	Solver      string
	Runs        []RunRecord
	BestScore   float64 // minimum Total across repeats
	WorstScore  float64 // maximum Total across repeats
	MeanScore   float64
	StdDevScore float64 // 0 for a single repeat
	MeanRuntime time.Duration
	BestRun     int // index into Runs of the best repeat
}
