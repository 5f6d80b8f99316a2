package experiment

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/fitness"
	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/network"
	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/solver"
)

// Runner executes registered solver specs against one fixed network and
// evaluator.
type Runner struct {
	net     *network.Network
	ev      *fitness.Evaluator
	seed    int64
	repeats int
	log     zerolog.Logger
}

// RunnerOptions configures a Runner. Seed is the base from which every
// per-run seed is derived; Repeats is the number of independent runs per
// solver; Logger defaults to a no-op logger when left zero-valued.
type RunnerOptions struct {
	Seed    int64
	Repeats int
	Logger  *zerolog.Logger
}

// NewRunner validates opts and binds a Runner to the given model.
func NewRunner(net *network.Network, ev *fitness.Evaluator, opts RunnerOptions) (*Runner, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if ev == nil {
		return nil, ErrNilEvaluator
	}
	if opts.Repeats < 1 {
		return nil, ErrBadRepeats
	}

	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	return &Runner{net: net, ev: ev, seed: opts.Seed, repeats: opts.Repeats, log: log}, nil
}

// Run executes every spec × repeat and aggregates per-solver reports, in
// spec order. A solver construction or solve failure aborts the whole
// experiment: partial comparisons are misleading.
func (r *Runner) Run(specs []Spec) ([]Report, error) {
	if len(specs) == 0 {
		return nil, ErrNoSolvers
	}

	reports := make([]Report, 0, len(specs))

	var (
		si, rep int
		runSeed int64
		rec     RunRecord
	)
	for si = range specs {
		runs := make([]RunRecord, 0, r.repeats)
		for rep = 0; rep < r.repeats; rep++ {
			// One derived stream per (solver, repeat): stable under
			// reordering or disabling of other solvers in the config.
			runSeed = solver.DeriveSeed(r.seed, uint64(si)<<32|uint64(rep))

			var err error
			if rec, err = r.runOnce(specs[si], rep, runSeed); err != nil {
				return nil, err
			}
			runs = append(runs, rec)
		}
		reports = append(reports, summarize(specs[si].Name, runs))

		r.log.Info().
			Str("solver", specs[si].Name).
			Float64("best", reports[len(reports)-1].BestScore).
			Float64("mean", reports[len(reports)-1].MeanScore).
			Dur("mean_runtime", reports[len(reports)-1].MeanRuntime).
			Msg("solver finished")
	}

	return reports, nil
}

// runOnce builds a fresh engine with the derived seed and times its solve.
func (r *Runner) runOnce(spec Spec, repeat int, seed int64) (RunRecord, error) {
	eng, err := spec.Build(seed)
	if err != nil {
		return RunRecord{}, fmt.Errorf("experiment: build %s: %w", spec.Name, err)
	}

	r.log.Debug().
		Str("solver", spec.Name).
		Int("repeat", repeat).
		Int64("seed", seed).
		Msg("run starting")

	start := time.Now()
	res, err := eng.Solve(r.net, r.ev)
	if err != nil {
		return RunRecord{}, fmt.Errorf("experiment: run %s: %w", spec.Name, err)
	}

	return RunRecord{
		Solver:  spec.Name,
		Repeat:  repeat,
		Seed:    seed,
		Score:   res.Score,
		Runtime: time.Since(start),
		History: res.History,
		Best:    res.Best,
	}, nil
}
