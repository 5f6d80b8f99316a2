package antcolony

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/fitness"
	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/network"
	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/solver"
)

// Solver is the ant colony engine. Construct with New; zero value is not
// usable.
type Solver struct {
	opts Options
}

// New validates opts and returns a ready engine.
func New(opts Options) (*Solver, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Solver{opts: opts}, nil
}

// Name implements solver.Solver.
func (s *Solver) Name() string { return "antcolony" }

// antResult is one ant's constructed candidate and its evaluation, collected
// into a pre-indexed slot so parallel and sequential runs order identically.
type antResult struct {
	cand  fitness.Candidate
	score fitness.Score
}

// Solve implements solver.Solver. Per iteration: all ants construct
// independently against a frozen pheromone view, the iteration-best deposits,
// everything evaporates, and the best-so-far score is recorded.
func (s *Solver) Solve(net *network.Network, ev *fitness.Evaluator) (solver.Result, error) {
	if net == nil {
		return solver.Result{}, solver.ErrNilNetwork
	}
	if ev == nil {
		return solver.Result{}, solver.ErrNilEvaluator
	}

	var (
		rng     = solver.RNG(s.opts.Seed)
		maxHops = s.opts.MaxHops
	)
	if maxHops == 0 {
		maxHops = net.DefaultMaxHops()
	}

	// Dense pheromone state, one scalar per edge.
	pheromone := make([]float64, net.EdgeCount())
	var i int
	for i = range pheromone {
		pheromone[i] = s.opts.InitialPheromone
	}

	// Optional construction pool. The pool is reused across iterations; the
	// per-iteration barrier below guarantees pheromone updates never overlap
	// with construction.
	var pool *ants.Pool
	if s.opts.Workers > 0 {
		var err error
		if pool, err = ants.NewPool(s.opts.Workers); err != nil {
			return solver.Result{}, fmt.Errorf("antcolony: worker pool: %w", err)
		}
		defer pool.Release()
	}

	var (
		history  = make([]solver.Iteration, 0, s.opts.Iterations)
		results  = make([]antResult, s.opts.Ants)
		antRNGs  = make([]*rand.Rand, s.opts.Ants)
		best     fitness.Candidate
		bestSc   fitness.Score
		haveBest bool
		iter     int
	)
	for iter = 0; iter < s.opts.Iterations; iter++ {
		// Derive all per-ant RNG streams up front on the main goroutine, so
		// the draw sequence is identical whether ants run inline or pooled.
		for i = range antRNGs {
			antRNGs[i] = solver.DeriveRNG(rng, uint64(i))
		}

		if pool == nil {
			for i = 0; i < s.opts.Ants; i++ {
				results[i] = s.runAnt(net, ev, pheromone, maxHops, antRNGs[i])
			}
		} else {
			var wg sync.WaitGroup
			for i = 0; i < s.opts.Ants; i++ {
				a := i
				wg.Add(1)
				if err := pool.Submit(func() {
					defer wg.Done()
					results[a] = s.runAnt(net, ev, pheromone, maxHops, antRNGs[a])
				}); err != nil {
					wg.Done()
					wg.Wait()

					return solver.Result{}, fmt.Errorf("antcolony: submit ant: %w", err)
				}
			}
			wg.Wait() // barrier: no pheromone mutation before this point
		}

		// Iteration best (ties to the lowest ant index) and mean.
		var (
			iterBest = 0
			sum      float64
		)
		for i = range results {
			sum += results[i].score.Total
			if results[i].score.Total < results[iterBest].score.Total {
				iterBest = i
			}
		}
		if !haveBest || results[iterBest].score.Total < bestSc.Total {
			best = results[iterBest].cand.Clone()
			bestSc = results[iterBest].score
			haveBest = true
		}

		s.updatePheromones(net, pheromone, results[iterBest])

		history = append(history, solver.Iteration{
			Best: bestSc.Total,
			Mean: sum / float64(len(results)),
		})
	}

	return solver.Result{Best: best, Score: bestSc, History: history}, nil
}

// runAnt builds one full candidate (a path per demand) and evaluates it.
func (s *Solver) runAnt(net *network.Network, ev *fitness.Evaluator, pheromone []float64, maxHops int, rng *rand.Rand) antResult {
	demands := net.Demands()
	cand := fitness.Candidate{Paths: make([][]string, len(demands))}

	var i int
	for i = range demands {
		cand.Paths[i] = s.constructPath(net, pheromone, demands[i].Src, demands[i].Dst, maxHops, rng)
	}

	return antResult{cand: cand, score: ev.Evaluate(cand)}
}

// updatePheromones applies evaporation with the MinPheromone floor, then
// reinforces every edge used by the iteration-best candidate proportionally
// to the inverse of its score.
func (s *Solver) updatePheromones(net *network.Network, pheromone []float64, best antResult) {
	var i int
	for i = range pheromone {
		pheromone[i] *= 1 - s.opts.Evaporation
		if pheromone[i] < s.opts.MinPheromone {
			pheromone[i] = s.opts.MinPheromone
		}
	}

	delta := s.opts.Deposit / (best.score.Total + depositFloor)

	var (
		path []string
		ei   int
		ok   bool
	)
	for _, path = range best.cand.Paths {
		for i = 0; i+1 < len(path); i++ {
			if ei, ok = net.EdgeIndexBetween(path[i], path[i+1]); ok {
				pheromone[ei] += delta
			}
		}
	}
}
