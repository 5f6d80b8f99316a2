package genetic

import (
	"math/rand"

	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/fitness"
	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/network"
	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/solver"
)

// Solver is the genetic engine. Construct with New; zero value is not usable.
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
func (s *Solver) Name() string { return "genetic" }

// individual pairs a candidate with its evaluation; index preserves insertion
// order for deterministic tie-breaking.
type individual struct {
	cand  fitness.Candidate
	score fitness.Score
	index int
}

// better reports whether a ranks strictly ahead of b: lower score first,
// then lower insertion index.
func better(a, b individual) bool {
	if a.score.Total != b.score.Total {
		return a.score.Total < b.score.Total
	}

	return a.index < b.index
}

// Solve implements solver.Solver. It runs the full generation budget and
// returns the best candidate ever evaluated plus one history entry per
// generation.
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
		demands = net.Demands()
		pop     = make([]individual, s.opts.PopulationSize)
	)
	if maxHops == 0 {
		maxHops = net.DefaultMaxHops()
	}

	// Initial population: one independent random walk per demand per
	// individual; failed walks stay nil and are penalized by the evaluator.
	var i int
	for i = range pop {
		pop[i] = individual{cand: s.randomCandidate(net, demands, maxHops, rng), index: i}
	}

	var (
		history  = make([]solver.Iteration, 0, s.opts.Generations)
		best     individual
		haveBest bool
		gen      int
	)
	for gen = 0; gen < s.opts.Generations; gen++ {
		// Evaluate and track the generation mean + global best.
		var sum float64
		for i = range pop {
			pop[i].score = ev.Evaluate(pop[i].cand)
			sum += pop[i].score.Total
			if !haveBest || better(pop[i], best) {
				best = individual{cand: pop[i].cand.Clone(), score: pop[i].score, index: pop[i].index}
				haveBest = true
			}
		}
		history = append(history, solver.Iteration{
			Best: best.score.Total,
			Mean: sum / float64(len(pop)),
		})

		if gen == s.opts.Generations-1 {
			break // last generation is evaluated, not bred
		}

		pop = s.breed(net, demands, pop, maxHops, rng)
	}

	return solver.Result{Best: best.cand, Score: best.score, History: history}, nil
}

// breed produces the next generation: elite carried over unchanged, the rest
// filled by tournament selection + crossover + mutation.
func (s *Solver) breed(net *network.Network, demands []network.Demand, pop []individual, maxHops int, rng *rand.Rand) []individual {
	next := make([]individual, 0, len(pop))

	// Elitism: copy the Elite best unchanged. Rank by (score, index) without
	// disturbing pop's order — selection below still refers to it.
	order := rankIndices(pop)
	var i int
	for i = 0; i < s.opts.Elite; i++ {
		next = append(next, individual{cand: pop[order[i]].cand.Clone(), index: i})
	}

	// Offspring.
	var (
		a, b  individual
		child fitness.Candidate
		d     int
	)
	for len(next) < len(pop) {
		a = s.tournament(pop, rng)
		b = s.tournament(pop, rng)

		if rng.Float64() < s.opts.CrossoverRate {
			child = crossover(a.cand, b.cand, rng)
		} else {
			child = a.cand.Clone()
		}

		// Mutation: per demand, replace the path with a fresh random walk.
		for d = range demands {
			if rng.Float64() < s.opts.MutationRate {
				child.Paths[d] = solver.RandomWalk(net, demands[d].Src, demands[d].Dst, maxHops, rng)
			}
		}

		next = append(next, individual{cand: child, index: len(next)})
	}

	return next
}

// tournament draws TournamentSize contenders (with replacement) and returns
// the best by (score, index).
func (s *Solver) tournament(pop []individual, rng *rand.Rand) individual {
	win := pop[rng.Intn(len(pop))]

	var (
		i int
		c individual
	)
	for i = 1; i < s.opts.TournamentSize; i++ {
		c = pop[rng.Intn(len(pop))]
		if better(c, win) {
			win = c
		}
	}

	return win
}

// crossover builds one child taking each demand's path from either parent by
// a fair coin flip. Paths are copied, never aliased.
func crossover(a, b fitness.Candidate, rng *rand.Rand) fitness.Candidate {
	n := len(a.Paths)
	if len(b.Paths) > n {
		n = len(b.Paths)
	}
	child := fitness.Candidate{Paths: make([][]string, n)}

	var (
		i   int
		src [][]string
	)
	for i = 0; i < n; i++ {
		src = a.Paths
		if rng.Intn(2) == 1 {
			src = b.Paths
		}
		if i < len(src) && src[i] != nil {
			child.Paths[i] = append([]string(nil), src[i]...)
		}
	}

	return child
}

// randomCandidate generates one path per demand via bounded random walks.
func (s *Solver) randomCandidate(net *network.Network, demands []network.Demand, maxHops int, rng *rand.Rand) fitness.Candidate {
	c := fitness.Candidate{Paths: make([][]string, len(demands))}

	var i int
	for i = range demands {
		c.Paths[i] = solver.RandomWalk(net, demands[i].Src, demands[i].Dst, maxHops, rng)
	}

	return c
}

// rankIndices returns population indices sorted by (score, index) using a
// simple insertion sort — populations are small and the ordering must be
// stable and allocation-light.
func rankIndices(pop []individual) []int {
	order := make([]int, len(pop))

	var i, j, cur int
	for i = range order {
		order[i] = i
	}
	for i = 1; i < len(order); i++ {
		cur = order[i]
		j = i - 1
		for j >= 0 && better(pop[cur], pop[order[j]]) {
			order[j+1] = order[j]
			j--
		}
		order[j+1] = cur
	}

	return order
}
