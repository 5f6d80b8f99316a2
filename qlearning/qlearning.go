package qlearning

import (
	"math/rand"

	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/fitness"
	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/network"
	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/solver"
)

// Solver is the Q-learning engine. Construct with New; zero value is not
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
func (s *Solver) Name() string { return "qlearning" }

// table is the dense Q-table: q[demand][node][actionPos], with actionPos
// indexing the node's sorted adjacency list. Owned exclusively by one Solve.
type table [][][]float64

func newTable(net *network.Network) table {
	q := make(table, net.DemandCount())

	var d, n int
	for d = range q {
		q[d] = make([][]float64, net.NodeCount())
		for n = range q[d] {
			q[d][n] = make([]float64, len(net.NeighborsAt(n)))
		}
	}

	return q
}

// Solve implements solver.Solver. Every episode walks each demand once under
// the current epsilon, learns along the way, and scores the walked paths as
// one candidate; epsilon then decays toward EpsilonMin.
func (s *Solver) Solve(net *network.Network, ev *fitness.Evaluator) (solver.Result, error) {
	if net == nil {
		return solver.Result{}, solver.ErrNilNetwork
	}
	if ev == nil {
		return solver.Result{}, solver.ErrNilEvaluator
	}

	var (
		rng      = solver.RNG(s.opts.Seed)
		maxSteps = s.opts.MaxSteps
		demands  = net.Demands()
		q        = newTable(net)
		epsilon  = s.opts.EpsilonStart
	)
	if maxSteps == 0 {
		maxSteps = net.DefaultMaxHops()
	}

	var (
		history  = make([]solver.Iteration, 0, s.opts.Episodes)
		best     fitness.Candidate
		bestSc   fitness.Score
		haveBest bool
		ep, d    int
	)
	for ep = 0; ep < s.opts.Episodes; ep++ {
		cand := fitness.Candidate{Paths: make([][]string, len(demands))}
		for d = range demands {
			cand.Paths[d] = s.walk(net, q[d], demands[d], maxSteps, epsilon, rng)
		}

		sc := ev.Evaluate(cand)
		if !haveBest || sc.Total < bestSc.Total {
			best = cand.Clone()
			bestSc = sc
			haveBest = true
		}
		history = append(history, solver.Iteration{Best: bestSc.Total, Mean: sc.Total})

		if epsilon > s.opts.EpsilonMin {
			epsilon *= s.opts.EpsilonDecay
			if epsilon < s.opts.EpsilonMin {
				epsilon = s.opts.EpsilonMin
			}
		}
	}

	return solver.Result{Best: best, Score: bestSc, History: history}, nil
}

// walk simulates one demand episode: epsilon-greedy moves with inline
// Q-updates until the destination, a dead end, or the step budget. Returns
// the walked path on success, nil on failure (penalized by the evaluator).
func (s *Solver) walk(net *network.Network, q [][]float64, d network.Demand, maxSteps int, epsilon float64, rng *rand.Rand) []string {
	state, ok := net.NodeIndex(d.Src)
	if !ok {
		return nil
	}
	goal, ok := net.NodeIndex(d.Dst)
	if !ok {
		return nil
	}

	path := make([]string, 1, maxSteps+1)
	path[0] = d.Src
	if state == goal {
		return path
	}

	visited := make([]bool, net.NodeCount())
	visited[state] = true

	var (
		step, pos, next int
		arc             network.Arc
		reward, future  float64
		terminal        bool
	)
	for step = 0; step < maxSteps; step++ {
		pos = s.chooseAction(net, q, state, visited, epsilon, rng)
		if pos < 0 {
			return nil // stuck before moving: nothing to learn from
		}
		arc = net.NeighborsAt(state)[pos]
		next = arc.ToIndex

		visited[next] = true
		path = append(path, arc.To)

		reward = -net.EdgeAt(arc.EdgeIndex).Cost
		future = 0
		terminal = false

		switch {
		case next == goal:
			reward += s.opts.GoalReward
			terminal = true
		case step == maxSteps-1:
			// Budget exhausted on this hop without arriving.
			reward -= s.opts.CutoffPenalty
			terminal = true
		default:
			future = maxUnvisited(net, q, next, visited)
			if future == noAction {
				// Dead end behind this transition.
				reward -= s.opts.CutoffPenalty
				future = 0
				terminal = true
			}
		}

		q[state][pos] += s.opts.Alpha * (reward + s.opts.Gamma*future - q[state][pos])

		if terminal {
			if next == goal {
				return path
			}

			return nil
		}
		state = next
	}

	return nil
}

// noAction marks "no admissible successor" for maxUnvisited. Any real
// Q-value compares greater (the table is finite), so the sentinel is safe.
const noAction = -1e308

// chooseAction returns the epsilon-greedy action position among unvisited
// neighbors of state, or -1 when none exist. Exploitation ties break toward
// the first (lowest-ID) neighbor.
func (s *Solver) chooseAction(net *network.Network, q [][]float64, state int, visited []bool, epsilon float64, rng *rand.Rand) int {
	arcs := net.NeighborsAt(state)

	// Collect admissible action positions.
	var (
		admissible []int
		i          int
	)
	for i = range arcs {
		if !visited[arcs[i].ToIndex] {
			admissible = append(admissible, i)
		}
	}
	if len(admissible) == 0 {
		return -1
	}

	if rng.Float64() < epsilon {
		return admissible[rng.Intn(len(admissible))]
	}

	bestPos := admissible[0]
	for _, i = range admissible[1:] {
		if q[state][i] > q[state][bestPos] {
			bestPos = i
		}
	}

	return bestPos
}

// maxUnvisited returns the highest Q-value among state's unvisited
// neighbors, or noAction when there are none.
func maxUnvisited(net *network.Network, q [][]float64, state int, visited []bool) float64 {
	arcs := net.NeighborsAt(state)
	max := noAction

	var i int
	for i = range arcs {
		if visited[arcs[i].ToIndex] {
			continue
		}
		if max == noAction || q[state][i] > max {
			max = q[state][i]
		}
	}

	return max
}
