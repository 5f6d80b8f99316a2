package antcolony

import (
	"math"
	"math/rand"

	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/network"
)

// constructPath walks one ant from src to dst by roulette selection over
// τ^α·η^β, restricted to unvisited neighbors. Returns nil on a dead end or
// when maxHops is exhausted before reaching dst (the failed-path case the
// evaluator penalizes).
//
// Determinism: depends only on rng state, the pheromone snapshot, and the
// network's sorted adjacency order.
func (s *Solver) constructPath(net *network.Network, pheromone []float64, src, dst string, maxHops int, rng *rand.Rand) []string {
	cur, ok := net.NodeIndex(src)
	if !ok {
		return nil
	}
	if _, ok = net.NodeIndex(dst); !ok {
		return nil
	}

	path := make([]string, 1, maxHops+1)
	path[0] = src
	if src == dst {
		return path
	}

	visited := make([]bool, net.NodeCount())
	visited[cur] = true

	// Scratch buffers reused across hops.
	var (
		candidates = make([]network.Arc, 0, 8)
		weights    = make([]float64, 0, 8)
	)

	var (
		hop, i int
		arcs   []network.Arc
		w, sum float64
		next   network.Arc
	)
	for hop = 0; hop < maxHops; hop++ {
		arcs = net.NeighborsAt(cur)
		candidates = candidates[:0]
		weights = weights[:0]
		sum = 0

		for i = range arcs {
			if visited[arcs[i].ToIndex] {
				continue
			}
			w = attractiveness(pheromone[arcs[i].EdgeIndex], net.EdgeAt(arcs[i].EdgeIndex).Cost, s.opts.Alpha, s.opts.Beta)
			candidates = append(candidates, arcs[i])
			weights = append(weights, w)
			sum += w
		}
		if len(candidates) == 0 {
			return nil // dead end
		}

		if sum <= 0 {
			// Degenerate weights (e.g. alpha=beta=0 with pheromone floor 0):
			// fall back to a uniform draw.
			next = candidates[rng.Intn(len(candidates))]
		} else {
			next = roulette(candidates, weights, sum, rng)
		}

		path = append(path, next.To)
		visited[next.ToIndex] = true
		cur = next.ToIndex

		if next.To == dst {
			return path
		}
	}

	return nil // hop bound exceeded
}

// attractiveness computes τ^α · η^β with η = 1/(cost + etaSmoothing).
func attractiveness(tau, cost, alpha, beta float64) float64 {
	eta := 1.0 / (cost + etaSmoothing)

	return math.Pow(tau, alpha) * math.Pow(eta, beta)
}

// roulette draws one arc with probability weight/sum.
// The final index is returned unconditionally so accumulated floating-point
// error can never select nothing.
func roulette(candidates []network.Arc, weights []float64, sum float64, rng *rand.Rand) network.Arc {
	r := rng.Float64() * sum

	var i int
	for i = 0; i < len(candidates)-1; i++ {
		r -= weights[i]
		if r <= 0 {
			return candidates[i]
		}
	}

	return candidates[len(candidates)-1]
}
